package arena

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/brawler/internal/application/replay"
	"github.com/younwookim/brawler/internal/application/scene"
	"github.com/younwookim/brawler/internal/application/state"
	"github.com/younwookim/brawler/internal/application/system"
	"github.com/younwookim/brawler/internal/infrastructure/config"
)

const tick = 10 * time.Millisecond

// scriptedSource plays a fixed list of frames
type scriptedSource struct {
	frames []system.InputState
	next   int
	saves  map[int]bool
}

func (s *scriptedSource) Poll() (system.InputState, bool) {
	if s.next >= len(s.frames) {
		return system.InputState{}, false
	}
	in := s.frames[s.next]
	s.next++
	return in, true
}

func (s *scriptedSource) SaveRequested() bool {
	return s.saves[s.next]
}

func idle(n int) []system.InputState {
	return make([]system.InputState, n)
}

func newTestArena(t *testing.T, src InputSource) *Arena {
	t.Helper()
	tuning := config.Default()
	arena := &config.ArenaConfig{
		ID:      "test",
		Size:    config.ArenaSizeConfig{Width: 20, Depth: 20},
		Damping: 0.5,
		Targets: []config.TargetSpawnConfig{
			{Name: "dummy", X: 0, Z: 1, Radius: 0.5, Mass: 1},
		},
	}
	w, err := system.NewWorld(&tuning, arena)
	require.NoError(t, err)
	return New(w, config.DefaultDisplay(), src)
}

func TestArena_ImplementsScene(t *testing.T) {
	var _ scene.Scene = (*Arena)(nil)
	var _ InputSource = KeyboardSource{}
	var _ InputSource = (*ReplaySource)(nil)
}

func TestArena_UpdateStepsWorld(t *testing.T) {
	frames := idle(5)
	frames[0].Primary = true
	a := newTestArena(t, &scriptedSource{frames: frames})

	next, err := a.Update(tick)
	require.NoError(t, err)
	assert.Nil(t, next, "Should stay on the arena")

	snap := a.World().Snapshot()
	assert.Equal(t, state.Combo, snap.State)
	assert.Equal(t, 1, snap.ComboHit)
	assert.Equal(t, tick, snap.Time)
}

func TestArena_TerminatesWhenInputRunsOut(t *testing.T) {
	a := newTestArena(t, &scriptedSource{frames: idle(2)})

	for i := 0; i < 2; i++ {
		_, err := a.Update(tick)
		require.NoError(t, err)
	}

	_, err := a.Update(tick)
	assert.ErrorIs(t, err, ebiten.Termination)
	_, err = a.Update(tick)
	assert.ErrorIs(t, err, ebiten.Termination)
	assert.Equal(t, 2, a.World().Snapshot().Frame)
}

func TestArena_ScreenShakeDecays(t *testing.T) {
	frames := idle(100)
	frames[0].Primary = true
	a := newTestArena(t, &scriptedSource{frames: frames})

	for i := 0; i < 100 && a.Hits() == 0; i++ {
		_, err := a.Update(tick)
		require.NoError(t, err)
	}
	require.Equal(t, 1, a.Hits())
	assert.Greater(t, a.shake, 0.0)
	assert.LessOrEqual(t, a.shake, a.World().Tuning().Feedback.ScreenShake.Intensity)

	for i := 0; i < 40; i++ {
		_, err := a.Update(tick)
		require.NoError(t, err)
	}
	assert.Equal(t, 0.0, a.shake)
}

func TestArena_RecordsOnExit(t *testing.T) {
	frames := idle(30)
	frames[3].Secondary = true
	a := newTestArena(t, &scriptedSource{frames: frames})

	path := filepath.Join(t.TempDir(), "session.json")
	a.Record(path)
	a.OnEnter()
	for i := 0; i < 30; i++ {
		_, err := a.Update(tick)
		require.NoError(t, err)
	}
	a.OnExit()

	data, err := replay.LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, "test", data.Arena)
	assert.Equal(t, 60, data.TickRate)
	require.Len(t, data.Frames, 30)
	assert.True(t, data.Frames[3].S)
}

func TestArena_SaveRequested(t *testing.T) {
	src := &scriptedSource{frames: idle(10), saves: map[int]bool{5: true}}
	a := newTestArena(t, src)

	path := filepath.Join(t.TempDir(), "manual.json")
	a.Record(path)
	for i := 0; i < 10; i++ {
		_, err := a.Update(tick)
		require.NoError(t, err)
	}

	data, err := replay.LoadReplay(path)
	require.NoError(t, err)
	assert.Len(t, data.Frames, 5, "saved before the sixth frame was polled")
}

func TestArena_PlaysBackRecording(t *testing.T) {
	data := replay.CreateTestReplayData(20)
	data.Frames[0].P = true
	src := NewReplaySource(replay.NewReplayer(data))
	a := newTestArena(t, src)

	for i := 0; i < 20; i++ {
		_, err := a.Update(tick)
		require.NoError(t, err)
	}
	cur, total := src.Progress()
	assert.Equal(t, 20, cur)
	assert.Equal(t, 20, total)
	assert.Contains(t, a.status(a.World().Snapshot()), "replay 20/20")

	_, err := a.Update(tick)
	assert.ErrorIs(t, err, ebiten.Termination)
}

func TestArena_Reload(t *testing.T) {
	a := newTestArena(t, &scriptedSource{frames: idle(1)})

	tuning := config.Default()
	tuning.Spin.Cooldown = time.Second
	require.NoError(t, a.Reload(tuning))
	assert.Equal(t, time.Second, a.World().Tuning().Spin.Cooldown)

	tuning.Movement.Mode = "hover"
	assert.Error(t, a.Reload(tuning))
	assert.Equal(t, config.ControlDirect, a.World().Tuning().Movement.Mode)
}

func TestArena_PauseFreezesShake(t *testing.T) {
	frames := idle(3)
	frames[1].Pause = true
	a := newTestArena(t, &scriptedSource{frames: frames})
	a.shake = 4

	_, _ = a.Update(tick)
	assert.InDelta(t, 3.4, a.shake, 1e-9)

	_, _ = a.Update(tick)
	assert.True(t, a.World().Paused())
	assert.InDelta(t, 3.4, a.shake, 1e-9)
}
