package arena

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/brawler/internal/application/replay"
	"github.com/younwookim/brawler/internal/application/system"
)

// InputSource produces one frame of input per tick. ok is false once the
// source has nothing left to give.
type InputSource interface {
	Poll() (input system.InputState, ok bool)
}

// saveRequester is implemented by sources that can ask for the recording to
// be written out mid-session.
type saveRequester interface {
	SaveRequested() bool
}

// KeyboardSource reads the keyboard and mouse through ebiten.
//
//	WASD / arrows   move
//	Shift           walk
//	Space           jump
//	J / left click  attack
//	K / right click spin
//	Esc             pause
//	F5              save recording
type KeyboardSource struct{}

// Poll implements InputSource
func (KeyboardSource) Poll() (system.InputState, bool) {
	return system.InputState{
		Up:    pressed(ebiten.KeyW, ebiten.KeyArrowUp),
		Down:  pressed(ebiten.KeyS, ebiten.KeyArrowDown),
		Left:  pressed(ebiten.KeyA, ebiten.KeyArrowLeft),
		Right: pressed(ebiten.KeyD, ebiten.KeyArrowRight),
		Walk:  pressed(ebiten.KeyShiftLeft, ebiten.KeyShiftRight),
		Jump:  pressed(ebiten.KeySpace),

		Primary: inpututil.IsKeyJustPressed(ebiten.KeyJ) ||
			inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Secondary: inpututil.IsKeyJustPressed(ebiten.KeyK) ||
			inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight),
		Pause: inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}, true
}

// SaveRequested reports an F5 press
func (KeyboardSource) SaveRequested() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyF5)
}

func pressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// ReplaySource plays back recorded frames
type ReplaySource struct {
	replayer *replay.Replayer
}

// NewReplaySource wraps a replayer
func NewReplaySource(r *replay.Replayer) *ReplaySource {
	return &ReplaySource{replayer: r}
}

// Poll implements InputSource
func (s *ReplaySource) Poll() (system.InputState, bool) {
	return s.replayer.GetInput()
}

// Progress returns the frames played and the frames recorded
func (s *ReplaySource) Progress() (int, int) {
	return s.replayer.CurrentFrame(), s.replayer.TotalFrames()
}
