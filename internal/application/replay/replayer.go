package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/brawler/internal/application/system"
)

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	if data.Version != FormatVersion {
		return nil, fmt.Errorf("unsupported replay version %q", data.Version)
	}
	if data.TickRate <= 0 {
		return nil, fmt.Errorf("invalid replay tick rate %d", data.TickRate)
	}

	return &data, nil
}

// GetInput returns the input for the current frame and advances
func (r *Replayer) GetInput() (system.InputState, bool) {
	if r.frame >= len(r.data.Frames) {
		return system.InputState{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++

	return system.InputState{
		Up:        fi.U,
		Down:      fi.D,
		Left:      fi.L,
		Right:     fi.R,
		Walk:      fi.W,
		Jump:      fi.J,
		Primary:   fi.P,
		Secondary: fi.S,
		Pause:     fi.PS,
	}, true
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Arena returns the arena the replay was recorded in
func (r *Replayer) Arena() string {
	return r.data.Arena
}

// TickInterval returns the recorded fixed step
func (r *Replayer) TickInterval() time.Duration {
	if r.data.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(r.data.TickRate)
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// CreateTestReplayData creates replay data for testing (idle character)
func CreateTestReplayData(frames int) ReplayData {
	data := ReplayData{
		Version:   FormatVersion,
		Arena:     "test",
		TickRate:  60,
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    make([]FrameInput, frames),
	}

	for i := 0; i < frames; i++ {
		data.Frames[i] = FrameInput{F: i}
	}

	return data
}
