package system

import "github.com/younwookim/brawler/internal/application/state"

// InputState holds one frame of device input reduced to buttons.
// Edge fields are true only on the frame the button went down.
type InputState struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool
	Walk  bool
	Jump  bool

	Primary   bool // edge
	Secondary bool // edge
	Pause     bool // edge
}

// Command maps the buttons onto the state machine's per-tick intent
func (in InputState) Command() state.Command {
	return state.Command{
		Vertical:   axis(in.Up, in.Down),
		Horizontal: axis(in.Right, in.Left),
		Walk:       in.Walk,
		Jump:       in.Jump,
		Primary:    in.Primary,
		Secondary:  in.Secondary,
	}
}

func axis(pos, neg bool) float64 {
	switch {
	case pos && !neg:
		return 1
	case neg && !pos:
		return -1
	default:
		return 0
	}
}
