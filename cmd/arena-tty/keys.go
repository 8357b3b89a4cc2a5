package main

import (
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/younwookim/brawler/internal/application/system"
)

// holdWindow is how long a key counts as held after its last event.
// Terminals send no key-up, only auto-repeat.
const holdWindow = 150 * time.Millisecond

// keys folds terminal key events into per-tick InputState
type keys struct {
	lastSeen map[rune]time.Time
	walkSeen time.Time

	primary   bool
	secondary bool
	pause     bool
	quit      bool
}

func newKeys() *keys {
	return &keys{lastSeen: make(map[rune]time.Time)}
}

// handle records one key event received at now
func (k *keys) handle(ev *tcell.EventKey, now time.Time) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		k.quit = true
		return
	case tcell.KeyUp:
		k.lastSeen['w'] = now
		return
	case tcell.KeyDown:
		k.lastSeen['s'] = now
		return
	case tcell.KeyLeft:
		k.lastSeen['a'] = now
		return
	case tcell.KeyRight:
		k.lastSeen['d'] = now
		return
	case tcell.KeyRune:
	default:
		return
	}

	r := ev.Rune()
	if unicode.IsUpper(r) {
		k.walkSeen = now
		r = unicode.ToLower(r)
	}

	switch r {
	case 'w', 'a', 's', 'd', ' ':
		k.lastSeen[r] = now
	case 'j':
		k.primary = true
	case 'k':
		k.secondary = true
	case 'p':
		k.pause = true
	case 'q':
		k.quit = true
	}
}

// poll returns the input for the tick at now and clears edge presses
func (k *keys) poll(now time.Time) system.InputState {
	held := func(r rune) bool {
		t, ok := k.lastSeen[r]
		return ok && now.Sub(t) < holdWindow
	}

	in := system.InputState{
		Up:        held('w'),
		Down:      held('s'),
		Left:      held('a'),
		Right:     held('d'),
		Jump:      held(' '),
		Walk:      now.Sub(k.walkSeen) < holdWindow,
		Primary:   k.primary,
		Secondary: k.secondary,
		Pause:     k.pause,
	}
	k.primary, k.secondary, k.pause = false, false, false
	return in
}
