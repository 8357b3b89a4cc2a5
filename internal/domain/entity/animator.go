package entity

import "sort"

// Animator stores animation parameters for whichever renderer draws the
// character. Triggers stay set until a renderer consumes or resets them.
type Animator struct {
	bools    map[string]bool
	floats   map[string]float64
	triggers map[string]bool
}

// NewAnimator creates an empty parameter set
func NewAnimator() *Animator {
	return &Animator{
		bools:    make(map[string]bool),
		floats:   make(map[string]float64),
		triggers: make(map[string]bool),
	}
}

func (a *Animator) SetBool(name string, v bool)     { a.bools[name] = v }
func (a *Animator) SetFloat(name string, v float64) { a.floats[name] = v }
func (a *Animator) SetTrigger(name string)          { a.triggers[name] = true }
func (a *Animator) ResetTrigger(name string)        { delete(a.triggers, name) }

func (a *Animator) Bool(name string) bool     { return a.bools[name] }
func (a *Animator) Float(name string) float64 { return a.floats[name] }

// Triggered reports whether a trigger is set without consuming it
func (a *Animator) Triggered(name string) bool {
	return a.triggers[name]
}

// ConsumeTrigger clears a set trigger and reports whether it was set
func (a *Animator) ConsumeTrigger(name string) bool {
	if !a.triggers[name] {
		return false
	}
	delete(a.triggers, name)
	return true
}

// PendingTriggers returns the set triggers in name order
func (a *Animator) PendingTriggers() []string {
	names := make([]string, 0, len(a.triggers))
	for name := range a.triggers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
