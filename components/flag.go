package components

import "sync/atomic"

// Flag is a boolean shared between the interrupt handler and the batch
// producer. The handler clears it; the producer polls it between lines.
type Flag struct {
	value atomic.Bool
}

// NewFlag returns a Flag holding the given initial value.
func NewFlag(set bool) *Flag {
	f := &Flag{}
	f.value.Store(set)
	return f
}

func (f *Flag) Set() {
	f.value.Store(true)
}

func (f *Flag) Clear() {
	f.value.Store(false)
}

func (f *Flag) IsSet() bool {
	return f.value.Load()
}
