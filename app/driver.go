// Package app holds the per-program frame drivers and their shared state.
package app

import "time"

// Driver receives the host's window events. All methods are called on the
// thread that owns the graphics context.
type Driver interface {
	OnRender()
	OnResize(width, height int)
	OnTick(dt time.Duration)
	OnKey(key Key) Action
}

// Key is a host independent key code.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	Key1
	Key2
	Key3
	Key4
)

// Action tells the host what to do after a key event.
type Action int

const (
	Continue Action = iota
	Quit
)

// Phase is the lifecycle of a driver.
type Phase int

const (
	Uninitialized Phase = iota
	Ready
	Rendering
	Terminated
)

func (phase Phase) String() string {
	switch phase {
	case Uninitialized:
		return "uninitialized"
	case Ready:
		return "ready"
	case Rendering:
		return "rendering"
	case Terminated:
		return "terminated"
	}
	return "invalid"
}
