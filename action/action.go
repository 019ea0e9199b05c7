// Package action implements the gaze-driven interaction actions of a tab pipeline
// Every action follows the same frame-driven lifecycle so a sequencer can drive them uniformly
package action

import (
	"github.com/lixenwraith/gaze-browse/vmath"
)

// Action is the lifecycle shared by every gaze-driven action
// Activate -> Update* -> {finish | Abort} -> Deactivate, re-activatable afterwards
type Action interface {
	// Activate allocates or resets internal state
	Activate()
	// Update advances the action by tpf seconds and reports whether it has finished
	Update(tpf float64, input Input) bool
	// Draw hands a read-only view to the canvas, never mutates
	Draw(canvas Canvas)
	// Deactivate releases transient visual resources and returns to Inactive
	Deactivate()
	// Abort terminates immediately regardless of progress
	Abort()
}

// Lifecycle is the protocol state of an action
type Lifecycle uint8

const (
	Inactive Lifecycle = iota
	Active
	Finished
	Aborted
)

func (l Lifecycle) String() string {
	switch l {
	case Inactive:
		return "inactive"
	case Active:
		return "active"
	case Finished:
		return "finished"
	case Aborted:
		return "aborted"
	}
	return "unknown"
}

// Terminated reports whether no further Update may change state
func (l Lifecycle) Terminated() bool {
	return l == Finished || l == Aborted
}

// InputSource identifies where the per-tick coordinate came from
type InputSource uint8

const (
	SourceGaze   InputSource = iota // Eye tracker sample
	SourceCursor                    // Host fallback when gaze is unavailable
)

func (s InputSource) String() string {
	if s == SourceCursor {
		return "cursor"
	}
	return "gaze"
}

// Input is the per-tick sample supplied by the host
// Gaze is normalized to the interactive surface the action draws on
type Input struct {
	Gaze   vmath.Vec2F
	Source InputSource
	Valid  bool // False when the host has no trustworthy coordinate this tick
}

// GazeInput builds a valid tracker input
func GazeInput(x, y float64) Input {
	return Input{Gaze: vmath.Vec2F{X: x, Y: y}, Source: SourceGaze, Valid: true}
}

// CursorInput builds a valid fallback input
func CursorInput(x, y float64) Input {
	return Input{Gaze: vmath.Vec2F{X: x, Y: y}, Source: SourceCursor, Valid: true}
}

// Canvas is the drawing collaborator; each action passes its view by value
type Canvas interface {
	DrawZoom(view ZoomView)
	DrawKeyboard(view KeyboardView)
}

// OverlayHandle is an opaque reference into the host overlay collection
// Stable for the lifetime of the owning session
type OverlayHandle int

// NoOverlay marks the absence of an owned overlay frame
const NoOverlay OverlayHandle = -1

// Overlay is the host-managed collection of floating frames
type Overlay interface {
	AddFloatingFrame(name string) OverlayHandle
	RemoveFloatingFrame(h OverlayHandle)
}
