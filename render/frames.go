package render

import (
	"sort"
	"sync"

	"github.com/lixenwraith/gaze-browse/action"
)

// Frames is the overlay collection of floating frames drawn above the page
type Frames struct {
	mu   sync.Mutex
	next action.OverlayHandle
	open map[action.OverlayHandle]string
}

func NewFrames() *Frames {
	return &Frames{open: make(map[action.OverlayHandle]string)}
}

// AddFloatingFrame opens a named frame and returns its handle
func (f *Frames) AddFloatingFrame(name string) action.OverlayHandle {
	f.mu.Lock()
	defer f.mu.Unlock()
	h := f.next
	f.next++
	f.open[h] = name
	return h
}

// RemoveFloatingFrame closes a frame, unknown handles are ignored
func (f *Frames) RemoveFloatingFrame(h action.OverlayHandle) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.open, h)
}

// Name returns the frame name for an open handle
func (f *Frames) Name(h action.OverlayHandle) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	name, ok := f.open[h]
	return name, ok
}

// Open returns the open handles in creation order
func (f *Frames) Open() []action.OverlayHandle {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]action.OverlayHandle, 0, len(f.open))
	for h := range f.open {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
