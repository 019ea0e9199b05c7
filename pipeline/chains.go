package pipeline

import (
	"log"

	"github.com/lixenwraith/gaze-browse/action"
	"github.com/lixenwraith/gaze-browse/status"
	"github.com/lixenwraith/gaze-browse/vmath"
)

// Surface converts a normalized page coordinate to content coordinates
// The transform belongs to the host web view; actions never call it
type Surface interface {
	ContentFromRelative(rel vmath.Vec2F) vmath.Vec2F
}

// Sink receives the effects a pipeline produces on the page
type Sink interface {
	Click(content vmath.Vec2F)
	InputText(content vmath.Vec2F, text string, submit bool)
}

type settings struct {
	registry *status.Registry
	zoom     action.ZoomConfig
	zoomOpts []action.ZoomOption
}

// Option configures a provided chain
type Option func(*settings)

// WithRegistry records metrics into reg instead of a private registry
func WithRegistry(reg *status.Registry) Option {
	return func(s *settings) { s.registry = reg }
}

// WithZoomConfig sets the configuration of the zoom step
func WithZoomConfig(cfg action.ZoomConfig) Option {
	return func(s *settings) { s.zoom = cfg }
}

// WithZoomOptions passes options through to the zoom action
func WithZoomOptions(opts ...action.ZoomOption) Option {
	return func(s *settings) { s.zoomOpts = append(s.zoomOpts, opts...) }
}

func resolve(opts []Option) settings {
	s := settings{zoom: action.DefaultZoomConfig()}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// NewClickPipeline zooms to a coordinate and clicks it
func NewClickPipeline(surface Surface, sink Sink, opts ...Option) *Pipeline {
	s := resolve(opts)
	zoom := action.NewZoomCoordinateAction(s.zoom, s.zoomOpts...)

	return New("click", s.registry, Step{
		Name:   "zoom",
		Action: zoom,
		Done: func(action.Action) {
			content := surface.ContentFromRelative(zoom.Coordinate())
			log.Printf("Click at content (%.1f, %.1f)", content.X, content.Y)
			sink.Click(content)
		},
	})
}

// NewTextInputPipeline zooms to a field, collects text on the keyboard and inputs it there
func NewTextInputPipeline(surface Surface, overlay action.Overlay, sink Sink, opts ...Option) *Pipeline {
	s := resolve(opts)
	zoom := action.NewZoomCoordinateAction(s.zoom, s.zoomOpts...)
	keyboard := action.NewKeyboardAction(overlay)

	var target vmath.Vec2F
	return New("text-input", s.registry,
		Step{
			Name:   "zoom",
			Action: zoom,
			Done: func(action.Action) {
				target = surface.ContentFromRelative(zoom.Coordinate())
			},
		},
		Step{
			Name:   "keyboard",
			Action: keyboard,
			Bind: func(action.Action) {
				log.Printf("Keyboard bound to content (%.1f, %.1f)", target.X, target.Y)
			},
			Done: func(action.Action) {
				sink.InputText(target, keyboard.Text(), keyboard.Submitted())
			},
		},
	)
}
