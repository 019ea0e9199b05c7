package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/gaze-browse/action"
	"github.com/lixenwraith/gaze-browse/audio"
	"github.com/lixenwraith/gaze-browse/config"
	"github.com/lixenwraith/gaze-browse/parameter"
	"github.com/lixenwraith/gaze-browse/pipeline"
	"github.com/lixenwraith/gaze-browse/render"
	"github.com/lixenwraith/gaze-browse/status"
	"github.com/lixenwraith/gaze-browse/vmath"
)

var (
	configFlag = flag.String("config", "", "JSON configuration file (overrides GAZE_CONFIG_FILE)")
	debugFlag  = flag.Bool("debug", false, "Write logs to logs/gaze-demo.log")
	seedFlag   = flag.Uint64("seed", 1, "Seed of the generated page")
)

func main() {
	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	log.Printf("Configuration loaded: preset=%s source=%q fps=%d", cfg.Preset, cfg.Source, cfg.FPS)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Panic recovery: restore the terminal before printing the trace
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mGAZE-DEMO CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	player := audio.NewPlayer(cfg.Audio)
	if err := player.Initialize(); err != nil {
		log.Printf("Audio initialization failed: %v (continuing without audio)", err)
	}
	defer player.Cleanup()

	a := newApp(screen, cfg, player)
	a.run()
}

// app holds the demo host state; all fields are touched from the main loop only
type app struct {
	screen tcell.Screen
	cfg    *config.Config
	player *audio.Player
	reg    *status.Registry

	page   *render.Page
	frames *render.Frames
	canvas *render.Canvas

	active *pipeline.Pipeline

	gaze   action.Input
	frozen bool

	// Pause stops input and pipeline progression, the surface fades to dark
	paused   bool
	pauseDim vmath.LerpValue

	message   string
	messageAt time.Time
}

func newApp(screen tcell.Screen, cfg *config.Config, player *audio.Player) *app {
	page := render.NewPage(120, 40, *seedFlag)
	frames := render.NewFrames()
	a := &app{
		screen: screen,
		cfg:    cfg,
		player: player,
		reg:    status.NewRegistry(),
		page:   page,
		frames: frames,
		canvas: render.NewCanvas(screen, page, frames),
		pauseDim: vmath.LerpValue{
			Rate: parameter.PauseDimValue / parameter.PauseDimDuration,
		},
	}
	a.reg.Bools.Get(status.KeyAudioEnabled).Store(player.Active())
	return a
}

// Click implements pipeline.Sink
func (a *app) Click(content vmath.Vec2F) {
	if t, ok := a.page.TargetAt(content); ok {
		a.notify(fmt.Sprintf("clicked %s", t.Label))
		return
	}
	a.notify(fmt.Sprintf("clicked empty page at (%.0f, %.0f)", content.X, content.Y))
}

// InputText implements pipeline.Sink
func (a *app) InputText(content vmath.Vec2F, text string, submit bool) {
	field := "page"
	if t, ok := a.page.TargetAt(content); ok {
		field = t.Label
	}
	verb := "typed"
	if submit {
		verb = "submitted"
	}
	a.notify(fmt.Sprintf("%s %q into %s", verb, text, field))
}

func (a *app) notify(msg string) {
	log.Printf("Status: %s", msg)
	a.message = msg
	a.messageAt = time.Now()
}

func (a *app) options() []pipeline.Option {
	return []pipeline.Option{
		pipeline.WithRegistry(a.reg),
		pipeline.WithZoomConfig(a.cfg.Zoom),
		pipeline.WithZoomOptions(action.WithPhaseHook(a.player.PhaseHook())),
	}
}

func (a *app) start(p *pipeline.Pipeline) {
	if a.active != nil && a.active.Running() {
		return
	}
	if err := p.Start(); err != nil {
		a.notify(fmt.Sprintf("pipeline %s: %v", p.Name(), err))
		return
	}
	a.active = p
	a.frozen = false
}

func (a *app) activeZoom() (*action.ZoomCoordinateAction, bool) {
	if a.active == nil {
		return nil, false
	}
	z, ok := a.active.Active().(*action.ZoomCoordinateAction)
	return z, ok
}

func (a *app) activeKeyboard() (*action.KeyboardAction, bool) {
	if a.active == nil {
		return nil, false
	}
	k, ok := a.active.Active().(*action.KeyboardAction)
	return k, ok
}

func (a *app) togglePause() {
	a.paused = !a.paused
	a.pauseDim.Target = 0
	if a.paused {
		a.pauseDim.Target = parameter.PauseDimValue
		a.gaze = action.Input{}
	}
	log.Printf("Demo paused=%v", a.paused)
}

func (a *app) abort() {
	if a.active == nil || !a.active.Running() {
		return
	}
	a.active.Abort()
	a.player.Play(audio.CueAbort)
	a.notify(fmt.Sprintf("%s aborted", a.active.Name()))
	a.active = nil
}

// handleKey returns false when the demo should exit
func (a *app) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return false
	case tcell.KeyEscape:
		a.abort()
		return true
	case tcell.KeyCtrlP:
		a.togglePause()
		return true
	}

	if a.paused {
		if ev.Key() == tcell.KeyRune && ev.Rune() == 'p' {
			a.togglePause()
		}
		return true
	}

	if k, ok := a.activeKeyboard(); ok {
		a.handleKeyboard(k, ev)
		return true
	}

	if ev.Key() != tcell.KeyRune {
		return true
	}
	switch ev.Rune() {
	case 'q':
		return false
	case 'p':
		a.togglePause()
	case 'z':
		a.start(pipeline.NewClickPipeline(a.page, a, a.options()...))
	case 'k':
		a.start(pipeline.NewTextInputPipeline(a.page, a.frames, a, a.options()...))
	case 'd':
		if z, ok := a.activeZoom(); ok {
			a.frozen = !a.frozen
			z.SetDebugFixed(a.frozen)
		}
	}
	return true
}

func (a *app) handleKeyboard(k *action.KeyboardAction, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEnter:
		k.Submit()
	case tcell.KeyTab:
		k.Complete()
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		k.DeleteCharacter()
	case tcell.KeyCtrlS:
		k.ToggleShift()
	case tcell.KeyRune:
		k.TypeRune(ev.Rune())
	default:
		return
	}
	a.player.Play(audio.CueKey)
}

func (a *app) handleMouse(ev *tcell.EventMouse) {
	if a.paused {
		return
	}
	x, y := ev.Position()
	rel, ok := a.canvas.RelativeAt(x, y)
	if !ok {
		a.gaze = action.Input{Source: action.SourceCursor}
		return
	}
	a.gaze = action.CursorInput(rel.X, rel.Y)
}

func (a *app) update(dt float64) {
	a.pauseDim.Update(dt)
	if a.active == nil || a.paused {
		return
	}
	if a.active.Update(dt, a.gaze) {
		log.Printf("Pipeline %s ended, completed=%v", a.active.Name(), a.active.Completed())
		a.active = nil
	}
}

func (a *app) draw() {
	a.canvas.Clear()
	a.canvas.SetGaze(a.gaze.Gaze, a.gaze.Valid)
	if a.active != nil && a.active.Running() {
		a.active.Draw(a.canvas)
	} else {
		a.canvas.DrawPage()
	}

	msg := a.message
	if msg != "" && time.Since(a.messageAt) > parameter.StatusMessageTimeout {
		a.message, msg = "", ""
	}
	a.canvas.DrawStatus(a.reg.Snapshot(), msg)
	a.canvas.DimScreen(a.pauseDim.Current)
	if a.paused {
		a.canvas.DrawPaused()
	}
	a.canvas.Show()
}

func (a *app) run() {
	eventChan := make(chan tcell.Event, 256)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				a.screen.Fini()
				fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()
		for {
			ev := a.screen.PollEvent()
			// Nil after Fini
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	frameTicker := time.NewTicker(time.Second / time.Duration(a.cfg.FPS))
	defer frameTicker.Stop()

	last := time.Now()
	for {
		select {
		case ev, ok := <-eventChan:
			if !ok {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !a.handleKey(ev) {
					a.abort()
					return
				}
			case *tcell.EventMouse:
				a.handleMouse(ev)
			case *tcell.EventResize:
				a.screen.Sync()
			}

		case now := <-frameTicker.C:
			dt := now.Sub(last).Seconds()
			last = now
			a.update(dt)
			a.draw()
		}
	}
}
