// Command gaze-trace runs scripted zoom sessions and writes their traces as plots
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/lixenwraith/gaze-browse/action"
	"github.com/lixenwraith/gaze-browse/config"
	"github.com/lixenwraith/gaze-browse/trace"
	"github.com/lixenwraith/gaze-browse/vmath"
)

var (
	outFlag      = flag.String("out", "traces", "Directory plots are written to")
	configFlag   = flag.String("config", "", "JSON configuration file (overrides GAZE_CONFIG_FILE)")
	scenarioFlag = flag.String("scenario", "all", "Comma separated scenarios to run, or all")
	seedFlag     = flag.Uint64("seed", 7, "Seed for noisy scenarios")
	maxTicksFlag = flag.Int("max-ticks", 1200, "Frames after which an unfinished session is aborted")
	verboseFlag  = flag.Bool("v", false, "Log session events to stderr")
)

// scenarios keyed by name; each builds its input source from the seed
var scenarios = map[string]func(seed uint64) trace.Source{
	"centered": func(uint64) trace.Source {
		return trace.Fixed(0.5, 0.5)
	},
	"offset": func(uint64) trace.Source {
		return trace.Tracking(vmath.Vec2F{X: 0.3, Y: 0.7}, vmath.Vec2F{X: 0.02, Y: -0.01})
	},
	"noisy": func(seed uint64) trace.Source {
		return trace.Noisy(trace.Tracking(vmath.Vec2F{X: 0.7, Y: 0.25}, vmath.Vec2F{}), 0.03, seed)
	},
	"dropout": func(seed uint64) trace.Source {
		return trace.Dropout(trace.Noisy(trace.Tracking(vmath.Vec2F{X: 0.45, Y: 0.55}, vmath.Vec2F{}), 0.02, seed), 5)
	},
}

func scenarioNames(sel string) ([]string, error) {
	if sel == "all" || sel == "" {
		names := make([]string, 0, len(scenarios))
		for n := range scenarios {
			names = append(names, n)
		}
		sort.Strings(names)
		return names, nil
	}
	var names []string
	for _, n := range strings.Split(sel, ",") {
		n = strings.TrimSpace(n)
		if _, ok := scenarios[n]; !ok {
			return nil, fmt.Errorf("unknown scenario %q", n)
		}
		names = append(names, n)
	}
	return names, nil
}

func main() {
	flag.Parse()

	log.SetOutput(io.Discard)
	if *verboseFlag {
		log.SetOutput(os.Stderr)
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	names, err := scenarioNames(*scenarioFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	tpf := 1 / float64(cfg.FPS)
	fmt.Printf("preset %s, %d fps, writing to %s\n", cfg.Preset, cfg.FPS, *outFlag)

	failed := false
	for _, name := range names {
		rec := trace.NewRecorder()
		z := action.NewZoomCoordinateAction(cfg.Zoom)
		res := trace.Run(z, scenarios[name](*seedFlag), tpf, *maxTicksFlag, rec)

		sum, _ := rec.Summary()
		fmt.Printf("%-9s ticks=%4d time=%6.3fs drift=%6.3fs maxdev=%.3f final=(%.4f, %.4f) completed=%v\n",
			name, sum.Ticks, sum.Duration, sum.DriftStart, sum.MaxDeviation,
			res.Coordinate.X, res.Coordinate.Y, res.Completed)

		files, err := rec.Export(*outFlag, name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Export %s: %v\n", name, err)
			failed = true
			continue
		}
		for _, f := range files {
			fmt.Printf("          %s\n", f)
		}
	}
	if failed {
		os.Exit(1)
	}
}
