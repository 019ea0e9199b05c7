package trace

import (
	"log"

	"github.com/lixenwraith/gaze-browse/action"
	"github.com/lixenwraith/gaze-browse/vmath"
)

// Source produces the input for a tick given what is currently displayed
type Source func(tick int, view action.ZoomView) action.Input

// Fixed looks at one surface position regardless of what is shown
func Fixed(x, y float64) Source {
	return func(int, action.ZoomView) action.Input {
		return action.GazeInput(x, y)
	}
}

// Tracking looks at a page target through the current zoom, with a constant tracker bias
// The eye follows the target as it moves on screen
func Tracking(target, bias vmath.Vec2F) Source {
	return func(_ int, v action.ZoomView) action.Input {
		s := vmath.V2FAdd(v.ScreenAt(target), bias)
		return action.GazeInput(s.X, s.Y)
	}
}

// Noisy adds uniform jitter of up to amplitude per axis to src
func Noisy(src Source, amplitude float64, seed uint64) Source {
	rng := vmath.NewFastRand(seed)
	return func(tick int, v action.ZoomView) action.Input {
		in := src(tick, v)
		in.Gaze = rng.Jitter(in.Gaze, amplitude)
		return in
	}
}

// Dropout invalidates every nth input of src
func Dropout(src Source, every int) Source {
	return func(tick int, v action.ZoomView) action.Input {
		in := src(tick, v)
		if every > 0 && tick%every == every-1 {
			in.Valid = false
		}
		return in
	}
}

// Run drives z with src at tpf until it finishes or maxTicks elapse, recording into rec when non-nil
// z is activated by Run; the result reflects the last Update
func Run(z *action.ZoomCoordinateAction, src Source, tpf float64, maxTicks int, rec *Recorder) action.Result {
	z.Activate()
	defer z.Deactivate()

	for i := 0; i < maxTicks; i++ {
		in := src(i, z.View())
		done := z.Update(tpf, in)
		if rec != nil {
			rec.Record(tpf, in, z.View())
		}
		if done {
			return z.Result()
		}
	}
	log.Printf("Scenario stopped after %d ticks without finishing", maxTicks)
	z.Abort()
	return z.Result()
}
