package spotlight

import (
	"fmt"
	"time"
)

// frameStats holds per-frame timing and draw metrics.
// Only populated when Window.debug is true.
type frameStats struct {
	views      int
	animations int
	drawTime   time.Duration
}

// logStats writes frame stats to the window logger at debug level.
func (w *Window) logStats(stats frameStats) {
	if !w.debug {
		return
	}
	w.logger.Debug().
		Int("views", stats.views).
		Int("animations", stats.animations).
		Dur("draw", stats.drawTime).
		Msg("frame")
}

// debugCheckDisposed panics with a descriptive message when a disposed view is
// used in a tree operation. Only called in debug mode.
func debugCheckDisposed(v *View, op string) {
	if v.disposed {
		panic(fmt.Sprintf("spotlight debug: %s on disposed view %q", op, v.Name))
	}
}

// debugCheckTreeDepth warns if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(v *View) {
	depth := 0
	for p := v; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		debugLogger.Warn().Int("depth", depth).Int("max", debugMaxTreeDepth).
			Str("view", v.Name).Msg("tree depth exceeds threshold")
	}
}

// debugCheckChildCount warns if a view has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(v *View) {
	if len(v.children) > debugMaxChildCount {
		debugLogger.Warn().Int("children", len(v.children)).Int("max", debugMaxChildCount).
			Str("view", v.Name).Msg("child count exceeds threshold")
	}
}
