package main

import (
	"fmt"
	"io"
	"time"

	"tstrip/internal/pipeline"
)

func printStageTimings(out io.Writer, timings pipeline.Timings) {
	if out == nil {
		return
	}
	if timings.Has(pipeline.StageStrip) {
		fmt.Fprintf(out, "stripped %.1f ms\n", toMillis(timings.Duration(pipeline.StageStrip)))
	}
	if timings.Has(pipeline.StageTransform) {
		fmt.Fprintf(out, "transformed %.1f ms\n", toMillis(timings.Duration(pipeline.StageTransform)))
	}
	if timings.Has(pipeline.StageWrite) {
		fmt.Fprintf(out, "wrote %.1f ms\n", toMillis(timings.Duration(pipeline.StageWrite)))
	}
}

func toMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
