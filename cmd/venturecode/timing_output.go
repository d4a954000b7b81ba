package main

import (
	"fmt"
	"io"
	"time"

	"venturecode/internal/pipeline"
)

func printStageTimings(out io.Writer, res pipeline.FileResult) error {
	if _, err := fmt.Fprintf(out, "%s:", res.Path); err != nil {
		return err
	}
	for _, stage := range []pipeline.Stage{pipeline.StageDecode, pipeline.StageRender, pipeline.StageWrite} {
		if !res.Timings.Has(stage) {
			continue
		}
		if _, err := fmt.Fprintf(out, " %s %.1f ms", stage, toMillis(res.Timings.Duration(stage))); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(out, " (total %.1f ms)\n", toMillis(res.Timings.Total()))
	return err
}

func toMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
