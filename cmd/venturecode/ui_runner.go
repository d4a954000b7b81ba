package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"venturecode/internal/pipeline"
	"venturecode/internal/ui"
)

type renderOutcome struct {
	res pipeline.Result
	err error
}

// runRenderWithUI renders req while the progress view follows its events.
// If the view fails the batch is canceled and its remaining events are
// drained so the workers never block on the channel.
func runRenderWithUI(ctx context.Context, out io.Writer, req *pipeline.Request) (pipeline.Result, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan pipeline.Event, 4*len(req.Files)+1)
	rendered := make(chan renderOutcome, 1)
	go func() {
		batch := *req
		batch.Progress = pipeline.ChannelSink{Ch: events}
		res, err := pipeline.Render(ctx, &batch)
		close(events)
		rendered <- renderOutcome{res: res, err: err}
	}()

	title := fmt.Sprintf("rendering %d files into %s", len(req.Files), req.OutDir)
	_, viewErr := tea.NewProgram(ui.NewProgressModel(title, req.Files, events), tea.WithOutput(out)).Run()
	if viewErr != nil {
		cancel()
		for range events {
		}
		viewErr = fmt.Errorf("progress view: %w", viewErr)
	}
	r := <-rendered
	return r.res, errors.Join(viewErr, r.err)
}
