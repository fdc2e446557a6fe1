package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"tstrip/internal/pipeline"
	"tstrip/internal/ui"
)

type runOutcome struct {
	summary pipeline.Summary
	err     error
}

func runPipelineWithUI(ctx context.Context, title string, files []string, req *pipeline.Request) (pipeline.Summary, error) {
	if req == nil {
		return pipeline.Summary{}, fmt.Errorf("missing run request")
	}
	events := make(chan pipeline.Event, 256)
	outcomeCh := make(chan runOutcome, 1)

	go func() {
		reqCopy := *req
		reqCopy.Progress = pipeline.ChannelSink{Ch: events}
		sum, err := pipeline.Run(ctx, &reqCopy)
		outcomeCh <- runOutcome{summary: sum, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.summary, uiErr
	}
	return outcome.summary, outcome.err
}
