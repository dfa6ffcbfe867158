package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/algoscout/internal/compare"
	"github.com/csheth/algoscout/internal/detail"
	"github.com/csheth/algoscout/internal/export"
)

func copyCodeJob(write func(string) error, epoch int, id, code string) jobRunner {
	return func(context.Context) (tea.Msg, error) {
		err := write(code)
		return copyResultMsg{epoch: epoch, id: id, err: err}, err
	}
}

func exportTableJob(path string, table compare.Table) jobRunner {
	return func(context.Context) (tea.Msg, error) {
		err := export.Save(path, export.NewSnapshot(table))
		return exportResultMsg{path: path, table: table, err: err}, err
	}
}

func expireCopiedCmd(epoch, token int) tea.Cmd {
	return tea.Tick(detail.CopiedIndicatorTTL, func(time.Time) tea.Msg {
		return copiedExpiredMsg{epoch: epoch, token: token}
	})
}
