// Package tui renders the client's sync progress screen with bubbletea.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-records-sync/internal/logger"
	"github.com/MKhiriev/go-records-sync/models"
)

var ErrUserQuit = errors.New("вышел из программы")

// Controller triggers background syncs and exposes the last report.
type Controller interface {
	Trigger()
	LastReport() (models.SyncReport, bool)
}

// Canceler aborts the active sync session of a tenant.
type Canceler interface {
	Cancel(tenantID string) bool
}

// StateView reports how many entities of a collection the host holds.
type StateView interface {
	Count(collection string) int
}

// Options wires the screen to the sync engine.
type Options struct {
	TenantID  string
	BuildInfo models.AppBuildInfo

	// Events is a subscription of the progress hub.
	Events <-chan models.ProgressEvent

	Job      Controller
	Sessions Canceler
	State    StateView
}

type TUI struct {
	opts   Options
	logger *logger.Logger
}

func New(opts Options, logger *logger.Logger) *TUI {
	return &TUI{opts: opts, logger: logger}
}

// Run shows the progress screen until the user quits or ctx is cancelled.
// Quitting by key returns [ErrUserQuit].
func (t *TUI) Run(ctx context.Context) error {
	finalModel, err := tea.NewProgram(
		newModel(t.opts),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	).Run()
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		t.logger.Err(err).Str("func", "*TUI.Run").Msg("tui stopped with error")
		return err
	}

	if result, ok := finalModel.(model); ok && result.quitting {
		return ErrUserQuit
	}
	return nil
}
