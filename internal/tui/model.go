package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-records-sync/models"
)

const (
	maxWarnings   = 5
	nameWidth     = 18
	defaultBarLen = 40
)

type collectionRow struct {
	name   string
	loaded int
	total  int
}

func (r collectionRow) percent() float64 {
	if r.total <= 0 {
		return 1
	}
	return float64(r.loaded) / float64(r.total)
}

type model struct {
	opts Options

	spinner spinner.Model
	bar     progress.Model

	sessionID string
	phase     models.SyncPhase
	critical  bool
	rows      []collectionRow
	index     map[string]int
	warnings  []string
	status    string
	failure   *errorOverlayModel

	showBuildInfo bool
	quitting      bool
}

func newModel(opts Options) model {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return model{
		opts:    opts,
		spinner: s,
		bar:     progress.New(progress.WithDefaultGradient(), progress.WithWidth(defaultBarLen)),
		phase:   models.PhaseIdle,
		index:   make(map[string]int),
	}
}

// waitForEvent blocks on the progress stream in a tea.Cmd goroutine.
func waitForEvent(events <-chan models.ProgressEvent) tea.Cmd {
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return eventsClosedMsg{}
		}
		return progressEventMsg{event: ev}
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, waitForEvent(m.opts.Events))
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.bar.Width = max(10, min(defaultBarLen, msg.Width-nameWidth-24))
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case progressEventMsg:
		m.apply(msg.event)
		return m, waitForEvent(m.opts.Events)

	case eventsClosedMsg:
		m.status = "Поток событий закрыт"
		return m, nil
	}

	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		if m.opts.Sessions != nil {
			m.opts.Sessions.Cancel(m.opts.TenantID)
		}
		m.quitting = true
		return m, tea.Quit

	case m.showBuildInfo || m.failure != nil:
		if key.Matches(msg, keys.esc) {
			m.showBuildInfo = false
			m.failure = nil
		}
		return m, nil

	case key.Matches(msg, keys.info):
		m.showBuildInfo = true
		return m, nil

	case key.Matches(msg, keys.resync):
		if m.running() {
			m.status = "Синхронизация уже идёт"
			return m, nil
		}
		if m.opts.Job != nil {
			m.opts.Job.Trigger()
		}
		m.status = "Синхронизация запрошена"
		return m, nil
	}

	return m, nil
}

// apply folds one progress event into the screen state. An event of a new
// session resets the per-run state.
func (m *model) apply(ev models.ProgressEvent) {
	if ev.SessionID != "" && ev.SessionID != m.sessionID {
		m.sessionID = ev.SessionID
		m.critical = false
		m.rows = nil
		m.index = make(map[string]int)
		m.warnings = nil
		m.failure = nil
		m.status = ""
	}

	switch ev.Kind {
	case models.EventPhaseChanged:
		m.phase = ev.Phase

	case models.EventCriticalLoaded:
		m.critical = true

	case models.EventProgress:
		i, ok := m.index[ev.Collection]
		if !ok {
			i = len(m.rows)
			m.index[ev.Collection] = i
			m.rows = append(m.rows, collectionRow{name: ev.Collection})
		}
		m.rows[i].loaded = ev.Loaded
		m.rows[i].total = ev.Total

	case models.EventWarning:
		line := ev.Message
		if ev.Collection != "" {
			line = ev.Collection + ": " + line
		}
		m.warnings = append(m.warnings, line)
		if len(m.warnings) > maxWarnings {
			m.warnings = m.warnings[len(m.warnings)-maxWarnings:]
		}

	case models.EventError:
		m.failure = &errorOverlayModel{kind: ev.ErrorKind, message: humanizeSyncError(ev.ErrorKind, ev.Message)}

	case models.EventComplete:
		m.phase = models.PhaseDone
		m.status = "Синхронизация завершена в " + ev.At.Local().Format(time.TimeOnly)
	}
}

func (m model) running() bool {
	return m.phase != models.PhaseIdle && !m.phase.Terminal()
}

func (m model) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.opts.BuildInfo))
	}
	if m.failure != nil {
		return appStyle.Render(m.failure.View())
	}

	var b strings.Builder

	b.WriteString("Тенант: ")
	b.WriteString(m.opts.TenantID)
	b.WriteString("\n")
	b.WriteString("Фаза: ")
	if m.running() {
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
	}
	b.WriteString(phaseTitle(m.phase))
	b.WriteString("\n")
	if m.critical {
		b.WriteString(doneStyle.Render("✓ Основные данные загружены"))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for _, row := range m.rows {
		fmt.Fprintf(&b, "%-*s %s %d/%d", nameWidth, fitText(row.name, nameWidth), m.bar.ViewAs(row.percent()), row.loaded, row.total)
		if m.opts.State != nil {
			fmt.Fprintf(&b, "  (в памяти: %d)", m.opts.State.Count(row.name))
		}
		b.WriteString("\n")
	}

	if report, ok := m.lastReport(); ok && !m.running() {
		fmt.Fprintf(&b, "\nОтправлено изменений: %d, с ошибкой: %d\n", report.Pushed, report.PushFailed)
	}

	for _, w := range m.warnings {
		b.WriteString(warnStyle.Render("! " + w))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
	}

	return appStyle.Render(renderPage("СИНХРОНИЗАЦИЯ", b.String(), "r: синхронизировать • i: о программе • q: выход"))
}

func (m model) lastReport() (models.SyncReport, bool) {
	if m.opts.Job == nil {
		return models.SyncReport{}, false
	}
	return m.opts.Job.LastReport()
}

func phaseTitle(p models.SyncPhase) string {
	switch p {
	case models.PhaseUpstream:
		return "отправка локальных изменений"
	case models.PhaseDownstreamCritical:
		return "загрузка основных данных"
	case models.PhaseDownstreamBackground:
		return "фоновая загрузка"
	case models.PhaseDone:
		return "готово"
	case models.PhaseFailed:
		return "ошибка"
	default:
		return "ожидание"
	}
}
