package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"

	"github.com/stackpane/stackpane/compositor"
	"github.com/stackpane/stackpane/internal/config"
	"github.com/stackpane/stackpane/overlay"
)

// tickMsg drives periodic repaints so asynchronously removed overlays
// disappear without waiting for input.
type tickMsg time.Time

// configReloadedMsg carries a hot-reloaded configuration.
type configReloadedMsg struct {
	cfg *config.Config
}

// app is the demo screen. It owns the layer stack, so it implements
// overlay.Host for the registry embedded in it.
type app struct {
	cfg    *config.Config
	logger *slog.Logger

	stack *compositor.Stack
	reg   *overlay.Registry

	keys keyMap
	help help.Model
	spin spinner.Model

	// Toggled overlays, nil while hidden.
	modal   overlay.Model
	working overlay.Model
	dump    overlay.Model

	// Background feed wired through the registry's stream helper.
	events chan string
	quit   chan struct{}

	startedAt time.Time
	toastSeq  int
	width     int
	height    int
}

func newApp(cfg *config.Config, logger *slog.Logger) *app {
	if logger == nil {
		logger = slog.Default()
	}

	a := &app{
		cfg:       cfg,
		logger:    logger,
		stack:     compositor.New(cfg.Options(), logger),
		keys:      defaultKeyMap(),
		help:      help.New(),
		spin:      spinner.New(spinner.WithSpinner(spinner.Dot)),
		events:    make(chan string),
		quit:      make(chan struct{}),
		startedAt: time.Now(),
	}
	a.reg = overlay.NewRegistry(a, logger)
	overlay.InsertEach(a.reg, a.events, a.planForEvent)
	go a.feed()

	return a
}

// Surface implements overlay.Host.
func (a *app) Surface() overlay.Surface {
	return a.stack
}

// feed produces background events until the demo quits. Closing the
// events channel ends the stream helper's subscription.
func (a *app) feed() {
	defer close(a.events)

	ticker := time.NewTicker(a.cfg.EventPeriod())
	defer ticker.Stop()

	seq := 0
	for {
		select {
		case t := <-ticker.C:
			seq++
			if seq%3 == 0 {
				// Blank events exercise the selector's skip path.
				a.events <- ""
				continue
			}
			a.events <- fmt.Sprintf("event #%d at %s", seq, t.Format("15:04:05"))
		case <-a.quit:
			return
		}
	}
}

// planForEvent maps a feed element to an overlay plan; blank events
// insert nothing.
func (a *app) planForEvent(ev string) *overlay.Plan {
	if ev == "" {
		return nil
	}
	p := overlay.NewPlan(true, func(overlay.Context) string {
		return a.toastStyle().Render(ev)
	})
	return &p
}

func (a *app) Init() tea.Cmd {
	return tickCmd()
}

func tickCmd() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (a *app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.help.Width = msg.Width
		a.stack.Resize(msg.Width, msg.Height)
		return a, nil

	case tickMsg:
		return a, tickCmd()

	case configReloadedMsg:
		a.cfg = msg.cfg
		a.stack.SetOptions(msg.cfg.Options())
		return a, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spin, cmd = a.spin.Update(msg)
		if a.working == nil {
			return a, nil
		}
		a.working.Update()
		return a, cmd

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

func (a *app) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		close(a.quit)
		return a, tea.Quit

	case key.Matches(msg, a.keys.Help):
		a.help.ShowAll = !a.help.ShowAll

	case key.Matches(msg, a.keys.Toast):
		a.popToast()

	case key.Matches(msg, a.keys.Modal):
		if a.modal != nil {
			a.modal.Remove()
			a.modal = nil
		} else {
			a.modal = a.reg.Insert(a.modalPlan(), nil, nil)
		}

	case key.Matches(msg, a.keys.Spinner):
		if a.working != nil {
			a.working.Remove()
			a.working = nil
		} else {
			plan := overlay.NewPlan(true, func(overlay.Context) string {
				return a.toastStyle().Render(a.spin.View() + " working")
			}).WithUpdatable()
			a.working = a.reg.Insert(plan, nil, nil)
			return a, a.spin.Tick
		}

	case key.Matches(msg, a.keys.Dump):
		if a.dump != nil {
			a.dump.Remove()
			a.dump = nil
		} else {
			a.dump = a.reg.Insert(a.dumpPlan(), nil, nil)
		}

	case key.Matches(msg, a.keys.Clear):
		for _, m := range a.reg.Overlays() {
			if m == a.modal || m == a.working || m == a.dump {
				continue
			}
			if m.Plan().Removable() {
				m.Remove()
			}
		}
	}

	return a, nil
}

// popToast inserts a toast and schedules its removal through the
// registry's one-shot helper.
func (a *app) popToast() {
	a.toastSeq++
	n := a.toastSeq

	plan := overlay.NewPlan(true, func(overlay.Context) string {
		return a.toastStyle().Render(
			fmt.Sprintf("toast #%d · session started %s", n, humanize.Time(a.startedAt)))
	})

	overlay.InsertThen(a.reg, plan, time.After(a.cfg.ToastTimeout()),
		func(m overlay.Model, _ time.Time) {
			m.Remove()
		})
}

// modalPlan builds a centered opaque dialog whose content is rendered
// from its own handle.
func (a *app) modalPlan() overlay.Plan {
	return overlay.NewBoundPlan(true, func(ctx overlay.Context, m overlay.Model) string {
		w, h := ctx.Size()
		p := m.Plan()
		body := fmt.Sprintf(
			"this dialog holds its own handle\n"+
				"remove=%t update=%t insert=%t\n\n"+
				"press m to dismiss",
			p.Removable(), p.Updatable(), p.Insertable())
		box := a.modalStyle().Render(body)
		return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, box)
	}).WithUpdatable().WithOpaque().WithFillSurface()
}

// dumpPlan renders a snapshot of the registry's tracked overlays.
func (a *app) dumpPlan() overlay.Plan {
	type row struct {
		Removable  bool `yaml:"removable"`
		Updatable  bool `yaml:"updatable"`
		Insertable bool `yaml:"insertable"`
	}

	return overlay.NewPlan(true, func(overlay.Context) string {
		overlays := a.reg.Overlays()
		rows := make([]row, 0, len(overlays))
		for _, m := range overlays {
			p := m.Plan()
			rows = append(rows, row{p.Removable(), p.Updatable(), p.Insertable()})
		}

		out, err := yaml.Marshal(rows)
		if err != nil {
			return a.modalStyle().Render("dump failed: " + err.Error())
		}
		return a.modalStyle().Render(fmt.Sprintf("tracked overlays: %d\n\n%s", len(rows), out))
	})
}

func (a *app) View() string {
	if a.width == 0 {
		return "starting..."
	}

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(a.cfg.Style.Accent)).
		Render("stackpane demo")

	body := fmt.Sprintf("tracked overlays: %d", a.reg.Len())

	base := lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		body,
		"",
		a.help.View(a.keys),
	)
	base = lipgloss.Place(a.width, a.height, lipgloss.Left, lipgloss.Top, base)

	return a.stack.Compose(base)
}

func (a *app) toastStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(borderFor(a.cfg.Style.Border)).
		BorderForeground(lipgloss.Color(a.cfg.Style.Accent)).
		Foreground(lipgloss.Color(a.cfg.Style.Foreground)).
		Padding(0, 1)
}

func (a *app) modalStyle() lipgloss.Style {
	return a.toastStyle().Padding(1, 3)
}

func borderFor(name string) lipgloss.Border {
	switch name {
	case "normal":
		return lipgloss.NormalBorder()
	case "thick":
		return lipgloss.ThickBorder()
	default:
		return lipgloss.RoundedBorder()
	}
}
