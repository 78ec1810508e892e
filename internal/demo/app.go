// Package demo hosts the interactive showcase for the bindtext editor: a
// single-line title field and a multi-line note area bound to app state,
// with an activity panel streaming the editors' lifecycle events.
package demo

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"bindtext/editor"
	"bindtext/internal/activity"
)

type focusTarget int

const (
	focusTitle focusTarget = iota
	focusNote
)

// Note is the application state both editors bind into.
type Note struct {
	Title string
	Body  string
}

// App is the root Bubble Tea model.
type App struct {
	cfg  Config
	note Note

	title *editor.Editor
	body  *editor.Editor
	focus focusTarget

	log  *activity.Log
	quit bool
}

var _ tea.Model = (*App)(nil)

// NewApp builds the demo model from a resolved configuration.
func NewApp(cfg Config) *App {
	a := &App{cfg: cfg, log: activity.NewLog(cfg.MaxEvents)}

	a.title = editor.New(editor.Var(&a.note.Title),
		editor.WithSingleLine(),
		editor.WithPlaceholder("Untitled"),
		editor.WithSize(cfg.Width, 1),
		editor.WithInsetPadding(0),
		editor.WithDarkBackground(cfg.Dark),
		editor.WithDebounce(cfg.Debounce()),
		editor.WithRecorder(a.log),
	)
	a.body = editor.New(editor.Var(&a.note.Body),
		editor.WithPlaceholder(cfg.Placeholder),
		editor.WithSize(cfg.Width, cfg.Height),
		editor.WithDarkBackground(cfg.Dark),
		editor.WithDebounce(cfg.Debounce()),
		editor.WithRecorder(a.log),
	).OnAttributedTransform(Highlight)

	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	a.focus = focusTitle
	return a.title.Focus()
}

// Update implements tea.Model. Tab cycles focus between the editors; every
// other message reaches both so each editor can settle its own commits.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			a.title.Close()
			a.body.Close()
			a.quit = true
			return a, tea.Quit
		case "tab":
			return a, a.cycleFocus()
		}
	case tea.WindowSizeMsg:
		a.resize(msg.Width)
	}

	cmds := []tea.Cmd{a.title.Update(msg), a.body.Update(msg)}
	return a, tea.Batch(cmds...)
}

// View implements tea.Model.
func (a *App) View() string {
	if a.quit {
		return ""
	}

	titleBox := a.panel("Title", a.title.View(), a.focus == focusTitle)
	bodyBox := a.panel("Note", a.body.View(), a.focus == focusNote)
	left := lipgloss.JoinVertical(lipgloss.Left, titleBox, bodyBox)

	activityBox := a.panel("Activity", a.renderActivity(), false)
	main := lipgloss.JoinHorizontal(lipgloss.Top, left, activityBox)

	hint := Styles.Hint.Render("tab: switch field  -  ctrl+c: quit")
	return lipgloss.JoinVertical(lipgloss.Left, main, hint)
}

func (a *App) panel(title, body string, focused bool) string {
	box := Styles.Box
	if focused {
		box = Styles.BoxHot
	}
	return box.Render(lipgloss.JoinVertical(lipgloss.Left,
		Styles.Title.Render(title), body))
}

// renderActivity shows the newest events last, trimmed to the note height.
func (a *App) renderActivity() string {
	events := a.log.Events()
	max := a.cfg.Height + 2
	if len(events) > max {
		events = events[len(events)-max:]
	}
	if len(events) == 0 {
		return Styles.Muted.Render("no activity yet")
	}

	var b strings.Builder
	for i, e := range events {
		if i > 0 {
			b.WriteString("\n")
		}
		line := e.Name
		if h := e.Attributes["handle"]; h != "" && len(h) >= 8 {
			line = fmt.Sprintf("%s %s", h[:8], e.Name)
		}
		b.WriteString(Styles.Muted.Render(line))
	}
	return b.String()
}

func (a *App) cycleFocus() tea.Cmd {
	switch a.focus {
	case focusTitle:
		a.title.Blur()
		a.focus = focusNote
		return a.body.Focus()
	default:
		a.body.Blur()
		a.focus = focusTitle
		return a.title.Focus()
	}
}

// resize spreads the terminal width across the editor and activity columns.
func (a *App) resize(width int) {
	w := width/2 - 4
	if w < 20 {
		w = 20
	}
	a.title.SetOptions(editor.WithSize(w, 1))
	a.body.SetOptions(editor.WithSize(w, a.cfg.Height))
}

// Current returns the bound note state.
func (a *App) Current() Note {
	return a.note
}
