// Package editor provides a declarative text-editing component for Bubble
// Tea programs. Application state is the source of truth: a binding hands
// the editor its content, the editor reconciles that content into a
// terminal editing surface on every Update pass, and user edits flow back
// through the binding, debounced.
//
// An editor is constructed in exactly one content mode for its lifetime:
// New binds plain text, NewRich binds styled spans. The two entry points
// make a mixed construction unrepresentable rather than checked at
// runtime. In plain mode every reconciliation runs the styling pipeline
// (base color and font, then an optional caller transform); in rich mode
// the bound spans display verbatim because the caller owns styling.
//
// All state transitions happen on the program goroutine. The debounce
// timer is a tea.Tick command on the same loop, so nothing here needs a
// lock and a pending commit can never race surface access.
package editor

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"bindtext/styledtext"
	"bindtext/surface"
)

// Binding connects the editor to application-owned state.
type Binding[T any] struct {
	Get func() T
	Set func(T)
}

// Var returns a binding over a pointer, the common case for model fields.
func Var[T any](p *T) Binding[T] {
	return Binding[T]{
		Get: func() T { return *p },
		Set: func(v T) { *p = v },
	}
}

// Recorder receives editor lifecycle events (reconcile writes and skips,
// debounce scheduling and commits, edit session boundaries). A nil
// recorder is a no-op; recording must never reach the render path.
type Recorder interface {
	Record(event string, attrs map[string]string)
}

type contentMode int

const (
	modePlain contentMode = iota
	modeRich
)

// handle is the live pairing of one surface with one coordinator. Created
// on construction, destroyed by Close, owned exclusively by its Editor.
type handle struct {
	id    string
	surf  surface.Surface
	coord *coordinator
}

// Editor is the binding façade composing a surface adapter, the update
// reconciler, the styling pipeline, the placeholder overlay and the event
// coordinator.
type Editor struct {
	handle *handle
	cfg    surface.Config

	mode  contentMode
	plain Binding[string]
	rich  Binding[styledtext.Text]

	transform Transform
	overlay   placeholder
	debounce  time.Duration
	recorder  Recorder
}

// New creates a plain-text editor bound to application state.
func New(binding Binding[string], opts ...Option) *Editor {
	e := &Editor{
		mode:  modePlain,
		plain: binding,
		cfg:   surface.Default(),
	}
	return e.construct(opts)
}

// NewRich creates a rich-content editor. The bound spans display verbatim;
// the styling pipeline is bypassed entirely.
func NewRich(binding Binding[styledtext.Text], opts ...Option) *Editor {
	e := &Editor{
		mode: modeRich,
		rich: binding,
		cfg:  surface.Default(),
	}
	return e.construct(opts)
}

func (e *Editor) construct(opts []Option) *Editor {
	for _, o := range opts {
		o(e)
	}

	id := uuid.NewString()
	surf := surface.New(e.desiredContent(), e.cfg)
	coord := newCoordinator(id, e.debounce, e.commitSnapshot, e.record)
	surf.Subscribe(coord.hooks())

	e.handle = &handle{id: id, surf: surf, coord: coord}
	e.overlay.eval(surf.Content().Len(), e.cfg)
	return e
}

// OnAttributedTransform installs the pipeline's transform stage. The
// transform always receives already-base-styled content and may replace it
// in full; returning ok=false keeps the base-styled snapshot.
func (e *Editor) OnAttributedTransform(fn Transform) *Editor {
	e.transform = fn
	return e
}

// SetOptions applies further options; later options win over both earlier
// options and construction-time settings. The surface kind (single-line or
// area) is fixed at construction and cannot be changed here.
func (e *Editor) SetOptions(opts ...Option) {
	for _, o := range opts {
		o(e)
	}
	if e.handle != nil {
		e.handle.coord.delay = e.effectiveDebounce()
	}
}

// Init implements the component contract. The editor schedules no work
// until it is focused or updated.
func (e *Editor) Init() tea.Cmd {
	return nil
}

// Update is the declarative re-render point: it settles due debounce
// commits, reconciles bound state into the surface, and forwards the
// message to the surface for editing.
func (e *Editor) Update(msg tea.Msg) tea.Cmd {
	h := e.handle
	if h == nil {
		return nil
	}

	if cm, ok := msg.(commitMsg); ok {
		h.coord.handleCommit(cm)
		e.reconcile()
		return nil
	}

	e.reconcile()
	cmds := append([]tea.Cmd{h.surf.Update(msg)}, h.coord.takeCmds()...)
	return tea.Batch(cmds...)
}

// View renders the surface, or the placeholder overlay when the surface is
// empty and a placeholder is configured.
func (e *Editor) View() string {
	h := e.handle
	if h == nil {
		return ""
	}
	e.overlay.eval(h.surf.Content().Len(), e.cfg)
	if e.overlay.shown() {
		return e.overlay.render(e.cfg)
	}
	return h.surf.View()
}

// Focus begins an edit session; the coordinator commits immediately on the
// session boundary.
func (e *Editor) Focus() tea.Cmd {
	if e.handle == nil {
		return nil
	}
	return e.handle.surf.Focus()
}

// Blur ends the edit session with an immediate commit.
func (e *Editor) Blur() {
	if e.handle != nil {
		e.handle.surf.Blur()
	}
}

// Focused reports whether the surface has the edit session.
func (e *Editor) Focused() bool {
	return e.handle != nil && e.handle.surf.Focused()
}

// Content returns the currently displayed styled content.
func (e *Editor) Content() styledtext.Text {
	if e.handle == nil {
		return nil
	}
	return e.handle.surf.Content()
}

// Text returns the currently displayed raw text.
func (e *Editor) Text() string {
	return e.Content().String()
}

// Editable reports what the surface currently enforces.
func (e *Editor) Editable() bool {
	return e.handle != nil && e.handle.surf.Editable()
}

// Selection returns the surface's current selection ranges.
func (e *Editor) Selection() []styledtext.Range {
	if e.handle == nil {
		return nil
	}
	return e.handle.surf.Selection()
}

// SetSelection moves the surface selection directly.
func (e *Editor) SetSelection(ranges []styledtext.Range) {
	if e.handle != nil {
		e.handle.surf.SetSelection(ranges)
	}
}

// Close destroys the handle: any pending debounce window is cancelled
// without committing, so an unmounted editor never writes to dead state.
// The editor is inert afterwards.
func (e *Editor) Close() {
	if e.handle == nil {
		return
	}
	e.record("editor.close", nil)
	e.handle.coord.close()
	e.handle.surf.Reset()
	e.handle = nil
}

// commitSnapshot writes a surface snapshot into the bound state.
func (e *Editor) commitSnapshot(s surface.Snapshot) {
	if e.mode == modeRich {
		e.rich.Set(s.Content)
		return
	}
	e.plain.Set(s.Content.String())
}

func (e *Editor) effectiveDebounce() time.Duration {
	if e.debounce <= 0 {
		return DefaultDebounce
	}
	return e.debounce
}

// record forwards a lifecycle event to the recorder, tagging the handle.
func (e *Editor) record(event string, attrs map[string]string) {
	if e.recorder == nil {
		return
	}
	if e.handle != nil {
		if attrs == nil {
			attrs = map[string]string{}
		}
		attrs["handle"] = e.handle.id
	}
	e.recorder.Record(event, attrs)
}
