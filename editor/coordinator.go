package editor

import (
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"bindtext/styledtext"
	"bindtext/surface"
)

// DefaultDebounce is the delay between the last keystroke of a burst and
// the commit of its payload to bound state.
const DefaultDebounce = 100 * time.Millisecond

type coordinatorState int

const (
	stateIdle coordinatorState = iota
	statePendingDebounce
)

// commitMsg is delivered on the run loop when a debounce window closes.
// A stale seq means the window was superseded or cancelled.
type commitMsg struct {
	handle string
	seq    int
}

// coordinator subscribes to surface edit events and writes them back into
// bound state. Per-keystroke changes are debounced; begin/end edit events
// commit immediately. Everything runs on the program's event loop: the
// "timer" is a tea.Tick command, so a commit never races surface access.
type coordinator struct {
	handle string
	delay  time.Duration
	state  coordinatorState
	seq    int

	pending  surface.Snapshot
	recorded []styledtext.Range // selection as of the last commit

	commit func(surface.Snapshot)
	record recordFunc

	cmds   []tea.Cmd
	closed bool
}

type recordFunc func(event string, attrs map[string]string)

func newCoordinator(handle string, delay time.Duration, commit func(surface.Snapshot), record recordFunc) *coordinator {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	if record == nil {
		record = func(string, map[string]string) {}
	}
	return &coordinator{
		handle: handle,
		delay:  delay,
		commit: commit,
		record: record,
	}
}

// hooks returns the surface subscriptions feeding this coordinator.
func (c *coordinator) hooks() surface.Hooks {
	return surface.Hooks{
		OnBeginEdit: c.onBeginEdit,
		OnChange:    c.onChange,
		OnEndEdit:   c.onEndEdit,
	}
}

// onChange supersedes any pending window and opens a new one holding the
// latest snapshot. Only the newest seq survives to commit.
func (c *coordinator) onChange(s surface.Snapshot) {
	if c.closed {
		return
	}
	c.seq++
	c.pending = s
	c.state = statePendingDebounce
	seq := c.seq
	c.record("debounce.schedule", map[string]string{"seq": strconv.Itoa(seq)})
	c.cmds = append(c.cmds, tea.Tick(c.delay, func(time.Time) tea.Msg {
		return commitMsg{handle: c.handle, seq: seq}
	}))
}

// onBeginEdit commits immediately; edit-session boundaries are low
// frequency and must not lag behind the debounce window.
func (c *coordinator) onBeginEdit(s surface.Snapshot) {
	c.record("edit.begin", nil)
	c.commitNow(s)
}

func (c *coordinator) onEndEdit(s surface.Snapshot) {
	c.record("edit.end", nil)
	c.commitNow(s)
}

// handleCommit processes a debounce expiry delivered by the run loop.
// Returns true if a commit happened.
func (c *coordinator) handleCommit(msg commitMsg) bool {
	if c.closed || msg.handle != c.handle {
		return false
	}
	if c.state != statePendingDebounce || msg.seq != c.seq {
		return false // superseded or cancelled
	}
	c.commitNow(c.pending)
	return true
}

// commitNow writes the snapshot to bound state, records the selection for
// reconciler restores, and settles any pending window.
func (c *coordinator) commitNow(s surface.Snapshot) {
	if c.closed {
		return
	}
	c.seq++ // invalidate any in-flight window
	c.state = stateIdle
	c.pending = surface.Snapshot{}
	c.recorded = s.Selection
	c.record("debounce.commit", map[string]string{"len": strconv.Itoa(s.Content.Len())})
	c.commit(s)
}

// pendingEdit reports whether an uncommitted edit burst is in flight.
func (c *coordinator) pendingEdit() bool {
	return c.state == statePendingDebounce
}

// takeCmds drains commands queued by event hooks.
func (c *coordinator) takeCmds() []tea.Cmd {
	cmds := c.cmds
	c.cmds = nil
	return cmds
}

// close cancels any pending window without committing; the bound state may
// already be gone.
func (c *coordinator) close() {
	c.closed = true
	c.seq++
	c.state = stateIdle
	c.pending = surface.Snapshot{}
	c.cmds = nil
}
