package editor

import (
	"strconv"

	"bindtext/styledtext"
)

// reconcile syncs bound state into the surface. It runs on every Update
// pass, the declarative re-render point of the component:
//
//  1. compose the desired content (pipeline in plain mode, the bound spans
//     verbatim in rich mode);
//  2. skip the content write when the surface already displays that value;
//     rewriting on every pass would reset the cursor on each keystroke's
//     own round trip;
//  3. otherwise write it, then restore the selection recorded at the last
//     commit, if any;
//  4. always re-apply the configuration; config writes are cheap and
//     idempotent.
//
// While the coordinator holds an uncommitted burst the content write is
// also skipped: the surface holds keystrokes the bound state does not know
// about yet, and writing the stale bound value would roll them back.
func (e *Editor) reconcile() {
	h := e.handle
	if h == nil {
		return
	}

	desired := e.desiredContent()
	displayed := h.surf.Content()

	switch {
	case desired.Equal(displayed):
		e.record("reconcile.skip", nil)
	case h.coord.pendingEdit():
		e.record("reconcile.defer", nil)
	default:
		h.surf.SetContent(desired)
		e.record("reconcile.write", map[string]string{"len": strconv.Itoa(desired.Len())})
		if sel := h.coord.recorded; len(sel) > 0 {
			h.surf.SetSelection(sel)
		}
	}

	h.surf.ApplyConfig(e.cfg)
	e.overlay.eval(h.surf.Content().Len(), e.cfg)
}

// desiredContent composes what the surface should display for the current
// bound value.
func (e *Editor) desiredContent() styledtext.Text {
	if e.mode == modeRich {
		return e.rich.Get()
	}
	return stylePlain(e.plain.Get(), e.cfg, e.transform)
}
