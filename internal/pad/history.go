package pad

import (
	"errors"
	"log"

	"MySketchPad/internal/state"
)

// History is a linear undo/redo stack of full-surface snapshots.
//
// cursor indexes the visible snapshot; -1 is the blank surface.
type History struct {
	mount     *mount
	snapshots []state.Snapshot
	cursor    int

	// Legacy keeps every snapshot on commit instead of dropping the ones
	// past the cursor. The cursor then advances by one regardless, which
	// can leave it pointing at an older snapshot than the newest stroke.
	Legacy bool

	// OnChange reports the undo/redo affordances after every change.
	OnChange func(canUndo, canRedo bool)
}

func newHistory(m *mount) *History {
	return &History{mount: m, cursor: -1}
}

func (h *History) Cursor() int { return h.cursor }

func (h *History) Len() int { return len(h.snapshots) }

// Empty reports whether nothing has been drawn since the last reset.
func (h *History) Empty() bool { return h.cursor == -1 }

func (h *History) CanUndo() bool { return h.cursor >= 0 }

func (h *History) CanRedo() bool { return h.cursor < len(h.snapshots)-1 }

// At returns the snapshot at index i.
func (h *History) At(i int) (state.Snapshot, bool) {
	if i < 0 || i >= len(h.snapshots) {
		return state.Snapshot{}, false
	}
	return h.snapshots[i], true
}

// Commit snapshots the surface and makes it the current entry.
func (h *History) Commit() {
	s, ok := h.mount.get()
	if !ok {
		return
	}
	snap, err := s.Snapshot()
	if err != nil {
		log.Printf("[HISTORY] Commit dropped: %v", err)
		return
	}
	if !h.Legacy {
		h.snapshots = h.snapshots[:h.cursor+1]
	}
	h.snapshots = append(h.snapshots, snap)
	h.cursor++
	log.Printf("[HISTORY] Committed %s (%d bytes), cursor %d/%d", snap.ID, snap.Len(), h.cursor, len(h.snapshots))
	h.notify()
}

// Undo steps the cursor back one entry and restores what it points at.
func (h *History) Undo() {
	if h.cursor < 0 {
		return
	}
	s, ok := h.mount.get()
	if !ok {
		return
	}
	h.cursor--
	h.show(s)
}

// Redo steps the cursor forward one entry.
func (h *History) Redo() {
	if h.cursor >= len(h.snapshots)-1 {
		return
	}
	s, ok := h.mount.get()
	if !ok {
		return
	}
	h.cursor++
	h.show(s)
}

// Reset forgets every snapshot. It does not touch the surface.
func (h *History) Reset() {
	h.snapshots = nil
	h.cursor = -1
	h.notify()
}

func (h *History) show(s Surface) {
	defer h.notify()
	if h.cursor == -1 {
		s.Clear()
		return
	}
	i := h.cursor
	s.Restore(h.snapshots[i], func(err error) {
		if err != nil && !errors.Is(err, ErrStaleRestore) {
			log.Printf("[HISTORY] Restore of entry %d failed: %v", i, err)
		}
	})
}

func (h *History) notify() {
	if h.OnChange != nil {
		h.OnChange(h.CanUndo(), h.CanRedo())
	}
}
