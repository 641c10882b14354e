// Package edit implements an undo/redo history whose consecutive edits may
// be coalesced into a single undo step.
package edit

// Desc is the human-readable name of an edit, e.g. "Move".
type Desc string

func (d Desc) String() string {
	return string(d)
}

// Kind says whether an edit may absorb the edit that follows it.
type Kind int

const (
	// NonMergeable edits always start a new undo step.
	NonMergeable Kind = iota
	// Mergeable edits are in progress; the next compatible edit replaces
	// them within the same undo step.
	Mergeable
)

func (k Kind) String() string {
	if k == Mergeable {
		return "Mergeable"
	}
	return "NonMergeable"
}

// Cloner is implemented by documents the history can snapshot.
// Clone must be cheap; the history calls it before every new undo step.
type Cloner[T any] interface {
	Clone() T
}

// Edit is a command that mutates a document of type T.
//
// Merge is called on the previous edit with the next one. When the two
// can be combined it returns the edit equivalent to applying both to the
// state before the previous one.
type Edit[T any, E any] interface {
	Apply(data *T)
	Description() Desc
	Merge(next E) (E, bool)
}

type undoState[T any, E any] struct {
	old  T
	kind Kind
	edit E
}

// History records applied edits with the document state preceding each.
// The zero value is ready to use and unlimited.
type History[T Cloner[T], E Edit[T, E]] struct {
	undos []undoState[T, E]
	redos []E
	limit int
}

// New returns an empty history.
func New[T Cloner[T], E Edit[T, E]]() *History[T, E] {
	return &History[T, E]{}
}

// SetLimit caps the number of undo steps kept. Zero or less keeps all of
// them. The oldest steps are dropped first.
func (h *History[T, E]) SetLimit(n int) {
	h.limit = n
	h.trim()
}

// Edit applies e to data and records it.
//
// If the newest undo step is Mergeable and its edit merges with e, the
// step keeps its snapshot but takes over the merged edit and kind, and
// data is not cloned. Otherwise e starts a new step. The redo stack is
// cleared in both cases. Merge must not depend on data.
func (h *History[T, E]) Edit(data *T, e E, kind Kind) {
	h.redos = nil

	if n := len(h.undos); n > 0 {
		last := &h.undos[n-1]
		if last.kind == Mergeable {
			if merged, ok := last.edit.Merge(e); ok {
				e.Apply(data)
				last.edit = merged
				last.kind = kind
				return
			}
		}
	}

	old := (*data).Clone()
	e.Apply(data)
	h.undos = append(h.undos, undoState[T, E]{old: old, kind: kind, edit: e})
	h.trim()
}

// Undo restores the state before the newest undo step and returns its
// description. It returns false when there is nothing to undo.
func (h *History[T, E]) Undo(data *T) (Desc, bool) {
	n := len(h.undos)
	if n == 0 {
		return "", false
	}
	st := h.undos[n-1]
	h.undos = h.undos[:n-1]

	*data = st.old
	h.redos = append(h.redos, st.edit)
	return st.edit.Description(), true
}

// Redo re-applies the most recently undone edit as a NonMergeable step.
// It returns false when there is nothing to redo.
func (h *History[T, E]) Redo(data *T) (Desc, bool) {
	n := len(h.redos)
	if n == 0 {
		return "", false
	}
	e := h.redos[n-1]
	h.redos = h.redos[:n-1]

	old := (*data).Clone()
	e.Apply(data)
	h.undos = append(h.undos, undoState[T, E]{old: old, kind: NonMergeable, edit: e})
	h.trim()
	return e.Description(), true
}

// Commit closes the newest undo step so the next edit starts a new one.
func (h *History[T, E]) Commit() {
	if n := len(h.undos); n > 0 {
		h.undos[n-1].kind = NonMergeable
	}
}

// Len returns the number of undo steps.
func (h *History[T, E]) Len() int {
	return len(h.undos)
}

// CanUndo reports whether Undo would succeed.
func (h *History[T, E]) CanUndo() bool {
	return len(h.undos) > 0
}

// CanRedo reports whether Redo would succeed.
func (h *History[T, E]) CanRedo() bool {
	return len(h.redos) > 0
}

// UndoDesc returns the description of the step Undo would revert.
func (h *History[T, E]) UndoDesc() (Desc, bool) {
	if len(h.undos) == 0 {
		return "", false
	}
	return h.undos[len(h.undos)-1].edit.Description(), true
}

// RedoDesc returns the description of the edit Redo would apply.
func (h *History[T, E]) RedoDesc() (Desc, bool) {
	if len(h.redos) == 0 {
		return "", false
	}
	return h.redos[len(h.redos)-1].Description(), true
}

// Clear forgets every step.
func (h *History[T, E]) Clear() {
	h.undos = nil
	h.redos = nil
}

func (h *History[T, E]) trim() {
	if h.limit <= 0 || len(h.undos) <= h.limit {
		return
	}
	drop := len(h.undos) - h.limit
	h.undos = append(h.undos[:0], h.undos[drop:]...)
}
