package board

import "fmt"

// Action is a mutation requested while the board is being drawn.
// The only implementations are Delete and ChangeStatus.
type Action interface {
	fmt.Stringer
	action()
}

// Delete requests removal of a task.
type Delete struct {
	ID int
}

// ChangeStatus requests a task be moved to another column.
type ChangeStatus struct {
	ID int
	To Status
}

func (Delete) action()       {}
func (ChangeStatus) action() {}

func (a Delete) String() string {
	return fmt.Sprintf("delete(%d)", a.ID)
}

func (a ChangeStatus) String() string {
	return fmt.Sprintf("change_status(%d, %s)", a.ID, a.To)
}

// Buffer collects actions during a render pass. The zero value is an empty buffer.
type Buffer struct {
	actions []Action
}

// Push records an action. Actions are applied in the order they were pushed.
func (b *Buffer) Push(a Action) {
	b.actions = append(b.actions, a)
}

// Len returns the number of pending actions.
func (b *Buffer) Len() int {
	return len(b.actions)
}

// Actions returns a copy of the pending actions.
func (b *Buffer) Actions() []Action {
	out := make([]Action, len(b.actions))
	copy(out, b.actions)
	return out
}

// Reset discards all pending actions.
func (b *Buffer) Reset() {
	clear(b.actions)
	b.actions = b.actions[:0]
}

// Result summarizes one reconciliation.
type Result struct {
	Applied int
	Skipped int
}

// Changed reports whether any action modified the store.
func (r Result) Changed() bool {
	return r.Applied > 0
}

// Reconcile applies the buffered actions to the store in recorded order and
// empties the buffer. When two actions target the same task the earlier one
// wins: a status change for a task deleted earlier in the batch finds nothing
// and is skipped.
func Reconcile(store *Store, buf *Buffer) Result {
	var res Result
	for _, a := range buf.actions {
		var ok bool
		switch a := a.(type) {
		case Delete:
			ok = store.Delete(a.ID)
		case ChangeStatus:
			ok = store.SetStatus(a.ID, a.To)
		}
		if ok {
			res.Applied++
		} else {
			res.Skipped++
		}
	}
	buf.Reset()
	return res
}
