package board

import "fmt"

// Status is the column a task sits in.
type Status int

// Task status constants, in column order. Todo is the zero value so a new
// task starts in the first column.
const (
	Todo Status = iota
	InProgress
	Done
)

var statusNames = map[Status]string{
	Todo:       "To Do",
	InProgress: "In Progress",
	Done:       "Done",
}

// Statuses returns every status in column order.
func Statuses() []Status {
	return []Status{Todo, InProgress, Done}
}

// String returns the column title for s.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Forward returns the status one column to the right, if any.
func (s Status) Forward() (Status, bool) {
	switch s {
	case Todo:
		return InProgress, true
	case InProgress:
		return Done, true
	}
	return s, false
}

// Backward returns the status one column to the left, if any.
func (s Status) Backward() (Status, bool) {
	switch s {
	case InProgress:
		return Todo, true
	case Done:
		return InProgress, true
	}
	return s, false
}

// CanTransition reports whether a task may move from one status to another.
// Only moves between adjacent columns are legal; Todo and Done are never
// directly connected.
func CanTransition(from, to Status) bool {
	if next, ok := from.Forward(); ok && next == to {
		return true
	}
	if prev, ok := from.Backward(); ok && prev == to {
		return true
	}
	return false
}
