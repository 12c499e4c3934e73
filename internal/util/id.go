package util

import "fmt"

// Sequence hands out monotonically increasing integer identifiers starting at 0.
// Identifiers are never reused, even after the item they named is gone.
// The zero value is ready to use.
type Sequence struct {
	next int
}

// Next returns the next identifier and advances the sequence.
func (s *Sequence) Next() int {
	id := s.next
	s.next++
	return id
}

// Peek returns the identifier the next call to Next will return.
func (s *Sequence) Peek() int {
	return s.next
}

// FormatTaskID returns the display label for an identifier, e.g. #0, #12.
func FormatTaskID(id int) string {
	return fmt.Sprintf("#%d", id)
}
