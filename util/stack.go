package util

// Stack remembers the TUI states to return to when a dialog is dismissed.
type Stack[T any] []T

func (s *Stack[T]) Push(item T) { *s = append(*s, item) }

// Pop returns the most recent item, or the zero value on an empty stack.
func (s *Stack[T]) Pop() T {
	var top T
	if n := len(*s); n > 0 {
		top = (*s)[n-1]
		*s = (*s)[:n-1]
	}
	return top
}

// Peek is Pop without removing the item.
func (s Stack[T]) Peek() (T, bool) {
	if len(s) == 0 {
		var zero T
		return zero, false
	}
	return s[len(s)-1], true
}

func (s Stack[T]) Len() int { return len(s) }
