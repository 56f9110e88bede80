// Package selection implements the list cursor driven by the click-wheel.
package selection

// Listener is notified after the active index changes.
type Listener func(index int)

// Selection is a cursor over a list of count entries. The index always
// stays in [0, count); moving past either end wraps around.
type Selection struct {
	index    int
	count    int
	listener Listener
}

// New creates a selection over count entries, starting at the first one.
// listener may be nil.
func New(count int, listener Listener) *Selection {
	return &Selection{count: max(count, 0), listener: listener}
}

// NewAt creates a selection whose cursor starts at index (wrapped).
// The listener is not called for the initial position.
func NewAt(count, index int, listener Listener) *Selection {
	s := New(count, listener)
	if s.count > 0 {
		s.index = wrap(index, s.count)
	}
	return s
}

// Index returns the active index. It is 0 for an empty list.
func (s *Selection) Index() int {
	return s.index
}

// Count returns the number of entries.
func (s *Selection) Count() int {
	return s.count
}

// Select moves the cursor to newIndex, wrapped into range. It is a no-op on
// an empty list. The listener fires only when the index actually changes.
func (s *Selection) Select(newIndex int) {
	if s.count == 0 {
		return
	}
	newIndex = wrap(newIndex, s.count)
	if newIndex == s.index {
		return
	}
	s.index = newIndex
	if s.listener != nil {
		s.listener(s.index)
	}
}

// Next moves one entry forward.
func (s *Selection) Next() {
	s.Select(s.index + 1)
}

// Previous moves one entry back.
func (s *Selection) Previous() {
	s.Select(s.index - 1)
}

// Step moves by n entries; negative n moves back.
func (s *Selection) Step(n int) {
	s.Select(s.index + n)
}

func wrap(i, n int) int {
	return ((i % n) + n) % n
}
