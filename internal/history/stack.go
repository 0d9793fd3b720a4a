package history

// Stack is a fixed-capacity LIFO. Pushing onto a full stack evicts the
// oldest entry.
type Stack struct {
	items []Entry
	head  int // index of the next free slot
	size  int
}

// NewStack creates a stack holding at most capacity entries.
func NewStack(capacity int) *Stack {
	if capacity <= 0 {
		capacity = DefaultMaxHistory
	}
	return &Stack{items: make([]Entry, capacity)}
}

// Cap returns the maximum number of entries.
func (s *Stack) Cap() int { return len(s.items) }

// Len returns the number of stored entries.
func (s *Stack) Len() int { return s.size }

// Push adds e on top. It reports whether an old entry was evicted.
func (s *Stack) Push(e Entry) (evicted bool) {
	s.items[s.head] = e
	s.head = (s.head + 1) % len(s.items)
	if s.size == len(s.items) {
		return true
	}
	s.size++
	return false
}

// Peek returns the top entry without removing it.
func (s *Stack) Peek() (Entry, bool) {
	if s.size == 0 {
		return Entry{}, false
	}
	return s.items[s.topIndex()], true
}

// Pop removes and returns the top entry.
func (s *Stack) Pop() (Entry, bool) {
	if s.size == 0 {
		return Entry{}, false
	}
	i := s.topIndex()
	e := s.items[i]
	s.items[i] = Entry{}
	s.head = i
	s.size--
	return e, true
}

// Clear drops every entry, keeping the allocation.
func (s *Stack) Clear() {
	if s.size == 0 {
		return
	}
	for i := range s.items {
		s.items[i] = Entry{}
	}
	s.head = 0
	s.size = 0
}

func (s *Stack) topIndex() int {
	return (s.head - 1 + len(s.items)) % len(s.items)
}
