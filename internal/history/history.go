package history

// DefaultCapacity is used when a non-positive capacity is requested.
const DefaultCapacity = 50

// Store is a bounded, ordered record of submitted lines with a browsing
// cursor for Up/Down navigation.
//
// Store is used from the engine's single polling goroutine and is not safe
// for concurrent use.
type Store struct {
	entries  []string
	capacity int

	// Browsing state. index ranges over [0, len(entries)]; len(entries)
	// means "past the newest entry", where the saved in-progress line
	// lives.
	browsing bool
	index    int
	saved    string
}

// NewStore creates a store holding at most capacity entries.
func NewStore(capacity int) *Store {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Store{capacity: capacity}
}

// Append records a submitted line. Empty lines and lines equal to the most
// recently appended entry are rejected. The oldest entry is evicted once the
// store exceeds its capacity.
func (s *Store) Append(line string) {
	if line == "" {
		return
	}
	if n := len(s.entries); n > 0 && s.entries[n-1] == line {
		return
	}

	s.entries = append(s.entries, line)
	if excess := len(s.entries) - s.capacity; excess > 0 {
		s.entries = s.entries[excess:]
	}
}

// Entries returns a copy of the stored lines, oldest first.
func (s *Store) Entries() []string {
	out := make([]string, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of stored lines.
func (s *Store) Len() int {
	return len(s.entries)
}

// Cap returns the configured capacity.
func (s *Store) Cap() int {
	return s.capacity
}

// SetCapacity changes the capacity, evicting oldest entries if the store is
// already larger.
func (s *Store) SetCapacity(capacity int) {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	s.capacity = capacity
	if excess := len(s.entries) - capacity; excess > 0 {
		s.entries = s.entries[excess:]
		if s.index > len(s.entries) {
			s.index = len(s.entries)
		}
	}
}

// Clear empties the store and exits browsing.
func (s *Store) Clear() {
	s.entries = nil
	s.ExitBrowsing()
}

// Browsing reports whether history navigation is active.
func (s *Store) Browsing() bool {
	return s.browsing
}

// EnterBrowsing starts history navigation, saving the in-progress line so it
// can be restored when navigation walks past the newest entry. Calling it
// while already browsing is a no-op.
func (s *Store) EnterBrowsing(current string) {
	if s.browsing {
		return
	}
	s.browsing = true
	s.saved = current
	s.index = len(s.entries)
}

// ExitBrowsing leaves history navigation without changing entries.
func (s *Store) ExitBrowsing() {
	s.browsing = false
	s.index = 0
	s.saved = ""
}

// Up moves toward older entries and returns the entry at the new position.
// At the oldest entry it stays put and reports false.
func (s *Store) Up() (string, bool) {
	if !s.browsing || s.index == 0 {
		return "", false
	}
	s.index--
	return s.entries[s.index], true
}

// Down moves toward newer entries. Walking past the newest entry returns the
// saved in-progress line and exits browsing.
func (s *Store) Down() (string, bool) {
	if !s.browsing {
		return "", false
	}
	if s.index < len(s.entries) {
		s.index++
	}
	if s.index == len(s.entries) {
		line := s.saved
		s.ExitBrowsing()
		return line, true
	}
	return s.entries[s.index], true
}
