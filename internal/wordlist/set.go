package wordlist

// Set is an insertion-ordered collection of unique strings.
type Set struct {
	items []string
	index map[string]struct{}
}

func NewSet(sizeHint int) *Set {
	return &Set{
		items: make([]string, 0, sizeHint),
		index: make(map[string]struct{}, sizeHint),
	}
}

// Add inserts v unless it is already present and reports whether it was new.
func (s *Set) Add(v string) bool {
	if _, ok := s.index[v]; ok {
		return false
	}
	s.index[v] = struct{}{}
	s.items = append(s.items, v)
	return true
}

func (s *Set) AddAll(vs ...string) {
	for _, v := range vs {
		s.Add(v)
	}
}

func (s *Set) Contains(v string) bool {
	_, ok := s.index[v]
	return ok
}

func (s *Set) Len() int { return len(s.items) }

// Items returns the members in insertion order. The slice is shared with the
// set; callers take ownership and must not Add afterwards.
func (s *Set) Items() []string { return s.items }
