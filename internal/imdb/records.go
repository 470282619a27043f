package imdb

// ActorIdentity pairs a display name with its resolved nconst identifier.
type ActorIdentity struct {
	Name string
	ID   string
}

// Rating holds the aggregate rating for one title.
type Rating struct {
	Average float64
	Votes   int
}

// Title holds display metadata for one movie-type title.
type Title struct {
	ID      string
	Primary string
}

// TitleSet is a set of tconst identifiers.
type TitleSet map[string]struct{}

// NewTitleSet builds a set from the given identifiers.
func NewTitleSet(ids ...string) TitleSet {
	s := make(TitleSet, len(ids))
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

func (s TitleSet) Add(id string) {
	s[id] = struct{}{}
}

func (s TitleSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

func (s TitleSet) Len() int {
	return len(s)
}

// Union returns a new set containing every identifier from both sets.
func Union(a, b TitleSet) TitleSet {
	out := make(TitleSet, len(a)+len(b))
	for id := range a {
		out.Add(id)
	}
	for id := range b {
		out.Add(id)
	}
	return out
}
