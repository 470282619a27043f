package report

import (
	"slices"
	"strings"

	"costar/internal/imdb"
)

// Label identifies a comparison group.
type Label string

const (
	LabelTogether   Label = "together"
	LabelActorAOnly Label = "actor_a_only"
	LabelActorBOnly Label = "actor_b_only"
)

// Entry is one movie in a group. Rated is false when the ratings dataset has
// no row for the title; such entries are listed but excluded from averages.
type Entry struct {
	TitleID string
	Title   string
	Rated   bool
	Rating  float64
	Votes   int
}

// Group is one of the three comparison groups with its rated average.
type Group struct {
	Label      Label
	Heading    string
	Entries    []Entry
	Average    float64
	RatedCount int
}

// HasRated reports whether the group's average is meaningful.
func (g Group) HasRated() bool {
	return g.RatedCount > 0
}

// Comparison is the full result for one actor pair.
type Comparison struct {
	ActorA   imdb.ActorIdentity
	ActorB   imdb.ActorIdentity
	Together Group
	AOnly    Group
	BOnly    Group
}

// Groups returns the three groups in display order.
func (c Comparison) Groups() []Group {
	return []Group{c.Together, c.AOnly, c.BOnly}
}

// Build partitions the two credit sets into together/solo groups, restricted
// to titles present in the movie-type title mapping, and computes each
// group's average over the ratings that exist.
func Build(actorA, actorB imdb.ActorIdentity, creditsA, creditsB imdb.TitleSet, titles map[string]imdb.Title, ratings map[string]imdb.Rating) Comparison {
	moviesA := restrictToMovies(creditsA, titles)
	moviesB := restrictToMovies(creditsB, titles)

	together := make(imdb.TitleSet)
	aOnly := make(imdb.TitleSet)
	for id := range moviesA {
		if moviesB.Has(id) {
			together.Add(id)
		} else {
			aOnly.Add(id)
		}
	}
	bOnly := make(imdb.TitleSet)
	for id := range moviesB {
		if !together.Has(id) {
			bOnly.Add(id)
		}
	}

	return Comparison{
		ActorA:   actorA,
		ActorB:   actorB,
		Together: buildGroup(LabelTogether, actorA.Name+" & "+actorB.Name, together, titles, ratings),
		AOnly:    buildGroup(LabelActorAOnly, actorA.Name+" only", aOnly, titles, ratings),
		BOnly:    buildGroup(LabelActorBOnly, actorB.Name+" only", bOnly, titles, ratings),
	}
}

func restrictToMovies(credits imdb.TitleSet, titles map[string]imdb.Title) imdb.TitleSet {
	out := make(imdb.TitleSet, len(credits))
	for id := range credits {
		if _, ok := titles[id]; ok {
			out.Add(id)
		}
	}
	return out
}

func buildGroup(label Label, heading string, ids imdb.TitleSet, titles map[string]imdb.Title, ratings map[string]imdb.Rating) Group {
	group := Group{
		Label:   label,
		Heading: heading,
		Entries: make([]Entry, 0, len(ids)),
	}

	var sum float64
	for id := range ids {
		entry := Entry{TitleID: id, Title: titles[id].Primary}
		if rating, ok := ratings[id]; ok {
			entry.Rated = true
			entry.Rating = rating.Average
			entry.Votes = rating.Votes
			sum += rating.Average
			group.RatedCount++
		}
		group.Entries = append(group.Entries, entry)
	}

	if group.RatedCount > 0 {
		group.Average = sum / float64(group.RatedCount)
	}

	// Rated entries first by descending rating; exact rating ties and all
	// unrated entries fall back to title order so the report is stable.
	slices.SortFunc(group.Entries, func(a, b Entry) int {
		switch {
		case a.Rated && !b.Rated:
			return -1
		case !a.Rated && b.Rated:
			return 1
		case a.Rated && b.Rated && a.Rating != b.Rating:
			if a.Rating > b.Rating {
				return -1
			}
			return 1
		}
		if c := strings.Compare(a.Title, b.Title); c != 0 {
			return c
		}
		return strings.Compare(a.TitleID, b.TitleID)
	})

	return group
}
