package report

import (
	"math"
	"testing"

	"costar/internal/imdb"
)

var (
	actorA = imdb.ActorIdentity{Name: "Bill Murray", ID: "nmA"}
	actorB = imdb.ActorIdentity{Name: "Owen Wilson", ID: "nmB"}
)

func movieTitles(ids ...string) map[string]imdb.Title {
	titles := make(map[string]imdb.Title, len(ids))
	for _, id := range ids {
		titles[id] = imdb.Title{ID: id, Primary: "Movie " + id}
	}
	return titles
}

func TestBuildPartitionsDisjointSets(t *testing.T) {
	creditsA := imdb.NewTitleSet("tt1", "tt2")
	creditsB := imdb.NewTitleSet("tt3")
	titles := movieTitles("tt1", "tt2", "tt3")

	c := Build(actorA, actorB, creditsA, creditsB, titles, nil)

	if len(c.Together.Entries) != 0 {
		t.Errorf("disjoint sets produced a together group: %v", c.Together.Entries)
	}
	if len(c.AOnly.Entries) != 2 || len(c.BOnly.Entries) != 1 {
		t.Errorf("solo groups wrong: A=%d B=%d", len(c.AOnly.Entries), len(c.BOnly.Entries))
	}
}

func TestBuildPartitionHasNoOverlapOrOmission(t *testing.T) {
	creditsA := imdb.NewTitleSet("tt1", "tt2", "tt3")
	creditsB := imdb.NewTitleSet("tt2", "tt3", "tt4")
	titles := movieTitles("tt1", "tt2", "tt3", "tt4")

	c := Build(actorA, actorB, creditsA, creditsB, titles, nil)

	seen := map[string]int{}
	for _, g := range c.Groups() {
		for _, e := range g.Entries {
			seen[e.TitleID]++
		}
	}

	for _, id := range []string{"tt1", "tt2", "tt3", "tt4"} {
		if seen[id] != 1 {
			t.Errorf("title %s appears %d times across groups, want exactly 1", id, seen[id])
		}
	}
	if !hasTitle(c.Together, "tt2") || !hasTitle(c.Together, "tt3") {
		t.Errorf("shared titles missing from together group: %v", c.Together.Entries)
	}
	if hasTitle(c.AOnly, "tt2") || hasTitle(c.BOnly, "tt3") {
		t.Error("shared title leaked into a solo group")
	}
}

func hasTitle(g Group, id string) bool {
	for _, e := range g.Entries {
		if e.TitleID == id {
			return true
		}
	}
	return false
}

func TestBuildAverageIsArithmeticMean(t *testing.T) {
	creditsA := imdb.NewTitleSet("tt1", "tt2", "tt3")
	titles := movieTitles("tt1", "tt2", "tt3")
	ratings := map[string]imdb.Rating{
		"tt1": {Average: 7.0, Votes: 10},
		"tt2": {Average: 8.0, Votes: 20},
		"tt3": {Average: 9.0, Votes: 30},
	}

	c := Build(actorA, actorB, creditsA, imdb.NewTitleSet(), titles, ratings)

	if math.Abs(c.AOnly.Average-8.0) > 1e-9 {
		t.Errorf("average = %v, want exactly 8.0", c.AOnly.Average)
	}
	if c.AOnly.RatedCount != 3 {
		t.Errorf("rated count = %d, want 3", c.AOnly.RatedCount)
	}
}

func TestBuildUnratedTitlesExcludedFromAverage(t *testing.T) {
	creditsA := imdb.NewTitleSet("tt1", "tt2")
	titles := movieTitles("tt1", "tt2")
	ratings := map[string]imdb.Rating{"tt1": {Average: 6.0, Votes: 5}}

	c := Build(actorA, actorB, creditsA, imdb.NewTitleSet(), titles, ratings)

	if c.AOnly.Average != 6.0 || c.AOnly.RatedCount != 1 {
		t.Errorf("unrated title polluted the average: %+v", c.AOnly)
	}
	if len(c.AOnly.Entries) != 2 {
		t.Errorf("unrated title should still be listed: %v", c.AOnly.Entries)
	}
}

func TestBuildEmptyGroupHasNoAverage(t *testing.T) {
	c := Build(actorA, actorB, imdb.NewTitleSet(), imdb.NewTitleSet(), movieTitles(), nil)
	for _, g := range c.Groups() {
		if g.HasRated() {
			t.Errorf("group %s claims a rated average with no entries", g.Label)
		}
	}
}

func TestBuildDropsNonMovieCredits(t *testing.T) {
	// tt9 is in both credit sets but absent from the movie title mapping
	// (a TV episode, say); it must not surface anywhere.
	creditsA := imdb.NewTitleSet("tt1", "tt9")
	creditsB := imdb.NewTitleSet("tt9")
	titles := movieTitles("tt1")

	c := Build(actorA, actorB, creditsA, creditsB, titles, nil)

	for _, g := range c.Groups() {
		if hasTitle(g, "tt9") {
			t.Errorf("non-movie credit surfaced in group %s", g.Label)
		}
	}
	if !hasTitle(c.AOnly, "tt1") {
		t.Error("movie credit missing from solo group")
	}
}

func TestBuildScenarioFromFixtures(t *testing.T) {
	creditsA := imdb.NewTitleSet("ttTogether", "ttSolo")
	creditsB := imdb.NewTitleSet("ttTogether")
	titles := map[string]imdb.Title{
		"ttTogether": {ID: "ttTogether", Primary: "The Life Aquatic"},
		"ttSolo":     {ID: "ttSolo", Primary: "Larger than Life"},
	}
	ratings := map[string]imdb.Rating{
		"ttTogether": {Average: 7.5, Votes: 200000},
		"ttSolo":     {Average: 6.0, Votes: 25000},
	}

	c := Build(actorA, actorB, creditsA, creditsB, titles, ratings)

	if len(c.Together.Entries) != 1 || c.Together.Entries[0].TitleID != "ttTogether" || c.Together.Average != 7.5 {
		t.Errorf("together group wrong: %+v", c.Together)
	}
	if len(c.AOnly.Entries) != 1 || c.AOnly.Entries[0].TitleID != "ttSolo" || c.AOnly.Average != 6.0 {
		t.Errorf("actor A solo group wrong: %+v", c.AOnly)
	}
	if len(c.BOnly.Entries) != 0 || c.BOnly.HasRated() {
		t.Errorf("actor B solo group should be empty: %+v", c.BOnly)
	}
}

func TestGroupOrderingIsStable(t *testing.T) {
	creditsA := imdb.NewTitleSet("tt1", "tt2", "tt3", "tt4")
	titles := map[string]imdb.Title{
		"tt1": {ID: "tt1", Primary: "Zebra"},
		"tt2": {ID: "tt2", Primary: "Apple"},
		"tt3": {ID: "tt3", Primary: "Mango"},
		"tt4": {ID: "tt4", Primary: "Banana"},
	}
	ratings := map[string]imdb.Rating{
		"tt1": {Average: 7.0}, // tied with tt2: title breaks the tie
		"tt2": {Average: 7.0},
		"tt3": {Average: 9.0},
		// tt4 unrated: listed last
	}

	c := Build(actorA, actorB, creditsA, imdb.NewTitleSet(), titles, ratings)

	got := make([]string, 0, 4)
	for _, e := range c.AOnly.Entries {
		got = append(got, e.Title)
	}
	want := []string{"Mango", "Apple", "Zebra", "Banana"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ordering mismatch: got %v, want %v", got, want)
		}
	}
}
