package imdb

import (
	"errors"
	"path/filepath"
	"testing"

	"costar/internal/datasets"
	"costar/internal/testsupport"
)

var nameHeader = []string{"nconst", "primaryName", "birthYear", "deathYear", "primaryProfession", "knownForTitles"}

func writeNames(t *testing.T, rows [][]string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "name.basics.tsv")
	testsupport.WriteTSV(t, path, nameHeader, rows)
	return path
}

func TestResolveActors(t *testing.T) {
	path := writeNames(t, [][]string{
		{"nm1", "Bill Murray", "1950", `\N`, "actor,writer", "tt1"},
		{"nm2", "Owen Wilson", "1968", `\N`, "actor,producer", "tt2"},
	})

	resolved, err := ResolveActors(path, []string{"Bill Murray", "Owen Wilson"})
	if err != nil {
		t.Fatalf("ResolveActors failed: %v", err)
	}
	if resolved["Bill Murray"].ID != "nm1" {
		t.Errorf("Bill Murray resolved to %q", resolved["Bill Murray"].ID)
	}
	if resolved["Owen Wilson"].ID != "nm2" {
		t.Errorf("Owen Wilson resolved to %q", resolved["Owen Wilson"].ID)
	}
}

func TestResolveActorsFirstMatchWins(t *testing.T) {
	// Two people share the name and both act: the first row in file order
	// wins. This pins the documented limitation rather than fixing it.
	path := writeNames(t, [][]string{
		{"nm10", "Pat Smith", `\N`, `\N`, "actor", `\N`},
		{"nm11", "Pat Smith", `\N`, `\N`, "actress", `\N`},
	})

	resolved, err := ResolveActors(path, []string{"Pat Smith"})
	if err != nil {
		t.Fatalf("ResolveActors failed: %v", err)
	}
	if resolved["Pat Smith"].ID != "nm10" {
		t.Errorf("expected first match nm10, got %q", resolved["Pat Smith"].ID)
	}
}

func TestResolveActorsPrefersActingProfession(t *testing.T) {
	// A non-acting namesake earlier in the file must not shadow the actor.
	path := writeNames(t, [][]string{
		{"nm20", "Sam Jones", `\N`, `\N`, "cinematographer", `\N`},
		{"nm21", "Sam Jones", `\N`, `\N`, "actor,director", `\N`},
	})

	resolved, err := ResolveActors(path, []string{"Sam Jones"})
	if err != nil {
		t.Fatalf("ResolveActors failed: %v", err)
	}
	if resolved["Sam Jones"].ID != "nm21" {
		t.Errorf("expected acting match nm21, got %q", resolved["Sam Jones"].ID)
	}
}

func TestResolveActorsFallsBackToNonActingMatch(t *testing.T) {
	path := writeNames(t, [][]string{
		{"nm30", "Doc Holiday", `\N`, `\N`, "director", `\N`},
	})

	resolved, err := ResolveActors(path, []string{"Doc Holiday"})
	if err != nil {
		t.Fatalf("ResolveActors failed: %v", err)
	}
	if resolved["Doc Holiday"].ID != "nm30" {
		t.Errorf("expected fallback nm30, got %q", resolved["Doc Holiday"].ID)
	}
}

func TestResolveActorsIsCaseSensitive(t *testing.T) {
	path := writeNames(t, [][]string{
		{"nm40", "bill murray", `\N`, `\N`, "actor", `\N`},
	})

	_, err := ResolveActors(path, []string{"Bill Murray"})
	if !errors.Is(err, datasets.ErrNotFound) {
		t.Errorf("expected ErrNotFound for case mismatch, got %v", err)
	}
}

func TestResolveActorsNotFound(t *testing.T) {
	path := writeNames(t, [][]string{
		{"nm1", "Bill Murray", "1950", `\N`, "actor", `\N`},
	})

	_, err := ResolveActors(path, []string{"Bill Murray", "Nobody Anywhere"})
	if !errors.Is(err, datasets.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if got := err.Error(); got != "not found: resolve: could not resolve actor: Nobody Anywhere" {
		t.Errorf("unexpected message: %q", got)
	}
}
