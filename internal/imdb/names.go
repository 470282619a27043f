package imdb

import (
	"strings"

	"costar/internal/datasets"
)

type nameCandidate struct {
	first  string
	acting string
}

// ResolveActors scans name.basics once and maps each requested display name
// to its nconst. Matching is exact and case-sensitive. When several rows
// share a name, a row whose primaryProfession includes acting is preferred;
// otherwise the first row in file order wins. Two people sharing both name
// and profession still collapse to the first row, a known limitation of
// name-based resolution.
func ResolveActors(path string, names []string) (map[string]ActorIdentity, error) {
	file, err := openTSV(path, "nconst", "primaryName", "primaryProfession")
	if err != nil {
		return nil, err
	}
	defer file.Close()

	wanted := make(map[string]*nameCandidate, len(names))
	for _, name := range names {
		wanted[name] = &nameCandidate{}
	}

	actingResolved := 0
	row := make([]string, 3)
	for {
		ok, err := file.Next(row)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}

		candidate, ok := wanted[row[1]]
		if !ok {
			continue
		}
		if candidate.first == "" {
			candidate.first = row[0]
		}
		if candidate.acting == "" && hasActingProfession(row[2]) {
			candidate.acting = row[0]
			actingResolved++
			if actingResolved == len(wanted) {
				break
			}
		}
	}

	resolved := make(map[string]ActorIdentity, len(names))
	for _, name := range names {
		candidate := wanted[name]
		id := candidate.acting
		if id == "" {
			id = candidate.first
		}
		if id == "" {
			return nil, datasets.Wrap(datasets.ErrNotFound, "resolve", "", "could not resolve actor: "+name, nil)
		}
		resolved[name] = ActorIdentity{Name: name, ID: id}
	}
	return resolved, nil
}

func hasActingProfession(professions string) bool {
	if professions == "" || professions == nullField {
		return false
	}
	for _, profession := range strings.Split(professions, ",") {
		switch strings.TrimSpace(profession) {
		case "actor", "actress":
			return true
		}
	}
	return false
}
