package imdb

// BuildCredits scans title.principals once and collects, for every requested
// nconst, the set of titles where that person appears in an acting category.
// The pass is single regardless of how many identifiers are requested; every
// requested identifier gets an entry, possibly empty.
func BuildCredits(path string, ids []string) (map[string]TitleSet, error) {
	file, err := openTSV(path, "tconst", "nconst", "category")
	if err != nil {
		return nil, err
	}
	defer file.Close()

	credits := make(map[string]TitleSet, len(ids))
	for _, id := range ids {
		credits[id] = make(TitleSet)
	}

	row := make([]string, 3)
	for {
		ok, err := file.Next(row)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}

		if row[2] != "actor" && row[2] != "actress" {
			continue
		}
		if titles, ok := credits[row[1]]; ok {
			titles.Add(row[0])
		}
	}
	return credits, nil
}
