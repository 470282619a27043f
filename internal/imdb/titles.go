package imdb

// LoadMovieTitles scans title.basics once and returns display metadata for
// the titles in want whose titleType is "movie". Shorts, TV episodes, and
// every other type are dropped here, so non-movie credits never reach the
// comparison.
func LoadMovieTitles(path string, want TitleSet) (map[string]Title, error) {
	file, err := openTSV(path, "tconst", "titleType", "primaryTitle")
	if err != nil {
		return nil, err
	}
	defer file.Close()

	titles := make(map[string]Title, want.Len())
	row := make([]string, 3)
	for {
		ok, err := file.Next(row)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		if row[1] != "movie" || !want.Has(row[0]) {
			continue
		}
		titles[row[0]] = Title{ID: row[0], Primary: row[2]}
	}
	return titles, nil
}
