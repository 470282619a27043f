package imdb

import (
	"strconv"
)

// LoadRatings scans title.ratings once and returns ratings for the titles in
// want. Titles without a rating row simply stay absent from the result; a
// missing rating is "no rating available", never zero.
func LoadRatings(path string, want TitleSet) (map[string]Rating, error) {
	file, err := openTSV(path, "tconst", "averageRating", "numVotes")
	if err != nil {
		return nil, err
	}
	defer file.Close()

	ratings := make(map[string]Rating, want.Len())
	row := make([]string, 3)
	for {
		ok, err := file.Next(row)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		if !want.Has(row[0]) {
			continue
		}
		if row[1] == nullField {
			continue
		}

		average, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			return nil, file.rowError("averageRating " + strconv.Quote(row[1]) + " is not numeric")
		}
		votes := 0
		if row[2] != nullField {
			votes, err = strconv.Atoi(row[2])
			if err != nil {
				return nil, file.rowError("numVotes " + strconv.Quote(row[2]) + " is not numeric")
			}
		}
		ratings[row[0]] = Rating{Average: average, Votes: votes}
	}
	return ratings, nil
}
