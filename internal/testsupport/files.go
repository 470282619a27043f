package testsupport

import (
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteTSV writes a tab-separated file with a header row.
func WriteTSV(t testing.TB, path string, header []string, rows [][]string) {
	t.Helper()

	var sb strings.Builder
	sb.WriteString(strings.Join(header, "\t"))
	sb.WriteByte('\n')
	for _, row := range rows {
		sb.WriteString(strings.Join(row, "\t"))
		sb.WriteByte('\n')
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("create fixture directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		t.Fatalf("write fixture %s: %v", path, err)
	}
}

// GzipTSV returns the gzipped bytes of a TSV with the given header and rows,
// for serving from test HTTP servers.
func GzipTSV(t testing.TB, header []string, rows [][]string) []byte {
	t.Helper()

	var sb strings.Builder
	sb.WriteString(strings.Join(header, "\t"))
	sb.WriteByte('\n')
	for _, row := range rows {
		sb.WriteString(strings.Join(row, "\t"))
		sb.WriteByte('\n')
	}

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if _, err := gz.Write([]byte(sb.String())); err != nil {
		t.Fatalf("gzip fixture: %v", err)
	}
	if err := gz.Close(); err != nil {
		t.Fatalf("close gzip fixture: %v", err)
	}
	return buf.Bytes()
}

// WriteDatasetFixtures seeds a data directory with decompressed copies of all
// four datasets describing two actors: they co-star in one well-rated movie,
// the first also has a lower-rated solo movie, and a TV episode credit that
// must never surface in a report.
func WriteDatasetFixtures(t testing.TB, dataDir string) {
	t.Helper()

	WriteTSV(t, filepath.Join(dataDir, "name.basics.tsv"),
		[]string{"nconst", "primaryName", "birthYear", "deathYear", "primaryProfession", "knownForTitles"},
		[][]string{
			{"nm0000001", "Someone Else", `\N`, `\N`, "producer", `\N`},
			{"nm0000195", "Bill Murray", "1950", `\N`, "actor,writer,producer", "tt0087332"},
			{"nm0005562", "Owen Wilson", "1968", `\N`, "actor,writer,producer", "tt0335266"},
		})

	WriteTSV(t, filepath.Join(dataDir, "title.basics.tsv"),
		[]string{"tconst", "titleType", "primaryTitle", "originalTitle", "isAdult", "startYear", "endYear", "runtimeMinutes", "genres"},
		[][]string{
			{"ttTogether", "movie", "The Life Aquatic", "The Life Aquatic", "0", "2004", `\N`, "119", "Adventure,Comedy"},
			{"ttSolo", "movie", "Larger than Life", "Larger than Life", "0", "1996", `\N`, "93", "Comedy"},
			{"ttEpisode", "tvEpisode", "Guest Spot", "Guest Spot", "0", "2001", `\N`, "22", "Comedy"},
		})

	WriteTSV(t, filepath.Join(dataDir, "title.principals.tsv"),
		[]string{"tconst", "ordering", "nconst", "category", "job", "characters"},
		[][]string{
			{"ttTogether", "1", "nm0000195", "actor", `\N`, `["Steve"]`},
			{"ttTogether", "2", "nm0005562", "actor", `\N`, `["Ned"]`},
			{"ttSolo", "1", "nm0000195", "actor", `\N`, `["Jack"]`},
			{"ttEpisode", "1", "nm0000195", "actor", `\N`, `\N`},
			{"ttTogether", "3", "nm0000001", "producer", `\N`, `\N`},
		})

	WriteTSV(t, filepath.Join(dataDir, "title.ratings.tsv"),
		[]string{"tconst", "averageRating", "numVotes"},
		[][]string{
			{"ttTogether", "7.5", "200000"},
			{"ttSolo", "6.0", "25000"},
			{"ttEpisode", "8.9", "500"},
		})
}
