package imdb

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"costar/internal/datasets"
)

// nullField is the upstream representation of a missing value.
const nullField = `\N`

// maxLineBytes bounds a single dataset row. The longest upstream rows
// (knownForTitles, characters) stay well under this.
const maxLineBytes = 4 * 1024 * 1024

// tsvFile iterates the rows of a tab-separated dataset file, projecting each
// row onto the requested columns. Column positions come from the header row.
type tsvFile struct {
	path    string
	file    *os.File
	scanner *bufio.Scanner
	indexes []int
	width   int
	line    int
}

func openTSV(path string, columns ...string) (*tsvFile, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, datasets.Wrap(datasets.ErrStorage, "scan", "open", path, err)
	}

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	if !scanner.Scan() {
		file.Close()
		if err := scanner.Err(); err != nil {
			return nil, datasets.Wrap(datasets.ErrStorage, "scan", "read header", path, err)
		}
		return nil, datasets.Wrap(datasets.ErrParse, "scan", "read header", path+" is empty", nil)
	}

	header := strings.Split(scanner.Text(), "\t")
	indexes := make([]int, len(columns))
	width := 0
	for i, column := range columns {
		pos := slices.Index(header, column)
		if pos < 0 {
			file.Close()
			return nil, datasets.Wrap(datasets.ErrParse, "scan", "read header",
				fmt.Sprintf("%s: missing column %q", filepath.Base(path), column), nil)
		}
		indexes[i] = pos
		if pos+1 > width {
			width = pos + 1
		}
	}

	return &tsvFile{
		path:    path,
		file:    file,
		scanner: scanner,
		indexes: indexes,
		width:   width,
		line:    1,
	}, nil
}

// Next fills dst (len of the requested columns) with the next row's projected
// values. It returns false with a nil error at end of file.
func (t *tsvFile) Next(dst []string) (bool, error) {
	if !t.scanner.Scan() {
		if err := t.scanner.Err(); err != nil {
			return false, datasets.Wrap(datasets.ErrStorage, "scan", "read row", t.path, err)
		}
		return false, nil
	}
	t.line++

	fields := strings.Split(t.scanner.Text(), "\t")
	if len(fields) < t.width {
		return false, datasets.Wrap(datasets.ErrParse, "scan", "read row",
			fmt.Sprintf("%s line %d: %d fields, need at least %d", filepath.Base(t.path), t.line, len(fields), t.width), nil)
	}
	for i, pos := range t.indexes {
		dst[i] = fields[pos]
	}
	return true, nil
}

// Line returns the 1-based number of the most recently read line.
func (t *tsvFile) Line() int {
	return t.line
}

func (t *tsvFile) Close() error {
	return t.file.Close()
}

func (t *tsvFile) rowError(message string) error {
	return datasets.Wrap(datasets.ErrParse, "scan", "read row",
		fmt.Sprintf("%s line %d: %s", filepath.Base(t.path), t.line, message), nil)
}
