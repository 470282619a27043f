package datasets

// Dataset identifies one of the four IMDB flat files the comparison needs.
type Dataset string

const (
	NameBasics      Dataset = "name.basics"
	TitleBasics     Dataset = "title.basics"
	TitlePrincipals Dataset = "title.principals"
	TitleRatings    Dataset = "title.ratings"
)

// All returns every required dataset in download order.
func All() []Dataset {
	return []Dataset{NameBasics, TitleBasics, TitlePrincipals, TitleRatings}
}

// Valid reports whether d names a known dataset.
func (d Dataset) Valid() bool {
	switch d {
	case NameBasics, TitleBasics, TitlePrincipals, TitleRatings:
		return true
	}
	return false
}

// RemoteFile returns the compressed file name published upstream.
func (d Dataset) RemoteFile() string {
	return string(d) + ".tsv.gz"
}

// LocalFile returns the decompressed file name kept in the data directory.
func (d Dataset) LocalFile() string {
	return string(d) + ".tsv"
}
