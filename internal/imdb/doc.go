// Package imdb reads the IMDB non-commercial TSV datasets into the typed
// records the comparison pipeline consumes.
//
// Each loader makes exactly one linear pass over its file: actor name
// resolution over name.basics, the credit index over title.principals, and
// the rating and movie-title lookups over title.ratings and title.basics.
// Column positions are resolved from the header row by name, so upstream
// schema drift surfaces as a parse error instead of silently misread fields.
package imdb
