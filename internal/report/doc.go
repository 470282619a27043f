// Package report turns two actors' credit sets into the three comparison
// groups (together, each alone) and renders them as a terminal report.
//
// Group membership partitions the union of the movie-restricted credit sets:
// the intersection forms the together group and each remainder forms a solo
// group, so no title appears twice. Averages cover only titles that actually
// carry a rating; unrated titles are listed but never counted.
package report
