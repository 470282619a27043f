package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// RenderOptions controls report formatting.
type RenderOptions struct {
	// Color toggles ANSI styling of headings.
	Color bool
	// MaxList caps the titles listed per group; 0 lists every title.
	MaxList int
}

const noRatedTitles = "no rated titles"

// Render writes the full comparison report.
func Render(w io.Writer, c Comparison, opts RenderOptions) {
	heading := color.New(color.FgCyan, color.Bold)
	if opts.Color {
		heading.EnableColor()
	} else {
		heading.DisableColor()
	}

	printer := message.NewPrinter(language.English)

	heading.Fprintf(w, "%s vs %s\n", c.ActorA.Name, c.ActorB.Name)
	fmt.Fprintf(w, "%s: %s   %s: %s\n", c.ActorA.Name, c.ActorA.ID, c.ActorB.Name, c.ActorB.ID)

	for _, group := range c.Groups() {
		fmt.Fprintln(w)
		heading.Fprintln(w, group.Heading)

		if len(group.Entries) == 0 {
			fmt.Fprintln(w, "(no movies)")
			fmt.Fprintf(w, "Average: %s\n", noRatedTitles)
			continue
		}

		listed := group.Entries
		if opts.MaxList > 0 && len(listed) > opts.MaxList {
			listed = listed[:opts.MaxList]
		}
		fmt.Fprintln(w, groupTable(listed, printer))
		if hidden := len(group.Entries) - len(listed); hidden > 0 {
			fmt.Fprintf(w, "... and %d more\n", hidden)
		}

		if group.HasRated() {
			fmt.Fprintf(w, "Average: %.1f across %s\n", group.Average, countNoun(group.RatedCount, "rated movie"))
		} else {
			fmt.Fprintf(w, "Average: %s\n", noRatedTitles)
		}
	}

	renderAnalysis(w, heading, c)
}

func groupTable(entries []Entry, printer *message.Printer) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Title", "Rating", "Votes"})

	for _, entry := range entries {
		rating, votes := "--", ""
		if entry.Rated {
			rating = fmt.Sprintf("%.1f", entry.Rating)
			votes = printer.Sprintf("%d", entry.Votes)
		}
		tw.AppendRow(table.Row{entry.Title, rating, votes})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}

func renderAnalysis(w io.Writer, heading *color.Color, c Comparison) {
	if !c.Together.HasRated() || (!c.AOnly.HasRated() && !c.BOnly.HasRated()) {
		return
	}

	fmt.Fprintln(w)
	heading.Fprintln(w, "Analysis")

	if c.AOnly.HasRated() && c.BOnly.HasRated() {
		switch {
		case c.Together.Average > c.AOnly.Average && c.Together.Average > c.BOnly.Average:
			fmt.Fprintln(w, "Together: higher ratings than either actor's solo work.")
		case c.Together.Average < c.AOnly.Average && c.Together.Average < c.BOnly.Average:
			fmt.Fprintln(w, "Together: lower ratings than either actor's solo work.")
		default:
			fmt.Fprintln(w, "Mixed: collaborations fall between the solo averages.")
		}
	}
	if c.AOnly.HasRated() {
		fmt.Fprintf(w, "Difference from %s solo: %+.2f\n", c.ActorA.Name, c.Together.Average-c.AOnly.Average)
	}
	if c.BOnly.HasRated() {
		fmt.Fprintf(w, "Difference from %s solo: %+.2f\n", c.ActorB.Name, c.Together.Average-c.BOnly.Average)
	}
}

func countNoun(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
