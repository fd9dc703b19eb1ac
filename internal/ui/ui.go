// Package ui renders runner progress for the terminal.
package ui

import (
	"fmt"
	"io"
	"time"

	"github.com/adventsolutions/aoc"
	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Title  lipgloss.Style
	Pass   lipgloss.Style
	Fail   lipgloss.Style
	Answer lipgloss.Style
	Muted  lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		Title:  lipgloss.NewStyle().Bold(true),
		Pass:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Fail:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		Answer: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		Muted:  lipgloss.NewStyle().Faint(true),
	}
}

// PlainTheme renders text unstyled.
func PlainTheme() Theme {
	s := lipgloss.NewStyle()
	return Theme{Title: s, Pass: s, Fail: s, Answer: s, Muted: s}
}

// Reporter writes styled progress lines. It implements aoc.Reporter.
type Reporter struct {
	w     io.Writer
	theme Theme
}

func NewReporter(w io.Writer, theme Theme) *Reporter {
	return &Reporter{w: w, theme: theme}
}

func (r *Reporter) StartDay(year, day int) {
	fmt.Fprintln(r.w, r.theme.Title.Render(fmt.Sprintf("Running %d day %d", year, day)))
}

func (r *Reporter) Report(res aoc.Result) {
	took := r.theme.Muted.Render(fmt.Sprintf("(%v)", res.Took.Round(time.Microsecond)))
	switch {
	case res.Err != nil:
		fmt.Fprintf(r.w, "part %s: %s\n", res.Part, r.theme.Fail.Render("error: "+res.Err.Error()))
	case res.Sample && !res.OK():
		fmt.Fprintf(r.w, "part %s: %v %s; want %v\n", res.Part, res.Got, r.theme.Fail.Render("❌"), res.Want)
	case res.Sample:
		fmt.Fprintf(r.w, "part %s sample: %v %s %s\n", res.Part, res.Got, r.theme.Pass.Render("✅"), took)
	default:
		fmt.Fprintf(r.w, "part %s: %s %s\n", res.Part, r.theme.Answer.Render(fmt.Sprint(res.Got)), took)
	}
}

// DayList renders the output of `aoc list` for one year.
func DayList(w io.Writer, theme Theme, year int, days []aoc.DayParts) {
	fmt.Fprintln(w, theme.Title.Render(fmt.Sprint(year)))
	for _, d := range days {
		fmt.Fprintf(w, "  day %2d  parts %v %s\n", d.Day, d.Parts, theme.Muted.Render(fmt.Sprintf("%d/%d samples", d.Samples, len(d.Parts))))
	}
}
