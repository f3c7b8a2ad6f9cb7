// Package display renders labnote's terminal output: banners, tables and
// the progress spinner.
package display

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/tesh254/labnote/internal/canvas"
	"github.com/tesh254/labnote/internal/storage"
)

const rule = "=============================================================================="

// Banner prints a green title between rules followed by detail lines.
func Banner(w io.Writer, title string, lines ...string) {
	green := color.New(color.FgGreen).SprintFunc()
	banner := rule + "\n"
	banner += "        " + green(title) + "\n"
	banner += rule + "\n"
	for _, line := range lines {
		banner += line + "\n"
	}
	banner += rule
	fmt.Fprintln(w, banner)
}

// Error prints err in a red box.
func Error(w io.Writer, err error) {
	red := color.New(color.FgRed).SprintFunc()
	msg := err.Error()
	width := len(msg)
	if width < 20 {
		width = 20
	}
	box := "┌────── " + red("⚠ Error") + " " + strings.Repeat("─", width-13) + "┐\n"
	box += fmt.Sprintf("│ %-*s │\n", width, msg)
	box += "└" + strings.Repeat("─", width+2) + "┘"
	fmt.Fprintln(w, box)
}

func newTable(w io.Writer, header table.Row) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(header)
	return t
}

// Courses prints a table of courses.
func Courses(w io.Writer, courses []canvas.Course) {
	t := newTable(w, table.Row{"ID", "Course"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 2, Align: text.AlignLeft, WidthMax: 80},
	})
	for _, c := range courses {
		t.AppendRow(table.Row{strconv.Itoa(c.ID), c.Name})
	}
	t.Render()
}

// Assignments prints a table of assignments.
func Assignments(w io.Writer, assignments []canvas.Assignment) {
	t := newTable(w, table.Row{"ID", "Assignment", "Submissions"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 2, Align: text.AlignLeft, WidthMax: 80},
		{Number: 3, Align: text.AlignLeft},
	})
	for _, a := range assignments {
		submitted := "none"
		if a.HasSubmittedSubmissions {
			submitted = "yes"
		}
		t.AppendRow(table.Row{strconv.Itoa(a.ID), a.Name, submitted})
	}
	t.Render()
}

// Notes prints a table of stored notes relative to now.
func Notes(w io.Writer, notes []*storage.Note, now time.Time) {
	t := newTable(w, table.Row{"ID", "Course", "Assignment", "Size", "Created", "File"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignLeft, WidthMax: 30},
		{Number: 3, Align: text.AlignLeft, WidthMax: 40},
	})
	for _, n := range notes {
		t.AppendRow(table.Row{
			n.ID,
			n.CourseName,
			n.AssignmentName,
			humanize.Bytes(uint64(len(n.Markdown))),
			humanize.RelTime(n.CreatedAt, now, "ago", "from now"),
			n.Path,
		})
	}
	t.AppendSeparator()
	t.Render()
}

// StartSpinner shows message with a spinner on stdout until the returned
// channel is closed.
func StartSpinner(message string) chan struct{} {
	done := make(chan struct{})
	os.Stdout.Sync()
	go func() {
		spinner := `|/-\`
		i := 0
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		var mu sync.Mutex
		for {
			select {
			case <-ticker.C:
				mu.Lock()
				fmt.Fprintf(os.Stdout, "\r%s... [%s]", color.YellowString("%s", message), string(spinner[i]))
				os.Stdout.Sync()
				mu.Unlock()
				i = (i + 1) % len(spinner)
			case <-done:
				mu.Lock()
				fmt.Fprintf(os.Stdout, "\r%s... [%s]\n", color.GreenString("%s", message), "✔")
				os.Stdout.Sync()
				mu.Unlock()
				return
			}
		}
	}()
	return done
}
