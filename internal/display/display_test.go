package display

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/tesh254/labnote/internal/canvas"
	"github.com/tesh254/labnote/internal/storage"
)

func init() {
	color.NoColor = true
}

func TestCourses(t *testing.T) {
	var buf bytes.Buffer
	Courses(&buf, []canvas.Course{{ID: 12, Name: "Operating Systems"}})

	out := buf.String()
	assert.Contains(t, out, "COURSE")
	assert.Contains(t, out, "12")
	assert.Contains(t, out, "Operating Systems")
}

func TestAssignments(t *testing.T) {
	var buf bytes.Buffer
	Assignments(&buf, []canvas.Assignment{
		{ID: 1, Name: "Lab 1"},
		{ID: 2, Name: "Lab 2", HasSubmittedSubmissions: true},
	})

	out := buf.String()
	assert.Contains(t, out, "Lab 1")
	assert.Contains(t, out, "none")
	assert.Contains(t, out, "yes")
}

func TestNotes(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	var buf bytes.Buffer
	Notes(&buf, []*storage.Note{{
		ID:             "abc",
		CourseName:     "Systems",
		AssignmentName: "Lab 1",
		Markdown:       "# Lab 1\n",
		CreatedAt:      now.Add(-3 * time.Hour),
		Path:           "lab-1.md",
	}}, now)

	out := buf.String()
	assert.Contains(t, out, "abc")
	assert.Contains(t, out, "3 hours ago")
	assert.Contains(t, out, "8 B")
	assert.Contains(t, out, "lab-1.md")
}

func TestBannerAndError(t *testing.T) {
	var buf bytes.Buffer
	Banner(&buf, "Lab Note Created", "File: lab-1.md")
	assert.Contains(t, buf.String(), "Lab Note Created")
	assert.Contains(t, buf.String(), "File: lab-1.md")

	buf.Reset()
	Error(&buf, errors.New("no lab group for this course"))
	assert.Contains(t, buf.String(), "no lab group for this course")
}

func TestMenuOption_String(t *testing.T) {
	assert.Equal(t, "New Lab Note", NewLabNote.String())
	assert.Equal(t, "Submit Assignment", SubmitAssignment.String())
}
