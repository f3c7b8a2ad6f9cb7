package api

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tesh254/labnote/internal/canvas"
	"github.com/tesh254/labnote/internal/markdown"
	"github.com/tesh254/labnote/internal/storage"
)

type fakeCanvas struct {
	courses     []canvas.Course
	assignments map[int][]canvas.Assignment
	data        map[int]*canvas.AssignmentData
	group       string
}

func (f *fakeCanvas) ListCourses(ctx context.Context) ([]canvas.Course, error) {
	return f.courses, nil
}

func (f *fakeCanvas) LabAssignments(ctx context.Context, courseID int, groupName string) ([]canvas.Assignment, error) {
	f.group = groupName
	return f.assignments[courseID], nil
}

func (f *fakeCanvas) GetAssignment(ctx context.Context, courseID, assignmentID int) (*canvas.AssignmentData, error) {
	data, ok := f.data[assignmentID]
	if !ok {
		return nil, canvas.ErrNotFound
	}
	return data, nil
}

func newTestAPI(t *testing.T, fake *fakeCanvas) *API {
	t.Helper()
	st, err := storage.NewStorage(filepath.Join(t.TempDir(), "labnote.db"))
	require.NoError(t, err)
	t.Cleanup(st.Close)
	return NewAPI(st, fake, markdown.New(), "Ada", "Labs & Homework")
}

func TestCreateLabNote(t *testing.T) {
	fake := &fakeCanvas{data: map[int]*canvas.AssignmentData{
		10: {ID: 10, Name: "Lab 1", Description: `<h1>Questions</h1><ol><li>Why?</li><li>How?</li></ol>`},
	}}
	a := newTestAPI(t, fake)

	course := canvas.Course{ID: 1, Name: "Systems"}
	note, err := a.CreateLabNote(context.Background(), course, canvas.Assignment{ID: 10, Name: "Lab 1"})
	require.NoError(t, err)

	assert.Equal(t, "# Lab 1\n#### _By Ada_\n\n## Questions\n1. Why?\n\n2. How?\n", note.Markdown)
	assert.Equal(t, Checksum(note.Markdown), note.Checksum)
	assert.Equal(t, "Systems", note.CourseName)

	stored, err := a.GetNote(note.ID)
	require.NoError(t, err)
	assert.Equal(t, note.Markdown, stored.Markdown)

	require.NoError(t, a.SetNotePath(note, "lab-1.md"))
	stored, err = a.GetNote(note.ID)
	require.NoError(t, err)
	assert.Equal(t, "lab-1.md", stored.Path)
}

func TestCreateLabNote_EmptyDescription(t *testing.T) {
	fake := &fakeCanvas{data: map[int]*canvas.AssignmentData{
		10: {ID: 10, Name: "Lab 1"},
	}}
	a := newTestAPI(t, fake)

	note, err := a.CreateLabNote(context.Background(), canvas.Course{ID: 1}, canvas.Assignment{ID: 10})
	require.NoError(t, err)
	assert.Equal(t, "# Lab 1\n#### _By Ada_\n\n", note.Markdown)
}

func TestCreateLabNote_MissingAssignment(t *testing.T) {
	a := newTestAPI(t, &fakeCanvas{})

	_, err := a.CreateLabNote(context.Background(), canvas.Course{ID: 1}, canvas.Assignment{ID: 99})
	assert.ErrorIs(t, err, canvas.ErrNotFound)

	notes, err := a.ListNotes()
	require.NoError(t, err)
	assert.Empty(t, notes)
}

func TestLabAssignments_UsesConfiguredGroup(t *testing.T) {
	fake := &fakeCanvas{assignments: map[int][]canvas.Assignment{
		3: {{ID: 1, Name: "Lab 1"}},
	}}
	a := newTestAPI(t, fake)

	assignments, err := a.LabAssignments(context.Background(), 3)
	require.NoError(t, err)
	assert.Len(t, assignments, 1)
	assert.Equal(t, "Labs & Homework", fake.group)
}

func TestRenderHTML(t *testing.T) {
	a := newTestAPI(t, &fakeCanvas{})

	md, err := a.RenderHTML(`<h1>Turn In</h1><ol><li>Answer <em>this</em></li></ol>`, "Quiz")
	require.NoError(t, err)
	assert.Equal(t, "# Quiz\n#### _By Ada_\n\n## Questions\n1. Answer  _this_ \n", md)
}

func TestDeleteNote(t *testing.T) {
	fake := &fakeCanvas{data: map[int]*canvas.AssignmentData{10: {Name: "Lab 1"}}}
	a := newTestAPI(t, fake)

	note, err := a.CreateLabNote(context.Background(), canvas.Course{ID: 1}, canvas.Assignment{ID: 10})
	require.NoError(t, err)

	require.NoError(t, a.DeleteNote(note.ID))
	assert.ErrorIs(t, a.DeleteNote(note.ID), storage.ErrNoteNotFound)
}
