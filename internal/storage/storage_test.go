package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	st, err := NewStorage(filepath.Join(t.TempDir(), "data", "labnote.db"))
	require.NoError(t, err)
	t.Cleanup(st.Close)
	return st
}

func TestUpsertNote_InsertAndReplace(t *testing.T) {
	st := newTestStorage(t)

	first := &Note{CourseID: 1, CourseName: "Systems", AssignmentID: 10, AssignmentName: "Lab 1", Author: "Ada", Markdown: "# Lab 1", Checksum: "a"}
	require.NoError(t, st.UpsertNote(first))
	require.NotEmpty(t, first.ID)

	second := &Note{CourseID: 1, CourseName: "Systems", AssignmentID: 10, AssignmentName: "Lab 1", Author: "Ada", Markdown: "# Lab 1 v2", Checksum: "b"}
	require.NoError(t, st.UpsertNote(second))
	assert.Equal(t, first.ID, second.ID, "same assignment keeps its note id")

	got, err := st.GetNote(first.ID)
	require.NoError(t, err)
	assert.Equal(t, "# Lab 1 v2", got.Markdown)
	assert.Equal(t, "b", got.Checksum)

	notes, err := st.ListNotes()
	require.NoError(t, err)
	assert.Len(t, notes, 1)
}

func TestListNotes_NewestFirst(t *testing.T) {
	st := newTestStorage(t)
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, st.UpsertNote(&Note{CourseID: 1, AssignmentID: 1, AssignmentName: "old", CreatedAt: base}))
	require.NoError(t, st.UpsertNote(&Note{CourseID: 1, AssignmentID: 2, AssignmentName: "new", CreatedAt: base.Add(time.Hour)}))

	notes, err := st.ListNotes()
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, "new", notes[0].AssignmentName)
	assert.Equal(t, "old", notes[1].AssignmentName)
}

func TestFindNote_Missing(t *testing.T) {
	st := newTestStorage(t)

	_, err := st.FindNote(1, 2)
	assert.ErrorIs(t, err, ErrNoteNotFound)

	_, err = st.GetNote("nope")
	assert.ErrorIs(t, err, ErrNoteNotFound)
}

func TestDeleteNoteAndClean(t *testing.T) {
	st := newTestStorage(t)

	a := &Note{CourseID: 1, AssignmentID: 1}
	b := &Note{CourseID: 1, AssignmentID: 2}
	require.NoError(t, st.UpsertNote(a))
	require.NoError(t, st.UpsertNote(b))

	require.NoError(t, st.DeleteNote(a.ID))
	assert.ErrorIs(t, st.DeleteNote(a.ID), ErrNoteNotFound)

	require.NoError(t, st.Clean())
	notes, err := st.ListNotes()
	require.NoError(t, err)
	assert.Empty(t, notes)
}
