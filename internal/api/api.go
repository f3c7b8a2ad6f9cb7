// api.go
package api

import (
	"context"
	"crypto/sha256"
	"fmt"
	"log"
	"strings"

	"github.com/tesh254/labnote/internal/canvas"
	"github.com/tesh254/labnote/internal/markdown"
	"github.com/tesh254/labnote/internal/storage"
)

// Canvas is the part of the Canvas client the API uses.
type Canvas interface {
	ListCourses(ctx context.Context) ([]canvas.Course, error)
	LabAssignments(ctx context.Context, courseID int, groupName string) ([]canvas.Assignment, error)
	GetAssignment(ctx context.Context, courseID, assignmentID int) (*canvas.AssignmentData, error)
}

// API ties Canvas, the renderer and note storage together.
type API struct {
	storage  *storage.Storage
	canvas   Canvas
	renderer *markdown.Renderer
	author   string
	labGroup string
}

// NewAPI creates a new API instance. Notes are signed with author.
func NewAPI(storage *storage.Storage, client Canvas, renderer *markdown.Renderer, author, labGroup string) *API {
	if renderer == nil {
		renderer = markdown.New()
	}
	return &API{
		storage:  storage,
		canvas:   client,
		renderer: renderer,
		author:   author,
		labGroup: labGroup,
	}
}

// Courses lists the user's courses.
func (a *API) Courses(ctx context.Context) ([]canvas.Course, error) {
	return a.canvas.ListCourses(ctx)
}

// LabAssignments lists the assignments of the lab group of a course.
func (a *API) LabAssignments(ctx context.Context, courseID int) ([]canvas.Assignment, error) {
	return a.canvas.LabAssignments(ctx, courseID, a.labGroup)
}

// CreateLabNote fetches an assignment, renders its note and stores it.
func (a *API) CreateLabNote(ctx context.Context, course canvas.Course, assignment canvas.Assignment) (*storage.Note, error) {
	data, err := a.canvas.GetAssignment(ctx, course.ID, assignment.ID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(data.Description) == "" {
		log.Printf("Assignment %q has no description yet, the note only carries a header", assignment.Name)
	}

	name := assignment.Name
	if name == "" {
		name = data.Name
	}

	md, err := a.renderer.Convert(data.Description, a.author, name)
	if err != nil {
		return nil, fmt.Errorf("failed to render %q: %w", name, err)
	}

	note := &storage.Note{
		CourseID:       course.ID,
		CourseName:     course.Name,
		AssignmentID:   assignment.ID,
		AssignmentName: name,
		Author:         a.author,
		Markdown:       md,
		Checksum:       Checksum(md),
	}
	if a.storage != nil {
		if err := a.storage.UpsertNote(note); err != nil {
			return nil, err
		}
	}
	return note, nil
}

// RenderHTML renders a description without touching Canvas or storage.
func (a *API) RenderHTML(html, assignmentName string) (string, error) {
	return a.renderer.Convert(html, a.author, assignmentName)
}

// SetNotePath records where a note was written.
func (a *API) SetNotePath(note *storage.Note, path string) error {
	note.Path = path
	return a.storage.UpsertNote(note)
}

// GetNote retrieves a note by ID.
func (a *API) GetNote(id string) (*storage.Note, error) {
	return a.storage.GetNote(id)
}

// ListNotes lists all notes.
func (a *API) ListNotes() ([]*storage.Note, error) {
	return a.storage.ListNotes()
}

// DeleteNote deletes a note by ID.
func (a *API) DeleteNote(id string) error {
	return a.storage.DeleteNote(id)
}

// Checksum is the hex sha256 of a note's markdown.
func Checksum(md string) string {
	return fmt.Sprintf("%x", sha256.Sum256([]byte(md)))
}
