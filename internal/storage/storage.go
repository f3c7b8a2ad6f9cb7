package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

var ErrNoteNotFound = errors.New("note not found")

// Note is a generated lab note.
type Note struct {
	ID             string    `json:"id"`
	CourseID       int       `json:"course_id"`
	CourseName     string    `json:"course_name"`
	AssignmentID   int       `json:"assignment_id"`
	AssignmentName string    `json:"assignment_name"`
	Author         string    `json:"author"`
	Markdown       string    `json:"markdown"`
	Checksum       string    `json:"checksum"`
	Path           string    `json:"path,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// Storage manages the sqlite database.
type Storage struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS notes (
	id              TEXT PRIMARY KEY,
	course_id       INTEGER NOT NULL,
	course_name     TEXT NOT NULL,
	assignment_id   INTEGER NOT NULL,
	assignment_name TEXT NOT NULL,
	author          TEXT NOT NULL,
	markdown        TEXT NOT NULL,
	checksum        TEXT NOT NULL,
	path            TEXT NOT NULL DEFAULT '',
	created_at      TIMESTAMP NOT NULL,
	UNIQUE (course_id, assignment_id)
);`

const noteColumns = `id, course_id, course_name, assignment_id, assignment_name, author, markdown, checksum, path, created_at`

// NewStorage creates or opens the database at dbPath.
func NewStorage(dbPath string) (*Storage, error) {
	if dir := filepath.Dir(dbPath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	return &Storage{db: db}, nil
}

// Close closes the database connection.
func (s *Storage) Close() {
	s.db.Close()
}

// UpsertNote stores a note, replacing the previous note for the same
// course and assignment. The stored ID and creation time are written back
// to note.
func (s *Storage) UpsertNote(note *Note) error {
	if note.ID == "" {
		note.ID = uuid.New().String()
	}
	if note.CreatedAt.IsZero() {
		note.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.Exec(`
INSERT INTO notes (`+noteColumns+`)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (course_id, assignment_id) DO UPDATE SET
	course_name = excluded.course_name,
	assignment_name = excluded.assignment_name,
	author = excluded.author,
	markdown = excluded.markdown,
	checksum = excluded.checksum,
	path = excluded.path,
	created_at = excluded.created_at`,
		note.ID, note.CourseID, note.CourseName, note.AssignmentID, note.AssignmentName,
		note.Author, note.Markdown, note.Checksum, note.Path, note.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert note: %w", err)
	}

	// An existing row keeps its ID.
	stored, err := s.FindNote(note.CourseID, note.AssignmentID)
	if err != nil {
		return err
	}
	note.ID = stored.ID
	return nil
}

// GetNote retrieves a note by its ID.
func (s *Storage) GetNote(id string) (*Note, error) {
	row := s.db.QueryRow(`SELECT `+noteColumns+` FROM notes WHERE id = ?`, id)
	return scanNote(row)
}

// FindNote retrieves the note for an assignment.
func (s *Storage) FindNote(courseID, assignmentID int) (*Note, error) {
	row := s.db.QueryRow(`SELECT `+noteColumns+` FROM notes WHERE course_id = ? AND assignment_id = ?`, courseID, assignmentID)
	return scanNote(row)
}

// ListNotes retrieves all notes, newest first.
func (s *Storage) ListNotes() ([]*Note, error) {
	rows, err := s.db.Query(`SELECT ` + noteColumns + ` FROM notes ORDER BY created_at DESC, assignment_name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	defer rows.Close()

	var notes []*Note
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to list notes: %w", err)
		}
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	return notes, nil
}

// DeleteNote deletes a note by its ID.
func (s *Storage) DeleteNote(id string) error {
	res, err := s.db.Exec(`DELETE FROM notes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", ErrNoteNotFound, id)
	}
	return nil
}

// Clean deletes every note.
func (s *Storage) Clean() error {
	if _, err := s.db.Exec(`DELETE FROM notes`); err != nil {
		return fmt.Errorf("failed to clean notes: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanNote(row scanner) (*Note, error) {
	var n Note
	err := row.Scan(&n.ID, &n.CourseID, &n.CourseName, &n.AssignmentID, &n.AssignmentName,
		&n.Author, &n.Markdown, &n.Checksum, &n.Path, &n.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read note: %w", err)
	}
	return &n, nil
}
