// Package markdown turns an assignment description into a lab note.
//
// The description's "Questions" (or "Turn In") section is located with
// LocateQuestionsList and rendered item by item, keeping nested list
// numbering and indentation, inline code and emphasis. Everything the
// renderer does not understand is skipped and reported on the logger.
package markdown

import (
	"fmt"
	"log/slog"
	"strings"

	htm "github.com/JohannesKaufmann/html-to-markdown/v2"

	"github.com/tesh254/labnote/internal/dom"
)

// Renderer assembles lab notes. It holds no per-document state and can be
// shared between goroutines.
type Renderer struct {
	logger      *slog.Logger
	description bool
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithLogger sets the logger diagnostics are reported on.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Renderer) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithDescription makes Convert append the whole description, converted
// with html-to-markdown, as a "## Description" section.
func WithDescription(enabled bool) Option {
	return func(r *Renderer) {
		r.description = enabled
	}
}

// New returns a Renderer that logs on slog.Default unless told otherwise.
func New(opts ...Option) *Renderer {
	r := &Renderer{logger: slog.Default()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Header returns the title and author lines that start every note.
func Header(assignmentName, userName string) string {
	return fmt.Sprintf("# %s\n#### _By %s_\n\n", assignmentName, userName)
}

// CreateMarkdown renders doc with a default Renderer.
func CreateMarkdown(doc *dom.Document, userName, assignmentName string) string {
	return New().CreateMarkdown(doc, userName, assignmentName)
}

// CreateMarkdown returns the header followed by the questions section. A
// document without a questions list yields the header alone.
func (r *Renderer) CreateMarkdown(doc *dom.Document, userName, assignmentName string) string {
	var b strings.Builder
	b.WriteString(Header(assignmentName, userName))

	if doc == nil {
		r.logger.Warn("no document to render", slog.String("assignment", assignmentName))
		return b.String()
	}

	list := LocateQuestionsList(doc.Children)
	if list == nil {
		r.logger.Info("no questions section found", slog.String("assignment", assignmentName))
		return b.String()
	}

	r.ParseQuestions(&b, list)
	return b.String()
}

// Convert parses an HTML description and assembles the note for it.
func (r *Renderer) Convert(rawHTML, userName, assignmentName string) (string, error) {
	doc, err := dom.ParseString(rawHTML)
	if err != nil {
		return "", fmt.Errorf("failed to parse description: %w", err)
	}

	note := r.CreateMarkdown(doc, userName, assignmentName)
	if !r.description || strings.TrimSpace(rawHTML) == "" {
		return note, nil
	}

	description, err := htm.ConvertString(rawHTML)
	if err != nil {
		return "", fmt.Errorf("failed to convert description to markdown: %w", err)
	}
	return strings.TrimRight(note, "\n") + "\n\n## Description\n\n" + strings.TrimSpace(description) + "\n", nil
}
