package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tesh254/labnote/internal/canvas"
	"github.com/tesh254/labnote/internal/display"
	"github.com/tesh254/labnote/internal/markdown"
)

type newOptions struct {
	courseID     int
	assignmentID int
	open         bool
	description  bool
	stdout       bool
	force        bool
}

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Creates a lab note for a Canvas assignment",
	Long: `Fetches an assignment from Canvas and writes its questions to a markdown
file in the output directory. Missing course or assignment ids are asked for
interactively.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var opts newOptions
		opts.courseID, _ = cmd.Flags().GetInt("course")
		opts.assignmentID, _ = cmd.Flags().GetInt("assignment")
		opts.open, _ = cmd.Flags().GetBool("open")
		opts.description, _ = cmd.Flags().GetBool("description")
		opts.stdout, _ = cmd.Flags().GetBool("stdout")
		opts.force, _ = cmd.Flags().GetBool("force")
		return runNew(cmd, opts)
	},
}

func runNew(cmd *cobra.Command, opts newOptions) error {
	s, err := openSession(markdown.WithDescription(opts.description))
	if err != nil {
		return err
	}
	defer s.Close()

	ctx := cmd.Context()

	course, err := pickCourse(ctx, s, opts.courseID)
	if err != nil {
		return err
	}
	assignment, err := pickAssignment(ctx, s, course.ID, opts.assignmentID)
	if err != nil {
		return err
	}

	var done chan struct{}
	if !opts.stdout {
		done = display.StartSpinner("Fetching " + assignment.Name)
	}
	note, err := s.api.CreateLabNote(ctx, course, assignment)
	if done != nil {
		close(done)
	}
	if err != nil {
		return err
	}

	if opts.stdout {
		fmt.Println("\n" + note.Markdown)
		return nil
	}

	path := filepath.Join(s.cfg.OutputDir, Slug(note.AssignmentName)+".md")
	if _, err := os.Stat(path); err == nil && !opts.force {
		ok, err := display.Confirm(fmt.Sprintf("%s already exists. Overwrite it?", path))
		if err != nil || !ok {
			fmt.Println("Lab note not written.")
			return nil
		}
	}

	if err := os.MkdirAll(s.cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(note.Markdown), 0o644); err != nil {
		return fmt.Errorf("failed to write lab note: %w", err)
	}
	if err := s.api.SetNotePath(note, path); err != nil {
		log.Printf("Failed to record note path: %v", err)
	}

	display.Banner(os.Stdout, "Lab Note Created",
		fmt.Sprintf("Course:     %s", course.Name),
		fmt.Sprintf("Assignment: %s", note.AssignmentName),
		fmt.Sprintf("File:       %s", path),
	)

	if opts.open {
		return openEditor(s.cfg.Editor, path)
	}
	return nil
}

func pickCourse(ctx context.Context, s *session, id int) (canvas.Course, error) {
	courses, err := s.api.Courses(ctx)
	if err != nil {
		return canvas.Course{}, err
	}
	if id == 0 {
		return display.SelectCourse(courses)
	}
	for _, c := range courses {
		if c.ID == id {
			return c, nil
		}
	}
	return canvas.Course{ID: id}, nil
}

func pickAssignment(ctx context.Context, s *session, courseID, id int) (canvas.Assignment, error) {
	if id != 0 {
		return canvas.Assignment{ID: id}, nil
	}
	assignments, err := s.api.LabAssignments(ctx, courseID)
	if err != nil {
		return canvas.Assignment{}, err
	}
	return display.SelectAssignment(assignments)
}

var slugInvalid = regexp.MustCompile(`[^a-z0-9]+`)

// Slug turns an assignment name into a file name.
func Slug(name string) string {
	slug := strings.Trim(slugInvalid.ReplaceAllString(strings.ToLower(name), "-"), "-")
	if slug == "" {
		return "lab-note"
	}
	return slug
}

func openEditor(editor, path string) error {
	if editor == "" {
		editor = "vi"
	}
	fields := strings.Fields(editor)
	c := exec.Command(fields[0], append(fields[1:], path)...)
	c.Stdin, c.Stdout, c.Stderr = os.Stdin, os.Stdout, os.Stderr
	if err := c.Run(); err != nil {
		return fmt.Errorf("failed to open editor %q: %w", editor, err)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(newCmd)
	newCmd.Flags().Int("course", 0, "Canvas course id (asked for when omitted)")
	newCmd.Flags().Int("assignment", 0, "Canvas assignment id (asked for when omitted)")
	newCmd.Flags().Bool("open", false, "Open the note in the editor after writing it")
	newCmd.Flags().Bool("description", false, "Append the full assignment description")
	newCmd.Flags().Bool("stdout", false, "Print the note instead of writing a file")
	newCmd.Flags().BoolP("force", "f", false, "Overwrite an existing file without asking")
}
