package display

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/tesh254/labnote/internal/canvas"
)

var ErrNoChoices = errors.New("nothing to choose from")

// MenuOption is an entry of the main menu.
type MenuOption int

const (
	NewLabNote MenuOption = iota
	SubmitLabNote
	SubmitAssignment
)

func (m MenuOption) String() string {
	switch m {
	case NewLabNote:
		return "New Lab Note"
	case SubmitLabNote:
		return "Submit Lab Note"
	case SubmitAssignment:
		return "Submit Assignment"
	}
	return fmt.Sprintf("MenuOption(%d)", int(m))
}

// MainMenu asks what to do.
func MainMenu() (MenuOption, error) {
	var choice MenuOption
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[MenuOption]().
				Title("What would you like to do?").
				Options(
					huh.NewOption(NewLabNote.String(), NewLabNote),
					huh.NewOption(SubmitLabNote.String(), SubmitLabNote),
					huh.NewOption(SubmitAssignment.String(), SubmitAssignment),
				).
				Value(&choice),
		),
	).Run()
	return choice, err
}

// SelectCourse asks the user to pick a course.
func SelectCourse(courses []canvas.Course) (canvas.Course, error) {
	return choose("Which course would you like to select?", courses)
}

// SelectAssignment asks the user to pick an assignment.
func SelectAssignment(assignments []canvas.Assignment) (canvas.Assignment, error) {
	return choose("Which assignment would you like to make a lab note for?", assignments)
}

// Confirm asks a yes/no question.
func Confirm(question string) (bool, error) {
	var ok bool
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(question).
				Affirmative("Yes").
				Negative("No").
				Value(&ok),
		),
	).Run()
	return ok, err
}

func choose[T fmt.Stringer](title string, items []T) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, ErrNoChoices
	}

	options := make([]huh.Option[int], 0, len(items))
	for i, item := range items {
		options = append(options, huh.NewOption(item.String(), i))
	}

	var picked int
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title(title).
				Options(options...).
				Value(&picked),
		),
	).Run()
	if err != nil {
		return zero, err
	}
	return items[picked], nil
}
