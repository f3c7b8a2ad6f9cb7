package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tesh254/labnote/internal/display"
)

var coursesCmd = &cobra.Command{
	Use:   "courses",
	Short: "Lists your Canvas courses",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession()
		if err != nil {
			return err
		}
		defer s.Close()

		courses, err := s.api.Courses(cmd.Context())
		if err != nil {
			return err
		}
		if len(courses) == 0 {
			fmt.Println("No courses found.")
			return nil
		}
		display.Courses(os.Stdout, courses)
		return nil
	},
}

var assignmentsCmd = &cobra.Command{
	Use:   "assignments [course-id]",
	Short: "Lists the lab assignments of a course",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		courseID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid course id %q: %w", args[0], err)
		}

		s, err := openSession()
		if err != nil {
			return err
		}
		defer s.Close()

		assignments, err := s.api.LabAssignments(cmd.Context(), courseID)
		if err != nil {
			return err
		}
		if len(assignments) == 0 {
			fmt.Println("No assignments found.")
			return nil
		}
		display.Assignments(os.Stdout, assignments)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(coursesCmd)
	rootCmd.AddCommand(assignmentsCmd)
}
