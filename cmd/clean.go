package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tesh254/labnote/internal/display"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Deletes all lab notes from the database",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")

		if !yes {
			color.Red("WARNING: This will delete all lab notes from the database and is not recoverable.")
			ok, err := display.Confirm("Are you sure you want to continue?")
			if err != nil {
				return fmt.Errorf("failed to read response: %w", err)
			}
			if !ok {
				fmt.Println("Clean operation cancelled.")
				return nil
			}
		}

		st, err := openStorage()
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.Clean(); err != nil {
			return fmt.Errorf("failed to clean database: %w", err)
		}

		fmt.Println("Database cleaned successfully.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cleanCmd)
	cleanCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}
