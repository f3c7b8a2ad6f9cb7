package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/tesh254/labnote/internal/display"
)

var notesCmd = &cobra.Command{
	Use:   "notes",
	Short: "Lists the lab notes created so far",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStorage()
		if err != nil {
			return err
		}
		defer st.Close()

		notes, err := st.ListNotes()
		if err != nil {
			return err
		}
		if len(notes) == 0 {
			fmt.Println("No lab notes yet. Run `labnote new` to create one.")
			return nil
		}
		display.Notes(os.Stdout, notes, time.Now())
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Prints a stored lab note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonFlag, _ := cmd.Flags().GetBool("json")

		st, err := openStorage()
		if err != nil {
			return err
		}
		defer st.Close()

		note, err := st.GetNote(args[0])
		if err != nil {
			return err
		}

		if jsonFlag {
			out, err := json.MarshalIndent(note, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		}
		fmt.Print(note.Markdown)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(notesCmd)
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().Bool("json", false, "Print the note with its metadata as JSON")
}
