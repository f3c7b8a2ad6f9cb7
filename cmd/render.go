package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tesh254/labnote/internal/markdown"
)

var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Renders a local HTML assignment description to markdown",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title, _ := cmd.Flags().GetString("title")
		author, _ := cmd.Flags().GetString("author")
		description, _ := cmd.Flags().GetBool("description")
		if author == "" {
			author = viper.GetString("name")
		}

		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}

		r := markdown.New(markdown.WithLogger(slog.Default()), markdown.WithDescription(description))
		md, err := r.Convert(string(raw), author, title)
		if err != nil {
			return err
		}
		fmt.Print(md)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringP("title", "t", "Lab Note", "Assignment name used as the note title")
	renderCmd.Flags().StringP("author", "a", "", "Author name (defaults to the configured name)")
	renderCmd.Flags().Bool("description", false, "Append the full description")
}
