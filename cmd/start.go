package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tesh254/labnote/internal/core"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Starts the MCP server",
	Long: `Starts an MCP server exposing labnote's tools. The server talks stdio
unless --transport http is given.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		transport := viper.GetString("transport")
		httpAddress := ""
		switch transport {
		case "stdio":
		case "http":
			httpAddress = viper.GetString("http-address")
		default:
			return fmt.Errorf("unknown transport %q, expected stdio or http", transport)
		}

		s, err := openSession()
		if err != nil {
			return err
		}
		defer s.Close()

		log.Println("Starting MCP server...")
		server := &core.Core{}
		if err := server.StartServer(s.api, httpAddress); err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(startCmd)
	startCmd.Flags().String("http-address", "localhost:9014", "HTTP address to listen on")
	startCmd.Flags().String("transport", "stdio", "Transport type (stdio or http)")
	viper.BindPFlag("http-address", startCmd.Flags().Lookup("http-address"))
	viper.BindPFlag("transport", startCmd.Flags().Lookup("transport"))
}
