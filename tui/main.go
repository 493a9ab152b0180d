package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/BhanuPrakash-01/fake-news-detector/client"
)

var (
	apiURL  string
	oneShot string
)

var rootCmd = &cobra.Command{
	Use:   "fake-news-tui",
	Short: "Terminal client for the Fake News Detector API",
	Long:  `Interactive terminal client that submits news text for analysis and renders the verdict.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var gateway *client.Client
		if apiURL != "" {
			gateway = client.NewWithBaseURL(apiURL)
		} else {
			gateway = client.New()
		}

		// One-shot mode: analyze and print, no TUI.
		if oneShot != "" {
			result, err := gateway.Analyze(context.Background(), oneShot)
			if err != nil {
				return err
			}
			fmt.Println(FormatResult(result))
			return nil
		}

		// The gateway logs diagnostics through the stdlib logger; keep them
		// out of the alternate screen while the TUI is running.
		log.SetOutput(io.Discard)

		p := tea.NewProgram(newModel(gateway), tea.WithAltScreen())
		_, err := p.Run()
		return err
	},
}

func init() {
	rootCmd.Flags().StringVar(&apiURL, "api-url", "", "Base URL of the analysis API (default: FAKE_NEWS_API_URL or "+client.DefaultBaseURL+")")
	rootCmd.Flags().StringVar(&oneShot, "text", "", "Analyze this text and exit instead of starting the TUI")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
