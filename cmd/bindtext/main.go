package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"bindtext/internal/demo"
)

var (
	flagConfig      string
	flagPlaceholder string
	flagDebounce    time.Duration
	flagLight       bool
)

var rootCmd = &cobra.Command{
	Use:   "bindtext",
	Short: "Interactive demo for the bindtext editor component",
	Long: `bindtext runs a note-taking demo of the state-bound text editor:
a title field and a note area bound to shared state, with an activity
panel streaming reconcile and commit events.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := demo.LoadConfig(flagConfig)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("placeholder") {
			cfg.Placeholder = flagPlaceholder
		}
		if cmd.Flags().Changed("debounce") {
			cfg.DebounceMS = int(flagDebounce / time.Millisecond)
		}
		if flagLight {
			cfg.Dark = false
		}

		p := tea.NewProgram(demo.NewApp(cfg), tea.WithAltScreen())
		_, err = p.Run()
		return err
	},
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "path to a TOML config file")
	rootCmd.Flags().StringVar(&flagPlaceholder, "placeholder", "", "placeholder for the note area")
	rootCmd.Flags().DurationVar(&flagDebounce, "debounce", 100*time.Millisecond, "edit commit debounce")
	rootCmd.Flags().BoolVar(&flagLight, "light", false, "use light-scheme text colors")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
