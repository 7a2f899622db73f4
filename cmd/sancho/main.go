// sancho is a side-scrolling platformer for the terminal: guide Sancho
// through five Colombian levels to the corruption boss.
//
// Usage:
//
//	sancho play              - Play the campaign
//	sancho levels list       - List level files
//	sancho levels validate   - Validate level files
//	sancho scores            - Show best runs and level progress
//	sancho serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: from config, 60)
//	--db <path>           - Set save database path (default: ~/.sancho/save.db)
//	--config <path>       - Custom tuning YAML
//	--difficulty <name>   - easy, normal or hard
//	--log-file <path>     - Log destination for interactive play
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sancho",
	Short: "Sancho Bros - a platformer in your terminal",
	Long: `Sancho Bros is a side-scrolling platformer played in the terminal.
Stomp Polochos, grab golden arepas to fire lasers, and defeat the
corruption boss in the presidential palace.

Available commands:
  play     - Play the campaign
  levels   - List or validate level files
  scores   - View best runs and level progress
  serve    - Start SSH server for remote play

Examples:
  sancho play
  sancho play --difficulty easy
  sancho play --levels ./levels --watch
  sancho levels validate ./levels
  sancho serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = use the config value)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.sancho/save.db", "Path to save database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.sancho/sancho.log", "Log file for interactive play")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
