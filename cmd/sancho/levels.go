package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sancho-bros/internal/level"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List or validate level files",
}

var levelsListCmd = &cobra.Command{
	Use:   "list [dir]",
	Short: "List levels",
	Long: `List the levels in a directory, or the built-in campaign when no
directory is given.

Examples:
  sancho levels list
  sancho levels list ./levels`,
	Args: cobra.MaximumNArgs(1),
	Run:  runLevelsList,
}

var levelsValidateCmd = &cobra.Command{
	Use:   "validate [dir]",
	Short: "Validate level files",
	Long: `Parse and validate every level_<n> file in a directory.
Exits with status 1 if any file is invalid.

Examples:
  sancho levels validate ./levels`,
	Args: cobra.MaximumNArgs(1),
	Run:  runLevelsValidate,
}

func init() {
	levelsCmd.AddCommand(levelsListCmd)
	levelsCmd.AddCommand(levelsValidateCmd)
}

func listEntries(args []string) []level.Entry {
	dir := ""
	if len(args) > 0 {
		dir = args[0]
	}
	loader := level.Embedded()
	if dir != "" {
		loader = level.NewLoader(dir)
	}
	entries, err := loader.List()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return entries
}

func runLevelsList(_ *cobra.Command, args []string) {
	entries := listEntries(args)
	if len(entries) == 0 {
		fmt.Println("No level files found.")
		return
	}

	fmt.Println("Levels:")
	fmt.Println()
	for _, e := range entries {
		if e.Err != nil {
			fmt.Printf("  %2d  %-24s  (invalid, run 'sancho levels validate')\n", e.Number, e.File)
			continue
		}
		d := e.Definition
		extra := ""
		if d.Boss != nil {
			extra = "  boss"
		}
		fmt.Printf("  %2d  %-24s  %d enemies, %d arepas%s\n",
			e.Number, d.Name(), len(d.Enemies), len(d.Powerups), extra)
	}
	fmt.Println()
	fmt.Println("Usage: sancho play")
}

func runLevelsValidate(_ *cobra.Command, args []string) {
	entries := listEntries(args)
	if len(entries) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no level files found")
		os.Exit(1)
	}

	invalid := 0
	for _, e := range entries {
		if e.Err != nil {
			invalid++
			fmt.Printf("FAIL  %s: %v\n", e.File, e.Err)
			continue
		}
		fmt.Printf("ok    %s\n", e.File)
	}

	if invalid > 0 {
		fmt.Printf("\n%d of %d level files invalid\n", invalid, len(entries))
		os.Exit(1)
	}
}
