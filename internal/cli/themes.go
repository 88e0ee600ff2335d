package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/notekeep/notekeep/internal/theme"
)

func init() {
	rootCmd.AddCommand(themesCmd)
}

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List themes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		active, err := GetConfig().ThemeID()
		if err != nil {
			return err
		}
		return writeThemes(cmd.OutOrStdout(), active, theme.DetectSystemTheme())
	},
}

type themeEntry struct {
	Name   string `json:"name"`
	Active bool   `json:"active"`
	System bool   `json:"system"`
}

func writeThemes(out io.Writer, active, system theme.ID) error {
	entries := make([]themeEntry, 0, len(theme.IDs()))
	for _, id := range theme.IDs() {
		entries = append(entries, themeEntry{
			Name:   string(id),
			Active: id == active,
			System: id == system,
		})
	}
	if IsJSONOutput() {
		return writeJSON(out, entries)
	}

	rows := make([][]string, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, []string{entry.Name, formatYesNo(entry.Active), formatYesNo(entry.System)})
	}
	return writeTable(out, []string{"THEME", "ACTIVE", "SYSTEM"}, rows)
}

func formatYesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
