package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/notekeep/notekeep/internal/appearance"
	"github.com/notekeep/notekeep/internal/theme"
	"github.com/notekeep/notekeep/internal/tui/styles"
)

func init() {
	rootCmd.AddCommand(colorsCmd)
}

var colorsCmd = &cobra.Command{
	Use:   "colors [KEY...]",
	Short: "Show palette colors for the active theme",
	Long:  "Resolve color keys (DEFAULT, RED, ..., text, none) under the active theme. Without arguments every key is shown.",
	RunE: func(cmd *cobra.Command, args []string) error {
		resolver, err := newResolver()
		if err != nil {
			return err
		}

		keys := theme.ColorKeys()
		if len(args) > 0 {
			keys = keys[:0]
			for _, arg := range args {
				key, err := theme.ParseColorKey(arg)
				if err != nil {
					return err
				}
				keys = append(keys, key)
			}
		}
		return writeColors(cmd.OutOrStdout(), resolver, keys, colorEnabled())
	},
}

type colorEntry struct {
	Theme string `json:"theme"`
	Key   string `json:"key"`
	Value string `json:"value"`
}

func resolveColors(resolver *appearance.Resolver, keys []theme.ColorKey) ([]colorEntry, error) {
	entries := make([]colorEntry, 0, len(keys))
	for _, key := range keys {
		value, err := resolver.Lookup(key)
		if err != nil {
			return nil, err
		}
		entries = append(entries, colorEntry{
			Theme: string(resolver.Theme()),
			Key:   key.String(),
			Value: value,
		})
	}
	return entries, nil
}

func writeColors(out io.Writer, resolver *appearance.Resolver, keys []theme.ColorKey, paint bool) error {
	entries, err := resolveColors(resolver, keys)
	if err != nil {
		return err
	}
	if IsJSONOutput() {
		return writeJSON(out, entries)
	}

	rows := make([][]string, 0, len(entries))
	for _, entry := range entries {
		row := []string{entry.Key, entry.Value}
		if paint {
			row = append(row, styles.Swatch(entry.Value).Render(entry.Value))
		}
		rows = append(rows, row)
	}

	headers := []string{"KEY", "VALUE"}
	if paint {
		headers = append(headers, "SWATCH")
	}
	return writeTable(out, headers, rows)
}
