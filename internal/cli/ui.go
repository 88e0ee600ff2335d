package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/notekeep/notekeep/internal/tui"
)

func init() {
	rootCmd.AddCommand(previewCmd)
}

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview themes in the terminal",
	Long:  "Launch an interactive preview of the title bar, note previews and pin button under both themes.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if IsNonInteractive() {
			return fmt.Errorf("preview requires an interactive terminal")
		}
		resolver, err := newResolver()
		if err != nil {
			return err
		}
		return tui.Run(resolver)
	},
}
