package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/notekeep/notekeep/internal/appearance"
	"github.com/notekeep/notekeep/internal/theme"
	"github.com/notekeep/notekeep/internal/theme/stylesheet"
)

var (
	stylesheetColor string
	stylesheetWatch bool
)

func init() {
	rootCmd.AddCommand(stylesheetCmd)

	stylesheetCmd.Flags().StringVarP(&stylesheetColor, "color", "c", "DEFAULT", "note color key")
	stylesheetCmd.Flags().BoolVarP(&stylesheetWatch, "watch", "w", false, "re-render when the stylesheet override changes")
}

var stylesheetCmd = &cobra.Command{
	Use:   "stylesheet CLASS",
	Short: "Print the resolved stylesheet for a consumer class",
	Long:  "Print the stylesheet of TitleBar, NotesListWindow, NoteListPreview or NoteWindow with every placeholder resolved.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		class, err := stylesheet.ParseClass(args[0])
		if err != nil {
			return err
		}
		key, err := parseColorArg(stylesheetColor)
		if err != nil {
			return err
		}
		resolver, err := newResolver()
		if err != nil {
			return err
		}

		if !stylesheetWatch {
			return writeStylesheet(cmd.OutOrStdout(), resolver, class, key)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		return watchStylesheet(ctx, cmd.OutOrStdout(), resolver, class, key)
	},
}

func writeStylesheet(out io.Writer, resolver *appearance.Resolver, class stylesheet.Class, key theme.ColorKey) error {
	sheet, err := resolver.Stylesheet(class, key)
	if err != nil {
		return err
	}
	if IsJSONOutput() {
		return writeJSON(out, map[string]string{
			"class":      string(class),
			"color":      key.String(),
			"theme":      string(resolver.Theme()),
			"source":     resolver.TemplateSource(),
			"stylesheet": sheet,
		})
	}
	_, err = fmt.Fprintln(out, sheet)
	return err
}

// reloadTemplate re-reads the override search paths into the resolver.
func reloadTemplate(resolver *appearance.Resolver, projectDir string) (string, error) {
	tmpl, source, err := stylesheet.LoadTemplate(appFs, projectDir)
	if err != nil {
		return "", err
	}
	resolver.Stylesheets().SetTemplate(tmpl)
	return source, nil
}

func watchStylesheet(ctx context.Context, out io.Writer, resolver *appearance.Resolver, class stylesheet.Class, key theme.ColorKey) error {
	logger := cliLogger()
	projectDir := GetConfig().ProjectDir

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	watched := 0
	for _, path := range stylesheet.TemplateSearchPaths(projectDir) {
		dir := filepath.Dir(path)
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
		logger.Debug().Str("dir", dir).Msg("watching stylesheet directory")
		watched++
	}
	if watched == 0 {
		return fmt.Errorf("no stylesheet override directory exists; create one of %v", stylesheet.TemplateSearchPaths(projectDir))
	}

	if err := writeStylesheet(out, resolver, class, key); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != stylesheet.TemplateFileName {
				continue
			}
			source, err := reloadTemplate(resolver, projectDir)
			if err != nil {
				logger.Warn().Err(err).Msg("stylesheet reload failed")
				continue
			}
			logger.Info().Str("source", source).Str("op", event.Op.String()).Msg("stylesheet reloaded")
			if err := writeStylesheet(out, resolver, class, key); err != nil {
				return err
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn().Err(err).Msg("stylesheet watcher error")
		}
	}
}
