package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/skratchdot/open-golang/open"
	"github.com/spf13/cobra"

	"github.com/zjrosen/txdash/internal/log"
	"github.com/zjrosen/txdash/internal/presentation"
	"github.com/zjrosen/txdash/internal/snapshot"
	"github.com/zjrosen/txdash/internal/txsource"
	"github.com/zjrosen/txdash/internal/ui/styles"
)

var (
	snapScroll    int
	snapHeight    int
	snapRowHeight int
	snapBuffer    int
	snapTitle     string
	snapOutput    string
	snapTheme     string
	snapOpen      bool
	snapJSON      bool
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Write the visible window of the table as an HTML page",
	Long: `Render the transactions table at a scroll position into a static HTML page.

Only the rows in the computed window (plus overscan) are written; a spacer
keeps the page as tall as the full dataset. Rows come from data.path, or the
default 10,000-row dataset when none is configured.

Examples:
  # Window around 2000px of a 400px viewport
  txdash snapshot --scroll 2000 --height 400 --row-height 40 -o out.html

  # Open the page in the browser afterwards
  txdash snapshot --scroll 120000 --open

  # Print the window as JSON
  txdash snapshot --json | jq '.window'`,
	RunE: runSnapshot,
}

func init() {
	snapshotCmd.Flags().IntVar(&snapScroll, "scroll", 0, "scroll offset in px")
	snapshotCmd.Flags().IntVar(&snapHeight, "height", snapshot.DefaultHeight, "viewport height in px")
	snapshotCmd.Flags().IntVar(&snapRowHeight, "row-height", snapshot.DefaultRowHeight, "row height in px")
	snapshotCmd.Flags().IntVar(&snapBuffer, "buffer", 0, "overscan rows (default 10)")
	snapshotCmd.Flags().StringVar(&snapTitle, "title", snapshot.DefaultTitle, "page title")
	snapshotCmd.Flags().StringVarP(&snapOutput, "output", "o", "snapshot.html", "output file")
	snapshotCmd.Flags().StringVar(&snapTheme, "theme", "", "page theme, dark or light (default: theme.mode)")
	snapshotCmd.Flags().BoolVar(&snapOpen, "open", false, "open the page in the default browser")
	snapshotCmd.Flags().BoolVar(&snapJSON, "json", false, "print the rendered window as JSON")
	rootCmd.AddCommand(snapshotCmd)
}

func runSnapshot(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	theme, err := styles.ParseMode(snapTheme)
	if err != nil {
		return err
	}
	if theme == "" {
		theme = cfg.Theme.Mode
	}
	if theme == "" {
		theme = styles.ModeLight
	}

	source, err := txsource.Open(cfg.Data.Path)
	if err != nil {
		return err
	}
	rows, err := txsource.LoadOrDefault(ctx, source)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v, using the default dataset\n", err)
	}

	renderer, err := snapshot.NewRenderer()
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	result, err := renderer.Render(ctx, &buf, snapshot.Options{
		Title:        snapTitle,
		Rows:         rows,
		ScrollOffset: snapScroll,
		Height:       snapHeight,
		RowHeight:    snapRowHeight,
		Buffer:       snapBuffer,
		Theme:        theme,
	})
	if err != nil {
		return err
	}
	if err := os.WriteFile(snapOutput, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", snapOutput, err)
	}
	log.Info(log.CatTable, "Snapshot saved", "path", snapOutput, "start", result.Window.Start, "end", result.Window.End)

	if snapJSON {
		dto := presentation.FromSnapshotResult(snapOutput, len(rows), result)
		if err := presentation.NewFormatter(cmd.OutOrStdout()).FormatSnapshot(dto); err != nil {
			return err
		}
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s: rows %d–%d of %s, body offset %dpx\n",
			snapOutput, result.Window.Start, result.Window.End,
			snapshot.FormatRowCount(len(rows)), result.BodyOffset)
	}

	if snapOpen {
		if err := open.Run(snapOutput); err != nil {
			return fmt.Errorf("opening %s: %w", snapOutput, err)
		}
	}
	return nil
}
