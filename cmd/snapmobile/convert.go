package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	appcli "github.com/yang-jeongman/snapmobile/internal/cli"
	appconfig "github.com/yang-jeongman/snapmobile/internal/config"
	"github.com/yang-jeongman/snapmobile/internal/storage"
)

func convertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <fragments.json> [more.json...]",
		Short: "Convert extracted fragments into a mobile layout",
		Long: `Run the full pipeline over one or more fragment files: classify every
fragment, analyze the page layout, detect pledge cards and synthesize the
mobile layout.

For a single input the full result is written as JSON; for multiple inputs
each result lands next to its source file with a .mobile.json suffix.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runConvert,
	}

	cmd.Flags().StringP("output", "o", "", "output file for a single input (default: stdout)")
	cmd.Flags().Bool("mobile-only", false, "emit only the mobile layout, not the full result")
	cmd.Flags().Bool("save", false, "record the run in the local database")

	return cmd
}

func runConvert(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	mobileOnly, _ := cmd.Flags().GetBool("mobile-only")
	save, _ := cmd.Flags().GetBool("save")

	if output != "" && len(args) > 1 {
		return fmt.Errorf("--output only applies to a single input file")
	}

	cfg, err := appconfig.Load()
	if err != nil {
		return err
	}
	eng, _, err := buildEngine(cfg)
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	var store *storage.SQLiteStorage
	if save {
		store, err = openStore(ctx, cfg)
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()
	}

	var bar *progressbar.ProgressBar
	if len(args) > 1 {
		bar = progressbar.NewOptions(len(args),
			progressbar.OptionSetWriter(cmd.ErrOrStderr()),
			progressbar.OptionShowCount(),
			progressbar.OptionSetWidth(40),
			progressbar.OptionSetDescription("Converting documents..."),
		)
	}

	for _, path := range args {
		doc, err := readDocument(path)
		if err != nil {
			return err
		}

		result, err := eng.Convert(ctx, doc.Fragments, doc.PageHeight)
		if err != nil {
			return fmt.Errorf("conversion of %s failed: %w", path, err)
		}

		if store != nil {
			run := storage.Run{
				Source:    path,
				Fragments: len(doc.Fragments),
				Objects:   len(result.Objects),
				Cards:     len(result.Cards),
				Pledges:   len(result.Mobile.PledgeCards),
			}
			if err := store.SaveRun(ctx, run); err != nil {
				return err
			}
		}

		var payload any = result
		if mobileOnly {
			payload = result.Mobile
		}

		target := output
		if len(args) > 1 {
			target = strings.TrimSuffix(path, ".json") + ".mobile.json"
		}
		if err := writeJSON(target, payload); err != nil {
			return err
		}

		if target != "" && target != "-" {
			fmt.Fprintln(cmd.OutOrStdout(), appcli.RenderSummary(result))
			slog.Info("Wrote conversion result", "source", path, "output", target)
		}

		if bar != nil {
			_ = bar.Add(1)
		}
	}

	return nil
}
