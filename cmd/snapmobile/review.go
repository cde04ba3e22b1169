package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	appcli "github.com/yang-jeongman/snapmobile/internal/cli"
	appconfig "github.com/yang-jeongman/snapmobile/internal/config"
	"github.com/yang-jeongman/snapmobile/internal/tui"
)

func reviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "review <fragments.json>",
		Short: "Interactively review and correct classifications",
		Long: `Classify a fragment file and open an interactive table of the results.
Type overrides made in the session are stored as correction samples for
offline rule tuning; they do not change the rule table.`,
		Args: cobra.ExactArgs(1),
		RunE: runReview,
	}
	return cmd
}

func runReview(cmd *cobra.Command, args []string) error {
	cfg, err := appconfig.Load()
	if err != nil {
		return err
	}
	eng, cls, err := buildEngine(cfg)
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	doc, err := readDocument(args[0])
	if err != nil {
		return err
	}
	result, err := eng.Convert(ctx, doc.Fragments, doc.PageHeight)
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}
	if len(result.Objects) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), appcli.FormatWarning("nothing to review: no fragments classified"))
		return nil
	}

	corrections, err := tui.Review(result.Objects)
	if err != nil {
		return err
	}
	if len(corrections) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), appcli.FormatInfo("no corrections recorded"))
		return nil
	}

	store, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	for _, correction := range corrections {
		cls.RecordCorrection(correction.Original, correction.Corrected, correction.Text, correction.Style)
		if err := store.SaveCorrection(ctx, correction); err != nil {
			return err
		}
	}

	slog.Info("Saved corrections", "count", len(corrections), "source", args[0])
	fmt.Fprintln(cmd.OutOrStdout(), appcli.FormatSuccess(fmt.Sprintf("saved %d corrections", len(corrections))))
	return nil
}
