package main

import (
	"fmt"

	"github.com/spf13/cobra"

	appcli "github.com/yang-jeongman/snapmobile/internal/cli"
	appconfig "github.com/yang-jeongman/snapmobile/internal/config"
)

func correctionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "corrections",
		Short: "List stored classification corrections",
		RunE:  runCorrections,
	}

	cmd.Flags().Bool("counts", false, "show per-type correction counts instead of samples")

	return cmd
}

func runCorrections(cmd *cobra.Command, _ []string) error {
	counts, _ := cmd.Flags().GetBool("counts")

	cfg, err := appconfig.Load()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	store, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	out := cmd.OutOrStdout()

	if counts {
		byType, err := store.CorrectionCounts(ctx)
		if err != nil {
			return err
		}
		if len(byType) == 0 {
			fmt.Fprintln(out, appcli.FormatInfo("no corrections recorded yet"))
			return nil
		}
		fmt.Fprintln(out, appcli.FormatTitle("Corrections by Original Type"))
		for objType, count := range byType {
			fmt.Fprintf(out, "%-10s %5d\n", objType, count)
		}
		return nil
	}

	corrections, err := store.ListCorrections(ctx)
	if err != nil {
		return err
	}
	if len(corrections) == 0 {
		fmt.Fprintln(out, appcli.FormatInfo("no corrections recorded yet"))
		return nil
	}

	fmt.Fprintln(out, appcli.FormatTitle("Corrections"))
	for _, c := range corrections {
		fmt.Fprintf(out, "%s → %s  %s\n", c.Original, c.Corrected,
			appcli.SubtleStyle.Render(c.Text))
	}
	return nil
}
