package main

import (
	"fmt"

	"github.com/spf13/cobra"

	appcli "github.com/yang-jeongman/snapmobile/internal/cli"
	appconfig "github.com/yang-jeongman/snapmobile/internal/config"
)

func runsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List recent conversion runs",
		RunE:  runRuns,
	}

	cmd.Flags().Int("limit", 20, "maximum number of runs to show")

	return cmd
}

func runRuns(cmd *cobra.Command, _ []string) error {
	limit, _ := cmd.Flags().GetInt("limit")

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

	runs, err := store.ListRuns(ctx, limit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, appcli.FormatInfo("no runs recorded yet"))
		return nil
	}

	fmt.Fprintln(out, appcli.FormatTitle("Conversion Runs"))
	fmt.Fprintln(out, appcli.TableHeaderStyle.Render(
		fmt.Sprintf("%-19s %-9s %-8s %-6s %-8s %s", "When", "Fragments", "Objects", "Cards", "Pledges", "Source")))
	for _, run := range runs {
		fmt.Fprintf(out, "%-19s %-9d %-8d %-6d %-8d %s\n",
			run.CreatedAt.Format("2006-01-02 15:04:05"),
			run.Fragments, run.Objects, run.Cards, run.Pledges, run.Source)
	}
	return nil
}
