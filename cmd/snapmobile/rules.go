package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	appcli "github.com/yang-jeongman/snapmobile/internal/cli"
	"github.com/yang-jeongman/snapmobile/internal/classifier"
)

func rulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the classification rule table",
		RunE:  runRules,
	}

	cmd.Flags().Bool("by-priority", false, "sort by priority instead of table order")

	return cmd
}

func runRules(cmd *cobra.Command, _ []string) error {
	byPriority, _ := cmd.Flags().GetBool("by-priority")

	rules := classifier.DefaultRules()
	if byPriority {
		sort.SliceStable(rules, func(i, j int) bool {
			return rules[i].Priority > rules[j].Priority
		})
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, appcli.FormatTitle("Classification Rules"))
	fmt.Fprintln(out, appcli.TableHeaderStyle.Render(
		fmt.Sprintf("%-22s %-8s %-9s %-10s", "Name", "Type", "Priority", "Confidence")))

	for _, rule := range rules {
		fmt.Fprintf(out, "%-22s %-8s %-9d %-10.2f\n",
			rule.Name, rule.Type, rule.Priority, rule.BaseConfidence)
	}
	fmt.Fprintln(out, appcli.SubtleStyle.Render(fmt.Sprintf("%d rules", len(rules))))
	return nil
}
