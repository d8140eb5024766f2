package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/internal/runner"
)

func (a *app) policiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "policies",
		Short: "List movement policies and their parameters",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 0 {
				return usageError("policies takes no arguments")
			}
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(a.stdout, policyTable(runner.Specs()))
			return err
		},
	}
}

func policyTable(specs []runner.Spec) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("POLICY", "SUMMARY", "INPUT", "PARAMS")
	for _, s := range specs {
		params := make([]string, 0, len(s.Params))
		for _, p := range s.Params {
			params = append(params, p.Name+"="+p.Default)
		}
		t.Row(s.Name, s.Summary, s.Input, strings.Join(params, "\n"))
	}
	return t.String()
}
