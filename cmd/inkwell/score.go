package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/inkwell-ai/inkwell/internal/risk"
)

func newScoreCmd() *cobra.Command {
	var subject, body string

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score an email for content risk",
		Long:  "Runs the deterministic content-risk scorer over a subject and body and prints the report as JSON.",
		RunE: func(_ *cobra.Command, _ []string) error {
			report := risk.Score(subject, body)
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		},
	}

	cmd.Flags().StringVarP(&subject, "subject", "s", "", "email subject")
	cmd.Flags().StringVarP(&body, "body", "b", "", "email body")
	return cmd
}
