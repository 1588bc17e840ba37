package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/pcomb/diag"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>...",
		Short: "Report syntax errors and malformed numbers in datum files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := 0
			for _, filename := range args {
				data, err := os.ReadFile(filename)
				if err != nil {
					return fmt.Errorf("read datum file: %w", err)
				}

				diagnostics := diag.Check(filename, string(data))
				for _, d := range diagnostics {
					fmt.Fprintln(cmd.OutOrStdout(), d)
				}
				if hasErrors(diagnostics) {
					failed++
				}
				a.log.Debugf("%s: %d diagnostics", filename, len(diagnostics))
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d files failed to parse", failed, len(args))
			}
			return nil
		},
	}
}

func hasErrors(diagnostics []diag.Diagnostic) bool {
	for _, d := range diagnostics {
		if d.Severity == diag.SeverityError {
			return true
		}
	}
	return false
}
