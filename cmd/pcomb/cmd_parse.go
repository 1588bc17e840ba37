package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dhamidi/pcomb/datum"
	"github.com/dhamidi/pcomb/diag"
	"github.com/dhamidi/pcomb/format"
)

func newParseCmd(a *app) *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a datum file and dump the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			if !cmd.Flags().Changed("format") {
				outputFormat = a.cfg.Output.Format
			}

			encoder, err := format.New(outputFormat, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			data, err := os.ReadFile(filename)
			if err != nil {
				return fmt.Errorf("read datum file: %w", err)
			}
			src := string(data)

			doc, err := datum.Parse(src)
			if err != nil {
				return fmt.Errorf("parse datum file: %s", diag.FromError(filename, src, err))
			}
			a.log.Infof("%s: %d bindings", filename, len(doc.Bindings))

			if err := encoder.Encode(doc); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "output format ("+strings.Join(format.Names, ", ")+")")

	return cmd
}
