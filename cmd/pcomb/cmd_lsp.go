package main

import (
	"github.com/spf13/cobra"

	"github.com/dhamidi/pcomb/lsp"
)

func newLSPCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server",
		RunE: func(cmd *cobra.Command, args []string) error {
			a.log.Noticef("starting %s language server", a.cfg.LSP.Name)
			server := lsp.NewServer(a.cfg.LSP.Name, version)
			return server.RunStdio()
		},
	}
}
