package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crates-lurey-io/proc-result/pkg/lib/unix"
	"github.com/crates-lurey-io/proc-result/pkg/lib/windows"
)

type catalogEntry struct {
	Catalog string `json:"catalog" yaml:"catalog"`
	Name    string `json:"name" yaml:"name"`
	Code    uint32 `json:"code" yaml:"code"`
}

func catalog(which string) ([]catalogEntry, error) {
	var entries []catalogEntry
	all := which == ""

	if all || which == "unix" {
		for _, c := range unix.KnownExitCodes() {
			name, _ := c.Name()
			entries = append(entries, catalogEntry{Catalog: "unix", Name: name, Code: uint32(c)})
		}
	}
	if all || which == "windows" {
		for _, c := range windows.KnownExitCodes() {
			name, _ := c.Name()
			entries = append(entries, catalogEntry{Catalog: "windows", Name: name, Code: uint32(c)})
		}
	}
	if all || which == "signals" {
		for _, s := range unix.KnownSignals() {
			entries = append(entries, catalogEntry{Catalog: "signals", Name: s.String(), Code: uint32(s)})
		}
	}

	if entries == nil {
		return nil, fmt.Errorf("unknown catalog %q; use unix, windows or signals", which)
	}
	return entries, nil
}

func newCodesCmd(cfg *config) *cobra.Command {
	cmd := &cobra.Command{
		Use:       "codes [unix|windows|signals]",
		Short:     "List well-known exit codes and signals",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"unix", "windows", "signals"},
		RunE: func(cmd *cobra.Command, args []string) error {
			which := ""
			if len(args) == 1 {
				which = args[0]
			}
			entries, err := catalog(which)
			if err != nil {
				return err
			}
			return printCatalog(cmd.OutOrStdout(), cfg.Output, entries)
		},
	}
	return cmd
}
