package main

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	governor "github.com/tangle-network/go-governor"
)

func newSelectorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "selectors [calls|errors|events]",
		Short:     "Print the selector tables of the governor ABI",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"calls", "errors", "events"},
		RunE: func(cmd *cobra.Command, args []string) error {
			which := ""
			if len(args) == 1 {
				which = args[0]
			}
			return printSelectors(cmd.OutOrStdout(), which)
		},
	}
}

func printSelectors(w io.Writer, which string) error {
	parsed := governor.GovernorABI()

	if which == "" || which == "calls" {
		for _, sel := range governor.CallSelectors() {
			m, err := parsed.MethodById(sel.Bytes())
			if err != nil {
				return errors.Wrapf(err, "call selector %s", sel)
			}
			fmt.Fprintf(w, "call   %s  %s\n", sel, m.Sig)
		}
	}
	if which == "" || which == "errors" {
		for _, sel := range governor.ErrorSelectors() {
			e, err := parsed.ErrorByID(sel)
			if err != nil {
				return errors.Wrapf(err, "error selector %s", sel)
			}
			fmt.Fprintf(w, "error  %s  %s\n", sel, e.Sig)
		}
	}
	if which == "" || which == "events" {
		for _, topic := range governor.EventTopics() {
			ev, err := parsed.EventByID(topic)
			if err != nil {
				return errors.Wrapf(err, "event topic %s", topic)
			}
			fmt.Fprintf(w, "event  %s  %s\n", topic.Hex(), ev.Sig)
		}
	}
	return nil
}
