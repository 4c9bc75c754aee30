package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	governor "github.com/tangle-network/go-governor"
)

type decodeFlags struct {
	Strict bool
	Data   string
}

func newDecodeCmd() *cobra.Command {
	var f decodeFlags

	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode governor calldata, revert data or logs",
	}
	cmd.PersistentFlags().BoolVar(&f.Strict, "strict", false, "reject payloads that are not canonically encoded")

	callCmd := &cobra.Command{
		Use:   "call <calldata>",
		Short: "Decode transaction input",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return decodeCall(cmd.OutOrStdout(), args[0], f.Strict)
		},
	}

	errorCmd := &cobra.Command{
		Use:   "error <revert-data>",
		Short: "Decode revert data: a governor error, Error(string) or Panic(uint256)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return decodeRevert(cmd.OutOrStdout(), args[0], f.Strict)
		},
	}

	eventCmd := &cobra.Command{
		Use:   "event <topic0> [topic...]",
		Short: "Decode a log from its topics and data",
		Args:  cobra.RangeArgs(1, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return decodeEvent(cmd.OutOrStdout(), args, f.Data, f.Strict)
		},
	}
	eventCmd.Flags().StringVar(&f.Data, "data", "0x", "hex encoded log data")

	cmd.AddCommand(callCmd, errorCmd, eventCmd)
	return cmd
}

func decodeCall(w io.Writer, input string, strict bool) error {
	data, err := decodeHex(input)
	if err != nil {
		return err
	}
	call, err := governor.DecodeCall(data, strict)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s  %s\n", call.Selector(), call.Signature())
	fmt.Fprintln(w, governor.Format(call))
	return nil
}

func decodeRevert(w io.Writer, input string, strict bool) error {
	data, err := decodeHex(input)
	if err != nil {
		return err
	}
	reason, err := governor.DecodeRevert(data, strict)
	if err != nil {
		return err
	}
	switch r := reason.(type) {
	case *governor.RevertReason, *governor.PanicError:
		fmt.Fprintln(w, r.Error())
	case governor.ContractError:
		fmt.Fprintf(w, "%s  %s\n", r.Selector(), r.Signature())
		fmt.Fprintln(w, governor.Format(r))
	default:
		fmt.Fprintln(w, reason)
	}
	return nil
}

func decodeEvent(w io.Writer, topicArgs []string, dataArg string, strict bool) error {
	topics := make([]common.Hash, len(topicArgs))
	for i, s := range topicArgs {
		b, err := decodeHex(s)
		if err != nil {
			return errors.Wrapf(err, "topic %d", i)
		}
		if len(b) != common.HashLength {
			return errors.Errorf("topic %d: want %d bytes, got %d", i, common.HashLength, len(b))
		}
		topics[i] = common.BytesToHash(b)
	}
	data, err := decodeHex(dataArg)
	if err != nil {
		return errors.Wrap(err, "data")
	}

	ev, err := governor.DecodeEventRaw(topics[0], topics[1:], data, strict)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s  %s\n", ev.Topic().Hex(), ev.Signature())
	fmt.Fprintln(w, governor.Format(ev))
	return nil
}

// decodeHex accepts hex with or without the 0x prefix.
func decodeHex(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		s = "0x" + s
	}
	b, err := hexutil.Decode(s)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid hex %q", s)
	}
	return b, nil
}
