package main

import (
	"context"
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	governor "github.com/tangle-network/go-governor"
)

type proposalIDFlags struct {
	Targets     []string
	Values      []string
	Calldatas   []string
	Description string
}

type voteFlags struct {
	Decimals int32
}

func newProposalCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "proposal",
		Short: "Compute proposal ids and read proposal state",
	}

	var idf proposalIDFlags
	idCmd := &cobra.Command{
		Use:   "id",
		Short: "Compute the id and propose calldata of a proposal offline",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := buildProposal(idf)
			if err != nil {
				return err
			}
			return printProposalID(cmd.OutOrStdout(), p)
		},
	}
	idCmd.Flags().SortFlags = false
	idCmd.Flags().StringArrayVar(&idf.Targets, "target", nil, "action target address (repeat once per action)")
	idCmd.Flags().StringArrayVar(&idf.Values, "value", nil, "action value in wei, or with an ether suffix such as 0.5ether (defaults to 0)")
	idCmd.Flags().StringArrayVar(&idf.Calldatas, "calldata", nil, "hex action calldata (defaults to empty)")
	idCmd.Flags().StringVar(&idf.Description, "description", "", "proposal description")

	stateCmd := &cobra.Command{
		Use:   "state <proposal-id>",
		Short: "Print the state of a proposal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseProposalID(args[0])
			if err != nil {
				return err
			}
			gov, client, err := a.bind(cmd.Context())
			if err != nil {
				return err
			}
			defer client.Close()

			state, err := gov.State(id).Call(cmd.Context())
			if err != nil {
				return errors.Wrap(err, "state")
			}
			fmt.Fprintln(cmd.OutOrStdout(), state)
			return nil
		},
	}

	var vf voteFlags
	votesCmd := &cobra.Command{
		Use:   "votes <proposal-id>",
		Short: "Print the vote tallies of a proposal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseProposalID(args[0])
			if err != nil {
				return err
			}
			gov, client, err := a.bind(cmd.Context())
			if err != nil {
				return err
			}
			defer client.Close()

			votes, err := gov.ProposalVotes(id).Call(cmd.Context())
			if err != nil {
				return errors.Wrap(err, "proposalVotes")
			}
			printVotes(cmd.OutOrStdout(), votes, vf.Decimals)
			return nil
		},
	}
	votesCmd.Flags().Int32Var(&vf.Decimals, "decimals", 18, "decimals of the voting token")

	infoCmd := &cobra.Command{
		Use:   "info <proposal-id>",
		Short: "Print state, schedule and tallies of a proposal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseProposalID(args[0])
			if err != nil {
				return err
			}
			gov, client, err := a.bind(cmd.Context())
			if err != nil {
				return err
			}
			defer client.Close()
			return printProposalInfo(cmd.Context(), cmd.OutOrStdout(), gov, id, vf.Decimals)
		},
	}
	infoCmd.Flags().Int32Var(&vf.Decimals, "decimals", 18, "decimals of the voting token")

	cmd.AddCommand(idCmd, stateCmd, votesCmd, infoCmd)
	return cmd
}

func buildProposal(f proposalIDFlags) (*governor.Proposal, error) {
	if len(f.Values) > len(f.Targets) || len(f.Calldatas) > len(f.Targets) {
		return nil, errors.Errorf("got %d targets, %d values and %d calldatas", len(f.Targets), len(f.Values), len(f.Calldatas))
	}

	b := governor.NewProposalBuilder()
	for i, t := range f.Targets {
		if !common.IsHexAddress(t) {
			return nil, errors.Errorf("action %d: invalid target %q", i, t)
		}
		value := new(big.Int)
		if i < len(f.Values) {
			v, err := parseValue(f.Values[i])
			if err != nil {
				return nil, errors.Wrapf(err, "action %d", i)
			}
			value = v
		}
		var calldata []byte
		if i < len(f.Calldatas) {
			data, err := decodeHex(f.Calldatas[i])
			if err != nil {
				return nil, errors.Wrapf(err, "action %d", i)
			}
			calldata = data
		}
		b.Add(common.HexToAddress(t), value, calldata)
	}
	return b.Build(f.Description)
}

func printProposalID(w io.Writer, p *governor.Proposal) error {
	id, err := p.ID()
	if err != nil {
		return err
	}
	calldata, err := p.ProposeCall().Pack()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "id:               %s\n", id)
	fmt.Fprintf(w, "id (hex):         %s\n", hexutil.EncodeBig(id))
	fmt.Fprintf(w, "description hash: %s\n", p.DescriptionHash().Hex())
	fmt.Fprintf(w, "propose calldata: %s\n", hexutil.Encode(calldata))
	return nil
}

func printVotes(w io.Writer, v governor.ProposalVotes, decimals int32) {
	fmt.Fprintf(w, "for:      %s\n", formatAmount(v.ForVotes, decimals))
	fmt.Fprintf(w, "against:  %s\n", formatAmount(v.AgainstVotes, decimals))
	fmt.Fprintf(w, "abstain:  %s\n", formatAmount(v.AbstainVotes, decimals))
	fmt.Fprintf(w, "total:    %s\n", formatAmount(v.Total(), decimals))
}

func printProposalInfo(ctx context.Context, w io.Writer, gov *governor.Governor, id *big.Int, decimals int32) error {
	state, err := gov.State(id).Call(ctx)
	if err != nil {
		return errors.Wrap(err, "state")
	}
	proposer, err := gov.ProposalProposer(id).Call(ctx)
	if err != nil {
		return errors.Wrap(err, "proposalProposer")
	}
	snapshot, err := gov.ProposalSnapshot(id).Call(ctx)
	if err != nil {
		return errors.Wrap(err, "proposalSnapshot")
	}
	deadline, err := gov.ProposalDeadline(id).Call(ctx)
	if err != nil {
		return errors.Wrap(err, "proposalDeadline")
	}
	eta, err := gov.ProposalEta(id).Call(ctx)
	if err != nil {
		return errors.Wrap(err, "proposalEta")
	}
	needsQueuing, err := gov.ProposalNeedsQueuing(id).Call(ctx)
	if err != nil {
		return errors.Wrap(err, "proposalNeedsQueuing")
	}
	votes, err := gov.ProposalVotes(id).Call(ctx)
	if err != nil {
		return errors.Wrap(err, "proposalVotes")
	}

	fmt.Fprintf(w, "id:            %s\n", id)
	fmt.Fprintf(w, "state:         %s\n", state)
	fmt.Fprintf(w, "proposer:      %s\n", proposer.Hex())
	fmt.Fprintf(w, "snapshot:      %s\n", snapshot)
	fmt.Fprintf(w, "deadline:      %s\n", deadline)
	fmt.Fprintf(w, "eta:           %s\n", eta)
	fmt.Fprintf(w, "needs queuing: %t\n", needsQueuing)
	printVotes(w, votes, decimals)

	// quorum reverts for a snapshot in the future.
	if state != governor.StatePending {
		quorum, err := gov.Quorum(snapshot).Call(ctx)
		if err != nil {
			return errors.Wrap(err, "quorum")
		}
		fmt.Fprintf(w, "quorum:   %s\n", formatAmount(quorum, decimals))
	}
	return nil
}

// parseProposalID accepts a decimal or 0x-prefixed hex id.
func parseProposalID(s string) (*big.Int, error) {
	id, ok := new(big.Int).SetString(s, 0)
	if !ok || id.Sign() < 0 {
		return nil, errors.Errorf("invalid proposal id %q", s)
	}
	return id, nil
}

// parseValue parses a wei amount, or an ether amount when suffixed with "ether".
func parseValue(s string) (*big.Int, error) {
	shift := int32(0)
	if trimmed, ok := strings.CutSuffix(s, "ether"); ok {
		s, shift = strings.TrimSpace(trimmed), 18
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid value %q", s)
	}
	d = d.Shift(shift)
	if d.IsNegative() || !d.Equal(d.Truncate(0)) {
		return nil, errors.Errorf("value %q is not a whole, non-negative wei amount", s)
	}
	return d.BigInt(), nil
}

// formatAmount renders a token amount with the given number of decimals.
func formatAmount(v *big.Int, decimals int32) string {
	if v == nil {
		v = new(big.Int)
	}
	return decimal.NewFromBigInt(v, -decimals).String()
}
