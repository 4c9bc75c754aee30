package main

import (
	"bytes"
	"math/big"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	governor "github.com/tangle-network/go-governor"
	"github.com/tangle-network/go-governor/watcher"
)

const setVotingDelay7200 = "0x790518870000000000000000000000000000000000000000000000000000000000001c20"

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSelectorsCommand(t *testing.T) {
	out, err := execute(t, "selectors", "events")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, len(governor.EventTopics()))
	assert.Contains(t, out, governor.TopicVoteCast.Hex())
	assert.Contains(t, out, "VoteCast(address,uint256,uint8,uint256,string)")

	out, err = execute(t, "selectors")
	require.NoError(t, err)
	lines = strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, len(governor.CallSelectors())+len(governor.ErrorSelectors())+len(governor.EventTopics()))

	_, err = execute(t, "selectors", "functions")
	assert.Error(t, err)
}

func TestDecodeCallCommand(t *testing.T) {
	out, err := execute(t, "decode", "call", setVotingDelay7200)
	require.NoError(t, err)
	assert.Contains(t, out, "setVotingDelay(uint48)")
	assert.Contains(t, out, "setVotingDelay(newVotingDelay: 7200)")

	// the prefix is optional
	_, err = execute(t, "decode", "call", strings.TrimPrefix(setVotingDelay7200, "0x"))
	require.NoError(t, err)

	_, err = execute(t, "decode", "call", "0xdeadbeef")
	assert.ErrorIs(t, err, governor.ErrUnknownSelector)

	_, err = execute(t, "decode", "call", "0xzz")
	assert.ErrorContains(t, err, "invalid hex")
}

func TestDecodeCallCommandStrict(t *testing.T) {
	trailing := setVotingDelay7200 + strings.Repeat("00", 32)

	_, err := execute(t, "decode", "call", trailing)
	require.NoError(t, err)

	_, err = execute(t, "decode", "--strict", "call", trailing)
	assert.ErrorIs(t, err, governor.ErrNonCanonical)
}

func TestDecodeErrorCommand(t *testing.T) {
	data, err := (&governor.GovernorNonexistentProposal{ProposalID: big.NewInt(42)}).Pack()
	require.NoError(t, err)

	out, err := execute(t, "decode", "error", hexutil.Encode(data))
	require.NoError(t, err)
	assert.Contains(t, out, "GovernorNonexistentProposal(proposalId: 42)")

	// Panic(0x11)
	panicData := "0x4e487b71" + strings.Repeat("0", 62) + "11"
	out, err = execute(t, "decode", "error", panicData)
	require.NoError(t, err)
	assert.Contains(t, out, "arithmetic underflow or overflow")
}

func TestDecodeEventCommand(t *testing.T) {
	voter := common.HexToAddress("0x00000000000000000000000000000000000000bb")
	topics, data, err := governor.EncodeEvent(&governor.VoteCastEvent{
		Voter:      voter,
		ProposalID: big.NewInt(5),
		Support:    governor.VoteFor,
		Weight:     big.NewInt(100),
		Reason:     "lgtm",
	})
	require.NoError(t, err)
	require.Len(t, topics, 2)

	out, err := execute(t, "decode", "event", topics[0].Hex(), topics[1].Hex(), "--data", hexutil.Encode(data))
	require.NoError(t, err)
	assert.Contains(t, out, "support: For")
	assert.Contains(t, out, `reason: "lgtm"`)

	_, err = execute(t, "decode", "event", topics[0].Hex(), "--data", hexutil.Encode(data))
	assert.ErrorIs(t, err, governor.ErrShortInput)

	_, err = execute(t, "decode", "event", "0x1234")
	assert.ErrorContains(t, err, "want 32 bytes")
}

func TestProposalIDCommand(t *testing.T) {
	out, err := execute(t, "proposal", "id",
		"--target", "0x1111111111111111111111111111111111111111",
		"--calldata", setVotingDelay7200,
		"--description", "Lengthen voting delay",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "0xc9014868a87f06728a3d66f05206dd923acc86ba0347e88bfee8ad45d0cae5f1")
	assert.Contains(t, out, "0x15d0d07c66b0bce7b7b6774366097ca7bd53c7a1475716aadbc3b38421b3c12c")
	assert.Contains(t, out, "propose calldata: 0x7d5e81e2")

	_, err = execute(t, "proposal", "id", "--description", "empty")
	assert.ErrorIs(t, err, governor.ErrEmptyProposal)

	_, err = execute(t, "proposal", "id", "--target", "nope")
	assert.ErrorContains(t, err, "invalid target")
}

func TestProposalStateRequiresAddress(t *testing.T) {
	t.Setenv("GOVCTL_ADDRESS", "")

	_, err := execute(t, "proposal", "state", "1")
	assert.ErrorContains(t, err, "--address")

	_, err = execute(t, "proposal", "state", "--address", "0x1234", "1")
	assert.ErrorContains(t, err, "invalid governor address")

	_, err = execute(t, "proposal", "state", "-5")
	assert.Error(t, err)
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "0", want: "0"},
		{in: "12345", want: "12345"},
		{in: "1ether", want: "1000000000000000000"},
		{in: "0.5 ether", want: "500000000000000000"},
		{in: "1.5", wantErr: true},
		{in: "-1", wantErr: true},
		{in: "lots", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseValue(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestFormatAmount(t *testing.T) {
	v, _ := new(big.Int).SetString("1500000000000000000", 10)
	assert.Equal(t, "1.5", formatAmount(v, 18))
	assert.Equal(t, "0", formatAmount(nil, 18))
	assert.Equal(t, "42", formatAmount(big.NewInt(42), 0))

	var buf bytes.Buffer
	printVotes(&buf, governor.ProposalVotes{ForVotes: v, AgainstVotes: big.NewInt(0)}, 18)
	assert.Contains(t, buf.String(), "for:      1.5")
	assert.Contains(t, buf.String(), "total:    1.5")
}

func TestParseProposalID(t *testing.T) {
	id, err := parseProposalID("0x10")
	require.NoError(t, err)
	assert.Equal(t, int64(16), id.Int64())

	id, err = parseProposalID("10")
	require.NoError(t, err)
	assert.Equal(t, int64(10), id.Int64())

	_, err = parseProposalID("ten")
	assert.Error(t, err)
}

func TestWatchOptions(t *testing.T) {
	start, err := parseStart("genesis")
	require.NoError(t, err)
	assert.Equal(t, watcher.FromGenesis(), start)

	start, err = parseStart("1234")
	require.NoError(t, err)
	assert.Equal(t, watcher.FromBlock(1234), start)

	_, err = parseStart("yesterday")
	assert.Error(t, err)

	topics, err := eventTopics([]string{"VoteCast", "ProposalCreated"})
	require.NoError(t, err)
	assert.Equal(t, []common.Hash{governor.TopicVoteCast, governor.TopicProposalCreated}, topics)

	_, err = eventTopics([]string{"Transfer"})
	assert.ErrorContains(t, err, "unknown governor event")

	opts, err := watchOptions(watchFlags{From: "current", Step: 10, Events: []string{"VoteCast"}}, zerolog.Nop())
	require.NoError(t, err)
	assert.NotEmpty(t, opts)

	_, err = watchOptions(watchFlags{From: "current", Events: []string{"Nope"}}, zerolog.Nop())
	assert.Error(t, err)
}

func TestWatchRequiresAddress(t *testing.T) {
	t.Setenv("GOVCTL_ADDRESS", "")
	_, err := execute(t, "watch")
	assert.ErrorContains(t, err, "--address")
}

func TestInvalidLogFlags(t *testing.T) {
	_, err := execute(t, "--log-format", "xml", "selectors")
	assert.Error(t, err)

	_, err = execute(t, "--log-level", "loud", "selectors")
	assert.Error(t, err)
}
