package governor

import (
	"math/big"
	"reflect"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// drawArguments fills the tagged fields of v with arbitrary values valid for args.
func drawArguments(t *rapid.T, args abi.Arguments, v any) {
	rv := reflect.ValueOf(v).Elem()
	fields := taggedFields(rv.Type())
	for _, arg := range args {
		idx, ok := fields[arg.Name]
		if !ok {
			t.Fatalf("no field for argument %q", arg.Name)
		}
		drawValue(t, arg.Type, rv.Field(idx), arg.Name)
	}
}

func drawValue(t *rapid.T, typ abi.Type, dst reflect.Value, label string) {
	switch typ.T {
	case abi.AddressTy:
		b := rapid.SliceOfN(rapid.Byte(), common.AddressLength, common.AddressLength).Draw(t, label)
		dst.Set(reflect.ValueOf(common.BytesToAddress(b)))
	case abi.UintTy:
		switch typ.Size {
		case 8:
			dst.SetUint(uint64(rapid.Uint8().Draw(t, label)))
		case 16:
			dst.SetUint(uint64(rapid.Uint16().Draw(t, label)))
		case 32:
			dst.SetUint(uint64(rapid.Uint32().Draw(t, label)))
		case 64:
			dst.SetUint(rapid.Uint64().Draw(t, label))
		default:
			b := rapid.SliceOfN(rapid.Byte(), 0, typ.Size/8).Draw(t, label)
			dst.Set(reflect.ValueOf(new(big.Int).SetBytes(b)))
		}
	case abi.BoolTy:
		dst.SetBool(rapid.Bool().Draw(t, label))
	case abi.StringTy:
		dst.SetString(rapid.String().Draw(t, label))
	case abi.BytesTy:
		dst.SetBytes(rapid.SliceOfN(rapid.Byte(), 0, 96).Draw(t, label))
	case abi.FixedBytesTy:
		b := rapid.SliceOfN(rapid.Byte(), typ.Size, typ.Size).Draw(t, label)
		reflect.Copy(dst, reflect.ValueOf(b))
	case abi.SliceTy:
		n := rapid.IntRange(0, 4).Draw(t, label+".len")
		s := reflect.MakeSlice(dst.Type(), n, n)
		for i := 0; i < n; i++ {
			drawValue(t, *typ.Elem, s.Index(i), label)
		}
		dst.Set(s)
	default:
		t.Fatalf("no generator for %s", typ)
	}
}

// equalValues compares decoded values: big.Int by value, nil and empty
// slices as equal.
func equalValues(a, b reflect.Value) bool {
	if a.Type() != b.Type() {
		return false
	}
	if a.Type() == reflect.TypeOf((*big.Int)(nil)) {
		if a.IsNil() || b.IsNil() {
			return a.IsNil() == b.IsNil()
		}
		return a.Interface().(*big.Int).Cmp(b.Interface().(*big.Int)) == 0
	}
	switch a.Kind() {
	case reflect.Ptr:
		if a.IsNil() || b.IsNil() {
			return a.IsNil() == b.IsNil()
		}
		return equalValues(a.Elem(), b.Elem())
	case reflect.Struct:
		for i := 0; i < a.NumField(); i++ {
			if !equalValues(a.Field(i), b.Field(i)) {
				return false
			}
		}
		return true
	case reflect.Slice:
		if a.Len() != b.Len() {
			return false
		}
		for i := 0; i < a.Len(); i++ {
			if !equalValues(a.Index(i), b.Index(i)) {
				return false
			}
		}
		return true
	}
	return reflect.DeepEqual(a.Interface(), b.Interface())
}

func TestCallRoundTrip(t *testing.T) {
	for _, entry := range callTable {
		name := entry.build().Name()
		m, err := methodFor(entry.selector)
		require.NoError(t, err)

		t.Run(name, rapid.MakeCheck(func(t *rapid.T) {
			in := entry.build()
			drawArguments(t, m.Inputs, in)

			data, err := in.Pack()
			if err != nil {
				t.Fatalf("pack: %v", err)
			}
			if !reflect.DeepEqual(data[:SelectorSize], in.Selector().Bytes()) {
				t.Fatalf("calldata does not start with selector %s", in.Selector())
			}

			for _, validate := range []bool{false, true} {
				out, err := DecodeCall(data, validate)
				if err != nil {
					t.Fatalf("decode (validate=%v): %v", validate, err)
				}
				if !equalValues(reflect.ValueOf(in), reflect.ValueOf(out)) {
					t.Fatalf("round trip mismatch:\n in: %s\nout: %s", formatVariant(in), formatVariant(out))
				}
			}
		}))
	}
}

func TestContractErrorRoundTrip(t *testing.T) {
	for _, entry := range errorTable {
		name := entry.build().Name()
		abiErr, err := errorFor(entry.selector)
		require.NoError(t, err)

		t.Run(name, rapid.MakeCheck(func(t *rapid.T) {
			in := entry.build()
			drawArguments(t, abiErr.Inputs, in)

			data, err := in.Pack()
			if err != nil {
				t.Fatalf("pack: %v", err)
			}
			out, err := DecodeContractError(data, true)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if !equalValues(reflect.ValueOf(in), reflect.ValueOf(out)) {
				t.Fatalf("round trip mismatch:\n in: %s\nout: %s", in, out)
			}
		}))
	}
}

func TestEventRoundTrip(t *testing.T) {
	for _, entry := range eventTable {
		name := entry.build().Name()
		abiEvent, err := eventFor(entry.topic)
		require.NoError(t, err)

		t.Run(name, rapid.MakeCheck(func(t *rapid.T) {
			in := entry.build()
			drawArguments(t, abiEvent.Inputs, in)

			topics, data, err := EncodeEvent(in)
			if err != nil {
				t.Fatalf("encode: %v", err)
			}
			if topics[0] != in.Topic() {
				t.Fatalf("first topic %s, want %s", topics[0], in.Topic())
			}

			out, err := DecodeEventRaw(topics[0], topics[1:], data, true)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if !equalValues(reflect.ValueOf(in), reflect.ValueOf(out)) {
				t.Fatalf("round trip mismatch:\n in: %s\nout: %s", formatVariant(in), formatVariant(out))
			}
		}))
	}
}

func TestPackKnownEncoding(t *testing.T) {
	call := &CastVoteCall{ProposalID: big.NewInt(1), Support: VoteFor}
	data, err := call.Pack()
	require.NoError(t, err)

	want := common.FromHex("0x56781388" +
		"0000000000000000000000000000000000000000000000000000000000000001" +
		"0000000000000000000000000000000000000000000000000000000000000001")
	assert.Equal(t, want, data)
}

func TestPackNilBigInt(t *testing.T) {
	_, err := (&StateCall{}).Pack()

	var argErr *ArgumentError
	require.ErrorAs(t, err, &argErr)
	assert.Equal(t, "state", argErr.Name)
	assert.Equal(t, "proposalId", argErr.Field)
}

func TestPackNilBigIntInSlice(t *testing.T) {
	_, err := (&ProposeCall{
		Targets:   []common.Address{{}},
		Values:    []*big.Int{nil},
		Calldatas: [][]byte{nil},
	}).Pack()

	var argErr *ArgumentError
	require.ErrorAs(t, err, &argErr)
	assert.Equal(t, "values", argErr.Field)
}

func TestFormatVariant(t *testing.T) {
	e := &GovernorUnexpectedProposalState{
		ProposalID:     big.NewInt(7),
		Current:        StateDefeated,
		ExpectedStates: NewStateBitmap(StateSucceeded),
	}
	assert.Equal(t, "GovernorUnexpectedProposalState(proposalId: 7, current: Defeated, expectedStates: [Succeeded])", e.Error())

	c := &OnERC721ReceivedCall{TokenID: big.NewInt(1), Data: []byte{0xca, 0xfe}}
	assert.Equal(t,
		"onERC721Received(operator: 0x0000000000000000000000000000000000000000, from: 0x0000000000000000000000000000000000000000, tokenId: 1, data: 0xcafe)",
		formatVariant(c))

	assert.Equal(t, "castVoteWithReason(proposalId: <nil>, support: Against, reason: \"\")", formatVariant(&CastVoteWithReasonCall{}))
}

func TestHeadSize(t *testing.T) {
	m, err := methodFor(SelectorPropose)
	require.NoError(t, err)
	assert.Equal(t, 4*wordSize, argumentsHeadSize(m.Inputs))

	domain, err := methodFor(SelectorEIP712Domain)
	require.NoError(t, err)
	assert.Equal(t, 7*wordSize, argumentsHeadSize(domain.Outputs))
}
