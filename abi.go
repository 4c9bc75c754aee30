package governor

import (
	_ "embed"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// TangleGovernorABI is the JSON ABI of the TangleGovernor contract.
//
//go:embed abi/TangleGovernor.json
var TangleGovernorABI string

// ParseABI parses a JSON ABI string into an abi.ABI.
func ParseABI(abiJSON string) (abi.ABI, error) {
	return abi.JSON(strings.NewReader(abiJSON))
}

// MustParseABI is like ParseABI but panics on error.
func MustParseABI(abiJSON string) abi.ABI {
	parsed, err := ParseABI(abiJSON)
	if err != nil {
		panic(err)
	}
	return parsed
}

// abiIndex holds the parsed governor ABI keyed by selector and topic.
type abiIndex struct {
	abi     abi.ABI
	methods map[Selector]abi.Method
	errors  map[Selector]abi.Error
	events  map[common.Hash]abi.Event
}

var governorIndex = sync.OnceValue(func() *abiIndex {
	parsed := MustParseABI(TangleGovernorABI)
	idx := &abiIndex{
		abi:     parsed,
		methods: make(map[Selector]abi.Method, len(parsed.Methods)),
		errors:  make(map[Selector]abi.Error, len(parsed.Errors)),
		events:  make(map[common.Hash]abi.Event, len(parsed.Events)),
	}
	for _, m := range parsed.Methods {
		var sel Selector
		copy(sel[:], m.ID)
		idx.methods[sel] = m
	}
	for _, e := range parsed.Errors {
		var sel Selector
		copy(sel[:], e.ID[:SelectorSize])
		idx.errors[sel] = e
	}
	for _, e := range parsed.Events {
		idx.events[e.ID] = e
	}
	return idx
})

// GovernorABI returns the parsed governor ABI.
func GovernorABI() abi.ABI {
	return governorIndex().abi
}

func methodFor(sel Selector) (abi.Method, error) {
	m, ok := governorIndex().methods[sel]
	if !ok {
		return abi.Method{}, &UnknownSelectorError{Kind: KindCall, Selector: sel.Bytes()}
	}
	return m, nil
}

func errorFor(sel Selector) (abi.Error, error) {
	e, ok := governorIndex().errors[sel]
	if !ok {
		return abi.Error{}, &UnknownSelectorError{Kind: KindError, Selector: sel.Bytes()}
	}
	return e, nil
}

func eventFor(topic common.Hash) (abi.Event, error) {
	e, ok := governorIndex().events[topic]
	if !ok {
		return abi.Event{}, &UnknownSelectorError{Kind: KindEvent, Selector: topic.Bytes()}
	}
	return e, nil
}
