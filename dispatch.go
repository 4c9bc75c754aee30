package governor

import (
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// Call is the input of one governor function. The set of implementations is
// closed: exactly one struct per function of the governor ABI.
type Call interface {
	Name() string
	Signature() string
	Selector() Selector
	// Pack returns selector || abi.encode(arguments).
	Pack() ([]byte, error)
	isCall()
}

// ContractError is one of the governor's custom Solidity errors.
type ContractError interface {
	error
	Name() string
	Signature() string
	Selector() Selector
	// Pack returns the revert data the contract emits for this error.
	Pack() ([]byte, error)
	isContractError()
}

// Event is one of the governor's log events.
type Event interface {
	Name() string
	Signature() string
	Topic() common.Hash
	isEvent()
}

func packCall(c Call) ([]byte, error) {
	m, err := methodFor(c.Selector())
	if err != nil {
		return nil, err
	}
	return packTuple(c.Name(), c.Selector(), m.Inputs, c)
}

func packError(e ContractError) ([]byte, error) {
	abiErr, err := errorFor(e.Selector())
	if err != nil {
		return nil, err
	}
	return packTuple(e.Name(), e.Selector(), abiErr.Inputs, e)
}

// DecodeCallRaw decodes data, the argument payload following sel, into the
// call variant sel identifies.
func DecodeCallRaw(sel Selector, data []byte, validate bool) (Call, error) {
	build, ok := callTable.lookup(sel)
	if !ok {
		return nil, &UnknownSelectorError{Kind: KindCall, Selector: sel.Bytes()}
	}
	m, err := methodFor(sel)
	if err != nil {
		return nil, err
	}
	c := build()
	if err := unpackTuple(KindCall, c.Name(), m.Inputs, data, c, validate); err != nil {
		return nil, err
	}
	return c, nil
}

// DecodeCall decodes transaction calldata.
func DecodeCall(calldata []byte, validate bool) (Call, error) {
	sel, data, err := SplitSelector(calldata)
	if err != nil {
		return nil, &DecodeError{Kind: KindCall, Err: err}
	}
	return DecodeCallRaw(sel, data, validate)
}

// DecodeContractErrorRaw decodes data, the payload following sel, into the
// custom error sel identifies.
func DecodeContractErrorRaw(sel Selector, data []byte, validate bool) (ContractError, error) {
	build, ok := errorTable.lookup(sel)
	if !ok {
		return nil, &UnknownSelectorError{Kind: KindError, Selector: sel.Bytes()}
	}
	abiErr, err := errorFor(sel)
	if err != nil {
		return nil, err
	}
	e := build()
	if err := unpackTuple(KindError, e.Name(), abiErr.Inputs, data, e, validate); err != nil {
		return nil, err
	}
	return e, nil
}

// DecodeContractError decodes revert data into a governor custom error.
func DecodeContractError(revertData []byte, validate bool) (ContractError, error) {
	sel, data, err := SplitSelector(revertData)
	if err != nil {
		return nil, &DecodeError{Kind: KindError, Err: err}
	}
	return DecodeContractErrorRaw(sel, data, validate)
}

// DecodeEventRaw decodes a log of the event identified by topic. topics holds
// the indexed arguments (the log topics after the first) and data the
// non-indexed ones.
func DecodeEventRaw(topic common.Hash, topics []common.Hash, data []byte, validate bool) (Event, error) {
	build, ok := eventTable.lookup(topic)
	if !ok {
		return nil, &UnknownSelectorError{Kind: KindEvent, Selector: topic.Bytes()}
	}
	abiEvent, err := eventFor(topic)
	if err != nil {
		return nil, err
	}
	ev := build()

	indexed := indexedArguments(abiEvent.Inputs)
	switch {
	case len(topics) < len(indexed):
		return nil, &DecodeError{Kind: KindEvent, Name: ev.Name(),
			Err: fmt.Errorf("%w: have %d indexed topics, need %d", ErrShortInput, len(topics), len(indexed))}
	case len(topics) > len(indexed) && validate:
		return nil, &DecodeError{Kind: KindEvent, Name: ev.Name(),
			Err: fmt.Errorf("%w: have %d indexed topics, want %d", ErrNonCanonical, len(topics), len(indexed))}
	}
	if len(indexed) > 0 {
		words := make([]byte, 0, len(indexed)*common.HashLength)
		for _, t := range topics[:len(indexed)] {
			words = append(words, t.Bytes()...)
		}
		if err := unpackTuple(KindEvent, ev.Name(), indexed, words, ev, validate); err != nil {
			return nil, err
		}
	}
	if err := unpackTuple(KindEvent, ev.Name(), abiEvent.Inputs.NonIndexed(), data, ev, validate); err != nil {
		return nil, err
	}
	return ev, nil
}

// DecodeEvent decodes a governor log. The first topic selects the event.
func DecodeEvent(log types.Log, validate bool) (Event, error) {
	if len(log.Topics) == 0 {
		return nil, &DecodeError{Kind: KindEvent, Err: fmt.Errorf("%w: log has no topics", ErrShortInput)}
	}
	return DecodeEventRaw(log.Topics[0], log.Topics[1:], log.Data, validate)
}

// EncodeEvent returns the topics and data of the log the governor emits for ev.
func EncodeEvent(ev Event) ([]common.Hash, []byte, error) {
	abiEvent, err := eventFor(ev.Topic())
	if err != nil {
		return nil, nil, err
	}

	indexed := indexedArguments(abiEvent.Inputs)
	topics := make([]common.Hash, 0, 1+len(indexed))
	topics = append(topics, ev.Topic())
	if len(indexed) > 0 {
		values, err := argumentValues(ev.Name(), indexed, ev)
		if err != nil {
			return nil, nil, err
		}
		words, err := indexed.Pack(values...)
		if err != nil {
			return nil, nil, &ArgumentError{Name: ev.Name(), Err: err}
		}
		for i := 0; i+common.HashLength <= len(words); i += common.HashLength {
			topics = append(topics, common.BytesToHash(words[i:i+common.HashLength]))
		}
	}

	nonIndexed := abiEvent.Inputs.NonIndexed()
	values, err := argumentValues(ev.Name(), nonIndexed, ev)
	if err != nil {
		return nil, nil, err
	}
	data, err := nonIndexed.Pack(values...)
	if err != nil {
		return nil, nil, &ArgumentError{Name: ev.Name(), Err: err}
	}
	return topics, data, nil
}

// indexedArguments returns the indexed inputs of an event as plain arguments,
// so the concatenated topic words can be unpacked like a static tuple. Every
// indexed governor argument is a single-word value type.
func indexedArguments(inputs abi.Arguments) abi.Arguments {
	var out abi.Arguments
	for _, arg := range inputs {
		if arg.Indexed {
			arg.Indexed = false
			out = append(out, arg)
		}
	}
	return out
}
