package governor

import (
	"bytes"
	"encoding/hex"
	"slices"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// SelectorSize is the size of a function or error selector in bytes.
const SelectorSize = 4

// Selector is the 4-byte identifier of a function or custom error: the first
// four bytes of keccak256 of its canonical signature.
type Selector [SelectorSize]byte

// SelectorOf computes the selector of a canonical signature such as
// "castVote(uint256,uint8)".
func SelectorOf(signature string) Selector {
	var sel Selector
	copy(sel[:], crypto.Keccak256([]byte(signature))[:SelectorSize])
	return sel
}

// TopicOf computes the 32-byte event topic of a canonical event signature.
func TopicOf(signature string) common.Hash {
	return crypto.Keccak256Hash([]byte(signature))
}

// BytesToSelector returns the selector held in the first four bytes of b.
func BytesToSelector(b []byte) (Selector, error) {
	var sel Selector
	if len(b) < SelectorSize {
		return sel, ErrShortInput
	}
	copy(sel[:], b[:SelectorSize])
	return sel, nil
}

// SplitSelector splits calldata or revert data into its selector and the
// ABI-encoded payload that follows it.
func SplitSelector(data []byte) (Selector, []byte, error) {
	sel, err := BytesToSelector(data)
	if err != nil {
		return sel, nil, err
	}
	return sel, data[SelectorSize:], nil
}

// Bytes returns the selector as a byte slice.
func (s Selector) Bytes() []byte {
	return s[:]
}

// Hex returns the 0x-prefixed hex encoding of the selector.
func (s Selector) Hex() string {
	return "0x" + hex.EncodeToString(s[:])
}

func (s Selector) String() string {
	return s.Hex()
}

// selectorEntry binds a selector to the constructor of its variant.
type selectorEntry[T any] struct {
	selector Selector
	build    func() T
}

// selectorTable is a constant table of variants sorted by selector.
type selectorTable[T any] []selectorEntry[T]

func (t selectorTable[T]) lookup(sel Selector) (func() T, bool) {
	i, ok := slices.BinarySearchFunc(t, sel, func(e selectorEntry[T], target Selector) int {
		return bytes.Compare(e.selector[:], target[:])
	})
	if !ok {
		return nil, false
	}
	return t[i].build, true
}

func (t selectorTable[T]) selectors() []Selector {
	out := make([]Selector, len(t))
	for i, e := range t {
		out[i] = e.selector
	}
	return out
}

// topicEntry binds an event topic to the constructor of its event.
type topicEntry struct {
	topic common.Hash
	build func() Event
}

// topicTable is a constant table of events sorted by topic.
type topicTable []topicEntry

func (t topicTable) lookup(topic common.Hash) (func() Event, bool) {
	i, ok := slices.BinarySearchFunc(t, topic, func(e topicEntry, target common.Hash) int {
		return bytes.Compare(e.topic[:], target[:])
	})
	if !ok {
		return nil, false
	}
	return t[i].build, true
}

func (t topicTable) topics() []common.Hash {
	out := make([]common.Hash, len(t))
	for i, e := range t {
		out[i] = e.topic
	}
	return out
}

// CallSelectors returns the selectors of all governor functions in ascending order.
func CallSelectors() []Selector {
	return callTable.selectors()
}

// ErrorSelectors returns the selectors of all governor custom errors in ascending order.
func ErrorSelectors() []Selector {
	return errorTable.selectors()
}

// EventTopics returns the topics of all governor events in ascending order.
func EventTopics() []common.Hash {
	return eventTable.topics()
}
