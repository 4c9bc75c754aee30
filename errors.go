package governor

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Sentinel errors for common failure conditions.
var (
	// ErrUnknownSelector indicates a selector or topic absent from the governor ABI.
	ErrUnknownSelector = errors.New("governor: unknown selector")

	// ErrShortInput indicates a payload shorter than its selector or static head.
	ErrShortInput = errors.New("governor: input too short")

	// ErrNonCanonical indicates a payload that decodes but is not the canonical encoding.
	ErrNonCanonical = errors.New("governor: non-canonical encoding")

	// ErrNoCode indicates an empty return from an address without contract code.
	ErrNoCode = errors.New("governor: no contract code at given address")

	// ErrNoRevertData indicates an RPC error that carries no revert payload.
	ErrNoRevertData = errors.New("governor: no revert data")

	// ErrEmptyProposal indicates a proposal built without any action.
	ErrEmptyProposal = errors.New("governor: proposal has no actions")

	// ErrTooManyActions indicates the proposal builder's action limit was exceeded.
	ErrTooManyActions = errors.New("governor: too many proposal actions")
)

// Kind names the dispatch table a payload was decoded against.
type Kind string

const (
	KindCall   Kind = "call"
	KindError  Kind = "error"
	KindEvent  Kind = "event"
	KindReturn Kind = "return"
)

// UnknownSelectorError reports a selector (4 bytes) or topic (32 bytes) that
// does not belong to any variant of a dispatch table.
type UnknownSelectorError struct {
	Kind     Kind
	Selector []byte
}

func (e *UnknownSelectorError) Error() string {
	return fmt.Sprintf("governor: unknown %s selector %s", e.Kind, hexutil.Encode(e.Selector))
}

// Is makes errors.Is(err, ErrUnknownSelector) hold for every UnknownSelectorError.
func (e *UnknownSelectorError) Is(target error) bool {
	return target == ErrUnknownSelector
}

// DecodeError indicates a payload whose layout does not match the expected tuple.
type DecodeError struct {
	Kind Kind
	Name string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("governor: decode %s %s: %v", e.Kind, e.Name, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ArgumentError indicates an argument that cannot be encoded.
type ArgumentError struct {
	Name  string
	Field string
	Err   error
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("governor: argument %q of %s: %v", e.Field, e.Name, e.Err)
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}

// ActionError wraps a failure to add an action to a proposal.
type ActionError struct {
	Index  int
	Method string
	Err    error
}

func (e *ActionError) Error() string {
	if e.Method != "" {
		return fmt.Sprintf("governor: action %d (%s): %v", e.Index, e.Method, e.Err)
	}
	return fmt.Sprintf("governor: action %d: %v", e.Index, e.Err)
}

func (e *ActionError) Unwrap() error {
	return e.Err
}

// RevertError is returned when a call or transaction reverts on chain.
// Reason holds the decoded revert payload when one could be resolved.
type RevertError struct {
	Method string
	Data   []byte
	Reason error
	Err    error
}

func (e *RevertError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "governor: %s reverted", e.Method)
	switch {
	case e.Reason != nil:
		fmt.Fprintf(&b, ": %v", e.Reason)
	case len(e.Data) > 0:
		fmt.Fprintf(&b, " with data %s", hexutil.Encode(e.Data))
	case e.Err != nil:
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

// Unwrap exposes both the decoded reason and the transport error, so
// errors.As can match a typed contract error such as *GovernorNonexistentProposal.
func (e *RevertError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Reason != nil {
		errs = append(errs, e.Reason)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}
