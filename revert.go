package governor

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
)

// Selectors of the revert payloads the Solidity compiler emits itself.
var (
	SelectorErrorString = Selector{0x08, 0xc3, 0x79, 0xa0} // Error(string)
	SelectorPanic       = Selector{0x4e, 0x48, 0x7b, 0x71} // Panic(uint256)
)

var (
	stringType, _  = abi.NewType("string", "", nil)
	uint256Type, _ = abi.NewType("uint256", "", nil)

	errorStringArgs = abi.Arguments{{Name: "reason", Type: stringType}}
	panicArgs       = abi.Arguments{{Name: "code", Type: uint256Type}}
)

// RevertReason is a require/revert with a message, encoded as Error(string).
type RevertReason struct {
	Reason string `abi:"reason"`
}

func (*RevertReason) Name() string      { return "Error" }
func (*RevertReason) Signature() string { return "Error(string)" }

func (e *RevertReason) Error() string {
	return "execution reverted: " + e.Reason
}

// PanicError is a failed assertion or arithmetic fault, encoded as Panic(uint256).
type PanicError struct {
	Code *big.Int `abi:"code"`
}

func (*PanicError) Name() string      { return "Panic" }
func (*PanicError) Signature() string { return "Panic(uint256)" }

var panicReasons = map[uint64]string{
	0x00: "generic compiler panic",
	0x01: "assertion failed",
	0x11: "arithmetic underflow or overflow",
	0x12: "division or modulo by zero",
	0x21: "invalid enum value",
	0x22: "invalid storage byte array encoding",
	0x31: "pop on empty array",
	0x32: "array index out of bounds",
	0x41: "out of memory",
	0x51: "call to zero-initialized function",
}

func (e *PanicError) Error() string {
	code := bigOrZero(e.Code)
	if code.IsUint64() {
		if reason, ok := panicReasons[code.Uint64()]; ok {
			return fmt.Sprintf("panic 0x%x: %s", code, reason)
		}
	}
	return fmt.Sprintf("panic 0x%x", code)
}

// DecodeRevert decodes revert data into the error the contract raised: one of
// the governor's custom errors, a *RevertReason or a *PanicError.
func DecodeRevert(data []byte, validate bool) (error, error) {
	sel, payload, err := SplitSelector(data)
	if err != nil {
		return nil, &DecodeError{Kind: KindError, Err: err}
	}
	switch sel {
	case SelectorErrorString:
		reason := new(RevertReason)
		if err := unpackTuple(KindError, reason.Name(), errorStringArgs, payload, reason, validate); err != nil {
			return nil, err
		}
		return reason, nil
	case SelectorPanic:
		p := new(PanicError)
		if err := unpackTuple(KindError, p.Name(), panicArgs, payload, p, validate); err != nil {
			return nil, err
		}
		return p, nil
	}
	return DecodeContractErrorRaw(sel, payload, validate)
}

// RevertData extracts the revert payload carried by an RPC error.
func RevertData(err error) ([]byte, error) {
	var dataErr rpc.DataError
	if !errors.As(err, &dataErr) {
		return nil, ErrNoRevertData
	}
	switch data := dataErr.ErrorData().(type) {
	case string:
		b, err := hexutil.Decode(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrNoRevertData, err)
		}
		return b, nil
	case []byte:
		return data, nil
	case hexutil.Bytes:
		return data, nil
	}
	return nil, ErrNoRevertData
}

// wrapRevert turns an RPC failure of method into a *RevertError when the node
// reports a revert. Other errors are returned unchanged.
func wrapRevert(method string, err error, validate bool) error {
	if err == nil {
		return nil
	}
	data, dataErr := RevertData(err)
	if dataErr != nil {
		if strings.Contains(err.Error(), "revert") {
			return &RevertError{Method: method, Err: err}
		}
		return err
	}
	revert := &RevertError{Method: method, Data: data, Err: err}
	if len(data) >= SelectorSize {
		if reason, decodeErr := DecodeRevert(data, validate); decodeErr == nil {
			revert.Reason = reason
		}
	}
	return revert
}
