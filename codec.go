package governor

import (
	"bytes"
	"errors"
	"fmt"
	"math/big"
	"reflect"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// wordSize is the size of one ABI head slot.
const wordSize = 32

var (
	errMissingField = errors.New("no struct field tagged with this argument")
	errNilValue     = errors.New("nil value")
)

// variant is implemented by every call, error and event struct.
type variant interface {
	Name() string
	Signature() string
}

// isDynamicType checks if an ABI type is dynamic (variable-length encoding).
func isDynamicType(t abi.Type) bool {
	switch t.T {
	case abi.StringTy, abi.BytesTy, abi.SliceTy:
		return true
	case abi.ArrayTy:
		return isDynamicType(*t.Elem)
	case abi.TupleTy:
		for _, elem := range t.TupleElems {
			if isDynamicType(*elem) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// headSize returns the bytes t occupies in the head of an enclosing tuple.
// Dynamic types take a single offset word.
func headSize(t abi.Type) int {
	if isDynamicType(t) {
		return wordSize
	}
	switch t.T {
	case abi.ArrayTy:
		return t.Size * headSize(*t.Elem)
	case abi.TupleTy:
		size := 0
		for _, elem := range t.TupleElems {
			size += headSize(*elem)
		}
		return size
	default:
		return wordSize
	}
}

func argumentsHeadSize(args abi.Arguments) int {
	size := 0
	for _, arg := range args {
		size += headSize(arg.Type)
	}
	return size
}

var fieldCache sync.Map // reflect.Type -> map[string]int

// taggedFields maps `abi:"name"` struct tags to field indices.
func taggedFields(t reflect.Type) map[string]int {
	if cached, ok := fieldCache.Load(t); ok {
		return cached.(map[string]int)
	}
	fields := make(map[string]int)
	if t.Kind() == reflect.Struct {
		for i := 0; i < t.NumField(); i++ {
			if tag, ok := t.Field(i).Tag.Lookup("abi"); ok {
				fields[tag] = i
			}
		}
	}
	fieldCache.Store(t, fields)
	return fields
}

// argumentValues lists the tagged fields of v in argument order.
func argumentValues(name string, args abi.Arguments, v any) ([]any, error) {
	rv := reflect.Indirect(reflect.ValueOf(v))
	fields := taggedFields(rv.Type())
	values := make([]any, 0, len(args))
	for _, arg := range args {
		idx, ok := fields[arg.Name]
		if !ok {
			return nil, &ArgumentError{Name: name, Field: arg.Name, Err: errMissingField}
		}
		fv := rv.Field(idx)
		if hasNil(fv) {
			return nil, &ArgumentError{Name: name, Field: arg.Name, Err: errNilValue}
		}
		values = append(values, fv.Interface())
	}
	return values, nil
}

// hasNil reports a nil *big.Int at the top level or inside a slice.
func hasNil(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Ptr:
		return v.IsNil()
	case reflect.Slice, reflect.Array:
		if v.Type().Elem().Kind() != reflect.Ptr {
			return false
		}
		for i := 0; i < v.Len(); i++ {
			if v.Index(i).IsNil() {
				return true
			}
		}
	}
	return false
}

// packTuple encodes v as selector || abi.encode(fields...).
func packTuple(name string, sel Selector, args abi.Arguments, v any) ([]byte, error) {
	values, err := argumentValues(name, args, v)
	if err != nil {
		return nil, err
	}
	enc, err := args.Pack(values...)
	if err != nil {
		return nil, &ArgumentError{Name: name, Err: err}
	}
	out := make([]byte, 0, SelectorSize+len(enc))
	out = append(out, sel[:]...)
	return append(out, enc...), nil
}

// unpackTuple decodes data into the tagged fields of v. With validate set,
// the decoded values must re-encode to exactly data.
func unpackTuple(kind Kind, name string, args abi.Arguments, data []byte, v any, validate bool) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &DecodeError{Kind: kind, Name: name, Err: fmt.Errorf("malformed payload: %v", r)}
		}
	}()

	if need := argumentsHeadSize(args); len(data) < need {
		return &DecodeError{Kind: kind, Name: name, Err: fmt.Errorf("%w: have %d bytes, need at least %d", ErrShortInput, len(data), need)}
	}
	values, err := args.Unpack(data)
	if err != nil {
		return &DecodeError{Kind: kind, Name: name, Err: err}
	}
	if validate {
		if err := checkCanonical(args, values, data); err != nil {
			return &DecodeError{Kind: kind, Name: name, Err: err}
		}
	}
	if err := assignValues(args, values, v); err != nil {
		return &DecodeError{Kind: kind, Name: name, Err: err}
	}
	return nil
}

func checkCanonical(args abi.Arguments, values []any, data []byte) error {
	enc, err := args.Pack(values...)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNonCanonical, err)
	}
	if !bytes.Equal(enc, data) {
		return ErrNonCanonical
	}
	return nil
}

// assignValues stores unpacked values into v, a pointer. A tagged struct is
// filled field by field; anything else receives the single value.
func assignValues(args abi.Arguments, values []any, v any) error {
	rv := reflect.ValueOf(v).Elem()
	fields := taggedFields(rv.Type())
	if len(fields) == 0 {
		if len(values) == 0 {
			return nil
		}
		if len(values) != 1 {
			return fmt.Errorf("cannot store %d values in %s", len(values), rv.Type())
		}
		return assign(rv, values[0])
	}
	for i, arg := range args {
		idx, ok := fields[arg.Name]
		if !ok {
			return fmt.Errorf("argument %q: %w", arg.Name, errMissingField)
		}
		if err := assign(rv.Field(idx), values[i]); err != nil {
			return fmt.Errorf("argument %q: %w", arg.Name, err)
		}
	}
	return nil
}

func assign(dst reflect.Value, val any) error {
	src := reflect.ValueOf(val)
	switch {
	case src.Type().AssignableTo(dst.Type()):
		dst.Set(src)
	case src.Kind() == dst.Kind() && src.Kind() != reflect.Ptr && src.Type().ConvertibleTo(dst.Type()):
		dst.Set(src.Convert(dst.Type()))
	default:
		return fmt.Errorf("cannot assign %s to %s", src.Type(), dst.Type())
	}
	return nil
}

// Format renders a decoded call, error or event as name(arg: value, ...).
func Format(v interface {
	Name() string
	Signature() string
}) string {
	return formatVariant(v)
}

// formatVariant renders a variant as Name(arg: value, ...).
func formatVariant(v variant) string {
	rv := reflect.Indirect(reflect.ValueOf(v))
	var b strings.Builder
	b.WriteString(v.Name())
	b.WriteByte('(')
	n := 0
	for i := 0; i < rv.NumField(); i++ {
		tag, ok := rv.Type().Field(i).Tag.Lookup("abi")
		if !ok {
			continue
		}
		if n > 0 {
			b.WriteString(", ")
		}
		n++
		b.WriteString(tag)
		b.WriteString(": ")
		b.WriteString(formatValue(rv.Field(i)))
	}
	b.WriteByte(')')
	return b.String()
}

func formatValue(v reflect.Value) string {
	if s, ok := v.Interface().(fmt.Stringer); ok {
		if v.Kind() == reflect.Ptr && v.IsNil() {
			return "<nil>"
		}
		return s.String()
	}
	switch v.Kind() {
	case reflect.Slice:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return hexutil.Encode(v.Bytes())
		}
		parts := make([]string, v.Len())
		for i := range parts {
			parts[i] = formatValue(v.Index(i))
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case reflect.Array:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			buf := make([]byte, v.Len())
			reflect.Copy(reflect.ValueOf(buf), v)
			return hexutil.Encode(buf)
		}
	case reflect.String:
		return fmt.Sprintf("%q", v.String())
	}
	return fmt.Sprint(v.Interface())
}

// bigOrZero keeps formatting and packing well-defined for unset amounts.
func bigOrZero(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return v
}
