package abiutil

import (
	"reflect"
	"sort"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/pkg/errors"
)

// Call is a typed function call. The exported fields of the implementing
// struct are the function inputs in ABI order, named like abigen names them.
type Call interface {
	MethodName() string
}

type callEntry struct {
	method *abi.Method
	typ    reflect.Type
}

// CallCodec encodes typed calls to calldata and decodes calldata back to the
// typed call registered for its selector.
type CallCodec struct {
	abi    *abi.ABI
	byID   map[[4]byte]callEntry
	byName map[string]callEntry
}

// NewCallCodec registers one prototype per function. Prototypes must be
// pointers to structs.
func NewCallCodec(parsed *abi.ABI, prototypes ...Call) (*CallCodec, error) {
	c := &CallCodec{
		abi:    parsed,
		byID:   make(map[[4]byte]callEntry, len(prototypes)),
		byName: make(map[string]callEntry, len(prototypes)),
	}
	for _, p := range prototypes {
		name := p.MethodName()
		m, ok := parsed.Methods[name]
		if !ok {
			return nil, errors.Errorf("method %s not in abi", name)
		}
		t := reflect.TypeOf(p)
		if t.Kind() != reflect.Ptr || t.Elem().Kind() != reflect.Struct {
			return nil, errors.Errorf("prototype for %s must be a struct pointer, got %s", name, t)
		}
		if t.Elem().NumField() != len(m.Inputs) {
			return nil, errors.Errorf("prototype for %s has %d fields, abi has %d inputs", name, t.Elem().NumField(), len(m.Inputs))
		}
		method := m
		var id [4]byte
		copy(id[:], method.ID)
		entry := callEntry{method: &method, typ: t.Elem()}
		c.byID[id] = entry
		c.byName[name] = entry
	}
	return c, nil
}

// MustNewCallCodec is NewCallCodec for package level vars.
func MustNewCallCodec(parsed *abi.ABI, prototypes ...Call) *CallCodec {
	c, err := NewCallCodec(parsed, prototypes...)
	if err != nil {
		panic(err)
	}
	return c
}

// Decode reads the selector from data and unpacks the remaining bytes into a
// new instance of the matching call.
func (c *CallCodec) Decode(data []byte) (Call, error) {
	if len(data) < 4 {
		return nil, errors.Wrapf(ErrUnknownSelector, "calldata too short (%d bytes)", len(data))
	}
	var id [4]byte
	copy(id[:], data[:4])
	entry, ok := c.byID[id]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownSelector, "%s", FormatSelector(id))
	}
	values, err := entry.method.Inputs.Unpack(data[4:])
	if err != nil {
		return nil, errors.Wrapf(err, "decoding %s arguments", entry.method.Name)
	}
	call := reflect.New(entry.typ).Interface().(Call)
	if err := entry.method.Inputs.Copy(call, values); err != nil {
		return nil, errors.Wrapf(err, "copying %s arguments", entry.method.Name)
	}
	return call, nil
}

// Encode packs call into selector-prefixed calldata.
func (c *CallCodec) Encode(call Call) ([]byte, error) {
	entry, ok := c.byName[call.MethodName()]
	if !ok {
		return nil, errors.Errorf("method %s not registered", call.MethodName())
	}
	v := reflect.ValueOf(call)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	args := make([]interface{}, v.NumField())
	for i := range args {
		args[i] = v.Field(i).Interface()
	}
	data, err := c.abi.Pack(entry.method.Name, args...)
	if err != nil {
		return nil, errors.Wrapf(err, "encoding %s", entry.method.Name)
	}
	return data, nil
}

// DecodeReturn unpacks the return data of the named function.
func (c *CallCodec) DecodeReturn(name string, data []byte) ([]interface{}, error) {
	entry, ok := c.byName[name]
	if !ok {
		return nil, errors.Errorf("method %s not registered", name)
	}
	out, err := entry.method.Outputs.Unpack(data)
	if err != nil {
		return nil, errors.Wrapf(err, "decoding %s return data", name)
	}
	return out, nil
}

// Method returns the ABI method registered for the selector.
func (c *CallCodec) Method(id [4]byte) (*abi.Method, bool) {
	entry, ok := c.byID[id]
	if !ok {
		return nil, false
	}
	return entry.method, true
}

// Selectors returns every registered selector in ascending byte order.
func (c *CallCodec) Selectors() [][4]byte {
	ids := make([][4]byte, 0, len(c.byID))
	for id := range c.byID {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return string(ids[i][:]) < string(ids[j][:])
	})
	return ids
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
