// Package abiutil dispatches raw calldata and logs to typed contract values by
// function selector and event topic.
package abiutil

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
)

var (
	// ErrUnknownSelector is returned when calldata does not start with the
	// selector of any function in the contract ABI.
	ErrUnknownSelector = errors.New("unknown selector")
	// ErrInvalidLog is returned when a log has no topics, an unknown topic-0
	// or data that does not match the event layout.
	ErrInvalidLog = errors.New("invalid log")
)

// Selector returns the first four bytes of keccak256(sig).
func Selector(sig string) [4]byte {
	var sel [4]byte
	copy(sel[:], crypto.Keccak256([]byte(sig))[:4])
	return sel
}

// EventTopic returns keccak256(sig), the topic-0 of a non-anonymous event.
func EventTopic(sig string) common.Hash {
	return crypto.Keccak256Hash([]byte(sig))
}

// FormatSelector renders a selector as 0x-prefixed lowercase hex.
func FormatSelector(sel [4]byte) string {
	return fmt.Sprintf("0x%x", sel[:])
}

// ParseSelector parses a 0x-prefixed or bare 8 character hex selector.
func ParseSelector(s string) ([4]byte, error) {
	var sel [4]byte
	b := common.FromHex(strings.TrimSpace(s))
	if len(b) != 4 {
		return sel, errors.Errorf("selector %q must be 4 bytes", s)
	}
	copy(sel[:], b)
	return sel, nil
}

// Entry describes one function or event of a contract ABI.
type Entry struct {
	Kind      string `json:"kind"`
	Name      string `json:"name"`
	Signature string `json:"signature"`
	Selector  string `json:"selector"`
}

// Table lists every function selector and event topic of parsed, functions
// first, each group in ABI name order.
func Table(parsed *abi.ABI) []Entry {
	entries := make([]Entry, 0, len(parsed.Methods)+len(parsed.Events))
	for _, name := range sortedKeys(parsed.Methods) {
		m := parsed.Methods[name]
		entries = append(entries, Entry{
			Kind:      "function",
			Name:      m.Name,
			Signature: m.Sig,
			Selector:  fmt.Sprintf("0x%x", m.ID),
		})
	}
	for _, name := range sortedKeys(parsed.Events) {
		e := parsed.Events[name]
		if e.Anonymous {
			continue
		}
		entries = append(entries, Entry{
			Kind:      "event",
			Name:      e.Name,
			Signature: e.Sig,
			Selector:  e.ID.Hex(),
		})
	}
	return entries
}
