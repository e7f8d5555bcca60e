package types

import (
	"fmt"
	"strings"
)

// StatusCode mirrors IOperatorStatusRegistry.StatusCode.
type StatusCode uint8

const (
	StatusHealthy StatusCode = iota
	StatusDegraded
	StatusOffline
	StatusSlashed
	StatusExiting
)

var statusNames = [...]string{"HEALTHY", "DEGRADED", "OFFLINE", "SLASHED", "EXITING"}

func (s StatusCode) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}
	return fmt.Sprintf("UNKNOWN(%d)", uint8(s))
}

// IsOnline reports whether the registry counts an operator in this status as online.
func (s StatusCode) IsOnline() bool {
	return s == StatusHealthy || s == StatusDegraded
}

// Valid reports whether s is one of the declared enum values.
func (s StatusCode) Valid() bool {
	return int(s) < len(statusNames)
}

func (s StatusCode) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *StatusCode) UnmarshalText(b []byte) error {
	code, err := ParseStatusCode(string(b))
	if err != nil {
		return err
	}
	*s = code
	return nil
}

// ParseStatusCode accepts the enum name in any case.
func ParseStatusCode(name string) (StatusCode, error) {
	for i, n := range statusNames {
		if strings.EqualFold(n, name) {
			return StatusCode(i), nil
		}
	}
	return 0, fmt.Errorf("unknown status %q", name)
}
