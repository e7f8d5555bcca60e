// Package statusregistrytest binds the forge test contract that exercises the
// operator status registry, including the StdInvariant fuzzing structs.
package statusregistrytest

import (
	"sort"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

//go:generate abigen -abi abi.json -out bindings.go -pkg statusregistrytest -type OperatorStatusRegistryTest

func mustABI() *abi.ABI {
	parsed, err := OperatorStatusRegistryTestMetaData.GetAbi()
	if err != nil {
		panic(err)
	}
	return parsed
}

// ABI returns the parsed contract ABI.
func ABI() *abi.ABI {
	return mustABI()
}

// TestEntryPoints returns the names of the test_* functions, sorted.
func TestEntryPoints() []string {
	var names []string
	for _, m := range mustABI().Methods {
		if strings.HasPrefix(m.RawName, "test_") {
			names = append(names, m.RawName)
		}
	}
	sort.Strings(names)
	return names
}
