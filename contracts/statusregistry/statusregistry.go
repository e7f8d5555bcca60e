package statusregistry

import (
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

//go:generate abigen -abi abi.json -out bindings.go -pkg statusregistry -type OperatorStatusRegistry

// Registry defaults, mirrored from the contract constants.
const (
	DefaultHeartbeatInterval    = uint64(300)
	DefaultMaxMissedHeartbeats  = uint8(3)
	SlashAlertCooldown          = uint64(3600)
	MissedHeartbeatsSlashReason = "missed heartbeats"
)

// AddressesByChainID lists known registry deployments. Chains missing here
// need registry.address in the config.
var AddressesByChainID = map[uint64]common.Address{}

// ResolveAddress prefers the configured address and falls back to the known
// deployment of chainID.
func ResolveAddress(configured string, chainID uint64) (common.Address, error) {
	if configured != "" {
		if !common.IsHexAddress(configured) {
			return common.Address{}, fmt.Errorf("invalid registry address %q", configured)
		}
		return common.HexToAddress(configured), nil
	}
	addr, exists := AddressesByChainID[chainID]
	if !exists {
		return common.Address{}, fmt.Errorf("no registry deployment known for chain %v", chainID)
	}
	return addr, nil
}

// NewByChainID binds the known registry deployment of chainID.
func NewByChainID(chainID uint64, backend bind.ContractBackend) (*OperatorStatusRegistry, error) {
	addr, err := ResolveAddress("", chainID)
	if err != nil {
		return nil, err
	}
	return NewOperatorStatusRegistry(addr, backend)
}

func mustABI() *abi.ABI {
	parsed, err := OperatorStatusRegistryMetaData.GetAbi()
	if err != nil {
		panic(err)
	}
	return parsed
}

// ABI returns the parsed contract ABI.
func ABI() *abi.ABI {
	return mustABI()
}
