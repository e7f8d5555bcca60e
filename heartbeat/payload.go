// Package heartbeat builds, signs and submits operator heartbeats.
package heartbeat

import (
	"encoding/binary"
	"fmt"
	"math/big"
	"sort"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// MetricPair is one entry of the abi encoded tuple(string,uint256)[] carried
// in the metrics field of a heartbeat.
type MetricPair struct {
	Name  string
	Value *big.Int
}

var metricPairsArgs = func() abi.Arguments {
	t, err := abi.NewType("tuple[]", "", []abi.ArgumentMarshaling{
		{Name: "name", Type: "string"},
		{Name: "value", Type: "uint256"},
	})
	if err != nil {
		panic(err)
	}
	return abi.Arguments{{Type: t}}
}()

// EncodeMetrics abi encodes pairs. Nil or empty input yields an empty
// payload, which the registry treats as "no metrics".
func EncodeMetrics(pairs []MetricPair) ([]byte, error) {
	if len(pairs) == 0 {
		return []byte{}, nil
	}
	for _, p := range pairs {
		if p.Value == nil || p.Value.Sign() < 0 {
			return nil, fmt.Errorf("metric %q: value must be a non-negative integer", p.Name)
		}
		if p.Value.BitLen() > 256 {
			return nil, fmt.Errorf("metric %q: value exceeds uint256", p.Name)
		}
	}
	return metricPairsArgs.Pack(pairs)
}

// DecodeMetrics is the inverse of EncodeMetrics.
func DecodeMetrics(data []byte) ([]MetricPair, error) {
	if len(data) == 0 {
		return nil, nil
	}
	out, err := metricPairsArgs.Unpack(data)
	if err != nil {
		return nil, fmt.Errorf("error decoding metrics: %w", err)
	}
	pairs := *abi.ConvertType(out[0], new([]MetricPair)).(*[]MetricPair)
	return pairs, nil
}

// MetricsFromMap turns a name -> value map into pairs sorted by name.
func MetricsFromMap(m map[string]uint64) []MetricPair {
	pairs := make([]MetricPair, 0, len(m))
	for name, v := range m {
		pairs = append(pairs, MetricPair{Name: name, Value: new(big.Int).SetUint64(v)})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].Name < pairs[j].Name })
	return pairs
}

// MessageHash is keccak256(abi.encodePacked(serviceId, blueprintId, statusCode, metrics)).
func MessageHash(serviceID, blueprintID uint64, statusCode uint8, metrics []byte) common.Hash {
	buf := make([]byte, 17+len(metrics))
	binary.BigEndian.PutUint64(buf[0:8], serviceID)
	binary.BigEndian.PutUint64(buf[8:16], blueprintID)
	buf[16] = statusCode
	copy(buf[17:], metrics)
	return crypto.Keccak256Hash(buf)
}
