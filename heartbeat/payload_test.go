package heartbeat

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageHash(t *testing.T) {
	tests := []struct {
		serviceID   uint64
		blueprintID uint64
		statusCode  uint8
		metrics     []byte
		want        string
	}{
		{1, 2, 0, nil, "0xc0e39fe1e7fdd307c284e8e16e719899e61a87c636312a7a4148cd386fe8c24a"},
		{7, 3, 1, []byte{0xaa, 0xbb}, "0x78d5f57e83d17b45fbe98c2a31c20f1444c4126f99c2fffa56679e13d0248fc9"},
	}
	for _, tt := range tests {
		got := MessageHash(tt.serviceID, tt.blueprintID, tt.statusCode, tt.metrics)
		assert.Equal(t, common.HexToHash(tt.want), got)
	}
}

func TestEncodeDecodeMetrics(t *testing.T) {
	maxUint256, _ := new(big.Int).SetString("115792089237316195423570985008687907853269984665640564039457584007913129639935", 10)
	pairs := []MetricPair{
		{Name: "cpu", Value: big.NewInt(42)},
		{Name: "max", Value: maxUint256},
	}
	data, err := EncodeMetrics(pairs)
	require.NoError(t, err)

	decoded, err := DecodeMetrics(data)
	require.NoError(t, err)
	require.Len(t, decoded, 2)
	for i := range pairs {
		assert.Equal(t, pairs[i].Name, decoded[i].Name)
		assert.Zero(t, pairs[i].Value.Cmp(decoded[i].Value))
	}

	single, err := EncodeMetrics(pairs[:1])
	require.NoError(t, err)
	// offset, length, element offset, string offset, value, string length, string
	require.Len(t, single, 7*32)
	assert.Equal(t, byte(42), single[4*32+31])
	assert.Equal(t, "cpu", string(single[6*32:6*32+3]))
}

func TestEncodeMetricsRejectsInvalid(t *testing.T) {
	_, err := EncodeMetrics([]MetricPair{{Name: "neg", Value: big.NewInt(-1)}})
	assert.Error(t, err)
	_, err = EncodeMetrics([]MetricPair{{Name: "nil"}})
	assert.Error(t, err)
	_, err = EncodeMetrics([]MetricPair{{Name: "wide", Value: new(big.Int).Lsh(big.NewInt(1), 256)}})
	assert.Error(t, err)
}

func TestEmptyMetrics(t *testing.T) {
	data, err := EncodeMetrics(nil)
	require.NoError(t, err)
	assert.Empty(t, data)

	pairs, err := DecodeMetrics(nil)
	require.NoError(t, err)
	assert.Nil(t, pairs)

	_, err = DecodeMetrics([]byte{0x01})
	assert.Error(t, err)
}

func TestMetricsFromMap(t *testing.T) {
	pairs := MetricsFromMap(map[string]uint64{"mem": 2, "cpu": 1, "disk": 3})
	require.Len(t, pairs, 3)
	assert.Equal(t, "cpu", pairs[0].Name)
	assert.Equal(t, "disk", pairs[1].Name)
	assert.Equal(t, "mem", pairs[2].Name)
	assert.Equal(t, int64(2), pairs[2].Value.Int64())
}
