package statusregistry

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tangle-network/operator-status/abiutil"
)

var operator = common.HexToAddress("0x71562b71999873DB5b286dF957af199Ec94617F7")

func TestCallRoundTrip(t *testing.T) {
	tests := []abiutil.Call{
		&SubmitHeartbeatCall{ServiceId: 1, BlueprintId: 2, StatusCode: 1, Metrics: []byte{0xc0}, Signature: make([]byte, 65)},
		&ConfigureHeartbeatCall{ServiceId: 4, Interval: 60, MaxMissed: 5},
		&ReportForSlashingCall{ServiceId: 7, Operator: operator, Reason: MissedHeartbeatsSlashReason},
		&GoOnlineCall{ServiceId: 3},
		&TangleCoreCall{},
	}
	for _, in := range tests {
		t.Run(in.MethodName(), func(t *testing.T) {
			data, err := EncodeCall(in)
			require.NoError(t, err)
			assert.Equal(t, ABI().Methods[in.MethodName()].ID, data[:4])

			out, err := DecodeCall(data)
			require.NoError(t, err)
			assert.Equal(t, in, out)
		})
	}
}

func TestDecodeCallUnknownSelector(t *testing.T) {
	_, err := DecodeCall([]byte{0x01, 0x02})
	assert.True(t, errors.Is(err, abiutil.ErrUnknownSelector), "%v", err)

	_, err = DecodeCall([]byte{0xff, 0xff, 0xff, 0xff})
	assert.True(t, errors.Is(err, abiutil.ErrUnknownSelector), "%v", err)
}

func TestSelectorsCoverABI(t *testing.T) {
	sels := Selectors()
	assert.Len(t, sels, len(ABI().Methods))

	want := abiutil.Selector("submitHeartbeat(uint64,uint64,uint8,bytes,bytes)")
	assert.Contains(t, sels, want)
}

func TestDecodeReturn(t *testing.T) {
	packed, err := ABI().Methods["isOnline"].Outputs.Pack(true)
	require.NoError(t, err)
	out, err := DecodeReturn("isOnline", packed)
	require.NoError(t, err)
	assert.Equal(t, []interface{}{true}, out)
}

func TestLogRoundTrip(t *testing.T) {
	tests := []Event{
		&OperatorStatusRegistryHeartbeatReceived{ServiceId: 1, BlueprintId: 2, Operator: operator, StatusCode: 0, Timestamp: big.NewInt(1700000000)},
		&OperatorStatusRegistryStatusChanged{ServiceId: 1, Operator: operator, OldStatus: 0, NewStatus: 2},
		&OperatorStatusRegistryMetricReported{ServiceId: 1, Operator: operator, MetricName: "cpu", Value: big.NewInt(42)},
		&OperatorStatusRegistryOperatorWentOffline{ServiceId: 1, Operator: operator, MissedBeats: 3},
		&OperatorStatusRegistrySlashingTriggered{ServiceId: 1, Operator: operator, Reason: "missed heartbeats"},
	}
	for _, in := range tests {
		t.Run(in.EventName(), func(t *testing.T) {
			l, err := EncodeLog(in)
			require.NoError(t, err)
			assert.Equal(t, ABI().Events[in.EventName()].ID, l.Topics[0])

			out, err := DecodeLog(l)
			require.NoError(t, err)
			assert.Equal(t, in.EventName(), out.EventName())
			assert.Equal(t, l, out.RawLog())
		})
	}
}

func TestDecodeLogHeartbeatReceivedFields(t *testing.T) {
	in := &OperatorStatusRegistryHeartbeatReceived{ServiceId: 9, BlueprintId: 11, Operator: operator, StatusCode: 1, Timestamp: big.NewInt(12345)}
	l, err := EncodeLog(in)
	require.NoError(t, err)
	require.Len(t, l.Topics, 4)

	out, err := DecodeLog(l)
	require.NoError(t, err)
	in.Raw = l
	assert.Equal(t, in, out)
}

func TestDecodeLogInvalid(t *testing.T) {
	_, err := DecodeLog(types.Log{})
	assert.True(t, errors.Is(err, abiutil.ErrInvalidLog), "%v", err)

	_, err = DecodeLog(types.Log{Topics: []common.Hash{abiutil.EventTopic("Transfer(address,address,uint256)")}})
	assert.True(t, errors.Is(err, abiutil.ErrInvalidLog), "%v", err)
}

func TestEventTopics(t *testing.T) {
	topics := EventTopics()
	assert.Len(t, topics, len(ABI().Events))
	assert.Contains(t, topics, abiutil.EventTopic("HeartbeatReceived(uint64,uint64,address,uint8,uint256)"))
}

func TestResolveAddress(t *testing.T) {
	const chainID = 31337
	deployed := common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
	AddressesByChainID[chainID] = deployed
	defer delete(AddressesByChainID, chainID)

	addr, err := ResolveAddress("", chainID)
	require.NoError(t, err)
	assert.Equal(t, deployed, addr)

	addr, err = ResolveAddress(operator.Hex(), chainID)
	require.NoError(t, err)
	assert.Equal(t, operator, addr)

	_, err = ResolveAddress("not-an-address", chainID)
	assert.Error(t, err)

	_, err = ResolveAddress("", 1)
	assert.Error(t, err)

	r, err := NewByChainID(chainID, nil)
	require.NoError(t, err)
	assert.NotNil(t, r)

	_, err = NewByChainID(1, nil)
	assert.Error(t, err)
}
