package statusregistrytest

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tangle-network/operator-status/abiutil"
)

func TestEntryPointsSorted(t *testing.T) {
	names := TestEntryPoints()
	assert.Equal(t, []string{
		"test_ConfigureHeartbeat",
		"test_ConfigureHeartbeat_RevertNotOwner",
		"test_GetOnlineOperators",
		"test_GoOfflineAndOnline",
		"test_MetricValidation_MissingRequired",
		"test_MetricValidation_OutOfBounds",
		"test_OperatorComesBackOnline",
		"test_OperatorGoesOfflineAfterMissedBeats",
		"test_ReportForSlashing_RateLimited",
		"test_SubmitHeartbeat",
		"test_SubmitHeartbeat_RevertInvalidSignature",
	}, names)
}

func TestEmptyCalls(t *testing.T) {
	for _, in := range []abiutil.Call{&SetUpCall{}, &IsTestCall{}, &TestSubmitHeartbeatCall{}} {
		data, err := EncodeCall(in)
		require.NoError(t, err)
		assert.Len(t, data, 4)

		out, err := DecodeCall(data)
		require.NoError(t, err)
		assert.Equal(t, in, out)
	}
	assert.Len(t, Selectors(), len(ABI().Methods))
}

func TestDecodeReturnFuzzSelectors(t *testing.T) {
	in := []StdInvariantFuzzSelector{{
		Addr:      common.HexToAddress("0x00000000000000000000000000000000000000f0"),
		Selectors: [][4]byte{abiutil.Selector("goOnline(uint64)")},
	}}
	packed, err := ABI().Methods["targetSelectors"].Outputs.Pack(in)
	require.NoError(t, err)

	out, err := DecodeReturn("targetSelectors", packed)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.NotNil(t, out[0])
}

func TestLogArrayOverloads(t *testing.T) {
	parsed := ABI()
	topics := map[common.Hash]string{}
	for _, name := range []string{"log_array", "log_array0", "log_array1"} {
		e, ok := parsed.Events[name]
		require.True(t, ok, name)
		topics[e.ID] = name
	}
	assert.Len(t, topics, 3)
	assert.Equal(t, "log_array", topics[abiutil.EventTopic("log_array(uint256[])")])
	assert.Equal(t, "log_array0", topics[abiutil.EventTopic("log_array(int256[])")])
	assert.Equal(t, "log_array1", topics[abiutil.EventTopic("log_array(address[])")])

	in := &OperatorStatusRegistryTestLogArray1{Val: []common.Address{common.HexToAddress("0x01"), common.HexToAddress("0x02")}}
	l, err := EncodeLog(in)
	require.NoError(t, err)
	out, err := DecodeLog(l)
	require.NoError(t, err)
	in.Raw = l
	assert.Equal(t, in, out)
}

func TestForgeLogRoundTrip(t *testing.T) {
	tests := []Event{
		&OperatorStatusRegistryTestLog{Arg0: "setUp done"},
		&OperatorStatusRegistryTestLogNamedUint{Key: "interval", Val: big.NewInt(300)},
		&OperatorStatusRegistryTestLogNamedArray1{Key: "online", Val: []common.Address{common.HexToAddress("0x0a")}},
		&OperatorStatusRegistryTestOperatorCameOnline{ServiceId: 1, Operator: common.HexToAddress("0x0b")},
	}
	for _, in := range tests {
		t.Run(in.EventName(), func(t *testing.T) {
			l, err := EncodeLog(in)
			require.NoError(t, err)
			out, err := DecodeLog(l)
			require.NoError(t, err)
			assert.Equal(t, in.EventName(), out.EventName())
			assert.Equal(t, l, out.RawLog())
		})
	}
	assert.Len(t, EventTopics(), len(ABI().Events))
}

func TestDecodeCallUnknownSelector(t *testing.T) {
	sel := abiutil.Selector("submitHeartbeat(uint64,uint64,uint8,bytes,bytes)")
	_, err := DecodeCall(sel[:])
	assert.True(t, errors.Is(err, abiutil.ErrUnknownSelector), "%v", err)
}
