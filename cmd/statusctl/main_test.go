package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tangle-network/operator-status/contracts/statusregistry"
	"github.com/tangle-network/operator-status/heartbeat"
)

const testKey = "b71c71a67e1177ad4e901695e1b4b9ee17ae16c6668d313eac2f96dbcda3f291"

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	cmd := rootCmd()
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSelectors(t *testing.T) {
	out, err := run(t, "selectors")
	require.NoError(t, err)
	assert.Contains(t, out, "submitHeartbeat(uint64,uint64,uint8,bytes,bytes)")
	assert.Contains(t, out, "HeartbeatReceived(uint64,uint64,address,uint8,uint256)")
	assert.Contains(t, out, "SELECTOR")

	_, err = run(t, "selectors", "--contract", "other")
	assert.Error(t, err)
}

func TestDecodeCall(t *testing.T) {
	data, err := statusregistry.EncodeCall(&statusregistry.GoOfflineCall{ServiceId: 5})
	require.NoError(t, err)

	out, err := run(t, "decode", "call", hexutil.Encode(data))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "goOffline "), out)
	assert.Contains(t, out, "ServiceId:5")

	_, err = run(t, "decode", "call", "0x12")
	assert.Error(t, err)
}

func TestDecodeLogDump(t *testing.T) {
	l, err := statusregistry.EncodeLog(&statusregistry.OperatorStatusRegistrySlashingTriggered{ServiceId: 1, Operator: common.HexToAddress("0x01"), Reason: "missed heartbeats"})
	require.NoError(t, err)

	args := []string{"decode", "log", "--dump", hexutil.Encode(l.Data)}
	for _, topic := range l.Topics {
		args = append(args, topic.Hex())
	}
	out, err := run(t, args...)
	require.NoError(t, err)
	assert.Contains(t, out, "OperatorStatusRegistrySlashingTriggered")
	assert.Contains(t, out, `"missed heartbeats"`)
}

func TestSignProducesRecoverableSignature(t *testing.T) {
	out, err := run(t, "sign", "--key", testKey, "--service", "3", "--blueprint", "8", "--metric", "cpu=40", "--metric", "mem=70")
	require.NoError(t, err)

	fields := map[string]string{}
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		k, v, ok := strings.Cut(line, ":")
		require.True(t, ok)
		fields[k] = strings.TrimSpace(v)
	}

	metrics, err := hexutil.Decode(fields["metrics"])
	require.NoError(t, err)
	sig, err := hexutil.Decode(fields["signature"])
	require.NoError(t, err)
	signer, err := heartbeat.RecoverSigner(3, 8, 0, metrics, sig)
	require.NoError(t, err)
	assert.Equal(t, fields["operator"], signer.Hex())

	pairs, err := heartbeat.DecodeMetrics(metrics)
	require.NoError(t, err)
	require.Len(t, pairs, 2)
	assert.Equal(t, "cpu", pairs[0].Name)
}

func TestParseMetrics(t *testing.T) {
	m, err := parseMetrics([]string{"a=1", "b=22"})
	require.NoError(t, err)
	assert.Equal(t, map[string]uint64{"a": 1, "b": 22}, m)

	for _, bad := range []string{"a", "=1", "a=-1", "a=x"} {
		_, err := parseMetrics([]string{bad})
		assert.Error(t, err, bad)
	}
}
