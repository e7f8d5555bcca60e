package heartbeat

import (
	"context"
	"errors"
	"math/big"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	gethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tangle-network/operator-status/types"
)

type submitted struct {
	serviceID, blueprintID uint64
	statusCode             uint8
	metrics, signature     []byte
}

type fakeRegistry struct {
	mu    sync.Mutex
	calls []submitted
}

func (f *fakeRegistry) SubmitHeartbeat(opts *bind.TransactOpts, serviceId uint64, blueprintId uint64, statusCode uint8, metrics []byte, signature []byte) (*gethtypes.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, submitted{serviceId, blueprintId, statusCode, metrics, signature})
	return gethtypes.NewTx(&gethtypes.LegacyTx{Nonce: uint64(len(f.calls))}), nil
}

func (f *fakeRegistry) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

type fakeSender struct{}

func (fakeSender) Send(ctx context.Context, method string, fn func(*bind.TransactOpts) (*gethtypes.Transaction, error)) (*gethtypes.Receipt, error) {
	tx, err := fn(&bind.TransactOpts{Context: ctx})
	if err != nil {
		return nil, err
	}
	return &gethtypes.Receipt{TxHash: tx.Hash(), Status: gethtypes.ReceiptStatusSuccessful, BlockNumber: big.NewInt(1)}, nil
}

type failingSource struct{}

func (failingSource) Collect(context.Context) (map[string]uint64, error) {
	return nil, errors.New("exporter down")
}

func TestAgentBeat(t *testing.T) {
	key, err := crypto.HexToECDSA(testKey)
	require.NoError(t, err)
	reg := &fakeRegistry{}
	agent := NewAgent(key, reg, fakeSender{}, StaticSource{"uptime": 99})
	assert.Equal(t, testAddr, agent.Operator())

	svc := types.HeartbeatService{ServiceID: 5, BlueprintID: 9, Metrics: map[string]uint64{"cpu": 12, "uptime": 1}}
	receipt, err := agent.Beat(context.Background(), svc)
	require.NoError(t, err)
	require.NotNil(t, receipt)
	require.Equal(t, 1, reg.count())

	call := reg.calls[0]
	assert.Equal(t, uint64(5), call.serviceID)
	assert.Equal(t, uint64(9), call.blueprintID)
	assert.Equal(t, StatusCodeHealthy, call.statusCode)
	require.NoError(t, Verify(testAddr, 5, 9, call.statusCode, call.metrics, call.signature))

	pairs, err := DecodeMetrics(call.metrics)
	require.NoError(t, err)
	require.Len(t, pairs, 2)
	assert.Equal(t, "cpu", pairs[0].Name)
	assert.Equal(t, "uptime", pairs[1].Name)
	assert.Equal(t, int64(99), pairs[1].Value.Int64(), "the metric source overrides static values")
}

func TestAgentDegradesOnSourceFailure(t *testing.T) {
	key, err := crypto.HexToECDSA(testKey)
	require.NoError(t, err)
	agent := NewAgent(key, &fakeRegistry{}, fakeSender{}, failingSource{})

	p, err := agent.Build(context.Background(), types.HeartbeatService{ServiceID: 1, Metrics: map[string]uint64{"cpu": 3}})
	require.NoError(t, err)
	assert.Equal(t, StatusCodeDegraded, p.StatusCode)
	pairs, err := DecodeMetrics(p.Metrics)
	require.NoError(t, err)
	require.Len(t, pairs, 1)
	assert.Equal(t, "cpu", pairs[0].Name)
}

func TestAgentRun(t *testing.T) {
	key, err := crypto.HexToECDSA(testKey)
	require.NoError(t, err)
	reg := &fakeRegistry{}
	agent := NewAgent(key, reg, fakeSender{}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error)
	go func() {
		done <- agent.Run(ctx, []types.HeartbeatService{
			{ServiceID: 1, Interval: 5 * time.Millisecond},
			{ServiceID: 2, Interval: 5 * time.Millisecond},
		})
	}()

	require.Eventually(t, func() bool { return reg.count() >= 4 }, time.Second, time.Millisecond)
	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("agent did not stop")
	}
}

func TestHTTPSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/metrics.json" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte(`{"cpu": 40, "mem": 1024}`))
	}))
	defer srv.Close()

	values, err := NewHTTPSource(srv.URL + "/metrics.json").Collect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]uint64{"cpu": 40, "mem": 1024}, values)

	_, err = NewHTTPSource(srv.URL + "/missing").Collect(context.Background())
	assert.Error(t, err)
}
