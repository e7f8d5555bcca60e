package exporter

import (
	"context"
	"errors"
	"math/big"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	gethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tangle-network/operator-status/contracts/statusregistry"
	"github.com/tangle-network/operator-status/db"
	"github.com/tangle-network/operator-status/status"
	"github.com/tangle-network/operator-status/types"
)

var (
	registryAddr = common.HexToAddress("0x00000000000000000000000000000000000005a1")
	operator     = common.HexToAddress("0x71562b71999873DB5b286dF957af199Ec94617F7")
)

type fakeChain struct {
	mu      sync.Mutex
	head    uint64
	logs    []gethtypes.Log
	limit   uint64
	queries [][2]uint64
}

func (c *fakeChain) HeaderByNumber(_ context.Context, number *big.Int) (*gethtypes.Header, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := c.head
	if number != nil {
		n = number.Uint64()
	}
	return &gethtypes.Header{Number: new(big.Int).SetUint64(n), Time: 1_700_000_000 + n*12}, nil
}

func (c *fakeChain) FilterLogs(_ context.Context, q ethereum.FilterQuery) ([]gethtypes.Log, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	from, to := q.FromBlock.Uint64(), q.ToBlock.Uint64()
	c.queries = append(c.queries, [2]uint64{from, to})
	if c.limit > 0 && to-from > c.limit {
		return nil, errors.New("query returned more than 10000 results")
	}
	out := []gethtypes.Log{}
	for _, l := range c.logs {
		if l.BlockNumber >= from && l.BlockNumber <= to {
			out = append(out, l)
		}
	}
	return out, nil
}

type fakeStore struct {
	cursor  *uint64
	batches []*db.StatusBatch
	deleted []string
	// events maps persisted event ids to their block
	events map[string]uint64
}

func (s *fakeStore) GetCursor(context.Context, string) (uint64, error) {
	if s.cursor == nil {
		return 0, db.ErrNotFound
	}
	return *s.cursor, nil
}

func (s *fakeStore) SaveStatusBatch(_ context.Context, b *db.StatusBatch) error {
	s.batches = append(s.batches, b)
	block := b.CursorBlock
	s.cursor = &block
	if s.events == nil {
		s.events = map[string]uint64{}
	}
	for _, hb := range b.Heartbeats {
		s.events[hb.EventID] = hb.BlockNumber
	}
	for _, le := range b.LifecycleEvents {
		s.events[le.EventID] = le.BlockNumber
	}
	for _, m := range b.MetricSnapshots {
		s.events[m.EventID] = m.BlockNumber
	}
	return nil
}

func (s *fakeStore) DeleteEvents(_ context.Context, ids []string, _ uint64) error {
	s.deleted = append(s.deleted, ids...)
	for _, id := range ids {
		delete(s.events, id)
	}
	return nil
}

func (s *fakeStore) GetEventIDs(_ context.Context, fromBlock, toBlock uint64) ([]string, error) {
	ids := []string{}
	for id, block := range s.events {
		if block >= fromBlock && block <= toBlock {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

func mkLog(t *testing.T, ev statusregistry.Event, block uint64, index uint) gethtypes.Log {
	t.Helper()
	l, err := statusregistry.EncodeLog(ev)
	require.NoError(t, err)
	l.Address = registryAddr
	l.BlockNumber = block
	l.BlockHash = common.BigToHash(new(big.Int).SetUint64(block))
	l.TxHash = common.BigToHash(new(big.Int).SetUint64(block*1000 + uint64(index)))
	l.Index = index
	return l
}

func timeAt(offset int64) time.Time {
	return time.Unix(1_700_000_000+offset, 0).UTC()
}

func newTestExporter(t *testing.T, chain *fakeChain, store *fakeStore) (*StatusExporter, *status.Registry) {
	t.Helper()
	replica := status.NewRegistry(status.NewManualClock(timeAt(0)), common.Address{})
	exp, err := NewStatusExporter(chain, store, replica, Options{Address: registryAddr, LookBack: 100, MaxFetch: 1000, UptimePoints: 1})
	require.NoError(t, err)
	return exp, replica
}

func TestBlockRange(t *testing.T) {
	exp, _ := newTestExporter(t, &fakeChain{}, &fakeStore{})
	exp.opts.FirstBlock = 10

	tests := []struct {
		name             string
		cursor, head     uint64
		lastFetched      uint64
		wantFrom, wantTo uint64
	}{
		{"starts at first block", 0, 50, 0, 10, 50},
		{"looks back when synced", 1000, 1005, 0, 905, 1005},
		{"fetches bounded batches", 0, 5000, 0, 10, 1010},
		{"progresses past empty batches", 0, 5000, 1010, 1011, 2011},
		{"head behind cursor", 1000, 990, 0, 890, 990},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exp.lastFetchedBlock = tt.lastFetched
			from, to := exp.blockRange(tt.cursor, tt.head)
			assert.Equal(t, tt.wantFrom, from)
			assert.Equal(t, tt.wantTo, to)
		})
	}
}

func TestRunExportsLogs(t *testing.T) {
	chain := &fakeChain{head: 20}
	chain.logs = []gethtypes.Log{
		mkLog(t, &statusregistry.OperatorStatusRegistryHeartbeatConfigUpdated{ServiceId: 1, Interval: 60, MaxMissed: 2}, 10, 0),
		mkLog(t, &statusregistry.OperatorStatusRegistryMetricReported{ServiceId: 1, Operator: operator, MetricName: "cpu", Value: big.NewInt(42)}, 11, 0),
		mkLog(t, &statusregistry.OperatorStatusRegistryHeartbeatReceived{ServiceId: 1, BlueprintId: 4, Operator: operator, StatusCode: 0, Timestamp: big.NewInt(1_700_000_132)}, 11, 1),
		mkLog(t, &statusregistry.OperatorStatusRegistryMetricViolation{ServiceId: 1, Operator: operator, MetricName: "mem", Reason: status.ReasonRequiredMissing}, 11, 2),
	}
	store := &fakeStore{}
	exp, replica := newTestExporter(t, chain, store)

	synced, err := exp.Run(context.Background())
	require.NoError(t, err)
	assert.True(t, synced)
	require.Len(t, store.batches, 1)

	b := store.batches[0]
	assert.Equal(t, uint64(20), b.CursorBlock)
	assert.Equal(t, CursorName, b.Cursor)
	assert.Equal(t, uint64(1), b.PointsPerHeartbeat)

	require.Len(t, b.Configs, 1)
	assert.Equal(t, uint64(60), b.Configs[0].Interval)
	assert.Equal(t, timeAt(10*12), b.Configs[0].UpdatedAt)

	require.Len(t, b.Heartbeats, 1)
	hb := b.Heartbeats[0]
	assert.Equal(t, types.EventID(chain.logs[2].BlockHash, 1), hb.EventID)
	assert.Equal(t, uint64(4), hb.BlueprintID)
	assert.Equal(t, timeAt(132), hb.Timestamp)

	require.Len(t, b.MetricSnapshots, 1)
	assert.Equal(t, "42", b.MetricSnapshots[0].Value.String())

	require.Len(t, b.LifecycleEvents, 1)
	assert.Equal(t, types.LifecycleMetricViolation, b.LifecycleEvents[0].EventType)
	assert.Equal(t, "mem: "+status.ReasonRequiredMissing, b.LifecycleEvents[0].Details)

	require.Len(t, b.Statuses, 1)
	assert.Equal(t, types.StatusHealthy, b.Statuses[0].Status)
	assert.Equal(t, uint64(1), b.Statuses[0].ConsecutiveBeats)
	assert.Equal(t, uint64(11), b.Statuses[0].BlockNumber)

	assert.Equal(t, uint64(60), replica.GetHeartbeatConfig(1).Interval)
	assert.Equal(t, int64(42), replica.GetMetricValue(1, operator, "cpu").Int64())

	// the lookback window re-reads the same logs without double counting
	_, err = exp.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, store.batches, 2)
	require.Len(t, store.batches[1].Statuses, 1)
	assert.Equal(t, uint64(1), store.batches[1].Statuses[0].ConsecutiveBeats)
}

func TestRunDeletesRemovedLogs(t *testing.T) {
	hb := &statusregistry.OperatorStatusRegistryHeartbeatReceived{ServiceId: 1, Operator: operator, Timestamp: big.NewInt(1)}
	chain := &fakeChain{head: 5}
	chain.logs = []gethtypes.Log{mkLog(t, hb, 5, 3)}
	store := &fakeStore{}
	exp, _ := newTestExporter(t, chain, store)

	_, err := exp.Run(context.Background())
	require.NoError(t, err)
	id := types.EventID(chain.logs[0].BlockHash, 3)
	require.True(t, exp.applied.Contains(id))

	chain.logs[0].Removed = true
	_, err = exp.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{id}, store.deleted)
	assert.False(t, exp.applied.Contains(id))
	assert.Empty(t, store.batches[1].Heartbeats)
}

func TestRunDeletesLogsMovedToAnotherBlock(t *testing.T) {
	hb := &statusregistry.OperatorStatusRegistryHeartbeatReceived{ServiceId: 1, Operator: operator, Timestamp: big.NewInt(1)}
	chain := &fakeChain{head: 8}
	chain.logs = []gethtypes.Log{mkLog(t, hb, 5, 0)}
	store := &fakeStore{}
	exp, _ := newTestExporter(t, chain, store)

	_, err := exp.Run(context.Background())
	require.NoError(t, err)
	oldID := types.EventID(chain.logs[0].BlockHash, 0)

	// the node only returns the log from its new canonical block
	chain.mu.Lock()
	chain.logs[0].BlockHash = common.HexToHash("0xbeef")
	chain.mu.Unlock()
	newID := types.EventID(chain.logs[0].BlockHash, 0)

	_, err = exp.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{oldID}, store.deleted)
	assert.False(t, exp.applied.Contains(oldID))
	assert.True(t, exp.applied.Contains(newID))

	ids, err := store.GetEventIDs(context.Background(), 0, 8)
	require.NoError(t, err)
	assert.Equal(t, []string{newID}, ids)
}

func TestRunAfterRestartDoesNotReapplyStoredLogs(t *testing.T) {
	chain := &fakeChain{head: 20}
	chain.logs = []gethtypes.Log{
		mkLog(t, &statusregistry.OperatorStatusRegistryHeartbeatReceived{ServiceId: 1, Operator: operator, Timestamp: big.NewInt(1_700_000_132)}, 11, 0),
	}
	store := &fakeStore{}
	exp, _ := newTestExporter(t, chain, store)
	_, err := exp.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, store.batches[0].Statuses, 1)
	require.Equal(t, uint64(1), store.batches[0].Statuses[0].ConsecutiveBeats)

	// a new process seeds its replica from the persisted status rows
	restarted, replica := newTestExporter(t, chain, store)
	replica.LoadStatus(store.batches[0].Statuses[0])

	_, err = restarted.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, store.batches, 2)
	require.Len(t, store.batches[1].Statuses, 1)
	assert.Equal(t, uint64(1), store.batches[1].Statuses[0].ConsecutiveBeats)
	row, ok := replica.OperatorStatus(1, operator)
	require.True(t, ok)
	assert.Equal(t, uint64(1), row.ConsecutiveBeats)
	assert.Empty(t, store.deleted)
}

func TestRunShrinksRangeOnTooManyResults(t *testing.T) {
	chain := &fakeChain{head: 5000, limit: 100}
	store := &fakeStore{}
	exp, _ := newTestExporter(t, chain, store)

	synced, err := exp.Run(context.Background())
	require.NoError(t, err)
	assert.False(t, synced)
	require.Len(t, chain.queries, 2)
	assert.Equal(t, [2]uint64{1, 1001}, chain.queries[0])
	assert.Equal(t, [2]uint64{1, 101}, chain.queries[1])
	assert.Equal(t, uint64(101), store.batches[0].CursorBlock)
}
