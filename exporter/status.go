package exporter

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"sort"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	gethtypes "github.com/ethereum/go-ethereum/core/types"
	lru "github.com/hashicorp/golang-lru"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/tangle-network/operator-status/cache"
	"github.com/tangle-network/operator-status/contracts/statusregistry"
	"github.com/tangle-network/operator-status/db"
	"github.com/tangle-network/operator-status/metrics"
	"github.com/tangle-network/operator-status/status"
	"github.com/tangle-network/operator-status/types"
)

const CursorName = "status-registry"

var infuraToMuchResultsErrorRE = regexp.MustCompile("query returned more than [0-9]+ results")
var gethRequestEntityTooLargeRE = regexp.MustCompile("413 Request Entity Too Large")

// ChainReader is the part of an ethclient the exporter needs.
type ChainReader interface {
	HeaderByNumber(ctx context.Context, number *big.Int) (*gethtypes.Header, error)
	FilterLogs(ctx context.Context, q ethereum.FilterQuery) ([]gethtypes.Log, error)
}

// Store persists exported batches.
type Store interface {
	GetCursor(ctx context.Context, name string) (uint64, error)
	SaveStatusBatch(ctx context.Context, b *db.StatusBatch) error
	DeleteEvents(ctx context.Context, eventIDs []string, pointsPerHeartbeat uint64) error
	GetEventIDs(ctx context.Context, fromBlock, toBlock uint64) ([]string, error)
}

type dbStore struct{}

func (dbStore) GetCursor(ctx context.Context, name string) (uint64, error) {
	return db.GetCursor(ctx, name)
}

func (dbStore) SaveStatusBatch(ctx context.Context, b *db.StatusBatch) error {
	return db.SaveStatusBatch(ctx, b)
}

func (dbStore) DeleteEvents(ctx context.Context, eventIDs []string, pointsPerHeartbeat uint64) error {
	return db.DeleteEvents(ctx, eventIDs, pointsPerHeartbeat)
}

func (dbStore) GetEventIDs(ctx context.Context, fromBlock, toBlock uint64) ([]string, error) {
	return db.GetEventIDs(ctx, fromBlock, toBlock)
}

// DbStore writes through the global db pools.
var DbStore Store = dbStore{}

type Options struct {
	ChainID      uint64
	Address      common.Address
	FirstBlock   uint64
	LookBack     uint64
	MaxFetch     uint64
	PollInterval time.Duration
	UptimePoints uint64
}

// StatusExporter regularly fetches the registry logs of the last LookBack
// blocks, exports them into the database and folds them into the status
// replica. Persisted events of the window that are no longer part of the
// canonical chain are deleted again.
type StatusExporter struct {
	client  ChainReader
	store   Store
	replica *status.Registry
	opts    Options

	// applied keeps event ids already folded into the replica since the
	// lookback window is read repeatedly
	applied          *lru.Cache
	lastFetchedBlock uint64
}

func NewStatusExporter(client ChainReader, store Store, replica *status.Registry, opts Options) (*StatusExporter, error) {
	if opts.LookBack == 0 {
		opts.LookBack = 100
	}
	if opts.MaxFetch == 0 {
		opts.MaxFetch = 1000
	}
	if opts.PollInterval == 0 {
		opts.PollInterval = 5 * time.Second
	}
	applied, err := lru.New(100_000)
	if err != nil {
		return nil, err
	}
	return &StatusExporter{
		client:  client,
		store:   store,
		replica: replica,
		opts:    opts,
		applied: applied,
	}, nil
}

// Start runs the export loop until ctx is done.
func (e *StatusExporter) Start(ctx context.Context) {
	for {
		synced, err := e.Run(ctx)
		if err != nil {
			logger.WithError(err).Error("error exporting registry logs")
			metrics.Errors.WithLabelValues("exporter", "run").Inc()
		}

		wait := e.opts.PollInterval
		// progress faster if we are not synced to head yet
		if err == nil && !synced {
			wait = 0
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(wait):
		}
	}
}

// blockRange computes the next window to fetch.
func (e *StatusExporter) blockRange(cursor, head uint64) (uint64, uint64) {
	fromBlock := cursor + 1
	toBlock := head

	// start from the first block
	if fromBlock < e.opts.FirstBlock {
		fromBlock = e.opts.FirstBlock
	}
	// make sure we are progressing even if there were no logs in the last batch
	if fromBlock < e.lastFetchedBlock+1 {
		fromBlock = e.lastFetchedBlock + 1
	}
	// if we are not synced to the head yet fetch missing blocks in batches
	if toBlock > fromBlock && toBlock-fromBlock > e.opts.MaxFetch {
		toBlock = fromBlock + e.opts.MaxFetch
	}
	// if we are synced to the head look at the last LookBack blocks
	if toBlock < fromBlock || toBlock-fromBlock < e.opts.LookBack {
		if toBlock > e.opts.LookBack {
			fromBlock = toBlock - e.opts.LookBack
		} else {
			fromBlock = 0
		}
		if fromBlock < e.opts.FirstBlock {
			fromBlock = e.opts.FirstBlock
		}
	}
	return fromBlock, toBlock
}

// Run exports one window and reports whether the exporter reached the head.
func (e *StatusExporter) Run(ctx context.Context) (bool, error) {
	t0 := time.Now()
	defer func() { metrics.ExporterRunDuration.Observe(time.Since(t0).Seconds()) }()

	cursor, err := e.store.GetCursor(ctx, CursorName)
	if err != nil && !errors.Is(err, db.ErrNotFound) {
		return false, fmt.Errorf("error retrieving exporter cursor: %w", err)
	}
	header, err := e.client.HeaderByNumber(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("error getting head header: %w", err)
	}
	blockHeight := header.Number.Uint64()
	metrics.ExporterHeadBlock.Set(float64(blockHeight))

	fromBlock, toBlock := e.blockRange(cursor, blockHeight)
	if fromBlock > toBlock {
		return true, nil
	}

	logs, err := e.fetchLogs(ctx, fromBlock, toBlock)
	if err != nil {
		if infuraToMuchResultsErrorRE.MatchString(err.Error()) || gethRequestEntityTooLargeRE.MatchString(err.Error()) {
			toBlock = fromBlock + e.opts.LookBack
			if toBlock > blockHeight {
				toBlock = blockHeight
			}
			logger.Infof("limiting block-range to %v-%v when fetching registry logs due to too much results", fromBlock, toBlock)
			logs, err = e.fetchLogs(ctx, fromBlock, toBlock)
		}
		if err != nil {
			return false, fmt.Errorf("error fetching registry logs %v-%v: %w", fromBlock, toBlock, err)
		}
	}

	stored, err := e.store.GetEventIDs(ctx, fromBlock, toBlock)
	if err != nil {
		return false, err
	}

	batch, removed, err := e.process(ctx, logs, stored)
	if err != nil {
		return false, err
	}
	if len(removed) > 0 {
		if err := e.store.DeleteEvents(ctx, removed, e.opts.UptimePoints); err != nil {
			return false, fmt.Errorf("error deleting removed logs: %w", err)
		}
		for _, id := range removed {
			e.applied.Remove(id)
		}
	}
	batch.Cursor = CursorName
	batch.CursorBlock = toBlock
	if err := e.store.SaveStatusBatch(ctx, batch); err != nil {
		return false, fmt.Errorf("error saving registry logs: %w", err)
	}

	e.updateCache(ctx, batch, blockHeight)
	e.lastFetchedBlock = toBlock

	logger.WithFields(logrus.Fields{
		"duration":    time.Since(t0),
		"blockHeight": blockHeight,
		"fromBlock":   fromBlock,
		"toBlock":     toBlock,
		"logs":        len(logs),
		"removed":     len(removed),
		"heartbeats":  len(batch.Heartbeats),
	}).Info("exported registry logs")

	return toBlock == blockHeight, nil
}

func (e *StatusExporter) fetchLogs(ctx context.Context, fromBlock, toBlock uint64) ([]gethtypes.Log, error) {
	return e.client.FilterLogs(ctx, ethereum.FilterQuery{
		Addresses: []common.Address{e.opts.Address},
		Topics:    [][]common.Hash{statusregistry.EventTopics()},
		FromBlock: new(big.Int).SetUint64(fromBlock),
		ToBlock:   new(big.Int).SetUint64(toBlock),
	})
}

type serviceOperator struct {
	service  uint64
	operator common.Address
}

// process decodes logs into a batch, applies new events to the replica and
// returns the event ids to delete. stored holds the persisted event ids of the
// fetched range: those still among logs were applied before, the rest were
// reorged out.
func (e *StatusExporter) process(ctx context.Context, logs []gethtypes.Log, stored []string) (*db.StatusBatch, []string, error) {
	batch := &db.StatusBatch{PointsPerHeartbeat: e.opts.UptimePoints}
	removed := []string{}
	isRemoved := map[string]bool{}

	canonical := make(map[string]bool, len(logs))
	for _, l := range logs {
		id := types.EventID(l.BlockHash, l.Index)
		if l.Removed {
			removed = append(removed, id)
			isRemoved[id] = true
			continue
		}
		canonical[id] = true
	}
	for _, id := range stored {
		if canonical[id] {
			e.applied.Add(id, struct{}{})
		} else if !isRemoved[id] {
			removed = append(removed, id)
			isRemoved[id] = true
		}
	}

	sort.SliceStable(logs, func(i, j int) bool {
		if logs[i].BlockNumber != logs[j].BlockNumber {
			return logs[i].BlockNumber < logs[j].BlockNumber
		}
		return logs[i].Index < logs[j].Index
	})

	timestamps, err := e.blockTimestamps(ctx, logs)
	if err != nil {
		return nil, nil, err
	}

	touched := map[serviceOperator]bool{}
	touchedOrder := []serviceOperator{}
	for _, l := range logs {
		if l.Removed {
			continue
		}
		id := types.EventID(l.BlockHash, l.Index)
		ev, err := statusregistry.DecodeLog(l)
		if err != nil {
			logger.WithError(err).WithField("event", id).Warn("skipping undecodable registry log")
			metrics.Errors.WithLabelValues("exporter", "decode").Inc()
			continue
		}
		metrics.ExporterLogsTotal.WithLabelValues(ev.EventName()).Inc()

		so, ok := toModels(batch, ev, id, timestamps[l.BlockNumber])
		if ok && !touched[so] {
			touched[so] = true
			touchedOrder = append(touchedOrder, so)
		}

		if e.applied.Contains(id) {
			continue
		}
		if err := e.replica.Apply(ev, timestamps[l.BlockNumber]); err != nil {
			return nil, nil, fmt.Errorf("error applying %v: %w", id, err)
		}
		e.applied.Add(id, struct{}{})
	}

	for _, so := range touchedOrder {
		if row, ok := e.replica.OperatorStatus(so.service, so.operator); ok {
			batch.Statuses = append(batch.Statuses, row)
		}
	}
	return batch, removed, nil
}

// toModels appends the rows for ev to batch and returns the operator it
// concerns, if any.
func toModels(batch *db.StatusBatch, ev statusregistry.Event, id string, ts time.Time) (serviceOperator, bool) {
	raw := ev.RawLog()
	lifecycle := func(serviceID uint64, operator common.Address, t types.LifecycleEventType) *types.LifecycleEvent {
		le := &types.LifecycleEvent{
			EventID:     id,
			ServiceID:   serviceID,
			Operator:    operator,
			EventType:   t,
			BlockNumber: raw.BlockNumber,
			Timestamp:   ts,
			TxHash:      raw.TxHash,
		}
		batch.LifecycleEvents = append(batch.LifecycleEvents, le)
		return le
	}

	switch e := ev.(type) {
	case *statusregistry.OperatorStatusRegistryHeartbeatReceived:
		hbTs := ts
		if e.Timestamp != nil && e.Timestamp.Sign() > 0 {
			hbTs = time.Unix(e.Timestamp.Int64(), 0).UTC()
		}
		batch.Heartbeats = append(batch.Heartbeats, &types.Heartbeat{
			EventID:     id,
			ServiceID:   e.ServiceId,
			BlueprintID: e.BlueprintId,
			Operator:    e.Operator,
			StatusCode:  types.StatusCode(e.StatusCode),
			BlockNumber: raw.BlockNumber,
			Timestamp:   hbTs,
			TxHash:      raw.TxHash,
		})
		return serviceOperator{e.ServiceId, e.Operator}, true

	case *statusregistry.OperatorStatusRegistryOperatorWentOffline:
		le := lifecycle(e.ServiceId, e.Operator, types.LifecycleWentOffline)
		le.MissedBeats = e.MissedBeats
		le.StatusCode = types.StatusOffline
		return serviceOperator{e.ServiceId, e.Operator}, true

	case *statusregistry.OperatorStatusRegistryOperatorCameOnline:
		le := lifecycle(e.ServiceId, e.Operator, types.LifecycleCameOnline)
		le.StatusCode = types.StatusHealthy
		return serviceOperator{e.ServiceId, e.Operator}, true

	case *statusregistry.OperatorStatusRegistryStatusChanged:
		le := lifecycle(e.ServiceId, e.Operator, types.LifecycleStatusChanged)
		le.OldStatus = types.StatusCode(e.OldStatus)
		le.StatusCode = types.StatusCode(e.NewStatus)
		return serviceOperator{e.ServiceId, e.Operator}, true

	case *statusregistry.OperatorStatusRegistrySlashingTriggered:
		le := lifecycle(e.ServiceId, e.Operator, types.LifecycleSlashAlert)
		le.Details = e.Reason
		return serviceOperator{e.ServiceId, e.Operator}, true

	case *statusregistry.OperatorStatusRegistryMetricViolation:
		le := lifecycle(e.ServiceId, e.Operator, types.LifecycleMetricViolation)
		le.Details = e.MetricName + ": " + e.Reason
		return serviceOperator{e.ServiceId, e.Operator}, true

	case *statusregistry.OperatorStatusRegistryMetricReported:
		value := decimal.Zero
		if e.Value != nil {
			value = decimal.NewFromBigInt(e.Value, 0)
		}
		batch.MetricSnapshots = append(batch.MetricSnapshots, &types.MetricSnapshot{
			EventID:     id,
			ServiceID:   e.ServiceId,
			Operator:    e.Operator,
			MetricName:  e.MetricName,
			Value:       value,
			BlockNumber: raw.BlockNumber,
			Timestamp:   ts,
		})
		return serviceOperator{e.ServiceId, e.Operator}, true

	case *statusregistry.OperatorStatusRegistryHeartbeatConfigUpdated:
		batch.Configs = append(batch.Configs, &types.HeartbeatConfig{
			ServiceID:   e.ServiceId,
			Interval:    e.Interval,
			MaxMissed:   e.MaxMissed,
			BlockNumber: raw.BlockNumber,
			UpdatedAt:   ts,
		})
	}
	return serviceOperator{}, false
}

// blockTimestamps fetches the headers of every block a log was emitted in.
func (e *StatusExporter) blockTimestamps(ctx context.Context, logs []gethtypes.Log) (map[uint64]time.Time, error) {
	blocks := []uint64{}
	seen := map[uint64]bool{}
	for _, l := range logs {
		if l.Removed || seen[l.BlockNumber] {
			continue
		}
		seen[l.BlockNumber] = true
		blocks = append(blocks, l.BlockNumber)
	}

	headers := make([]*gethtypes.Header, len(blocks))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for i, b := range blocks {
		i, b := i, b
		g.Go(func() error {
			h, err := e.client.HeaderByNumber(gCtx, new(big.Int).SetUint64(b))
			if err != nil {
				return fmt.Errorf("error getting header of block %v: %w", b, err)
			}
			headers[i] = h
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	timestamps := make(map[uint64]time.Time, len(blocks))
	for i, b := range blocks {
		timestamps[b] = time.Unix(int64(headers[i].Time), 0).UTC()
	}
	return timestamps, nil
}

func (e *StatusExporter) updateCache(ctx context.Context, batch *db.StatusBatch, head uint64) {
	if cache.TieredCache == nil {
		return
	}
	services := map[uint64]bool{}
	for _, row := range batch.Statuses {
		services[row.ServiceID] = true
	}
	for svc := range services {
		if err := cache.SetServiceStatuses(ctx, e.opts.ChainID, svc, e.replica.Snapshot(svc)); err != nil {
			logger.WithError(err).WithField("service", svc).Warn("error caching operator statuses")
		}
	}
	if err := cache.SetExporterHead(ctx, e.opts.ChainID, head); err != nil {
		logger.WithError(err).Warn("error caching exporter head")
	}
}
