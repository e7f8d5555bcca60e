package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/lib/pq"

	"github.com/tangle-network/operator-status/types"
)

var ErrNotFound = errors.New("not found")

// StatusBatch is everything the exporter derived from one block window.
type StatusBatch struct {
	Heartbeats      []*types.Heartbeat
	LifecycleEvents []*types.LifecycleEvent
	Configs         []*types.HeartbeatConfig
	MetricSnapshots []*types.MetricSnapshot
	Statuses        []types.OperatorStatus
	// PointsPerHeartbeat is credited to the uptime program for every
	// heartbeat that was not stored before.
	PointsPerHeartbeat uint64
	Cursor             string
	CursorBlock        uint64
}

func (b *StatusBatch) Empty() bool {
	return len(b.Heartbeats) == 0 && len(b.LifecycleEvents) == 0 && len(b.Configs) == 0 && len(b.MetricSnapshots) == 0 && len(b.Statuses) == 0
}

const insertHeartbeat = `
	INSERT INTO operator_heartbeats (event_id, service_id, blueprint_id, operator, status_code, block_number, ts, tx_hash)
	VALUES (:event_id, :service_id, :blueprint_id, :operator, :status_code, :block_number, :ts, :tx_hash)
	ON CONFLICT (event_id) DO NOTHING`

const insertLifecycleEvent = `
	INSERT INTO operator_lifecycle_events (event_id, service_id, operator, event_type, missed_beats, old_status, status_code, details, block_number, ts, tx_hash)
	VALUES (:event_id, :service_id, :operator, :event_type, :missed_beats, :old_status, :status_code, :details, :block_number, :ts, :tx_hash)
	ON CONFLICT (event_id) DO NOTHING`

const upsertHeartbeatConfig = `
	INSERT INTO heartbeat_configs (service_id, interval_seconds, max_missed, custom_metrics, block_number, updated_at)
	VALUES (:service_id, :interval_seconds, :max_missed, :custom_metrics, :block_number, :updated_at)
	ON CONFLICT (service_id) DO UPDATE SET
		interval_seconds = EXCLUDED.interval_seconds,
		max_missed       = EXCLUDED.max_missed,
		block_number     = EXCLUDED.block_number,
		updated_at       = EXCLUDED.updated_at
	WHERE heartbeat_configs.block_number <= EXCLUDED.block_number`

const insertMetricSnapshot = `
	INSERT INTO operator_metric_snapshots (event_id, service_id, operator, metric_name, value, block_number, ts)
	VALUES (:event_id, :service_id, :operator, :metric_name, :value, :block_number, :ts)
	ON CONFLICT (event_id) DO NOTHING`

const upsertOperatorStatus = `
	INSERT INTO operator_status (service_id, operator, status, last_heartbeat, consecutive_beats, missed_beats, block_number)
	VALUES (:service_id, :operator, :status, :last_heartbeat, :consecutive_beats, :missed_beats, :block_number)
	ON CONFLICT (service_id, operator) DO UPDATE SET
		status            = EXCLUDED.status,
		last_heartbeat    = EXCLUDED.last_heartbeat,
		consecutive_beats = EXCLUDED.consecutive_beats,
		missed_beats      = EXCLUDED.missed_beats,
		block_number      = EXCLUDED.block_number
	WHERE operator_status.block_number <= EXCLUDED.block_number`

const addPoints = `
	INSERT INTO operator_points (operator, program, points) VALUES ($1, $2, $3)
	ON CONFLICT (operator, program) DO UPDATE SET points = operator_points.points + EXCLUDED.points`

const upsertCursor = `
	INSERT INTO exporter_cursors (name, block_number) VALUES ($1, $2)
	ON CONFLICT (name) DO UPDATE SET block_number = EXCLUDED.block_number`

// SaveStatusBatch stores a batch in one transaction. Rows that already exist
// are left alone, so re-indexing a window is idempotent and credits no
// additional points.
func SaveStatusBatch(ctx context.Context, b *StatusBatch) error {
	tx, err := WriterDb.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	points := map[common.Address]uint64{}
	for _, hb := range b.Heartbeats {
		res, err := tx.NamedExecContext(ctx, insertHeartbeat, hb)
		if err != nil {
			return fmt.Errorf("error saving heartbeat %v: %w", hb.EventID, err)
		}
		if n, err := res.RowsAffected(); err == nil && n > 0 && b.PointsPerHeartbeat > 0 {
			points[hb.Operator] += b.PointsPerHeartbeat
		}
	}
	for _, ev := range b.LifecycleEvents {
		if _, err := tx.NamedExecContext(ctx, insertLifecycleEvent, ev); err != nil {
			return fmt.Errorf("error saving lifecycle event %v: %w", ev.EventID, err)
		}
	}
	for _, cfg := range b.Configs {
		if _, err := tx.NamedExecContext(ctx, upsertHeartbeatConfig, cfg); err != nil {
			return fmt.Errorf("error saving heartbeat config of service %v: %w", cfg.ServiceID, err)
		}
	}
	for _, m := range b.MetricSnapshots {
		if _, err := tx.NamedExecContext(ctx, insertMetricSnapshot, m); err != nil {
			return fmt.Errorf("error saving metric snapshot %v: %w", m.EventID, err)
		}
	}
	for i := range b.Statuses {
		if _, err := tx.NamedExecContext(ctx, upsertOperatorStatus, &b.Statuses[i]); err != nil {
			return fmt.Errorf("error saving status of %v: %w", b.Statuses[i].Operator.Hex(), err)
		}
	}
	for operator, n := range points {
		if _, err := tx.ExecContext(ctx, addPoints, operator, types.UptimeProgram, n); err != nil {
			return fmt.Errorf("error crediting points to %v: %w", operator.Hex(), err)
		}
	}
	if b.Cursor != "" {
		if _, err := tx.ExecContext(ctx, upsertCursor, b.Cursor, b.CursorBlock); err != nil {
			return fmt.Errorf("error saving cursor %v: %w", b.Cursor, err)
		}
	}
	return tx.Commit()
}

// DeleteEvents removes the rows of logs dropped by a reorg and takes back
// the points their heartbeats earned.
func DeleteEvents(ctx context.Context, eventIDs []string, pointsPerHeartbeat uint64) error {
	if len(eventIDs) == 0 {
		return nil
	}
	tx, err := WriterDb.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	ids := pq.Array(eventIDs)
	if pointsPerHeartbeat > 0 {
		_, err = tx.ExecContext(ctx, `
			UPDATE operator_points p SET points = GREATEST(p.points - sub.cnt * $3, 0)
			FROM (SELECT operator, COUNT(*) AS cnt FROM operator_heartbeats WHERE event_id = ANY($1) GROUP BY operator) sub
			WHERE p.operator = sub.operator AND p.program = $2`, ids, types.UptimeProgram, pointsPerHeartbeat)
		if err != nil {
			return fmt.Errorf("error reverting points: %w", err)
		}
	}
	for _, table := range []string{"operator_heartbeats", "operator_lifecycle_events", "operator_metric_snapshots"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table+" WHERE event_id = ANY($1)", ids); err != nil {
			return fmt.Errorf("error deleting from %v: %w", table, err)
		}
	}
	return tx.Commit()
}

// GetEventIDs returns the ids of all persisted events between fromBlock and
// toBlock, inclusive.
func GetEventIDs(ctx context.Context, fromBlock, toBlock uint64) ([]string, error) {
	ids := []string{}
	err := ReaderDb.SelectContext(ctx, &ids, `
		SELECT event_id FROM operator_heartbeats WHERE block_number BETWEEN $1 AND $2
		UNION SELECT event_id FROM operator_lifecycle_events WHERE block_number BETWEEN $1 AND $2
		UNION SELECT event_id FROM operator_metric_snapshots WHERE block_number BETWEEN $1 AND $2`, fromBlock, toBlock)
	if err != nil {
		return nil, fmt.Errorf("error getting event ids for blocks %v-%v: %w", fromBlock, toBlock, err)
	}
	return ids, nil
}

func GetCursor(ctx context.Context, name string) (uint64, error) {
	var block uint64
	err := ReaderDb.GetContext(ctx, &block, `SELECT block_number FROM exporter_cursors WHERE name = $1`, name)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrNotFound
	}
	return block, err
}

func GetOperatorStatuses(ctx context.Context, serviceID uint64) ([]types.OperatorStatus, error) {
	rows := []types.OperatorStatus{}
	err := ReaderDb.SelectContext(ctx, &rows, `
		SELECT service_id, operator, status, last_heartbeat, consecutive_beats, missed_beats, block_number
		FROM operator_status WHERE service_id = $1 ORDER BY operator`, serviceID)
	return rows, err
}

// GetAllOperatorStatuses is used to seed the status replica on startup.
func GetAllOperatorStatuses(ctx context.Context) ([]types.OperatorStatus, error) {
	rows := []types.OperatorStatus{}
	err := ReaderDb.SelectContext(ctx, &rows, `
		SELECT service_id, operator, status, last_heartbeat, consecutive_beats, missed_beats, block_number
		FROM operator_status ORDER BY service_id, operator`)
	return rows, err
}

func GetOperatorStatus(ctx context.Context, serviceID uint64, operator common.Address) (*types.OperatorStatus, error) {
	row := &types.OperatorStatus{}
	err := ReaderDb.GetContext(ctx, row, `
		SELECT service_id, operator, status, last_heartbeat, consecutive_beats, missed_beats, block_number
		FROM operator_status WHERE service_id = $1 AND operator = $2`, serviceID, operator)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return row, nil
}

// GetHeartbeats returns the newest heartbeats of a service, optionally only
// those of one operator.
func GetHeartbeats(ctx context.Context, serviceID uint64, operator *common.Address, limit int) ([]types.Heartbeat, error) {
	rows := []types.Heartbeat{}
	query := `
		SELECT event_id, service_id, blueprint_id, operator, status_code, block_number, ts, tx_hash
		FROM operator_heartbeats WHERE service_id = $1`
	args := []interface{}{serviceID}
	if operator != nil {
		query += ` AND operator = $2`
		args = append(args, *operator)
	}
	query += fmt.Sprintf(` ORDER BY block_number DESC, event_id DESC LIMIT %d`, clampLimit(limit))
	err := ReaderDb.SelectContext(ctx, &rows, query, args...)
	return rows, err
}

func GetLifecycleEvents(ctx context.Context, serviceID uint64, limit int) ([]types.LifecycleEvent, error) {
	rows := []types.LifecycleEvent{}
	err := ReaderDb.SelectContext(ctx, &rows, `
		SELECT event_id, service_id, operator, event_type, missed_beats, old_status, status_code, details, block_number, ts, tx_hash
		FROM operator_lifecycle_events WHERE service_id = $1
		ORDER BY block_number DESC, event_id DESC LIMIT $2`, serviceID, clampLimit(limit))
	return rows, err
}

func GetHeartbeatConfig(ctx context.Context, serviceID uint64) (*types.HeartbeatConfig, error) {
	cfg := &types.HeartbeatConfig{}
	err := ReaderDb.GetContext(ctx, cfg, `
		SELECT service_id, interval_seconds, max_missed, custom_metrics, block_number, updated_at
		FROM heartbeat_configs WHERE service_id = $1`, serviceID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func GetHeartbeatConfigs(ctx context.Context) ([]types.HeartbeatConfig, error) {
	rows := []types.HeartbeatConfig{}
	err := ReaderDb.SelectContext(ctx, &rows, `
		SELECT service_id, interval_seconds, max_missed, custom_metrics, block_number, updated_at
		FROM heartbeat_configs ORDER BY service_id`)
	return rows, err
}

// GetLatestMetrics returns the newest value of every metric an operator reported.
func GetLatestMetrics(ctx context.Context, serviceID uint64, operator common.Address) ([]types.MetricSnapshot, error) {
	rows := []types.MetricSnapshot{}
	err := ReaderDb.SelectContext(ctx, &rows, `
		SELECT DISTINCT ON (metric_name) event_id, service_id, operator, metric_name, value, block_number, ts
		FROM operator_metric_snapshots WHERE service_id = $1 AND operator = $2
		ORDER BY metric_name, block_number DESC, event_id DESC`, serviceID, operator)
	return rows, err
}

func GetOperatorPoints(ctx context.Context, operator common.Address) ([]types.OperatorPoints, error) {
	rows := []types.OperatorPoints{}
	err := ReaderDb.SelectContext(ctx, &rows, `
		SELECT operator, program, points FROM operator_points WHERE operator = $1 ORDER BY program`, operator)
	return rows, err
}

// SetCustomMetrics records the custom metrics flag, which is only readable
// through getHeartbeatConfig and not evented.
func SetCustomMetrics(ctx context.Context, serviceID uint64, enabled bool) error {
	_, err := WriterDb.ExecContext(ctx, `UPDATE heartbeat_configs SET custom_metrics = $2 WHERE service_id = $1`, serviceID, enabled)
	return err
}
