package db

import (
	"context"
	"os"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/ethereum/go-ethereum/common"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tangle-network/operator-status/types"
)

var (
	operatorA = common.HexToAddress("0x71562b71999873DB5b286dF957af199Ec94617F7")
	operatorB = common.HexToAddress("0x00000000000000000000000000000000000000b0")
)

func mockDb(t *testing.T) sqlmock.Sqlmock {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	WriterDb = sqlx.NewDb(conn, "pgx")
	ReaderDb = WriterDb
	return mock
}

func TestSaveStatusBatchCreditsNewHeartbeatsOnly(t *testing.T) {
	mock := mockDb(t)
	ts := time.Unix(1_700_000_000, 0).UTC()
	batch := &StatusBatch{
		Heartbeats: []*types.Heartbeat{
			{EventID: "0x01-0", ServiceID: 1, Operator: operatorA, BlockNumber: 10, Timestamp: ts},
			{EventID: "0x01-1", ServiceID: 1, Operator: operatorB, BlockNumber: 10, Timestamp: ts},
		},
		Statuses: []types.OperatorStatus{
			{ServiceID: 1, Operator: operatorA, Status: types.StatusHealthy, LastHeartbeat: ts, ConsecutiveBeats: 1, BlockNumber: 10},
		},
		PointsPerHeartbeat: 1,
		Cursor:             "status",
		CursorBlock:        10,
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO operator_heartbeats").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO operator_heartbeats").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO operator_status").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO operator_points").
		WithArgs(operatorA, types.UptimeProgram, uint64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO exporter_cursors").
		WithArgs("status", uint64(10)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, SaveStatusBatch(context.Background(), batch))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveStatusBatchRollsBackOnError(t *testing.T) {
	mock := mockDb(t)
	batch := &StatusBatch{
		LifecycleEvents: []*types.LifecycleEvent{{EventID: "0x02-3", EventType: types.LifecycleWentOffline, MissedBeats: 3}},
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO operator_lifecycle_events").WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err := SaveStatusBatch(context.Background(), batch)
	require.ErrorIs(t, err, assert.AnError)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteEvents(t *testing.T) {
	mock := mockDb(t)
	ids := []string{"0x03-0", "0x03-1"}

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE operator_points").
		WithArgs(pq.Array(ids), types.UptimeProgram, uint64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	for _, table := range []string{"operator_heartbeats", "operator_lifecycle_events", "operator_metric_snapshots"} {
		mock.ExpectExec("DELETE FROM " + table).WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectCommit()

	require.NoError(t, DeleteEvents(context.Background(), ids, 2))
	require.NoError(t, DeleteEvents(context.Background(), nil, 2))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCursorNotFound(t *testing.T) {
	mock := mockDb(t)
	mock.ExpectQuery("SELECT block_number FROM exporter_cursors").
		WithArgs("status").
		WillReturnRows(sqlmock.NewRows([]string{"block_number"}))

	_, err := GetCursor(context.Background(), "status")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestGetEventIDs(t *testing.T) {
	mock := mockDb(t)
	mock.ExpectQuery(regexp.QuoteMeta("UNION SELECT event_id FROM operator_metric_snapshots WHERE block_number BETWEEN $1 AND $2")).
		WithArgs(uint64(10), uint64(20)).
		WillReturnRows(sqlmock.NewRows([]string{"event_id"}).AddRow("0x0a-0").AddRow("0x0b-2"))

	ids, err := GetEventIDs(context.Background(), 10, 20)
	require.NoError(t, err)
	assert.Equal(t, []string{"0x0a-0", "0x0b-2"}, ids)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetOperatorStatus(t *testing.T) {
	mock := mockDb(t)
	ts := time.Unix(1_700_000_000, 0).UTC()
	mock.ExpectQuery(regexp.QuoteMeta("FROM operator_status WHERE service_id = $1 AND operator = $2")).
		WithArgs(uint64(4), operatorA).
		WillReturnRows(sqlmock.NewRows([]string{"service_id", "operator", "status", "last_heartbeat", "consecutive_beats", "missed_beats", "block_number"}).
			AddRow(4, operatorA.Bytes(), 2, ts, 0, 3, 99))

	row, err := GetOperatorStatus(context.Background(), 4, operatorA)
	require.NoError(t, err)
	assert.Equal(t, operatorA, row.Operator)
	assert.Equal(t, types.StatusOffline, row.Status)
	assert.Equal(t, uint8(3), row.MissedBeats)
	assert.False(t, row.Online())
	assert.Equal(t, uint64(99), row.BlockNumber)
}

func TestGetHeartbeatsClampsLimit(t *testing.T) {
	mock := mockDb(t)
	mock.ExpectQuery(regexp.QuoteMeta("AND operator = $2 ORDER BY block_number DESC, event_id DESC LIMIT 1000")).
		WithArgs(uint64(1), operatorB).
		WillReturnRows(sqlmock.NewRows([]string{"event_id", "service_id", "blueprint_id", "operator", "status_code", "block_number", "ts", "tx_hash"}))

	rows, err := GetHeartbeats(context.Background(), 1, &operatorB, 50_000)
	require.NoError(t, err)
	assert.Empty(t, rows)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, DefaultQueryLimit, clampLimit(0))
	assert.Equal(t, DefaultQueryLimit, clampLimit(-5))
	assert.Equal(t, 7, clampLimit(7))
	assert.Equal(t, MaxQueryLimit, clampLimit(MaxQueryLimit+1))
}

// TestStatusSchema runs against a real postgres when STATUS_TEST_DSN is set.
func TestStatusSchema(t *testing.T) {
	dsn, exists := os.LookupEnv("STATUS_TEST_DSN")
	if !exists {
		t.Skip()
	}
	conn, err := sqlx.Open("pgx", dsn)
	require.NoError(t, err)
	defer conn.Close()
	WriterDb, ReaderDb = conn, conn
	require.NoError(t, ApplyEmbeddedDbSchema(-2))

	ctx := context.Background()
	ts := time.Now().UTC().Truncate(time.Second)
	hb := &types.Heartbeat{EventID: "schema-test-0", ServiceID: 77, BlueprintID: 1, Operator: operatorA, BlockNumber: 5, Timestamp: ts, TxHash: common.HexToHash("0x01")}
	batch := &StatusBatch{
		Heartbeats:         []*types.Heartbeat{hb},
		Configs:            []*types.HeartbeatConfig{{ServiceID: 77, Interval: 60, MaxMissed: 3, BlockNumber: 5, UpdatedAt: ts}},
		MetricSnapshots:    []*types.MetricSnapshot{{EventID: "schema-test-1", ServiceID: 77, Operator: operatorA, MetricName: "cpu", Value: decimal.NewFromInt(42), BlockNumber: 5, Timestamp: ts}},
		PointsPerHeartbeat: 1,
		Cursor:             "schema-test",
		CursorBlock:        5,
	}
	require.NoError(t, SaveStatusBatch(ctx, batch))
	require.NoError(t, SaveStatusBatch(ctx, batch))

	points, err := GetOperatorPoints(ctx, operatorA)
	require.NoError(t, err)
	require.NotEmpty(t, points)

	block, err := GetCursor(ctx, "schema-test")
	require.NoError(t, err)
	assert.Equal(t, uint64(5), block)

	m, err := GetLatestMetrics(ctx, 77, operatorA)
	require.NoError(t, err)
	require.Len(t, m, 1)
	assert.True(t, m[0].Value.Equal(decimal.NewFromInt(42)))

	require.NoError(t, DeleteEvents(ctx, []string{"schema-test-0", "schema-test-1"}, 1))
	hbs, err := GetHeartbeats(ctx, 77, nil, 10)
	require.NoError(t, err)
	assert.Empty(t, hbs)
}
