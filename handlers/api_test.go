package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tangle-network/operator-status/abiutil"
	"github.com/tangle-network/operator-status/cache"
	"github.com/tangle-network/operator-status/contracts/statusregistry"
	"github.com/tangle-network/operator-status/db"
)

var operator = common.HexToAddress("0x71562b71999873DB5b286dF957af199Ec94617F7")

var statusColumns = []string{"service_id", "operator", "status", "last_heartbeat", "consecutive_beats", "missed_beats", "block_number"}

type apiResponse struct {
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data"`
}

func mockDb(t *testing.T) sqlmock.Sqlmock {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	db.WriterDb = sqlx.NewDb(conn, "pgx")
	db.ReaderDb = db.WriterDb
	cache.TieredCache = nil
	return mock
}

func serve(t *testing.T, method, url string, body []byte) (*httptest.ResponseRecorder, apiResponse) {
	t.Helper()
	req := httptest.NewRequest(method, url, bytes.NewReader(body))
	rec := httptest.NewRecorder()
	NewRouter().ServeHTTP(rec, req)

	res := apiResponse{}
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	}
	return rec, res
}

func TestApiServiceOperators(t *testing.T) {
	mock := mockDb(t)
	now := time.Now().UTC()
	mock.ExpectQuery("FROM operator_status WHERE service_id = \\$1 ORDER BY operator").
		WithArgs(uint64(7)).
		WillReturnRows(sqlmock.NewRows(statusColumns).
			AddRow(uint64(7), operator.Bytes(), 0, now.Add(-30*time.Second), 12, 0, 100))
	mock.ExpectQuery("FROM heartbeat_configs WHERE service_id = \\$1").
		WithArgs(uint64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"service_id", "interval_seconds", "max_missed", "custom_metrics", "block_number", "updated_at"}))

	rec, res := serve(t, "GET", "/api/v1/services/7/operators", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", res.Status)

	rows := []map[string]interface{}{}
	require.NoError(t, json.Unmarshal(res.Data, &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, strings.ToLower(operator.Hex()), rows[0]["operator"])
	assert.Equal(t, "HEALTHY", rows[0]["statusName"])
	assert.Equal(t, true, rows[0]["online"])
	assert.Equal(t, true, rows[0]["heartbeatCurrent"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApiServiceOperatorNotFound(t *testing.T) {
	mock := mockDb(t)
	mock.ExpectQuery("FROM operator_status WHERE service_id = \\$1 AND operator = \\$2").
		WillReturnRows(sqlmock.NewRows(statusColumns))

	rec, res := serve(t, "GET", "/api/v1/services/7/operators/"+operator.Hex(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "ERROR: operator not found", res.Status)
}

func TestApiRejectsInvalidParams(t *testing.T) {
	mockDb(t)
	tests := []struct {
		name, url, status string
	}{
		{"service id", "/api/v1/services/abc/operators", "ERROR: invalid service id provided"},
		{"operator", "/api/v1/services/1/operators/0x1234", "ERROR: invalid operator address provided"},
		{"limit", "/api/v1/services/1/events?limit=-4", "ERROR: invalid limit provided"},
		{"heartbeat operator", "/api/v1/services/1/heartbeats?operator=nope", "ERROR: invalid operator address provided"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, res := serve(t, "GET", tt.url, nil)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.status, res.Status)
		})
	}
}

func TestApiServiceConfigDefaults(t *testing.T) {
	mock := mockDb(t)
	mock.ExpectQuery("FROM heartbeat_configs WHERE service_id = \\$1").
		WithArgs(uint64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"service_id"}))

	rec, res := serve(t, "GET", "/api/v1/services/3/config", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	cfg := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(res.Data, &cfg))
	assert.EqualValues(t, statusregistry.DefaultHeartbeatInterval, cfg["interval"])
	assert.EqualValues(t, statusregistry.DefaultMaxMissedHeartbeats, cfg["maxMissed"])
}

func TestApiOperatorPoints(t *testing.T) {
	mock := mockDb(t)
	mock.ExpectQuery("FROM operator_points WHERE operator = \\$1").
		WillReturnRows(sqlmock.NewRows([]string{"operator", "program", "points"}).
			AddRow(operator.Bytes(), "operator-uptime", 42))

	rec, res := serve(t, "GET", "/api/v1/operators/"+operator.Hex()+"/points", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"operator":"`+strings.ToLower(operator.Hex())+`","program":"operator-uptime","points":42}]`, string(res.Data))
}

func TestApiAbiSelectors(t *testing.T) {
	rec, res := serve(t, "GET", "/api/v1/abi/selectors", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	entries := []abiutil.Entry{}
	require.NoError(t, json.Unmarshal(res.Data, &entries))
	found := false
	for _, e := range entries {
		if e.Name == "submitHeartbeat" {
			found = true
			assert.Equal(t, "function", e.Kind)
		}
	}
	assert.True(t, found)

	rec, res = serve(t, "GET", "/api/v1/abi/selectors?contract=nope", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, `ERROR: unknown contract "nope"`, res.Status)
}

func TestApiAbiDecodeCall(t *testing.T) {
	data, err := statusregistry.EncodeCall(&statusregistry.GoOnlineCall{ServiceId: 9})
	require.NoError(t, err)

	body, _ := json.Marshal(map[string]string{"data": hexutil.Encode(data)})
	rec, res := serve(t, "POST", "/api/v1/abi/decode/call", body)
	require.Equal(t, http.StatusOK, rec.Code)

	decoded := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(res.Data, &decoded))
	assert.Equal(t, "goOnline", decoded["method"])
	assert.Equal(t, hexutil.Encode(data[:4]), decoded["selector"])
	assert.EqualValues(t, 9, decoded["arguments"].(map[string]interface{})["ServiceId"])

	body, _ = json.Marshal(map[string]string{"data": "0xdeadbeef"})
	rec, _ = serve(t, "POST", "/api/v1/abi/decode/call", body)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestApiAbiDecodeLog(t *testing.T) {
	l, err := statusregistry.EncodeLog(&statusregistry.OperatorStatusRegistryOperatorWentOffline{ServiceId: 2, Operator: operator, MissedBeats: 3})
	require.NoError(t, err)

	topics := []string{}
	for _, topic := range l.Topics {
		topics = append(topics, topic.Hex())
	}
	body, _ := json.Marshal(map[string]interface{}{"contract": "registry", "data": hexutil.Encode(l.Data), "topics": topics})
	rec, res := serve(t, "POST", "/api/v1/abi/decode/log", body)
	require.Equal(t, http.StatusOK, rec.Code)

	decoded := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(res.Data, &decoded))
	assert.Equal(t, "OperatorWentOffline", decoded["event"])
	assert.Equal(t, l.Topics[0].Hex(), decoded["topic"])

	body, _ = json.Marshal(map[string]interface{}{"topics": []string{common.Hash{}.Hex()}})
	rec, _ = serve(t, "POST", "/api/v1/abi/decode/log", body)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestCORSPreflight(t *testing.T) {
	req := httptest.NewRequest("OPTIONS", "/api/v1/abi/decode/call", nil)
	req.Header.Set("Origin", "https://dashboard.example")
	req.Header.Set("Access-Control-Request-Method", "POST")
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")
	rec := httptest.NewRecorder()
	NewRouter().ServeHTTP(rec, req)

	assert.Less(t, rec.Code, 300)
	assert.Empty(t, rec.Body.String())
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "POST")

	req = httptest.NewRequest("GET", "/api/v1/abi/selectors", nil)
	req.Header.Set("Origin", "https://dashboard.example")
	rec = httptest.NewRecorder()
	NewRouter().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
