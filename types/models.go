package types

import (
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

type LifecycleEventType string

const (
	LifecycleWentOffline     LifecycleEventType = "WENT_OFFLINE"
	LifecycleCameOnline      LifecycleEventType = "CAME_ONLINE"
	LifecycleStatusChanged   LifecycleEventType = "STATUS_CHANGED"
	LifecycleSlashAlert      LifecycleEventType = "SLASH_ALERT"
	LifecycleMetricViolation LifecycleEventType = "METRIC_VIOLATION"
)

// UptimeProgram is the points program heartbeats are credited to.
const UptimeProgram = "operator-uptime"

// EventID identifies a log as "<blockHash>-<logIndex>".
func EventID(blockHash common.Hash, logIndex uint) string {
	return fmt.Sprintf("%s-%d", blockHash.Hex(), logIndex)
}

type Heartbeat struct {
	EventID     string         `db:"event_id" json:"eventId"`
	ServiceID   uint64         `db:"service_id" json:"serviceId"`
	BlueprintID uint64         `db:"blueprint_id" json:"blueprintId"`
	Operator    common.Address `db:"operator" json:"operator"`
	StatusCode  StatusCode     `db:"status_code" json:"statusCode"`
	BlockNumber uint64         `db:"block_number" json:"blockNumber"`
	Timestamp   time.Time      `db:"ts" json:"timestamp"`
	TxHash      common.Hash    `db:"tx_hash" json:"txHash"`
}

// LifecycleEvent records a status transition or alert for an operator.
// MissedBeats is set for WENT_OFFLINE, StatusCode for STATUS_CHANGED and
// Details carries the slashing reason or metric violation.
type LifecycleEvent struct {
	EventID     string             `db:"event_id" json:"eventId"`
	ServiceID   uint64             `db:"service_id" json:"serviceId"`
	Operator    common.Address     `db:"operator" json:"operator"`
	EventType   LifecycleEventType `db:"event_type" json:"eventType"`
	MissedBeats uint8              `db:"missed_beats" json:"missedBeats,omitempty"`
	OldStatus   StatusCode         `db:"old_status" json:"oldStatus"`
	StatusCode  StatusCode         `db:"status_code" json:"statusCode"`
	Details     string             `db:"details" json:"details,omitempty"`
	BlockNumber uint64             `db:"block_number" json:"blockNumber"`
	Timestamp   time.Time          `db:"ts" json:"timestamp"`
	TxHash      common.Hash        `db:"tx_hash" json:"txHash"`
}

type HeartbeatConfig struct {
	ServiceID     uint64    `db:"service_id" json:"serviceId"`
	Interval      uint64    `db:"interval_seconds" json:"interval"`
	MaxMissed     uint8     `db:"max_missed" json:"maxMissed"`
	CustomMetrics bool      `db:"custom_metrics" json:"customMetrics"`
	BlockNumber   uint64    `db:"block_number" json:"blockNumber"`
	UpdatedAt     time.Time `db:"updated_at" json:"updatedAt"`
}

type MetricSnapshot struct {
	EventID     string          `db:"event_id" json:"eventId"`
	ServiceID   uint64          `db:"service_id" json:"serviceId"`
	Operator    common.Address  `db:"operator" json:"operator"`
	MetricName  string          `db:"metric_name" json:"metricName"`
	Value       decimal.Decimal `db:"value" json:"value"`
	BlockNumber uint64          `db:"block_number" json:"blockNumber"`
	Timestamp   time.Time       `db:"ts" json:"timestamp"`
}

// OperatorStatus is the latest known registry state of an operator.
type OperatorStatus struct {
	ServiceID        uint64         `db:"service_id" json:"serviceId"`
	Operator         common.Address `db:"operator" json:"operator"`
	Status           StatusCode     `db:"status" json:"status"`
	LastHeartbeat    time.Time      `db:"last_heartbeat" json:"lastHeartbeat"`
	ConsecutiveBeats uint64         `db:"consecutive_beats" json:"consecutiveBeats"`
	MissedBeats      uint8          `db:"missed_beats" json:"missedBeats"`
	BlockNumber      uint64         `db:"block_number" json:"blockNumber"`
}

func (s *OperatorStatus) Online() bool {
	return s.Status.IsOnline()
}

type OperatorPoints struct {
	Operator common.Address `db:"operator" json:"operator"`
	Program  string         `db:"program" json:"program"`
	Points   uint64         `db:"points" json:"points"`
}
