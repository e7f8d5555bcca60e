package statusregistry

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/tangle-network/operator-status/abiutil"
)

// Event is implemented by every generated registry event struct.
type Event interface {
	EventName() string
	RawLog() types.Log
}

func (*OperatorStatusRegistryHeartbeatConfigUpdated) EventName() string { return "HeartbeatConfigUpdated" }
func (*OperatorStatusRegistryHeartbeatReceived) EventName() string      { return "HeartbeatReceived" }
func (*OperatorStatusRegistryMetricReported) EventName() string         { return "MetricReported" }
func (*OperatorStatusRegistryMetricViolation) EventName() string        { return "MetricViolation" }
func (*OperatorStatusRegistryOperatorCameOnline) EventName() string     { return "OperatorCameOnline" }
func (*OperatorStatusRegistryOperatorWentOffline) EventName() string    { return "OperatorWentOffline" }
func (*OperatorStatusRegistrySlashingTriggered) EventName() string      { return "SlashingTriggered" }
func (*OperatorStatusRegistryStatusChanged) EventName() string          { return "StatusChanged" }

func (e *OperatorStatusRegistryHeartbeatConfigUpdated) RawLog() types.Log { return e.Raw }
func (e *OperatorStatusRegistryHeartbeatReceived) RawLog() types.Log      { return e.Raw }
func (e *OperatorStatusRegistryMetricReported) RawLog() types.Log         { return e.Raw }
func (e *OperatorStatusRegistryMetricViolation) RawLog() types.Log        { return e.Raw }
func (e *OperatorStatusRegistryOperatorCameOnline) RawLog() types.Log     { return e.Raw }
func (e *OperatorStatusRegistryOperatorWentOffline) RawLog() types.Log    { return e.Raw }
func (e *OperatorStatusRegistrySlashingTriggered) RawLog() types.Log      { return e.Raw }
func (e *OperatorStatusRegistryStatusChanged) RawLog() types.Log          { return e.Raw }

// parser only unpacks, it is never bound to a backend
var parser, _ = NewOperatorStatusRegistryFilterer(common.Address{}, nil)

var events = abiutil.MustNewEventCodec(mustABI(), map[string]abiutil.LogParser{
	"HeartbeatConfigUpdated": func(l types.Log) (interface{}, error) { return parser.ParseHeartbeatConfigUpdated(l) },
	"HeartbeatReceived":      func(l types.Log) (interface{}, error) { return parser.ParseHeartbeatReceived(l) },
	"MetricReported":         func(l types.Log) (interface{}, error) { return parser.ParseMetricReported(l) },
	"MetricViolation":        func(l types.Log) (interface{}, error) { return parser.ParseMetricViolation(l) },
	"OperatorCameOnline":     func(l types.Log) (interface{}, error) { return parser.ParseOperatorCameOnline(l) },
	"OperatorWentOffline":    func(l types.Log) (interface{}, error) { return parser.ParseOperatorWentOffline(l) },
	"SlashingTriggered":      func(l types.Log) (interface{}, error) { return parser.ParseSlashingTriggered(l) },
	"StatusChanged":          func(l types.Log) (interface{}, error) { return parser.ParseStatusChanged(l) },
})

// DecodeLog dispatches a log on its topic-0 and returns the typed event with
// Raw set. All failures wrap abiutil.ErrInvalidLog.
func DecodeLog(log types.Log) (Event, error) {
	ev, err := events.Decode(log)
	if err != nil {
		return nil, err
	}
	return ev.(Event), nil
}

// EncodeLog renders ev as the log the contract would emit, without position
// fields.
func EncodeLog(ev Event) (types.Log, error) {
	return events.Encode(ev.EventName(), ev)
}

// EventTopics returns the topic-0 of every registry event, for log filters.
func EventTopics() []common.Hash {
	return events.Topics()
}
