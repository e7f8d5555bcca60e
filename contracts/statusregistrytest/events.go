package statusregistrytest

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/tangle-network/operator-status/abiutil"
)

// Event is implemented by every generated event struct of the test contract.
type Event interface {
	EventName() string
	RawLog() types.Log
}

func (*OperatorStatusRegistryTestHeartbeatConfigUpdated) EventName() string { return "HeartbeatConfigUpdated" }
func (*OperatorStatusRegistryTestHeartbeatReceived) EventName() string      { return "HeartbeatReceived" }
func (*OperatorStatusRegistryTestMetricReported) EventName() string         { return "MetricReported" }
func (*OperatorStatusRegistryTestMetricViolation) EventName() string        { return "MetricViolation" }
func (*OperatorStatusRegistryTestOperatorCameOnline) EventName() string     { return "OperatorCameOnline" }
func (*OperatorStatusRegistryTestOperatorWentOffline) EventName() string    { return "OperatorWentOffline" }
func (*OperatorStatusRegistryTestSlashingTriggered) EventName() string      { return "SlashingTriggered" }
func (*OperatorStatusRegistryTestStatusChanged) EventName() string          { return "StatusChanged" }
func (*OperatorStatusRegistryTestLog) EventName() string                    { return "log" }
func (*OperatorStatusRegistryTestLogAddress) EventName() string             { return "log_address" }
func (*OperatorStatusRegistryTestLogArray) EventName() string               { return "log_array" }
func (*OperatorStatusRegistryTestLogArray0) EventName() string              { return "log_array0" }
func (*OperatorStatusRegistryTestLogArray1) EventName() string              { return "log_array1" }
func (*OperatorStatusRegistryTestLogBytes) EventName() string               { return "log_bytes" }
func (*OperatorStatusRegistryTestLogBytes32) EventName() string             { return "log_bytes32" }
func (*OperatorStatusRegistryTestLogInt) EventName() string                 { return "log_int" }
func (*OperatorStatusRegistryTestLogNamedAddress) EventName() string        { return "log_named_address" }
func (*OperatorStatusRegistryTestLogNamedArray) EventName() string          { return "log_named_array" }
func (*OperatorStatusRegistryTestLogNamedArray0) EventName() string         { return "log_named_array0" }
func (*OperatorStatusRegistryTestLogNamedArray1) EventName() string         { return "log_named_array1" }
func (*OperatorStatusRegistryTestLogNamedBytes) EventName() string          { return "log_named_bytes" }
func (*OperatorStatusRegistryTestLogNamedBytes32) EventName() string        { return "log_named_bytes32" }
func (*OperatorStatusRegistryTestLogNamedDecimalInt) EventName() string     { return "log_named_decimal_int" }
func (*OperatorStatusRegistryTestLogNamedDecimalUint) EventName() string    { return "log_named_decimal_uint" }
func (*OperatorStatusRegistryTestLogNamedInt) EventName() string            { return "log_named_int" }
func (*OperatorStatusRegistryTestLogNamedString) EventName() string         { return "log_named_string" }
func (*OperatorStatusRegistryTestLogNamedUint) EventName() string           { return "log_named_uint" }
func (*OperatorStatusRegistryTestLogString) EventName() string              { return "log_string" }
func (*OperatorStatusRegistryTestLogUint) EventName() string                { return "log_uint" }
func (*OperatorStatusRegistryTestLogs) EventName() string                   { return "logs" }

func (e *OperatorStatusRegistryTestHeartbeatConfigUpdated) RawLog() types.Log { return e.Raw }
func (e *OperatorStatusRegistryTestHeartbeatReceived) RawLog() types.Log      { return e.Raw }
func (e *OperatorStatusRegistryTestMetricReported) RawLog() types.Log         { return e.Raw }
func (e *OperatorStatusRegistryTestMetricViolation) RawLog() types.Log        { return e.Raw }
func (e *OperatorStatusRegistryTestOperatorCameOnline) RawLog() types.Log     { return e.Raw }
func (e *OperatorStatusRegistryTestOperatorWentOffline) RawLog() types.Log    { return e.Raw }
func (e *OperatorStatusRegistryTestSlashingTriggered) RawLog() types.Log      { return e.Raw }
func (e *OperatorStatusRegistryTestStatusChanged) RawLog() types.Log          { return e.Raw }
func (e *OperatorStatusRegistryTestLog) RawLog() types.Log                    { return e.Raw }
func (e *OperatorStatusRegistryTestLogAddress) RawLog() types.Log             { return e.Raw }
func (e *OperatorStatusRegistryTestLogArray) RawLog() types.Log               { return e.Raw }
func (e *OperatorStatusRegistryTestLogArray0) RawLog() types.Log              { return e.Raw }
func (e *OperatorStatusRegistryTestLogArray1) RawLog() types.Log              { return e.Raw }
func (e *OperatorStatusRegistryTestLogBytes) RawLog() types.Log               { return e.Raw }
func (e *OperatorStatusRegistryTestLogBytes32) RawLog() types.Log             { return e.Raw }
func (e *OperatorStatusRegistryTestLogInt) RawLog() types.Log                 { return e.Raw }
func (e *OperatorStatusRegistryTestLogNamedAddress) RawLog() types.Log        { return e.Raw }
func (e *OperatorStatusRegistryTestLogNamedArray) RawLog() types.Log          { return e.Raw }
func (e *OperatorStatusRegistryTestLogNamedArray0) RawLog() types.Log         { return e.Raw }
func (e *OperatorStatusRegistryTestLogNamedArray1) RawLog() types.Log         { return e.Raw }
func (e *OperatorStatusRegistryTestLogNamedBytes) RawLog() types.Log          { return e.Raw }
func (e *OperatorStatusRegistryTestLogNamedBytes32) RawLog() types.Log        { return e.Raw }
func (e *OperatorStatusRegistryTestLogNamedDecimalInt) RawLog() types.Log     { return e.Raw }
func (e *OperatorStatusRegistryTestLogNamedDecimalUint) RawLog() types.Log    { return e.Raw }
func (e *OperatorStatusRegistryTestLogNamedInt) RawLog() types.Log            { return e.Raw }
func (e *OperatorStatusRegistryTestLogNamedString) RawLog() types.Log         { return e.Raw }
func (e *OperatorStatusRegistryTestLogNamedUint) RawLog() types.Log           { return e.Raw }
func (e *OperatorStatusRegistryTestLogString) RawLog() types.Log              { return e.Raw }
func (e *OperatorStatusRegistryTestLogUint) RawLog() types.Log                { return e.Raw }
func (e *OperatorStatusRegistryTestLogs) RawLog() types.Log                   { return e.Raw }

var parser, _ = NewOperatorStatusRegistryTestFilterer(common.Address{}, nil)

var events = abiutil.MustNewEventCodec(mustABI(), map[string]abiutil.LogParser{
	"HeartbeatConfigUpdated": func(l types.Log) (interface{}, error) { return parser.ParseHeartbeatConfigUpdated(l) },
	"HeartbeatReceived":      func(l types.Log) (interface{}, error) { return parser.ParseHeartbeatReceived(l) },
	"MetricReported":         func(l types.Log) (interface{}, error) { return parser.ParseMetricReported(l) },
	"MetricViolation":        func(l types.Log) (interface{}, error) { return parser.ParseMetricViolation(l) },
	"OperatorCameOnline":     func(l types.Log) (interface{}, error) { return parser.ParseOperatorCameOnline(l) },
	"OperatorWentOffline":    func(l types.Log) (interface{}, error) { return parser.ParseOperatorWentOffline(l) },
	"SlashingTriggered":      func(l types.Log) (interface{}, error) { return parser.ParseSlashingTriggered(l) },
	"StatusChanged":          func(l types.Log) (interface{}, error) { return parser.ParseStatusChanged(l) },
	"log":                    func(l types.Log) (interface{}, error) { return parser.ParseLog(l) },
	"log_address":            func(l types.Log) (interface{}, error) { return parser.ParseLogAddress(l) },
	"log_array":              func(l types.Log) (interface{}, error) { return parser.ParseLogArray(l) },
	"log_array0":             func(l types.Log) (interface{}, error) { return parser.ParseLogArray0(l) },
	"log_array1":             func(l types.Log) (interface{}, error) { return parser.ParseLogArray1(l) },
	"log_bytes":              func(l types.Log) (interface{}, error) { return parser.ParseLogBytes(l) },
	"log_bytes32":            func(l types.Log) (interface{}, error) { return parser.ParseLogBytes32(l) },
	"log_int":                func(l types.Log) (interface{}, error) { return parser.ParseLogInt(l) },
	"log_named_address":      func(l types.Log) (interface{}, error) { return parser.ParseLogNamedAddress(l) },
	"log_named_array":        func(l types.Log) (interface{}, error) { return parser.ParseLogNamedArray(l) },
	"log_named_array0":       func(l types.Log) (interface{}, error) { return parser.ParseLogNamedArray0(l) },
	"log_named_array1":       func(l types.Log) (interface{}, error) { return parser.ParseLogNamedArray1(l) },
	"log_named_bytes":        func(l types.Log) (interface{}, error) { return parser.ParseLogNamedBytes(l) },
	"log_named_bytes32":      func(l types.Log) (interface{}, error) { return parser.ParseLogNamedBytes32(l) },
	"log_named_decimal_int":  func(l types.Log) (interface{}, error) { return parser.ParseLogNamedDecimalInt(l) },
	"log_named_decimal_uint": func(l types.Log) (interface{}, error) { return parser.ParseLogNamedDecimalUint(l) },
	"log_named_int":          func(l types.Log) (interface{}, error) { return parser.ParseLogNamedInt(l) },
	"log_named_string":       func(l types.Log) (interface{}, error) { return parser.ParseLogNamedString(l) },
	"log_named_uint":         func(l types.Log) (interface{}, error) { return parser.ParseLogNamedUint(l) },
	"log_string":             func(l types.Log) (interface{}, error) { return parser.ParseLogString(l) },
	"log_uint":               func(l types.Log) (interface{}, error) { return parser.ParseLogUint(l) },
	"logs":                   func(l types.Log) (interface{}, error) { return parser.ParseLogs(l) },
})

// DecodeLog dispatches a log on its topic-0. Overloaded forge-std events are
// told apart by their full signature hash. All failures wrap
// abiutil.ErrInvalidLog.
func DecodeLog(log types.Log) (Event, error) {
	ev, err := events.Decode(log)
	if err != nil {
		return nil, err
	}
	return ev.(Event), nil
}

// EncodeLog renders ev as the log the contract would emit.
func EncodeLog(ev Event) (types.Log, error) {
	return events.Encode(ev.EventName(), ev)
}

// EventTopics returns the topic-0 of every event the test contract declares.
func EventTopics() []common.Hash {
	return events.Topics()
}
