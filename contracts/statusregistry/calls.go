package statusregistry

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/tangle-network/operator-status/abiutil"
)

type DefaultHeartbeatIntervalCall struct{}

type DefaultMaxMissedHeartbeatsCall struct{}

type SlashAlertCooldownCall struct{}

type AddMetricDefinitionCall struct {
	ServiceId uint64
	Name      string
	MinValue  *big.Int
	MaxValue  *big.Int
	Required  bool
}

type CheckOperatorStatusCall struct {
	ServiceId uint64
	Operator  common.Address
}

type CheckOperatorsStatusCall struct {
	ServiceId uint64
	Operators []common.Address
}

type ConfigureHeartbeatCall struct {
	ServiceId uint64
	Interval  uint64
	MaxMissed uint8
}

type DeregisterOperatorCall struct {
	ServiceId uint64
	Operator  common.Address
}

type EnableCustomMetricsCall struct {
	ServiceId uint64
	Enabled   bool
}

type GetHeartbeatConfigCall struct {
	ServiceId uint64
}

type GetLastHeartbeatCall struct {
	ServiceId uint64
	Operator  common.Address
}

type GetMetricDefinitionsCall struct {
	ServiceId uint64
}

type GetMetricValueCall struct {
	ServiceId  uint64
	Operator   common.Address
	MetricName string
}

type GetOnlineOperatorCountCall struct {
	ServiceId uint64
}

type GetOnlineOperatorsCall struct {
	ServiceId uint64
}

type GetOperatorStateCall struct {
	ServiceId uint64
	Operator  common.Address
}

type GetOperatorStatusCall struct {
	ServiceId uint64
	Operator  common.Address
}

type GetSlashableOperatorsCall struct {
	ServiceId uint64
}

type GoOfflineCall struct {
	ServiceId uint64
}

type GoOnlineCall struct {
	ServiceId uint64
}

type IsHeartbeatCurrentCall struct {
	ServiceId uint64
	Operator  common.Address
}

type IsOnlineCall struct {
	ServiceId uint64
	Operator  common.Address
}

type RegisterOperatorCall struct {
	ServiceId uint64
	Operator  common.Address
}

type RegisterServiceOwnerCall struct {
	ServiceId uint64
	Owner     common.Address
}

type ReportForSlashingCall struct {
	ServiceId uint64
	Operator  common.Address
	Reason    string
}

type ServiceOwnersCall struct {
	Arg0 uint64
}

type SetMetricDefinitionsCall struct {
	ServiceId   uint64
	Definitions []IOperatorStatusRegistryMetricDefinition
}

type SetSlashingOracleCall struct {
	Oracle common.Address
}

type SlashingOracleCall struct{}

type SubmitHeartbeatCall struct {
	ServiceId   uint64
	BlueprintId uint64
	StatusCode  uint8
	Metrics     []byte
	Signature   []byte
}

type TangleCoreCall struct{}

func (*DefaultHeartbeatIntervalCall) MethodName() string   { return "DEFAULT_HEARTBEAT_INTERVAL" }
func (*DefaultMaxMissedHeartbeatsCall) MethodName() string { return "DEFAULT_MAX_MISSED_HEARTBEATS" }
func (*SlashAlertCooldownCall) MethodName() string         { return "SLASH_ALERT_COOLDOWN" }
func (*AddMetricDefinitionCall) MethodName() string        { return "addMetricDefinition" }
func (*CheckOperatorStatusCall) MethodName() string        { return "checkOperatorStatus" }
func (*CheckOperatorsStatusCall) MethodName() string       { return "checkOperatorsStatus" }
func (*ConfigureHeartbeatCall) MethodName() string         { return "configureHeartbeat" }
func (*DeregisterOperatorCall) MethodName() string         { return "deregisterOperator" }
func (*EnableCustomMetricsCall) MethodName() string        { return "enableCustomMetrics" }
func (*GetHeartbeatConfigCall) MethodName() string         { return "getHeartbeatConfig" }
func (*GetLastHeartbeatCall) MethodName() string           { return "getLastHeartbeat" }
func (*GetMetricDefinitionsCall) MethodName() string       { return "getMetricDefinitions" }
func (*GetMetricValueCall) MethodName() string             { return "getMetricValue" }
func (*GetOnlineOperatorCountCall) MethodName() string     { return "getOnlineOperatorCount" }
func (*GetOnlineOperatorsCall) MethodName() string         { return "getOnlineOperators" }
func (*GetOperatorStateCall) MethodName() string           { return "getOperatorState" }
func (*GetOperatorStatusCall) MethodName() string          { return "getOperatorStatus" }
func (*GetSlashableOperatorsCall) MethodName() string      { return "getSlashableOperators" }
func (*GoOfflineCall) MethodName() string                  { return "goOffline" }
func (*GoOnlineCall) MethodName() string                   { return "goOnline" }
func (*IsHeartbeatCurrentCall) MethodName() string         { return "isHeartbeatCurrent" }
func (*IsOnlineCall) MethodName() string                   { return "isOnline" }
func (*RegisterOperatorCall) MethodName() string           { return "registerOperator" }
func (*RegisterServiceOwnerCall) MethodName() string       { return "registerServiceOwner" }
func (*ReportForSlashingCall) MethodName() string          { return "reportForSlashing" }
func (*ServiceOwnersCall) MethodName() string              { return "serviceOwners" }
func (*SetMetricDefinitionsCall) MethodName() string       { return "setMetricDefinitions" }
func (*SetSlashingOracleCall) MethodName() string          { return "setSlashingOracle" }
func (*SlashingOracleCall) MethodName() string             { return "slashingOracle" }
func (*SubmitHeartbeatCall) MethodName() string            { return "submitHeartbeat" }
func (*TangleCoreCall) MethodName() string                 { return "tangleCore" }

var calls = abiutil.MustNewCallCodec(mustABI(),
	&DefaultHeartbeatIntervalCall{},
	&DefaultMaxMissedHeartbeatsCall{},
	&SlashAlertCooldownCall{},
	&AddMetricDefinitionCall{},
	&CheckOperatorStatusCall{},
	&CheckOperatorsStatusCall{},
	&ConfigureHeartbeatCall{},
	&DeregisterOperatorCall{},
	&EnableCustomMetricsCall{},
	&GetHeartbeatConfigCall{},
	&GetLastHeartbeatCall{},
	&GetMetricDefinitionsCall{},
	&GetMetricValueCall{},
	&GetOnlineOperatorCountCall{},
	&GetOnlineOperatorsCall{},
	&GetOperatorStateCall{},
	&GetOperatorStatusCall{},
	&GetSlashableOperatorsCall{},
	&GoOfflineCall{},
	&GoOnlineCall{},
	&IsHeartbeatCurrentCall{},
	&IsOnlineCall{},
	&RegisterOperatorCall{},
	&RegisterServiceOwnerCall{},
	&ReportForSlashingCall{},
	&ServiceOwnersCall{},
	&SetMetricDefinitionsCall{},
	&SetSlashingOracleCall{},
	&SlashingOracleCall{},
	&SubmitHeartbeatCall{},
	&TangleCoreCall{},
)

// DecodeCall dispatches calldata on its 4-byte selector. Unknown or short
// calldata fails with abiutil.ErrUnknownSelector.
func DecodeCall(data []byte) (abiutil.Call, error) {
	return calls.Decode(data)
}

// EncodeCall packs a typed call into calldata.
func EncodeCall(call abiutil.Call) ([]byte, error) {
	return calls.Encode(call)
}

// DecodeReturn unpacks the return data of the named function.
func DecodeReturn(method string, data []byte) ([]interface{}, error) {
	return calls.DecodeReturn(method, data)
}

// Selectors lists the registered function selectors.
func Selectors() [][4]byte {
	return calls.Selectors()
}
