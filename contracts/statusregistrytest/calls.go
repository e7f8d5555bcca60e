package statusregistrytest

import (
	"github.com/tangle-network/operator-status/abiutil"
)

type IsTestCall struct{}

type ExcludeArtifactsCall struct{}

type ExcludeContractsCall struct{}

type ExcludeSelectorsCall struct{}

type ExcludeSendersCall struct{}

type FailedCall struct{}

type SetUpCall struct{}

type TargetArtifactSelectorsCall struct{}

type TargetArtifactsCall struct{}

type TargetContractsCall struct{}

type TargetInterfacesCall struct{}

type TargetSelectorsCall struct{}

type TargetSendersCall struct{}

type TestConfigureHeartbeatCall struct{}

type TestConfigureHeartbeatRevertNotOwnerCall struct{}

type TestGetOnlineOperatorsCall struct{}

type TestGoOfflineAndOnlineCall struct{}

type TestMetricValidationMissingRequiredCall struct{}

type TestMetricValidationOutOfBoundsCall struct{}

type TestOperatorComesBackOnlineCall struct{}

type TestOperatorGoesOfflineAfterMissedBeatsCall struct{}

type TestReportForSlashingRateLimitedCall struct{}

type TestSubmitHeartbeatCall struct{}

type TestSubmitHeartbeatRevertInvalidSignatureCall struct{}

func (*IsTestCall) MethodName() string                                    { return "IS_TEST" }
func (*ExcludeArtifactsCall) MethodName() string                          { return "excludeArtifacts" }
func (*ExcludeContractsCall) MethodName() string                          { return "excludeContracts" }
func (*ExcludeSelectorsCall) MethodName() string                          { return "excludeSelectors" }
func (*ExcludeSendersCall) MethodName() string                            { return "excludeSenders" }
func (*FailedCall) MethodName() string                                    { return "failed" }
func (*SetUpCall) MethodName() string                                     { return "setUp" }
func (*TargetArtifactSelectorsCall) MethodName() string                   { return "targetArtifactSelectors" }
func (*TargetArtifactsCall) MethodName() string                           { return "targetArtifacts" }
func (*TargetContractsCall) MethodName() string                           { return "targetContracts" }
func (*TargetInterfacesCall) MethodName() string                          { return "targetInterfaces" }
func (*TargetSelectorsCall) MethodName() string                           { return "targetSelectors" }
func (*TargetSendersCall) MethodName() string                             { return "targetSenders" }
func (*TestConfigureHeartbeatCall) MethodName() string                    { return "test_ConfigureHeartbeat" }
func (*TestConfigureHeartbeatRevertNotOwnerCall) MethodName() string      { return "test_ConfigureHeartbeat_RevertNotOwner" }
func (*TestGetOnlineOperatorsCall) MethodName() string                    { return "test_GetOnlineOperators" }
func (*TestGoOfflineAndOnlineCall) MethodName() string                    { return "test_GoOfflineAndOnline" }
func (*TestMetricValidationMissingRequiredCall) MethodName() string       { return "test_MetricValidation_MissingRequired" }
func (*TestMetricValidationOutOfBoundsCall) MethodName() string           { return "test_MetricValidation_OutOfBounds" }
func (*TestOperatorComesBackOnlineCall) MethodName() string               { return "test_OperatorComesBackOnline" }
func (*TestOperatorGoesOfflineAfterMissedBeatsCall) MethodName() string   { return "test_OperatorGoesOfflineAfterMissedBeats" }
func (*TestReportForSlashingRateLimitedCall) MethodName() string          { return "test_ReportForSlashing_RateLimited" }
func (*TestSubmitHeartbeatCall) MethodName() string                       { return "test_SubmitHeartbeat" }
func (*TestSubmitHeartbeatRevertInvalidSignatureCall) MethodName() string { return "test_SubmitHeartbeat_RevertInvalidSignature" }

var calls = abiutil.MustNewCallCodec(mustABI(),
	&IsTestCall{},
	&ExcludeArtifactsCall{},
	&ExcludeContractsCall{},
	&ExcludeSelectorsCall{},
	&ExcludeSendersCall{},
	&FailedCall{},
	&SetUpCall{},
	&TargetArtifactSelectorsCall{},
	&TargetArtifactsCall{},
	&TargetContractsCall{},
	&TargetInterfacesCall{},
	&TargetSelectorsCall{},
	&TargetSendersCall{},
	&TestConfigureHeartbeatCall{},
	&TestConfigureHeartbeatRevertNotOwnerCall{},
	&TestGetOnlineOperatorsCall{},
	&TestGoOfflineAndOnlineCall{},
	&TestMetricValidationMissingRequiredCall{},
	&TestMetricValidationOutOfBoundsCall{},
	&TestOperatorComesBackOnlineCall{},
	&TestOperatorGoesOfflineAfterMissedBeatsCall{},
	&TestReportForSlashingRateLimitedCall{},
	&TestSubmitHeartbeatCall{},
	&TestSubmitHeartbeatRevertInvalidSignatureCall{},
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
