package status

import (
	"crypto/ecdsa"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tangle-network/operator-status/contracts/statusregistry"
	"github.com/tangle-network/operator-status/heartbeat"
	"github.com/tangle-network/operator-status/types"
)

const (
	testService   = uint64(7)
	testBlueprint = uint64(3)
)

var (
	tangleCore = common.HexToAddress("0x00000000000000000000000000000000000000c0")
	owner      = common.HexToAddress("0x00000000000000000000000000000000000000a1")
	oracle     = common.HexToAddress("0x00000000000000000000000000000000000000b2")
)

type fixture struct {
	t        *testing.T
	clock    *ManualClock
	registry *Registry
	key      *ecdsa.PrivateKey
	operator common.Address
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	clock := NewManualClock(time.Unix(1_700_000_000, 0))
	r := NewRegistry(clock, tangleCore)
	require.NoError(t, r.RegisterServiceOwner(tangleCore, testService, owner))
	require.NoError(t, r.SetSlashingOracle(tangleCore, oracle))

	f := &fixture{t: t, clock: clock, registry: r, key: key, operator: crypto.PubkeyToAddress(key.PublicKey)}
	require.NoError(t, r.RegisterOperator(tangleCore, testService, f.operator))
	return f
}

func (f *fixture) heartbeat(statusCode uint8, metrics []byte) ([]statusregistry.Event, error) {
	f.t.Helper()
	sig, err := heartbeat.Sign(f.key, testService, testBlueprint, statusCode, metrics)
	require.NoError(f.t, err)
	return f.registry.SubmitHeartbeat(f.operator, testService, testBlueprint, statusCode, metrics, sig)
}

func names(events []statusregistry.Event) []string {
	out := make([]string, len(events))
	for i, ev := range events {
		out[i] = ev.EventName()
	}
	return out
}

func TestSubmitHeartbeat(t *testing.T) {
	f := newFixture(t)

	events, err := f.heartbeat(0, nil)
	require.NoError(t, err)
	require.Equal(t, []string{"HeartbeatReceived"}, names(events))

	hb := events[0].(*statusregistry.OperatorStatusRegistryHeartbeatReceived)
	assert.Equal(t, testService, hb.ServiceId)
	assert.Equal(t, testBlueprint, hb.BlueprintId)
	assert.Equal(t, f.operator, hb.Operator)
	assert.Equal(t, int64(1_700_000_000), hb.Timestamp.Int64())

	state := f.registry.GetOperatorState(testService, f.operator)
	assert.Equal(t, uint64(1), state.ConsecutiveBeats)
	assert.Equal(t, int64(1_700_000_000), state.LastHeartbeat.Int64())
	assert.Equal(t, crypto.Keccak256Hash(nil), common.Hash(state.LastMetricsHash))
	assert.True(t, f.registry.IsOnline(testService, f.operator))
	assert.True(t, f.registry.IsHeartbeatCurrent(testService, f.operator))

	f.clock.Advance(10 * time.Second)
	events, err = f.heartbeat(2, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"StatusChanged", "HeartbeatReceived"}, names(events))
	assert.Equal(t, types.StatusDegraded, f.registry.GetOperatorStatus(testService, f.operator))
	assert.Equal(t, uint64(2), f.registry.GetOperatorState(testService, f.operator).ConsecutiveBeats)
}

func TestSubmitHeartbeatRejectsInvalidSignature(t *testing.T) {
	f := newFixture(t)

	other, err := crypto.GenerateKey()
	require.NoError(t, err)
	sig, err := heartbeat.Sign(other, testService, testBlueprint, 0, nil)
	require.NoError(t, err)
	_, err = f.registry.SubmitHeartbeat(f.operator, testService, testBlueprint, 0, nil, sig)
	assert.ErrorIs(t, err, ErrInvalidSignature)

	sig, err = heartbeat.Sign(f.key, testService, testBlueprint, 0, nil)
	require.NoError(t, err)
	_, err = f.registry.SubmitHeartbeat(f.operator, testService, testBlueprint, 1, nil, sig)
	assert.ErrorIs(t, err, ErrInvalidSignature, "signature must cover the status code")

	_, err = f.registry.SubmitHeartbeat(f.operator, testService, testBlueprint, 0, nil, sig[:64])
	assert.ErrorIs(t, err, ErrInvalidSignature)

	assert.Equal(t, uint64(0), f.registry.GetOperatorState(testService, f.operator).ConsecutiveBeats)
}

func TestSubmitHeartbeatUnregistered(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.registry.DeregisterOperator(tangleCore, testService, f.operator))

	_, err := f.heartbeat(0, nil)
	assert.ErrorIs(t, err, ErrNotRegistered)
	assert.Empty(t, f.registry.Operators(testService))
}

func TestCheckOperatorStatus(t *testing.T) {
	f := newFixture(t)
	_, err := f.registry.ConfigureHeartbeat(owner, testService, 60, 3)
	require.NoError(t, err)

	_, err = f.heartbeat(0, nil)
	require.NoError(t, err)

	f.clock.Advance(179 * time.Second)
	events, err := f.registry.CheckOperatorStatus(testService, f.operator)
	require.NoError(t, err)
	assert.Empty(t, events)
	assert.Equal(t, uint8(2), f.registry.GetOperatorState(testService, f.operator).MissedBeats)
	assert.Empty(t, f.registry.Overdue(testService))

	f.clock.Advance(time.Second)
	assert.Equal(t, []common.Address{f.operator}, f.registry.Overdue(testService))
	events, err = f.registry.CheckOperatorStatus(testService, f.operator)
	require.NoError(t, err)
	require.Equal(t, []string{"StatusChanged", "OperatorWentOffline", "SlashingTriggered"}, names(events))
	assert.Equal(t, uint8(3), events[1].(*statusregistry.OperatorStatusRegistryOperatorWentOffline).MissedBeats)
	assert.Equal(t, statusregistry.MissedHeartbeatsSlashReason, events[2].(*statusregistry.OperatorStatusRegistrySlashingTriggered).Reason)

	state := f.registry.GetOperatorState(testService, f.operator)
	assert.Equal(t, uint8(types.StatusOffline), state.Status)
	assert.Equal(t, uint64(0), state.ConsecutiveBeats)
	assert.Equal(t, []common.Address{f.operator}, f.registry.GetSlashableOperators(testService))
	assert.Equal(t, int64(0), f.registry.GetOnlineOperatorCount(testService).Int64())
	assert.False(t, f.registry.IsHeartbeatCurrent(testService, f.operator))

	// the alert is not repeated inside the cooldown
	f.clock.Advance(time.Hour - time.Second)
	events, err = f.registry.CheckOperatorStatus(testService, f.operator)
	require.NoError(t, err)
	assert.Empty(t, events)

	f.clock.Advance(time.Second)
	events, err = f.registry.CheckOperatorStatus(testService, f.operator)
	require.NoError(t, err)
	assert.Equal(t, []string{"SlashingTriggered"}, names(events))

	events, err = f.heartbeat(0, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"StatusChanged", "OperatorCameOnline", "HeartbeatReceived"}, names(events))
	assert.Empty(t, f.registry.GetSlashableOperators(testService))
}

func TestCheckOperatorStatusWithoutHeartbeat(t *testing.T) {
	f := newFixture(t)

	// registration starts the clock for operators that never heartbeat
	f.clock.Advance(899 * time.Second)
	events, err := f.registry.CheckOperatorStatus(testService, f.operator)
	require.NoError(t, err)
	assert.Empty(t, events)

	f.clock.Advance(time.Second)
	events, err = f.registry.CheckOperatorStatus(testService, f.operator)
	require.NoError(t, err)
	assert.Contains(t, names(events), "OperatorWentOffline")
}

func TestMissedBeatsSaturate(t *testing.T) {
	f := newFixture(t)
	_, err := f.registry.ConfigureHeartbeat(owner, testService, 1, 255)
	require.NoError(t, err)

	f.clock.Advance(10_000 * time.Second)
	events, err := f.registry.CheckOperatorStatus(testService, f.operator)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, uint8(255), events[1].(*statusregistry.OperatorStatusRegistryOperatorWentOffline).MissedBeats)
}

func TestCheckOperatorsStatusSkipsUnknown(t *testing.T) {
	f := newFixture(t)
	f.clock.Advance(time.Hour)

	events := f.registry.CheckOperatorsStatus(testService, []common.Address{{0x01}, f.operator})
	assert.Equal(t, []string{"StatusChanged", "OperatorWentOffline", "SlashingTriggered"}, names(events))

	_, err := f.registry.CheckOperatorStatus(testService, common.Address{0x01})
	assert.ErrorIs(t, err, ErrNotRegistered)
}

func TestConfigureHeartbeat(t *testing.T) {
	f := newFixture(t)

	assert.Equal(t, HeartbeatConfig{Interval: 300, MaxMissed: 3}, f.registry.GetHeartbeatConfig(testService))
	assert.Equal(t, HeartbeatConfig{Interval: 300, MaxMissed: 3}, f.registry.GetHeartbeatConfig(999))

	_, err := f.registry.ConfigureHeartbeat(f.operator, testService, 60, 2)
	assert.ErrorIs(t, err, ErrNotServiceOwner)
	_, err = f.registry.ConfigureHeartbeat(owner, 999, 60, 2)
	assert.ErrorIs(t, err, ErrNotServiceOwner)
	_, err = f.registry.ConfigureHeartbeat(owner, testService, 0, 2)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	_, err = f.registry.ConfigureHeartbeat(owner, testService, 60, 0)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	require.NoError(t, f.registry.EnableCustomMetrics(owner, testService, true))
	events, err := f.registry.ConfigureHeartbeat(owner, testService, 60, 2)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, &statusregistry.OperatorStatusRegistryHeartbeatConfigUpdated{ServiceId: testService, Interval: 60, MaxMissed: 2}, events[0])
	assert.Equal(t, HeartbeatConfig{Interval: 60, MaxMissed: 2, CustomMetrics: true}, f.registry.GetHeartbeatConfig(testService))
}

func TestMetricValidation(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.registry.EnableCustomMetrics(owner, testService, true))
	require.NoError(t, f.registry.AddMetricDefinition(owner, testService, "cpu", big.NewInt(0), big.NewInt(100), true))
	require.NoError(t, f.registry.AddMetricDefinition(owner, testService, "mem", big.NewInt(1), big.NewInt(64), true))

	err := f.registry.AddMetricDefinition(owner, testService, "cpu", big.NewInt(0), big.NewInt(1), false)
	assert.ErrorIs(t, err, ErrDuplicateMetric)
	err = f.registry.AddMetricDefinition(owner, testService, "disk", big.NewInt(2), big.NewInt(1), false)
	assert.ErrorIs(t, err, ErrInvalidMetricDefinition)
	err = f.registry.AddMetricDefinition(owner, testService, "", big.NewInt(0), big.NewInt(1), false)
	assert.ErrorIs(t, err, ErrInvalidMetricDefinition)
	err = f.registry.AddMetricDefinition(f.operator, testService, "disk", big.NewInt(0), big.NewInt(1), false)
	assert.ErrorIs(t, err, ErrNotServiceOwner)

	metrics, err := heartbeat.EncodeMetrics([]heartbeat.MetricPair{{Name: "cpu", Value: big.NewInt(150)}})
	require.NoError(t, err)
	events, err := f.heartbeat(0, metrics)
	require.NoError(t, err, "violations never reject a heartbeat")
	require.Equal(t, []string{"MetricReported", "MetricViolation", "MetricViolation", "HeartbeatReceived"}, names(events))

	cpu := events[1].(*statusregistry.OperatorStatusRegistryMetricViolation)
	assert.Equal(t, "cpu", cpu.MetricName)
	assert.Equal(t, ReasonOutOfBounds, cpu.Reason)
	mem := events[2].(*statusregistry.OperatorStatusRegistryMetricViolation)
	assert.Equal(t, "mem", mem.MetricName)
	assert.Equal(t, ReasonRequiredMissing, mem.Reason)

	assert.Equal(t, int64(150), f.registry.GetMetricValue(testService, f.operator, "cpu").Int64())
	assert.Equal(t, int64(0), f.registry.GetMetricValue(testService, f.operator, "mem").Int64())

	_, err = f.heartbeat(0, []byte{0xde, 0xad})
	assert.ErrorIs(t, err, ErrInvalidMetrics)

	require.NoError(t, f.registry.SetMetricDefinitions(owner, testService, []MetricDefinition{
		{Name: "cpu", MinValue: big.NewInt(0), MaxValue: big.NewInt(200)},
	}))
	assert.Len(t, f.registry.GetMetricDefinitions(testService), 1)
	events, err = f.heartbeat(0, metrics)
	require.NoError(t, err)
	assert.Equal(t, []string{"MetricReported", "HeartbeatReceived"}, names(events))

	err = f.registry.SetMetricDefinitions(owner, testService, []MetricDefinition{
		{Name: "a", MinValue: big.NewInt(0), MaxValue: big.NewInt(1)},
		{Name: "a", MinValue: big.NewInt(0), MaxValue: big.NewInt(1)},
	})
	assert.ErrorIs(t, err, ErrDuplicateMetric)
}

func TestMetricsIgnoredWithoutCustomMetrics(t *testing.T) {
	f := newFixture(t)
	events, err := f.heartbeat(0, []byte{0x01, 0x02})
	require.NoError(t, err)
	assert.Equal(t, []string{"HeartbeatReceived"}, names(events))
	assert.Equal(t, crypto.Keccak256Hash([]byte{0x01, 0x02}), common.Hash(f.registry.GetOperatorState(testService, f.operator).LastMetricsHash))
}

func TestReportForSlashing(t *testing.T) {
	f := newFixture(t)

	_, err := f.registry.ReportForSlashing(owner, testService, f.operator, "equivocation")
	assert.ErrorIs(t, err, ErrNotSlashingOracle)

	events, err := f.registry.ReportForSlashing(oracle, testService, f.operator, "equivocation")
	require.NoError(t, err)
	require.Equal(t, []string{"StatusChanged", "SlashingTriggered"}, names(events))
	assert.Equal(t, "equivocation", events[1].(*statusregistry.OperatorStatusRegistrySlashingTriggered).Reason)
	assert.Equal(t, types.StatusSlashed, f.registry.GetOperatorStatus(testService, f.operator))

	_, err = f.registry.ReportForSlashing(oracle, testService, f.operator, "again")
	assert.ErrorIs(t, err, ErrRateLimited)

	f.clock.Advance(time.Hour)
	events, err = f.registry.ReportForSlashing(oracle, testService, f.operator, "again")
	require.NoError(t, err)
	assert.Equal(t, []string{"SlashingTriggered"}, names(events))

	_, err = f.heartbeat(0, nil)
	assert.ErrorIs(t, err, ErrOperatorSlashed)
	_, err = f.registry.GoOffline(f.operator, testService)
	assert.ErrorIs(t, err, ErrOperatorSlashed)

	f.clock.Advance(24 * time.Hour)
	events, err = f.registry.CheckOperatorStatus(testService, f.operator)
	require.NoError(t, err)
	assert.Empty(t, events, "slashed operators are not checked")
}

func TestGoOfflineGoOnline(t *testing.T) {
	f := newFixture(t)

	events, err := f.registry.GoOffline(f.operator, testService)
	require.NoError(t, err)
	assert.Equal(t, []string{"StatusChanged"}, names(events))
	assert.Equal(t, types.StatusExiting, f.registry.GetOperatorStatus(testService, f.operator))
	assert.False(t, f.registry.IsOnline(testService, f.operator))

	events, err = f.registry.GoOffline(f.operator, testService)
	require.NoError(t, err)
	assert.Empty(t, events)

	_, err = f.heartbeat(0, nil)
	assert.ErrorIs(t, err, ErrOperatorExiting)

	f.clock.Advance(24 * time.Hour)
	events, err = f.registry.CheckOperatorStatus(testService, f.operator)
	require.NoError(t, err)
	assert.Empty(t, events)

	events, err = f.registry.GoOnline(f.operator, testService)
	require.NoError(t, err)
	assert.Equal(t, []string{"StatusChanged", "OperatorCameOnline"}, names(events))
	assert.True(t, f.registry.IsOnline(testService, f.operator))
	assert.Empty(t, f.registry.Overdue(testService), "coming back online restarts the miss counter")

	_, err = f.registry.GoOnline(f.operator, testService)
	assert.ErrorIs(t, err, ErrNotExiting)
	_, err = f.registry.GoOffline(owner, testService)
	assert.ErrorIs(t, err, ErrNotRegistered)
}

func TestRoles(t *testing.T) {
	f := newFixture(t)

	assert.ErrorIs(t, f.registry.RegisterOperator(owner, testService, common.Address{0x02}), ErrNotTangleCore)
	assert.ErrorIs(t, f.registry.RegisterServiceOwner(owner, testService, owner), ErrNotTangleCore)
	assert.ErrorIs(t, f.registry.SetSlashingOracle(owner, owner), ErrNotTangleCore)
	assert.ErrorIs(t, f.registry.DeregisterOperator(owner, testService, f.operator), ErrNotTangleCore)
	assert.ErrorIs(t, f.registry.RegisterOperator(tangleCore, testService, f.operator), ErrAlreadyRegistered)

	assert.Equal(t, owner, f.registry.ServiceOwners(testService))
	assert.Equal(t, oracle, f.registry.SlashingOracle())
	assert.Equal(t, tangleCore, f.registry.TangleCore())
	assert.Equal(t, []uint64{testService}, f.registry.Services())
}

// A replica fed only with the emitted events ends in the same state as the
// replica that produced them.
func TestApplyMatchesProducer(t *testing.T) {
	f := newFixture(t)
	_, err := f.registry.ConfigureHeartbeat(owner, testService, 60, 2)
	require.NoError(t, err)

	var all []statusregistry.Event
	step := func(events []statusregistry.Event, err error) {
		require.NoError(t, err)
		all = append(all, events...)
	}
	step(f.registry.ConfigureHeartbeat(owner, testService, 60, 2))
	step(f.heartbeat(0, nil))
	f.clock.Advance(30 * time.Second)
	step(f.heartbeat(1, nil))
	f.clock.Advance(5 * time.Minute)
	step(f.registry.CheckOperatorStatus(testService, f.operator))
	f.clock.Advance(time.Minute)
	step(f.heartbeat(0, nil))
	step(f.registry.GoOffline(f.operator, testService))

	projection := NewRegistry(f.clock, tangleCore)
	for _, ev := range all {
		require.NoError(t, projection.Apply(ev, time.Time{}))
	}

	assert.Equal(t, f.registry.GetHeartbeatConfig(testService), projection.GetHeartbeatConfig(testService))
	want, _ := f.registry.OperatorStatus(testService, f.operator)
	got, ok := projection.OperatorStatus(testService, f.operator)
	require.True(t, ok)
	assert.Equal(t, want.Status, got.Status)
	assert.Equal(t, want.ConsecutiveBeats, got.ConsecutiveBeats)
	assert.Equal(t, want.LastHeartbeat.Unix(), got.LastHeartbeat.Unix())
}

func TestApplySlashingUsesBlockTime(t *testing.T) {
	start := time.Unix(1_000_000, 0)
	clock := NewManualClock(start)
	r := NewRegistry(clock, tangleCore)
	require.NoError(t, r.SetSlashingOracle(tangleCore, oracle))
	op := common.Address{0x0a}
	require.NoError(t, r.RegisterOperator(tangleCore, 1, op))

	clock.Advance(2 * time.Hour)
	ev := &statusregistry.OperatorStatusRegistrySlashingTriggered{ServiceId: 1, Operator: op, Reason: "late"}
	require.NoError(t, r.Apply(ev, start))

	// the alert happened two hours ago, so the cooldown has passed
	_, err := r.ReportForSlashing(oracle, 1, op, "again")
	require.NoError(t, err)

	require.NoError(t, r.Apply(ev, clock.Now()))
	_, err = r.ReportForSlashing(oracle, 1, op, "again")
	assert.ErrorIs(t, err, ErrRateLimited)
}

func TestLoadOperator(t *testing.T) {
	r := NewRegistry(NewManualClock(time.Unix(1_000_000, 0)), tangleCore)
	op := common.Address{0x09}
	r.LoadConfig(1, HeartbeatConfig{Interval: 10, MaxMissed: 1})
	r.LoadOperator(1, op, OperatorState{LastHeartbeat: big.NewInt(1_000_000 - 10), ConsecutiveBeats: 4, Status: uint8(types.StatusHealthy)})

	assert.Equal(t, []common.Address{op}, r.Overdue(1))
	assert.Equal(t, uint64(4), r.GetOperatorState(1, op).ConsecutiveBeats)
}
