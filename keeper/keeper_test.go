package keeper

import (
	"context"
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	gethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tangle-network/operator-status/contracts/statusregistry"
	"github.com/tangle-network/operator-status/ratelimit"
	"github.com/tangle-network/operator-status/status"
	"github.com/tangle-network/operator-status/types"
)

var (
	keeperAddr = common.HexToAddress("0x00000000000000000000000000000000000000ee")
	owner      = common.HexToAddress("0x00000000000000000000000000000000000000aa")
	opFresh    = common.HexToAddress("0x0000000000000000000000000000000000000001")
	opLate     = common.HexToAddress("0x0000000000000000000000000000000000000002")
	opOffline  = common.HexToAddress("0x0000000000000000000000000000000000000003")
)

var now = time.Unix(1_700_000_000, 0)

type checkCall struct {
	service   uint64
	operators []common.Address
}

type fakeRegistry struct {
	mu        sync.Mutex
	oracle    common.Address
	online    []common.Address
	slashable []common.Address
	states    map[common.Address]statusregistry.IOperatorStatusRegistryOperatorState
	checks   []checkCall
	reports  []common.Address
	failCall bool
}

func newFakeRegistry() *fakeRegistry {
	return &fakeRegistry{
		oracle:    keeperAddr,
		online:    []common.Address{opFresh, opLate},
		slashable: []common.Address{opOffline},
		states: map[common.Address]statusregistry.IOperatorStatusRegistryOperatorState{
			opFresh:   {LastHeartbeat: big.NewInt(now.Unix() - 30), ConsecutiveBeats: 9, Status: uint8(types.StatusHealthy)},
			opLate:    {LastHeartbeat: big.NewInt(now.Unix() - 200), ConsecutiveBeats: 4, Status: uint8(types.StatusHealthy)},
			opOffline: {LastHeartbeat: big.NewInt(now.Unix() - 1000), MissedBeats: 3, Status: uint8(types.StatusOffline)},
		},
	}
}

func (f *fakeRegistry) GetHeartbeatConfig(*bind.CallOpts, uint64) (statusregistry.IOperatorStatusRegistryHeartbeatConfig, error) {
	return statusregistry.IOperatorStatusRegistryHeartbeatConfig{Interval: 60, MaxMissed: 3}, nil
}

func (f *fakeRegistry) GetOnlineOperators(*bind.CallOpts, uint64) ([]common.Address, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]common.Address{}, f.online...), nil
}

func (f *fakeRegistry) GetSlashableOperators(*bind.CallOpts, uint64) ([]common.Address, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]common.Address{}, f.slashable...), nil
}

func (f *fakeRegistry) GetOperatorState(_ *bind.CallOpts, _ uint64, op common.Address) (statusregistry.IOperatorStatusRegistryOperatorState, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.states[op], nil
}

func (f *fakeRegistry) ServiceOwners(*bind.CallOpts, uint64) (common.Address, error) {
	return owner, nil
}

func (f *fakeRegistry) SlashingOracle(*bind.CallOpts) (common.Address, error) {
	return f.oracle, nil
}

func (f *fakeRegistry) CheckOperatorsStatus(_ *bind.TransactOpts, serviceID uint64, operators []common.Address) (*gethtypes.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.checks = append(f.checks, checkCall{serviceID, operators})
	for _, op := range operators {
		st := f.states[op]
		if types.StatusCode(st.Status).IsOnline() {
			st.Status = uint8(types.StatusOffline)
			st.MissedBeats = 3
			st.ConsecutiveBeats = 0
			f.states[op] = st
		}
	}
	return gethtypes.NewTx(&gethtypes.LegacyTx{Nonce: uint64(len(f.checks))}), nil
}

func (f *fakeRegistry) ReportForSlashing(_ *bind.TransactOpts, _ uint64, op common.Address, reason string) (*gethtypes.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failCall {
		return nil, assert.AnError
	}
	f.reports = append(f.reports, op)
	return gethtypes.NewTx(&gethtypes.LegacyTx{Nonce: 100}), nil
}

type fakeSender struct{}

func (fakeSender) Send(ctx context.Context, _ string, fn func(*bind.TransactOpts) (*gethtypes.Transaction, error)) (*gethtypes.Receipt, error) {
	tx, err := fn(&bind.TransactOpts{Context: ctx, From: keeperAddr})
	if err != nil {
		return nil, err
	}
	return &gethtypes.Receipt{TxHash: tx.Hash(), Status: gethtypes.ReceiptStatusSuccessful}, nil
}

func (fakeSender) From() common.Address { return keeperAddr }

func newTestKeeper(reg *fakeRegistry, reportSlashing bool) (*Keeper, *status.Registry) {
	replica := status.NewRegistry(status.NewManualClock(now), common.Address{})
	limiter := ratelimit.NewSlashLimiter(nil, 1, time.Duration(statusregistry.SlashAlertCooldown)*time.Second)
	return New(reg, fakeSender{}, limiter, replica, Options{Services: []uint64{7}, Concurrency: 2, ReportSlashing: reportSlashing}), replica
}

func TestKeeperChecksOverdueOperators(t *testing.T) {
	reg := newFakeRegistry()
	k, replica := newTestKeeper(reg, false)

	require.NoError(t, k.RunOnce(context.Background()))
	require.Len(t, reg.checks, 1)
	assert.Equal(t, uint64(7), reg.checks[0].service)
	assert.ElementsMatch(t, []common.Address{opLate, opOffline}, reg.checks[0].operators)
	assert.Empty(t, reg.reports)

	assert.Equal(t, owner, replica.ServiceOwners(7))
	assert.Equal(t, types.StatusOffline, replica.GetOperatorStatus(7, opLate))
	assert.True(t, replica.IsOnline(7, opFresh))

	// the mirrored alerts keep the next round quiet
	require.NoError(t, k.RunOnce(context.Background()))
	assert.Len(t, reg.checks, 1)
}

func TestKeeperReportsOfflineOperatorsAsOracle(t *testing.T) {
	reg := newFakeRegistry()
	k, replica := newTestKeeper(reg, true)

	require.NoError(t, k.RunOnce(context.Background()))
	assert.Equal(t, []common.Address{opOffline}, reg.reports)
	require.Len(t, reg.checks, 1)
	assert.Equal(t, []common.Address{opLate}, reg.checks[0].operators)
	assert.Equal(t, types.StatusSlashed, replica.GetOperatorStatus(7, opOffline))

	// the chain still lists the operator as slashable but the cooldown holds back a second report
	require.NoError(t, k.RunOnce(context.Background()))
	assert.Len(t, reg.reports, 1)
}

func TestKeeperReleasesFailedReports(t *testing.T) {
	reg := newFakeRegistry()
	reg.failCall = true
	k, _ := newTestKeeper(reg, true)

	require.NoError(t, k.RunOnce(context.Background()))
	assert.Empty(t, reg.reports)

	reg.failCall = false
	require.NoError(t, k.RunOnce(context.Background()))
	assert.Equal(t, []common.Address{opOffline}, reg.reports)
}

func TestKeeperSkipsReportsWhenNotOracle(t *testing.T) {
	reg := newFakeRegistry()
	reg.oracle = owner
	k, _ := newTestKeeper(reg, true)

	require.NoError(t, k.RunOnce(context.Background()))
	assert.Empty(t, reg.reports)
	require.Len(t, reg.checks, 1)
	assert.ElementsMatch(t, []common.Address{opLate, opOffline}, reg.checks[0].operators)
}

func TestKeeperSyncRefreshesUnlistedOperators(t *testing.T) {
	reg := newFakeRegistry()
	k, replica := newTestKeeper(reg, false)
	require.NoError(t, k.Sync(context.Background(), 7))
	require.Equal(t, []common.Address{opFresh, opLate, opOffline}, replica.Operators(7))

	// opLate exits and opOffline is deregistered, both leave the lists
	reg.mu.Lock()
	reg.online = []common.Address{opFresh}
	reg.slashable = nil
	reg.states[opLate] = statusregistry.IOperatorStatusRegistryOperatorState{LastHeartbeat: big.NewInt(now.Unix() - 200), ConsecutiveBeats: 4, Status: uint8(types.StatusExiting)}
	delete(reg.states, opOffline)
	reg.mu.Unlock()

	require.NoError(t, k.RunOnce(context.Background()))
	assert.Empty(t, reg.checks)
	assert.Equal(t, types.StatusExiting, replica.GetOperatorStatus(7, opLate))
	assert.Equal(t, []common.Address{opFresh, opLate}, replica.Operators(7))
}
