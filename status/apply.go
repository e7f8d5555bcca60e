package status

import (
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/tangle-network/operator-status/contracts/statusregistry"
	"github.com/tangle-network/operator-status/types"
)

// Apply folds an event emitted by the deployed registry into the replica.
// Operators seen in events are registered implicitly since registration
// itself is not evented. blockTime is the timestamp of the block holding the
// event, the clock is used when it is zero.
func (r *Registry) Apply(ev statusregistry.Event, blockTime time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if blockTime.IsZero() {
		blockTime = r.clock.Now()
	}

	block := ev.RawLog().BlockNumber
	switch e := ev.(type) {
	case *statusregistry.OperatorStatusRegistryHeartbeatConfigUpdated:
		s := r.service(e.ServiceId)
		s.config.Interval = e.Interval
		s.config.MaxMissed = e.MaxMissed

	case *statusregistry.OperatorStatusRegistryHeartbeatReceived:
		op := r.ensure(e.ServiceId, e.Operator, block)
		if e.Timestamp != nil && e.Timestamp.Sign() > 0 {
			op.lastHeartbeat = time.Unix(e.Timestamp.Int64(), 0)
		}
		op.consecutiveBeats++
		op.missedBeats = 0
		if op.status != types.StatusSlashed && op.status != types.StatusExiting {
			op.status = statusFromCode(e.StatusCode)
		}

	case *statusregistry.OperatorStatusRegistryMetricReported:
		op := r.ensure(e.ServiceId, e.Operator, block)
		if e.Value != nil {
			op.metrics[e.MetricName] = new(big.Int).Set(e.Value)
		}

	case *statusregistry.OperatorStatusRegistryMetricViolation:
		r.ensure(e.ServiceId, e.Operator, block)

	case *statusregistry.OperatorStatusRegistryOperatorCameOnline:
		op := r.ensure(e.ServiceId, e.Operator, block)
		if !op.status.IsOnline() {
			op.status = types.StatusHealthy
		}

	case *statusregistry.OperatorStatusRegistryOperatorWentOffline:
		op := r.ensure(e.ServiceId, e.Operator, block)
		op.status = types.StatusOffline
		op.missedBeats = e.MissedBeats
		op.consecutiveBeats = 0

	case *statusregistry.OperatorStatusRegistrySlashingTriggered:
		op := r.ensure(e.ServiceId, e.Operator, block)
		op.lastSlashAlert = blockTime

	case *statusregistry.OperatorStatusRegistryStatusChanged:
		op := r.ensure(e.ServiceId, e.Operator, block)
		op.status = types.StatusCode(e.NewStatus)

	default:
		return fmt.Errorf("cannot apply event %T", ev)
	}
	return nil
}

func (r *Registry) ensure(serviceID uint64, addr common.Address, block uint64) *operator {
	s := r.service(serviceID)
	op, ok := s.operators[addr]
	if !ok {
		op = &operator{
			activeSince: r.clock.Now(),
			metrics:     make(map[string]*big.Int),
		}
		s.operators[addr] = op
		s.order = append(s.order, addr)
	}
	if block > op.block {
		op.block = block
	}
	return op
}

// LoadConfig seeds a service config read from chain or database.
func (r *Registry) LoadConfig(serviceID uint64, cfg HeartbeatConfig) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.service(serviceID).config = cfg
}

// LoadOperator seeds an operator from getOperatorState output.
func (r *Registry) LoadOperator(serviceID uint64, addr common.Address, state OperatorState) {
	r.mu.Lock()
	defer r.mu.Unlock()

	op := r.ensure(serviceID, addr, 0)
	op.lastHeartbeat = time.Time{}
	if state.LastHeartbeat != nil && state.LastHeartbeat.Sign() > 0 {
		op.lastHeartbeat = time.Unix(state.LastHeartbeat.Int64(), 0)
		op.activeSince = time.Time{}
	}
	op.consecutiveBeats = state.ConsecutiveBeats
	op.missedBeats = state.MissedBeats
	op.status = types.StatusCode(state.Status)
	op.lastMetricsHash = state.LastMetricsHash
}

// LoadStatus seeds an operator from a persisted status row.
func (r *Registry) LoadStatus(row types.OperatorStatus) {
	r.mu.Lock()
	defer r.mu.Unlock()

	op := r.ensure(row.ServiceID, row.Operator, row.BlockNumber)
	op.lastHeartbeat = row.LastHeartbeat
	if !row.LastHeartbeat.IsZero() {
		op.activeSince = time.Time{}
	}
	op.consecutiveBeats = row.ConsecutiveBeats
	op.missedBeats = row.MissedBeats
	op.status = row.Status
}

// LoadOwner mirrors a service owner read from chain.
func (r *Registry) LoadOwner(serviceID uint64, owner common.Address) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.service(serviceID).owner = owner
}

func (r *Registry) LoadSlashingOracle(oracle common.Address) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.slashingOracle = oracle
}

// Forget drops an operator that is no longer registered on chain.
func (r *Registry) Forget(serviceID uint64, addr common.Address) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.services[serviceID]
	if !ok {
		return
	}
	if _, ok := s.operators[addr]; !ok {
		return
	}
	delete(s.operators, addr)
	for i, a := range s.order {
		if a == addr {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}
