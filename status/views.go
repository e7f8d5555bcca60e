package status

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/tangle-network/operator-status/types"
)

func (r *Registry) TangleCore() common.Address {
	return r.tangleCore
}

func (r *Registry) SlashingOracle() common.Address {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.slashingOracle
}

func (r *Registry) ServiceOwners(serviceID uint64) common.Address {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if s, ok := r.services[serviceID]; ok {
		return s.owner
	}
	return common.Address{}
}

// GetHeartbeatConfig returns the defaults for services that were never configured.
func (r *Registry) GetHeartbeatConfig(serviceID uint64) HeartbeatConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if s, ok := r.services[serviceID]; ok {
		return s.config
	}
	return defaultConfig()
}

func (r *Registry) GetMetricDefinitions(serviceID uint64) []MetricDefinition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.services[serviceID]
	if !ok {
		return []MetricDefinition{}
	}
	out := make([]MetricDefinition, len(s.definitions))
	for i, d := range s.definitions {
		out[i] = copyDefinition(d)
	}
	return out
}

func unix(t time.Time) *big.Int {
	if t.IsZero() {
		return new(big.Int)
	}
	return big.NewInt(t.Unix())
}

func (r *Registry) GetLastHeartbeat(serviceID uint64, addr common.Address) *big.Int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if op, ok := r.lookup(serviceID, addr); ok {
		return unix(op.lastHeartbeat)
	}
	return new(big.Int)
}

func (r *Registry) GetMetricValue(serviceID uint64, addr common.Address, name string) *big.Int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if op, ok := r.lookup(serviceID, addr); ok {
		if v, ok := op.metrics[name]; ok {
			return new(big.Int).Set(v)
		}
	}
	return new(big.Int)
}

func (r *Registry) GetOperatorState(serviceID uint64, addr common.Address) OperatorState {
	r.mu.RLock()
	defer r.mu.RUnlock()
	op, ok := r.lookup(serviceID, addr)
	if !ok {
		return OperatorState{LastHeartbeat: new(big.Int)}
	}
	return OperatorState{
		LastHeartbeat:    unix(op.lastHeartbeat),
		ConsecutiveBeats: op.consecutiveBeats,
		MissedBeats:      op.missedBeats,
		Status:           uint8(op.status),
		LastMetricsHash:  op.lastMetricsHash,
	}
}

// GetOperatorStatus returns Healthy for unknown operators, as the zero value
// of the on-chain enum does.
func (r *Registry) GetOperatorStatus(serviceID uint64, addr common.Address) types.StatusCode {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if op, ok := r.lookup(serviceID, addr); ok {
		return op.status
	}
	return types.StatusHealthy
}

func (r *Registry) IsOnline(serviceID uint64, addr common.Address) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	op, ok := r.lookup(serviceID, addr)
	return ok && op.status.IsOnline()
}

// IsHeartbeatCurrent is true while an operator has heartbeated and missed
// fewer than maxMissed intervals since.
func (r *Registry) IsHeartbeatCurrent(serviceID uint64, addr common.Address) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	op, ok := r.lookup(serviceID, addr)
	if !ok || op.lastHeartbeat.IsZero() {
		return false
	}
	cfg := r.services[serviceID].config
	return missedBeats(r.clock.Now().Sub(op.lastHeartbeat), cfg.Interval) < cfg.MaxMissed
}

func (r *Registry) filter(serviceID uint64, keep func(*operator) bool) []common.Address {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []common.Address{}
	s, ok := r.services[serviceID]
	if !ok {
		return out
	}
	for _, addr := range s.order {
		if keep(s.operators[addr]) {
			out = append(out, addr)
		}
	}
	return out
}

// GetOnlineOperators lists online operators in registration order.
func (r *Registry) GetOnlineOperators(serviceID uint64) []common.Address {
	return r.filter(serviceID, func(op *operator) bool { return op.status.IsOnline() })
}

func (r *Registry) GetOnlineOperatorCount(serviceID uint64) *big.Int {
	return big.NewInt(int64(len(r.GetOnlineOperators(serviceID))))
}

// GetSlashableOperators lists the operators currently offline.
func (r *Registry) GetSlashableOperators(serviceID uint64) []common.Address {
	return r.filter(serviceID, func(op *operator) bool { return op.status == types.StatusOffline })
}

// Overdue lists the operators for which CheckOperatorStatus would emit
// events right now.
func (r *Registry) Overdue(serviceID uint64) []common.Address {
	r.mu.RLock()
	cfg := defaultConfig()
	if s, ok := r.services[serviceID]; ok {
		cfg = s.config
	}
	now := r.clock.Now()
	r.mu.RUnlock()

	return r.filter(serviceID, func(op *operator) bool {
		switch {
		case op.status.IsOnline():
			return missedBeats(now.Sub(op.reference()), cfg.Interval) >= cfg.MaxMissed
		case op.status == types.StatusOffline:
			return r.slashAlertDue(op, now)
		}
		return false
	})
}

// Operators returns the registered operators of a service in registration order.
func (r *Registry) Operators(serviceID uint64) []common.Address {
	return r.filter(serviceID, func(*operator) bool { return true })
}

// Snapshot returns the status rows of every operator of a service.
func (r *Registry) Snapshot(serviceID uint64) []types.OperatorStatus {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.services[serviceID]
	if !ok {
		return nil
	}
	out := make([]types.OperatorStatus, 0, len(s.order))
	for _, addr := range s.order {
		out = append(out, s.operators[addr].row(serviceID, addr))
	}
	return out
}

func (r *Registry) OperatorStatus(serviceID uint64, addr common.Address) (types.OperatorStatus, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	op, ok := r.lookup(serviceID, addr)
	if !ok {
		return types.OperatorStatus{}, false
	}
	return op.row(serviceID, addr), true
}

func (op *operator) row(serviceID uint64, addr common.Address) types.OperatorStatus {
	return types.OperatorStatus{
		ServiceID:        serviceID,
		Operator:         addr,
		Status:           op.status,
		LastHeartbeat:    op.lastHeartbeat,
		ConsecutiveBeats: op.consecutiveBeats,
		MissedBeats:      op.missedBeats,
		BlockNumber:      op.block,
	}
}
