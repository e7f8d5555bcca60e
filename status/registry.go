// Package status replicates the operator status registry state machine off
// chain. The keeper uses it to decide which operators are overdue and the
// exporter folds decoded logs into it to maintain current operator status.
package status

import (
	"fmt"
	"math"
	"math/big"
	"sort"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/tangle-network/operator-status/contracts/statusregistry"
	"github.com/tangle-network/operator-status/heartbeat"
	"github.com/tangle-network/operator-status/types"
)

const (
	ReasonOutOfBounds     = "value out of bounds"
	ReasonRequiredMissing = "required metric missing"
)

type (
	HeartbeatConfig  = statusregistry.IOperatorStatusRegistryHeartbeatConfig
	MetricDefinition = statusregistry.IOperatorStatusRegistryMetricDefinition
	OperatorState    = statusregistry.IOperatorStatusRegistryOperatorState
)

type operator struct {
	lastHeartbeat    time.Time
	activeSince      time.Time
	consecutiveBeats uint64
	missedBeats      uint8
	status           types.StatusCode
	lastMetricsHash  common.Hash
	lastSlashAlert   time.Time
	metrics          map[string]*big.Int
	block            uint64
}

type service struct {
	owner       common.Address
	config      HeartbeatConfig
	definitions []MetricDefinition
	operators   map[common.Address]*operator
	order       []common.Address
}

// Registry is an in-memory replica of one registry deployment. It is safe
// for concurrent use.
type Registry struct {
	mu             sync.RWMutex
	clock          Clock
	tangleCore     common.Address
	slashingOracle common.Address
	services       map[uint64]*service
}

func NewRegistry(clock Clock, tangleCore common.Address) *Registry {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Registry{
		clock:      clock,
		tangleCore: tangleCore,
		services:   make(map[uint64]*service),
	}
}

func defaultConfig() HeartbeatConfig {
	return HeartbeatConfig{
		Interval:  statusregistry.DefaultHeartbeatInterval,
		MaxMissed: statusregistry.DefaultMaxMissedHeartbeats,
	}
}

func (r *Registry) service(serviceID uint64) *service {
	s, ok := r.services[serviceID]
	if !ok {
		s = &service{
			config:    defaultConfig(),
			operators: make(map[common.Address]*operator),
		}
		r.services[serviceID] = s
	}
	return s
}

func (r *Registry) lookup(serviceID uint64, addr common.Address) (*operator, bool) {
	s, ok := r.services[serviceID]
	if !ok {
		return nil, false
	}
	op, ok := s.operators[addr]
	return op, ok
}

func (r *Registry) requireOwner(caller common.Address, serviceID uint64) (*service, error) {
	s, ok := r.services[serviceID]
	if !ok || s.owner == (common.Address{}) || s.owner != caller {
		return nil, ErrNotServiceOwner
	}
	return s, nil
}

func statusFromCode(code uint8) types.StatusCode {
	if code == 0 {
		return types.StatusHealthy
	}
	return types.StatusDegraded
}

func statusChanged(serviceID uint64, addr common.Address, from, to types.StatusCode) statusregistry.Event {
	return &statusregistry.OperatorStatusRegistryStatusChanged{
		ServiceId: serviceID,
		Operator:  addr,
		OldStatus: uint8(from),
		NewStatus: uint8(to),
	}
}

// SubmitHeartbeat records a signed heartbeat sent by caller.
func (r *Registry) SubmitHeartbeat(caller common.Address, serviceID, blueprintID uint64, statusCode uint8, metrics, signature []byte) ([]statusregistry.Event, error) {
	if err := heartbeat.Verify(caller, serviceID, blueprintID, statusCode, metrics, signature); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	op, ok := r.lookup(serviceID, caller)
	if !ok {
		return nil, ErrNotRegistered
	}
	switch op.status {
	case types.StatusSlashed:
		return nil, ErrOperatorSlashed
	case types.StatusExiting:
		return nil, ErrOperatorExiting
	}

	s := r.services[serviceID]
	var pairs []heartbeat.MetricPair
	if s.config.CustomMetrics && len(metrics) > 0 {
		var err error
		pairs, err = heartbeat.DecodeMetrics(metrics)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidMetrics, err)
		}
	}

	now := r.clock.Now()
	var events []statusregistry.Event
	if s.config.CustomMetrics {
		events = append(events, r.recordMetrics(s, serviceID, caller, op, pairs)...)
	}

	prev := op.status
	next := statusFromCode(statusCode)
	op.lastHeartbeat = now
	op.consecutiveBeats++
	op.missedBeats = 0
	op.lastMetricsHash = crypto.Keccak256Hash(metrics)
	op.status = next

	if prev != next {
		events = append(events, statusChanged(serviceID, caller, prev, next))
	}
	if prev == types.StatusOffline {
		events = append(events, &statusregistry.OperatorStatusRegistryOperatorCameOnline{
			ServiceId: serviceID,
			Operator:  caller,
		})
	}
	events = append(events, &statusregistry.OperatorStatusRegistryHeartbeatReceived{
		ServiceId:   serviceID,
		BlueprintId: blueprintID,
		Operator:    caller,
		StatusCode:  statusCode,
		Timestamp:   big.NewInt(now.Unix()),
	})
	return events, nil
}

// recordMetrics stores reported values and flags violations. Violations never
// reject the heartbeat.
func (r *Registry) recordMetrics(s *service, serviceID uint64, addr common.Address, op *operator, pairs []heartbeat.MetricPair) []statusregistry.Event {
	var events []statusregistry.Event
	reported := make(map[string]bool, len(pairs))
	for _, p := range pairs {
		reported[p.Name] = true
		op.metrics[p.Name] = new(big.Int).Set(p.Value)
		events = append(events, &statusregistry.OperatorStatusRegistryMetricReported{
			ServiceId:  serviceID,
			Operator:   addr,
			MetricName: p.Name,
			Value:      new(big.Int).Set(p.Value),
		})
		for _, def := range s.definitions {
			if def.Name != p.Name {
				continue
			}
			if p.Value.Cmp(def.MinValue) < 0 || p.Value.Cmp(def.MaxValue) > 0 {
				events = append(events, &statusregistry.OperatorStatusRegistryMetricViolation{
					ServiceId:  serviceID,
					Operator:   addr,
					MetricName: p.Name,
					Reason:     ReasonOutOfBounds,
				})
			}
		}
	}
	for _, def := range s.definitions {
		if def.Required && !reported[def.Name] {
			events = append(events, &statusregistry.OperatorStatusRegistryMetricViolation{
				ServiceId:  serviceID,
				Operator:   addr,
				MetricName: def.Name,
				Reason:     ReasonRequiredMissing,
			})
		}
	}
	return events
}

func missedBeats(elapsed time.Duration, interval uint64) uint8 {
	if elapsed <= 0 || interval == 0 {
		return 0
	}
	missed := uint64(elapsed/time.Second) / interval
	if missed > math.MaxUint8 {
		return math.MaxUint8
	}
	return uint8(missed)
}

func (op *operator) reference() time.Time {
	if op.lastHeartbeat.After(op.activeSince) {
		return op.lastHeartbeat
	}
	return op.activeSince
}

func (r *Registry) slashAlertDue(op *operator, now time.Time) bool {
	return op.lastSlashAlert.IsZero() || now.Sub(op.lastSlashAlert) >= time.Duration(statusregistry.SlashAlertCooldown)*time.Second
}

// CheckOperatorStatus may be called by anyone. It marks an operator offline
// once it has missed maxMissed intervals and raises a slashing alert for
// offline operators, at most once per cooldown.
func (r *Registry) CheckOperatorStatus(serviceID uint64, addr common.Address) ([]statusregistry.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	op, ok := r.lookup(serviceID, addr)
	if !ok {
		return nil, ErrNotRegistered
	}
	return r.check(serviceID, addr, op), nil
}

func (r *Registry) check(serviceID uint64, addr common.Address, op *operator) []statusregistry.Event {
	if op.status == types.StatusSlashed || op.status == types.StatusExiting {
		return nil
	}
	cfg := r.services[serviceID].config
	now := r.clock.Now()
	missed := missedBeats(now.Sub(op.reference()), cfg.Interval)
	op.missedBeats = missed

	var events []statusregistry.Event
	if missed >= cfg.MaxMissed && op.status.IsOnline() {
		prev := op.status
		op.status = types.StatusOffline
		op.consecutiveBeats = 0
		events = append(events,
			statusChanged(serviceID, addr, prev, types.StatusOffline),
			&statusregistry.OperatorStatusRegistryOperatorWentOffline{
				ServiceId:   serviceID,
				Operator:    addr,
				MissedBeats: missed,
			})
	}
	if op.status == types.StatusOffline && r.slashAlertDue(op, now) {
		op.lastSlashAlert = now
		events = append(events, &statusregistry.OperatorStatusRegistrySlashingTriggered{
			ServiceId: serviceID,
			Operator:  addr,
			Reason:    statusregistry.MissedHeartbeatsSlashReason,
		})
	}
	return events
}

// CheckOperatorsStatus is the batch form of CheckOperatorStatus. Unknown
// operators are skipped.
func (r *Registry) CheckOperatorsStatus(serviceID uint64, addrs []common.Address) []statusregistry.Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	var events []statusregistry.Event
	for _, addr := range addrs {
		op, ok := r.lookup(serviceID, addr)
		if !ok {
			continue
		}
		events = append(events, r.check(serviceID, addr, op)...)
	}
	return events
}

// ReportForSlashing is restricted to the slashing oracle.
func (r *Registry) ReportForSlashing(caller common.Address, serviceID uint64, addr common.Address, reason string) ([]statusregistry.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.slashingOracle == (common.Address{}) || caller != r.slashingOracle {
		return nil, ErrNotSlashingOracle
	}
	op, ok := r.lookup(serviceID, addr)
	if !ok {
		return nil, ErrNotRegistered
	}
	now := r.clock.Now()
	if !r.slashAlertDue(op, now) {
		return nil, ErrRateLimited
	}
	op.lastSlashAlert = now

	var events []statusregistry.Event
	if op.status != types.StatusSlashed {
		events = append(events, statusChanged(serviceID, addr, op.status, types.StatusSlashed))
		op.status = types.StatusSlashed
	}
	events = append(events, &statusregistry.OperatorStatusRegistrySlashingTriggered{
		ServiceId: serviceID,
		Operator:  addr,
		Reason:    reason,
	})
	return events, nil
}

func (r *Registry) ConfigureHeartbeat(caller common.Address, serviceID, interval uint64, maxMissed uint8) ([]statusregistry.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, err := r.requireOwner(caller, serviceID)
	if err != nil {
		return nil, err
	}
	if interval == 0 || maxMissed == 0 {
		return nil, ErrInvalidConfig
	}
	s.config.Interval = interval
	s.config.MaxMissed = maxMissed
	return []statusregistry.Event{&statusregistry.OperatorStatusRegistryHeartbeatConfigUpdated{
		ServiceId: serviceID,
		Interval:  interval,
		MaxMissed: maxMissed,
	}}, nil
}

func (r *Registry) EnableCustomMetrics(caller common.Address, serviceID uint64, enabled bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, err := r.requireOwner(caller, serviceID)
	if err != nil {
		return err
	}
	s.config.CustomMetrics = enabled
	return nil
}

func validateDefinition(def MetricDefinition) error {
	if def.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidMetricDefinition)
	}
	if def.MinValue == nil || def.MaxValue == nil {
		return fmt.Errorf("%w: %s: missing bounds", ErrInvalidMetricDefinition, def.Name)
	}
	if def.MinValue.Cmp(def.MaxValue) > 0 {
		return fmt.Errorf("%w: %s: min %s > max %s", ErrInvalidMetricDefinition, def.Name, def.MinValue, def.MaxValue)
	}
	return nil
}

// SetMetricDefinitions replaces all definitions of a service.
func (r *Registry) SetMetricDefinitions(caller common.Address, serviceID uint64, defs []MetricDefinition) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, err := r.requireOwner(caller, serviceID)
	if err != nil {
		return err
	}
	seen := make(map[string]bool, len(defs))
	out := make([]MetricDefinition, 0, len(defs))
	for _, def := range defs {
		if err := validateDefinition(def); err != nil {
			return err
		}
		if seen[def.Name] {
			return fmt.Errorf("%w: %s", ErrDuplicateMetric, def.Name)
		}
		seen[def.Name] = true
		out = append(out, copyDefinition(def))
	}
	s.definitions = out
	return nil
}

func (r *Registry) AddMetricDefinition(caller common.Address, serviceID uint64, name string, minValue, maxValue *big.Int, required bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, err := r.requireOwner(caller, serviceID)
	if err != nil {
		return err
	}
	def := MetricDefinition{Name: name, MinValue: minValue, MaxValue: maxValue, Required: required}
	if err := validateDefinition(def); err != nil {
		return err
	}
	for _, d := range s.definitions {
		if d.Name == name {
			return fmt.Errorf("%w: %s", ErrDuplicateMetric, name)
		}
	}
	s.definitions = append(s.definitions, copyDefinition(def))
	return nil
}

func copyDefinition(def MetricDefinition) MetricDefinition {
	return MetricDefinition{
		Name:     def.Name,
		MinValue: new(big.Int).Set(def.MinValue),
		MaxValue: new(big.Int).Set(def.MaxValue),
		Required: def.Required,
	}
}

func (r *Registry) SetSlashingOracle(caller, oracle common.Address) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if caller != r.tangleCore {
		return ErrNotTangleCore
	}
	r.slashingOracle = oracle
	return nil
}

func (r *Registry) RegisterServiceOwner(caller common.Address, serviceID uint64, owner common.Address) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if caller != r.tangleCore {
		return ErrNotTangleCore
	}
	r.service(serviceID).owner = owner
	return nil
}

func (r *Registry) RegisterOperator(caller common.Address, serviceID uint64, addr common.Address) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if caller != r.tangleCore {
		return ErrNotTangleCore
	}
	s := r.service(serviceID)
	if _, ok := s.operators[addr]; ok {
		return ErrAlreadyRegistered
	}
	s.operators[addr] = &operator{
		activeSince: r.clock.Now(),
		status:      types.StatusHealthy,
		metrics:     make(map[string]*big.Int),
	}
	s.order = append(s.order, addr)
	return nil
}

func (r *Registry) DeregisterOperator(caller common.Address, serviceID uint64, addr common.Address) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if caller != r.tangleCore {
		return ErrNotTangleCore
	}
	s, ok := r.services[serviceID]
	if !ok {
		return ErrNotRegistered
	}
	if _, ok := s.operators[addr]; !ok {
		return ErrNotRegistered
	}
	delete(s.operators, addr)
	for i, a := range s.order {
		if a == addr {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// GoOffline announces a voluntary exit. Exiting operators are neither
// checked nor allowed to heartbeat until they call GoOnline.
func (r *Registry) GoOffline(caller common.Address, serviceID uint64) ([]statusregistry.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	op, ok := r.lookup(serviceID, caller)
	if !ok {
		return nil, ErrNotRegistered
	}
	switch op.status {
	case types.StatusSlashed:
		return nil, ErrOperatorSlashed
	case types.StatusExiting:
		return nil, nil
	}
	prev := op.status
	op.status = types.StatusExiting
	return []statusregistry.Event{statusChanged(serviceID, caller, prev, types.StatusExiting)}, nil
}

func (r *Registry) GoOnline(caller common.Address, serviceID uint64) ([]statusregistry.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	op, ok := r.lookup(serviceID, caller)
	if !ok {
		return nil, ErrNotRegistered
	}
	if op.status != types.StatusExiting {
		return nil, ErrNotExiting
	}
	op.status = types.StatusHealthy
	op.activeSince = r.clock.Now()
	op.missedBeats = 0
	return []statusregistry.Event{
		statusChanged(serviceID, caller, types.StatusExiting, types.StatusHealthy),
		&statusregistry.OperatorStatusRegistryOperatorCameOnline{ServiceId: serviceID, Operator: caller},
	}, nil
}

// Services returns the ids of every service the replica knows, ascending.
func (r *Registry) Services() []uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]uint64, 0, len(r.services))
	for id := range r.services {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
