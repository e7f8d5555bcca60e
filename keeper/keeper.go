// Package keeper drives the registry's liveness checks. It mirrors the
// on-chain state of each watched service into a status replica, sends one
// checkOperatorsStatus transaction for the operators that are overdue and,
// when running as the slashing oracle, reports offline operators.
package keeper

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	gethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/sirupsen/logrus"

	"github.com/tangle-network/operator-status/contracts/statusregistry"
	"github.com/tangle-network/operator-status/metrics"
	"github.com/tangle-network/operator-status/status"
	"github.com/tangle-network/operator-status/txsender"
	"github.com/tangle-network/operator-status/types"
	"github.com/tangle-network/operator-status/workerpool"
)

var logger = logrus.StandardLogger().WithField("module", "keeper")

// Registry is the subset of the generated registry binding the keeper uses.
type Registry interface {
	GetHeartbeatConfig(opts *bind.CallOpts, serviceId uint64) (statusregistry.IOperatorStatusRegistryHeartbeatConfig, error)
	GetOnlineOperators(opts *bind.CallOpts, serviceId uint64) ([]common.Address, error)
	GetSlashableOperators(opts *bind.CallOpts, serviceId uint64) ([]common.Address, error)
	GetOperatorState(opts *bind.CallOpts, serviceId uint64, operator common.Address) (statusregistry.IOperatorStatusRegistryOperatorState, error)
	ServiceOwners(opts *bind.CallOpts, arg0 uint64) (common.Address, error)
	SlashingOracle(opts *bind.CallOpts) (common.Address, error)
	CheckOperatorsStatus(opts *bind.TransactOpts, serviceId uint64, operators []common.Address) (*gethtypes.Transaction, error)
	ReportForSlashing(opts *bind.TransactOpts, serviceId uint64, operator common.Address, reason string) (*gethtypes.Transaction, error)
}

type Sender interface {
	Send(ctx context.Context, method string, fn func(*bind.TransactOpts) (*gethtypes.Transaction, error)) (*gethtypes.Receipt, error)
	From() common.Address
}

// Limiter grants slashing reports outside the on-chain cooldown.
type Limiter interface {
	Allow(ctx context.Context, serviceID uint64, operator common.Address) bool
	Release(ctx context.Context, serviceID uint64, operator common.Address)
}

type Options struct {
	Services       []uint64
	Interval       time.Duration
	Concurrency    int
	ReportSlashing bool
}

type Keeper struct {
	registry Registry
	sender   Sender
	limiter  Limiter
	replica  *status.Registry
	opts     Options
}

func New(registry Registry, sender Sender, limiter Limiter, replica *status.Registry, opts Options) *Keeper {
	if opts.Concurrency <= 0 {
		opts.Concurrency = 1
	}
	if opts.Interval <= 0 {
		opts.Interval = time.Minute
	}
	return &Keeper{
		registry: registry,
		sender:   sender,
		limiter:  limiter,
		replica:  replica,
		opts:     opts,
	}
}

// Start runs a round every interval until ctx is done.
func (k *Keeper) Start(ctx context.Context) {
	pool := workerpool.New(k.opts.Concurrency, len(k.opts.Services))
	pool.Run(ctx)
	defer pool.Quit()

	ticker := time.NewTicker(k.opts.Interval)
	defer ticker.Stop()
	for {
		if err := k.round(ctx, pool); err != nil {
			logger.WithError(err).Error("keeper round failed")
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// RunOnce checks every service once.
func (k *Keeper) RunOnce(ctx context.Context) error {
	pool := workerpool.New(k.opts.Concurrency, len(k.opts.Services))
	pool.Run(ctx)
	defer pool.Quit()
	return k.round(ctx, pool)
}

func (k *Keeper) round(ctx context.Context, pool *workerpool.WorkerPool) error {
	start := time.Now()
	oracle, err := k.registry.SlashingOracle(&bind.CallOpts{Context: ctx})
	if err != nil {
		return fmt.Errorf("error reading slashing oracle: %w", err)
	}
	k.replica.LoadSlashingOracle(oracle)

	isOracle := k.opts.ReportSlashing && oracle == k.sender.From()
	if k.opts.ReportSlashing && !isOracle {
		logger.Warnf("slashing reports enabled but %v is not the slashing oracle %v", k.sender.From().Hex(), oracle.Hex())
	}

	for _, svc := range k.opts.Services {
		svc := svc
		pool.AddTask(func(ctx context.Context) error {
			return k.CheckService(ctx, svc, isOracle)
		})
	}
	err = pool.Wait()
	logger.WithField("duration", time.Since(start)).Debugf("checked %v services", len(k.opts.Services))
	return err
}

// Sync mirrors the on-chain state of a service into the replica.
func (k *Keeper) Sync(ctx context.Context, serviceID uint64) error {
	opts := &bind.CallOpts{Context: ctx}
	cfg, err := k.registry.GetHeartbeatConfig(opts, serviceID)
	if err != nil {
		return fmt.Errorf("error reading heartbeat config of service %v: %w", serviceID, err)
	}
	k.replica.LoadConfig(serviceID, cfg)

	owner, err := k.registry.ServiceOwners(opts, serviceID)
	if err != nil {
		return fmt.Errorf("error reading owner of service %v: %w", serviceID, err)
	}
	k.replica.LoadOwner(serviceID, owner)

	online, err := k.registry.GetOnlineOperators(opts, serviceID)
	if err != nil {
		return fmt.Errorf("error reading online operators of service %v: %w", serviceID, err)
	}
	slashable, err := k.registry.GetSlashableOperators(opts, serviceID)
	if err != nil {
		return fmt.Errorf("error reading slashable operators of service %v: %w", serviceID, err)
	}

	listed := map[common.Address]bool{}
	for _, op := range append(online, slashable...) {
		if listed[op] {
			continue
		}
		listed[op] = true
		if err := k.syncOperator(opts, serviceID, op); err != nil {
			return err
		}
	}

	// operators that exited or were slashed drop out of both lists
	for _, op := range k.replica.Operators(serviceID) {
		if listed[op] {
			continue
		}
		state, err := k.registry.GetOperatorState(opts, serviceID, op)
		if err != nil {
			return fmt.Errorf("error reading state of %v in service %v: %w", op.Hex(), serviceID, err)
		}
		if isZeroState(state) {
			logger.WithFields(logrus.Fields{"service": serviceID, "operator": op.Hex()}).Info("operator deregistered")
			k.replica.Forget(serviceID, op)
			continue
		}
		k.replica.LoadOperator(serviceID, op, state)
	}
	return nil
}

func (k *Keeper) syncOperator(opts *bind.CallOpts, serviceID uint64, op common.Address) error {
	state, err := k.registry.GetOperatorState(opts, serviceID, op)
	if err != nil {
		return fmt.Errorf("error reading state of %v in service %v: %w", op.Hex(), serviceID, err)
	}
	k.replica.LoadOperator(serviceID, op, state)
	return nil
}

// isZeroState reports whether getOperatorState returned the empty record of
// an operator that is not registered.
func isZeroState(s statusregistry.IOperatorStatusRegistryOperatorState) bool {
	return (s.LastHeartbeat == nil || s.LastHeartbeat.Sign() == 0) &&
		s.ConsecutiveBeats == 0 && s.MissedBeats == 0 &&
		s.Status == 0 && s.LastMetricsHash == [32]byte{}
}

// CheckService syncs a service and submits the overdue checks. Operators
// that are already offline share the alert cooldown with slashing reports,
// so the slashing oracle reports them instead of checking them again.
func (k *Keeper) CheckService(ctx context.Context, serviceID uint64, isOracle bool) error {
	if err := k.Sync(ctx, serviceID); err != nil {
		metrics.Errors.WithLabelValues("keeper", "sync").Inc()
		return err
	}
	service := strconv.FormatUint(serviceID, 10)
	log := logger.WithField("service", serviceID)

	check := []common.Address{}
	report := []common.Address{}
	for _, op := range k.replica.Overdue(serviceID) {
		if isOracle && k.limiter != nil && k.replica.GetOperatorStatus(serviceID, op) == types.StatusOffline {
			report = append(report, op)
			continue
		}
		check = append(check, op)
	}

	for _, op := range report {
		if !k.limiter.Allow(ctx, serviceID, op) {
			continue
		}
		op := op
		_, err := k.sender.Send(ctx, "reportForSlashing", func(opts *bind.TransactOpts) (*gethtypes.Transaction, error) {
			return k.registry.ReportForSlashing(opts, serviceID, op, statusregistry.MissedHeartbeatsSlashReason)
		})
		if err != nil {
			// retry reverted reports only after the cooldown
			if !errors.Is(err, txsender.ErrReverted) {
				k.limiter.Release(ctx, serviceID, op)
			}
			metrics.KeeperSlashReportsTotal.WithLabelValues(service, "failure").Inc()
			log.WithError(err).WithField("operator", op.Hex()).Error("error reporting operator for slashing")
			continue
		}
		if _, err := k.replica.ReportForSlashing(k.sender.From(), serviceID, op, statusregistry.MissedHeartbeatsSlashReason); err != nil {
			log.WithError(err).Warn("replica rejected mirrored slashing report")
		}
		metrics.KeeperSlashReportsTotal.WithLabelValues(service, "success").Inc()
		log.WithField("operator", op.Hex()).Warn("reported operator for slashing")
	}

	if len(check) == 0 {
		return nil
	}
	receipt, err := k.sender.Send(ctx, "checkOperatorsStatus", func(opts *bind.TransactOpts) (*gethtypes.Transaction, error) {
		return k.registry.CheckOperatorsStatus(opts, serviceID, check)
	})
	if err != nil {
		metrics.Errors.WithLabelValues("keeper", "checkOperatorsStatus").Inc()
		return fmt.Errorf("error checking %v operators of service %v: %w", len(check), serviceID, err)
	}
	events := k.replica.CheckOperatorsStatus(serviceID, check)
	metrics.KeeperChecksTotal.WithLabelValues(service).Add(float64(len(check)))
	log.WithFields(logrus.Fields{"operators": len(check), "events": len(events), "tx": receipt.TxHash.Hex()}).Info("checked overdue operators")
	return nil
}
