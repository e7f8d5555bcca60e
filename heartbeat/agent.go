package heartbeat

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"strconv"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	gethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/tangle-network/operator-status/contracts/statusregistry"
	"github.com/tangle-network/operator-status/metrics"
	"github.com/tangle-network/operator-status/types"
)

var logger = logrus.StandardLogger().WithField("module", "heartbeat")

const (
	StatusCodeHealthy  = uint8(0)
	StatusCodeDegraded = uint8(1)
)

// Registry is satisfied by the generated registry transactor.
type Registry interface {
	SubmitHeartbeat(opts *bind.TransactOpts, serviceId uint64, blueprintId uint64, statusCode uint8, metrics []byte, signature []byte) (*gethtypes.Transaction, error)
}

type Sender interface {
	Send(ctx context.Context, method string, fn func(*bind.TransactOpts) (*gethtypes.Transaction, error)) (*gethtypes.Receipt, error)
}

// Payload is one signed heartbeat ready for submission.
type Payload struct {
	ServiceID   uint64
	BlueprintID uint64
	StatusCode  uint8
	Metrics     []byte
	Signature   []byte
}

// Agent periodically submits signed heartbeats for the configured services.
type Agent struct {
	key      *ecdsa.PrivateKey
	operator common.Address
	registry Registry
	sender   Sender
	source   MetricSource
}

// NewAgent returns an agent signing with key. source may be nil when only
// the static per service metrics are reported.
func NewAgent(key *ecdsa.PrivateKey, registry Registry, sender Sender, source MetricSource) *Agent {
	return &Agent{
		key:      key,
		operator: crypto.PubkeyToAddress(key.PublicKey),
		registry: registry,
		sender:   sender,
		source:   source,
	}
}

func (a *Agent) Operator() common.Address {
	return a.operator
}

// Build collects metrics and signs the heartbeat for svc. A failing metric
// source downgrades the heartbeat to degraded instead of skipping it.
func (a *Agent) Build(ctx context.Context, svc types.HeartbeatService) (*Payload, error) {
	statusCode := StatusCodeHealthy
	sources := MultiSource{StaticSource(svc.Metrics)}
	if a.source != nil {
		sources = append(sources, a.source)
	}
	values, err := sources.Collect(ctx)
	if err != nil {
		logger.WithError(err).WithField("service", svc.ServiceID).Warn("error collecting metrics, reporting degraded")
		statusCode = StatusCodeDegraded
		values, _ = StaticSource(svc.Metrics).Collect(ctx)
	}

	encoded, err := EncodeMetrics(MetricsFromMap(values))
	if err != nil {
		return nil, err
	}
	sig, err := Sign(a.key, svc.ServiceID, svc.BlueprintID, statusCode, encoded)
	if err != nil {
		return nil, err
	}
	return &Payload{
		ServiceID:   svc.ServiceID,
		BlueprintID: svc.BlueprintID,
		StatusCode:  statusCode,
		Metrics:     encoded,
		Signature:   sig,
	}, nil
}

// Beat builds and submits one heartbeat and waits for it to be mined.
func (a *Agent) Beat(ctx context.Context, svc types.HeartbeatService) (*gethtypes.Receipt, error) {
	service := strconv.FormatUint(svc.ServiceID, 10)
	p, err := a.Build(ctx, svc)
	if err != nil {
		metrics.HeartbeatsTotal.WithLabelValues(service, "failure").Inc()
		return nil, err
	}

	submission := uuid.New().String()
	log := logger.WithFields(logrus.Fields{
		"submission": submission,
		"service":    svc.ServiceID,
		"blueprint":  svc.BlueprintID,
		"statusCode": p.StatusCode,
	})
	log.Debug("submitting heartbeat")

	start := time.Now()
	receipt, err := a.sender.Send(ctx, "submitHeartbeat", func(opts *bind.TransactOpts) (*gethtypes.Transaction, error) {
		return a.registry.SubmitHeartbeat(opts, p.ServiceID, p.BlueprintID, p.StatusCode, p.Metrics, p.Signature)
	})
	if err != nil {
		metrics.HeartbeatsTotal.WithLabelValues(service, "failure").Inc()
		return receipt, fmt.Errorf("error submitting heartbeat %v for service %v: %w", submission, svc.ServiceID, err)
	}
	metrics.HeartbeatsTotal.WithLabelValues(service, "success").Inc()
	log.WithFields(logrus.Fields{"tx": receipt.TxHash.Hex(), "block": receipt.BlockNumber, "duration": time.Since(start)}).Info("heartbeat submitted")
	return receipt, nil
}

// Run beats for every service on its own interval until ctx is done.
func (a *Agent) Run(ctx context.Context, services []types.HeartbeatService) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, svc := range services {
		svc := svc
		interval := svc.Interval
		if interval <= 0 {
			interval = time.Duration(statusregistry.DefaultHeartbeatInterval) * time.Second
		}
		g.Go(func() error {
			ticker := time.NewTicker(interval)
			defer ticker.Stop()
			for {
				if _, err := a.Beat(ctx, svc); err != nil {
					logger.WithError(err).Error("heartbeat failed")
				}
				select {
				case <-ctx.Done():
					return nil
				case <-ticker.C:
				}
			}
		})
	}
	return g.Wait()
}
