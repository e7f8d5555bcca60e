// Package txsender sends contract transactions with retries and waits for
// their receipts.
package txsender

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/sirupsen/logrus"

	"github.com/tangle-network/operator-status/metrics"
)

var logger = logrus.StandardLogger().WithField("module", "txsender")

var ErrReverted = errors.New("transaction reverted")

// ReceiptBackend is the part of an ethclient the sender polls.
type ReceiptBackend interface {
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

type Config struct {
	MaxRetries int
	// RetryInterval is the first wait between attempts, it doubles up to
	// MaxRetryInterval
	RetryInterval    time.Duration
	MaxRetryInterval time.Duration
	ReceiptTimeout   time.Duration
	PollInterval     time.Duration
}

type Sender struct {
	backend ReceiptBackend
	opts    bind.TransactOpts
	cfg     Config
}

func New(backend ReceiptBackend, opts *bind.TransactOpts, cfg Config) *Sender {
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}
	if cfg.RetryInterval == 0 {
		cfg.RetryInterval = 2 * time.Second
	}
	if cfg.MaxRetryInterval < cfg.RetryInterval {
		cfg.MaxRetryInterval = 30 * time.Second
		if cfg.MaxRetryInterval < cfg.RetryInterval {
			cfg.MaxRetryInterval = cfg.RetryInterval
		}
	}
	if cfg.ReceiptTimeout == 0 {
		cfg.ReceiptTimeout = 2 * time.Minute
	}
	if cfg.PollInterval == 0 {
		cfg.PollInterval = time.Second
	}
	return &Sender{backend: backend, opts: *opts, cfg: cfg}
}

// NewKeyed builds a sender signing with key for chainID.
func NewKeyed(backend ReceiptBackend, key *ecdsa.PrivateKey, chainID *big.Int, cfg Config) (*Sender, error) {
	opts, err := bind.NewKeyedTransactorWithChainID(key, chainID)
	if err != nil {
		return nil, fmt.Errorf("error creating transactor: %w", err)
	}
	return New(backend, opts, cfg), nil
}

func (s *Sender) From() common.Address {
	return s.opts.From
}

// Send calls fn until it returns a transaction or the retries are used up,
// backing off exponentially between attempts, then waits for the receipt. A receipt with failed status is returned
// together with ErrReverted.
func (s *Sender) Send(ctx context.Context, method string, fn func(*bind.TransactOpts) (*types.Transaction, error)) (*types.Receipt, error) {
	start := time.Now()
	var (
		tx  *types.Transaction
		err error
	)
	for attempt := 0; attempt < s.cfg.MaxRetries; attempt++ {
		opts := s.opts
		opts.Context = ctx
		tx, err = fn(&opts)
		if err == nil {
			break
		}
		logger.WithError(err).WithFields(logrus.Fields{"method": method, "attempt": attempt + 1}).Warn("failed to send transaction")
		if attempt == s.cfg.MaxRetries-1 {
			metrics.TxTotal.WithLabelValues(method, "failure").Inc()
			return nil, fmt.Errorf("max retries exceeded sending %v: %w", method, err)
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(s.backoff(attempt)):
		}
	}

	receipt, err := s.WaitMined(ctx, tx.Hash())
	if err != nil {
		metrics.TxTotal.WithLabelValues(method, "failure").Inc()
		return nil, err
	}
	metrics.TxConfirmationDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
	if receipt.Status != types.ReceiptStatusSuccessful {
		metrics.TxTotal.WithLabelValues(method, "reverted").Inc()
		return receipt, fmt.Errorf("%w: %v in block %v", ErrReverted, tx.Hash().Hex(), receipt.BlockNumber)
	}
	metrics.TxTotal.WithLabelValues(method, "success").Inc()
	logger.WithFields(logrus.Fields{"method": method, "tx": tx.Hash().Hex(), "block": receipt.BlockNumber, "duration": time.Since(start)}).Info("transaction mined")
	return receipt, nil
}

// backoff returns the wait after the given zero based attempt.
func (s *Sender) backoff(attempt int) time.Duration {
	wait := s.cfg.RetryInterval
	for i := 0; i < attempt; i++ {
		wait *= 2
		if wait >= s.cfg.MaxRetryInterval {
			return s.cfg.MaxRetryInterval
		}
	}
	return wait
}

// WaitMined polls for the receipt of hash until it exists or the receipt
// timeout passes.
func (s *Sender) WaitMined(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	ticker := time.NewTicker(s.cfg.PollInterval)
	defer ticker.Stop()

	timeout := time.After(s.cfg.ReceiptTimeout)
	for {
		receipt, err := s.backend.TransactionReceipt(ctx, hash)
		if err == nil && receipt != nil {
			return receipt, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timeout:
			return nil, fmt.Errorf("timed out waiting for receipt of %v", hash.Hex())
		case <-ticker.C:
		}
	}
}
