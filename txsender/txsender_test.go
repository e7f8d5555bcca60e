package txsender

import (
	"context"
	"errors"
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReceipts struct {
	mu       sync.Mutex
	misses   int
	status   uint64
	requests int
}

func (f *fakeReceipts) TransactionReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests++
	if f.requests <= f.misses {
		return nil, ethereum.NotFound
	}
	return &types.Receipt{Status: f.status, TxHash: hash, BlockNumber: big.NewInt(10)}, nil
}

var fastConfig = Config{MaxRetries: 3, RetryInterval: time.Millisecond, ReceiptTimeout: time.Second, PollInterval: time.Millisecond}

func testTx() *types.Transaction {
	return types.NewTx(&types.LegacyTx{Nonce: 1, Gas: 21000, GasPrice: big.NewInt(1)})
}

func TestSendRetriesThenWaits(t *testing.T) {
	backend := &fakeReceipts{misses: 2, status: types.ReceiptStatusSuccessful}
	s := New(backend, &bind.TransactOpts{From: common.Address{0x01}}, fastConfig)

	calls := 0
	receipt, err := s.Send(context.Background(), "test", func(opts *bind.TransactOpts) (*types.Transaction, error) {
		calls++
		assert.NotNil(t, opts.Context)
		assert.Equal(t, common.Address{0x01}, opts.From)
		if calls < 2 {
			return nil, errors.New("nonce too low")
		}
		return testTx(), nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, 3, backend.requests)
	assert.Equal(t, testTx().Hash(), receipt.TxHash)
}

func TestBackoffDoublesUpToCap(t *testing.T) {
	s := New(&fakeReceipts{}, &bind.TransactOpts{}, Config{RetryInterval: time.Second, MaxRetryInterval: 5 * time.Second})
	assert.Equal(t, time.Second, s.backoff(0))
	assert.Equal(t, 2*time.Second, s.backoff(1))
	assert.Equal(t, 4*time.Second, s.backoff(2))
	assert.Equal(t, 5*time.Second, s.backoff(3))
	assert.Equal(t, 5*time.Second, s.backoff(40))

	s = New(&fakeReceipts{}, &bind.TransactOpts{}, Config{RetryInterval: time.Minute})
	assert.Equal(t, time.Minute, s.cfg.MaxRetryInterval)
	assert.Equal(t, time.Minute, s.backoff(2))
}

func TestSendGivesUp(t *testing.T) {
	s := New(&fakeReceipts{}, &bind.TransactOpts{}, fastConfig)
	calls := 0
	_, err := s.Send(context.Background(), "test", func(*bind.TransactOpts) (*types.Transaction, error) {
		calls++
		return nil, errors.New("boom")
	})
	assert.Error(t, err)
	assert.Equal(t, 3, calls)
}

func TestSendReverted(t *testing.T) {
	s := New(&fakeReceipts{status: types.ReceiptStatusFailed}, &bind.TransactOpts{}, fastConfig)
	receipt, err := s.Send(context.Background(), "test", func(*bind.TransactOpts) (*types.Transaction, error) {
		return testTx(), nil
	})
	assert.ErrorIs(t, err, ErrReverted)
	require.NotNil(t, receipt)
}

func TestWaitMinedTimeout(t *testing.T) {
	cfg := fastConfig
	cfg.ReceiptTimeout = 20 * time.Millisecond
	s := New(&fakeReceipts{misses: 1 << 30}, &bind.TransactOpts{}, cfg)
	_, err := s.WaitMined(context.Background(), common.Hash{0x01})
	assert.Error(t, err)

	s = New(&fakeReceipts{misses: 1 << 30}, &bind.TransactOpts{}, Config{ReceiptTimeout: time.Hour, PollInterval: time.Hour})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = s.WaitMined(ctx, common.Hash{0x01})
	assert.ErrorIs(t, err, context.Canceled)
}
