package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tangle-network/operator-status/types"
)

func TestParseServiceIDs(t *testing.T) {
	tests := []struct {
		in  string
		out []uint64
		err bool
	}{
		{"", []uint64{}, false},
		{"1", []uint64{1}, false},
		{"1,2", []uint64{1, 2}, false},
		{"1-2,4", []uint64{1, 2, 4}, false},
		{"1-4,3,6", []uint64{1, 2, 3, 4, 6}, false},
		{"3,3", []uint64{3}, false},
		{"x", []uint64{}, true},
		{"4-1", []uint64{}, true},
		{"1-2-3", []uint64{}, true},
	}
	for _, tt := range tests {
		out, err := ParseServiceIDs(tt.in)
		if len(out) != len(tt.out) {
			t.Errorf("wrong output length for input %v: %v != %v", tt.in, out, tt.out)
		}
		for i, v := range out {
			if v != tt.out[i] {
				t.Errorf("wrong output for input %v: %v", tt.in, tt.out)
			}
		}
		if (err != nil) != tt.err {
			t.Errorf("wrong error for input %v: %v", tt.in, tt.err)
		}
	}
}

func TestReadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	err := os.WriteFile(path, []byte(`
chain:
  name: tangle-testnet
  id: 3799
  endpoint: http://localhost:8545
registry:
  address: "0x00000000000000000000000000000000000000aa"
  firstBlock: 12
indexer:
  lookBack: 20
heartbeat:
  services:
    - serviceId: 1
      blueprintId: 2
      interval: 30s
      metrics:
        cpu: 40
`), 0o600)
	require.NoError(t, err)

	t.Setenv("CHAIN_ENDPOINT", "ws://node:8546")

	cfg := &types.Config{}
	require.NoError(t, ReadConfig(cfg, path))

	assert.Equal(t, uint64(3799), cfg.Chain.ID)
	assert.Equal(t, "ws://node:8546", cfg.Chain.Endpoint, "environment overrides the file")
	assert.Equal(t, uint64(12), cfg.Registry.FirstBlock)
	assert.Equal(t, uint64(20), cfg.Indexer.LookBack)
	assert.Equal(t, uint64(1000), cfg.Indexer.MaxFetch)
	assert.Equal(t, 5*time.Second, cfg.Indexer.PollInterval)
	require.Len(t, cfg.Heartbeat.Services, 1)
	assert.Equal(t, 30*time.Second, cfg.Heartbeat.Services[0].Interval)
	assert.Equal(t, uint64(40), cfg.Heartbeat.Services[0].Metrics["cpu"])
	assert.Equal(t, 50, cfg.WriterDatabase.MaxOpenConns)
	assert.Equal(t, 10, cfg.ReaderDatabase.MaxIdleConns)
}

func TestReadConfigDefaults(t *testing.T) {
	cfg := &types.Config{}
	require.NoError(t, ReadConfig(cfg, ""))
	assert.Equal(t, uint64(31337), cfg.Chain.ID)
	assert.Equal(t, "operator_status", cfg.WriterDatabase.Name)
	assert.Equal(t, "8080", cfg.Api.Port)
	assert.Equal(t, time.Minute, cfg.Keeper.Interval)
}

func TestReadConfigUnknownField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("bogus: 1\n"), 0o600))
	assert.Error(t, ReadConfig(&types.Config{}, path))
}

func TestLoadPrivateKey(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	want := crypto.PubkeyToAddress(key.PublicKey)

	got, err := LoadPrivateKey(hexutil.Encode(crypto.FromECDSA(key)), "", "")
	require.NoError(t, err)
	assert.Equal(t, want, crypto.PubkeyToAddress(got.PublicKey))

	dir := t.TempDir()
	ks := keystore.NewKeyStore(dir, keystore.LightScryptN, keystore.LightScryptP)
	acc, err := ks.ImportECDSA(key, "secret")
	require.NoError(t, err)

	got, err = LoadPrivateKey("", acc.URL.Path, "secret")
	require.NoError(t, err)
	assert.Equal(t, want, crypto.PubkeyToAddress(got.PublicKey))

	_, err = LoadPrivateKey("", acc.URL.Path, "wrong")
	assert.Error(t, err)

	_, err = LoadPrivateKey("", "", "")
	assert.Error(t, err)
}

func TestParseAddress(t *testing.T) {
	_, err := ParseAddress("0x1234")
	assert.Error(t, err)
	a, err := ParseAddress("0x00000000000000000000000000000000000000aA")
	require.NoError(t, err)
	assert.Equal(t, byte(0xaa), a[19])
}
