package utils

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/tangle-network/operator-status/config"
	"github.com/tangle-network/operator-status/types"
)

// Config is the globally accessible configuration
var Config *types.Config

// WaitForCtrlC will block/wait until a control-c or SIGTERM is received
func WaitForCtrlC() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c
}

// ReadConfig will process a configuration. An empty path reads the embedded
// devnet defaults. The environment overrides either.
func ReadConfig(cfg *types.Config, path string) error {
	var err error
	if path == "" {
		err = decodeConfig(cfg, strings.NewReader(config.DefaultConfigYml))
	} else {
		err = readConfigFile(cfg, path)
	}
	if err != nil {
		return err
	}
	if err := readConfigEnv(cfg); err != nil {
		return err
	}
	setConfigDefaults(cfg)
	return nil
}

func readConfigFile(cfg *types.Config, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("error opening config file %v: %w", path, err)
	}
	defer f.Close()

	if err := decodeConfig(cfg, f); err != nil {
		return fmt.Errorf("error decoding config file %v: %w", path, err)
	}
	return nil
}

func decodeConfig(cfg *types.Config, r io.Reader) error {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	return decoder.Decode(cfg)
}

func readConfigEnv(cfg *types.Config) error {
	return envconfig.Process("", cfg)
}

func setConfigDefaults(cfg *types.Config) {
	if cfg.Indexer.LookBack == 0 {
		cfg.Indexer.LookBack = 100
	}
	if cfg.Indexer.MaxFetch == 0 {
		cfg.Indexer.MaxFetch = 1000
	}
	if cfg.Indexer.PollInterval == 0 {
		cfg.Indexer.PollInterval = 5 * time.Second
	}
	if cfg.Indexer.UptimePoints == 0 {
		cfg.Indexer.UptimePoints = 1
	}
	if cfg.Heartbeat.MaxRetries == 0 {
		cfg.Heartbeat.MaxRetries = 3
	}
	if cfg.Heartbeat.ReceiptTimeout == 0 {
		cfg.Heartbeat.ReceiptTimeout = 2 * time.Minute
	}
	if cfg.Keeper.Interval == 0 {
		cfg.Keeper.Interval = time.Minute
	}
	if cfg.Keeper.Concurrency == 0 {
		cfg.Keeper.Concurrency = 4
	}
	if cfg.Api.Port == "" {
		cfg.Api.Port = "8080"
	}
	if cfg.Metrics.Address == "" {
		cfg.Metrics.Address = ":9090"
	}
	for _, db := range []*types.DatabaseConfig{&cfg.WriterDatabase, &cfg.ReaderDatabase} {
		if db.MaxOpenConns == 0 {
			db.MaxOpenConns = 50
		}
		if db.MaxIdleConns == 0 {
			db.MaxIdleConns = 10
		}
		if db.MaxOpenConns < db.MaxIdleConns {
			db.MaxIdleConns = db.MaxOpenConns
		}
	}
}

// ParseAddress parses a 0x-prefixed hex address.
func ParseAddress(s string) (common.Address, error) {
	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("invalid address %q", s)
	}
	return common.HexToAddress(s), nil
}

// ParseServiceIDs parses a string of comma separated values and/or ranges into a sorted slice of unique service ids (e.g. "1,4,7,6-9" -> []uint64{1,4,6,7,8,9}).
func ParseServiceIDs(ranges string) ([]uint64, error) {
	res := []uint64{}
	if ranges == "" {
		return res, nil
	}
	for _, s := range strings.Split(ranges, ",") {
		ss := strings.Split(strings.TrimSpace(s), "-")
		if len(ss) == 2 {
			a, err := strconv.ParseUint(ss[0], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid ranges: %v: %w", ranges, err)
			}
			b, err := strconv.ParseUint(ss[1], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid ranges: %v: %w", ranges, err)
			}
			if b < a {
				return nil, fmt.Errorf("invalid ranges: %v", ranges)
			}
			for i := a; i <= b; i++ {
				res = append(res, i)
			}
			continue
		}
		if len(ss) > 2 {
			return nil, fmt.Errorf("invalid ranges: %v", ranges)
		}
		u64, err := strconv.ParseUint(ss[0], 10, 64)
		if err != nil {
			return nil, err
		}
		res = append(res, u64)
	}
	return sortedUniqueUint64(res), nil
}

func sortedUniqueUint64(arr []uint64) []uint64 {
	if len(arr) <= 1 {
		return arr
	}

	sort.Slice(arr, func(i, j int) bool {
		return arr[i] < arr[j]
	})

	result := make([]uint64, 1, len(arr))
	result[0] = arr[0]
	for i := 1; i < len(arr); i++ {
		if arr[i-1] != arr[i] {
			result = append(result, arr[i])
		}
	}

	return result
}
