package exporter

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/sirupsen/logrus"

	"github.com/tangle-network/operator-status/contracts/statusregistry"
	"github.com/tangle-network/operator-status/db"
	"github.com/tangle-network/operator-status/status"
	"github.com/tangle-network/operator-status/utils"
)

var logger = logrus.StandardLogger().WithField("module", "exporter")

// SeedReplica loads the persisted configs and operator statuses so the
// replica continues where the last run stopped.
func SeedReplica(ctx context.Context, replica *status.Registry) error {
	configs, err := db.GetHeartbeatConfigs(ctx)
	if err != nil {
		return fmt.Errorf("error loading heartbeat configs: %w", err)
	}
	for _, cfg := range configs {
		replica.LoadConfig(cfg.ServiceID, status.HeartbeatConfig{
			Interval:      cfg.Interval,
			MaxMissed:     cfg.MaxMissed,
			CustomMetrics: cfg.CustomMetrics,
		})
	}
	rows, err := db.GetAllOperatorStatuses(ctx)
	if err != nil {
		return fmt.Errorf("error loading operator statuses: %w", err)
	}
	for _, row := range rows {
		replica.LoadStatus(row)
	}
	logger.Infof("seeded status replica with %v configs and %v operators", len(configs), len(rows))
	return nil
}

// Start will start the export of registry logs into the database.
func Start(ctx context.Context, client *ethclient.Client) error {
	cfg := utils.Config
	address, err := statusregistry.ResolveAddress(cfg.Registry.Address, cfg.Chain.ID)
	if err != nil {
		return err
	}

	// the replica only folds events here, so no core address is needed
	replica := status.NewRegistry(status.SystemClock{}, common.Address{})
	if err := SeedReplica(ctx, replica); err != nil {
		return err
	}

	exp, err := NewStatusExporter(client, DbStore, replica, Options{
		ChainID:      cfg.Chain.ID,
		Address:      address,
		FirstBlock:   cfg.Registry.FirstBlock,
		LookBack:     cfg.Indexer.LookBack,
		MaxFetch:     cfg.Indexer.MaxFetch,
		PollInterval: cfg.Indexer.PollInterval,
		UptimePoints: cfg.Indexer.UptimePoints,
	})
	if err != nil {
		return err
	}
	go exp.Start(ctx)
	return nil
}
