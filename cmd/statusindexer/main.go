package main

import (
	"context"
	"flag"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/sirupsen/logrus"

	"github.com/tangle-network/operator-status/cache"
	"github.com/tangle-network/operator-status/db"
	"github.com/tangle-network/operator-status/exporter"
	"github.com/tangle-network/operator-status/metrics"
	"github.com/tangle-network/operator-status/types"
	"github.com/tangle-network/operator-status/utils"
	"github.com/tangle-network/operator-status/version"
)

func main() {
	configPath := flag.String("config", "", "Path to the config file, if empty string defaults will be used")
	applyDbSchema := flag.Bool("apply-db-schema", false, "Apply the embedded db schema before indexing")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	if *debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	cfg := &types.Config{}
	err := utils.ReadConfig(cfg, *configPath)
	if err != nil {
		logrus.Fatalf("error reading config file: %v", err)
	}
	utils.Config = cfg
	logrus.WithField("config", *configPath).WithField("version", version.Version).WithField("chainName", cfg.Chain.Name).Printf("starting status indexer")

	if cfg.Chain.Endpoint == "" {
		logrus.Fatal("no chain endpoint provided")
	}

	if cfg.Metrics.Enabled {
		go func() {
			logrus.Infof("serving metrics on %v", cfg.Metrics.Address)
			if err := metrics.Serve(cfg.Metrics.Address); err != nil {
				logrus.WithError(err).Fatal("error serving metrics")
			}
		}()
	}

	db.MustInitDB(&cfg.WriterDatabase, &cfg.ReaderDatabase)
	defer db.ReaderDb.Close()
	defer db.WriterDb.Close()

	if *applyDbSchema {
		logrus.Infof("applying db schema")
		if err := db.ApplyEmbeddedDbSchema(-2); err != nil {
			logrus.Fatalf("error applying db schema: %v", err)
		}
	}

	cache.MustInitTieredCache(cfg.RedisCacheEndpoint)

	client, err := ethclient.Dial(cfg.Chain.Endpoint)
	if err != nil {
		logrus.Fatalf("error dialing %v: %v", cfg.Chain.Endpoint, err)
	}
	defer client.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if cfg.Chain.ID == 0 {
		chainID, err := client.ChainID(ctx)
		if err != nil {
			logrus.Fatalf("error reading chain id: %v", err)
		}
		cfg.Chain.ID = chainID.Uint64()
	}

	if err := exporter.Start(ctx, client); err != nil {
		logrus.Fatalf("error starting status exporter: %v", err)
	}

	utils.WaitForCtrlC()
	logrus.Println("exiting...")
}
