package main

import (
	"context"
	"flag"
	"math/big"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/sirupsen/logrus"

	"github.com/tangle-network/operator-status/contracts/statusregistry"
	"github.com/tangle-network/operator-status/heartbeat"
	"github.com/tangle-network/operator-status/metrics"
	"github.com/tangle-network/operator-status/txsender"
	"github.com/tangle-network/operator-status/types"
	"github.com/tangle-network/operator-status/utils"
	"github.com/tangle-network/operator-status/version"
)

func main() {
	configPath := flag.String("config", "", "Path to the config file, if empty string defaults will be used")
	once := flag.Bool("once", false, "Submit one heartbeat per service and exit")
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
	logrus.WithField("config", *configPath).WithField("version", version.Version).WithField("chainName", cfg.Chain.Name).Printf("starting heartbeat agent")

	if len(cfg.Heartbeat.Services) == 0 {
		logrus.Fatal("no heartbeat services configured")
	}

	key, err := utils.LoadPrivateKey(cfg.Heartbeat.PrivateKey, cfg.Heartbeat.KeystorePath, cfg.Heartbeat.KeystorePassword)
	if err != nil {
		logrus.Fatal(err)
	}

	client, err := ethclient.Dial(cfg.Chain.Endpoint)
	if err != nil {
		logrus.Fatalf("error dialing %v: %v", cfg.Chain.Endpoint, err)
	}
	defer client.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	chainID := new(big.Int).SetUint64(cfg.Chain.ID)
	if cfg.Chain.ID == 0 {
		if chainID, err = client.ChainID(ctx); err != nil {
			logrus.Fatalf("error reading chain id: %v", err)
		}
	}

	address, err := statusregistry.ResolveAddress(cfg.Registry.Address, chainID.Uint64())
	if err != nil {
		logrus.Fatal(err)
	}
	registry, err := statusregistry.NewOperatorStatusRegistryTransactor(address, client)
	if err != nil {
		logrus.Fatalf("error binding registry at %v: %v", address.Hex(), err)
	}
	sender, err := txsender.NewKeyed(client, key, chainID, txsender.Config{
		MaxRetries:     cfg.Heartbeat.MaxRetries,
		ReceiptTimeout: cfg.Heartbeat.ReceiptTimeout,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	var source heartbeat.MetricSource
	if cfg.Heartbeat.MetricsURL != "" {
		source = heartbeat.NewHTTPSource(cfg.Heartbeat.MetricsURL)
	}
	agent := heartbeat.NewAgent(key, registry, sender, source)
	logrus.WithField("operator", agent.Operator().Hex()).WithField("registry", address.Hex()).Infof("reporting for %v services", len(cfg.Heartbeat.Services))

	if *once {
		for _, svc := range cfg.Heartbeat.Services {
			if _, err := agent.Beat(ctx, svc); err != nil {
				logrus.Fatal(err)
			}
		}
		return
	}

	if cfg.Metrics.Enabled {
		go func() {
			logrus.Infof("serving metrics on %v", cfg.Metrics.Address)
			if err := metrics.Serve(cfg.Metrics.Address); err != nil {
				logrus.WithError(err).Fatal("error serving metrics")
			}
		}()
	}

	go func() {
		if err := agent.Run(ctx, cfg.Heartbeat.Services); err != nil {
			logrus.WithError(err).Error("heartbeat agent stopped")
		}
	}()

	utils.WaitForCtrlC()
	logrus.Println("exiting...")
}
