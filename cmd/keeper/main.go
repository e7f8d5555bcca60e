package main

import (
	"context"
	"flag"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"

	"github.com/tangle-network/operator-status/contracts/statusregistry"
	"github.com/tangle-network/operator-status/keeper"
	"github.com/tangle-network/operator-status/metrics"
	"github.com/tangle-network/operator-status/ratelimit"
	"github.com/tangle-network/operator-status/status"
	"github.com/tangle-network/operator-status/txsender"
	"github.com/tangle-network/operator-status/types"
	"github.com/tangle-network/operator-status/utils"
	"github.com/tangle-network/operator-status/version"
)

func main() {
	configPath := flag.String("config", "", "Path to the config file, if empty string defaults will be used")
	services := flag.String("services", "", "Comma separated service ids or ranges to watch (e.g. 1,4,6-9), overrides the config")
	once := flag.Bool("once", false, "Run a single round and exit")
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
	logrus.WithField("config", *configPath).WithField("version", version.Version).WithField("chainName", cfg.Chain.Name).Printf("starting keeper")

	if *services != "" {
		cfg.Keeper.Services, err = utils.ParseServiceIDs(*services)
		if err != nil {
			logrus.Fatalf("error parsing services: %v", err)
		}
	}
	if len(cfg.Keeper.Services) == 0 {
		logrus.Fatal("no services to watch")
	}

	key, err := utils.LoadPrivateKey(cfg.Keeper.PrivateKey, "", "")
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
	registry, err := statusregistry.NewOperatorStatusRegistry(address, client)
	if err != nil {
		logrus.Fatalf("error binding registry at %v: %v", address.Hex(), err)
	}
	sender, err := txsender.NewKeyed(client, key, chainID, txsender.Config{})
	if err != nil {
		logrus.Fatal(err)
	}

	var rdc *redis.Client
	if cfg.RedisCacheEndpoint != "" {
		rdc = redis.NewClient(&redis.Options{
			Addr:        cfg.RedisCacheEndpoint,
			ReadTimeout: time.Second * 20,
		})
		defer rdc.Close()
	}
	limiter := ratelimit.NewSlashLimiter(rdc, chainID.Uint64(), time.Duration(statusregistry.SlashAlertCooldown)*time.Second)
	if rdc != nil {
		go limiter.Run(ctx, 10*time.Second)
	}

	tangleCore, err := registry.TangleCore(nil)
	if err != nil {
		logrus.Warnf("error reading tangle core address: %v", err)
		tangleCore = common.Address{}
	}
	replica := status.NewRegistry(status.SystemClock{}, tangleCore)

	k := keeper.New(registry, sender, limiter, replica, keeper.Options{
		Services:       cfg.Keeper.Services,
		Interval:       cfg.Keeper.Interval,
		Concurrency:    cfg.Keeper.Concurrency,
		ReportSlashing: cfg.Keeper.ReportSlashing,
	})
	logrus.WithField("keeper", sender.From().Hex()).WithField("registry", address.Hex()).Infof("watching %v services", len(cfg.Keeper.Services))

	if *once {
		if err := k.RunOnce(ctx); err != nil {
			logrus.Fatal(err)
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

	go k.Start(ctx)

	utils.WaitForCtrlC()
	logrus.Println("exiting...")
}
