package main

import (
	"flag"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/tangle-network/operator-status/cache"
	"github.com/tangle-network/operator-status/db"
	"github.com/tangle-network/operator-status/handlers"
	"github.com/tangle-network/operator-status/metrics"
	"github.com/tangle-network/operator-status/types"
	"github.com/tangle-network/operator-status/utils"
	"github.com/tangle-network/operator-status/version"
)

func main() {
	configPath := flag.String("config", "", "Path to the config file, if empty string defaults will be used")
	flag.Parse()

	cfg := &types.Config{}
	err := utils.ReadConfig(cfg, *configPath)
	if err != nil {
		logrus.Fatalf("error reading config file: %v", err)
	}
	utils.Config = cfg
	logrus.WithField("config", *configPath).WithField("version", version.Version).WithField("chainName", cfg.Chain.Name).Printf("starting api")

	db.MustInitDB(&cfg.WriterDatabase, &cfg.ReaderDatabase)
	defer db.ReaderDb.Close()
	defer db.WriterDb.Close()

	cache.MustInitTieredCache(cfg.RedisCacheEndpoint)

	if cfg.Metrics.Enabled {
		go func() {
			logrus.Infof("serving metrics on %v", cfg.Metrics.Address)
			if err := metrics.Serve(cfg.Metrics.Address); err != nil {
				logrus.WithError(err).Fatal("error serving metrics")
			}
		}()
	}

	srv := &http.Server{
		Addr:         cfg.Api.Host + ":" + cfg.Api.Port,
		WriteTimeout: time.Second * 15,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      handlers.NewRouter(),
	}

	logrus.Printf("http server listening on %v", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil {
			logrus.Println(err)
		}
	}()

	utils.WaitForCtrlC()

	logrus.Println("exiting...")
}
