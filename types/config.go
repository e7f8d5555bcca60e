package types

import "time"

// Config is the configuration shared by every binary in this repository.
type Config struct {
	Chain struct {
		Name     string `yaml:"name" envconfig:"CHAIN_NAME"`
		ID       uint64 `yaml:"id" envconfig:"CHAIN_ID"`
		Endpoint string `yaml:"endpoint" envconfig:"CHAIN_ENDPOINT"`
	} `yaml:"chain"`
	Registry struct {
		Address    string `yaml:"address" envconfig:"REGISTRY_ADDRESS"`
		FirstBlock uint64 `yaml:"firstBlock" envconfig:"REGISTRY_FIRST_BLOCK"`
	} `yaml:"registry"`
	WriterDatabase     DatabaseConfig `yaml:"writerDatabase" envconfig:"WRITER"`
	ReaderDatabase     DatabaseConfig `yaml:"readerDatabase" envconfig:"READER"`
	RedisCacheEndpoint string         `yaml:"redisCacheEndpoint" envconfig:"REDIS_CACHE_ENDPOINT"`
	Indexer            struct {
		Enabled      bool          `yaml:"enabled" envconfig:"INDEXER_ENABLED"`
		LookBack     uint64        `yaml:"lookBack" envconfig:"INDEXER_LOOKBACK"`
		MaxFetch     uint64        `yaml:"maxFetch" envconfig:"INDEXER_MAX_FETCH"`
		PollInterval time.Duration `yaml:"pollInterval" envconfig:"INDEXER_POLL_INTERVAL"`
		UptimePoints uint64        `yaml:"uptimePoints" envconfig:"INDEXER_UPTIME_POINTS"`
	} `yaml:"indexer"`
	Heartbeat struct {
		PrivateKey       string             `yaml:"privateKey" envconfig:"HEARTBEAT_PRIVATE_KEY"`
		KeystorePath     string             `yaml:"keystorePath" envconfig:"HEARTBEAT_KEYSTORE_PATH"`
		KeystorePassword string             `yaml:"keystorePassword" envconfig:"HEARTBEAT_KEYSTORE_PASSWORD"`
		MetricsURL       string             `yaml:"metricsUrl" envconfig:"HEARTBEAT_METRICS_URL"`
		MaxRetries       int                `yaml:"maxRetries" envconfig:"HEARTBEAT_MAX_RETRIES"`
		ReceiptTimeout   time.Duration      `yaml:"receiptTimeout" envconfig:"HEARTBEAT_RECEIPT_TIMEOUT"`
		Services         []HeartbeatService `yaml:"services" ignored:"true"`
	} `yaml:"heartbeat"`
	Keeper struct {
		PrivateKey     string        `yaml:"privateKey" envconfig:"KEEPER_PRIVATE_KEY"`
		Interval       time.Duration `yaml:"interval" envconfig:"KEEPER_INTERVAL"`
		Concurrency    int           `yaml:"concurrency" envconfig:"KEEPER_CONCURRENCY"`
		Services       []uint64      `yaml:"services" envconfig:"KEEPER_SERVICES"`
		ReportSlashing bool          `yaml:"reportSlashing" envconfig:"KEEPER_REPORT_SLASHING"`
	} `yaml:"keeper"`
	Api struct {
		Host string `yaml:"host" envconfig:"API_HOST"`
		Port string `yaml:"port" envconfig:"API_PORT"`
	} `yaml:"api"`
	Metrics struct {
		Enabled bool   `yaml:"enabled" envconfig:"METRICS_ENABLED"`
		Address string `yaml:"address" envconfig:"METRICS_ADDRESS"`
	} `yaml:"metrics"`
}

// HeartbeatService is one service the heartbeat agent reports for.
type HeartbeatService struct {
	ServiceID   uint64            `yaml:"serviceId"`
	BlueprintID uint64            `yaml:"blueprintId"`
	Interval    time.Duration     `yaml:"interval"`
	Metrics     map[string]uint64 `yaml:"metrics"`
}

type DatabaseConfig struct {
	Username     string `yaml:"user" envconfig:"DB_USERNAME"`
	Password     string `yaml:"password" envconfig:"DB_PASSWORD"`
	Name         string `yaml:"name" envconfig:"DB_NAME"`
	Host         string `yaml:"host" envconfig:"DB_HOST"`
	Port         string `yaml:"port" envconfig:"DB_PORT"`
	MaxOpenConns int    `yaml:"maxOpenConns" envconfig:"DB_MAX_OPEN_CONNS"`
	MaxIdleConns int    `yaml:"maxIdleConns" envconfig:"DB_MAX_IDLE_CONNS"`
	SSL          bool   `yaml:"ssl" envconfig:"DB_SSL"`
}
