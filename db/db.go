package db

import (
	"embed"
	"fmt"
	"net"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	"github.com/sirupsen/logrus"

	"github.com/tangle-network/operator-status/types"
)

//go:embed migrations/*.sql
var EmbedMigrations embed.FS

// WriterDb and ReaderDb point at the status database
var WriterDb *sqlx.DB
var ReaderDb *sqlx.DB

var logger = logrus.StandardLogger().WithField("module", "db")

const DefaultQueryLimit = 100
const MaxQueryLimit = 1000

func dbTestConnection(dbConn *sqlx.DB, dataBaseName string) {
	// The golang sql driver does not properly implement PingContext
	// therefore we use a timer to catch db connection timeouts
	dbConnectionTimeout := time.NewTimer(15 * time.Second)

	go func() {
		<-dbConnectionTimeout.C
		logger.Fatalf("timeout while connecting to %s", dataBaseName)
	}()

	err := dbConn.Ping()
	if err != nil {
		logger.Fatalf("unable to Ping %s: %s", dataBaseName, err)
	}

	dbConnectionTimeout.Stop()
}

func connect(cfg *types.DatabaseConfig, role string) *sqlx.DB {
	sslParam := "sslmode=disable"
	if cfg.SSL {
		sslParam = "sslmode=require"
	}

	logger.Infof("connecting to postgres database %s:%s/%s as %s with %d/%d max open/idle connections", cfg.Host, cfg.Port, cfg.Name, role, cfg.MaxOpenConns, cfg.MaxIdleConns)
	conn, err := sqlx.Open("pgx", fmt.Sprintf("postgres://%s:%s@%s/%s?%s", cfg.Username, cfg.Password, net.JoinHostPort(cfg.Host, cfg.Port), cfg.Name, sslParam))
	if err != nil {
		logger.WithError(err).Fatalf("error getting %s database connection", role)
	}

	dbTestConnection(conn, fmt.Sprintf("database %v:%v/%v", cfg.Host, cfg.Port, cfg.Name))
	conn.SetConnMaxIdleTime(time.Second * 30)
	conn.SetConnMaxLifetime(time.Minute)
	conn.SetMaxOpenConns(cfg.MaxOpenConns)
	conn.SetMaxIdleConns(cfg.MaxIdleConns)
	return conn
}

// MustInitDB opens the writer and reader pools. Without a reader host the
// writer pool serves reads as well.
func MustInitDB(writer *types.DatabaseConfig, reader *types.DatabaseConfig) {
	WriterDb = connect(writer, "writer")
	if reader == nil || reader.Host == "" {
		ReaderDb = WriterDb
		return
	}
	ReaderDb = connect(reader, "reader")
}

// ApplyEmbeddedDbSchema migrates up to version; -2 applies everything and
// -1 applies the next migration only.
func ApplyEmbeddedDbSchema(version int64) error {
	goose.SetBaseFS(EmbedMigrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	switch version {
	case -2:
		return goose.Up(WriterDb.DB, "migrations")
	case -1:
		return goose.UpByOne(WriterDb.DB, "migrations")
	default:
		return goose.UpTo(WriterDb.DB, "migrations", version)
	}
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return DefaultQueryLimit
	}
	if limit > MaxQueryLimit {
		return MaxQueryLimit
	}
	return limit
}
