package database

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"bookstore_backend/internals/configs"
)

type Driver string

const (
	DriverMongo    Driver = "mongodb"
	DriverPostgres Driver = "postgres"
	DriverSQLite   Driver = "sqlite"
	DriverMemory   Driver = "memory"
)

const defaultDBName = "bookstore"

// Connection is the process-wide database handle. Mongo is set for
// DriverMongo, SQL for DriverPostgres and DriverSQLite.
type Connection struct {
	Driver Driver
	Mongo  *mongo.Database
	SQL    *gorm.DB

	client *mongo.Client
}

// DetectDriver picks the backend from the connection string scheme.
func DetectDriver(rawURL string) (Driver, error) {
	name, err := configs.DatabaseScheme(rawURL)
	if err != nil {
		return "", err
	}
	return Driver(name), nil
}

// SQLitePath strips the scheme: "sqlite://data/bookstore.db" opens
// data/bookstore.db, "sqlite://:memory:" an in-process database.
func SQLitePath(rawURL string) string {
	_, path, _ := strings.Cut(strings.TrimSpace(rawURL), "://")
	return path
}

// MongoDBName resolves the database name: DB_NAME, else the url path,
// else "bookstore".
func MongoDBName(rawURL, override string) string {
	if override != "" {
		return override
	}
	if u, err := url.Parse(rawURL); err == nil {
		if name := strings.Trim(u.Path, "/"); name != "" {
			return name
		}
	}
	return defaultDBName
}

// Connect opens the connection and verifies it with a ping.
func Connect(ctx context.Context, cfg configs.Config, log *zap.SugaredLogger) (*Connection, error) {
	driver, err := DetectDriver(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	log.Infow("🔌 Memulai koneksi ke database...", "driver", driver, "url", redact(cfg.DatabaseURL))

	conn := &Connection{Driver: driver}
	switch driver {
	case DriverMongo:
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.DatabaseURL))
		if err != nil {
			return nil, fmt.Errorf("mongo connect: %w", err)
		}
		conn.client = client
		conn.Mongo = client.Database(MongoDBName(cfg.DatabaseURL, cfg.DBName))

	case DriverPostgres:
		db, err := gorm.Open(postgres.New(postgres.Config{
			DSN:                  cfg.DatabaseURL,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			Logger: configs.NewGormLogger(log),
		})
		if err != nil {
			return nil, fmt.Errorf("postgres connect: %w", err)
		}
		conn.SQL = db
		conn.TunePool(log)

	case DriverSQLite:
		db, err := gorm.Open(sqlite.Open(SQLitePath(cfg.DatabaseURL)), &gorm.Config{
			Logger: configs.NewGormLogger(log),
		})
		if err != nil {
			return nil, fmt.Errorf("sqlite open: %w", err)
		}
		conn.SQL = db
		conn.TunePool(log)
	}

	if err := conn.Ping(ctx); err != nil {
		_ = conn.Close(context.Background())
		return nil, fmt.Errorf("ping %s: %w", driver, err)
	}
	log.Infow("✅ Database terkoneksi", "driver", driver)
	return conn, nil
}

func (c *Connection) TunePool(log *zap.SugaredLogger) {
	if c.SQL == nil {
		return
	}
	sqlDB, err := c.SQL.DB()
	if err != nil {
		log.Warnw("⚠️ Gagal mengatur pool koneksi", "error", err)
		return
	}
	if c.Driver == DriverSQLite {
		// satu writer; ":memory:" juga hanya hidup di satu koneksi
		sqlDB.SetMaxOpenConns(1)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

func (c *Connection) Ping(ctx context.Context) error {
	switch c.Driver {
	case DriverMongo:
		return c.client.Ping(ctx, nil)
	case DriverPostgres, DriverSQLite:
		sqlDB, err := c.SQL.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	default:
		return nil
	}
}

// Close releases the underlying connections.
func (c *Connection) Close(ctx context.Context) error {
	var errs []error
	if c.client != nil {
		errs = append(errs, c.client.Disconnect(ctx))
	}
	if c.SQL != nil {
		if sqlDB, err := c.SQL.DB(); err == nil {
			errs = append(errs, sqlDB.Close())
		}
	}
	return errors.Join(errs...)
}

// redact hides the password of a connection string for logging.
func redact(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.User == nil {
		return rawURL
	}
	return u.Redacted()
}
