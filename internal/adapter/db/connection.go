package db

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"taskboard/internal/config"
)

const connectTimeout = 10 * time.Second

// DSN builds the driver DSN from conf. MYSQL_PARAMS is parsed by the driver, and
// parseTime is always forced on since rows scan into time.Time.
func DSN(conf *config.Config) (string, error) {
	base := "/"
	if conf.DbParams != "" {
		base += "?" + conf.DbParams
	}
	cfg, err := mysql.ParseDSN(base)
	if err != nil {
		return "", fmt.Errorf("parse mysql params: %w", err)
	}

	cfg.User = conf.DbUser
	cfg.Passwd = conf.DbPassword
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(conf.DbHost, conf.DbPort)
	cfg.DBName = conf.DbName
	cfg.ParseTime = true

	return cfg.FormatDSN(), nil
}

func ConnectDB(conf *config.Config) (*sqlx.DB, error) {
	dsn, err := DSN(conf)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	db, err := sqlx.ConnectContext(ctx, "mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("connect mysql %s: %w", conf.DbHost, err)
	}

	if conf.DbMaxOpenConns > 0 {
		db.SetMaxOpenConns(conf.DbMaxOpenConns)
	}
	if conf.DbMaxIdleConns > 0 {
		db.SetMaxIdleConns(conf.DbMaxIdleConns)
	}
	if conf.DbConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(conf.DbConnMaxLifetime)
	}

	zap.L().Info("connected to mysql",
		zap.String("host", conf.DbHost),
		zap.String("database", conf.DbName),
		zap.Int("max_open_conns", conf.DbMaxOpenConns),
	)
	return db, nil
}
