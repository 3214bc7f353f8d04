package db

import (
	"fmt"
	"net"
	"net/url"
	"time"

	"github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"todoboard/internal/config"
)

func ConnectDB(conf *config.Config) (*sqlx.DB, error) {
	driverName, dsn, err := DataSource(conf)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Connect(driverName, dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(conf.DbMaxOpenConns)
	db.SetMaxIdleConns(conf.DbMaxIdleConns)
	db.SetConnMaxLifetime(conf.DbConnMaxLifetime)

	return db, nil
}

// DataSource returns the database/sql driver name and DSN for the configured store.
func DataSource(conf *config.Config) (string, string, error) {
	switch conf.DbDriver {
	case config.DriverPostgres:
		return postgresDialect.driver, postgresDSN(conf), nil
	case config.DriverMySQL:
		dsn, err := mysqlDSN(conf)
		if err != nil {
			return "", "", err
		}
		return mysqlDialect.driver, dsn, nil
	default:
		return "", "", fmt.Errorf("unsupported database driver %q", conf.DbDriver)
	}
}

func postgresDSN(conf *config.Config) string {
	query, _ := url.ParseQuery(conf.DbParams)
	if query == nil {
		query = url.Values{}
	}
	query.Set("sslmode", conf.DbSSLMode)

	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(conf.DbUser, conf.DbPassword),
		Host:     net.JoinHostPort(conf.DbHost, conf.DbPort),
		Path:     "/" + conf.DbName,
		RawQuery: query.Encode(),
	}
	return dsn.String()
}

func mysqlDSN(conf *config.Config) (string, error) {
	cfg := mysql.NewConfig()
	cfg.User = conf.DbUser
	cfg.Passwd = conf.DbPassword
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(conf.DbHost, conf.DbPort)
	cfg.DBName = conf.DbName
	cfg.ParseTime = true
	cfg.Loc = time.UTC
	// Report matched rows so an update that changes nothing is not mistaken for a missing todo.
	cfg.ClientFoundRows = true
	cfg.TLSConfig = mysqlTLSMode(conf.DbSSLMode)

	if conf.DbParams != "" {
		params, err := url.ParseQuery(conf.DbParams)
		if err != nil {
			return "", fmt.Errorf("parse DB_PARAMS: %w", err)
		}
		cfg.Params = make(map[string]string, len(params))
		for key := range params {
			cfg.Params[key] = params.Get(key)
		}
	}

	return cfg.FormatDSN(), nil
}

func mysqlTLSMode(sslMode string) string {
	switch sslMode {
	case "require":
		return "skip-verify"
	case "verify-full":
		return "true"
	case "prefer":
		return "preferred"
	default:
		return "false"
	}
}
