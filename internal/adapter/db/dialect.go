package db

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/pressly/goose/v3"
)

type dialect struct {
	driver       string
	migrations   string
	placeholder  sq.PlaceholderFormat
	goose        goose.Dialect
	hasReturning bool
}

var (
	postgresDialect = dialect{
		driver:       "pgx",
		migrations:   "migrations/postgres",
		placeholder:  sq.Dollar,
		goose:        goose.DialectPostgres,
		hasReturning: true,
	}
	mysqlDialect = dialect{
		driver:      "mysql",
		migrations:  "migrations/mysql",
		placeholder: sq.Question,
		goose:       goose.DialectMySQL,
	}
)

func dialectFor(driverName string) dialect {
	if driverName == mysqlDialect.driver {
		return mysqlDialect
	}
	return postgresDialect
}

func (d dialect) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(d.placeholder)
}
