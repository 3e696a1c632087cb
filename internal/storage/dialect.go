// ABOUTME: SQL dialects supported by the relational store
// ABOUTME: Selects driver, placeholder style, DSN format, and upsert syntax
package storage

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
)

// Dialect identifies a relational backend
type Dialect string

const (
	SQLite   Dialect = "sqlite"
	Postgres Dialect = "postgres"
	MySQL    Dialect = "mysql"
)

// ParseDialect validates a dialect name
func ParseDialect(name string) (Dialect, error) {
	switch d := Dialect(strings.ToLower(strings.TrimSpace(name))); d {
	case SQLite, Postgres, MySQL:
		return d, nil
	case "dolt", "mariadb":
		return MySQL, nil
	case "postgresql", "pgx":
		return Postgres, nil
	default:
		return "", fmt.Errorf("unsupported database driver %q (want sqlite, postgres, or mysql)", name)
	}
}

// DriverName returns the database/sql driver registered for the dialect
func (d Dialect) DriverName() string {
	switch d {
	case Postgres:
		return "pgx"
	case MySQL:
		return "mysql"
	default:
		return "sqlite"
	}
}

// Rebind rewrites ? placeholders into the dialect's placeholder style
func (d Dialect) Rebind(query string) string {
	if d != Postgres {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// upsertClause returns the conflict clause updating the given columns
func (d Dialect) upsertClause(key string, columns ...string) string {
	sets := make([]string, len(columns))
	for i, c := range columns {
		if d == MySQL {
			sets[i] = fmt.Sprintf("%s = VALUES(%s)", c, c)
		} else {
			sets[i] = fmt.Sprintf("%s = excluded.%s", c, c)
		}
	}
	if d == MySQL {
		return "ON DUPLICATE KEY UPDATE " + strings.Join(sets, ", ")
	}
	return fmt.Sprintf("ON CONFLICT (%s) DO UPDATE SET %s", key, strings.Join(sets, ", "))
}

// ConnParams describes a network database server
type ConnParams struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
}

// DSN builds a connection string for the dialect. For SQLite, Database is the file path.
func DSN(d Dialect, p ConnParams) (string, error) {
	switch d {
	case SQLite:
		if p.Database == "" {
			return "", fmt.Errorf("sqlite database path is required")
		}
		return p.Database + "?_pragma=foreign_keys(ON)&_pragma=journal_mode(WAL)", nil
	case Postgres:
		u := url.URL{
			Scheme: "postgres",
			Host:   net.JoinHostPort(p.Host, strconv.Itoa(p.Port)),
			Path:   "/" + p.Database,
		}
		if p.Password != "" {
			u.User = url.UserPassword(p.User, p.Password)
		} else if p.User != "" {
			u.User = url.User(p.User)
		}
		dsn := u.String()
		if _, err := pgconn.ParseConfig(dsn); err != nil {
			return "", fmt.Errorf("invalid postgres connection settings: %w", err)
		}
		return dsn, nil
	case MySQL:
		cfg := mysql.NewConfig()
		cfg.User = p.User
		cfg.Passwd = p.Password
		cfg.Net = "tcp"
		cfg.Addr = net.JoinHostPort(p.Host, strconv.Itoa(p.Port))
		cfg.DBName = p.Database
		cfg.ParseTime = true
		return cfg.FormatDSN(), nil
	default:
		return "", fmt.Errorf("unsupported dialect %q", d)
	}
}
