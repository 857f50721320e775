package postgres

//nolint:revive
import (
	"agency/config"
	"net"
	"net/url"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	driverName         = "postgres"
	defaultSSLMode     = "disable"
	maxIdleConnections = 10
	maxOpenConnections = 10
	connMaxLifetime    = 30 * time.Minute
)

// Connection splits reads and writes so a replica can serve the availability lookups.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

// Endpoint is one database server as configured under DB_POSTGRES_READ_* or DB_POSTGRES_WRITE_*.
type Endpoint struct {
	Host     string
	Port     string
	Username string
	Password string
	Name     string
	Timezone string
	SSLMode  string
}

// URL builds a lib/pq connection URL for the prefixed database name. Credentials are escaped and
// extra query parameters are appended.
func (e Endpoint) URL(prefix string, extra url.Values) string {
	query := url.Values{}
	query.Set("sslmode", e.SSLMode)

	if e.SSLMode == "" {
		query.Set("sslmode", defaultSSLMode)
	}

	if e.Timezone != "" {
		query.Set("timezone", e.Timezone)
	}

	for key, values := range extra {
		query[key] = values
	}

	dsn := url.URL{
		Scheme:   driverName,
		User:     url.UserPassword(e.Username, e.Password),
		Host:     net.JoinHostPort(e.Host, e.Port),
		Path:     "/" + prefix + e.Name,
		RawQuery: query.Encode(),
	}

	return dsn.String()
}

// New opens both pools. A pool whose every attempt failed is left nil.
func New(config *config.Config) *Connection {
	pg := config.DB.Postgres

	return &Connection{
		Read:  Open("read", Endpoint(pg.Read).URL(pg.Prefix, nil), pg.MaxRetry, pg.RetryWaitTime),
		Write: Open("write", Endpoint(pg.Write).URL(pg.Prefix, nil), pg.MaxRetry, pg.RetryWaitTime),
	}
}

// Close releases both pools.
func (c *Connection) Close() {
	for _, db := range []*sqlx.DB{c.Read, c.Write} {
		if db == nil {
			continue
		}

		if err := db.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close database connection")
		}
	}
}

// Open connects with up to maxRetry attempts, waiting waitSeconds between them.
func Open(name, dsn string, maxRetry, waitSeconds int) *sqlx.DB {
	for attempt := 1; attempt <= max(maxRetry, 1); attempt++ {
		db, err := sqlx.Connect(driverName, dsn)
		if err == nil {
			db.SetMaxIdleConns(maxIdleConnections)
			db.SetMaxOpenConns(maxOpenConnections)
			db.SetConnMaxLifetime(connMaxLifetime)

			log.Info().Str("name", name).Msg("Connected to database")

			return db
		}

		log.Error().Err(err).Str("name", name).Int("attempt", attempt).Msg("Failed connecting to database, retrying")
		time.Sleep(time.Duration(waitSeconds) * time.Second)
	}

	return nil
}
