package helper

//nolint:revive
import (
	"agency/config"
	"agency/infras/postgres"
	"errors"
	"fmt"
	"net/url"
	"slices"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const migrationSource = "file://migrations/postgres"

// ErrUnknownAction is returned for a migration action outside Actions.
var ErrUnknownAction = errors.New("unknown migration action")

type action struct {
	name string
	run  func(*migrate.Migrate) error
	done string
}

var actions = []action{
	{name: "up", run: (*migrate.Migrate).Up, done: "Database migrations completed successfully"},
	{name: "step-up", run: func(m *migrate.Migrate) error { return m.Steps(1) }, done: "Database migrated one step up"},
	{name: "down", run: func(m *migrate.Migrate) error { return m.Steps(-1) }, done: "Database migrations rolled back one step"},
	{name: "drop", run: (*migrate.Migrate).Down, done: "Database migrations rolled back completely"},
}

// Actions lists the supported migration actions in help order.
func Actions() []string {
	names := make([]string, len(actions))
	for idx, act := range actions {
		names[idx] = act.name
	}

	return names
}

// DSN builds the migrate connection string for the write database. The migrations table is configurable so
// several deployments can share one database.
func DSN(cfg *config.Config) string {
	pg := cfg.DB.Postgres

	extra := url.Values{}
	if pg.MigrationTable != "" {
		extra.Set("x-migrations-table", pg.MigrationTable)
	}

	return postgres.Endpoint(pg.Write).URL(pg.Prefix, extra)
}

// Run applies a named migration action. An already current schema is not an error.
func Run(cfg *config.Config, name string) error {
	idx := slices.IndexFunc(actions, func(act action) bool { return act.name == name })
	if idx == -1 {
		return fmt.Errorf("%w: %q", ErrUnknownAction, name)
	}

	mig, err := migrate.New(migrationSource, DSN(cfg))
	if err != nil {
		return fmt.Errorf("error creating migrate instance: %w", err)
	}
	defer mig.Close()

	act := actions[idx]
	if err := act.run(mig); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running %s migration: %w", act.name, err)
	}

	version, dirty, err := mig.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("error reading migration version: %w", err)
	}

	log.Info().Uint("version", version).Bool("dirty", dirty).Msg(act.done)

	return nil
}

func Up(cfg *config.Config) error {
	return Run(cfg, "up")
}
