package database

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"
	"time"

	"reading-quiz/internal/logger"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

//go:embed migrations
var migrationFS embed.FS

// Migration is one numbered schema change split into executable statements.
type Migration struct {
	Version    int
	Name       string
	Statements []string
}

// ErrDirtyMigration is returned when an earlier run stopped inside a
// migration. The schema must be repaired by hand before migrating again.
var ErrDirtyMigration = errors.New("database is in a dirty migration state")

const (
	oracleTableExists = "SELECT COUNT(*) FROM user_tables WHERE table_name = ?"
	oracleCreateTable = `CREATE TABLE schema_migrations (
		version    NUMBER(10) PRIMARY KEY,
		name       VARCHAR2(200) NOT NULL,
		dirty      NUMBER(1) NOT NULL,
		applied_at TIMESTAMP NOT NULL
	)`
)

// LoadMigrations returns the embedded up-migrations for driver in version
// order.
func LoadMigrations(driver string) ([]Migration, error) {
	dir := path.Join("migrations", driver)
	entries, err := fs.ReadDir(migrationFS, dir)
	if err != nil {
		return nil, fmt.Errorf("no migrations for driver %q: %w", driver, err)
	}

	var migrations []Migration
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".up.sql") {
			continue
		}
		prefix, _, ok := strings.Cut(name, "_")
		if !ok {
			return nil, fmt.Errorf("migration %s: missing version prefix", name)
		}
		version, err := strconv.Atoi(prefix)
		if err != nil {
			return nil, fmt.Errorf("migration %s: invalid version: %w", name, err)
		}
		content, err := fs.ReadFile(migrationFS, path.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("could not read migration %s: %w", name, err)
		}
		migrations = append(migrations, Migration{
			Version:    version,
			Name:       strings.TrimSuffix(name, ".up.sql"),
			Statements: splitStatements(string(content)),
		})
	}

	sort.Slice(migrations, func(i, j int) bool { return migrations[i].Version < migrations[j].Version })
	for i := 1; i < len(migrations); i++ {
		if migrations[i].Version == migrations[i-1].Version {
			return nil, fmt.Errorf("duplicate migration version %d", migrations[i].Version)
		}
	}
	return migrations, nil
}

// splitStatements breaks a script on semicolons that end a line. Oracle
// rejects a trailing semicolon and multiple statements per call.
func splitStatements(script string) []string {
	var (
		out []string
		buf strings.Builder
	)
	for _, line := range strings.Split(script, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "--") {
			continue
		}
		if strings.HasSuffix(trimmed, ";") {
			buf.WriteString(strings.TrimSuffix(trimmed, ";"))
			out = append(out, buf.String())
			buf.Reset()
			continue
		}
		buf.WriteString(trimmed)
		buf.WriteString("\n")
	}
	if rest := strings.TrimSpace(buf.String()); rest != "" {
		out = append(out, rest)
	}
	return out
}

// RunMigrations applies every embedded migration newer than the recorded
// schema version and returns how many were applied.
func RunMigrations(ctx context.Context, db *sqlx.DB, driver string) (int, error) {
	switch driver {
	case DriverSQLite:
		return migrateSQLite(db, migrationFS, path.Join("migrations", driver))
	case DriverOracle:
		migrations, err := LoadMigrations(driver)
		if err != nil {
			return 0, err
		}
		return migrateOracle(ctx, db, migrations)
	}
	return 0, fmt.Errorf("unsupported database driver %q", driver)
}

// migrateLogger routes golang-migrate output through zap.
type migrateLogger struct {
	l *zap.SugaredLogger
}

func (m migrateLogger) Printf(format string, v ...interface{}) {
	m.l.Infof(strings.TrimSpace(format), v...)
}

func (m migrateLogger) Verbose() bool { return false }

// migrateSQLite runs the scripts under dir with golang-migrate. Each script
// runs in its own transaction, so a failing statement leaves no partial
// schema behind, only a dirty version row.
func migrateSQLite(db *sqlx.DB, src fs.FS, dir string) (int, error) {
	files, err := iofs.New(src, dir)
	if err != nil {
		return 0, fmt.Errorf("could not open migrations %s: %w", dir, err)
	}
	driver, err := sqlite.WithInstance(db.DB, &sqlite.Config{})
	if err != nil {
		files.Close()
		return 0, fmt.Errorf("could not prepare sqlite migrations: %w", err)
	}
	// m.Close would also close the shared *sql.DB, so only the files are
	// released.
	m, err := migrate.NewWithInstance("iofs", files, DriverSQLite, driver)
	if err != nil {
		files.Close()
		return 0, fmt.Errorf("could not create migrator: %w", err)
	}
	defer files.Close()
	m.Log = migrateLogger{l: logger.Get().Sugar()}

	before, err := completedVersion(m, files)
	if err != nil {
		return 0, err
	}
	upErr := m.Up()
	after, err := completedVersion(m, files)
	if err != nil {
		return 0, err
	}
	applied := after - before

	var dirtyErr migrate.ErrDirty
	switch {
	case errors.As(upErr, &dirtyErr):
		return applied, fmt.Errorf("%w: version %d", ErrDirtyMigration, dirtyErr.Version)
	case upErr != nil && !errors.Is(upErr, migrate.ErrNoChange):
		return applied, fmt.Errorf("could not apply migrations: %w", upErr)
	}

	logger.Get().Info("Migrations completed",
		zap.Int("applied", applied), zap.Int("previous_version", before))
	return applied, nil
}

// completedVersion is the newest version whose script ran to the end. A
// dirty version counts as its predecessor.
func completedVersion(m *migrate.Migrate, src source.Driver) (int, error) {
	v, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("could not read schema version: %w", err)
	}
	if !dirty {
		return int(v), nil
	}
	prev, err := src.Prev(v)
	if err != nil {
		return 0, nil
	}
	return int(prev), nil
}

// migrateOracle applies migrations statement by statement. Oracle commits
// DDL implicitly, so a migration cannot be rolled back; its version row is
// written dirty first and cleared only after every statement succeeded.
func migrateOracle(ctx context.Context, db *sqlx.DB, migrations []Migration) (int, error) {
	var exists int
	if err := db.GetContext(ctx, &exists, db.Rebind(oracleTableExists), "SCHEMA_MIGRATIONS"); err != nil {
		return 0, fmt.Errorf("could not inspect schema_migrations: %w", err)
	}
	if exists == 0 {
		if _, err := db.ExecContext(ctx, oracleCreateTable); err != nil {
			return 0, fmt.Errorf("could not create schema_migrations: %w", err)
		}
	}

	var dirty int
	if err := db.GetContext(ctx, &dirty, `SELECT COALESCE(MAX(version), 0) FROM schema_migrations WHERE dirty = 1`); err != nil {
		return 0, fmt.Errorf("could not read schema state: %w", err)
	}
	if dirty > 0 {
		return 0, fmt.Errorf("%w: version %d", ErrDirtyMigration, dirty)
	}

	var current int
	if err := db.GetContext(ctx, &current, `SELECT COALESCE(MAX(version), 0) FROM schema_migrations`); err != nil {
		return 0, fmt.Errorf("could not read schema version: %w", err)
	}

	l := logger.Get()
	applied := 0
	for _, m := range migrations {
		if m.Version <= current {
			continue
		}
		mark := db.Rebind(`INSERT INTO schema_migrations (version, name, dirty, applied_at) VALUES (?, ?, 1, ?)`)
		if _, err := db.ExecContext(ctx, mark, m.Version, m.Name, time.Now().UTC()); err != nil {
			return applied, fmt.Errorf("could not record migration %s: %w", m.Name, err)
		}
		for _, stmt := range m.Statements {
			if _, err := db.ExecContext(ctx, stmt); err != nil {
				return applied, fmt.Errorf("could not execute migration %s: %w", m.Name, err)
			}
		}
		done := db.Rebind(`UPDATE schema_migrations SET dirty = 0 WHERE version = ?`)
		if _, err := db.ExecContext(ctx, done, m.Version); err != nil {
			return applied, fmt.Errorf("could not record migration %s: %w", m.Name, err)
		}
		applied++
		l.Info("Executed migration", zap.String("name", m.Name), zap.Int("version", m.Version))
	}

	l.Info("Migrations completed", zap.Int("applied", applied), zap.Int("previous_version", current))
	return applied, nil
}
