package database

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"
	"testing/fstest"

	"reading-quiz/internal/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMemoryDB(t *testing.T) *sqlx.DB {
	t.Helper()
	cfg := &config.Config{DB: config.DBConfig{Driver: DriverSQLite, Path: ":memory:"}}
	db, err := NewSQLXDB(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestNewSQLXDB_UnsupportedDriver(t *testing.T) {
	cfg := &config.Config{DB: config.DBConfig{Driver: "mysql"}}
	_, err := NewSQLXDB(context.Background(), cfg)
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestNewSQLXDB_SQLiteBindType(t *testing.T) {
	db := newMemoryDB(t)
	assert.Equal(t, "SELECT 1 FROM t WHERE a = ? AND b = ?", db.Rebind("SELECT 1 FROM t WHERE a = ? AND b = ?"))
	assert.Equal(t, sqlx.NAMED, sqlx.BindType(DriverOracle))
}

func TestLoadMigrations(t *testing.T) {
	for _, driver := range []string{DriverSQLite, DriverOracle} {
		t.Run(driver, func(t *testing.T) {
			migrations, err := LoadMigrations(driver)
			require.NoError(t, err)
			require.Len(t, migrations, 2)

			assert.Equal(t, 1, migrations[0].Version)
			assert.Equal(t, "0001_create_quizzes", migrations[0].Name)
			assert.Len(t, migrations[0].Statements, 2)
			assert.Equal(t, 2, migrations[1].Version)
			assert.Len(t, migrations[1].Statements, 2)

			for _, m := range migrations {
				for _, stmt := range m.Statements {
					assert.False(t, strings.HasSuffix(stmt, ";"), stmt)
				}
			}
		})
	}

	_, err := LoadMigrations("postgres")
	assert.Error(t, err)
}

func TestSplitStatements(t *testing.T) {
	script := `-- header comment
CREATE TABLE a (
    id INTEGER
);

CREATE INDEX idx_a ON a (id);
SELECT 1`

	got := splitStatements(script)
	assert.Equal(t, []string{
		"CREATE TABLE a (\nid INTEGER\n)",
		"CREATE INDEX idx_a ON a (id)",
		"SELECT 1",
	}, got)
	assert.Empty(t, splitStatements("\n-- only a comment\n"))
}

func TestRunMigrations_SQLite(t *testing.T) {
	ctx := context.Background()
	db := newMemoryDB(t)

	applied, err := RunMigrations(ctx, db, DriverSQLite)
	require.NoError(t, err)
	assert.Equal(t, 2, applied)

	var tables []string
	require.NoError(t, db.SelectContext(ctx, &tables,
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name`))
	assert.Equal(t, []string{"quiz_attempts", "quiz_questions", "quizzes", "schema_migrations"}, tables)

	applied, err = RunMigrations(ctx, db, DriverSQLite)
	require.NoError(t, err)
	assert.Equal(t, 0, applied, "second run must be a no-op")

	var version int
	require.NoError(t, db.GetContext(ctx, &version, `SELECT MAX(version) FROM schema_migrations`))
	assert.Equal(t, 2, version)
}

func TestRunMigrations_UnknownDriver(t *testing.T) {
	db := newMemoryDB(t)
	_, err := RunMigrations(context.Background(), db, "postgres")
	assert.ErrorContains(t, err, "unsupported database driver")
}

func tableCount(t *testing.T, db *sqlx.DB, name string) int {
	t.Helper()
	var n int
	require.NoError(t, db.Get(&n, `SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`, name))
	return n
}

func TestMigrateSQLite_FailedScriptRollsBackAndStaysDirty(t *testing.T) {
	db := newMemoryDB(t)
	src := fstest.MapFS{
		"m/0001_create_a.up.sql": {Data: []byte("CREATE TABLE a (id INTEGER);\n")},
		"m/0002_broken.up.sql":   {Data: []byte("CREATE TABLE b (id INTEGER);\nCREATE TABLEX c (id INTEGER);\n")},
	}

	applied, err := migrateSQLite(db, src, "m")
	require.Error(t, err)
	assert.Equal(t, 1, applied)
	assert.Equal(t, 1, tableCount(t, db, "a"))
	assert.Equal(t, 0, tableCount(t, db, "b"), "statements of the failed script must be rolled back")

	applied, err = migrateSQLite(db, src, "m")
	assert.ErrorIs(t, err, ErrDirtyMigration)
	assert.ErrorContains(t, err, "version 2")
	assert.Equal(t, 0, applied)
	assert.Equal(t, 0, tableCount(t, db, "b"))
}

func newOracleMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return sqlx.NewDb(mockDB, DriverOracle), mock
}

func expectOracleState(mock sqlmock.Sqlmock, tableExists, dirty, current int) {
	mock.ExpectQuery(regexp.QuoteMeta(`FROM user_tables WHERE table_name = :arg1`)).
		WithArgs("SCHEMA_MIGRATIONS").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(tableExists))
	if tableExists == 0 {
		mock.ExpectExec(regexp.QuoteMeta(`CREATE TABLE schema_migrations`)).
			WillReturnResult(sqlmock.NewResult(0, 0))
	}
	mock.ExpectQuery(regexp.QuoteMeta(`FROM schema_migrations WHERE dirty = 1`)).
		WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow(dirty))
	if dirty > 0 {
		return
	}
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COALESCE(MAX(version), 0) FROM schema_migrations`)).
		WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow(current))
}

var oracleTestMigrations = []Migration{
	{Version: 1, Name: "0001_create_a", Statements: []string{"CREATE TABLE a (id NUMBER(10))"}},
	{Version: 2, Name: "0002_create_b", Statements: []string{
		"CREATE TABLE b (id NUMBER(10))",
		"CREATE INDEX idx_b ON b (missing)",
	}},
}

func TestMigrateOracle_AppliesPendingAndClearsDirty(t *testing.T) {
	db, mock := newOracleMock(t)
	expectOracleState(mock, 0, 0, 1)
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO schema_migrations (version, name, dirty, applied_at) VALUES (:arg1, :arg2, 1, :arg3)`)).
		WithArgs(2, "0002_create_b", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`CREATE TABLE b`)).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(`CREATE INDEX idx_b`)).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE schema_migrations SET dirty = 0 WHERE version = :arg1`)).
		WithArgs(2).
		WillReturnResult(sqlmock.NewResult(0, 1))

	applied, err := migrateOracle(context.Background(), db, oracleTestMigrations)
	require.NoError(t, err)
	assert.Equal(t, 1, applied)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrateOracle_FailedStatementBlocksRerun(t *testing.T) {
	db, mock := newOracleMock(t)
	expectOracleState(mock, 1, 0, 1)
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO schema_migrations`)).
		WithArgs(2, "0002_create_b", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`CREATE TABLE b`)).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(`CREATE INDEX idx_b`)).
		WillReturnError(errors.New("ORA-00904: invalid identifier"))

	applied, err := migrateOracle(context.Background(), db, oracleTestMigrations)
	assert.ErrorContains(t, err, "0002_create_b")
	assert.Equal(t, 0, applied)
	assert.NoError(t, mock.ExpectationsWereMet())

	// The version stays dirty, so the rerun stops before touching the schema.
	expectOracleState(mock, 1, 2, 0)
	applied, err = migrateOracle(context.Background(), db, oracleTestMigrations)
	assert.ErrorIs(t, err, ErrDirtyMigration)
	assert.Equal(t, 0, applied)
	assert.NoError(t, mock.ExpectationsWereMet())
}
