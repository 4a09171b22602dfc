// Package iodb implements database operations with gorm for PostgreSQL
// (through pgxpool) and SQLite (through modernc.org/sqlite).
// This is an impure I/O package that implements contracts
// defined in pkg/.
package iodb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gnfixture/pkg/config"
	"github.com/gnames/gnfixture/pkg/dataset"
	"github.com/gnames/gnfixture/pkg/db"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

// gormOperator implements db.Operator interface.
type gormOperator struct {
	withProgress bool
	cfg          *config.DatabaseConfig
	pool         *pgxpool.Pool
	sqlDB        *sql.DB
	db           *gorm.DB
}

// NewOperator creates a new database operator (without connecting).
// With progress a progress bar is shown during inserts.
func NewOperator(withProgress bool) db.Operator {
	return &gormOperator{withProgress: withProgress}
}

// Connect opens a connection to the database of cfg.Dialect.
func (o *gormOperator) Connect(
	ctx context.Context,
	cfg *config.DatabaseConfig,
) error {
	var dialector gorm.Dialector
	var err error

	switch cfg.Dialect {
	case "postgresql":
		dialector, err = o.postgresDialector(ctx, cfg)
	case "sqlite":
		dialector = sqlite.New(sqlite.Config{
			DriverName: "sqlite",
			DSN:        sqlitePath(cfg),
		})
	default:
		return UnsupportedDialectError(cfg.Dialect)
	}
	if err != nil {
		return err
	}

	gdb, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		o.closePool()
		return connectionError(cfg, err)
	}

	sqlDB, err := gdb.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		if sqlDB != nil {
			sqlDB.Close()
		}
		o.closePool()
		return connectionError(cfg, err)
	}

	o.cfg = cfg
	o.sqlDB = sqlDB
	o.db = gdb
	slog.Info("Connected to database",
		"dialect", cfg.Dialect,
		"database", databaseName(cfg),
	)
	return nil
}

func (o *gormOperator) postgresDialector(
	ctx context.Context,
	cfg *config.DatabaseConfig,
) (gorm.Dialector, error) {
	dsn := cfg.URL
	if dsn == "" {
		dsn = fmt.Sprintf(
			"postgres://%s:%s@%s:%d/%s?sslmode=%s",
			cfg.User,
			cfg.Password,
			cfg.Host,
			cfg.Port,
			cfg.Database,
			cfg.SSLMode,
		)
	}

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, connectionError(cfg, err)
	}

	// Fixture loading is sequential, a small pool is enough.
	poolConfig.MaxConns = 4
	poolConfig.MinConns = 1

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, connectionError(cfg, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, connectionError(cfg, err)
	}
	o.pool = pool

	return postgres.New(postgres.Config{
		Conn: stdlib.OpenDBFromPool(pool),
	}), nil
}

// Close releases all database connections.
func (o *gormOperator) Close() error {
	var err error
	if o.sqlDB != nil {
		err = o.sqlDB.Close()
		o.sqlDB = nil
	}
	o.closePool()
	o.db = nil
	return err
}

func (o *gormOperator) closePool() {
	if o.pool != nil {
		o.pool.Close()
		o.pool = nil
	}
}

// DB returns the underlying gorm.DB.
func (o *gormOperator) DB() *gorm.DB {
	return o.db
}

// ColumnTypes returns database type names of the columns of a table.
func (o *gormOperator) ColumnTypes(
	ctx context.Context,
	table string,
) (map[string]string, error) {
	if o.db == nil {
		return nil, NotConnectedError()
	}

	cts, err := o.db.WithContext(ctx).Migrator().ColumnTypes(o.tableName(table))
	if err != nil {
		return nil, ColumnTypesError(table, err)
	}
	if len(cts) == 0 {
		return nil, ColumnTypesError(table, errors.New("table has no columns"))
	}

	res := make(map[string]string, len(cts))
	for _, v := range cts {
		res[v.Name()] = v.DatabaseTypeName()
	}
	return res, nil
}

// CleanInsert deletes rows of dataset tables in reverse order, so rows
// that reference earlier tables go first, and inserts rows in dataset
// order. All changes happen in one transaction.
func (o *gormOperator) CleanInsert(
	ctx context.Context,
	ds *dataset.DataSet,
) error {
	if o.db == nil {
		return NotConnectedError()
	}

	total := ds.RowsNum()
	var bar *pb.ProgressBar
	if o.withProgress && total > 0 {
		bar = newProgressBar(total, "Inserting rows ")
		defer bar.Finish()
	}

	err := o.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, tbl := range slices.Backward(ds.Tables) {
			err := tx.Exec("DELETE FROM ?",
				clause.Table{Name: o.tableName(tbl.Name)}).Error
			if err != nil {
				return CleanInsertError(tbl.Name, err)
			}
		}

		for _, tbl := range ds.Tables {
			for _, batch := range o.batches(tbl) {
				err := tx.Table(o.tableName(tbl.Name)).Create(&batch).Error
				if err != nil {
					return CleanInsertError(tbl.Name, err)
				}
				if bar != nil {
					bar.Add(len(batch))
				}
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	slog.Info("Inserted data set",
		"tables", len(ds.Tables),
		"rows", humanize.Comma(int64(total)),
	)
	return nil
}

// batches splits rows of a table into batches of BatchSize rows.
// A batch only holds rows with the same columns, otherwise missing
// columns would be inserted as NULL instead of their defaults.
func (o *gormOperator) batches(tbl *dataset.Table) [][]map[string]any {
	size := o.cfg.BatchSize
	if size <= 0 {
		size = 1
	}

	var res [][]map[string]any
	var batch []map[string]any
	var prev []string
	for _, row := range tbl.Rows {
		if len(row.Columns) == 0 {
			continue
		}
		cols := make([]string, len(row.Columns))
		rec := make(map[string]any, len(row.Columns))
		for i, c := range row.Columns {
			cols[i] = c.Name
			rec[c.Name] = c.Value
		}
		if len(batch) == size || (len(batch) > 0 && !slices.Equal(cols, prev)) {
			res = append(res, batch)
			batch = nil
		}
		batch = append(batch, rec)
		prev = cols
	}
	if len(batch) > 0 {
		res = append(res, batch)
	}
	return res
}

func (o *gormOperator) tableName(table string) string {
	if o.cfg == nil || o.cfg.Schema == "" || o.cfg.Dialect == "sqlite" {
		return table
	}
	return o.cfg.Schema + "." + table
}

func sqlitePath(cfg *config.DatabaseConfig) string {
	if cfg.URL != "" {
		return cfg.URL
	}
	return cfg.Database + ".db"
}

func databaseName(cfg *config.DatabaseConfig) string {
	if cfg.Dialect == "sqlite" {
		return sqlitePath(cfg)
	}
	return cfg.Database
}

func connectionError(cfg *config.DatabaseConfig, err error) error {
	return NewConnectionError(
		cfg.Dialect, cfg.Host, cfg.Port,
		databaseName(cfg), cfg.User, err,
	)
}
