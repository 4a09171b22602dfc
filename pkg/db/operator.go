package db

import (
	"context"

	"github.com/gnames/gnfixture/pkg/config"
	"github.com/gnames/gnfixture/pkg/dataset"
	"gorm.io/gorm"
)

// Operator defines database operations needed to set up fixtures.
// It provides connection lifecycle management, column type lookup for auto
// values, and the clean-insert of datasets.
type Operator interface {
	// Connect opens a connection to the database of the configured dialect.
	Connect(context.Context, *config.DatabaseConfig) error

	// Close closes the database connection.
	Close() error

	// DB returns the underlying gorm.DB for queries in tests.
	// It is nil before Connect.
	DB() *gorm.DB

	// ColumnTypes returns database type names of table columns, keyed by
	// column name.
	ColumnTypes(ctx context.Context, table string) (map[string]string, error)

	// CleanInsert deletes all rows from every table of the dataset and
	// inserts the dataset rows, in one transaction.
	CleanInsert(ctx context.Context, ds *dataset.DataSet) error
}
