package pagebar

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// mockDialect opens gorm over a sqlmock connection with one SQL dialect.
type mockDialect struct {
	name string
	open func(conn gorm.ConnPool) gorm.Dialector
}

var mockDialects = []mockDialect{
	{
		name: "mysql",
		open: func(conn gorm.ConnPool) gorm.Dialector {
			return mysql.New(mysql.Config{
				Conn:                      conn,
				SkipInitializeWithVersion: true,
			})
		},
	},
	{
		name: "postgres",
		open: func(conn gorm.ConnPool) gorm.Dialector {
			return postgres.New(postgres.Config{
				Conn: conn,
			})
		},
	},
}

func newGORMMock(t *testing.T, dialect mockDialect) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err, "sqlmock")

	db, err := gorm.Open(dialect.open(mockDB), &gorm.Config{})
	require.NoError(t, err, "gorm open")

	return db.Debug(), mock
}
