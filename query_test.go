package pagebar

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	usersQuery         = "^SELECT \\* FROM [`'\"]users[`'\"] WHERE name = ['\"]lol['\"]"
	expectedCountQuery = "^SELECT count\\(\\*\\) FROM [`'\"]users[`'\"] WHERE name = ['\"]lol['\"]$"
)

type tUser struct {
	ID   uint
	Name string
}

func userRows(names ...string) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "name"})
	for i, name := range names {
		rows.AddRow(i+1, name)
	}

	return rows
}

func Test_Root_Apply(t *testing.T) {
	tests := []struct {
		name          string
		page          int
		perPage       int
		expectedQuery string
	}{
		{
			name:          "first page has no offset",
			page:          1,
			perPage:       5,
			expectedQuery: usersQuery + " LIMIT 5$",
		},
		{
			name:          "third page",
			page:          3,
			perPage:       5,
			expectedQuery: usersQuery + " LIMIT 5 OFFSET 10$",
		},
		{
			name:          "page zero has no offset",
			page:          0,
			perPage:       4,
			expectedQuery: usersQuery + " LIMIT 4$",
		},
	}

	for _, dialect := range mockDialects {
		for _, tt := range tests {
			t.Run(fmt.Sprintf("%s %s", dialect.name, tt.name), func(t *testing.T) {
				db, dbMock := newGORMMock(t, dialect)

				dbMock.ExpectQuery(tt.expectedQuery).WillReturnRows(userRows("John Doe"))

				root := NewRoot("users").WithCount(100).WithPerPage(tt.perPage).WithPage(tt.page)
				err := root.Apply(db.Table("users").Where("name = 'lol'")).Find(&[]tUser{}).Error
				require.NoError(t, err)

				assert.NoError(t, dbMock.ExpectationsWereMet())
			})
		}
	}
}

func Test_Paginate(t *testing.T) {
	tests := []struct {
		name           string
		page           int
		perPage        int
		total          int
		orderings      Orderings
		expectedQuery  string
		rows           []string
		wantTotalPages int
		wantPages      []int
	}{
		{
			name:           "second page ordered by id",
			page:           2,
			perPage:        3,
			total:          25,
			orderings:      Orderings{{Column: "id", Direction: SortASC}},
			expectedQuery:  usersQuery + " ORDER BY id ASC LIMIT 3 OFFSET 3$",
			rows:           []string{"A", "B", "C"},
			wantTotalPages: 9,
			wantPages:      []int{1, 2, 3, 4, 0, 9},
		},
		{
			name:           "multi column ordering",
			page:           1,
			perPage:        10,
			total:          4,
			orderings:      Orderings{{Column: "name", Direction: SortDESC}, {Column: "id", Direction: SortASC}},
			expectedQuery:  usersQuery + " ORDER BY name DESC, id ASC LIMIT 10$",
			rows:           []string{"D", "C", "B", "A"},
			wantTotalPages: 1,
			wantPages:      []int{1},
		},
		{
			name:           "without ordering",
			page:           5,
			perPage:        2,
			total:          10,
			expectedQuery:  usersQuery + " LIMIT 2 OFFSET 8$",
			rows:           []string{"I", "J"},
			wantTotalPages: 5,
			wantPages:      []int{1, 2, 3, 4, 5},
		},
		{
			name:           "page past the end",
			page:           12,
			perPage:        3,
			total:          25,
			orderings:      Orderings{{Column: "id", Direction: SortASC}},
			expectedQuery:  usersQuery + " ORDER BY id ASC LIMIT 3 OFFSET 33$",
			wantTotalPages: 9,
			wantPages:      []int{1, 0, 6, 7, 8, 9},
		},
	}

	for _, dialect := range mockDialects {
		for _, tt := range tests {
			t.Run(fmt.Sprintf("%s %s", dialect.name, tt.name), func(t *testing.T) {
				db, dbMock := newGORMMock(t, dialect)

				dbMock.ExpectQuery(expectedCountQuery).
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(tt.total))
				dbMock.ExpectQuery(tt.expectedQuery).WillReturnRows(userRows(tt.rows...))

				root := NewRoot("users").WithPerPage(tt.perPage).WithPage(tt.page)
				res, err := Paginate[tUser](context.Background(), db.Table("users").Where("name = 'lol'"), root, tt.orderings...)
				require.NoError(t, err)

				assert.Len(t, res.Items, len(tt.rows))
				assert.EqualValues(t, tt.total, res.Total)
				assert.Equal(t, tt.page, res.Page)
				assert.Equal(t, tt.perPage, res.PerPage)
				assert.Equal(t, tt.wantTotalPages, res.TotalPages)
				assert.Equal(t, tt.wantPages, layout(res.Pages))
				assert.Equal(t, tt.total, root.Count(), "count is stored on the root")

				assert.NoError(t, dbMock.ExpectationsWereMet())
			})
		}
	}
}

func Test_Paginate_Errors(t *testing.T) {
	mysqlDialect, postgresDialect := mockDialects[0], mockDialects[1]

	t.Run("nil root", func(t *testing.T) {
		db, dbMock := newGORMMock(t, postgresDialect)

		_, err := Paginate[tUser](context.Background(), db.Table("users"), nil)
		require.Error(t, err)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("invalid ordering runs no query", func(t *testing.T) {
		db, dbMock := newGORMMock(t, postgresDialect)

		_, err := Paginate[tUser](context.Background(), db.Table("users"), NewRoot(""),
			OrderBy{Column: "id desc; --", Direction: SortASC})
		require.ErrorContains(t, err, "cannot paginate")
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("count failure", func(t *testing.T) {
		db, dbMock := newGORMMock(t, mysqlDialect)

		dbMock.ExpectQuery(expectedCountQuery).WillReturnError(errors.New("connection reset"))

		root := NewRoot("").WithPage(2)
		_, err := Paginate[tUser](context.Background(), db.Table("users").Where("name = 'lol'"), root)
		require.ErrorContains(t, err, "failed to count rows")
		assert.Equal(t, 0, root.Count())
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("load failure", func(t *testing.T) {
		db, dbMock := newGORMMock(t, postgresDialect)

		dbMock.ExpectQuery(expectedCountQuery).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))
		dbMock.ExpectQuery(usersQuery).WillReturnError(errors.New("canceled"))

		_, err := Paginate[tUser](context.Background(), db.Table("users").Where("name = 'lol'"), NewRoot("").WithPerPage(3).WithPage(2))
		require.ErrorContains(t, err, "failed to load page 2")
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})
}
