package pagebar

import (
	"fmt"
	"math"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

// SortDirection is the sort direction of one column of a paginated dataset.
type SortDirection string

const (
	SortASC  SortDirection = "ASC"
	SortDESC SortDirection = "DESC"
)

func (d SortDirection) Valid() bool {
	return d == SortASC || d == SortDESC
}

type (
	Orderings []OrderBy
	OrderBy   struct {
		Column    string
		Direction SortDirection
	}

	ColumnAlias = string

	// ColumnMapping maps external column aliases to column names. Key is the
	// alias accepted from clients, value is the column used in SQL.
	ColumnMapping = map[ColumnAlias]string
)

var _availableColumnNameSymbols = append([]rune("_.`\""), lo.AlphanumericCharset...)

func (o OrderBy) validate() error {
	if !o.Direction.Valid() {
		return fmt.Errorf("invalid sort direction '%s'", o.Direction)
	}

	// Column names end up verbatim in ORDER BY.
	if o.Column == "" || !lo.Every(_availableColumnNameSymbols, []rune(o.Column)) {
		return fmt.Errorf("sort column name contains forbidden symbols '%s'", o.Column)
	}

	return nil
}

// ToSQL joins the orderings into "a ASC, b DESC".
func (o Orderings) ToSQL() string {
	parts := lo.Map(o, func(ordering OrderBy, _ int) string {
		return fmt.Sprintf("%s %s", ordering.Column, ordering.Direction)
	})

	return strings.Join(parts, ", ")
}

// Apply adds ORDER BY to a gorm query. An empty list leaves it unchanged.
func (o Orderings) Apply(db *gorm.DB) *gorm.DB {
	if len(o) == 0 {
		return db
	}

	return db.Order(o.ToSQL())
}

func (o Orderings) validate() error {
	for _, ordering := range o {
		if err := ordering.validate(); err != nil {
			return err
		}
	}

	return nil
}

// ParseSort builds Orderings from strings of the form "alias asc|desc".
// Aliases are resolved through columnMapping; an unknown alias yields an
// error naming the closest known one.
func ParseSort(stringsOrderings []string, columnMapping ColumnMapping) (Orderings, error) {
	ret := make(Orderings, 0, len(stringsOrderings))
	aliases := lo.Keys(columnMapping)

	for _, stringOrdering := range stringsOrderings {
		fields := strings.Fields(stringOrdering)
		if len(fields) != 2 {
			return nil, fmt.Errorf("invalid sort string format '%s'", stringOrdering)
		}

		columnAlias := fields[0]
		direction := SortDirection(strings.ToUpper(fields[1]))
		if !direction.Valid() {
			return nil, fmt.Errorf("invalid sort direction '%s'", fields[1])
		}

		columnName, ok := columnMapping[columnAlias]
		if !ok || columnName == "" {
			return nil, fmt.Errorf("invalid column alias '%s'. closest: '%s'", columnAlias, closestAlias(columnAlias, aliases))
		}

		ret = append(ret, OrderBy{
			Column:    columnName,
			Direction: direction,
		})
	}

	return ret, nil
}

func closestAlias(input ColumnAlias, dataSet []ColumnAlias) ColumnAlias {
	minDist := math.MaxInt
	closest := ""

	for _, dataSetAlias := range dataSet {
		dist := levenshtein.ComputeDistance(dataSetAlias, input)
		if dist < minDist || (dist == minDist && dataSetAlias < closest) {
			minDist = dist
			closest = dataSetAlias
		}
	}

	return closest
}
