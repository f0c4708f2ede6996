package pagebar

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// PaginationResult is one numbered page of a dataset.
type PaginationResult[T any] struct {
	// Items result elements.
	Items []T
	// Total number of elements matching the query.
	Total int64
	// Page the items belong to.
	Page int
	// PerPage effective page size used for the query.
	PerPage int
	// TotalPages derived from Total and PerPage.
	TotalPages int
	// Pages is the page list to render next to the items.
	Pages []PageItem
}

// Apply restricts a gorm query to the rows of the current page. OFFSET is
// skipped on the first page.
func (r *Root) Apply(db *gorm.DB) *gorm.DB {
	rng := r.Range()
	if rng.Start > 0 {
		db = db.Offset(rng.Start)
	}

	return db.Limit(r.PerPage())
}

// Paginate counts the rows of db, stores the count on root and loads the rows
// of root's current page in the given order.
//
// The page itself is not clamped: a page past the end returns no items.
func Paginate[T any](ctx context.Context, db *gorm.DB, root *Root, orderBy ...OrderBy) (*PaginationResult[T], error) {
	if root == nil {
		return nil, fmt.Errorf("cannot paginate: pagination root is nil")
	}

	orderings := Orderings(orderBy)
	if err := orderings.validate(); err != nil {
		return nil, fmt.Errorf("cannot paginate: %w", err)
	}

	base := db.WithContext(ctx)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count rows: %w", err)
	}
	root.WithCount(int(total))

	var items []T
	if err := root.Apply(orderings.Apply(base)).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to load page %d: %w", root.Page(), err)
	}

	return &PaginationResult[T]{
		Items:      items,
		Total:      total,
		Page:       root.Page(),
		PerPage:    root.PerPage(),
		TotalPages: root.TotalPages(),
		Pages:      root.Pages(),
	}, nil
}
