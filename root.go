package pagebar

import (
	"github.com/samber/lo"
)

const (
	rootAttr        = "data-pagination-root"
	pageAttr        = "data-pagination-page"
	prevAttr        = "data-pagination-prev"
	nextAttr        = "data-pagination-next"
	orientationAttr = "data-orientation"
)

// Range is the half-open [Start, End) slice of items shown on a page.
type Range struct {
	Start int
	End   int
}

// Len returns the number of items in the range, never negative.
func (r Range) Len() int {
	return max(r.End-r.Start, 0)
}

// Root is the state of one pagination bar. It is owned by a single widget
// and is not safe for concurrent use.
//
// Derived values (TotalPages, Range, Pages, Props) are recomputed on every
// read from the current inputs.
type Root struct {
	id           string
	count        int
	perPage      int
	page         int
	siblingCount int
	orientation  Orientation
	loop         bool

	surface      Surface
	onPageChange func(page int)
}

// NewRoot returns a Root with the defaults of a fresh pagination bar: no
// items, one item per page, page 1, one sibling, horizontal, no looping.
func NewRoot(id string) *Root {
	return &Root{
		id:           id,
		perPage:      DefaultPerPage,
		page:         1,
		siblingCount: DefaultSiblingCount,
		orientation:  OrientationHorizontal,
	}
}

func (r *Root) orNew() *Root {
	if r == nil {
		return NewRoot("")
	}

	return r
}

// WithCount sets the total number of items. Negative values become 0.
func (r *Root) WithCount(count int) *Root {
	r = r.orNew()
	r.count = max(count, 0)

	return r
}

// WithPerPage sets the page size. NormalizePerPage is applied.
func (r *Root) WithPerPage(perPage int) *Root {
	r = r.orNew()
	r.perPage = NormalizePerPage(perPage)

	return r
}

// WithPage sets the current page as-is.
func (r *Root) WithPage(page int) *Root {
	r = r.orNew()
	r.page = page

	return r
}

// WithSiblingCount sets how many pages surround the current one. Negative
// values become 0.
func (r *Root) WithSiblingCount(siblingCount int) *Root {
	r = r.orNew()
	r.siblingCount = max(siblingCount, 0)

	return r
}

// WithOrientation sets the navigable axis. Unknown values are ignored.
func (r *Root) WithOrientation(orientation Orientation) *Root {
	r = r.orNew()
	if orientation.Valid() {
		r.orientation = orientation
	}

	return r
}

// WithLoop enables wrapping keyboard focus from the last element to the
// first and back.
func (r *Root) WithLoop(loop bool) *Root {
	r = r.orNew()
	r.loop = loop

	return r
}

// OnPageChange registers fn to be called after a navigation operation changes
// the current page. A nil fn removes the callback.
func (r *Root) OnPageChange(fn func(page int)) *Root {
	r = r.orNew()
	r.onPageChange = fn

	return r
}

// Bind attaches the live surface once the host has mounted it.
func (r *Root) Bind(surface Surface) {
	if r != nil {
		r.surface = surface
	}
}

// Unbind detaches the surface. Keyboard navigation becomes a no-op.
func (r *Root) Unbind() {
	if r != nil {
		r.surface = nil
	}
}

// Surface returns the bound surface or nil.
func (r *Root) Surface() Surface {
	if r == nil {
		return nil
	}

	return r.surface
}

func (r *Root) ID() string {
	if r == nil {
		return ""
	}

	return r.id
}

func (r *Root) Count() int {
	if r == nil {
		return 0
	}

	return r.count
}

func (r *Root) PerPage() int {
	if r == nil {
		return DefaultPerPage
	}

	return r.perPage
}

// Page returns the current page exactly as last assigned.
func (r *Root) Page() int {
	if r == nil {
		return 1
	}

	return r.page
}

func (r *Root) SiblingCount() int {
	if r == nil {
		return DefaultSiblingCount
	}

	return r.siblingCount
}

func (r *Root) Orientation() Orientation {
	if r == nil {
		return OrientationHorizontal
	}

	return r.orientation
}

func (r *Root) Loop() bool {
	return r != nil && r.loop
}

// TotalPages returns ceil(count / perPage). Counts up to math.MaxInt do not
// overflow.
func (r *Root) TotalPages() int {
	count, perPage := r.Count(), r.PerPage()

	pages := count / perPage
	if count%perPage != 0 {
		pages++
	}

	return pages
}

// Range returns the items shown on the current page:
// [(page-1)*perPage, min(page*perPage, count)).
func (r *Root) Range() Range {
	perPage := r.PerPage()
	start := (r.Page() - 1) * perPage

	return Range{
		Start: start,
		End:   min(start+perPage, r.Count()),
	}
}

// Pages returns the page list for the current page.
func (r *Root) Pages() []PageItem {
	return GeneratePageItems(r.Page(), r.TotalPages(), r.SiblingCount())
}

// SetPage assigns the current page without clamping.
func (r *Root) SetPage(page int) {
	if r == nil {
		return
	}

	r.assignPage(page)
}

// PrevPage moves to the previous page, stopping at 1.
func (r *Root) PrevPage() {
	if r == nil {
		return
	}

	r.assignPage(max(r.page-1, 1))
}

// NextPage moves to the next page, stopping at the last one. A bar without
// items stays on page 1 rather than min(page+1, totalPages), which would be 0.
func (r *Root) NextPage() {
	if r == nil {
		return
	}

	r.assignPage(min(r.page+1, max(r.TotalPages(), 1)))
}

// HasPrevPage reports whether PrevPage would change the page.
func (r *Root) HasPrevPage() bool {
	return r.Page() > 1
}

// HasNextPage reports whether NextPage would change the page.
func (r *Root) HasNextPage() bool {
	return r.Page() < r.TotalPages()
}

func (r *Root) assignPage(page int) {
	if r.page == page {
		return
	}

	r.page = page
	if r.onPageChange != nil {
		r.onPageChange(page)
	}
}

// Props returns the attributes of the root element.
func (r *Root) Props() Props {
	return Props{
		Attrs: Attrs{
			"id":            r.ID(),
			orientationAttr: string(r.Orientation()),
			rootAttr:        "",
		},
	}
}

// CreatePage returns a page trigger for value bound to this root.
func (r *Root) CreatePage(id string, value int) *PageTrigger {
	return &PageTrigger{
		id:    id,
		value: value,
		root:  r.orNew(),
	}
}

// CreateButton returns a prev or next button bound to this root. Unknown
// kinds fall back to ButtonNext.
func (r *Root) CreateButton(id string, kind ButtonKind) *Button {
	return &Button{
		id:   id,
		kind: lo.Ternary(kind.Valid(), kind, ButtonNext),
		root: r.orNew(),
	}
}
