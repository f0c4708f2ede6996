package pagebar

import (
	"fmt"
	"slices"

	"github.com/samber/lo"
)

// DefaultSiblingCount is the number of pages shown on each side of the
// current page before the list collapses into an ellipsis.
const DefaultSiblingCount = 1

// PageItemType tags a PageItem as a page marker or an ellipsis placeholder.
type PageItemType string

const (
	PageItemPage     PageItemType = "page"
	PageItemEllipsis PageItemType = "ellipsis"
)

// ellipsisKey is shared by every ellipsis of a list; render position tells
// them apart.
const ellipsisKey = "ellipsis"

// PageItem is one entry of a pagination bar. Value is set for page markers
// only.
type PageItem struct {
	Type  PageItemType `json:"type"`
	Value int          `json:"value,omitempty"`
	Key   string       `json:"key"`
}

func newPageItem(value int) PageItem {
	return PageItem{
		Type:  PageItemPage,
		Value: value,
		Key:   fmt.Sprintf("page-%d", value),
	}
}

func newEllipsisItem() PageItem {
	return PageItem{
		Type: PageItemEllipsis,
		Key:  ellipsisKey,
	}
}

// IsEllipsis reports whether the item is a collapsed run of pages.
func (p PageItem) IsEllipsis() bool {
	return p.Type == PageItemEllipsis
}

// GeneratePageItems returns the page markers and ellipsis placeholders of a
// pagination bar in ascending page order.
//
// Pages 1 and totalPages are always present. Around them one of four windows
// is shown:
//   - every page, when the start and end windows overlap;
//   - 2..3+siblingCount, when page is near the start;
//   - totalPages-2-siblingCount..totalPages-1, when page is near the end;
//   - page±siblingCount otherwise.
//
// A gap of more than one page between two shown pages becomes an ellipsis.
// Callers keep totalPages >= 1; smaller values are not rejected and yield
// whatever the window arithmetic produces.
func GeneratePageItems(page, totalPages, siblingCount int) []PageItem {
	pagesToShow := map[int]struct{}{1: {}, totalPages: {}}
	firstItemWithSiblings := 3 + siblingCount
	lastItemWithSiblings := totalPages - 2 - siblingCount

	switch {
	case firstItemWithSiblings > lastItemWithSiblings:
		for i := 2; i <= totalPages-1; i++ {
			pagesToShow[i] = struct{}{}
		}
	case page < firstItemWithSiblings:
		for i := 2; i <= min(firstItemWithSiblings, totalPages); i++ {
			pagesToShow[i] = struct{}{}
		}
	case page > lastItemWithSiblings:
		for i := totalPages - 1; i >= max(lastItemWithSiblings, 2); i-- {
			pagesToShow[i] = struct{}{}
		}
	default:
		for i := max(page-siblingCount, 2); i <= min(page+siblingCount, totalPages); i++ {
			pagesToShow[i] = struct{}{}
		}
	}

	sorted := lo.Keys(pagesToShow)
	slices.Sort(sorted)

	items := make([]PageItem, 0, len(sorted)+2)
	lastNumber := 0
	for _, p := range sorted {
		if p-lastNumber > 1 {
			items = append(items, newEllipsisItem())
		}
		items = append(items, newPageItem(p))
		lastNumber = p
	}

	return items
}
