// Package pagebar provides headless pagination primitives for UI hosts.
//
// Overview
//
// pagebar owns the logic of a pagination bar and nothing else. Rendering is
// left to the host (an HTML tree, a terminal program, a template engine):
//   - GeneratePageItems: pure function producing the ordered list of page
//     markers and ellipsis placeholders for the current page.
//   - Root: pagination state (count, per-page size, current page, sibling
//     count, orientation, loop) with derived total pages, item range and page
//     list, plus the set/next/previous navigation operations.
//   - PageTrigger and Button: per-element children holding an explicit
//     reference to their Root. They expose attribute props and click/keydown
//     handlers.
//   - Keyboard navigation: arrow/Home/End keys move focus across
//     [prev, page triggers..., next] of a bound Surface.
//
// Key concepts
//   - Surface: the live interactive elements of one pagination bar, supplied
//     by the host. See the dom and tui sub-packages for ready-made hosts.
//   - Paginate: slices a gorm query to the current page and fills the count.
//
// Navigation failures are silent: an unbound surface, an unknown key or an
// out-of-bounds focus target leaves everything unchanged.
package pagebar
