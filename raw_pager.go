package pagebar

// RawPager is intended for API payloads. For proper code generation, inline it:
//
//	type MyFilter struct {
//	    Paging RawPager `json:",inline"`
//	}
type RawPager struct {
	// Page - 1-based page number. Values below 1 select the first page.
	Page int `json:"page"`
	// PerPage - number of records per page, normalized with MaxPerPage.
	PerPage int `json:"perPage"`
}

// Decode converts RawPager into a *Root identified by id.
func (p RawPager) Decode(id string) *Root {
	return p.DecodeMax(id, MaxPerPage)
}

// DecodeMax is Decode with a caller-provided upper bound for PerPage.
func (p RawPager) DecodeMax(id string, maxPerPage int) *Root {
	return NewRoot(id).
		WithPerPage(NormalizePerPageMax(p.PerPage, maxPerPage)).
		WithPage(max(p.Page, 1))
}
