package pagebar

const (
	DefaultPerPage = 1
	MaxPerPage     = 100
)

// IsNormalizedPerPageMax returns perPage clamped to (0, maxPerPage] and
// reports whether it was already inside that range. Non-positive values fall
// back to DefaultPerPage.
func IsNormalizedPerPageMax(perPage int, maxPerPage int) (int, bool) {
	if perPage <= 0 {
		return DefaultPerPage, false
	} else if perPage > maxPerPage {
		return maxPerPage, false
	}

	return perPage, true
}

func NormalizePerPageMax(perPage int, maxPerPage int) int {
	ret, _ := IsNormalizedPerPageMax(perPage, maxPerPage)
	return ret
}

// NormalizePerPage only guarantees a positive page size. It has no upper bound;
// use NormalizePerPageMax for untrusted input.
func NormalizePerPage(perPage int) int {
	if perPage <= 0 {
		return DefaultPerPage
	}

	return perPage
}
