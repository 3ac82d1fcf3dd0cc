package services

import "portfolio/internal/apperror"

// MaxPageSize caps every listing.
const MaxPageSize = 100

const (
	defaultProjectPageSize = 20
	defaultMessagePageSize = 50
)

// Page is a normalized limit/offset pair.
type Page struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// normalizePage applies the default for a zero limit and caps it at
// MaxPageSize. Negative values are rejected.
func normalizePage(limit, offset, defaultLimit int) (Page, error) {
	if limit < 0 || offset < 0 {
		return Page{}, apperror.Invalid("limit and offset must be non-negative integers")
	}
	if limit == 0 {
		limit = defaultLimit
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	return Page{Limit: limit, Offset: offset}, nil
}
