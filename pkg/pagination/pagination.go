// Package pagination parses and validates limit/offset query parameters
// shared by every collection endpoint.
package pagination

import (
	"fmt"
	"strconv"

	"github.com/chonost/manuscript-os/pkg/apperror"
)

const (
	// DefaultLimit is applied when the client omits the limit parameter.
	DefaultLimit = 100

	// MaxLimit caps the page size. Larger requests are rejected, not clamped.
	MaxLimit = 1000
)

// Parse validates raw limit/offset query values. Empty strings take the
// defaults. A limit of zero is legal and yields an empty page.
func Parse(limitRaw, offsetRaw string) (limit, offset int, appErr *apperror.Error) {
	limit = DefaultLimit
	if limitRaw != "" {
		n, err := strconv.Atoi(limitRaw)
		if err != nil {
			return 0, 0, apperror.NewBadRequest("limit must be an integer")
		}
		if n < 0 || n > MaxLimit {
			return 0, 0, apperror.NewBadRequest(fmt.Sprintf("limit must be between 0 and %d", MaxLimit))
		}
		limit = n
	}

	if offsetRaw != "" {
		n, err := strconv.Atoi(offsetRaw)
		if err != nil {
			return 0, 0, apperror.NewBadRequest("offset must be an integer")
		}
		if n < 0 {
			return 0, 0, apperror.NewBadRequest("offset must not be negative")
		}
		offset = n
	}

	return limit, offset, nil
}
