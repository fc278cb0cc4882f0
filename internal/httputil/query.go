package httputil

import (
	"net/http"
	"strconv"

	"blogapi/internal/domain/models"
)

// ParseListOptions reads the shared list query parameters (search,
// ordering, page, page_size) from the request. Values are parsed
// leniently here; normalization and allow-list validation happen in the
// service via ApplyDefaults/Validate.
func ParseListOptions(r *http.Request) models.ListOptions {
	query := r.URL.Query()

	opts := models.ListOptions{
		Search:   query.Get("search"),
		Ordering: query.Get("ordering"),
	}

	if raw := query.Get("page"); raw != "" {
		if page, err := strconv.Atoi(raw); err == nil {
			opts.Page = page
		}
	}
	if raw := query.Get("page_size"); raw != "" {
		if size, err := strconv.Atoi(raw); err == nil {
			opts.PageSize = size
		}
	}

	return opts
}
