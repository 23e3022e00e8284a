package api

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/savori/savory-api/internal/store"
)

// Pagination defaults
const (
	defaultPage  = 1
	defaultLimit = 10
)

// BuildListQuery translates page/limit/sort query parameters and body
// filters into a normalized store.ListQuery against a resource's
// whitelists. It returns the query and the normalized page number the
// caller needs for the pagination block.
//
// The whitelists are the only field names the builder will read from
// client input, which keeps arbitrary-field injection out of the generated
// SQL while leaving the builder resource-agnostic.
//
// Rules:
//   - page and limit normalize to at least 1; non-numeric input falls back
//     to the defaults (page 1, limit 10); offset = (page-1)*limit.
//   - a body field is copied verbatim into Filters only when whitelisted
//     (equality filters only).
//   - sort accepts one or more "field:order" terms; non-whitelisted fields
//     are silently dropped and an order other than asc/desc defaults to
//     asc.
func BuildListQuery(
	filterFields, sortFields []string,
	body map[string]any,
	query url.Values,
) (store.ListQuery, int) {
	page := parsePositiveInt(query.Get("page"), defaultPage)
	limit := parsePositiveInt(query.Get("limit"), defaultLimit)

	filters := make(map[string]any)
	for _, field := range filterFields {
		if value, ok := body[field]; ok && value != nil {
			filters[field] = value
		}
	}

	var sort []store.SortField
	for _, term := range query["sort"] {
		field, order, _ := strings.Cut(term, ":")
		if !contains(sortFields, field) {
			continue
		}
		sort = append(sort, store.SortField{
			Field: field,
			Order: normalizeOrder(order),
		})
	}

	return store.ListQuery{
		Filters: filters,
		Offset:  (page - 1) * limit,
		Limit:   limit,
		Sort:    sort,
	}, page
}

// parsePositiveInt parses s as a positive integer, falling back to def
// when the input is missing, non-numeric or below 1.
func parsePositiveInt(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return def
	}
	return n
}

func normalizeOrder(order string) store.SortOrder {
	switch order {
	case "asc":
		return store.SortAsc
	case "desc":
		return store.SortDesc
	default:
		return store.SortAsc
	}
}

func contains(fields []string, field string) bool {
	for _, f := range fields {
		if f == field {
			return true
		}
	}
	return false
}
