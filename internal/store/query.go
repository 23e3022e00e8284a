package store

// SortOrder is the direction of a single sort term.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// SortField is one term of a multi-field sort, in request order.
type SortField struct {
	Field string
	Order SortOrder
}

// ListQuery is the normalized descriptor a list endpoint hands to a store.
// Filters hold equality-only conditions on whitelisted columns; Offset and
// Limit implement page/limit pagination; Sort is an ordered list of
// whitelisted sort terms.
type ListQuery struct {
	Filters map[string]any
	Offset  int
	Limit   int
	Sort    []SortField
}

// Pagination describes the page of results a list endpoint returned.
type Pagination struct {
	TotalItems  int64 `json:"totalItems"`
	TotalPages  int64 `json:"totalPages"`
	CurrentPage int   `json:"currentPage"`
}

// NewPagination computes the pagination block for a list response.
// totalPages is ceil(totalItems/limit).
func NewPagination(totalItems int64, limit, currentPage int) Pagination {
	var totalPages int64
	if limit > 0 {
		totalPages = (totalItems + int64(limit) - 1) / int64(limit)
	}
	return Pagination{
		TotalItems:  totalItems,
		TotalPages:  totalPages,
		CurrentPage: currentPage,
	}
}
