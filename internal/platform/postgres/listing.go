package postgres

import (
	"fmt"
	"sort"
	"strings"

	"github.com/savori/savory-api/internal/store"
)

// buildListClauses renders the filter, sort and pagination parts of a
// store.ListQuery into SQL fragments.
//
// whereSQL is either empty or a full " WHERE ..." clause with $n
// placeholders matching whereArgs; the count query uses these alone.
// tailSQL appends ORDER BY / LIMIT / OFFSET for the page query, whose
// arguments are whereArgs followed by q.Limit and q.Offset.
//
// Filter and sort field names reach this function only through the
// handler whitelists, so they are safe to interpolate as column names.
// Filter keys are sorted to keep the generated SQL deterministic.
func buildListClauses(q store.ListQuery) (whereSQL, tailSQL string, whereArgs, pageArgs []any) {
	if len(q.Filters) > 0 {
		keys := make([]string, 0, len(q.Filters))
		for key := range q.Filters {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		conditions := make([]string, 0, len(keys))
		for _, key := range keys {
			whereArgs = append(whereArgs, q.Filters[key])
			conditions = append(conditions, fmt.Sprintf("%s = $%d", key, len(whereArgs)))
		}
		whereSQL = " WHERE " + strings.Join(conditions, " AND ")
	}

	var tail strings.Builder
	if len(q.Sort) > 0 {
		terms := make([]string, 0, len(q.Sort))
		for _, s := range q.Sort {
			direction := "ASC"
			if s.Order == store.SortDesc {
				direction = "DESC"
			}
			terms = append(terms, s.Field+" "+direction)
		}
		tail.WriteString(" ORDER BY " + strings.Join(terms, ", "))
	}

	tail.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(whereArgs)+1, len(whereArgs)+2))

	pageArgs = make([]any, 0, len(whereArgs)+2)
	pageArgs = append(pageArgs, whereArgs...)
	pageArgs = append(pageArgs, q.Limit, q.Offset)

	return whereSQL, tail.String(), whereArgs, pageArgs
}
