package resources

import (
	"fmt"
	"net/url"
	"strconv"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
)

// FilterOperator narrows a list by field comparison. List honors eq only;
// Custom serializes filters verbatim regardless of operator.
type FilterOperator string

const (
	OperatorEq       FilterOperator = "eq"
	OperatorContains FilterOperator = "contains"
)

// Filter is one field comparison in an ordered filter sequence.
type Filter struct {
	Field    string
	Operator FilterOperator
	Value    any
}

// SortDirection orders a sorted field.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// Sorter is one entry in an ordered sorter sequence. Only the first sorter is
// honored by the API.
type Sorter struct {
	Field     string
	Direction SortDirection
}

// Pagination selects a page of a list. Zero values mean page 1, size 10.
type Pagination struct {
	Page     int
	PageSize int
}

// ListQuery carries everything a list operation needs. Location is the query
// of the current navigation URL; a currentPage/current parameter there
// overrides Pagination.Page while Page is still at its default.
type ListQuery struct {
	Pagination Pagination
	Sorters    []Sorter
	Filters    []Filter
	Location   url.Values
}

func (q ListQuery) values() url.Values {
	page := q.Pagination.Page
	if page <= 0 {
		page = defaultPage
	}
	pageSize := q.Pagination.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	// The navigation URL wins over a still-default page argument, so a reload
	// of page 3 stays on page 3.
	if page == defaultPage && q.Location != nil {
		rawPage := q.Location.Get("currentPage")
		if rawPage == "" {
			rawPage = q.Location.Get("current")
		}
		if parsed, err := strconv.Atoi(rawPage); err == nil && parsed > 0 {
			page = parsed
		}
	}

	values := url.Values{}
	values.Set("page", strconv.Itoa(page))
	values.Set("limit", strconv.Itoa(pageSize))

	for _, filter := range q.Filters {
		if filter.Operator != OperatorEq {
			continue
		}
		values.Set(filter.Field, formatValue(filter.Value))
	}

	if sort := sortParam(q.Sorters); sort != "" {
		values.Set("sort", sort)
	}

	return values
}

// sortParam reduces a sorter sequence to the single sort parameter the API
// understands, minus-prefixed for descending order.
func sortParam(sorters []Sorter) string {
	if len(sorters) == 0 {
		return ""
	}
	first := sorters[0]
	if first.Direction == SortDesc {
		return "-" + first.Field
	}
	return first.Field
}

func formatValue(value any) string {
	return fmt.Sprintf("%v", value)
}
