// Package query turns list-request parameters into composable SQL fragments.
// Each resource declares a Spec of filterable, searchable, and orderable
// fields; anything outside the spec is ignored rather than rejected.
// Composition is fixed: filter -> search -> order -> paginate, and ordering
// never changes result membership.
package query

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

const (
	// DefaultLimit bounds list responses when no limit is requested.
	DefaultLimit = 100

	searchParam   = "search"
	orderingParam = "ordering"
	limitParam    = "limit"
	offsetParam   = "offset"
)

// Spec declares the query capabilities of one resource collection.
type Spec struct {
	Filterable []string
	Searchable []string
	Orderable  []string
	// DefaultOrder names an orderable field, optionally prefixed with '-'
	// for descending order. Applied when no ordering key is requested.
	DefaultOrder string
}

// Options carries the parsed query parameters of a single list request.
type Options struct {
	Filters  map[string]string
	Search   string
	Ordering string
	Limit    int
	Offset   int
}

// ParseOptions extracts the options relevant to spec from raw URL values.
// Filter keys not in the filterable set are dropped.
func ParseOptions(values url.Values, spec Spec) Options {
	opts := Options{
		Filters: make(map[string]string),
		Limit:   DefaultLimit,
	}

	for _, field := range spec.Filterable {
		if v := values.Get(field); v != "" {
			opts.Filters[field] = v
		}
	}

	opts.Search = values.Get(searchParam)
	opts.Ordering = values.Get(orderingParam)

	if limit, err := strconv.Atoi(values.Get(limitParam)); err == nil && limit > 0 {
		opts.Limit = limit
	}
	if offset, err := strconv.Atoi(values.Get(offsetParam)); err == nil && offset >= 0 {
		opts.Offset = offset
	}

	return opts
}

// Query is the SQL suffix produced for one list request. Where and OrderBy
// reference only whitelisted column names from the Spec.
type Query struct {
	Where   string
	Args    []interface{}
	OrderBy string
	Limit   int
	Offset  int
}

// Build composes the filter, search, ordering, and pagination fragments.
// Exact-match filters are ANDed; the search term matches case-insensitively
// as a substring against each searchable field, ORed. Ordering falls back
// to the spec default and always breaks ties by id ascending so repeated
// identical queries return a stable order.
func Build(spec Spec, opts Options) Query {
	q := Query{Limit: opts.Limit, Offset: opts.Offset}
	if q.Limit <= 0 {
		q.Limit = DefaultLimit
	}

	var conditions []string

	// Walk the spec (not the request map) for deterministic placeholders.
	for _, field := range spec.Filterable {
		value, ok := opts.Filters[field]
		if !ok {
			continue
		}
		q.Args = append(q.Args, value)
		// Cast so non-text columns (rating, approved, dates) compare
		// against the string parameter.
		conditions = append(conditions, fmt.Sprintf("%s::text = $%d", field, len(q.Args)))
	}

	if term := strings.TrimSpace(opts.Search); term != "" && len(spec.Searchable) > 0 {
		var matches []string
		pattern := "%" + escapeLike(strings.ToLower(term)) + "%"
		for _, field := range spec.Searchable {
			q.Args = append(q.Args, pattern)
			matches = append(matches, fmt.Sprintf("lower(%s::text) LIKE $%d", field, len(q.Args)))
		}
		conditions = append(conditions, "("+strings.Join(matches, " OR ")+")")
	}

	if len(conditions) > 0 {
		q.Where = strings.Join(conditions, " AND ")
	}

	field, descending := resolveOrdering(spec, opts.Ordering)
	direction := "ASC"
	if descending {
		direction = "DESC"
	}
	q.OrderBy = fmt.Sprintf("%s %s, id ASC", field, direction)

	return q
}

// resolveOrdering validates the requested key against the orderable set,
// falling back to the spec default, then to created_at descending.
func resolveOrdering(spec Spec, requested string) (field string, descending bool) {
	for _, candidate := range []string{requested, spec.DefaultOrder, "-created_at"} {
		if candidate == "" {
			continue
		}
		name := strings.TrimPrefix(candidate, "-")
		if candidate == "-created_at" || contains(spec.Orderable, name) {
			return name, strings.HasPrefix(candidate, "-")
		}
	}
	return "created_at", true
}

// SQL renders the suffix appended to a base SELECT statement.
func (q Query) SQL() string {
	var b strings.Builder
	if q.Where != "" {
		b.WriteString(" WHERE ")
		b.WriteString(q.Where)
	}
	b.WriteString(" ORDER BY ")
	b.WriteString(q.OrderBy)
	fmt.Fprintf(&b, " LIMIT %d OFFSET %d", q.Limit, q.Offset)
	return b.String()
}

// likeEscaper neutralizes LIKE metacharacters so the search term matches
// literally. Backslash is the default LIKE escape character in Postgres.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(term string) string {
	return likeEscaper.Replace(term)
}

func contains(fields []string, name string) bool {
	for _, f := range fields {
		if f == name {
			return true
		}
	}
	return false
}
