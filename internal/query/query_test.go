package query

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

var testSpec = Spec{
	Filterable:   []string{"category", "author"},
	Searchable:   []string{"title", "description"},
	Orderable:    []string{"publish_date", "created_at", "title"},
	DefaultOrder: "-publish_date",
}

func TestParseOptions(t *testing.T) {
	t.Run("picks up declared filters only", func(t *testing.T) {
		values := url.Values{}
		values.Set("category", "ai")
		values.Set("approved", "true") // not filterable for this spec
		values.Set("search", "vision")
		values.Set("ordering", "title")

		opts := ParseOptions(values, testSpec)

		assert.Equal(t, map[string]string{"category": "ai"}, opts.Filters)
		assert.Equal(t, "vision", opts.Search)
		assert.Equal(t, "title", opts.Ordering)
		assert.Equal(t, DefaultLimit, opts.Limit)
		assert.Equal(t, 0, opts.Offset)
	})

	t.Run("parses pagination", func(t *testing.T) {
		values := url.Values{}
		values.Set("limit", "25")
		values.Set("offset", "50")

		opts := ParseOptions(values, testSpec)

		assert.Equal(t, 25, opts.Limit)
		assert.Equal(t, 50, opts.Offset)
	})

	t.Run("rejects non-positive limit and negative offset", func(t *testing.T) {
		values := url.Values{}
		values.Set("limit", "0")
		values.Set("offset", "-3")

		opts := ParseOptions(values, testSpec)

		assert.Equal(t, DefaultLimit, opts.Limit)
		assert.Equal(t, 0, opts.Offset)
	})
}

func TestBuild(t *testing.T) {
	t.Run("filters are ANDed with text casts", func(t *testing.T) {
		q := Build(testSpec, Options{
			Filters: map[string]string{"category": "ai", "author": "lee"},
			Limit:   10,
		})

		assert.Equal(t, "category::text = $1 AND author::text = $2", q.Where)
		assert.Equal(t, []interface{}{"ai", "lee"}, q.Args)
	})

	t.Run("search ORs over searchable fields case-insensitively", func(t *testing.T) {
		q := Build(testSpec, Options{Search: "  Vision ", Limit: 10})

		assert.Equal(t, "(lower(title::text) LIKE $1 OR lower(description::text) LIKE $2)", q.Where)
		assert.Equal(t, []interface{}{"%vision%", "%vision%"}, q.Args)
	})

	t.Run("wildcard characters in the term match literally", func(t *testing.T) {
		q := Build(testSpec, Options{Search: "100%", Limit: 10})
		assert.Equal(t, []interface{}{`%100\%%`, `%100\%%`}, q.Args)

		q = Build(testSpec, Options{Search: "a_b", Limit: 10})
		assert.Equal(t, []interface{}{`%a\_b%`, `%a\_b%`}, q.Args)

		q = Build(testSpec, Options{Search: `c:\files`, Limit: 10})
		assert.Equal(t, []interface{}{`%c:\\files%`, `%c:\\files%`}, q.Args)
	})

	t.Run("filter and search compose", func(t *testing.T) {
		q := Build(testSpec, Options{
			Filters: map[string]string{"category": "ai"},
			Search:  "robot",
			Limit:   10,
		})

		assert.Equal(t,
			"category::text = $1 AND (lower(title::text) LIKE $2 OR lower(description::text) LIKE $3)",
			q.Where)
		assert.Len(t, q.Args, 3)
	})

	t.Run("ordering always breaks ties by id", func(t *testing.T) {
		q := Build(testSpec, Options{Ordering: "title", Limit: 10})
		assert.Equal(t, "title ASC, id ASC", q.OrderBy)

		q = Build(testSpec, Options{Ordering: "-created_at", Limit: 10})
		assert.Equal(t, "created_at DESC, id ASC", q.OrderBy)
	})

	t.Run("unknown ordering falls back to spec default", func(t *testing.T) {
		q := Build(testSpec, Options{Ordering: "email", Limit: 10})
		assert.Equal(t, "publish_date DESC, id ASC", q.OrderBy)
	})

	t.Run("spec without default falls back to created_at descending", func(t *testing.T) {
		spec := Spec{Orderable: []string{"name"}}
		q := Build(spec, Options{Limit: 10})
		assert.Equal(t, "created_at DESC, id ASC", q.OrderBy)
	})

	t.Run("zero limit replaced by default", func(t *testing.T) {
		q := Build(testSpec, Options{})
		assert.Equal(t, DefaultLimit, q.Limit)
	})
}

func TestQuerySQL(t *testing.T) {
	t.Run("full suffix", func(t *testing.T) {
		q := Build(testSpec, Options{
			Filters: map[string]string{"category": "ai"},
			Limit:   20,
			Offset:  40,
		})

		assert.Equal(t,
			" WHERE category::text = $1 ORDER BY publish_date DESC, id ASC LIMIT 20 OFFSET 40",
			q.SQL())
	})

	t.Run("no conditions still ordered and paginated", func(t *testing.T) {
		q := Build(testSpec, Options{Limit: 5})
		assert.Equal(t, " ORDER BY publish_date DESC, id ASC LIMIT 5 OFFSET 0", q.SQL())
	})
}
