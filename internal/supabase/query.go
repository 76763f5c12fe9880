package supabase

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

type queryParam struct {
	key   string
	value string
}

// QueryBuilder assembles one table request. Filters and ordering are encoded
// the way the backend's REST layer expects them: `col=eq.val`, `or=(...)`,
// `order=col.desc`. A builder is used for exactly one request.
type QueryBuilder struct {
	client     *Client
	table      string
	method     string
	selectCols string
	params     []queryParam
	single     bool
	merge      bool
	body       any
}

func (q *QueryBuilder) Select(columns ...string) *QueryBuilder {
	q.method = "GET"
	if len(columns) > 0 {
		cols := columns[0]
		for _, c := range columns[1:] {
			cols += "," + c
		}
		q.selectCols = cols
	}
	return q
}

func (q *QueryBuilder) Insert(row any) *QueryBuilder {
	q.method = "POST"
	q.body = row
	return q
}

// Upsert inserts the row, merging into the existing one on key conflict.
func (q *QueryBuilder) Upsert(row any) *QueryBuilder {
	q.method = "POST"
	q.body = row
	q.merge = true
	return q
}

func (q *QueryBuilder) Update(patch any) *QueryBuilder {
	q.method = "PATCH"
	q.body = patch
	return q
}

func (q *QueryBuilder) Delete() *QueryBuilder {
	q.method = "DELETE"
	return q
}

func (q *QueryBuilder) Eq(column, value string) *QueryBuilder {
	q.params = append(q.params, queryParam{column, "eq." + value})
	return q
}

// Or takes a raw disjunction, e.g. "created_by.eq.X,assigned_to.eq.Y".
func (q *QueryBuilder) Or(filters string) *QueryBuilder {
	q.params = append(q.params, queryParam{"or", "(" + filters + ")"})
	return q
}

func (q *QueryBuilder) Order(column string, ascending bool) *QueryBuilder {
	direction := ".desc"
	if ascending {
		direction = ".asc"
	}
	q.params = append(q.params, queryParam{"order", column + direction})
	return q
}

func (q *QueryBuilder) Limit(n int) *QueryBuilder {
	q.params = append(q.params, queryParam{"limit", strconv.Itoa(n)})
	return q
}

// Single asks the backend for exactly one object instead of an array and
// makes it an error if zero or several rows match.
func (q *QueryBuilder) Single() *QueryBuilder {
	q.single = true
	return q
}

// Execute performs the request and discards any response body.
func (q *QueryBuilder) Execute(ctx context.Context) error {
	return q.ExecuteInto(ctx, nil)
}

// ExecuteInto performs the request and decodes the response into dest.
// Writes always request the affected rows back so dest can receive them.
func (q *QueryBuilder) ExecuteInto(ctx context.Context, dest any) error {
	if q.method == "" {
		q.method = "GET"
	}

	values := url.Values{}
	if q.method == "GET" || q.method == "POST" || q.method == "PATCH" {
		values.Set("select", q.selectCols)
	}
	for _, p := range q.params {
		values.Add(p.key, p.value)
	}

	endpoint := fmt.Sprintf("%s/rest/v1/%s?%s", q.client.baseURL, q.table, values.Encode())

	headers := map[string]string{}
	if q.method == "POST" || q.method == "PATCH" {
		prefer := "return=representation"
		if q.merge {
			prefer += ",resolution=merge-duplicates"
		}
		headers["Prefer"] = prefer
	}
	if q.single {
		headers["Accept"] = "application/vnd.pgrst.object+json"
	}

	return q.client.do(ctx, q.method, endpoint, headers, q.body, dest)
}
