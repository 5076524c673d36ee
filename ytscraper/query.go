package ytscraper

import (
	"net/url"
	"strings"
	"time"
)

// Param is one key/value pair of a Query.
type Param struct {
	Key   string
	Value string
}

// Query is the ordered set of query parameters sent on the wire.
// Keys keep the order they were added in.
type Query struct {
	params []Param
}

// Get returns the value stored under key and whether the key is present.
func (q Query) Get(key string) (string, bool) {
	for _, p := range q.params {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

// Has reports whether key is present.
func (q Query) Has(key string) bool {
	_, ok := q.Get(key)
	return ok
}

// Len returns the number of parameters.
func (q Query) Len() int { return len(q.params) }

// Keys returns parameter names in wire order.
func (q Query) Keys() []string {
	keys := make([]string, len(q.params))
	for i, p := range q.params {
		keys[i] = p.Key
	}
	return keys
}

// Params returns a copy of the parameters in wire order.
func (q Query) Params() []Param {
	out := make([]Param, len(q.params))
	copy(out, q.params)
	return out
}

// Values converts the query to url.Values.
func (q Query) Values() url.Values {
	v := make(url.Values, len(q.params))
	for _, p := range q.params {
		v.Add(p.Key, p.Value)
	}
	return v
}

// Encode renders the query as "k=v&k=v" in wire order.
func (q Query) Encode() string {
	var sb strings.Builder
	for i, p := range q.params {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(p.Key))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(p.Value))
	}
	return sb.String()
}

func (q *Query) add(key, value string) {
	q.params = append(q.params, Param{Key: key, Value: value})
}

// addOptional adds key only when v is non-nil. This is the single place
// where absent optional fields are dropped.
func addOptional[T ~string](q *Query, key string, v *T) {
	if v == nil {
		return
	}
	q.add(key, string(*v))
}

// Locale carries the geography (gl) and language (hl) hints accepted by
// every operation.
type Locale struct {
	GL *string
	HL *string
}

func (l Locale) addTo(q *Query) {
	addOptional(q, "gl", l.GL)
	addOptional(q, "hl", l.HL)
}

// String returns a pointer to v, for populating optional fields.
func String(v string) *string { return &v }

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T { return &v }

// FilterDate formats t as the YYYYMMDD value expected by filterByDate.
func FilterDate(t time.Time) *string {
	return String(t.Format("20060102"))
}
