package listquery

import (
	"fmt"
	"math"
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// Query parameter names.
const (
	ParamPage   = "page"
	ParamLimit  = "limit"
	ParamSearch = "search"
	ParamSort   = "sort"
	ParamOrder  = "order"
)

// limitAliases are accepted in place of ParamLimit, in priority order.
var limitAliases = []string{ParamLimit, "pageSize", "page_size"}

const (
	fallbackLimit = 10
	maxPage       = 1<<31 - 1
)

// Params are raw list parameters as received from a query string or form.
type Params map[string]string

// ParamsFromValues keeps the first value of every key.
func ParamsFromValues(values url.Values) Params {
	params := make(Params, len(values))
	for key, vals := range values {
		if len(vals) > 0 {
			params[key] = vals[0]
		}
	}
	return params
}

func (p Params) get(key string) string {
	return strings.TrimSpace(p[key])
}

// Search is a case-insensitive substring match OR-ed across Fields.
type Search struct {
	Term   string
	Fields []string
}

// Equality constrains Column to Value. Value is a string, bool or int64.
type Equality struct {
	Column string
	Value  any
}

// Descriptor is the normalized form of a list request.
type Descriptor struct {
	Resource string
	Search   *Search
	Filters  []Equality
	Sort     Sort
	Page     int
	Limit    int
	Offset   int
}

// Build normalizes params against the resource configuration.
func Build(params Params, r Resource) Descriptor {
	page := parsePositive(params.get(ParamPage), 1)
	if page > maxPage {
		page = maxPage
	}

	limit := r.defaultLimit()
	for _, key := range limitAliases {
		if raw := params.get(key); raw != "" {
			limit = parsePositive(raw, r.defaultLimit())
			break
		}
	}
	if r.MaxLimit > 0 && limit > r.MaxLimit {
		limit = r.MaxLimit
	}
	// Uncapped resources accept any limit; keep (page-1)*limit in range.
	if page-1 > math.MaxInt/limit {
		page = math.MaxInt/limit + 1
	}

	d := Descriptor{
		Resource: r.Name,
		Sort:     resolveSort(params, r),
		Page:     page,
		Limit:    limit,
		Offset:   (page - 1) * limit,
	}

	if term := params.get(ParamSearch); term != "" && len(r.SearchFields) > 0 {
		d.Search = &Search{Term: term, Fields: append([]string(nil), r.SearchFields...)}
	}

	for _, field := range r.Filters {
		raw := params.get(field.Param)
		if raw == "" {
			continue
		}
		if value, ok := coerce(field, raw); ok {
			d.Filters = append(d.Filters, Equality{Column: field.column(), Value: value})
		}
	}

	return d
}

// With returns a copy of d constrained to column = value, replacing any
// existing constraint on that column. Services use it to pin filters the
// caller must not control, e.g. published=true on public listings.
func (d Descriptor) With(column string, value any) Descriptor {
	filters := make([]Equality, 0, len(d.Filters)+1)
	replaced := false
	for _, f := range d.Filters {
		if f.Column == column {
			f.Value = value
			replaced = true
		}
		filters = append(filters, f)
	}
	if !replaced {
		filters = append(filters, Equality{Column: column, Value: value})
	}
	d.Filters = filters
	return d
}

// Filter returns the value constraining column, if any.
func (d Descriptor) Filter(column string) (any, bool) {
	for _, f := range d.Filters {
		if f.Column == column {
			return f.Value, true
		}
	}
	return nil, false
}

// Unpaged returns a copy of d without a page window, for exports.
func (d Descriptor) Unpaged(limit int) Descriptor {
	d.Page = 1
	d.Offset = 0
	d.Limit = limit
	return d
}

// Meta builds pagination metadata for this descriptor's page window.
func (d Descriptor) Meta(total int64) Meta {
	return NewMeta(d.Page, d.Limit, total)
}

// Key is a canonical string for the descriptor; equal descriptors have
// equal keys. It is used to address cached list results.
func (d Descriptor) Key() string {
	var b strings.Builder
	b.WriteString(d.Resource)

	if d.Search != nil {
		fmt.Fprintf(&b, "|q=%q", strings.ToLower(d.Search.Term))
	}

	filters := append([]Equality(nil), d.Filters...)
	sort.SliceStable(filters, func(i, j int) bool { return filters[i].Column < filters[j].Column })
	for _, f := range filters {
		fmt.Fprintf(&b, "|%s=%q", f.Column, valueString(f.Value))
	}

	dir := "asc"
	if d.Sort.Desc {
		dir = "desc"
	}
	fmt.Fprintf(&b, "|sort=%s:%s|page=%d|limit=%d", d.Sort.Column, dir, d.Page, d.Limit)

	return b.String()
}

// Matches evaluates the descriptor's predicate against a record whose
// column values are given as strings. Booleans are "true"/"false".
func (d Descriptor) Matches(record map[string]string) bool {
	if d.Search != nil {
		term := strings.ToLower(d.Search.Term)
		found := false
		for _, field := range d.Search.Fields {
			if strings.Contains(strings.ToLower(record[field]), term) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	for _, f := range d.Filters {
		if record[f.Column] != valueString(f.Value) {
			return false
		}
	}

	return true
}

func resolveSort(params Params, r Resource) Sort {
	s := r.defaultSort()

	if column := params.get(ParamSort); column != "" && r.sortable(column) {
		s = Sort{Column: column, Desc: true}
	}

	switch strings.ToLower(params.get(ParamOrder)) {
	case "asc":
		s.Desc = false
	case "desc":
		s.Desc = true
	}

	return s
}

func parsePositive(raw string, fallback int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

func coerce(field Field, raw string) (any, bool) {
	switch field.Kind {
	case KindBoolean:
		return parseBool(raw)
	case KindEnum:
		for _, allowed := range field.Values {
			if strings.EqualFold(allowed, raw) {
				return allowed, true
			}
		}
		return nil, false
	case KindInteger:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, false
		}
		return n, true
	default:
		return raw, true
	}
}

func parseBool(raw string) (bool, bool) {
	switch strings.ToLower(raw) {
	case "true", "1", "yes", "on", "t":
		return true, true
	case "false", "0", "no", "off", "f":
		return false, true
	}
	return false, false
}

func valueString(v any) string {
	switch val := v.(type) {
	case bool:
		return strconv.FormatBool(val)
	case string:
		return val
	case int64:
		return strconv.FormatInt(val, 10)
	default:
		return fmt.Sprint(val)
	}
}
