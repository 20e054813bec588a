package document

import "strconv"

// Collection identifies one of the named document sets held by the gateway.
type Collection string

const (
	Orders   Collection = "orders"
	Bookings Collection = "bookings"
	Products Collection = "products"
	Users    Collection = "users"
)

// Document is a schemaless record read from the gateway. The ID is unique
// within its collection; everything else is decoded defensively by the
// entity parsers, so a missing or oddly typed field is never an error.
type Document struct {
	ID     string
	Fields map[string]any
}

// Str returns the string value for key, or "" when the field is absent
// or not a string.
func (d Document) Str(key string) string {
	s, _ := d.Fields[key].(string)
	return s
}

// StrOr returns the string value for key, or fallback when empty.
func (d Document) StrOr(key, fallback string) string {
	if s := d.Str(key); s != "" {
		return s
	}
	return fallback
}

// StrList returns the field as an ordered list of strings. Legacy documents
// store some fields as a single string and newer ones as an array; both
// shapes are accepted. Non-string array entries are skipped.
func (d Document) StrList(key string) []string {
	switch v := d.Fields[key].(type) {
	case string:
		if v == "" {
			return nil
		}
		return []string{v}
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// Maps returns the field as a list of nested objects, e.g. order line items.
func (d Document) Maps(key string) []map[string]any {
	list, ok := d.Fields[key].([]any)
	if !ok {
		return nil
	}
	out := make([]map[string]any, 0, len(list))
	for _, e := range list {
		if m, ok := e.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

// Int returns the field as an int, accepting JSON numbers and numeric
// strings. Returns 0 otherwise.
func (d Document) Int(key string) int {
	switch v := d.Fields[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case int64:
		return int(v)
	case string:
		n, ok := atoiLoose(v)
		if !ok {
			return 0
		}
		return n
	default:
		return 0
	}
}

// atoiLoose parses a non-negative digit-only string. Signs, spaces and
// values that do not fit an int all fail rather than wrapping.
func atoiLoose(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
