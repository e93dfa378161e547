package feature

import "strings"

// columnSanitizer rewrites property and modifier text into column names that
// survive CSV headers and downstream tooling.
var columnSanitizer = strings.NewReplacer(
	" ", "_",
	"%", "",
	"+", "",
	"'", "",
	",", "",
	"\n", "_",
)

// SanitizeColumn returns the canonical column name for raw property or
// modifier text.
func SanitizeColumn(name string) string {
	return columnSanitizer.Replace(name)
}

// Row is an ordered set of feature columns. Column names are sanitized on
// insert; setting an existing column overwrites its value without changing
// its position.
type Row struct {
	names  []string
	values map[string]float64
}

// NewRow returns an empty Row.
func NewRow() *Row {
	return &Row{values: make(map[string]float64)}
}

// Set stores a value under the sanitized form of name.
func (r *Row) Set(name string, value float64) {
	name = SanitizeColumn(name)
	if _, ok := r.values[name]; !ok {
		r.names = append(r.names, name)
	}
	r.values[name] = value
}

// Get returns the value stored under the sanitized form of name.
func (r *Row) Get(name string) (float64, bool) {
	v, ok := r.values[SanitizeColumn(name)]
	return v, ok
}

// Columns returns the column names in insertion order.
func (r *Row) Columns() []string {
	return r.names
}

// Len returns the number of columns in the row.
func (r *Row) Len() int {
	return len(r.names)
}
