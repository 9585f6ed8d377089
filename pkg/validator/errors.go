package validator

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ValidationError collects every problem found in a payload rather than the
// first one. Fields maps a field name to its messages; Items holds per-element
// problems when a list was validated.
type ValidationError struct {
	Fields map[string][]string
	Items  map[int]map[string][]string
}

func (e *ValidationError) Add(field, msg string) {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[field] = append(e.Fields[field], msg)
}

func (e *ValidationError) AddItem(index int, fields map[string][]string) {
	if len(fields) == 0 {
		return
	}
	if e.Items == nil {
		e.Items = make(map[int]map[string][]string)
	}
	item := e.Items[index]
	if item == nil {
		item = make(map[string][]string)
		e.Items[index] = item
	}
	for field, msgs := range fields {
		item[field] = append(item[field], msgs...)
	}
}

// Has reports whether field already has at least one problem.
func (e *ValidationError) Has(field string) bool {
	return len(e.Fields[field]) > 0
}

func (e *ValidationError) Empty() bool {
	return e == nil || (len(e.Fields) == 0 && len(e.Items) == 0)
}

// OrNil returns nil for an empty error so callers can return it directly.
func (e *ValidationError) OrNil() error {
	if e.Empty() {
		return nil
	}
	return e
}

// Messages flattens the error into "field: message" lines in a stable order.
func (e *ValidationError) Messages() []string {
	if e == nil {
		return nil
	}

	var out []string
	out = append(out, flatten("", e.Fields)...)

	indexes := make([]int, 0, len(e.Items))
	for i := range e.Items {
		indexes = append(indexes, i)
	}
	sort.Ints(indexes)
	for _, i := range indexes {
		out = append(out, flatten(strconv.Itoa(i)+".", e.Items[i])...)
	}
	return out
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Messages(), "; "))
}

func flatten(prefix string, fields map[string][]string) []string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	var out []string
	for _, name := range names {
		for _, msg := range fields[name] {
			out = append(out, prefix+name+": "+msg)
		}
	}
	return out
}
