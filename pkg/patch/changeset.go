// Package patch turns sparse update requests into an ordered set of column
// assignments that a repository can apply in a single statement.
package patch

import (
	"errors"
	"strings"
)

var ErrNoFieldsProvided = errors.New("there are no fields to update")

type (
	// ChangeSet keeps assignments in the order they were added so the
	// generated statement and its bind values always line up.
	ChangeSet struct {
		columns []string
		values  map[string]any
	}

	// Key is a column/value pair used in the WHERE clause of an update.
	Key struct {
		Column string
		Value  any
	}
)

func New() *ChangeSet {
	return &ChangeSet{values: map[string]any{}}
}

// Set assigns value to column. Setting the same column twice keeps the
// original position and replaces the value.
func (c *ChangeSet) Set(column string, value any) *ChangeSet {
	if _, ok := c.values[column]; !ok {
		c.columns = append(c.columns, column)
	}
	c.values[column] = value
	return c
}

// Field adds column only when value is non-nil.
func Field[T any](c *ChangeSet, column string, value *T) {
	if value == nil {
		return
	}
	c.Set(column, *value)
}

func (c *ChangeSet) Empty() bool {
	return c == nil || len(c.columns) == 0
}

func (c *ChangeSet) Len() int {
	if c == nil {
		return 0
	}
	return len(c.columns)
}

func (c *ChangeSet) Has(column string) bool {
	if c == nil {
		return false
	}
	_, ok := c.values[column]
	return ok
}

func (c *ChangeSet) Value(column string) (any, bool) {
	if c == nil {
		return nil, false
	}
	v, ok := c.values[column]
	return v, ok
}

func (c *ChangeSet) Columns() []string {
	if c == nil {
		return nil
	}
	out := make([]string, len(c.columns))
	copy(out, c.columns)
	return out
}

// Map returns the assignments in a form accepted by gorm's Updates.
func (c *ChangeSet) Map() map[string]any {
	out := make(map[string]any, c.Len())
	for _, col := range c.Columns() {
		out[col] = c.values[col]
	}
	return out
}

// UpdateStatement renders "UPDATE table SET a = ?, b = ? WHERE k = ?" with the
// assignment values first and the key values last.
func (c *ChangeSet) UpdateStatement(table string, keys ...Key) (string, []any, error) {
	if c.Empty() {
		return "", nil, ErrNoFieldsProvided
	}
	if len(keys) == 0 {
		return "", nil, errors.New("patch: update without key")
	}

	sets := make([]string, 0, len(c.columns))
	args := make([]any, 0, len(c.columns)+len(keys))
	for _, col := range c.columns {
		sets = append(sets, col+" = ?")
		args = append(args, c.values[col])
	}

	where := make([]string, 0, len(keys))
	for _, k := range keys {
		where = append(where, k.Column+" = ?")
		args = append(args, k.Value)
	}

	stmt := "UPDATE " + table + " SET " + strings.Join(sets, ", ") + " WHERE " + strings.Join(where, " AND ")
	return stmt, args, nil
}
