package patch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestField_SkipsNil(t *testing.T) {
	cs := New()
	var missing *string
	amount := 3

	Field(cs, "name", missing)
	Field(cs, "amount", &amount)

	assert.False(t, cs.Has("name"))
	assert.True(t, cs.Has("amount"))
	assert.Equal(t, 1, cs.Len())
	v, ok := cs.Value("amount")
	require.True(t, ok)
	assert.Equal(t, 3, v)
}

func TestSet_KeepsFirstPosition(t *testing.T) {
	cs := New().Set("a", 1).Set("b", 2).Set("a", 3)

	assert.Equal(t, []string{"a", "b"}, cs.Columns())
	assert.Equal(t, map[string]any{"a": 3, "b": 2}, cs.Map())
}

func TestEmpty(t *testing.T) {
	var nilSet *ChangeSet
	assert.True(t, nilSet.Empty())
	assert.True(t, New().Empty())
	assert.False(t, New().Set("x", nil).Empty())
}

func TestUpdateStatement(t *testing.T) {
	tests := []struct {
		name     string
		changes  *ChangeSet
		keys     []Key
		wantSQL  string
		wantArgs []any
		wantErr  error
	}{
		{
			name:     "single key",
			changes:  New().Set("price", 250).Set("locker_id", uint(2)),
			keys:     []Key{{Column: "order_id", Value: uint(9)}},
			wantSQL:  "UPDATE orders SET price = ?, locker_id = ? WHERE order_id = ?",
			wantArgs: []any{250, uint(2), uint(9)},
		},
		{
			name:    "composite key values come last",
			changes: New().Set("amount", 4),
			keys: []Key{
				{Column: "order_id", Value: uint(1)},
				{Column: "product_id", Value: uint(5)},
			},
			wantSQL:  "UPDATE orders SET amount = ? WHERE order_id = ? AND product_id = ?",
			wantArgs: []any{4, uint(1), uint(5)},
		},
		{
			name:    "empty set",
			changes: New(),
			keys:    []Key{{Column: "order_id", Value: uint(1)}},
			wantErr: ErrNoFieldsProvided,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args, err := tt.changes.UpdateStatement("orders", tt.keys...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSQL, sql)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestUpdateStatement_RequiresKey(t *testing.T) {
	_, _, err := New().Set("a", 1).UpdateStatement("t")
	assert.Error(t, err)
}
