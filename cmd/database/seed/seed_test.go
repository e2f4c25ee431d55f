package seed

import (
	"Groeneweide-Backend/entities"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFixtures_File(t *testing.T) {
	data, err := os.ReadFile("fixtures.yaml")
	require.NoError(t, err)

	f, err := ParseFixtures(data)
	require.NoError(t, err)

	assert.Len(t, f.Categories, 2)
	assert.Len(t, f.Products, 3)
	assert.Len(t, f.OrderedProducts, 2)
	require.Len(t, f.Lockers, 2)
	require.NotNil(t, f.Lockers[0].BookingID)
	assert.Equal(t, uint(1), *f.Lockers[0].BookingID)
	assert.Nil(t, f.Lockers[1].BookingID)
	assert.Equal(t, time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC), f.Bookings[0].MomentStart.UTC())
}

func TestParseFixtures_RejectsUnknownKeys(t *testing.T) {
	_, err := ParseFixtures([]byte("categories:\n  - id: 1\n    title: Zuivel\n"))
	assert.Error(t, err)
}

func TestRows_ParentsFirst(t *testing.T) {
	f, err := ParseFixtures([]byte(`
products:
  - id: 7
    category_id: 1
    name: Kwark
    price: 199
categories:
  - id: 1
    name: Zuivel
ordered_products:
  - order_id: 3
    product_id: 7
    amount: 2
`))
	require.NoError(t, err)

	rows := f.Rows()
	require.Len(t, rows, 8)
	assert.Equal(t, []any{&entities.Category{CategoryID: 1, Name: "Zuivel"}}, rows[0])
	assert.Equal(t, []any{&entities.Product{ProductID: 7, CategoryID: 1, Name: "Kwark", Price: 199}}, rows[1])
	assert.Equal(t, []any{&entities.OrderedProduct{OrderID: 3, ProductID: 7, Amount: 2}}, rows[7])
	assert.Empty(t, rows[4])
}
