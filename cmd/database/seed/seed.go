// Package seed loads fixture data from a YAML file into an empty or
// partially filled database. Rows that already exist are left alone.
package seed

import (
	"Groeneweide-Backend/entities"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	Fixtures struct {
		Categories      []CategoryFixture       `yaml:"categories"`
		Products        []ProductFixture        `yaml:"products"`
		Recipes         []RecipeFixture         `yaml:"recipes"`
		RecipeParts     []RecipePartFixture     `yaml:"recipe_parts"`
		Bookings        []BookingFixture        `yaml:"bookings"`
		Lockers         []LockerFixture         `yaml:"lockers"`
		Orders          []OrderFixture          `yaml:"orders"`
		OrderedProducts []OrderedProductFixture `yaml:"ordered_products"`
	}

	CategoryFixture struct {
		ID   uint   `yaml:"id"`
		Name string `yaml:"name"`
	}

	ProductFixture struct {
		ID            uint   `yaml:"id"`
		CategoryID    uint   `yaml:"category_id"`
		Name          string `yaml:"name"`
		AssetsURL     string `yaml:"assets_url"`
		Price         int64  `yaml:"price"`
		Size          string `yaml:"size"`
		AmountInStock int    `yaml:"amount_in_stock"`
	}

	RecipeFixture struct {
		ID           uint   `yaml:"id"`
		Name         string `yaml:"name"`
		AssetsURL    string `yaml:"assets_url"`
		PeopleServed int    `yaml:"people_served"`
		PrepTime     int    `yaml:"prep_time"`
	}

	RecipePartFixture struct {
		RecipeID  uint `yaml:"recipe_id"`
		ProductID uint `yaml:"product_id"`
		Amount    int  `yaml:"amount"`
	}

	BookingFixture struct {
		ID          uint      `yaml:"id"`
		MomentStart time.Time `yaml:"moment_start"`
		MomentEnd   time.Time `yaml:"moment_end"`
	}

	LockerFixture struct {
		ID        uint  `yaml:"id"`
		BookingID *uint `yaml:"booking_id"`
	}

	OrderFixture struct {
		ID              uint       `yaml:"id"`
		LockerID        uint       `yaml:"locker_id"`
		BookingID       uint       `yaml:"booking_id"`
		Price           int64      `yaml:"price"`
		MomentCreated   time.Time  `yaml:"moment_created"`
		MomentDelivered *time.Time `yaml:"moment_delivered"`
		MomentGathered  *time.Time `yaml:"moment_gathered"`
	}

	OrderedProductFixture struct {
		OrderID   uint `yaml:"order_id"`
		ProductID uint `yaml:"product_id"`
		Amount    int  `yaml:"amount"`
	}
)

func ParseFixtures(data []byte) (*Fixtures, error) {
	var f Fixtures
	if err := yaml.UnmarshalStrict(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse fixtures: %w", err)
	}
	return &f, nil
}

// Rows converts the fixtures into entities, grouped per table in insert order.
func (f *Fixtures) Rows() [][]any {
	var categories, products, recipes, parts, bookings, lockers, orders, lines []any
	for _, c := range f.Categories {
		categories = append(categories, &entities.Category{CategoryID: c.ID, Name: c.Name})
	}
	for _, p := range f.Products {
		products = append(products, &entities.Product{
			ProductID:     p.ID,
			CategoryID:    p.CategoryID,
			Name:          p.Name,
			AssetsURL:     p.AssetsURL,
			Price:         p.Price,
			Size:          p.Size,
			AmountInStock: p.AmountInStock,
		})
	}
	for _, r := range f.Recipes {
		recipes = append(recipes, &entities.Recipe{
			RecipeID:     r.ID,
			Name:         r.Name,
			AssetsURL:    r.AssetsURL,
			PeopleServed: r.PeopleServed,
			PrepTime:     r.PrepTime,
		})
	}
	for _, p := range f.RecipeParts {
		parts = append(parts, &entities.RecipePart{RecipeID: p.RecipeID, ProductID: p.ProductID, Amount: p.Amount})
	}
	for _, b := range f.Bookings {
		bookings = append(bookings, &entities.Booking{BookingID: b.ID, MomentStart: b.MomentStart, MomentEnd: b.MomentEnd})
	}
	for _, l := range f.Lockers {
		lockers = append(lockers, &entities.Locker{LockerID: l.ID, BookingID: l.BookingID})
	}
	for _, o := range f.Orders {
		orders = append(orders, &entities.Order{
			OrderID:         o.ID,
			LockerID:        o.LockerID,
			BookingID:       o.BookingID,
			Price:           o.Price,
			MomentCreated:   o.MomentCreated,
			MomentDelivered: o.MomentDelivered,
			MomentGathered:  o.MomentGathered,
		})
	}
	for _, l := range f.OrderedProducts {
		lines = append(lines, &entities.OrderedProduct{OrderID: l.OrderID, ProductID: l.ProductID, Amount: l.Amount})
	}
	return [][]any{categories, products, recipes, parts, bookings, lockers, orders, lines}
}

// Seed inserts the fixtures in one transaction, skipping rows whose key
// already exists.
func Seed(db *gorm.DB, path string, logger *zap.Logger) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read fixtures: %w", err)
	}
	fixtures, err := ParseFixtures(data)
	if err != nil {
		return err
	}

	inserted := 0
	err = db.Transaction(func(tx *gorm.DB) error {
		for _, rows := range fixtures.Rows() {
			for _, row := range rows {
				res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(row)
				if res.Error != nil {
					return fmt.Errorf("failed to seed %T: %w", row, res.Error)
				}
				inserted += int(res.RowsAffected)
			}
		}
		return resetSequences(tx)
	})
	if err != nil {
		return err
	}

	logger.Info("database seeded", zap.String("file", path), zap.Int("inserted", inserted))
	return nil
}

var serialKeys = []struct{ table, column string }{
	{entities.TableCategories, entities.ColCategoryID},
	{entities.TableProducts, entities.ColProductID},
	{entities.TableRecipes, entities.ColRecipeID},
	{entities.TableBookings, entities.ColBookingID},
	{entities.TableLockers, entities.ColLockerID},
	{entities.TableOrders, entities.ColOrderID},
}

// resetSequences moves postgres serial sequences past the seeded IDs.
// MySQL adjusts AUTO_INCREMENT on explicit inserts by itself.
func resetSequences(tx *gorm.DB) error {
	if tx.Dialector.Name() != "postgres" {
		return nil
	}
	for _, k := range serialKeys {
		stmt := fmt.Sprintf(
			"SELECT setval(pg_get_serial_sequence('%s', '%s'), COALESCE((SELECT MAX(%s) FROM %s), 0) + 1, false)",
			k.table, k.column, k.column, k.table,
		)
		if err := tx.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to reset sequence of %s: %w", k.table, err)
		}
	}
	return nil
}
