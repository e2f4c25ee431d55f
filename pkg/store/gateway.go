// Package store is the single access point to the relational store: existence
// checks, dependent lookups and the transaction runner every service shares.
package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

type (
	// Where is a set of column equality conditions joined with AND.
	Where map[string]any

	Gateway interface {
		// Exists reports whether a row of table has keyColumn = value.
		Exists(ctx context.Context, table, keyColumn string, value any) (bool, error)
		// ExistsByAttribute reports whether any row of table has column = value.
		ExistsByAttribute(ctx context.Context, table, column string, value any) (bool, error)
		// ExistsByAttributeExcept is ExistsByAttribute ignoring the row whose
		// keyColumn equals key. Used for rename checks.
		ExistsByAttributeExcept(ctx context.Context, table, column string, value any, keyColumn string, key any) (bool, error)
		// ExistsWhere reports whether a row matches every condition, e.g. a
		// composite key pair.
		ExistsWhere(ctx context.Context, table string, where Where) (bool, error)
		CountDependents(ctx context.Context, table, foreignKeyColumn string, value any) (int64, error)
		FindDependents(ctx context.Context, table, foreignKeyColumn string, value any, dest any) error
		// Transaction runs fn in a single store transaction. Calls made with
		// the ctx passed to fn join it; a nested call joins the outer one.
		Transaction(ctx context.Context, fn func(ctx context.Context) error) error
	}

	gateway struct {
		db *gorm.DB
	}

	txKey struct{}
)

func NewGateway(db *gorm.DB) Gateway {
	return &gateway{db: db}
}

// Conn returns the connection bound to ctx: the open transaction if there is
// one, db otherwise.
func Conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return db.WithContext(ctx)
}

func InTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(txKey{}).(*gorm.DB)
	return ok
}

func (g *gateway) Exists(ctx context.Context, table, keyColumn string, value any) (bool, error) {
	return g.ExistsWhere(ctx, table, Where{keyColumn: value})
}

func (g *gateway) ExistsByAttribute(ctx context.Context, table, column string, value any) (bool, error) {
	return g.ExistsWhere(ctx, table, Where{column: value})
}

func (g *gateway) ExistsByAttributeExcept(ctx context.Context, table, column string, value any, keyColumn string, key any) (bool, error) {
	var count int64
	err := Conn(ctx, g.db).
		Table(table).
		Where(map[string]any(Where{column: value})).
		Not(map[string]any(Where{keyColumn: key})).
		Count(&count).Error
	if err != nil {
		return false, Wrap(err, "exists "+table)
	}
	return count > 0, nil
}

func (g *gateway) ExistsWhere(ctx context.Context, table string, where Where) (bool, error) {
	if len(where) == 0 {
		return false, fmt.Errorf("store: exists on %s without conditions", table)
	}
	var count int64
	if err := Conn(ctx, g.db).Table(table).Where(map[string]any(where)).Count(&count).Error; err != nil {
		return false, Wrap(err, "exists "+table)
	}
	return count > 0, nil
}

func (g *gateway) CountDependents(ctx context.Context, table, foreignKeyColumn string, value any) (int64, error) {
	var count int64
	if err := Conn(ctx, g.db).Table(table).Where(map[string]any{foreignKeyColumn: value}).Count(&count).Error; err != nil {
		return 0, Wrap(err, "count "+table)
	}
	return count, nil
}

func (g *gateway) FindDependents(ctx context.Context, table, foreignKeyColumn string, value any, dest any) error {
	if err := Conn(ctx, g.db).Table(table).Where(map[string]any{foreignKeyColumn: value}).Find(dest).Error; err != nil {
		return Wrap(err, "find "+table)
	}
	return nil
}

func (g *gateway) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if InTransaction(ctx) {
		return fn(ctx)
	}

	var fnErr error
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(context.WithValue(ctx, txKey{}, tx))
		return fnErr
	})
	if err != nil && fnErr == nil {
		// begin or commit failed
		return Wrap(err, "transaction")
	}
	return err
}
