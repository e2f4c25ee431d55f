// Package mocks holds testify doubles shared by service tests.
package mocks

import (
	"Groeneweide-Backend/pkg/store"
	"context"

	"github.com/stretchr/testify/mock"
)

// Gateway is a testify mock of store.Gateway. Transaction runs fn directly
// and counts how often it was entered.
type Gateway struct {
	mock.Mock
	Transactions int
}

var _ store.Gateway = (*Gateway)(nil)

func (m *Gateway) Exists(ctx context.Context, table, keyColumn string, value any) (bool, error) {
	args := m.Called(ctx, table, keyColumn, value)
	return args.Bool(0), args.Error(1)
}

func (m *Gateway) ExistsByAttribute(ctx context.Context, table, column string, value any) (bool, error) {
	args := m.Called(ctx, table, column, value)
	return args.Bool(0), args.Error(1)
}

func (m *Gateway) ExistsByAttributeExcept(ctx context.Context, table, column string, value any, keyColumn string, key any) (bool, error) {
	args := m.Called(ctx, table, column, value, keyColumn, key)
	return args.Bool(0), args.Error(1)
}

func (m *Gateway) ExistsWhere(ctx context.Context, table string, where store.Where) (bool, error) {
	args := m.Called(ctx, table, where)
	return args.Bool(0), args.Error(1)
}

func (m *Gateway) CountDependents(ctx context.Context, table, foreignKeyColumn string, value any) (int64, error) {
	args := m.Called(ctx, table, foreignKeyColumn, value)
	return args.Get(0).(int64), args.Error(1)
}

func (m *Gateway) FindDependents(ctx context.Context, table, foreignKeyColumn string, value any, dest any) error {
	args := m.Called(ctx, table, foreignKeyColumn, value, dest)
	return args.Error(0)
}

func (m *Gateway) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.Transactions++
	return fn(ctx)
}
