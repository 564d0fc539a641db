// Package repository provides a small generic gorm-backed store.
package repository

import (
	"context"

	"gorm.io/gorm"
)

// QueryOption customizes a query built by the store.
type QueryOption interface {
	Apply(db *gorm.DB) *gorm.DB
}

type orderOption struct{ clause string }

func (o orderOption) Apply(db *gorm.DB) *gorm.DB { return db.Order(o.clause) }

// OrderBy sorts results by the given clause, e.g. "created_at DESC".
func OrderBy(clause string) QueryOption { return orderOption{clause: clause} }

type limitOption struct{ n int }

func (o limitOption) Apply(db *gorm.DB) *gorm.DB { return db.Limit(o.n) }

// Limit caps the number of returned rows.
func Limit(n int) QueryOption { return limitOption{n: n} }

// Repository is a typed document-style store over a single table.
type Repository[T any] interface {
	WithTrx(tx *gorm.DB) Repository[T]
	Find(ctx context.Context, query *T, opts ...QueryOption) ([]*T, error)
	FindOne(ctx context.Context, query *T, opts ...QueryOption) (*T, error)
	Create(ctx context.Context, resource *T) error
	Update(ctx context.Context, resourceID string, resource any) error
	Delete(ctx context.Context, resourceID string) error
	Count(ctx context.Context, query *T) (int64, error)
}
