// Package option provides composable gorm query modifiers shared by
// repository implementations.
package option

import (
	"time"

	"github.com/sahamit/backoffice/pkg/db/pagination"
	"gorm.io/gorm"
)

type QueryOption interface {
	Apply(*gorm.DB) *gorm.DB
}

type queryOptionFunc func(*gorm.DB) *gorm.DB

func (f queryOptionFunc) Apply(stmt *gorm.DB) *gorm.DB { return f(stmt) }

// WithLimit caps the number of returned rows.
func WithLimit(limit int) QueryOption {
	return queryOptionFunc(func(stmt *gorm.DB) *gorm.DB {
		if limit <= 0 {
			return stmt
		}
		return stmt.Limit(limit)
	})
}

// WithOrder appends an ORDER BY clause.
func WithOrder(order string) QueryOption {
	return queryOptionFunc(func(stmt *gorm.DB) *gorm.DB {
		if order == "" {
			return stmt
		}
		return stmt.Order(order)
	})
}

// ApplyPagination applies cursor pagination: rows created before the cursor,
// one extra row fetched so callers can detect a next page.
func ApplyPagination(page pagination.Pagination) QueryOption {
	return queryOptionFunc(func(stmt *gorm.DB) *gorm.DB {
		size := page.PageSize
		if size <= 0 {
			size = 50
		}
		if page.PageToken != "" {
			if cursor, err := pagination.DecodeCursor(page.PageToken); err == nil && cursor.CreatedAt != "" {
				// Bound as time.Time so every dialect formats it the same
				// way it stores the column.
				if ts, err := time.Parse(time.RFC3339Nano, cursor.CreatedAt); err == nil {
					stmt = stmt.Where("created_at < ?", ts)
				}
			}
		}
		return stmt.Limit(size + 1)
	})
}

// Apply folds a set of options over a statement.
func Apply(stmt *gorm.DB, opts ...QueryOption) *gorm.DB {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		stmt = opt.Apply(stmt)
	}
	return stmt
}
