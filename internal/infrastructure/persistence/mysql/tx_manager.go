package mysql

import (
	"context"

	"gorm.io/gorm"
)

// txKey is the context key carrying the transaction *gorm.DB. A private type
// keeps it collision-free.
type txKey struct{}

// TxManager runs a function inside one database transaction. The
// transaction handle travels through the context; every repository in this
// package picks it up via dbFrom, so multi-statement mutations commit or
// roll back as a unit.
type TxManager struct {
	db *gorm.DB
}

// NewTxManager creates a transaction manager.
func NewTxManager(db *gorm.DB) *TxManager {
	return &TxManager{db: db}
}

// Transaction executes fn in a transaction. fn returning an error rolls
// everything back; nil commits. Nested calls reuse GORM savepoints.
func (m *TxManager) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// dbFrom returns the transaction DB from the context when one is active,
// otherwise the fallback handle bound to ctx.
func dbFrom(ctx context.Context, fallback *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return fallback.WithContext(ctx)
}
