// Package db carries the gorm transaction plumbing shared by every
// repository: use cases open a transaction through TxRunner and
// repositories pick the open handle back out of the context, so a
// multi-repository write (order + counter, payment + subscription)
// commits or rolls back as one unit.
package db

import (
	"context"

	"gorm.io/gorm"
)

// txKey keys the open transaction inside a request context.
type txKey struct{}

// TxRunner runs a function inside a database transaction. Use cases depend
// on this rather than the concrete manager.
type TxRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// TransactionManager is the gorm-backed TxRunner wired into the HTTP layer.
type TransactionManager struct {
	db *gorm.DB
}

func NewTransactionManager(db *gorm.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// RunInTransaction runs fn inside a transaction. fn receives a derived
// context carrying the open *gorm.DB, so repository calls made with it join
// the same transaction; an error from fn rolls the whole unit back.
func (tm *TransactionManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txCtx := context.WithValue(ctx, txKey{}, tx)
		return fn(txCtx)
	})
}

// GetTx returns the transaction carried by ctx, or the manager's base
// connection bound to ctx when no transaction is open.
func (tm *TransactionManager) GetTx(ctx context.Context) *gorm.DB {
	return GetTxFromContext(ctx, tm.db)
}

// GetTxFromContext is the repository-side half of the contract: called at
// the top of every query, it returns the open transaction when there is one
// and defaultDB bound to ctx otherwise, so repositories behave identically
// inside and outside a transaction.
func GetTxFromContext(ctx context.Context, defaultDB *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return defaultDB.WithContext(ctx)
}
