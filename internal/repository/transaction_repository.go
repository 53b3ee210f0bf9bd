package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"spendtrack/internal/model"
)

// TransactionRepository defines persistence operations over one of the two
// transaction tables. Incomes and expenses are structurally identical, so a
// single implementation is instantiated once per kind.
type TransactionRepository interface {
	Create(ctx context.Context, txn *model.Transaction) error
	FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*model.Transaction, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Transaction, error)
	Save(ctx context.Context, txn *model.Transaction) error
	Delete(ctx context.Context, txn *model.Transaction) error
}

type transactionRepository struct {
	db    *gorm.DB
	table string
}

// NewTransactionRepository builds a GORM-backed repository over the table of
// the given kind.
func NewTransactionRepository(db *gorm.DB, kind model.TransactionKind) TransactionRepository {
	return &transactionRepository{db: db, table: kind.Table()}
}

func (r *transactionRepository) Create(ctx context.Context, txn *model.Transaction) error {
	return r.db.WithContext(ctx).Table(r.table).Create(txn).Error
}

func (r *transactionRepository) FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*model.Transaction, error) {
	var txn model.Transaction
	err := r.db.WithContext(ctx).Table(r.table).
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&txn).Error
	if err != nil {
		return nil, err
	}
	return &txn, nil
}

func (r *transactionRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Transaction, error) {
	var txns []model.Transaction
	err := r.db.WithContext(ctx).Table(r.table).
		Where("user_id = ?", ownerID).
		Find(&txns).Error
	if err != nil {
		return nil, err
	}
	return txns, nil
}

func (r *transactionRepository) Save(ctx context.Context, txn *model.Transaction) error {
	return r.db.WithContext(ctx).Table(r.table).Save(txn).Error
}

func (r *transactionRepository) Delete(ctx context.Context, txn *model.Transaction) error {
	return r.db.WithContext(ctx).Table(r.table).
		Where("id = ?", txn.ID).
		Delete(&model.Transaction{}).Error
}
