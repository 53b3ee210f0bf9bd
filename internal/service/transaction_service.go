package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"spendtrack/internal/cache"
	apperrors "spendtrack/internal/errors"
	"spendtrack/internal/model"
	"spendtrack/internal/repository"
)

const (
	maxTitleLen  = 50
	listCacheTTL = 5 * time.Minute
)

// NewTransaction carries the validated-on-entry fields of an Add call.
type NewTransaction struct {
	Title       string
	Amount      decimal.Decimal
	Category    string
	Description string
	Date        time.Time
}

// TransactionUpdate carries a partial update. Nil fields were omitted by the
// caller; supplied-but-empty strings and non-positive amounts are skipped as
// well, so an update can never blank out a stored value.
type TransactionUpdate struct {
	Title       *string
	Amount      *decimal.Decimal
	Category    *string
	Description *string
	Date        *time.Time
}

// TransactionService performs create/read/update/delete of one transaction
// variant, scoped to the owning user.
type TransactionService interface {
	Add(ctx context.Context, ownerID uuid.UUID, input NewTransaction) (*model.Transaction, error)
	List(ctx context.Context, ownerID uuid.UUID) ([]model.Transaction, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, update TransactionUpdate) (*model.Transaction, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) (*model.Transaction, error)
}

type transactionService struct {
	repo  repository.TransactionRepository
	cache *cache.Client
	kind  model.TransactionKind
}

// NewTransactionService builds a TransactionService over the given variant.
func NewTransactionService(repo repository.TransactionRepository, cache *cache.Client, kind model.TransactionKind) TransactionService {
	return &transactionService{repo: repo, cache: cache, kind: kind}
}

func (s *transactionService) cacheKey(ownerID uuid.UUID) string {
	return fmt.Sprintf("%s:list:%s", s.kind, ownerID)
}

// Add validates and persists a new record owned by ownerID.
func (s *transactionService) Add(ctx context.Context, ownerID uuid.UUID, input NewTransaction) (*model.Transaction, error) {
	title := strings.TrimSpace(input.Title)
	category := strings.TrimSpace(input.Category)
	description := strings.TrimSpace(input.Description)

	if title == "" || category == "" || description == "" || input.Date.IsZero() {
		return nil, apperrors.ErrMissingFields
	}
	if len(title) > maxTitleLen {
		return nil, apperrors.ErrTitleTooLong
	}
	if !input.Amount.IsPositive() {
		return nil, apperrors.ErrInvalidAmount
	}

	txn := &model.Transaction{
		ID:          uuid.New(),
		UserID:      ownerID,
		Title:       title,
		Amount:      input.Amount,
		Type:        s.kind,
		Category:    category,
		Description: description,
		Date:        input.Date,
	}

	if err := s.repo.Create(ctx, txn); err != nil {
		return nil, fmt.Errorf("create %s: %w", s.kind, err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(ownerID))

	return txn, nil
}

// List returns all records of this variant owned by ownerID, in storage order.
// Results are cached per owner and invalidated by every write.
func (s *transactionService) List(ctx context.Context, ownerID uuid.UUID) ([]model.Transaction, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(ownerID)); data != nil {
		var cached []model.Transaction
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	txns, err := s.repo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.kind, err)
	}

	if payload, err := json.Marshal(txns); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(ownerID), payload, listCacheTTL)
	}
	return txns, nil
}

// Update merges the supplied fields into the stored record and persists it.
// Fields left nil or holding an empty/non-positive value retain the prior value.
func (s *transactionService) Update(ctx context.Context, ownerID, id uuid.UUID, update TransactionUpdate) (*model.Transaction, error) {
	txn, err := s.repo.FindByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("find %s: %w", s.kind, err)
	}

	if update.Title != nil {
		if title := strings.TrimSpace(*update.Title); title != "" {
			if len(title) > maxTitleLen {
				return nil, apperrors.ErrTitleTooLong
			}
			txn.Title = title
		}
	}
	if update.Amount != nil && update.Amount.IsPositive() {
		txn.Amount = *update.Amount
	}
	if update.Category != nil {
		if category := strings.TrimSpace(*update.Category); category != "" {
			txn.Category = category
		}
	}
	if update.Description != nil {
		if description := strings.TrimSpace(*update.Description); description != "" {
			txn.Description = description
		}
	}
	if update.Date != nil && !update.Date.IsZero() {
		txn.Date = *update.Date
	}

	if err := s.repo.Save(ctx, txn); err != nil {
		return nil, fmt.Errorf("save %s: %w", s.kind, err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(ownerID))

	return txn, nil
}

// Delete removes the record permanently and returns its snapshot.
func (s *transactionService) Delete(ctx context.Context, ownerID, id uuid.UUID) (*model.Transaction, error) {
	txn, err := s.repo.FindByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("find %s: %w", s.kind, err)
	}

	if err := s.repo.Delete(ctx, txn); err != nil {
		return nil, fmt.Errorf("delete %s: %w", s.kind, err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(ownerID))

	return txn, nil
}
