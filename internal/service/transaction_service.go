package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hazyfin/family-finance-backend/internal/api/request"
	"github.com/hazyfin/family-finance-backend/internal/model"
	"github.com/hazyfin/family-finance-backend/internal/repository"
)

// TransactionService handles transaction-related business logic operations.
// It owns the amount invariant: amount always equals quantity * price after
// any create or update, and cash-flow transactions default to quantity 1.
type TransactionService struct {
	transactionRepo *repository.TransactionRepository
}

// NewTransactionService creates a new TransactionService with the provided repository dependencies.
func NewTransactionService(
	transactionRepo *repository.TransactionRepository,
) *TransactionService {
	return &TransactionService{
		transactionRepo: transactionRepo,
	}
}

// GetTransactions retrieves the transactions of a family group visible
// under the given member scope, sorted by date ascending.
func (s *TransactionService) GetTransactions(familyGroupID string, scope MemberScope) ([]model.Transaction, error) {
	transactions, err := s.transactionRepo.GetTransactions(familyGroupID)
	if err != nil {
		return nil, err
	}
	return scope.Filter(transactions), nil
}

// GetTransaction retrieves a single transaction by its ID.
func (s *TransactionService) GetTransaction(transactionID string) (model.Transaction, error) {
	return s.transactionRepo.GetTransaction(transactionID)
}

// CreateTransaction validates nothing itself (the handler layer does) but
// enforces the derived-amount rule and the quantity default for cash-flow
// types before persisting.
func (s *TransactionService) CreateTransaction(ctx context.Context, req request.CreateTransactionRequest) (*model.Transaction, error) {
	transactionDate, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to parse transaction date: %w", err)
	}

	quantity := req.Quantity
	transaction := &model.Transaction{
		ID:            uuid.New().String(),
		FamilyGroupID: req.FamilyGroupID,
		MemberID:      req.MemberID,
		AssetName:     req.AssetName,
		AssetType:     req.AssetType,
		Type:          req.Type,
		Date:          transactionDate,
		Quantity:      quantity,
		Price:         req.Price,
		SIPID:         req.SIPID,
		Category:      req.Category,
		Platform:      req.Platform,
		Notes:         req.Notes,
		CreatedAt:     time.Now(),
	}

	// Income/Expense rows are amounts, not positions: one unit at the
	// stated price unless the client supplied a quantity.
	if transaction.IsCashFlow() && transaction.Quantity == 0 {
		transaction.Quantity = 1
	}
	transaction.Amount = transaction.Quantity * transaction.Price

	if err := s.transactionRepo.InsertTransaction(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return transaction, nil
}

// UpdateTransaction applies the provided fields to an existing transaction
// and re-derives the amount.
func (s *TransactionService) UpdateTransaction(ctx context.Context, transactionID string, req request.UpdateTransactionRequest) (*model.Transaction, error) {
	transaction, err := s.transactionRepo.GetTransaction(transactionID)
	if err != nil {
		return nil, err
	}

	if req.MemberID != nil {
		transaction.MemberID = *req.MemberID
	}
	if req.AssetName != nil {
		transaction.AssetName = *req.AssetName
	}
	if req.AssetType != nil {
		transaction.AssetType = *req.AssetType
	}
	if req.Type != nil {
		transaction.Type = *req.Type
	}
	if req.Date != nil {
		transactionDate, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			return nil, fmt.Errorf("failed to parse transaction date: %w", err)
		}
		transaction.Date = transactionDate
	}
	if req.Quantity != nil {
		transaction.Quantity = *req.Quantity
	}
	if req.Price != nil {
		transaction.Price = *req.Price
	}
	if req.SIPID != nil {
		transaction.SIPID = *req.SIPID
	}
	if req.Category != nil {
		transaction.Category = *req.Category
	}
	if req.Platform != nil {
		transaction.Platform = *req.Platform
	}
	if req.Notes != nil {
		transaction.Notes = *req.Notes
	}

	transaction.Amount = transaction.Quantity * transaction.Price

	if err := s.transactionRepo.UpdateTransaction(ctx, &transaction); err != nil {
		return nil, err
	}

	return &transaction, nil
}

// DeleteTransaction removes a transaction by ID.
func (s *TransactionService) DeleteTransaction(ctx context.Context, transactionID string) error {
	return s.transactionRepo.DeleteTransaction(ctx, transactionID)
}
