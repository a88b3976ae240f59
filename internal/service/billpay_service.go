package service

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"nexbank/internal/core/domain"
	"nexbank/internal/core/ports"
	"nexbank/pkg/apperror"

	"github.com/google/uuid"
)

// Demo bill lookup constants. The amount is illustrative, not derived from
// the consumer number.
const (
	billAmountMin    = 2000
	billAmountSpread = 20000
	billConsumerName = "Ahmad Khan"
	billDueInDays    = 7
)

// BillPayServiceImpl implements ports.BillPayService as a two-phase flow:
// FetchBill parks an invoice in the pending store, PayBill consumes it.
// At most one invoice is pending per user; fetching again replaces it.
type BillPayServiceImpl struct {
	catalog    ports.CatalogRepository
	pending    ports.PendingBillStore
	delay      time.Duration
	invoiceTTL time.Duration
}

// NewBillPayService creates a new BillPayServiceImpl.
func NewBillPayService(
	catalog ports.CatalogRepository,
	pending ports.PendingBillStore,
	delay time.Duration,
	invoiceTTL time.Duration,
) *BillPayServiceImpl {
	return &BillPayServiceImpl{
		catalog:    catalog,
		pending:    pending,
		delay:      delay,
		invoiceTTL: invoiceTTL,
	}
}

// FetchBill looks up the outstanding bill for a provider + consumer number
// and stores it as the user's pending invoice.
func (s *BillPayServiceImpl) FetchBill(ctx context.Context, userID, providerID, consumerNumber string) (*domain.BillInvoice, error) {
	if providerID == "" || consumerNumber == "" {
		return nil, apperror.ErrMissingBillDetails()
	}

	provider, err := s.catalog.GetProvider(ctx, providerID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get provider: %w", err))
	}
	if provider == nil {
		return nil, apperror.ErrNotFound("provider")
	}

	if err := processingWait(ctx, s.delay); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("processing wait: %w", err))
	}

	now := time.Now()
	invoice := &domain.BillInvoice{
		ID:             uuid.New().String(),
		ProviderID:     provider.ID,
		ProviderName:   provider.Name,
		ConsumerNumber: consumerNumber,
		ConsumerName:   billConsumerName,
		Amount:         billAmountMin + rand.Int63n(billAmountSpread),
		DueDate:        now.AddDate(0, 0, billDueInDays).Format("2006-01-02"),
		FetchedAt:      now.UTC(),
	}

	if err := s.pending.Put(ctx, userID, invoice, s.invoiceTTL); err != nil {
		return nil, apperror.ErrStorageUnavailable(fmt.Errorf("store invoice: %w", err))
	}

	return invoice, nil
}

// PayBill pays the user's pending invoice, clears it, and returns the
// receipt. Balances and history are untouched.
func (s *BillPayServiceImpl) PayBill(ctx context.Context, userID string) (*domain.Receipt, error) {
	invoice, err := s.pending.Get(ctx, userID)
	if err != nil {
		return nil, apperror.ErrStorageUnavailable(fmt.Errorf("get invoice: %w", err))
	}
	if invoice == nil {
		return nil, apperror.ErrNoPendingBill()
	}

	if err := processingWait(ctx, s.delay); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("processing wait: %w", err))
	}

	if err := s.pending.Delete(ctx, userID); err != nil {
		return nil, apperror.ErrStorageUnavailable(fmt.Errorf("clear invoice: %w", err))
	}

	now := time.Now()
	return &domain.Receipt{
		Kind:           domain.ReceiptKindBill,
		TransactionID:  uuid.New().String(),
		Date:           now.Format("2006-01-02"),
		Time:           now.Format("15:04:05"),
		Amount:         invoice.Amount,
		Status:         domain.ReceiptStatusSuccess,
		Provider:       invoice.ProviderName,
		ConsumerNumber: invoice.ConsumerNumber,
		ConsumerName:   invoice.ConsumerName,
	}, nil
}
