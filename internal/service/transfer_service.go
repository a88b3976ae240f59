package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"nexbank/internal/core/domain"
	"nexbank/internal/core/ports"
	"nexbank/pkg/apperror"

	"github.com/google/uuid"
)

// TransferServiceImpl implements ports.TransferService.
//
// A transfer validates against the source account and produces a Receipt,
// but never debits the balance or appends to history: the ledger is static
// demo data. Validation runs before the simulated processing wait, so bad
// input fails fast.
type TransferServiceImpl struct {
	accounts ports.AccountRepository
	contacts ports.ContactRepository
	delay    time.Duration
}

// NewTransferService creates a new TransferServiceImpl.
func NewTransferService(
	accounts ports.AccountRepository,
	contacts ports.ContactRepository,
	delay time.Duration,
) *TransferServiceImpl {
	return &TransferServiceImpl{
		accounts: accounts,
		contacts: contacts,
		delay:    delay,
	}
}

// Transfer runs the full transfer flow and returns the receipt.
func (s *TransferServiceImpl) Transfer(ctx context.Context, req ports.TransferRequest) (*domain.Receipt, error) {
	if req.Amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}

	from, err := s.accounts.GetByID(ctx, req.FromAccountID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get source account: %w", err))
	}
	if from == nil {
		return nil, apperror.ErrNotFound("account")
	}

	if !from.CanDebit(req.Amount) {
		return nil, apperror.ErrInsufficientBalance()
	}

	var beneficiary, toAccount, bankName string

	switch req.Mode {
	case ports.TransferModeContact:
		contact, err := s.contacts.GetByID(ctx, req.ContactID)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("get contact: %w", err))
		}
		if contact == nil {
			return nil, apperror.ErrNotFound("contact")
		}
		beneficiary = contact.Name
		toAccount = contact.AccountNumber

	case ports.TransferModeOwn:
		if req.ToAccountID == req.FromAccountID {
			return nil, apperror.Validation("destination must differ from source account")
		}
		dest, err := s.accounts.GetByID(ctx, req.ToAccountID)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("get destination account: %w", err))
		}
		if dest == nil {
			return nil, apperror.ErrNotFound("account")
		}
		beneficiary = dest.Name
		toAccount = dest.Number

	case ports.TransferModeExternal:
		if req.BankName == "" || req.AccountNumber == "" || req.Beneficiary == "" {
			return nil, apperror.ErrMissingBeneficiary()
		}
		beneficiary = req.Beneficiary
		toAccount = req.AccountNumber
		bankName = req.BankName

	default:
		return nil, apperror.Validation("unknown transfer mode")
	}

	if err := processingWait(ctx, s.delay); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("processing wait: %w", err))
	}

	reference := req.Note
	if reference == "" {
		reference = "TRANSFER TO " + strings.ToUpper(beneficiary)
	}

	now := time.Now()
	return &domain.Receipt{
		Kind:            domain.ReceiptKindTransfer,
		TransactionID:   uuid.New().String(),
		Date:            now.Format("2006-01-02"),
		Time:            now.Format("15:04:05"),
		Amount:          req.Amount,
		Status:          domain.ReceiptStatusSuccess,
		FromAccount:     from.Number,
		ToAccount:       toAccount,
		BeneficiaryName: beneficiary,
		BankName:        bankName,
		Reference:       reference,
	}, nil
}
