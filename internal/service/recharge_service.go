package service

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"nexbank/internal/core/domain"
	"nexbank/internal/core/ports"
	"nexbank/pkg/apperror"

	"github.com/google/uuid"
)

// mobileNumberRe matches Pakistani mobile numbers: 03 followed by 9 digits.
var mobileNumberRe = regexp.MustCompile(`^03\d{9}$`)

// RechargeServiceImpl implements ports.RechargeService. Like the other
// flows, a recharge validates, waits, and emits a Receipt without touching
// any balance.
type RechargeServiceImpl struct {
	catalog ports.CatalogRepository
	delay   time.Duration
}

// NewRechargeService creates a new RechargeServiceImpl.
func NewRechargeService(catalog ports.CatalogRepository, delay time.Duration) *RechargeServiceImpl {
	return &RechargeServiceImpl{catalog: catalog, delay: delay}
}

// Recharge runs the mobile recharge flow and returns the receipt.
func (s *RechargeServiceImpl) Recharge(ctx context.Context, req ports.RechargeRequest) (*domain.Receipt, error) {
	if req.OperatorID == "" || req.MobileNumber == "" || req.PackageID == "" {
		return nil, apperror.ErrMissingRechargeFields()
	}

	if !mobileNumberRe.MatchString(req.MobileNumber) {
		return nil, apperror.ErrInvalidMobileNumber()
	}

	operator, err := s.catalog.GetOperator(ctx, req.OperatorID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get operator: %w", err))
	}
	if operator == nil {
		return nil, apperror.ErrNotFound("operator")
	}

	// The package must belong to the selected operator.
	pkg, err := s.catalog.GetPackage(ctx, req.OperatorID, req.PackageID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get package: %w", err))
	}
	if pkg == nil {
		return nil, apperror.ErrNotFound("package")
	}

	if err := processingWait(ctx, s.delay); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("processing wait: %w", err))
	}

	now := time.Now()
	return &domain.Receipt{
		Kind:          domain.ReceiptKindRecharge,
		TransactionID: uuid.New().String(),
		Date:          now.Format("2006-01-02"),
		Time:          now.Format("15:04:05"),
		Amount:        pkg.Price,
		Status:        domain.ReceiptStatusSuccess,
		Operator:      operator.Name,
		MobileNumber:  req.MobileNumber,
		PackageName:   pkg.Name,
		Validity:      pkg.Validity,
	}, nil
}
