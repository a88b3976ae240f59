package dto

import (
	"nexbank/internal/core/domain"
	"nexbank/internal/core/ports"
)

// LoginRequest is the request body for login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SignupRequest is the request body for signup.
type SignupRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserResponse is the user record returned to clients. The password hash
// never leaves the server.
type UserResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Avatar        string `json:"avatar"`
	Phone         string `json:"phone"`
	AccountNumber string `json:"account_number"`
	MemberSince   string `json:"member_since"`
}

// NewUserResponse strips internal fields from a user record.
func NewUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:            u.ID,
		Name:          u.Name,
		Email:         u.Email,
		Avatar:        u.Avatar,
		Phone:         u.Phone,
		AccountNumber: u.AccountNumber,
		MemberSince:   u.MemberSince,
	}
}

// AuthResponse is the response body for successful login/signup.
type AuthResponse struct {
	User   UserResponse `json:"user"`
	Token  string       `json:"token"`
	Expiry int64        `json:"expiry"` // Unix timestamp
}

// ChangePasswordRequest is the request body for a password change.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}

// VerifyOTPRequest is the request body for two-factor code verification.
type VerifyOTPRequest struct {
	Code string `json:"code" binding:"required"`
}

// ForgotPasswordRequest is the request body for a password reset request.
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// TransferRequest is the request body for a money transfer.
// Amount and mode-specific fields are validated by the transfer flow so the
// client receives the flow's own error codes.
type TransferRequest struct {
	FromAccountID string `json:"from_account_id" binding:"required,safe_id"`
	Mode          string `json:"mode" binding:"required,oneof=contact own external"`
	ContactID     string `json:"contact_id" binding:"omitempty,safe_id"`
	ToAccountID   string `json:"to_account_id" binding:"omitempty,safe_id"`
	BankName      string `json:"bank_name" binding:"omitempty,max=100"`
	AccountNumber string `json:"account_number" binding:"omitempty,max=40"`
	Beneficiary   string `json:"beneficiary" binding:"omitempty,max=100"`
	Amount        int64  `json:"amount"`
	Note          string `json:"note" binding:"omitempty,max=200"`
}

// ToPort converts the body to the service-level request.
func (r TransferRequest) ToPort() ports.TransferRequest {
	return ports.TransferRequest{
		FromAccountID: r.FromAccountID,
		Mode:          ports.TransferMode(r.Mode),
		ContactID:     r.ContactID,
		ToAccountID:   r.ToAccountID,
		BankName:      r.BankName,
		AccountNumber: r.AccountNumber,
		Beneficiary:   r.Beneficiary,
		Amount:        r.Amount,
		Note:          r.Note,
	}
}

// BillFetchRequest is the request body for a bill lookup. Presence is
// checked by the flow so BILL_001 surfaces for missing fields.
type BillFetchRequest struct {
	ProviderID     string `json:"provider_id" binding:"omitempty,safe_id"`
	ConsumerNumber string `json:"consumer_number" binding:"omitempty,max=30"`
}

// RechargeRequest is the request body for a mobile recharge. The number
// format is checked by the flow so RCH_002 carries its own message.
type RechargeRequest struct {
	OperatorID   string `json:"operator_id" binding:"omitempty,safe_id"`
	MobileNumber string `json:"mobile_number" binding:"omitempty,max=15"`
	PackageID    string `json:"package_id" binding:"omitempty,safe_id"`
}

// SetLanguageRequest is the request body for a language change.
type SetLanguageRequest struct {
	Code string `json:"code" binding:"required"`
}

// SetThemeRequest is the request body for a theme change.
type SetThemeRequest struct {
	Theme string `json:"theme" binding:"required"`
}

// FreezeCardRequest is the request body for a card freeze toggle.
type FreezeCardRequest struct {
	Frozen *bool `json:"frozen" binding:"required"`
}

// TransactionListResponse wraps paginated transaction history.
type TransactionListResponse struct {
	Items      []domain.Transaction `json:"items"`
	Total      int64                `json:"total"`
	Page       int                  `json:"page"`
	PageSize   int                  `json:"page_size"`
	TotalPages int                  `json:"total_pages"`
}

// AccountSummaryResponse is the dashboard balance header.
type AccountSummaryResponse struct {
	Accounts []domain.Account `json:"accounts"`
	Total    int64            `json:"total"`
	Currency string           `json:"currency"`
	Masked   bool             `json:"masked"`
}

// SpendingOverviewResponse bundles the dashboard chart aggregates.
type SpendingOverviewResponse struct {
	Monthly    []domain.MonthlySpend  `json:"monthly"`
	ByCategory []domain.CategorySpend `json:"by_category"`
}

// ShowBalanceResponse is the response for a visibility toggle.
type ShowBalanceResponse struct {
	ShowBalance bool `json:"show_balance"`
}
