package ports

import (
	"context"
	"time"

	"nexbank/internal/core/domain"
)

// HashService handles password hashing (Argon2id).
type HashService interface {
	Hash(password string) (string, error)
	Verify(password string, hash string) (bool, error)
}

// TokenService handles session token operations.
type TokenService interface {
	Generate(userID, email string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed session token claims.
type TokenClaims struct {
	UserID string
	Email  string
}

// --- Service Ports (Business Logic) ---

// AuthService defines the demo authentication boundary. Login and Signup
// perform no real credential verification: any non-empty email with a
// password of at least six characters succeeds, deterministically.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Signup(ctx context.Context, name, email, password string) (*AuthResult, error)
	Logout(ctx context.Context, userID string) error
	Me(ctx context.Context, userID string) (*domain.User, error)
	ChangePassword(ctx context.Context, userID, current, updated string) error
	VerifyOTP(ctx context.Context, code string) error
	RequestPasswordReset(ctx context.Context, email string) error
}

// AuthResult carries the session created by login/signup.
type AuthResult struct {
	User   *domain.User
	Token  string
	Expiry time.Time
}

// TransferService runs the money transfer flow.
type TransferService interface {
	Transfer(ctx context.Context, req TransferRequest) (*domain.Receipt, error)
}

// TransferMode selects the destination of a transfer.
type TransferMode string

const (
	TransferModeContact  TransferMode = "contact"
	TransferModeOwn      TransferMode = "own"
	TransferModeExternal TransferMode = "external"
)

// TransferRequest holds validated input for the transfer flow.
type TransferRequest struct {
	FromAccountID string
	Mode          TransferMode
	ContactID     string // contact mode
	ToAccountID   string // own mode
	BankName      string // external mode
	AccountNumber string // external mode
	Beneficiary   string // external mode
	Amount        int64
	Note          string
}

// BillPayService runs the two-phase bill payment flow.
type BillPayService interface {
	FetchBill(ctx context.Context, userID, providerID, consumerNumber string) (*domain.BillInvoice, error)
	PayBill(ctx context.Context, userID string) (*domain.Receipt, error)
}

// RechargeService runs the mobile recharge flow.
type RechargeService interface {
	Recharge(ctx context.Context, req RechargeRequest) (*domain.Receipt, error)
}

// RechargeRequest holds validated input for the recharge flow.
type RechargeRequest struct {
	OperatorID   string
	MobileNumber string
	PackageID    string
}

// PreferenceService manages the per-user UI preference stores.
type PreferenceService interface {
	Get(ctx context.Context, userID string) (*domain.Preferences, error)
	SetLanguage(ctx context.Context, userID, code string) (*domain.Preferences, error)
	SetTheme(ctx context.Context, userID, theme string) (*domain.Preferences, error)
	ToggleShowBalance(ctx context.Context, userID string) (bool, error)
}

// ReportingService serves the dashboard views.
type ReportingService interface {
	AccountSummary(ctx context.Context, userID string) (*AccountSummary, error)
	SpendingOverview(ctx context.Context) (*SpendingOverview, error)
	ListTransactions(ctx context.Context, params TransactionListParams) ([]domain.Transaction, int64, error)
}

// AccountSummary is the dashboard balance header. When the user's balance
// visibility preference is off, Masked is set and Total is zeroed.
type AccountSummary struct {
	Accounts []domain.Account
	Total    int64
	Currency string
	Masked   bool
}

// SpendingOverview bundles the dashboard chart aggregates.
type SpendingOverview struct {
	Monthly    []domain.MonthlySpend
	ByCategory []domain.CategorySpend
}

// ReceiptRenderer produces the printable document for a receipt.
type ReceiptRenderer interface {
	RenderPrintHTML(receipt *domain.Receipt) ([]byte, error)
}
