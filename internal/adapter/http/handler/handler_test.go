package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"nexbank/internal/adapter/http/dto"
	"nexbank/internal/adapter/http/middleware"
	"nexbank/internal/adapter/storage/memory"
	"nexbank/internal/core/domain"
	"nexbank/internal/core/ports"
	"nexbank/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// --- Hand-written service stubs ---

type stubAuthService struct {
	loginFn  func(ctx context.Context, email, password string) (*ports.AuthResult, error)
	signupFn func(ctx context.Context, name, email, password string) (*ports.AuthResult, error)
	meFn     func(ctx context.Context, userID string) (*domain.User, error)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) Signup(ctx context.Context, name, email, password string) (*ports.AuthResult, error) {
	return s.signupFn(ctx, name, email, password)
}

func (s *stubAuthService) Logout(ctx context.Context, userID string) error { return nil }

func (s *stubAuthService) Me(ctx context.Context, userID string) (*domain.User, error) {
	return s.meFn(ctx, userID)
}

func (s *stubAuthService) ChangePassword(ctx context.Context, userID, current, updated string) error {
	return nil
}

func (s *stubAuthService) VerifyOTP(ctx context.Context, code string) error {
	if len(code) != 6 {
		return apperror.ErrInvalidOTP()
	}
	return nil
}

func (s *stubAuthService) RequestPasswordReset(ctx context.Context, email string) error { return nil }

type stubTransferService struct {
	transferFn func(ctx context.Context, req ports.TransferRequest) (*domain.Receipt, error)
}

func (s *stubTransferService) Transfer(ctx context.Context, req ports.TransferRequest) (*domain.Receipt, error) {
	return s.transferFn(ctx, req)
}

type stubBillPayService struct {
	fetchFn func(ctx context.Context, userID, providerID, consumerNumber string) (*domain.BillInvoice, error)
	payFn   func(ctx context.Context, userID string) (*domain.Receipt, error)
}

func (s *stubBillPayService) FetchBill(ctx context.Context, userID, providerID, consumerNumber string) (*domain.BillInvoice, error) {
	return s.fetchFn(ctx, userID, providerID, consumerNumber)
}

func (s *stubBillPayService) PayBill(ctx context.Context, userID string) (*domain.Receipt, error) {
	return s.payFn(ctx, userID)
}

type stubRechargeService struct {
	rechargeFn func(ctx context.Context, req ports.RechargeRequest) (*domain.Receipt, error)
}

func (s *stubRechargeService) Recharge(ctx context.Context, req ports.RechargeRequest) (*domain.Receipt, error) {
	return s.rechargeFn(ctx, req)
}

type stubPreferenceService struct {
	prefs    domain.Preferences
	toggleTo bool
	err      error
}

func (s *stubPreferenceService) Get(ctx context.Context, userID string) (*domain.Preferences, error) {
	if s.err != nil {
		return nil, s.err
	}
	p := s.prefs
	return &p, nil
}

func (s *stubPreferenceService) SetLanguage(ctx context.Context, userID, code string) (*domain.Preferences, error) {
	if !domain.IsValidLanguage(code) {
		return nil, apperror.ErrInvalidPreference("unsupported language: " + code)
	}
	s.prefs.Language = code
	s.prefs.TextDirection = domain.TextDirection(code)
	p := s.prefs
	return &p, nil
}

func (s *stubPreferenceService) SetTheme(ctx context.Context, userID, theme string) (*domain.Preferences, error) {
	if !domain.IsValidTheme(theme) {
		return nil, apperror.ErrInvalidPreference("unsupported theme: " + theme)
	}
	s.prefs.Theme = theme
	p := s.prefs
	return &p, nil
}

func (s *stubPreferenceService) ToggleShowBalance(ctx context.Context, userID string) (bool, error) {
	return s.toggleTo, s.err
}

type stubReportingService struct {
	summaryFn  func(ctx context.Context, userID string) (*ports.AccountSummary, error)
	spendingFn func(ctx context.Context) (*ports.SpendingOverview, error)
	listFn     func(ctx context.Context, params ports.TransactionListParams) ([]domain.Transaction, int64, error)
}

func (s *stubReportingService) AccountSummary(ctx context.Context, userID string) (*ports.AccountSummary, error) {
	return s.summaryFn(ctx, userID)
}

func (s *stubReportingService) SpendingOverview(ctx context.Context) (*ports.SpendingOverview, error) {
	return s.spendingFn(ctx)
}

func (s *stubReportingService) ListTransactions(ctx context.Context, params ports.TransactionListParams) ([]domain.Transaction, int64, error) {
	return s.listFn(ctx, params)
}

type stubRenderer struct {
	html []byte
	err  error
}

func (s *stubRenderer) RenderPrintHTML(receipt *domain.Receipt) ([]byte, error) {
	return s.html, s.err
}

func newTestContext(t *testing.T, method, target string, body any) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		c.Request = httptest.NewRequest(method, target, bytes.NewReader(raw))
		c.Request.Header.Set("Content-Type", "application/json")
	} else {
		c.Request = httptest.NewRequest(method, target, nil)
	}
	return c, w
}

func dataField(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data, ok := resp["data"].(map[string]interface{})
	require.True(t, ok, "response has no data object: %s", w.Body.String())
	return data
}

// --- Auth Handler Tests ---

func TestLogin_Success(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*ports.AuthResult, error) {
			return &ports.AuthResult{
				User:   &domain.User{ID: "u-1", Name: "Sarah Johnson", Email: email, PasswordHash: "secret"},
				Token:  "jwt-token-123",
				Expiry: time.Now().Add(24 * time.Hour),
			}, nil
		},
	})

	c, w := newTestContext(t, http.MethodPost, "/", dto.LoginRequest{
		Email:    "sarah@nexbank.com",
		Password: "password123",
	})
	h.Login(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := dataField(t, w)
	assert.Equal(t, "jwt-token-123", data["token"])
	user := data["user"].(map[string]interface{})
	assert.Equal(t, "sarah@nexbank.com", user["email"])
	_, hasHash := user["password_hash"]
	assert.False(t, hasHash, "password hash must not leave the server")
}

func TestLogin_BindingError(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, w := newTestContext(t, http.MethodPost, "/", map[string]string{"email": "not-an-email"})
	h.Login(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "VAL_001", resp["error_code"])
}

func TestLogin_ServiceError(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*ports.AuthResult, error) {
			return nil, apperror.ErrInvalidCredentials()
		},
	})

	c, w := newTestContext(t, http.MethodPost, "/", dto.LoginRequest{
		Email:    "sarah@nexbank.com",
		Password: "short",
	})
	h.Login(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "AUTH_001", resp["error_code"])
}

func TestSignup_Success(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		signupFn: func(ctx context.Context, name, email, password string) (*ports.AuthResult, error) {
			return &ports.AuthResult{
				User:   &domain.User{ID: "u-2", Name: name, Email: email},
				Token:  "jwt-token-456",
				Expiry: time.Now().Add(24 * time.Hour),
			}, nil
		},
	})

	c, w := newTestContext(t, http.MethodPost, "/", dto.SignupRequest{
		Name:     "Ali Raza",
		Email:    "ali@nexbank.com",
		Password: "password123",
	})
	h.Signup(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	data := dataField(t, w)
	user := data["user"].(map[string]interface{})
	assert.Equal(t, "Ali Raza", user["name"])
}

func TestMe_Success(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		meFn: func(ctx context.Context, userID string) (*domain.User, error) {
			return &domain.User{ID: userID, Name: "Sarah Johnson", Email: "sarah@nexbank.com"}, nil
		},
	})

	c, w := newTestContext(t, http.MethodGet, "/", nil)
	c.Set(middleware.CtxUserID, "u-1")
	h.Me(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := dataField(t, w)
	assert.Equal(t, "u-1", data["id"])
}

func TestVerifyOTP_BadCode(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, w := newTestContext(t, http.MethodPost, "/", dto.VerifyOTPRequest{Code: "12"})
	h.VerifyOTP(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "AUTH_004", resp["error_code"])
}

// --- Account Handler Tests ---

func TestAccountList(t *testing.T) {
	seed := memory.DefaultSeed()
	h := NewAccountHandler(memory.NewAccountRepo(seed), nil)

	c, w := newTestContext(t, http.MethodGet, "/", nil)
	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	items := resp["data"].([]interface{})
	assert.Len(t, items, 3)
}

func TestAccountSummary_Masked(t *testing.T) {
	h := NewAccountHandler(nil, &stubReportingService{
		summaryFn: func(ctx context.Context, userID string) (*ports.AccountSummary, error) {
			return &ports.AccountSummary{
				Accounts: []domain.Account{{ID: "acc-savings", Balance: 0}},
				Total:    0,
				Currency: "PKR",
				Masked:   true,
			}, nil
		},
	})

	c, w := newTestContext(t, http.MethodGet, "/", nil)
	c.Set(middleware.CtxUserID, "u-1")
	h.Summary(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := dataField(t, w)
	assert.Equal(t, true, data["masked"])
	assert.Equal(t, float64(0), data["total"])
}

// --- Card Handler Tests ---

func TestCardFreeze(t *testing.T) {
	seed := memory.DefaultSeed()
	h := NewCardHandler(memory.NewCardRepo(seed))
	frozen := true

	c, w := newTestContext(t, http.MethodPost, "/", dto.FreezeCardRequest{Frozen: &frozen})
	c.Params = gin.Params{{Key: "id", Value: seed.Cards[0].ID}}
	h.Freeze(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := dataField(t, w)
	assert.Equal(t, true, data["frozen"])
}

func TestCardFreeze_UnknownCard(t *testing.T) {
	h := NewCardHandler(memory.NewCardRepo(memory.DefaultSeed()))
	frozen := true

	c, w := newTestContext(t, http.MethodPost, "/", dto.FreezeCardRequest{Frozen: &frozen})
	c.Params = gin.Params{{Key: "id", Value: "nope"}}
	h.Freeze(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCardFreeze_MissingFlag(t *testing.T) {
	h := NewCardHandler(memory.NewCardRepo(memory.DefaultSeed()))

	c, w := newTestContext(t, http.MethodPost, "/", map[string]string{})
	c.Params = gin.Params{{Key: "id", Value: "card-1"}}
	h.Freeze(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Transaction Handler Tests ---

func TestTransactionList_Defaults(t *testing.T) {
	h := NewTransactionHandler(&stubReportingService{
		listFn: func(ctx context.Context, params ports.TransactionListParams) ([]domain.Transaction, int64, error) {
			assert.Equal(t, 1, params.Page)
			assert.Equal(t, 20, params.PageSize)
			return []domain.Transaction{{ID: "1", Amount: 12550}}, 1, nil
		},
	})

	c, w := newTestContext(t, http.MethodGet, "/", nil)
	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := dataField(t, w)
	assert.Equal(t, float64(1), data["total"])
	assert.Equal(t, float64(1), data["total_pages"])
}

func TestTransactionList_BadDirection(t *testing.T) {
	h := NewTransactionHandler(&stubReportingService{})

	c, w := newTestContext(t, http.MethodGet, "/?direction=sideways", nil)
	h.List(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTransactionList_BadPageSize(t *testing.T) {
	h := NewTransactionHandler(&stubReportingService{})

	c, w := newTestContext(t, http.MethodGet, "/?page_size=500", nil)
	h.List(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTransactionList_ServiceError(t *testing.T) {
	h := NewTransactionHandler(&stubReportingService{
		listFn: func(ctx context.Context, params ports.TransactionListParams) ([]domain.Transaction, int64, error) {
			return nil, 0, apperror.InternalError(errors.New("boom"))
		},
	})

	c, w := newTestContext(t, http.MethodGet, "/", nil)
	h.List(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

// --- Notification Handler Tests ---

func TestNotificationMarkRead(t *testing.T) {
	seed := memory.DefaultSeed()
	h := NewNotificationHandler(memory.NewNotificationRepo(seed))

	c, w := newTestContext(t, http.MethodPost, "/", nil)
	c.Params = gin.Params{{Key: "id", Value: seed.Notifications[0].ID}}
	h.MarkRead(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := dataField(t, w)
	assert.Equal(t, true, data["read"])
}

func TestNotificationMarkRead_Unknown(t *testing.T) {
	h := NewNotificationHandler(memory.NewNotificationRepo(memory.DefaultSeed()))

	c, w := newTestContext(t, http.MethodPost, "/", nil)
	c.Params = gin.Params{{Key: "id", Value: "nope"}}
	h.MarkRead(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Transfer Handler Tests ---

func TestTransfer_Success(t *testing.T) {
	h := NewTransferHandler(&stubTransferService{
		transferFn: func(ctx context.Context, req ports.TransferRequest) (*domain.Receipt, error) {
			assert.Equal(t, ports.TransferModeContact, req.Mode)
			return &domain.Receipt{
				Kind:          domain.ReceiptKindTransfer,
				TransactionID: "tx-1",
				Amount:        req.Amount,
				Status:        domain.ReceiptStatusSuccess,
			}, nil
		},
	})

	c, w := newTestContext(t, http.MethodPost, "/", dto.TransferRequest{
		FromAccountID: "acc-savings",
		Mode:          "contact",
		ContactID:     "contact-1",
		Amount:        5000,
	})
	h.Transfer(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := dataField(t, w)
	assert.Equal(t, "transfer", data["kind"])
	assert.Equal(t, "success", data["status"])
}

func TestTransfer_BadMode(t *testing.T) {
	h := NewTransferHandler(&stubTransferService{})

	c, w := newTestContext(t, http.MethodPost, "/", map[string]interface{}{
		"from_account_id": "acc-savings",
		"mode":            "teleport",
		"amount":          5000,
	})
	h.Transfer(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTransfer_ZeroAmountReachesFlow(t *testing.T) {
	h := NewTransferHandler(&stubTransferService{
		transferFn: func(ctx context.Context, req ports.TransferRequest) (*domain.Receipt, error) {
			return nil, apperror.ErrInvalidAmount()
		},
	})

	c, w := newTestContext(t, http.MethodPost, "/", dto.TransferRequest{
		FromAccountID: "acc-savings",
		Mode:          "contact",
		ContactID:     "contact-1",
	})
	h.Transfer(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "TRF_001", resp["error_code"])
}

// --- Bill Pay Handler Tests ---

func TestBillProviders_CategoryFilter(t *testing.T) {
	h := NewBillPayHandler(nil, memory.NewCatalogRepo(memory.DefaultSeed()))

	c, w := newTestContext(t, http.MethodGet, "/?category=electricity", nil)
	h.Providers(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	items := resp["data"].([]interface{})
	assert.Len(t, items, 5)
}

func TestBillFetch_MissingFieldsReachFlow(t *testing.T) {
	h := NewBillPayHandler(&stubBillPayService{
		fetchFn: func(ctx context.Context, userID, providerID, consumerNumber string) (*domain.BillInvoice, error) {
			return nil, apperror.ErrMissingBillDetails()
		},
	}, nil)

	c, w := newTestContext(t, http.MethodPost, "/", dto.BillFetchRequest{})
	c.Set(middleware.CtxUserID, "u-1")
	h.Fetch(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "BILL_001", resp["error_code"])
}

func TestBillPay_NoPendingBill(t *testing.T) {
	h := NewBillPayHandler(&stubBillPayService{
		payFn: func(ctx context.Context, userID string) (*domain.Receipt, error) {
			return nil, apperror.ErrNoPendingBill()
		},
	}, nil)

	c, w := newTestContext(t, http.MethodPost, "/", nil)
	c.Set(middleware.CtxUserID, "u-1")
	h.Pay(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Recharge Handler Tests ---

func TestRechargePackages(t *testing.T) {
	h := NewRechargeHandler(nil, memory.NewCatalogRepo(memory.DefaultSeed()))

	c, w := newTestContext(t, http.MethodGet, "/", nil)
	c.Params = gin.Params{{Key: "id", Value: "jazz"}}
	h.Packages(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	items := resp["data"].([]interface{})
	assert.Len(t, items, 6)
}

func TestRechargePackages_UnknownOperator(t *testing.T) {
	h := NewRechargeHandler(nil, memory.NewCatalogRepo(memory.DefaultSeed()))

	c, w := newTestContext(t, http.MethodGet, "/", nil)
	c.Params = gin.Params{{Key: "id", Value: "nope"}}
	h.Packages(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRecharge_BadNumberReachesFlow(t *testing.T) {
	h := NewRechargeHandler(&stubRechargeService{
		rechargeFn: func(ctx context.Context, req ports.RechargeRequest) (*domain.Receipt, error) {
			return nil, apperror.ErrInvalidMobileNumber()
		},
	}, nil)

	c, w := newTestContext(t, http.MethodPost, "/", dto.RechargeRequest{
		OperatorID:   "jazz",
		MobileNumber: "1234567",
		PackageID:    "j1",
	})
	h.Recharge(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "RCH_002", resp["error_code"])
}

// --- Preference Handler Tests ---

func TestPreferenceSetLanguage(t *testing.T) {
	h := NewPreferenceHandler(&stubPreferenceService{
		prefs: domain.Preferences{Language: "en", TextDirection: "ltr", Theme: "system", ShowBalance: true},
	})

	c, w := newTestContext(t, http.MethodPut, "/", dto.SetLanguageRequest{Code: "ur"})
	c.Set(middleware.CtxUserID, "u-1")
	h.SetLanguage(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := dataField(t, w)
	assert.Equal(t, "ur", data["language"])
	assert.Equal(t, "rtl", data["text_direction"])
}

func TestPreferenceSetLanguage_Unsupported(t *testing.T) {
	h := NewPreferenceHandler(&stubPreferenceService{})

	c, w := newTestContext(t, http.MethodPut, "/", dto.SetLanguageRequest{Code: "fr"})
	c.Set(middleware.CtxUserID, "u-1")
	h.SetLanguage(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "PREF_001", resp["error_code"])
}

func TestPreferenceToggleBalance(t *testing.T) {
	h := NewPreferenceHandler(&stubPreferenceService{toggleTo: false})

	c, w := newTestContext(t, http.MethodPost, "/", nil)
	c.Set(middleware.CtxUserID, "u-1")
	h.ToggleBalance(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := dataField(t, w)
	assert.Equal(t, false, data["show_balance"])
}

// --- Dashboard Handler Tests ---

func TestDashboardSpending(t *testing.T) {
	h := NewDashboardHandler(&stubReportingService{
		spendingFn: func(ctx context.Context) (*ports.SpendingOverview, error) {
			return &ports.SpendingOverview{
				Monthly:    []domain.MonthlySpend{{Month: "Jan", Amount: 240000}},
				ByCategory: []domain.CategorySpend{{Category: "Shopping", Amount: 45000, Percentage: 28}},
			}, nil
		},
	})

	c, w := newTestContext(t, http.MethodGet, "/", nil)
	h.Spending(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := dataField(t, w)
	monthly := data["monthly"].([]interface{})
	assert.Len(t, monthly, 1)
}

// --- Receipt Handler Tests ---

func TestReceiptPrint(t *testing.T) {
	h := NewReceiptHandler(&stubRenderer{html: []byte("<html>NexBank</html>")})

	c, w := newTestContext(t, http.MethodPost, "/", domain.Receipt{
		Kind:          domain.ReceiptKindTransfer,
		TransactionID: "tx-1",
		Amount:        5000,
		Status:        domain.ReceiptStatusSuccess,
	})
	h.Print(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "NexBank")
}

func TestReceiptPrint_RendererError(t *testing.T) {
	h := NewReceiptHandler(&stubRenderer{err: apperror.Validation("no receipt supplied")})

	c, w := newTestContext(t, http.MethodPost, "/", domain.Receipt{})
	h.Print(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Health Check Test ---

func TestHealthCheck(t *testing.T) {
	c, w := newTestContext(t, http.MethodGet, "/health", nil)

	HealthCheck()(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp["status"])
}

type failingChecker struct{}

func (failingChecker) Name() string                   { return "redis" }
func (failingChecker) Ping(ctx context.Context) error { return errors.New("connection refused") }

func TestHealthCheck_Degraded(t *testing.T) {
	c, w := newTestContext(t, http.MethodGet, "/health", nil)

	HealthCheck(failingChecker{})(c)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "degraded", resp["status"])
}
