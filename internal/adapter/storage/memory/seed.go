package memory

import (
	"nexbank/internal/core/domain"
	"nexbank/pkg/currency"
)

// Seed bundles the static demo data the bank serves. All amounts are whole
// rupees. The repos copy what they need at construction, so a Seed can be
// shared between tests without aliasing.
type Seed struct {
	UserTemplate  domain.User
	Accounts      []domain.Account
	Cards         []domain.Card
	Transactions  []domain.Transaction
	Contacts      []domain.Contact
	Notifications []domain.Notification
	Monthly       []domain.MonthlySpend
	ByCategory    []domain.CategorySpend
	Providers     []domain.Provider
	Operators     []domain.Operator
	Packages      map[string][]domain.RechargePackage // keyed by operator id
}

// DefaultSeed returns the canonical demo dataset.
func DefaultSeed() *Seed {
	return &Seed{
		UserTemplate: domain.User{
			Name:          "Sarah Johnson",
			Email:         "sarah.johnson@email.com",
			Avatar:        "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=150&h=150&fit=crop&crop=face",
			Phone:         "+92 300 1234567",
			AccountNumber: "****4582",
			MemberSince:   "January 2020",
		},

		Accounts: []domain.Account{
			{ID: "1", Kind: domain.AccountKindSavings, Name: "Premium Savings", Number: "****4582", Balance: 500000, Currency: currency.Code},
			{ID: "2", Kind: domain.AccountKindCurrent, Name: "Current Account", Number: "****7891", Balance: 124500, Currency: currency.Code},
			{ID: "3", Kind: domain.AccountKindCredit, Name: "Platinum Credit", Number: "****3456", Balance: -23400, Currency: currency.Code},
		},

		Cards: []domain.Card{
			{ID: "1", Network: domain.CardNetworkVisa, Kind: domain.CardKindDebit, Number: "4582 7891 3456 7890", Holder: "SARAH JOHNSON", Expiry: "12/27", Balance: 500000, Limit: 600000, Frozen: false},
			{ID: "2", Network: domain.CardNetworkMastercard, Kind: domain.CardKindCredit, Number: "5412 7534 8901 2345", Holder: "SARAH JOHNSON", Expiry: "08/26", Balance: 23400, Limit: 150000, Frozen: false},
		},

		Transactions: []domain.Transaction{
			{ID: "1", Direction: domain.TransactionDebit, Amount: 12550, Currency: currency.Code, Description: "Amazon Purchase", Category: "Shopping", Date: "2024-01-15", Status: domain.TransactionStatusCompleted},
			{ID: "2", Direction: domain.TransactionCredit, Amount: 350000, Currency: currency.Code, Description: "Salary Deposit", Category: "Income", Date: "2024-01-14", Status: domain.TransactionStatusCompleted},
			{ID: "3", Direction: domain.TransactionDebit, Amount: 4500, Currency: currency.Code, Description: "Netflix Subscription", Category: "Entertainment", Date: "2024-01-13", Status: domain.TransactionStatusCompleted},
			{ID: "4", Direction: domain.TransactionDebit, Amount: 25000, Currency: currency.Code, Description: "Electric Bill", Category: "Utilities", Date: "2024-01-12", Status: domain.TransactionStatusCompleted},
			{ID: "5", Direction: domain.TransactionDebit, Amount: 8999, Currency: currency.Code, Description: "Spotify Annual", Category: "Entertainment", Date: "2024-01-11", Status: domain.TransactionStatusPending},
			{ID: "6", Direction: domain.TransactionCredit, Amount: 50000, Currency: currency.Code, Description: "Transfer from John", Category: "Transfer", Date: "2024-01-10", Status: domain.TransactionStatusCompleted},
			{ID: "7", Direction: domain.TransactionDebit, Amount: 120000, Currency: currency.Code, Description: "Rent Payment", Category: "Housing", Date: "2024-01-09", Status: domain.TransactionStatusCompleted},
			{ID: "8", Direction: domain.TransactionDebit, Amount: 6530, Currency: currency.Code, Description: "Grocery Store", Category: "Food", Date: "2024-01-08", Status: domain.TransactionStatusCompleted},
			{ID: "9", Direction: domain.TransactionDebit, Amount: 3500, Currency: currency.Code, Description: "Uber Ride", Category: "Transport", Date: "2024-01-07", Status: domain.TransactionStatusCompleted},
			{ID: "10", Direction: domain.TransactionCredit, Amount: 15000, Currency: currency.Code, Description: "Cashback Reward", Category: "Rewards", Date: "2024-01-06", Status: domain.TransactionStatusCompleted},
		},

		Contacts: []domain.Contact{
			{ID: "1", Name: "Ahmed Khan", Avatar: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=100&h=100&fit=crop&crop=face", AccountNumber: "****1234"},
			{ID: "2", Name: "Fatima Ali", Avatar: "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=100&h=100&fit=crop&crop=face", AccountNumber: "****5678"},
			{ID: "3", Name: "Hassan Raza", Avatar: "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=100&h=100&fit=crop&crop=face", AccountNumber: "****9012"},
			{ID: "4", Name: "Ayesha Malik", Avatar: "https://images.unsplash.com/photo-1544005313-94ddf0286df2?w=100&h=100&fit=crop&crop=face", AccountNumber: "****3456"},
		},

		Notifications: []domain.Notification{
			{ID: "1", Title: "Salary received", Message: "PKR 350,000 credited to Premium Savings", TimeAgo: "2h ago", Read: false, Category: "transaction"},
			{ID: "2", Title: "Bill due soon", Message: "Your K-Electric bill is due in 3 days", TimeAgo: "5h ago", Read: false, Category: "billing"},
			{ID: "3", Title: "New sign-in", Message: "New sign-in from Chrome on Windows", TimeAgo: "1d ago", Read: true, Category: "security"},
			{ID: "4", Title: "Cashback earned", Message: "PKR 15,000 cashback added to your rewards", TimeAgo: "3d ago", Read: true, Category: "rewards"},
		},

		Monthly: []domain.MonthlySpend{
			{Month: "Jan", Amount: 240000},
			{Month: "Feb", Amount: 180000},
			{Month: "Mar", Amount: 320000},
			{Month: "Apr", Amount: 280000},
			{Month: "May", Amount: 210000},
			{Month: "Jun", Amount: 350000},
		},

		ByCategory: []domain.CategorySpend{
			{Category: "Shopping", Amount: 125000, Percentage: 35},
			{Category: "Food & Dining", Amount: 85000, Percentage: 24},
			{Category: "Transport", Amount: 45000, Percentage: 13},
			{Category: "Entertainment", Amount: 35000, Percentage: 10},
			{Category: "Utilities", Amount: 65000, Percentage: 18},
		},

		Providers: []domain.Provider{
			{ID: "kelectric", Name: "K-Electric", Category: "electricity"},
			{ID: "lesco", Name: "LESCO", Category: "electricity"},
			{ID: "iesco", Name: "IESCO", Category: "electricity"},
			{ID: "pesco", Name: "PESCO", Category: "electricity"},
			{ID: "fesco", Name: "FESCO", Category: "electricity"},
			{ID: "sngpl", Name: "SNGPL", Category: "gas"},
			{ID: "ssgc", Name: "SSGC", Category: "gas"},
			{ID: "ptcl", Name: "PTCL", Category: "telephone"},
			{ID: "nayatel", Name: "Nayatel", Category: "internet"},
			{ID: "stormfiber", Name: "StormFiber", Category: "internet"},
			{ID: "wasa", Name: "WASA", Category: "water"},
			{ID: "cable", Name: "Cable TV", Category: "tv"},
		},

		Operators: []domain.Operator{
			{ID: "jazz", Name: "Jazz"},
			{ID: "telenor", Name: "Telenor"},
			{ID: "zong", Name: "Zong"},
			{ID: "ufone", Name: "Ufone"},
		},

		Packages: map[string][]domain.RechargePackage{
			"jazz": {
				{ID: "j1", Name: "Daily Load", Price: 50, Validity: "1 Day", Kind: domain.PackageKindPrepaid},
				{ID: "j2", Name: "Weekly Load", Price: 200, Validity: "7 Days", Kind: domain.PackageKindPrepaid},
				{ID: "j3", Name: "Monthly Load", Price: 500, Validity: "30 Days", Kind: domain.PackageKindPrepaid},
				{ID: "j4", Name: "Super Duper Card", Price: 599, Validity: "30 Days", Kind: domain.PackageKindBundle, Data: "6GB", Minutes: "1500", SMS: "1500"},
				{ID: "j5", Name: "Weekly Premium", Price: 350, Validity: "7 Days", Kind: domain.PackageKindBundle, Data: "5GB", Minutes: "500", SMS: "500"},
				{ID: "j6", Name: "Daily All-in-One", Price: 55, Validity: "1 Day", Kind: domain.PackageKindBundle, Data: "500MB", Minutes: "50", SMS: "50"},
			},
			"telenor": {
				{ID: "t1", Name: "Daily Load", Price: 50, Validity: "1 Day", Kind: domain.PackageKindPrepaid},
				{ID: "t2", Name: "Weekly Load", Price: 200, Validity: "7 Days", Kind: domain.PackageKindPrepaid},
				{ID: "t3", Name: "Monthly Load", Price: 500, Validity: "30 Days", Kind: domain.PackageKindPrepaid},
				{ID: "t4", Name: "Monthly Pro", Price: 799, Validity: "30 Days", Kind: domain.PackageKindBundle, Data: "12GB", Minutes: "3000", SMS: "3000"},
				{ID: "t5", Name: "Weekly Social", Price: 150, Validity: "7 Days", Kind: domain.PackageKindBundle, Data: "3GB", Minutes: "300", SMS: "300"},
				{ID: "t6", Name: "Daily Smart", Price: 35, Validity: "1 Day", Kind: domain.PackageKindBundle, Data: "200MB", Minutes: "30", SMS: "30"},
			},
			"zong": {
				{ID: "z1", Name: "Daily Load", Price: 50, Validity: "1 Day", Kind: domain.PackageKindPrepaid},
				{ID: "z2", Name: "Weekly Load", Price: 200, Validity: "7 Days", Kind: domain.PackageKindPrepaid},
				{ID: "z3", Name: "Monthly Load", Price: 500, Validity: "30 Days", Kind: domain.PackageKindPrepaid},
				{ID: "z4", Name: "Supreme Offer", Price: 999, Validity: "30 Days", Kind: domain.PackageKindBundle, Data: "15GB", Minutes: "5000", SMS: "5000"},
				{ID: "z5", Name: "Weekly Max", Price: 299, Validity: "7 Days", Kind: domain.PackageKindBundle, Data: "4GB", Minutes: "1000", SMS: "1000"},
				{ID: "z6", Name: "Daily Basic", Price: 25, Validity: "1 Day", Kind: domain.PackageKindBundle, Data: "100MB", Minutes: "20", SMS: "20"},
			},
			"ufone": {
				{ID: "u1", Name: "Daily Load", Price: 50, Validity: "1 Day", Kind: domain.PackageKindPrepaid},
				{ID: "u2", Name: "Weekly Load", Price: 200, Validity: "7 Days", Kind: domain.PackageKindPrepaid},
				{ID: "u3", Name: "Monthly Load", Price: 500, Validity: "30 Days", Kind: domain.PackageKindPrepaid},
				{ID: "u4", Name: "Super Card Plus", Price: 699, Validity: "30 Days", Kind: domain.PackageKindBundle, Data: "8GB", Minutes: "2000", SMS: "2000"},
				{ID: "u5", Name: "Weekly Power", Price: 199, Validity: "7 Days", Kind: domain.PackageKindBundle, Data: "2GB", Minutes: "500", SMS: "500"},
				{ID: "u6", Name: "Daily Lite", Price: 30, Validity: "1 Day", Kind: domain.PackageKindBundle, Data: "150MB", Minutes: "25", SMS: "25"},
			},
		},
	}
}
