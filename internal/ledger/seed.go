package ledger

import "github.com/shopspring/decimal"

// DefaultAccountID is the account credited by settlement withdrawals when the
// caller does not name one.
const DefaultAccountID = "default-account"

var seedBalances = map[string]string{
	DefaultAccountID: "1000.00",
	"account-1":      "1000.00",
	"account-2":      "500.00",
	"account-3":      "2000.00",
	"account-4":      "50.00",
	"account-5":      "10.00",
	"account-6":      "5000.00",
	"account-7":      "750.00",
	"account-8":      "1500.00",
	"account-9":      "25.00",
	"account-10":     "3000.00",
}

// Seed installs the default account and the predefined demo accounts with
// their varied balances. Intended for process start, not for tests.
func Seed(l *Ledger) {
	for id, balance := range seedBalances {
		l.GetOrCreate(id, decimal.RequireFromString(balance))
	}
}
