package ledger

import (
	"sync"

	"github.com/shopspring/decimal"
)

// Ledger is the in-process source of truth for account balances. Accounts are
// created on first reference and never deleted; the store is safe for
// concurrent use and operations on distinct accounts do not contend beyond
// the map lookup.
type Ledger struct {
	mu       sync.RWMutex
	accounts map[string]*Account
}

func New() *Ledger {
	return &Ledger{
		accounts: make(map[string]*Account),
	}
}

// GetOrCreate returns the account for the given id, creating it with the
// initial balance if it does not exist. At most one Account per id is ever
// handed out, including under concurrent calls with the same id.
func (l *Ledger) GetOrCreate(accountID string, initialBalance decimal.Decimal) *Account {
	l.mu.RLock()
	account, ok := l.accounts[accountID]
	l.mu.RUnlock()
	if ok {
		return account
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	// Re-check under the write lock; another goroutine may have won the race.
	if account, ok := l.accounts[accountID]; ok {
		return account
	}

	account = newAccount(accountID, initialBalance)
	l.accounts[accountID] = account
	return account
}

// Exists reports whether the account is known, with no side effect.
func (l *Ledger) Exists(accountID string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.accounts[accountID]
	return ok
}

// Balance returns the balance for the given id. Looking up an unknown id
// creates it with a zero balance; that lazy materialization is contractual,
// callers that must not create accounts should check Exists first.
func (l *Ledger) Balance(accountID string) decimal.Decimal {
	return l.GetOrCreate(accountID, decimal.Zero).Balance()
}

// Deposit credits the account, creating it if needed, and appends one history
// record. Returns false and changes nothing when amount is zero or negative.
func (l *Ledger) Deposit(accountID string, amount decimal.Decimal, description string) bool {
	return l.GetOrCreate(accountID, decimal.Zero).deposit(amount, description)
}

// History returns a copy of the account's records without materializing
// unknown accounts. The second return is false when the id is unknown.
func (l *Ledger) History(accountID string) ([]Transaction, bool) {
	l.mu.RLock()
	account, ok := l.accounts[accountID]
	l.mu.RUnlock()
	if !ok {
		return nil, false
	}
	return account.History(), true
}
