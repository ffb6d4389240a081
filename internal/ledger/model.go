package ledger

import (
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// TransactionKind classifies a ledger record.
type TransactionKind int8

const (
	TransactionKindDeposit TransactionKind = iota
)

func (k TransactionKind) String() string {
	switch k {
	case TransactionKindDeposit:
		return "DEPOSIT"
	default:
		return "UNKNOWN"
	}
}

// Transaction is a single immutable ledger record owned by an account's history.
type Transaction struct {
	ID          uuid.UUID
	Amount      decimal.Decimal
	Kind        TransactionKind
	Description string
	Timestamp   time.Time
}

// Account holds a balance and its append-only history. Mutation goes through
// the Ledger; the mutex covers the balance read-modify-write and the history
// append so concurrent deposits to the same account cannot lose updates.
type Account struct {
	ID string

	mu      sync.Mutex
	balance decimal.Decimal
	history []Transaction
}

func newAccount(id string, initialBalance decimal.Decimal) *Account {
	return &Account{
		ID:      id,
		balance: initialBalance,
	}
}

// Balance returns the current balance.
func (a *Account) Balance() decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}

// History returns a copy of the account's transaction records in insertion order.
func (a *Account) History() []Transaction {
	a.mu.Lock()
	defer a.mu.Unlock()

	records := make([]Transaction, len(a.history))
	copy(records, a.history)
	return records
}

// deposit credits the account and appends a record. Amounts of zero or less
// are rejected and leave the account untouched.
func (a *Account) deposit(amount decimal.Decimal, description string) bool {
	if amount.LessThanOrEqual(decimal.Zero) {
		return false
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.balance = a.balance.Add(amount)
	a.history = append(a.history, Transaction{
		ID:          uuid.Must(uuid.NewV4()),
		Amount:      amount,
		Kind:        TransactionKindDeposit,
		Description: description,
		Timestamp:   time.Now(),
	})

	return true
}
