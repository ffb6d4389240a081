package service

import (
	"time"

	"github.com/shopspring/decimal"
)

// Kind is the closed classification carried by every Outcome. The transport
// layer switches on it for status mapping instead of matching message text.
type Kind int8

const (
	KindOK Kind = iota
	KindMissingAccountID
	KindAccountNotFound
	KindInsufficientFunds
	KindAuthFailed
	KindRemoteRejected
	KindUnreachable
	KindLedgerUpdateFailed
	KindReceiveFailed
)

func (k Kind) String() string {
	switch k {
	case KindOK:
		return "OK"
	case KindMissingAccountID:
		return "MISSING_ACCOUNT_ID"
	case KindAccountNotFound:
		return "ACCOUNT_NOT_FOUND"
	case KindInsufficientFunds:
		return "INSUFFICIENT_FUNDS"
	case KindAuthFailed:
		return "AUTH_FAILED"
	case KindRemoteRejected:
		return "REMOTE_REJECTED"
	case KindUnreachable:
		return "UNREACHABLE"
	case KindLedgerUpdateFailed:
		return "LEDGER_UPDATE_FAILED"
	case KindReceiveFailed:
		return "RECEIVE_FAILED"
	default:
		return "UNKNOWN"
	}
}

// Message strings pinned by the external API contract. Clients still read
// them; the Kind above is the load-bearing classification.
const (
	MsgAccountIDRequired = "Account ID is required"
	MsgAccountNotFound   = "Account not found"
	MsgInsufficientFunds = "Insufficient funds"
	MsgFundsAvailable    = "Funds are available"
)

// ReceiptStatusCompleted marks a transfer that reached its terminal state.
const ReceiptStatusCompleted = "COMPLETED"

// Outcome is the uniform envelope returned by every orchestrator operation.
// It is constructed per call and never retained.
type Outcome[T any] struct {
	Success       bool
	Kind          Kind
	Message       string
	Data          *T
	TransactionID string
	Timestamp     time.Time
}

// FundAvailability is the check-funds snapshot.
type FundAvailability struct {
	Available      bool
	Amount         decimal.Decimal
	AccountID      string
	CurrentBalance decimal.Decimal
}

// Receipt describes a completed transfer.
type Receipt struct {
	TransactionID     string
	Amount            decimal.Decimal
	Status            string
	AccountIdentifier string
}

// RelayResult carries the settlement API's raw answer to a relayed request.
type RelayResult struct {
	AccountIdentifier string
	Payload           map[string]interface{}
}

func successOutcome[T any](kind Kind, message string, data *T, transactionID string) Outcome[T] {
	return Outcome[T]{
		Success:       true,
		Kind:          kind,
		Message:       message,
		Data:          data,
		TransactionID: transactionID,
		Timestamp:     time.Now(),
	}
}

func failureOutcome[T any](kind Kind, message string, transactionID string) Outcome[T] {
	return Outcome[T]{
		Kind:          kind,
		Message:       message,
		TransactionID: transactionID,
		Timestamp:     time.Now(),
	}
}
