package transfer

import (
	"net/http"
	"time"

	"github.com/walletbridge/debin-server/internal/service"
)

// Envelope is the API form of the orchestrator's outcome. Amounts are
// rendered as decimal strings; data is omitted when the operation produced
// none.
type Envelope[T any] struct {
	Success       bool      `json:"success" doc:"Whether the operation succeeded"`
	Kind          string    `json:"kind" doc:"Closed outcome classification"`
	Message       string    `json:"message" doc:"Human-readable outcome"`
	Data          *T        `json:"data,omitempty"`
	Timestamp     time.Time `json:"timestamp" doc:"When the outcome was produced"`
	TransactionID string    `json:"transactionId,omitempty" doc:"Correlation id"`
}

// FundAvailability is the API response model for a fund availability check.
type FundAvailability struct {
	Available      bool   `json:"available"`
	Amount         string `json:"amount" doc:"Decimal amount"`
	AccountID      string `json:"accountId"`
	CurrentBalance string `json:"currentBalance" doc:"Decimal balance"`
}

// Receipt is the API response model for a completed transfer.
type Receipt struct {
	TransactionID     string `json:"transactionId"`
	Amount            string `json:"amount" doc:"Decimal amount"`
	Status            string `json:"status"`
	AccountIdentifier string `json:"accountIdentifier"`
}

// RelayResult is the API response model for a relayed transfer request.
type RelayResult struct {
	AccountIdentifier string                 `json:"accountIdentifier"`
	Payload           map[string]interface{} `json:"payload,omitempty" doc:"Raw settlement API answer"`
}

func envelopeFrom[S, T any](outcome service.Outcome[S], data *T) Envelope[T] {
	return Envelope[T]{
		Success:       outcome.Success,
		Kind:          outcome.Kind.String(),
		Message:       outcome.Message,
		Data:          data,
		Timestamp:     outcome.Timestamp,
		TransactionID: outcome.TransactionID,
	}
}

func fundAvailabilityModel(data *service.FundAvailability) *FundAvailability {
	if data == nil {
		return nil
	}
	return &FundAvailability{
		Available:      data.Available,
		Amount:         data.Amount.String(),
		AccountID:      data.AccountID,
		CurrentBalance: data.CurrentBalance.String(),
	}
}

func receiptModel(data *service.Receipt) *Receipt {
	if data == nil {
		return nil
	}
	return &Receipt{
		TransactionID:     data.TransactionID,
		Amount:            data.Amount.String(),
		Status:            data.Status,
		AccountIdentifier: data.AccountIdentifier,
	}
}

func relayResultModel(data *service.RelayResult) *RelayResult {
	if data == nil {
		return nil
	}
	return &RelayResult{
		AccountIdentifier: data.AccountIdentifier,
		Payload:           data.Payload,
	}
}

// statusFor maps an outcome kind to the transport status. Keyed on the closed
// enumeration, never on message text.
func statusFor(kind service.Kind) int {
	switch kind {
	case service.KindOK:
		return http.StatusOK
	case service.KindMissingAccountID:
		return http.StatusBadRequest
	case service.KindInsufficientFunds:
		return http.StatusForbidden
	case service.KindAccountNotFound:
		return http.StatusNotFound
	case service.KindAuthFailed:
		return http.StatusUnauthorized
	case service.KindRemoteRejected, service.KindUnreachable:
		return http.StatusBadGateway
	case service.KindReceiveFailed:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
