package account

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/walletbridge/debin-server/internal/ledger"
)

// Transaction is the API response model for a ledger record.
type Transaction struct {
	ID          string `json:"id" doc:"Record UUID"`
	Amount      string `json:"amount" doc:"Decimal amount"`
	Kind        string `json:"kind"`
	Description string `json:"description"`
	Timestamp   string `json:"timestamp" doc:"RFC3339 creation time"`
}

// GetAccountInput is the Huma input for the account lookup.
type GetAccountInput struct {
	ID string `path:"id" doc:"Ledger account id"`
}

// GetAccountBody is the account lookup response.
type GetAccountBody struct {
	ID           string        `json:"id"`
	Balance      string        `json:"balance" doc:"Decimal balance"`
	Transactions []Transaction `json:"transactions"`
}

// GetAccountOutput is the Huma output for the account lookup.
type GetAccountOutput struct {
	Body GetAccountBody
}

type ledgerReader interface {
	Exists(accountID string) bool
	Balance(accountID string) decimal.Decimal
	History(accountID string) ([]ledger.Transaction, bool)
}

// GetAccountHandler handles GET /v1/accounts/{id}.
type GetAccountHandler struct {
	Ledger ledgerReader
}

// NewGetAccountHandler creates a new GetAccountHandler.
func NewGetAccountHandler(store ledgerReader) *GetAccountHandler {
	return &GetAccountHandler{Ledger: store}
}

// Register registers the account lookup endpoint with the Huma API.
func (h *GetAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-account",
		Method:      http.MethodGet,
		Path:        "/v1/accounts/{id}",
		Summary:     "Get account",
		Description: "Returns the local mirror balance and history for an account.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *GetAccountHandler) handle(ctx context.Context, input *GetAccountInput) (*GetAccountOutput, error) {
	// Read-only surface: unknown ids answer 404 instead of materializing.
	if !h.Ledger.Exists(input.ID) {
		return nil, huma.NewError(http.StatusNotFound, "account not found")
	}

	records, _ := h.Ledger.History(input.ID)
	transactions := make([]Transaction, len(records))
	for i, record := range records {
		transactions[i] = Transaction{
			ID:          record.ID.String(),
			Amount:      record.Amount.String(),
			Kind:        record.Kind.String(),
			Description: record.Description,
			Timestamp:   record.Timestamp.Format(time.RFC3339),
		}
	}

	return &GetAccountOutput{
		Body: GetAccountBody{
			ID:           input.ID,
			Balance:      h.Ledger.Balance(input.ID).String(),
			Transactions: transactions,
		},
	}, nil
}
