package transfer

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/walletbridge/debin-server/internal/service"
)

const defaultDepositDescription = "Deposit from Debin"

// DepositBody is the request body for a deposit to the settlement API.
type DepositBody struct {
	Email       string `json:"email" required:"true" format:"email" doc:"Settlement API user"`
	Amount      string `json:"amount" required:"true" doc:"Decimal amount"`
	Description string `json:"description,omitempty" doc:"Free-text description"`
	AccountID   string `json:"accountId" required:"true" doc:"Ledger account checked for cover"`
}

// DepositInput is the Huma input for the deposit endpoint.
type DepositInput struct {
	Body DepositBody
}

// DepositOutput is the Huma output for the deposit endpoint.
type DepositOutput struct {
	Status int
	Body   Envelope[Receipt]
}

type settlementDepositor interface {
	DepositToSettlement(ctx context.Context, email string, amount decimal.Decimal, description, accountID string) service.Outcome[service.Receipt]
}

// DepositHandler handles POST /v1/transfer/deposit.
type DepositHandler struct {
	Service settlementDepositor
}

// NewDepositHandler creates a new DepositHandler.
func NewDepositHandler(svc settlementDepositor) *DepositHandler {
	return &DepositHandler{Service: svc}
}

// Register registers the deposit endpoint with the Huma API.
func (h *DepositHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "deposit-to-settlement",
		Method:      http.MethodPost,
		Path:        "/v1/transfer/deposit",
		Summary:     "Deposit to settlement API",
		Description: "Pushes funds to the settlement API after a local cover check.",
		Tags:        []string{"Transfers"},
	}, h.handle)
}

func (h *DepositHandler) handle(ctx context.Context, input *DepositInput) (*DepositOutput, error) {
	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, huma.NewError(http.StatusBadRequest, "amount must be greater than 0")
	}

	description := input.Body.Description
	if description == "" {
		description = defaultDepositDescription
	}

	outcome := h.Service.DepositToSettlement(ctx, input.Body.Email, amount, description, input.Body.AccountID)

	return &DepositOutput{
		Status: statusFor(outcome.Kind),
		Body:   envelopeFrom(outcome, receiptModel(outcome.Data)),
	}, nil
}
