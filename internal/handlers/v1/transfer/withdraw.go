package transfer

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/walletbridge/debin-server/internal/service"
)

const defaultWithdrawDescription = "Withdrawal to Debin"

// WithdrawBody is the request body for a withdrawal from the settlement API.
type WithdrawBody struct {
	Email       string `json:"email" required:"true" format:"email" doc:"Settlement API user"`
	Password    string `json:"password" required:"true" doc:"Settlement API password"`
	Amount      string `json:"amount" required:"true" doc:"Decimal amount"`
	Description string `json:"description,omitempty" doc:"Free-text description"`
}

// WithdrawInput is the Huma input for the withdraw endpoint.
type WithdrawInput struct {
	Body WithdrawBody
}

// WithdrawOutput is the Huma output for the withdraw endpoint.
type WithdrawOutput struct {
	Status int
	Body   Envelope[Receipt]
}

type settlementWithdrawer interface {
	WithdrawFromSettlement(ctx context.Context, email, password string, amount decimal.Decimal, description string) service.Outcome[service.Receipt]
}

// WithdrawHandler handles POST /v1/transfer/withdraw.
type WithdrawHandler struct {
	Service settlementWithdrawer
}

// NewWithdrawHandler creates a new WithdrawHandler.
func NewWithdrawHandler(svc settlementWithdrawer) *WithdrawHandler {
	return &WithdrawHandler{Service: svc}
}

// Register registers the withdraw endpoint with the Huma API.
func (h *WithdrawHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "withdraw-from-settlement",
		Method:      http.MethodPost,
		Path:        "/v1/transfer/withdraw",
		Summary:     "Withdraw from settlement API",
		Description: "Authenticates, withdraws remotely, and credits the local default account.",
		Tags:        []string{"Transfers"},
	}, h.handle)
}

func (h *WithdrawHandler) handle(ctx context.Context, input *WithdrawInput) (*WithdrawOutput, error) {
	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, huma.NewError(http.StatusBadRequest, "amount must be greater than 0")
	}

	description := input.Body.Description
	if description == "" {
		description = defaultWithdrawDescription
	}

	outcome := h.Service.WithdrawFromSettlement(ctx, input.Body.Email, input.Body.Password, amount, description)

	return &WithdrawOutput{
		Status: statusFor(outcome.Kind),
		Body:   envelopeFrom(outcome, receiptModel(outcome.Data)),
	}, nil
}
