package transfer

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/walletbridge/debin-server/internal/service"
)

// CheckFundsBody is the request body for a fund availability check.
type CheckFundsBody struct {
	Amount      string `json:"amount" required:"true" doc:"Decimal amount to check"`
	AccountID   string `json:"accountId,omitempty" doc:"Ledger account id"`
	Description string `json:"description,omitempty" doc:"Free-text reason for the check"`
}

// CheckFundsInput is the Huma input for the check-funds endpoint.
type CheckFundsInput struct {
	Body CheckFundsBody
}

// CheckFundsOutput is the Huma output for the check-funds endpoint.
type CheckFundsOutput struct {
	Status int
	Body   Envelope[FundAvailability]
}

type fundsChecker interface {
	CheckFunds(ctx context.Context, accountID string, amount decimal.Decimal) service.Outcome[service.FundAvailability]
}

// CheckFundsHandler handles POST /v1/transfer/check-funds.
type CheckFundsHandler struct {
	Service fundsChecker
}

// NewCheckFundsHandler creates a new CheckFundsHandler.
func NewCheckFundsHandler(svc fundsChecker) *CheckFundsHandler {
	return &CheckFundsHandler{Service: svc}
}

// Register registers the check-funds endpoint with the Huma API.
func (h *CheckFundsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "check-funds",
		Method:      http.MethodPost,
		Path:        "/v1/transfer/check-funds",
		Summary:     "Check fund availability",
		Description: "Reports whether a ledger account can cover the given amount.",
		Tags:        []string{"Transfers"},
	}, h.handle)
}

func (h *CheckFundsHandler) handle(ctx context.Context, input *CheckFundsInput) (*CheckFundsOutput, error) {
	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, huma.NewError(http.StatusBadRequest, "amount must be greater than 0")
	}

	outcome := h.Service.CheckFunds(ctx, input.Body.AccountID, amount)

	return &CheckFundsOutput{
		Status: statusFor(outcome.Kind),
		Body:   envelopeFrom(outcome, fundAvailabilityModel(outcome.Data)),
	}, nil
}
