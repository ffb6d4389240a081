package transfer

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/walletbridge/debin-server/internal/service"
)

// ReceiveBody is the request body for a simulated inbound settlement.
type ReceiveBody struct {
	AccountIdentifier string `json:"accountIdentifier" required:"true" doc:"Receiving account identifier"`
	Amount            string `json:"amount" required:"true" doc:"Decimal amount"`
	Description       string `json:"description" required:"true" doc:"Free-text description"`
	SenderName        string `json:"senderName,omitempty" doc:"Name of the sending party"`
	SenderAccount     string `json:"senderAccount,omitempty" doc:"Account of the sending party"`
}

// ReceiveInput is the Huma input for the receive endpoint.
type ReceiveInput struct {
	Body ReceiveBody
}

// ReceiveOutput is the Huma output for the receive endpoint.
type ReceiveOutput struct {
	Status int
	Body   Envelope[Receipt]
}

type moneyReceiver interface {
	Receive(ctx context.Context, accountIdentifier string, amount decimal.Decimal, description, senderName, senderAccount string) service.Outcome[service.Receipt]
}

// ReceiveHandler handles POST /v1/transfer/receive.
type ReceiveHandler struct {
	Service moneyReceiver
}

// NewReceiveHandler creates a new ReceiveHandler.
func NewReceiveHandler(svc moneyReceiver) *ReceiveHandler {
	return &ReceiveHandler{Service: svc}
}

// Register registers the receive endpoint with the Huma API.
func (h *ReceiveHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "receive-money",
		Method:      http.MethodPost,
		Path:        "/v1/transfer/receive",
		Summary:     "Receive money",
		Description: "Simulates an inbound settlement; fails transiently so callers can exercise retries.",
		Tags:        []string{"Transfers"},
	}, h.handle)
}

func (h *ReceiveHandler) handle(ctx context.Context, input *ReceiveInput) (*ReceiveOutput, error) {
	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, huma.NewError(http.StatusBadRequest, "amount must be greater than 0")
	}

	outcome := h.Service.Receive(ctx,
		input.Body.AccountIdentifier, amount, input.Body.Description,
		input.Body.SenderName, input.Body.SenderAccount)

	return &ReceiveOutput{
		Status: statusFor(outcome.Kind),
		Body:   envelopeFrom(outcome, receiptModel(outcome.Data)),
	}, nil
}
