package transfer

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/walletbridge/debin-server/internal/service"
)

const defaultRequestDescription = "Transfer request from Debin"

// RequestBody is the request body for relaying a transfer request.
type RequestBody struct {
	AccountIdentifier string `json:"accountIdentifier" required:"true" doc:"Requesting account identifier"`
	Amount            string `json:"amount" required:"true" doc:"Decimal amount"`
	Description       string `json:"description,omitempty" doc:"Free-text description"`
}

// RequestInput is the Huma input for the request endpoint.
type RequestInput struct {
	Body RequestBody
}

// RequestOutput is the Huma output for the request endpoint.
type RequestOutput struct {
	Status int
	Body   Envelope[RelayResult]
}

type relayRequester interface {
	Request(ctx context.Context, accountIdentifier string, amount decimal.Decimal, description string) service.Outcome[service.RelayResult]
}

// RequestHandler handles POST /v1/transfer/request.
type RequestHandler struct {
	Service relayRequester
}

// NewRequestHandler creates a new RequestHandler.
func NewRequestHandler(svc relayRequester) *RequestHandler {
	return &RequestHandler{Service: svc}
}

// Register registers the request endpoint with the Huma API.
func (h *RequestHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "request-money",
		Method:      http.MethodPost,
		Path:        "/v1/transfer/request",
		Summary:     "Request money",
		Description: "Relays a transfer request to the settlement API with no local fund check.",
		Tags:        []string{"Transfers"},
	}, h.handle)
}

func (h *RequestHandler) handle(ctx context.Context, input *RequestInput) (*RequestOutput, error) {
	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, huma.NewError(http.StatusBadRequest, "amount must be greater than 0")
	}

	description := input.Body.Description
	if description == "" {
		description = defaultRequestDescription
	}

	outcome := h.Service.Request(ctx, input.Body.AccountIdentifier, amount, description)

	return &RequestOutput{
		Status: statusFor(outcome.Kind),
		Body:   envelopeFrom(outcome, relayResultModel(outcome.Data)),
	}, nil
}
