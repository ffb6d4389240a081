package transfer

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/walletbridge/debin-server/internal/service"
)

// mockRequester is a mock for relayRequester.
type mockRequester struct {
	mock.Mock
}

func (m *mockRequester) Request(ctx context.Context, accountIdentifier string, amount decimal.Decimal, description string) service.Outcome[service.RelayResult] {
	args := m.Called(ctx, accountIdentifier, amount, description)
	return args.Get(0).(service.Outcome[service.RelayResult])
}

func newRequestAPI(t *testing.T, svc relayRequester) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewRequestHandler(svc).Register(api)
	return api
}

func TestHTTP_Request_RelaysPayload(t *testing.T) {
	mockSvc := new(mockRequester)
	mockSvc.On("Request", mock.Anything, "acct-1", mock.MatchedBy(func(a decimal.Decimal) bool {
		return a.Equal(decimal.RequireFromString("40.00"))
	}), "lunch split").Return(service.Outcome[service.RelayResult]{
		Success: true,
		Kind:    service.KindOK,
		Message: "Transfer request relayed to settlement API",
		Data: &service.RelayResult{
			AccountIdentifier: "acct-1",
			Payload:           map[string]interface{}{"id": "req-7", "state": "PENDING"},
		},
		TransactionID: "DEB-1700000000000-9876",
	})

	resp := newRequestAPI(t, mockSvc).Post("/v1/transfer/request", RequestBody{
		AccountIdentifier: "acct-1",
		Amount:            "40.00",
		Description:       "lunch split",
	})

	assert.Equal(t, http.StatusOK, resp.Code)

	var body Envelope[RelayResult]
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Success)
	assert.Equal(t, "acct-1", body.Data.AccountIdentifier)
	assert.Equal(t, "PENDING", body.Data.Payload["state"])
	mockSvc.AssertExpectations(t)
}

func TestHTTP_Request_DefaultsDescription(t *testing.T) {
	mockSvc := new(mockRequester)
	mockSvc.On("Request", mock.Anything, "acct-1", mock.Anything, defaultRequestDescription).
		Return(service.Outcome[service.RelayResult]{
			Success: true,
			Kind:    service.KindOK,
			Data:    &service.RelayResult{AccountIdentifier: "acct-1"},
		})

	resp := newRequestAPI(t, mockSvc).Post("/v1/transfer/request", RequestBody{
		AccountIdentifier: "acct-1",
		Amount:            "40.00",
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_Request_Unreachable(t *testing.T) {
	mockSvc := new(mockRequester)
	mockSvc.On("Request", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(service.Outcome[service.RelayResult]{
			Kind:    service.KindUnreachable,
			Message: "Settlement API unreachable: connection refused",
		})

	resp := newRequestAPI(t, mockSvc).Post("/v1/transfer/request", RequestBody{
		AccountIdentifier: "acct-1",
		Amount:            "40.00",
	})

	assert.Equal(t, http.StatusBadGateway, resp.Code)

	var body Envelope[RelayResult]
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.False(t, body.Success)
	assert.Nil(t, body.Data)
}

func TestHTTP_Request_InvalidAmount(t *testing.T) {
	mockSvc := new(mockRequester)

	resp := newRequestAPI(t, mockSvc).Post("/v1/transfer/request", RequestBody{
		AccountIdentifier: "acct-1",
		Amount:            "-5",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "Request", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
