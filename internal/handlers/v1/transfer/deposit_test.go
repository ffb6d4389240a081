package transfer

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/walletbridge/debin-server/internal/service"
)

// mockDepositor is a mock for settlementDepositor.
type mockDepositor struct {
	mock.Mock
}

func (m *mockDepositor) DepositToSettlement(ctx context.Context, email string, amount decimal.Decimal, description, accountID string) service.Outcome[service.Receipt] {
	args := m.Called(ctx, email, amount, description, accountID)
	return args.Get(0).(service.Outcome[service.Receipt])
}

func newDepositAPI(t *testing.T, svc settlementDepositor) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewDepositHandler(svc).Register(api)
	return api
}

func completedReceipt(accountID string) *service.Receipt {
	return &service.Receipt{
		TransactionID:     "DEB-1700000000000-4321",
		Amount:            decimal.RequireFromString("100.00"),
		Status:            service.ReceiptStatusCompleted,
		AccountIdentifier: accountID,
	}
}

func TestHTTP_Deposit_Success(t *testing.T) {
	mockSvc := new(mockDepositor)
	mockSvc.On("DepositToSettlement", mock.Anything, "user@example.com", mock.MatchedBy(func(a decimal.Decimal) bool {
		return a.Equal(decimal.RequireFromString("100.00"))
	}), "top up", "acct-1").Return(service.Outcome[service.Receipt]{
		Success:       true,
		Kind:          service.KindOK,
		Message:       "Funds deposited to settlement API successfully",
		Data:          completedReceipt("acct-1"),
		TransactionID: "DEB-1700000000000-4321",
		Timestamp:     time.Now(),
	})

	resp := newDepositAPI(t, mockSvc).Post("/v1/transfer/deposit", DepositBody{
		Email:       "user@example.com",
		Amount:      "100.00",
		Description: "top up",
		AccountID:   "acct-1",
	})

	assert.Equal(t, http.StatusOK, resp.Code)

	var body Envelope[Receipt]
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Success)
	assert.Equal(t, "COMPLETED", body.Data.Status)
	assert.Equal(t, "100", body.Data.Amount)
	assert.Equal(t, "acct-1", body.Data.AccountIdentifier)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_Deposit_DefaultsDescription(t *testing.T) {
	mockSvc := new(mockDepositor)
	mockSvc.On("DepositToSettlement", mock.Anything, "user@example.com", mock.Anything,
		defaultDepositDescription, "acct-1").Return(service.Outcome[service.Receipt]{
		Success: true,
		Kind:    service.KindOK,
		Data:    completedReceipt("acct-1"),
	})

	resp := newDepositAPI(t, mockSvc).Post("/v1/transfer/deposit", DepositBody{
		Email:     "user@example.com",
		Amount:    "100.00",
		AccountID: "acct-1",
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_Deposit_InsufficientFunds(t *testing.T) {
	mockSvc := new(mockDepositor)
	mockSvc.On("DepositToSettlement", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(service.Outcome[service.Receipt]{
			Kind:    service.KindInsufficientFunds,
			Message: "Insufficient funds",
		})

	resp := newDepositAPI(t, mockSvc).Post("/v1/transfer/deposit", DepositBody{
		Email:     "user@example.com",
		Amount:    "100.00",
		AccountID: "acct-1",
	})

	assert.Equal(t, http.StatusForbidden, resp.Code)

	var body Envelope[Receipt]
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.False(t, body.Success)
	assert.Nil(t, body.Data)
}

func TestHTTP_Deposit_GatewayRejected(t *testing.T) {
	mockSvc := new(mockDepositor)
	mockSvc.On("DepositToSettlement", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(service.Outcome[service.Receipt]{
			Kind:    service.KindRemoteRejected,
			Message: "Settlement API rejected the transfer. Status: 422",
		})

	resp := newDepositAPI(t, mockSvc).Post("/v1/transfer/deposit", DepositBody{
		Email:     "user@example.com",
		Amount:    "100.00",
		AccountID: "acct-1",
	})

	assert.Equal(t, http.StatusBadGateway, resp.Code)
}

func TestHTTP_Deposit_InvalidAmount(t *testing.T) {
	mockSvc := new(mockDepositor)

	resp := newDepositAPI(t, mockSvc).Post("/v1/transfer/deposit", DepositBody{
		Email:     "user@example.com",
		Amount:    "0",
		AccountID: "acct-1",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "DepositToSettlement",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
