package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/walletbridge/debin-server/internal/config"
	"github.com/walletbridge/debin-server/internal/gateway"
	"github.com/walletbridge/debin-server/internal/txid"
)

// LedgerStore is the slice of the ledger the orchestrator needs.
type LedgerStore interface {
	Exists(accountID string) bool
	Balance(accountID string) decimal.Decimal
	Deposit(accountID string, amount decimal.Decimal, description string) bool
}

// GatewayClient is the outbound settlement API surface.
type GatewayClient interface {
	Authenticate(ctx context.Context, email, password string) (gateway.Credential, error)
	Deposit(ctx context.Context, email string, amount decimal.Decimal, description string) (gateway.Ack, error)
	Withdraw(ctx context.Context, cred gateway.Credential, email string, amount decimal.Decimal, description, password string) (gateway.Ack, error)
}

// ChanceSource supplies the draw behind the simulated inbound settlement.
// *rand.Rand satisfies it; tests inject fixed values to force either branch.
type ChanceSource interface {
	Float64() float64
}

// TransferService orchestrates fund transfers: it validates local state,
// talks to the settlement gateway, and mirrors confirmed inbound funds into
// the ledger. The ledger is never mutated before the external call it
// represents has succeeded.
type TransferService struct {
	ledger             LedgerStore
	gateway            GatewayClient
	issuer             txid.Issuer
	chance             ChanceSource
	logger             *logrus.Logger
	defaultAccountID   string
	receiveLatency     time.Duration
	receiveSuccessRate float64
}

func NewTransferService(
	store LedgerStore,
	gatewayClient GatewayClient,
	issuer txid.Issuer,
	chance ChanceSource,
	logger *logrus.Logger,
	env *config.Config,
) *TransferService {
	return &TransferService{
		ledger:             store,
		gateway:            gatewayClient,
		issuer:             issuer,
		chance:             chance,
		logger:             logger,
		defaultAccountID:   env.DefaultAccountID,
		receiveLatency:     time.Duration(env.ReceiveLatencyMillis) * time.Millisecond,
		receiveSuccessRate: env.ReceiveSuccessRate,
	}
}

// CheckFunds reports whether the account can cover the amount. A transaction
// id is attached on every exit, including validation failures. Unknown
// accounts answer inside a successful envelope: the check itself worked, the
// business predicate did not. The existence check runs first so an unknown id
// is never materialized here.
func (s *TransferService) CheckFunds(ctx context.Context, accountID string, amount decimal.Decimal) Outcome[FundAvailability] {
	transactionID := s.issuer.Issue()

	if accountID == "" {
		return failureOutcome[FundAvailability](KindMissingAccountID, MsgAccountIDRequired, transactionID)
	}

	if !s.ledger.Exists(accountID) {
		s.logger.WithField("accountId", accountID).Info("TransferService.CheckFunds.unknown account")
		data := FundAvailability{
			Available:      false,
			Amount:         amount,
			AccountID:      accountID,
			CurrentBalance: decimal.Zero,
		}
		return successOutcome(KindAccountNotFound, MsgAccountNotFound, &data, transactionID)
	}

	currentBalance := s.ledger.Balance(accountID)
	available := currentBalance.GreaterThanOrEqual(amount)

	data := FundAvailability{
		Available:      available,
		Amount:         amount,
		AccountID:      accountID,
		CurrentBalance: currentBalance,
	}

	if !available {
		return successOutcome(KindInsufficientFunds, MsgInsufficientFunds, &data, transactionID)
	}

	return successOutcome(KindOK, MsgFundsAvailable, &data, transactionID)
}

// DepositToSettlement pushes funds to the settlement API. The local balance is
// only a precondition here: the mirror tracks funds pulled in from the
// settlement system, so a successful outbound deposit leaves it untouched.
func (s *TransferService) DepositToSettlement(ctx context.Context, email string, amount decimal.Decimal, description, accountID string) Outcome[Receipt] {
	s.logger.WithFields(logrus.Fields{
		"email":     email,
		"accountId": accountID,
	}).Info("TransferService.DepositToSettlement.start")

	check := s.CheckFunds(ctx, accountID, amount)
	if !check.Success || check.Kind == KindInsufficientFunds || check.Kind == KindAccountNotFound {
		s.logger.WithField("reason", check.Message).Warn("TransferService.DepositToSettlement.precondition failed")
		return failureOutcome[Receipt](check.Kind, check.Message, "")
	}

	if _, err := s.gateway.Deposit(ctx, email, amount, description); err != nil {
		return gatewayFailure[Receipt](err)
	}

	transactionID := s.issuer.Issue()
	receipt := Receipt{
		TransactionID:     transactionID,
		Amount:            amount,
		Status:            ReceiptStatusCompleted,
		AccountIdentifier: accountID,
	}

	s.logger.WithField("transactionId", transactionID).Info("TransferService.DepositToSettlement.completed")
	return successOutcome(KindOK, "Funds deposited to settlement API successfully", &receipt, transactionID)
}

// WithdrawFromSettlement authenticates, withdraws remotely, then credits the
// default local account. A fresh credential is obtained per call; the
// settlement API's token lifetime is unknown, so nothing is cached.
func (s *TransferService) WithdrawFromSettlement(ctx context.Context, email, password string, amount decimal.Decimal, description string) Outcome[Receipt] {
	s.logger.WithField("email", email).Info("TransferService.WithdrawFromSettlement.start")

	cred, err := s.gateway.Authenticate(ctx, email, password)
	if err != nil {
		var gwErr *gateway.Error
		if errors.As(err, &gwErr) && gwErr.Kind == gateway.ErrKindUnreachable {
			return failureOutcome[Receipt](KindUnreachable,
				fmt.Sprintf("Failed to authenticate with settlement API: %v", gwErr.Err), "")
		}
		return gatewayFailure[Receipt](err)
	}

	if _, err := s.gateway.Withdraw(ctx, cred, email, amount, description, password); err != nil {
		return gatewayFailure[Receipt](err)
	}

	// The external withdrawal has settled; mirror it locally. A failure past
	// this point means money left the settlement system without being
	// credited here, so it is surfaced as its own kind, never as success.
	if !s.ledger.Deposit(s.defaultAccountID, amount, description) {
		s.logger.WithFields(logrus.Fields{
			"accountId": s.defaultAccountID,
			"amount":    amount,
		}).Error("TransferService.WithdrawFromSettlement.local credit failed after remote settlement")
		return failureOutcome[Receipt](KindLedgerUpdateFailed,
			"Withdrawal settled remotely but the local ledger update failed", "")
	}

	transactionID := s.issuer.Issue()
	receipt := Receipt{
		TransactionID:     transactionID,
		Amount:            amount,
		Status:            ReceiptStatusCompleted,
		AccountIdentifier: s.defaultAccountID,
	}

	s.logger.WithField("transactionId", transactionID).Info("TransferService.WithdrawFromSettlement.completed")
	return successOutcome(KindOK, "Funds withdrawn from settlement API and credited to local ledger", &receipt, transactionID)
}

// Receive simulates an inbound settlement: a fixed latency, then a
// probabilistic verdict. It never touches the ledger; the funds land in an
// external system, and the transient failure branch exists so callers can
// exercise their retry handling.
func (s *TransferService) Receive(ctx context.Context, accountIdentifier string, amount decimal.Decimal, description, senderName, senderAccount string) Outcome[Receipt] {
	s.logger.WithFields(logrus.Fields{
		"accountIdentifier": accountIdentifier,
		"senderName":        senderName,
		"senderAccount":     senderAccount,
	}).Info("TransferService.Receive.start")

	select {
	case <-ctx.Done():
		return failureOutcome[Receipt](KindReceiveFailed,
			fmt.Sprintf("Receive cancelled: %v", ctx.Err()), "")
	case <-time.After(s.receiveLatency):
	}

	// Draws under the failure threshold model the upstream settlement
	// dropping the transfer.
	if s.chance.Float64() < 1-s.receiveSuccessRate {
		s.logger.Warn("TransferService.Receive.transient settlement failure")
		return failureOutcome[Receipt](KindReceiveFailed,
			"Transient settlement failure, please retry", "")
	}

	transactionID := s.issuer.Issue()
	receipt := Receipt{
		TransactionID:     transactionID,
		Amount:            amount,
		Status:            ReceiptStatusCompleted,
		AccountIdentifier: accountIdentifier,
	}

	s.logger.WithField("transactionId", transactionID).Info("TransferService.Receive.completed")
	return successOutcome(KindOK, "Money received successfully", &receipt, transactionID)
}

// Request relays a transfer request to the settlement deposit endpoint with
// no local fund check and hands back whatever payload the endpoint returned.
func (s *TransferService) Request(ctx context.Context, accountIdentifier string, amount decimal.Decimal, description string) Outcome[RelayResult] {
	s.logger.WithField("accountIdentifier", accountIdentifier).Info("TransferService.Request.start")

	ack, err := s.gateway.Deposit(ctx, accountIdentifier, amount, description)
	if err != nil {
		return gatewayFailure[RelayResult](err)
	}

	transactionID := s.issuer.Issue()
	result := RelayResult{
		AccountIdentifier: accountIdentifier,
		Payload:           ack.Payload,
	}

	return successOutcome(KindOK, "Request forwarded to settlement API successfully", &result, transactionID)
}

// gatewayFailure translates a client error into a failure envelope. The
// caller decides retries; nothing is retried here.
func gatewayFailure[T any](err error) Outcome[T] {
	var gwErr *gateway.Error
	if !errors.As(err, &gwErr) {
		return failureOutcome[T](KindUnreachable, fmt.Sprintf("Settlement API unreachable: %v", err), "")
	}

	switch gwErr.Kind {
	case gateway.ErrKindAuthFailed:
		return failureOutcome[T](KindAuthFailed,
			fmt.Sprintf("Authentication failed. Status: %d", gwErr.Status), "")
	case gateway.ErrKindRemoteRejected:
		return failureOutcome[T](KindRemoteRejected,
			fmt.Sprintf("Settlement API rejected the transfer. Status: %d", gwErr.Status), "")
	default:
		return failureOutcome[T](KindUnreachable,
			fmt.Sprintf("Settlement API unreachable: %v", gwErr.Err), "")
	}
}
