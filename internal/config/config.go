package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port                  string
	SettlementBaseURL     string
	AuthEndpoint          string
	DepositEndpoint       string
	WithdrawEndpoint      string
	SettlementTimeoutSecs int
	ReceiveLatencyMillis  int
	ReceiveSuccessRate    float64
	DefaultAccountID      string
}

func ProcessEnvironmentVariables() (*Config, error) {
	// In all cases the default behavior should be for the docker compose setup
	env := Config{
		Port:                  "9447",
		SettlementBaseURL:     "http://localhost:8080",
		AuthEndpoint:          "/api/auth/login",
		DepositEndpoint:       "/api/transactions/deposit",
		WithdrawEndpoint:      "/api/transactions/withdraw",
		SettlementTimeoutSecs: 5,
		ReceiveLatencyMillis:  500,
		ReceiveSuccessRate:    0.9,
		DefaultAccountID:      "default-account",
	}

	envPort := os.Getenv("PORT")
	envSettlementBaseURL := os.Getenv("SETTLEMENT_BASE_URL")
	envAuthEndpoint := os.Getenv("SETTLEMENT_AUTH_ENDPOINT")
	envDepositEndpoint := os.Getenv("SETTLEMENT_DEPOSIT_ENDPOINT")
	envWithdrawEndpoint := os.Getenv("SETTLEMENT_WITHDRAW_ENDPOINT")
	envSettlementTimeout := os.Getenv("SETTLEMENT_TIMEOUT_SECONDS")
	envReceiveLatency := os.Getenv("RECEIVE_LATENCY_MS")
	envReceiveSuccessRate := os.Getenv("RECEIVE_SUCCESS_RATE")
	envDefaultAccountID := os.Getenv("DEFAULT_ACCOUNT_ID")

	if len(envPort) != 0 {
		env.Port = envPort
	}

	if len(envSettlementBaseURL) != 0 {
		env.SettlementBaseURL = envSettlementBaseURL
	}

	if len(envAuthEndpoint) != 0 {
		env.AuthEndpoint = envAuthEndpoint
	}

	if len(envDepositEndpoint) != 0 {
		env.DepositEndpoint = envDepositEndpoint
	}

	if len(envWithdrawEndpoint) != 0 {
		env.WithdrawEndpoint = envWithdrawEndpoint
	}

	if len(envSettlementTimeout) != 0 {
		timeout, err := strconv.Atoi(envSettlementTimeout)
		if err != nil {
			return nil, err
		}
		env.SettlementTimeoutSecs = timeout
	}

	if len(envReceiveLatency) != 0 {
		latency, err := strconv.Atoi(envReceiveLatency)
		if err != nil {
			return nil, err
		}
		env.ReceiveLatencyMillis = latency
	}

	if len(envReceiveSuccessRate) != 0 {
		rate, err := strconv.ParseFloat(envReceiveSuccessRate, 64)
		if err != nil {
			return nil, err
		}
		env.ReceiveSuccessRate = rate
	}

	if len(envDefaultAccountID) != 0 {
		env.DefaultAccountID = envDefaultAccountID
	}

	return &env, nil
}
