package main

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/walletbridge/debin-server/api"
	"github.com/walletbridge/debin-server/internal/config"
	"github.com/walletbridge/debin-server/internal/gateway"
	"github.com/walletbridge/debin-server/internal/ledger"
	"github.com/walletbridge/debin-server/internal/logging"
	"github.com/walletbridge/debin-server/internal/service"
	"github.com/walletbridge/debin-server/internal/txid"
)

func main() {
	// A missing .env is fine, the environment itself still applies.
	_ = godotenv.Load()

	logger := logging.SetupLogging()
	logrus.Info("debin-server starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	store := ledger.New()
	ledger.Seed(store)

	chance := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))

	svc := service.NewTransferService(
		store,
		gateway.NewClient(envConfig, logger),
		txid.NewGenerator(),
		chance,
		logger,
		envConfig,
	)

	wg := sync.WaitGroup{}
	wg.Add(1)

	go func() {
		httpRest := api.Rest{
			Logger:  logger,
			Port:    envConfig.Port,
			Service: svc,
			Ledger:  store,
		}
		httpRest.Serve()
	}()

	wg.Wait()
}
