package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/walletbridge/debin-server/internal/handlers/v1/account"
	"github.com/walletbridge/debin-server/internal/handlers/v1/status"
	"github.com/walletbridge/debin-server/internal/handlers/v1/transfer"
	"github.com/walletbridge/debin-server/internal/ledger"
	"github.com/walletbridge/debin-server/internal/logging"
	"github.com/walletbridge/debin-server/internal/service"
)

type Rest struct {
	Logger  *logrus.Logger
	Port    string
	Service *service.TransferService
	Ledger  *ledger.Ledger
}

func (r *Rest) Serve() {
	mux := http.NewServeMux()
	api := humago.New(mux, huma.DefaultConfig("Debin API", "1.0.0"))
	api.UseMiddleware(logging.Middleware(r.Logger))

	status.NewHandler().Register(api)
	transfer.NewCheckFundsHandler(r.Service).Register(api)
	transfer.NewDepositHandler(r.Service).Register(api)
	transfer.NewWithdrawHandler(r.Service).Register(api)
	transfer.NewReceiveHandler(r.Service).Register(api)
	transfer.NewRequestHandler(r.Service).Register(api)
	account.NewGetAccountHandler(r.Ledger).Register(api)

	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           mux,
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}
