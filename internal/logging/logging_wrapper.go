package logging

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/sirupsen/logrus"
)

// Middleware logs start/complete for every operation routed through the API,
// with the request duration attached the same way handler-local timings are.
func Middleware(log *logrus.Logger) func(ctx huma.Context, next func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		operationID := ctx.Operation().OperationID

		log.Infof("Handler.%v.Start", operationID)

		logData := NewLogData(log)
		endTimer := logData.AddTiming("duration")

		next(ctx)

		endTimer()
		logData.AddData("status", ctx.Status())
		logData.Log().Infof("Handler.%v.Complete", operationID)
	}
}
