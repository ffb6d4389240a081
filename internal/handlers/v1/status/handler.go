package status

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
)

const serviceName = "Debin API"

// HealthBody is the health endpoint response.
type HealthBody struct {
	Status    string `json:"status" doc:"UP when the service is serving"`
	Service   string `json:"service"`
	Timestamp string `json:"timestamp" doc:"RFC3339 server time"`
}

// HealthOutput is the Huma output for the health endpoint.
type HealthOutput struct {
	Body HealthBody
}

// Handler handles GET /v1/health.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Register registers the health endpoint with the Huma API.
func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/v1/health",
		Summary:     "Health check",
		Tags:        []string{"Status"},
	}, h.handle)
}

func (h *Handler) handle(ctx context.Context, input *struct{}) (*HealthOutput, error) {
	return &HealthOutput{
		Body: HealthBody{
			Status:    "UP",
			Service:   serviceName,
			Timestamp: time.Now().Format(time.RFC3339),
		},
	}, nil
}
