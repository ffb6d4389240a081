package status

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
)

func TestHealth(t *testing.T) {
	_, api := humatest.New(t)
	handler := NewHandler()
	handler.Register(api)

	resp := api.Get("/v1/health")

	assert.Equal(t, http.StatusOK, resp.Code)

	var body HealthBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "UP", body.Status)
	assert.Equal(t, "Debin API", body.Service)

	_, err := time.Parse(time.RFC3339, body.Timestamp)
	assert.NoError(t, err)
}
