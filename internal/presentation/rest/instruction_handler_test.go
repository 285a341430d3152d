package rest_test

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abayommy/genai-payment-intent-clarifier/internal/application/dto"
	"github.com/Abayommy/genai-payment-intent-clarifier/internal/application/usecase"
	"github.com/Abayommy/genai-payment-intent-clarifier/internal/domain/event"
	"github.com/Abayommy/genai-payment-intent-clarifier/internal/domain/service"
	"github.com/Abayommy/genai-payment-intent-clarifier/internal/presentation/rest"
)

type fakeGateway struct {
	extraction    string
	extractionErr error
	risk          string
}

func (g *fakeGateway) Generate(_ context.Context, prompt string) (string, error) {
	if strings.Contains(prompt, `"riskLevel"`) {
		return g.risk, nil
	}
	return g.extraction, g.extractionErr
}

type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, ...event.Event) error { return nil }

func newTestServer(t *testing.T, gateway *fakeGateway) *httptest.Server {
	t.Helper()
	logger := slog.New(slog.DiscardHandler)

	uc := usecase.NewProcessInstruction(
		service.NewIntentExtractor(gateway, logger),
		service.NewRiskAnalyzer(gateway, logger),
		service.NewSchemeFormatter(),
		noopPublisher{},
		nil,
		logger,
	)

	mux := http.NewServeMux()
	rest.NewInstructionHandler(uc, logger).RegisterRoutes(mux)
	rest.NewHealthHandler(logger).RegisterRoutes(mux)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func postInstruction(t *testing.T, srv *httptest.Server, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(srv.URL+"/v1/instructions", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestInstructionHandler_Process(t *testing.T) {
	t.Run("returns the pipeline result", func(t *testing.T) {
		srv := newTestServer(t, &fakeGateway{
			extraction: `{"recipientName":"John","iban":"DE89370400440532013000","amount":50,` +
				`"currency":"EUR","reference":"dinner","confidence":0.9,"suggestedPaymentType":"SEPA"}`,
			risk: `{"riskLevel":"low","score":10,"flags":[]}`,
		})

		resp := postInstruction(t, srv, `{"userInput":"Pay John €50 for dinner"}`)

		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

		var body struct {
			Success bool                 `json:"success"`
			Data    dto.PipelineResponse `json:"data"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.True(t, body.Success)
		assert.Equal(t, "John", body.Data.Intent.RecipientName)
		assert.Equal(t, "low", body.Data.FraudAssessment.RiskLevel)
		require.NotNil(t, body.Data.FormattedPayment.SEPA)
		assert.Equal(t, "SEPA", body.Data.FormattedPayment.Scheme)
	})

	t.Run("rejects an invalid body", func(t *testing.T) {
		srv := newTestServer(t, &fakeGateway{})

		resp := postInstruction(t, srv, `{not json`)

		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var body map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "invalid request body", body["error"])
	})

	t.Run("rejects empty input", func(t *testing.T) {
		srv := newTestServer(t, &fakeGateway{})

		resp := postInstruction(t, srv, `{"userInput":"  "}`)

		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var body map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "userInput is required", body["error"])
	})

	t.Run("maps pipeline failures to 500", func(t *testing.T) {
		srv := newTestServer(t, &fakeGateway{
			extractionErr: fmt.Errorf("connection refused"),
		})

		resp := postInstruction(t, srv, `{"userInput":"Pay John €50"}`)

		require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		var body map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "failed to process payment instruction", body["error"])
	})
}

func TestHealthEndpoints(t *testing.T) {
	srv := newTestServer(t, &fakeGateway{})

	t.Run("healthz", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/healthz")
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)
		var body rest.HealthResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "healthy", body.Status)
		assert.Equal(t, "intent-clarifier", body.Service)
	})

	t.Run("readyz", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/readyz")
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)
		var body rest.ReadinessResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "ready", body.Status)
		assert.Contains(t, body.Checks, "inference")
	})
}
