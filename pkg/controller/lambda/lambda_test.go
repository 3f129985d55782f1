package lambda_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/m-mizutani/gt"
	server "github.com/secmon-lab/claimdesk/pkg/controller/http"
	"github.com/secmon-lab/claimdesk/pkg/controller/lambda"
	"github.com/secmon-lab/claimdesk/pkg/repository/memory"
	"github.com/secmon-lab/claimdesk/pkg/service/summary"
	"github.com/secmon-lab/claimdesk/pkg/usecase"
)

func newEvent(method, path, body string) events.APIGatewayV2HTTPRequest {
	event := events.APIGatewayV2HTTPRequest{
		RawPath: path,
		Headers: map[string]string{"content-type": "application/json"},
		Body:    body,
	}
	event.RequestContext.HTTP.Method = method
	return event
}

func TestHandler_Invoke(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewClaimUseCase(memory.New(), summary.NewMock())
	h := lambda.New(server.New(uc))

	t.Run("health", func(t *testing.T) {
		resp, err := h.Invoke(ctx, newEvent(http.MethodGet, "/claims/health", ""))
		gt.NoError(t, err).Required()
		gt.V(t, resp.StatusCode).Equal(http.StatusOK)
		gt.V(t, resp.Headers["Content-Type"]).Equal("application/json")
		gt.S(t, resp.Body).Contains(`"ok"`)
	})

	t.Run("create with base64 body then get", func(t *testing.T) {
		payload := `{"id":"CLM-lambda","policyNumber":"POL-1","amount":10,"customerName":"Kai","adjuster":"Lee"}`
		event := newEvent(http.MethodPost, "/claims", base64.StdEncoding.EncodeToString([]byte(payload)))
		event.IsBase64Encoded = true

		resp, err := h.Invoke(ctx, event)
		gt.NoError(t, err).Required()
		gt.V(t, resp.StatusCode).Equal(http.StatusCreated)

		resp, err = h.Invoke(ctx, newEvent(http.MethodGet, "/claims/CLM-lambda", ""))
		gt.NoError(t, err).Required()
		gt.V(t, resp.StatusCode).Equal(http.StatusOK)

		var body map[string]any
		gt.NoError(t, json.Unmarshal([]byte(resp.Body), &body)).Required()
		gt.V(t, body["customerName"]).Equal("Kai")
	})

	t.Run("not found", func(t *testing.T) {
		resp, err := h.Invoke(ctx, newEvent(http.MethodGet, "/claims/CLM-none", ""))
		gt.NoError(t, err).Required()
		gt.V(t, resp.StatusCode).Equal(http.StatusNotFound)
	})

	t.Run("broken base64 body", func(t *testing.T) {
		event := newEvent(http.MethodPost, "/claims", "%%%")
		event.IsBase64Encoded = true

		_, err := h.Invoke(ctx, event)
		gt.Error(t, err)
	})
}
