package lambda

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"
	"github.com/m-mizutani/goerr/v2"
)

// Handler serves API Gateway HTTP API (payload v2) events through a regular http.Handler
type Handler struct {
	next http.Handler
}

func New(next http.Handler) *Handler {
	return &Handler{next: next}
}

// Start blocks and serves Lambda invocations
func (h *Handler) Start() {
	awslambda.Start(h.Invoke)
}

// Invoke converts one event into an HTTP request and the recorded response back into an event
func (h *Handler) Invoke(ctx context.Context, event events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	req, err := newRequest(ctx, event)
	if err != nil {
		return events.APIGatewayV2HTTPResponse{}, err
	}

	rec := httptest.NewRecorder()
	h.next.ServeHTTP(rec, req)

	resp := events.APIGatewayV2HTTPResponse{
		StatusCode: rec.Code,
		Headers:    make(map[string]string, len(rec.Header())),
		Body:       rec.Body.String(),
	}
	for key, values := range rec.Header() {
		if http.CanonicalHeaderKey(key) == "Set-Cookie" {
			resp.Cookies = append(resp.Cookies, values...)
			continue
		}
		resp.Headers[key] = strings.Join(values, ",")
	}

	return resp, nil
}

func newRequest(ctx context.Context, event events.APIGatewayV2HTTPRequest) (*http.Request, error) {
	body := event.Body
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(event.Body)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to decode base64 request body")
		}
		body = string(decoded)
	}

	target := event.RawPath
	if target == "" {
		target = "/"
	}
	if event.RawQueryString != "" {
		target += "?" + event.RawQueryString
	}

	method := event.RequestContext.HTTP.Method
	if method == "" {
		method = http.MethodGet
	}

	req, err := http.NewRequestWithContext(ctx, method, target, strings.NewReader(body))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build HTTP request from event",
			goerr.V("method", method),
			goerr.V("path", target))
	}

	for key, value := range event.Headers {
		req.Header.Set(key, value)
	}
	if len(event.Cookies) > 0 {
		req.Header.Set("Cookie", strings.Join(event.Cookies, "; "))
	}
	req.RemoteAddr = event.RequestContext.HTTP.SourceIP
	if host, ok := event.Headers["host"]; ok {
		req.Host = host
	}

	return req, nil
}
