package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	server "github.com/secmon-lab/claimdesk/pkg/controller/http"
	"github.com/secmon-lab/claimdesk/pkg/domain/interfaces"
	"github.com/secmon-lab/claimdesk/pkg/domain/model"
	"github.com/secmon-lab/claimdesk/pkg/domain/types"
	"github.com/secmon-lab/claimdesk/pkg/repository/memory"
	"github.com/secmon-lab/claimdesk/pkg/service/summary"
	"github.com/secmon-lab/claimdesk/pkg/usecase"
)

// spyRepo counts writes that reach the store
type spyRepo struct {
	interfaces.Repository
	creates int
}

func (r *spyRepo) Claim() interfaces.ClaimRepository {
	return &spyClaims{ClaimRepository: r.Repository.Claim(), repo: r}
}

type spyClaims struct {
	interfaces.ClaimRepository
	repo *spyRepo
}

func (c *spyClaims) Create(ctx context.Context, claim *model.Claim) (*model.Claim, error) {
	c.repo.creates++
	return c.ClaimRepository.Create(ctx, claim)
}

func newTestServer(t *testing.T) (*server.Server, *spyRepo) {
	t.Helper()
	repo := &spyRepo{Repository: memory.New()}
	uc := usecase.NewClaimUseCase(repo, summary.NewMock())
	return server.New(uc), repo
}

func doRequest(srv http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	gt.NoError(t, json.Unmarshal(w.Body.Bytes(), &body)).Required()
	return body
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t)

	w := doRequest(srv, http.MethodGet, "/claims/health", "")
	gt.V(t, w.Code).Equal(http.StatusOK)
	gt.V(t, w.Header().Get("Content-Type")).Equal("application/json")
	gt.V(t, decodeBody(t, w)["status"]).Equal("ok")
}

func TestCreateAndGetClaim(t *testing.T) {
	srv, repo := newTestServer(t)

	w := doRequest(srv, http.MethodPost, "/claims", `{
		"policyNumber": "POL-123",
		"amount": 2500.75,
		"customerName": "Taylor Brooks",
		"adjuster": "Jamie Fox",
		"notes": ["Water damage in kitchen."]
	}`)
	gt.V(t, w.Code).Equal(http.StatusCreated)
	gt.V(t, repo.creates).Equal(1)

	var created model.Claim
	gt.NoError(t, json.Unmarshal(w.Body.Bytes(), &created)).Required()
	gt.Bool(t, strings.HasPrefix(created.ID, model.ClaimIDPrefix)).True()
	gt.V(t, created.Status).Equal(types.ClaimStatusOpen)
	gt.V(t, created.Amount).Equal(2500.75)

	w = doRequest(srv, http.MethodGet, "/claims/"+created.ID, "")
	gt.V(t, w.Code).Equal(http.StatusOK)

	var fetched model.Claim
	gt.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched)).Required()
	gt.V(t, fetched).Equal(created)

	w = doRequest(srv, http.MethodPost, "/claims/"+created.ID+"/summarize", "")
	gt.V(t, w.Code).Equal(http.StatusCreated)
	body := decodeBody(t, w)
	gt.V(t, body["claimId"]).Equal(created.ID)
	gt.S(t, body["overallSummary"].(string)).Contains("Water damage in kitchen.")
}

func TestGetClaim_NotFound(t *testing.T) {
	srv, _ := newTestServer(t)

	w := doRequest(srv, http.MethodGet, "/claims/CLM-unknown", "")
	gt.V(t, w.Code).Equal(http.StatusNotFound)
	gt.V(t, decodeBody(t, w)["error"]).Equal("Claim CLM-unknown not found")

	w = doRequest(srv, http.MethodPost, "/claims/CLM-unknown/summarize", "")
	gt.V(t, w.Code).Equal(http.StatusNotFound)
}

func TestCreateClaim_Validation(t *testing.T) {
	testCases := []struct {
		name string
		body string
	}{
		{"missing policyNumber", `{"amount": 1, "customerName": "a", "adjuster": "b"}`},
		{"non-numeric amount", `{"policyNumber": "P", "amount": "abc", "customerName": "a", "adjuster": "b"}`},
		{"missing customerName", `{"policyNumber": "P", "amount": 1, "adjuster": "b"}`},
		{"unknown status", `{"policyNumber": "P", "amount": 1, "customerName": "a", "adjuster": "b", "status": "LOST"}`},
		{"non-string note", `{"policyNumber": "P", "amount": 1, "customerName": "a", "adjuster": "b", "notes": [1]}`},
		{"null note", `{"policyNumber": "P", "amount": 1, "customerName": "a", "adjuster": "b", "notes": [null]}`},
		{"array body", `[]`},
		{"broken JSON", `{"policyNumber":`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			srv, repo := newTestServer(t)

			w := doRequest(srv, http.MethodPost, "/claims", tc.body)
			gt.V(t, w.Code).Equal(http.StatusBadRequest)
			gt.V(t, repo.creates).Equal(0)

			msg, ok := decodeBody(t, w)["error"].(string)
			gt.Bool(t, ok).True()
			gt.V(t, msg).NotEqual("")
		})
	}
}

func TestCreateClaim_SuppliedIDAndStatus(t *testing.T) {
	srv, _ := newTestServer(t)

	w := doRequest(srv, http.MethodPost, "/claims", `{
		"id": "CLM-fixed",
		"status": "PENDING_INFO",
		"policyNumber": "POL-9",
		"amount": 0,
		"customerName": "Robin",
		"adjuster": "Avery"
	}`)
	gt.V(t, w.Code).Equal(http.StatusCreated)

	body := decodeBody(t, w)
	gt.V(t, body["id"]).Equal("CLM-fixed")
	gt.V(t, body["status"]).Equal("PENDING_INFO")
}

// failingUseCase returns an internal error from every operation
type failingUseCase struct{}

func (failingUseCase) GetClaim(ctx context.Context, id string) (*model.Claim, error) {
	return nil, errors.New("table unavailable")
}

func (failingUseCase) SummarizeClaim(ctx context.Context, id string) (*model.ClaimSummary, error) {
	return nil, errors.New("model unavailable")
}

func (failingUseCase) CreateClaim(ctx context.Context, input model.CreateClaimInput) (*model.Claim, error) {
	return nil, errors.New("table unavailable")
}

func TestInternalErrorsAreHidden(t *testing.T) {
	srv := server.New(failingUseCase{})

	w := doRequest(srv, http.MethodGet, "/claims/CLM-1", "")
	gt.V(t, w.Code).Equal(http.StatusInternalServerError)
	gt.V(t, decodeBody(t, w)["error"]).Equal(http.StatusText(http.StatusInternalServerError))

	w = doRequest(srv, http.MethodPost, "/claims", `{"policyNumber": "P", "amount": 1, "customerName": "a", "adjuster": "b"}`)
	gt.V(t, w.Code).Equal(http.StatusInternalServerError)
}

func TestCreateClaim_BodyLimit(t *testing.T) {
	repo := &spyRepo{Repository: memory.New()}
	srv := server.New(usecase.NewClaimUseCase(repo, summary.NewMock()), server.WithMaxBodyBytes(16))

	w := doRequest(srv, http.MethodPost, "/claims", `{"policyNumber": "P", "amount": 1, "customerName": "a", "adjuster": "b"}`)
	gt.V(t, w.Code).Equal(http.StatusBadRequest)
	gt.V(t, repo.creates).Equal(0)
}
