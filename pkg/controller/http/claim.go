package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/claimdesk/pkg/domain/model"
	"github.com/secmon-lab/claimdesk/pkg/domain/types"
	"github.com/secmon-lab/claimdesk/pkg/usecase"
	"github.com/secmon-lab/claimdesk/pkg/utils/errutil"
)

// ErrInvalidRequest matches every create payload validation failure
var ErrInvalidRequest = errors.New("invalid request")

type requestError struct {
	reason string
}

func (e *requestError) Error() string { return e.reason }

func (e *requestError) Is(target error) bool { return target == ErrInvalidRequest }

func invalid(format string, args ...any) error {
	return &requestError{reason: fmt.Sprintf(format, args...)}
}

// createClaimRequest mirrors the create payload. Pointers tell absent from zero values.
type createClaimRequest struct {
	ID           *string   `json:"id"`
	Status       *string   `json:"status"`
	PolicyNumber *string   `json:"policyNumber"`
	LastUpdated  *string   `json:"lastUpdated"`
	Amount       *float64  `json:"amount"`
	CustomerName *string   `json:"customerName"`
	Adjuster     *string   `json:"adjuster"`
	Notes        []*string `json:"notes"`
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	errutil.WriteJSON(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) getClaimHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	claim, err := s.claimUC.GetClaim(ctx, id)
	if err != nil {
		handleClaimError(w, r, id, err)
		return
	}

	errutil.WriteJSON(ctx, w, http.StatusOK, claim)
}

func (s *Server) summarizeClaimHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	summary, err := s.claimUC.SummarizeClaim(ctx, id)
	if err != nil {
		handleClaimError(w, r, id, err)
		return
	}

	errutil.WriteJSON(ctx, w, http.StatusCreated, summary)
}

func (s *Server) createClaimHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.maxBodyBytes))
	if err != nil {
		errutil.HandleHTTP(ctx, w, invalid("failed to read request body"), http.StatusBadRequest)
		return
	}

	input, err := parseCreateClaimRequest(body)
	if err != nil {
		errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
		return
	}

	claim, err := s.claimUC.CreateClaim(ctx, *input)
	if err != nil {
		errutil.HandleHTTP(ctx, w, err, http.StatusInternalServerError)
		return
	}

	errutil.WriteJSON(ctx, w, http.StatusCreated, claim)
}

func handleClaimError(w http.ResponseWriter, r *http.Request, id string, err error) {
	if errors.Is(err, usecase.ErrClaimNotFound) {
		errutil.HandleHTTP(r.Context(), w,
			goerr.New(fmt.Sprintf("Claim %s not found", id), goerr.V(usecase.ClaimIDKey, id)),
			http.StatusNotFound)
		return
	}
	errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
}

// parseCreateClaimRequest decodes and validates the create payload
func parseCreateClaimRequest(body []byte) (*model.CreateClaimInput, error) {
	var req createClaimRequest
	if err := json.Unmarshal(body, &req); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return nil, invalid("%s has invalid type %s", typeErr.Field, typeErr.Value)
		}
		if errors.As(err, &typeErr) {
			return nil, invalid("request body must be a JSON object")
		}
		return nil, invalid("request body is not valid JSON")
	}

	switch {
	case req.PolicyNumber == nil:
		return nil, invalid("policyNumber must be a string")
	case req.Amount == nil:
		return nil, invalid("amount must be a number")
	case req.CustomerName == nil:
		return nil, invalid("customerName must be a string")
	case req.Adjuster == nil:
		return nil, invalid("adjuster must be a string")
	}

	input := &model.CreateClaimInput{
		PolicyNumber: *req.PolicyNumber,
		Amount:       *req.Amount,
		CustomerName: *req.CustomerName,
		Adjuster:     *req.Adjuster,
	}

	if req.ID != nil {
		input.ID = *req.ID
	}
	if req.LastUpdated != nil {
		input.LastUpdated = *req.LastUpdated
	}
	if req.Status != nil {
		status, err := types.ParseClaimStatus(*req.Status)
		if err != nil {
			return nil, invalid("status must be one of %v", types.AllClaimStatuses())
		}
		input.Status = status
	}
	for i, note := range req.Notes {
		if note == nil {
			return nil, invalid("notes[%d] must be a string", i)
		}
		input.Notes = append(input.Notes, *note)
	}

	return input, nil
}
