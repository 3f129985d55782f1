package errutil_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/claimdesk/pkg/utils/errutil"
)

func TestHandleHTTP(t *testing.T) {
	t.Run("client error keeps message", func(t *testing.T) {
		w := httptest.NewRecorder()
		errutil.HandleHTTP(context.Background(), w, errors.New("policyNumber must be a string"), http.StatusBadRequest)

		gt.V(t, w.Code).Equal(http.StatusBadRequest)
		gt.S(t, w.Header().Get("Content-Type")).Equal("application/json")

		var body map[string]string
		gt.NoError(t, json.Unmarshal(w.Body.Bytes(), &body)).Required()
		gt.V(t, body["error"]).Equal("policyNumber must be a string")
	})

	t.Run("server error hides details", func(t *testing.T) {
		w := httptest.NewRecorder()
		err := goerr.New("table is gone", goerr.V("table", "claims-table"))
		errutil.HandleHTTP(context.Background(), w, err, http.StatusInternalServerError)

		gt.V(t, w.Code).Equal(http.StatusInternalServerError)

		var body map[string]string
		gt.NoError(t, json.Unmarshal(w.Body.Bytes(), &body)).Required()
		gt.V(t, body["error"]).Equal("Internal Server Error")
	})

	t.Run("nil error writes nothing", func(t *testing.T) {
		w := httptest.NewRecorder()
		errutil.HandleHTTP(context.Background(), w, nil, http.StatusInternalServerError)
		gt.V(t, w.Body.Len()).Equal(0)
	})
}

func TestWriteJSON(t *testing.T) {
	w := httptest.NewRecorder()
	errutil.WriteJSON(context.Background(), w, http.StatusCreated, map[string]string{"status": "ok"})

	gt.V(t, w.Code).Equal(http.StatusCreated)
	gt.S(t, w.Body.String()).Equal(`{"status":"ok"}`)
}
