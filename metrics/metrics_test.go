package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestHttpMiddlewareUsesPathTemplate(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/services/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	router.Use(HttpMiddleware)

	before := testutil.ToFloat64(HttpRequestsTotal.WithLabelValues("/services/{id}", "GET", "418"))
	for _, id := range []string{"1", "2"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/services/"+id, nil))
		assert.Equal(t, http.StatusTeapot, rec.Code)
	}
	after := testutil.ToFloat64(HttpRequestsTotal.WithLabelValues("/services/{id}", "GET", "418"))
	assert.Equal(t, before+2, after)
}

func TestHttpMiddlewareDefaultStatus(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/ok", func(w http.ResponseWriter, r *http.Request) {})
	router.Use(HttpMiddleware)

	before := testutil.ToFloat64(HttpRequestsTotal.WithLabelValues("/ok", "GET", "200"))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))
	assert.Equal(t, before+1, testutil.ToFloat64(HttpRequestsTotal.WithLabelValues("/ok", "GET", "200")))
}
