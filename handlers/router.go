package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/urfave/negroni"

	"github.com/tangle-network/operator-status/metrics"
)

// NewRouter wires every api route. The returned handler recovers from panics
// and records request metrics per route template.
func NewRouter() http.Handler {
	router := mux.NewRouter()

	apiV1Router := router.PathPrefix("/api/v1").Subrouter()
	apiV1Router.HandleFunc("/services/{serviceId}/operators", ApiServiceOperators).Methods("GET", "OPTIONS")
	apiV1Router.HandleFunc("/services/{serviceId}/operators/{operator}", ApiServiceOperator).Methods("GET", "OPTIONS")
	apiV1Router.HandleFunc("/services/{serviceId}/operators/{operator}/metrics", ApiServiceOperatorMetrics).Methods("GET", "OPTIONS")
	apiV1Router.HandleFunc("/services/{serviceId}/heartbeats", ApiServiceHeartbeats).Methods("GET", "OPTIONS")
	apiV1Router.HandleFunc("/services/{serviceId}/events", ApiServiceEvents).Methods("GET", "OPTIONS")
	apiV1Router.HandleFunc("/services/{serviceId}/config", ApiServiceConfig).Methods("GET", "OPTIONS")
	apiV1Router.HandleFunc("/operators/{operator}/points", ApiOperatorPoints).Methods("GET", "OPTIONS")
	apiV1Router.HandleFunc("/abi/selectors", ApiAbiSelectors).Methods("GET", "OPTIONS")
	apiV1Router.HandleFunc("/abi/decode/call", ApiAbiDecodeCall).Methods("POST", "OPTIONS")
	apiV1Router.HandleFunc("/abi/decode/log", ApiAbiDecodeLog).Methods("POST", "OPTIONS")
	apiV1Router.Use(cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler)

	router.HandleFunc("/healthz", ApiHealthz).Methods("GET", "HEAD")
	router.Use(metrics.HttpMiddleware)

	n := negroni.New(negroni.NewRecovery())
	n.UseHandler(router)
	return n
}
