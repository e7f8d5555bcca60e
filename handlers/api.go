package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/tangle-network/operator-status/cache"
	"github.com/tangle-network/operator-status/contracts/statusregistry"
	"github.com/tangle-network/operator-status/db"
	"github.com/tangle-network/operator-status/types"
	"github.com/tangle-network/operator-status/utils"
)

var logger = logrus.StandardLogger().WithField("module", "handlers")

const defaultLimit = 100

// ApiHealthz reports whether the status database is reachable.
func ApiHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	if err := db.ReaderDb.PingContext(r.Context()); err != nil {
		http.Error(w, "Internal server error: could not reach the db", http.StatusServiceUnavailable)
		return
	}
	if cache.TieredCache == nil {
		fmt.Fprint(w, "OK")
		return
	}
	head, err := cache.GetExporterHead(r.Context(), utils.Config.Chain.ID)
	if err != nil {
		fmt.Fprint(w, "OK")
		return
	}
	fmt.Fprintf(w, "OK. Indexed up to block %v", head)
}

// ApiServiceOperators returns the status of every operator of a service.
func ApiServiceOperators(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	j := json.NewEncoder(w)

	serviceID, err := parseServiceID(r)
	if err != nil {
		sendErrorResponse(w, j, r.URL.String(), http.StatusBadRequest, err.Error())
		return
	}

	rows, err := operatorStatuses(r, serviceID)
	if err != nil {
		logger.WithError(err).WithField("service", serviceID).Error("error retrieving operator statuses")
		sendErrorResponse(w, j, r.URL.String(), http.StatusInternalServerError, "could not retrieve db results")
		return
	}
	cfg, err := heartbeatConfig(r, serviceID)
	if err != nil {
		sendErrorResponse(w, j, r.URL.String(), http.StatusInternalServerError, "could not retrieve db results")
		return
	}

	data := make([]*types.ApiOperatorResponse, 0, len(rows))
	for _, row := range rows {
		data = append(data, operatorResponse(row, cfg, time.Now()))
	}
	sendOKResponse(j, r.URL.String(), []interface{}{data})
}

// ApiServiceOperator returns the status of one operator of a service.
func ApiServiceOperator(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	j := json.NewEncoder(w)

	serviceID, err := parseServiceID(r)
	if err != nil {
		sendErrorResponse(w, j, r.URL.String(), http.StatusBadRequest, err.Error())
		return
	}
	operator, err := parseOperator(mux.Vars(r)["operator"])
	if err != nil {
		sendErrorResponse(w, j, r.URL.String(), http.StatusBadRequest, err.Error())
		return
	}

	row, err := db.GetOperatorStatus(r.Context(), serviceID, operator)
	if errors.Is(err, db.ErrNotFound) {
		sendErrorResponse(w, j, r.URL.String(), http.StatusNotFound, "operator not found")
		return
	}
	if err != nil {
		logger.WithError(err).Error("error retrieving operator status")
		sendErrorResponse(w, j, r.URL.String(), http.StatusInternalServerError, "could not retrieve db results")
		return
	}
	cfg, err := heartbeatConfig(r, serviceID)
	if err != nil {
		sendErrorResponse(w, j, r.URL.String(), http.StatusInternalServerError, "could not retrieve db results")
		return
	}
	sendOKResponse(j, r.URL.String(), []interface{}{operatorResponse(*row, cfg, time.Now())})
}

// ApiServiceOperatorMetrics returns the latest reported value of every metric
// of an operator.
func ApiServiceOperatorMetrics(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	j := json.NewEncoder(w)

	serviceID, err := parseServiceID(r)
	if err != nil {
		sendErrorResponse(w, j, r.URL.String(), http.StatusBadRequest, err.Error())
		return
	}
	operator, err := parseOperator(mux.Vars(r)["operator"])
	if err != nil {
		sendErrorResponse(w, j, r.URL.String(), http.StatusBadRequest, err.Error())
		return
	}
	snapshots, err := db.GetLatestMetrics(r.Context(), serviceID, operator)
	if err != nil {
		logger.WithError(err).Error("error retrieving metrics")
		sendErrorResponse(w, j, r.URL.String(), http.StatusInternalServerError, "could not retrieve db results")
		return
	}
	sendOKResponse(j, r.URL.String(), []interface{}{snapshots})
}

// ApiServiceHeartbeats returns the most recent heartbeats of a service,
// optionally filtered by ?operator=.
func ApiServiceHeartbeats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	j := json.NewEncoder(w)

	serviceID, err := parseServiceID(r)
	if err != nil {
		sendErrorResponse(w, j, r.URL.String(), http.StatusBadRequest, err.Error())
		return
	}
	limit, err := parseLimit(r)
	if err != nil {
		sendErrorResponse(w, j, r.URL.String(), http.StatusBadRequest, err.Error())
		return
	}
	var operator *common.Address
	if q := r.URL.Query().Get("operator"); q != "" {
		addr, err := parseOperator(q)
		if err != nil {
			sendErrorResponse(w, j, r.URL.String(), http.StatusBadRequest, err.Error())
			return
		}
		operator = &addr
	}

	heartbeats, err := db.GetHeartbeats(r.Context(), serviceID, operator, limit)
	if err != nil {
		logger.WithError(err).Error("error retrieving heartbeats")
		sendErrorResponse(w, j, r.URL.String(), http.StatusInternalServerError, "could not retrieve db results")
		return
	}
	sendOKResponse(j, r.URL.String(), []interface{}{heartbeats})
}

// ApiServiceEvents returns the most recent lifecycle events of a service.
func ApiServiceEvents(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	j := json.NewEncoder(w)

	serviceID, err := parseServiceID(r)
	if err != nil {
		sendErrorResponse(w, j, r.URL.String(), http.StatusBadRequest, err.Error())
		return
	}
	limit, err := parseLimit(r)
	if err != nil {
		sendErrorResponse(w, j, r.URL.String(), http.StatusBadRequest, err.Error())
		return
	}
	events, err := db.GetLifecycleEvents(r.Context(), serviceID, limit)
	if err != nil {
		logger.WithError(err).Error("error retrieving lifecycle events")
		sendErrorResponse(w, j, r.URL.String(), http.StatusInternalServerError, "could not retrieve db results")
		return
	}
	sendOKResponse(j, r.URL.String(), []interface{}{events})
}

// ApiServiceConfig returns the heartbeat config of a service. Services that
// never configured heartbeats report the registry defaults.
func ApiServiceConfig(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	j := json.NewEncoder(w)

	serviceID, err := parseServiceID(r)
	if err != nil {
		sendErrorResponse(w, j, r.URL.String(), http.StatusBadRequest, err.Error())
		return
	}
	cfg, err := heartbeatConfig(r, serviceID)
	if err != nil {
		sendErrorResponse(w, j, r.URL.String(), http.StatusInternalServerError, "could not retrieve db results")
		return
	}
	sendOKResponse(j, r.URL.String(), []interface{}{cfg})
}

// ApiOperatorPoints returns the points an operator earned per program.
func ApiOperatorPoints(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	j := json.NewEncoder(w)

	operator, err := parseOperator(mux.Vars(r)["operator"])
	if err != nil {
		sendErrorResponse(w, j, r.URL.String(), http.StatusBadRequest, err.Error())
		return
	}
	points, err := db.GetOperatorPoints(r.Context(), operator)
	if err != nil {
		logger.WithError(err).Error("error retrieving operator points")
		sendErrorResponse(w, j, r.URL.String(), http.StatusInternalServerError, "could not retrieve db results")
		return
	}
	sendOKResponse(j, r.URL.String(), []interface{}{points})
}

// operatorStatuses prefers the snapshot the indexer caches after every batch.
func operatorStatuses(r *http.Request, serviceID uint64) ([]types.OperatorStatus, error) {
	if cache.TieredCache != nil {
		rows, err := cache.GetServiceStatuses(r.Context(), utils.Config.Chain.ID, serviceID)
		if err == nil {
			return rows, nil
		}
	}
	return db.GetOperatorStatuses(r.Context(), serviceID)
}

func heartbeatConfig(r *http.Request, serviceID uint64) (*types.HeartbeatConfig, error) {
	cfg, err := db.GetHeartbeatConfig(r.Context(), serviceID)
	if errors.Is(err, db.ErrNotFound) {
		return &types.HeartbeatConfig{
			ServiceID: serviceID,
			Interval:  statusregistry.DefaultHeartbeatInterval,
			MaxMissed: statusregistry.DefaultMaxMissedHeartbeats,
		}, nil
	}
	if err != nil {
		logger.WithError(err).WithField("service", serviceID).Error("error retrieving heartbeat config")
		return nil, err
	}
	return cfg, nil
}

func operatorResponse(row types.OperatorStatus, cfg *types.HeartbeatConfig, now time.Time) *types.ApiOperatorResponse {
	res := &types.ApiOperatorResponse{
		OperatorStatus: row,
		Online:         row.Online(),
		StatusName:     row.Status.String(),
	}
	if !row.LastHeartbeat.IsZero() && cfg.Interval > 0 {
		elapsed := now.Sub(row.LastHeartbeat)
		res.HeartbeatCurrent = elapsed < 0 || uint64(elapsed/time.Second)/cfg.Interval < uint64(cfg.MaxMissed)
	}
	return res
}

func parseServiceID(r *http.Request) (uint64, error) {
	serviceID, err := strconv.ParseUint(mux.Vars(r)["serviceId"], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid service id provided")
	}
	return serviceID, nil
}

func parseOperator(s string) (common.Address, error) {
	addr, err := utils.ParseAddress(s)
	if err != nil {
		return common.Address{}, fmt.Errorf("invalid operator address provided")
	}
	return addr, nil
}

func parseLimit(r *http.Request) (int, error) {
	q := r.URL.Query().Get("limit")
	if q == "" {
		return defaultLimit, nil
	}
	limit, err := strconv.Atoi(q)
	if err != nil || limit < 1 {
		return 0, fmt.Errorf("invalid limit provided")
	}
	return limit, nil
}

func sendErrorResponse(w http.ResponseWriter, j *json.Encoder, route string, code int, message string) {
	w.WriteHeader(code)
	response := &types.ApiResponse{}
	response.Status = "ERROR: " + message
	err := j.Encode(response)

	if err != nil {
		logger.Errorf("error serializing json error for API %v route: %v", route, err)
	}
}

func sendOKResponse(j *json.Encoder, route string, data []interface{}) {
	response := &types.ApiResponse{}
	response.Status = "OK"

	if len(data) == 1 {
		response.Data = data[0]
	} else {
		response.Data = data
	}
	err := j.Encode(response)

	if err != nil {
		logger.Errorf("error serializing json data for API %v route: %v", route, err)
	}
}
