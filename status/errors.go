package status

import (
	"errors"

	"github.com/tangle-network/operator-status/heartbeat"
)

var (
	ErrInvalidSignature        = heartbeat.ErrInvalidSignature
	ErrNotRegistered           = errors.New("operator not registered")
	ErrAlreadyRegistered       = errors.New("operator already registered")
	ErrOperatorSlashed         = errors.New("operator slashed")
	ErrOperatorExiting         = errors.New("operator exiting")
	ErrNotExiting              = errors.New("operator is not exiting")
	ErrNotServiceOwner         = errors.New("caller is not the service owner")
	ErrNotTangleCore           = errors.New("caller is not tangle core")
	ErrNotSlashingOracle       = errors.New("caller is not the slashing oracle")
	ErrRateLimited             = errors.New("slashing alert cooldown active")
	ErrInvalidConfig           = errors.New("interval and max missed must be positive")
	ErrInvalidMetrics          = errors.New("metrics payload is not a metric pair array")
	ErrInvalidMetricDefinition = errors.New("invalid metric definition")
	ErrDuplicateMetric         = errors.New("metric already defined")
)
