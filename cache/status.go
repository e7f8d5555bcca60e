package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/tangle-network/operator-status/types"
)

const (
	StatusExpiration      = time.Hour
	StatusLocalExpiration = 10 * time.Second
)

func serviceStatusKey(chainID, serviceID uint64) string {
	return fmt.Sprintf("%d:status:service:%d", chainID, serviceID)
}

func exporterHeadKey(chainID uint64) string {
	return fmt.Sprintf("%d:status:exporterHead", chainID)
}

// SetServiceStatuses replaces the cached operator statuses of a service.
func SetServiceStatuses(ctx context.Context, chainID, serviceID uint64, rows []types.OperatorStatus) error {
	return TieredCache.Set(ctx, serviceStatusKey(chainID, serviceID), rows, StatusExpiration)
}

func GetServiceStatuses(ctx context.Context, chainID, serviceID uint64) ([]types.OperatorStatus, error) {
	rows := []types.OperatorStatus{}
	if err := TieredCache.GetWithLocalTimeout(ctx, serviceStatusKey(chainID, serviceID), StatusLocalExpiration, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// InvalidateServiceStatuses drops the snapshot so readers fall back to the database.
func InvalidateServiceStatuses(ctx context.Context, chainID, serviceID uint64) error {
	return TieredCache.Delete(ctx, serviceStatusKey(chainID, serviceID))
}

func SetExporterHead(ctx context.Context, chainID, block uint64) error {
	return TieredCache.SetUint64(ctx, exporterHeadKey(chainID), block, 0)
}

func GetExporterHead(ctx context.Context, chainID uint64) (uint64, error) {
	return TieredCache.GetUint64WithLocalTimeout(ctx, exporterHeadKey(chainID), StatusLocalExpiration)
}
