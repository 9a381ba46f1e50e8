package services

import (
	"context"
	"sync"
	"time"

	"assettrack/src/clients/inventory"
	"assettrack/src/schemas"
	"assettrack/src/utils"
)

// dashboardUnavailableMsg surfaces only when every section fetch failed.
const dashboardUnavailableMsg = "Unable to connect to the server. Please check your connection and try again."

const recentItemCount = 5

// summaryMaxAge bounds how stale a served dashboard snapshot can be.
const summaryMaxAge = 30 * time.Second

type DashboardServiceI interface {
	GetSummary(ctx context.Context) (*schemas.DashboardSummary, error)
}

// DashboardService aggregates the three inventory collections for the landing
// view. Unlike report generation, sections degrade independently: one failed
// fetch only blanks its own numbers.
type DashboardService struct {
	Inventory inventory.InventoryServiceClientI

	cache *utils.Cache[*schemas.DashboardSummary]
}

func NewDashboardService(client inventory.InventoryServiceClientI) *DashboardService {
	return &DashboardService{
		Inventory: client,
		cache:     utils.NewCache[*schemas.DashboardSummary](),
	}
}

func (ds *DashboardService) GetSummary(ctx context.Context) (*schemas.DashboardSummary, error) {
	logger := utils.LoggerFromContext(ctx)

	if cached, ok := ds.cache.Get(time.Now().Add(-summaryMaxAge)); ok {
		return cached, nil
	}

	var (
		assets      []schemas.Asset
		assignments []schemas.Assignment
		records     []schemas.MaintenanceRecord

		assetsErr      error
		assignmentsErr error
		recordsErr     error
	)

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		assets, assetsErr = ds.Inventory.GetAllAssets(ctx)
	}()
	go func() {
		defer wg.Done()
		assignments, assignmentsErr = ds.Inventory.GetAllAssignments(ctx)
	}()
	go func() {
		defer wg.Done()
		records, recordsErr = ds.Inventory.GetAllMaintenance(ctx)
	}()
	wg.Wait()

	if assetsErr != nil && assignmentsErr != nil && recordsErr != nil {
		return nil, utils.ServiceUnavailable(dashboardUnavailableMsg)
	}

	summary := &schemas.DashboardSummary{}

	if assetsErr != nil {
		logger.WithError(assetsErr).Warn("dashboard: failed to fetch assets")
	} else {
		summary.TotalAssets = len(assets)
		for _, asset := range assets {
			if asset.Status == schemas.StatusAvailable {
				summary.AvailableAssets++
			}
		}
		summary.RecentAssets = recentAssets(assets)
	}

	if assignmentsErr != nil {
		logger.WithError(assignmentsErr).Warn("dashboard: failed to fetch assignments")
	} else {
		summary.TotalAssignments = len(assignments)
		summary.RecentAssignments = recentAssignments(assignments)
	}

	if recordsErr != nil {
		logger.WithError(recordsErr).Warn("dashboard: failed to fetch maintenance records")
	} else {
		for _, record := range records {
			if record.Status == schemas.MaintenanceInProgress {
				summary.ActiveMaintenance++
			}
		}
	}

	// Only a fully healthy snapshot is worth caching; a degraded one should
	// be retried on the next request.
	if assetsErr == nil && assignmentsErr == nil && recordsErr == nil {
		ds.cache.Set(summary, summaryMaxAge)
	}

	return summary, nil
}

// recentAssets returns the last items of the collection, newest first.
func recentAssets(assets []schemas.Asset) []schemas.Asset {
	start := len(assets) - recentItemCount
	if start < 0 {
		start = 0
	}
	recent := make([]schemas.Asset, 0, len(assets)-start)
	for i := len(assets) - 1; i >= start; i-- {
		recent = append(recent, assets[i])
	}
	return recent
}

func recentAssignments(assignments []schemas.Assignment) []schemas.Assignment {
	start := len(assignments) - recentItemCount
	if start < 0 {
		start = 0
	}
	recent := make([]schemas.Assignment, 0, len(assignments)-start)
	for i := len(assignments) - 1; i >= start; i-- {
		recent = append(recent, assignments[i])
	}
	return recent
}
