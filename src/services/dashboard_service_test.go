package services_test

import (
	"context"
	"errors"
	"testing"

	"assettrack/src/schemas"
	"assettrack/src/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardSummary(t *testing.T) {
	t.Run("aggregates all three collections", func(t *testing.T) {
		inventory := &fakeInventory{
			assets: []schemas.Asset{
				{ID: 1, Name: "Laptop 1", Status: schemas.StatusAvailable},
				{ID: 2, Name: "Laptop 2", Status: schemas.StatusAssigned},
				{ID: 3, Name: "Laptop 3", Status: schemas.StatusAvailable},
				{ID: 4, Name: "Laptop 4", Status: schemas.StatusAvailable},
				{ID: 5, Name: "Laptop 5", Status: schemas.StatusRetired},
				{ID: 6, Name: "Laptop 6", Status: schemas.StatusAvailable},
			},
			assignments: []schemas.Assignment{
				{ID: 1, AssetID: 2, AssignedTo: "Jane Smith"},
			},
			maintenance: []schemas.MaintenanceRecord{
				{ID: 1, AssetID: 3, Status: schemas.MaintenanceInProgress},
				{ID: 2, AssetID: 4, Status: schemas.MaintenanceCompleted},
			},
		}
		service := services.NewDashboardService(inventory)

		summary, err := service.GetSummary(context.Background())
		require.NoError(t, err)

		assert.Equal(t, 6, summary.TotalAssets)
		assert.Equal(t, 4, summary.AvailableAssets)
		assert.Equal(t, 1, summary.TotalAssignments)
		assert.Equal(t, 1, summary.ActiveMaintenance)

		// Recent lists cap at five items, newest first.
		require.Len(t, summary.RecentAssets, 5)
		assert.Equal(t, "Laptop 6", summary.RecentAssets[0].Name)
		assert.Equal(t, "Laptop 2", summary.RecentAssets[4].Name)
	})

	t.Run("a healthy snapshot is served from cache", func(t *testing.T) {
		inventory := &fakeInventory{
			assets: []schemas.Asset{
				{ID: 1, Name: "Laptop", Status: schemas.StatusAvailable},
			},
		}
		service := services.NewDashboardService(inventory)

		first, err := service.GetSummary(context.Background())
		require.NoError(t, err)
		require.Equal(t, 1, first.TotalAssets)

		// New data does not show up until the snapshot ages out.
		inventory.assets = append(inventory.assets, schemas.Asset{ID: 2, Name: "Projector"})
		second, err := service.GetSummary(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, second.TotalAssets)
	})

	t.Run("a single failed section degrades instead of failing", func(t *testing.T) {
		inventory := &fakeInventory{
			assets: []schemas.Asset{
				{ID: 1, Name: "Laptop", Status: schemas.StatusAvailable},
			},
			assignmentsErr: errors.New("No response received from server. Please check your connection."),
		}
		service := services.NewDashboardService(inventory)

		summary, err := service.GetSummary(context.Background())
		require.NoError(t, err)

		assert.Equal(t, 1, summary.TotalAssets)
		assert.Equal(t, 0, summary.TotalAssignments)
		assert.Empty(t, summary.RecentAssignments)
	})

	t.Run("fails only when every section fails", func(t *testing.T) {
		down := errors.New("No response received from server. Please check your connection.")
		inventory := &fakeInventory{
			assetsErr:      down,
			assignmentsErr: down,
			maintenanceErr: down,
		}
		service := services.NewDashboardService(inventory)

		summary, err := service.GetSummary(context.Background())
		assert.Nil(t, summary)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Unable to connect to the server")
	})
}
