package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"assettrack/src/schemas"
	"assettrack/src/services"
	"assettrack/src/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAssetInventory(t *testing.T) {
	inventory := &fakeInventory{
		assets: []schemas.Asset{
			{ID: 1, Name: "Dell Laptop", Tag: "IT-0001", Category: schemas.CategoryITEquipment, Status: schemas.StatusAvailable, Value: "1200.50"},
			{ID: 2, Name: "Projector", Tag: "AV-0001", Category: schemas.CategoryAudioVisual, Status: schemas.StatusAssigned, AssignedTo: "Jane Smith", Value: "800"},
			{ID: 3, Name: "Desk", Tag: "FU-0001", Category: schemas.CategoryFurniture, Status: schemas.StatusMaintenance, Value: "300"},
		},
	}
	service := services.NewReportService(inventory)

	report, err := service.Generate(context.Background(), schemas.ReportAssetInventory)
	require.NoError(t, err)

	assert.Equal(t, "Asset Inventory Report", report.Title)
	assert.Len(t, report.Rows, 3)
	assert.Equal(t, 3, report.Summary["Total Assets"])
	assert.Equal(t, 1, report.Summary["Available"])
	assert.Equal(t, 1, report.Summary["Assigned"])
	assert.Equal(t, 1, report.Summary["Maintenance"])
	assert.Equal(t, "Dell Laptop", report.Rows[0]["name"])
	assert.Equal(t, "IT Equipment", report.Rows[0]["category"])
}

func TestGenerateMaintenanceSchedule(t *testing.T) {
	t.Run("joins asset names and falls back on a miss", func(t *testing.T) {
		inventory := &fakeInventory{
			assets: []schemas.Asset{
				{ID: 1, Name: "Dell Laptop", Tag: "IT-0001"},
			},
			maintenance: []schemas.MaintenanceRecord{
				{ID: 10, AssetID: 1, Type: schemas.MaintenanceRepair, Status: schemas.MaintenanceScheduled, Cost: "150"},
				{ID: 11, AssetID: 99, Type: schemas.MaintenanceCleaning, Status: schemas.MaintenanceCompleted},
			},
		}
		service := services.NewReportService(inventory)

		report, err := service.Generate(context.Background(), schemas.ReportMaintenanceSchedule)
		require.NoError(t, err)

		assert.Equal(t, "Maintenance Schedule", report.Title)
		assert.Equal(t, "Dell Laptop", report.Rows[0]["assetName"])
		assert.Equal(t, services.UnknownAssetName, report.Rows[1]["assetName"])
		assert.Equal(t, 2, report.Summary["Total Records"])
		assert.Equal(t, 1, report.Summary["Scheduled"])
		assert.Equal(t, 1, report.Summary["Completed"])
		assert.Equal(t, 0, report.Summary["In Progress"])
	})

	t.Run("fails atomically when either fetch fails", func(t *testing.T) {
		inventory := &fakeInventory{
			maintenance: []schemas.MaintenanceRecord{{ID: 10, AssetID: 1}},
			assetsErr:   errors.New("Server error, please try again later"),
		}
		service := services.NewReportService(inventory)

		report, err := service.Generate(context.Background(), schemas.ReportMaintenanceSchedule)
		assert.Nil(t, report)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to generate maintenance schedule report")
	})
}

func TestGenerateAssetValue(t *testing.T) {
	inventory := &fakeInventory{
		assets: []schemas.Asset{
			{ID: 1, Name: "Dell Laptop", Category: schemas.CategoryITEquipment, Value: "1000"},
			{ID: 2, Name: "Projector", Category: schemas.CategoryAudioVisual, Value: "500"},
			{ID: 3, Name: "Broken Import", Category: schemas.CategoryOther, Value: "n/a"},
			{ID: 4, Name: "Monitor", Category: schemas.CategoryITEquipment, Value: "500"},
		},
	}
	service := services.NewReportService(inventory)

	report, err := service.Generate(context.Background(), schemas.ReportAssetValue)
	require.NoError(t, err)

	assert.Equal(t, "Asset Value Report", report.Title)
	// The row with the unparseable value is omitted.
	assert.Len(t, report.Rows, 3)
	assert.Equal(t, 2000.0, report.Summary["Total Value"])
	// Average is over the whole collection, not just the parseable rows.
	assert.Equal(t, 500.0, report.Summary["Average Value"])

	byCategory, ok := report.Summary["Value by Category"].(map[string]float64)
	require.True(t, ok)
	assert.Equal(t, 1500.0, byCategory["IT Equipment"])
	assert.Equal(t, 500.0, byCategory["Audio Visual"])
}

func TestGenerateAssignmentHistory(t *testing.T) {
	inventory := &fakeInventory{
		assets: []schemas.Asset{
			{ID: 1, Name: "Dell Laptop", Category: schemas.CategoryITEquipment},
		},
		assignments: []schemas.Assignment{
			{ID: 1, AssetID: 1, AssignedTo: "Jane Smith", AssignedDate: "2026-01-15"},
			{ID: 2, AssetID: 1, AssignedTo: "John Doe", AssignedDate: "2025-06-01", ReturnDate: "2025-12-01"},
			{ID: 3, AssetID: 42, AssignedTo: "Ada Lovelace", AssignedDate: "2026-02-01"},
		},
	}
	service := services.NewReportService(inventory)

	report, err := service.Generate(context.Background(), schemas.ReportAssignmentHistory)
	require.NoError(t, err)

	assert.Equal(t, "Assignment History", report.Title)
	assert.Equal(t, "Active", report.Rows[0]["status"])
	assert.Equal(t, "Returned", report.Rows[1]["status"])
	assert.Equal(t, services.UnknownAssetName, report.Rows[2]["assetName"])
	assert.Equal(t, 3, report.Summary["Total Assignments"])
	assert.Equal(t, 2, report.Summary["Active"])
	assert.Equal(t, 1, report.Summary["Completed"])
}

func TestGenerateDepreciation(t *testing.T) {
	now := time.Now()
	twoYearsAgo := utils.FormatAPIDate(now.AddDate(-2, 0, 0))
	tenYearsAgo := utils.FormatAPIDate(now.AddDate(-10, 0, 0))

	inventory := &fakeInventory{
		assets: []schemas.Asset{
			{ID: 1, Name: "Dell Laptop", PurchaseDate: twoYearsAgo, Value: "1000"},
			{ID: 2, Name: "Old Server", PurchaseDate: tenYearsAgo, Value: "500"},
			{ID: 3, Name: "New Chair", PurchaseDate: utils.FormatAPIDate(now), Value: "200"},
			{ID: 4, Name: "Priceless", PurchaseDate: twoYearsAgo, Value: ""},
		},
	}
	service := services.NewReportService(inventory)

	report, err := service.Generate(context.Background(), schemas.ReportDepreciation)
	require.NoError(t, err)

	assert.Equal(t, "Depreciation Report", report.Title)
	// The asset with no value is skipped entirely.
	require.Len(t, report.Rows, 3)

	laptop := report.Rows[0]
	assert.Equal(t, 200.0, laptop["annualDepreciation"])
	assert.Equal(t, 400.0, laptop["accumulatedDepreciation"])
	assert.Equal(t, 600.0, laptop["currentValue"])

	// Past the useful life the book value bottoms out at zero.
	server := report.Rows[1]
	assert.Equal(t, 0.0, server["currentValue"])

	// Purchased this year means nothing has depreciated yet.
	chair := report.Rows[2]
	assert.Equal(t, 0.0, chair["accumulatedDepreciation"])
	assert.Equal(t, 200.0, chair["currentValue"])

	assert.Equal(t, 1700.0, report.Summary["Total Purchase Value"])
	assert.Equal(t, 800.0, report.Summary["Total Current Value"])
	assert.Equal(t, 900.0, report.Summary["Total Depreciation"])
}

func TestGenerateDepreciationFullyDepreciated(t *testing.T) {
	now := time.Now()
	inventory := &fakeInventory{
		assets: []schemas.Asset{
			{ID: 1, Value: "1000", PurchaseDate: utils.FormatAPIDate(now.AddDate(-5, 0, 0))},
			{ID: 2, Value: "500", PurchaseDate: utils.FormatAPIDate(now)},
		},
	}
	service := services.NewReportService(inventory)

	report, err := service.Generate(context.Background(), schemas.ReportDepreciation)
	require.NoError(t, err)

	require.Len(t, report.Rows, 2)
	assert.Equal(t, 0.0, report.Rows[0]["currentValue"])
	assert.Equal(t, 1000.0, report.Rows[0]["accumulatedDepreciation"])
	assert.Equal(t, 500.0, report.Rows[1]["currentValue"])
	assert.Equal(t, 0.0, report.Rows[1]["accumulatedDepreciation"])
	assert.Equal(t, 1000.0, report.Summary["Total Depreciation"])
}

func TestGenerateAssetValueEmptyCollection(t *testing.T) {
	service := services.NewReportService(&fakeInventory{})

	report, err := service.Generate(context.Background(), schemas.ReportAssetValue)
	require.NoError(t, err)
	assert.Empty(t, report.Rows)
	assert.Equal(t, 0.0, report.Summary["Total Value"])
	assert.Equal(t, 0.0, report.Summary["Average Value"])
}

func TestGenerateAuditTrail(t *testing.T) {
	inventory := &fakeInventory{
		assets: []schemas.Asset{
			{ID: 1, Name: "Dell Laptop", Tag: "IT-0001", PurchaseDate: "2024-03-10"},
			{ID: 2, Name: "Projector", Tag: "AV-0001", PurchaseDate: "2023-07-01"},
		},
	}
	service := services.NewReportService(inventory)

	report, err := service.Generate(context.Background(), schemas.ReportAuditTrail)
	require.NoError(t, err)

	assert.Equal(t, "Audit Trail", report.Title)
	// Two synthesized entries per asset.
	require.Len(t, report.Rows, 4)
	assert.Equal(t, 4, report.Summary["Total Entries"])
	assert.Equal(t, 2, report.Summary["Created"])
	assert.Equal(t, 2, report.Summary["Updated"])

	// Entries come back newest first.
	for i := 1; i < len(report.Rows); i++ {
		prev := report.Rows[i-1]["timestamp"].(time.Time)
		curr := report.Rows[i]["timestamp"].(time.Time)
		assert.False(t, prev.Before(curr), "expected rows sorted newest first")
	}
}

func TestGenerateUnknownKind(t *testing.T) {
	service := services.NewReportService(&fakeInventory{})

	report, err := service.Generate(context.Background(), schemas.ReportKind("budget-forecast"))
	assert.Nil(t, report)
	require.Error(t, err)
}
