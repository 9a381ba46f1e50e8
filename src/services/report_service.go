package services

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"strconv"
	"sync"
	"time"

	"assettrack/src/clients/inventory"
	"assettrack/src/schemas"
	"assettrack/src/utils"
)

// UnknownAssetName is the placeholder used whenever a foreign key has no
// matching asset. A join-miss never fails a report.
const UnknownAssetName = "Unknown Asset"

// usefulLifeYears is the fixed straight-line depreciation period.
const usefulLifeYears = 5

type ReportServiceI interface {
	Generate(ctx context.Context, kind schemas.ReportKind) (*schemas.Report, error)
}

// ReportService generates the fixed set of reports from fresh inventory API
// data. Each generation is independent and reentrant; nothing is cached or
// shared between invocations.
type ReportService struct {
	Inventory inventory.InventoryServiceClientI
}

func NewReportService(client inventory.InventoryServiceClientI) *ReportService {
	return &ReportService{Inventory: client}
}

// Generate dispatches to the generator for the given kind. The switch is
// exhaustive over schemas.ReportKinds.
func (rs *ReportService) Generate(ctx context.Context, kind schemas.ReportKind) (*schemas.Report, error) {
	switch kind {
	case schemas.ReportAssetInventory:
		return rs.generateAssetInventory(ctx)
	case schemas.ReportMaintenanceSchedule:
		return rs.generateMaintenanceSchedule(ctx)
	case schemas.ReportAssetValue:
		return rs.generateAssetValue(ctx)
	case schemas.ReportAssignmentHistory:
		return rs.generateAssignmentHistory(ctx)
	case schemas.ReportDepreciation:
		return rs.generateDepreciation(ctx)
	case schemas.ReportAuditTrail:
		return rs.generateAuditTrail(ctx)
	default:
		return nil, utils.BadRequest(fmt.Sprintf("unknown report kind: %q", kind))
	}
}

// parseValue reads a decimal string field. Empty or malformed values report
// false; they are treated as absent, never as zero.
func parseValue(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// assetIndex builds an ID lookup for joining other collections against assets.
func assetIndex(assets []schemas.Asset) map[int]schemas.Asset {
	index := make(map[int]schemas.Asset, len(assets))
	for _, asset := range assets {
		index[asset.ID] = asset
	}
	return index
}

func (rs *ReportService) generateAssetInventory(ctx context.Context) (*schemas.Report, error) {
	assets, err := rs.Inventory.GetAllAssets(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to generate asset inventory report: %w", err)
	}

	rows := make([]schemas.ReportRow, 0, len(assets))
	var available, assigned, maintenance int
	for _, asset := range assets {
		switch asset.Status {
		case schemas.StatusAvailable:
			available++
		case schemas.StatusAssigned:
			assigned++
		case schemas.StatusMaintenance:
			maintenance++
		}
		rows = append(rows, schemas.ReportRow{
			"name":         asset.Name,
			"tag":          asset.Tag,
			"category":     string(asset.Category),
			"status":       string(asset.Status),
			"location":     asset.Location,
			"assignedTo":   asset.AssignedTo,
			"purchaseDate": asset.PurchaseDate,
			"value":        asset.Value,
		})
	}

	return &schemas.Report{
		Title:       "Asset Inventory Report",
		GeneratedAt: time.Now(),
		Columns: []schemas.ReportColumn{
			{Header: "Name", Key: "name"},
			{Header: "Tag", Key: "tag"},
			{Header: "Category", Key: "category"},
			{Header: "Status", Key: "status"},
			{Header: "Location", Key: "location"},
			{Header: "Assigned To", Key: "assignedTo"},
			{Header: "Purchase Date", Key: "purchaseDate", Format: schemas.FormatDate},
			{Header: "Value", Key: "value", Format: schemas.FormatCurrency},
		},
		Rows: rows,
		Summary: schemas.Summary{
			"Total Assets": len(assets),
			"Available":    available,
			"Assigned":     assigned,
			"Maintenance":  maintenance,
		},
	}, nil
}

func (rs *ReportService) generateMaintenanceSchedule(ctx context.Context) (*schemas.Report, error) {
	var (
		records []schemas.MaintenanceRecord
		assets  []schemas.Asset
	)

	// Both collections are required; fetch them concurrently and fail
	// atomically if either fetch rejects.
	var wg sync.WaitGroup
	wg.Add(2)
	errChan := make(chan error, 2)

	go func() {
		defer wg.Done()
		var err error
		records, err = rs.Inventory.GetAllMaintenance(ctx)
		if err != nil {
			errChan <- err
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		assets, err = rs.Inventory.GetAllAssets(ctx)
		if err != nil {
			errChan <- err
		}
	}()

	wg.Wait()
	close(errChan)
	if err := <-errChan; err != nil {
		return nil, fmt.Errorf("failed to generate maintenance schedule report: %w", err)
	}

	index := assetIndex(assets)
	rows := make([]schemas.ReportRow, 0, len(records))
	statusCounts := map[schemas.MaintenanceStatus]int{}
	for _, record := range records {
		assetName := UnknownAssetName
		if asset, ok := index[record.AssetID]; ok {
			assetName = asset.Name
		}
		statusCounts[record.Status]++
		rows = append(rows, schemas.ReportRow{
			"assetName":  assetName,
			"type":       string(record.Type),
			"date":       record.Date,
			"technician": record.Technician,
			"status":     string(record.Status),
			"cost":       record.Cost,
			"notes":      record.Notes,
		})
	}

	return &schemas.Report{
		Title:       "Maintenance Schedule",
		GeneratedAt: time.Now(),
		Columns: []schemas.ReportColumn{
			{Header: "Asset", Key: "assetName"},
			{Header: "Type", Key: "type"},
			{Header: "Date", Key: "date", Format: schemas.FormatDate},
			{Header: "Technician", Key: "technician"},
			{Header: "Status", Key: "status"},
			{Header: "Cost", Key: "cost", Format: schemas.FormatCurrency},
			{Header: "Notes", Key: "notes"},
		},
		Rows: rows,
		Summary: schemas.Summary{
			"Total Records": len(records),
			"Scheduled":     statusCounts[schemas.MaintenanceScheduled],
			"In Progress":   statusCounts[schemas.MaintenanceInProgress],
			"Completed":     statusCounts[schemas.MaintenanceCompleted],
			"Cancelled":     statusCounts[schemas.MaintenanceCancelled],
		},
	}, nil
}

func (rs *ReportService) generateAssetValue(ctx context.Context) (*schemas.Report, error) {
	assets, err := rs.Inventory.GetAllAssets(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to generate asset value report: %w", err)
	}

	rows := make([]schemas.ReportRow, 0, len(assets))
	var totalValue float64
	valueByCategory := map[string]float64{}
	for _, asset := range assets {
		value, ok := parseValue(asset.Value)
		if !ok {
			continue
		}
		totalValue += value
		valueByCategory[string(asset.Category)] += value
		rows = append(rows, schemas.ReportRow{
			"name":         asset.Name,
			"tag":          asset.Tag,
			"category":     string(asset.Category),
			"purchaseDate": asset.PurchaseDate,
			"value":        value,
		})
	}

	// Average is taken over the whole asset list, guarded against an empty
	// collection.
	averageValue := 0.0
	if len(assets) > 0 {
		averageValue = totalValue / float64(len(assets))
	}

	return &schemas.Report{
		Title:       "Asset Value Report",
		GeneratedAt: time.Now(),
		Columns: []schemas.ReportColumn{
			{Header: "Name", Key: "name"},
			{Header: "Tag", Key: "tag"},
			{Header: "Category", Key: "category"},
			{Header: "Purchase Date", Key: "purchaseDate", Format: schemas.FormatDate},
			{Header: "Value", Key: "value", Format: schemas.FormatCurrency},
		},
		Rows: rows,
		Summary: schemas.Summary{
			"Total Value":       totalValue,
			"Average Value":     averageValue,
			"Value by Category": valueByCategory,
		},
	}, nil
}

func (rs *ReportService) generateAssignmentHistory(ctx context.Context) (*schemas.Report, error) {
	var (
		assignments []schemas.Assignment
		assets      []schemas.Asset
	)

	var wg sync.WaitGroup
	wg.Add(2)
	errChan := make(chan error, 2)

	go func() {
		defer wg.Done()
		var err error
		assignments, err = rs.Inventory.GetAllAssignments(ctx)
		if err != nil {
			errChan <- err
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		assets, err = rs.Inventory.GetAllAssets(ctx)
		if err != nil {
			errChan <- err
		}
	}()

	wg.Wait()
	close(errChan)
	if err := <-errChan; err != nil {
		return nil, fmt.Errorf("failed to generate assignment history report: %w", err)
	}

	index := assetIndex(assets)
	rows := make([]schemas.ReportRow, 0, len(assignments))
	var active, completed int
	for _, assignment := range assignments {
		assetName := UnknownAssetName
		category := ""
		if asset, ok := index[assignment.AssetID]; ok {
			assetName = asset.Name
			category = string(asset.Category)
		}

		status := "Returned"
		if assignment.Active() {
			status = "Active"
			active++
		} else {
			completed++
		}

		rows = append(rows, schemas.ReportRow{
			"assetName":    assetName,
			"category":     category,
			"assignedTo":   assignment.AssignedTo,
			"assignedDate": assignment.AssignedDate,
			"returnDate":   assignment.ReturnDate,
			"status":       status,
			"notes":        assignment.Notes,
		})
	}

	return &schemas.Report{
		Title:       "Assignment History",
		GeneratedAt: time.Now(),
		Columns: []schemas.ReportColumn{
			{Header: "Asset", Key: "assetName"},
			{Header: "Category", Key: "category"},
			{Header: "Assigned To", Key: "assignedTo"},
			{Header: "Assigned Date", Key: "assignedDate", Format: schemas.FormatDate},
			{Header: "Return Date", Key: "returnDate", Format: schemas.FormatDate},
			{Header: "Status", Key: "status"},
			{Header: "Notes", Key: "notes"},
		},
		Rows: rows,
		Summary: schemas.Summary{
			"Total Assignments": len(assignments),
			"Active":            active,
			"Completed":         completed,
		},
	}, nil
}

func (rs *ReportService) generateDepreciation(ctx context.Context) (*schemas.Report, error) {
	assets, err := rs.Inventory.GetAllAssets(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to generate depreciation report: %w", err)
	}

	currentYear := time.Now().Year()
	rows := make([]schemas.ReportRow, 0, len(assets))
	var totalPurchaseValue, totalCurrentValue float64
	for _, asset := range assets {
		purchaseValue, ok := parseValue(asset.Value)
		if !ok {
			continue
		}

		// Purchase year defaults to the current year when the date is absent,
		// which yields zero accumulated depreciation.
		purchaseYear := currentYear
		if purchased, ok := utils.ParseAPIDate(asset.PurchaseDate); ok {
			purchaseYear = purchased.Year()
		}

		annual := purchaseValue / usefulLifeYears
		age := currentYear - purchaseYear
		if age > usefulLifeYears {
			age = usefulLifeYears
		}
		accumulated := annual * float64(age)
		currentValue := purchaseValue - accumulated
		if currentValue < 0 {
			currentValue = 0
		}

		totalPurchaseValue += purchaseValue
		totalCurrentValue += currentValue
		rows = append(rows, schemas.ReportRow{
			"name":                    asset.Name,
			"tag":                     asset.Tag,
			"purchaseDate":            asset.PurchaseDate,
			"purchaseValue":           purchaseValue,
			"annualDepreciation":      annual,
			"accumulatedDepreciation": accumulated,
			"currentValue":            currentValue,
		})
	}

	return &schemas.Report{
		Title:       "Depreciation Report",
		GeneratedAt: time.Now(),
		Columns: []schemas.ReportColumn{
			{Header: "Name", Key: "name"},
			{Header: "Tag", Key: "tag"},
			{Header: "Purchase Date", Key: "purchaseDate", Format: schemas.FormatDate},
			{Header: "Purchase Value", Key: "purchaseValue", Format: schemas.FormatCurrency},
			{Header: "Annual Depreciation", Key: "annualDepreciation", Format: schemas.FormatCurrency},
			{Header: "Accumulated Depreciation", Key: "accumulatedDepreciation", Format: schemas.FormatCurrency},
			{Header: "Current Value", Key: "currentValue", Format: schemas.FormatCurrency},
		},
		Rows: rows,
		Summary: schemas.Summary{
			"Total Purchase Value": totalPurchaseValue,
			"Total Current Value":  totalCurrentValue,
			"Total Depreciation":   totalPurchaseValue - totalCurrentValue,
		},
	}, nil
}

func (rs *ReportService) generateAuditTrail(ctx context.Context) (*schemas.Report, error) {
	assets, err := rs.Inventory.GetAllAssets(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to generate audit trail report: %w", err)
	}

	// The inventory API keeps no change log, so the trail is synthesized: a
	// creation entry at purchase time and an update at a random instant within
	// the trailing 30 days.
	now := time.Now()
	rows := make([]schemas.ReportRow, 0, 2*len(assets))
	var created, updated int
	for _, asset := range assets {
		createdAt := now
		if purchased, ok := utils.ParseAPIDate(asset.PurchaseDate); ok {
			createdAt = purchased
		}
		rows = append(rows, schemas.ReportRow{
			"timestamp": createdAt,
			"action":    "CREATE",
			"assetName": asset.Name,
			"tag":       asset.Tag,
			"details":   "Asset record created",
		})
		created++

		offset := time.Duration(rand.Int63n(int64(30 * 24 * time.Hour)))
		rows = append(rows, schemas.ReportRow{
			"timestamp": now.Add(-offset),
			"action":    "UPDATE",
			"assetName": asset.Name,
			"tag":       asset.Tag,
			"details":   "Asset record updated",
		})
		updated++
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i]["timestamp"].(time.Time).After(rows[j]["timestamp"].(time.Time))
	})

	return &schemas.Report{
		Title:       "Audit Trail",
		GeneratedAt: now,
		Columns: []schemas.ReportColumn{
			{Header: "Timestamp", Key: "timestamp", Format: schemas.FormatDateTime},
			{Header: "Action", Key: "action"},
			{Header: "Asset", Key: "assetName"},
			{Header: "Tag", Key: "tag"},
			{Header: "Details", Key: "details"},
		},
		Rows: rows,
		Summary: schemas.Summary{
			"Total Entries": len(rows),
			"Created":       created,
			"Updated":       updated,
		},
	}, nil
}
