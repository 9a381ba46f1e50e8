package services_test

import (
	"context"
	"strconv"

	"assettrack/src/schemas"
	"assettrack/src/utils"
)

// fakeInventory is an in-memory stand-in for the remote inventory API client.
// Per-collection errors simulate partial outages.
type fakeInventory struct {
	assets      []schemas.Asset
	assignments []schemas.Assignment
	maintenance []schemas.MaintenanceRecord
	locations   []schemas.Location

	assetsErr      error
	assignmentsErr error
	maintenanceErr error
	locationsErr   error
}

func (f *fakeInventory) GetAllAssets(ctx context.Context) ([]schemas.Asset, error) {
	if f.assetsErr != nil {
		return nil, f.assetsErr
	}
	return f.assets, nil
}

func (f *fakeInventory) GetAssetByID(ctx context.Context, id string) (*schemas.Asset, error) {
	if f.assetsErr != nil {
		return nil, f.assetsErr
	}
	parsed, err := strconv.Atoi(id)
	if err != nil {
		return nil, utils.BadRequest("Invalid asset ID")
	}
	for i := range f.assets {
		if f.assets[i].ID == parsed {
			return &f.assets[i], nil
		}
	}
	return nil, utils.NotFound("Resource not found")
}

func (f *fakeInventory) CreateAsset(ctx context.Context, asset *schemas.Asset) (*schemas.Asset, error) {
	if f.assetsErr != nil {
		return nil, f.assetsErr
	}
	asset.ID = len(f.assets) + 1
	f.assets = append(f.assets, *asset)
	return asset, nil
}

func (f *fakeInventory) UpdateAsset(ctx context.Context, id string, asset *schemas.Asset) (*schemas.Asset, error) {
	if f.assetsErr != nil {
		return nil, f.assetsErr
	}
	parsed, _ := strconv.Atoi(id)
	for i := range f.assets {
		if f.assets[i].ID == parsed {
			asset.ID = parsed
			f.assets[i] = *asset
			return asset, nil
		}
	}
	return nil, utils.NotFound("Resource not found")
}

func (f *fakeInventory) DeleteAsset(ctx context.Context, id string) error {
	return f.assetsErr
}

func (f *fakeInventory) SearchAssets(ctx context.Context, query string) ([]schemas.Asset, error) {
	return f.GetAllAssets(ctx)
}

func (f *fakeInventory) GetAllAssignments(ctx context.Context) ([]schemas.Assignment, error) {
	if f.assignmentsErr != nil {
		return nil, f.assignmentsErr
	}
	return f.assignments, nil
}

func (f *fakeInventory) GetAssignmentByID(ctx context.Context, id string) (*schemas.Assignment, error) {
	if f.assignmentsErr != nil {
		return nil, f.assignmentsErr
	}
	parsed, err := strconv.Atoi(id)
	if err != nil {
		return nil, utils.BadRequest("Invalid assignment ID")
	}
	for i := range f.assignments {
		if f.assignments[i].ID == parsed {
			return &f.assignments[i], nil
		}
	}
	return nil, utils.NotFound("Resource not found")
}

func (f *fakeInventory) CreateAssignment(ctx context.Context, assignment *schemas.Assignment) (*schemas.Assignment, error) {
	if f.assignmentsErr != nil {
		return nil, f.assignmentsErr
	}
	assignment.ID = len(f.assignments) + 1
	f.assignments = append(f.assignments, *assignment)
	return assignment, nil
}

func (f *fakeInventory) UpdateAssignment(ctx context.Context, id string, assignment *schemas.Assignment) (*schemas.Assignment, error) {
	if f.assignmentsErr != nil {
		return nil, f.assignmentsErr
	}
	parsed, _ := strconv.Atoi(id)
	for i := range f.assignments {
		if f.assignments[i].ID == parsed {
			assignment.ID = parsed
			f.assignments[i] = *assignment
			return assignment, nil
		}
	}
	return nil, utils.NotFound("Resource not found")
}

func (f *fakeInventory) DeleteAssignment(ctx context.Context, id string) error {
	return f.assignmentsErr
}

func (f *fakeInventory) GetAllMaintenance(ctx context.Context) ([]schemas.MaintenanceRecord, error) {
	if f.maintenanceErr != nil {
		return nil, f.maintenanceErr
	}
	return f.maintenance, nil
}

func (f *fakeInventory) GetMaintenanceByID(ctx context.Context, id string) (*schemas.MaintenanceRecord, error) {
	if f.maintenanceErr != nil {
		return nil, f.maintenanceErr
	}
	parsed, err := strconv.Atoi(id)
	if err != nil {
		return nil, utils.BadRequest("Invalid maintenance record ID")
	}
	for i := range f.maintenance {
		if f.maintenance[i].ID == parsed {
			return &f.maintenance[i], nil
		}
	}
	return nil, utils.NotFound("Resource not found")
}

func (f *fakeInventory) CreateMaintenance(ctx context.Context, record *schemas.MaintenanceRecord) (*schemas.MaintenanceRecord, error) {
	if f.maintenanceErr != nil {
		return nil, f.maintenanceErr
	}
	record.ID = len(f.maintenance) + 1
	f.maintenance = append(f.maintenance, *record)
	return record, nil
}

func (f *fakeInventory) UpdateMaintenance(ctx context.Context, id string, record *schemas.MaintenanceRecord) (*schemas.MaintenanceRecord, error) {
	if f.maintenanceErr != nil {
		return nil, f.maintenanceErr
	}
	return record, nil
}

func (f *fakeInventory) DeleteMaintenance(ctx context.Context, id string) error {
	return f.maintenanceErr
}

func (f *fakeInventory) GetAllLocations(ctx context.Context) ([]schemas.Location, error) {
	if f.locationsErr != nil {
		return nil, f.locationsErr
	}
	return f.locations, nil
}

func (f *fakeInventory) GetLocationByID(ctx context.Context, id string) (*schemas.Location, error) {
	if f.locationsErr != nil {
		return nil, f.locationsErr
	}
	parsed, err := strconv.Atoi(id)
	if err != nil {
		return nil, utils.BadRequest("Invalid location ID")
	}
	for i := range f.locations {
		if f.locations[i].ID == parsed {
			return &f.locations[i], nil
		}
	}
	return nil, utils.NotFound("Resource not found")
}

func (f *fakeInventory) CreateLocation(ctx context.Context, location *schemas.Location) (*schemas.Location, error) {
	if f.locationsErr != nil {
		return nil, f.locationsErr
	}
	location.ID = len(f.locations) + 1
	f.locations = append(f.locations, *location)
	return location, nil
}

func (f *fakeInventory) UpdateLocation(ctx context.Context, id string, location *schemas.Location) (*schemas.Location, error) {
	if f.locationsErr != nil {
		return nil, f.locationsErr
	}
	return location, nil
}

func (f *fakeInventory) DeleteLocation(ctx context.Context, id string) error {
	return f.locationsErr
}
