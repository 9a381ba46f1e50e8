package inventory

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"assettrack/src/config"
	"assettrack/src/schemas"
	"assettrack/src/utils"
	requests "assettrack/src/utils/requests"
)

type InventoryServiceClientI interface {
	GetAllAssets(ctx context.Context) ([]schemas.Asset, error)
	GetAssetByID(ctx context.Context, id string) (*schemas.Asset, error)
	CreateAsset(ctx context.Context, asset *schemas.Asset) (*schemas.Asset, error)
	UpdateAsset(ctx context.Context, id string, asset *schemas.Asset) (*schemas.Asset, error)
	DeleteAsset(ctx context.Context, id string) error
	SearchAssets(ctx context.Context, query string) ([]schemas.Asset, error)

	GetAllAssignments(ctx context.Context) ([]schemas.Assignment, error)
	GetAssignmentByID(ctx context.Context, id string) (*schemas.Assignment, error)
	CreateAssignment(ctx context.Context, assignment *schemas.Assignment) (*schemas.Assignment, error)
	UpdateAssignment(ctx context.Context, id string, assignment *schemas.Assignment) (*schemas.Assignment, error)
	DeleteAssignment(ctx context.Context, id string) error

	GetAllMaintenance(ctx context.Context) ([]schemas.MaintenanceRecord, error)
	GetMaintenanceByID(ctx context.Context, id string) (*schemas.MaintenanceRecord, error)
	CreateMaintenance(ctx context.Context, record *schemas.MaintenanceRecord) (*schemas.MaintenanceRecord, error)
	UpdateMaintenance(ctx context.Context, id string, record *schemas.MaintenanceRecord) (*schemas.MaintenanceRecord, error)
	DeleteMaintenance(ctx context.Context, id string) error

	GetAllLocations(ctx context.Context) ([]schemas.Location, error)
	GetLocationByID(ctx context.Context, id string) (*schemas.Location, error)
	CreateLocation(ctx context.Context, location *schemas.Location) (*schemas.Location, error)
	UpdateLocation(ctx context.Context, id string, location *schemas.Location) (*schemas.Location, error)
	DeleteLocation(ctx context.Context, id string) error
}

// InventoryServiceClient is a typed wrapper over the remote collection-style
// inventory API. It owns error normalization: everything that leaves this
// client is either a decoded payload or one of the fixed messages in errors.go.
type InventoryServiceClient struct {
	API     *requests.ExternalAPIService
	BaseURL string
	Token   string
}

// NewClient creates a new instance of InventoryServiceClient.
func NewClient(cfg *config.Config) *InventoryServiceClient {
	api := requests.NewExternalAPIService(nil)
	return &InventoryServiceClient{
		API:     api,
		BaseURL: cfg.InventoryAPI.BaseURL,
		Token:   cfg.InventoryAPI.Token,
	}
}

// parseID validates that a raw identifier is a non-negative integer before any
// network call happens. invalidErr is the per-entity malformed-identifier error.
func parseID(raw string, invalidErr error) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id < 0 {
		return 0, invalidErr
	}
	return id, nil
}

// decodeResponse normalizes transport failures and error statuses, then
// unmarshals the envelope payload into out.
func (s *InventoryServiceClient) decodeResponse(ctx context.Context, resp *http.Response, err error, out interface{}) error {
	logger := utils.LoggerFromContext(ctx)
	if err != nil {
		logger.WithError(err).Error("inventory API request failed")
		return utils.ServiceUnavailable(MsgNoResponse)
	}
	defer resp.Body.Close()

	body, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		logger.WithError(readErr).Error("failed to read inventory API response")
		return utils.ServiceUnavailable(MsgNoResponse)
	}

	if resp.StatusCode >= http.StatusMultipleChoices {
		logger.WithFields(map[string]interface{}{
			"status": resp.StatusCode,
			"body":   string(body),
		}).Warn("inventory API returned error response")
		return classifyStatus(resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		logger.WithError(err).Error("failed to decode inventory API response")
		return utils.InternalServerError(MsgGeneric)
	}
	return nil
}

func fetchList[T any](ctx context.Context, s *InventoryServiceClient, path string, params url.Values) ([]T, error) {
	resp, err := s.API.Get(ctx, s.BaseURL+path, s.Token, params)
	var envelope listEnvelope[T]
	if err := s.decodeResponse(ctx, resp, err, &envelope); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}

func fetchItem[T any](ctx context.Context, s *InventoryServiceClient, path string) (*T, error) {
	resp, err := s.API.Get(ctx, s.BaseURL+path, s.Token, nil)
	var envelope itemEnvelope[T]
	if err := s.decodeResponse(ctx, resp, err, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Data, nil
}

func createItem[T any](ctx context.Context, s *InventoryServiceClient, path string, payload *T) (*T, error) {
	resp, err := s.API.Post(ctx, s.BaseURL+path, s.Token, nil, payload)
	var envelope itemEnvelope[T]
	if err := s.decodeResponse(ctx, resp, err, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Data, nil
}

func updateItem[T any](ctx context.Context, s *InventoryServiceClient, path string, payload *T) (*T, error) {
	resp, err := s.API.Put(ctx, s.BaseURL+path, s.Token, nil, payload)
	var envelope itemEnvelope[T]
	if err := s.decodeResponse(ctx, resp, err, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Data, nil
}

func (s *InventoryServiceClient) deleteItem(ctx context.Context, path string) error {
	resp, err := s.API.Delete(ctx, s.BaseURL+path, s.Token, nil)
	return s.decodeResponse(ctx, resp, err, nil)
}

// GetAllAssets retrieves every asset record.
func (s *InventoryServiceClient) GetAllAssets(ctx context.Context) ([]schemas.Asset, error) {
	return fetchList[schemas.Asset](ctx, s, "/assets", nil)
}

// GetAssetByID retrieves a single asset.
func (s *InventoryServiceClient) GetAssetByID(ctx context.Context, id string) (*schemas.Asset, error) {
	numericID, err := parseID(id, ErrInvalidAssetID)
	if err != nil {
		return nil, err
	}
	return fetchItem[schemas.Asset](ctx, s, fmt.Sprintf("/assets/%d", numericID))
}

// CreateAsset creates a new asset record.
func (s *InventoryServiceClient) CreateAsset(ctx context.Context, asset *schemas.Asset) (*schemas.Asset, error) {
	return createItem(ctx, s, "/assets", asset)
}

// UpdateAsset replaces an asset record.
func (s *InventoryServiceClient) UpdateAsset(ctx context.Context, id string, asset *schemas.Asset) (*schemas.Asset, error) {
	numericID, err := parseID(id, ErrInvalidAssetID)
	if err != nil {
		return nil, err
	}
	return updateItem(ctx, s, fmt.Sprintf("/assets/%d", numericID), asset)
}

// DeleteAsset removes an asset record.
func (s *InventoryServiceClient) DeleteAsset(ctx context.Context, id string) error {
	numericID, err := parseID(id, ErrInvalidAssetID)
	if err != nil {
		return err
	}
	return s.deleteItem(ctx, fmt.Sprintf("/assets/%d", numericID))
}

// SearchAssets runs a free-text search over the asset collection.
func (s *InventoryServiceClient) SearchAssets(ctx context.Context, query string) ([]schemas.Asset, error) {
	params := url.Values{}
	params.Set("q", query)
	return fetchList[schemas.Asset](ctx, s, "/assets/search", params)
}

// GetAllAssignments retrieves every assignment record.
func (s *InventoryServiceClient) GetAllAssignments(ctx context.Context) ([]schemas.Assignment, error) {
	return fetchList[schemas.Assignment](ctx, s, "/assignments", nil)
}

// GetAssignmentByID retrieves a single assignment.
func (s *InventoryServiceClient) GetAssignmentByID(ctx context.Context, id string) (*schemas.Assignment, error) {
	numericID, err := parseID(id, ErrInvalidAssignmentID)
	if err != nil {
		return nil, err
	}
	return fetchItem[schemas.Assignment](ctx, s, fmt.Sprintf("/assignments/%d", numericID))
}

// CreateAssignment creates a new assignment record.
func (s *InventoryServiceClient) CreateAssignment(ctx context.Context, assignment *schemas.Assignment) (*schemas.Assignment, error) {
	return createItem(ctx, s, "/assignments", assignment)
}

// UpdateAssignment replaces an assignment record.
func (s *InventoryServiceClient) UpdateAssignment(ctx context.Context, id string, assignment *schemas.Assignment) (*schemas.Assignment, error) {
	numericID, err := parseID(id, ErrInvalidAssignmentID)
	if err != nil {
		return nil, err
	}
	return updateItem(ctx, s, fmt.Sprintf("/assignments/%d", numericID), assignment)
}

// DeleteAssignment removes an assignment record.
func (s *InventoryServiceClient) DeleteAssignment(ctx context.Context, id string) error {
	numericID, err := parseID(id, ErrInvalidAssignmentID)
	if err != nil {
		return err
	}
	return s.deleteItem(ctx, fmt.Sprintf("/assignments/%d", numericID))
}

// GetAllMaintenance retrieves every maintenance record.
func (s *InventoryServiceClient) GetAllMaintenance(ctx context.Context) ([]schemas.MaintenanceRecord, error) {
	return fetchList[schemas.MaintenanceRecord](ctx, s, "/maintenance", nil)
}

// GetMaintenanceByID retrieves a single maintenance record.
func (s *InventoryServiceClient) GetMaintenanceByID(ctx context.Context, id string) (*schemas.MaintenanceRecord, error) {
	numericID, err := parseID(id, ErrInvalidMaintenanceID)
	if err != nil {
		return nil, err
	}
	return fetchItem[schemas.MaintenanceRecord](ctx, s, fmt.Sprintf("/maintenance/%d", numericID))
}

// CreateMaintenance creates a new maintenance record.
func (s *InventoryServiceClient) CreateMaintenance(ctx context.Context, record *schemas.MaintenanceRecord) (*schemas.MaintenanceRecord, error) {
	return createItem(ctx, s, "/maintenance", record)
}

// UpdateMaintenance replaces a maintenance record.
func (s *InventoryServiceClient) UpdateMaintenance(ctx context.Context, id string, record *schemas.MaintenanceRecord) (*schemas.MaintenanceRecord, error) {
	numericID, err := parseID(id, ErrInvalidMaintenanceID)
	if err != nil {
		return nil, err
	}
	return updateItem(ctx, s, fmt.Sprintf("/maintenance/%d", numericID), record)
}

// DeleteMaintenance removes a maintenance record.
func (s *InventoryServiceClient) DeleteMaintenance(ctx context.Context, id string) error {
	numericID, err := parseID(id, ErrInvalidMaintenanceID)
	if err != nil {
		return err
	}
	return s.deleteItem(ctx, fmt.Sprintf("/maintenance/%d", numericID))
}

// GetAllLocations retrieves every location record.
func (s *InventoryServiceClient) GetAllLocations(ctx context.Context) ([]schemas.Location, error) {
	return fetchList[schemas.Location](ctx, s, "/locations", nil)
}

// GetLocationByID retrieves a single location.
func (s *InventoryServiceClient) GetLocationByID(ctx context.Context, id string) (*schemas.Location, error) {
	numericID, err := parseID(id, ErrInvalidLocationID)
	if err != nil {
		return nil, err
	}
	return fetchItem[schemas.Location](ctx, s, fmt.Sprintf("/locations/%d", numericID))
}

// CreateLocation creates a new location record.
func (s *InventoryServiceClient) CreateLocation(ctx context.Context, location *schemas.Location) (*schemas.Location, error) {
	return createItem(ctx, s, "/locations", location)
}

// UpdateLocation replaces a location record.
func (s *InventoryServiceClient) UpdateLocation(ctx context.Context, id string, location *schemas.Location) (*schemas.Location, error) {
	numericID, err := parseID(id, ErrInvalidLocationID)
	if err != nil {
		return nil, err
	}
	return updateItem(ctx, s, fmt.Sprintf("/locations/%d", numericID), location)
}

// DeleteLocation removes a location record.
func (s *InventoryServiceClient) DeleteLocation(ctx context.Context, id string) error {
	numericID, err := parseID(id, ErrInvalidLocationID)
	if err != nil {
		return err
	}
	return s.deleteItem(ctx, fmt.Sprintf("/locations/%d", numericID))
}
