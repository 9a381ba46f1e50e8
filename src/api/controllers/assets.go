package controllers

import (
	"context"
	"strconv"
	"time"

	"assettrack/src/clients/inventory"
	"assettrack/src/schemas"
	"assettrack/src/services"
	"assettrack/src/utils"
)

type AssetsControllerI interface {
	AssignAsset(ctx context.Context, req *schemas.AssignAssetRequest) (*schemas.Assignment, error)
	ReturnAsset(ctx context.Context, assignmentID string) (*schemas.Assignment, error)
}

// AssetsController implements the hand-out and return workflows: both touch
// the assignment record and mutate the asset's status as a side effect.
type AssetsController struct {
	Inventory inventory.InventoryServiceClientI
}

func NewAssetsController(client inventory.InventoryServiceClientI) *AssetsController {
	return &AssetsController{Inventory: client}
}

// AssignAsset creates an assignment with a denormalized asset-name snapshot,
// then flips the asset to Assigned.
func (ac *AssetsController) AssignAsset(ctx context.Context, req *schemas.AssignAssetRequest) (*schemas.Assignment, error) {
	asset, err := ac.Inventory.GetAssetByID(ctx, req.AssetID)
	if err != nil {
		return nil, err
	}
	if asset.Status != schemas.StatusAvailable {
		return nil, utils.BadRequest("Asset is not available for assignment")
	}

	assetName := asset.Name
	if assetName == "" {
		assetName = services.UnknownAssetName
	}
	assignedDate := req.AssignedDate
	if assignedDate == "" {
		assignedDate = utils.FormatAPIDate(time.Now())
	}

	assignment := &schemas.Assignment{
		AssetID:      asset.ID,
		AssetName:    assetName,
		AssignedTo:   req.AssignedTo,
		AssignedDate: assignedDate,
		Notes:        req.Notes,
	}
	created, err := ac.Inventory.CreateAssignment(ctx, assignment)
	if err != nil {
		return nil, err
	}

	asset.Status = schemas.StatusAssigned
	asset.AssignedTo = req.AssignedTo
	if _, err := ac.Inventory.UpdateAsset(ctx, req.AssetID, asset); err != nil {
		return nil, err
	}

	return created, nil
}

// ReturnAsset stamps the assignment's return date and flips the asset back to
// Available. The return date is the single marker that closes an assignment.
func (ac *AssetsController) ReturnAsset(ctx context.Context, assignmentID string) (*schemas.Assignment, error) {
	assignment, err := ac.Inventory.GetAssignmentByID(ctx, assignmentID)
	if err != nil {
		return nil, err
	}
	if !assignment.Active() {
		return nil, utils.BadRequest("Assignment is already closed")
	}

	assignment.ReturnDate = utils.FormatAPIDate(time.Now())
	updated, err := ac.Inventory.UpdateAssignment(ctx, assignmentID, assignment)
	if err != nil {
		return nil, err
	}

	assetID := strconv.Itoa(assignment.AssetID)
	asset, err := ac.Inventory.GetAssetByID(ctx, assetID)
	if err != nil {
		return nil, err
	}
	asset.Status = schemas.StatusAvailable
	asset.AssignedTo = "Unassigned"
	if _, err := ac.Inventory.UpdateAsset(ctx, assetID, asset); err != nil {
		return nil, err
	}

	return updated, nil
}
