package schemas

// AssetCategory enumerates the fixed asset categories tracked by the university.
type AssetCategory string

const (
	CategoryITEquipment   AssetCategory = "IT Equipment"
	CategoryAudioVisual   AssetCategory = "Audio Visual"
	CategoryFurniture     AssetCategory = "Furniture"
	CategoryOfficeSupply  AssetCategory = "Office Supplies"
	CategoryVehicles      AssetCategory = "Vehicles"
	CategoryOther         AssetCategory = "Other"
)

// AssetStatus enumerates the lifecycle states of an asset.
type AssetStatus string

const (
	StatusAvailable   AssetStatus = "Available"
	StatusAssigned    AssetStatus = "Assigned"
	StatusMaintenance AssetStatus = "Maintenance"
	StatusRetired     AssetStatus = "Retired"
)

// Asset mirrors the asset records served by the inventory data API.
// Dates travel as plain YYYY-MM-DD strings and Value as a decimal string,
// both of which may be empty.
type Asset struct {
	ID           int           `json:"id"`
	Name         string        `json:"name"`
	Tag          string        `json:"tag"`
	Category     AssetCategory `json:"category"`
	Status       AssetStatus   `json:"status"`
	Location     string        `json:"location"`
	AssignedTo   string        `json:"assignedTo"`
	PurchaseDate string        `json:"purchaseDate"`
	Value        string        `json:"value"`
	SerialNumber string        `json:"serialNumber"`
	Warranty     string        `json:"warranty"`
	Supplier     string        `json:"supplier"`
	Description  string        `json:"description"`
}
