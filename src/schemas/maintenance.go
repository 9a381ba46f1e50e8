package schemas

// MaintenanceType enumerates the kinds of maintenance work tracked.
type MaintenanceType string

const (
	MaintenanceRoutineCheck MaintenanceType = "Routine Check"
	MaintenanceRepair       MaintenanceType = "Repair"
	MaintenanceSoftware     MaintenanceType = "Software Update"
	MaintenanceHardware     MaintenanceType = "Hardware Replacement"
	MaintenanceCleaning     MaintenanceType = "Cleaning"
	MaintenanceCalibration  MaintenanceType = "Calibration"
)

// MaintenanceStatus enumerates the progress states of a maintenance record.
type MaintenanceStatus string

const (
	MaintenanceScheduled  MaintenanceStatus = "Scheduled"
	MaintenanceInProgress MaintenanceStatus = "In Progress"
	MaintenanceCompleted  MaintenanceStatus = "Completed"
	MaintenanceCancelled  MaintenanceStatus = "Cancelled"
)

// MaintenanceRecord mirrors the maintenance records served by the inventory
// data API. Cost is a decimal string and may be empty.
type MaintenanceRecord struct {
	ID         int               `json:"id"`
	AssetID    int               `json:"assetId"`
	Type       MaintenanceType   `json:"type"`
	Date       string            `json:"date"`
	Technician string            `json:"technician"`
	Status     MaintenanceStatus `json:"status"`
	Notes      string            `json:"notes"`
	Cost       string            `json:"cost"`
}
