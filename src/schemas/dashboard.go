package schemas

// DashboardSummary aggregates the three inventory collections for the landing
// view. Sections degrade independently: a failed fetch leaves its numbers at
// zero instead of failing the whole summary.
type DashboardSummary struct {
	TotalAssets       int          `json:"totalAssets"`
	AvailableAssets   int          `json:"availableAssets"`
	TotalAssignments  int          `json:"totalAssignments"`
	ActiveMaintenance int          `json:"activeMaintenance"`
	RecentAssets      []Asset      `json:"recentAssets"`
	RecentAssignments []Assignment `json:"recentAssignments"`
}
