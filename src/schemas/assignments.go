package schemas

// Assignment links an asset to the person it was handed out to. AssetName is a
// denormalized snapshot taken at creation time; the asset remains the source
// of truth. An assignment with no ReturnDate is considered active.
type Assignment struct {
	ID           int    `json:"id"`
	AssetID      int    `json:"assetId"`
	AssetName    string `json:"assetName"`
	AssignedTo   string `json:"assignedTo"`
	AssignedDate string `json:"assignedDate"`
	ReturnDate   string `json:"returnDate"`
	Notes        string `json:"notes"`
}

// Active reports whether the assignment is still outstanding. The presence of
// a return date is the single canonical rule everywhere in this codebase.
func (a Assignment) Active() bool {
	return a.ReturnDate == ""
}

// AssignAssetRequest is the payload for handing an asset out.
type AssignAssetRequest struct {
	AssetID      string `json:"assetId"`
	AssignedTo   string `json:"assignedTo"`
	AssignedDate string `json:"assignedDate"`
	Notes        string `json:"notes"`
}
