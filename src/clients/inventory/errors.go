package inventory

import (
	"net/http"

	"assettrack/src/utils"
)

// Fixed user-facing messages. Raw statuses and bodies are logged, never shown;
// nothing outside this package sees any other wording for a remote failure.
const (
	MsgResourceNotFound = "Resource not found"
	MsgInvalidRequest   = "Invalid request data"
	MsgUnauthorized     = "Unauthorized access"
	MsgServerError      = "Server error, please try again later"
	MsgGeneric          = "An error occurred"
	MsgNoResponse       = "No response received from server. Please check your connection."
)

// Malformed-identifier errors, raised before any network call is made.
var (
	ErrInvalidAssetID       = utils.BadRequest("Invalid asset ID")
	ErrInvalidAssignmentID  = utils.BadRequest("Invalid assignment ID")
	ErrInvalidMaintenanceID = utils.BadRequest("Invalid maintenance record ID")
	ErrInvalidLocationID    = utils.BadRequest("Invalid location ID")
)

// classifyStatus maps a remote error status onto the fixed message set.
func classifyStatus(code int) error {
	switch code {
	case http.StatusNotFound:
		return utils.NotFound(MsgResourceNotFound)
	case http.StatusBadRequest:
		return utils.BadRequest(MsgInvalidRequest)
	case http.StatusUnauthorized:
		return utils.Unauthorized(MsgUnauthorized)
	case http.StatusInternalServerError:
		return utils.InternalServerError(MsgServerError)
	default:
		return utils.NewHTTPError(code, MsgGeneric)
	}
}
