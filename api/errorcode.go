package api

import "github.com/kiranacart/delivery-api/store"

var (
	errorMessageMap = map[int64]string{
		999: "internal server error",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1100: "invalid coordinate",
		1101: store.ErrZoneNotFound.Error(),
		1102: "no active delivery zones",
		1103: "zone data reload failed",
	}

	errorInternalServer = errorJSON(999)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorInvalidCoordinate = errorJSON(1100)
	errorZoneNotFound      = errorJSON(1101)
	errorNoActiveZones     = errorJSON(1102)
	errorZoneReload        = errorJSON(1103)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}
