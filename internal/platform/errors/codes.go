// Package errors provides structured error handling with i18n support.
package errors

import "net/http"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Request errors
	CodeInvalidRequest   Code = "INVALID_REQUEST"
	CodePayloadTooLarge  Code = "PAYLOAD_TOO_LARGE"
	CodeUnsupportedMedia Code = "UNSUPPORTED_MEDIA_TYPE"

	// Calculator errors
	CodeInvalidStat       Code = "INVALID_STAT"
	CodeInvalidDamage     Code = "INVALID_DAMAGE_RANGE"
	CodeUnknownStat       Code = "UNKNOWN_STAT"
	CodeUnknownCombatType Code = "UNKNOWN_COMBAT_TYPE"
	CodeUnknownDirection  Code = "UNKNOWN_DIRECTION"
	CodeUnknownMetric     Code = "UNKNOWN_METRIC"
	CodeUnknownLimiter    Code = "UNKNOWN_SPEED_LIMITER"
	CodeInvalidRange      Code = "INVALID_RANGE"

	// Share errors
	CodeMalformedToken Code = "MALFORMED_TOKEN"

	// Import errors
	CodeImportEmpty       Code = "IMPORT_EMPTY"
	CodeImportUnknownKind Code = "IMPORT_UNKNOWN_KIND"

	// Session errors
	CodeSessionUnknownAction   Code = "SESSION_UNKNOWN_ACTION"
	CodeSessionIndexOutOfRange Code = "SESSION_INDEX_OUT_OF_RANGE"
	CodeSessionRequiredStat    Code = "SESSION_REQUIRED_STAT"
	CodeSessionEmptyToken      Code = "SESSION_EMPTY_TOKEN"
	CodeSessionNotFound        Code = "SESSION_NOT_FOUND"
)

// HTTPStatus maps domain error codes to HTTP status codes.
func (c Code) HTTPStatus() int {
	switch c {
	case CodeInvalidRequest,
		CodeInvalidStat,
		CodeInvalidDamage,
		CodeUnknownStat,
		CodeUnknownCombatType,
		CodeUnknownDirection,
		CodeUnknownMetric,
		CodeUnknownLimiter,
		CodeInvalidRange,
		CodeMalformedToken,
		CodeImportEmpty,
		CodeImportUnknownKind,
		CodeSessionUnknownAction,
		CodeSessionIndexOutOfRange,
		CodeSessionRequiredStat,
		CodeSessionEmptyToken:
		return http.StatusBadRequest

	case CodePayloadTooLarge:
		return http.StatusRequestEntityTooLarge

	case CodeUnsupportedMedia:
		return http.StatusUnsupportedMediaType

	case CodeSessionNotFound:
		return http.StatusNotFound

	default:
		return http.StatusInternalServerError
	}
}
