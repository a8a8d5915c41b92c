package i18n

// Error codes as strings, mirrored from the errors package to avoid an import cycle.
const (
	CodeUnknown                = "UNKNOWN"
	CodeInvalidRequest         = "INVALID_REQUEST"
	CodePayloadTooLarge        = "PAYLOAD_TOO_LARGE"
	CodeUnsupportedMedia       = "UNSUPPORTED_MEDIA_TYPE"
	CodeInvalidStat            = "INVALID_STAT"
	CodeInvalidDamage          = "INVALID_DAMAGE_RANGE"
	CodeUnknownStat            = "UNKNOWN_STAT"
	CodeUnknownCombatType      = "UNKNOWN_COMBAT_TYPE"
	CodeUnknownDirection       = "UNKNOWN_DIRECTION"
	CodeUnknownMetric          = "UNKNOWN_METRIC"
	CodeUnknownLimiter         = "UNKNOWN_SPEED_LIMITER"
	CodeInvalidRange           = "INVALID_RANGE"
	CodeMalformedToken         = "MALFORMED_TOKEN"
	CodeImportEmpty            = "IMPORT_EMPTY"
	CodeImportUnknownKind      = "IMPORT_UNKNOWN_KIND"
	CodeSessionUnknownAction   = "SESSION_UNKNOWN_ACTION"
	CodeSessionIndexOutOfRange = "SESSION_INDEX_OUT_OF_RANGE"
	CodeSessionRequiredStat    = "SESSION_REQUIRED_STAT"
	CodeSessionEmptyToken      = "SESSION_EMPTY_TOKEN"
	CodeSessionNotFound        = "SESSION_NOT_FOUND"
)

var enUSCatalog = &Catalog{
	locale: BaseLocale,
	messages: map[Code]string{
		CodeUnknown: "Something went wrong",

		// Request errors
		CodeInvalidRequest:   "The request could not be read",
		CodePayloadTooLarge:  "The request is too large",
		CodeUnsupportedMedia: "Requests must be sent as JSON",

		// Calculator errors
		CodeInvalidStat:       "{{.Stat}} must be a non-negative number",
		CodeInvalidDamage:     "Minimum damage cannot exceed maximum damage",
		CodeUnknownStat:       "Unknown stat",
		CodeUnknownCombatType: "Unknown combat type",
		CodeUnknownDirection:  "Unknown attack direction",
		CodeUnknownMetric:     "Unknown chart metric",
		CodeUnknownLimiter:    "Unknown speed limiter",
		CodeInvalidRange:      "The chart range cannot be sampled",

		// Share errors
		CodeMalformedToken: "This share link is invalid or corrupted",

		// Import errors
		CodeImportEmpty:       "Paste the stat sheet text to import",
		CodeImportUnknownKind: "Imports must be a build or an enemy",

		// Session errors
		CodeSessionUnknownAction:   "Unknown session action",
		CodeSessionIndexOutOfRange: "There is no record at that position",
		CodeSessionRequiredStat:    "This stat cannot be cleared",
		CodeSessionEmptyToken:      "A saved session needs a share token",
		CodeSessionNotFound:        "Saved session not found",
	},
}
