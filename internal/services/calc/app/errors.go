package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	combat "github.com/louisbranch/tnl-dmg-calc/internal/combat/domain"
	"github.com/louisbranch/tnl-dmg-calc/internal/importer/statsheet"
	apperrors "github.com/louisbranch/tnl-dmg-calc/internal/platform/errors"
	"github.com/louisbranch/tnl-dmg-calc/internal/platform/errors/i18n"
	"github.com/louisbranch/tnl-dmg-calc/internal/platform/requestctx"
	session "github.com/louisbranch/tnl-dmg-calc/internal/session/domain"
	"github.com/louisbranch/tnl-dmg-calc/internal/session/share"
	"github.com/louisbranch/tnl-dmg-calc/internal/storage/cursor"
)

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

var sentinelCodes = []struct {
	err  error
	code apperrors.Code
}{
	{combat.ErrNegativeStat, apperrors.CodeInvalidStat},
	{combat.ErrInvalidDamageRange, apperrors.CodeInvalidDamage},
	{combat.ErrUnknownStat, apperrors.CodeUnknownStat},
	{combat.ErrUnknownCombatType, apperrors.CodeUnknownCombatType},
	{combat.ErrUnknownDirection, apperrors.CodeUnknownDirection},
	{combat.ErrUnknownMetric, apperrors.CodeUnknownMetric},
	{combat.ErrUnknownSpeedLimiter, apperrors.CodeUnknownLimiter},
	{combat.ErrInvalidRange, apperrors.CodeInvalidRange},
	{share.ErrMalformedToken, apperrors.CodeMalformedToken},
	{statsheet.ErrEmptyText, apperrors.CodeImportEmpty},
	{statsheet.ErrUnknownKind, apperrors.CodeImportUnknownKind},
	{session.ErrUnknownAction, apperrors.CodeSessionUnknownAction},
	{session.ErrIndexOutOfRange, apperrors.CodeSessionIndexOutOfRange},
	{session.ErrRequiredStat, apperrors.CodeSessionRequiredStat},
	{session.ErrUnresolvedToken, apperrors.CodeInvalidRequest},
	{session.ErrInvalidPayload, apperrors.CodeInvalidRequest},
	{session.ErrEmptyToken, apperrors.CodeSessionEmptyToken},
	{session.ErrSessionNotFound, apperrors.CodeSessionNotFound},
	{cursor.ErrInvalidToken, apperrors.CodeInvalidRequest},
}

// classify maps an error from the domain packages to a structured error.
func classify(err error) *apperrors.Error {
	var domainErr *apperrors.Error
	if errors.As(err, &domainErr) {
		return domainErr
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return apperrors.Wrap(apperrors.CodePayloadTooLarge, err.Error(), err)
	}

	for _, s := range sentinelCodes {
		if !errors.Is(err, s.err) {
			continue
		}
		var statErr *combat.StatError
		if errors.As(err, &statErr) {
			return apperrors.WrapWithMetadata(s.code, err.Error(), map[string]string{"Stat": string(statErr.Stat)}, err)
		}
		return apperrors.Wrap(s.code, err.Error(), err)
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return apperrors.Wrap(apperrors.CodeInvalidRequest, err.Error(), err)
	}
	return apperrors.Wrap(apperrors.CodeUnknown, err.Error(), err)
}

// localize renders err as the wire error body in the catalog's language.
func localize(err error, catalog *i18n.Catalog) (int, errorEnvelope) {
	domainErr := classify(err)
	return domainErr.HTTPStatus(), errorEnvelope{Error: errorBody{
		Code:    string(domainErr.Code),
		Message: catalog.Format(string(domainErr.Code), domainErr.Metadata),
	}}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, body := localize(err, catalogFor(r))
	if status >= http.StatusInternalServerError {
		log.Printf("calc: %s %s [%s]: %v", r.Method, r.URL.Path, requestctx.RequestIDFromContext(r.Context()), err)
	}
	writeJSON(w, status, body)
}

func catalogFor(r *http.Request) *i18n.Catalog {
	return i18n.ForAcceptLanguage(r.Header.Get("Accept-Language"))
}

func invalidRequest(message string) error {
	return apperrors.New(apperrors.CodeInvalidRequest, message)
}
