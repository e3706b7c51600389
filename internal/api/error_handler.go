package api

import (
	"errors"
	"net/http"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bandsite/cms-api/internal/api/handler"
	"github.com/bandsite/cms-api/internal/api/metrics"
	"github.com/bandsite/cms-api/internal/api/response"
	"github.com/bandsite/cms-api/internal/core/domain"
)

const (
	codeDocumentValidation = 121

	msgInvalidRequest  = "Ungültige Anfrage"
	msgPayloadTooLarge = "Anfrage zu groß"
	msgNotFound        = "Ressource nicht gefunden"
)

// dupKeyField matches "index: email_1" and "dup key: { email:" in duplicate
// key messages.
var dupKeyField = regexp.MustCompile(`index: (\w+?)_-?1|dup key: \{ ?"?(\w+)"?:`)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Translates every error through Normalize.
//   - Logs server errors with their cause, client errors at debug level.
//   - Renders the envelope, with the cause chain of server errors in development only.
func NewHTTPErrorHandler(log zerolog.Logger, development bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		appErr := Normalize(err)
		status := appErr.HTTPStatus()
		metrics.ErrorsTotal.WithLabelValues(appErr.Kind.String()).Inc()

		evt := log.Debug()
		if status >= http.StatusInternalServerError {
			evt = log.Error()
		}
		evt.Err(err).
			Str("kind", appErr.Kind.String()).
			Int("status", status).
			Str("method", c.Request().Method).
			Str("path", c.Request().URL.Path).
			Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
			Msg("request failed")

		body := response.Failure(appErr)
		if development && appErr.Kind == domain.KindServerError {
			body.Stack = causeChain(err)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = c.JSON(status, body)
		}
		if err != nil {
			log.Error().Err(err).Msg("write error response")
		}
	}
}

// causeChain lists err and every error it wraps, outermost first.
func causeChain(err error) string {
	var b strings.Builder
	for depth := 0; err != nil; depth++ {
		if depth > 0 {
			b.WriteString("\ncaused by: ")
		}
		b.WriteString(err.Error())
		err = errors.Unwrap(err)
	}
	return b.String()
}

// Normalize classifies any error into a *domain.Error. The match is total:
// whatever is not recognized becomes a server error wrapping err.
func Normalize(err error) *domain.Error {
	if err == nil {
		return domain.ServerError(errors.New("nil error"))
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		return domain.ValidationFailed(handler.FieldIssues(ve))
	}

	var appErr *domain.Error
	if errors.As(err, &appErr) {
		return appErr
	}

	if mongo.IsDuplicateKeyError(err) {
		return domain.Conflict(duplicateField(err))
	}

	if issues, ok := documentValidation(err); ok {
		return domain.StorageValidationFailed(issues, err)
	}

	if errors.Is(err, primitive.ErrInvalidHex) {
		return domain.BadRequest(domain.MsgInvalidID)
	}

	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return domain.ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenMalformed),
		errors.Is(err, jwt.ErrTokenSignatureInvalid),
		errors.Is(err, jwt.ErrTokenUnverifiable),
		errors.Is(err, jwt.ErrTokenInvalidClaims),
		errors.Is(err, jwt.ErrTokenNotValidYet):
		return domain.ErrTokenInvalid
	}

	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.NotFound(msgNotFound)
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		return fromHTTPError(he)
	}

	return domain.ServerError(err)
}

func fromHTTPError(he *echo.HTTPError) *domain.Error {
	switch he.Code {
	case http.StatusNotFound, http.StatusMethodNotAllowed:
		return domain.NotFound(domain.MsgRouteNotFound)
	case http.StatusUnauthorized:
		return domain.Unauthorized(domain.MsgUnauthorized)
	case http.StatusForbidden:
		return domain.Forbidden(domain.MsgForbidden)
	case http.StatusRequestEntityTooLarge:
		return domain.BadRequest(msgPayloadTooLarge)
	case http.StatusTooManyRequests:
		return domain.TooManyRequests()
	case http.StatusUnprocessableEntity:
		return domain.ValidationFailed(nil)
	}
	if he.Code >= 400 && he.Code < 500 {
		return domain.BadRequest(msgInvalidRequest)
	}
	return domain.ServerError(he)
}

// duplicateField names the field behind a duplicate key error. The server's
// keyValue document is preferred, the message is the fallback.
func duplicateField(err error) string {
	var we mongo.WriteException
	if errors.As(err, &we) {
		for _, e := range we.WriteErrors {
			if field, ok := firstKey(e.Raw, "keyValue"); ok {
				return field
			}
		}
	}

	if m := dupKeyField.FindStringSubmatch(err.Error()); m != nil {
		if m[1] != "" {
			return m[1]
		}
		return m[2]
	}
	return "Eintrag"
}

func firstKey(raw bson.Raw, key string) (string, bool) {
	if len(raw) == 0 {
		return "", false
	}
	val, err := raw.LookupErr(key)
	if err != nil {
		return "", false
	}
	doc, ok := val.DocumentOK()
	if !ok {
		return "", false
	}
	elems, err := doc.Elements()
	if err != nil || len(elems) == 0 {
		return "", false
	}
	return elems[0].Key(), true
}

// documentValidation reports a $jsonSchema rejection and lists the
// properties the server named in its errInfo.
func documentValidation(err error) ([]domain.FieldIssue, bool) {
	var se mongo.ServerError
	if !errors.As(err, &se) || !se.HasErrorCode(codeDocumentValidation) {
		return nil, false
	}

	var issues []domain.FieldIssue
	var we mongo.WriteException
	if errors.As(err, &we) {
		for _, e := range we.WriteErrors {
			issues = append(issues, schemaIssues(e.Details)...)
		}
	}
	if len(issues) == 0 {
		issues = []domain.FieldIssue{{Field: "document", Message: "Dokument entspricht nicht dem Schema"}}
	}
	return issues, true
}

func schemaIssues(details bson.Raw) []domain.FieldIssue {
	if len(details) == 0 {
		return nil
	}
	rules, err := details.LookupErr("schemaRulesNotSatisfied")
	if err != nil {
		return nil
	}
	ruleArr, ok := rules.ArrayOK()
	if !ok {
		return nil
	}
	ruleVals, err := ruleArr.Values()
	if err != nil {
		return nil
	}

	var issues []domain.FieldIssue
	for _, rule := range ruleVals {
		ruleDoc, ok := rule.DocumentOK()
		if !ok {
			continue
		}
		props, err := ruleDoc.LookupErr("propertiesNotSatisfied")
		if err != nil {
			continue
		}
		propArr, ok := props.ArrayOK()
		if !ok {
			continue
		}
		propVals, err := propArr.Values()
		if err != nil {
			continue
		}
		for _, p := range propVals {
			pd, ok := p.DocumentOK()
			if !ok {
				continue
			}
			name, ok := pd.Lookup("propertyName").StringValueOK()
			if !ok {
				continue
			}
			issues = append(issues, domain.FieldIssue{Field: name, Message: name + " ist ungültig"})
		}
	}
	return issues
}
