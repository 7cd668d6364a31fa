package http

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/conf"
	"github.com/Oudwins/zog/zhttp"
)

const (
	msgIDMismatch  = "URL and body id mismatch"
	msgInvalidPath = "id must be a positive integer"
	msgInvalidBody = "body must be a JSON object"
)

// ValidationError carries one message per violated field.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, ", ")
}

func newValidationError(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}

// fieldMessages maps a lowercased field name to the message reported when
// any of its constraints fail.
type fieldMessages map[string]string

func (m fieldMessages) with(field, message string) fieldMessages {
	out := maps.Clone(m)
	out[field] = message
	return out
}

var recordMessages = fieldMessages{
	"id":   "id must be an integer",
	"user": "user must be an integer",
	"date": "date must be an ISO-8601 timestamp",
}

var (
	temperatureMessages = recordMessages.with("value", "value must be a number")
	switchMessages      = recordMessages.with("value", "value must be a boolean")
	lightMessages       = recordMessages.with("value", "value must be an integer")
)

// issuesToError collapses zog issues into a ValidationError, sorted by field.
// Issues not bound to a field only count when no field failed.
func issuesToError(issues z.ZogIssueMap, messages fieldMessages) *ValidationError {
	if len(issues) == 0 {
		return nil
	}

	byField := map[string]string{}
	rootIssue := false
	for key, list := range issues {
		if len(list) == 0 {
			continue
		}
		if strings.HasPrefix(key, "$") {
			rootIssue = true
			continue
		}

		field := strings.ToLower(key)
		if msg, ok := messages[field]; ok {
			byField[field] = msg
		} else {
			byField[field] = field + " is invalid"
		}
	}
	if len(byField) == 0 {
		if !rootIssue {
			return nil
		}
		return newValidationError(msgInvalidBody)
	}

	out := make([]string, 0, len(byField))
	for _, field := range slices.Sorted(maps.Keys(byField)) {
		out = append(out, byField[field])
	}
	return newValidationError(out...)
}

// recordRequest is the body accepted by create and update. User is read and
// ignored, the owner always comes from the session.
type recordRequest[V any] struct {
	ID    int       `zog:"id"`
	User  int       `zog:"user"`
	Value *V        `zog:"value"`
	Date  time.Time `zog:"date"`
}

// coerceWholeInt is conf.Coercers.Int minus its truncation of fractional
// JSON numbers.
func coerceWholeInt(data any) (any, error) {
	switch v := data.(type) {
	case float64:
		if v != math.Trunc(v) {
			return nil, fmt.Errorf("%g is not a whole number", v)
		}
	case float32:
		if f := float64(v); f != math.Trunc(f) {
			return nil, fmt.Errorf("%g is not a whole number", f)
		}
	}
	return conf.Coercers.Int(data)
}

func wholeInt() *z.NumberSchema[int] {
	return z.Int(z.WithCoercer(coerceWholeInt))
}

func recordSchema(value z.ZogSchema) *z.StructSchema {
	return z.Struct(z.Shape{
		"ID":    wholeInt(),
		"User":  wholeInt(),
		"Value": z.Ptr(value).NotNil(),
		"Date":  z.Time(),
	})
}

var (
	temperatureSchema = recordSchema(z.Float64())
	switchSchema      = recordSchema(z.Bool())
	lightSchema       = recordSchema(wholeInt())
)

func parseRecordRequest[V any](c *gin.Context, schema *z.StructSchema, messages fieldMessages) (*recordRequest[V], *ValidationError) {
	var req recordRequest[V]
	if issues := schema.Parse(zhttp.Request(c.Request), &req); len(issues) > 0 {
		return &req, issuesToError(issues, messages)
	}
	return &req, nil
}

// checkBodyID enforces that a non-zero body id names the same row as the path.
func checkBodyID(pathID uint, bodyID int) *ValidationError {
	if bodyID != 0 && (bodyID < 0 || uint(bodyID) != pathID) {
		return newValidationError(msgIDMismatch)
	}
	return nil
}

func parsePathID(c *gin.Context) (uint, *ValidationError) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 0)
	if err != nil || id == 0 {
		return 0, newValidationError(msgInvalidPath)
	}
	return uint(id), nil
}

type loginRequest struct {
	Username string `zog:"username"`
	Password string `zog:"password"`
}

var loginSchema = z.Struct(z.Shape{
	"Username": z.String().Trim().Required(),
	"Password": z.String().Required(),
})

var loginMessages = fieldMessages{
	"username": "username is required",
	"password": "password is required",
}

func parseLoginRequest(c *gin.Context) (*loginRequest, *ValidationError) {
	var req loginRequest
	if issues := loginSchema.Parse(zhttp.Request(c.Request), &req); len(issues) > 0 {
		return &req, issuesToError(issues, loginMessages)
	}
	return &req, nil
}

// merge appends the messages of other; either side may be nil.
func (e *ValidationError) merge(other *ValidationError) *ValidationError {
	if other == nil {
		return e
	}
	if e == nil {
		return other
	}
	return newValidationError(append(slices.Clone(e.Messages), other.Messages...)...)
}
