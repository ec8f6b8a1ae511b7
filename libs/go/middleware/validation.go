package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/chokka/chokka-api/libs/go/helpers"
	"github.com/chokka/chokka-api/libs/go/types/api/responses"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ValidationRule defines a single validation rule
type ValidationRule struct {
	Field         string                  // Field name to validate
	Required      bool                    // Whether the field is required
	Type          string                  // string, integer, number, decimal, boolean, date, phone, email, url, array, object
	MinLength     int                     // Minimum length for strings and arrays
	MaxLength     int                     // Maximum length for strings and arrays
	Pattern       *regexp.Regexp          // Pattern strings must match
	Min           *float64                // Minimum value for numbers
	Max           *float64                // Maximum value for numbers
	AllowedValues []string                // List of allowed values (case-insensitive)
	Sanitize      bool                    // Trim whitespace and strip NUL bytes
	Custom        func(interface{}) error // Custom validation function
}

// ValidationConfig holds validation rules for an endpoint
type ValidationConfig struct {
	Rules              []ValidationRule
	MaxBodySize        int64 // Maximum request body size in bytes
	AllowUnknownFields bool  // Whether to allow fields not in rules
}

// Common regex patterns
var (
	EmailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	URLRegex   = regexp.MustCompile(`^https?://[^\s/$.?#].[^\s]*$`)
	CodeRegex  = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
)

// ValidationError is one rejected field
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrorResponse is the 400 body written by the validators
type ValidationErrorResponse struct {
	responses.ErrorResponse
	Errors []ValidationError `json:"errors"`
}

// ValidateInput creates a validation middleware with the given configuration
func ValidateInput(config ValidationConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if config.MaxBodySize > 0 && c.Request.ContentLength > config.MaxBodySize {
			abortValidation(c, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("Request body too large. Maximum size: %d bytes", config.MaxBodySize), nil)
			return
		}

		raw, err := readBody(c.Request, config.MaxBodySize)
		if err != nil {
			abortValidation(c, http.StatusRequestEntityTooLarge, err.Error(), nil)
			return
		}

		var body map[string]interface{}
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.UseNumber()
		if err := dec.Decode(&body); err != nil || body == nil {
			abortValidation(c, http.StatusBadRequest, "Invalid JSON in request body", nil)
			return
		}

		if errs := validateFields(body, config.Rules, config.AllowUnknownFields); len(errs) > 0 {
			LogWithCorrelationID(c.Request.Context()).Debug("Request validation failed",
				zap.String("path", c.Request.URL.Path),
				zap.Any("errors", errs))
			abortValidation(c, http.StatusBadRequest, summarize(errs), errs)
			return
		}

		// Handlers bind from the sanitized body
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			abortValidation(c, http.StatusBadRequest, "Invalid JSON in request body", nil)
			return
		}
		c.Set("validatedBody", body)
		c.Request.Body = NewBodyReader(bodyBytes)
		c.Request.ContentLength = int64(len(bodyBytes))

		c.Next()
	}
}

// ValidateQueryParams creates validation for URL query parameters. Values
// stay strings; integer and number rules parse them.
func ValidateQueryParams(config ValidationConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		params := make(map[string]interface{})
		for key, values := range c.Request.URL.Query() {
			if len(values) > 0 {
				params[key] = queryValue(values[0])
			}
		}

		if errs := validateFields(params, config.Rules, config.AllowUnknownFields); len(errs) > 0 {
			LogWithCorrelationID(c.Request.Context()).Debug("Query validation failed",
				zap.String("path", c.Request.URL.Path),
				zap.Any("errors", errs))
			abortValidation(c, http.StatusBadRequest, summarize(errs), errs)
			return
		}

		c.Set("validatedQuery", params)
		c.Next()
	}
}

func queryValue(v string) interface{} {
	if _, err := decimal.NewFromString(v); err == nil {
		return json.Number(v)
	}
	return v
}

func readBody(r *http.Request, limit int64) ([]byte, error) {
	if r.Body == nil {
		return nil, nil
	}
	defer r.Body.Close()
	if limit <= 0 {
		return io.ReadAll(r.Body)
	}
	raw, err := io.ReadAll(io.LimitReader(r.Body, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(raw)) > limit {
		return nil, fmt.Errorf("Request body too large. Maximum size: %d bytes", limit)
	}
	return raw, nil
}

func abortValidation(c *gin.Context, status int, msg string, errs []ValidationError) {
	c.AbortWithStatusJSON(status, ValidationErrorResponse{
		ErrorResponse: responses.ErrorResponse{
			Success:       false,
			Error:         msg,
			CorrelationID: GetCorrelationID(c),
		},
		Errors: errs,
	})
}

func summarize(errs []ValidationError) string {
	if len(errs) == 1 {
		return fmt.Sprintf("%s: %s", errs[0].Field, errs[0].Message)
	}
	return fmt.Sprintf("%d invalid fields", len(errs))
}

// validateFields validates the fields according to the rules
func validateFields(data map[string]interface{}, rules []ValidationRule, allowUnknown bool) []ValidationError {
	var errs []ValidationError
	known := make(map[string]bool, len(rules))

	add := func(field string, err error) {
		errs = append(errs, ValidationError{Field: field, Message: err.Error()})
	}

	for _, rule := range rules {
		known[rule.Field] = true
		value, exists := data[rule.Field]

		if rule.Sanitize {
			if s, ok := value.(string); ok {
				value = sanitizeString(s)
				data[rule.Field] = value
			}
		}

		if rule.Required && isEmpty(value) {
			errs = append(errs, ValidationError{
				Field:   rule.Field,
				Message: fmt.Sprintf("%s is required", rule.Field),
			})
			continue
		}

		if !exists || value == nil {
			continue
		}
		// Optional blank strings are treated as absent
		if s, ok := value.(string); ok && s == "" && !rule.Required {
			continue
		}

		var err error
		switch rule.Type {
		case "string":
			err = validateString(value, rule)
		case "integer", "int":
			err = validateNumber(value, rule, true)
		case "number", "float", "decimal":
			err = validateNumber(value, rule, false)
		case "boolean", "bool":
			if _, ok := value.(bool); !ok {
				err = fmt.Errorf("must be a boolean")
			}
		case "date":
			err = validateDate(value)
		case "phone":
			err = validatePhone(value)
		case "email":
			err = validatePattern(value, EmailRegex, "must be a valid email address")
		case "url":
			err = validatePattern(value, URLRegex, "must be a valid URL")
		case "array":
			err = validateArray(value, rule)
		case "object":
			if _, ok := value.(map[string]interface{}); !ok {
				err = fmt.Errorf("must be an object")
			}
		}
		if err != nil {
			add(rule.Field, err)
			continue
		}

		if rule.Custom != nil {
			if err := rule.Custom(value); err != nil {
				add(rule.Field, err)
			}
		}
	}

	if !allowUnknown {
		for field := range data {
			if !known[field] {
				errs = append(errs, ValidationError{Field: field, Message: "unknown field"})
			}
		}
	}

	return errs
}

func isEmpty(value interface{}) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	}
	return false
}

// String validation
func validateString(value interface{}, rule ValidationRule) error {
	str, ok := value.(string)
	if !ok {
		return fmt.Errorf("must be a string")
	}

	length := utf8.RuneCountInString(str)
	if rule.MinLength > 0 && length < rule.MinLength {
		return fmt.Errorf("must be at least %d characters long", rule.MinLength)
	}
	if rule.MaxLength > 0 && length > rule.MaxLength {
		return fmt.Errorf("must be at most %d characters long", rule.MaxLength)
	}

	if rule.Pattern != nil && !rule.Pattern.MatchString(str) {
		return fmt.Errorf("invalid format")
	}

	if len(rule.AllowedValues) > 0 {
		for _, v := range rule.AllowedValues {
			if strings.EqualFold(str, v) {
				return nil
			}
		}
		return fmt.Errorf("must be one of: %s", strings.Join(rule.AllowedValues, ", "))
	}

	return nil
}

// Number validation. Amounts may arrive as JSON numbers or numeric strings.
func validateNumber(value interface{}, rule ValidationRule, integer bool) error {
	var d decimal.Decimal
	var err error
	switch v := value.(type) {
	case json.Number:
		d, err = decimal.NewFromString(v.String())
	case string:
		if integer {
			return fmt.Errorf("must be an integer")
		}
		d, err = decimal.NewFromString(strings.TrimSpace(v))
	case float64:
		d = decimal.NewFromFloat(v)
	case int:
		d = decimal.NewFromInt(int64(v))
	case int64:
		d = decimal.NewFromInt(v)
	default:
		return fmt.Errorf("must be a number")
	}
	if err != nil {
		return fmt.Errorf("must be a number")
	}
	if integer && !d.IsInteger() {
		return fmt.Errorf("must be an integer")
	}

	if rule.Min != nil && d.LessThan(decimal.NewFromFloat(*rule.Min)) {
		return fmt.Errorf("must be at least %v", *rule.Min)
	}
	if rule.Max != nil && d.GreaterThan(decimal.NewFromFloat(*rule.Max)) {
		return fmt.Errorf("must be at most %v", *rule.Max)
	}

	return nil
}

func validateDate(value interface{}) error {
	str, ok := value.(string)
	if !ok {
		return fmt.Errorf("must be a string")
	}
	if _, err := time.Parse(time.DateOnly, str); err != nil {
		return fmt.Errorf("must be a date in YYYY-MM-DD format")
	}
	return nil
}

func validatePhone(value interface{}) error {
	str, ok := value.(string)
	if !ok {
		return fmt.Errorf("must be a string")
	}
	if !helpers.IsValidBDPhone(str) {
		return fmt.Errorf("must be a valid Bangladeshi mobile number")
	}
	return nil
}

func validatePattern(value interface{}, re *regexp.Regexp, msg string) error {
	str, ok := value.(string)
	if !ok {
		return fmt.Errorf("must be a string")
	}
	if !re.MatchString(str) {
		return fmt.Errorf("%s", msg)
	}
	return nil
}

func validateArray(value interface{}, rule ValidationRule) error {
	arr, ok := value.([]interface{})
	if !ok {
		return fmt.Errorf("must be an array")
	}
	if rule.MinLength > 0 && len(arr) < rule.MinLength {
		return fmt.Errorf("must contain at least %d items", rule.MinLength)
	}
	if rule.MaxLength > 0 && len(arr) > rule.MaxLength {
		return fmt.Errorf("must contain at most %d items", rule.MaxLength)
	}
	return nil
}

// sanitizeString strips NUL bytes and surrounding whitespace. Values are
// stored verbatim; escaping happens where they are rendered.
func sanitizeString(input string) string {
	input = strings.ReplaceAll(input, "\x00", "")
	return strings.TrimSpace(input)
}

func float64Ptr(f float64) *float64 {
	return &f
}
