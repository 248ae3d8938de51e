package models

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"
)

// ValidationError is a client-caused payload error. Controllers surface
// it as a 400 with the message as-is.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

// maximum lengths per column, matching the table definition
var fieldLimits = map[string]int{
	"name":        200,
	"description": 500,
	"image":       500,
	"category":    100,
	"color":       50,
}

var optionalTextFields = []string{"description", "image", "category", "color"}

// ValidateCreate checks a raw create payload and returns a column->value
// map ready for the store. name and price are required; everything else
// defaults to the empty string. Unknown keys are ignored.
func ValidateCreate(payload map[string]interface{}) (map[string]interface{}, error) {
	name, hasName := payload["name"]
	price, hasPrice := payload["price"]
	if !hasName || !hasPrice {
		return nil, ValidationError("name and price are required")
	}

	nameStr, ok := name.(string)
	if !ok || strings.TrimSpace(nameStr) == "" {
		return nil, ValidationError("name and price are required")
	}
	if len(nameStr) > fieldLimits["name"] {
		return nil, lengthError("name")
	}

	priceVal, err := coercePrice(price)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{
		"name":  nameStr,
		"price": priceVal,
	}
	for _, key := range optionalTextFields {
		raw, present := payload[key]
		if !present {
			continue
		}
		value, err := coerceText(key, raw)
		if err != nil {
			return nil, err
		}
		fields[key] = value
	}
	return fields, nil
}

// ValidatePartialUpdate checks a raw partial-update payload. Only keys
// present in the payload appear in the result; absent keys leave the
// stored value untouched. Unknown keys are ignored.
func ValidatePartialUpdate(payload map[string]interface{}) (map[string]interface{}, error) {
	fields := map[string]interface{}{}

	if raw, present := payload["name"]; present {
		nameStr, ok := raw.(string)
		if !ok || strings.TrimSpace(nameStr) == "" {
			return nil, ValidationError("name must be a non-empty string")
		}
		if len(nameStr) > fieldLimits["name"] {
			return nil, lengthError("name")
		}
		fields["name"] = nameStr
	}

	if raw, present := payload["price"]; present {
		priceVal, err := coercePrice(raw)
		if err != nil {
			return nil, err
		}
		fields["price"] = priceVal
	}

	for _, key := range optionalTextFields {
		raw, present := payload[key]
		if !present {
			continue
		}
		value, err := coerceText(key, raw)
		if err != nil {
			return nil, err
		}
		fields[key] = value
	}
	return fields, nil
}

// coercePrice accepts JSON numbers and numeric strings. Booleans, null
// and containers are rejected even though cast would convert some of
// them.
func coercePrice(raw interface{}) (float64, error) {
	switch raw.(type) {
	case bool, nil, []interface{}, map[string]interface{}:
		return 0, ValidationError("price must be a number")
	}
	value, err := cast.ToFloat64E(raw)
	if err != nil {
		return 0, ValidationError("price must be a number")
	}
	return value, nil
}

func coerceText(key string, raw interface{}) (string, error) {
	value, ok := raw.(string)
	if !ok {
		return "", ValidationError(fmt.Sprintf("%s must be a string", key))
	}
	if len(value) > fieldLimits[key] {
		return "", lengthError(key)
	}
	return value, nil
}

func lengthError(key string) error {
	return ValidationError(fmt.Sprintf("%s must be at most %d characters", key, fieldLimits[key]))
}
