// Package template holds the building-block sentence templates for report
// recommendations and the interpolation used to fill them.
package template

import (
	"fmt"
	"strings"

	"edarec/domain/core"
)

// Template keys, one per violation kind
const (
	HighMissing     = "HIGH_MISSING"
	HighCardinality = "HIGH_CARDINALITY"
	HighCorrelation = "HIGH_CORRELATION"
	LowPValue       = "LOW_P_VALUE"
)

// registry maps a template key to its sentence with {slot} placeholders
var registry = map[string]string{
	HighMissing:     "{name} has {value} missing values",
	HighCardinality: "{name} has a high cardinality: {value} distinct values",
	HighCorrelation: "{name_one} is highly correlated with {name_two} ({metric} = {value})",
	LowPValue:       "{name_one} is correlated with {name_two} ({metric} = {value} from {test_name})",
}

// Params carries the named slot values for one rendering
type Params map[string]string

// Render fills the named template with the given slot values. Slots with no
// matching parameter are left untouched so the omission is visible in output.
func Render(key string, params Params) (string, error) {
	tmpl, ok := registry[key]
	if !ok {
		return "", fmt.Errorf("%w: %s", core.ErrUnknownTemplate, key)
	}
	pairs := make([]string, 0, len(params)*2)
	for slot, value := range params {
		pairs = append(pairs, "{"+slot+"}", value)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl), nil
}

// MustRender renders a template registered at compile time. It panics on an
// unknown key, which can only be a programming error.
func MustRender(key string, params Params) string {
	s, err := Render(key, params)
	if err != nil {
		panic(err)
	}
	return s
}
