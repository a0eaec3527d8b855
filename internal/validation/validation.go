package validation

import "strings"

type Violations map[string]string

func (v Violations) Empty() bool { return len(v) == 0 }

// Basic validators
func Required(field, value string, v Violations) {
	if strings.TrimSpace(value) == "" {
		v[field] = "required"
	}
}

func RequiredInt(field string, value int, v Violations) {
	if value == 0 {
		v[field] = "required"
	}
}

// NonNegative flags negative optional amounts/areas. Nil means unspecified
// and is always accepted (null policy: nil ≠ 0).
func NonNegative(field string, val *float64, v Violations) {
	if val != nil && *val < 0 {
		v[field] = "must_be_positive"
	}
}

func NonNegativeInt(field string, val *int, v Violations) {
	if val != nil && *val < 0 {
		v[field] = "must_be_positive"
	}
}
