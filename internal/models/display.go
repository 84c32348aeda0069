package models

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// displayName returns the human readable name of an enum value.
//
// Values listed in overrides use the name given there, all others are
// title-cased with underscores replaced by spaces.
func displayName(value string, overrides map[string]string) string {
	if name, ok := overrides[value]; ok {
		return name
	}

	return titleCaser.String(strings.ReplaceAll(value, "_", " "))
}
