// Copyright 2023 Converter Systems LLC. All rights reserved.

package uajson

import (
	"fmt"
)

// LocalizedText pairs text and a Locale string.
type LocalizedText struct {
	Text   string
	Locale string
}

// NewLocalizedText constructs a LocalizedText from text and Locale string.
func NewLocalizedText(text, locale string) LocalizedText {
	return LocalizedText{text, locale}
}

// NilLocalizedText is the nil value.
var NilLocalizedText = LocalizedText{}

// IsNil returns true if the LocalizedText is nil.
func (a LocalizedText) IsNil() bool {
	return len(a.Text) == 0 && len(a.Locale) == 0
}

// String returns the string representation, e.g. "text (locale)"
func (a LocalizedText) String() string {
	return fmt.Sprintf("%s (%s)", a.Text, a.Locale)
}
