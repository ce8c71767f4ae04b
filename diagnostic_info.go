// Copyright 2023 Converter Systems LLC. All rights reserved.

package uajson

// DiagnosticInfo holds additional info regarding errors in service calls.
// The int32 fields index into the string table carried by the response
// header; -1 marks an absent entry.
type DiagnosticInfo struct {
	symbolicID          int32
	namespaceURI        int32
	locale              int32
	localizedText       int32
	additionalInfo      string
	innerStatusCode     StatusCode
	innerDiagnosticInfo *DiagnosticInfo
}

// NewDiagnosticInfo constructs a new DiagnosticInfo.
func NewDiagnosticInfo(symbolicID int32, namespaceURI int32, locale int32, localizedText int32, additionalInfo string, innerStatusCode StatusCode, innerDiagnosticInfo *DiagnosticInfo) *DiagnosticInfo {
	return &DiagnosticInfo{symbolicID, namespaceURI, locale, localizedText, additionalInfo, innerStatusCode, innerDiagnosticInfo}
}

// SymbolicID returns the index of the SymbolicID, or -1.
func (info *DiagnosticInfo) SymbolicID() int32 {
	return info.symbolicID
}

// NamespaceURI returns the index of the NamespaceURI, or -1.
func (info *DiagnosticInfo) NamespaceURI() int32 {
	return info.namespaceURI
}

// Locale returns the index of the Locale, or -1.
func (info *DiagnosticInfo) Locale() int32 {
	return info.locale
}

// LocalizedText returns the index of the LocalizedText, or -1.
func (info *DiagnosticInfo) LocalizedText() int32 {
	return info.localizedText
}

// AdditionalInfo returns the AdditionalInfo.
func (info *DiagnosticInfo) AdditionalInfo() string {
	return info.additionalInfo
}

// InnerStatusCode returns the InnerStatusCode.
func (info *DiagnosticInfo) InnerStatusCode() StatusCode {
	return info.innerStatusCode
}

// InnerDiagnosticInfo returns the InnerDiagnosticInfo.
func (info *DiagnosticInfo) InnerDiagnosticInfo() *DiagnosticInfo {
	return info.innerDiagnosticInfo
}

// NilDiagnosticInfo is the nil value.
var NilDiagnosticInfo = DiagnosticInfo{symbolicID: -1, namespaceURI: -1, locale: -1, localizedText: -1}
