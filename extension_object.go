// Copyright 2023 Converter Systems LLC. All rights reserved.

package uajson

// ExtensionObjectEncoding is the encoding of the ExtensionObject body.
type ExtensionObjectEncoding int32

// ExtensionObjectEncodings. The values match the Encoding member of the
// JSON wire form: a structured body is implicit (no Encoding member),
// a base64 byte string body carries 1, an XML body carries 2.
const (
	ExtensionObjectEncodingNone       ExtensionObjectEncoding = 0
	ExtensionObjectEncodingByteString ExtensionObjectEncoding = 1
	ExtensionObjectEncodingXMLElement ExtensionObjectEncoding = 2
)

// ExtensionObject stores a structured value together with its type id.
// The body is a structure, a ByteString holding the binary-encoded
// structure, or an XMLElement holding the xml-encoded structure.
type ExtensionObject struct {
	typeID   ExpandedNodeID
	encoding ExtensionObjectEncoding
	body     interface{}
}

// NewExtensionObjectStructure returns a new ExtensionObject with a
// structured body.
func NewExtensionObjectStructure(body interface{}, typeID ExpandedNodeID) *ExtensionObject {
	return &ExtensionObject{typeID, ExtensionObjectEncodingNone, body}
}

// NewExtensionObjectByteString returns a new ExtensionObject with a
// binary-encoded body.
func NewExtensionObjectByteString(body ByteString, typeID ExpandedNodeID) *ExtensionObject {
	return &ExtensionObject{typeID, ExtensionObjectEncodingByteString, body}
}

// NewExtensionObjectXMLElement returns a new ExtensionObject with an
// xml-encoded body.
func NewExtensionObjectXMLElement(body XMLElement, typeID ExpandedNodeID) *ExtensionObject {
	return &ExtensionObject{typeID, ExtensionObjectEncodingXMLElement, body}
}

// NilExtensionObject is the nil value.
var NilExtensionObject = ExtensionObject{}

// TypeID returns the type id of the body.
func (e *ExtensionObject) TypeID() ExpandedNodeID {
	return e.typeID
}

// Encoding returns the encoding of the body.
func (e *ExtensionObject) Encoding() ExtensionObjectEncoding {
	return e.encoding
}

// Body returns the body.
func (e *ExtensionObject) Body() interface{} {
	return e.body
}

// IsNil returns true if the ExtensionObject is nil.
func (e *ExtensionObject) IsNil() bool {
	return e == nil || e.body == nil
}
