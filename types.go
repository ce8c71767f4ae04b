// Copyright 2023 Converter Systems LLC. All rights reserved.

package uajson

import (
	"io"
	"reflect"
	"sync"
)

// Encodable is implemented by structures that encode themselves.
// Structures without the method are encoded by reflection over their
// exported fields.
type Encodable interface {
	EncodeJSON(enc *JSONEncoder) error
}

// Decodable is implemented by structures that decode themselves.
type Decodable interface {
	DecodeJSON(dec *JSONDecoder) error
}

// BodyDecoder decodes a structure from an ExtensionObject body that was
// produced by another encoding. The binary and xml codecs satisfy it.
type BodyDecoder interface {
	Decode(value interface{}) error
}

// BinaryDecoderFactory constructs a decoder for ExtensionObject bodies
// carrying the binary encoding.
type BinaryDecoderFactory func(r io.Reader, ec EncodingContext, keepSourceOpen bool) (BodyDecoder, error)

// XMLDecoderFactory constructs a decoder for ExtensionObject bodies
// carrying the xml encoding.
type XMLDecoderFactory func(ec EncodingContext, body XMLElement) (BodyDecoder, error)

var (
	typeToIDMap sync.Map
	idToTypeMap sync.Map
)

// RegisterBinaryEncodingID registers the type of a structure and its
// binary encoding id.
func RegisterBinaryEncodingID(typ reflect.Type, id ExpandedNodeID) {
	typeToIDMap.Store(typ, id)
	idToTypeMap.Store(id, typ)
}

// findBinaryEncodingIDForType returns the binary encoding id of a
// registered structure type.
func findBinaryEncodingIDForType(typ reflect.Type) (ExpandedNodeID, bool) {
	if id, ok := typeToIDMap.Load(typ); ok {
		return id.(ExpandedNodeID), true
	}
	return NilExpandedNodeID, false
}

// findTypeForBinaryEncodingID returns the registered structure type for
// a binary encoding id.
func findTypeForBinaryEncodingID(id ExpandedNodeID) (reflect.Type, bool) {
	if typ, ok := idToTypeMap.Load(id); ok {
		return typ.(reflect.Type), true
	}
	return nil, false
}

var enumToNamesMap sync.Map

// RegisterEnumValues registers the symbolic names of an enumeration
// type, used by the non-reversible "Name_Value" form.
func RegisterEnumValues(typ reflect.Type, names map[int32]string) {
	enumToNamesMap.Store(typ, names)
}

// findEnumName returns the symbolic name of an enumerant.
func findEnumName(typ reflect.Type, value int32) (string, bool) {
	if names, ok := enumToNamesMap.Load(typ); ok {
		name, ok := names.(map[int32]string)[value]
		return name, ok
	}
	return "", false
}
