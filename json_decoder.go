// Copyright 2023 Converter Systems LLC. All rights reserved.

package uajson

import (
	"bytes"
	"encoding/base64"
	"io"
	"math"
	"reflect"
	"strconv"
	"time"

	"github.com/gammazero/deque"
	uuid "github.com/google/uuid"
	"github.com/valyala/fastjson"
)

// JSONDecoder decodes the reversible UA JSON data encoding from a
// parsed document. Read methods taking a non-empty field name look the
// member up on the element at the top of the navigation stack; a
// missing or null member yields the default value of the type. With an
// empty name the top element itself is read. Members may appear in any
// order.
type JSONDecoder struct {
	r          io.Reader
	ec         EncodingContext
	p          fastjson.Parser
	doc        *fastjson.Value
	stack      deque.Deque[*fastjson.Value]
	binFactory BinaryDecoderFactory
	xmlFactory XMLDecoderFactory
	maxDepth   int
	leaveOpen  bool
	closed     bool
}

func isNilValue(v *fastjson.Value) bool {
	return v == nil || v.Type() == fastjson.TypeNull
}

func (dec *JSONDecoder) top() *fastjson.Value {
	if dec.stack.Len() == 0 {
		return nil
	}
	return dec.stack.Back()
}

func (dec *JSONDecoder) push(v *fastjson.Value) error {
	if dec.stack.Len() >= dec.maxDepth {
		return BadDecodingError
	}
	dec.stack.PushBack(v)
	return nil
}

func (dec *JSONDecoder) pop() {
	dec.stack.PopBack()
}

// named returns the member of the top element, or nil when the member
// is absent or the top element is not an object.
func (dec *JSONDecoder) named(name string) *fastjson.Value {
	t := dec.top()
	if t == nil || t.Type() != fastjson.TypeObject {
		return nil
	}
	return t.Get(name)
}

func (dec *JSONDecoder) checkArrayLength(n int) error {
	if l := dec.ec.MaxArrayLength(); l > 0 && uint32(n) > l {
		return BadEncodingLimitsExceeded
	}
	return nil
}

// ReadResponse decodes the root JSON object into a structured value.
func (dec *JSONDecoder) ReadResponse(value interface{}) error {
	if dec.closed {
		return errDecoderClosed
	}
	return dec.readStructure(value)
}

// ReadRequest decodes the root JSON object into a structured value.
func (dec *JSONDecoder) ReadRequest(value interface{}) error {
	return dec.ReadResponse(value)
}

// PushNamespace exists for interface compatibility with the other
// encodings and does nothing here.
func (dec *JSONDecoder) PushNamespace(uri string) {
}

// PopNamespace exists for interface compatibility with the other
// encodings and does nothing here.
func (dec *JSONDecoder) PopNamespace() {
}

// Close releases the document and closes the source unless the decoder
// was constructed with WithLeaveSourceOpen(true).
func (dec *JSONDecoder) Close() error {
	if dec.closed {
		return nil
	}
	dec.closed = true
	dec.doc = nil
	for dec.stack.Len() > 0 {
		dec.stack.PopBack()
	}
	if !dec.leaveOpen {
		if c, ok := dec.r.(io.Closer); ok {
			if err := c.Close(); err != nil {
				return BadDecodingError
			}
		}
	}
	return nil
}

// ReadBoolean reads a boolean.
func (dec *JSONDecoder) ReadBoolean(name string) (bool, error) {
	if name != "" {
		v := dec.named(name)
		if isNilValue(v) {
			return false, nil
		}
		if err := dec.push(v); err != nil {
			return false, err
		}
		defer dec.pop()
	}
	t := dec.top()
	if t == nil {
		return false, errDecoderClosed
	}
	switch t.Type() {
	case fastjson.TypeNull:
		return false, nil
	case fastjson.TypeTrue:
		return true, nil
	case fastjson.TypeFalse:
		return false, nil
	}
	return false, BadDecodingError
}

// readInt64Range reads an integral number within the given range.
func (dec *JSONDecoder) readInt64Range(name string, min, max int64) (int64, error) {
	if name != "" {
		v := dec.named(name)
		if isNilValue(v) {
			return 0, nil
		}
		if err := dec.push(v); err != nil {
			return 0, err
		}
		defer dec.pop()
	}
	t := dec.top()
	if t == nil {
		return 0, errDecoderClosed
	}
	if t.Type() == fastjson.TypeNull {
		return 0, nil
	}
	i, err := t.Int64()
	if err != nil || i < min || i > max {
		return 0, BadDecodingError
	}
	return i, nil
}

// ReadSByte reads a sbyte.
func (dec *JSONDecoder) ReadSByte(name string) (int8, error) {
	i, err := dec.readInt64Range(name, math.MinInt8, math.MaxInt8)
	return int8(i), err
}

// ReadByte reads a byte.
func (dec *JSONDecoder) ReadByte(name string) (byte, error) {
	i, err := dec.readInt64Range(name, 0, math.MaxUint8)
	return byte(i), err
}

// ReadInt16 reads a int16.
func (dec *JSONDecoder) ReadInt16(name string) (int16, error) {
	i, err := dec.readInt64Range(name, math.MinInt16, math.MaxInt16)
	return int16(i), err
}

// ReadUInt16 reads a uint16.
func (dec *JSONDecoder) ReadUInt16(name string) (uint16, error) {
	i, err := dec.readInt64Range(name, 0, math.MaxUint16)
	return uint16(i), err
}

// ReadInt32 reads a int32.
func (dec *JSONDecoder) ReadInt32(name string) (int32, error) {
	i, err := dec.readInt64Range(name, math.MinInt32, math.MaxInt32)
	return int32(i), err
}

// ReadUInt32 reads a uint32.
func (dec *JSONDecoder) ReadUInt32(name string) (uint32, error) {
	i, err := dec.readInt64Range(name, 0, math.MaxUint32)
	return uint32(i), err
}

// ReadInt64 reads a int64 from either a number or a base-10 string.
func (dec *JSONDecoder) ReadInt64(name string) (int64, error) {
	if name != "" {
		v := dec.named(name)
		if isNilValue(v) {
			return 0, nil
		}
		if err := dec.push(v); err != nil {
			return 0, err
		}
		defer dec.pop()
	}
	t := dec.top()
	if t == nil {
		return 0, errDecoderClosed
	}
	switch t.Type() {
	case fastjson.TypeNull:
		return 0, nil
	case fastjson.TypeNumber:
		i, err := t.Int64()
		if err != nil {
			return 0, BadDecodingError
		}
		return i, nil
	case fastjson.TypeString:
		b, _ := t.StringBytes()
		i, err := strconv.ParseInt(string(b), 10, 64)
		if err != nil {
			return 0, BadDecodingError
		}
		return i, nil
	}
	return 0, BadDecodingError
}

// ReadUInt64 reads a uint64 from either a number or a base-10 string.
func (dec *JSONDecoder) ReadUInt64(name string) (uint64, error) {
	if name != "" {
		v := dec.named(name)
		if isNilValue(v) {
			return 0, nil
		}
		if err := dec.push(v); err != nil {
			return 0, err
		}
		defer dec.pop()
	}
	t := dec.top()
	if t == nil {
		return 0, errDecoderClosed
	}
	switch t.Type() {
	case fastjson.TypeNull:
		return 0, nil
	case fastjson.TypeNumber:
		i, err := t.Uint64()
		if err != nil {
			return 0, BadDecodingError
		}
		return i, nil
	case fastjson.TypeString:
		b, _ := t.StringBytes()
		i, err := strconv.ParseUint(string(b), 10, 64)
		if err != nil {
			return 0, BadDecodingError
		}
		return i, nil
	}
	return 0, BadDecodingError
}

// readFloat reads a float64, accepting the NaN and infinity strings.
func (dec *JSONDecoder) readFloat(name string) (float64, error) {
	if name != "" {
		v := dec.named(name)
		if isNilValue(v) {
			return 0, nil
		}
		if err := dec.push(v); err != nil {
			return 0, err
		}
		defer dec.pop()
	}
	t := dec.top()
	if t == nil {
		return 0, errDecoderClosed
	}
	switch t.Type() {
	case fastjson.TypeNull:
		return 0, nil
	case fastjson.TypeNumber:
		f, err := t.Float64()
		if err != nil {
			return 0, BadDecodingError
		}
		return f, nil
	case fastjson.TypeString:
		switch string(mustStringBytes(t)) {
		case "NaN":
			return math.NaN(), nil
		case "Infinity":
			return math.Inf(1), nil
		case "-Infinity":
			return math.Inf(-1), nil
		}
	}
	return 0, BadDecodingError
}

func mustStringBytes(v *fastjson.Value) []byte {
	b, _ := v.StringBytes()
	return b
}

// ReadFloat reads a float.
func (dec *JSONDecoder) ReadFloat(name string) (float32, error) {
	f, err := dec.readFloat(name)
	return float32(f), err
}

// ReadDouble reads a double.
func (dec *JSONDecoder) ReadDouble(name string) (float64, error) {
	return dec.readFloat(name)
}

// ReadString reads a string.
func (dec *JSONDecoder) ReadString(name string) (string, error) {
	if name != "" {
		v := dec.named(name)
		if isNilValue(v) {
			return "", nil
		}
		if err := dec.push(v); err != nil {
			return "", err
		}
		defer dec.pop()
	}
	t := dec.top()
	if t == nil {
		return "", errDecoderClosed
	}
	if t.Type() == fastjson.TypeNull {
		return "", nil
	}
	if t.Type() != fastjson.TypeString {
		return "", BadDecodingError
	}
	b, _ := t.StringBytes()
	if l := dec.ec.MaxStringLength(); l > 0 && uint32(len(b)) > l {
		return "", BadEncodingLimitsExceeded
	}
	return string(b), nil
}

// ReadDateTime reads a date/time.
func (dec *JSONDecoder) ReadDateTime(name string) (time.Time, error) {
	if name != "" {
		v := dec.named(name)
		if isNilValue(v) {
			return time.Time{}, nil
		}
		if err := dec.push(v); err != nil {
			return time.Time{}, err
		}
		defer dec.pop()
	}
	t := dec.top()
	if t == nil {
		return time.Time{}, errDecoderClosed
	}
	if t.Type() == fastjson.TypeNull {
		return time.Time{}, nil
	}
	if t.Type() != fastjson.TypeString {
		return time.Time{}, BadDecodingError
	}
	v, err := time.Parse(time.RFC3339Nano, string(mustStringBytes(t)))
	if err != nil {
		return time.Time{}, BadDecodingError
	}
	return v.UTC(), nil
}

// ReadGUID reads a UUID.
func (dec *JSONDecoder) ReadGUID(name string) (uuid.UUID, error) {
	if name != "" {
		v := dec.named(name)
		if isNilValue(v) {
			return uuid.Nil, nil
		}
		if err := dec.push(v); err != nil {
			return uuid.Nil, err
		}
		defer dec.pop()
	}
	t := dec.top()
	if t == nil {
		return uuid.Nil, errDecoderClosed
	}
	if t.Type() == fastjson.TypeNull {
		return uuid.Nil, nil
	}
	if t.Type() != fastjson.TypeString {
		return uuid.Nil, BadDecodingError
	}
	v, err := uuid.Parse(string(mustStringBytes(t)))
	if err != nil {
		return uuid.Nil, BadDecodingError
	}
	return v, nil
}

// ReadByteString reads a ByteString from a base64 string.
func (dec *JSONDecoder) ReadByteString(name string) (ByteString, error) {
	if name != "" {
		v := dec.named(name)
		if isNilValue(v) {
			return NilByteString, nil
		}
		if err := dec.push(v); err != nil {
			return NilByteString, err
		}
		defer dec.pop()
	}
	t := dec.top()
	if t == nil {
		return NilByteString, errDecoderClosed
	}
	if t.Type() == fastjson.TypeNull {
		return NilByteString, nil
	}
	if t.Type() != fastjson.TypeString {
		return NilByteString, BadDecodingError
	}
	b, err := base64.StdEncoding.DecodeString(string(mustStringBytes(t)))
	if err != nil {
		return NilByteString, BadDecodingError
	}
	if l := dec.ec.MaxByteStringLength(); l > 0 && uint32(len(b)) > l {
		return NilByteString, BadEncodingLimitsExceeded
	}
	return ByteString(b), nil
}

// ReadXMLElement reads a XmlElement.
func (dec *JSONDecoder) ReadXMLElement(name string) (XMLElement, error) {
	if name != "" {
		v := dec.named(name)
		if isNilValue(v) {
			return NilXMLElement, nil
		}
		if err := dec.push(v); err != nil {
			return NilXMLElement, err
		}
		defer dec.pop()
	}
	t := dec.top()
	if t == nil {
		return NilXMLElement, errDecoderClosed
	}
	if t.Type() == fastjson.TypeNull {
		return NilXMLElement, nil
	}
	if t.Type() != fastjson.TypeString {
		return NilXMLElement, BadDecodingError
	}
	return XMLElement(mustStringBytes(t)), nil
}

// ReadNodeID reads a NodeID.
func (dec *JSONDecoder) ReadNodeID(name string) (NodeID, error) {
	if name != "" {
		v := dec.named(name)
		if isNilValue(v) {
			return NilNodeID, nil
		}
		if err := dec.push(v); err != nil {
			return NilNodeID, err
		}
		defer dec.pop()
	}
	t := dec.top()
	if t == nil {
		return NilNodeID, errDecoderClosed
	}
	if t.Type() == fastjson.TypeNull {
		return NilNodeID, nil
	}
	if t.Type() != fastjson.TypeObject {
		return NilNodeID, BadDecodingError
	}
	idType, err := dec.ReadInt32("IdType")
	if err != nil {
		return NilNodeID, err
	}
	ns, err := dec.ReadUInt16("Namespace")
	if err != nil {
		return NilNodeID, err
	}
	switch IDType(idType) {
	case IDTypeNumeric:
		id, err := dec.ReadUInt32("Id")
		if err != nil {
			return NilNodeID, err
		}
		return NewNodeIDNumeric(ns, id), nil
	case IDTypeString:
		id, err := dec.ReadString("Id")
		if err != nil {
			return NilNodeID, err
		}
		return NewNodeIDString(ns, id), nil
	case IDTypeGUID:
		id, err := dec.ReadGUID("Id")
		if err != nil {
			return NilNodeID, err
		}
		return NewNodeIDGUID(ns, id), nil
	case IDTypeOpaque:
		id, err := dec.ReadByteString("Id")
		if err != nil {
			return NilNodeID, err
		}
		return NewNodeIDOpaque(ns, id), nil
	}
	return NilNodeID, BadDecodingError
}

// ReadExpandedNodeID reads an ExpandedNodeID. The Namespace member may
// carry the namespace index as a number or the namespace uri as a
// string.
func (dec *JSONDecoder) ReadExpandedNodeID(name string) (ExpandedNodeID, error) {
	if name != "" {
		v := dec.named(name)
		if isNilValue(v) {
			return NilExpandedNodeID, nil
		}
		if err := dec.push(v); err != nil {
			return NilExpandedNodeID, err
		}
		defer dec.pop()
	}
	t := dec.top()
	if t == nil {
		return NilExpandedNodeID, errDecoderClosed
	}
	if t.Type() == fastjson.TypeNull {
		return NilExpandedNodeID, nil
	}
	if t.Type() != fastjson.TypeObject {
		return NilExpandedNodeID, BadDecodingError
	}
	idType, err := dec.ReadInt32("IdType")
	if err != nil {
		return NilExpandedNodeID, err
	}
	svr, err := dec.ReadUInt32("ServerUri")
	if err != nil {
		return NilExpandedNodeID, err
	}
	var ns uint16
	var nsu string
	switch v := t.Get("Namespace"); {
	case isNilValue(v):
	case v.Type() == fastjson.TypeNumber:
		i, err := v.Int64()
		if err != nil || i < 0 || i > math.MaxUint16 {
			return NilExpandedNodeID, BadDecodingError
		}
		ns = uint16(i)
	case v.Type() == fastjson.TypeString:
		nsu = string(mustStringBytes(v))
	default:
		return NilExpandedNodeID, BadDecodingError
	}
	var nodeID NodeID
	switch IDType(idType) {
	case IDTypeNumeric:
		id, err := dec.ReadUInt32("Id")
		if err != nil {
			return NilExpandedNodeID, err
		}
		nodeID = NewNodeIDNumeric(ns, id)
	case IDTypeString:
		id, err := dec.ReadString("Id")
		if err != nil {
			return NilExpandedNodeID, err
		}
		nodeID = NewNodeIDString(ns, id)
	case IDTypeGUID:
		id, err := dec.ReadGUID("Id")
		if err != nil {
			return NilExpandedNodeID, err
		}
		nodeID = NewNodeIDGUID(ns, id)
	case IDTypeOpaque:
		id, err := dec.ReadByteString("Id")
		if err != nil {
			return NilExpandedNodeID, err
		}
		nodeID = NewNodeIDOpaque(ns, id)
	default:
		return NilExpandedNodeID, BadDecodingError
	}
	return ExpandedNodeID{svr, nsu, nodeID}, nil
}

// ReadStatusCode reads a StatusCode.
func (dec *JSONDecoder) ReadStatusCode(name string) (StatusCode, error) {
	v, err := dec.ReadUInt32(name)
	return StatusCode(v), err
}

// ReadQualifiedName reads a QualifiedName. The Uri member may carry the
// namespace index as a number or the namespace uri as a string.
func (dec *JSONDecoder) ReadQualifiedName(name string) (QualifiedName, error) {
	if name != "" {
		v := dec.named(name)
		if isNilValue(v) {
			return NilQualifiedName, nil
		}
		if err := dec.push(v); err != nil {
			return NilQualifiedName, err
		}
		defer dec.pop()
	}
	t := dec.top()
	if t == nil {
		return NilQualifiedName, errDecoderClosed
	}
	if t.Type() == fastjson.TypeNull {
		return NilQualifiedName, nil
	}
	if t.Type() != fastjson.TypeObject {
		return NilQualifiedName, BadDecodingError
	}
	text, err := dec.ReadString("Name")
	if err != nil {
		return NilQualifiedName, err
	}
	var ns uint16
	switch v := t.Get("Uri"); {
	case isNilValue(v):
	case v.Type() == fastjson.TypeNumber:
		i, err := v.Int64()
		if err != nil || i < 0 || i > math.MaxUint16 {
			return NilQualifiedName, BadDecodingError
		}
		ns = uint16(i)
	case v.Type() == fastjson.TypeString:
		uri := string(mustStringBytes(v))
		found := false
		for i, u := range dec.ec.NamespaceURIs() {
			if u == uri {
				ns = uint16(i)
				found = true
				break
			}
		}
		if !found {
			return NilQualifiedName, BadDecodingError
		}
	default:
		return NilQualifiedName, BadDecodingError
	}
	return NewQualifiedName(ns, text), nil
}

// ReadLocalizedText reads a LocalizedText.
func (dec *JSONDecoder) ReadLocalizedText(name string) (LocalizedText, error) {
	if name != "" {
		v := dec.named(name)
		if isNilValue(v) {
			return NilLocalizedText, nil
		}
		if err := dec.push(v); err != nil {
			return NilLocalizedText, err
		}
		defer dec.pop()
	}
	t := dec.top()
	if t == nil {
		return NilLocalizedText, errDecoderClosed
	}
	if t.Type() == fastjson.TypeNull {
		return NilLocalizedText, nil
	}
	if t.Type() != fastjson.TypeObject {
		return NilLocalizedText, BadDecodingError
	}
	locale, err := dec.ReadString("Locale")
	if err != nil {
		return NilLocalizedText, err
	}
	text, err := dec.ReadString("Text")
	if err != nil {
		return NilLocalizedText, err
	}
	return NewLocalizedText(text, locale), nil
}

// ReadVariant reads a Variant. The Body member is required; the
// optional Dimensions member selects the multi-dimensional reader.
func (dec *JSONDecoder) ReadVariant(name string) (*Variant, error) {
	if name != "" {
		v := dec.named(name)
		if isNilValue(v) {
			return &NilVariant, nil
		}
		if err := dec.push(v); err != nil {
			return nil, err
		}
		defer dec.pop()
	}
	t := dec.top()
	if t == nil {
		return nil, errDecoderClosed
	}
	if t.Type() == fastjson.TypeNull {
		return &NilVariant, nil
	}
	if t.Type() != fastjson.TypeObject {
		return nil, BadDecodingError
	}
	body := t.Get("Body")
	if body == nil {
		return nil, BadDecodingError
	}
	vt, err := dec.ReadUInt32("Type")
	if err != nil {
		return nil, err
	}
	if vt == uint32(VariantTypeNull) || vt > uint32(VariantTypeDiagnosticInfo) {
		return nil, BadDecodingError
	}
	variantType := VariantType(vt)
	dims, err := dec.ReadInt32Array("Dimensions")
	if err != nil {
		return nil, err
	}
	if len(dims) >= 2 {
		total := int64(1)
		for _, d := range dims {
			if d < 0 {
				return nil, BadDecodingError
			}
			total *= int64(d)
		}
		if l := dec.ec.MaxArrayLength(); l > 0 && total > int64(l) {
			return nil, BadEncodingLimitsExceeded
		}
		if err := dec.push(body); err != nil {
			return nil, err
		}
		defer dec.pop()
		value, err := dec.readVariantMulti(variantType, dims, int(total))
		if err != nil {
			return nil, err
		}
		return &Variant{value, variantType, dims}, nil
	}
	if err := dec.push(body); err != nil {
		return nil, err
	}
	defer dec.pop()
	if body.Type() == fastjson.TypeNull {
		return &NilVariant, nil
	}
	if body.Type() == fastjson.TypeArray {
		value, n, err := dec.readVariantArray(variantType)
		if err != nil {
			return nil, err
		}
		return &Variant{value, variantType, []int32{n}}, nil
	}
	value, err := dec.readVariantScalar(variantType)
	if err != nil {
		return nil, err
	}
	return &Variant{value, variantType, []int32{}}, nil
}

// variantElemType returns the Go element type stored for a VariantType.
func variantElemType(vt VariantType) reflect.Type {
	switch vt {
	case VariantTypeBoolean:
		return reflect.TypeOf(false)
	case VariantTypeSByte:
		return reflect.TypeOf(int8(0))
	case VariantTypeByte:
		return reflect.TypeOf(byte(0))
	case VariantTypeInt16:
		return reflect.TypeOf(int16(0))
	case VariantTypeUInt16:
		return reflect.TypeOf(uint16(0))
	case VariantTypeInt32:
		return reflect.TypeOf(int32(0))
	case VariantTypeUInt32:
		return reflect.TypeOf(uint32(0))
	case VariantTypeInt64:
		return reflect.TypeOf(int64(0))
	case VariantTypeUInt64:
		return reflect.TypeOf(uint64(0))
	case VariantTypeFloat:
		return reflect.TypeOf(float32(0))
	case VariantTypeDouble:
		return reflect.TypeOf(float64(0))
	case VariantTypeString:
		return reflect.TypeOf("")
	case VariantTypeDateTime:
		return reflect.TypeOf(time.Time{})
	case VariantTypeGUID:
		return reflect.TypeOf(uuid.UUID{})
	case VariantTypeByteString:
		return reflect.TypeOf(NilByteString)
	case VariantTypeXMLElement:
		return reflect.TypeOf(NilXMLElement)
	case VariantTypeNodeID:
		return reflect.TypeOf(NilNodeID)
	case VariantTypeExpandedNodeID:
		return reflect.TypeOf(NilExpandedNodeID)
	case VariantTypeStatusCode:
		return reflect.TypeOf(Good)
	case VariantTypeQualifiedName:
		return reflect.TypeOf(NilQualifiedName)
	case VariantTypeLocalizedText:
		return reflect.TypeOf(NilLocalizedText)
	case VariantTypeExtensionObject:
		return reflect.TypeOf((*interface{})(nil)).Elem()
	case VariantTypeDataValue:
		return reflect.TypeOf((*DataValue)(nil))
	case VariantTypeVariant:
		return reflect.TypeOf((*Variant)(nil))
	case VariantTypeDiagnosticInfo:
		return reflect.TypeOf((*DiagnosticInfo)(nil))
	}
	return nil
}

// readVariantScalar reads the top element as a scalar of the given type.
func (dec *JSONDecoder) readVariantScalar(vt VariantType) (interface{}, error) {
	switch vt {
	case VariantTypeBoolean:
		return dec.ReadBoolean("")
	case VariantTypeSByte:
		return dec.ReadSByte("")
	case VariantTypeByte:
		return dec.ReadByte("")
	case VariantTypeInt16:
		return dec.ReadInt16("")
	case VariantTypeUInt16:
		return dec.ReadUInt16("")
	case VariantTypeInt32:
		return dec.ReadInt32("")
	case VariantTypeUInt32:
		return dec.ReadUInt32("")
	case VariantTypeInt64:
		return dec.ReadInt64("")
	case VariantTypeUInt64:
		return dec.ReadUInt64("")
	case VariantTypeFloat:
		return dec.ReadFloat("")
	case VariantTypeDouble:
		return dec.ReadDouble("")
	case VariantTypeString:
		return dec.ReadString("")
	case VariantTypeDateTime:
		return dec.ReadDateTime("")
	case VariantTypeGUID:
		return dec.ReadGUID("")
	case VariantTypeByteString:
		return dec.ReadByteString("")
	case VariantTypeXMLElement:
		return dec.ReadXMLElement("")
	case VariantTypeNodeID:
		return dec.ReadNodeID("")
	case VariantTypeExpandedNodeID:
		return dec.ReadExpandedNodeID("")
	case VariantTypeStatusCode:
		return dec.ReadStatusCode("")
	case VariantTypeQualifiedName:
		return dec.ReadQualifiedName("")
	case VariantTypeLocalizedText:
		return dec.ReadLocalizedText("")
	case VariantTypeExtensionObject:
		return dec.ReadObject("")
	case VariantTypeDataValue:
		return dec.ReadDataValue("")
	case VariantTypeVariant:
		return dec.ReadVariant("")
	case VariantTypeDiagnosticInfo:
		return dec.ReadDiagnosticInfo("")
	}
	return nil, BadDecodingError
}

// readVariantArray reads the top element as a one-dimensional array.
func (dec *JSONDecoder) readVariantArray(vt VariantType) (interface{}, int32, error) {
	arr, err := dec.top().Array()
	if err != nil {
		return nil, 0, BadDecodingError
	}
	if err := dec.checkArrayLength(len(arr)); err != nil {
		return nil, 0, err
	}
	elemType := variantElemType(vt)
	if elemType == nil {
		return nil, 0, BadDecodingError
	}
	slice := reflect.MakeSlice(reflect.SliceOf(elemType), 0, len(arr))
	for _, e := range arr {
		if err := dec.push(e); err != nil {
			return nil, 0, err
		}
		v, err := dec.readVariantScalar(vt)
		dec.pop()
		if err != nil {
			return nil, 0, err
		}
		if v == nil {
			slice = reflect.Append(slice, reflect.Zero(elemType))
		} else {
			slice = reflect.Append(slice, reflect.ValueOf(v))
		}
	}
	return slice.Interface(), int32(len(arr)), nil
}

// readVariantMulti reads the top element as nested arrays matching the
// given dimensions, producing the flat row-major storage.
func (dec *JSONDecoder) readVariantMulti(vt VariantType, dims []int32, total int) (interface{}, error) {
	elemType := variantElemType(vt)
	if elemType == nil {
		return nil, BadDecodingError
	}
	slice := reflect.MakeSlice(reflect.SliceOf(elemType), 0, total)
	var walk func(v *fastjson.Value, dim int) error
	walk = func(v *fastjson.Value, dim int) error {
		arr, err := v.Array()
		if err != nil {
			return BadDecodingError
		}
		if len(arr) != int(dims[dim]) {
			return BadDecodingError
		}
		for _, e := range arr {
			if dim == len(dims)-1 {
				if e.Type() == fastjson.TypeArray {
					return BadDecodingError
				}
				if err := dec.push(e); err != nil {
					return err
				}
				val, err := dec.readVariantScalar(vt)
				dec.pop()
				if err != nil {
					return err
				}
				if val == nil {
					slice = reflect.Append(slice, reflect.Zero(elemType))
				} else {
					slice = reflect.Append(slice, reflect.ValueOf(val))
				}
			} else {
				if err := walk(e, dim+1); err != nil {
					return err
				}
			}
		}
		return nil
	}
	if err := walk(dec.top(), 0); err != nil {
		return nil, err
	}
	return slice.Interface(), nil
}

// readTypeID reads the TypeId member and normalizes it against the
// namespace table.
func (dec *JSONDecoder) readTypeID() (ExpandedNodeID, error) {
	id, err := dec.ReadExpandedNodeID("TypeId")
	if err != nil {
		return NilExpandedNodeID, err
	}
	if id.namespaceURI == "" {
		return id.nodeID.ToExpandedNodeID(dec.ec.NamespaceURIs()), nil
	}
	return id, nil
}

// ReadExtensionObject reads an ExtensionObject, preserving byte-string
// and xml bodies.
func (dec *JSONDecoder) ReadExtensionObject(name string) (*ExtensionObject, error) {
	if name != "" {
		v := dec.named(name)
		if isNilValue(v) {
			return &NilExtensionObject, nil
		}
		if err := dec.push(v); err != nil {
			return nil, err
		}
		defer dec.pop()
	}
	t := dec.top()
	if t == nil {
		return nil, errDecoderClosed
	}
	if t.Type() == fastjson.TypeNull {
		return &NilExtensionObject, nil
	}
	if t.Type() != fastjson.TypeObject {
		return nil, BadDecodingError
	}
	encoding, err := dec.ReadInt32("Encoding")
	if err != nil {
		return nil, err
	}
	if encoding < 0 || encoding > 2 {
		return nil, BadDecodingError
	}
	id, err := dec.readTypeID()
	if err != nil {
		return nil, err
	}
	body := t.Get("Body")
	if isNilValue(body) {
		return &NilExtensionObject, nil
	}
	if err := dec.push(body); err != nil {
		return nil, err
	}
	defer dec.pop()
	switch ExtensionObjectEncoding(encoding) {
	case ExtensionObjectEncodingNone:
		typ, ok := findTypeForBinaryEncodingID(id)
		if !ok {
			return nil, BadDecodingError
		}
		obj := reflect.New(typ).Interface()
		if err := dec.readStructure(obj); err != nil {
			return nil, err
		}
		return NewExtensionObjectStructure(obj, id), nil
	case ExtensionObjectEncodingByteString:
		b, err := dec.ReadByteString("")
		if err != nil {
			return nil, err
		}
		return NewExtensionObjectByteString(b, id), nil
	case ExtensionObjectEncodingXMLElement:
		x, err := dec.ReadXMLElement("")
		if err != nil {
			return nil, err
		}
		return NewExtensionObjectXMLElement(x, id), nil
	}
	return nil, BadDecodingError
}

// ReadObject reads an ExtensionObject and reifies the structure
// registered for its type id. Byte-string bodies are routed through the
// binary decoder factory and xml bodies through the xml decoder
// factory; bodies of unregistered types are preserved as raw
// ExtensionObjects when not JSON-encoded.
func (dec *JSONDecoder) ReadObject(name string) (interface{}, error) {
	if name != "" {
		v := dec.named(name)
		if isNilValue(v) {
			return nil, nil
		}
		if err := dec.push(v); err != nil {
			return nil, err
		}
		defer dec.pop()
	}
	t := dec.top()
	if t == nil {
		return nil, errDecoderClosed
	}
	if t.Type() == fastjson.TypeNull {
		return nil, nil
	}
	if t.Type() != fastjson.TypeObject {
		return nil, BadDecodingError
	}
	encoding, err := dec.ReadInt32("Encoding")
	if err != nil {
		return nil, err
	}
	if encoding < 0 || encoding > 2 {
		return nil, BadDecodingError
	}
	id, err := dec.readTypeID()
	if err != nil {
		return nil, err
	}
	typ, registered := findTypeForBinaryEncodingID(id)
	body := t.Get("Body")
	if isNilValue(body) {
		return nil, nil
	}
	if err := dec.push(body); err != nil {
		return nil, err
	}
	defer dec.pop()
	switch ExtensionObjectEncoding(encoding) {
	case ExtensionObjectEncodingNone:
		if !registered {
			return nil, BadDecodingError
		}
		obj := reflect.New(typ).Interface()
		if err := dec.readStructure(obj); err != nil {
			return nil, err
		}
		return obj, nil
	case ExtensionObjectEncodingByteString:
		b, err := dec.ReadByteString("")
		if err != nil {
			return nil, err
		}
		if !registered {
			return NewExtensionObjectByteString(b, id), nil
		}
		if dec.binFactory == nil {
			return nil, BadDecodingError
		}
		bd, err := dec.binFactory(bytes.NewReader([]byte(b)), dec.ec, false)
		if err != nil {
			return nil, BadDecodingError
		}
		obj := reflect.New(typ).Interface()
		if err := bd.Decode(obj); err != nil {
			return nil, BadDecodingError
		}
		return obj, nil
	case ExtensionObjectEncodingXMLElement:
		x, err := dec.ReadXMLElement("")
		if err != nil {
			return nil, err
		}
		if !registered {
			return NewExtensionObjectXMLElement(x, id), nil
		}
		if dec.xmlFactory == nil {
			return nil, BadDecodingError
		}
		xd, err := dec.xmlFactory(dec.ec, x)
		if err != nil {
			return nil, BadDecodingError
		}
		obj := reflect.New(typ).Interface()
		if err := xd.Decode(obj); err != nil {
			return nil, BadDecodingError
		}
		return obj, nil
	}
	return nil, BadDecodingError
}

// ReadDataValue reads a DataValue.
func (dec *JSONDecoder) ReadDataValue(name string) (*DataValue, error) {
	if name != "" {
		v := dec.named(name)
		if isNilValue(v) {
			return nil, nil
		}
		if err := dec.push(v); err != nil {
			return nil, err
		}
		defer dec.pop()
	}
	t := dec.top()
	if t == nil {
		return nil, errDecoderClosed
	}
	if t.Type() == fastjson.TypeNull {
		return nil, nil
	}
	if t.Type() != fastjson.TypeObject {
		return nil, BadDecodingError
	}
	value, err := dec.ReadVariant("Value")
	if err != nil {
		return nil, err
	}
	statusCode, err := dec.ReadStatusCode("StatusCode")
	if err != nil {
		return nil, err
	}
	sourceTimestamp, err := dec.ReadDateTime("SourceTimestamp")
	if err != nil {
		return nil, err
	}
	sourcePicoseconds, err := dec.ReadUInt16("SourcePicoseconds")
	if err != nil {
		return nil, err
	}
	serverTimestamp, err := dec.ReadDateTime("ServerTimestamp")
	if err != nil {
		return nil, err
	}
	serverPicoseconds, err := dec.ReadUInt16("ServerPicoseconds")
	if err != nil {
		return nil, err
	}
	return &DataValue{value, statusCode, sourceTimestamp, sourcePicoseconds, serverTimestamp, serverPicoseconds}, nil
}

// readIndex reads a string table index member, -1 when absent.
func (dec *JSONDecoder) readIndex(name string) (int32, error) {
	if v := dec.named(name); isNilValue(v) {
		return -1, nil
	}
	return dec.ReadInt32(name)
}

// ReadDiagnosticInfo reads a DiagnosticInfo.
func (dec *JSONDecoder) ReadDiagnosticInfo(name string) (*DiagnosticInfo, error) {
	if name != "" {
		v := dec.named(name)
		if isNilValue(v) {
			return nil, nil
		}
		if err := dec.push(v); err != nil {
			return nil, err
		}
		defer dec.pop()
	}
	t := dec.top()
	if t == nil {
		return nil, errDecoderClosed
	}
	if t.Type() == fastjson.TypeNull {
		return nil, nil
	}
	if t.Type() != fastjson.TypeObject {
		return nil, BadDecodingError
	}
	symbolicID, err := dec.readIndex("SymbolicId")
	if err != nil {
		return nil, err
	}
	namespaceURI, err := dec.readIndex("NamespaceUri")
	if err != nil {
		return nil, err
	}
	locale, err := dec.readIndex("Locale")
	if err != nil {
		return nil, err
	}
	localizedText, err := dec.readIndex("LocalizedText")
	if err != nil {
		return nil, err
	}
	additionalInfo, err := dec.ReadString("AdditionalInfo")
	if err != nil {
		return nil, err
	}
	innerStatusCode, err := dec.ReadStatusCode("InnerStatusCode")
	if err != nil {
		return nil, err
	}
	innerDiagnosticInfo, err := dec.ReadDiagnosticInfo("InnerDiagnosticInfo")
	if err != nil {
		return nil, err
	}
	return &DiagnosticInfo{symbolicID, namespaceURI, locale, localizedText, additionalInfo, innerStatusCode, innerDiagnosticInfo}, nil
}

// ReadEncodable reads a structured value from a JSON object into value,
// which must be a pointer to a struct.
func (dec *JSONDecoder) ReadEncodable(name string, value interface{}) error {
	if name != "" {
		v := dec.named(name)
		if isNilValue(v) {
			return nil
		}
		if err := dec.push(v); err != nil {
			return err
		}
		defer dec.pop()
	}
	return dec.readStructure(value)
}

// readStructure reads the members of a structured value, either via its
// Decodable hook or by reflection over its exported fields.
func (dec *JSONDecoder) readStructure(value interface{}) error {
	t := dec.top()
	if t == nil {
		return errDecoderClosed
	}
	if t.Type() != fastjson.TypeObject {
		return BadDecodingError
	}
	if d, ok := value.(Decodable); ok {
		return d.DecodeJSON(dec)
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return BadDecodingError
	}
	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return BadDecodingError
	}
	typ := rv.Type()
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if f.PkgPath != "" {
			continue
		}
		name := f.Name
		if tag := f.Tag.Get("json"); tag != "" {
			name = tag
		}
		if err := dec.decodeField(name, rv.Field(i)); err != nil {
			return err
		}
	}
	return nil
}

// decodeField dispatches one struct field to its read method.
func (dec *JSONDecoder) decodeField(name string, field reflect.Value) error {
	switch p := field.Addr().Interface().(type) {
	case *bool:
		v, err := dec.ReadBoolean(name)
		if err != nil {
			return err
		}
		*p = v
	case *int8:
		v, err := dec.ReadSByte(name)
		if err != nil {
			return err
		}
		*p = v
	case *uint8:
		v, err := dec.ReadByte(name)
		if err != nil {
			return err
		}
		*p = v
	case *int16:
		v, err := dec.ReadInt16(name)
		if err != nil {
			return err
		}
		*p = v
	case *uint16:
		v, err := dec.ReadUInt16(name)
		if err != nil {
			return err
		}
		*p = v
	case *int32:
		v, err := dec.ReadInt32(name)
		if err != nil {
			return err
		}
		*p = v
	case *uint32:
		v, err := dec.ReadUInt32(name)
		if err != nil {
			return err
		}
		*p = v
	case *int64:
		v, err := dec.ReadInt64(name)
		if err != nil {
			return err
		}
		*p = v
	case *uint64:
		v, err := dec.ReadUInt64(name)
		if err != nil {
			return err
		}
		*p = v
	case *float32:
		v, err := dec.ReadFloat(name)
		if err != nil {
			return err
		}
		*p = v
	case *float64:
		v, err := dec.ReadDouble(name)
		if err != nil {
			return err
		}
		*p = v
	case *string:
		v, err := dec.ReadString(name)
		if err != nil {
			return err
		}
		*p = v
	case *time.Time:
		v, err := dec.ReadDateTime(name)
		if err != nil {
			return err
		}
		*p = v
	case *uuid.UUID:
		v, err := dec.ReadGUID(name)
		if err != nil {
			return err
		}
		*p = v
	case *ByteString:
		v, err := dec.ReadByteString(name)
		if err != nil {
			return err
		}
		*p = v
	case *XMLElement:
		v, err := dec.ReadXMLElement(name)
		if err != nil {
			return err
		}
		*p = v
	case *NodeID:
		v, err := dec.ReadNodeID(name)
		if err != nil {
			return err
		}
		*p = v
	case *ExpandedNodeID:
		v, err := dec.ReadExpandedNodeID(name)
		if err != nil {
			return err
		}
		*p = v
	case *StatusCode:
		v, err := dec.ReadStatusCode(name)
		if err != nil {
			return err
		}
		*p = v
	case *QualifiedName:
		v, err := dec.ReadQualifiedName(name)
		if err != nil {
			return err
		}
		*p = v
	case *LocalizedText:
		v, err := dec.ReadLocalizedText(name)
		if err != nil {
			return err
		}
		*p = v
	case **ExtensionObject:
		v, err := dec.ReadExtensionObject(name)
		if err != nil {
			return err
		}
		*p = v
	case **DataValue:
		v, err := dec.ReadDataValue(name)
		if err != nil {
			return err
		}
		*p = v
	case **Variant:
		v, err := dec.ReadVariant(name)
		if err != nil {
			return err
		}
		*p = v
	case **DiagnosticInfo:
		v, err := dec.ReadDiagnosticInfo(name)
		if err != nil {
			return err
		}
		*p = v
	case *[]bool:
		v, err := dec.ReadBooleanArray(name)
		if err != nil {
			return err
		}
		*p = v
	case *[]int8:
		v, err := dec.ReadSByteArray(name)
		if err != nil {
			return err
		}
		*p = v
	case *[]uint8:
		v, err := dec.ReadByteArray(name)
		if err != nil {
			return err
		}
		*p = v
	case *[]int16:
		v, err := dec.ReadInt16Array(name)
		if err != nil {
			return err
		}
		*p = v
	case *[]uint16:
		v, err := dec.ReadUInt16Array(name)
		if err != nil {
			return err
		}
		*p = v
	case *[]int32:
		v, err := dec.ReadInt32Array(name)
		if err != nil {
			return err
		}
		*p = v
	case *[]uint32:
		v, err := dec.ReadUInt32Array(name)
		if err != nil {
			return err
		}
		*p = v
	case *[]int64:
		v, err := dec.ReadInt64Array(name)
		if err != nil {
			return err
		}
		*p = v
	case *[]uint64:
		v, err := dec.ReadUInt64Array(name)
		if err != nil {
			return err
		}
		*p = v
	case *[]float32:
		v, err := dec.ReadFloatArray(name)
		if err != nil {
			return err
		}
		*p = v
	case *[]float64:
		v, err := dec.ReadDoubleArray(name)
		if err != nil {
			return err
		}
		*p = v
	case *[]string:
		v, err := dec.ReadStringArray(name)
		if err != nil {
			return err
		}
		*p = v
	case *[]time.Time:
		v, err := dec.ReadDateTimeArray(name)
		if err != nil {
			return err
		}
		*p = v
	case *[]uuid.UUID:
		v, err := dec.ReadGUIDArray(name)
		if err != nil {
			return err
		}
		*p = v
	case *[]ByteString:
		v, err := dec.ReadByteStringArray(name)
		if err != nil {
			return err
		}
		*p = v
	case *[]XMLElement:
		v, err := dec.ReadXMLElementArray(name)
		if err != nil {
			return err
		}
		*p = v
	case *[]NodeID:
		v, err := dec.ReadNodeIDArray(name)
		if err != nil {
			return err
		}
		*p = v
	case *[]ExpandedNodeID:
		v, err := dec.ReadExpandedNodeIDArray(name)
		if err != nil {
			return err
		}
		*p = v
	case *[]StatusCode:
		v, err := dec.ReadStatusCodeArray(name)
		if err != nil {
			return err
		}
		*p = v
	case *[]QualifiedName:
		v, err := dec.ReadQualifiedNameArray(name)
		if err != nil {
			return err
		}
		*p = v
	case *[]LocalizedText:
		v, err := dec.ReadLocalizedTextArray(name)
		if err != nil {
			return err
		}
		*p = v
	case *[]*ExtensionObject:
		v, err := dec.ReadExtensionObjectArray(name)
		if err != nil {
			return err
		}
		*p = v
	case *[]*DataValue:
		v, err := dec.ReadDataValueArray(name)
		if err != nil {
			return err
		}
		*p = v
	case *[]*Variant:
		v, err := dec.ReadVariantArray(name)
		if err != nil {
			return err
		}
		*p = v
	case *[]*DiagnosticInfo:
		v, err := dec.ReadDiagnosticInfoArray(name)
		if err != nil {
			return err
		}
		*p = v
	case *[]interface{}:
		v, err := dec.ReadObjectArray(name)
		if err != nil {
			return err
		}
		*p = v
	default:
		return dec.decodeFieldReflect(name, field)
	}
	return nil
}

// decodeFieldReflect handles enums, nested structures and their slices.
func (dec *JSONDecoder) decodeFieldReflect(name string, field reflect.Value) error {
	switch field.Kind() {
	case reflect.Int32: // enum
		v, err := dec.ReadInt32(name)
		if err != nil {
			return err
		}
		field.SetInt(int64(v))
		return nil
	case reflect.Ptr: // *struct
		if name != "" {
			if v := dec.named(name); isNilValue(v) {
				return nil
			}
		} else if isNilValue(dec.top()) {
			return nil
		}
		obj := reflect.New(field.Type().Elem())
		if err := dec.ReadEncodable(name, obj.Interface()); err != nil {
			return err
		}
		field.Set(obj)
		return nil
	case reflect.Interface: // structure encoded as ExtensionObject
		v, err := dec.ReadObject(name)
		if err != nil {
			return err
		}
		if v != nil {
			field.Set(reflect.ValueOf(v))
		}
		return nil
	case reflect.Struct:
		return dec.ReadEncodable(name, field.Addr().Interface())
	case reflect.Slice: // []enum, []struct, []*struct
		if name != "" {
			v := dec.named(name)
			if isNilValue(v) {
				return nil
			}
			if err := dec.push(v); err != nil {
				return err
			}
			defer dec.pop()
		}
		t := dec.top()
		if t.Type() == fastjson.TypeNull {
			return nil
		}
		arr, err := t.Array()
		if err != nil {
			return BadDecodingError
		}
		if err := dec.checkArrayLength(len(arr)); err != nil {
			return err
		}
		slice := reflect.MakeSlice(field.Type(), len(arr), len(arr))
		for i, e := range arr {
			if err := dec.push(e); err != nil {
				return err
			}
			err := dec.decodeField("", slice.Index(i))
			dec.pop()
			if err != nil {
				return err
			}
		}
		field.Set(slice)
		return nil
	}
	return BadDecodingError
}

// readArrayElements locates the array at the named member, enforcing
// the array length limit, and returns its elements. A missing or null
// member yields nil without error.
func (dec *JSONDecoder) readArrayElements(name string) ([]*fastjson.Value, bool, error) {
	if name != "" {
		v := dec.named(name)
		if isNilValue(v) {
			return nil, false, nil
		}
		if err := dec.push(v); err != nil {
			return nil, false, err
		}
		defer dec.pop()
	}
	t := dec.top()
	if t == nil {
		return nil, false, errDecoderClosed
	}
	if t.Type() == fastjson.TypeNull {
		return nil, false, nil
	}
	arr, err := t.Array()
	if err != nil {
		return nil, false, BadDecodingError
	}
	if err := dec.checkArrayLength(len(arr)); err != nil {
		return nil, false, err
	}
	return arr, true, nil
}

// ReadBooleanArray reads a bool array.
func (dec *JSONDecoder) ReadBooleanArray(name string) ([]bool, error) {
	arr, ok, err := dec.readArrayElements(name)
	if !ok {
		return nil, err
	}
	out := make([]bool, len(arr))
	for i, e := range arr {
		if err := dec.push(e); err != nil {
			return nil, err
		}
		v, err := dec.ReadBoolean("")
		dec.pop()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// ReadSByteArray reads a int8 array.
func (dec *JSONDecoder) ReadSByteArray(name string) ([]int8, error) {
	arr, ok, err := dec.readArrayElements(name)
	if !ok {
		return nil, err
	}
	out := make([]int8, len(arr))
	for i, e := range arr {
		if err := dec.push(e); err != nil {
			return nil, err
		}
		v, err := dec.ReadSByte("")
		dec.pop()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// ReadByteArray reads a byte array.
func (dec *JSONDecoder) ReadByteArray(name string) ([]byte, error) {
	arr, ok, err := dec.readArrayElements(name)
	if !ok {
		return nil, err
	}
	out := make([]byte, len(arr))
	for i, e := range arr {
		if err := dec.push(e); err != nil {
			return nil, err
		}
		v, err := dec.ReadByte("")
		dec.pop()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// ReadInt16Array reads a int16 array.
func (dec *JSONDecoder) ReadInt16Array(name string) ([]int16, error) {
	arr, ok, err := dec.readArrayElements(name)
	if !ok {
		return nil, err
	}
	out := make([]int16, len(arr))
	for i, e := range arr {
		if err := dec.push(e); err != nil {
			return nil, err
		}
		v, err := dec.ReadInt16("")
		dec.pop()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// ReadUInt16Array reads a uint16 array.
func (dec *JSONDecoder) ReadUInt16Array(name string) ([]uint16, error) {
	arr, ok, err := dec.readArrayElements(name)
	if !ok {
		return nil, err
	}
	out := make([]uint16, len(arr))
	for i, e := range arr {
		if err := dec.push(e); err != nil {
			return nil, err
		}
		v, err := dec.ReadUInt16("")
		dec.pop()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// ReadInt32Array reads a int32 array.
func (dec *JSONDecoder) ReadInt32Array(name string) ([]int32, error) {
	arr, ok, err := dec.readArrayElements(name)
	if !ok {
		return nil, err
	}
	out := make([]int32, len(arr))
	for i, e := range arr {
		if err := dec.push(e); err != nil {
			return nil, err
		}
		v, err := dec.ReadInt32("")
		dec.pop()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// ReadUInt32Array reads a uint32 array.
func (dec *JSONDecoder) ReadUInt32Array(name string) ([]uint32, error) {
	arr, ok, err := dec.readArrayElements(name)
	if !ok {
		return nil, err
	}
	out := make([]uint32, len(arr))
	for i, e := range arr {
		if err := dec.push(e); err != nil {
			return nil, err
		}
		v, err := dec.ReadUInt32("")
		dec.pop()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// ReadInt64Array reads a int64 array.
func (dec *JSONDecoder) ReadInt64Array(name string) ([]int64, error) {
	arr, ok, err := dec.readArrayElements(name)
	if !ok {
		return nil, err
	}
	out := make([]int64, len(arr))
	for i, e := range arr {
		if err := dec.push(e); err != nil {
			return nil, err
		}
		v, err := dec.ReadInt64("")
		dec.pop()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// ReadUInt64Array reads a uint64 array.
func (dec *JSONDecoder) ReadUInt64Array(name string) ([]uint64, error) {
	arr, ok, err := dec.readArrayElements(name)
	if !ok {
		return nil, err
	}
	out := make([]uint64, len(arr))
	for i, e := range arr {
		if err := dec.push(e); err != nil {
			return nil, err
		}
		v, err := dec.ReadUInt64("")
		dec.pop()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// ReadFloatArray reads a float32 array.
func (dec *JSONDecoder) ReadFloatArray(name string) ([]float32, error) {
	arr, ok, err := dec.readArrayElements(name)
	if !ok {
		return nil, err
	}
	out := make([]float32, len(arr))
	for i, e := range arr {
		if err := dec.push(e); err != nil {
			return nil, err
		}
		v, err := dec.ReadFloat("")
		dec.pop()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// ReadDoubleArray reads a float64 array.
func (dec *JSONDecoder) ReadDoubleArray(name string) ([]float64, error) {
	arr, ok, err := dec.readArrayElements(name)
	if !ok {
		return nil, err
	}
	out := make([]float64, len(arr))
	for i, e := range arr {
		if err := dec.push(e); err != nil {
			return nil, err
		}
		v, err := dec.ReadDouble("")
		dec.pop()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// ReadStringArray reads a string array.
func (dec *JSONDecoder) ReadStringArray(name string) ([]string, error) {
	arr, ok, err := dec.readArrayElements(name)
	if !ok {
		return nil, err
	}
	out := make([]string, len(arr))
	for i, e := range arr {
		if err := dec.push(e); err != nil {
			return nil, err
		}
		v, err := dec.ReadString("")
		dec.pop()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// ReadDateTimeArray reads a Time array.
func (dec *JSONDecoder) ReadDateTimeArray(name string) ([]time.Time, error) {
	arr, ok, err := dec.readArrayElements(name)
	if !ok {
		return nil, err
	}
	out := make([]time.Time, len(arr))
	for i, e := range arr {
		if err := dec.push(e); err != nil {
			return nil, err
		}
		v, err := dec.ReadDateTime("")
		dec.pop()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// ReadGUIDArray reads a UUID array.
func (dec *JSONDecoder) ReadGUIDArray(name string) ([]uuid.UUID, error) {
	arr, ok, err := dec.readArrayElements(name)
	if !ok {
		return nil, err
	}
	out := make([]uuid.UUID, len(arr))
	for i, e := range arr {
		if err := dec.push(e); err != nil {
			return nil, err
		}
		v, err := dec.ReadGUID("")
		dec.pop()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// ReadByteStringArray reads a ByteString array.
func (dec *JSONDecoder) ReadByteStringArray(name string) ([]ByteString, error) {
	arr, ok, err := dec.readArrayElements(name)
	if !ok {
		return nil, err
	}
	out := make([]ByteString, len(arr))
	for i, e := range arr {
		if err := dec.push(e); err != nil {
			return nil, err
		}
		v, err := dec.ReadByteString("")
		dec.pop()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// ReadXMLElementArray reads a XmlElement array.
func (dec *JSONDecoder) ReadXMLElementArray(name string) ([]XMLElement, error) {
	arr, ok, err := dec.readArrayElements(name)
	if !ok {
		return nil, err
	}
	out := make([]XMLElement, len(arr))
	for i, e := range arr {
		if err := dec.push(e); err != nil {
			return nil, err
		}
		v, err := dec.ReadXMLElement("")
		dec.pop()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// ReadNodeIDArray reads a NodeID array.
func (dec *JSONDecoder) ReadNodeIDArray(name string) ([]NodeID, error) {
	arr, ok, err := dec.readArrayElements(name)
	if !ok {
		return nil, err
	}
	out := make([]NodeID, len(arr))
	for i, e := range arr {
		if err := dec.push(e); err != nil {
			return nil, err
		}
		v, err := dec.ReadNodeID("")
		dec.pop()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// ReadExpandedNodeIDArray reads an ExpandedNodeID array.
func (dec *JSONDecoder) ReadExpandedNodeIDArray(name string) ([]ExpandedNodeID, error) {
	arr, ok, err := dec.readArrayElements(name)
	if !ok {
		return nil, err
	}
	out := make([]ExpandedNodeID, len(arr))
	for i, e := range arr {
		if err := dec.push(e); err != nil {
			return nil, err
		}
		v, err := dec.ReadExpandedNodeID("")
		dec.pop()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// ReadStatusCodeArray reads a StatusCode array.
func (dec *JSONDecoder) ReadStatusCodeArray(name string) ([]StatusCode, error) {
	arr, ok, err := dec.readArrayElements(name)
	if !ok {
		return nil, err
	}
	out := make([]StatusCode, len(arr))
	for i, e := range arr {
		if err := dec.push(e); err != nil {
			return nil, err
		}
		v, err := dec.ReadStatusCode("")
		dec.pop()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// ReadQualifiedNameArray reads a QualifiedName array.
func (dec *JSONDecoder) ReadQualifiedNameArray(name string) ([]QualifiedName, error) {
	arr, ok, err := dec.readArrayElements(name)
	if !ok {
		return nil, err
	}
	out := make([]QualifiedName, len(arr))
	for i, e := range arr {
		if err := dec.push(e); err != nil {
			return nil, err
		}
		v, err := dec.ReadQualifiedName("")
		dec.pop()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// ReadLocalizedTextArray reads a LocalizedText array.
func (dec *JSONDecoder) ReadLocalizedTextArray(name string) ([]LocalizedText, error) {
	arr, ok, err := dec.readArrayElements(name)
	if !ok {
		return nil, err
	}
	out := make([]LocalizedText, len(arr))
	for i, e := range arr {
		if err := dec.push(e); err != nil {
			return nil, err
		}
		v, err := dec.ReadLocalizedText("")
		dec.pop()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// ReadExtensionObjectArray reads an ExtensionObject array.
func (dec *JSONDecoder) ReadExtensionObjectArray(name string) ([]*ExtensionObject, error) {
	arr, ok, err := dec.readArrayElements(name)
	if !ok {
		return nil, err
	}
	out := make([]*ExtensionObject, len(arr))
	for i, e := range arr {
		if err := dec.push(e); err != nil {
			return nil, err
		}
		v, err := dec.ReadExtensionObject("")
		dec.pop()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// ReadObjectArray reads an array of structures encoded as
// ExtensionObjects.
func (dec *JSONDecoder) ReadObjectArray(name string) ([]interface{}, error) {
	arr, ok, err := dec.readArrayElements(name)
	if !ok {
		return nil, err
	}
	out := make([]interface{}, len(arr))
	for i, e := range arr {
		if err := dec.push(e); err != nil {
			return nil, err
		}
		v, err := dec.ReadObject("")
		dec.pop()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// ReadDataValueArray reads a DataValue array.
func (dec *JSONDecoder) ReadDataValueArray(name string) ([]*DataValue, error) {
	arr, ok, err := dec.readArrayElements(name)
	if !ok {
		return nil, err
	}
	out := make([]*DataValue, len(arr))
	for i, e := range arr {
		if err := dec.push(e); err != nil {
			return nil, err
		}
		v, err := dec.ReadDataValue("")
		dec.pop()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// ReadVariantArray reads a Variant array.
func (dec *JSONDecoder) ReadVariantArray(name string) ([]*Variant, error) {
	arr, ok, err := dec.readArrayElements(name)
	if !ok {
		return nil, err
	}
	out := make([]*Variant, len(arr))
	for i, e := range arr {
		if err := dec.push(e); err != nil {
			return nil, err
		}
		v, err := dec.ReadVariant("")
		dec.pop()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// ReadDiagnosticInfoArray reads a DiagnosticInfo array.
func (dec *JSONDecoder) ReadDiagnosticInfoArray(name string) ([]*DiagnosticInfo, error) {
	arr, ok, err := dec.readArrayElements(name)
	if !ok {
		return nil, err
	}
	out := make([]*DiagnosticInfo, len(arr))
	for i, e := range arr {
		if err := dec.push(e); err != nil {
			return nil, err
		}
		v, err := dec.ReadDiagnosticInfo("")
		dec.pop()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
