// Copyright 2023 Converter Systems LLC. All rights reserved.

package uajson

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"math"
	"reflect"
	"strconv"
	"time"

	uuid "github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
)

var (
	// minDateTime and maxDateTime bound the range of the OPC UA DateTime.
	minDateTime = time.Date(1601, 1, 1, 0, 0, 0, 0, time.UTC)
	maxDateTime = time.Date(9999, 12, 31, 23, 59, 59, 0, time.UTC)
)

// JSONEncoder encodes the UA JSON data encoding, reversible form by
// default. Write methods taking a non-empty field name emit a member of
// the currently open JSON object; with an empty name they emit the bare
// value. In reversible form a named member holding the default value of
// its type is not emitted at all.
type JSONEncoder struct {
	w          io.Writer
	s          *jsoniter.Stream
	ec         EncodingContext
	reversible bool
	leaveOpen  bool
	comma      []bool
	closed     bool
}

// err folds the stream state into the status code error space.
func (enc *JSONEncoder) err() error {
	if enc.s.Error != nil {
		return BadEncodingError
	}
	return nil
}

// ensureRoot opens the root object before the first named write, even
// when that write ends up elided.
func (enc *JSONEncoder) ensureRoot() {
	if len(enc.comma) == 0 {
		enc.s.WriteObjectStart()
		enc.comma = append(enc.comma, false)
	}
}

// beginField writes the separator and member name within the current
// object. At document top level the root object is opened first.
func (enc *JSONEncoder) beginField(name string) {
	enc.ensureRoot()
	if enc.comma[len(enc.comma)-1] {
		enc.s.WriteMore()
	} else {
		enc.comma[len(enc.comma)-1] = true
	}
	enc.s.WriteObjectField(name)
}

func (enc *JSONEncoder) pushObject() {
	enc.s.WriteObjectStart()
	enc.comma = append(enc.comma, false)
}

func (enc *JSONEncoder) popObject() {
	enc.s.WriteObjectEnd()
	enc.comma = enc.comma[:len(enc.comma)-1]
}

// writeNilValue elides a named nil in reversible form, and emits null
// otherwise.
func (enc *JSONEncoder) writeNilValue(name string) error {
	if name != "" {
		enc.ensureRoot()
		if enc.reversible {
			return nil
		}
		enc.beginField(name)
	}
	enc.s.WriteNil()
	return enc.err()
}

func (enc *JSONEncoder) checkArrayLength(n int) error {
	if l := enc.ec.MaxArrayLength(); l > 0 && uint32(n) > l {
		return BadEncodingLimitsExceeded
	}
	return nil
}

func (enc *JSONEncoder) writeFloat(value float64, bits int) {
	switch {
	case math.IsNaN(value):
		enc.s.WriteString("NaN")
	case math.IsInf(value, 1):
		enc.s.WriteString("Infinity")
	case math.IsInf(value, -1):
		enc.s.WriteString("-Infinity")
	case bits == 32:
		enc.s.WriteFloat32(float32(value))
	default:
		enc.s.WriteFloat64(value)
	}
}

func formatDateTime(value time.Time) string {
	if value.IsZero() || value.Before(minDateTime) {
		return "0001-01-01T00:00:00Z"
	}
	if !value.Before(maxDateTime) {
		return "9999-12-31T23:59:59Z"
	}
	return value.UTC().Format(time.RFC3339Nano)
}

// WriteRequest encodes a structured value as the root JSON object.
func (enc *JSONEncoder) WriteRequest(value interface{}) error {
	if enc.closed {
		return errEncoderClosed
	}
	return enc.writeStructure(value)
}

// WriteResponse encodes a structured value as the root JSON object.
func (enc *JSONEncoder) WriteResponse(value interface{}) error {
	return enc.WriteRequest(value)
}

// PushNamespace exists for interface compatibility with the other
// encodings and does nothing here.
func (enc *JSONEncoder) PushNamespace(uri string) {
}

// PopNamespace exists for interface compatibility with the other
// encodings and does nothing here.
func (enc *JSONEncoder) PopNamespace() {
}

// Flush writes any buffered output to the sink.
func (enc *JSONEncoder) Flush() error {
	if enc.closed {
		return errEncoderClosed
	}
	if err := enc.s.Flush(); err != nil {
		return BadEncodingError
	}
	return enc.err()
}

// FlushContext writes any buffered output to the sink. The underlying
// flush is synchronous; cancellation is observed only before it begins.
func (enc *JSONEncoder) FlushContext(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return enc.Flush()
}

// Close flushes the encoder, closing any open root object, and closes
// the sink unless the encoder was constructed with WithLeaveSinkOpen(true).
func (enc *JSONEncoder) Close() error {
	if enc.closed {
		return nil
	}
	for len(enc.comma) > 0 {
		enc.popObject()
	}
	if err := enc.s.Flush(); err != nil {
		return BadEncodingError
	}
	enc.closed = true
	if !enc.leaveOpen {
		if c, ok := enc.w.(io.Closer); ok {
			if err := c.Close(); err != nil {
				return BadEncodingError
			}
		}
	}
	return nil
}

// WriteBoolean writes a boolean.
func (enc *JSONEncoder) WriteBoolean(name string, value bool) error {
	if name != "" {
		enc.ensureRoot()
		if enc.reversible && !value {
			return nil
		}
		enc.beginField(name)
	}
	enc.s.WriteBool(value)
	return enc.err()
}

// WriteSByte writes a sbyte.
func (enc *JSONEncoder) WriteSByte(name string, value int8) error {
	if name != "" {
		enc.ensureRoot()
		if enc.reversible && value == 0 {
			return nil
		}
		enc.beginField(name)
	}
	enc.s.WriteInt8(value)
	return enc.err()
}

// WriteByte writes a byte.
func (enc *JSONEncoder) WriteByte(name string, value byte) error {
	if name != "" {
		enc.ensureRoot()
		if enc.reversible && value == 0 {
			return nil
		}
		enc.beginField(name)
	}
	enc.s.WriteUint8(value)
	return enc.err()
}

// WriteInt16 writes a int16.
func (enc *JSONEncoder) WriteInt16(name string, value int16) error {
	if name != "" {
		enc.ensureRoot()
		if enc.reversible && value == 0 {
			return nil
		}
		enc.beginField(name)
	}
	enc.s.WriteInt16(value)
	return enc.err()
}

// WriteUInt16 writes a uint16.
func (enc *JSONEncoder) WriteUInt16(name string, value uint16) error {
	if name != "" {
		enc.ensureRoot()
		if enc.reversible && value == 0 {
			return nil
		}
		enc.beginField(name)
	}
	enc.s.WriteUint16(value)
	return enc.err()
}

// WriteInt32 writes a int32.
func (enc *JSONEncoder) WriteInt32(name string, value int32) error {
	if name != "" {
		enc.ensureRoot()
		if enc.reversible && value == 0 {
			return nil
		}
		enc.beginField(name)
	}
	enc.s.WriteInt32(value)
	return enc.err()
}

// WriteUInt32 writes a uint32.
func (enc *JSONEncoder) WriteUInt32(name string, value uint32) error {
	if name != "" {
		enc.ensureRoot()
		if enc.reversible && value == 0 {
			return nil
		}
		enc.beginField(name)
	}
	enc.s.WriteUint32(value)
	return enc.err()
}

// WriteInt64 writes a int64 as a base-10 string.
func (enc *JSONEncoder) WriteInt64(name string, value int64) error {
	if name != "" {
		enc.ensureRoot()
		if enc.reversible && value == 0 {
			return nil
		}
		enc.beginField(name)
	}
	enc.s.WriteString(strconv.FormatInt(value, 10))
	return enc.err()
}

// WriteUInt64 writes a uint64 as a base-10 string.
func (enc *JSONEncoder) WriteUInt64(name string, value uint64) error {
	if name != "" {
		enc.ensureRoot()
		if enc.reversible && value == 0 {
			return nil
		}
		enc.beginField(name)
	}
	enc.s.WriteString(strconv.FormatUint(value, 10))
	return enc.err()
}

// WriteFloat writes a float. NaN and the infinities are written as
// strings.
func (enc *JSONEncoder) WriteFloat(name string, value float32) error {
	if name != "" {
		enc.ensureRoot()
		if enc.reversible && value == 0 {
			return nil
		}
		enc.beginField(name)
	}
	enc.writeFloat(float64(value), 32)
	return enc.err()
}

// WriteDouble writes a double. NaN and the infinities are written as
// strings.
func (enc *JSONEncoder) WriteDouble(name string, value float64) error {
	if name != "" {
		enc.ensureRoot()
		if enc.reversible && value == 0 {
			return nil
		}
		enc.beginField(name)
	}
	enc.writeFloat(value, 64)
	return enc.err()
}

// WriteString writes a string. The nil string is elided or written as
// null.
func (enc *JSONEncoder) WriteString(name string, value string) error {
	if l := enc.ec.MaxStringLength(); l > 0 && uint32(len(value)) > l {
		return BadEncodingLimitsExceeded
	}
	if len(value) == 0 {
		return enc.writeNilValue(name)
	}
	if name != "" {
		enc.beginField(name)
	}
	enc.s.WriteString(value)
	return enc.err()
}

// WriteDateTime writes a date/time as an RFC 3339 UTC string, clamped
// to the range of the OPC UA DateTime.
func (enc *JSONEncoder) WriteDateTime(name string, value time.Time) error {
	if name != "" {
		enc.ensureRoot()
		if enc.reversible && value.IsZero() {
			return nil
		}
		enc.beginField(name)
	}
	enc.s.WriteString(formatDateTime(value))
	return enc.err()
}

// WriteGUID writes a UUID as its canonical string form.
func (enc *JSONEncoder) WriteGUID(name string, value uuid.UUID) error {
	if name != "" {
		enc.ensureRoot()
		if enc.reversible && value == uuid.Nil {
			return nil
		}
		enc.beginField(name)
	}
	enc.s.WriteString(value.String())
	return enc.err()
}

// WriteByteString writes a ByteString as a base64 string.
func (enc *JSONEncoder) WriteByteString(name string, value ByteString) error {
	if l := enc.ec.MaxByteStringLength(); l > 0 && uint32(len(value)) > l {
		return BadEncodingLimitsExceeded
	}
	if len(value) == 0 {
		return enc.writeNilValue(name)
	}
	if name != "" {
		enc.beginField(name)
	}
	enc.s.WriteString(base64.StdEncoding.EncodeToString([]byte(value)))
	return enc.err()
}

// WriteXMLElement writes a XmlElement as a string.
func (enc *JSONEncoder) WriteXMLElement(name string, value XMLElement) error {
	if len(value) == 0 {
		return enc.writeNilValue(name)
	}
	if name != "" {
		enc.beginField(name)
	}
	enc.s.WriteString(string(value))
	return enc.err()
}

// writeIdentifier writes the IdType and Id members shared by NodeID and
// ExpandedNodeID. IdType is omitted for the numeric default.
func (enc *JSONEncoder) writeIdentifier(value NodeID) error {
	switch value.idType {
	case IDTypeNumeric:
		enc.beginField("Id")
		enc.s.WriteUint32(value.nid)
	case IDTypeString:
		enc.beginField("IdType")
		enc.s.WriteInt32(int32(IDTypeString))
		enc.beginField("Id")
		enc.s.WriteString(value.sid)
	case IDTypeGUID:
		enc.beginField("IdType")
		enc.s.WriteInt32(int32(IDTypeGUID))
		enc.beginField("Id")
		enc.s.WriteString(value.gid.String())
	case IDTypeOpaque:
		enc.beginField("IdType")
		enc.s.WriteInt32(int32(IDTypeOpaque))
		enc.beginField("Id")
		enc.s.WriteString(base64.StdEncoding.EncodeToString([]byte(value.bid)))
	default:
		return BadEncodingError
	}
	return enc.err()
}

// WriteNodeID writes a NodeID.
func (enc *JSONEncoder) WriteNodeID(name string, value NodeID) error {
	if value.IsNil() {
		return enc.writeNilValue(name)
	}
	if name != "" {
		enc.beginField(name)
	}
	enc.pushObject()
	if err := enc.writeIdentifier(value); err != nil {
		return err
	}
	if ns := value.namespaceIndex; ns > 0 {
		enc.beginField("Namespace")
		if uris := enc.ec.NamespaceURIs(); !enc.reversible && int(ns) < len(uris) {
			enc.s.WriteString(uris[ns])
		} else {
			enc.s.WriteUint32(uint32(ns))
		}
	}
	enc.popObject()
	return enc.err()
}

// WriteExpandedNodeID writes an ExpandedNodeID.
func (enc *JSONEncoder) WriteExpandedNodeID(name string, value ExpandedNodeID) error {
	if value.IsNil() {
		return enc.writeNilValue(name)
	}
	if name != "" {
		enc.beginField(name)
	}
	enc.pushObject()
	if err := enc.writeIdentifier(value.nodeID); err != nil {
		return err
	}
	nsu := value.namespaceURI
	ns := value.NamespaceIndex()
	if enc.reversible {
		if nsu != "" {
			enc.beginField("Namespace")
			enc.s.WriteString(nsu)
		} else if ns > 0 {
			enc.beginField("Namespace")
			enc.s.WriteUint32(uint32(ns))
		}
		if value.serverIndex > 0 {
			enc.beginField("ServerUri")
			enc.s.WriteUint32(value.serverIndex)
		}
	} else {
		uris := enc.ec.NamespaceURIs()
		if nsu == "" && ns > 0 && int(ns) < len(uris) {
			nsu = uris[ns]
		}
		if nsu != "" {
			enc.beginField("Namespace")
			enc.s.WriteString(nsu)
		} else if ns > 0 {
			enc.beginField("Namespace")
			enc.s.WriteUint32(uint32(ns))
		}
		// the reference emitter also writes the index when > 1
		if ns > 1 {
			enc.beginField("NamespaceIndex")
			enc.s.WriteUint32(uint32(ns))
		}
		if svr := value.serverIndex; svr > 0 {
			enc.beginField("ServerUri")
			if srvs := enc.ec.ServerURIs(); int(svr) < len(srvs) {
				enc.s.WriteString(srvs[svr])
			} else {
				enc.s.WriteUint32(svr)
			}
		}
	}
	enc.popObject()
	return enc.err()
}

// WriteStatusCode writes a StatusCode. The reversible form is the bare
// code; the non-reversible form elides a named Good and otherwise writes
// an object holding the code and its symbolic name.
func (enc *JSONEncoder) WriteStatusCode(name string, value StatusCode) error {
	if enc.reversible {
		if name != "" {
			enc.ensureRoot()
			if value == Good {
				return nil
			}
			enc.beginField(name)
		}
		enc.s.WriteUint32(uint32(value))
		return enc.err()
	}
	if name != "" {
		enc.ensureRoot()
		if value == Good {
			return nil
		}
		enc.beginField(name)
	}
	enc.pushObject()
	enc.beginField("Code")
	enc.s.WriteUint32(uint32(value))
	if symbol := value.Symbol(); symbol != "" {
		enc.beginField("Symbol")
		enc.s.WriteString(symbol)
	}
	enc.popObject()
	return enc.err()
}

// WriteQualifiedName writes a QualifiedName.
func (enc *JSONEncoder) WriteQualifiedName(name string, value QualifiedName) error {
	if value.IsNil() {
		return enc.writeNilValue(name)
	}
	if name != "" {
		enc.beginField(name)
	}
	enc.pushObject()
	if len(value.Name) > 0 {
		enc.beginField("Name")
		enc.s.WriteString(value.Name)
	}
	if ns := value.NamespaceIndex; ns > 0 {
		enc.beginField("Uri")
		if uris := enc.ec.NamespaceURIs(); !enc.reversible && int(ns) < len(uris) {
			enc.s.WriteString(uris[ns])
		} else {
			enc.s.WriteUint32(uint32(ns))
		}
	}
	enc.popObject()
	return enc.err()
}

// WriteLocalizedText writes a LocalizedText. The non-reversible form is
// the bare text.
func (enc *JSONEncoder) WriteLocalizedText(name string, value LocalizedText) error {
	if value.IsNil() {
		return enc.writeNilValue(name)
	}
	if name != "" {
		enc.beginField(name)
	}
	if !enc.reversible {
		enc.s.WriteString(value.Text)
		return enc.err()
	}
	enc.pushObject()
	if len(value.Locale) > 0 {
		enc.beginField("Locale")
		enc.s.WriteString(value.Locale)
	}
	if len(value.Text) > 0 {
		enc.beginField("Text")
		enc.s.WriteString(value.Text)
	}
	enc.popObject()
	return enc.err()
}

// WriteEnum writes an enumeration. The reversible form is the bare
// integer, the non-reversible form is "Name_Value".
func (enc *JSONEncoder) WriteEnum(name string, value interface{}) error {
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Int32 {
		return BadEncodingError
	}
	return enc.writeEnumValue(name, rv)
}

func (enc *JSONEncoder) writeEnumValue(name string, rv reflect.Value) error {
	v := int32(rv.Int())
	if enc.reversible {
		return enc.WriteInt32(name, v)
	}
	if name != "" {
		enc.beginField(name)
	}
	if symbol, ok := findEnumName(rv.Type(), v); ok {
		enc.s.WriteString(fmt.Sprintf("%s_%d", symbol, v))
	} else if s, ok := rv.Interface().(fmt.Stringer); ok {
		enc.s.WriteString(fmt.Sprintf("%s_%d", s.String(), v))
	} else {
		enc.s.WriteInt32(v)
	}
	return enc.err()
}

// WriteVariant writes a Variant. The reversible form is an object
// holding the type tag, the body, and the array dimensions when the
// value is multi-dimensional; the non-reversible form is the bare body.
func (enc *JSONEncoder) WriteVariant(name string, value *Variant) error {
	if value.IsNil() {
		return enc.writeNilValue(name)
	}
	dims := value.arrayDimensions
	if len(dims) > 0 {
		total := 1
		for _, d := range dims {
			total *= int(d)
		}
		if err := enc.checkArrayLength(total); err != nil {
			return err
		}
	}
	if name != "" {
		enc.beginField(name)
	}
	if !enc.reversible {
		return enc.writeVariantBody(value)
	}
	enc.pushObject()
	enc.beginField("Type")
	enc.s.WriteInt32(int32(value.variantType))
	enc.beginField("Body")
	if err := enc.writeVariantBody(value); err != nil {
		return err
	}
	if len(dims) >= 2 {
		enc.beginField("Dimensions")
		enc.s.WriteArrayStart()
		for i, d := range dims {
			if i > 0 {
				enc.s.WriteMore()
			}
			enc.s.WriteInt32(d)
		}
		enc.s.WriteArrayEnd()
	}
	enc.popObject()
	return enc.err()
}

func (enc *JSONEncoder) writeVariantBody(value *Variant) error {
	dims := value.arrayDimensions
	if len(dims) == 0 {
		return enc.writeVariantScalar(value.variantType, value.value)
	}
	if len(dims) >= 2 {
		rv := reflect.ValueOf(value.value)
		if rv.Kind() != reflect.Slice {
			return BadEncodingError
		}
		_, err := enc.writeVariantSlice(rv, value.variantType, dims, 0, 0)
		return err
	}
	switch value.variantType {
	case VariantTypeBoolean:
		if v, ok := value.value.([]bool); ok {
			return enc.WriteBooleanArray("", v)
		}
	case VariantTypeSByte:
		if v, ok := value.value.([]int8); ok {
			return enc.WriteSByteArray("", v)
		}
	case VariantTypeByte:
		if v, ok := value.value.([]byte); ok {
			return enc.WriteByteArray("", v)
		}
	case VariantTypeInt16:
		if v, ok := value.value.([]int16); ok {
			return enc.WriteInt16Array("", v)
		}
	case VariantTypeUInt16:
		if v, ok := value.value.([]uint16); ok {
			return enc.WriteUInt16Array("", v)
		}
	case VariantTypeInt32:
		if v, ok := value.value.([]int32); ok {
			return enc.WriteInt32Array("", v)
		}
	case VariantTypeUInt32:
		if v, ok := value.value.([]uint32); ok {
			return enc.WriteUInt32Array("", v)
		}
	case VariantTypeInt64:
		if v, ok := value.value.([]int64); ok {
			return enc.WriteInt64Array("", v)
		}
	case VariantTypeUInt64:
		if v, ok := value.value.([]uint64); ok {
			return enc.WriteUInt64Array("", v)
		}
	case VariantTypeFloat:
		if v, ok := value.value.([]float32); ok {
			return enc.WriteFloatArray("", v)
		}
	case VariantTypeDouble:
		if v, ok := value.value.([]float64); ok {
			return enc.WriteDoubleArray("", v)
		}
	case VariantTypeString:
		if v, ok := value.value.([]string); ok {
			return enc.WriteStringArray("", v)
		}
	case VariantTypeDateTime:
		if v, ok := value.value.([]time.Time); ok {
			return enc.WriteDateTimeArray("", v)
		}
	case VariantTypeGUID:
		if v, ok := value.value.([]uuid.UUID); ok {
			return enc.WriteGUIDArray("", v)
		}
	case VariantTypeByteString:
		if v, ok := value.value.([]ByteString); ok {
			return enc.WriteByteStringArray("", v)
		}
	case VariantTypeXMLElement:
		if v, ok := value.value.([]XMLElement); ok {
			return enc.WriteXMLElementArray("", v)
		}
	case VariantTypeNodeID:
		if v, ok := value.value.([]NodeID); ok {
			return enc.WriteNodeIDArray("", v)
		}
	case VariantTypeExpandedNodeID:
		if v, ok := value.value.([]ExpandedNodeID); ok {
			return enc.WriteExpandedNodeIDArray("", v)
		}
	case VariantTypeStatusCode:
		if v, ok := value.value.([]StatusCode); ok {
			return enc.WriteStatusCodeArray("", v)
		}
	case VariantTypeQualifiedName:
		if v, ok := value.value.([]QualifiedName); ok {
			return enc.WriteQualifiedNameArray("", v)
		}
	case VariantTypeLocalizedText:
		if v, ok := value.value.([]LocalizedText); ok {
			return enc.WriteLocalizedTextArray("", v)
		}
	case VariantTypeExtensionObject:
		switch v := value.value.(type) {
		case []*ExtensionObject:
			return enc.WriteExtensionObjectArray("", v)
		case []interface{}:
			return enc.WriteObjectArray("", v)
		}
	case VariantTypeDataValue:
		if v, ok := value.value.([]*DataValue); ok {
			return enc.WriteDataValueArray("", v)
		}
	case VariantTypeVariant:
		if v, ok := value.value.([]*Variant); ok {
			return enc.WriteVariantArray("", v)
		}
	case VariantTypeDiagnosticInfo:
		if v, ok := value.value.([]*DiagnosticInfo); ok {
			return enc.WriteDiagnosticInfoArray("", v)
		}
	}
	return BadEncodingError
}

// writeVariantSlice writes one dimension of a multi-dimensional body,
// consuming elements of the flat row-major slice from offset.
func (enc *JSONEncoder) writeVariantSlice(rv reflect.Value, vt VariantType, dims []int32, dim, offset int) (int, error) {
	enc.s.WriteArrayStart()
	n := int(dims[dim])
	for i := 0; i < n; i++ {
		if i > 0 {
			enc.s.WriteMore()
		}
		if dim == len(dims)-1 {
			if offset >= rv.Len() {
				return 0, BadEncodingError
			}
			if err := enc.writeVariantScalar(vt, rv.Index(offset).Interface()); err != nil {
				return 0, err
			}
			offset++
		} else {
			var err error
			offset, err = enc.writeVariantSlice(rv, vt, dims, dim+1, offset)
			if err != nil {
				return 0, err
			}
		}
	}
	enc.s.WriteArrayEnd()
	return offset, enc.err()
}

func (enc *JSONEncoder) writeVariantScalar(vt VariantType, value interface{}) error {
	switch vt {
	case VariantTypeBoolean:
		if v, ok := value.(bool); ok {
			return enc.WriteBoolean("", v)
		}
	case VariantTypeSByte:
		if v, ok := value.(int8); ok {
			return enc.WriteSByte("", v)
		}
	case VariantTypeByte:
		if v, ok := value.(byte); ok {
			return enc.WriteByte("", v)
		}
	case VariantTypeInt16:
		if v, ok := value.(int16); ok {
			return enc.WriteInt16("", v)
		}
	case VariantTypeUInt16:
		if v, ok := value.(uint16); ok {
			return enc.WriteUInt16("", v)
		}
	case VariantTypeInt32:
		if v, ok := value.(int32); ok {
			return enc.WriteInt32("", v)
		}
	case VariantTypeUInt32:
		if v, ok := value.(uint32); ok {
			return enc.WriteUInt32("", v)
		}
	case VariantTypeInt64:
		if v, ok := value.(int64); ok {
			return enc.WriteInt64("", v)
		}
	case VariantTypeUInt64:
		if v, ok := value.(uint64); ok {
			return enc.WriteUInt64("", v)
		}
	case VariantTypeFloat:
		if v, ok := value.(float32); ok {
			return enc.WriteFloat("", v)
		}
	case VariantTypeDouble:
		if v, ok := value.(float64); ok {
			return enc.WriteDouble("", v)
		}
	case VariantTypeString:
		if v, ok := value.(string); ok {
			return enc.WriteString("", v)
		}
	case VariantTypeDateTime:
		if v, ok := value.(time.Time); ok {
			return enc.WriteDateTime("", v)
		}
	case VariantTypeGUID:
		if v, ok := value.(uuid.UUID); ok {
			return enc.WriteGUID("", v)
		}
	case VariantTypeByteString:
		if v, ok := value.(ByteString); ok {
			return enc.WriteByteString("", v)
		}
	case VariantTypeXMLElement:
		if v, ok := value.(XMLElement); ok {
			return enc.WriteXMLElement("", v)
		}
	case VariantTypeNodeID:
		if v, ok := value.(NodeID); ok {
			return enc.WriteNodeID("", v)
		}
	case VariantTypeExpandedNodeID:
		if v, ok := value.(ExpandedNodeID); ok {
			return enc.WriteExpandedNodeID("", v)
		}
	case VariantTypeStatusCode:
		if v, ok := value.(StatusCode); ok {
			return enc.WriteStatusCode("", v)
		}
	case VariantTypeQualifiedName:
		if v, ok := value.(QualifiedName); ok {
			return enc.WriteQualifiedName("", v)
		}
	case VariantTypeLocalizedText:
		if v, ok := value.(LocalizedText); ok {
			return enc.WriteLocalizedText("", v)
		}
	case VariantTypeExtensionObject:
		switch v := value.(type) {
		case *ExtensionObject:
			return enc.WriteExtensionObject("", v)
		default:
			return enc.WriteObject("", v)
		}
	case VariantTypeDataValue:
		if v, ok := value.(*DataValue); ok {
			return enc.WriteDataValue("", v)
		}
	case VariantTypeVariant:
		if v, ok := value.(*Variant); ok {
			return enc.WriteVariant("", v)
		}
	case VariantTypeDiagnosticInfo:
		if v, ok := value.(*DiagnosticInfo); ok {
			return enc.WriteDiagnosticInfo("", v)
		}
	}
	return BadEncodingError
}

// WriteExtensionObject writes an ExtensionObject. The reversible form
// is an object holding the type id, the encoding tag for byte-string and
// xml bodies, and the body; the non-reversible form is the bare body.
func (enc *JSONEncoder) WriteExtensionObject(name string, value *ExtensionObject) error {
	if value.IsNil() {
		return enc.writeNilValue(name)
	}
	typeID := value.typeID
	if value.encoding == ExtensionObjectEncodingNone && typeID.IsNil() {
		id, ok := findBinaryEncodingIDForType(indirectType(reflect.TypeOf(value.body)))
		if !ok {
			return BadEncodingError
		}
		typeID = id
	}
	if !enc.reversible {
		if name != "" {
			enc.beginField(name)
		}
		switch value.encoding {
		case ExtensionObjectEncodingNone:
			return enc.writeStructure(value.body)
		case ExtensionObjectEncodingByteString:
			v, ok := value.body.(ByteString)
			if !ok {
				return BadEncodingError
			}
			enc.s.WriteString(base64.StdEncoding.EncodeToString([]byte(v)))
			return enc.err()
		case ExtensionObjectEncodingXMLElement:
			v, ok := value.body.(XMLElement)
			if !ok {
				return BadEncodingError
			}
			enc.s.WriteString(string(v))
			return enc.err()
		}
		return BadEncodingError
	}
	if name != "" {
		enc.beginField(name)
	}
	enc.pushObject()
	if err := enc.WriteExpandedNodeID("TypeId", typeID); err != nil {
		return err
	}
	switch value.encoding {
	case ExtensionObjectEncodingNone:
		enc.beginField("Body")
		if err := enc.writeStructure(value.body); err != nil {
			return err
		}
	case ExtensionObjectEncodingByteString:
		v, ok := value.body.(ByteString)
		if !ok {
			return BadEncodingError
		}
		enc.beginField("Encoding")
		enc.s.WriteInt32(int32(ExtensionObjectEncodingByteString))
		enc.beginField("Body")
		enc.s.WriteString(base64.StdEncoding.EncodeToString([]byte(v)))
	case ExtensionObjectEncodingXMLElement:
		v, ok := value.body.(XMLElement)
		if !ok {
			return BadEncodingError
		}
		enc.beginField("Encoding")
		enc.s.WriteInt32(int32(ExtensionObjectEncodingXMLElement))
		enc.beginField("Body")
		enc.s.WriteString(string(v))
	default:
		return BadEncodingError
	}
	enc.popObject()
	return enc.err()
}

// WriteObject writes a structure as an ExtensionObject, looking up its
// type id in the registry.
func (enc *JSONEncoder) WriteObject(name string, value interface{}) error {
	if value == nil {
		return enc.writeNilValue(name)
	}
	id, ok := findBinaryEncodingIDForType(indirectType(reflect.TypeOf(value)))
	if !ok {
		return BadEncodingError
	}
	return enc.WriteExtensionObject(name, NewExtensionObjectStructure(value, id))
}

// WriteDataValue writes a DataValue.
func (enc *JSONEncoder) WriteDataValue(name string, value *DataValue) error {
	if value == nil {
		return enc.writeNilValue(name)
	}
	if name != "" {
		enc.beginField(name)
	}
	enc.pushObject()
	if err := enc.WriteVariant("Value", value.value); err != nil {
		return err
	}
	if err := enc.WriteStatusCode("StatusCode", value.statusCode); err != nil {
		return err
	}
	if err := enc.WriteDateTime("SourceTimestamp", value.sourceTimestamp); err != nil {
		return err
	}
	if err := enc.WriteUInt16("SourcePicoseconds", value.sourcePicoseconds); err != nil {
		return err
	}
	if err := enc.WriteDateTime("ServerTimestamp", value.serverTimestamp); err != nil {
		return err
	}
	if err := enc.WriteUInt16("ServerPicoseconds", value.serverPicoseconds); err != nil {
		return err
	}
	enc.popObject()
	return enc.err()
}

// WriteDiagnosticInfo writes a DiagnosticInfo. Index members carrying
// the -1 sentinel are absent.
func (enc *JSONEncoder) WriteDiagnosticInfo(name string, value *DiagnosticInfo) error {
	if value == nil {
		return enc.writeNilValue(name)
	}
	if name != "" {
		enc.beginField(name)
	}
	enc.pushObject()
	if value.symbolicID >= 0 {
		enc.beginField("SymbolicId")
		enc.s.WriteInt32(value.symbolicID)
	}
	if value.namespaceURI >= 0 {
		enc.beginField("NamespaceUri")
		enc.s.WriteInt32(value.namespaceURI)
	}
	if value.locale >= 0 {
		enc.beginField("Locale")
		enc.s.WriteInt32(value.locale)
	}
	if value.localizedText >= 0 {
		enc.beginField("LocalizedText")
		enc.s.WriteInt32(value.localizedText)
	}
	if len(value.additionalInfo) > 0 {
		enc.beginField("AdditionalInfo")
		enc.s.WriteString(value.additionalInfo)
	}
	if err := enc.WriteStatusCode("InnerStatusCode", value.innerStatusCode); err != nil {
		return err
	}
	if value.innerDiagnosticInfo != nil {
		if err := enc.WriteDiagnosticInfo("InnerDiagnosticInfo", value.innerDiagnosticInfo); err != nil {
			return err
		}
	}
	enc.popObject()
	return enc.err()
}

// WriteEncodable writes a structured value as a JSON object.
func (enc *JSONEncoder) WriteEncodable(name string, value interface{}) error {
	if value == nil || (reflect.ValueOf(value).Kind() == reflect.Ptr && reflect.ValueOf(value).IsNil()) {
		return enc.writeNilValue(name)
	}
	if name != "" {
		enc.beginField(name)
	}
	return enc.writeStructure(value)
}

// writeStructure writes the members of a structured value, either via
// its Encodable hook or by reflection over its exported fields.
func (enc *JSONEncoder) writeStructure(value interface{}) error {
	if e, ok := value.(Encodable); ok {
		enc.pushObject()
		if err := e.EncodeJSON(enc); err != nil {
			return err
		}
		enc.popObject()
		return enc.err()
	}
	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			enc.s.WriteNil()
			return enc.err()
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return BadEncodingError
	}
	enc.pushObject()
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
		if err := enc.encodeField(name, rv.Field(i)); err != nil {
			return err
		}
	}
	enc.popObject()
	return enc.err()
}

// encodeField dispatches one struct field to its write method.
func (enc *JSONEncoder) encodeField(name string, field reflect.Value) error {
	switch v := field.Interface().(type) {
	case bool:
		return enc.WriteBoolean(name, v)
	case int8:
		return enc.WriteSByte(name, v)
	case uint8:
		return enc.WriteByte(name, v)
	case int16:
		return enc.WriteInt16(name, v)
	case uint16:
		return enc.WriteUInt16(name, v)
	case int32:
		return enc.WriteInt32(name, v)
	case uint32:
		return enc.WriteUInt32(name, v)
	case int64:
		return enc.WriteInt64(name, v)
	case uint64:
		return enc.WriteUInt64(name, v)
	case float32:
		return enc.WriteFloat(name, v)
	case float64:
		return enc.WriteDouble(name, v)
	case string:
		return enc.WriteString(name, v)
	case time.Time:
		return enc.WriteDateTime(name, v)
	case uuid.UUID:
		return enc.WriteGUID(name, v)
	case ByteString:
		return enc.WriteByteString(name, v)
	case XMLElement:
		return enc.WriteXMLElement(name, v)
	case NodeID:
		return enc.WriteNodeID(name, v)
	case ExpandedNodeID:
		return enc.WriteExpandedNodeID(name, v)
	case StatusCode:
		return enc.WriteStatusCode(name, v)
	case QualifiedName:
		return enc.WriteQualifiedName(name, v)
	case LocalizedText:
		return enc.WriteLocalizedText(name, v)
	case *ExtensionObject:
		return enc.WriteExtensionObject(name, v)
	case *DataValue:
		return enc.WriteDataValue(name, v)
	case *Variant:
		return enc.WriteVariant(name, v)
	case *DiagnosticInfo:
		return enc.WriteDiagnosticInfo(name, v)
	case []bool:
		return enc.WriteBooleanArray(name, v)
	case []int8:
		return enc.WriteSByteArray(name, v)
	case []uint8:
		return enc.WriteByteArray(name, v)
	case []int16:
		return enc.WriteInt16Array(name, v)
	case []uint16:
		return enc.WriteUInt16Array(name, v)
	case []int32:
		return enc.WriteInt32Array(name, v)
	case []uint32:
		return enc.WriteUInt32Array(name, v)
	case []int64:
		return enc.WriteInt64Array(name, v)
	case []uint64:
		return enc.WriteUInt64Array(name, v)
	case []float32:
		return enc.WriteFloatArray(name, v)
	case []float64:
		return enc.WriteDoubleArray(name, v)
	case []string:
		return enc.WriteStringArray(name, v)
	case []time.Time:
		return enc.WriteDateTimeArray(name, v)
	case []uuid.UUID:
		return enc.WriteGUIDArray(name, v)
	case []ByteString:
		return enc.WriteByteStringArray(name, v)
	case []XMLElement:
		return enc.WriteXMLElementArray(name, v)
	case []NodeID:
		return enc.WriteNodeIDArray(name, v)
	case []ExpandedNodeID:
		return enc.WriteExpandedNodeIDArray(name, v)
	case []StatusCode:
		return enc.WriteStatusCodeArray(name, v)
	case []QualifiedName:
		return enc.WriteQualifiedNameArray(name, v)
	case []LocalizedText:
		return enc.WriteLocalizedTextArray(name, v)
	case []*ExtensionObject:
		return enc.WriteExtensionObjectArray(name, v)
	case []*DataValue:
		return enc.WriteDataValueArray(name, v)
	case []*Variant:
		return enc.WriteVariantArray(name, v)
	case []*DiagnosticInfo:
		return enc.WriteDiagnosticInfoArray(name, v)
	case []interface{}:
		return enc.WriteObjectArray(name, v)
	}
	switch field.Kind() {
	case reflect.Int32: // enum
		return enc.writeEnumValue(name, field)
	case reflect.Ptr: // *struct
		if field.IsNil() {
			return enc.writeNilValue(name)
		}
		return enc.WriteEncodable(name, field.Interface())
	case reflect.Interface: // structure encoded as ExtensionObject
		if field.IsNil() {
			return enc.writeNilValue(name)
		}
		return enc.WriteObject(name, field.Interface())
	case reflect.Struct:
		if field.CanAddr() {
			return enc.WriteEncodable(name, field.Addr().Interface())
		}
		return enc.WriteEncodable(name, field.Interface())
	case reflect.Slice: // []enum, []struct, []*struct
		if field.IsNil() {
			return enc.writeNilValue(name)
		}
		if err := enc.checkArrayLength(field.Len()); err != nil {
			return err
		}
		if name != "" {
			enc.beginField(name)
		}
		enc.s.WriteArrayStart()
		for i := 0; i < field.Len(); i++ {
			if i > 0 {
				enc.s.WriteMore()
			}
			if err := enc.encodeField("", field.Index(i)); err != nil {
				return err
			}
		}
		enc.s.WriteArrayEnd()
		return enc.err()
	}
	return BadEncodingError
}

func indirectType(typ reflect.Type) reflect.Type {
	for typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}
	return typ
}

// WriteBooleanArray writes a bool array.
func (enc *JSONEncoder) WriteBooleanArray(name string, value []bool) error {
	if value == nil {
		return enc.writeNilValue(name)
	}
	if err := enc.checkArrayLength(len(value)); err != nil {
		return err
	}
	if name != "" {
		enc.beginField(name)
	}
	enc.s.WriteArrayStart()
	for i := range value {
		if i > 0 {
			enc.s.WriteMore()
		}
		enc.s.WriteBool(value[i])
	}
	enc.s.WriteArrayEnd()
	return enc.err()
}

// WriteSByteArray writes a int8 array.
func (enc *JSONEncoder) WriteSByteArray(name string, value []int8) error {
	if value == nil {
		return enc.writeNilValue(name)
	}
	if err := enc.checkArrayLength(len(value)); err != nil {
		return err
	}
	if name != "" {
		enc.beginField(name)
	}
	enc.s.WriteArrayStart()
	for i := range value {
		if i > 0 {
			enc.s.WriteMore()
		}
		enc.s.WriteInt8(value[i])
	}
	enc.s.WriteArrayEnd()
	return enc.err()
}

// WriteByteArray writes a byte array.
func (enc *JSONEncoder) WriteByteArray(name string, value []byte) error {
	if value == nil {
		return enc.writeNilValue(name)
	}
	if err := enc.checkArrayLength(len(value)); err != nil {
		return err
	}
	if name != "" {
		enc.beginField(name)
	}
	enc.s.WriteArrayStart()
	for i := range value {
		if i > 0 {
			enc.s.WriteMore()
		}
		enc.s.WriteUint8(value[i])
	}
	enc.s.WriteArrayEnd()
	return enc.err()
}

// WriteInt16Array writes a int16 array.
func (enc *JSONEncoder) WriteInt16Array(name string, value []int16) error {
	if value == nil {
		return enc.writeNilValue(name)
	}
	if err := enc.checkArrayLength(len(value)); err != nil {
		return err
	}
	if name != "" {
		enc.beginField(name)
	}
	enc.s.WriteArrayStart()
	for i := range value {
		if i > 0 {
			enc.s.WriteMore()
		}
		enc.s.WriteInt16(value[i])
	}
	enc.s.WriteArrayEnd()
	return enc.err()
}

// WriteUInt16Array writes a uint16 array.
func (enc *JSONEncoder) WriteUInt16Array(name string, value []uint16) error {
	if value == nil {
		return enc.writeNilValue(name)
	}
	if err := enc.checkArrayLength(len(value)); err != nil {
		return err
	}
	if name != "" {
		enc.beginField(name)
	}
	enc.s.WriteArrayStart()
	for i := range value {
		if i > 0 {
			enc.s.WriteMore()
		}
		enc.s.WriteUint16(value[i])
	}
	enc.s.WriteArrayEnd()
	return enc.err()
}

// WriteInt32Array writes a int32 array.
func (enc *JSONEncoder) WriteInt32Array(name string, value []int32) error {
	if value == nil {
		return enc.writeNilValue(name)
	}
	if err := enc.checkArrayLength(len(value)); err != nil {
		return err
	}
	if name != "" {
		enc.beginField(name)
	}
	enc.s.WriteArrayStart()
	for i := range value {
		if i > 0 {
			enc.s.WriteMore()
		}
		enc.s.WriteInt32(value[i])
	}
	enc.s.WriteArrayEnd()
	return enc.err()
}

// WriteUInt32Array writes a uint32 array.
func (enc *JSONEncoder) WriteUInt32Array(name string, value []uint32) error {
	if value == nil {
		return enc.writeNilValue(name)
	}
	if err := enc.checkArrayLength(len(value)); err != nil {
		return err
	}
	if name != "" {
		enc.beginField(name)
	}
	enc.s.WriteArrayStart()
	for i := range value {
		if i > 0 {
			enc.s.WriteMore()
		}
		enc.s.WriteUint32(value[i])
	}
	enc.s.WriteArrayEnd()
	return enc.err()
}

// WriteInt64Array writes a int64 array.
func (enc *JSONEncoder) WriteInt64Array(name string, value []int64) error {
	if value == nil {
		return enc.writeNilValue(name)
	}
	if err := enc.checkArrayLength(len(value)); err != nil {
		return err
	}
	if name != "" {
		enc.beginField(name)
	}
	enc.s.WriteArrayStart()
	for i := range value {
		if i > 0 {
			enc.s.WriteMore()
		}
		enc.s.WriteString(strconv.FormatInt(value[i], 10))
	}
	enc.s.WriteArrayEnd()
	return enc.err()
}

// WriteUInt64Array writes a uint64 array.
func (enc *JSONEncoder) WriteUInt64Array(name string, value []uint64) error {
	if value == nil {
		return enc.writeNilValue(name)
	}
	if err := enc.checkArrayLength(len(value)); err != nil {
		return err
	}
	if name != "" {
		enc.beginField(name)
	}
	enc.s.WriteArrayStart()
	for i := range value {
		if i > 0 {
			enc.s.WriteMore()
		}
		enc.s.WriteString(strconv.FormatUint(value[i], 10))
	}
	enc.s.WriteArrayEnd()
	return enc.err()
}

// WriteFloatArray writes a float32 array.
func (enc *JSONEncoder) WriteFloatArray(name string, value []float32) error {
	if value == nil {
		return enc.writeNilValue(name)
	}
	if err := enc.checkArrayLength(len(value)); err != nil {
		return err
	}
	if name != "" {
		enc.beginField(name)
	}
	enc.s.WriteArrayStart()
	for i := range value {
		if i > 0 {
			enc.s.WriteMore()
		}
		enc.writeFloat(float64(value[i]), 32)
	}
	enc.s.WriteArrayEnd()
	return enc.err()
}

// WriteDoubleArray writes a float64 array.
func (enc *JSONEncoder) WriteDoubleArray(name string, value []float64) error {
	if value == nil {
		return enc.writeNilValue(name)
	}
	if err := enc.checkArrayLength(len(value)); err != nil {
		return err
	}
	if name != "" {
		enc.beginField(name)
	}
	enc.s.WriteArrayStart()
	for i := range value {
		if i > 0 {
			enc.s.WriteMore()
		}
		enc.writeFloat(value[i], 64)
	}
	enc.s.WriteArrayEnd()
	return enc.err()
}

// WriteStringArray writes a string array.
func (enc *JSONEncoder) WriteStringArray(name string, value []string) error {
	if value == nil {
		return enc.writeNilValue(name)
	}
	if err := enc.checkArrayLength(len(value)); err != nil {
		return err
	}
	if name != "" {
		enc.beginField(name)
	}
	enc.s.WriteArrayStart()
	for i := range value {
		if i > 0 {
			enc.s.WriteMore()
		}
		if err := enc.WriteString("", value[i]); err != nil {
			return err
		}
	}
	enc.s.WriteArrayEnd()
	return enc.err()
}

// WriteDateTimeArray writes a Time array.
func (enc *JSONEncoder) WriteDateTimeArray(name string, value []time.Time) error {
	if value == nil {
		return enc.writeNilValue(name)
	}
	if err := enc.checkArrayLength(len(value)); err != nil {
		return err
	}
	if name != "" {
		enc.beginField(name)
	}
	enc.s.WriteArrayStart()
	for i := range value {
		if i > 0 {
			enc.s.WriteMore()
		}
		enc.s.WriteString(formatDateTime(value[i]))
	}
	enc.s.WriteArrayEnd()
	return enc.err()
}

// WriteGUIDArray writes a UUID array.
func (enc *JSONEncoder) WriteGUIDArray(name string, value []uuid.UUID) error {
	if value == nil {
		return enc.writeNilValue(name)
	}
	if err := enc.checkArrayLength(len(value)); err != nil {
		return err
	}
	if name != "" {
		enc.beginField(name)
	}
	enc.s.WriteArrayStart()
	for i := range value {
		if i > 0 {
			enc.s.WriteMore()
		}
		enc.s.WriteString(value[i].String())
	}
	enc.s.WriteArrayEnd()
	return enc.err()
}

// WriteByteStringArray writes a ByteString array.
func (enc *JSONEncoder) WriteByteStringArray(name string, value []ByteString) error {
	if value == nil {
		return enc.writeNilValue(name)
	}
	if err := enc.checkArrayLength(len(value)); err != nil {
		return err
	}
	if name != "" {
		enc.beginField(name)
	}
	enc.s.WriteArrayStart()
	for i := range value {
		if i > 0 {
			enc.s.WriteMore()
		}
		if err := enc.WriteByteString("", value[i]); err != nil {
			return err
		}
	}
	enc.s.WriteArrayEnd()
	return enc.err()
}

// WriteXMLElementArray writes a XmlElement array.
func (enc *JSONEncoder) WriteXMLElementArray(name string, value []XMLElement) error {
	if value == nil {
		return enc.writeNilValue(name)
	}
	if err := enc.checkArrayLength(len(value)); err != nil {
		return err
	}
	if name != "" {
		enc.beginField(name)
	}
	enc.s.WriteArrayStart()
	for i := range value {
		if i > 0 {
			enc.s.WriteMore()
		}
		if err := enc.WriteXMLElement("", value[i]); err != nil {
			return err
		}
	}
	enc.s.WriteArrayEnd()
	return enc.err()
}

// WriteNodeIDArray writes a NodeID array.
func (enc *JSONEncoder) WriteNodeIDArray(name string, value []NodeID) error {
	if value == nil {
		return enc.writeNilValue(name)
	}
	if err := enc.checkArrayLength(len(value)); err != nil {
		return err
	}
	if name != "" {
		enc.beginField(name)
	}
	enc.s.WriteArrayStart()
	for i := range value {
		if i > 0 {
			enc.s.WriteMore()
		}
		if err := enc.WriteNodeID("", value[i]); err != nil {
			return err
		}
	}
	enc.s.WriteArrayEnd()
	return enc.err()
}

// WriteExpandedNodeIDArray writes an ExpandedNodeID array.
func (enc *JSONEncoder) WriteExpandedNodeIDArray(name string, value []ExpandedNodeID) error {
	if value == nil {
		return enc.writeNilValue(name)
	}
	if err := enc.checkArrayLength(len(value)); err != nil {
		return err
	}
	if name != "" {
		enc.beginField(name)
	}
	enc.s.WriteArrayStart()
	for i := range value {
		if i > 0 {
			enc.s.WriteMore()
		}
		if err := enc.WriteExpandedNodeID("", value[i]); err != nil {
			return err
		}
	}
	enc.s.WriteArrayEnd()
	return enc.err()
}

// WriteStatusCodeArray writes a StatusCode array.
func (enc *JSONEncoder) WriteStatusCodeArray(name string, value []StatusCode) error {
	if value == nil {
		return enc.writeNilValue(name)
	}
	if err := enc.checkArrayLength(len(value)); err != nil {
		return err
	}
	if name != "" {
		enc.beginField(name)
	}
	enc.s.WriteArrayStart()
	for i := range value {
		if i > 0 {
			enc.s.WriteMore()
		}
		if err := enc.WriteStatusCode("", value[i]); err != nil {
			return err
		}
	}
	enc.s.WriteArrayEnd()
	return enc.err()
}

// WriteQualifiedNameArray writes a QualifiedName array.
func (enc *JSONEncoder) WriteQualifiedNameArray(name string, value []QualifiedName) error {
	if value == nil {
		return enc.writeNilValue(name)
	}
	if err := enc.checkArrayLength(len(value)); err != nil {
		return err
	}
	if name != "" {
		enc.beginField(name)
	}
	enc.s.WriteArrayStart()
	for i := range value {
		if i > 0 {
			enc.s.WriteMore()
		}
		if err := enc.WriteQualifiedName("", value[i]); err != nil {
			return err
		}
	}
	enc.s.WriteArrayEnd()
	return enc.err()
}

// WriteLocalizedTextArray writes a LocalizedText array.
func (enc *JSONEncoder) WriteLocalizedTextArray(name string, value []LocalizedText) error {
	if value == nil {
		return enc.writeNilValue(name)
	}
	if err := enc.checkArrayLength(len(value)); err != nil {
		return err
	}
	if name != "" {
		enc.beginField(name)
	}
	enc.s.WriteArrayStart()
	for i := range value {
		if i > 0 {
			enc.s.WriteMore()
		}
		if err := enc.WriteLocalizedText("", value[i]); err != nil {
			return err
		}
	}
	enc.s.WriteArrayEnd()
	return enc.err()
}

// WriteExtensionObjectArray writes an ExtensionObject array.
func (enc *JSONEncoder) WriteExtensionObjectArray(name string, value []*ExtensionObject) error {
	if value == nil {
		return enc.writeNilValue(name)
	}
	if err := enc.checkArrayLength(len(value)); err != nil {
		return err
	}
	if name != "" {
		enc.beginField(name)
	}
	enc.s.WriteArrayStart()
	for i := range value {
		if i > 0 {
			enc.s.WriteMore()
		}
		if err := enc.WriteExtensionObject("", value[i]); err != nil {
			return err
		}
	}
	enc.s.WriteArrayEnd()
	return enc.err()
}

// WriteObjectArray writes a slice of structures as an ExtensionObject array.
func (enc *JSONEncoder) WriteObjectArray(name string, value []interface{}) error {
	if value == nil {
		return enc.writeNilValue(name)
	}
	if err := enc.checkArrayLength(len(value)); err != nil {
		return err
	}
	if name != "" {
		enc.beginField(name)
	}
	enc.s.WriteArrayStart()
	for i := range value {
		if i > 0 {
			enc.s.WriteMore()
		}
		if err := enc.WriteObject("", value[i]); err != nil {
			return err
		}
	}
	enc.s.WriteArrayEnd()
	return enc.err()
}

// WriteDataValueArray writes a DataValue array.
func (enc *JSONEncoder) WriteDataValueArray(name string, value []*DataValue) error {
	if value == nil {
		return enc.writeNilValue(name)
	}
	if err := enc.checkArrayLength(len(value)); err != nil {
		return err
	}
	if name != "" {
		enc.beginField(name)
	}
	enc.s.WriteArrayStart()
	for i := range value {
		if i > 0 {
			enc.s.WriteMore()
		}
		if err := enc.WriteDataValue("", value[i]); err != nil {
			return err
		}
	}
	enc.s.WriteArrayEnd()
	return enc.err()
}

// WriteVariantArray writes a Variant array.
func (enc *JSONEncoder) WriteVariantArray(name string, value []*Variant) error {
	if value == nil {
		return enc.writeNilValue(name)
	}
	if err := enc.checkArrayLength(len(value)); err != nil {
		return err
	}
	if name != "" {
		enc.beginField(name)
	}
	enc.s.WriteArrayStart()
	for i := range value {
		if i > 0 {
			enc.s.WriteMore()
		}
		if err := enc.WriteVariant("", value[i]); err != nil {
			return err
		}
	}
	enc.s.WriteArrayEnd()
	return enc.err()
}

// WriteDiagnosticInfoArray writes a DiagnosticInfo array.
func (enc *JSONEncoder) WriteDiagnosticInfoArray(name string, value []*DiagnosticInfo) error {
	if value == nil {
		return enc.writeNilValue(name)
	}
	if err := enc.checkArrayLength(len(value)); err != nil {
		return err
	}
	if name != "" {
		enc.beginField(name)
	}
	enc.s.WriteArrayStart()
	for i := range value {
		if i > 0 {
			enc.s.WriteMore()
		}
		if err := enc.WriteDiagnosticInfo("", value[i]); err != nil {
			return err
		}
	}
	enc.s.WriteArrayEnd()
	return enc.err()
}
