// Copyright 2023 Converter Systems LLC. All rights reserved.

package uajson_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/awcullen/uajson"
	"github.com/djherbis/buffer"
	"github.com/google/uuid"
	"gotest.tools/assert"
)

// roundTripVariant encodes a variant under a named member, decodes it
// again and returns the result.
func roundTripVariant(t *testing.T, in *uajson.Variant, ec uajson.EncodingContext) *uajson.Variant {
	t.Helper()
	buf := &bytes.Buffer{}
	enc := newTestEncoder(t, buf, ec)
	if err := enc.WriteVariant("Value", in); err != nil {
		t.Fatal(err)
	}
	if err := enc.Close(); err != nil {
		t.Fatal(err)
	}
	dec := newTestDecoder(t, buf.String(), ec)
	out, err := dec.ReadVariant("Value")
	if err != nil {
		t.Fatal(err)
	}
	return out
}

func TestRoundTripVariantScalars(t *testing.T) {
	guid := uuid.MustParse("5ce9dbce-5d79-434c-9ac3-1cfba9a6e92c")
	when := time.Date(2023, 4, 5, 6, 7, 8, 900000000, time.UTC)
	cases := []*uajson.Variant{
		uajson.NewVariantBoolean(true),
		uajson.NewVariantSByte(-5),
		uajson.NewVariantByte(200),
		uajson.NewVariantInt16(-12345),
		uajson.NewVariantUInt16(54321),
		uajson.NewVariantInt32(42),
		uajson.NewVariantUInt32(4000000000),
		uajson.NewVariantInt64(-9007199254740993),
		uajson.NewVariantUInt64(9007199254740993),
		uajson.NewVariantFloat(-6.5),
		uajson.NewVariantDouble(3.1415926535),
		uajson.NewVariantString("hello, world"),
		uajson.NewVariantDateTime(when),
		uajson.NewVariantGUID(guid),
		uajson.NewVariantByteString(uajson.ByteString([]byte{1, 2, 3})),
		uajson.NewVariantXMLElement(uajson.XMLElement("<a>1</a>")),
		uajson.NewVariantNodeID(uajson.NewNodeIDString(2, "Demo")),
		uajson.NewVariantExpandedNodeID(uajson.NewExpandedNodeIDString(0, "urn:site:one", "Demo")),
		uajson.NewVariantStatusCode(uajson.BadNodeIDUnknown),
		uajson.NewVariantQualifiedName(uajson.NewQualifiedName(2, "Demo")),
		uajson.NewVariantLocalizedText(uajson.NewLocalizedText("Hello", "en")),
	}
	for _, in := range cases {
		out := roundTripVariant(t, in, uajson.NewEncodingContext())
		assert.Assert(t, in.Equal(out), "variant type %d", in.Type())
	}
}

func TestRoundTripVariantArrays(t *testing.T) {
	cases := []*uajson.Variant{
		uajson.NewVariantBooleanArray([]bool{true, false, true}),
		uajson.NewVariantInt32Array([]int32{1, 0, -3}),
		uajson.NewVariantUInt64Array([]uint64{1, 9007199254740993}),
		uajson.NewVariantDoubleArray([]float64{1.5, -2.25}),
		uajson.NewVariantStringArray([]string{"a", "b"}),
		uajson.NewVariantNodeIDArray([]uajson.NodeID{
			uajson.NewNodeIDNumeric(0, 85),
			uajson.NewNodeIDString(2, "Demo"),
		}),
		uajson.NewVariantLocalizedTextArray([]uajson.LocalizedText{
			uajson.NewLocalizedText("Hello", "en"),
			uajson.NewLocalizedText("Hallo", "de"),
		}),
	}
	for _, in := range cases {
		out := roundTripVariant(t, in, uajson.NewEncodingContext())
		assert.Assert(t, in.Equal(out), "variant type %d", in.Type())
	}
}

func TestRoundTripVariantMultiDimensional(t *testing.T) {
	in, err := uajson.NewVariantMultiArray([]int32{1, 2, 3, 4, 5, 6}, uajson.VariantTypeInt32, []int32{2, 3})
	if err != nil {
		t.Fatal(err)
	}
	out := roundTripVariant(t, in, uajson.NewEncodingContext())
	assert.Assert(t, in.Equal(out))
	assert.DeepEqual(t, out.Value().([]int32), []int32{1, 2, 3, 4, 5, 6})
	assert.DeepEqual(t, out.ArrayDimensions(), []int32{2, 3})
}

func TestRoundTripVariantOfVariants(t *testing.T) {
	in := uajson.NewVariantVariantArray([]*uajson.Variant{
		uajson.NewVariantInt32(1),
		uajson.NewVariantString("two"),
	})
	out := roundTripVariant(t, in, uajson.NewEncodingContext())
	assert.Assert(t, in.Equal(out))
}

func TestRoundTripVariantExtensionObject(t *testing.T) {
	in := uajson.NewVariantObject(&pointForTest{3, 4})
	out := roundTripVariant(t, in, uajson.NewEncodingContext())
	p, ok := out.Value().(*pointForTest)
	assert.Assert(t, ok)
	assert.Assert(t, *p == pointForTest{3, 4})
}

func TestRoundTripDataValue(t *testing.T) {
	source := time.Date(2023, 4, 5, 6, 7, 8, 0, time.UTC)
	server := time.Date(2023, 4, 5, 6, 7, 9, 0, time.UTC)
	in := uajson.NewDataValueInt32(42, uajson.GoodClamped, source, 10, server, 20)

	buf := &bytes.Buffer{}
	enc := newTestEncoder(t, buf, uajson.NewEncodingContext())
	if err := enc.WriteDataValue("X", in); err != nil {
		t.Fatal(err)
	}
	if err := enc.Close(); err != nil {
		t.Fatal(err)
	}
	dec := newTestDecoder(t, buf.String(), uajson.NewEncodingContext())
	out, err := dec.ReadDataValue("X")
	if err != nil {
		t.Fatal(err)
	}
	assert.Assert(t, in.InnerVariant().Equal(out.InnerVariant()))
	assert.Equal(t, out.StatusCode(), uajson.GoodClamped)
	assert.Assert(t, out.SourceTimestamp().Equal(source))
	assert.Equal(t, out.SourcePicoseconds(), uint16(10))
	assert.Assert(t, out.ServerTimestamp().Equal(server))
	assert.Equal(t, out.ServerPicoseconds(), uint16(20))
}

func TestRoundTripDiagnosticInfo(t *testing.T) {
	inner := uajson.NewDiagnosticInfo(-1, -1, -1, 2, "inner detail", uajson.BadTimeout, nil)
	in := uajson.NewDiagnosticInfo(0, 1, -1, -1, "detail", uajson.BadNotFound, inner)

	buf := &bytes.Buffer{}
	enc := newTestEncoder(t, buf, uajson.NewEncodingContext())
	if err := enc.WriteDiagnosticInfo("X", in); err != nil {
		t.Fatal(err)
	}
	if err := enc.Close(); err != nil {
		t.Fatal(err)
	}
	dec := newTestDecoder(t, buf.String(), uajson.NewEncodingContext())
	out, err := dec.ReadDiagnosticInfo("X")
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, out.SymbolicID(), int32(0))
	assert.Equal(t, out.NamespaceURI(), int32(1))
	assert.Equal(t, out.Locale(), int32(-1))
	assert.Equal(t, out.AdditionalInfo(), "detail")
	assert.Equal(t, out.InnerStatusCode(), uajson.BadNotFound)
	assert.Equal(t, out.InnerDiagnosticInfo().LocalizedText(), int32(2))
	assert.Equal(t, out.InnerDiagnosticInfo().InnerStatusCode(), uajson.BadTimeout)
}

func TestRoundTripExtensionObjectByteString(t *testing.T) {
	id := uajson.ParseExpandedNodeID("ns=2;i=5001")
	in := uajson.NewExtensionObjectByteString(uajson.ByteString([]byte{9, 8, 7}), id)

	buf := &bytes.Buffer{}
	enc := newTestEncoder(t, buf, uajson.NewEncodingContext())
	if err := enc.WriteExtensionObject("X", in); err != nil {
		t.Fatal(err)
	}
	if err := enc.Close(); err != nil {
		t.Fatal(err)
	}
	dec := newTestDecoder(t, buf.String(), uajson.NewEncodingContext())
	out, err := dec.ReadExtensionObject("X")
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, out.Encoding(), uajson.ExtensionObjectEncodingByteString)
	assert.Equal(t, out.Body().(uajson.ByteString), uajson.ByteString([]byte{9, 8, 7}))
	assert.Assert(t, out.TypeID() == id)
}

func TestRoundTripDefaultElision(t *testing.T) {
	buf := &bytes.Buffer{}
	enc := newTestEncoder(t, buf, uajson.NewEncodingContext())
	if err := enc.WriteInt32("A", 0); err != nil {
		t.Fatal(err)
	}
	if err := enc.WriteString("B", ""); err != nil {
		t.Fatal(err)
	}
	if err := enc.WriteDateTime("C", time.Time{}); err != nil {
		t.Fatal(err)
	}
	if err := enc.WriteNodeID("D", uajson.NilNodeID); err != nil {
		t.Fatal(err)
	}
	if err := enc.Close(); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, buf.String(), `{}`)

	dec := newTestDecoder(t, buf.String(), uajson.NewEncodingContext())
	i, err := dec.ReadInt32("A")
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, i, int32(0))
	n, err := dec.ReadNodeID("D")
	if err != nil {
		t.Fatal(err)
	}
	assert.Assert(t, n.IsNil())
}

func TestRoundTripReadRequest(t *testing.T) {
	in := &uajson.ReadRequest{
		RequestHeader: uajson.RequestHeader{
			AuthenticationToken: uajson.NewNodeIDNumeric(0, 100),
			Timestamp:           time.Date(2023, 4, 5, 6, 7, 8, 0, time.UTC),
			RequestHandle:       7,
			TimeoutHint:         5000,
		},
		MaxAge:             1500,
		TimestampsToReturn: uajson.TimestampsToReturnBoth,
		NodesToRead: []*uajson.ReadValueID{
			{
				NodeID:      uajson.NewNodeIDString(2, "Demo.Static.Scalar.UInt32"),
				AttributeID: 13,
			},
			{
				NodeID:      uajson.NewNodeIDNumeric(0, 2258),
				AttributeID: 13,
			},
		},
	}
	buf := &bytes.Buffer{}
	enc := newTestEncoder(t, buf, uajson.NewEncodingContext())
	if err := enc.WriteRequest(in); err != nil {
		t.Fatal(err)
	}
	if err := enc.Close(); err != nil {
		t.Fatal(err)
	}

	dec := newTestDecoder(t, buf.String(), uajson.NewEncodingContext())
	var out uajson.ReadRequest
	if err := dec.ReadRequest(&out); err != nil {
		t.Fatal(err)
	}
	assert.Assert(t, out.RequestHeader.AuthenticationToken == in.RequestHeader.AuthenticationToken)
	assert.Assert(t, out.RequestHeader.Timestamp.Equal(in.RequestHeader.Timestamp))
	assert.Equal(t, out.RequestHeader.RequestHandle, uint32(7))
	assert.Equal(t, out.MaxAge, float64(1500))
	assert.Equal(t, out.TimestampsToReturn, uajson.TimestampsToReturnBoth)
	assert.Equal(t, len(out.NodesToRead), 2)
	assert.Assert(t, out.NodesToRead[0].NodeID == in.NodesToRead[0].NodeID)
	assert.Equal(t, out.NodesToRead[0].AttributeID, uint32(13))
	assert.Assert(t, out.NodesToRead[1].NodeID == in.NodesToRead[1].NodeID)
}

func TestRoundTripReadResponse(t *testing.T) {
	in := &uajson.ReadResponse{
		ResponseHeader: uajson.ResponseHeader{
			Timestamp:     time.Date(2023, 4, 5, 6, 7, 8, 0, time.UTC),
			RequestHandle: 7,
			ServiceResult: uajson.Good,
			StringTable:   []string{"a", "b"},
		},
		Results: []*uajson.DataValue{
			uajson.NewDataValueInt32(42, uajson.Good, time.Time{}, 0, time.Time{}, 0),
			uajson.NewDataValueString("x", uajson.UncertainInitialValue, time.Time{}, 0, time.Time{}, 0),
		},
	}
	buf := &bytes.Buffer{}
	enc := newTestEncoder(t, buf, uajson.NewEncodingContext())
	if err := enc.WriteResponse(in); err != nil {
		t.Fatal(err)
	}
	if err := enc.Close(); err != nil {
		t.Fatal(err)
	}

	dec := newTestDecoder(t, buf.String(), uajson.NewEncodingContext())
	var out uajson.ReadResponse
	if err := dec.ReadResponse(&out); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, out.ResponseHeader.RequestHandle, uint32(7))
	assert.DeepEqual(t, out.ResponseHeader.StringTable, []string{"a", "b"})
	assert.Equal(t, len(out.Results), 2)
	assert.Assert(t, out.Results[0].InnerVariant().Equal(in.Results[0].InnerVariant()))
	assert.Equal(t, out.Results[1].StatusCode(), uajson.UncertainInitialValue)
}

func TestRoundTripEncodable(t *testing.T) {
	in := &uajson.WriteValue{
		NodeID:      uajson.NewNodeIDString(2, "Demo"),
		AttributeID: 13,
		Value:       uajson.NewDataValueDouble(1.5, uajson.Good, time.Time{}, 0, time.Time{}, 0),
	}
	buf := &bytes.Buffer{}
	enc := newTestEncoder(t, buf, uajson.NewEncodingContext())
	if err := enc.WriteEncodable("V", in); err != nil {
		t.Fatal(err)
	}
	if err := enc.Close(); err != nil {
		t.Fatal(err)
	}
	dec := newTestDecoder(t, buf.String(), uajson.NewEncodingContext())
	var out uajson.WriteValue
	if err := dec.ReadEncodable("V", &out); err != nil {
		t.Fatal(err)
	}
	assert.Assert(t, out.NodeID == in.NodeID)
	assert.Equal(t, out.AttributeID, uint32(13))
	assert.Assert(t, out.Value.InnerVariant().Equal(in.Value.InnerVariant()))
}

func TestRoundTripThroughBuffer(t *testing.T) {
	buf := buffer.New(32 * 1024)
	enc, err := uajson.NewJSONEncoderFromBuffer(buf, uajson.NewEncodingContext(), uajson.WithLeaveSinkOpen(true))
	if err != nil {
		t.Fatal(err)
	}
	if err := enc.WriteVariant("Value", uajson.NewVariantInt32Array([]int32{1, 2, 3})); err != nil {
		t.Fatal(err)
	}
	if err := enc.Close(); err != nil {
		t.Fatal(err)
	}
	dec, err := uajson.NewJSONDecoderFromBuffer(buf, uajson.NewEncodingContext())
	if err != nil {
		t.Fatal(err)
	}
	out, err := dec.ReadVariant("Value")
	if err != nil {
		t.Fatal(err)
	}
	assert.DeepEqual(t, out.Value().([]int32), []int32{1, 2, 3})
}

func TestRegisterBinaryEncodingIDLookups(t *testing.T) {
	// the service types registered at init are resolvable both ways
	buf := &bytes.Buffer{}
	enc := newTestEncoder(t, buf, uajson.NewEncodingContext())
	if err := enc.WriteObject("X", &uajson.ReadRequest{RequestHeader: uajson.RequestHeader{RequestHandle: 1}}); err != nil {
		t.Fatal(err)
	}
	if err := enc.Close(); err != nil {
		t.Fatal(err)
	}
	dec := newTestDecoder(t, buf.String(), uajson.NewEncodingContext())
	got, err := dec.ReadObject("X")
	if err != nil {
		t.Fatal(err)
	}
	req, ok := got.(*uajson.ReadRequest)
	assert.Assert(t, ok)
	assert.Equal(t, req.RequestHeader.RequestHandle, uint32(1))
}
