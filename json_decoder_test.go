// Copyright 2023 Converter Systems LLC. All rights reserved.

package uajson_test

import (
	"encoding/binary"
	"io"
	"reflect"
	"testing"

	"github.com/awcullen/uajson"
	"gotest.tools/assert"
)

func newTestDecoder(t *testing.T, doc string, ec uajson.EncodingContext, opts ...uajson.JSONDecoderOption) *uajson.JSONDecoder {
	t.Helper()
	dec, err := uajson.NewJSONDecoderFromBytes([]byte(doc), ec, opts...)
	if err != nil {
		t.Fatal(err)
	}
	return dec
}

func TestReadFieldOrderIndependence(t *testing.T) {
	docs := []string{
		`{"IdType":1,"Id":"Demo","Namespace":2}`,
		`{"Namespace":2,"Id":"Demo","IdType":1}`,
		`{"Id":"Demo","IdType":1,"Namespace":2}`,
	}
	want := uajson.NewNodeIDString(2, "Demo")
	for _, doc := range docs {
		dec := newTestDecoder(t, doc, uajson.NewEncodingContext())
		got, err := dec.ReadNodeID("")
		if err != nil {
			t.Fatal(err)
		}
		assert.Assert(t, got == want)
	}
}

func TestReadInt64Tolerance(t *testing.T) {
	dec := newTestDecoder(t, `{"A":42,"B":"42"}`, uajson.NewEncodingContext())
	a, err := dec.ReadInt64("A")
	if err != nil {
		t.Fatal(err)
	}
	b, err := dec.ReadInt64("B")
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, a, int64(42))
	assert.Equal(t, b, int64(42))

	u, err := dec.ReadUInt64("B")
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, u, uint64(42))
}

func TestReadMissingFieldDefaults(t *testing.T) {
	dec := newTestDecoder(t, `{}`, uajson.NewEncodingContext())
	i, err := dec.ReadInt32("X")
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, i, int32(0))
	s, err := dec.ReadString("X")
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, s, "")
	v, err := dec.ReadVariant("X")
	if err != nil {
		t.Fatal(err)
	}
	assert.Assert(t, v.IsNil())
	a, err := dec.ReadInt32Array("X")
	if err != nil {
		t.Fatal(err)
	}
	assert.Assert(t, a == nil)
}

func TestReadWrongKindFails(t *testing.T) {
	dec := newTestDecoder(t, `{"X":"not a number","Y":[1],"Z":1.5}`, uajson.NewEncodingContext())
	if _, err := dec.ReadInt32("X"); err != uajson.BadDecodingError {
		t.Fatalf("expected BadDecodingError, got %v", err)
	}
	if _, err := dec.ReadBoolean("Y"); err != uajson.BadDecodingError {
		t.Fatalf("expected BadDecodingError, got %v", err)
	}
	if _, err := dec.ReadInt32("Z"); err != uajson.BadDecodingError {
		t.Fatalf("expected BadDecodingError, got %v", err)
	}
}

func TestReadNodeIDUnknownIDType(t *testing.T) {
	dec := newTestDecoder(t, `{"IdType":7,"Id":"x"}`, uajson.NewEncodingContext())
	_, err := dec.ReadNodeID("")
	assert.Equal(t, err, uajson.BadDecodingError)
}

func TestReadExpandedNodeIDNamespaceForms(t *testing.T) {
	dec := newTestDecoder(t, `{"IdType":1,"Id":"Demo","Namespace":2}`, uajson.NewEncodingContext())
	got, err := dec.ReadExpandedNodeID("")
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, got.NamespaceIndex(), uint16(2))

	dec = newTestDecoder(t, `{"IdType":1,"Id":"Demo","Namespace":"urn:site:one","ServerUri":3}`, uajson.NewEncodingContext())
	got, err = dec.ReadExpandedNodeID("")
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, got.NamespaceURI(), "urn:site:one")
	assert.Equal(t, got.ServerIndex(), uint32(3))

	dec = newTestDecoder(t, `{"IdType":1,"Id":"Demo","Namespace":true}`, uajson.NewEncodingContext())
	_, err = dec.ReadExpandedNodeID("")
	assert.Equal(t, err, uajson.BadDecodingError)
}

func TestReadVariantMissingBody(t *testing.T) {
	dec := newTestDecoder(t, `{"Type":6}`, uajson.NewEncodingContext())
	_, err := dec.ReadVariant("")
	assert.Equal(t, err, uajson.BadDecodingError)
}

func TestReadVariantDimensionLimit(t *testing.T) {
	ec := uajson.NewEncodingContextWithLimits(nil, nil, 0, 0, 1000)
	dec := newTestDecoder(t, `{"Type":6,"Body":[],"Dimensions":[1001,1]}`, ec)
	_, err := dec.ReadVariant("")
	assert.Equal(t, err, uajson.BadEncodingLimitsExceeded)
}

func TestReadVariantShapeMismatch(t *testing.T) {
	cases := []string{
		`{"Type":6,"Body":[[1,2],[3,4,5,6]],"Dimensions":[2,3]}`,
		`{"Type":6,"Body":[1,2,3,4,5,6],"Dimensions":[2,3]}`,
		`{"Type":6,"Body":[[[1],[2],[3]],[[4],[5],[6]]],"Dimensions":[2,3]}`,
		`{"Type":6,"Body":42,"Dimensions":[2,3]}`,
	}
	for _, doc := range cases {
		dec := newTestDecoder(t, doc, uajson.NewEncodingContext())
		_, err := dec.ReadVariant("")
		assert.Equal(t, err, uajson.BadDecodingError)
	}
}

func TestReadStringLimit(t *testing.T) {
	ec := uajson.NewEncodingContextWithLimits(nil, nil, 2, 0, 0)
	dec := newTestDecoder(t, `{"X":"abc"}`, ec)
	_, err := dec.ReadString("X")
	assert.Equal(t, err, uajson.BadEncodingLimitsExceeded)
}

func TestReadArrayLimit(t *testing.T) {
	ec := uajson.NewEncodingContextWithLimits(nil, nil, 0, 0, 2)
	dec := newTestDecoder(t, `[1,2,3]`, ec)
	_, err := dec.ReadInt32Array("")
	assert.Equal(t, err, uajson.BadEncodingLimitsExceeded)
}

func TestReadMalformedDocument(t *testing.T) {
	_, err := uajson.NewJSONDecoderFromBytes([]byte(`{"X":`), uajson.NewEncodingContext())
	assert.Equal(t, err, uajson.BadDecodingError)
}

func TestReadNestingDepthBounded(t *testing.T) {
	doc := ""
	for i := 0; i < 40; i++ {
		doc += `{"Type":24,"Body":`
	}
	doc += `null`
	for i := 0; i < 40; i++ {
		doc += `}`
	}
	dec := newTestDecoder(t, doc, uajson.NewEncodingContext(), uajson.WithMaxNestingDepth(10))
	_, err := dec.ReadVariant("")
	assert.Equal(t, err, uajson.BadDecodingError)
}

// pointForTest is a structure registered for extension object tests.
type pointForTest struct {
	X int32
	Y int32
}

func init() {
	uajson.RegisterBinaryEncodingID(reflect.TypeOf(pointForTest{}), uajson.ParseExpandedNodeID("ns=2;i=5001"))
}

func TestReadObjectStructure(t *testing.T) {
	dec := newTestDecoder(t, `{"TypeId":{"IdType":0,"Id":5001,"Namespace":2},"Body":{"X":3,"Y":4}}`, uajson.NewEncodingContext())
	got, err := dec.ReadObject("")
	if err != nil {
		t.Fatal(err)
	}
	p, ok := got.(*pointForTest)
	assert.Assert(t, ok)
	assert.Assert(t, *p == pointForTest{3, 4})
}

func TestReadObjectUnknownTypeID(t *testing.T) {
	dec := newTestDecoder(t, `{"TypeId":{"Id":59999},"Body":{"X":3}}`, uajson.NewEncodingContext())
	_, err := dec.ReadObject("")
	assert.Equal(t, err, uajson.BadDecodingError)
}

// pointBinaryDecoder mimics a nested binary decoder for pointForTest.
type pointBinaryDecoder struct {
	r io.Reader
}

func (d *pointBinaryDecoder) Decode(value interface{}) error {
	p, ok := value.(*pointForTest)
	if !ok {
		return uajson.BadDecodingError
	}
	var bs [8]byte
	if _, err := io.ReadFull(d.r, bs[:]); err != nil {
		return uajson.BadDecodingError
	}
	p.X = int32(binary.LittleEndian.Uint32(bs[:4]))
	p.Y = int32(binary.LittleEndian.Uint32(bs[4:]))
	return nil
}

func TestReadObjectByteStringBody(t *testing.T) {
	// little-endian int32 pair {7, 9} is BwAAAAkAAAA=
	doc := `{"TypeId":{"Id":5001,"Namespace":2},"Encoding":1,"Body":"BwAAAAkAAAA="}`

	// without a factory the body cannot be reified
	dec := newTestDecoder(t, doc, uajson.NewEncodingContext())
	_, err := dec.ReadObject("")
	assert.Equal(t, err, uajson.BadDecodingError)

	factory := func(r io.Reader, ec uajson.EncodingContext, keepOpen bool) (uajson.BodyDecoder, error) {
		return &pointBinaryDecoder{r}, nil
	}
	dec = newTestDecoder(t, doc, uajson.NewEncodingContext(), uajson.WithBinaryDecoderFactory(factory))
	got, err := dec.ReadObject("")
	if err != nil {
		t.Fatal(err)
	}
	p, ok := got.(*pointForTest)
	assert.Assert(t, ok)
	assert.Assert(t, *p == pointForTest{7, 9})
}

func TestReadObjectXMLBodyRequiresFactory(t *testing.T) {
	doc := `{"TypeId":{"Id":5001,"Namespace":2},"Encoding":2,"Body":"<Point><X>7</X><Y>9</Y></Point>"}`
	dec := newTestDecoder(t, doc, uajson.NewEncodingContext())
	_, err := dec.ReadObject("")
	assert.Equal(t, err, uajson.BadDecodingError)
}

func TestReadExtensionObjectPreservesXML(t *testing.T) {
	doc := `{"TypeId":{"Id":5001,"Namespace":2},"Encoding":2,"Body":"<Point/>"}`
	dec := newTestDecoder(t, doc, uajson.NewEncodingContext())
	eo, err := dec.ReadExtensionObject("")
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, eo.Encoding(), uajson.ExtensionObjectEncodingXMLElement)
	assert.Equal(t, eo.Body().(uajson.XMLElement), uajson.XMLElement("<Point/>"))
}

func TestReadExtensionObjectInvalidEncoding(t *testing.T) {
	dec := newTestDecoder(t, `{"TypeId":{"Id":5001,"Namespace":2},"Encoding":3,"Body":"x"}`, uajson.NewEncodingContext())
	_, err := dec.ReadExtensionObject("")
	assert.Equal(t, err, uajson.BadDecodingError)
}

func TestDecoderUseAfterClose(t *testing.T) {
	dec := newTestDecoder(t, `{}`, uajson.NewEncodingContext())
	if err := dec.Close(); err != nil {
		t.Fatal(err)
	}
	_, err := dec.ReadInt32("")
	assert.Assert(t, err != nil)
}
