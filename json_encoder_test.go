// Copyright 2023 Converter Systems LLC. All rights reserved.

package uajson_test

import (
	"bytes"
	"math"
	"testing"
	"time"

	"github.com/awcullen/uajson"
	"gotest.tools/assert"
)

func newTestEncoder(t *testing.T, buf *bytes.Buffer, ec uajson.EncodingContext, opts ...uajson.JSONEncoderOption) *uajson.JSONEncoder {
	t.Helper()
	enc, err := uajson.NewJSONEncoder(buf, ec, opts...)
	if err != nil {
		t.Fatal(err)
	}
	return enc
}

func TestWriteInt32(t *testing.T) {
	cases := []struct {
		in   int32
		json string
	}{
		{42, `{"X":42}`},
		{0, `{}`},
		{-1, `{"X":-1}`},
	}
	for _, c := range cases {
		buf := &bytes.Buffer{}
		enc := newTestEncoder(t, buf, uajson.NewEncodingContext())
		if err := enc.WriteInt32("X", c.in); err != nil {
			t.Fatal(err)
		}
		if err := enc.Close(); err != nil {
			t.Fatal(err)
		}
		assert.Equal(t, buf.String(), c.json)
	}
}

func TestWriteUInt64AsString(t *testing.T) {
	buf := &bytes.Buffer{}
	enc := newTestEncoder(t, buf, uajson.NewEncodingContext())
	if err := enc.WriteUInt64("", 9007199254740993); err != nil {
		t.Fatal(err)
	}
	if err := enc.Close(); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, buf.String(), `"9007199254740993"`)
}

func TestWriteEnumNonReversible(t *testing.T) {
	buf := &bytes.Buffer{}
	enc := newTestEncoder(t, buf, uajson.NewEncodingContext(), uajson.WithNonReversible())
	if err := enc.WriteEnum("TimestampsToReturn", uajson.TimestampsToReturnBoth); err != nil {
		t.Fatal(err)
	}
	if err := enc.Close(); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, buf.String(), `{"TimestampsToReturn":"Both_2"}`)
}

func TestWriteNodeID(t *testing.T) {
	cases := []struct {
		in   uajson.NodeID
		json string
	}{
		{uajson.NewNodeIDString(2, "Demo.Static.Scalar.UInt32"), `{"IdType":1,"Id":"Demo.Static.Scalar.UInt32","Namespace":2}`},
		{uajson.NewNodeIDNumeric(0, 85), `{"Id":85}`},
		{uajson.NewNodeIDNumeric(3, 256), `{"Id":256,"Namespace":3}`},
		{uajson.NewNodeIDOpaque(1, uajson.ByteString("abcd")), `{"IdType":3,"Id":"YWJjZA==","Namespace":1}`},
	}
	for _, c := range cases {
		buf := &bytes.Buffer{}
		enc := newTestEncoder(t, buf, uajson.NewEncodingContext())
		if err := enc.WriteNodeID("", c.in); err != nil {
			t.Fatal(err)
		}
		if err := enc.Close(); err != nil {
			t.Fatal(err)
		}
		assert.Equal(t, buf.String(), c.json)
	}
}

func TestWriteVariantMultiDimensional(t *testing.T) {
	v, err := uajson.NewVariantMultiArray([]int32{1, 2, 3, 4, 5, 6}, uajson.VariantTypeInt32, []int32{2, 3})
	if err != nil {
		t.Fatal(err)
	}
	buf := &bytes.Buffer{}
	enc := newTestEncoder(t, buf, uajson.NewEncodingContext())
	if err := enc.WriteVariant("", v); err != nil {
		t.Fatal(err)
	}
	if err := enc.Close(); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, buf.String(), `{"Type":6,"Body":[[1,2,3],[4,5,6]],"Dimensions":[2,3]}`)
}

func TestWriteVariantNonReversible(t *testing.T) {
	buf := &bytes.Buffer{}
	enc := newTestEncoder(t, buf, uajson.NewEncodingContext(), uajson.WithNonReversible())
	if err := enc.WriteVariant("", uajson.NewVariantInt32(5)); err != nil {
		t.Fatal(err)
	}
	if err := enc.Close(); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, buf.String(), `5`)
}

func TestWriteStatusCodeNonReversible(t *testing.T) {
	buf := &bytes.Buffer{}
	enc := newTestEncoder(t, buf, uajson.NewEncodingContext(), uajson.WithNonReversible())
	if err := enc.WriteStatusCode("", uajson.BadEncodingError); err != nil {
		t.Fatal(err)
	}
	if err := enc.Close(); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, buf.String(), `{"Code":2147876864,"Symbol":"BadEncodingError"}`)
}

func TestWriteStatusCodeGoodElided(t *testing.T) {
	for _, opts := range [][]uajson.JSONEncoderOption{nil, {uajson.WithNonReversible()}} {
		buf := &bytes.Buffer{}
		enc := newTestEncoder(t, buf, uajson.NewEncodingContext(), opts...)
		if err := enc.WriteStatusCode("Status", uajson.Good); err != nil {
			t.Fatal(err)
		}
		if err := enc.Close(); err != nil {
			t.Fatal(err)
		}
		assert.Equal(t, buf.String(), `{}`)
	}
}

func TestWriteLocalizedText(t *testing.T) {
	lt := uajson.NewLocalizedText("Hello", "en")

	buf := &bytes.Buffer{}
	enc := newTestEncoder(t, buf, uajson.NewEncodingContext())
	if err := enc.WriteLocalizedText("", lt); err != nil {
		t.Fatal(err)
	}
	if err := enc.Close(); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, buf.String(), `{"Locale":"en","Text":"Hello"}`)

	buf = &bytes.Buffer{}
	enc = newTestEncoder(t, buf, uajson.NewEncodingContext(), uajson.WithNonReversible())
	if err := enc.WriteLocalizedText("", lt); err != nil {
		t.Fatal(err)
	}
	if err := enc.Close(); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, buf.String(), `"Hello"`)
}

func TestWriteExpandedNodeIDNonReversible(t *testing.T) {
	ec := uajson.NewEncodingContextWithLimits(
		[]string{uajson.OPCUANamespaceURI, "urn:site:one", "urn:site:two"}, nil, 0, 0, 0)
	buf := &bytes.Buffer{}
	enc := newTestEncoder(t, buf, ec, uajson.WithNonReversible())
	if err := enc.WriteExpandedNodeID("", uajson.NewExpandedNodeID(uajson.NewNodeIDNumeric(2, 15))); err != nil {
		t.Fatal(err)
	}
	if err := enc.Close(); err != nil {
		t.Fatal(err)
	}
	// the reference emitter writes both the resolved uri and the index
	assert.Equal(t, buf.String(), `{"Id":15,"Namespace":"urn:site:two","NamespaceIndex":2}`)
}

func TestWriteStringLimit(t *testing.T) {
	ec := uajson.NewEncodingContextWithLimits(nil, nil, 4, 0, 0)
	buf := &bytes.Buffer{}
	enc := newTestEncoder(t, buf, ec)
	err := enc.WriteString("X", "hello")
	assert.Equal(t, err, uajson.BadEncodingLimitsExceeded)
}

func TestWriteArrayLimit(t *testing.T) {
	ec := uajson.NewEncodingContextWithLimits(nil, nil, 0, 0, 2)
	buf := &bytes.Buffer{}
	enc := newTestEncoder(t, buf, ec)
	err := enc.WriteInt32Array("X", []int32{1, 2, 3})
	assert.Equal(t, err, uajson.BadEncodingLimitsExceeded)
}

func TestWriteVariantDimensionLimit(t *testing.T) {
	ec := uajson.NewEncodingContextWithLimits(nil, nil, 0, 0, 4)
	v, err := uajson.NewVariantMultiArray([]int32{1, 2, 3, 4, 5, 6}, uajson.VariantTypeInt32, []int32{2, 3})
	if err != nil {
		t.Fatal(err)
	}
	buf := &bytes.Buffer{}
	enc := newTestEncoder(t, buf, ec)
	assert.Equal(t, enc.WriteVariant("X", v), uajson.BadEncodingLimitsExceeded)
}

func TestWriteDouble(t *testing.T) {
	cases := []struct {
		in   float64
		json string
	}{
		{-6.5, `-6.5`},
		{math.NaN(), `"NaN"`},
		{math.Inf(1), `"Infinity"`},
		{math.Inf(-1), `"-Infinity"`},
	}
	for _, c := range cases {
		buf := &bytes.Buffer{}
		enc := newTestEncoder(t, buf, uajson.NewEncodingContext())
		if err := enc.WriteDouble("", c.in); err != nil {
			t.Fatal(err)
		}
		if err := enc.Close(); err != nil {
			t.Fatal(err)
		}
		assert.Equal(t, buf.String(), c.json)
	}
}

func TestWriteDateTimeClamped(t *testing.T) {
	cases := []struct {
		in   time.Time
		json string
	}{
		{time.Date(2023, 4, 5, 6, 7, 8, 0, time.UTC), `"2023-04-05T06:07:08Z"`},
		{time.Date(1500, 1, 1, 0, 0, 0, 0, time.UTC), `"0001-01-01T00:00:00Z"`},
		{time.Date(10000, 1, 1, 0, 0, 0, 0, time.UTC), `"9999-12-31T23:59:59Z"`},
	}
	for _, c := range cases {
		buf := &bytes.Buffer{}
		enc := newTestEncoder(t, buf, uajson.NewEncodingContext())
		if err := enc.WriteDateTime("", c.in); err != nil {
			t.Fatal(err)
		}
		if err := enc.Close(); err != nil {
			t.Fatal(err)
		}
		assert.Equal(t, buf.String(), c.json)
	}
}

func TestWriteNilValuesNonReversible(t *testing.T) {
	buf := &bytes.Buffer{}
	enc := newTestEncoder(t, buf, uajson.NewEncodingContext(), uajson.WithNonReversible())
	if err := enc.WriteString("A", ""); err != nil {
		t.Fatal(err)
	}
	if err := enc.WriteByteString("B", uajson.NilByteString); err != nil {
		t.Fatal(err)
	}
	if err := enc.WriteInt32Array("C", nil); err != nil {
		t.Fatal(err)
	}
	if err := enc.Close(); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, buf.String(), `{"A":null,"B":null,"C":null}`)
}

func TestEncoderUseAfterClose(t *testing.T) {
	buf := &bytes.Buffer{}
	enc := newTestEncoder(t, buf, uajson.NewEncodingContext())
	if err := enc.Close(); err != nil {
		t.Fatal(err)
	}
	assert.Assert(t, enc.Flush() != nil)
}
