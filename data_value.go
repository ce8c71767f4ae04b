// Copyright 2023 Converter Systems LLC. All rights reserved.

package uajson

import (
	"fmt"
	"time"
)

// DataValue holds the value, quality and timestamps.
type DataValue struct {
	value             *Variant
	statusCode        StatusCode
	sourceTimestamp   time.Time
	sourcePicoseconds uint16
	serverTimestamp   time.Time
	serverPicoseconds uint16
}

// NewDataValue returns a new DataValue.
func NewDataValue(value *Variant, statusCode StatusCode, sourceTimestamp time.Time, sourcePicoseconds uint16, serverTimestamp time.Time, serverPicoseconds uint16) *DataValue {
	return &DataValue{value, statusCode, sourceTimestamp, sourcePicoseconds, serverTimestamp, serverPicoseconds}
}

// NewDataValueVariant returns a new DataValue.
func NewDataValueVariant(value *Variant, statusCode StatusCode, sourceTimestamp time.Time, sourcePicoseconds uint16, serverTimestamp time.Time, serverPicoseconds uint16) *DataValue {
	return &DataValue{value, statusCode, sourceTimestamp, sourcePicoseconds, serverTimestamp, serverPicoseconds}
}

// NewDataValueBoolean returns a new DataValue.
func NewDataValueBoolean(value bool, statusCode StatusCode, sourceTimestamp time.Time, sourcePicoseconds uint16, serverTimestamp time.Time, serverPicoseconds uint16) *DataValue {
	return &DataValue{NewVariantBoolean(value), statusCode, sourceTimestamp, sourcePicoseconds, serverTimestamp, serverPicoseconds}
}

// NewDataValueInt32 returns a new DataValue.
func NewDataValueInt32(value int32, statusCode StatusCode, sourceTimestamp time.Time, sourcePicoseconds uint16, serverTimestamp time.Time, serverPicoseconds uint16) *DataValue {
	return &DataValue{NewVariantInt32(value), statusCode, sourceTimestamp, sourcePicoseconds, serverTimestamp, serverPicoseconds}
}

// NewDataValueDouble returns a new DataValue.
func NewDataValueDouble(value float64, statusCode StatusCode, sourceTimestamp time.Time, sourcePicoseconds uint16, serverTimestamp time.Time, serverPicoseconds uint16) *DataValue {
	return &DataValue{NewVariantDouble(value), statusCode, sourceTimestamp, sourcePicoseconds, serverTimestamp, serverPicoseconds}
}

// NewDataValueString returns a new DataValue.
func NewDataValueString(value string, statusCode StatusCode, sourceTimestamp time.Time, sourcePicoseconds uint16, serverTimestamp time.Time, serverPicoseconds uint16) *DataValue {
	return &DataValue{NewVariantString(value), statusCode, sourceTimestamp, sourcePicoseconds, serverTimestamp, serverPicoseconds}
}

// NilDataValue is the nil value.
var NilDataValue = DataValue{}

// InnerVariant returns the value as a Variant.
func (d *DataValue) InnerVariant() *Variant {
	return d.value
}

// Value returns the value.
func (d *DataValue) Value() interface{} {
	if d.value == nil {
		return nil
	}
	return d.value.Value()
}

// StatusCode returns the quality of the value.
func (d *DataValue) StatusCode() StatusCode {
	return d.statusCode
}

// SourceTimestamp returns the time the source provided the value.
func (d *DataValue) SourceTimestamp() time.Time {
	return d.sourceTimestamp
}

// SourcePicoseconds returns the fraction of a millisecond of the source timestamp.
func (d *DataValue) SourcePicoseconds() uint16 {
	return d.sourcePicoseconds
}

// ServerTimestamp returns the time the server observed the value.
func (d *DataValue) ServerTimestamp() time.Time {
	return d.serverTimestamp
}

// ServerPicoseconds returns the fraction of a millisecond of the server timestamp.
func (d *DataValue) ServerPicoseconds() uint16 {
	return d.serverPicoseconds
}

// String returns a string representation of the DataValue.
func (d *DataValue) String() string {
	return fmt.Sprintf("{value: %v, status: %s, sourceTimestamp: %s}", d.Value(), d.statusCode, d.sourceTimestamp)
}
