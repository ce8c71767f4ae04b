// Copyright 2023 Converter Systems LLC. All rights reserved.

package uajson

import (
	"reflect"
	"time"
)

// TimestampsToReturn selects which timestamps a server returns with a
// value.
type TimestampsToReturn int32

// TimestampsToReturns
const (
	TimestampsToReturnSource  TimestampsToReturn = 0
	TimestampsToReturnServer  TimestampsToReturn = 1
	TimestampsToReturnBoth    TimestampsToReturn = 2
	TimestampsToReturnNeither TimestampsToReturn = 3
)

// RequestHeader is the header of every service request.
type RequestHeader struct {
	AuthenticationToken NodeID
	Timestamp           time.Time
	RequestHandle       uint32
	ReturnDiagnostics   uint32
	AuditEntryID        string `json:"AuditEntryId"`
	TimeoutHint         uint32
	AdditionalHeader    *ExtensionObject
}

// ResponseHeader is the header of every service response.
type ResponseHeader struct {
	Timestamp          time.Time
	RequestHandle      uint32
	ServiceResult      StatusCode
	ServiceDiagnostics *DiagnosticInfo
	StringTable        []string
	AdditionalHeader   *ExtensionObject
}

// ReadValueID identifies an attribute of a node to read.
type ReadValueID struct {
	NodeID       NodeID `json:"NodeId"`
	AttributeID  uint32 `json:"AttributeId"`
	IndexRange   string
	DataEncoding QualifiedName
}

// ReadRequest returns values of attributes of one or more nodes.
// See https://reference.opcfoundation.org/v104/Core/docs/Part4/5.10.2/
type ReadRequest struct {
	RequestHeader      RequestHeader
	MaxAge             float64
	TimestampsToReturn TimestampsToReturn
	NodesToRead        []*ReadValueID
}

// ReadResponse returns the results of a ReadRequest.
type ReadResponse struct {
	ResponseHeader  ResponseHeader
	Results         []*DataValue
	DiagnosticInfos []*DiagnosticInfo
}

// WriteValue holds an attribute value to write.
type WriteValue struct {
	NodeID      NodeID `json:"NodeId"`
	AttributeID uint32 `json:"AttributeId"`
	IndexRange  string
	Value       *DataValue
}

// WriteRequest sets values of attributes of one or more nodes.
// See https://reference.opcfoundation.org/v104/Core/docs/Part4/5.10.4/
type WriteRequest struct {
	RequestHeader RequestHeader
	NodesToWrite  []*WriteValue
}

// WriteResponse returns the results of a WriteRequest.
type WriteResponse struct {
	ResponseHeader  ResponseHeader
	Results         []StatusCode
	DiagnosticInfos []*DiagnosticInfo
}

func init() {
	RegisterEnumValues(reflect.TypeOf(TimestampsToReturn(0)), map[int32]string{
		0: "Source",
		1: "Server",
		2: "Both",
		3: "Neither",
	})
	RegisterBinaryEncodingID(reflect.TypeOf(ReadRequest{}), ParseExpandedNodeID("i=631"))
	RegisterBinaryEncodingID(reflect.TypeOf(ReadResponse{}), ParseExpandedNodeID("i=634"))
	RegisterBinaryEncodingID(reflect.TypeOf(WriteRequest{}), ParseExpandedNodeID("i=673"))
	RegisterBinaryEncodingID(reflect.TypeOf(WriteResponse{}), ParseExpandedNodeID("i=676"))
}
