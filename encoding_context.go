// Copyright 2023 Converter Systems LLC. All rights reserved.

package uajson

// OPCUANamespaceURI is the URI at namespace index 0.
const OPCUANamespaceURI = "http://opcfoundation.org/UA/"

// EncodingContext provides the namespace and server tables and the
// length limits shared by an encoder and decoder pair. A limit of zero
// disables the check.
type EncodingContext interface {
	NamespaceURIs() []string
	ServerURIs() []string
	MaxStringLength() uint32
	MaxByteStringLength() uint32
	MaxArrayLength() uint32
}

type encodingContext struct {
	namespaceURIs       []string
	serverURIs          []string
	maxStringLength     uint32
	maxByteStringLength uint32
	maxArrayLength      uint32
}

// NewEncodingContext returns a default EncodingContext with the base
// namespace, the local server, and all limits disabled.
func NewEncodingContext() EncodingContext {
	return &encodingContext{
		namespaceURIs: []string{OPCUANamespaceURI},
		serverURIs:    []string{""},
	}
}

// NewEncodingContextWithLimits returns an EncodingContext with the given
// tables and limits. Index 0 of namespaceURIs is the base namespace and
// index 0 of serverURIs is the local server.
func NewEncodingContextWithLimits(namespaceURIs, serverURIs []string, maxStringLength, maxByteStringLength, maxArrayLength uint32) EncodingContext {
	if len(namespaceURIs) == 0 {
		namespaceURIs = []string{OPCUANamespaceURI}
	}
	if len(serverURIs) == 0 {
		serverURIs = []string{""}
	}
	return &encodingContext{namespaceURIs, serverURIs, maxStringLength, maxByteStringLength, maxArrayLength}
}

func (ec *encodingContext) NamespaceURIs() []string {
	return ec.namespaceURIs
}

func (ec *encodingContext) ServerURIs() []string {
	return ec.serverURIs
}

func (ec *encodingContext) MaxStringLength() uint32 {
	return ec.maxStringLength
}

func (ec *encodingContext) MaxByteStringLength() uint32 {
	return ec.maxByteStringLength
}

func (ec *encodingContext) MaxArrayLength() uint32 {
	return ec.maxArrayLength
}
