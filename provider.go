// Copyright 2023 Converter Systems LLC. All rights reserved.

package uajson

import (
	"io"

	"github.com/djherbis/buffer"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

const (
	writeBufferSize        = 4096
	defaultIndentionStep   = 2
	defaultMaxNestingDepth = 100
)

var (
	errEncoderClosed = errors.New("uajson: encoder is closed")
	errDecoderClosed = errors.New("uajson: decoder is closed")
)

// JSONEncoderOption is a functional option to be applied to an encoder
// during initialization.
type JSONEncoderOption func(*jsonEncoderOptions) error

type jsonEncoderOptions struct {
	reversible    bool
	indentionStep int
	leaveOpen     bool
}

// WithNonReversible selects the non-reversible form: default-valued
// members are written explicitly and indices are resolved to uris and
// symbolic names. (default: reversible)
func WithNonReversible() JSONEncoderOption {
	return func(opts *jsonEncoderOptions) error {
		opts.reversible = false
		return nil
	}
}

// WithIndented emits indented output. (default: compact)
func WithIndented() JSONEncoderOption {
	return func(opts *jsonEncoderOptions) error {
		opts.indentionStep = defaultIndentionStep
		return nil
	}
}

// WithLeaveSinkOpen controls whether Close also closes the underlying
// sink. (default: the sink is closed)
func WithLeaveSinkOpen(leaveOpen bool) JSONEncoderOption {
	return func(opts *jsonEncoderOptions) error {
		opts.leaveOpen = leaveOpen
		return nil
	}
}

// NewJSONEncoder returns a new encoder that writes to an io.Writer.
func NewJSONEncoder(w io.Writer, ec EncodingContext, opts ...JSONEncoderOption) (*JSONEncoder, error) {
	if w == nil {
		return nil, errors.New("uajson: nil writer")
	}
	if ec == nil {
		ec = NewEncodingContext()
	}
	options := jsonEncoderOptions{reversible: true}
	for _, opt := range opts {
		if err := opt(&options); err != nil {
			return nil, errors.Wrap(err, "uajson: apply encoder option")
		}
	}
	cfg := jsoniter.Config{EscapeHTML: false, IndentionStep: options.indentionStep}.Froze()
	return &JSONEncoder{
		w:          w,
		s:          jsoniter.NewStream(cfg, w, writeBufferSize),
		ec:         ec,
		reversible: options.reversible,
		leaveOpen:  options.leaveOpen,
	}, nil
}

// NewJSONEncoderFromBuffer returns a new encoder that writes into a
// segmented buffer.
func NewJSONEncoderFromBuffer(buf buffer.Buffer, ec EncodingContext, opts ...JSONEncoderOption) (*JSONEncoder, error) {
	if buf == nil {
		return nil, errors.New("uajson: nil buffer")
	}
	return NewJSONEncoder(buf, ec, opts...)
}

// JSONDecoderOption is a functional option to be applied to a decoder
// during initialization.
type JSONDecoderOption func(*jsonDecoderOptions) error

type jsonDecoderOptions struct {
	binFactory BinaryDecoderFactory
	xmlFactory XMLDecoderFactory
	maxDepth   int
	leaveOpen  bool
}

// WithBinaryDecoderFactory supplies the nested binary decoder used for
// ExtensionObject bodies carrying the binary encoding. (default: such
// bodies fail to reify)
func WithBinaryDecoderFactory(f BinaryDecoderFactory) JSONDecoderOption {
	return func(opts *jsonDecoderOptions) error {
		opts.binFactory = f
		return nil
	}
}

// WithXMLDecoderFactory supplies the decoder used for ExtensionObject
// bodies carrying the xml encoding. (default: such bodies fail to
// reify)
func WithXMLDecoderFactory(f XMLDecoderFactory) JSONDecoderOption {
	return func(opts *jsonDecoderOptions) error {
		opts.xmlFactory = f
		return nil
	}
}

// WithMaxNestingDepth bounds the depth of the navigation stack.
// (default: 100)
func WithMaxNestingDepth(depth int) JSONDecoderOption {
	return func(opts *jsonDecoderOptions) error {
		if depth < 1 {
			return errors.New("uajson: nesting depth must be positive")
		}
		opts.maxDepth = depth
		return nil
	}
}

// WithLeaveSourceOpen controls whether Close also closes the underlying
// source. (default: the source is closed)
func WithLeaveSourceOpen(leaveOpen bool) JSONDecoderOption {
	return func(opts *jsonDecoderOptions) error {
		opts.leaveOpen = leaveOpen
		return nil
	}
}

// NewJSONDecoder returns a new decoder that reads the whole of an
// io.Reader into a document.
func NewJSONDecoder(r io.Reader, ec EncodingContext, opts ...JSONDecoderOption) (*JSONDecoder, error) {
	if r == nil {
		return nil, errors.New("uajson: nil reader")
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "uajson: read source")
	}
	return newJSONDecoder(r, b, ec, opts)
}

// NewJSONDecoderFromBytes returns a new decoder over a contiguous byte
// slice.
func NewJSONDecoderFromBytes(b []byte, ec EncodingContext, opts ...JSONDecoderOption) (*JSONDecoder, error) {
	return newJSONDecoder(nil, b, ec, opts)
}

// NewJSONDecoderFromBuffer returns a new decoder over a segmented
// buffer, draining it.
func NewJSONDecoderFromBuffer(buf buffer.Buffer, ec EncodingContext, opts ...JSONDecoderOption) (*JSONDecoder, error) {
	if buf == nil {
		return nil, errors.New("uajson: nil buffer")
	}
	b, err := io.ReadAll(buf)
	if err != nil {
		return nil, errors.Wrap(err, "uajson: read buffer")
	}
	return newJSONDecoder(nil, b, ec, opts)
}

func newJSONDecoder(r io.Reader, b []byte, ec EncodingContext, opts []JSONDecoderOption) (*JSONDecoder, error) {
	if ec == nil {
		ec = NewEncodingContext()
	}
	options := jsonDecoderOptions{maxDepth: defaultMaxNestingDepth}
	for _, opt := range opts {
		if err := opt(&options); err != nil {
			return nil, errors.Wrap(err, "uajson: apply decoder option")
		}
	}
	dec := &JSONDecoder{
		r:          r,
		ec:         ec,
		binFactory: options.binFactory,
		xmlFactory: options.xmlFactory,
		maxDepth:   options.maxDepth,
		leaveOpen:  options.leaveOpen,
	}
	doc, err := dec.p.ParseBytes(b)
	if err != nil {
		return nil, BadDecodingError
	}
	dec.doc = doc
	dec.stack.PushBack(doc)
	return dec, nil
}
