// Package isc implements a decoder and encoder for the XML encoding of
// UbiArt scenes and tapes.
//
// Scalar fields are attributes, booleans are written as "1" or "0", and
// polymorphic collections are externally tagged variants, decoded through
// the tag tables of this package. The tables are closed: an element whose
// name is not registered is an error.
package isc

import (
	"io"

	ubiart "github.com/Kriskras99/ferris-dancing-sub001"
	"github.com/Kriskras99/ferris-dancing-sub001/errors"
	"github.com/Kriskras99/ferris-dancing-sub001/xml"
)

// Decoder decodes XML streams.
type Decoder struct{}

func (Decoder) document(r io.Reader) (*xml.Document, error) {
	if r == nil {
		return nil, errors.New("nil reader")
	}
	doc := new(xml.Document)
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, errors.Wrap(err, "error parsing document")
	}
	return doc, nil
}

// DecodeScene reads a scene from r. Non-fatal problems with the document are
// returned as warn.
func (d Decoder) DecodeScene(r io.Reader) (scene *ubiart.Scene, warn, err error) {
	doc, err := d.document(r)
	if err != nil {
		return nil, nil, err
	}
	warn = errors.Union(doc.Warnings...)
	if scene, err = DecodeScene(doc); err != nil {
		return nil, warn, errors.Wrap(err, "error decoding scene")
	}
	return scene, warn, nil
}

// DecodeTape reads a tape from r. Non-fatal problems with the document are
// returned as warn.
func (d Decoder) DecodeTape(r io.Reader) (tape *ubiart.Tape, warn, err error) {
	doc, err := d.document(r)
	if err != nil {
		return nil, nil, err
	}
	warn = errors.Union(doc.Warnings...)
	if tape, err = DecodeTape(doc); err != nil {
		return nil, warn, errors.Wrap(err, "error decoding tape")
	}
	return tape, warn, nil
}

// Encoder encodes XML streams.
type Encoder struct {
	// Encoding is the character set of the output. If empty,
	// xml.DefaultEncoding is used.
	Encoding string

	// Indent is written once per level of nesting. If empty, the output
	// is written on a single line.
	Indent string
}

func (e Encoder) write(w io.Writer, doc *xml.Document) (warn, err error) {
	if w == nil {
		return nil, errors.New("nil writer")
	}
	if e.Encoding != "" {
		doc.Encoding = e.Encoding
	}
	doc.Indent = e.Indent
	if _, err := doc.WriteTo(w); err != nil {
		return errors.Union(doc.Warnings...), errors.Wrap(err, "error encoding format")
	}
	return errors.Union(doc.Warnings...), nil
}

// EncodeScene writes scene to w.
func (e Encoder) EncodeScene(w io.Writer, scene *ubiart.Scene) (warn, err error) {
	doc, err := EncodeScene(scene)
	if err != nil {
		return nil, errors.Wrap(err, "error encoding scene")
	}
	return e.write(w, doc)
}

// EncodeTape writes tape to w.
func (e Encoder) EncodeTape(w io.Writer, tape *ubiart.Tape) (warn, err error) {
	doc, err := EncodeTape(tape)
	if err != nil {
		return nil, errors.Wrap(err, "error encoding tape")
	}
	return e.write(w, doc)
}
