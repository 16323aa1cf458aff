package isc

import (
	ubiart "github.com/Kriskras99/ferris-dancing-sub001"
	"github.com/Kriskras99/ferris-dancing-sub001/errors"
	"github.com/Kriskras99/ferris-dancing-sub001/xml"
)

const (
	tagTape  = "Tape"
	tagClips = "Clips"
)

func tapeFields(t *ubiart.Tape) func(ubiart.TextSerializer) {
	return func(s ubiart.TextSerializer) {
		s.Uint32("TapeClock", &t.TapeClock)
		s.Uint32("TapeBarCount", &t.TapeBarCount)
		s.Bool("FreeResourcesAfterPlay", &t.FreeResourcesAfterPlay)
		s.String("MapName", &t.MapName)
		s.String("SoundwichEvent", &t.SoundwichEvent)
	}
}

// DecodeTape decodes the tape held by doc. A clip that fails to decode
// aborts the whole tape.
func DecodeTape(doc *xml.Document) (*ubiart.Tape, error) {
	t, err := rootChild(doc, tagTape)
	if err != nil {
		return nil, err
	}
	tape := new(ubiart.Tape)
	if err := ReadFields(t, tapeFields(tape)); err != nil {
		return nil, err
	}
	for i, w := range t.Children(tagClips) {
		c, err := Clips.Decode(w)
		if err != nil {
			kind, _ := w.AttrValue("NAME")
			return nil, errors.ClipError{Index: i, Kind: kind, Cause: err}
		}
		tape.Clips = append(tape.Clips, c)
	}
	return tape, nil
}

// EncodeTape encodes tape into a new document.
func EncodeTape(tape *ubiart.Tape) (*xml.Document, error) {
	t, err := WriteFields(tagTape, tapeFields(tape))
	if err != nil {
		return nil, err
	}
	for i, c := range tape.Clips {
		if c == nil {
			return nil, errors.Errorf("clip #%d is nil", i)
		}
		w, err := Clips.Encode(tagClips, c.ClipKind().String(), c)
		if err != nil {
			return nil, errors.ClipError{Index: i, Kind: c.ClipKind().String(), Cause: err}
		}
		t.Add(w)
	}
	return rootDocument(t), nil
}
