package ckd

import (
	"io"

	ubiart "github.com/Kriskras99/ferris-dancing-sub001"
	"github.com/Kriskras99/ferris-dancing-sub001/bin"
	"github.com/Kriskras99/ferris-dancing-sub001/errors"
)

// Smallest encoded size of a clip: magic, size and header.
const minClipSize = 7 * 4

// DecodeTape reads a tape from r. A clip that fails to decode aborts the
// whole tape; the returned ClipError names its position and magic.
func DecodeTape(r *bin.Reader) (*ubiart.Tape, error) {
	var n int
	if r.Expect32("tape version", tapeVersion) || r.Count(&n, minClipSize) {
		return nil, r.Error()
	}
	tape := new(ubiart.Tape)
	if n > 0 {
		tape.Clips = make([]ubiart.Clip, 0, n)
	}
	for i := 0; i < n; i++ {
		magic, _ := r.Peek32()
		c, err := DecodeClip(r)
		if err != nil {
			return nil, errors.ClipError{Index: i, Magic: magic, Kind: clipName(magic), Cause: err}
		}
		tape.Clips = append(tape.Clips, c)
	}
	if r.Uint32(&tape.TapeClock) ||
		r.Uint32(&tape.TapeBarCount) ||
		r.Bool32(&tape.FreeResourcesAfterPlay) ||
		r.String(&tape.MapName) ||
		r.String(&tape.SoundwichEvent) {
		return nil, r.Error()
	}
	return tape, nil
}

// clipName returns the class name of the clip kind with the given magic, or
// an empty string.
func clipName(magic uint32) string {
	if f, ok := formatByMagic[magic]; ok {
		return f.Kind.String()
	}
	return unsupportedClips[magic]
}

// EncodeTape writes tape to w.
func EncodeTape(w *bin.Writer, tape *ubiart.Tape) error {
	if w.Uint32(tapeVersion) || w.Uint32(uint32(len(tape.Clips))) {
		return w.Err()
	}
	for i, c := range tape.Clips {
		if err := EncodeClip(w, c); err != nil {
			cerr := errors.ClipError{Index: i, Cause: err}
			if c != nil {
				cerr.Magic, _ = Magic(c.ClipKind())
				cerr.Kind = c.ClipKind().String()
			}
			return cerr
		}
	}
	if w.Uint32(tape.TapeClock) ||
		w.Uint32(tape.TapeBarCount) ||
		w.Bool32(tape.FreeResourcesAfterPlay) ||
		w.String(tape.MapName) ||
		w.String(tape.SoundwichEvent) {
		return w.Err()
	}
	return nil
}

////////////////////////////////////////////////////////////////

// Decoder decodes cooked streams.
type Decoder struct {
	// If Strict is true, data following the decoded value is an error
	// rather than a warning.
	Strict bool
}

// ErrTrailingData indicates data after the end of a decoded value.
var ErrTrailingData = errors.New("unexpected data after end of value")

// DecodeTape reads an entire cooked tape from r.
func (d Decoder) DecodeTape(r io.Reader) (tape *ubiart.Tape, warn, err error) {
	if r == nil {
		return nil, nil, errors.New("nil reader")
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, err
	}
	br := bin.NewReader(b)
	if tape, err = DecodeTape(br); err != nil {
		return nil, nil, errors.Wrap(err, "error decoding tape")
	}
	if br.Len() > 0 {
		err := errors.DataError{Offset: br.N(), Cause: ErrTrailingData}
		if d.Strict {
			return nil, nil, err
		}
		warn = err
	}
	return tape, warn, nil
}

// Encoder encodes cooked streams.
type Encoder struct{}

// EncodeTape writes tape to w.
func (Encoder) EncodeTape(w io.Writer, tape *ubiart.Tape) error {
	if w == nil {
		return errors.New("nil writer")
	}
	bw := bin.NewWriter(w)
	if err := EncodeTape(bw, tape); err != nil {
		return errors.Wrap(err, "error encoding tape")
	}
	_, err := bw.End()
	return err
}
