package ckd

import (
	ubiart "github.com/Kriskras99/ferris-dancing-sub001"
	"github.com/Kriskras99/ferris-dancing-sub001/bin"
	"github.com/Kriskras99/ferris-dancing-sub001/errors"
)

// DecodeClip reads one clip from r.
//
// The magic number is peeked first, so that an unknown or unsupported kind
// fails without consuming it. Otherwise the magic and the size constant of
// the kind are committed and checked, followed by the header and the fields
// of the kind.
func DecodeClip(r *bin.Reader) (ubiart.Clip, error) {
	off := r.N()
	magic, failed := r.Peek32()
	if failed {
		return nil, r.Error()
	}
	f, ok := formatByMagic[magic]
	if !ok {
		if name, ok := unsupportedClips[magic]; ok {
			return nil, errors.UnsupportedVariant{Name: name, Magic: magic}
		}
		return nil, errors.UnknownMagic{Offset: off, Kind: "clip", Magic: magic}
	}

	if r.Expect32("clip magic", f.Magic) ||
		r.Expect32(f.Kind.String()+" size", f.Size) {
		return nil, r.Error()
	}
	c := ubiart.NewClip(f.Kind)
	c.Fields(decoder{r: r})
	if err := r.Error(); err != nil {
		return nil, err
	}
	return c, nil
}

// EncodeClip writes c to w.
func EncodeClip(w *bin.Writer, c ubiart.Clip) error {
	if c == nil {
		return errors.New("nil clip")
	}
	f, ok := formatByKind[c.ClipKind()]
	if !ok {
		return errors.Errorf("clip kind %s has no binary layout", c.ClipKind())
	}
	if w.Uint32(f.Magic) || w.Uint32(f.Size) {
		return w.Err()
	}
	c.Fields(encoder{w: w})
	return w.Err()
}
