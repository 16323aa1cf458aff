package variant

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/Kriskras99/ferris-dancing-sub001/errors"
	"github.com/Kriskras99/ferris-dancing-sub001/xml"
)

type shape interface{ area() int }

type square struct{ Side int }

func (s square) area() int { return s.Side * s.Side }

type dot struct{}

func (dot) area() int { return 0 }

func newShapes() *Table[shape] {
	t := NewTable[shape]("shape")
	t.Register("Square", Codec[shape]{
		Decode: func(tag *xml.Tag) (shape, error) {
			v, _ := tag.AttrValue("side")
			switch v {
			case "2":
				return square{Side: 2}, nil
			case "3":
				return square{Side: 3}, nil
			}
			return nil, errors.Errorf("bad side %q", v)
		},
		Encode: func(v shape) (*xml.Tag, error) {
			side := "2"
			if v.(square).Side == 3 {
				side = "3"
			}
			return xml.NewTag("Square", xml.Attr{Name: "side", Value: side}), nil
		},
	})
	t.Register("Dot", Codec[shape]{
		Decode: func(*xml.Tag) (shape, error) { return dot{}, nil },
		Encode: func(shape) (*xml.Tag, error) { return xml.NewTag("Dot"), nil },
	})
	return t
}

func wrap(children ...*xml.Tag) *xml.Tag {
	w := xml.NewTag("SHAPES", xml.Attr{Name: "NAME", Value: "x"})
	w.Add(children...)
	return w
}

func TestDecode(t *testing.T) {
	shapes := newShapes()
	v, err := shapes.Decode(wrap(xml.NewTag("Square", xml.Attr{Name: "side", Value: "3"})))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(v, shape(square{Side: 3})))
}

func TestDecodeTwoChildren(t *testing.T) {
	shapes := newShapes()
	// Both tags are valid; the shape of the node is checked first.
	_, err := shapes.Decode(wrap(xml.NewTag("Dot"), xml.NewTag("Dot")))
	qt.Assert(t, qt.ErrorIs(err, errors.ErrTagShape))
	qt.Assert(t, qt.ErrorMatches(err, `variant element <SHAPES> has 2 tagged children, expected exactly 1`))

	_, err = shapes.Decode(wrap(xml.NewTag("Nope"), xml.NewTag("Nada")))
	qt.Assert(t, qt.ErrorIs(err, errors.ErrTagShape))

	_, err = shapes.Decode(wrap())
	qt.Assert(t, qt.ErrorIs(err, errors.ErrTagShape))
}

func TestDecodeUnknownTag(t *testing.T) {
	shapes := newShapes()
	_, err := shapes.Decode(wrap(xml.NewTag("Circle")))
	qt.Assert(t, qt.ErrorIs(err, errors.ErrUnknownDiscriminant))
	qt.Assert(t, qt.ErrorMatches(err, `unknown shape tag "Circle" \(expected one of: Dot, Square\)`))

	var unknown errors.UnknownTag
	qt.Assert(t, qt.ErrorAs(err, &unknown))
	qt.Assert(t, qt.Equals(unknown.Tag, "Circle"))
	qt.Assert(t, qt.DeepEquals(unknown.Known, []string{"Dot", "Square"}))
}

func TestDecodeVariantError(t *testing.T) {
	shapes := newShapes()
	_, err := shapes.Decode(wrap(xml.NewTag("Square", xml.Attr{Name: "side", Value: "9"})))
	qt.Assert(t, qt.ErrorMatches(err, `shape Square: bad side "9"`))
}

func TestEncode(t *testing.T) {
	shapes := newShapes()
	w, err := shapes.Encode("SHAPES", "Square", square{Side: 3})
	qt.Assert(t, qt.IsNil(err))
	name, _ := w.AttrValue("NAME")
	qt.Assert(t, qt.Equals(name, "Square"))
	qt.Assert(t, qt.HasLen(w.Tags, 1))
	qt.Assert(t, qt.Equals(w.Tags[0].Name, "Square"))

	v, err := shapes.Decode(w)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(v, shape(square{Side: 3})))

	_, err = shapes.Encode("SHAPES", "Circle", dot{})
	qt.Assert(t, qt.ErrorIs(err, errors.ErrUnknownDiscriminant))
}

func TestDecodeList(t *testing.T) {
	shapes := newShapes()
	parent := xml.NewTag("Scene")
	parent.Add(
		wrap(xml.NewTag("Dot")),
		xml.NewTag("Other"),
		wrap(xml.NewTag("Square", xml.Attr{Name: "side", Value: "2"})),
	)
	list, err := shapes.DecodeList(parent, "SHAPES")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.DeepEquals(list, []shape{dot{}, square{Side: 2}}))

	parent.Add(wrap())
	_, err = shapes.DecodeList(parent, "SHAPES")
	qt.Assert(t, qt.ErrorMatches(err, `<SHAPES> #2: variant element <SHAPES> has 0 tagged children, expected exactly 1`))
}

func TestRegisterTwicePanics(t *testing.T) {
	shapes := newShapes()
	qt.Assert(t, qt.PanicMatches(func() {
		shapes.Register("Dot", Codec[shape]{
			Decode: func(*xml.Tag) (shape, error) { return dot{}, nil },
			Encode: func(shape) (*xml.Tag, error) { return xml.NewTag("Dot"), nil },
		})
	}, `variant: shape tag Dot registered twice`))
	qt.Assert(t, qt.IsTrue(shapes.Has("Dot")))
	qt.Assert(t, qt.IsFalse(shapes.Has("Circle")))
}
