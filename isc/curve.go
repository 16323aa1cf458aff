package isc

import (
	ubiart "github.com/Kriskras99/ferris-dancing-sub001"
	"github.com/Kriskras99/ferris-dancing-sub001/errors"
	"github.com/Kriskras99/ferris-dancing-sub001/variant"
	"github.com/Kriskras99/ferris-dancing-sub001/xml"
)

// Curves is the tag table of curve values.
var Curves = variant.NewTable[ubiart.BezierCurve]("curve")

var curveTags = map[ubiart.CurveType]string{
	ubiart.CurveTypeEmpty:    "BezierCurveFloatEmpty",
	ubiart.CurveTypeConstant: "BezierCurveFloatConstant",
	ubiart.CurveTypeLinear:   "BezierCurveFloatLinear",
	ubiart.CurveTypeMulti:    "BezierCurveFloatMulti",
}

func curveTag(t ubiart.CurveType) string {
	return curveTags[t]
}

// Fields of each curve case.

func constantFields(c *ubiart.CurveConstant) func(ubiart.TextSerializer) {
	return func(s ubiart.TextSerializer) {
		s.Float("Value", &c.Value)
	}
}

func linearFields(c *ubiart.CurveLinear) func(ubiart.TextSerializer) {
	return func(s ubiart.TextSerializer) {
		s.Vec2("ValueLeft", &c.Value0)
		s.Vec2("NormalLeftOut", &c.NormalOut0)
		s.Vec2("NormalRightIn", &c.NormalIn1)
		s.Vec2("ValueRight", &c.Value1)
	}
}

func keyFields(k *ubiart.CurveKey) func(ubiart.TextSerializer) {
	return func(s ubiart.TextSerializer) {
		s.Vec2("Value", &k.Value)
		s.Vec2("NormalIn", &k.NormalIn)
		s.Vec2("NormalOut", &k.NormalOut)
	}
}

func init() {
	Curves.Register(curveTags[ubiart.CurveTypeEmpty], variant.Codec[ubiart.BezierCurve]{
		Decode: func(t *xml.Tag) (ubiart.BezierCurve, error) {
			return ubiart.CurveEmpty{}, nil
		},
		Encode: func(v ubiart.BezierCurve) (*xml.Tag, error) {
			return xml.NewTag(curveTags[ubiart.CurveTypeEmpty]), nil
		},
	})
	Curves.Register(curveTags[ubiart.CurveTypeConstant], variant.Codec[ubiart.BezierCurve]{
		Decode: func(t *xml.Tag) (ubiart.BezierCurve, error) {
			var c ubiart.CurveConstant
			if err := ReadFields(t, constantFields(&c)); err != nil {
				return nil, err
			}
			return c, nil
		},
		Encode: func(v ubiart.BezierCurve) (*xml.Tag, error) {
			c, ok := v.(ubiart.CurveConstant)
			if !ok {
				return nil, errors.Errorf("unexpected curve value %T", v)
			}
			return WriteFields(curveTags[ubiart.CurveTypeConstant], constantFields(&c))
		},
	})
	Curves.Register(curveTags[ubiart.CurveTypeLinear], variant.Codec[ubiart.BezierCurve]{
		Decode: func(t *xml.Tag) (ubiart.BezierCurve, error) {
			var c ubiart.CurveLinear
			if err := ReadFields(t, linearFields(&c)); err != nil {
				return nil, err
			}
			return c, nil
		},
		Encode: func(v ubiart.BezierCurve) (*xml.Tag, error) {
			c, ok := v.(ubiart.CurveLinear)
			if !ok {
				return nil, errors.Errorf("unexpected curve value %T", v)
			}
			return WriteFields(curveTags[ubiart.CurveTypeLinear], linearFields(&c))
		},
	})
	// Keys are repeated <Keys><KeyFloat .../></Keys> elements.
	Curves.Register(curveTags[ubiart.CurveTypeMulti], variant.Codec[ubiart.BezierCurve]{
		Decode: func(t *xml.Tag) (ubiart.BezierCurve, error) {
			var c ubiart.CurveMulti
			for _, k := range t.Children("Keys") {
				if len(k.Tags) != 1 || k.Tags[0].Name != "KeyFloat" {
					return nil, errors.TagShape{Element: k.Name, Count: len(k.Tags)}
				}
				var key ubiart.CurveKey
				if err := ReadFields(k.Tags[0], keyFields(&key)); err != nil {
					return nil, err
				}
				c.Keys = append(c.Keys, key)
			}
			return c, nil
		},
		Encode: func(v ubiart.BezierCurve) (*xml.Tag, error) {
			c, ok := v.(ubiart.CurveMulti)
			if !ok {
				return nil, errors.Errorf("unexpected curve value %T", v)
			}
			tag := xml.NewTag(curveTags[ubiart.CurveTypeMulti])
			for i := range c.Keys {
				in, err := WriteFields("KeyFloat", keyFields(&c.Keys[i]))
				if err != nil {
					return nil, err
				}
				k := xml.NewTag("Keys")
				k.Add(in)
				tag.Add(k)
			}
			return tag, nil
		},
	})
}
