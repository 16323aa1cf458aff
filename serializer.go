package ubiart

// Serializer visits the fields of a value in physical order. A decoding
// Serializer reads into each field it is passed; an encoding Serializer
// writes from it. The same field list therefore drives both directions of a
// codec.
//
// The first error is retained and every visit after it does nothing. Err
// returns that error.
type Serializer interface {
	// Decoding returns true if the Serializer reads into the fields it is
	// passed.
	Decoding() bool

	Uint32(name string, v *uint32)
	Int32(name string, v *int32)
	Float(name string, v *float32)
	Bool(name string, v *bool)
	String(name string, v *string)
	Strings(name string, v *[]string)
	Vec2(name string, v *Vec2)
	Vec3(name string, v *Vec3)
	Color(name string, v *Color)
	Actor(name string, v *TargetActor)
	Actors(name string, v *[]TargetActor)
	Curve(name string, v *BezierCurve)

	// Reserved visits a field that holds the constant want in the binary
	// encoding. A binary decoder fails with a structural mismatch when the
	// field holds anything else. The text encoding has no such fields.
	Reserved(name string, want uint32)

	// Fail records err as the error of the Serializer, if no error has
	// occurred yet.
	Fail(err error)
	Err() error
}

// TextSerializer is a Serializer over the XML encoding, which has constructs
// the binary encoding of clips does not need.
type TextSerializer interface {
	Serializer

	// Enum visits a value written as an <ENUM NAME="name" SEL="v"/> element.
	Enum(name string, v *uint32)

	// Mat4 visits a separator block.
	Mat4(name string, v *Mat4)

	// Struct visits a nested structure written as
	// <name><typeName .../></name>. The fields of the structure are visited
	// by fn, with a TextSerializer scoped to the inner element.
	Struct(name, typeName string, fn func(TextSerializer))

	// Optional is like Struct, but the element may be absent. When decoding,
	// *present reports whether it was found. When encoding, nothing is
	// written unless *present is true.
	Optional(name, typeName string, present *bool, fn func(TextSerializer))

	// Attrs visits every attribute of the current element not visited by
	// another method. It must be called last.
	Attrs(v *[]Attr)
}

// Attr is a raw named value of a text element.
type Attr struct {
	Name  string
	Value string
}

// Fielder is implemented by values whose fields are visited by a
// TextSerializer.
type Fielder interface {
	Fields(s TextSerializer)
}
