package declare

import (
	"strconv"
	"strings"

	ubiart "github.com/Kriskras99/ferris-dancing-sub001"
)

// Type corresponds to the type of a field visited by a
// ubiart.TextSerializer.
type Type byte

// String returns a string representation of the type. If the type is not
// valid, then the returned value will be "Invalid".
func (t Type) String() string {
	s, ok := typeStrings[t]
	if !ok {
		return "Invalid"
	}
	return s
}

const (
	_ Type = iota
	String
	Strings
	Bool
	Uint32
	Int32
	Float
	Enum
	Vec2
	Vec3
	Color
	Mat4
	TargetActor
	TargetActors
	Curve
)

// TypeFromString returns a Type from its string representation. Type(0) is
// returned if the string does not represent an existing Type.
func TypeFromString(s string) Type {
	s = strings.ToLower(s)
	for typ, str := range typeStrings {
		if s == strings.ToLower(str) {
			return typ
		}
	}
	return 0
}

var typeStrings = map[Type]string{
	String:       "String",
	Strings:      "Strings",
	Bool:         "Bool",
	Uint32:       "Uint32",
	Int32:        "Int32",
	Float:        "Float",
	Enum:         "Enum",
	Vec2:         "Vec2",
	Vec3:         "Vec3",
	Color:        "Color",
	Mat4:         "Mat4",
	TargetActor:  "TargetActor",
	TargetActors: "TargetActors",
	Curve:        "Curve",
}

func normInt32(v interface{}) int32 {
	switch v := v.(type) {
	case int:
		return int32(v)
	case uint:
		return int32(v)
	case uint8:
		return int32(v)
	case uint16:
		return int32(v)
	case uint32:
		return int32(v)
	case uint64:
		return int32(v)
	case int8:
		return int32(v)
	case int16:
		return int32(v)
	case int32:
		return v
	case int64:
		return int32(v)
	case float32:
		return int32(v)
	case float64:
		return int32(v)
	}

	return 0
}

func normUint32(v interface{}) uint32 {
	switch v := v.(type) {
	case int:
		return uint32(v)
	case uint:
		return uint32(v)
	case uint8:
		return uint32(v)
	case uint16:
		return uint32(v)
	case uint32:
		return v
	case uint64:
		return uint32(v)
	case int8:
		return uint32(v)
	case int16:
		return uint32(v)
	case int32:
		return uint32(v)
	case int64:
		return uint32(v)
	case float32:
		return uint32(v)
	case float64:
		return uint32(v)
	}

	return 0
}

func normFloat32(v interface{}) float32 {
	switch v := v.(type) {
	case int:
		return float32(v)
	case uint:
		return float32(v)
	case uint8:
		return float32(v)
	case uint16:
		return float32(v)
	case uint32:
		return float32(v)
	case uint64:
		return float32(v)
	case int8:
		return float32(v)
	case int16:
		return float32(v)
	case int32:
		return float32(v)
	case int64:
		return float32(v)
	case float32:
		return v
	case float64:
		return float32(v)
	}

	return 0
}

func normBool(v interface{}) bool {
	vv, _ := v.(bool)
	return vv
}

func normString(v interface{}) string {
	switch v := v.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	}
	return ""
}

func normFloats(v []interface{}, n int) []float32 {
	f := make([]float32, n)
	for i := range f {
		if i < len(v) {
			f[i] = normFloat32(v[i])
		}
	}
	return f
}

func normActor(v interface{}) ubiart.TargetActor {
	switch v := v.(type) {
	case ubiart.TargetActor:
		return v
	case string:
		return ubiart.ParseTargetActor(v)
	}
	return ubiart.TargetActor{}
}

// value converts the declared values into the value of the type. A value
// that cannot be converted results in the zero value of the type.
func (t Type) value(v []interface{}) interface{} {
	switch t {
	case String:
		if len(v) < 1 {
			return ""
		}
		return normString(v[0])

	case Strings:
		if len(v) == 1 {
			if s, ok := v[0].([]string); ok {
				return append([]string(nil), s...)
			}
		}
		var list []string
		for _, s := range v {
			list = append(list, normString(s))
		}
		return list

	case Bool:
		if len(v) < 1 {
			return false
		}
		return normBool(v[0])

	case Uint32, Enum:
		if len(v) < 1 {
			return uint32(0)
		}
		return normUint32(v[0])

	case Int32:
		if len(v) < 1 {
			return int32(0)
		}
		return normInt32(v[0])

	case Float:
		if len(v) < 1 {
			return float32(0)
		}
		return normFloat32(v[0])

	case Vec2:
		if len(v) == 1 {
			if vv, ok := v[0].(ubiart.Vec2); ok {
				return vv
			}
		}
		f := normFloats(v, 2)
		return ubiart.Vec2{X: f[0], Y: f[1]}

	case Vec3:
		if len(v) == 1 {
			if vv, ok := v[0].(ubiart.Vec3); ok {
				return vv
			}
		}
		f := normFloats(v, 3)
		return ubiart.Vec3{X: f[0], Y: f[1], Z: f[2]}

	case Color:
		if len(v) == 1 {
			if vv, ok := v[0].(ubiart.Color); ok {
				return vv
			}
		}
		f := normFloats(v, 4)
		return ubiart.Color{R: f[0], G: f[1], B: f[2], A: f[3]}

	case Mat4:
		if len(v) == 1 {
			if vv, ok := v[0].(ubiart.Mat4); ok {
				return vv
			}
		}
		var m ubiart.Mat4
		copy(m[:], normFloats(v, 16))
		return m

	case TargetActor:
		if len(v) < 1 {
			return ubiart.TargetActor{}
		}
		return normActor(v[0])

	case TargetActors:
		var list []ubiart.TargetActor
		for _, a := range v {
			list = append(list, normActor(a))
		}
		return list

	case Curve:
		if len(v) == 1 {
			if c, ok := v[0].(ubiart.BezierCurve); ok {
				return c
			}
		}
		switch len(v) {
		case 1:
			return ubiart.CurveConstant{Value: normFloat32(v[0])}
		case 8:
			f := normFloats(v, 8)
			return ubiart.CurveLinear{
				Value0:     ubiart.Vec2{X: f[0], Y: f[1]},
				NormalOut0: ubiart.Vec2{X: f[2], Y: f[3]},
				NormalIn1:  ubiart.Vec2{X: f[4], Y: f[5]},
				Value1:     ubiart.Vec2{X: f[6], Y: f[7]},
			}
		}
		return ubiart.CurveEmpty{}
	}
	return nil
}

// text returns the text form of a declared value, for fields that are kept
// as raw attributes.
func text(v interface{}) string {
	switch v := v.(type) {
	case string:
		return v
	case bool:
		if v {
			return "1"
		}
		return "0"
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', 6, 32)
	case ubiart.TargetActor:
		return v.String()
	}
	return ""
}
