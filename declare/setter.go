package declare

import (
	ubiart "github.com/Kriskras99/ferris-dancing-sub001"
)

// setter is a ubiart.TextSerializer that writes declared properties into
// the fields it visits. Fields without a declared property are left as is.
type setter struct {
	props *properties
	seen  map[string]bool
	err   error
}

// get returns the declared value of a field, if the field was declared with
// the given type.
func (s *setter) get(name string, types ...Type) (interface{}, bool) {
	s.seen[name] = true
	p, ok := s.props.byName[name]
	if !ok {
		return nil, false
	}
	for _, t := range types {
		if p.typ == t {
			return p.typ.value(p.value), true
		}
	}
	return nil, false
}

func (s *setter) Decoding() bool { return true }

func (s *setter) Fail(err error) {
	if s.err == nil {
		s.err = err
	}
}

func (s *setter) Err() error { return s.err }

func (s *setter) Uint32(name string, v *uint32) {
	if x, ok := s.get(name, Uint32, Enum); ok {
		*v = x.(uint32)
	}
}

func (s *setter) Int32(name string, v *int32) {
	if x, ok := s.get(name, Int32); ok {
		*v = x.(int32)
	}
}

func (s *setter) Float(name string, v *float32) {
	if x, ok := s.get(name, Float); ok {
		*v = x.(float32)
	}
}

func (s *setter) Bool(name string, v *bool) {
	if x, ok := s.get(name, Bool); ok {
		*v = x.(bool)
	}
}

func (s *setter) String(name string, v *string) {
	if x, ok := s.get(name, String); ok {
		*v = x.(string)
	}
}

func (s *setter) Strings(name string, v *[]string) {
	if x, ok := s.get(name, Strings); ok {
		*v = x.([]string)
	}
}

func (s *setter) Vec2(name string, v *ubiart.Vec2) {
	if x, ok := s.get(name, Vec2); ok {
		*v = x.(ubiart.Vec2)
	}
}

func (s *setter) Vec3(name string, v *ubiart.Vec3) {
	if x, ok := s.get(name, Vec3); ok {
		*v = x.(ubiart.Vec3)
	}
}

func (s *setter) Color(name string, v *ubiart.Color) {
	if x, ok := s.get(name, Color); ok {
		*v = x.(ubiart.Color)
	}
}

func (s *setter) Mat4(name string, v *ubiart.Mat4) {
	if x, ok := s.get(name, Mat4); ok {
		*v = x.(ubiart.Mat4)
	}
}

func (s *setter) Actor(name string, v *ubiart.TargetActor) {
	if x, ok := s.get(name, TargetActor); ok {
		*v = x.(ubiart.TargetActor)
	}
}

func (s *setter) Actors(name string, v *[]ubiart.TargetActor) {
	if x, ok := s.get(name, TargetActors); ok {
		*v = x.([]ubiart.TargetActor)
	}
}

func (s *setter) Curve(name string, v *ubiart.BezierCurve) {
	if x, ok := s.get(name, Curve); ok {
		*v = x.(ubiart.BezierCurve)
	}
}

func (s *setter) Reserved(name string, want uint32) {}

func (s *setter) Enum(name string, v *uint32) {
	s.Uint32(name, v)
}

func (s *setter) Struct(name, typeName string, fn func(ubiart.TextSerializer)) {
	if p, ok := s.props.nested[name]; ok {
		p.set(fn)
	}
}

func (s *setter) Optional(name, typeName string, present *bool, fn func(ubiart.TextSerializer)) {
	p, ok := s.props.nested[name]
	*present = ok
	if ok {
		p.set(fn)
	}
}

// Attrs receives every declared property that was not visited by another
// method, in order of declaration.
func (s *setter) Attrs(v *[]ubiart.Attr) {
	var list []ubiart.Attr
	for _, name := range s.props.order {
		if s.seen[name] {
			continue
		}
		p := s.props.byName[name]
		list = append(list, ubiart.Attr{Name: name, Value: text(p.typ.value(p.value))})
	}
	*v = list
}
