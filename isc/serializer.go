package isc

import (
	"strconv"
	"strings"

	ubiart "github.com/Kriskras99/ferris-dancing-sub001"
	"github.com/Kriskras99/ferris-dancing-sub001/errors"
	"github.com/Kriskras99/ferris-dancing-sub001/xml"
)

// ReadFields decodes the fields visited by fn from the attributes and
// children of tag.
//
// Missing attributes and elements leave their fields at the zero value, as
// the editor omits them. Malformed values are an error.
func ReadFields(tag *xml.Tag, fn func(ubiart.TextSerializer)) error {
	r := &reader{tag: tag}
	fn(r)
	return r.err
}

// WriteFields encodes the fields visited by fn into a new element with the
// given name.
func WriteFields(name string, fn func(ubiart.TextSerializer)) (*xml.Tag, error) {
	w := &writer{tag: xml.NewTag(name)}
	fn(w)
	if w.err != nil {
		return nil, w.err
	}
	return w.tag, nil
}

// FieldError indicates a malformed field value.
type FieldError struct {
	// Element is the name of the element holding the field.
	Element string
	Field   string
	Value   string

	Cause error
}

func (err FieldError) Error() string {
	var s strings.Builder
	s.WriteString("<")
	s.WriteString(err.Element)
	s.WriteString("> field ")
	s.WriteString(err.Field)
	s.WriteString(" = ")
	s.WriteString(strconv.Quote(err.Value))
	if err.Cause != nil {
		s.WriteString(": ")
		s.WriteString(err.Cause.Error())
	}
	return s.String()
}

func (err FieldError) Unwrap() error {
	return err.Cause
}

// Number of components of each vector type.
const (
	lenVec2  = 2
	lenVec3  = 3
	lenColor = 4
	lenMat4  = 16
)

// splitFloats parses n floats separated by whitespace or commas.
func splitFloats(s string, n int) ([]float32, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields) != n {
		return nil, errors.Errorf("expected %d components, got %d", n, len(fields))
	}
	v := make([]float32, n)
	for i, f := range fields {
		x, err := strconv.ParseFloat(f, 32)
		if err != nil {
			return nil, err
		}
		v[i] = float32(x)
	}
	return v, nil
}

func formatFloat(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', 6, 32)
}

func joinFloats(v ...float32) string {
	var s strings.Builder
	for i, x := range v {
		if i > 0 {
			s.WriteByte(' ')
		}
		s.WriteString(formatFloat(x))
	}
	return s.String()
}

// formatMat4 writes the matrix as four rows separated by commas.
func formatMat4(m ubiart.Mat4) string {
	rows := make([]string, 4)
	for i := range rows {
		rows[i] = joinFloats(m[i*4 : i*4+4]...)
	}
	return strings.Join(rows, ", ")
}

func formatBool(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

////////////////////////////////////////////////////////////////

type reader struct {
	tag  *xml.Tag
	seen map[string]bool
	err  error
}

func (r *reader) Decoding() bool { return true }

func (r *reader) Fail(err error) {
	if r.err == nil {
		r.err = err
	}
}

func (r *reader) Err() error { return r.err }

func (r *reader) fieldError(name, value string, cause error) {
	r.Fail(FieldError{Element: r.tag.Name, Field: name, Value: value, Cause: cause})
}

// attr returns the value of an attribute, marking it as visited.
func (r *reader) attr(name string) (string, bool) {
	if r.err != nil {
		return "", false
	}
	if r.seen == nil {
		r.seen = map[string]bool{}
	}
	r.seen[name] = true
	return r.tag.AttrValue(name)
}

func (r *reader) Uint32(name string, v *uint32) {
	s, ok := r.attr(name)
	if !ok {
		return
	}
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		r.fieldError(name, s, err)
		return
	}
	*v = uint32(n)
}

func (r *reader) Int32(name string, v *int32) {
	s, ok := r.attr(name)
	if !ok {
		return
	}
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		r.fieldError(name, s, err)
		return
	}
	*v = int32(n)
}

func (r *reader) Float(name string, v *float32) {
	s, ok := r.attr(name)
	if !ok {
		return
	}
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		r.fieldError(name, s, err)
		return
	}
	*v = float32(f)
}

func (r *reader) Bool(name string, v *bool) {
	s, ok := r.attr(name)
	if !ok {
		return
	}
	switch s {
	case "1":
		*v = true
	case "0":
		*v = false
	default:
		r.fieldError(name, s, errors.New("boolean must be 1 or 0"))
	}
}

func (r *reader) String(name string, v *string) {
	if s, ok := r.attr(name); ok {
		*v = s
	}
}

func (r *reader) Strings(name string, v *[]string) {
	if r.err != nil {
		return
	}
	var list []string
	for _, c := range r.tag.Children(name) {
		val, _ := c.AttrValue("VAL")
		list = append(list, val)
	}
	*v = list
}

func (r *reader) floats(name string, n int) []float32 {
	s, ok := r.attr(name)
	if !ok {
		return nil
	}
	f, err := splitFloats(s, n)
	if err != nil {
		r.fieldError(name, s, err)
		return nil
	}
	return f
}

func (r *reader) Vec2(name string, v *ubiart.Vec2) {
	if f := r.floats(name, lenVec2); f != nil {
		*v = ubiart.Vec2{X: f[0], Y: f[1]}
	}
}

func (r *reader) Vec3(name string, v *ubiart.Vec3) {
	if f := r.floats(name, lenVec3); f != nil {
		*v = ubiart.Vec3{X: f[0], Y: f[1], Z: f[2]}
	}
}

func (r *reader) Color(name string, v *ubiart.Color) {
	if f := r.floats(name, lenColor); f != nil {
		*v = ubiart.Color{R: f[0], G: f[1], B: f[2], A: f[3]}
	}
}

func (r *reader) Mat4(name string, v *ubiart.Mat4) {
	if f := r.floats(name, lenMat4); f != nil {
		copy(v[:], f)
	}
}

func (r *reader) Actor(name string, v *ubiart.TargetActor) {
	if s, ok := r.attr(name); ok {
		*v = ubiart.ParseTargetActor(s)
	}
}

func (r *reader) Actors(name string, v *[]ubiart.TargetActor) {
	if r.err != nil {
		return
	}
	var list []ubiart.TargetActor
	for _, c := range r.tag.Children(name) {
		val, _ := c.AttrValue("VAL")
		list = append(list, ubiart.ParseTargetActor(val))
	}
	*v = list
}

func (r *reader) Curve(name string, v *ubiart.BezierCurve) {
	if r.err != nil {
		return
	}
	w := r.tag.Child(name)
	if w == nil {
		*v = ubiart.CurveEmpty{}
		return
	}
	c, err := Curves.Decode(w)
	if err != nil {
		r.Fail(errors.Wrapf(err, "<%s> curve %s", r.tag.Name, name))
		return
	}
	*v = c
}

func (r *reader) Reserved(name string, want uint32) {}

func (r *reader) Enum(name string, v *uint32) {
	if r.err != nil {
		return
	}
	for _, c := range r.tag.Children("ENUM") {
		if n, _ := c.AttrValue("NAME"); n != name {
			continue
		}
		s, _ := c.AttrValue("SEL")
		sel, err := strconv.ParseUint(s, 10, 32)
		if err != nil {
			r.fieldError(name, s, err)
			return
		}
		*v = uint32(sel)
		return
	}
}

// inner returns the element typeName nested in the element name.
func (r *reader) inner(name, typeName string) *xml.Tag {
	if r.err != nil {
		return nil
	}
	outer := r.tag.Child(name)
	if outer == nil {
		return nil
	}
	if len(outer.Tags) != 1 {
		r.Fail(errors.TagShape{Element: outer.Name, Count: len(outer.Tags)})
		return nil
	}
	if in := outer.Tags[0]; in.Name != typeName {
		r.Fail(errors.Errorf("<%s> holds <%s>, expected <%s>", name, in.Name, typeName))
		return nil
	}
	return outer.Tags[0]
}

func (r *reader) Struct(name, typeName string, fn func(ubiart.TextSerializer)) {
	in := r.inner(name, typeName)
	if in == nil {
		return
	}
	if err := ReadFields(in, fn); err != nil {
		r.Fail(err)
	}
}

func (r *reader) Optional(name, typeName string, present *bool, fn func(ubiart.TextSerializer)) {
	in := r.inner(name, typeName)
	*present = in != nil
	if in == nil {
		return
	}
	if err := ReadFields(in, fn); err != nil {
		r.Fail(err)
	}
}

func (r *reader) Attrs(v *[]ubiart.Attr) {
	if r.err != nil {
		return
	}
	var list []ubiart.Attr
	for _, a := range r.tag.Attr {
		if r.seen[a.Name] {
			continue
		}
		list = append(list, ubiart.Attr{Name: a.Name, Value: a.Value})
	}
	*v = list
}

////////////////////////////////////////////////////////////////

type writer struct {
	tag *xml.Tag
	err error
}

func (w *writer) Decoding() bool { return false }

func (w *writer) Fail(err error) {
	if w.err == nil {
		w.err = err
	}
}

func (w *writer) Err() error { return w.err }

func (w *writer) set(name, value string) {
	if w.err != nil {
		return
	}
	w.tag.SetAttr(name, value)
}

func (w *writer) add(tag *xml.Tag) {
	if w.err != nil {
		return
	}
	w.tag.Add(tag)
}

func (w *writer) Uint32(name string, v *uint32) {
	w.set(name, strconv.FormatUint(uint64(*v), 10))
}

func (w *writer) Int32(name string, v *int32) {
	w.set(name, strconv.FormatInt(int64(*v), 10))
}

func (w *writer) Float(name string, v *float32) {
	w.set(name, formatFloat(*v))
}

func (w *writer) Bool(name string, v *bool) {
	w.set(name, formatBool(*v))
}

func (w *writer) String(name string, v *string) {
	w.set(name, *v)
}

func (w *writer) Strings(name string, v *[]string) {
	for _, s := range *v {
		w.add(xml.NewTag(name, xml.Attr{Name: "VAL", Value: s}))
	}
}

func (w *writer) Vec2(name string, v *ubiart.Vec2) {
	w.set(name, joinFloats(v.X, v.Y))
}

func (w *writer) Vec3(name string, v *ubiart.Vec3) {
	w.set(name, joinFloats(v.X, v.Y, v.Z))
}

func (w *writer) Color(name string, v *ubiart.Color) {
	w.set(name, joinFloats(v.R, v.G, v.B, v.A))
}

func (w *writer) Mat4(name string, v *ubiart.Mat4) {
	w.set(name, formatMat4(*v))
}

func (w *writer) Actor(name string, v *ubiart.TargetActor) {
	w.set(name, v.String())
}

func (w *writer) Actors(name string, v *[]ubiart.TargetActor) {
	for _, a := range *v {
		w.add(xml.NewTag(name, xml.Attr{Name: "VAL", Value: a.String()}))
	}
}

func (w *writer) Curve(name string, v *ubiart.BezierCurve) {
	if w.err != nil {
		return
	}
	c := ubiart.CurveOrEmpty(*v)
	tag, err := Curves.Encode(name, curveTag(c.CurveType()), c)
	if err != nil {
		w.Fail(err)
		return
	}
	w.add(tag)
}

func (w *writer) Reserved(name string, want uint32) {}

func (w *writer) Enum(name string, v *uint32) {
	w.add(xml.NewTag("ENUM",
		xml.Attr{Name: "NAME", Value: name},
		xml.Attr{Name: "SEL", Value: strconv.FormatUint(uint64(*v), 10)},
	))
}

func (w *writer) Struct(name, typeName string, fn func(ubiart.TextSerializer)) {
	if w.err != nil {
		return
	}
	in, err := WriteFields(typeName, fn)
	if err != nil {
		w.Fail(err)
		return
	}
	outer := xml.NewTag(name)
	outer.Add(in)
	w.add(outer)
}

func (w *writer) Optional(name, typeName string, present *bool, fn func(ubiart.TextSerializer)) {
	if *present {
		w.Struct(name, typeName, fn)
	}
}

func (w *writer) Attrs(v *[]ubiart.Attr) {
	for _, a := range *v {
		w.set(a.Name, a.Value)
	}
}
