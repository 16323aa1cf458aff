package ckd

import (
	ubiart "github.com/Kriskras99/ferris-dancing-sub001"
	"github.com/Kriskras99/ferris-dancing-sub001/bin"
)

// Smallest encoded size of a TargetActor: an empty qualifier list and an
// empty name.
const minActorSize = 8

// decoder visits fields by reading them from a cursor. Errors are retained
// by the cursor.
type decoder struct {
	r *bin.Reader
}

func (d decoder) Decoding() bool { return true }
func (d decoder) Fail(err error) { d.r.Fail(err) }
func (d decoder) Err() error     { return d.r.Error() }

func (d decoder) Uint32(name string, v *uint32)    { d.r.Uint32(v) }
func (d decoder) Int32(name string, v *int32)      { d.r.Int32(v) }
func (d decoder) Float(name string, v *float32)    { d.r.Float32(v) }
func (d decoder) Bool(name string, v *bool)        { d.r.Bool32(v) }
func (d decoder) String(name string, v *string)    { d.r.String(v) }
func (d decoder) Strings(name string, v *[]string) { d.r.Strings(v) }

func (d decoder) Vec2(name string, v *ubiart.Vec2) {
	readVec2(d.r, v)
}

func (d decoder) Vec3(name string, v *ubiart.Vec3) {
	_ = d.r.Float32(&v.X) ||
		d.r.Float32(&v.Y) ||
		d.r.Float32(&v.Z)
}

func (d decoder) Color(name string, v *ubiart.Color) {
	_ = d.r.Float32(&v.R) ||
		d.r.Float32(&v.G) ||
		d.r.Float32(&v.B) ||
		d.r.Float32(&v.A)
}

func (d decoder) Actor(name string, v *ubiart.TargetActor) {
	readActor(d.r, v)
}

func (d decoder) Actors(name string, v *[]ubiart.TargetActor) {
	var n int
	if d.r.Count(&n, minActorSize) {
		return
	}
	if n == 0 {
		*v = nil
		return
	}
	list := make([]ubiart.TargetActor, n)
	for i := range list {
		if readActor(d.r, &list[i]) {
			return
		}
	}
	*v = list
}

func (d decoder) Curve(name string, v *ubiart.BezierCurve) {
	readCurve(d.r, v)
}

func (d decoder) Reserved(name string, want uint32) {
	d.r.Expect32(name, want)
}

func readVec2(r *bin.Reader, v *ubiart.Vec2) (failed bool) {
	return r.Float32(&v.X) || r.Float32(&v.Y)
}

func readActor(r *bin.Reader, v *ubiart.TargetActor) (failed bool) {
	if r.Strings(&v.Qualifiers) {
		return true
	}
	return r.String(&v.Name)
}

////////////////////////////////////////////////////////////////

// encoder visits fields by writing them to a stream.
type encoder struct {
	w *bin.Writer
}

func (e encoder) Decoding() bool { return false }
func (e encoder) Fail(err error) { e.w.Fail(err) }
func (e encoder) Err() error     { return e.w.Err() }

func (e encoder) Uint32(name string, v *uint32)    { e.w.Uint32(*v) }
func (e encoder) Int32(name string, v *int32)      { e.w.Int32(*v) }
func (e encoder) Float(name string, v *float32)    { e.w.Float32(*v) }
func (e encoder) Bool(name string, v *bool)        { e.w.Bool32(*v) }
func (e encoder) String(name string, v *string)    { e.w.String(*v) }
func (e encoder) Strings(name string, v *[]string) { e.w.Strings(*v) }

func (e encoder) Vec2(name string, v *ubiart.Vec2) {
	writeVec2(e.w, *v)
}

func (e encoder) Vec3(name string, v *ubiart.Vec3) {
	_ = e.w.Float32(v.X) ||
		e.w.Float32(v.Y) ||
		e.w.Float32(v.Z)
}

func (e encoder) Color(name string, v *ubiart.Color) {
	_ = e.w.Float32(v.R) ||
		e.w.Float32(v.G) ||
		e.w.Float32(v.B) ||
		e.w.Float32(v.A)
}

func (e encoder) Actor(name string, v *ubiart.TargetActor) {
	writeActor(e.w, *v)
}

func (e encoder) Actors(name string, v *[]ubiart.TargetActor) {
	if e.w.Uint32(uint32(len(*v))) {
		return
	}
	for _, a := range *v {
		if writeActor(e.w, a) {
			return
		}
	}
}

func (e encoder) Curve(name string, v *ubiart.BezierCurve) {
	writeCurve(e.w, *v)
}

func (e encoder) Reserved(name string, want uint32) {
	e.w.Uint32(want)
}

func writeVec2(w *bin.Writer, v ubiart.Vec2) (failed bool) {
	return w.Float32(v.X) || w.Float32(v.Y)
}

func writeActor(w *bin.Writer, v ubiart.TargetActor) (failed bool) {
	return w.Strings(v.Qualifiers) || w.String(v.Name)
}
