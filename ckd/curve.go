package ckd

import (
	ubiart "github.com/Kriskras99/ferris-dancing-sub001"
	"github.com/Kriskras99/ferris-dancing-sub001/bin"
	"github.com/Kriskras99/ferris-dancing-sub001/errors"
)

// Smallest encoded size of a key of a multi curve.
const minKeySize = 4 + 3*8

// DecodeCurve reads a curve value from r.
//
// The discriminant is peeked before it is committed. The empty sentinel
// consumes only itself; every other case is followed by its size constant
// and fields.
func DecodeCurve(r *bin.Reader) (ubiart.BezierCurve, error) {
	var c ubiart.BezierCurve
	if readCurve(r, &c) {
		return nil, r.Error()
	}
	return c, nil
}

func readCurve(r *bin.Reader, v *ubiart.BezierCurve) (failed bool) {
	off := r.N()
	magic, failed := r.Peek32()
	if failed {
		return true
	}
	switch magic {
	case curveEmpty:
		if r.Expect32("curve", curveEmpty) {
			return true
		}
		*v = ubiart.CurveEmpty{}

	case curveConstant:
		var c ubiart.CurveConstant
		if r.Expect32("curve", curveConstant) ||
			r.Expect32("constant curve size", sizeConstant) ||
			r.Float32(&c.Value) {
			return true
		}
		*v = c

	case curveLinear:
		var c ubiart.CurveLinear
		if r.Expect32("curve", curveLinear) ||
			r.Expect32("linear curve size", sizeLinear) ||
			readVec2(r, &c.Value0) ||
			readVec2(r, &c.NormalOut0) ||
			readVec2(r, &c.NormalIn1) ||
			readVec2(r, &c.Value1) {
			return true
		}
		*v = c

	case curveMulti:
		var n int
		if r.Expect32("curve", curveMulti) ||
			r.Expect32("multi curve size", sizeMulti) ||
			r.Count(&n, minKeySize) {
			return true
		}
		var c ubiart.CurveMulti
		if n > 0 {
			c.Keys = make([]ubiart.CurveKey, n)
		}
		for i := range c.Keys {
			k := &c.Keys[i]
			if r.Expect32("curve key size", sizeKey) ||
				readVec2(r, &k.Value) ||
				readVec2(r, &k.NormalIn) ||
				readVec2(r, &k.NormalOut) {
				return true
			}
		}
		*v = c

	default:
		return r.Fail(errors.UnknownMagic{Offset: off, Kind: "curve", Magic: magic})
	}
	return false
}

// EncodeCurve writes a curve value to w. A nil curve is written as empty.
func EncodeCurve(w *bin.Writer, c ubiart.BezierCurve) error {
	writeCurve(w, c)
	return w.Err()
}

func writeCurve(w *bin.Writer, v ubiart.BezierCurve) (failed bool) {
	switch c := ubiart.CurveOrEmpty(v).(type) {
	case ubiart.CurveEmpty:
		return w.Uint32(curveEmpty)

	case ubiart.CurveConstant:
		return w.Uint32(curveConstant) ||
			w.Uint32(sizeConstant) ||
			w.Float32(c.Value)

	case ubiart.CurveLinear:
		return w.Uint32(curveLinear) ||
			w.Uint32(sizeLinear) ||
			writeVec2(w, c.Value0) ||
			writeVec2(w, c.NormalOut0) ||
			writeVec2(w, c.NormalIn1) ||
			writeVec2(w, c.Value1)

	case ubiart.CurveMulti:
		if w.Uint32(curveMulti) ||
			w.Uint32(sizeMulti) ||
			w.Uint32(uint32(len(c.Keys))) {
			return true
		}
		for _, k := range c.Keys {
			if w.Uint32(sizeKey) ||
				writeVec2(w, k.Value) ||
				writeVec2(w, k.NormalIn) ||
				writeVec2(w, k.NormalOut) {
				return true
			}
		}
		return false

	default:
		return w.Fail(errors.Errorf("unexpected curve value %T", v))
	}
}
