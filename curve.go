package ubiart

// CurveType identifies the case of a BezierCurve.
type CurveType uint8

const (
	CurveTypeEmpty CurveType = iota
	CurveTypeConstant
	CurveTypeLinear
	CurveTypeMulti
)

func (t CurveType) String() string {
	switch t {
	case CurveTypeEmpty:
		return "Empty"
	case CurveTypeConstant:
		return "Constant"
	case CurveTypeLinear:
		return "Linear"
	case CurveTypeMulti:
		return "Multi"
	}
	return "Invalid"
}

// BezierCurve is an animation curve over a float value. It is one of
// CurveEmpty, CurveConstant, CurveLinear or CurveMulti.
type BezierCurve interface {
	CurveType() CurveType
	// Copy returns a deep copy of the curve.
	Copy() BezierCurve
}

// CurveEmpty is a curve with no value.
type CurveEmpty struct{}

func (CurveEmpty) CurveType() CurveType { return CurveTypeEmpty }
func (c CurveEmpty) Copy() BezierCurve  { return c }

// CurveConstant holds one value for its whole duration.
type CurveConstant struct {
	Value float32
}

func (CurveConstant) CurveType() CurveType { return CurveTypeConstant }
func (c CurveConstant) Copy() BezierCurve  { return c }

// CurveLinear interpolates between two points. The normals are the tangent
// handles leaving the first point and entering the second.
type CurveLinear struct {
	Value0     Vec2
	NormalOut0 Vec2
	NormalIn1  Vec2
	Value1     Vec2
}

func (CurveLinear) CurveType() CurveType { return CurveTypeLinear }
func (c CurveLinear) Copy() BezierCurve  { return c }

// CurveKey is a key point of a CurveMulti.
type CurveKey struct {
	Value     Vec2
	NormalIn  Vec2
	NormalOut Vec2
}

// CurveMulti interpolates through a list of keys.
type CurveMulti struct {
	Keys []CurveKey
}

func (CurveMulti) CurveType() CurveType { return CurveTypeMulti }
func (c CurveMulti) Copy() BezierCurve {
	return CurveMulti{Keys: append([]CurveKey(nil), c.Keys...)}
}

// CurveOrEmpty returns c, or CurveEmpty if c is nil.
func CurveOrEmpty(c BezierCurve) BezierCurve {
	if c == nil {
		return CurveEmpty{}
	}
	return c
}
