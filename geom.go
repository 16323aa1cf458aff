package ubiart

// Vec2 is a two-dimensional vector.
type Vec2 struct {
	X, Y float32
}

// Vec3 is a three-dimensional vector.
type Vec3 struct {
	X, Y, Z float32
}

// Color is an RGBA color with components in the range [0, 1].
type Color struct {
	R, G, B, A float32
}

// Mat4 is a 4x4 matrix in row-major order. Scenes use it for their depth
// separator blocks.
type Mat4 [16]float32

// Identity returns the identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// TargetActor refers to an actor from within a tape or scene. Qualifiers
// locate the scene that contains the actor, relative to the referring scene.
type TargetActor struct {
	Qualifiers []string
	Name       string
}

// String returns the path form of the reference, with each qualifier
// followed by a '|' separator.
func (t TargetActor) String() string {
	n := len(t.Name)
	for _, q := range t.Qualifiers {
		n += len(q) + 1
	}
	b := make([]byte, 0, n)
	for _, q := range t.Qualifiers {
		b = append(b, q...)
		b = append(b, '|')
	}
	return string(append(b, t.Name...))
}

// ParseTargetActor parses the path form of a TargetActor. The last segment
// is the name of the actor.
func ParseTargetActor(s string) TargetActor {
	var t TargetActor
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '|' {
			t.Qualifiers = append(t.Qualifiers, s[start:i])
			start = i + 1
		}
	}
	t.Name = s[start:]
	return t
}
