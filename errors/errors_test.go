package errors

import (
	"testing"

	"github.com/go-quicktest/qt"
)

func TestKindMessages(t *testing.T) {
	tests := []struct {
		err  error
		msg  string
		kind error
	}{
		{StructuralMismatch{Offset: 4, Field: "clip size", Want: 0x2C, Got: 0x30}, "structural mismatch at 4: clip size: expected 0x2C, got 0x30", ErrStructuralMismatch},
		{StructuralMismatch{Offset: -1, Field: "version", Want: 1, Got: 2}, "structural mismatch: version: expected 0x1, got 0x2", ErrStructuralMismatch},
		{UnknownMagic{Offset: 8, Kind: "curve", Magic: 0x01020304}, "unknown curve magic 0x01020304 at 8", ErrUnknownDiscriminant},
		{UnknownTag{Table: "component", Tag: "Foo", Known: []string{"B", "A"}}, `unknown component tag "Foo" (expected one of: A, B)`, ErrUnknownDiscriminant},
		{TagShape{Element: "COMPONENTS", Count: 2}, "variant element <COMPONENTS> has 2 tagged children, expected exactly 1", ErrTagShape},
		{UnsupportedVariant{Name: "LipSyncClip", Magic: 0xE9BC7C0D}, "LipSyncClip (0xE9BC7C0D) is not supported", ErrUnsupportedVariant},
		{UnsupportedVariant{Name: "LipSyncClip"}, "LipSyncClip is not supported", ErrUnsupportedVariant},
		{UnsupportedRelease{Release: "jd2015"}, `unsupported release "jd2015"`, ErrUnsupportedRelease},
		{UnsupportedRelease{Release: "jd2015", What: "avatar"}, `avatar: unsupported release "jd2015"`, ErrUnsupportedRelease},
	}
	for _, test := range tests {
		qt.Check(t, qt.Equals(test.err.Error(), test.msg))
		qt.Check(t, qt.IsTrue(Is(test.err, test.kind)), qt.Commentf("%T", test.err))
	}
}

func TestWrappedKinds(t *testing.T) {
	err := ClipError{
		Index: 3,
		Kind:  "AlphaClip",
		Cause: DataError{Offset: 12, Cause: UnknownMagic{Offset: 12, Kind: "curve", Magic: 7}},
	}
	qt.Assert(t, qt.Equals(err.Error(), "#3 AlphaClip: data error at 12: unknown curve magic 0x00000007 at 12"))
	qt.Assert(t, qt.IsTrue(Is(err, ErrUnknownDiscriminant)))
	qt.Assert(t, qt.IsFalse(Is(err, ErrStructuralMismatch)))

	var magic UnknownMagic
	qt.Assert(t, qt.IsTrue(As(Wrap(err, "decoding tape"), &magic)))
	qt.Assert(t, qt.Equals(magic.Kind, "curve"))

	single := ClipError{Index: -1, Magic: 0xDEADBEEF}
	qt.Assert(t, qt.Equals(single.Error(), "clip 0xDEADBEEF: "))
}

func TestUnion(t *testing.T) {
	qt.Assert(t, qt.IsNil(Union()))
	qt.Assert(t, qt.IsNil(Union(nil, Errors{})))

	a, b := New("a"), New("b")
	err := Union(a, Errors{nil, b}, nil)
	list, ok := err.(Errors)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.HasLen(list, 2))
	qt.Assert(t, qt.Equals(list[0], a))
	qt.Assert(t, qt.Equals(list[1], b))
	qt.Assert(t, qt.Equals(err.Error(), "multiple errors:\n\ta\n\tb"))
	qt.Assert(t, qt.IsTrue(Is(err, b)))

	qt.Assert(t, qt.Equals(Union(a).Error(), "a"))
}
