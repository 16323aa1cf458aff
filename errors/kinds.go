package errors

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Categories of decoding failures. Every concrete error kind below matches
// exactly one of these through Is.
var (
	// A field expected to hold a constant held something else.
	ErrStructuralMismatch = New("structural mismatch")
	// A magic number or tag is not in the dispatch table.
	ErrUnknownDiscriminant = New("unknown discriminant")
	// A variant node does not have exactly one tagged child.
	ErrTagShape = New("malformed variant node")
	// A known discriminant whose decoder is not implemented.
	ErrUnsupportedVariant = New("unsupported variant")
	// No physical layout exists for the requested release.
	ErrUnsupportedRelease = New("unsupported release")
)

// StructuralMismatch indicates that a reserved or constant field did not hold
// the expected value. This usually means the data belongs to a different
// release than assumed.
type StructuralMismatch struct {
	// Offset is the byte offset of the field, or -1 when not applicable.
	Offset int64
	// Field names the checked field.
	Field string
	Want  uint32
	Got   uint32
}

func (err StructuralMismatch) Error() string {
	var s strings.Builder
	s.WriteString("structural mismatch")
	if err.Offset >= 0 {
		s.WriteString(" at ")
		s.WriteString(strconv.FormatInt(err.Offset, 10))
	}
	fmt.Fprintf(&s, ": %s: expected 0x%X, got 0x%X", err.Field, err.Want, err.Got)
	return s.String()
}

func (err StructuralMismatch) Is(target error) bool {
	return target == ErrStructuralMismatch
}

// UnknownMagic indicates a binary discriminant not known by the codec.
type UnknownMagic struct {
	Offset int64
	// Kind is the family of the discriminant, such as "clip" or "curve".
	Kind  string
	Magic uint32
}

func (err UnknownMagic) Error() string {
	return fmt.Sprintf("unknown %s magic 0x%08X at %d", err.Kind, err.Magic, err.Offset)
}

func (err UnknownMagic) Is(target error) bool {
	return target == ErrUnknownDiscriminant
}

// UnknownTag indicates a text variant tag not present in a tag table.
type UnknownTag struct {
	// Table names the variant set, such as "component".
	Table string
	Tag   string
	// Known lists the tags of the table.
	Known []string
}

func (err UnknownTag) Error() string {
	known := append([]string(nil), err.Known...)
	sort.Strings(known)
	return fmt.Sprintf("unknown %s tag %q (expected one of: %s)", err.Table, err.Tag, strings.Join(known, ", "))
}

func (err UnknownTag) Is(target error) bool {
	return target == ErrUnknownDiscriminant
}

// TagShape indicates that a variant wrapper had zero or several children where
// exactly one tagged child is required.
type TagShape struct {
	Element string
	Count   int
}

func (err TagShape) Error() string {
	return fmt.Sprintf("variant element <%s> has %d tagged children, expected exactly 1", err.Element, err.Count)
}

func (err TagShape) Is(target error) bool {
	return target == ErrTagShape
}

// UnsupportedVariant indicates a recognized variant whose codec is
// intentionally unimplemented.
type UnsupportedVariant struct {
	Name  string
	Magic uint32
}

func (err UnsupportedVariant) Error() string {
	if err.Magic == 0 {
		return fmt.Sprintf("%s is not supported", err.Name)
	}
	return fmt.Sprintf("%s (0x%08X) is not supported", err.Name, err.Magic)
}

func (err UnsupportedVariant) Is(target error) bool {
	return target == ErrUnsupportedVariant
}

// UnsupportedRelease indicates that no physical layout matches the release.
type UnsupportedRelease struct {
	Release string
	// What names the entity being decoded.
	What string
}

func (err UnsupportedRelease) Error() string {
	if err.What == "" {
		return fmt.Sprintf("unsupported release %q", err.Release)
	}
	return fmt.Sprintf("%s: unsupported release %q", err.What, err.Release)
}

func (err UnsupportedRelease) Is(target error) bool {
	return target == ErrUnsupportedRelease
}

// DataError wraps an error that occurred while encoding or decoding byte data.
type DataError struct {
	// Offset is the byte offset where the error occurred.
	Offset int64

	Cause error
}

func (err DataError) Error() string {
	var s strings.Builder
	s.WriteString("data error")
	if err.Offset >= 0 {
		s.WriteString(" at ")
		s.WriteString(strconv.FormatInt(err.Offset, 10))
	}
	if err.Cause != nil {
		s.WriteString(": ")
		s.WriteString(err.Cause.Error())
	}
	return s.String()
}

func (err DataError) Unwrap() error {
	return err.Cause
}

// ClipError indicates an error that occurred within a clip of a tape.
type ClipError struct {
	// Index is the position of the clip within the tape, or -1 for a clip
	// decoded on its own.
	Index int
	// Magic is the binary discriminant of the clip, if it was read.
	Magic uint32
	// Kind is the class name of the clip, if known.
	Kind string

	Cause error
}

func (err ClipError) Error() string {
	var s strings.Builder
	if err.Index >= 0 {
		fmt.Fprintf(&s, "#%d ", err.Index)
	}
	if err.Kind != "" {
		s.WriteString(err.Kind)
	} else {
		fmt.Fprintf(&s, "clip 0x%08X", err.Magic)
	}
	s.WriteString(": ")
	if err.Cause != nil {
		s.WriteString(err.Cause.Error())
	}
	return s.String()
}

func (err ClipError) Unwrap() error {
	return err.Cause
}
