// Package variant implements the decoding and encoding of externally tagged
// variants in the XML encoding.
//
// The discriminant of an externally tagged variant is the name of an element
// rather than the value of a field. A wrapper element holds exactly one
// child, and the name of the child selects the variant:
//
//	<COMPONENTS NAME="MaterialGraphicComponent">
//		<MaterialGraphicComponent .../>
//	</COMPONENTS>
//
// A Table maps each tag of a closed set to the functions that decode and
// encode it. Tables are built once and are safe for concurrent lookups.
package variant

import (
	"sort"

	"github.com/Kriskras99/ferris-dancing-sub001/errors"
	"github.com/Kriskras99/ferris-dancing-sub001/xml"
)

// Codec holds the functions that convert one variant of T.
type Codec[T any] struct {
	// Decode converts the tagged element into a value.
	Decode func(tag *xml.Tag) (T, error)

	// Encode converts a value into an element. The name of the element must
	// be the tag the codec is registered under.
	Encode func(v T) (*xml.Tag, error)
}

// Table is a closed set of variants of T, keyed by tag.
type Table[T any] struct {
	// Name describes the set in errors, such as "component".
	Name string

	codecs map[string]Codec[T]
}

// NewTable returns an empty Table.
func NewTable[T any](name string) *Table[T] {
	return &Table[T]{Name: name, codecs: map[string]Codec[T]{}}
}

// Register adds the codec of a tag. Registering a tag twice panics, as does
// a codec with a nil function.
func (t *Table[T]) Register(tag string, c Codec[T]) {
	if c.Decode == nil || c.Encode == nil {
		panic("variant: incomplete codec for " + tag)
	}
	if _, ok := t.codecs[tag]; ok {
		panic("variant: " + t.Name + " tag " + tag + " registered twice")
	}
	t.codecs[tag] = c
}

// Has returns whether tag is part of the table.
func (t *Table[T]) Has(tag string) bool {
	_, ok := t.codecs[tag]
	return ok
}

// Tags returns the tags of the table, sorted.
func (t *Table[T]) Tags() []string {
	tags := make([]string, 0, len(t.codecs))
	for tag := range t.codecs {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// DecodeTag decodes an element whose own name is the tag.
func (t *Table[T]) DecodeTag(tag *xml.Tag) (v T, err error) {
	c, ok := t.codecs[tag.Name]
	if !ok {
		return v, errors.UnknownTag{Table: t.Name, Tag: tag.Name, Known: t.Tags()}
	}
	if v, err = c.Decode(tag); err != nil {
		return v, errors.Wrapf(err, "%s %s", t.Name, tag.Name)
	}
	return v, nil
}

// Decode decodes the variant held by wrapper. The wrapper must have exactly
// one child element, whatever its name; the name of the child is then looked
// up in the table.
func (t *Table[T]) Decode(wrapper *xml.Tag) (v T, err error) {
	if len(wrapper.Tags) != 1 {
		return v, errors.TagShape{Element: wrapper.Name, Count: len(wrapper.Tags)}
	}
	return t.DecodeTag(wrapper.Tags[0])
}

// EncodeTag encodes v as an element whose name is its tag.
func (t *Table[T]) EncodeTag(tag string, v T) (*xml.Tag, error) {
	c, ok := t.codecs[tag]
	if !ok {
		return nil, errors.UnknownTag{Table: t.Name, Tag: tag, Known: t.Tags()}
	}
	child, err := c.Encode(v)
	if err != nil {
		return nil, errors.Wrapf(err, "%s %s", t.Name, tag)
	}
	child.Name = tag
	return child, nil
}

// Encode encodes v, which has the given tag, into a wrapper element. The
// wrapper repeats the tag in its NAME attribute.
func (t *Table[T]) Encode(wrapper, tag string, v T) (*xml.Tag, error) {
	child, err := t.EncodeTag(tag, v)
	if err != nil {
		return nil, err
	}
	w := xml.NewTag(wrapper, xml.Attr{Name: "NAME", Value: tag})
	w.Add(child)
	return w, nil
}

// DecodeList decodes every child of parent named wrapper, in order. Other
// children are ignored.
func (t *Table[T]) DecodeList(parent *xml.Tag, wrapper string) ([]T, error) {
	var list []T
	for i, w := range parent.Children(wrapper) {
		v, err := t.Decode(w)
		if err != nil {
			return nil, errors.Wrapf(err, "<%s> #%d", wrapper, i)
		}
		list = append(list, v)
	}
	return list, nil
}
