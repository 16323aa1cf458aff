// Package xml implements the XML dialect of the UbiArt text formats.
//
// Documents are decoded into a tree of Tags rather than unmarshaled into
// structures, because the element names themselves carry type information.
// The dialect is a strict subset of XML: an optional prolog, comments, and
// elements holding attributes, text and child elements. Documents declared
// with a legacy character set, usually ISO-8859-1, are transcoded to UTF-8
// when decoding and back when encoding.
package xml

import (
	"bufio"
	"bytes"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"

	"github.com/Kriskras99/ferris-dancing-sub001/errors"
)

// DefaultEncoding is the character set the engine writes its documents in.
const DefaultEncoding = "ISO-8859-1"

// Tag is an XML element.
type Tag struct {
	// Name is the element name.
	Name string

	// Attr holds the attributes of the element, in document order.
	Attr []Attr

	// Text is the character data of the element, with surrounding
	// whitespace removed.
	Text string

	// Tags is a list of child elements.
	Tags []*Tag
}

// Attr represents an attribute of a tag.
type Attr struct {
	Name  string
	Value string
}

// NewTag returns a Tag with the given name and attributes.
func NewTag(name string, attr ...Attr) *Tag {
	return &Tag{Name: name, Attr: attr}
}

// AttrValue returns the value of the first attribute of the given name, and
// whether or not it exists.
func (t *Tag) AttrValue(name string) (value string, exists bool) {
	for _, a := range t.Attr {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// SetAttr sets the value of the first attribute of the given name, adding
// the attribute if it does not exist. Empty values are kept.
func (t *Tag) SetAttr(name, value string) {
	for i := range t.Attr {
		if t.Attr[i].Name == name {
			t.Attr[i].Value = value
			return
		}
	}
	t.Attr = append(t.Attr, Attr{Name: name, Value: value})
}

// Child returns the first child element of the given name, or nil.
func (t *Tag) Child(name string) *Tag {
	for _, c := range t.Tags {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Children returns every child element of the given name.
func (t *Tag) Children(name string) []*Tag {
	var list []*Tag
	for _, c := range t.Tags {
		if c.Name == name {
			list = append(list, c)
		}
	}
	return list
}

// Add appends child elements.
func (t *Tag) Add(tags ...*Tag) {
	t.Tags = append(t.Tags, tags...)
}

////////////////////////////////////////////////////////////////

// Document represents an entire XML document.
type Document struct {
	// Encoding is the character set named in the prolog. An empty string
	// means the document has no prolog and is UTF-8.
	Encoding string

	// Indent is a string that indicates one level of indentation when
	// encoding. If empty, the document is written on a single line.
	Indent string

	// Root is the root tag in the document.
	Root *Tag

	// Warnings is a list of non-fatal problems that have occurred. This will
	// be cleared and populated when calling either ReadFrom or WriteTo.
	Warnings []error
}

// NewDocument returns a Document in the engine's default layout, with root
// as its root element.
func NewDocument(root *Tag) *Document {
	return &Document{
		Encoding: DefaultEncoding,
		Indent:   "\t",
		Root:     root,
	}
}

// A SyntaxError represents a syntax error in the XML input stream.
type SyntaxError struct {
	Msg  string
	Line int
}

func (e *SyntaxError) Error() string {
	return "XML syntax error on line " + strconv.Itoa(e.Line) + ": " + e.Msg
}

// lookupCharmap finds a charmap by name, ignoring case and punctuation, so
// that "ISO-8859-1" matches "ISO 8859-1".
func lookupCharmap(name string) *charmap.Charmap {
	want := normalizeCharset(name)
	for _, enc := range charmap.All {
		if cm, ok := enc.(*charmap.Charmap); ok && normalizeCharset(cm.String()) == want {
			return cm
		}
	}
	return nil
}

func normalizeCharset(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if 'a' <= r && r <= 'z' || '0' <= r && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// SupportedEncoding returns whether documents can be read and written in the
// named character set.
func SupportedEncoding(name string) bool {
	return isUTF8(name) || lookupCharmap(name) != nil
}

// Encodings returns the names of the supported single-byte character sets.
func Encodings() []string {
	var list []string
	for _, enc := range charmap.All {
		if cm, ok := enc.(*charmap.Charmap); ok {
			list = append(list, cm.String())
		}
	}
	return list
}

func isUTF8(name string) bool {
	switch normalizeCharset(name) {
	case "", "utf8":
		return true
	}
	return false
}

// ReadFrom decodes data from r into the Document.
func (doc *Document) ReadFrom(r io.Reader) (n int64, err error) {
	if r == nil {
		return 0, errors.New("reader is nil")
	}
	b, err := io.ReadAll(r)
	n = int64(len(b))
	if err != nil {
		return n, err
	}

	doc.Encoding = ""
	doc.Indent = ""
	doc.Root = nil
	doc.Warnings = doc.Warnings[:0]

	d := &decoder{b: b, line: 1, doc: doc}
	if err := d.prolog(); err != nil {
		return n, err
	}
	if !isUTF8(doc.Encoding) {
		cm := lookupCharmap(doc.Encoding)
		if cm == nil {
			return n, errors.Errorf("unsupported document encoding %q", doc.Encoding)
		}
		body, err := cm.NewDecoder().Bytes(d.b[d.pos:])
		if err != nil {
			return n, errors.Wrapf(err, "transcoding from %s", doc.Encoding)
		}
		d.b, d.pos = body, 0
	}

	if err := d.misc(); err != nil {
		return n, err
	}
	if doc.Root, err = d.tag(); err != nil {
		return n, err
	}
	if err := d.misc(); err != nil {
		return n, err
	}
	if d.pos < len(d.b) {
		doc.Warnings = append(doc.Warnings, d.syntaxError("ignored trailing content after root element"))
	}
	return n, nil
}

type decoder struct {
	b    []byte
	pos  int
	line int
	doc  *Document
}

// Creates a SyntaxError with the current line number.
func (d *decoder) syntaxError(msg string) error {
	return &SyntaxError{Msg: msg, Line: d.line}
}

func (d *decoder) eof() bool {
	return d.pos >= len(d.b)
}

func (d *decoder) hasPrefix(s string) bool {
	return bytes.HasPrefix(d.b[d.pos:], []byte(s))
}

// advance moves the cursor n bytes forward, maintaining the line number.
func (d *decoder) advance(n int) {
	d.line += bytes.Count(d.b[d.pos:d.pos+n], []byte{'\n'})
	d.pos += n
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\r', '\n', '\t', '\f':
		return true
	default:
		return false
	}
}

func (d *decoder) space() {
	for !d.eof() && isSpace(d.b[d.pos]) {
		d.advance(1)
	}
}

// prolog reads an optional <?xml ...?> declaration.
func (d *decoder) prolog() error {
	// Byte order mark.
	if d.hasPrefix("\xEF\xBB\xBF") {
		d.pos += 3
	}
	d.space()
	if !d.hasPrefix("<?xml") {
		return nil
	}
	end := bytes.Index(d.b[d.pos:], []byte("?>"))
	if end < 0 {
		return d.syntaxError("unterminated XML declaration")
	}
	decl := &Tag{}
	inner := &decoder{b: d.b[d.pos+len("<?xml") : d.pos+end], line: d.line, doc: d.doc}
	if err := inner.attrs(decl); err != nil {
		return err
	}
	d.advance(end + len("?>"))
	if enc, ok := decl.AttrValue("encoding"); ok {
		d.doc.Encoding = enc
	} else {
		d.doc.Encoding = "UTF-8"
	}
	return nil
}

// misc skips whitespace and comments.
func (d *decoder) misc() error {
	for {
		d.space()
		if !d.hasPrefix("<!--") {
			return nil
		}
		end := bytes.Index(d.b[d.pos+4:], []byte("-->"))
		if end < 0 {
			return d.syntaxError("unterminated comment")
		}
		d.advance(4 + end + 3)
	}
}

func isNameByte(c byte) bool {
	return 'a' <= c && c <= 'z' ||
		'A' <= c && c <= 'Z' ||
		'0' <= c && c <= '9' ||
		c == '_' || c == '-' || c == '.' || c == ':' ||
		c >= 0x80
}

func (d *decoder) name() (string, bool) {
	start := d.pos
	for !d.eof() && isNameByte(d.b[d.pos]) {
		d.pos++
	}
	if d.pos == start {
		return "", false
	}
	return string(d.b[start:d.pos]), true
}

// attrs reads attributes up to the end of the input or the first '/', '>'
// or '?'.
func (d *decoder) attrs(tag *Tag) error {
	for {
		d.space()
		if d.eof() {
			return nil
		}
		switch d.b[d.pos] {
		case '/', '>', '?':
			return nil
		}
		name, ok := d.name()
		if !ok {
			return d.syntaxError("expected attribute name in element")
		}
		d.space()
		if d.eof() || d.b[d.pos] != '=' {
			return d.syntaxError("attribute name without = in element")
		}
		d.advance(1)
		d.space()
		if d.eof() || (d.b[d.pos] != '"' && d.b[d.pos] != '\'') {
			return d.syntaxError("unquoted or missing attribute value in element")
		}
		quote := d.b[d.pos]
		d.advance(1)
		end := bytes.IndexByte(d.b[d.pos:], quote)
		if end < 0 {
			return d.syntaxError("unterminated attribute value")
		}
		value := d.unescape(d.b[d.pos : d.pos+end])
		d.advance(end + 1)
		tag.Attr = append(tag.Attr, Attr{Name: name, Value: value})
	}
}

func (d *decoder) tag() (*Tag, error) {
	if d.eof() || d.b[d.pos] != '<' {
		return nil, d.syntaxError("expected start tag")
	}
	d.advance(1)
	if !d.eof() && d.b[d.pos] == '/' {
		return nil, d.syntaxError("unexpected end tag")
	}

	tag := new(Tag)
	var ok bool
	if tag.Name, ok = d.name(); !ok {
		return nil, d.syntaxError("expected element name after <")
	}
	if err := d.attrs(tag); err != nil {
		return nil, err
	}
	if d.hasPrefix("/>") {
		d.advance(2)
		return tag, nil
	}
	if !d.hasPrefix(">") {
		return nil, d.syntaxError("expected > in element <" + tag.Name + ">")
	}
	d.advance(1)

	var text []byte
	for {
		if err := d.misc(); err != nil {
			return nil, err
		}
		if d.eof() {
			return nil, d.syntaxError("unexpected EOF in element <" + tag.Name + ">")
		}
		if d.hasPrefix("</") {
			break
		}
		if d.b[d.pos] == '<' {
			sub, err := d.tag()
			if err != nil {
				return nil, err
			}
			tag.Tags = append(tag.Tags, sub)
			continue
		}
		end := bytes.IndexByte(d.b[d.pos:], '<')
		if end < 0 {
			end = len(d.b) - d.pos
		}
		text = append(text, d.b[d.pos:d.pos+end]...)
		d.advance(end)
	}
	tag.Text = d.unescape(bytes.TrimSpace(text))

	// </: End element
	d.advance(2)
	endName, ok := d.name()
	if !ok {
		return nil, d.syntaxError("expected element name after </")
	}
	if endName != tag.Name {
		return nil, d.syntaxError("element <" + tag.Name + "> closed by </" + endName + ">")
	}
	d.space()
	if !d.hasPrefix(">") {
		return nil, d.syntaxError("invalid characters between </" + endName + " and >")
	}
	d.advance(1)
	return tag, nil
}

var entity = map[string]string{
	"lt":   "<",
	"gt":   ">",
	"amp":  "&",
	"apos": "'",
	"quot": "\"",
}

// unescape replaces entity references in s. Malformed references are kept
// literally and reported as warnings.
func (d *decoder) unescape(s []byte) string {
	if bytes.IndexByte(s, '&') < 0 {
		return string(s)
	}
	var buf strings.Builder
	for len(s) > 0 {
		i := bytes.IndexByte(s, '&')
		if i < 0 {
			buf.Write(s)
			break
		}
		buf.Write(s[:i])
		s = s[i:]
		end := bytes.IndexByte(s, ';')
		if end < 0 {
			d.doc.Warnings = append(d.doc.Warnings, d.syntaxError("unterminated entity reference"))
			buf.Write(s)
			break
		}
		ref := string(s[1:end])
		if r, ok := entity[ref]; ok {
			buf.WriteString(r)
		} else if strings.HasPrefix(ref, "#") {
			base, digits := 10, ref[1:]
			if strings.HasPrefix(digits, "x") || strings.HasPrefix(digits, "X") {
				base, digits = 16, digits[1:]
			}
			n, err := strconv.ParseUint(digits, base, 32)
			if err != nil {
				d.doc.Warnings = append(d.doc.Warnings, d.syntaxError("invalid character reference &"+ref+";"))
				buf.Write(s[:end+1])
			} else {
				buf.WriteRune(rune(n))
			}
		} else {
			d.doc.Warnings = append(d.doc.Warnings, d.syntaxError("unknown entity &"+ref+";"))
			buf.Write(s[:end+1])
		}
		s = s[end+1:]
	}
	return buf.String()
}

////////////////////////////////////////////////////////////////

type encoder struct {
	*bufio.Writer
	doc   *Document
	depth int
	err   error
}

func (e *encoder) writeString(s string) {
	if e.err != nil {
		return
	}
	_, e.err = e.WriteString(s)
}

func (e *encoder) newline() {
	if e.doc.Indent == "" {
		return
	}
	e.writeString("\n")
	for i := 0; i < e.depth; i++ {
		e.writeString(e.doc.Indent)
	}
}

func checkName(name string) bool {
	if len(name) == 0 {
		return false
	}
	for i := 0; i < len(name); i++ {
		if !isNameByte(name[i]) {
			return false
		}
	}
	return true
}

func (e *encoder) encodeTag(tag *Tag) {
	if !checkName(tag.Name) {
		e.doc.Warnings = append(e.doc.Warnings, errors.New("ignored tag with malformed name `"+tag.Name+"`"))
		return
	}
	e.writeString("<")
	e.writeString(tag.Name)
	for _, attr := range tag.Attr {
		if !checkName(attr.Name) {
			e.doc.Warnings = append(e.doc.Warnings, errors.New("ignored attribute with malformed name `"+attr.Name+"`"))
			continue
		}
		e.writeString(" ")
		e.writeString(attr.Name)
		e.writeString(`="`)
		e.writeString(escape(attr.Value, true))
		e.writeString(`"`)
	}
	if tag.Text == "" && len(tag.Tags) == 0 {
		e.writeString("/>")
		return
	}
	e.writeString(">")
	e.writeString(escape(tag.Text, false))
	if len(tag.Tags) > 0 {
		e.depth++
		for _, sub := range tag.Tags {
			e.newline()
			e.encodeTag(sub)
		}
		e.depth--
		e.newline()
	}
	e.writeString("</")
	e.writeString(tag.Name)
	e.writeString(">")
}

// escape returns the XML equivalent of the plain text s. Inside attributes,
// whitespace control characters are written as character references so that
// they survive attribute-value normalization.
func escape(s string, attr bool) string {
	var buf strings.Builder
	for _, r := range s {
		switch r {
		case '"':
			buf.WriteString("&quot;")
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '\n', '\r', '\t':
			if attr {
				buf.WriteString("&#" + strconv.Itoa(int(r)) + ";")
			} else {
				buf.WriteRune(r)
			}
		default:
			buf.WriteRune(r)
		}
	}
	return buf.String()
}

// WriteTo encodes the Document as bytes to w.
func (doc *Document) WriteTo(w io.Writer) (n int64, err error) {
	if doc.Root == nil {
		return 0, errors.New("document has no root")
	}
	doc.Warnings = doc.Warnings[:0]

	var body bytes.Buffer
	e := &encoder{Writer: bufio.NewWriter(&body), doc: doc}
	if doc.Encoding != "" {
		e.writeString(`<?xml version="1.0" encoding="` + doc.Encoding + `"?>`)
		if doc.Indent != "" {
			e.writeString("\n")
		}
	}
	e.encodeTag(doc.Root)
	if doc.Indent != "" {
		e.writeString("\n")
	}
	if e.err == nil {
		e.err = e.Flush()
	}
	if e.err != nil {
		return 0, e.err
	}

	out := body.Bytes()
	if !isUTF8(doc.Encoding) {
		cm := lookupCharmap(doc.Encoding)
		if cm == nil {
			return 0, errors.Errorf("unsupported document encoding %q", doc.Encoding)
		}
		if out, err = cm.NewEncoder().Bytes(out); err != nil {
			return 0, errors.Wrapf(err, "transcoding to %s", doc.Encoding)
		}
	}
	written, err := w.Write(out)
	return int64(written), err
}
