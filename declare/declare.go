// The declare package is used to generate scenes and tapes in a declarative
// style.
//
// Most items have a Declare method, which returns a new ubiart structure
// corresponding to the declared item.
//
// The easiest way to use this package is to import it directly into the
// current package:
//
//	import . "github.com/Kriskras99/ferris-dancing-sub001/declare"
//
// This allows the package's identifiers to be used directly without a
// qualifier.
//
// Properties are matched by the name under which a field is visited by the
// Fields method of the declared value, which is also the name of the field
// in the XML encoding. A property with no matching field is ignored, except
// within components that keep unknown attributes.
package declare

import (
	ubiart "github.com/Kriskras99/ferris-dancing-sub001"
	"github.com/Kriskras99/ferris-dancing-sub001/isc"
	"github.com/Kriskras99/ferris-dancing-sub001/xml"
)

// element is implemented by declarations that can be within a Scene, Actor,
// Component, Clip or Tape declaration.
type element interface {
	element()
}

type property struct {
	name  string
	typ   Type
	value []interface{}
}

func (property) element() {}

// Property declares a field of a declared value. It defines the name of the
// field, its type, and the value of the field.
//
// The value argument may be one or more values of any type, which are
// converted to the given type. If the value(s) cannot be converted, then the
// zero value for the given type is used instead. Any number type except for
// complex numbers may be given where the type has numeric components.
//
//	String:
//	    A single string or []byte.
//	Strings:
//	    Any number of strings, or a single []string.
//	Bool:
//	    A single bool.
//	Uint32, Int32, Float, Enum:
//	    A single number.
//	Vec2, Vec3, Color:
//	    A single vector of the type, or 2, 3 or 4 numbers.
//	Mat4:
//	    A single ubiart.Mat4, or 16 numbers in row-major order.
//	Actor:
//	    A single ubiart.TargetActor, or a string in path form.
//	Actors:
//	    Any number of ubiart.TargetActors or strings.
//	Curve:
//	    1) A single ubiart.BezierCurve.
//	    2) A single number, for a constant curve.
//	    3) 8 numbers, for a linear curve: value, outgoing normal, incoming
//	       normal, and end value.
//	    Anything else yields an empty curve.
func Property(name string, typ Type, value ...interface{}) property {
	return property{name: name, typ: typ, value: value}
}

// Declare evaluates the Property declaration, returning only the value.
func (prop property) Declare() interface{} {
	return prop.typ.value(prop.value)
}

// properties indexes declared properties by name. When a name is declared
// twice, the latter takes precedence.
type properties struct {
	byName map[string]property
	nested map[string]*properties
	order  []string
}

func (p *properties) add(prop property) {
	if p.byName == nil {
		p.byName = map[string]property{}
	}
	if _, ok := p.byName[prop.name]; !ok {
		p.order = append(p.order, prop.name)
	}
	p.byName[prop.name] = prop
}

func (p *properties) addNested(n nested) {
	if p.nested == nil {
		p.nested = map[string]*properties{}
	}
	props := n.props
	p.nested[n.name] = &props
}

// set visits the fields of fn with a setter, so that every declared
// property is written to its field.
func (p *properties) set(fn func(ubiart.TextSerializer)) {
	if len(p.order) == 0 && len(p.nested) == 0 {
		return
	}
	fn(&setter{props: p, seen: map[string]bool{}})
}

////////////////////////////////////////////////////////////////

type nested struct {
	name  string
	props properties
}

func (nested) element() {}

// Struct declares the fields of a nested structure of a declared value,
// such as the parent bind of an actor. The name is the name of the element
// that wraps the structure.
func Struct(name string, elements ...element) nested {
	n := nested{name: name}
	for _, e := range elements {
		switch e := e.(type) {
		case property:
			n.props.add(e)
		case nested:
			n.props.addNested(e)
		}
	}
	return n
}

////////////////////////////////////////////////////////////////

type component struct {
	kind  string
	props properties
}

func (component) element() {}

// Component declares a component of an actor. The kind is the class name
// of the component.
func Component(kind string, elements ...element) component {
	c := component{kind: kind}
	for _, e := range elements {
		switch e := e.(type) {
		case property:
			c.props.add(e)
		case nested:
			c.props.addNested(e)
		}
	}
	return c
}

// Declare evaluates the Component declaration. A kind that is not part of
// the component table yields a component without fields.
func (dc component) Declare() ubiart.Component {
	c, err := isc.Components.DecodeTag(xml.NewTag(dc.kind))
	if err != nil {
		c = &ubiart.EmptyComponent{Kind: dc.kind}
	}
	dc.props.set(c.Fields)
	return c
}

////////////////////////////////////////////////////////////////

type actor struct {
	kind       string
	props      properties
	components []component
	scene      *scene
}

func (actor) element() {}

func newActor(kind, name string, elements []element) actor {
	a := actor{kind: kind}
	a.props.add(Property("USERFRIENDLY", String, name))
	for _, e := range elements {
		switch e := e.(type) {
		case property:
			a.props.add(e)
		case nested:
			a.props.addNested(e)
		case component:
			a.components = append(a.components, e)
		case scene:
			a.scene = &e
		}
	}
	return a
}

// Actor declares an actor with a friendly name, and a series of elements.
// An element can be a Property or Struct declaration, which defines a field
// of the actor, or a Component declaration, which is appended to the
// components of the actor.
func Actor(name string, elements ...element) actor {
	return newActor("Actor", name, elements)
}

// SubScene declares a sub-scene actor. Elements are as for Actor, and may
// also contain a Scene declaration, which becomes the embedded scene.
func SubScene(name string, elements ...element) actor {
	return newActor("SubSceneActor", name, elements)
}

// Declare evaluates the actor declaration.
func (da actor) Declare() ubiart.SceneActor {
	var (
		a      *ubiart.Actor
		result ubiart.SceneActor
	)
	if da.kind == "SubSceneActor" {
		sub := new(ubiart.SubSceneActor)
		da.props.set(sub.Fields)
		if da.scene != nil {
			sub.Scene = da.scene.Declare()
		}
		a, result = &sub.Actor, sub
	} else {
		a = new(ubiart.Actor)
		da.props.set(a.Fields)
		result = a
	}
	for _, dc := range da.components {
		a.Components = append(a.Components, dc.Declare())
	}
	return result
}

////////////////////////////////////////////////////////////////

type config struct {
	kind  string
	props properties
}

func (config) element() {}

// Config declares a configuration block of a scene. The kind is the class
// name of the block.
func Config(kind string, elements ...element) config {
	c := config{kind: kind}
	for _, e := range elements {
		switch e := e.(type) {
		case property:
			c.props.add(e)
		case nested:
			c.props.addNested(e)
		}
	}
	return c
}

// Declare evaluates the Config declaration. It returns nil if the kind is
// not part of the configuration table.
func (dc config) Declare() ubiart.SceneConfig {
	c, err := isc.SceneConfigs.DecodeTag(xml.NewTag(dc.kind))
	if err != nil {
		return nil
	}
	dc.props.set(c.Fields)
	return c
}

////////////////////////////////////////////////////////////////

type scene struct {
	props   properties
	actors  []actor
	configs []config
}

func (scene) element() {}

// Scene declares a scene. Elements can be Property declarations for the
// fields of the scene, Actor or SubScene declarations, which are appended
// to the actors of the scene, and Config declarations.
func Scene(elements ...element) scene {
	s := scene{}
	for _, e := range elements {
		switch e := e.(type) {
		case property:
			s.props.add(e)
		case actor:
			s.actors = append(s.actors, e)
		case config:
			s.configs = append(s.configs, e)
		}
	}
	return s
}

// Declare evaluates the Scene declaration. Actors and configuration blocks
// are evaluated in order.
func (ds scene) Declare() *ubiart.Scene {
	s := ubiart.NewScene()
	ds.props.set(s.Fields)
	ds.props.set(func(t ubiart.TextSerializer) {
		t.Uint32("activeSceneConfig", &s.SceneConfigs.ActiveSceneConfig)
	})
	for _, da := range ds.actors {
		s.Actors = append(s.Actors, da.Declare())
	}
	for _, dc := range ds.configs {
		if c := dc.Declare(); c != nil {
			s.SceneConfigs.Configs = append(s.SceneConfigs.Configs, c)
		}
	}
	return s
}

////////////////////////////////////////////////////////////////

type clip struct {
	kind  ubiart.ClipKind
	props properties
}

func (clip) element() {}

// Clip declares a clip of a tape. Properties use the names of the clip
// fields in the XML encoding, such as "StartTime" or "Curve".
func Clip(kind ubiart.ClipKind, elements ...element) clip {
	c := clip{kind: kind}
	for _, e := range elements {
		if p, ok := e.(property); ok {
			c.props.add(p)
		}
	}
	return c
}

// Declare evaluates the Clip declaration. It returns nil if the kind is not
// valid.
func (dc clip) Declare() ubiart.Clip {
	c := ubiart.NewClip(dc.kind)
	if c == nil {
		return nil
	}
	dc.props.set(func(s ubiart.TextSerializer) { c.Fields(s) })
	return c
}

// Tape declares a tape. Elements can be Clip declarations, which are
// appended to the clips of the tape, and Property declarations for the
// fields of the tape: "TapeClock", "TapeBarCount",
// "FreeResourcesAfterPlay", "MapName" and "SoundwichEvent".
type Tape []element

func tapeFields(t *ubiart.Tape) func(ubiart.TextSerializer) {
	return func(s ubiart.TextSerializer) {
		s.Uint32("TapeClock", &t.TapeClock)
		s.Uint32("TapeBarCount", &t.TapeBarCount)
		s.Bool("FreeResourcesAfterPlay", &t.FreeResourcesAfterPlay)
		s.String("MapName", &t.MapName)
		s.String("SoundwichEvent", &t.SoundwichEvent)
	}
}

// Declare evaluates the Tape declaration.
func (dt Tape) Declare() *ubiart.Tape {
	t := new(ubiart.Tape)
	var props properties
	for _, e := range dt {
		switch e := e.(type) {
		case property:
			props.add(e)
		case clip:
			if c := e.Declare(); c != nil {
				t.Clips = append(t.Clips, c)
			}
		}
	}
	props.set(tapeFields(t))
	return t
}
