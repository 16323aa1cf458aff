package isc

import (
	ubiart "github.com/Kriskras99/ferris-dancing-sub001"
	"github.com/Kriskras99/ferris-dancing-sub001/errors"
	"github.com/Kriskras99/ferris-dancing-sub001/variant"
	"github.com/Kriskras99/ferris-dancing-sub001/xml"
)

// Tag tables of the variant sets of the text encoding.
var (
	Components   = variant.NewTable[ubiart.Component]("component")
	SceneActors  = variant.NewTable[ubiart.SceneActor]("actor")
	SceneConfigs = variant.NewTable[ubiart.SceneConfig]("scene config")
	Behaviours   = variant.NewTable[ubiart.CarouselBehaviour]("carousel behaviour")
	Clips        = variant.NewTable[ubiart.Clip]("clip")
)

// RegisterFields registers a variant of a table whose fields are entirely
// visited by its Fields method. newV returns a zero value of the variant.
func RegisterFields[V ubiart.Fielder](table *variant.Table[V], tag string, newV func() V) {
	table.Register(tag, variant.Codec[V]{
		Decode: func(t *xml.Tag) (V, error) {
			v := newV()
			if err := ReadFields(t, v.Fields); err != nil {
				var zero V
				return zero, err
			}
			return v, nil
		},
		Encode: func(v V) (*xml.Tag, error) {
			return WriteFields(tag, v.Fields)
		},
	})
}

func init() {
	registerComponents()
	registerSceneConfigs()
	registerBehaviours()
	registerClips()
	registerSceneActors()
}

func registerComponents() {
	for _, kind := range ubiart.MarkerComponents {
		kind := kind
		RegisterFields(Components, kind, func() ubiart.Component {
			return &ubiart.EmptyComponent{Kind: kind}
		})
	}
	for _, newC := range []func() ubiart.Component{
		func() ubiart.Component { return new(ubiart.MaterialGraphicComponent) },
		func() ubiart.Component { return new(ubiart.TextureGraphicComponent) },
		func() ubiart.Component { return new(ubiart.PleoComponent) },
		func() ubiart.Component { return new(ubiart.PleoTextureGraphicComponent) },
		func() ubiart.Component { return new(ubiart.UITextBox) },
		func() ubiart.Component { return new(ubiart.ClearColorComponent) },
		func() ubiart.Component { return new(ubiart.BoxInterpolatorComponent) },
		func() ubiart.Component { return new(ubiart.PropertyPatcher) },
		func() ubiart.Component { return new(ubiart.FXControllerComponent) },
		func() ubiart.Component { return new(ubiart.AvatarDescComponent) },
	} {
		RegisterFields(Components, newC().ComponentKind(), newC)
	}

	// The behaviours of a carousel are keyed variants:
	// <behaviours KEY="..."><VAL NAME="tag"><tag .../></VAL></behaviours>
	Components.Register("JD_Carousel", variant.Codec[ubiart.Component]{
		Decode: func(t *xml.Tag) (ubiart.Component, error) {
			c := new(ubiart.Carousel)
			if err := ReadFields(t, c.Fields); err != nil {
				return nil, err
			}
			for i, b := range t.Children("behaviours") {
				key, _ := b.AttrValue("KEY")
				if len(b.Tags) != 1 {
					return nil, errors.TagShape{Element: b.Name, Count: len(b.Tags)}
				}
				v, err := Behaviours.Decode(b.Tags[0])
				if err != nil {
					return nil, errors.Wrapf(err, "behaviour #%d %q", i, key)
				}
				c.Behaviours = append(c.Behaviours, ubiart.KeyedBehaviour{Key: key, Behaviour: v})
			}
			return c, nil
		},
		Encode: func(v ubiart.Component) (*xml.Tag, error) {
			c, ok := v.(*ubiart.Carousel)
			if !ok {
				return nil, errors.Errorf("unexpected component value %T", v)
			}
			tag, err := WriteFields("JD_Carousel", c.Fields)
			if err != nil {
				return nil, err
			}
			for _, kb := range c.Behaviours {
				if kb.Behaviour == nil {
					return nil, errors.Errorf("behaviour %q is nil", kb.Key)
				}
				val, err := Behaviours.Encode("VAL", kb.Behaviour.BehaviourKind(), kb.Behaviour)
				if err != nil {
					return nil, err
				}
				b := xml.NewTag("behaviours", xml.Attr{Name: "KEY", Value: kb.Key})
				b.Add(val)
				tag.Add(b)
			}
			return tag, nil
		},
	})
}

func registerSceneConfigs() {
	for _, newC := range []func() ubiart.SceneConfig{
		func() ubiart.SceneConfig { return new(ubiart.MapSceneConfig) },
		func() ubiart.SceneConfig { return new(ubiart.SongDatabaseSceneConfig) },
		func() ubiart.SceneConfig { return new(ubiart.TransitionSceneConfig) },
		func() ubiart.SceneConfig { return new(ubiart.UIBannerSceneConfig) },
		func() ubiart.SceneConfig { return new(ubiart.UIHomeSceneConfig) },
	} {
		RegisterFields(SceneConfigs, newC().SceneConfigKind(), newC)
	}
}

func registerBehaviours() {
	for _, newB := range []func() ubiart.CarouselBehaviour{
		func() ubiart.CarouselBehaviour { return new(ubiart.NavigationValidation) },
		func() ubiart.CarouselBehaviour { return new(ubiart.GoToElement) },
		func() ubiart.CarouselBehaviour { return new(ubiart.Stop) },
		func() ubiart.CarouselBehaviour { return new(ubiart.NavigationStop) },
		func() ubiart.CarouselBehaviour { return new(ubiart.NavigationChange) },
	} {
		RegisterFields(Behaviours, newB().BehaviourKind(), newB)
	}
}

// clipFields adapts the field list of a clip to a TextSerializer.
func clipFields(c ubiart.Clip) func(ubiart.TextSerializer) {
	return func(s ubiart.TextSerializer) { c.Fields(s) }
}

func registerClips() {
	for _, kind := range ubiart.ClipKinds() {
		kind := kind
		Clips.Register(kind.String(), variant.Codec[ubiart.Clip]{
			Decode: func(t *xml.Tag) (ubiart.Clip, error) {
				c := ubiart.NewClip(kind)
				if err := ReadFields(t, clipFields(c)); err != nil {
					return nil, err
				}
				return c, nil
			},
			Encode: func(c ubiart.Clip) (*xml.Tag, error) {
				return WriteFields(kind.String(), clipFields(c))
			},
		})
	}
}
