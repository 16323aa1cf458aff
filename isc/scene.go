package isc

import (
	ubiart "github.com/Kriskras99/ferris-dancing-sub001"
	"github.com/Kriskras99/ferris-dancing-sub001/errors"
	"github.com/Kriskras99/ferris-dancing-sub001/variant"
	"github.com/Kriskras99/ferris-dancing-sub001/xml"
)

// Element names of the scene layout.
const (
	tagRoot         = "root"
	tagScene        = "Scene"
	tagActors       = "ACTORS"
	tagComponents   = "COMPONENTS"
	tagSubScene     = "SCENE"
	tagSceneConfigs = "sceneConfigs"
	tagConfigs      = "SceneConfigs"
)

func decodeComponents(t *xml.Tag) ([]ubiart.Component, error) {
	return Components.DecodeList(t, tagComponents)
}

func encodeComponents(t *xml.Tag, list []ubiart.Component) error {
	for i, c := range list {
		if c == nil {
			return errors.Errorf("component #%d is nil", i)
		}
		w, err := Components.Encode(tagComponents, c.ComponentKind(), c)
		if err != nil {
			return err
		}
		t.Add(w)
	}
	return nil
}

func registerSceneActors() {
	SceneActors.Register("Actor", variant.Codec[ubiart.SceneActor]{
		Decode: func(t *xml.Tag) (ubiart.SceneActor, error) {
			a := new(ubiart.Actor)
			if err := ReadFields(t, a.Fields); err != nil {
				return nil, err
			}
			var err error
			if a.Components, err = decodeComponents(t); err != nil {
				return nil, errors.Wrapf(err, "actor %q", a.UserFriendly)
			}
			return a, nil
		},
		Encode: func(v ubiart.SceneActor) (*xml.Tag, error) {
			a, ok := v.(*ubiart.Actor)
			if !ok {
				return nil, errors.Errorf("unexpected actor value %T", v)
			}
			t, err := WriteFields("Actor", a.Fields)
			if err != nil {
				return nil, err
			}
			if err := encodeComponents(t, a.Components); err != nil {
				return nil, errors.Wrapf(err, "actor %q", a.UserFriendly)
			}
			return t, nil
		},
	})

	SceneActors.Register("SubSceneActor", variant.Codec[ubiart.SceneActor]{
		Decode: func(t *xml.Tag) (ubiart.SceneActor, error) {
			a := new(ubiart.SubSceneActor)
			if err := ReadFields(t, a.Fields); err != nil {
				return nil, err
			}
			var err error
			if a.Components, err = decodeComponents(t); err != nil {
				return nil, errors.Wrapf(err, "sub-scene %q", a.UserFriendly)
			}
			if s := t.Child(tagSubScene); s != nil {
				scene := s.Child(tagScene)
				if scene == nil || len(s.Tags) != 1 {
					return nil, errors.TagShape{Element: s.Name, Count: len(s.Tags)}
				}
				if a.Scene, err = decodeScene(scene); err != nil {
					return nil, errors.Wrapf(err, "sub-scene %q", a.UserFriendly)
				}
			}
			return a, nil
		},
		Encode: func(v ubiart.SceneActor) (*xml.Tag, error) {
			a, ok := v.(*ubiart.SubSceneActor)
			if !ok {
				return nil, errors.Errorf("unexpected actor value %T", v)
			}
			t, err := WriteFields("SubSceneActor", a.Fields)
			if err != nil {
				return nil, err
			}
			if err := encodeComponents(t, a.Components); err != nil {
				return nil, errors.Wrapf(err, "sub-scene %q", a.UserFriendly)
			}
			if a.Scene != nil {
				scene, err := encodeScene(a.Scene)
				if err != nil {
					return nil, errors.Wrapf(err, "sub-scene %q", a.UserFriendly)
				}
				s := xml.NewTag(tagSubScene)
				s.Add(scene)
				t.Add(s)
			}
			return t, nil
		},
	})
}

// decodeScene decodes a <Scene> element.
func decodeScene(t *xml.Tag) (*ubiart.Scene, error) {
	scene := ubiart.NewScene()
	if err := ReadFields(t, scene.Fields); err != nil {
		return nil, err
	}
	var err error
	if scene.Actors, err = SceneActors.DecodeList(t, tagActors); err != nil {
		return nil, err
	}
	if sc := t.Child(tagSceneConfigs); sc != nil {
		if len(sc.Tags) != 1 || sc.Tags[0].Name != tagConfigs {
			return nil, errors.TagShape{Element: sc.Name, Count: len(sc.Tags)}
		}
		configs := sc.Tags[0]
		if err := ReadFields(configs, func(s ubiart.TextSerializer) {
			s.Uint32("activeSceneConfig", &scene.SceneConfigs.ActiveSceneConfig)
		}); err != nil {
			return nil, err
		}
		if scene.SceneConfigs.Configs, err = SceneConfigs.DecodeList(configs, tagSceneConfigs); err != nil {
			return nil, err
		}
	}
	return scene, nil
}

// encodeScene encodes a scene as a <Scene> element.
func encodeScene(scene *ubiart.Scene) (*xml.Tag, error) {
	t, err := WriteFields(tagScene, scene.Fields)
	if err != nil {
		return nil, err
	}
	for i, a := range scene.Actors {
		if a == nil {
			return nil, errors.Errorf("actor #%d is nil", i)
		}
		w, err := SceneActors.Encode(tagActors, a.ActorKind(), a)
		if err != nil {
			return nil, err
		}
		t.Add(w)
	}

	configs, err := WriteFields(tagConfigs, func(s ubiart.TextSerializer) {
		s.Uint32("activeSceneConfig", &scene.SceneConfigs.ActiveSceneConfig)
	})
	if err != nil {
		return nil, err
	}
	for i, c := range scene.SceneConfigs.Configs {
		if c == nil {
			return nil, errors.Errorf("scene config #%d is nil", i)
		}
		w, err := SceneConfigs.Encode(tagSceneConfigs, c.SceneConfigKind(), c)
		if err != nil {
			return nil, err
		}
		configs.Add(w)
	}
	sc := xml.NewTag(tagSceneConfigs)
	sc.Add(configs)
	t.Add(sc)
	return t, nil
}

// rootChild returns the only element of the given name within the root of
// doc.
func rootChild(doc *xml.Document, name string) (*xml.Tag, error) {
	if doc.Root == nil {
		return nil, errors.New("document has no root")
	}
	if doc.Root.Name != tagRoot {
		return nil, errors.Errorf("root element is <%s>, expected <%s>", doc.Root.Name, tagRoot)
	}
	if len(doc.Root.Tags) != 1 {
		return nil, errors.TagShape{Element: doc.Root.Name, Count: len(doc.Root.Tags)}
	}
	if t := doc.Root.Tags[0]; t.Name != name {
		return nil, errors.Errorf("<%s> holds <%s>, expected <%s>", tagRoot, t.Name, name)
	}
	return doc.Root.Tags[0], nil
}

func rootDocument(t *xml.Tag) *xml.Document {
	root := xml.NewTag(tagRoot)
	root.Add(t)
	return xml.NewDocument(root)
}

// DecodeScene decodes the scene held by doc. Actors, components and
// configuration blocks are decoded in document order; the first failure
// aborts the decode.
func DecodeScene(doc *xml.Document) (*ubiart.Scene, error) {
	t, err := rootChild(doc, tagScene)
	if err != nil {
		return nil, err
	}
	return decodeScene(t)
}

// EncodeScene encodes scene into a new document.
func EncodeScene(scene *ubiart.Scene) (*xml.Document, error) {
	t, err := encodeScene(scene)
	if err != nil {
		return nil, err
	}
	return rootDocument(t), nil
}
