package declare_test

import (
	"fmt"
	"testing"

	"github.com/go-quicktest/qt"
	"github.com/google/go-cmp/cmp"

	ubiart "github.com/Kriskras99/ferris-dancing-sub001"
	. "github.com/Kriskras99/ferris-dancing-sub001/declare"
)

func Example() {
	scene := Scene(
		Property("ENGINE_VERSION", Uint32, 280000),
		Actor("Background",
			Property("POS2D", Vec2, 0, 1.5),
			Property("LUA", String, "world/ui/components/background.tpl"),
			Component("MaterialGraphicComponent",
				Property("colorComputerTagId", Uint32, 0),
				Struct("material",
					Struct("textureSet",
						Property("diffuse", String, "world/ui/textures/bg.tga"),
					),
				),
			),
		),
		SubScene("Menu",
			Property("RELATIVEPATH", String, "world/ui/screens/menu.isc"),
			Scene(Actor("Button")),
		),
	).Declare()
	fmt.Println(len(scene.Actors), scene.Actors[0].Base().Pos2D.Y)
	// Output: 2 1.5
}

func TestActorProperties(t *testing.T) {
	a := Actor("Coach",
		Property("RELATIVEZ", Float, 2),
		Property("SCALE", Vec2, ubiart.Vec2{X: 1, Y: 1}),
		Property("xFLIPPED", Bool, true),
		Property("MARKERS", Strings, "a", "b"),
		Struct("parentBind", Property("parentPath", String, "..|Root")),
	).Declare()

	want := &ubiart.Actor{
		RelativeZ:    2,
		Scale:        ubiart.Vec2{X: 1, Y: 1},
		XFlipped:     true,
		UserFriendly: "Coach",
		Markers:      []string{"a", "b"},
		ParentBind:   &ubiart.ParentBind{ParentPath: "..|Root"},
	}
	qt.Assert(t, qt.CmpEquals(a, ubiart.SceneActor(want)))
}

func TestActorWithoutParentBind(t *testing.T) {
	a := Actor("Coach").Declare().Base()
	qt.Assert(t, qt.IsNil(a.ParentBind))
	qt.Assert(t, qt.Equals(a.UserFriendly, "Coach"))
}

func TestMismatchedTypeIgnored(t *testing.T) {
	a := Actor("Coach", Property("RELATIVEZ", String, "2")).Declare().Base()
	qt.Assert(t, qt.Equals(a.RelativeZ, float32(0)))
}

func TestComponentNested(t *testing.T) {
	c := Component("MaterialGraphicComponent",
		Struct("material",
			Property("shaderPath", String, "world/_common/matshader/multitexture_1layer.msh"),
			Struct("textureSet", Property("diffuse", String, "bg.tga")),
		),
	).Declare()
	mgc, ok := c.(*ubiart.MaterialGraphicComponent)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(mgc.Material.ShaderPath, "world/_common/matshader/multitexture_1layer.msh"))
	qt.Assert(t, qt.Equals(mgc.Material.TextureSet.Diffuse, "bg.tga"))
}

func TestComponentAttrs(t *testing.T) {
	c := Component("JD_AvatarDescComponent",
		Property("Avatar_ID", Uint32, 12),
		Property("sound_family", String, "avatar_sound"),
		Property("CountInProgression", Bool, true),
	).Declare()
	desc, ok := c.(*ubiart.AvatarDescComponent)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.DeepEquals(desc.Attr, []ubiart.Attr{
		{Name: "Avatar_ID", Value: "12"},
		{Name: "sound_family", Value: "avatar_sound"},
		{Name: "CountInProgression", Value: "1"},
	}))
}

func TestUnknownComponent(t *testing.T) {
	c := Component("NotAComponent").Declare()
	qt.Assert(t, qt.Equals(c.ComponentKind(), "NotAComponent"))
}

func TestSubSceneEmbedsScene(t *testing.T) {
	a := SubScene("Menu",
		Property("EMBED_SCENE", Bool, true),
		Scene(Actor("Button"), Actor("Label")),
	).Declare()
	sub, ok := a.(*ubiart.SubSceneActor)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.IsTrue(sub.EmbedScene))
	qt.Assert(t, qt.Equals(sub.UserFriendly, "Menu"))
	qt.Assert(t, qt.HasLen(sub.Scene.Actors, 2))
	qt.Assert(t, qt.Equals(sub.Scene.Actors[1].Base().UserFriendly, "Label"))
}

func TestSubScenesKeepOwnScenes(t *testing.T) {
	scene := Scene(
		SubScene("Menu", Scene(Actor("Button"))),
		SubScene("Popup", Scene(Actor("Label"), Actor("Close"))),
	).Declare()
	menu := scene.Actors[0].(*ubiart.SubSceneActor)
	popup := scene.Actors[1].(*ubiart.SubSceneActor)
	qt.Assert(t, qt.Not(qt.Equals(menu.Scene, popup.Scene)))
	qt.Assert(t, qt.HasLen(menu.Scene.Actors, 1))
	qt.Assert(t, qt.HasLen(popup.Scene.Actors, 2))
}

func TestTape(t *testing.T) {
	tape := Tape{
		Property("TapeClock", Uint32, 2),
		Property("MapName", String, "Rasputin"),
		Clip(ubiart.ClipAlpha,
			Property("Id", Uint32, 7),
			Property("StartTime", Int32, -24),
			Property("Duration", Uint32, 48),
			Property("ActorPaths", TargetActors, "..|Dancer"),
			Property("Curve", Curve, 0.5),
		),
		Clip(ubiart.ClipInvalid),
	}.Declare()

	want := &ubiart.Tape{
		TapeClock: 2,
		MapName:   "Rasputin",
		Clips: []ubiart.Clip{
			&ubiart.AlphaClip{
				ClipHeader: ubiart.ClipHeader{ID: 7, StartTime: -24, Duration: 48},
				ActorPaths: []ubiart.TargetActor{{Qualifiers: []string{".."}, Name: "Dancer"}},
				Curve:      ubiart.CurveConstant{Value: 0.5},
			},
		},
	}
	if diff := cmp.Diff(want, tape); diff != "" {
		t.Errorf("unexpected tape (-want +got):\n%s", diff)
	}
}

func TestCurveDeclarations(t *testing.T) {
	qt.Assert(t, qt.Equals(Property("", Curve).Declare(), interface{}(ubiart.CurveEmpty{})))
	linear := Property("", Curve, 0, 0, 1, 0, 1, 0, 2, 1).Declare()
	qt.Assert(t, qt.Equals(linear, interface{}(ubiart.CurveLinear{
		Value0:     ubiart.Vec2{X: 0, Y: 0},
		NormalOut0: ubiart.Vec2{X: 1, Y: 0},
		NormalIn1:  ubiart.Vec2{X: 1, Y: 0},
		Value1:     ubiart.Vec2{X: 2, Y: 1},
	})))
}

func TestTypeFromString(t *testing.T) {
	qt.Assert(t, qt.Equals(TypeFromString("vec2"), Vec2))
	qt.Assert(t, qt.Equals(TypeFromString("TargetActors"), TargetActors))
	qt.Assert(t, qt.Equals(TypeFromString("CFrame"), Type(0)))
	qt.Assert(t, qt.Equals(Type(0).String(), "Invalid"))
}
