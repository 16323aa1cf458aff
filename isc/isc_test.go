package isc_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-quicktest/qt"
	"github.com/google/go-cmp/cmp"

	ubiart "github.com/Kriskras99/ferris-dancing-sub001"
	. "github.com/Kriskras99/ferris-dancing-sub001/declare"
	"github.com/Kriskras99/ferris-dancing-sub001/errors"
	"github.com/Kriskras99/ferris-dancing-sub001/internal/samples"
	"github.com/Kriskras99/ferris-dancing-sub001/isc"
	"github.com/Kriskras99/ferris-dancing-sub001/xml"
)

const backgroundScene = `<?xml version="1.0" encoding="ISO-8859-1"?>
<root>
	<Scene ENGINE_VERSION="280000" GRIDUNIT="0.500000">
		<ACTORS NAME="Actor">
			<Actor RELATIVEZ="0.000000" SCALE="1.000000 1.000000" xFLIPPED="0" USERFRIENDLY="Background" POS2D="0.000000 1.500000" LUA="world/ui/components/background.tpl">
				<COMPONENTS NAME="MaterialGraphicComponent">
					<MaterialGraphicComponent colorComputerTagId="0" disableShadow="4294967295" AtlasIndex="0">
						<PrimitiveParameters>
							<GFXPrimitiveParam colorFactor="1.000000 1.000000 1.000000 1.000000">
								<ENUM NAME="gfxOccludeInfo" SEL="0"/>
							</GFXPrimitiveParam>
						</PrimitiveParameters>
						<ENUM NAME="anchor" SEL="1"/>
						<material>
							<GFXMaterialSerializable ATL_Channel="0" shaderPath="world/_common/matshader/multitexture_1layer.msh">
								<textureSet>
									<GFXMaterialTexturePathSet diffuse="world/ui/textures/bg.tga"/>
								</textureSet>
							</GFXMaterialSerializable>
						</material>
						<ENUM NAME="oldAnchor" SEL="2"/>
					</MaterialGraphicComponent>
				</COMPONENTS>
			</Actor>
		</ACTORS>
		<sceneConfigs>
			<SceneConfigs activeSceneConfig="0">
				<sceneConfigs NAME="JD_MapSceneConfig">
					<JD_MapSceneConfig name="" soundContext="" hud="0">
						<ENUM NAME="Pause_Level" SEL="6"/>
						<ENUM NAME="type" SEL="1"/>
						<ENUM NAME="musicscore" SEL="2"/>
					</JD_MapSceneConfig>
				</sceneConfigs>
			</SceneConfigs>
		</sceneConfigs>
	</Scene>
</root>
`

var backgroundDecl = Scene(
	Property("ENGINE_VERSION", Uint32, 280000),
	Property("GRIDUNIT", Float, 0.5),
	Actor("Background",
		Property("SCALE", Vec2, 1, 1),
		Property("POS2D", Vec2, 0, 1.5),
		Property("LUA", String, "world/ui/components/background.tpl"),
		Component("MaterialGraphicComponent",
			Property("disableShadow", Uint32, uint32(0xFFFFFFFF)),
			Struct("PrimitiveParameters", Property("colorFactor", Color, 1, 1, 1, 1)),
			Property("anchor", Enum, 1),
			Struct("material",
				Property("shaderPath", String, "world/_common/matshader/multitexture_1layer.msh"),
				Struct("textureSet", Property("diffuse", String, "world/ui/textures/bg.tga")),
			),
			Property("oldAnchor", Enum, 2),
		),
	),
	Config("JD_MapSceneConfig",
		Property("Pause_Level", Enum, 6),
		Property("type", Enum, 1),
		Property("musicscore", Enum, 2),
	),
)

func decodeScene(t *testing.T, s string) *ubiart.Scene {
	t.Helper()
	scene, warn, err := isc.Decoder{}.DecodeScene(strings.NewReader(s))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsNil(warn))
	return scene
}

func TestDecodeScene(t *testing.T) {
	scene := decodeScene(t, backgroundScene)
	if diff := cmp.Diff(backgroundDecl.Declare(), scene); diff != "" {
		t.Errorf("unexpected scene (-want +got):\n%s", diff)
	}
	qt.Assert(t, qt.Equals(scene.NearSeparator, ubiart.Identity()))
}

func TestEncodeSceneComponent(t *testing.T) {
	doc, err := isc.EncodeScene(backgroundDecl.Declare())
	qt.Assert(t, qt.IsNil(err))

	actor := doc.Root.Child("Scene").Child("ACTORS").Child("Actor")
	qt.Assert(t, qt.IsNotNil(actor))
	w := actor.Child("COMPONENTS")
	name, _ := w.AttrValue("NAME")
	qt.Assert(t, qt.Equals(name, "MaterialGraphicComponent"))
	qt.Assert(t, qt.HasLen(w.Tags, 1))

	mgc := w.Tags[0]
	qt.Assert(t, qt.Equals(mgc.Name, "MaterialGraphicComponent"))
	v, _ := mgc.AttrValue("disableShadow")
	qt.Assert(t, qt.Equals(v, "4294967295"))
	diffuse, _ := mgc.Child("material").Child("GFXMaterialSerializable").
		Child("textureSet").Child("GFXMaterialTexturePathSet").AttrValue("diffuse")
	qt.Assert(t, qt.Equals(diffuse, "world/ui/textures/bg.tga"))
}

func TestSceneRoundTrip(t *testing.T) {
	scene := decodeScene(t, backgroundScene)
	var buf bytes.Buffer
	_, err := isc.Encoder{Indent: "\t"}.EncodeScene(&buf, scene)
	qt.Assert(t, qt.IsNil(err))
	again := decodeScene(t, buf.String())
	if diff := cmp.Diff(scene, again); diff != "" {
		t.Errorf("scene changed by re-encoding (-first +second):\n%s", diff)
	}
}

func TestSubScene(t *testing.T) {
	decl := Scene(
		SubScene("Menu",
			Property("RELATIVEPATH", String, "world/ui/screens/menu.isc"),
			Property("EMBED_SCENE", Bool, true),
			Scene(Actor("Button"), Actor("Label")),
		),
	).Declare()
	doc, err := isc.EncodeScene(decl)
	qt.Assert(t, qt.IsNil(err))
	scene, err := isc.DecodeScene(doc)
	qt.Assert(t, qt.IsNil(err))

	subs := scene.SubScenes()
	qt.Assert(t, qt.HasLen(subs, 1))
	qt.Assert(t, qt.Equals(subs[0].RelativePath, "world/ui/screens/menu.isc"))
	qt.Assert(t, qt.HasLen(subs[0].Scene.Actors, 2))

	var names []string
	scene.Walk(func(path []string, a ubiart.SceneActor) bool {
		names = append(names, strings.Join(append(path, a.Base().UserFriendly), "/"))
		return true
	})
	qt.Assert(t, qt.DeepEquals(names, []string{"Menu", "Menu/Button", "Menu/Label"}))
}

func TestSubSceneMalformed(t *testing.T) {
	_, _, err := isc.Decoder{}.DecodeScene(strings.NewReader(`<root><Scene>
		<ACTORS NAME="SubSceneActor"><SubSceneActor USERFRIENDLY="Menu">
			<SCENE><Scene/><Scene/></SCENE>
		</SubSceneActor></ACTORS>
	</Scene></root>`))
	qt.Assert(t, qt.IsTrue(errors.Is(err, errors.ErrTagShape)))
}

func TestCarousel(t *testing.T) {
	scene := decodeScene(t, `<root><Scene>
		<ACTORS NAME="Actor"><Actor USERFRIENDLY="Carousel">
			<COMPONENTS NAME="JD_Carousel">
				<JD_Carousel mainAnchor="1" validateAction="validate" switchSpeed="0.250000">
					<behaviours KEY="left">
						<VAL NAME="CarouselBehaviour_GoToElement">
							<CarouselBehaviour_GoToElement elementIndex="3" duration="0.500000"/>
						</VAL>
					</behaviours>
					<behaviours KEY="validate">
						<VAL NAME="CarouselBehaviour_NavigationValidation">
							<CarouselBehaviour_NavigationValidation validateAction="play"/>
						</VAL>
					</behaviours>
				</JD_Carousel>
			</COMPONENTS>
		</Actor></ACTORS>
	</Scene></root>`)

	c, ok := scene.Actors[0].Base().Component("JD_Carousel").(*ubiart.Carousel)
	qt.Assert(t, qt.IsTrue(ok))
	want := &ubiart.Carousel{
		MainAnchor:     1,
		ValidateAction: "validate",
		SwitchSpeed:    0.25,
		Behaviours: []ubiart.KeyedBehaviour{
			{Key: "left", Behaviour: &ubiart.GoToElement{ElementIndex: 3, Duration: 0.5}},
			{Key: "validate", Behaviour: &ubiart.NavigationValidation{ValidateAction: "play"}},
		},
	}
	if diff := cmp.Diff(want, c); diff != "" {
		t.Errorf("unexpected carousel (-want +got):\n%s", diff)
	}
}

func TestUnknownComponent(t *testing.T) {
	_, _, err := isc.Decoder{}.DecodeScene(strings.NewReader(`<root><Scene>
		<ACTORS NAME="Actor"><Actor USERFRIENDLY="Coach">
			<COMPONENTS NAME="NotAComponent"><NotAComponent/></COMPONENTS>
		</Actor></ACTORS>
	</Scene></root>`))
	qt.Assert(t, qt.IsTrue(errors.Is(err, errors.ErrUnknownDiscriminant)))
	qt.Assert(t, qt.ErrorMatches(err, `.*actor "Coach": <COMPONENTS> #0: unknown component tag "NotAComponent" .*`))
}

func TestMalformedField(t *testing.T) {
	_, _, err := isc.Decoder{}.DecodeScene(strings.NewReader(`<root><Scene>
		<ACTORS NAME="Actor"><Actor USERFRIENDLY="Coach" POS2D="1 2 3"/></ACTORS>
	</Scene></root>`))
	var ferr isc.FieldError
	qt.Assert(t, qt.IsTrue(errors.As(err, &ferr)))
	qt.Assert(t, qt.Equals(ferr.Element, "Actor"))
	qt.Assert(t, qt.Equals(ferr.Field, "POS2D"))
	qt.Assert(t, qt.Equals(ferr.Value, "1 2 3"))
}

func TestRootShape(t *testing.T) {
	_, err := isc.DecodeScene(xml.NewDocument(xml.NewTag("root")))
	qt.Assert(t, qt.IsTrue(errors.Is(err, errors.ErrTagShape)))

	_, err = isc.DecodeTape(xml.NewDocument(xml.NewTag("Tape")))
	qt.Assert(t, qt.ErrorMatches(err, `root element is <Tape>, expected <root>`))
}

////////////////////////////////////////////////////////////////

const alphaTape = `<?xml version="1.0" encoding="ISO-8859-1"?>
<root>
	<Tape TapeClock="2" TapeBarCount="4" MapName="Rasputin">
		<Clips NAME="AlphaClip">
			<AlphaClip Id="7" TrackId="1" IsActive="1" StartTime="-24" Duration="48">
				<ActorPaths VAL="..|Dancer"/>
				<Curve NAME="BezierCurveFloatConstant">
					<BezierCurveFloatConstant Value="0.500000"/>
				</Curve>
			</AlphaClip>
		</Clips>
		<Clips NAME="MotionClip">
			<MotionClip Id="8" TrackId="2" IsActive="1" StartTime="0" Duration="24" ClassifierPath="rasputin_intro.msm" GoldMove="1" CoachId="0" MoveType="0" Color="1.000000 0.000000 0.000000 1.000000"/>
		</Clips>
	</Tape>
</root>
`

var alphaTapeDecl = Tape{
	Property("TapeClock", Uint32, 2),
	Property("TapeBarCount", Uint32, 4),
	Property("MapName", String, "Rasputin"),
	Clip(ubiart.ClipAlpha,
		Property("Id", Uint32, 7),
		Property("TrackId", Uint32, 1),
		Property("IsActive", Bool, true),
		Property("StartTime", Int32, -24),
		Property("Duration", Uint32, 48),
		Property("ActorPaths", TargetActors, "..|Dancer"),
		Property("Curve", Curve, 0.5),
	),
	Clip(ubiart.ClipMotion,
		Property("Id", Uint32, 8),
		Property("TrackId", Uint32, 2),
		Property("IsActive", Bool, true),
		Property("Duration", Uint32, 24),
		Property("ClassifierPath", String, "rasputin_intro.msm"),
		Property("GoldMove", Bool, true),
		Property("Color", Color, 1, 0, 0, 1),
	),
}

func decodeTape(t *testing.T, s string) *ubiart.Tape {
	t.Helper()
	tape, warn, err := isc.Decoder{}.DecodeTape(strings.NewReader(s))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsNil(warn))
	return tape
}

func TestDecodeTape(t *testing.T) {
	tape := decodeTape(t, alphaTape)
	if diff := cmp.Diff(alphaTapeDecl.Declare(), tape); diff != "" {
		t.Errorf("unexpected tape (-want +got):\n%s", diff)
	}
	qt.Assert(t, qt.HasLen(tape.ClipsOfKind(ubiart.ClipMotion), 1))
	qt.Assert(t, qt.DeepEquals(tape.Tracks(), []uint32{1, 2}))
	qt.Assert(t, qt.Equals(tape.End(), int32(24)))
}

func TestEncodeTapeCurve(t *testing.T) {
	doc, err := isc.EncodeTape(alphaTapeDecl.Declare())
	qt.Assert(t, qt.IsNil(err))

	clips := doc.Root.Child("Tape").Children("Clips")
	qt.Assert(t, qt.HasLen(clips, 2))
	curve := clips[0].Child("AlphaClip").Child("Curve")
	name, _ := curve.AttrValue("NAME")
	qt.Assert(t, qt.Equals(name, "BezierCurveFloatConstant"))
	value, _ := curve.Child("BezierCurveFloatConstant").AttrValue("Value")
	qt.Assert(t, qt.Equals(value, "0.500000"))

	qt.Assert(t, qt.IsNil(clips[1].Child("MotionClip").Child("Curve")))
}

func TestTapeRoundTrip(t *testing.T) {
	tape := decodeTape(t, alphaTape)
	var buf bytes.Buffer
	_, err := isc.Encoder{}.EncodeTape(&buf, tape)
	qt.Assert(t, qt.IsNil(err))
	if diff := cmp.Diff(tape, decodeTape(t, buf.String())); diff != "" {
		t.Errorf("tape changed by re-encoding (-first +second):\n%s", diff)
	}
}

func TestTapeCurves(t *testing.T) {
	tape := decodeTape(t, `<root><Tape>
		<Clips NAME="SizeClip"><SizeClip Id="1">
			<CurveX NAME="BezierCurveFloatLinear">
				<BezierCurveFloatLinear ValueLeft="0 1" NormalLeftOut="0.25 1" NormalRightIn="0.75 0" ValueRight="1 0"/>
			</CurveX>
			<CurveY NAME="BezierCurveFloatMulti">
				<BezierCurveFloatMulti>
					<Keys><KeyFloat Value="0 0" NormalIn="0 0" NormalOut="0.5 0"/></Keys>
					<Keys><KeyFloat Value="1 1" NormalIn="0.5 1" NormalOut="1 1"/></Keys>
				</BezierCurveFloatMulti>
			</CurveY>
		</SizeClip></Clips>
	</Tape></root>`)

	size, ok := tape.Clips[0].(*ubiart.SizeClip)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(size.CurveX, ubiart.BezierCurve(ubiart.CurveLinear{
		Value0:     ubiart.Vec2{X: 0, Y: 1},
		NormalOut0: ubiart.Vec2{X: 0.25, Y: 1},
		NormalIn1:  ubiart.Vec2{X: 0.75, Y: 0},
		Value1:     ubiart.Vec2{X: 1, Y: 0},
	})))
	qt.Assert(t, qt.CmpEquals(size.CurveY, ubiart.BezierCurve(ubiart.CurveMulti{Keys: []ubiart.CurveKey{
		{Value: ubiart.Vec2{X: 0, Y: 0}, NormalOut: ubiart.Vec2{X: 0.5, Y: 0}},
		{Value: ubiart.Vec2{X: 1, Y: 1}, NormalIn: ubiart.Vec2{X: 0.5, Y: 1}, NormalOut: ubiart.Vec2{X: 1, Y: 1}},
	}})))
}

func TestMissingCurveIsEmpty(t *testing.T) {
	tape := decodeTape(t, `<root><Tape><Clips NAME="AlphaClip"><AlphaClip Id="1"/></Clips></Tape></root>`)
	qt.Assert(t, qt.Equals(tape.Clips[0].(*ubiart.AlphaClip).Curve, ubiart.BezierCurve(ubiart.CurveEmpty{})))
}

func TestTapeClipErrors(t *testing.T) {
	_, _, err := isc.Decoder{}.DecodeTape(strings.NewReader(`<root><Tape>
		<Clips NAME="AlphaClip"><AlphaClip/></Clips>
		<Clips NAME="LipSyncClip"><LipSyncClip/></Clips>
	</Tape></root>`))
	var cerr errors.ClipError
	qt.Assert(t, qt.IsTrue(errors.As(err, &cerr)))
	qt.Assert(t, qt.Equals(cerr.Index, 1))
	qt.Assert(t, qt.Equals(cerr.Kind, "LipSyncClip"))
	qt.Assert(t, qt.IsTrue(errors.Is(err, errors.ErrUnknownDiscriminant)))

	_, _, err = isc.Decoder{}.DecodeTape(strings.NewReader(`<root><Tape>
		<Clips NAME="AlphaClip"><AlphaClip/><AlphaClip/></Clips>
	</Tape></root>`))
	qt.Assert(t, qt.IsTrue(errors.Is(err, errors.ErrTagShape)))

	_, _, err = isc.Decoder{}.DecodeTape(strings.NewReader(`<root><Tape>
		<Clips NAME="AlphaClip"><AlphaClip IsActive="2"/></Clips>
	</Tape></root>`))
	qt.Assert(t, qt.ErrorMatches(err, `error decoding tape: #0 AlphaClip: clip AlphaClip: <AlphaClip> field IsActive = "2": boolean must be 1 or 0`))
}

func TestEncoderEncoding(t *testing.T) {
	tape := &ubiart.Tape{MapName: "Café"}
	var buf bytes.Buffer
	_, err := isc.Encoder{Encoding: "ISO-8859-1"}.EncodeTape(&buf, tape)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsTrue(bytes.Contains(buf.Bytes(), []byte("Caf\xe9"))))
	qt.Assert(t, qt.Equals(decodeTape(t, buf.String()).MapName, "Café"))
}

func TestClipRoundTrip(t *testing.T) {
	clips := samples.Clips()
	qt.Assert(t, qt.HasLen(clips, len(ubiart.ClipKinds())))
	tape := &ubiart.Tape{
		Clips:                  clips,
		TapeClock:              2,
		TapeBarCount:           96,
		FreeResourcesAfterPlay: true,
		MapName:                "Rasputin",
		SoundwichEvent:         "sw_event",
	}

	var buf bytes.Buffer
	_, err := isc.Encoder{Indent: "\t"}.EncodeTape(&buf, tape)
	qt.Assert(t, qt.IsNil(err))
	got := decodeTape(t, buf.String())
	if diff := cmp.Diff(tape, got); diff != "" {
		t.Errorf("tape changed by encoding (-encoded +decoded):\n%s", diff)
	}

	names := make([]string, len(got.Clips))
	for i, c := range got.Clips {
		names[i] = c.ClipKind().String()
	}
	for i, k := range ubiart.ClipKinds() {
		qt.Check(t, qt.Equals(names[i], k.String()))
	}
}

func TestEncodeNilEntries(t *testing.T) {
	_, err := isc.EncodeTape(&ubiart.Tape{Clips: []ubiart.Clip{samples.Clips()[0], nil}})
	qt.Assert(t, qt.ErrorMatches(err, `clip #1 is nil`))

	_, err = isc.EncodeScene(&ubiart.Scene{Actors: []ubiart.SceneActor{nil}})
	qt.Assert(t, qt.ErrorMatches(err, `actor #0 is nil`))

	scene := ubiart.NewScene()
	scene.Actors = []ubiart.SceneActor{&ubiart.Actor{UserFriendly: "Coach", Components: []ubiart.Component{nil}}}
	_, err = isc.EncodeScene(scene)
	qt.Assert(t, qt.ErrorMatches(err, `.*component #0 is nil`))

	scene = ubiart.NewScene()
	scene.SceneConfigs.Configs = []ubiart.SceneConfig{nil}
	_, err = isc.EncodeScene(scene)
	qt.Assert(t, qt.ErrorMatches(err, `scene config #0 is nil`))

	scene = ubiart.NewScene()
	scene.Actors = []ubiart.SceneActor{&ubiart.Actor{Components: []ubiart.Component{
		&ubiart.Carousel{Behaviours: []ubiart.KeyedBehaviour{{Key: "left"}}},
	}}}
	_, err = isc.EncodeScene(scene)
	qt.Assert(t, qt.ErrorMatches(err, `.*behaviour "left" is nil`))
}
