package ubiart

// Component is a typed block of behavior or data attached to an actor. The
// set of component kinds is closed; each kind is identified by its engine
// class name.
type Component interface {
	// ComponentKind returns the class name of the component.
	ComponentKind() string
	Fielder
}

// EmptyComponent is a component whose kind carries no fields.
type EmptyComponent struct {
	Kind string
}

func (c *EmptyComponent) ComponentKind() string  { return c.Kind }
func (c *EmptyComponent) Fields(s TextSerializer) {}

// MarkerComponents lists the component kinds without fields.
var MarkerComponents = []string{
	"AFXPostProcessComponent",
	"BezierTreeComponent",
	"CameraGraphicComponent",
	"ConvertedTmlTape_Component",
	"CreditsComponent",
	"FixedCameraComponent",
	"JD_AutodanceComponent",
	"JD_BeatPulseComponent",
	"JD_CarouselManager",
	"JD_CreditsComponent",
	"JD_FixedCameraComponent",
	"JD_GoldMoveComponent",
	"JD_LyricsComponent",
	"JD_NotificationBubble",
	"JD_PictoComponent",
	"JD_SongDatabaseComponent",
	"JD_SongDescComponent",
	"JD_StickerGridComponent",
	"JD_SubtitleComponent",
	"JD_UIHudAutodanceRecorderComponent",
	"JD_UIHudLyricsComponent",
	"JD_UIHudPictolineComponent",
	"JD_UIHudPlayerComponent",
	"JD_UIHudRacelineComponent",
	"JD_UIHudScoreComponent",
	"JD_UIWidgetElement",
	"MasterTape",
	"MusicTrackComponent",
	"SingleInstanceMesh3DComponent",
	"SoundComponent",
	"TapeCase_Component",
	"UICarousel",
	"UIComponent",
	"UIScreenComponent",
	"ViewportUIComponent",
}

////////////////////////////////////////////////////////////////

// GraphicComponent holds the fields shared by the graphic components.
type GraphicComponent struct {
	ColorComputerTagID  uint32
	RenderInTarget      bool
	DisableLight        bool
	DisableShadow       uint32
	AtlasIndex          uint32
	CustomAnchor        Vec2
	SinusAmplitude      Vec3
	SinusSpeed          float32
	AngleX              float32
	AngleY              float32
	PrimitiveParameters PrimitiveParameters
	Anchor              uint32
}

func (c *GraphicComponent) Fields(s TextSerializer) {
	s.Uint32("colorComputerTagId", &c.ColorComputerTagID)
	s.Bool("renderInTarget", &c.RenderInTarget)
	s.Bool("disableLight", &c.DisableLight)
	s.Uint32("disableShadow", &c.DisableShadow)
	s.Uint32("AtlasIndex", &c.AtlasIndex)
	s.Vec2("customAnchor", &c.CustomAnchor)
	s.Vec3("SinusAmplitude", &c.SinusAmplitude)
	s.Float("SinusSpeed", &c.SinusSpeed)
	s.Float("AngleX", &c.AngleX)
	s.Float("AngleY", &c.AngleY)
	s.Struct("PrimitiveParameters", "GFXPrimitiveParam", c.PrimitiveParameters.Fields)
	s.Enum("anchor", &c.Anchor)
}

// PrimitiveParameters controls how a primitive is blended.
type PrimitiveParameters struct {
	ColorFactor    Color
	GFXOccludeInfo uint32
}

func (p *PrimitiveParameters) Fields(s TextSerializer) {
	s.Color("colorFactor", &p.ColorFactor)
	s.Enum("gfxOccludeInfo", &p.GFXOccludeInfo)
}

// Material describes the shader and textures of a graphic component.
type Material struct {
	ATLChannel  uint32
	ATLPath     string
	ShaderPath  string
	StencilTest bool
	AlphaTest   uint32
	AlphaRef    uint32
	TextureSet  TextureSet
}

func (m *Material) Fields(s TextSerializer) {
	s.Uint32("ATL_Channel", &m.ATLChannel)
	s.String("ATL_Path", &m.ATLPath)
	s.String("shaderPath", &m.ShaderPath)
	s.Bool("stencilTest", &m.StencilTest)
	s.Uint32("alphaTest", &m.AlphaTest)
	s.Uint32("alphaRef", &m.AlphaRef)
	s.Struct("textureSet", "GFXMaterialTexturePathSet", m.TextureSet.Fields)
}

// TextureSet lists the texture paths of a material. Unused slots are empty.
type TextureSet struct {
	Diffuse       string
	BackLight     string
	Normal        string
	SeparateAlpha string
	Diffuse2      string
	BackLight2    string
	AnimImpostor  string
	Diffuse3      string
	Diffuse4      string
}

func (t *TextureSet) Fields(s TextSerializer) {
	s.String("diffuse", &t.Diffuse)
	s.String("back_light", &t.BackLight)
	s.String("normal", &t.Normal)
	s.String("separateAlpha", &t.SeparateAlpha)
	s.String("diffuse_2", &t.Diffuse2)
	s.String("back_light_2", &t.BackLight2)
	s.String("anim_impostor", &t.AnimImpostor)
	s.String("diffuse_3", &t.Diffuse3)
	s.String("diffuse_4", &t.Diffuse4)
}

// MaterialGraphicComponent renders an actor with a material.
type MaterialGraphicComponent struct {
	GraphicComponent
	Material  Material
	OldAnchor uint32
}

func (*MaterialGraphicComponent) ComponentKind() string { return "MaterialGraphicComponent" }

func (c *MaterialGraphicComponent) Fields(s TextSerializer) {
	c.GraphicComponent.Fields(s)
	s.Struct("material", "GFXMaterialSerializable", c.Material.Fields)
	s.Enum("oldAnchor", &c.OldAnchor)
}

// TextureGraphicComponent renders an actor with a single texture.
type TextureGraphicComponent struct {
	GraphicComponent
	Material    Material
	SpriteIndex uint32
}

func (*TextureGraphicComponent) ComponentKind() string { return "TextureGraphicComponent" }

func (c *TextureGraphicComponent) Fields(s TextSerializer) {
	c.GraphicComponent.Fields(s)
	s.Uint32("spriteIndex", &c.SpriteIndex)
	s.Struct("material", "GFXMaterialSerializable", c.Material.Fields)
}

// PleoComponent streams a video.
type PleoComponent struct {
	Video     string
	DashMPD   string
	ChannelID string
}

func (*PleoComponent) ComponentKind() string { return "PleoComponent" }

func (c *PleoComponent) Fields(s TextSerializer) {
	s.String("video", &c.Video)
	s.String("dashMPD", &c.DashMPD)
	s.String("channelID", &c.ChannelID)
}

// PleoTextureGraphicComponent renders the output of a video channel.
type PleoTextureGraphicComponent struct {
	MaterialGraphicComponent
	ChannelID string
}

func (*PleoTextureGraphicComponent) ComponentKind() string { return "PleoTextureGraphicComponent" }

func (c *PleoTextureGraphicComponent) Fields(s TextSerializer) {
	c.MaterialGraphicComponent.Fields(s)
	s.String("channelID", &c.ChannelID)
}

// UITextBox displays text.
type UITextBox struct {
	Style                uint32
	OverridingFontSize   float32
	Offset               Vec2
	Scale                Vec2
	Alpha                float32
	MaxWidth             float32
	MaxHeight            float32
	Area                 Vec2
	Depth                float32
	LocID                uint32
	RawText              string
	OverridingColor      Color
	OverridingHAlignment uint32
	OverridingVAlignment uint32
}

func (*UITextBox) ComponentKind() string { return "UITextBox" }

func (c *UITextBox) Fields(s TextSerializer) {
	s.Uint32("style", &c.Style)
	s.Float("overridingFontSize", &c.OverridingFontSize)
	s.Vec2("offset", &c.Offset)
	s.Vec2("scale", &c.Scale)
	s.Float("alpha", &c.Alpha)
	s.Float("maxWidth", &c.MaxWidth)
	s.Float("maxHeight", &c.MaxHeight)
	s.Vec2("area", &c.Area)
	s.Float("depth", &c.Depth)
	s.Uint32("loc8", &c.LocID)
	s.String("rawText", &c.RawText)
	s.Color("overridingColor", &c.OverridingColor)
	s.Enum("overridingHAlignment", &c.OverridingHAlignment)
	s.Enum("overridingVAlignment", &c.OverridingVAlignment)
}

// Carousel is a navigable menu of elements. Its behaviours are keyed by the
// name of the input state they handle.
type Carousel struct {
	MainAnchor            uint32
	ValidateAction        string
	CarouselDataID        string
	ManageCarouselHistory bool
	SwitchSpeed           float32
	SoundContext          string
	Behaviours            []KeyedBehaviour
}

func (*Carousel) ComponentKind() string { return "JD_Carousel" }

// Fields visits the fields of the carousel. Behaviours are not visited.
func (c *Carousel) Fields(s TextSerializer) {
	s.Uint32("mainAnchor", &c.MainAnchor)
	s.String("validateAction", &c.ValidateAction)
	s.String("carouselDataID", &c.CarouselDataID)
	s.Bool("manageCarouselHistory", &c.ManageCarouselHistory)
	s.Float("switchSpeed", &c.SwitchSpeed)
	s.String("soundContext", &c.SoundContext)
}

// KeyedBehaviour associates a carousel behaviour with a key.
type KeyedBehaviour struct {
	Key       string
	Behaviour CarouselBehaviour
}

// ClearColorComponent sets the colors the screen is cleared to.
type ClearColorComponent struct {
	ClearColor           Color
	ClearFrontLightColor Color
	ClearBackLightColor  Color
}

func (*ClearColorComponent) ComponentKind() string { return "ClearColorComponent" }

func (c *ClearColorComponent) Fields(s TextSerializer) {
	s.Color("clearColor", &c.ClearColor)
	s.Color("clearFrontLightColor", &c.ClearFrontLightColor)
	s.Color("clearBackLightColor", &c.ClearBackLightColor)
}

// AABB is an axis-aligned box.
type AABB struct {
	Min Vec2
	Max Vec2
}

func (b *AABB) Fields(s TextSerializer) {
	s.Vec2("MIN", &b.Min)
	s.Vec2("MAX", &b.Max)
}

// BoxInterpolatorComponent interpolates a value by the position of an actor
// between an inner and an outer box.
type BoxInterpolatorComponent struct {
	InnerBox AABB
	OuterBox AABB
}

func (*BoxInterpolatorComponent) ComponentKind() string { return "BoxInterpolatorComponent" }

func (c *BoxInterpolatorComponent) Fields(s TextSerializer) {
	s.Struct("innerBox", "AABB", c.InnerBox.Fields)
	s.Struct("outerBox", "AABB", c.OuterBox.Fields)
}

// PropertyPatcher overrides properties of the components of an actor.
type PropertyPatcher struct {
	ApplyOnActivation bool
	PatchedProperties []string
}

func (*PropertyPatcher) ComponentKind() string { return "PropertyPatcher" }

func (c *PropertyPatcher) Fields(s TextSerializer) {
	s.Bool("applyOnActivation", &c.ApplyOnActivation)
	s.Strings("patchedProperties", &c.PatchedProperties)
}

// FXControllerComponent routes events to effects.
type FXControllerComponent struct {
	AllowBusMixEvents bool
	AllowMusicEvents  bool
}

func (*FXControllerComponent) ComponentKind() string { return "FXControllerComponent" }

func (c *FXControllerComponent) Fields(s TextSerializer) {
	s.Bool("allowBusMixEvents", &c.AllowBusMixEvents)
	s.Bool("allowMusicEvents", &c.AllowMusicEvents)
}

// AvatarDescComponent describes an avatar. Its layout depends on the
// release, so its attributes are kept as-is and interpreted by the
// normalize package.
type AvatarDescComponent struct {
	Attr []Attr
}

func (*AvatarDescComponent) ComponentKind() string { return "JD_AvatarDescComponent" }

func (c *AvatarDescComponent) Fields(s TextSerializer) {
	s.Attrs(&c.Attr)
}
