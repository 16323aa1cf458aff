package ubiart

// ClipKind identifies the kind of a Clip.
type ClipKind uint8

const (
	ClipInvalid ClipKind = iota
	ClipAlpha
	ClipColor
	ClipMotion
	ClipPictogram
	ClipTapeReference
	ClipSpawnActor
	ClipGoldEffect
	ClipKaraoke
	ClipSoundSet
	ClipHideUserInterface
	ClipGameplayEvent
	ClipVibration
	ClipTranslation
	ClipRotation
	ClipSize
	ClipProportion
	ClipText
	ClipTextAreaSize
	ClipMaterialGraphicDiffuseAlpha
	ClipMaterialGraphicDiffuseColor
	ClipMaterialGraphicUVTranslation
	ClipMaterialGraphicUVRotation
	ClipTapeLauncher
	ClipFX
	ClipSlot
	ClipCommunityDancer
	clipKindCount
)

var clipKindStrings = [clipKindCount]string{
	ClipInvalid:                      "Invalid",
	ClipAlpha:                        "AlphaClip",
	ClipColor:                        "ColorClip",
	ClipMotion:                       "MotionClip",
	ClipPictogram:                    "PictogramClip",
	ClipTapeReference:                "TapeReferenceClip",
	ClipSpawnActor:                   "SpawnActorClip",
	ClipGoldEffect:                   "GoldEffectClip",
	ClipKaraoke:                      "KaraokeClip",
	ClipSoundSet:                     "SoundSetClip",
	ClipHideUserInterface:            "HideUserInterfaceClip",
	ClipGameplayEvent:                "GameplayEventClip",
	ClipVibration:                    "VibrationClip",
	ClipTranslation:                  "TranslationClip",
	ClipRotation:                     "RotationClip",
	ClipSize:                         "SizeClip",
	ClipProportion:                   "ProportionClip",
	ClipText:                         "TextClip",
	ClipTextAreaSize:                 "TextAreaSizeClip",
	ClipMaterialGraphicDiffuseAlpha:  "MaterialGraphicDiffuseAlphaClip",
	ClipMaterialGraphicDiffuseColor:  "MaterialGraphicDiffuseColorClip",
	ClipMaterialGraphicUVTranslation: "MaterialGraphicUVTranslationClip",
	ClipMaterialGraphicUVRotation:    "MaterialGraphicUVRotationClip",
	ClipTapeLauncher:                 "TapeLauncherClip",
	ClipFX:                           "FXClip",
	ClipSlot:                         "SlotClip",
	ClipCommunityDancer:              "CommunityDancerClip",
}

// String returns the engine class name of the clip kind.
func (k ClipKind) String() string {
	if k >= clipKindCount {
		return clipKindStrings[ClipInvalid]
	}
	return clipKindStrings[k]
}

// ClipKinds returns every valid clip kind.
func ClipKinds() []ClipKind {
	kinds := make([]ClipKind, 0, clipKindCount-1)
	for k := ClipInvalid + 1; k < clipKindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// ClipKindFromString returns the ClipKind of the given class name, or
// ClipInvalid.
func ClipKindFromString(s string) ClipKind {
	for k := ClipInvalid + 1; k < clipKindCount; k++ {
		if clipKindStrings[k] == s {
			return k
		}
	}
	return ClipInvalid
}

// NewClip returns a zero Clip of the given kind, or nil if the kind is
// invalid. Curve fields of the clip are CurveEmpty.
func NewClip(kind ClipKind) Clip {
	switch kind {
	case ClipAlpha:
		return &AlphaClip{Curve: CurveEmpty{}}
	case ClipColor:
		return &ColorClip{CurveRed: CurveEmpty{}, CurveGreen: CurveEmpty{}, CurveBlue: CurveEmpty{}}
	case ClipMotion:
		return &MotionClip{}
	case ClipPictogram:
		return &PictogramClip{}
	case ClipTapeReference:
		return &TapeReferenceClip{}
	case ClipSpawnActor:
		return &SpawnActorClip{}
	case ClipGoldEffect:
		return &GoldEffectClip{}
	case ClipKaraoke:
		return &KaraokeClip{}
	case ClipSoundSet:
		return &SoundSetClip{}
	case ClipHideUserInterface:
		return &HideUserInterfaceClip{}
	case ClipGameplayEvent:
		return &GameplayEventClip{}
	case ClipVibration:
		return &VibrationClip{}
	case ClipTranslation:
		return &TranslationClip{CurveX: CurveEmpty{}, CurveY: CurveEmpty{}, CurveZ: CurveEmpty{}}
	case ClipRotation:
		return &RotationClip{CurveX: CurveEmpty{}, CurveY: CurveEmpty{}, CurveZ: CurveEmpty{}}
	case ClipSize:
		return &SizeClip{CurveX: CurveEmpty{}, CurveY: CurveEmpty{}}
	case ClipProportion:
		return &ProportionClip{CurveX: CurveEmpty{}, CurveY: CurveEmpty{}}
	case ClipText:
		return &TextClip{}
	case ClipTextAreaSize:
		return &TextAreaSizeClip{CurveMaxWidth: CurveEmpty{}, CurveMaxHeight: CurveEmpty{}, CurveAreaX: CurveEmpty{}, CurveAreaY: CurveEmpty{}}
	case ClipMaterialGraphicDiffuseAlpha:
		return &MaterialGraphicDiffuseAlphaClip{Curve: CurveEmpty{}}
	case ClipMaterialGraphicDiffuseColor:
		return &MaterialGraphicDiffuseColorClip{CurveRed: CurveEmpty{}, CurveGreen: CurveEmpty{}, CurveBlue: CurveEmpty{}}
	case ClipMaterialGraphicUVTranslation:
		return &MaterialGraphicUVTranslationClip{CurveU: CurveEmpty{}, CurveV: CurveEmpty{}}
	case ClipMaterialGraphicUVRotation:
		return &MaterialGraphicUVRotationClip{CurveAngle: CurveEmpty{}}
	case ClipTapeLauncher:
		return &TapeLauncherClip{}
	case ClipFX:
		return &FXClip{}
	case ClipSlot:
		return &SlotClip{}
	case ClipCommunityDancer:
		return &CommunityDancerClip{}
	}
	return nil
}

// Clip is a single timed event of a tape.
type Clip interface {
	// ClipKind returns the kind of the clip.
	ClipKind() ClipKind

	// Header returns the fields shared by every clip.
	Header() *ClipHeader

	// Fields visits the fields of the clip in physical order, beginning with
	// the header.
	Fields(s Serializer)

	// Copy returns a deep copy of the clip.
	Copy() Clip
}

// ClipHeader holds the fields that begin every clip.
type ClipHeader struct {
	ID       uint32
	TrackID  uint32
	IsActive bool
	// StartTime is in tape ticks, and may be negative.
	StartTime int32
	Duration  uint32
}

func (h *ClipHeader) Header() *ClipHeader { return h }

// Fields visits the header.
func (h *ClipHeader) Fields(s Serializer) {
	s.Uint32("Id", &h.ID)
	s.Uint32("TrackId", &h.TrackID)
	s.Bool("IsActive", &h.IsActive)
	s.Int32("StartTime", &h.StartTime)
	s.Uint32("Duration", &h.Duration)
}

func copyActors(a []TargetActor) []TargetActor {
	if a == nil {
		return nil
	}
	c := make([]TargetActor, len(a))
	for i, t := range a {
		c[i] = TargetActor{Qualifiers: copyStrings(t.Qualifiers), Name: t.Name}
	}
	return c
}

func copyStrings(a []string) []string {
	if a == nil {
		return nil
	}
	return append([]string(nil), a...)
}

func copyCurve(c BezierCurve) BezierCurve {
	if c == nil {
		return nil
	}
	return c.Copy()
}

////////////////////////////////////////////////////////////////

// AlphaClip animates the opacity of actors.
type AlphaClip struct {
	ClipHeader
	ActorPaths []TargetActor
	Curve      BezierCurve
}

func (*AlphaClip) ClipKind() ClipKind { return ClipAlpha }

func (c *AlphaClip) Fields(s Serializer) {
	c.ClipHeader.Fields(s)
	s.Actors("ActorPaths", &c.ActorPaths)
	s.Curve("Curve", &c.Curve)
}

func (c *AlphaClip) Copy() Clip {
	d := *c
	d.ActorPaths = copyActors(c.ActorPaths)
	d.Curve = copyCurve(c.Curve)
	return &d
}

// ColorClip animates the color of actors, one curve per channel.
type ColorClip struct {
	ClipHeader
	ActorPaths []TargetActor
	CurveRed   BezierCurve
	CurveGreen BezierCurve
	CurveBlue  BezierCurve
}

func (*ColorClip) ClipKind() ClipKind { return ClipColor }

func (c *ColorClip) Fields(s Serializer) {
	c.ClipHeader.Fields(s)
	s.Actors("ActorPaths", &c.ActorPaths)
	s.Curve("CurveRed", &c.CurveRed)
	s.Curve("CurveGreen", &c.CurveGreen)
	s.Curve("CurveBlue", &c.CurveBlue)
}

func (c *ColorClip) Copy() Clip {
	d := *c
	d.ActorPaths = copyActors(c.ActorPaths)
	d.CurveRed = copyCurve(c.CurveRed)
	d.CurveGreen = copyCurve(c.CurveGreen)
	d.CurveBlue = copyCurve(c.CurveBlue)
	return &d
}

// MotionClip scores a dance move against a classifier.
type MotionClip struct {
	ClipHeader
	ClassifierPath string
	GoldMove       bool
	CoachID        uint32
	MoveType       uint32
	Color          Color
}

func (*MotionClip) ClipKind() ClipKind { return ClipMotion }

func (c *MotionClip) Fields(s Serializer) {
	c.ClipHeader.Fields(s)
	s.String("ClassifierPath", &c.ClassifierPath)
	s.Bool("GoldMove", &c.GoldMove)
	s.Uint32("CoachId", &c.CoachID)
	s.Uint32("MoveType", &c.MoveType)
	s.Color("Color", &c.Color)
	// Per-platform overrides; always empty in cooked data.
	s.Reserved("MotionPlatformSpecifics", 0)
}

func (c *MotionClip) Copy() Clip {
	d := *c
	return &d
}

// PictogramClip displays a move pictogram.
type PictogramClip struct {
	ClipHeader
	PictoPath  string
	AtlIndex   uint32
	CoachCount uint32
}

func (*PictogramClip) ClipKind() ClipKind { return ClipPictogram }

func (c *PictogramClip) Fields(s Serializer) {
	c.ClipHeader.Fields(s)
	s.String("PictoPath", &c.PictoPath)
	s.Reserved("MontagePath", 0)
	s.Uint32("AtlIndex", &c.AtlIndex)
	s.Uint32("CoachCount", &c.CoachCount)
}

func (c *PictogramClip) Copy() Clip {
	d := *c
	return &d
}

// TapeReferenceClip plays another tape.
type TapeReferenceClip struct {
	ClipHeader
	Path string
	Loop bool
}

func (*TapeReferenceClip) ClipKind() ClipKind { return ClipTapeReference }

func (c *TapeReferenceClip) Fields(s Serializer) {
	c.ClipHeader.Fields(s)
	s.String("Path", &c.Path)
	s.Bool("Loop", &c.Loop)
}

func (c *TapeReferenceClip) Copy() Clip {
	d := *c
	return &d
}

// SpawnActorClip instantiates an actor for the duration of the clip.
type SpawnActorClip struct {
	ClipHeader
	ActorPath     string
	ActorName     string
	SpawnPosition Vec3
	ParentActor   TargetActor
}

func (*SpawnActorClip) ClipKind() ClipKind { return ClipSpawnActor }

func (c *SpawnActorClip) Fields(s Serializer) {
	c.ClipHeader.Fields(s)
	s.String("ActorPath", &c.ActorPath)
	s.String("ActorName", &c.ActorName)
	s.Vec3("SpawnPosition", &c.SpawnPosition)
	s.Actor("ParentActor", &c.ParentActor)
}

func (c *SpawnActorClip) Copy() Clip {
	d := *c
	d.ParentActor.Qualifiers = copyStrings(c.ParentActor.Qualifiers)
	return &d
}

// GoldEffectClip triggers the effect shown for a gold move.
type GoldEffectClip struct {
	ClipHeader
	EffectType uint32
}

func (*GoldEffectClip) ClipKind() ClipKind { return ClipGoldEffect }

func (c *GoldEffectClip) Fields(s Serializer) {
	c.ClipHeader.Fields(s)
	s.Uint32("EffectType", &c.EffectType)
}

func (c *GoldEffectClip) Copy() Clip {
	d := *c
	return &d
}

// KaraokeClip is one syllable of the lyrics.
type KaraokeClip struct {
	ClipHeader
	Pitch              float32
	Lyrics             string
	IsEndOfLine        bool
	ContentType        uint32
	StartTimeTolerance uint32
	EndTimeTolerance   uint32
	SemitoneTolerance  float32
}

func (*KaraokeClip) ClipKind() ClipKind { return ClipKaraoke }

func (c *KaraokeClip) Fields(s Serializer) {
	c.ClipHeader.Fields(s)
	s.Float("Pitch", &c.Pitch)
	s.String("Lyrics", &c.Lyrics)
	s.Bool("IsEndOfLine", &c.IsEndOfLine)
	s.Uint32("ContentType", &c.ContentType)
	s.Uint32("StartTimeTolerance", &c.StartTimeTolerance)
	s.Uint32("EndTimeTolerance", &c.EndTimeTolerance)
	s.Float("SemitoneTolerance", &c.SemitoneTolerance)
}

func (c *KaraokeClip) Copy() Clip {
	d := *c
	return &d
}

// SoundSetClip plays a sound set.
type SoundSetClip struct {
	ClipHeader
	SoundSetPath         string
	SoundChannel         int32
	StartOffset          uint32
	StopsOnEnd           bool
	AccountedForDuration bool
}

func (*SoundSetClip) ClipKind() ClipKind { return ClipSoundSet }

func (c *SoundSetClip) Fields(s Serializer) {
	c.ClipHeader.Fields(s)
	s.String("SoundSetPath", &c.SoundSetPath)
	s.Int32("SoundChannel", &c.SoundChannel)
	s.Uint32("StartOffset", &c.StartOffset)
	s.Bool("StopsOnEnd", &c.StopsOnEnd)
	s.Bool("AccountedForDuration", &c.AccountedForDuration)
}

func (c *SoundSetClip) Copy() Clip {
	d := *c
	return &d
}

// HideUserInterfaceClip hides parts of the interface.
type HideUserInterfaceClip struct {
	ClipHeader
	ActorPaths  []TargetActor
	EventType   uint32
	CustomParam string
}

func (*HideUserInterfaceClip) ClipKind() ClipKind { return ClipHideUserInterface }

func (c *HideUserInterfaceClip) Fields(s Serializer) {
	c.ClipHeader.Fields(s)
	s.Actors("ActorPaths", &c.ActorPaths)
	s.Uint32("EventType", &c.EventType)
	s.String("CustomParam", &c.CustomParam)
}

func (c *HideUserInterfaceClip) Copy() Clip {
	d := *c
	d.ActorPaths = copyActors(c.ActorPaths)
	return &d
}

// GameplayEventClip sends a gameplay event to actors.
type GameplayEventClip struct {
	ClipHeader
	ActorPaths  []TargetActor
	EventType   uint32
	CustomParam string
}

func (*GameplayEventClip) ClipKind() ClipKind { return ClipGameplayEvent }

func (c *GameplayEventClip) Fields(s Serializer) {
	c.ClipHeader.Fields(s)
	s.Actors("ActorPaths", &c.ActorPaths)
	s.Uint32("EventType", &c.EventType)
	s.String("CustomParam", &c.CustomParam)
}

func (c *GameplayEventClip) Copy() Clip {
	d := *c
	d.ActorPaths = copyActors(c.ActorPaths)
	return &d
}

// VibrationClip plays a controller vibration.
type VibrationClip struct {
	ClipHeader
	VibrationFilePath string
	Loop              bool
	DeviceSide        uint32
	PlayerID          int32
	Context           uint32
	StartTimeOffset   float32
	Modulation        float32
}

func (*VibrationClip) ClipKind() ClipKind { return ClipVibration }

func (c *VibrationClip) Fields(s Serializer) {
	c.ClipHeader.Fields(s)
	s.String("VibrationFilePath", &c.VibrationFilePath)
	s.Bool("Loop", &c.Loop)
	s.Uint32("DeviceSide", &c.DeviceSide)
	s.Int32("PlayerId", &c.PlayerID)
	s.Uint32("Context", &c.Context)
	s.Float("StartTimeOffset", &c.StartTimeOffset)
	s.Float("Modulation", &c.Modulation)
}

func (c *VibrationClip) Copy() Clip {
	d := *c
	return &d
}

// TranslationClip moves actors.
type TranslationClip struct {
	ClipHeader
	ActorPaths []TargetActor
	CurveX     BezierCurve
	CurveY     BezierCurve
	CurveZ     BezierCurve
}

func (*TranslationClip) ClipKind() ClipKind { return ClipTranslation }

func (c *TranslationClip) Fields(s Serializer) {
	c.ClipHeader.Fields(s)
	s.Actors("ActorPaths", &c.ActorPaths)
	s.Curve("CurveX", &c.CurveX)
	s.Curve("CurveY", &c.CurveY)
	s.Curve("CurveZ", &c.CurveZ)
}

func (c *TranslationClip) Copy() Clip {
	d := *c
	d.ActorPaths = copyActors(c.ActorPaths)
	d.CurveX = copyCurve(c.CurveX)
	d.CurveY = copyCurve(c.CurveY)
	d.CurveZ = copyCurve(c.CurveZ)
	return &d
}

// RotationClip rotates actors around each axis.
type RotationClip struct {
	ClipHeader
	ActorPaths []TargetActor
	CurveX     BezierCurve
	CurveY     BezierCurve
	CurveZ     BezierCurve
}

func (*RotationClip) ClipKind() ClipKind { return ClipRotation }

func (c *RotationClip) Fields(s Serializer) {
	c.ClipHeader.Fields(s)
	s.Actors("ActorPaths", &c.ActorPaths)
	s.Curve("CurveX", &c.CurveX)
	s.Curve("CurveY", &c.CurveY)
	s.Curve("CurveZ", &c.CurveZ)
}

func (c *RotationClip) Copy() Clip {
	d := *c
	d.ActorPaths = copyActors(c.ActorPaths)
	d.CurveX = copyCurve(c.CurveX)
	d.CurveY = copyCurve(c.CurveY)
	d.CurveZ = copyCurve(c.CurveZ)
	return &d
}

// SizeClip scales actors.
type SizeClip struct {
	ClipHeader
	ActorPaths []TargetActor
	CurveX     BezierCurve
	CurveY     BezierCurve
}

func (*SizeClip) ClipKind() ClipKind { return ClipSize }

func (c *SizeClip) Fields(s Serializer) {
	c.ClipHeader.Fields(s)
	s.Actors("ActorPaths", &c.ActorPaths)
	s.Curve("CurveX", &c.CurveX)
	s.Curve("CurveY", &c.CurveY)
}

func (c *SizeClip) Copy() Clip {
	d := *c
	d.ActorPaths = copyActors(c.ActorPaths)
	d.CurveX = copyCurve(c.CurveX)
	d.CurveY = copyCurve(c.CurveY)
	return &d
}

// ProportionClip changes the aspect of actors.
type ProportionClip struct {
	ClipHeader
	ActorPaths []TargetActor
	CurveX     BezierCurve
	CurveY     BezierCurve
}

func (*ProportionClip) ClipKind() ClipKind { return ClipProportion }

func (c *ProportionClip) Fields(s Serializer) {
	c.ClipHeader.Fields(s)
	s.Actors("ActorPaths", &c.ActorPaths)
	s.Curve("CurveX", &c.CurveX)
	s.Curve("CurveY", &c.CurveY)
}

func (c *ProportionClip) Copy() Clip {
	d := *c
	d.ActorPaths = copyActors(c.ActorPaths)
	d.CurveX = copyCurve(c.CurveX)
	d.CurveY = copyCurve(c.CurveY)
	return &d
}

// TextClip sets the text of actors, either from a localization id or
// literally.
type TextClip struct {
	ClipHeader
	ActorPaths []TargetActor
	LocID      uint32
	Text       string
}

func (*TextClip) ClipKind() ClipKind { return ClipText }

func (c *TextClip) Fields(s Serializer) {
	c.ClipHeader.Fields(s)
	s.Actors("ActorPaths", &c.ActorPaths)
	s.Uint32("LocalizationKey", &c.LocID)
	s.String("Text", &c.Text)
}

func (c *TextClip) Copy() Clip {
	d := *c
	d.ActorPaths = copyActors(c.ActorPaths)
	return &d
}

// TextAreaSizeClip animates the area of text boxes.
type TextAreaSizeClip struct {
	ClipHeader
	ActorPaths     []TargetActor
	CurveMaxWidth  BezierCurve
	CurveMaxHeight BezierCurve
	CurveAreaX     BezierCurve
	CurveAreaY     BezierCurve
}

func (*TextAreaSizeClip) ClipKind() ClipKind { return ClipTextAreaSize }

func (c *TextAreaSizeClip) Fields(s Serializer) {
	c.ClipHeader.Fields(s)
	s.Actors("ActorPaths", &c.ActorPaths)
	s.Curve("CurveMaxWidth", &c.CurveMaxWidth)
	s.Curve("CurveMaxHeight", &c.CurveMaxHeight)
	s.Curve("CurveAreaX", &c.CurveAreaX)
	s.Curve("CurveAreaY", &c.CurveAreaY)
}

func (c *TextAreaSizeClip) Copy() Clip {
	d := *c
	d.ActorPaths = copyActors(c.ActorPaths)
	d.CurveMaxWidth = copyCurve(c.CurveMaxWidth)
	d.CurveMaxHeight = copyCurve(c.CurveMaxHeight)
	d.CurveAreaX = copyCurve(c.CurveAreaX)
	d.CurveAreaY = copyCurve(c.CurveAreaY)
	return &d
}

// MaterialGraphicDiffuseAlphaClip animates the diffuse alpha of one layer of
// a material.
type MaterialGraphicDiffuseAlphaClip struct {
	ClipHeader
	ActorPaths    []TargetActor
	Curve         BezierCurve
	LayerIdx      uint32
	UVModifierIdx uint32
}

func (*MaterialGraphicDiffuseAlphaClip) ClipKind() ClipKind { return ClipMaterialGraphicDiffuseAlpha }

func (c *MaterialGraphicDiffuseAlphaClip) Fields(s Serializer) {
	c.ClipHeader.Fields(s)
	s.Actors("ActorPaths", &c.ActorPaths)
	s.Curve("Curve", &c.Curve)
	s.Uint32("LayerIdx", &c.LayerIdx)
	s.Uint32("UVModifierIdx", &c.UVModifierIdx)
}

func (c *MaterialGraphicDiffuseAlphaClip) Copy() Clip {
	d := *c
	d.ActorPaths = copyActors(c.ActorPaths)
	d.Curve = copyCurve(c.Curve)
	return &d
}

// MaterialGraphicDiffuseColorClip animates the diffuse color of one layer of
// a material.
type MaterialGraphicDiffuseColorClip struct {
	ClipHeader
	ActorPaths    []TargetActor
	CurveRed      BezierCurve
	CurveGreen    BezierCurve
	CurveBlue     BezierCurve
	LayerIdx      uint32
	UVModifierIdx uint32
}

func (*MaterialGraphicDiffuseColorClip) ClipKind() ClipKind { return ClipMaterialGraphicDiffuseColor }

func (c *MaterialGraphicDiffuseColorClip) Fields(s Serializer) {
	c.ClipHeader.Fields(s)
	s.Actors("ActorPaths", &c.ActorPaths)
	s.Curve("CurveRed", &c.CurveRed)
	s.Curve("CurveGreen", &c.CurveGreen)
	s.Curve("CurveBlue", &c.CurveBlue)
	s.Uint32("LayerIdx", &c.LayerIdx)
	s.Uint32("UVModifierIdx", &c.UVModifierIdx)
}

func (c *MaterialGraphicDiffuseColorClip) Copy() Clip {
	d := *c
	d.ActorPaths = copyActors(c.ActorPaths)
	d.CurveRed = copyCurve(c.CurveRed)
	d.CurveGreen = copyCurve(c.CurveGreen)
	d.CurveBlue = copyCurve(c.CurveBlue)
	return &d
}

// MaterialGraphicUVTranslationClip scrolls the texture coordinates of one
// layer of a material.
type MaterialGraphicUVTranslationClip struct {
	ClipHeader
	ActorPaths    []TargetActor
	CurveU        BezierCurve
	CurveV        BezierCurve
	LayerIdx      uint32
	UVModifierIdx uint32
}

func (*MaterialGraphicUVTranslationClip) ClipKind() ClipKind { return ClipMaterialGraphicUVTranslation }

func (c *MaterialGraphicUVTranslationClip) Fields(s Serializer) {
	c.ClipHeader.Fields(s)
	s.Actors("ActorPaths", &c.ActorPaths)
	s.Curve("CurveU", &c.CurveU)
	s.Curve("CurveV", &c.CurveV)
	s.Uint32("LayerIdx", &c.LayerIdx)
	s.Uint32("UVModifierIdx", &c.UVModifierIdx)
}

func (c *MaterialGraphicUVTranslationClip) Copy() Clip {
	d := *c
	d.ActorPaths = copyActors(c.ActorPaths)
	d.CurveU = copyCurve(c.CurveU)
	d.CurveV = copyCurve(c.CurveV)
	return &d
}

// MaterialGraphicUVRotationClip rotates the texture coordinates of one layer
// of a material.
type MaterialGraphicUVRotationClip struct {
	ClipHeader
	ActorPaths    []TargetActor
	CurveAngle    BezierCurve
	LayerIdx      uint32
	UVModifierIdx uint32
}

func (*MaterialGraphicUVRotationClip) ClipKind() ClipKind { return ClipMaterialGraphicUVRotation }

func (c *MaterialGraphicUVRotationClip) Fields(s Serializer) {
	c.ClipHeader.Fields(s)
	s.Actors("ActorPaths", &c.ActorPaths)
	s.Curve("CurveAngle", &c.CurveAngle)
	s.Uint32("LayerIdx", &c.LayerIdx)
	s.Uint32("UVModifierIdx", &c.UVModifierIdx)
}

func (c *MaterialGraphicUVRotationClip) Copy() Clip {
	d := *c
	d.ActorPaths = copyActors(c.ActorPaths)
	d.CurveAngle = copyCurve(c.CurveAngle)
	return &d
}

// TapeLauncherClip chooses between labeled tapes.
type TapeLauncherClip struct {
	ClipHeader
	Action     uint32
	TapeChoice uint32
	TapeLabels []string
}

func (*TapeLauncherClip) ClipKind() ClipKind { return ClipTapeLauncher }

func (c *TapeLauncherClip) Fields(s Serializer) {
	c.ClipHeader.Fields(s)
	s.Uint32("Action", &c.Action)
	s.Uint32("TapeChoice", &c.TapeChoice)
	s.Strings("TapeLabels", &c.TapeLabels)
}

func (c *TapeLauncherClip) Copy() Clip {
	d := *c
	d.TapeLabels = copyStrings(c.TapeLabels)
	return &d
}

// FXClip plays a particle effect on actors.
type FXClip struct {
	ClipHeader
	ActorPaths         []TargetActor
	FXName             string
	KillParticlesOnEnd bool
}

func (*FXClip) ClipKind() ClipKind { return ClipFX }

func (c *FXClip) Fields(s Serializer) {
	c.ClipHeader.Fields(s)
	s.Actors("ActorPaths", &c.ActorPaths)
	s.String("FxName", &c.FXName)
	s.Bool("KillParticlesOnEnd", &c.KillParticlesOnEnd)
}

func (c *FXClip) Copy() Clip {
	d := *c
	d.ActorPaths = copyActors(c.ActorPaths)
	return &d
}

// SlotClip marks a musical section.
type SlotClip struct {
	ClipHeader
	Bpm       float32
	Signature string
	Guid      string
}

func (*SlotClip) ClipKind() ClipKind { return ClipSlot }

func (c *SlotClip) Fields(s Serializer) {
	c.ClipHeader.Fields(s)
	s.Float("Bpm", &c.Bpm)
	s.String("Signature", &c.Signature)
	s.String("Guid", &c.Guid)
}

func (c *SlotClip) Copy() Clip {
	d := *c
	return &d
}

// CommunityDancerClip shows a community dancer card.
type CommunityDancerClip struct {
	ClipHeader
	DancerCountryCode string
	DancerAvatarID    uint32
	DancerName        string
}

func (*CommunityDancerClip) ClipKind() ClipKind { return ClipCommunityDancer }

func (c *CommunityDancerClip) Fields(s Serializer) {
	c.ClipHeader.Fields(s)
	s.String("DancerCountryCode", &c.DancerCountryCode)
	s.Uint32("DancerAvatarId", &c.DancerAvatarID)
	s.String("DancerName", &c.DancerName)
}

func (c *CommunityDancerClip) Copy() Clip {
	d := *c
	return &d
}
