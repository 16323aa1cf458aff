package ubiart

// SceneConfig is a configuration block of a scene. The set of kinds is
// closed.
type SceneConfig interface {
	// SceneConfigKind returns the class name of the configuration block.
	SceneConfigKind() string
	Fielder
}

// SceneConfigBase holds the fields shared by every configuration block.
type SceneConfigBase struct {
	Name         string
	SoundContext string
	Hud          uint32
	PauseLevel   uint32
}

func (c *SceneConfigBase) Fields(s TextSerializer) {
	s.String("name", &c.Name)
	s.String("soundContext", &c.SoundContext)
	s.Uint32("hud", &c.Hud)
	s.Enum("Pause_Level", &c.PauseLevel)
}

// MapSceneConfig configures the scene of a song.
type MapSceneConfig struct {
	SceneConfigBase
	Type        uint32
	MusicScore  uint32
	PhoneImages []string
}

func (*MapSceneConfig) SceneConfigKind() string { return "JD_MapSceneConfig" }

func (c *MapSceneConfig) Fields(s TextSerializer) {
	c.SceneConfigBase.Fields(s)
	s.Enum("type", &c.Type)
	s.Enum("musicscore", &c.MusicScore)
	s.Strings("phoneImages", &c.PhoneImages)
}

// SongDatabaseSceneConfig configures the scene that lists songs.
type SongDatabaseSceneConfig struct {
	SceneConfigBase
	CoachPreviewCount uint32
	SortingRules      []string
}

func (*SongDatabaseSceneConfig) SceneConfigKind() string { return "JD_SongDatabaseSceneConfig" }

func (c *SongDatabaseSceneConfig) Fields(s TextSerializer) {
	c.SceneConfigBase.Fields(s)
	s.Uint32("coachPreviewCount", &c.CoachPreviewCount)
	s.Strings("sortingRules", &c.SortingRules)
}

// TransitionSceneConfig configures a transition between menus.
type TransitionSceneConfig struct {
	SceneConfigBase
}

func (*TransitionSceneConfig) SceneConfigKind() string { return "JD_TransitionSceneConfig" }

// UIBannerSceneConfig configures a menu with a banner.
type UIBannerSceneConfig struct {
	SceneConfigBase
	Theme      uint32
	BannerType uint32
}

func (*UIBannerSceneConfig) SceneConfigKind() string { return "JD_UIBannerSceneConfig" }

func (c *UIBannerSceneConfig) Fields(s TextSerializer) {
	c.SceneConfigBase.Fields(s)
	s.Enum("theme", &c.Theme)
	s.Enum("bannerType", &c.BannerType)
}

// UIHomeSceneConfig configures the home menu.
type UIHomeSceneConfig struct {
	SceneConfigBase
	DefaultTiles []string
}

func (*UIHomeSceneConfig) SceneConfigKind() string { return "JD_UIHomeSceneConfig" }

func (c *UIHomeSceneConfig) Fields(s TextSerializer) {
	c.SceneConfigBase.Fields(s)
	s.Strings("defaultTiles", &c.DefaultTiles)
}

////////////////////////////////////////////////////////////////

// CarouselBehaviour reacts to navigation within a carousel. The set of kinds
// is closed.
type CarouselBehaviour interface {
	// BehaviourKind returns the class name of the behaviour.
	BehaviourKind() string
	Fielder
}

// NavigationValidation validates the selected element.
type NavigationValidation struct {
	SoundContext        string
	ValidateAction      string
	DelayBeforeNextStep float32
}

func (*NavigationValidation) BehaviourKind() string { return "CarouselBehaviour_NavigationValidation" }

func (b *NavigationValidation) Fields(s TextSerializer) {
	s.String("soundContext", &b.SoundContext)
	s.String("validateAction", &b.ValidateAction)
	s.Float("delayBeforeNextStep", &b.DelayBeforeNextStep)
}

// GoToElement scrolls to an element.
type GoToElement struct {
	ElementIndex uint32
	Duration     float32
}

func (*GoToElement) BehaviourKind() string { return "CarouselBehaviour_GoToElement" }

func (b *GoToElement) Fields(s TextSerializer) {
	s.Uint32("elementIndex", &b.ElementIndex)
	s.Float("duration", &b.Duration)
}

// Stop halts scrolling.
type Stop struct {
	StopDuration float32
}

func (*Stop) BehaviourKind() string { return "CarouselBehaviour_Stop" }

func (b *Stop) Fields(s TextSerializer) {
	s.Float("stopDuration", &b.StopDuration)
}

// NavigationStop halts scrolling at the end of a navigation.
type NavigationStop struct {
	AnimDuration   float32
	SoundNotifStop string
}

func (*NavigationStop) BehaviourKind() string { return "CarouselBehaviour_NavigationStop" }

func (b *NavigationStop) Fields(s TextSerializer) {
	s.Float("animDuration", &b.AnimDuration)
	s.String("soundNotifStop", &b.SoundNotifStop)
}

// NavigationChange moves the selection.
type NavigationChange struct {
	ScrollSpeed      float32
	SoundContext     string
	TimeBetweenSteps float32
	Loop             bool
}

func (*NavigationChange) BehaviourKind() string { return "CarouselBehaviour_NavigationChange" }

func (b *NavigationChange) Fields(s TextSerializer) {
	s.Float("scrollSpeed", &b.ScrollSpeed)
	s.String("soundContext", &b.SoundContext)
	s.Float("timeBetweenSteps", &b.TimeBetweenSteps)
	s.Bool("loop", &b.Loop)
}
