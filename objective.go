package ubiart

// Objective is the canonical objective descriptor shared by every release.
type Objective struct {
	// ID is the key of the objective within its database.
	ID string

	// Description is the localization id of the description.
	Description    uint32
	DescriptionRaw string

	IsStatic          bool
	ExcludeFromUpload bool

	// Kind is what has to be done to complete the objective.
	Kind ObjectiveKind

	// Requirements narrow the conditions under which progress counts.
	Requirements []Requirement
}

// Requirement returns the first requirement of the given kind, or nil.
func (o *Objective) Requirement(kind string) Requirement {
	for _, r := range o.Requirements {
		if r.RequirementKind() == kind {
			return r
		}
	}
	return nil
}

// ObjectiveKind is the variant part of an Objective. The set of kinds is
// closed.
type ObjectiveKind interface {
	// ObjectiveKindName returns the name of the kind, such as "PlayXMaps".
	ObjectiveKindName() string
	Fielder
}

// Requirement narrows the satisfaction conditions of an objective. The set
// of kinds is closed.
type Requirement interface {
	// RequirementKind returns the name of the kind, such as "MapScore".
	RequirementKind() string
	Fielder
}

////////////////////////////////////////////////////////////////

type AccumulateXCal struct{ Calories uint32 }

func (*AccumulateXCal) ObjectiveKindName() string { return "AccumulateXCal" }
func (k *AccumulateXCal) Fields(s TextSerializer) { s.Uint32("caloriesAmount", &k.Calories) }

type AccumulateXMoves struct{ MoveCount uint32 }

func (*AccumulateXMoves) ObjectiveKindName() string { return "AccumulateXMoves" }
func (k *AccumulateXMoves) Fields(s TextSerializer) { s.Uint32("movesCount", &k.MoveCount) }

type AccumulateXStars struct{ StarCount uint32 }

func (*AccumulateXStars) ObjectiveKindName() string { return "AccumulateXStars" }
func (k *AccumulateXStars) Fields(s TextSerializer) { s.Uint32("starsCount", &k.StarCount) }

type AddXSongsToAPlaylist struct{ SongCount uint32 }

func (*AddXSongsToAPlaylist) ObjectiveKindName() string { return "AddXSongsToAPlaylist" }
func (k *AddXSongsToAPlaylist) Fields(s TextSerializer) { s.Uint32("songsCount", &k.SongCount) }

type BeatWDFBoss struct{}

func (*BeatWDFBoss) ObjectiveKindName() string  { return "BeatWDFBoss" }
func (*BeatWDFBoss) Fields(s TextSerializer)     {}

// CustoItem identifies a customizable part of a profile.
type CustoItem uint32

const (
	CustoAvatar CustoItem = iota
	CustoSkin
	CustoAlias
	CustoPortraitBorder
)

type ChangeCusto struct{ Item CustoItem }

func (*ChangeCusto) ObjectiveKindName() string { return "ChangeCusto" }
func (k *ChangeCusto) Fields(s TextSerializer) {
	s.Enum("customizableItemType", (*uint32)(&k.Item))
}

type CompleteXQuests struct{ QuestCount uint32 }

func (*CompleteXQuests) ObjectiveKindName() string { return "CompleteXQuests" }
func (k *CompleteXQuests) Fields(s TextSerializer) { s.Uint32("questsCount", &k.QuestCount) }

type DanceXSeconds struct{ Seconds uint32 }

func (*DanceXSeconds) ObjectiveKindName() string { return "DanceXSeconds" }
func (k *DanceXSeconds) Fields(s TextSerializer) { s.Uint32("danceTime", &k.Seconds) }

type FinishXPlaylist struct{ PlaylistCount uint32 }

func (*FinishXPlaylist) ObjectiveKindName() string { return "FinishXPlaylist" }
func (k *FinishXPlaylist) Fields(s TextSerializer) { s.Uint32("playlistsCount", &k.PlaylistCount) }

type GatherXStars struct{ StarCount uint32 }

func (*GatherXStars) ObjectiveKindName() string { return "GatherXStars" }
func (k *GatherXStars) Fields(s TextSerializer) { s.Uint32("starsCount", &k.StarCount) }

type PlayDailyQuestsForXDays struct {
	Days        uint32
	Consecutive bool
}

func (*PlayDailyQuestsForXDays) ObjectiveKindName() string { return "PlayDailyQuestsForXDays" }
func (k *PlayDailyQuestsForXDays) Fields(s TextSerializer) {
	s.Uint32("daysCount", &k.Days)
	s.Bool("consecutiveDays", &k.Consecutive)
}

type PlayGachaXTimes struct {
	PlayCount              uint32
	UnlockAllMatchingItems bool
}

func (*PlayGachaXTimes) ObjectiveKindName() string { return "PlayGachaXTimes" }
func (k *PlayGachaXTimes) Fields(s TextSerializer) {
	s.Uint32("gachaPlaysCount", &k.PlayCount)
	s.Bool("canUnlockAllMatchingItems", &k.UnlockAllMatchingItems)
}

type PlayPreviousJD struct{}

func (*PlayPreviousJD) ObjectiveKindName() string { return "PlayPreviousJD" }
func (*PlayPreviousJD) Fields(s TextSerializer)    {}

type PlayWDFTournament struct{ TournamentCount uint32 }

func (*PlayWDFTournament) ObjectiveKindName() string { return "PlayWDFTournament" }
func (k *PlayWDFTournament) Fields(s TextSerializer) {
	s.Uint32("tournamentsCount", &k.TournamentCount)
}

type PlayXMaps struct{ MapCount uint32 }

func (*PlayXMaps) ObjectiveKindName() string { return "PlayXMaps" }
func (k *PlayXMaps) Fields(s TextSerializer) { s.Uint32("mapsCount", &k.MapCount) }

type PlayXWDFTournamentRounds struct{ RoundCount uint32 }

func (*PlayXWDFTournamentRounds) ObjectiveKindName() string { return "PlayXWDFTournamentRounds" }
func (k *PlayXWDFTournamentRounds) Fields(s TextSerializer) {
	s.Uint32("roundsCount", &k.RoundCount)
}

type ReachRankX struct{ Rank uint32 }

func (*ReachRankX) ObjectiveKindName() string { return "ReachRankX" }
func (k *ReachRankX) Fields(s TextSerializer) { s.Uint32("rankToReach", &k.Rank) }

type SwitchSweatMode struct{}

func (*SwitchSweatMode) ObjectiveKindName() string { return "SwitchSweatMode" }
func (*SwitchSweatMode) Fields(s TextSerializer)    {}

type UnlockXPortraitBorders struct{ Count uint32 }

func (*UnlockXPortraitBorders) ObjectiveKindName() string { return "UnlockXPortraitBorders" }
func (k *UnlockXPortraitBorders) Fields(s TextSerializer) {
	s.Uint32("portraitBordersCount", &k.Count)
}

type UnlockXStickers struct{ Count uint32 }

func (*UnlockXStickers) ObjectiveKindName() string { return "UnlockXStickers" }
func (k *UnlockXStickers) Fields(s TextSerializer) { s.Uint32("stickersCount", &k.Count) }

type WinWDFTeamBattle struct{ BattleCount uint32 }

func (*WinWDFTeamBattle) ObjectiveKindName() string { return "WinWDFTeamBattle" }
func (k *WinWDFTeamBattle) Fields(s TextSerializer) { s.Uint32("battlesCount", &k.BattleCount) }

// Generic is an objective whose type has no canonical equivalent. The
// original type code and counter are preserved.
type Generic struct {
	ObjectiveType uint32
	Value         uint32
}

func (*Generic) ObjectiveKindName() string { return "Generic" }
func (k *Generic) Fields(s TextSerializer) {
	s.Uint32("objectiveType", &k.ObjectiveType)
	s.Uint32("minimumValue", &k.Value)
}

////////////////////////////////////////////////////////////////

// MapName requires the map to be one of a list.
type MapName struct{ MapNames []string }

func (*MapName) RequirementKind() string   { return "MapName" }
func (r *MapName) Fields(s TextSerializer) { s.Strings("mapNames", &r.MapNames) }

// MapTags requires the map to carry one of the tags, or none of them when
// Exclude is set.
type MapTags struct {
	Tags    []string
	Exclude bool
}

func (*MapTags) RequirementKind() string { return "MapTags" }
func (r *MapTags) Fields(s TextSerializer) {
	s.Strings("mapTags", &r.Tags)
	s.Bool("exclude", &r.Exclude)
}

// MapScore requires a minimum score, or a score better than the previous
// best when Better is set.
type MapScore struct {
	Score  uint32
	Better bool
}

func (*MapScore) RequirementKind() string { return "MapScore" }
func (r *MapScore) Fields(s TextSerializer) {
	s.Uint32("score", &r.Score)
	s.Bool("betterThanDancerOfTheWeek", &r.Better)
}

// MapStars requires a minimum number of stars.
type MapStars struct{ Stars uint32 }

func (*MapStars) RequirementKind() string   { return "MapStars" }
func (r *MapStars) Fields(s TextSerializer) { s.Uint32("starsToReach", &r.Stars) }

// MoveCategory is a rating of a move.
type MoveCategory uint32

const (
	MovesAny MoveCategory = iota
	MovesPerfect
	MovesGold
	MovesSuper
)

// MapMoves counts only moves of a category. When AllOfThem is set, every
// move of the map must be of the category.
type MapMoves struct {
	Category  MoveCategory
	AllOfThem bool
}

func (*MapMoves) RequirementKind() string { return "MapMoves" }
func (r *MapMoves) Fields(s TextSerializer) {
	s.Enum("moveCategoryToCount", (*uint32)(&r.Category))
	s.Bool("allOfThem", &r.AllOfThem)
}

// MapCoachCount requires the map to have between Min and Max coaches,
// inclusive.
type MapCoachCount struct {
	Min uint32
	Max uint32
}

func (*MapCoachCount) RequirementKind() string { return "MapCoachCount" }
func (r *MapCoachCount) Fields(s TextSerializer) {
	s.Uint32("minCoachCount", &r.Min)
	s.Uint32("maxCoachCount", &r.Max)
}

// Playmode is a way to play a map.
type Playmode uint32

const (
	PlaymodeClassic Playmode = iota
	PlaymodeSweat
	PlaymodeCoop
	PlaymodeKids
)

// MapPlaymode requires the map to be played in a mode.
type MapPlaymode struct{ Playmode Playmode }

func (*MapPlaymode) RequirementKind() string { return "MapPlaymode" }
func (r *MapPlaymode) Fields(s TextSerializer) {
	s.Enum("playmode", (*uint32)(&r.Playmode))
}

// LaunchLocation is the menu a map is started from.
type LaunchLocation uint32

const (
	LaunchHome LaunchLocation = iota
	LaunchPlaylist
	LaunchCarousel
	LaunchSearch
)

// MapLaunchLocation requires the map to be started from a location.
type MapLaunchLocation struct{ Location LaunchLocation }

func (*MapLaunchLocation) RequirementKind() string { return "MapLaunchLocation" }
func (r *MapLaunchLocation) Fields(s TextSerializer) {
	s.Enum("launchLocation", (*uint32)(&r.Location))
}

// OnlyOnline counts progress only while online.
type OnlyOnline struct{}

func (*OnlyOnline) RequirementKind() string { return "OnlyOnline" }
func (*OnlyOnline) Fields(s TextSerializer)  {}

// OnlyOnUnlimitedSongs counts progress only on songs of the streaming
// service.
type OnlyOnUnlimitedSongs struct{}

func (*OnlyOnUnlimitedSongs) RequirementKind() string { return "OnlyOnUnlimitedSongs" }
func (*OnlyOnUnlimitedSongs) Fields(s TextSerializer)  {}
