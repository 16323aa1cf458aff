package normalize

import (
	"fmt"
	"math"

	ubiart "github.com/Kriskras99/ferris-dancing-sub001"
)

// ObjectiveDescOld is the flat objective layout of JD2017 through JD2019.
// ObjectiveType selects how the other fields are interpreted.
type ObjectiveDescOld struct {
	Description       uint32
	DescriptionRaw    string
	ObjectiveType     uint32
	MinimumValue      uint32
	MinimumScore      uint32
	MinimumStars      uint32
	MapNames          []string
	MapTags           []string
	OnlyOnline        bool
	IsStatic          bool
	ExcludeFromUpload bool
}

func (d *ObjectiveDescOld) Fields(s ubiart.TextSerializer) {
	s.Uint32("description", &d.Description)
	s.String("description_raw", &d.DescriptionRaw)
	s.Enum("objectiveType", &d.ObjectiveType)
	s.Uint32("minimumValue", &d.MinimumValue)
	s.Uint32("minimumScore", &d.MinimumScore)
	s.Uint32("minimumStars", &d.MinimumStars)
	s.Strings("mapNames", &d.MapNames)
	s.Strings("mapTags", &d.MapTags)
	s.Bool("onlyOnline", &d.OnlyOnline)
	s.Bool("isStatic", &d.IsStatic)
	s.Bool("excludeFromUpload", &d.ExcludeFromUpload)
}

// UnknownObjectiveType is the warning produced when an old objective has a
// type outside the conversion table. The objective is kept as Generic.
type UnknownObjectiveType struct {
	ID   string
	Type uint32
}

func (w UnknownObjectiveType) Error() string {
	return fmt.Sprintf("objective %q: unknown objective type %d, kept as Generic", w.ID, w.Type)
}

// oldObjective converts one objective type of the old layout.
type oldObjective struct {
	kind func(d *ObjectiveDescOld) ubiart.ObjectiveKind
	reqs func(d *ObjectiveDescOld) []ubiart.Requirement
}

// Kind constructors.

func playXMaps(d *ObjectiveDescOld) ubiart.ObjectiveKind {
	return &ubiart.PlayXMaps{MapCount: d.MinimumValue}
}

func accumulateXMoves(d *ObjectiveDescOld) ubiart.ObjectiveKind {
	return &ubiart.AccumulateXMoves{MoveCount: d.MinimumValue}
}

func accumulateXStars(d *ObjectiveDescOld) ubiart.ObjectiveKind {
	return &ubiart.AccumulateXStars{StarCount: d.MinimumValue}
}

func accumulateXCal(d *ObjectiveDescOld) ubiart.ObjectiveKind {
	return &ubiart.AccumulateXCal{Calories: d.MinimumValue}
}

func danceXSeconds(d *ObjectiveDescOld) ubiart.ObjectiveKind {
	return &ubiart.DanceXSeconds{Seconds: d.MinimumValue}
}

func gatherXStars(d *ObjectiveDescOld) ubiart.ObjectiveKind {
	return &ubiart.GatherXStars{StarCount: d.MinimumValue}
}

func finishXPlaylist(d *ObjectiveDescOld) ubiart.ObjectiveKind {
	return &ubiart.FinishXPlaylist{PlaylistCount: d.MinimumValue}
}

func playWDFRounds(d *ObjectiveDescOld) ubiart.ObjectiveKind {
	return &ubiart.PlayXWDFTournamentRounds{RoundCount: d.MinimumValue}
}

func changeCusto(item ubiart.CustoItem) func(*ObjectiveDescOld) ubiart.ObjectiveKind {
	return func(*ObjectiveDescOld) ubiart.ObjectiveKind {
		return &ubiart.ChangeCusto{Item: item}
	}
}

func dailyQuests(consecutive bool) func(*ObjectiveDescOld) ubiart.ObjectiveKind {
	return func(d *ObjectiveDescOld) ubiart.ObjectiveKind {
		return &ubiart.PlayDailyQuestsForXDays{Days: d.MinimumValue, Consecutive: consecutive}
	}
}

func constKind(newK func() ubiart.ObjectiveKind) func(*ObjectiveDescOld) ubiart.ObjectiveKind {
	return func(*ObjectiveDescOld) ubiart.ObjectiveKind { return newK() }
}

// Requirement constructors. Each returns the requirements an objective type
// implies.

func none(*ObjectiveDescOld) []ubiart.Requirement { return nil }

func reqs(fns ...func(*ObjectiveDescOld) ubiart.Requirement) func(*ObjectiveDescOld) []ubiart.Requirement {
	return func(d *ObjectiveDescOld) []ubiart.Requirement {
		list := make([]ubiart.Requirement, 0, len(fns))
		for _, fn := range fns {
			list = append(list, fn(d))
		}
		return list
	}
}

func mapName(d *ObjectiveDescOld) ubiart.Requirement {
	return &ubiart.MapName{MapNames: append([]string(nil), d.MapNames...)}
}

func mapTags(exclude bool) func(*ObjectiveDescOld) ubiart.Requirement {
	return func(d *ObjectiveDescOld) ubiart.Requirement {
		return &ubiart.MapTags{Tags: append([]string(nil), d.MapTags...), Exclude: exclude}
	}
}

func mapScore(better bool) func(*ObjectiveDescOld) ubiart.Requirement {
	return func(d *ObjectiveDescOld) ubiart.Requirement {
		return &ubiart.MapScore{Score: d.MinimumScore, Better: better}
	}
}

func mapStars(d *ObjectiveDescOld) ubiart.Requirement {
	return &ubiart.MapStars{Stars: d.MinimumStars}
}

func mapMoves(category ubiart.MoveCategory, all bool) func(*ObjectiveDescOld) ubiart.Requirement {
	return func(*ObjectiveDescOld) ubiart.Requirement {
		return &ubiart.MapMoves{Category: category, AllOfThem: all}
	}
}

func coachCount(min, max uint32) func(*ObjectiveDescOld) ubiart.Requirement {
	return func(*ObjectiveDescOld) ubiart.Requirement {
		return &ubiart.MapCoachCount{Min: min, Max: max}
	}
}

func playmode(m ubiart.Playmode) func(*ObjectiveDescOld) ubiart.Requirement {
	return func(*ObjectiveDescOld) ubiart.Requirement {
		return &ubiart.MapPlaymode{Playmode: m}
	}
}

func launchLocation(l ubiart.LaunchLocation) func(*ObjectiveDescOld) ubiart.Requirement {
	return func(*ObjectiveDescOld) ubiart.Requirement {
		return &ubiart.MapLaunchLocation{Location: l}
	}
}

func onlyOnline(*ObjectiveDescOld) ubiart.Requirement {
	return &ubiart.OnlyOnline{}
}

func onlyUnlimited(*ObjectiveDescOld) ubiart.Requirement {
	return &ubiart.OnlyOnUnlimitedSongs{}
}

// oldObjectives maps every objective type of the old layout onto a canonical
// kind and the requirements the type implies.
var oldObjectives = [...]oldObjective{
	0:  {accumulateXStars, none},
	1:  {accumulateXMoves, none},
	2:  {accumulateXMoves, reqs(mapMoves(ubiart.MovesPerfect, false))},
	3:  {accumulateXMoves, reqs(mapMoves(ubiart.MovesGold, false))},
	4:  {accumulateXCal, none},
	5:  {danceXSeconds, none},
	6:  {playXMaps, none},
	7:  {playXMaps, reqs(mapName)},
	8:  {playXMaps, reqs(mapTags(false))},
	9:  {playXMaps, reqs(mapTags(true))},
	10: {playXMaps, reqs(mapScore(false))},
	11: {playXMaps, reqs(mapScore(true))},
	12: {playXMaps, reqs(mapStars)},
	13: {playXMaps, reqs(mapMoves(ubiart.MovesPerfect, true))},
	14: {playXMaps, reqs(mapMoves(ubiart.MovesGold, true))},
	15: {playXMaps, reqs(coachCount(1, 1))},
	16: {playXMaps, reqs(coachCount(2, 2))},
	17: {playXMaps, reqs(coachCount(3, 3))},
	18: {playXMaps, reqs(coachCount(4, 4))},
	19: {playXMaps, reqs(playmode(ubiart.PlaymodeSweat))},
	20: {playXMaps, reqs(playmode(ubiart.PlaymodeCoop))},
	21: {playXMaps, reqs(playmode(ubiart.PlaymodeKids))},
	22: {playXMaps, reqs(launchLocation(ubiart.LaunchHome))},
	23: {playXMaps, reqs(launchLocation(ubiart.LaunchPlaylist))},
	24: {playXMaps, reqs(launchLocation(ubiart.LaunchCarousel))},
	25: {playXMaps, reqs(onlyUnlimited)},
	26: {playXMaps, reqs(onlyOnline)},
	27: {gatherXStars, reqs(mapName)},
	28: {gatherXStars, reqs(mapTags(false))},
	29: {gatherXStars, none},
	30: {accumulateXStars, reqs(onlyUnlimited)},
	31: {func(d *ObjectiveDescOld) ubiart.ObjectiveKind {
		return &ubiart.ReachRankX{Rank: d.MinimumValue}
	}, none},
	32: {constKind(func() ubiart.ObjectiveKind { return new(ubiart.BeatWDFBoss) }), reqs(onlyOnline)},
	33: {func(d *ObjectiveDescOld) ubiart.ObjectiveKind {
		return &ubiart.PlayWDFTournament{TournamentCount: d.MinimumValue}
	}, reqs(onlyOnline)},
	34: {playWDFRounds, reqs(onlyOnline)},
	35: {func(d *ObjectiveDescOld) ubiart.ObjectiveKind {
		return &ubiart.WinWDFTeamBattle{BattleCount: d.MinimumValue}
	}, reqs(onlyOnline)},
	36: {playWDFRounds, reqs(onlyOnline, mapScore(false))},
	37: {func(d *ObjectiveDescOld) ubiart.ObjectiveKind {
		return &ubiart.CompleteXQuests{QuestCount: d.MinimumValue}
	}, none},
	38: {dailyQuests(false), none},
	39: {dailyQuests(true), none},
	40: {func(d *ObjectiveDescOld) ubiart.ObjectiveKind {
		return &ubiart.AddXSongsToAPlaylist{SongCount: d.MinimumValue}
	}, none},
	41: {finishXPlaylist, none},
	42: {finishXPlaylist, reqs(mapName)},
	43: {changeCusto(ubiart.CustoAvatar), none},
	44: {changeCusto(ubiart.CustoSkin), none},
	45: {changeCusto(ubiart.CustoAlias), none},
	46: {changeCusto(ubiart.CustoPortraitBorder), none},
	47: {func(d *ObjectiveDescOld) ubiart.ObjectiveKind {
		return &ubiart.UnlockXStickers{Count: d.MinimumValue}
	}, none},
	48: {func(d *ObjectiveDescOld) ubiart.ObjectiveKind {
		return &ubiart.UnlockXPortraitBorders{Count: d.MinimumValue}
	}, none},
	49: {constKind(func() ubiart.ObjectiveKind { return new(ubiart.SwitchSweatMode) }), none},
	50: {constKind(func() ubiart.ObjectiveKind { return new(ubiart.PlayPreviousJD) }), none},
	51: {accumulateXCal, reqs(playmode(ubiart.PlaymodeSweat))},
	52: {danceXSeconds, reqs(playmode(ubiart.PlaymodeSweat))},
	53: {playXMaps, reqs(coachCount(2, 4))},
	54: {accumulateXMoves, reqs(mapName)},
	55: {accumulateXStars, reqs(mapName)},
	56: {func(d *ObjectiveDescOld) ubiart.ObjectiveKind {
		return &ubiart.PlayGachaXTimes{PlayCount: d.MinimumValue}
	}, none},
	// Postcard objectives: draw until every matching item is unlocked.
	57: {constKind(func() ubiart.ObjectiveKind {
		return &ubiart.PlayGachaXTimes{PlayCount: math.MaxUint32, UnlockAllMatchingItems: true}
	}), none},
}

// convertOld converts an old objective into the canonical shape. An
// objective type outside the table yields Generic and a warning.
func (n *Normalizer) convertOld(id string, d *ObjectiveDescOld) (o ubiart.Objective, warn error) {
	o = ubiart.Objective{
		ID:                id,
		Description:       d.Description,
		DescriptionRaw:    d.DescriptionRaw,
		IsStatic:          d.IsStatic,
		ExcludeFromUpload: d.ExcludeFromUpload,
	}
	if d.ObjectiveType >= uint32(len(oldObjectives)) {
		n.log().Warn().
			Str("objective", id).
			Uint32("objectiveType", d.ObjectiveType).
			Stringer("release", n.Release).
			Msg("unknown objective type, keeping as generic")
		o.Kind = &ubiart.Generic{ObjectiveType: d.ObjectiveType, Value: d.MinimumValue}
		if d.OnlyOnline {
			o.Requirements = append(o.Requirements, &ubiart.OnlyOnline{})
		}
		return o, UnknownObjectiveType{ID: id, Type: d.ObjectiveType}
	}

	entry := oldObjectives[d.ObjectiveType]
	o.Kind = entry.kind(d)
	o.Requirements = entry.reqs(d)
	if d.OnlyOnline && o.Requirement("OnlyOnline") == nil {
		o.Requirements = append(o.Requirements, &ubiart.OnlyOnline{})
	}
	if len(o.Requirements) == 0 {
		o.Requirements = nil
	}
	return o, nil
}
