package normalize_test

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/go-quicktest/qt"
	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"

	ubiart "github.com/Kriskras99/ferris-dancing-sub001"
	"github.com/Kriskras99/ferris-dancing-sub001/declare"
	"github.com/Kriskras99/ferris-dancing-sub001/errors"
	"github.com/Kriskras99/ferris-dancing-sub001/normalize"
	"github.com/Kriskras99/ferris-dancing-sub001/xml"
)

func avatarComponent(attr ...string) *ubiart.AvatarDescComponent {
	c := new(ubiart.AvatarDescComponent)
	for i := 0; i+1 < len(attr); i += 2 {
		c.Attr = append(c.Attr, ubiart.Attr{Name: attr[i], Value: attr[i+1]})
	}
	return c
}

func TestAvatar2016(t *testing.T) {
	n := normalize.Normalizer{Release: ubiart.JD2016}
	m, err := n.Avatar(avatarComponent(
		"JdVersion", "2016",
		"RelativeSongName", "Rasputin",
		"Avatar_ID", "12",
		"UnlockType", "1",
		"Status", "1",
	), "world/avatars/0012/avatar.tpl")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(m, ubiart.MinAvatarDesc{
		AvatarID:   12,
		Status:     1,
		UnlockType: ubiart.UnlockType{Kind: ubiart.UnlockPlaySong, Code: 1},
		ActorPath:  "world/avatars/0012/avatar.tpl",
	}))
}

func TestAvatarFieldOfOtherRelease(t *testing.T) {
	n := normalize.Normalizer{Release: ubiart.JD2016}
	_, err := n.Avatar(avatarComponent("Avatar_ID", "12", "sound_family", "avatar_sound"), "")
	qt.Assert(t, qt.IsTrue(errors.Is(err, errors.ErrStructuralMismatch)))
	qt.Assert(t, qt.ErrorMatches(err, `jd2016 avatar descriptor has no field "sound_family": structural mismatch`))
}

func TestAvatarMalformedField(t *testing.T) {
	n := normalize.Normalizer{Release: ubiart.JD2017}
	_, err := n.DecodeAvatar(avatarComponent("Avatar_ID", "twelve"))
	qt.Assert(t, qt.ErrorMatches(err, `jd2017 avatar descriptor: <JD_AvatarDescComponent> field Avatar_ID = "twelve": .*`))
}

func TestAvatarUnsupportedRelease(t *testing.T) {
	var n normalize.Normalizer
	_, err := n.DecodeAvatar(avatarComponent())
	qt.Assert(t, qt.IsTrue(errors.Is(err, errors.ErrUnsupportedRelease)))
}

func TestAvatarLayouts(t *testing.T) {
	for _, r := range ubiart.Releases() {
		layout, err := normalize.NewAvatarLayout(r)
		qt.Assert(t, qt.IsNil(err))
		switch {
		case r == ubiart.JD2016:
			qt.Assert(t, qt.Satisfies(layout, func(l normalize.AvatarLayout) bool {
				_, ok := l.(*normalize.AvatarDesc2016)
				return ok
			}))
		case r >= ubiart.JD2020:
			qt.Assert(t, qt.Satisfies(layout, func(l normalize.AvatarLayout) bool {
				_, ok := l.(*normalize.AvatarDesc2020)
				return ok
			}))
		}
	}
	_, err := normalize.NewAvatarLayout(ubiart.ReleaseInvalid)
	qt.Assert(t, qt.IsTrue(errors.Is(err, errors.ErrUnsupportedRelease)))
}

func TestUnlockTables(t *testing.T) {
	old := normalize.Normalizer{Release: ubiart.JD2019}
	qt.Assert(t, qt.Equals(old.Unlock(1, 2).Kind, ubiart.UnlockGift))
	qt.Assert(t, qt.Equals(old.Unlock(1, 99).Kind, ubiart.UnlockUnknown))

	next := normalize.Normalizer{Release: ubiart.JD2020}
	qt.Assert(t, qt.Equals(next.Unlock(1, 2).Kind, ubiart.UnlockPlaySong))
	qt.Assert(t, qt.Equals(next.Unlock(1, 7).Kind, ubiart.UnlockSubscription))
}

func TestUnlockObjectiveLookup(t *testing.T) {
	n := normalize.Normalizer{
		Release:    ubiart.JD2020,
		Objectives: normalize.ObjectiveMap{40: "obj_avatar_40"},
	}
	qt.Assert(t, qt.Equals(n.Unlock(40, 1), ubiart.UnlockType{
		Kind:      ubiart.UnlockObjective,
		Code:      1,
		Objective: "obj_avatar_40",
	}))
	qt.Assert(t, qt.Equals(n.Unlock(41, 1), ubiart.UnlockType{Kind: ubiart.UnlockGift, Code: 1}))
}

func TestAvatarFromActor(t *testing.T) {
	a := declare.Actor("avatar_40",
		declare.Property("LUA", declare.String, "world/avatars/0040/avatar.tpl"),
		declare.Component("JD_AvatarDescComponent",
			declare.Property("Avatar_ID", declare.Uint32, 40),
			declare.Property("sound_family", declare.String, "avatar_sound"),
			declare.Property("UnlockType", declare.Uint32, 3),
			declare.Property("MainAvatar_ID", declare.Uint32, 40),
			declare.Property("CountInProgression", declare.Bool, true),
		),
	).Declare().Base()

	n := normalize.Normalizer{Release: ubiart.JD2019}
	m, err := n.AvatarFromActor(a)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(m.SoundFamily, "avatar_sound"))
	qt.Assert(t, qt.Equals(m.UnlockType.Kind, ubiart.UnlockAccount))
	qt.Assert(t, qt.Equals(m.ActorPath, "world/avatars/0040/avatar.tpl"))

	_, err = n.AvatarFromActor(declare.Actor("empty").Declare().Base())
	qt.Assert(t, qt.ErrorMatches(err, `actor "empty" has no avatar descriptor`))
}

func TestAvatarToNewLayout(t *testing.T) {
	m := ubiart.MinAvatarDesc{
		AvatarID:    12,
		SoundFamily: "avatar_sound",
		Status:      1,
		UnlockType:  ubiart.UnlockType{Kind: ubiart.UnlockGift, Code: 2},
	}
	d := normalize.AvatarDesc2020FromCanonical(m)
	qt.Assert(t, qt.Equals(d.UnlockType, uint32(1)))
	qt.Assert(t, qt.Equals(d.MainAvatarID, uint32(12)))

	c, err := normalize.EncodeAvatar(d)
	qt.Assert(t, qt.IsNil(err))
	n := normalize.Normalizer{Release: ubiart.JD2021}
	got, err := n.Avatar(c, "")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(got, ubiart.MinAvatarDesc{
		AvatarID:    12,
		SoundFamily: "avatar_sound",
		Status:      1,
		UnlockType:  ubiart.UnlockType{Kind: ubiart.UnlockGift, Code: 1},
	}))
}

////////////////////////////////////////////////////////////////

func document(t *testing.T, s string) *xml.Document {
	t.Helper()
	doc := new(xml.Document)
	_, err := doc.ReadFrom(strings.NewReader(s))
	qt.Assert(t, qt.IsNil(err))
	return doc
}

const oldDatabase = `<root><JD_ObjectivesDatabase>
	<objectiveDescs KEY="obj_maps">
		<VAL>
			<JD_ObjectiveDesc description="100" minimumValue="3" onlyOnline="1">
				<ENUM NAME="objectiveType" SEL="7"/>
				<mapNames VAL="Rasputin"/>
			</JD_ObjectiveDesc>
		</VAL>
	</objectiveDescs>
	<objectiveDescs KEY="obj_postcards">
		<VAL>
			<JD_ObjectiveDesc description="101">
				<ENUM NAME="objectiveType" SEL="57"/>
			</JD_ObjectiveDesc>
		</VAL>
	</objectiveDescs>
	<objectiveDescs KEY="obj_future">
		<VAL>
			<JD_ObjectiveDesc description="102" minimumValue="5">
				<ENUM NAME="objectiveType" SEL="99"/>
			</JD_ObjectiveDesc>
		</VAL>
	</objectiveDescs>
</JD_ObjectivesDatabase></root>`

func TestOldObjectives(t *testing.T) {
	var log bytes.Buffer
	logger := zerolog.New(&log)
	n := normalize.Normalizer{Release: ubiart.JD2019, Logger: &logger}

	list, warn, err := n.Database(document(t, oldDatabase))
	qt.Assert(t, qt.IsNil(err))
	want := []ubiart.Objective{
		{
			ID:          "obj_maps",
			Description: 100,
			Kind:        &ubiart.PlayXMaps{MapCount: 3},
			Requirements: []ubiart.Requirement{
				&ubiart.MapName{MapNames: []string{"Rasputin"}},
				&ubiart.OnlyOnline{},
			},
		},
		{
			ID:          "obj_postcards",
			Description: 101,
			Kind:        &ubiart.PlayGachaXTimes{PlayCount: math.MaxUint32, UnlockAllMatchingItems: true},
		},
		{
			ID:          "obj_future",
			Description: 102,
			Kind:        &ubiart.Generic{ObjectiveType: 99, Value: 5},
		},
	}
	if diff := cmp.Diff(want, list); diff != "" {
		t.Errorf("unexpected objectives (-want +got):\n%s", diff)
	}

	warns, ok := warn.(errors.Errors)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.HasLen(warns, 1))
	qt.Assert(t, qt.Equals(warns[0], error(normalize.UnknownObjectiveType{ID: "obj_future", Type: 99})))
	qt.Assert(t, qt.StringContains(log.String(), `"objectiveType":99`))
}

func TestOldObjectiveOnlyOnlineOnce(t *testing.T) {
	n := normalize.Normalizer{Release: ubiart.JD2018}
	wrapper := document(t, `<VAL><JD_ObjectiveDesc minimumValue="1" onlyOnline="1">
		<ENUM NAME="objectiveType" SEL="32"/>
	</JD_ObjectiveDesc></VAL>`).Root
	o, warn, err := n.Objective("obj_boss", wrapper)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsNil(warn))
	qt.Assert(t, qt.HasLen(o.Requirements, 1))
	qt.Assert(t, qt.Equals(o.Kind.ObjectiveKindName(), "BeatWDFBoss"))
}

func TestOldObjectiveTypes(t *testing.T) {
	tests := []struct {
		typ  string
		kind ubiart.ObjectiveKind
		reqs []ubiart.Requirement
	}{
		{"0", &ubiart.AccumulateXStars{StarCount: 4}, nil},
		{"2", &ubiart.AccumulateXMoves{MoveCount: 4}, []ubiart.Requirement{&ubiart.MapMoves{Category: ubiart.MovesPerfect}}},
		{"13", &ubiart.PlayXMaps{MapCount: 4}, []ubiart.Requirement{&ubiart.MapMoves{Category: ubiart.MovesPerfect, AllOfThem: true}}},
		{"15", &ubiart.PlayXMaps{MapCount: 4}, []ubiart.Requirement{&ubiart.MapCoachCount{Min: 1, Max: 1}}},
		{"19", &ubiart.PlayXMaps{MapCount: 4}, []ubiart.Requirement{&ubiart.MapPlaymode{Playmode: ubiart.PlaymodeSweat}}},
		{"22", &ubiart.PlayXMaps{MapCount: 4}, []ubiart.Requirement{&ubiart.MapLaunchLocation{Location: ubiart.LaunchHome}}},
		{"25", &ubiart.PlayXMaps{MapCount: 4}, []ubiart.Requirement{&ubiart.OnlyOnUnlimitedSongs{}}},
		{"27", &ubiart.GatherXStars{StarCount: 4}, []ubiart.Requirement{&ubiart.MapName{MapNames: []string{"Rasputin"}}}},
		{"28", &ubiart.GatherXStars{StarCount: 4}, []ubiart.Requirement{&ubiart.MapTags{Tags: []string{"Kids"}}}},
		{"31", &ubiart.ReachRankX{Rank: 4}, nil},
		{"36", &ubiart.PlayXWDFTournamentRounds{RoundCount: 4}, []ubiart.Requirement{&ubiart.OnlyOnline{}, &ubiart.MapScore{Score: 9000}}},
		{"39", &ubiart.PlayDailyQuestsForXDays{Days: 4, Consecutive: true}, nil},
		{"43", &ubiart.ChangeCusto{Item: ubiart.CustoAvatar}, nil},
		{"47", &ubiart.UnlockXStickers{Count: 4}, nil},
		{"51", &ubiart.AccumulateXCal{Calories: 4}, []ubiart.Requirement{&ubiart.MapPlaymode{Playmode: ubiart.PlaymodeSweat}}},
		{"53", &ubiart.PlayXMaps{MapCount: 4}, []ubiart.Requirement{&ubiart.MapCoachCount{Min: 2, Max: 4}}},
		{"56", &ubiart.PlayGachaXTimes{PlayCount: 4}, nil},
	}
	n := normalize.Normalizer{Release: ubiart.JD2018}
	for _, test := range tests {
		t.Run(test.typ, func(t *testing.T) {
			wrapper := document(t, `<VAL><JD_ObjectiveDesc minimumValue="4" minimumScore="9000" minimumStars="3">
				<ENUM NAME="objectiveType" SEL="`+test.typ+`"/>
				<mapNames VAL="Rasputin"/>
				<mapTags VAL="Kids"/>
			</JD_ObjectiveDesc></VAL>`).Root
			o, warn, err := n.Objective("obj", wrapper)
			qt.Assert(t, qt.IsNil(err))
			qt.Assert(t, qt.IsNil(warn))
			want := ubiart.Objective{ID: "obj", Kind: test.kind, Requirements: test.reqs}
			if diff := cmp.Diff(want, o); diff != "" {
				t.Errorf("unexpected objective (-want +got):\n%s", diff)
			}
		})
	}
}

func TestObjectivesUnsupportedRelease(t *testing.T) {
	n := normalize.Normalizer{Release: ubiart.JD2016}
	_, _, err := n.Database(document(t, oldDatabase))
	qt.Assert(t, qt.IsTrue(errors.Is(err, errors.ErrUnsupportedRelease)))
	qt.Assert(t, qt.ErrorMatches(err, `objective descriptor: unsupported release "jd2016"`))
}

const newDatabase = `<root><JD_ObjectivesDatabase>
	<objectiveDescs KEY="obj_score">
		<VAL NAME="JD_ObjectiveDesc_PlayXMaps">
			<JD_ObjectiveDesc_PlayXMaps description="5" isStatic="1" mapsCount="2">
				<Components NAME="JD_ObjectiveRequirement_MapScore">
					<JD_ObjectiveRequirement_MapScore score="8000" betterThanDancerOfTheWeek="0"/>
				</Components>
			</JD_ObjectiveDesc_PlayXMaps>
		</VAL>
	</objectiveDescs>
	<objectiveDescs KEY="obj_custo">
		<VAL NAME="JD_ObjectiveDesc_ChangeCusto">
			<JD_ObjectiveDesc_ChangeCusto description="6">
				<ENUM NAME="customizableItemType" SEL="2"/>
			</JD_ObjectiveDesc_ChangeCusto>
		</VAL>
	</objectiveDescs>
</JD_ObjectivesDatabase></root>`

func TestNewObjectives(t *testing.T) {
	n := normalize.Normalizer{Release: ubiart.JD2020}
	list, warn, err := n.Database(document(t, newDatabase))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsNil(warn))
	want := []ubiart.Objective{
		{
			ID:           "obj_score",
			Description:  5,
			IsStatic:     true,
			Kind:         &ubiart.PlayXMaps{MapCount: 2},
			Requirements: []ubiart.Requirement{&ubiart.MapScore{Score: 8000}},
		},
		{
			ID:          "obj_custo",
			Description: 6,
			Kind:        &ubiart.ChangeCusto{Item: ubiart.CustoAlias},
		},
	}
	if diff := cmp.Diff(want, list); diff != "" {
		t.Errorf("unexpected objectives (-want +got):\n%s", diff)
	}

	doc, err := normalize.ObjectivesDatabase(list)
	qt.Assert(t, qt.IsNil(err))
	later := normalize.Normalizer{Release: ubiart.JD2022}
	again, _, err := later.Database(doc)
	qt.Assert(t, qt.IsNil(err))
	if diff := cmp.Diff(list, again); diff != "" {
		t.Errorf("objectives changed by re-encoding (-first +second):\n%s", diff)
	}
}

func TestOldObjectivesToNewDatabase(t *testing.T) {
	n := normalize.Normalizer{Release: ubiart.JD2017}
	list, _, err := n.Database(document(t, oldDatabase))
	qt.Assert(t, qt.IsNil(err))

	val, err := normalize.ObjectiveToNewDesc(list[0])
	qt.Assert(t, qt.IsNil(err))
	name, _ := val.AttrValue("NAME")
	qt.Assert(t, qt.Equals(name, "JD_ObjectiveDesc_PlayXMaps"))
	qt.Assert(t, qt.HasLen(val.Tags[0].Children("Components"), 2))

	_, err = normalize.ObjectivesDatabase(list)
	qt.Assert(t, qt.IsTrue(errors.Is(err, errors.ErrUnsupportedVariant)))
	qt.Assert(t, qt.ErrorMatches(err, `objective "obj_future": Generic objective type 99 is not supported`))
}

func TestObjectiveLayoutOfOtherRelease(t *testing.T) {
	next := normalize.Normalizer{Release: ubiart.JD2021}
	_, _, err := next.Database(document(t, oldDatabase))
	qt.Assert(t, qt.IsTrue(errors.Is(err, errors.ErrUnknownDiscriminant)))

	old := normalize.Normalizer{Release: ubiart.JD2019}
	_, _, err = old.Database(document(t, newDatabase))
	qt.Assert(t, qt.IsTrue(errors.Is(err, errors.ErrUnknownDiscriminant)))
	qt.Assert(t, qt.ErrorMatches(err, `unknown objective tag "JD_ObjectiveDesc_PlayXMaps" \(expected one of: JD_ObjectiveDesc\)`))
}

func TestObjectiveShape(t *testing.T) {
	n := normalize.Normalizer{Release: ubiart.JD2020}
	wrapper := document(t, `<VAL><JD_ObjectiveDesc_PlayPreviousJD/><JD_ObjectiveDesc_SwitchSweatMode/></VAL>`).Root
	_, _, err := n.Objective("obj", wrapper)
	qt.Assert(t, qt.IsTrue(errors.Is(err, errors.ErrTagShape)))
}

func TestDatabaseWithObjectiveLookup(t *testing.T) {
	n := normalize.Normalizer{
		Release:    ubiart.JD2021,
		Objectives: normalize.ObjectiveMap{40: "obj_score"},
	}
	list, _, err := n.Database(document(t, newDatabase))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.HasLen(list, 2))
	qt.Assert(t, qt.Equals(n.Unlock(40, 1).Objective, list[0].ID))
}

func TestObjectiveNilRequirement(t *testing.T) {
	_, err := normalize.ObjectiveToNewDesc(ubiart.Objective{
		ID:           "obj_maps",
		Kind:         &ubiart.PlayXMaps{MapCount: 1},
		Requirements: []ubiart.Requirement{nil},
	})
	qt.Assert(t, qt.ErrorMatches(err, `.*requirement #0 is nil`))
}
