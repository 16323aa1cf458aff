package normalize

import (
	"strconv"

	ubiart "github.com/Kriskras99/ferris-dancing-sub001"
	"github.com/Kriskras99/ferris-dancing-sub001/errors"
	"github.com/Kriskras99/ferris-dancing-sub001/isc"
	"github.com/Kriskras99/ferris-dancing-sub001/variant"
	"github.com/Kriskras99/ferris-dancing-sub001/xml"
)

// Element names of objective descriptors.
const (
	tagDatabase       = "JD_ObjectivesDatabase"
	tagObjectiveDescs = "objectiveDescs"
	tagVal            = "VAL"
	tagOldDesc        = "JD_ObjectiveDesc"
	tagRequirements   = "Components"
	prefixDesc        = "JD_ObjectiveDesc_"
	prefixRequirement = "JD_ObjectiveRequirement_"
)

// Tag tables of the objective descriptors of JD2020 and later.
var (
	NewDescs     = variant.NewTable[*ubiart.Objective]("objective")
	Requirements = variant.NewTable[ubiart.Requirement]("objective requirement")
)

var objectiveKinds = []func() ubiart.ObjectiveKind{
	func() ubiart.ObjectiveKind { return new(ubiart.AccumulateXCal) },
	func() ubiart.ObjectiveKind { return new(ubiart.AccumulateXMoves) },
	func() ubiart.ObjectiveKind { return new(ubiart.AccumulateXStars) },
	func() ubiart.ObjectiveKind { return new(ubiart.AddXSongsToAPlaylist) },
	func() ubiart.ObjectiveKind { return new(ubiart.BeatWDFBoss) },
	func() ubiart.ObjectiveKind { return new(ubiart.ChangeCusto) },
	func() ubiart.ObjectiveKind { return new(ubiart.CompleteXQuests) },
	func() ubiart.ObjectiveKind { return new(ubiart.DanceXSeconds) },
	func() ubiart.ObjectiveKind { return new(ubiart.FinishXPlaylist) },
	func() ubiart.ObjectiveKind { return new(ubiart.GatherXStars) },
	func() ubiart.ObjectiveKind { return new(ubiart.PlayDailyQuestsForXDays) },
	func() ubiart.ObjectiveKind { return new(ubiart.PlayGachaXTimes) },
	func() ubiart.ObjectiveKind { return new(ubiart.PlayPreviousJD) },
	func() ubiart.ObjectiveKind { return new(ubiart.PlayWDFTournament) },
	func() ubiart.ObjectiveKind { return new(ubiart.PlayXMaps) },
	func() ubiart.ObjectiveKind { return new(ubiart.PlayXWDFTournamentRounds) },
	func() ubiart.ObjectiveKind { return new(ubiart.ReachRankX) },
	func() ubiart.ObjectiveKind { return new(ubiart.SwitchSweatMode) },
	func() ubiart.ObjectiveKind { return new(ubiart.UnlockXPortraitBorders) },
	func() ubiart.ObjectiveKind { return new(ubiart.UnlockXStickers) },
	func() ubiart.ObjectiveKind { return new(ubiart.WinWDFTeamBattle) },
}

var requirementKinds = []func() ubiart.Requirement{
	func() ubiart.Requirement { return new(ubiart.MapName) },
	func() ubiart.Requirement { return new(ubiart.MapTags) },
	func() ubiart.Requirement { return new(ubiart.MapScore) },
	func() ubiart.Requirement { return new(ubiart.MapStars) },
	func() ubiart.Requirement { return new(ubiart.MapMoves) },
	func() ubiart.Requirement { return new(ubiart.MapCoachCount) },
	func() ubiart.Requirement { return new(ubiart.MapPlaymode) },
	func() ubiart.Requirement { return new(ubiart.MapLaunchLocation) },
	func() ubiart.Requirement { return new(ubiart.OnlyOnline) },
	func() ubiart.Requirement { return new(ubiart.OnlyOnUnlimitedSongs) },
}

func init() {
	for _, newR := range requirementKinds {
		newR := newR
		isc.RegisterFields(Requirements, prefixRequirement+newR().RequirementKind(), newR)
	}
	for _, newK := range objectiveKinds {
		newK := newK
		tag := prefixDesc + newK().ObjectiveKindName()
		NewDescs.Register(tag, variant.Codec[*ubiart.Objective]{
			Decode: func(t *xml.Tag) (*ubiart.Objective, error) {
				o := &ubiart.Objective{Kind: newK()}
				if err := isc.ReadFields(t, o.Kind.Fields); err != nil {
					return nil, err
				}
				if err := isc.ReadFields(t, objectiveFields(o)); err != nil {
					return nil, err
				}
				var err error
				if o.Requirements, err = Requirements.DecodeList(t, tagRequirements); err != nil {
					return nil, err
				}
				return o, nil
			},
			Encode: func(o *ubiart.Objective) (*xml.Tag, error) {
				t, err := isc.WriteFields(tag, func(s ubiart.TextSerializer) {
					objectiveFields(o)(s)
					o.Kind.Fields(s)
				})
				if err != nil {
					return nil, err
				}
				for i, r := range o.Requirements {
					if r == nil {
						return nil, errors.Errorf("requirement #%d is nil", i)
					}
					w, err := Requirements.Encode(tagRequirements, prefixRequirement+r.RequirementKind(), r)
					if err != nil {
						return nil, err
					}
					t.Add(w)
				}
				return t, nil
			},
		})
	}
}

// objectiveFields visits the fields shared by every objective kind.
func objectiveFields(o *ubiart.Objective) func(ubiart.TextSerializer) {
	return func(s ubiart.TextSerializer) {
		s.Uint32("description", &o.Description)
		s.String("description_raw", &o.DescriptionRaw)
		s.Bool("isStatic", &o.IsStatic)
		s.Bool("excludeFromUpload", &o.ExcludeFromUpload)
	}
}

// newGeneration returns whether r uses one element per objective kind.
func newGeneration(r ubiart.Release) bool {
	return r >= ubiart.JD2020
}

// Objective converts the objective with the given id held by wrapper, an
// element with exactly one child. The layout of the child is selected by
// the release. warn is non-nil when the objective was converted with loss.
func (n *Normalizer) Objective(id string, wrapper *xml.Tag) (o ubiart.Objective, warn, err error) {
	if err := n.check("objective descriptor"); err != nil {
		return o, nil, err
	}
	if n.Release == ubiart.JD2016 {
		return o, nil, errors.UnsupportedRelease{Release: n.Release.String(), What: "objective descriptor"}
	}
	if len(wrapper.Tags) != 1 {
		return o, nil, errors.TagShape{Element: wrapper.Name, Count: len(wrapper.Tags)}
	}
	t := wrapper.Tags[0]

	if newGeneration(n.Release) {
		p, err := NewDescs.DecodeTag(t)
		if err != nil {
			return o, nil, errors.Wrapf(err, "objective %q", id)
		}
		p.ID = id
		return *p, nil, nil
	}

	if t.Name != tagOldDesc {
		return o, nil, errors.UnknownTag{Table: "objective", Tag: t.Name, Known: []string{tagOldDesc}}
	}
	d := new(ObjectiveDescOld)
	if err := isc.ReadFields(t, d.Fields); err != nil {
		return o, nil, errors.Wrapf(err, "objective %q", id)
	}
	o, warn = n.convertOld(id, d)
	return o, warn, nil
}

// Database converts every objective of an objectives database, in
// document order. Warnings of single objectives are collected into warn.
func (n *Normalizer) Database(doc *xml.Document) (list []ubiart.Objective, warn, err error) {
	if doc.Root == nil {
		return nil, nil, errors.New("document has no root")
	}
	db := doc.Root.Child(tagDatabase)
	if db == nil {
		return nil, nil, errors.Errorf("document has no <%s>", tagDatabase)
	}
	var warns errors.Errors
	for _, entry := range db.Children(tagObjectiveDescs) {
		id, _ := entry.AttrValue("KEY")
		val := entry.Child(tagVal)
		if val == nil || len(entry.Tags) != 1 {
			return nil, nil, errors.TagShape{Element: entry.Name, Count: len(entry.Tags)}
		}
		o, w, err := n.Objective(id, val)
		if err != nil {
			return nil, nil, err
		}
		if w != nil {
			warns = append(warns, w)
		}
		list = append(list, o)
	}
	return list, warns.Return(), nil
}

// ObjectiveToNewDesc converts a canonical objective into a VAL element of the
// objectives database of JD2020 and later. A Generic objective has no such
// element and is an UnsupportedVariant error.
func ObjectiveToNewDesc(o ubiart.Objective) (*xml.Tag, error) {
	if o.Kind == nil {
		return nil, errors.Errorf("objective %q has no kind", o.ID)
	}
	if g, ok := o.Kind.(*ubiart.Generic); ok {
		return nil, errors.UnsupportedVariant{Name: "Generic objective type " + strconv.FormatUint(uint64(g.ObjectiveType), 10)}
	}
	return NewDescs.Encode(tagVal, prefixDesc+o.Kind.ObjectiveKindName(), &o)
}

// ObjectivesDatabase encodes objectives as an objectives database of JD2020
// and later.
func ObjectivesDatabase(list []ubiart.Objective) (*xml.Document, error) {
	db := xml.NewTag(tagDatabase)
	for _, o := range list {
		val, err := ObjectiveToNewDesc(o)
		if err != nil {
			return nil, errors.Wrapf(err, "objective %q", o.ID)
		}
		entry := xml.NewTag(tagObjectiveDescs, xml.Attr{Name: "KEY", Value: o.ID})
		entry.Add(val)
		db.Add(entry)
	}
	root := xml.NewTag("root")
	root.Add(db)
	return xml.NewDocument(root), nil
}
