package normalize

import (
	ubiart "github.com/Kriskras99/ferris-dancing-sub001"
	"github.com/Kriskras99/ferris-dancing-sub001/errors"
	"github.com/Kriskras99/ferris-dancing-sub001/isc"
	"github.com/Kriskras99/ferris-dancing-sub001/xml"
)

// AvatarCommon holds the fields every avatar layout carries.
type AvatarCommon struct {
	AvatarID    uint32
	SoundFamily string
	Status      uint32
	UnlockType  uint32
}

// AvatarLayout is the physical layout of an avatar descriptor of one or
// more releases.
type AvatarLayout interface {
	ubiart.Fielder
	// Common projects the layout onto the fields shared by every layout.
	Common() AvatarCommon
}

// AvatarDesc2016 is the avatar layout of JD2016, which predates sound
// families.
type AvatarDesc2016 struct {
	JdVersion                 uint32
	RelativeSongName          string
	RelativeQuestID           string
	RelativeWDFBossName       string
	RelativeWDFTournamentName string
	RelativeJDRank            string
	RelativeGameModeName      string
	AvatarID                  uint32
	UnlockType                uint32
	Status                    uint32
}

func (d *AvatarDesc2016) Fields(s ubiart.TextSerializer) {
	s.Uint32("JdVersion", &d.JdVersion)
	s.String("RelativeSongName", &d.RelativeSongName)
	s.String("RelativeQuestID", &d.RelativeQuestID)
	s.String("RelativeWDFBossName", &d.RelativeWDFBossName)
	s.String("RelativeWDFTournamentName", &d.RelativeWDFTournamentName)
	s.String("RelativeJDRank", &d.RelativeJDRank)
	s.String("RelativeGameModeName", &d.RelativeGameModeName)
	s.Uint32("Avatar_ID", &d.AvatarID)
	s.Uint32("UnlockType", &d.UnlockType)
	s.Uint32("Status", &d.Status)
}

func (d *AvatarDesc2016) Common() AvatarCommon {
	return AvatarCommon{
		AvatarID:   d.AvatarID,
		Status:     d.Status,
		UnlockType: d.UnlockType,
	}
}

// AvatarDesc2017 is the avatar layout of JD2017 and JD2018.
type AvatarDesc2017 struct {
	AvatarDesc2016
	SoundFamily string
}

func (d *AvatarDesc2017) Fields(s ubiart.TextSerializer) {
	d.AvatarDesc2016.Fields(s)
	s.String("sound_family", &d.SoundFamily)
}

func (d *AvatarDesc2017) Common() AvatarCommon {
	c := d.AvatarDesc2016.Common()
	c.SoundFamily = d.SoundFamily
	return c
}

// AvatarDesc2019 is the avatar layout of JD2019, which links alternative
// avatars to a main avatar.
type AvatarDesc2019 struct {
	AvatarDesc2017
	StatusLocked       uint32
	MainAvatarID       uint32
	CountInProgression bool
	UsedAsCoachMapName string
	UsedAsCoachCoachID uint32
}

func (d *AvatarDesc2019) Fields(s ubiart.TextSerializer) {
	d.AvatarDesc2017.Fields(s)
	s.Uint32("StatusLocked", &d.StatusLocked)
	s.Uint32("MainAvatar_ID", &d.MainAvatarID)
	s.Bool("CountInProgression", &d.CountInProgression)
	s.String("UsedAsCoach_MapName", &d.UsedAsCoachMapName)
	s.Uint32("UsedAsCoach_CoachId", &d.UsedAsCoachCoachID)
}

// AvatarDesc2020 is the avatar layout of JD2020 through JD2022.
type AvatarDesc2020 struct {
	AvatarDesc2019
	SpecialEffect bool
	Guid          string
}

func (d *AvatarDesc2020) Fields(s ubiart.TextSerializer) {
	d.AvatarDesc2019.Fields(s)
	s.Bool("specialEffect", &d.SpecialEffect)
	s.String("guid", &d.Guid)
}

// NewAvatarLayout returns an empty avatar layout of the given release.
func NewAvatarLayout(r ubiart.Release) (AvatarLayout, error) {
	switch r {
	case ubiart.JD2016:
		return new(AvatarDesc2016), nil
	case ubiart.JD2017, ubiart.JD2018:
		return new(AvatarDesc2017), nil
	case ubiart.JD2019:
		return new(AvatarDesc2019), nil
	case ubiart.JD2020, ubiart.JD2021, ubiart.JD2022:
		return new(AvatarDesc2020), nil
	}
	return nil, errors.UnsupportedRelease{Release: r.String(), What: "avatar descriptor"}
}

// Numeric unlock codes and their canonical policy, per layout generation.
var (
	unlockCodesOld = map[uint32]ubiart.UnlockKind{
		0: ubiart.UnlockDefault,
		1: ubiart.UnlockPlaySong,
		2: ubiart.UnlockGift,
		3: ubiart.UnlockAccount,
		4: ubiart.UnlockQuest,
		5: ubiart.UnlockWDF,
	}
	unlockCodesNew = map[uint32]ubiart.UnlockKind{
		0: ubiart.UnlockDefault,
		1: ubiart.UnlockGift,
		2: ubiart.UnlockPlaySong,
		3: ubiart.UnlockObjective,
		4: ubiart.UnlockAccount,
		5: ubiart.UnlockQuest,
		6: ubiart.UnlockWDF,
		7: ubiart.UnlockSubscription,
	}
)

func unlockCodes(r ubiart.Release) map[uint32]ubiart.UnlockKind {
	if r >= ubiart.JD2020 {
		return unlockCodesNew
	}
	return unlockCodesOld
}

func componentTag(c *ubiart.AvatarDescComponent) *xml.Tag {
	t := xml.NewTag(c.ComponentKind())
	for _, a := range c.Attr {
		t.Attr = append(t.Attr, xml.Attr{Name: a.Name, Value: a.Value})
	}
	return t
}

// DecodeAvatar decodes the layout of the release from the attributes of an
// avatar component. An attribute the layout does not have is a structural
// mismatch, as it indicates data of another release.
func (n *Normalizer) DecodeAvatar(c *ubiart.AvatarDescComponent) (AvatarLayout, error) {
	if err := n.check("avatar descriptor"); err != nil {
		return nil, err
	}
	layout, err := NewAvatarLayout(n.Release)
	if err != nil {
		return nil, err
	}
	var rest []ubiart.Attr
	if err := isc.ReadFields(componentTag(c), func(s ubiart.TextSerializer) {
		layout.Fields(s)
		s.Attrs(&rest)
	}); err != nil {
		return nil, errors.Wrapf(err, "%s avatar descriptor", n.Release)
	}
	if len(rest) > 0 {
		return nil, errors.Wrapf(errors.ErrStructuralMismatch,
			"%s avatar descriptor has no field %q", n.Release, rest[0].Name)
	}
	return layout, nil
}

// Unlock resolves the canonical unlock policy of an avatar. An objective
// found by the lookup takes precedence over the numeric code.
func (n *Normalizer) Unlock(avatarID, code uint32) ubiart.UnlockType {
	u := ubiart.UnlockType{Code: code}
	if n.Objectives != nil {
		if id, ok := n.Objectives.AvatarObjective(avatarID); ok {
			u.Kind = ubiart.UnlockObjective
			u.Objective = id
			return u
		}
	}
	u.Kind = unlockCodes(n.Release)[code]
	return u
}

// Avatar converts an avatar component into the canonical descriptor.
// actorPath is the path of the actor template holding the component.
func (n *Normalizer) Avatar(c *ubiart.AvatarDescComponent, actorPath string) (ubiart.MinAvatarDesc, error) {
	layout, err := n.DecodeAvatar(c)
	if err != nil {
		return ubiart.MinAvatarDesc{}, err
	}
	common := layout.Common()
	return ubiart.MinAvatarDesc{
		AvatarID:    common.AvatarID,
		SoundFamily: common.SoundFamily,
		Status:      common.Status,
		UnlockType:  n.Unlock(common.AvatarID, common.UnlockType),
		ActorPath:   actorPath,
	}, nil
}

// AvatarFromActor converts the avatar component of an actor into the
// canonical descriptor.
func (n *Normalizer) AvatarFromActor(a *ubiart.Actor) (ubiart.MinAvatarDesc, error) {
	c, ok := a.Component("JD_AvatarDescComponent").(*ubiart.AvatarDescComponent)
	if !ok {
		return ubiart.MinAvatarDesc{}, errors.Errorf("actor %q has no avatar descriptor", a.UserFriendly)
	}
	return n.Avatar(c, a.Lua)
}

// AvatarDesc2020FromCanonical converts a canonical descriptor into the
// layout of JD2020 and later. Fields the canonical descriptor lacks are left
// at their defaults, except the main avatar, which is the avatar itself.
func AvatarDesc2020FromCanonical(m ubiart.MinAvatarDesc) *AvatarDesc2020 {
	d := new(AvatarDesc2020)
	d.JdVersion = 2020
	d.AvatarID = m.AvatarID
	d.MainAvatarID = m.AvatarID
	d.SoundFamily = m.SoundFamily
	d.Status = m.Status
	d.CountInProgression = true
	d.UnlockType = m.UnlockType.Code
	if m.UnlockType.Kind != ubiart.UnlockUnknown {
		for code, kind := range unlockCodesNew {
			if kind == m.UnlockType.Kind {
				d.UnlockType = code
				break
			}
		}
	}
	return d
}

// EncodeAvatar converts a layout back into an avatar component.
func EncodeAvatar(layout AvatarLayout) (*ubiart.AvatarDescComponent, error) {
	t, err := isc.WriteFields("JD_AvatarDescComponent", layout.Fields)
	if err != nil {
		return nil, err
	}
	c := new(ubiart.AvatarDescComponent)
	for _, a := range t.Attr {
		c.Attr = append(c.Attr, ubiart.Attr{Name: a.Name, Value: a.Value})
	}
	return c, nil
}
