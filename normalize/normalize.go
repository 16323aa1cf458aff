// Package normalize converts the release-specific layouts of avatar and
// objective descriptors into the canonical types of the ubiart package, and
// back where a release still needs them.
//
// Every entry point takes the release that produced the data, which selects
// the expected layout and the tables applied to it. Data from a release
// without a matching layout is an UnsupportedRelease error.
package normalize

import (
	"github.com/rs/zerolog"

	ubiart "github.com/Kriskras99/ferris-dancing-sub001"
	"github.com/Kriskras99/ferris-dancing-sub001/errors"
)

// ObjectiveLookup resolves the objective that unlocks an avatar.
type ObjectiveLookup interface {
	// AvatarObjective returns the id of the objective that unlocks the
	// avatar, and whether there is one.
	AvatarObjective(avatarID uint32) (objective string, ok bool)
}

// ObjectiveMap is an ObjectiveLookup backed by a map of avatar ids to
// objective ids.
type ObjectiveMap map[uint32]string

func (m ObjectiveMap) AvatarObjective(avatarID uint32) (string, bool) {
	id, ok := m[avatarID]
	return id, ok
}

// Normalizer converts descriptors of one release.
type Normalizer struct {
	Release ubiart.Release

	// Objectives resolves the unlock objectives of avatars. If nil, unlock
	// types are resolved from their numeric code only.
	Objectives ObjectiveLookup

	// Logger receives a line for every lossy conversion. If nil, nothing is
	// logged.
	Logger *zerolog.Logger
}

func (n *Normalizer) log() *zerolog.Logger {
	if n.Logger == nil {
		l := zerolog.Nop()
		return &l
	}
	return n.Logger
}

// check returns an error if the release of n is not valid.
func (n *Normalizer) check(what string) error {
	if !n.Release.Valid() {
		return errors.UnsupportedRelease{Release: n.Release.String(), What: what}
	}
	return nil
}
