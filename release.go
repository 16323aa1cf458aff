// The ubiart package holds the canonical object model of UbiArt game assets,
// as shipped in the Just Dance series.
//
// Assets exist in two physical encodings: a compact big-endian "cooked"
// encoding used by the shipped game, and an XML encoding used by the
// engine's editor. Both describe the same logical model. A Scene contains an
// ordered list of actors, each composed of typed Components. A Tape is a
// timeline containing an ordered list of Clips, many of which animate values
// through BezierCurves.
//
// The sub-packages "ckd" and "isc" provide the binary and XML codecs. The
// "normalize" package converts release-specific descriptor layouts into the
// canonical avatar and objective types defined here. Scenes and tapes can be
// created manually with the "declare" sub-package.
package ubiart

import (
	"strings"

	"github.com/Kriskras99/ferris-dancing-sub001/errors"
)

// Release identifies a shipped game. The physical layout of some entities
// depends on the release that produced them.
type Release uint8

const (
	ReleaseInvalid Release = iota
	JD2016
	JD2017
	JD2018
	JD2019
	JD2020
	JD2021
	JD2022
)

var releaseStrings = map[Release]string{
	JD2016: "jd2016",
	JD2017: "jd2017",
	JD2018: "jd2018",
	JD2019: "jd2019",
	JD2020: "jd2020",
	JD2021: "jd2021",
	JD2022: "jd2022",
}

// String returns the short name of the release, such as "jd2019".
func (r Release) String() string {
	if s, ok := releaseStrings[r]; ok {
		return s
	}
	return "invalid"
}

// Valid returns whether r is a known release.
func (r Release) Valid() bool {
	_, ok := releaseStrings[r]
	return ok
}

// Releases returns every known release, oldest first.
func Releases() []Release {
	return []Release{JD2016, JD2017, JD2018, JD2019, JD2020, JD2021, JD2022}
}

// ParseRelease returns the release identified by s. Case is ignored, and the
// separator between the series and the year is optional, so "JD 2019",
// "jd-2019" and "jd2019" all refer to JD2019. An unrecognized name results
// in an UnsupportedRelease error.
func ParseRelease(s string) (Release, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.NewReplacer(" ", "", "-", "", "_", "").Replace(name)
	for r, rs := range releaseStrings {
		if rs == name {
			return r, nil
		}
	}
	return ReleaseInvalid, errors.UnsupportedRelease{Release: s}
}

// Platform returns the name of the platform directory that cooked files of
// the release are stored under.
func (r Release) Platform() string {
	if r == JD2016 {
		return "wiiu"
	}
	return "nx"
}
