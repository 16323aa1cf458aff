package main

import (
	"encoding/json"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	ubiart "github.com/Kriskras99/ferris-dancing-sub001"
	"github.com/Kriskras99/ferris-dancing-sub001/errors"
	"github.com/Kriskras99/ferris-dancing-sub001/xml"
)

// Stats summarizes the tapes of a directory.
type Stats struct {
	// Number of tapes decoded.
	TapeCount int

	// Number of tapes that failed to decode.
	FailedCount int

	// Number of clips overall.
	ClipCount int

	// Number of clips per kind.
	ClipKindCount map[string]int

	// Number of failed tapes per error category.
	FailureCount map[string]int `json:",omitempty"`

	// Tapes with the most clips.
	LargestTapes TapeSizes `json:",omitempty"`
}

type TapeSize struct {
	Path  string
	Clips int
}

type TapeSizes []TapeSize

func (t TapeSizes) MarshalJSON() ([]byte, error) {
	list := append([]TapeSize(nil), t...)
	sort.Slice(list, func(i, j int) bool {
		if list[i].Clips != list[j].Clips {
			return list[i].Clips > list[j].Clips
		}
		return list[i].Path < list[j].Path
	})
	if len(list) > 20 {
		list = list[:20]
	}
	return json.Marshal([]TapeSize(list))
}

var failureCategories = []struct {
	name string
	err  error
}{
	{"StructuralMismatch", errors.ErrStructuralMismatch},
	{"UnknownDiscriminant", errors.ErrUnknownDiscriminant},
	{"TagShape", errors.ErrTagShape},
	{"UnsupportedVariant", errors.ErrUnsupportedVariant},
	{"UnsupportedRelease", errors.ErrUnsupportedRelease},
}

func failureCategory(err error) string {
	for _, c := range failureCategories {
		if errors.Is(err, c.err) {
			return c.name
		}
	}
	return "Other"
}

// Add records a decoded tape, or the error that prevented its decoding.
func (s *Stats) Add(path string, tape *ubiart.Tape, err error) {
	if err != nil {
		s.FailedCount++
		if s.FailureCount == nil {
			s.FailureCount = map[string]int{}
		}
		s.FailureCount[failureCategory(err)]++
		return
	}
	s.TapeCount++
	s.ClipCount += len(tape.Clips)
	if s.ClipKindCount == nil {
		s.ClipKindCount = map[string]int{}
	}
	for _, c := range tape.Clips {
		s.ClipKindCount[c.ClipKind().String()]++
	}
	s.LargestTapes = append(s.LargestTapes, TapeSize{Path: path, Clips: len(tape.Clips)})
}

// isTape returns whether name is a cooked tape of any flavor.
func isTape(name string) bool {
	name = strings.ToLower(name)
	return strings.HasSuffix(name, "tape.ckd")
}

func newStatCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stat [DIR]",
		Short: "print statistics for the cooked tapes below a directory",
		Long: `Stat decodes every cooked tape below DIR, relative to the data root, and
prints statistics for them as JSON. Tapes that fail to decode are counted
per error category rather than stopping the run.
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			names, err := a.fs.List(dir, ".ckd")
			if err != nil {
				return err
			}
			var tapes []string
			for _, name := range names {
				if isTape(name) {
					tapes = append(tapes, name)
				}
			}

			var (
				mu    sync.Mutex
				stats Stats
			)
			err = a.forEach(cmd.Context(), tapes, func(name string) error {
				tape, err := a.decodeTape(name)
				if err != nil {
					a.log.Warn().Str("file", name).Err(err).Msg("skipped")
				}
				mu.Lock()
				stats.Add(name, tape, err)
				mu.Unlock()
				return nil
			})
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "\t")
			return enc.Encode(&stats)
		},
	}
}

// writeDocument writes doc to the host file at path.
func writeDocument(path string, doc *xml.Document) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := doc.WriteTo(f); err != nil {
		f.Close()
		return errors.Wrapf(err, "%s", path)
	}
	return f.Close()
}
