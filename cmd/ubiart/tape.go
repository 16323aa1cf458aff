package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	ubiart "github.com/Kriskras99/ferris-dancing-sub001"
	"github.com/Kriskras99/ferris-dancing-sub001/ckd"
	"github.com/Kriskras99/ferris-dancing-sub001/errors"
	"github.com/Kriskras99/ferris-dancing-sub001/isc"
	"github.com/Kriskras99/ferris-dancing-sub001/vfs"
)

var dumper = spew.ConfigState{
	Indent:                  "\t",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// cooked returns whether name is a file in the binary encoding.
func cooked(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), ".ckd")
}

func (a *app) warn(name string, warn error) {
	if warn != nil {
		a.log.Warn().Str("file", name).Err(warn).Msg("decoded with warnings")
	}
}

func (a *app) decodeTape(name string) (*ubiart.Tape, error) {
	b, err := vfs.ReadFile(a.fs, name)
	if err != nil {
		return nil, err
	}
	return a.decodeTapeBytes(name, b)
}

func (a *app) decodeTapeBytes(name string, b []byte) (tape *ubiart.Tape, err error) {
	var warn error
	if cooked(name) {
		tape, warn, err = ckd.Decoder{}.DecodeTape(bytes.NewReader(b))
	} else {
		tape, warn, err = isc.Decoder{}.DecodeTape(bytes.NewReader(b))
	}
	if err != nil {
		return nil, errors.Wrapf(err, "%s", name)
	}
	a.warn(name, warn)
	return tape, nil
}

// encodeTape writes tape to w in the encoding selected by the name of the
// output.
func (a *app) encodeTape(w io.Writer, name string, tape *ubiart.Tape) error {
	if cooked(name) {
		return ckd.Encoder{}.EncodeTape(w, tape)
	}
	warn, err := isc.Encoder{Encoding: a.config.Encoding, Indent: "\t"}.EncodeTape(w, tape)
	a.warn(name, warn)
	return err
}

// checkTape decodes and re-encodes a tape. A cooked tape must re-encode to
// the same bytes; a text tape must decode to the same value again.
func (a *app) checkTape(name string) error {
	b, err := vfs.ReadFile(a.fs, name)
	if err != nil {
		return err
	}
	tape, err := a.decodeTapeBytes(name, b)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := a.encodeTape(&buf, name, tape); err != nil {
		return errors.Wrapf(err, "%s", name)
	}
	if cooked(name) {
		if !bytes.Equal(b, buf.Bytes()) {
			return errors.Errorf("%s: re-encoded tape differs (%d bytes, was %d)", name, buf.Len(), len(b))
		}
		return nil
	}
	again, err := a.decodeTapeBytes(name, buf.Bytes())
	if err != nil {
		return err
	}
	if diff := cmp.Diff(tape, again); diff != "" {
		return errors.Errorf("%s: re-decoded tape differs (-first +second):\n%s", name, diff)
	}
	return nil
}

// forEach calls fn for every name, with at most the configured number of
// calls running at once. Every failure is logged; the first is returned.
func (a *app) forEach(ctx context.Context, names []string, fn func(name string) error) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.config.WorkerCount())
	for _, name := range names {
		name := name
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := fn(name); err != nil {
				a.log.Error().Str("file", name).Err(err).Msg("failed")
				return err
			}
			a.log.Debug().Str("file", name).Msg("ok")
			return nil
		})
	}
	return g.Wait()
}

func newTapeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tape",
		Short: "decode and convert tapes",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "dump FILE",
			Short: "print the decoded contents of a tape",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				tape, err := a.decodeTape(args[0])
				if err != nil {
					return err
				}
				dumper.Fdump(cmd.OutOrStdout(), tape)
				return nil
			},
		},
		&cobra.Command{
			Use:   "convert INPUT OUTPUT",
			Short: "convert a tape between the cooked and XML encodings",
			Long: `Convert decodes the tape INPUT, relative to the data root, and writes it to
the host file OUTPUT. Files ending in ".ckd" use the cooked encoding; any
other file uses the XML encoding.
`,
			Args: cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				tape, err := a.decodeTape(args[0])
				if err != nil {
					return err
				}
				f, err := os.Create(args[1])
				if err != nil {
					return err
				}
				if err := a.encodeTape(f, args[1], tape); err != nil {
					f.Close()
					return err
				}
				return f.Close()
			},
		},
		&cobra.Command{
			Use:   "check FILE...",
			Short: "verify that tapes survive a decode and encode",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.forEach(cmd.Context(), args, a.checkTape)
			},
		},
	)
	return cmd
}
