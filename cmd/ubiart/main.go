// The ubiart command decodes, converts and inspects the scenes, tapes and
// descriptors of an unpacked game.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	ubiart "github.com/Kriskras99/ferris-dancing-sub001"
	"github.com/Kriskras99/ferris-dancing-sub001/config"
	"github.com/Kriskras99/ferris-dancing-sub001/vfs"
)

// app holds the state shared by every command of a run.
type app struct {
	configPath string
	config     config.Config
	release    ubiart.Release
	fs         vfs.Dir
	log        zerolog.Logger
}

func (a *app) load(cmd *cobra.Command) error {
	c := config.Default()
	if a.configPath != "" {
		var err error
		if c, err = config.Load(a.configPath); err != nil {
			return err
		}
	}
	flags := cmd.Flags()
	if flags.Changed("release") {
		c.Release, _ = flags.GetString("release")
	}
	if flags.Changed("root") {
		c.Root, _ = flags.GetString("root")
	}
	if flags.Changed("encoding") {
		c.Encoding, _ = flags.GetString("encoding")
	}
	if flags.Changed("log-level") {
		c.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("workers") {
		c.Workers, _ = flags.GetInt("workers")
	}
	if err := c.Validate(); err != nil {
		return err
	}
	a.config = c
	a.release, _ = c.ParseRelease()
	a.fs = vfs.Dir(c.Root)
	level, _ := c.Level()
	a.log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Str("release", a.release.String()).
		Logger()
	return nil
}

func newRootCmd() *cobra.Command {
	a := &app{}
	def := config.Default()
	cmd := &cobra.Command{
		Use:   "ubiart",
		Short: "inspect and convert UbiArt assets",
		Long: `Ubiart decodes the scenes, tapes and descriptors of an unpacked game.

Paths are relative to the root of the game data. Settings are read from the
file given with --config, and may be overridden with flags.
`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
	}
	flags := cmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "YAML settings file")
	flags.String("release", def.Release, "release that produced the data")
	flags.String("root", def.Root, "directory of the unpacked game data")
	flags.String("encoding", def.Encoding, "character set of written XML documents")
	flags.String("log-level", def.LogLevel, "minimum level of logged lines")
	flags.Int("workers", def.Workers, "number of files processed concurrently (0 for one per CPU)")

	cmd.AddCommand(
		newTapeCmd(a),
		newSceneCmd(a),
		newAvatarsCmd(a),
		newObjectivesCmd(a),
		newStatCmd(a),
	)
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
