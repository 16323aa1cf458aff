package main

import (
	"bytes"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	ubiart "github.com/Kriskras99/ferris-dancing-sub001"
	"github.com/Kriskras99/ferris-dancing-sub001/errors"
	"github.com/Kriskras99/ferris-dancing-sub001/normalize"
	"github.com/Kriskras99/ferris-dancing-sub001/vfs"
	"github.com/Kriskras99/ferris-dancing-sub001/xml"
)

func (a *app) normalizer() *normalize.Normalizer {
	return &normalize.Normalizer{Release: a.release, Logger: &a.log}
}

// avatarEntry is the printed form of a canonical avatar descriptor.
type avatarEntry struct {
	Actor       string `yaml:"actor"`
	AvatarID    uint32 `yaml:"avatar_id"`
	SoundFamily string `yaml:"sound_family,omitempty"`
	Status      uint32 `yaml:"status"`
	Unlock      string `yaml:"unlock"`
	UnlockCode  uint32 `yaml:"unlock_code"`
	Objective   string `yaml:"objective,omitempty"`
	Template    string `yaml:"template"`
}

func newAvatarsCmd(a *app) *cobra.Command {
	var objectives string
	cmd := &cobra.Command{
		Use:   "avatars SCENE",
		Short: "print the canonical avatar descriptors of a scene",
		Long: `Avatars decodes every actor of SCENE holding an avatar descriptor, and
prints the canonical descriptors as YAML.

With --objectives, unlock objectives are resolved from a YAML file mapping
avatar ids to objective ids.
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scene, err := a.decodeScene(args[0])
			if err != nil {
				return err
			}
			n := a.normalizer()
			if objectives != "" {
				b, err := vfs.ReadFile(a.fs, objectives)
				if err != nil {
					return err
				}
				var m normalize.ObjectiveMap
				if err := yaml.Unmarshal(b, &m); err != nil {
					return errors.Wrapf(err, "%s", objectives)
				}
				n.Objectives = m
			}

			var list []avatarEntry
			var walkErr error
			scene.Walk(func(path []string, sa ubiart.SceneActor) bool {
				actor := sa.Base()
				if actor.Component("JD_AvatarDescComponent") == nil {
					return true
				}
				desc, err := n.AvatarFromActor(actor)
				if err != nil {
					walkErr = errors.Wrapf(err, "actor %q", actor.UserFriendly)
					return false
				}
				list = append(list, avatarEntry{
					Actor:       actor.UserFriendly,
					AvatarID:    desc.AvatarID,
					SoundFamily: desc.SoundFamily,
					Status:      desc.Status,
					Unlock:      desc.UnlockType.Kind.String(),
					UnlockCode:  desc.UnlockType.Code,
					Objective:   desc.UnlockType.Objective,
					Template:    desc.ActorPath,
				})
				return true
			})
			if walkErr != nil {
				return walkErr
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			defer enc.Close()
			return enc.Encode(list)
		},
	}
	cmd.Flags().StringVar(&objectives, "objectives", "", "YAML file mapping avatar ids to objective ids")
	return cmd
}

func newObjectivesCmd(a *app) *cobra.Command {
	var convert string
	cmd := &cobra.Command{
		Use:   "objectives DATABASE",
		Short: "print the canonical objectives of an objectives database",
		Long: `Objectives decodes the objectives database DATABASE and prints the canonical
objectives. Objectives with a type that has no canonical equivalent are
kept as generic objectives, and a warning is logged for each.

With --convert, the objectives are instead written as a database of the
newest layout to the host file given.
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := vfs.ReadFile(a.fs, args[0])
			if err != nil {
				return err
			}
			doc := new(xml.Document)
			if _, err := doc.ReadFrom(bytes.NewReader(b)); err != nil {
				return errors.Wrapf(err, "%s", args[0])
			}
			list, warn, err := a.normalizer().Database(doc)
			if err != nil {
				return errors.Wrapf(err, "%s", args[0])
			}
			a.warn(args[0], warn)
			if convert == "" {
				dumper.Fdump(cmd.OutOrStdout(), list)
				return nil
			}
			out, err := normalize.ObjectivesDatabase(list)
			if err != nil {
				return err
			}
			out.Encoding = a.config.Encoding
			return writeDocument(convert, out)
		},
	}
	cmd.Flags().StringVar(&convert, "convert", "", "write a database of the newest layout to this file")
	return cmd
}
