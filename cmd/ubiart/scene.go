package main

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	ubiart "github.com/Kriskras99/ferris-dancing-sub001"
	"github.com/Kriskras99/ferris-dancing-sub001/errors"
	"github.com/Kriskras99/ferris-dancing-sub001/isc"
	"github.com/Kriskras99/ferris-dancing-sub001/vfs"
)

func (a *app) decodeScene(name string) (*ubiart.Scene, error) {
	if cooked(name) {
		return nil, errors.Errorf("%s: cooked scenes are not supported", name)
	}
	b, err := vfs.ReadFile(a.fs, name)
	if err != nil {
		return nil, err
	}
	scene, warn, err := isc.Decoder{}.DecodeScene(bytes.NewReader(b))
	if err != nil {
		return nil, errors.Wrapf(err, "%s", name)
	}
	a.warn(name, warn)
	return scene, nil
}

func newSceneCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scene",
		Short: "decode scenes",
	}
	var tree bool
	dump := &cobra.Command{
		Use:   "dump FILE",
		Short: "print the decoded contents of a scene",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scene, err := a.decodeScene(args[0])
			if err != nil {
				return err
			}
			if !tree {
				dumper.Fdump(cmd.OutOrStdout(), scene)
				return nil
			}
			scene.Walk(func(path []string, sa ubiart.SceneActor) bool {
				base := sa.Base()
				kinds := make([]string, len(base.Components))
				for i, c := range base.Components {
					kinds[i] = c.ComponentKind()
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s%s %q [%s]\n",
					strings.Repeat("\t", len(path)), sa.ActorKind(), base.UserFriendly, strings.Join(kinds, ", "))
				return true
			})
			return nil
		},
	}
	dump.Flags().BoolVar(&tree, "tree", false, "print only the actor tree and component kinds")
	cmd.AddCommand(dump)
	return cmd
}
