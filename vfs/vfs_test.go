package vfs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-quicktest/qt"

	ubiart "github.com/Kriskras99/ferris-dancing-sub001"
	"github.com/Kriskras99/ferris-dancing-sub001/errors"
)

func TestCookPath(t *testing.T) {
	tests := []struct {
		release ubiart.Release
		name    string
		want    string
	}{
		{ubiart.JD2016, "world/maps/rasputin/timeline/rasputin_tml_dance.dtape", "cache/itf_cooked/wiiu/world/maps/rasputin/timeline/rasputin_tml_dance.dtape.ckd"},
		{ubiart.JD2022, "world/maps/rasputin/rasputin_main_scene.isc", "cache/itf_cooked/nx/world/maps/rasputin/rasputin_main_scene.isc.ckd"},
		{ubiart.JD2019, "/world\\ui/../ui/menu.isc", "cache/itf_cooked/nx/world/ui/menu.isc.ckd"},
	}
	for _, test := range tests {
		qt.Check(t, qt.Equals(CookPath(test.release, test.name), test.want))
	}
}

func TestClean(t *testing.T) {
	got, err := Clean("a/./b/../c")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(got, "a/c"))

	got, err = Clean("../../etc/passwd")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(got, "etc/passwd"))

	_, err = Clean("..")
	qt.Assert(t, qt.ErrorIs(err, ErrOutsideRoot))
}

func TestMap(t *testing.T) {
	fs := Map{
		"world/a.tape": []byte("a"),
		"world/b.tape": []byte("b"),
		"world/c.isc":  []byte("c"),
	}
	b, err := ReadFile(fs, "/world/a.tape")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(string(b), "a"))

	_, err = fs.Open("world/missing.tape")
	qt.Assert(t, qt.ErrorIs(err, os.ErrNotExist))

	list, err := fs.List("world", ".tape")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.DeepEquals(list, []string{"world/a.tape", "world/b.tape"}))
}

func TestDir(t *testing.T) {
	root := t.TempDir()
	name := filepath.Join(root, "cache", "itf_cooked", "nx", "world", "x.tape.ckd")
	qt.Assert(t, qt.IsNil(os.MkdirAll(filepath.Dir(name), 0o755)))
	qt.Assert(t, qt.IsNil(os.WriteFile(name, []byte{1, 2}, 0o644)))

	f, err := OpenCooked(Dir(root), ubiart.JD2020, "world/x.tape")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsNil(f.Close()))

	list, err := Dir(root).List("cache", ".ckd")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.DeepEquals(list, []string{"cache/itf_cooked/nx/world/x.tape.ckd"}))

	_, err = Dir(root).Open("missing")
	qt.Assert(t, qt.ErrorIs(err, os.ErrNotExist))
	qt.Assert(t, qt.IsFalse(errors.Is(err, ErrOutsideRoot)))
}
