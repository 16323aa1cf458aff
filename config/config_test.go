package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-quicktest/qt"
	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"

	ubiart "github.com/Kriskras99/ferris-dancing-sub001"
	"github.com/Kriskras99/ferris-dancing-sub001/errors"
)

func TestParse(t *testing.T) {
	c, err := Parse([]byte(`
release: JD 2019
root: /data/jd2019
log_level: debug
workers: 4
`))
	qt.Assert(t, qt.IsNil(err))
	want := Config{
		Release:  "JD 2019",
		Root:     "/data/jd2019",
		Encoding: "ISO-8859-1",
		LogLevel: "debug",
		Workers:  4,
	}
	if diff := cmp.Diff(want, c); diff != "" {
		t.Errorf("unexpected config (-want +got):\n%s", diff)
	}

	r, err := c.ParseRelease()
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(r, ubiart.JD2019))

	l, err := c.Level()
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(l, zerolog.DebugLevel))
	qt.Assert(t, qt.Equals(c.WorkerCount(), 4))
}

func TestParseEmpty(t *testing.T) {
	c, err := Parse(nil)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(c, Default()))
	qt.Assert(t, qt.IsTrue(c.WorkerCount() > 0))
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte("release: jd2015\n"))
	qt.Assert(t, qt.ErrorIs(err, errors.ErrUnsupportedRelease))

	_, err = Parse([]byte("encoding: klingon\n"))
	qt.Assert(t, qt.ErrorMatches(err, `unsupported encoding "klingon"`))

	_, err = Parse([]byte("colour: red\n"))
	qt.Assert(t, qt.ErrorMatches(err, `(?s)parse config: .*colour.*`))

	_, err = Parse([]byte("workers: -1\n"))
	qt.Assert(t, qt.ErrorMatches(err, `negative worker count -1`))
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ubiart.yaml")
	qt.Assert(t, qt.IsNil(os.WriteFile(path, []byte("encoding: windows-1252\n"), 0o644)))
	c, err := Load(path)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(c.Encoding, "windows-1252"))

	b, err := c.Marshal()
	qt.Assert(t, qt.IsNil(err))
	again, err := Parse(b)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(again, c))
}
