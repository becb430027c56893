package history

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestRoundTrip(t *testing.T) {
	c := qt.New(t)

	dir := t.TempDir()
	c.Setenv("HOME", dir)
	c.Setenv("USERPROFILE", dir)

	err := Load(func(r io.Reader) (int, error) {
		c.Fatalf("read called without a history file")

		return 0, nil
	})
	c.Assert(err, qt.IsNil)

	err = Save(func(w io.Writer) (int, error) {
		return io.WriteString(w, "123+456\n:hex\n")
	})
	c.Assert(err, qt.IsNil)

	_, err = os.Stat(filepath.Join(dir, Name))
	c.Assert(err, qt.IsNil)

	var b bytes.Buffer

	err = Load(func(r io.Reader) (int, error) {
		n, err := b.ReadFrom(r)

		return int(n), err
	})
	c.Assert(err, qt.IsNil)
	c.Assert(strings.Split(strings.TrimSpace(b.String()), "\n"), qt.DeepEquals, []string{"123+456", ":hex"})
}
