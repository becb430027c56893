// Released under an MIT license. See LICENSE.

// Package history provides persistence for the line editor's history.
package history

import (
	"io"
	"os"

	"github.com/juju/errors"
)

// Load passes the history file to read. A missing file is not an error.
func Load(read func(r io.Reader) (int, error)) error {
	f, err := file(os.Open)
	if os.IsNotExist(errors.Cause(err)) {
		return nil
	} else if err != nil {
		return err
	}

	_, err = read(f)
	if err != nil {
		f.Close()

		return errors.Annotatef(err, "reading %s", f.Name())
	}

	return errors.Trace(f.Close())
}

// Save passes a freshly truncated history file to write.
func Save(write func(w io.Writer) (int, error)) error {
	f, err := file(os.Create)
	if err != nil {
		return err
	}

	_, err = write(f)
	if err != nil {
		f.Close()

		return errors.Annotatef(err, "writing %s", f.Name())
	}

	return errors.Trace(f.Close())
}
