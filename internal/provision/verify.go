package provision

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/aellingwood/texgen/internal/palette"
	"github.com/aellingwood/texgen/internal/texture"
)

// Status is the outcome of checking one category's texture.
type Status string

const (
	StatusOK       Status = "ok"
	StatusMissing  Status = "missing"
	StatusMismatch Status = "mismatch"
)

// Result describes the texture found for one category.
type Result struct {
	Category string
	Path     string
	Status   Status
	Hash     string // SHA-256 of the file; empty when missing
	Err      error  // why the file is missing or mismatched
}

// Verify checks, without writing anything, that every entry of table has a
// texture decoding to the exact uniform fill at the configured size. A texture
// that exists but differs (for example real artwork that replaced the
// placeholder) is reported as StatusMismatch.
func (p *Provisioner) Verify(table palette.Table) ([]Result, error) {
	if err := table.Validate(); err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(table))
	for _, e := range table {
		results = append(results, p.verifyEntry(e))
	}
	return results, nil
}

func (p *Provisioner) verifyEntry(e palette.Entry) Result {
	res := Result{Category: e.Name, Path: p.cfg.TexturePath(e.Name)}

	f, err := p.fsys.OpenFile(res.Path, os.O_RDONLY, 0)
	if err != nil {
		res.Status = StatusMissing
		if !errors.Is(err, fs.ErrNotExist) {
			res.Err = err
		}
		return res
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		res.Status = StatusMissing
		res.Err = fmt.Errorf("reading %q: %w", res.Path, err)
		return res
	}

	res.Hash, err = texture.Hash(bytes.NewReader(data))
	if err != nil {
		res.Status = StatusMissing
		res.Err = err
		return res
	}

	img, err := texture.Decode(bytes.NewReader(data))
	if err != nil {
		res.Status = StatusMismatch
		res.Err = err
		return res
	}
	if err := texture.CheckUniform(img, p.cfg.Size, e.Color); err != nil {
		res.Status = StatusMismatch
		res.Err = err
		return res
	}

	res.Status = StatusOK
	return res
}

// Healthy reports whether every result is StatusOK.
func Healthy(results []Result) bool {
	for _, r := range results {
		if r.Status != StatusOK {
			return false
		}
	}
	return true
}
