// Package provision creates the on-disk layout of placeholder block
// textures: one directory per category, each holding a single flat-colour
// PNG. Existing files are never touched, so running it again is a no-op.
package provision

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/aellingwood/texgen/internal/config"
	"github.com/aellingwood/texgen/internal/palette"
	"github.com/aellingwood/texgen/internal/texture"
	"github.com/sirupsen/logrus"
)

// ErrIncomplete is wrapped by Report.Err when at least one category failed.
var ErrIncomplete = errors.New("provisioning incomplete")

// Provisioner ensures a texture exists for every entry of a palette table.
type Provisioner struct {
	fsys Filesystem
	cfg  *config.Config
	log  logrus.FieldLogger
}

// Report lists what a Provision run did, in table order.
type Report struct {
	DirsCreated []string
	Created     []string
	Skipped     []string
	Failures    []Failure
}

// Failure records a category that could not be provisioned.
type Failure struct {
	Category string
	Err      error
}

func (f Failure) Error() string {
	return fmt.Sprintf("%s: %v", f.Category, f.Err)
}

// Err returns nil when every category succeeded, otherwise an error wrapping
// ErrIncomplete that lists each failure.
func (r *Report) Err() error {
	if len(r.Failures) == 0 {
		return nil
	}
	msgs := make([]string, len(r.Failures))
	for i, f := range r.Failures {
		msgs[i] = f.Error()
	}
	return fmt.Errorf("%w: %d failed: %s", ErrIncomplete, len(r.Failures), strings.Join(msgs, "; "))
}

// New creates a Provisioner writing through fsys according to cfg. A nil log
// discards all output.
func New(fsys Filesystem, cfg *config.Config, log logrus.FieldLogger) *Provisioner {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Provisioner{fsys: fsys, cfg: cfg, log: log}
}

// Provision walks table in order and, for each entry, creates the category
// directory and its texture file if they are missing. A failure on one entry
// is recorded in the report and does not stop the others. The returned error
// is only non-nil when table itself is invalid.
func (p *Provisioner) Provision(table palette.Table) (*Report, error) {
	if err := table.Validate(); err != nil {
		return nil, err
	}

	r := &Report{}
	for _, e := range table {
		if err := p.provisionEntry(e, r); err != nil {
			p.log.WithFields(logrus.Fields{
				"category": e.Name,
				"error":    err,
			}).Error("failed to provision texture")
			r.Failures = append(r.Failures, Failure{Category: e.Name, Err: err})
		}
	}
	return r, nil
}

func (p *Provisioner) provisionEntry(e palette.Entry, r *Report) error {
	log := p.log.WithField("category", e.Name)

	dir := p.cfg.BlockDir(e.Name)
	info, err := p.fsys.Stat(dir)
	switch {
	case err == nil && !info.IsDir():
		return fmt.Errorf("%q exists and is not a directory", dir)
	case errors.Is(err, fs.ErrNotExist):
		if err := p.fsys.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating directory %q: %w", dir, err)
		}
		r.DirsCreated = append(r.DirsCreated, dir)
		log.WithField("path", dir).Info("created directory")
	case err != nil:
		return fmt.Errorf("checking directory %q: %w", dir, err)
	}

	path := p.cfg.TexturePath(e.Name)
	info, err = p.fsys.Stat(path)
	switch {
	case err == nil && info.IsDir():
		return fmt.Errorf("%q exists and is a directory", path)
	case err == nil:
		r.Skipped = append(r.Skipped, path)
		log.WithField("path", path).Info("skipping texture (already exists)")
		return nil
	case !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("checking texture %q: %w", path, err)
	}

	created, err := p.writeTexture(path, e)
	if err != nil {
		return err
	}
	if !created {
		r.Skipped = append(r.Skipped, path)
		log.WithField("path", path).Info("skipping texture (already exists)")
		return nil
	}

	r.Created = append(r.Created, path)
	log.WithFields(logrus.Fields{
		"path":  path,
		"color": palette.Hex(e.Color),
	}).Info("created texture")
	return nil
}

// writeTexture encodes the fill for e and writes it to path. The file is
// opened exclusively; if another writer created it first, writeTexture
// returns false without error and leaves it alone.
func (p *Provisioner) writeTexture(path string, e palette.Entry) (bool, error) {
	var buf bytes.Buffer
	if err := texture.Encode(&buf, texture.Fill(p.cfg.Size, e.Color)); err != nil {
		return false, fmt.Errorf("encoding texture for %q: %w", e.Name, err)
	}

	f, err := p.fsys.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, fs.ErrExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("creating texture %q: %w", path, err)
	}

	if _, err := f.Write(buf.Bytes()); err != nil {
		f.Close()
		p.removePartial(path)
		return false, fmt.Errorf("writing texture %q: %w", path, err)
	}
	if err := f.Close(); err != nil {
		p.removePartial(path)
		return false, fmt.Errorf("writing texture %q: %w", path, err)
	}

	p.log.WithFields(logrus.Fields{
		"path":  path,
		"bytes": buf.Len(),
	}).Debug("wrote png")
	return true, nil
}

// removePartial deletes a half-written texture so the next run retries it
// instead of skipping it.
func (p *Provisioner) removePartial(path string) {
	if err := p.fsys.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		p.log.WithFields(logrus.Fields{
			"path":  path,
			"error": err,
		}).Warn("could not remove partial texture")
	}
}
