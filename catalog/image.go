package catalog

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/arloliu/catalog24x7/errs"
	"github.com/arloliu/catalog24x7/internal/hash"
	"github.com/arloliu/catalog24x7/internal/pagebuf"
	"github.com/arloliu/catalog24x7/section"
)

// FileName is the name of the catalog file written by WriteFile.
const FileName = "catalog.bin"

// Image is an assembled catalog, exactly section.ImageSize bytes long.
type Image struct {
	header section.CatalogHeader
	layout Layout
	data   []byte
}

// assemble writes the header page, the event section and the group section,
// each padded to a page boundary, then zero-fills to the fixed image size.
func assemble(header *section.CatalogHeader, layout Layout, events, groups [][]byte) (*Image, error) {
	hdr := header.Bytes()
	if len(hdr) > section.PageSize {
		return nil, errors.Wrapf(errs.ErrHeaderTooLarge, "%d bytes", len(hdr))
	}

	buf := pagebuf.New(section.ImageSize)
	if _, err := buf.Write(hdr); err != nil {
		return nil, err
	}
	if err := buf.Zero(section.PageSize - len(hdr)); err != nil {
		return nil, err
	}

	if err := writeSection(buf, events, layout.EventFill); err != nil {
		return nil, errors.Wrap(err, "event section")
	}
	if err := writeSection(buf, groups, layout.GroupFill); err != nil {
		return nil, errors.Wrap(err, "group section")
	}
	buf.Fill()

	return &Image{header: *header, layout: layout, data: buf.Bytes()}, nil
}

func writeSection(buf *pagebuf.Buffer, records [][]byte, fill int) error {
	for _, rec := range records {
		if _, err := buf.Write(rec); err != nil {
			return errors.Wrap(errs.ErrCatalogTooLarge, err.Error())
		}
	}
	n, err := buf.PadTo(section.PageSize)
	if err != nil {
		return errors.Wrap(errs.ErrCatalogTooLarge, err.Error())
	}
	if n != fill {
		return errors.Errorf("section fill is %d bytes, layout expects %d", n, fill)
	}

	return nil
}

// Header returns a copy of the catalog header.
func (img *Image) Header() *section.CatalogHeader {
	h := img.header
	return &h
}

// Layout returns the page layout of the image.
func (img *Image) Layout() Layout {
	return img.layout
}

// Bytes returns the image. The returned slice must not be modified.
func (img *Image) Bytes() []byte {
	return img.data
}

// Size returns the image size in bytes.
func (img *Image) Size() int {
	return len(img.data)
}

// Checksum returns the xxHash64 digest of the image.
func (img *Image) Checksum() uint64 {
	return hash.Checksum(img.data)
}

// WriteTo writes the image to w.
func (img *Image) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(img.data)
	return int64(n), err
}

// WriteFile writes the image to FileName inside dir and returns the file path.
//
// The image goes to a temporary file in dir first and is renamed into place,
// so a failed write never leaves a partial catalog behind.
func (img *Image) WriteFile(dir string) (string, error) {
	path := filepath.Join(dir, FileName)

	tmp, err := os.CreateTemp(dir, "."+FileName+".*")
	if err != nil {
		return "", errors.Wrapf(err, "create temporary file in %s", dir)
	}
	tmpName := tmp.Name()
	defer func() {
		if tmp != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := img.WriteTo(tmp); err != nil {
		return "", errors.Wrapf(err, "write %s", tmpName)
	}
	if err := tmp.Sync(); err != nil {
		return "", errors.Wrapf(err, "sync %s", tmpName)
	}
	if err := tmp.Chmod(0o644); err != nil {
		return "", errors.Wrapf(err, "chmod %s", tmpName)
	}
	if err := tmp.Close(); err != nil {
		tmp = nil
		_ = os.Remove(tmpName)

		return "", errors.Wrapf(err, "close %s", tmpName)
	}
	tmp = nil

	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return "", errors.Wrapf(err, "rename %s to %s", tmpName, path)
	}

	return path, nil
}
