// Package bundle packs a resolved product into a zstd compressed tar
// archive: the canonical descriptor followed by every target's sources.
package bundle

import (
	"archive/tar"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/klauspost/compress/zstd"

	"github.com/rawbytedev/vsl/internal/logging"
	"github.com/rawbytedev/vsl/manifest"
)

// ManifestName is the archive entry holding the descriptor.
const ManifestName = "manifest.yaml"

var (
	ErrNoManifest = errors.New("bundle has no manifest")
	ErrDuplicate  = errors.New("duplicate bundle entry")
)

// Options configures Write. The zero value compresses with
// zstd.SpeedBetterCompression and logs through the package logger.
type Options struct {
	Level  zstd.EncoderLevel
	Logger logging.Logger
}

func (o Options) level() zstd.EncoderLevel {
	if o.Level == 0 {
		return zstd.SpeedBetterCompression
	}
	return o.Level
}

func (o Options) logger() logging.Logger {
	if o.Logger == nil {
		return logging.Current()
	}
	return o.Logger
}

// Summary describes a written bundle.
type Summary struct {
	Product         string
	Files           int
	RawBytes        int64
	CompressedBytes int64
}

func (s Summary) String() string {
	return fmt.Sprintf("%s: %d files, %s -> %s",
		s.Product, s.Files, humanize.Bytes(uint64(s.RawBytes)), humanize.Bytes(uint64(s.CompressedBytes)))
}

// Entry is one file in a bundle.
type Entry struct {
	Name string
	Size int64
}

// epoch stamps every entry so equal inputs give equal archives.
var epoch = time.Unix(0, 0)

// Write resolves product in pkg and streams its bundle to w. Source paths
// are relative to root and stored under each target's source path.
func Write(w io.Writer, pkg *manifest.Package, root, product string, opts Options) (Summary, error) {
	sum := Summary{Product: product}
	res, err := pkg.Resolve(product)
	if err != nil {
		return sum, err
	}
	desc, err := manifest.Marshal(pkg, manifest.FormatYAML)
	if err != nil {
		return sum, err
	}
	log := opts.logger()

	cw := &countingWriter{w: w}
	enc, err := zstd.NewWriter(cw, zstd.WithEncoderLevel(opts.level()), zstd.WithEncoderConcurrency(1))
	if err != nil {
		return sum, err
	}
	tw := tar.NewWriter(enc)
	seen := make(map[string]bool)

	add := func(name string, size int64, body io.Reader) error {
		if seen[name] {
			return fmt.Errorf("%s: %w", name, ErrDuplicate)
		}
		seen[name] = true
		hdr := &tar.Header{
			Typeflag: tar.TypeReg,
			Name:     name,
			Mode:     0o644,
			Size:     size,
			ModTime:  epoch,
			Format:   tar.FormatPAX,
		}
		if err := tw.WriteHeader(hdr); err != nil {
			return err
		}
		n, err := io.Copy(tw, body)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		sum.Files++
		sum.RawBytes += n
		log.Tracef("bundle: %s (%d bytes)\n", name, n)
		return nil
	}

	err = func() error {
		if err := add(ManifestName, int64(len(desc)), bytes.NewReader(desc)); err != nil {
			return err
		}
		for _, t := range res.Targets {
			files, err := t.Sources(root)
			if err != nil {
				return err
			}
			log.Debugf("bundle: target %q has %d sources\n", t.Name, len(files))
			for _, rel := range files {
				if err := addFile(add, root, &t, rel); err != nil {
					return err
				}
			}
		}
		return tw.Close()
	}()
	if err != nil {
		enc.Close()
		return sum, err
	}
	if err := enc.Close(); err != nil {
		return sum, err
	}
	sum.CompressedBytes = cw.n
	log.Infof("bundle: %v\n", sum)
	return sum, nil
}

func addFile(add func(string, int64, io.Reader) error, root string, t *manifest.Target, rel string) error {
	src := filepath.Join(root, filepath.FromSlash(t.SourcePath()), filepath.FromSlash(rel))
	fd, err := os.Open(src)
	if err != nil {
		return err
	}
	defer fd.Close()
	info, err := fd.Stat()
	if err != nil {
		return err
	}
	return add(path.Join(t.SourcePath(), rel), info.Size(), fd)
}

// List returns the entries of a bundle in archive order.
func List(r io.Reader) ([]Entry, error) {
	var out []Entry
	err := walk(r, func(hdr *tar.Header, _ io.Reader) error {
		out = append(out, Entry{Name: hdr.Name, Size: hdr.Size})
		return nil
	})
	return out, err
}

// Read returns the descriptor stored in a bundle together with its entries.
func Read(r io.Reader) (*manifest.Package, []Entry, error) {
	var (
		pkg *manifest.Package
		out []Entry
	)
	err := walk(r, func(hdr *tar.Header, body io.Reader) error {
		out = append(out, Entry{Name: hdr.Name, Size: hdr.Size})
		if hdr.Name != ManifestName {
			return nil
		}
		data, err := io.ReadAll(body)
		if err != nil {
			return err
		}
		pkg, err = manifest.Parse(ManifestName, data)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	if pkg == nil {
		return nil, nil, ErrNoManifest
	}
	return pkg, out, nil
}

func walk(r io.Reader, fn func(*tar.Header, io.Reader) error) error {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return err
	}
	defer dec.Close()
	tr := tar.NewReader(dec)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("bundle: %w", err)
		}
		if err := fn(hdr, tr); err != nil {
			return err
		}
	}
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
