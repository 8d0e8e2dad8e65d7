// Package archive produces the downloadable zip asset for a bundle.
package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
)

// ZipDirectory writes the regular files of src (non-recursive) into a zip
// archive at dest. Files are stored at the archive root, sorted by name so
// repeated runs produce identical archives.
func ZipDirectory(src, dest string) (err error) {
	entries, err := os.ReadDir(src)
	if err != nil {
		return fmt.Errorf("error reading bundle directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("error creating archive: %w", err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	zw := zip.NewWriter(out)
	for _, name := range names {
		if err := addFile(zw, filepath.Join(src, name), name); err != nil {
			_ = zw.Close()
			return err
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("error finalizing archive: %w", err)
	}
	return nil
}

func addFile(zw *zip.Writer, path, name string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("error opening %s: %w", path, err)
	}
	defer f.Close() // nolint:errcheck

	w, err := zw.Create(name)
	if err != nil {
		return fmt.Errorf("error adding %s to archive: %w", name, err)
	}

	if _, err := io.Copy(w, f); err != nil {
		return fmt.Errorf("error compressing %s: %w", name, err)
	}
	return nil
}
