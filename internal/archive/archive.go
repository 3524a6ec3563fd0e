// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package archive

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
)

// Write writes all directories and regular files of fsys into a new cpio
// archive written to w.
//
// Entries are written in lexical order as walked by [fs.WalkDir]. The root
// directory itself is not part of the archive.
func Write(w io.Writer, fsys fs.FS) error {
	writer := NewCPIOWriter(w)

	err := fs.WalkDir(fsys, ".", func(
		path string,
		d fs.DirEntry,
		err error,
	) error {
		if err != nil {
			return err
		}

		if path == "." {
			return nil
		}

		if d.IsDir() {
			return writer.WriteDirectory(path)
		}

		return writeRegular(writer, fsys, path)
	})
	if err != nil {
		return errors.Join(fmt.Errorf("walk: %w", err), writer.Close())
	}

	return writer.Close()
}

func writeRegular(writer *CPIOWriter, fsys fs.FS, path string) error {
	file, err := fsys.Open(path)
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}
	defer file.Close()

	return writer.WriteRegular(path, file)
}
