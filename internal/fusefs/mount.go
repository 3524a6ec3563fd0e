// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package fusefs

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aibor/projson/internal/provider"
	"github.com/hanwen/go-fuse/v2/fs"
	"github.com/hanwen/go-fuse/v2/fuse"
)

// DefaultName is the file system name shown in the mount table if none is
// configured.
const DefaultName = "projson"

// Config is the configuration for a mount.
type Config struct {
	// Name of the file system as shown in the mount table.
	Name string

	// Debug enables logging of every FUSE request by go-fuse.
	Debug bool

	// AllowOther allows other users to access the mount. Requires
	// "user_allow_other" in /etc/fuse.conf for non-root users.
	AllowOther bool

	// Timeout for the kernel's entry and attribute caches. The tree never
	// changes while mounted.
	Timeout time.Duration
}

// Server is a mounted file system served in the background.
type Server struct {
	server *fuse.Server
	dir    string
}

// Mount mounts the projection of the tree served by p read-only at dir.
//
// The file system is served in the background until [Server.Unmount] is
// called or the file system is unmounted externally.
func Mount(dir string, p *provider.Provider, cfg Config) (*Server, error) {
	name := cfg.Name
	if name == "" {
		name = DefaultName
	}

	timeout := cfg.Timeout

	options := &fs.Options{
		MountOptions: fuse.MountOptions{
			Name:       name,
			FsName:     name,
			Debug:      cfg.Debug,
			AllowOther: cfg.AllowOther,
			Options:    []string{"ro"},
		},
		EntryTimeout:    &timeout,
		AttrTimeout:     &timeout,
		NegativeTimeout: &timeout,
	}

	server, err := fs.Mount(dir, newRoot(p, time.Now()), options)
	if err != nil {
		return nil, fmt.Errorf("mount %s: %w", dir, err)
	}

	slog.Debug("Mounted", slog.String("dir", dir), slog.String("name", name))

	return &Server{
		server: server,
		dir:    dir,
	}, nil
}

// Dir returns the mount point.
func (s *Server) Dir() string {
	return s.dir
}

// Wait blocks until the file system is unmounted.
func (s *Server) Wait() {
	s.server.Wait()
}

// Unmount unmounts the file system and waits for the serve loop to finish.
//
// If the regular unmount fails, for example because the mount is busy, a
// forced unmount is attempted.
func (s *Server) Unmount() error {
	if err := s.server.Unmount(); err != nil {
		slog.Debug("Unmount failed, trying forced unmount",
			slog.String("dir", s.dir),
			slog.Any("error", err),
		)

		if forceErr := forceUnmount(s.dir); forceErr != nil {
			return errors.Join(
				fmt.Errorf("unmount %s: %w", s.dir, err),
				fmt.Errorf("force unmount %s: %w", s.dir, forceErr),
			)
		}
	}

	s.server.Wait()

	return nil
}
