// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package fusefs

import (
	"context"
	"log/slog"
	"strings"
	"syscall"
	"time"

	"github.com/aibor/projson/internal/provider"
	"github.com/hanwen/go-fuse/v2/fs"
	"github.com/hanwen/go-fuse/v2/fuse"
	"golang.org/x/sys/unix"
)

const (
	dirMode     = syscall.S_IFDIR | 0o555
	regularMode = syscall.S_IFREG | 0o444
	blockSize   = 512
)

var (
	_ fs.InodeEmbedder = (*node)(nil)
	_ fs.NodeLookuper  = (*node)(nil)
	_ fs.NodeReaddirer = (*node)(nil)
	_ fs.NodeGetattrer = (*node)(nil)
	_ fs.NodeOpener    = (*node)(nil)
	_ fs.NodeReader    = (*node)(nil)
)

// fileSystem is shared by all nodes of a mount.
type fileSystem struct {
	provider *provider.Provider
	owner    fuse.Owner
	time     time.Time
}

type node struct {
	fs.Inode

	fsys  *fileSystem
	path  provider.Path
	entry provider.Entry
}

func newRoot(p *provider.Provider, mountTime time.Time) *node {
	return &node{
		fsys: &fileSystem{
			provider: p,
			owner: fuse.Owner{
				Uid: uint32(unix.Getuid()), //nolint:gosec
				Gid: uint32(unix.Getgid()), //nolint:gosec
			},
			time: mountTime,
		},
		path: provider.Path{},
		// The root is always a directory, even if the document is a scalar.
		entry: provider.Entry{Kind: provider.KindDirectory},
	}
}

func (n *node) child(name string) (*node, syscall.Errno) {
	if !validName(name) {
		return nil, syscall.ENOENT
	}

	path := n.path.Join(name)

	entry, err := n.fsys.provider.StatPath(path)
	if err != nil {
		return nil, toErrno(err)
	}

	return &node{
		fsys:  n.fsys,
		path:  path,
		entry: entry,
	}, 0
}

// Lookup implements [fs.NodeLookuper].
func (n *node) Lookup(
	ctx context.Context,
	name string,
	out *fuse.EntryOut,
) (*fs.Inode, syscall.Errno) {
	child, errno := n.child(name)
	if errno != 0 {
		return nil, errno
	}

	child.fillAttr(&out.Attr)

	stable := fs.StableAttr{Mode: fileMode(child.entry) & syscall.S_IFMT}

	return n.NewInode(ctx, child, stable), 0
}

// Readdir implements [fs.NodeReaddirer].
func (n *node) Readdir(_ context.Context) (fs.DirStream, syscall.Errno) {
	children := n.fsys.provider.ListPath(n.path)
	entries := make([]fuse.DirEntry, 0, len(children))

	for _, child := range children {
		if !validName(child.Name) {
			slog.Debug("Skip entry with invalid name",
				slog.String("dir", n.path.String()),
				slog.String("name", child.Name),
			)

			continue
		}

		entries = append(entries, fuse.DirEntry{
			Name: child.Name,
			Mode: fileMode(child),
		})
	}

	return fs.NewListDirStream(entries), 0
}

// Getattr implements [fs.NodeGetattrer].
func (n *node) Getattr(
	_ context.Context,
	_ fs.FileHandle,
	out *fuse.AttrOut,
) syscall.Errno {
	n.fillAttr(&out.Attr)
	return 0
}

// Open implements [fs.NodeOpener].
//
// No file handle is created. Reads go to [node.Read] directly.
func (n *node) Open(
	_ context.Context,
	flags uint32,
) (fs.FileHandle, uint32, syscall.Errno) {
	if n.entry.IsDir() {
		return nil, 0, syscall.EISDIR
	}

	if flags&syscall.O_ACCMODE != syscall.O_RDONLY {
		return nil, 0, syscall.EROFS
	}

	return nil, fuse.FOPEN_KEEP_CACHE, 0
}

// Read implements [fs.NodeReader].
func (n *node) Read(
	_ context.Context,
	_ fs.FileHandle,
	dest []byte,
	off int64,
) (fuse.ReadResult, syscall.Errno) {
	if off < 0 {
		return nil, syscall.EINVAL
	}

	offset, length := clampRange(n.entry.Size, uint64(off), uint64(len(dest)))

	data, err := n.fsys.provider.ReadPath(n.path, offset, length)
	if err != nil {
		return nil, toErrno(err)
	}

	return fuse.ReadResultData(data), 0
}

func (n *node) fillAttr(attr *fuse.Attr) {
	attr.Mode = fileMode(n.entry)
	attr.Size = n.entry.Size
	attr.Blocks = (n.entry.Size + blockSize - 1) / blockSize
	attr.Nlink = 1
	attr.Owner = n.fsys.owner

	if n.entry.IsDir() {
		attr.Nlink = 2
	}

	attr.SetTimes(&n.fsys.time, &n.fsys.time, &n.fsys.time)
}

func fileMode(entry provider.Entry) uint32 {
	if entry.IsDir() {
		return dirMode
	}

	return regularMode
}

// clampRange limits the requested range to the file size. The kernel always
// asks for whole pages, while the provider only serves ranges within the
// content.
func clampRange(size, offset, length uint64) (uint64, uint64) {
	if offset >= size {
		return size, 0
	}

	return offset, min(length, size-offset)
}

func validName(name string) bool {
	switch name {
	case "", ".", "..":
		return false
	default:
		return !strings.ContainsAny(name, "/\x00")
	}
}
