// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"runtime/debug"
	"time"

	"github.com/aibor/projson/internal/archive"
	"github.com/aibor/projson/internal/fusefs"
	"github.com/aibor/projson/internal/jsonfs"
	"github.com/aibor/projson/internal/jsontree"
	"github.com/aibor/projson/internal/provider"
	"golang.org/x/sync/errgroup"
)

const (
	localConfigFile = ".projson-args"
	mountDirPerm    = 0o755
)

// IO provides input and output details for the command.
type IO struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// mountedFS is a file system served in the background.
type mountedFS interface {
	Wait()
	Unmount() error
}

type mountFunc func(
	dir string,
	p *provider.Provider,
	cfg fusefs.Config,
) (mountedFS, error)

func mountFUSE(
	dir string,
	p *provider.Provider,
	cfg fusefs.Config,
) (mountedFS, error) {
	server, err := fusefs.Mount(dir, p, cfg)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	return server, nil
}

func newFlags(args []string, cfg IO) (*flags, error) {
	args, err := MergedArgs(args, os.DirFS("."), localConfigFile)
	if err != nil {
		return nil, err
	}

	flags, err := parseArgs(args, cfg.Stderr)
	if err != nil {
		return nil, fmt.Errorf("parse args: %w", err)
	}

	return flags, nil
}

func loadDocument(flags *flags) (*jsontree.Value, error) {
	if flags.File != "" {
		root, err := jsontree.ParseFile(flags.File)
		if err != nil {
			return nil, fmt.Errorf("load document: %w", err)
		}

		return root, nil
	}

	root, err := jsontree.ParseString(flags.Text)
	if err != nil {
		return nil, fmt.Errorf("load document: %w", err)
	}

	return root, nil
}

func writeArchive(path string, p *provider.Provider) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create archive: %w", err)
	}

	fsys := jsonfs.New(p).WithModTime(time.Now())

	err = archive.Write(file, fsys)
	if err != nil {
		_ = file.Close()
		_ = os.Remove(path)

		return fmt.Errorf("write archive: %w", err)
	}

	err = file.Close()
	if err != nil {
		return fmt.Errorf("close archive: %w", err)
	}

	slog.Info("Archive written", slog.String("path", path))

	return nil
}

func targetExists(path string) (bool, error) {
	_, err := os.Lstat(path)
	if err == nil {
		return true, nil
	}

	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}

	return false, fmt.Errorf("check mount target: %w", err)
}

func serve(
	ctx context.Context,
	flags *flags,
	p *provider.Provider,
	mount mountFunc,
) error {
	err := os.MkdirAll(flags.MountPath, mountDirPerm)
	if err != nil {
		return fmt.Errorf("create mount dir: %w", err)
	}

	defer removeMountDir(flags.MountPath)

	server, err := mount(flags.MountPath, p, fusefs.Config{
		Debug:      flags.FuseDebug,
		AllowOther: flags.AllowOther,
		Timeout:    flags.Timeout,
	})
	if err != nil {
		return fmt.Errorf("mount: %w", err)
	}

	slog.Info("Mounted", slog.String("path", flags.MountPath))

	unmounted := make(chan struct{})

	var eg errgroup.Group

	eg.Go(func() error {
		server.Wait()
		close(unmounted)

		return nil
	})

	eg.Go(func() error {
		select {
		case <-ctx.Done():
			slog.Debug("Unmounting", slog.String("path", flags.MountPath))

			err := server.Unmount()
			if err != nil {
				return fmt.Errorf("unmount: %w", err)
			}
		case <-unmounted:
			slog.Debug("Unmounted externally",
				slog.String("path", flags.MountPath))
		}

		return nil
	})

	return eg.Wait() //nolint:wrapcheck
}

func removeMountDir(path string) {
	slog.Debug("Removing mount dir", slog.String("path", path))

	err := os.Remove(path)
	if err != nil {
		slog.Error(
			"Failed to remove mount dir",
			slog.String("path", path),
			slog.Any("error", err),
		)
	}
}

func run(ctx context.Context, flags *flags, mount mountFunc) error {
	if flags.MountPath != "" {
		exists, err := targetExists(flags.MountPath)
		if err != nil {
			return err
		}

		// Never mount over an existing directory or remove it afterwards.
		if exists {
			slog.Error("Mount target already exists",
				slog.String("path", flags.MountPath))

			return nil
		}
	}

	// Parse first, so a broken document leaves no directory behind.
	root, err := loadDocument(flags)
	if err != nil {
		return err
	}

	p := provider.New(root)

	if flags.ArchivePath != "" {
		err := writeArchive(flags.ArchivePath, p)
		if err != nil {
			return err
		}
	}

	if flags.MountPath == "" {
		return nil
	}

	err = serve(ctx, flags, p, mount)
	if err != nil {
		return err
	}

	slog.Info("Stopped")

	return nil
}

func printVersion(w io.Writer) error {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return ErrReadBuildInfo
	}

	fmt.Fprintf(w, "Version: %s\n", versionString(buildInfo))

	return nil
}

// versionString returns the main module version with the VCS revision
// appended, if the binary was built with one.
func versionString(buildInfo *debug.BuildInfo) string {
	version := buildInfo.Main.Version

	for _, setting := range buildInfo.Settings {
		if setting.Key == "vcs.revision" && setting.Value != "" {
			return version + "." + setting.Value
		}
	}

	return version
}

func handleParseArgsError(err error) int {
	// [ErrHelp] is returned when help is requested. So exit without error
	// in this case.
	if errors.Is(err, ErrHelp) {
		return 0
	}

	// ParseArgs already prints errors, so we just exit without an error.
	if !errors.Is(err, &ParseArgsError{}) {
		slog.Error(err.Error())
	}

	return 1
}

func handleRunError(err error) int {
	var syntaxErr *jsontree.SyntaxError
	if errors.As(err, &syntaxErr) {
		slog.Error("Malformed JSON document",
			slog.Int("line", syntaxErr.Line),
			slog.Int("column", syntaxErr.Column),
			slog.Any("error", syntaxErr.Err),
		)

		return 1
	}

	slog.Error(err.Error())

	return 1
}

// Run is the main entry point for the CLI command. It returns the exit code
// for the process.
func Run(ctx context.Context, args []string, cfg IO) int {
	setupLogging(cfg.Stderr, false)

	flags, err := newFlags(args, cfg)
	if err != nil {
		return handleParseArgsError(err)
	}

	setupLogging(cfg.Stderr, flags.Debug)

	if flags.Version {
		err := printVersion(cfg.Stdout)
		if err != nil {
			slog.Error(err.Error())
			return 1
		}

		return 0
	}

	err = run(ctx, flags, mountFUSE)
	if err != nil {
		return handleRunError(err)
	}

	return 0
}
