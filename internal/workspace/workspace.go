// Package workspace enumerates and reads candidate files for impact scanning.
package workspace

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/errgroup"

	"github.com/AnasAshrafGit/Sirge-impact-analysis/pkg/core"
)

// DefaultInclude is the glob candidate files must match.
const DefaultInclude = "**/*.ts"

// DefaultReadConcurrency bounds parallel file reads.
const DefaultReadConcurrency = 8

// DefaultExclude mirrors the usual editor files.exclude set. Build output,
// dependency trees and the schema file's own directory are not excluded.
var DefaultExclude = []string{
	"**/.git/**",
	"**/.svn/**",
	"**/.hg/**",
	"**/CVS/**",
	"**/.DS_Store",
	"**/Thumbs.db",
}

// Config holds configuration for a Provider.
type Config struct {
	Root            string
	Include         string
	Exclude         []string
	ReadConcurrency int
	Logger          *slog.Logger
}

// Provider lists and reads workspace files. It implements core.FileProvider.
type Provider struct {
	root        string
	include     string
	exclude     []string
	concurrency int
	logger      *slog.Logger
}

// New creates a Provider. Patterns are validated up front so a bad pattern is
// a configuration problem, not a per-run failure.
func New(cfg Config) (*Provider, error) {
	if cfg.Root == "" {
		cfg.Root = "."
	}
	if cfg.Include == "" {
		cfg.Include = DefaultInclude
	}
	if cfg.Exclude == nil {
		cfg.Exclude = DefaultExclude
	}
	if cfg.ReadConcurrency <= 0 {
		cfg.ReadConcurrency = DefaultReadConcurrency
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}

	for _, p := range append([]string{cfg.Include}, cfg.Exclude...) {
		if !doublestar.ValidatePattern(p) {
			return nil, &core.ConfigurationError{Key: "include", Msg: fmt.Sprintf("invalid glob pattern %q", p)}
		}
	}

	return &Provider{
		root:        cfg.Root,
		include:     cfg.Include,
		exclude:     cfg.Exclude,
		concurrency: cfg.ReadConcurrency,
		logger:      cfg.Logger,
	}, nil
}

// Root returns the directory the provider walks.
func (p *Provider) Root() string {
	return p.root
}

// ListFiles returns the paths under the root matching pattern and none of the
// exclude patterns. Paths are joined with the root and sorted.
func (p *Provider) ListFiles(ctx context.Context, pattern string) ([]string, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, doublestar.ErrBadPattern)
	}

	var paths []string
	err := filepath.WalkDir(p.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == p.root {
				return err
			}
			p.logger.Debug("skipping unreadable entry", "path", path, "error", err)
			return nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if d.IsDir() {
			return nil
		}
		// Symlinked directories are not descended into; dangling links are
		// kept so the read reports them.
		if d.Type()&fs.ModeSymlink != 0 {
			if info, err := os.Stat(path); err == nil && info.IsDir() {
				return nil
			}
		}

		rel, err := filepath.Rel(p.root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if !doublestar.MatchUnvalidated(pattern, rel) || p.excluded(rel) {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list files in %s: %w", p.root, err)
	}
	sort.Strings(paths)
	return paths, nil
}

func (p *Provider) excluded(rel string) bool {
	for _, pattern := range p.exclude {
		if doublestar.MatchUnvalidated(pattern, rel) {
			return true
		}
	}
	return false
}

// CandidateFiles lists files matching the include pattern and reads them in
// parallel. Unreadable files are returned as IOErrors and skipped; the
// readable files come back sorted by path.
func (p *Provider) CandidateFiles(ctx context.Context) ([]core.CandidateFile, []*core.IOError, error) {
	paths, err := p.ListFiles(ctx, p.include)
	if err != nil {
		return nil, nil, &core.IOError{Path: p.root, Op: "list", Err: err}
	}

	files := make([]core.CandidateFile, len(paths))
	readErrs := make([]*core.IOError, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency)
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(path)
			if err != nil {
				readErrs[i] = &core.IOError{Path: path, Op: "read", Err: err}
				return nil
			}
			files[i] = core.CandidateFile{Path: path, Text: string(data)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	var (
		out  = make([]core.CandidateFile, 0, len(paths))
		errs []*core.IOError
	)
	for i := range paths {
		if readErrs[i] != nil {
			errs = append(errs, readErrs[i])
			continue
		}
		out = append(out, files[i])
	}
	p.logger.Debug("read candidate files", "root", p.root, "pattern", p.include, "files", len(out), "errors", len(errs))
	return out, errs, nil
}
