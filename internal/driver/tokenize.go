// Package driver wires the lexing and parsing core to the CLI: it loads
// source files, fans tokenization out over several files, and classifies
// token streams into values.
package driver

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"gdspec/internal/lexer"
	"gdspec/internal/token"
)

// TokenizeResult holds the outcome of tokenizing one file. Err carries the
// per-file I/O or lexer failure; Tokens is nil in that case.
type TokenizeResult struct {
	Path   string
	Tokens []token.Token
	Err    error
}

// TokenizeFile loads one source file and tokenizes it.
func TokenizeFile(path string) ([]token.Token, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	toks, err := lexer.Tokenize(string(src))
	if err != nil {
		return nil, fmt.Errorf("tokenize %s: %w", path, err)
	}
	return toks, nil
}

// TokenizeFiles tokenizes several files concurrently, at most jobs at a
// time (GOMAXPROCS when jobs <= 0). Each file gets its own token sequence,
// so no state is shared between goroutines. Results keep the order of
// paths; per-file failures land in the result, and the returned error
// reports context cancellation only.
func TokenizeFiles(ctx context.Context, paths []string, jobs int) ([]TokenizeResult, error) {
	if len(paths) == 0 {
		return nil, nil
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	results := make([]TokenizeResult, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(paths)))
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			toks, err := TokenizeFile(path)
			results[i] = TokenizeResult{Path: path, Tokens: toks, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
