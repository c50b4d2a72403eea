// Package assets loads the label font and texture off the render loop.
package assets

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"
)

var ErrAssetLoad = errors.New("assets: load failed")

// Result carries the raw bytes of both assets, or the first failure.
type Result struct {
	Font        []byte
	FontType    string
	Texture     []byte
	TextureType string
	Err         error
}

// Load reads both files concurrently and delivers exactly one Result on
// the returned channel, which is then closed. An empty texture path is
// allowed; an empty font path is an error.
func Load(ctx context.Context, fontPath, texturePath string) <-chan Result {
	out := make(chan Result, 1)
	go func() {
		defer close(out)
		out <- load(ctx, fontPath, texturePath)
	}()
	return out
}

func load(ctx context.Context, fontPath, texturePath string) Result {
	var res Result
	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		data, err := readFile(egCtx, fontPath)
		res.Font, res.FontType = data, FileType(fontPath)
		return err
	})
	if texturePath != "" {
		eg.Go(func() error {
			data, err := readFile(egCtx, texturePath)
			res.Texture, res.TextureType = data, FileType(texturePath)
			return err
		})
	}

	if err := eg.Wait(); err != nil {
		return Result{Err: err}
	}
	return res
}

func readFile(ctx context.Context, path string) ([]byte, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrAssetLoad)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrAssetLoad, path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAssetLoad, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %s: empty file", ErrAssetLoad, path)
	}
	return data, nil
}

// FileType returns the extension in the ".ext" form raylib expects.
func FileType(path string) string {
	return strings.ToLower(filepath.Ext(path))
}
