package fixture

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"sync"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/nozzle/refrng/internal/logging"
	"github.com/nozzle/refrng/internal/parallel"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Options control emission and verification.
type Options struct {
	// Dir is the fixture directory.
	Dir string
	// Count is the number of iterations per run.
	Count int
	// Workers is the number of runs processed concurrently.
	// 0 = auto-detect based on CPU cores.
	Workers int
}

// DefaultOptions returns the options of the reference fixture set.
func DefaultOptions() Options {
	return Options{
		Dir:     ".",
		Count:   ValuesPerFile,
		Workers: 0,
	}
}

func (o Options) workers() int {
	if o.Workers > 0 {
		return o.Workers
	}
	return parallel.NumWorkers()
}

// Emit generates every run of plan and writes its files to opts.Dir. It
// returns the written file names, sorted.
func Emit(ctx context.Context, plan Plan, opts Options) ([]string, error) {
	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "create %s", opts.Dir)
	}

	var (
		mu      sync.Mutex
		written []string
	)
	err := parallel.ForEach(ctx, len(plan), opts.workers(), func(ctx context.Context, i int) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		files, err := Generate(plan[i], opts.Count)
		if err != nil {
			return err
		}
		for _, f := range files {
			if err := WriteFile(opts.Dir, f); err != nil {
				return err
			}
			logging.Log().Info().Str("file", f.Name()).Int("values", len(f.Values)).Msg("+")
			mu.Lock()
			written = append(written, f.Name())
			mu.Unlock()
		}
		return nil
	})
	sort.Strings(written)
	if err != nil {
		return written, err
	}

	logging.Log().Info().Int("files", len(written)).Str("dir", opts.Dir).Msg("created fixtures")
	return written, nil
}

// WriteFile writes f into dir under f.Name().
func WriteFile(dir string, f *File) error {
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return errors.Wrapf(err, "encode %s", f.Name())
	}
	data = append(data, '\n')

	path := filepath.Join(dir, f.Name())
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	return nil
}
