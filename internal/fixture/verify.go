package fixture

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"

	"github.com/nozzle/refrng/internal/logging"
	"github.com/nozzle/refrng/internal/parallel"
)

// Mismatch describes one disagreement between a fixture file on disk and a
// freshly generated one.
type Mismatch struct {
	File string
	// Index is the position in "values", or -1 for header and length problems.
	Index  int
	Field  string
	Want   string
	Got    string
	Reason string
}

func (m Mismatch) String() string {
	if m.Index >= 0 {
		return fmt.Sprintf("%s: values[%d] = %s, expected %s", m.File, m.Index, m.Got, m.Want)
	}
	if m.Reason != "" {
		return fmt.Sprintf("%s: %s", m.File, m.Reason)
	}
	return fmt.Sprintf("%s: %s = %q, expected %q", m.File, m.Field, m.Got, m.Want)
}

// Verify regenerates every run of plan and compares the result with the files
// in opts.Dir. Only the first mismatching value of each file is reported.
func Verify(ctx context.Context, plan Plan, opts Options) ([]Mismatch, error) {
	type result struct {
		mismatches []Mismatch
		err        error
	}

	results := parallel.Map(len(plan), opts.workers(), func(i int) result {
		if err := ctx.Err(); err != nil {
			return result{err: err}
		}
		files, err := Generate(plan[i], opts.Count)
		if err != nil {
			return result{err: err}
		}
		var res result
		for _, f := range files {
			ms, err := compareFile(opts.Dir, f)
			if err != nil {
				return result{err: err}
			}
			res.mismatches = append(res.mismatches, ms...)
		}
		return res
	})

	var all []Mismatch
	for _, r := range results {
		if r.err != nil {
			return all, r.err
		}
		all = append(all, r.mismatches...)
	}

	logging.Log().Info().Int("runs", len(plan)).Int("mismatches", len(all)).Str("dir", opts.Dir).Msg("verified fixtures")
	return all, nil
}

func compareFile(dir string, want *File) ([]Mismatch, error) {
	name := want.Name()
	data, err := os.ReadFile(filepath.Join(dir, name))
	if os.IsNotExist(err) {
		return []Mismatch{{File: name, Index: -1, Reason: "missing"}}, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", name)
	}
	if !gjson.ValidBytes(data) {
		return []Mismatch{{File: name, Index: -1, Reason: "not valid JSON"}}, nil
	}

	doc := gjson.ParseBytes(data)
	var out []Mismatch

	headers := []struct{ field, want string }{
		{"algorithm", want.Algorithm},
		{"seed", want.Seed},
		{"seed id", want.SeedID},
		{"type", want.Type},
	}
	for _, h := range headers {
		if got := doc.Get(h.field).String(); got != h.want {
			out = append(out, Mismatch{File: name, Index: -1, Field: h.field, Want: h.want, Got: got})
		}
	}

	values := doc.Get("values").Array()
	if len(values) != len(want.Values) {
		out = append(out, Mismatch{
			File:   name,
			Index:  -1,
			Reason: fmt.Sprintf("%d values, expected %d", len(values), len(want.Values)),
		})
	}
	for i, v := range values {
		if i >= len(want.Values) {
			break
		}
		if got := v.String(); got != want.Values[i] {
			out = append(out, Mismatch{File: name, Index: i, Want: want.Values[i], Got: got})
			break
		}
	}
	return out, nil
}
