package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"venturecode/internal/codec"
	"venturecode/internal/directive"
	"venturecode/internal/trace"
)

// Request describes one batch.
type Request struct {
	Files         []string
	DisplayScopes bool
	// OutDir, when set, receives <name>.html for every input <name>.<ext>.
	OutDir   string
	Jobs     int // 0 = GOMAXPROCS
	Progress ProgressSink
}

// FileResult is the outcome for one input file. Err is set when the file
// could not be decoded, rendered or written; Lines and Listing are then empty.
type FileResult struct {
	Path       string
	Directives int
	Lines      []string
	Listing    string
	OutPath    string
	Timings    Timings
	Err        error
}

// Result holds per-file outcomes in input order.
type Result struct {
	Files []FileResult
}

// Failed returns the results that carry an error.
func (r Result) Failed() []FileResult {
	var failed []FileResult
	for _, f := range r.Files {
		if f.Err != nil {
			failed = append(failed, f)
		}
	}
	return failed
}

// Err joins the per-file errors, or returns nil when every file rendered.
func (r Result) Err() error {
	var errs []error
	for _, f := range r.Failed() {
		errs = append(errs, fmt.Errorf("%s: %w", f.Path, f.Err))
	}
	return errors.Join(errs...)
}

// Render processes req.Files concurrently. Per-file failures are reported
// in the result; the returned error is for problems with the batch itself
// (cancellation, output name clashes, unusable output directory).
func Render(ctx context.Context, req *Request) (Result, error) {
	if req == nil {
		return Result{}, errors.New("pipeline: nil request")
	}
	outPaths, err := outputPaths(req.Files, req.OutDir)
	if err != nil {
		return Result{}, err
	}
	if req.OutDir != "" {
		if err := os.MkdirAll(req.OutDir, 0o755); err != nil {
			return Result{}, fmt.Errorf("create output directory: %w", err)
		}
	}

	ctx, span := trace.BeginContext(ctx, trace.ScopeCommand, "render batch")
	defer span.End("")
	span.WithExtra("files", strconv.Itoa(len(req.Files)))

	for _, path := range req.Files {
		emit(req.Progress, Event{File: path, Stage: StageDecode, Status: StatusQueued})
	}

	jobs := req.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	results := make([]FileResult, len(req.Files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, path := range req.Files {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = renderFile(gctx, req, path, outPaths[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{Files: results}, err
	}
	return Result{Files: results}, nil
}

func renderFile(ctx context.Context, req *Request, path, outPath string) FileResult {
	ctx, span := trace.BeginContext(ctx, trace.ScopeFile, path)
	res := FileResult{Path: path}

	fail := func(stage Stage, err error) FileResult {
		res.Err = fmt.Errorf("%s: %w", stage, err)
		trace.Fail(ctx, trace.ScopeFile, path, res.Err)
		emit(req.Progress, Event{File: path, Stage: stage, Status: StatusError, Err: res.Err, Elapsed: res.Timings.Total()})
		span.End("failed")
		return res
	}

	var ds []directive.Directive
	err := runStage(ctx, req, path, StageDecode, &res.Timings, func() error {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		ds, err = codec.Decode(path, f)
		return err
	})
	if err != nil {
		return fail(StageDecode, err)
	}
	res.Directives = len(ds)

	err = runStage(ctx, req, path, StageRender, &res.Timings, func() error {
		lines, err := directive.Lines(ds, req.DisplayScopes)
		if err != nil {
			return err
		}
		res.Lines = lines
		res.Listing = directive.FormatListing(lines)
		return nil
	})
	if err != nil {
		res.Lines = nil
		return fail(StageRender, err)
	}

	if outPath != "" {
		err = runStage(ctx, req, path, StageWrite, &res.Timings, func() error {
			return os.WriteFile(outPath, []byte(res.Listing+"\n"), 0o644)
		})
		if err != nil {
			res.Lines, res.Listing = nil, ""
			return fail(StageWrite, err)
		}
		res.OutPath = outPath
	}

	span.WithExtra("lines", strconv.Itoa(len(res.Lines)))
	span.End("")
	emit(req.Progress, Event{File: path, Stage: StageRender, Status: StatusDone, Elapsed: res.Timings.Total()})
	return res
}

func runStage(ctx context.Context, req *Request, path string, stage Stage, timings *Timings, fn func() error) error {
	_, span := trace.BeginContext(ctx, trace.ScopeStage, string(stage))
	emit(req.Progress, Event{File: path, Stage: stage, Status: StatusWorking})
	start := time.Now()
	err := fn()
	timings.Set(stage, time.Since(start))
	if err != nil {
		span.End(err.Error())
	} else {
		span.End("")
	}
	return err
}

// outputPaths maps inputs to <outDir>/<name>.html and rejects clashes.
func outputPaths(files []string, outDir string) ([]string, error) {
	out := make([]string, len(files))
	if outDir == "" {
		return out, nil
	}
	seen := make(map[string]string, len(files))
	for i, path := range files {
		base := filepath.Base(path)
		name := strings.TrimSuffix(base, filepath.Ext(base)) + ".html"
		target := filepath.Join(outDir, name)
		if prev, ok := seen[target]; ok {
			return nil, fmt.Errorf("%s and %s both render to %s", prev, path, target)
		}
		seen[target] = path
		out[i] = target
	}
	return out, nil
}
