package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/internal/ctxlog"
)

func (a *app) watchCmd() *cobra.Command {
	var (
		f        solveFlags
		debounce time.Duration
	)
	cmd := &cobra.Command{
		Use:   "watch RUNFILE",
		Short: "Re-solve whenever the run file or its input changes",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return usageError("watch needs exactly one run file")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.watch(cmd.Context(), args[0], f, debounce)
		},
	}
	f.register(cmd)
	cmd.Flags().DurationVar(&debounce, "debounce", 200*time.Millisecond, "quiet period before re-solving")
	return cmd
}

// watch solves once, then again after every burst of changes to the run
// file or the input it names, until ctx is cancelled.
func (a *app) watch(ctx context.Context, runFile string, f solveFlags, debounce time.Duration) error {
	logger := ctxlog.FromContext(ctx)

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer w.Close()

	set := newWatchSet(w)
	if err := set.add(runFile); err != nil {
		return err
	}

	solve := func() {
		j, err := a.prepare(ctx, runFile, f)
		if err == nil {
			if err = set.add(j.input); err == nil {
				err = a.run(ctx, j, f)
			}
		}
		if err != nil {
			logger.Error("Solve failed", "run_file", runFile, "error", err)
		}
	}

	solve()
	logger.Info("Watching for changes", "run_file", runFile, "debounce", debounce)
	return watchLoop(ctx, w.Events, w.Errors, debounce, set.match, solve)
}

// adder is the part of *fsnotify.Watcher that watchSet needs.
type adder interface {
	Add(name string) error
}

// watchSet tracks files of interest. Their directories are watched so
// that editors replacing a file by rename are still seen.
type watchSet struct {
	w     adder
	files map[string]bool
	dirs  map[string]bool
}

func newWatchSet(w adder) *watchSet {
	return &watchSet{w: w, files: map[string]bool{}, dirs: map[string]bool{}}
}

func (s *watchSet) add(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	s.files[abs] = true
	dir := filepath.Dir(abs)
	if s.dirs[dir] {
		return nil
	}
	if err := s.w.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	s.dirs[dir] = true
	return nil
}

func (s *watchSet) match(name string) bool {
	abs, err := filepath.Abs(name)
	return err == nil && s.files[abs]
}

// watchLoop calls onChange once events for matching files have been quiet
// for debounce. Watcher errors are logged; the loop ends with ctx or when
// the event channel closes.
func watchLoop(
	ctx context.Context,
	events <-chan fsnotify.Event,
	errs <-chan error,
	debounce time.Duration,
	match func(name string) bool,
	onChange func(),
) error {
	const relevant = fsnotify.Create | fsnotify.Write | fsnotify.Rename

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if ev.Op&relevant == 0 || !match(ev.Name) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C
		case err, ok := <-errs:
			if !ok {
				return nil
			}
			ctxlog.FromContext(ctx).Warn("Watcher error", "error", err)
		case <-fire:
			fire = nil
			onChange()
		}
	}
}
