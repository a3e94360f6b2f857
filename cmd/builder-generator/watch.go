package main

import (
	"context"
	"fmt"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"builder-generator/internal/analyze"
	"builder-generator/internal/ctxlog"
)

const watchDebounce = 200 * time.Millisecond

var watchCmd = &cobra.Command{
	Use:   "watch [packages...]",
	Short: "Regenerate builders whenever a source file changes",
	Long: `Run gen, then watch every loaded package and its builders directory.
Any change to a hand-written .go file reruns the whole pipeline from scratch.`,
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(withLogger(cmd, cfg), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer w.Close()

	out := cmd.OutOrStdout()
	watched := map[string]bool{}

	rerun := func() {
		batch, err := generate(ctx, cfg, out)
		if err != nil {
			printError(cmd.ErrOrStderr(), err)
		}

		if batch != nil {
			watchDirs(ctx, w, batch, watched)
		}
	}

	rerun()

	var pending <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}

			if !relevant(ev) {
				continue
			}

			ctxlog.FromContext(ctx).Debug("source changed", "path", ev.Name, "op", ev.Op.String())
			pending = time.After(watchDebounce)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}

			printError(cmd.ErrOrStderr(), err)
		case <-pending:
			pending = nil
			rerun()
		}
	}
}

// watchDirs adds every package and builders directory of batch not yet
// watched.
func watchDirs(ctx context.Context, w *fsnotify.Watcher, batch *analyze.Batch, watched map[string]bool) {
	log := ctxlog.FromContext(ctx)

	for _, p := range batch.Packages {
		for _, dir := range []string{p.Dir, p.BuilderDir()} {
			if dir == "" || watched[dir] {
				continue
			}

			if err := w.Add(dir); err != nil {
				log.Debug("not watching", "dir", dir, "error", err)
				continue
			}

			watched[dir] = true
		}
	}
}

// relevant reports whether ev may change the pipeline's output. Generated
// builders are written by the pipeline itself and are skipped.
func relevant(ev fsnotify.Event) bool {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
		return false
	}

	name := filepath.Base(ev.Name)

	return strings.HasSuffix(name, ".go") &&
		!strings.HasSuffix(name, "_test.go") &&
		!strings.HasSuffix(name, "_builder.go")
}
