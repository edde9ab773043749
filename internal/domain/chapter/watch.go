package chapter

import (
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/turtacn/ConstrDoc-Intelligence/internal/infrastructure/monitoring/logging"
	apperrors "github.com/turtacn/ConstrDoc-Intelligence/pkg/errors"
)

// RuleWatcher hot-reloads a YAML rule file: whenever the file changes on disk
// it is re-parsed and re-compiled, and the fresh CompiledRules value is handed
// to the registered callback.  A change that fails to parse or compile is
// logged and dropped; the previous corpus stays in effect.
type RuleWatcher struct {
	path     string
	watcher  *fsnotify.Watcher
	logger   logging.Logger
	onReload func(*CompiledRules)

	mu      sync.Mutex
	current *CompiledRules
	done    chan struct{}
}

// WatchRuleFile loads and compiles the rule file at path, then starts
// watching it.  onReload receives every successfully compiled replacement.
// Call Stop to release the watcher.
func WatchRuleFile(path string, logger logging.Logger, onReload func(*CompiledRules)) (*RuleWatcher, error) {
	if logger == nil {
		logger = logging.Nop()
	}

	src, err := LoadRuleFile(path)
	if err != nil {
		return nil, err
	}
	rules, err := Compile(src)
	if err != nil {
		return nil, err
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal,
			"failed to create rule file watcher")
	}
	// Watch the directory, not the file: editors that write via rename would
	// otherwise detach the watch on first save.
	if err := fsWatcher.Add(filepath.Dir(path)); err != nil {
		_ = fsWatcher.Close()
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal,
			"failed to watch rule file directory")
	}

	w := &RuleWatcher{
		path:     path,
		watcher:  fsWatcher,
		logger:   logger.Named("rulewatch"),
		onReload: onReload,
		current:  rules,
		done:     make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Rules returns the most recently compiled corpus.
func (w *RuleWatcher) Rules() *CompiledRules {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.current
}

// Stop releases the underlying filesystem watcher.
func (w *RuleWatcher) Stop() error {
	close(w.done)
	return w.watcher.Close()
}

func (w *RuleWatcher) run() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			w.reload()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("rule file watcher error", logging.Err(err))
		}
	}
}

func (w *RuleWatcher) reload() {
	src, err := LoadRuleFile(w.path)
	if err != nil {
		w.logger.Warn("rule file unreadable after change, keeping previous rules",
			logging.String("path", w.path), logging.Err(err))
		return
	}
	rules, err := Compile(src)
	if err != nil {
		w.logger.Warn("rule file failed to compile after change, keeping previous rules",
			logging.String("path", w.path), logging.Err(err))
		return
	}

	w.mu.Lock()
	w.current = rules
	w.mu.Unlock()

	w.logger.Info("rule file reloaded",
		logging.String("path", w.path),
		logging.Int("categories", rules.CategoryCount()))

	if w.onReload != nil {
		w.onReload(rules)
	}
}

//Personal.AI order the ending
