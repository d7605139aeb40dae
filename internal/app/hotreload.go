package app

import (
	"os"
	"path/filepath"
	"syscall"
	"time"
)

// HotReloader watches the wire manager binary on disk and invokes a
// callback once a newer build appears, letting a development session
// restart into the fresh binary without relaunching by hand.
type HotReloader struct {
	execPath      string
	startupTime   time.Time
	checkInterval time.Duration
	stopCh        chan struct{}
	onNewBinary   func()
}

// NewHotReloader creates a reloader watching the current executable.
// Returns nil if the executable path cannot be determined.
func NewHotReloader(checkInterval time.Duration) *HotReloader {
	execPath, err := os.Executable()
	if err != nil {
		return nil
	}

	// go build may write a fresh file behind a symlink, so resolve to
	// the real path before stat-ing it
	if realPath, err := filepath.EvalSymlinks(execPath); err == nil {
		execPath = realPath
	}

	info, err := os.Stat(execPath)
	if err != nil {
		return nil
	}

	return &HotReloader{
		execPath:      execPath,
		startupTime:   info.ModTime(),
		checkInterval: checkInterval,
		stopCh:        make(chan struct{}),
	}
}

// OnNewBinary sets the callback invoked when a newer binary is seen.
// It runs on a background goroutine; UI updates need marshalling onto
// the UI thread.
func (h *HotReloader) OnNewBinary(callback func()) {
	h.onNewBinary = callback
}

// Start begins watching in a background goroutine.
func (h *HotReloader) Start() {
	// fresh stop channel so a declined restart can resume watching
	h.stopCh = make(chan struct{})
	go h.watch()
}

// Stop ends the watcher goroutine.
func (h *HotReloader) Stop() {
	close(h.stopCh)
}

func (h *HotReloader) watch() {
	ticker := time.NewTicker(h.checkInterval)
	defer ticker.Stop()

	for {
		select {
		case <-h.stopCh:
			return
		case <-ticker.C:
			if h.checkForUpdate() && h.onNewBinary != nil {
				h.onNewBinary()
				// fire once; the callback decides whether to resume
				return
			}
		}
	}
}

// checkForUpdate reports whether the binary changed since the baseline.
func (h *HotReloader) checkForUpdate() bool {
	info, err := os.Stat(h.execPath)
	if err != nil {
		return false
	}
	return info.ModTime().After(h.startupTime)
}

// CurrentModTime returns the watched binary's modification time.
func (h *HotReloader) CurrentModTime() (time.Time, error) {
	info, err := os.Stat(h.execPath)
	if err != nil {
		return time.Time{}, err
	}
	return info.ModTime(), nil
}

// ExecPath returns the path to the current executable.
func (h *HotReloader) ExecPath() string {
	return h.execPath
}

// StartupTime returns the baseline modification time recorded at start.
func (h *HotReloader) StartupTime() time.Time {
	return h.startupTime
}

// ResetBaseline moves the baseline to the binary's current mod time.
// Called when the user declines a restart so the prompt does not repeat
// for the same build.
func (h *HotReloader) ResetBaseline() {
	if info, err := os.Stat(h.execPath); err == nil {
		h.startupTime = info.ModTime()
	}
}

// Restart replaces the current process with a new instance of the
// binary. It does not return on success.
func (h *HotReloader) Restart() error {
	return RestartProcess(h.execPath)
}

// RestartProcess execs the given binary in place of the current
// process, keeping arguments and environment. It does not return on
// success.
func RestartProcess(execPath string) error {
	args := os.Args
	env := os.Environ()
	return syscall.Exec(execPath, args, env)
}
