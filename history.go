package liso

import (
	"bufio"
	"os"
	"strings"
	"sync"
)

// History keeps track of recently entered command lines, with optional
// duplicate stripping, a size limit, and file-backed autosave using an
// atomic rename protocol so a crash mid-save never destroys the previous
// history file.
type History struct {
	mu               sync.RWMutex
	lines            []string
	limit            int // 0 means unlimited
	stripDuplicates  bool
	autosave         func(*History) error
	autosaveInterval int // 0 means "only on explicit Save"
	sinceAutosave    int
}

// NewHistory returns an empty History with the library's default
// options: a 100-line limit, duplicate stripping enabled, and no
// autosave handler.
func NewHistory() *History {
	return &History{
		limit:           100,
		stripDuplicates: true,
	}
}

// HistoryFromFile returns a History loaded from path, with autosave
// wired to save back to path using the atomic rename protocol described
// on Save.
func HistoryFromFile(path string) (*History, error) {
	historyPath := path
	buildPath := path + "^"
	backupPath := path + "~"

	h := NewHistory()
	n, err := h.ReadFrom(historyPath)
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	if err != nil || n == 0 {
		// Missing or empty: the real file may have been truncated by an
		// interrupted save. Fall back to the backup.
		n2, err2 := h.ReadFrom(backupPath)
		if err2 != nil && !os.IsNotExist(err2) {
			if err != nil {
				return nil, err
			}
			return nil, err2
		}
		_ = n2
	}
	h.autosave = func(hist *History) error {
		if err := hist.writeTo(buildPath); err != nil {
			return err
		}
		_ = os.Remove(backupPath)
		if err := os.Rename(historyPath, backupPath); err != nil && !os.IsNotExist(err) {
			return err
		}
		if err := os.Rename(buildPath, historyPath); err != nil {
			return err
		}
		_ = os.Remove(backupPath)
		return nil
	}
	return h, nil
}

// ReadFrom overwrites the current history with the lines in the named
// file, stripping a leading UTF-8 BOM on the first line and any trailing
// '\r' on every line. It returns the number of lines read.
func (h *History) ReadFrom(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	first := true
	for scanner.Scan() {
		line := scanner.Text()
		if first {
			line = strings.TrimPrefix(line, "\xef\xbb\xbf")
			first = false
		}
		line = strings.TrimSuffix(line, "\r")
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return 0, err
	}

	h.mu.Lock()
	h.lines = lines
	h.mu.Unlock()
	return len(lines), nil
}

// writeTo writes every history line, newline-terminated, to path.
func (h *History) writeTo(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	h.mu.RLock()
	for _, line := range h.lines {
		if _, err := w.WriteString(line); err != nil {
			h.mu.RUnlock()
			return err
		}
		if err := w.WriteByte('\n'); err != nil {
			h.mu.RUnlock()
			return err
		}
	}
	h.mu.RUnlock()
	return w.Flush()
}

// SetLimit sets the maximum number of retained lines; 0 means unlimited.
// Takes effect the next time a line is added.
func (h *History) SetLimit(limit int) *History {
	h.mu.Lock()
	h.limit = limit
	h.mu.Unlock()
	return h
}

// SetStripDuplicates controls whether adding a line removes prior
// occurrences of that exact line first.
func (h *History) SetStripDuplicates(strip bool) *History {
	h.mu.Lock()
	h.stripDuplicates = strip
	h.mu.Unlock()
	return h
}

// SetAutosaveHandler installs (or, with nil, removes) the function
// called on autosave.
func (h *History) SetAutosaveHandler(f func(*History) error) *History {
	h.mu.Lock()
	h.autosave = f
	h.mu.Unlock()
	return h
}

// SetAutosaveInterval sets how many additions trigger an autosave; 0
// disables interval-based autosaving (the caller must call Save
// explicitly, e.g. at shutdown).
func (h *History) SetAutosaveInterval(interval int) *History {
	h.mu.Lock()
	if interval <= 0 {
		h.sinceAutosave = 0
	}
	h.autosaveInterval = interval
	h.mu.Unlock()
	return h
}

// AddLine appends line to the history, stripping duplicates and
// enforcing the limit first, then autosaving if the interval has been
// reached.
func (h *History) AddLine(line string) error {
	h.mu.Lock()
	if h.stripDuplicates {
		out := h.lines[:0:0]
		for _, l := range h.lines {
			if l != line {
				out = append(out, l)
			}
		}
		h.lines = out
	}
	if h.limit > 0 {
		room := h.limit - 1
		if len(h.lines) > room {
			h.lines = h.lines[len(h.lines)-room:]
		}
	}
	h.lines = append(h.lines, line)
	shouldSave := false
	if h.autosaveInterval > 0 {
		h.sinceAutosave++
		if h.sinceAutosave >= h.autosaveInterval {
			h.sinceAutosave = 0
			shouldSave = true
		}
	}
	handler := h.autosave
	h.mu.Unlock()
	if shouldSave && handler != nil {
		return handler(h)
	}
	return nil
}

// Save runs the autosave handler, if one is installed, immediately.
func (h *History) Save() error {
	h.mu.RLock()
	handler := h.autosave
	h.mu.RUnlock()
	if handler == nil {
		return nil
	}
	return handler(h)
}

// Lines returns a snapshot of the history's current lines.
func (h *History) Lines() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]string, len(h.lines))
	copy(out, h.lines)
	return out
}

// Swap atomically replaces the history's lines with newLines. Used by
// the public API to install a different history than the one the worker
// started with. Swap does not notify the worker: its navigation cursor is
// relocated when it next receives a BumpHistory request.
func (h *History) Swap(newLines []string) {
	h.mu.Lock()
	h.lines = append([]string(nil), newLines...)
	h.mu.Unlock()
}

