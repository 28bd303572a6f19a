package report

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"liquiditysim/internal/model"
)

// HistoryWriter appends rendered simulation reports to a per-token text
// file, newest entry last.
type HistoryWriter struct {
	dir string
	mu  sync.Mutex
}

// NewHistoryWriter writes history files into dir ("." when empty).
func NewHistoryWriter(dir string) *HistoryWriter {
	if dir == "" {
		dir = "."
	}
	return &HistoryWriter{dir: dir}
}

// Path returns the history file path for a token symbol.
func (w *HistoryWriter) Path(tokenSymbol string) string {
	return filepath.Join(w.dir, fmt.Sprintf("%s-liquidity-sim.txt", tokenSymbol))
}

// Append writes the record's rendered report to the token's history file.
func (w *HistoryWriter) Append(rec model.SimulationRecord) (string, error) {
	if w.dir != "." {
		if err := os.MkdirAll(w.dir, 0o755); err != nil {
			return "", fmt.Errorf("create history dir: %w", err)
		}
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	path := w.Path(rec.TokenSymbol)
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return "", fmt.Errorf("open history file: %w", err)
	}
	defer file.Close()

	if _, err := fmt.Fprintf(file, "Run at %s\n%s\n", rec.SimulatedAt, FormatText(rec)); err != nil {
		return "", fmt.Errorf("write history: %w", err)
	}

	return path, nil
}
