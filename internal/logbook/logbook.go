// internal/logbook/logbook.go
//
// Session logbook. Every navigation, validation failure, and export
// outcome is appended to a plain text file next to the exported
// documents, so a filled declaration can be audited after the fact.

package logbook

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Nivel represents the severity of a log entry.
type Nivel string

const (
	NivelInfo  Nivel = "INFO"
	NivelAviso Nivel = "WARN"
	NivelErro  Nivel = "ERROR"
)

// Logbook appends timestamped entries to a text file. A nil Logbook
// is safe to use and discards everything, so callers need no guards
// when opening the file failed.
type Logbook struct {
	mu    sync.Mutex
	file  *os.File
	path  string
	agora func() time.Time
}

// Abrir opens (or creates) the logbook at path.
func Abrir(path string) (*Logbook, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("logbook: creating directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("logbook: opening %s: %w", path, err)
	}
	return &Logbook{file: file, path: path, agora: time.Now}, nil
}

// Path returns the file backing this logbook.
func (l *Logbook) Path() string {
	if l == nil {
		return ""
	}
	return l.path
}

// Close releases the underlying file.
func (l *Logbook) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	err := l.file.Close()
	l.file = nil
	return err
}

// Registrar appends one entry.
func (l *Logbook) Registrar(nivel Nivel, mensagem string) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return
	}
	linha := fmt.Sprintf("%s %-5s %s\n",
		l.agora().UTC().Format(time.RFC3339),
		string(nivel),
		strings.TrimSpace(mensagem),
	)
	_, _ = l.file.WriteString(linha)
}

// Info appends an informational entry.
func (l *Logbook) Info(format string, args ...any) {
	l.Registrar(NivelInfo, fmt.Sprintf(format, args...))
}

// Aviso appends a warning entry.
func (l *Logbook) Aviso(format string, args ...any) {
	l.Registrar(NivelAviso, fmt.Sprintf(format, args...))
}

// Erro appends an error entry.
func (l *Logbook) Erro(format string, args ...any) {
	l.Registrar(NivelErro, fmt.Sprintf(format, args...))
}
