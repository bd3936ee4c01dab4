package editor

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// commentPrefix marks template lines dropped when the draft is read back
const commentPrefix = "#"

// Draft is a temporary file an entry is written in
type Draft struct {
	path string
}

// NewDraft creates a temporary draft file in dir (empty means the OS temp
// dir) holding the given prompt as comment lines
func NewDraft(dir string, prompt ...string) (*Draft, error) {
	f, err := os.CreateTemp(dir, "lovediary-entry-*.md")
	if err != nil {
		return nil, fmt.Errorf("failed to create draft: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	w.WriteString("\n")
	for _, line := range prompt {
		fmt.Fprintf(w, "%s %s\n", commentPrefix, line)
	}
	if err := w.Flush(); err != nil {
		os.Remove(f.Name())
		return nil, fmt.Errorf("failed to write draft: %w", err)
	}

	return &Draft{path: f.Name()}, nil
}

// Path returns the draft file path
func (d *Draft) Path() string {
	return d.path
}

// Read returns the draft text without comment lines, trimmed
func (d *Draft) Read() (string, error) {
	data, err := os.ReadFile(d.path)
	if err != nil {
		return "", fmt.Errorf("failed to read draft: %w", err)
	}

	var kept []string
	for _, line := range strings.Split(string(data), "\n") {
		if strings.HasPrefix(line, commentPrefix) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.TrimSpace(strings.Join(kept, "\n")), nil
}

// Remove deletes the draft file
func (d *Draft) Remove() error {
	if err := os.Remove(d.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Write puts text above the prompt lines
func (d *Draft) Write(text string) error {
	data, err := os.ReadFile(d.path)
	if err != nil {
		return fmt.Errorf("failed to read draft: %w", err)
	}
	if err := os.WriteFile(d.path, append([]byte(text+"\n"), data...), 0o600); err != nil {
		return fmt.Errorf("failed to write draft: %w", err)
	}
	return nil
}
