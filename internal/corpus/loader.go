// Package corpus reads a directory tree of plain-text documents into
// memory. It is a collaborator of the indexing pipeline: the pipeline only
// ever sees fully-decoded text keyed by path.
package corpus

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// replacement is substituted for invalid UTF-8 byte sequences during
// decoding, matching lossy decode semantics: bad input is replaced, never
// rejected.
var replacement = []byte("�")

// Loader reads documents from disk.
type Loader struct {
	log *logrus.Entry
}

// NewLoader creates a Loader that reports progress through the given
// logger.
func NewLoader(log *logrus.Entry) *Loader {
	return &Loader{log: log}
}

// Load walks dir recursively and returns every regular file's decoded
// contents keyed by its path. Invalid UTF-8 sequences are replaced with
// U+FFFD. Any walk or read failure is fatal to the run and returned as an
// error. An empty directory yields an empty corpus, which is valid input
// for the index build.
func (l *Loader) Load(dir string) (map[string]string, error) {
	corpus := make(map[string]string)

	err := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !entry.Type().IsRegular() {
			return nil
		}
		raw, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading document %s: %w", path, err)
		}
		corpus[path] = string(bytes.ToValidUTF8(raw, replacement))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking corpus directory %s: %w", dir, err)
	}

	l.log.WithFields(logrus.Fields{
		"dir":  dir,
		"docs": len(corpus),
	}).Info("Corpus loaded")

	return corpus, nil
}
