package repoindex

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/airisdev/airis-agent/internal/filelock"
)

// Index file names written to the output directory.
const (
	MarkdownFileName = "PROJECT_INDEX.md"
	JSONFileName     = "PROJECT_INDEX.json"
)

// writeIndexFiles writes the Markdown and JSON index files atomically
// under a directory-level lock, so concurrent airis invocations against
// the same output directory cannot interleave partial writes.
func writeIndexFiles(outputDir string, resp *Response) ([]string, error) {
	dir, err := filepath.Abs(expandUser(outputDir))
	if err != nil {
		return nil, fmt.Errorf("resolve output dir: %w", err)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	lock := filelock.New(filepath.Join(dir, ".index.lock"))
	if err := lock.Lock(); err != nil {
		return nil, err
	}
	defer lock.Unlock()

	mdPath := filepath.Join(dir, MarkdownFileName)
	if err := filelock.WriteFileAtomic(mdPath, []byte(resp.Markdown), 0644); err != nil {
		return nil, fmt.Errorf("write %s: %w", MarkdownFileName, err)
	}

	data, err := json.MarshalIndent(resp.Index, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal index: %w", err)
	}
	jsonPath := filepath.Join(dir, JSONFileName)
	if err := filelock.WriteFileAtomic(jsonPath, data, 0644); err != nil {
		return nil, fmt.Errorf("write %s: %w", JSONFileName, err)
	}

	return []string{mdPath, jsonPath}, nil
}
