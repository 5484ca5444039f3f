// Package repoindex generates compact PROJECT_INDEX summaries of a
// repository: structure snapshot, entry points, documentation,
// configuration, and tests. The index is rendered as Markdown for prompt
// injection and as JSON for machine consumption.
package repoindex

import "fmt"

// Mode controls how deep the indexer walks the repository tree.
type Mode string

const (
	ModeFull   Mode = "full"
	ModeUpdate Mode = "update"
	ModeQuick  Mode = "quick"
)

// maxDepth returns the walk depth cap for the mode.
func (m Mode) maxDepth() int {
	switch m {
	case ModeQuick:
		return 2
	case ModeUpdate:
		return 4
	default:
		return 6
	}
}

// Valid reports whether m is a recognized indexing mode.
func (m Mode) Valid() bool {
	switch m {
	case ModeFull, ModeUpdate, ModeQuick:
		return true
	}
	return false
}

// DefaultMaxEntries caps the structure snapshot when the request does not
// specify a limit.
const DefaultMaxEntries = 10

// Request configures one index generation.
type Request struct {
	// RepoPath is the repository root to index. Required.
	RepoPath string `json:"repo_path"`

	// Mode selects indexing depth. Empty defaults to full.
	Mode Mode `json:"mode,omitempty"`

	// SkipDocs omits the documentation section.
	SkipDocs bool `json:"skip_docs,omitempty"`

	// SkipTests omits the tests section.
	SkipTests bool `json:"skip_tests,omitempty"`

	// MaxEntries caps the structure snapshot. Zero or negative selects
	// DefaultMaxEntries.
	MaxEntries int `json:"max_entries,omitempty"`

	// OutputDir, when set, receives PROJECT_INDEX.md and
	// PROJECT_INDEX.json on disk.
	OutputDir string `json:"output_dir,omitempty"`
}

// validate normalizes defaults and rejects unusable requests.
func (r *Request) validate() error {
	if r.RepoPath == "" {
		return fmt.Errorf("repo_path is required")
	}
	if r.Mode == "" {
		r.Mode = ModeFull
	}
	if !r.Mode.Valid() {
		return fmt.Errorf("unknown index mode %q", r.Mode)
	}
	if r.MaxEntries <= 0 {
		r.MaxEntries = DefaultMaxEntries
	}
	return nil
}

// Entry is one item in the top-level structure snapshot.
type Entry struct {
	Path      string `json:"path"`
	Type      string `json:"type"` // "dir" or "file"
	FileCount int    `json:"file_count,omitempty"`
	Size      int64  `json:"size,omitempty"`
}

// EntryPoint is a detected program entry point.
type EntryPoint struct {
	File string `json:"file"`
	Hint string `json:"hint"`
}

// DocFile is a documentation file with its extracted title.
type DocFile struct {
	Path  string `json:"path"`
	Title string `json:"title,omitempty"`
}

// Stats summarizes one index run.
type Stats struct {
	Repo       string `json:"repo"`
	TotalFiles int    `json:"total_files"`
	Mode       Mode   `json:"mode"`
}

// Index is the structured index payload serialized to PROJECT_INDEX.json.
type Index struct {
	Metadata      Stats        `json:"metadata"`
	Structure     []Entry      `json:"structure"`
	EntryPoints   []EntryPoint `json:"entry_points"`
	Documentation []DocFile    `json:"documentation"`
	Configuration []string     `json:"configuration"`
	Tests         []string     `json:"tests"`
}

// Response is the result of one index generation.
type Response struct {
	Markdown    string   `json:"markdown"`
	Index       Index    `json:"index"`
	Stats       Stats    `json:"stats"`
	OutputPaths []string `json:"output_paths,omitempty"`
}
