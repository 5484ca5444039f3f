package repoindex

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// defaultIgnore lists directory names excluded from every walk.
var defaultIgnore = map[string]bool{
	".git":          true,
	".venv":         true,
	".idea":         true,
	"__pycache__":   true,
	"node_modules":  true,
	"dist":          true,
	"build":         true,
	".claude":       true,
	".airis":        true,
	".pytest_cache": true,
}

// entryPointHints maps known entry point filenames to a description.
var entryPointHints = map[string]string{
	"main.go":     "Go main entry",
	"main.py":     "Python main entry",
	"cli.py":      "CLI entry",
	"__main__.py": "Package entry",
	"manage.py":   "Django management",
	"index.ts":    "TypeScript entry",
	"index.js":    "JavaScript entry",
}

// configExtensions identifies top-level configuration files.
var configExtensions = map[string]bool{
	".toml": true,
	".yaml": true,
	".yml":  true,
	".json": true,
}

// Generate walks the repository and builds the index. Output files are
// written only when the request names an output directory.
func Generate(req Request) (*Response, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	root, err := filepath.Abs(expandUser(req.RepoPath))
	if err != nil {
		return nil, fmt.Errorf("resolve repo path: %w", err)
	}
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("repository path not found: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("repository path is not a directory: %s", root)
	}

	walk, err := collect(root, req.Mode.maxDepth())
	if err != nil {
		return nil, fmt.Errorf("walk repository: %w", err)
	}

	stats := Stats{
		Repo:       root,
		TotalFiles: len(walk.files),
		Mode:       req.Mode,
	}

	index := Index{
		Metadata:      stats,
		Structure:     structureSnapshot(root, req.MaxEntries),
		EntryPoints:   findEntryPoints(root, walk.files),
		Configuration: findConfigs(root),
	}
	if !req.SkipDocs {
		index.Documentation = findDocs(root)
	}
	if !req.SkipTests {
		index.Tests = findTests(root, walk.files, walk.dirs)
	}

	resp := &Response{
		Markdown: renderMarkdown(filepath.Base(root), index),
		Index:    index,
		Stats:    stats,
	}

	if req.OutputDir != "" {
		paths, err := writeIndexFiles(req.OutputDir, resp)
		if err != nil {
			return nil, err
		}
		resp.OutputPaths = paths
	}

	return resp, nil
}

// expandUser resolves a leading ~ against the user home directory.
func expandUser(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
		}
	}
	return path
}

// walkResult holds relative file and directory paths from one walk.
type walkResult struct {
	files []string
	dirs  []string
}

// collect walks root up to maxDepth, skipping ignored directories.
// Returned paths are slash-separated and relative to root.
func collect(root string, maxDepth int) (*walkResult, error) {
	result := &walkResult{}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // Skip unreadable entries, keep walking
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil || rel == "." {
			return nil
		}
		rel = filepath.ToSlash(rel)
		depth := strings.Count(rel, "/") + 1

		if d.IsDir() {
			if defaultIgnore[d.Name()] {
				return filepath.SkipDir
			}
			if depth > maxDepth {
				return filepath.SkipDir
			}
			result.dirs = append(result.dirs, rel)
			return nil
		}

		if depth > maxDepth {
			return nil
		}
		result.files = append(result.files, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(result.files)
	sort.Strings(result.dirs)
	return result, nil
}

// structureSnapshot summarizes the repository's top level, capped at
// maxEntries, in sorted order.
func structureSnapshot(root string, maxEntries int) []Entry {
	children, err := os.ReadDir(root)
	if err != nil {
		return nil
	}

	sort.Slice(children, func(i, j int) bool { return children[i].Name() < children[j].Name() })

	var entries []Entry
	for _, child := range children {
		if defaultIgnore[child.Name()] {
			continue
		}
		if len(entries) >= maxEntries {
			break
		}

		if child.IsDir() {
			entries = append(entries, Entry{
				Path:      child.Name(),
				Type:      "dir",
				FileCount: countFiles(filepath.Join(root, child.Name())),
			})
			continue
		}

		var size int64
		if info, err := child.Info(); err == nil {
			size = info.Size()
		}
		entries = append(entries, Entry{
			Path: child.Name(),
			Type: "file",
			Size: size,
		})
	}

	return entries
}

// countFiles counts regular files under dir, ignoring nothing: the
// snapshot reports raw directory weight.
func countFiles(dir string) int {
	count := 0
	filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			count++
		}
		return nil
	})
	return count
}

// findEntryPoints scans collected files for known entry point names.
func findEntryPoints(root string, files []string) []EntryPoint {
	var entries []EntryPoint
	for _, rel := range files {
		base := filepath.Base(rel)
		if hint, ok := entryPointHints[base]; ok {
			entries = append(entries, EntryPoint{File: rel, Hint: hint})
		}
	}
	return entries
}

// findDocs locates the root README and docs/ markdown files, with titles.
func findDocs(root string) []DocFile {
	seen := map[string]bool{}
	var docs []DocFile

	add := func(rel string) {
		if seen[rel] {
			return
		}
		seen[rel] = true
		docs = append(docs, DocFile{
			Path:  rel,
			Title: docTitle(filepath.Join(root, rel)),
		})
	}

	if _, err := os.Stat(filepath.Join(root, "README.md")); err == nil {
		add("README.md")
	}

	docsDir := filepath.Join(root, "docs")
	filepath.WalkDir(docsDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if defaultIgnore[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), ".md") {
			if rel, err := filepath.Rel(root, path); err == nil {
				add(filepath.ToSlash(rel))
			}
		}
		return nil
	})

	sort.Slice(docs, func(i, j int) bool { return docs[i].Path < docs[j].Path })
	return docs
}

// findConfigs lists top-level configuration files plus the Go module file.
func findConfigs(root string) []string {
	children, err := os.ReadDir(root)
	if err != nil {
		return nil
	}

	var configs []string
	for _, child := range children {
		if child.IsDir() {
			continue
		}
		name := child.Name()
		if configExtensions[strings.ToLower(filepath.Ext(name))] || name == "go.mod" {
			configs = append(configs, name)
		}
	}

	sort.Strings(configs)
	return configs
}

// findTests lists test directories and test files.
func findTests(root string, files, dirs []string) []string {
	seen := map[string]bool{}
	var tests []string

	add := func(rel string) {
		if !seen[rel] {
			seen[rel] = true
			tests = append(tests, rel)
		}
	}

	for _, dir := range dirs {
		base := filepath.Base(dir)
		if base == "tests" || base == "testdata" {
			add(dir)
		}
	}
	for _, file := range files {
		base := filepath.Base(file)
		if strings.HasSuffix(base, "_test.go") || (strings.HasPrefix(base, "test_") && strings.HasSuffix(base, ".py")) {
			add(file)
		}
	}

	sort.Strings(tests)
	return tests
}
