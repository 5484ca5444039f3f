package repoindex

import (
	"fmt"
	"os"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// sectionLimit caps list sections in the rendered Markdown; overflow is
// summarized with a count.
const sectionLimit = 15

// docTitle extracts the first level-1 heading from a markdown file.
// Returns "" when the file is unreadable or has no H1.
func docTitle(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}

	md := goldmark.New()
	reader := text.NewReader(data)
	doc := md.Parser().Parse(reader)

	title := ""
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		heading, ok := n.(*ast.Heading)
		if !ok || heading.Level != 1 {
			return ast.WalkContinue, nil
		}

		var sb strings.Builder
		for child := heading.FirstChild(); child != nil; child = child.NextSibling() {
			if textNode, ok := child.(*ast.Text); ok {
				sb.Write(textNode.Value(data))
			}
		}
		title = strings.TrimSpace(sb.String())
		return ast.WalkStop, nil
	})

	return title
}

// renderMarkdown renders the index as PROJECT_INDEX.md content.
func renderMarkdown(repoName string, index Index) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# Project Index: %s\n\n", repoName)
	fmt.Fprintf(&sb, "- Total files: %d\n", index.Metadata.TotalFiles)
	fmt.Fprintf(&sb, "- Mode: %s\n", index.Metadata.Mode)

	sb.WriteString("\n## 📁 Structure Snapshot\n")
	for _, entry := range index.Structure {
		if entry.Type == "dir" {
			fmt.Fprintf(&sb, "- 📁 `%s` (%d files)\n", entry.Path, entry.FileCount)
		} else {
			fmt.Fprintf(&sb, "- 📄 `%s` (%d bytes)\n", entry.Path, entry.Size)
		}
	}

	sb.WriteString("\n## 🚀 Entry Points\n")
	for _, entry := range index.EntryPoints {
		fmt.Fprintf(&sb, "- `%s` — %s\n", entry.File, entry.Hint)
	}

	if len(index.Documentation) > 0 {
		sb.WriteString("\n## 📚 Documentation\n")
		for i, doc := range index.Documentation {
			if i >= sectionLimit {
				fmt.Fprintf(&sb, "- ... (%d more)\n", len(index.Documentation)-sectionLimit)
				break
			}
			if doc.Title != "" {
				fmt.Fprintf(&sb, "- `%s` — %s\n", doc.Path, doc.Title)
			} else {
				fmt.Fprintf(&sb, "- `%s`\n", doc.Path)
			}
		}
	}

	if len(index.Configuration) > 0 {
		sb.WriteString("\n## ⚙️ Configuration\n")
		for i, cfg := range index.Configuration {
			if i >= sectionLimit {
				fmt.Fprintf(&sb, "- ... (%d more)\n", len(index.Configuration)-sectionLimit)
				break
			}
			fmt.Fprintf(&sb, "- `%s`\n", cfg)
		}
	}

	if len(index.Tests) > 0 {
		sb.WriteString("\n## 🧪 Tests\n")
		for i, test := range index.Tests {
			if i >= sectionLimit {
				fmt.Fprintf(&sb, "- ... (%d more)\n", len(index.Tests)-sectionLimit)
				break
			}
			fmt.Fprintf(&sb, "- `%s`\n", test)
		}
	}

	sb.WriteString("\n")
	return sb.String()
}
