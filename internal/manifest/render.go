package manifest

import (
	"fmt"
	"strings"
)

const (
	treeBranch     = "├──"
	treeLastBranch = "└──"
)

// Renderer defines the interface for rendering a manifest for humans.
type Renderer interface {
	Render(m *Manifest) string
}

// TreeRenderer implements Renderer as an indented text tree, used by the
// bundle CLI's scan and manifest commands.
type TreeRenderer struct{}

// Render renders the manifest as a formatted string.
func (r *TreeRenderer) Render(m *Manifest) string {
	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("Bundle manifest for: %s\n", m.AppName))
	builder.WriteString(strings.Repeat("=", 50) + "\n\n")

	builder.WriteString("data files:\n")
	r.renderList(&builder, dataFileLines(m.DataFiles))

	builder.WriteString("\nhidden imports:\n")
	r.renderList(&builder, m.HiddenImports)

	return builder.String()
}

// renderList writes one branch line per entry, marking the last one.
func (r *TreeRenderer) renderList(builder *strings.Builder, entries []string) {
	if len(entries) == 0 {
		builder.WriteString("  (none)\n")
		return
	}
	for i, entry := range entries {
		connector := treeBranch
		if i == len(entries)-1 {
			connector = treeLastBranch
		}
		builder.WriteString(fmt.Sprintf("  %s %s\n", connector, entry))
	}
}

func dataFileLines(files []DataFile) []string {
	lines := make([]string, 0, len(files))
	for _, f := range files {
		lines = append(lines, fmt.Sprintf("%s -> %s", f.Source, f.Dest))
	}
	return lines
}
