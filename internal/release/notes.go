package release

import (
	"fmt"
	"html"
	"strings"

	"github.com/ossrs/go-oryx-lib/errors"
)

// Output formats.
const (
	FormatMarkdown = "markdown"
	FormatSparkle  = "sparkle"
)

// ValidFormat reports whether f is a known output format.
func ValidFormat(f string) bool {
	return f == FormatMarkdown || f == FormatSparkle
}

// Category groups commit subjects under a heading.
type Category struct {
	Title    string
	keywords []string
	Items    []string
}

// Notes are the categorized commits of one release.
type Notes struct {
	Version      string
	Features     Category
	Fixes        Category
	Improvements Category
	Other        Category
}

// Categorize sorts commits by the first keyword group their subject
// contains, checked in the order features, fixes, improvements.
func Categorize(version string, commits []Commit) *Notes {
	n := &Notes{
		Version:      version,
		Features:     Category{Title: "✨ New Features", keywords: []string{"add", "feat", "feature", "new"}},
		Fixes:        Category{Title: "🐛 Bug Fixes", keywords: []string{"fix", "bug", "repair", "resolve"}},
		Improvements: Category{Title: "🔧 Improvements", keywords: []string{"update", "improve", "enhance", "optimize", "refactor"}},
		Other:        Category{Title: "📝 Changes"},
	}

	for _, c := range commits {
		subject := strings.ToLower(c.Subject)
		matched := false
		for _, cat := range []*Category{&n.Features, &n.Fixes, &n.Improvements} {
			if containsAny(subject, cat.keywords) {
				cat.Items = append(cat.Items, c.Subject)
				matched = true
				break
			}
		}
		if !matched {
			n.Other.Items = append(n.Other.Items, c.Subject)
		}
	}
	return n
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

// sections returns the non-empty categories to print. Uncategorized
// changes are listed only when nothing else is.
func (n *Notes) sections() []Category {
	var out []Category
	for _, c := range []Category{n.Features, n.Fixes, n.Improvements} {
		if len(c.Items) > 0 {
			out = append(out, c)
		}
	}
	if len(out) == 0 && len(n.Other.Items) > 0 {
		out = append(out, n.Other)
	}
	return out
}

// Markdown renders the notes as markdown.
func (n *Notes) Markdown() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "## Version %s\n\n", n.Version)
	for _, c := range n.sections() {
		fmt.Fprintf(&sb, "### %s\n", c.Title)
		for _, item := range c.Items {
			fmt.Fprintf(&sb, "- %s\n", item)
		}
		sb.WriteString("\n")
	}
	return strings.TrimSpace(sb.String())
}

// Sparkle renders the notes as the HTML fragment an appcast embeds.
func (n *Notes) Sparkle() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "<h2>Version %s</h2>\n\n", html.EscapeString(n.Version))
	for _, c := range n.sections() {
		fmt.Fprintf(&sb, "<h3>%s</h3>\n<ul>\n", c.Title)
		for _, item := range c.Items {
			fmt.Fprintf(&sb, "<li>%s</li>\n", html.EscapeString(item))
		}
		sb.WriteString("</ul>\n\n")
	}
	return strings.TrimSpace(sb.String())
}

// Render renders the notes in the given format.
func (n *Notes) Render(format string) (string, error) {
	switch format {
	case FormatMarkdown:
		return n.Markdown(), nil
	case FormatSparkle:
		return n.Sparkle(), nil
	}
	return "", errors.Errorf("unknown format %q, want markdown or sparkle", format)
}

// MarkdownToSparkle converts the headings and bullet lists of model
// written markdown to HTML. Other lines pass through. Input that already
// looks like HTML is returned as is.
func MarkdownToSparkle(md string) string {
	md = strings.TrimSpace(md)
	if strings.HasPrefix(md, "<") {
		return md
	}

	var sb strings.Builder
	inList := false
	closeList := func() {
		if inList {
			sb.WriteString("</ul>\n")
			inList = false
		}
	}
	for _, line := range strings.Split(md, "\n") {
		line = strings.TrimRight(line, " \t")
		switch {
		case strings.HasPrefix(line, "### "):
			closeList()
			fmt.Fprintf(&sb, "<h3>%s</h3>\n", html.EscapeString(line[4:]))
		case strings.HasPrefix(line, "## "):
			closeList()
			fmt.Fprintf(&sb, "<h2>%s</h2>\n", html.EscapeString(line[3:]))
		case strings.HasPrefix(line, "- "), strings.HasPrefix(line, "* "):
			if !inList {
				sb.WriteString("<ul>\n")
				inList = true
			}
			fmt.Fprintf(&sb, "<li>%s</li>\n", html.EscapeString(line[2:]))
		case line == "":
			closeList()
			sb.WriteString("\n")
		default:
			closeList()
			sb.WriteString(html.EscapeString(line) + "\n")
		}
	}
	closeList()
	return strings.TrimSpace(sb.String())
}
