package wland

import "strings"

// Path returns the fixed destination for a format tag: ./wland.<tag>
// with the tag lowercased.
func Path(tag string) string {
	return "./wland." + strings.ToLower(tag)
}

// New selects a writer implementation from a format tag and binds it to
// [Path](tag). Tags are case-insensitive; an html or htm suffix picks
// [HTML], an md suffix picks [Markdown], and anything else falls back to
// [CSV] rather than failing. domain feeds the link targets of the
// Markdown and HTML writers; CSV ignores it.
func New(tag, domain string) Writer {
	path := Path(tag)
	switch {
	case strings.HasSuffix(path, "html"), strings.HasSuffix(path, "htm"):
		return NewHTML(path, domain)
	case strings.HasSuffix(path, "md"):
		return NewMarkdown(path, domain)
	default:
		return NewCSV(path)
	}
}
