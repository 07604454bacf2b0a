package wland

import "strings"

// Markdown writes records as a minimal four-column pipe table with the
// author and title cells rendered as links into domain.
type Markdown struct {
	stream
	domain string
}

// NewMarkdown returns a Markdown writer targeting path. domain is the
// site the link targets point at.
func NewMarkdown(path, domain string) *Markdown {
	return &Markdown{stream{path: path}, domain}
}

// pipeRow joins cells into |a|b|c| form.
func pipeRow(cells ...string) string {
	return "|" + strings.Join(cells, "|") + "|"
}

func mdLink(shown, target string) string {
	return "[" + shown + "](" + target + ")"
}

// Header returns the column row and the separator row, newline-terminated.
func (m *Markdown) Header() string {
	return pipeRow(colAuthor, colTitle, colOrigins, colTags) + "\n" +
		pipeRow("-", "-", "-", "-") + "\n"
}

// Row renders four cells; Origins and Tags are comma-joined.
func (m *Markdown) Row(r Record) string {
	return pipeRow(
		mdLink(r.AuthorName, authorURL(m.domain, r.AuthorID)),
		mdLink(r.Title, workURL(m.domain, r.WID)),
		strings.Join(r.Origins, ", "),
		strings.Join(r.Tags, ", "),
	)
}

// Open creates the file and writes the table header block.
func (m *Markdown) Open() bool {
	return m.openWithProlog(m.Header())
}

// Append writes one table row.
func (m *Markdown) Append(r Record) error {
	return m.write(m.Row(r) + "\n")
}

// Close releases the file; Markdown has no footer.
func (m *Markdown) Close() error {
	return m.stream.close()
}
