package wland

import (
	"fmt"
	"strings"
)

const pageTitle = "Wland Parody Filter"

// HTML writes records as one self-contained document. Open leaves the
// table element unterminated so rows can stream in; Close seals the
// table, body, and document.
type HTML struct {
	stream
	domain string
}

// NewHTML returns an HTML writer targeting path. domain is the site the
// link targets point at.
func NewHTML(path, domain string) *HTML {
	return &HTML{stream{path: path}, domain}
}

// attr is one name="value" pair on an element.
type attr struct{ key, val string }

func openTag(name string, attrs []attr) string {
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(name)
	for _, a := range attrs {
		fmt.Fprintf(&b, " %s=%q", a.key, a.val)
	}
	b.WriteByte('>')
	return b.String()
}

// elem renders <name attrs>body</name>.
func elem(name, body string, attrs ...attr) string {
	return openTag(name, attrs) + body + "</" + name + ">"
}

// void renders an element with no body and no closing tag, like <meta …>.
func void(name string, attrs ...attr) string {
	return openTag(name, attrs)
}

func htmlLink(shown, target string) string {
	return elem("a", shown,
		attr{"href", target},
		attr{"target", "_blank"},
		attr{"rel", "noopener noreferrer"})
}

// tableRow renders a tr of th or td cells.
func tableRow(header bool, cells ...string) string {
	tag := "td"
	if header {
		tag = "th"
	}
	var b strings.Builder
	for _, c := range cells {
		b.WriteString(elem(tag, c))
	}
	return elem("tr", b.String())
}

// head returns the document head: charset meta plus the page title.
func head() string {
	return elem("head", void("meta", attr{"charset", "utf-8"})+elem("title", pageTitle))
}

// Header returns the complete table element with its caption and header
// row. Open strips the closing tag so rows can follow.
func (h *HTML) Header() string {
	return elem("table",
		elem("caption", "Search Result")+
			tableRow(true, colAuthor, colTitle, colOrigins, colTags),
		attr{"border", "1"})
}

// Row renders a tr with four cells: linked author, linked title, and the
// comma-joined Origins and Tags.
func (h *HTML) Row(r Record) string {
	return tableRow(false,
		htmlLink(r.AuthorName, authorURL(h.domain, r.AuthorID)),
		htmlLink(r.Title, workURL(h.domain, r.WID)),
		strings.Join(r.Origins, ", "),
		strings.Join(r.Tags, ", "),
	)
}

// Open creates the file and writes the document prologue with the table
// left unterminated.
func (h *HTML) Open() bool {
	return h.openWithProlog(
		"<html>" + head() + "\n" +
			"<body>" + strings.TrimSuffix(h.Header(), "</table>") + "\n")
}

// Append writes one table row.
func (h *HTML) Append(r Record) error {
	return h.write(h.Row(r) + "\n")
}

// Close seals the table and document, then releases the file. When the
// file is already gone the epilogue is skipped entirely.
func (h *HTML) Close() error {
	if h.writable() {
		if err := h.write("</table></body></html>\n"); err != nil {
			h.stream.close()
			return err
		}
	}
	return h.stream.close()
}
