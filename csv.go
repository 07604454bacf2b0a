package wland

import (
	"fmt"
	"strings"
)

// CSV writes records as comma-separated rows. The file starts with a
// UTF-8 BOM so spreadsheet tools detect the encoding. Fields are written
// verbatim: a comma inside a title lands in the file unquoted.
type CSV struct {
	stream
}

// NewCSV returns a CSV writer targeting path.
func NewCSV(path string) *CSV {
	return &CSV{stream{path: path, bom: true}}
}

// Header returns the six-column header line.
func (c *CSV) Header() string {
	return strings.Join([]string{
		colAuthor + " UID",
		colAuthor + " user name",
		"WID",
		colTitle,
		colOrigins,
		colTags,
	}, ",")
}

// Row renders one record; Origins and Tags are space-joined.
func (c *CSV) Row(r Record) string {
	return fmt.Sprintf("%d,%s,%d,%s,%s,%s",
		r.AuthorID, r.AuthorName, r.WID, r.Title,
		strings.Join(r.Origins, " "), strings.Join(r.Tags, " "))
}

// Open creates the file and writes the BOM and header line.
func (c *CSV) Open() bool {
	return c.openWithProlog(c.Header() + "\n")
}

// Append writes one row.
func (c *CSV) Append(r Record) error {
	return c.write(c.Row(r) + "\n")
}

// Close releases the file; CSV has no footer.
func (c *CSV) Close() error {
	return c.stream.close()
}
