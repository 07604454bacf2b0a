package wland

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Preview renders records as an aligned ASCII table for terminals. It is
// a read-only view over the same four columns the Markdown and HTML
// sheets use; nothing is written to disk. Cell padding counts display
// width, so CJK names and titles line up.
func Preview(w io.Writer, records []Record) error {
	header := []string{colAuthor, colTitle, colOrigins, colTags}
	rows := make([][]string, len(records))
	for i, r := range records {
		rows[i] = []string{
			r.AuthorName,
			r.Title,
			strings.Join(r.Origins, ", "),
			strings.Join(r.Tags, ", "),
		}
	}

	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if cw := runewidth.StringWidth(cell); cw > widths[i] {
				widths[i] = cw
			}
		}
	}

	sep := previewSeparator(widths)
	if _, err := fmt.Fprintln(w, sep); err != nil {
		return err
	}
	if err := previewRow(w, header, widths); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, sep); err != nil {
		return err
	}
	for _, row := range rows {
		if err := previewRow(w, row, widths); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, sep)
	return err
}

func previewSeparator(widths []int) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		parts[i] = strings.Repeat("-", w+2)
	}
	return "+" + strings.Join(parts, "+") + "+"
}

// pad right-fills a cell to width terminal columns, counting wide runes
// as two.
func pad(s string, width int) string {
	gap := width - runewidth.StringWidth(s)
	if gap < 0 {
		gap = 0
	}
	return s + strings.Repeat(" ", gap)
}

func previewRow(w io.Writer, cells []string, widths []int) error {
	padded := make([]string, len(widths))
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		padded[i] = pad(cell, width)
	}
	_, err := fmt.Fprintf(w, "| %s |\n", strings.Join(padded, " | "))
	return err
}
