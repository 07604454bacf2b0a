// Package wland renders filter-result records into sheet files in one of
// three formats: CSV, Markdown, and HTML.
//
// Every format implements [Writer], a streaming lifecycle: [Writer.Open]
// acquires the output file and emits the format's header,
// [Writer.Append] emits one row per record in call order, and
// [Writer.Close] emits the footer (HTML only) and releases the file.
// [New] picks the implementation from a format tag and binds it to the
// fixed ./wland.<tag> destination:
//
//	w := wland.New("csv", "example.org")
//	if !w.Open() {
//		return errors.New("cannot create sheet")
//	}
//	defer w.Close()
//	for _, r := range records {
//		if err := w.Append(r); err != nil {
//			return err
//		}
//	}
//
// # Formats
//
//   - CSV — UTF-8 with a BOM for spreadsheet tools, six columns, tag
//     collections space-joined, no footer.
//   - Markdown — minimal four-column pipe table, author and title as
//     [text](url) links, no footer.
//   - HTML — one self-contained document; the table element stays open
//     across Append calls and is sealed by Close.
//
// Markdown and HTML build absolute link targets from a site domain:
// https://<domain>/u<author-uid> and https://<domain>/wid<wid>.
//
// # Lifecycle rules
//
// Open reports failure as false rather than an error; a failed Open
// releases anything it acquired and the writer may be retried. Open on
// an already-open writer returns false. Append on a closed writer
// returns [ErrNotOpen]. Close on a closed writer is a no-op; the HTML
// footer is only ever written while the file is still held. Writers are
// not safe for concurrent use.
//
// # Caveat
//
// Field content is written verbatim. A comma inside a title breaks the
// CSV column count, and markup in names or titles is not entity-escaped
// in the Markdown and HTML sheets. Callers feeding untrusted content
// into sheets need their own sanitization.
package wland
