package wland

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Column names shared by every sheet format.
const (
	colAuthor  = "Author"
	colTitle   = "Title"
	colOrigins = "Origins"
	colTags    = "Tags"
)

// ErrNotOpen is returned when a row is appended to a writer whose output
// file is not open.
var ErrNotOpen = errors.New("sheet is not open")

// Record is one filter result: a work and the author who posted it.
// Writers treat records as read-only.
type Record struct {
	AuthorID   int      `yaml:"author_uid" json:"author_uid"`
	AuthorName string   `yaml:"author_name" json:"author_name"`
	WID        int      `yaml:"wid" json:"wid"`
	Title      string   `yaml:"title" json:"title"`
	Origins    []string `yaml:"origins" json:"origins"`
	Tags       []string `yaml:"tags" json:"tags"`
}

// Writer is the lifecycle contract shared by all sheet formats.
//
// The lifecycle is open → append* → close. Open acquires the output file
// and writes the format's prologue (header line, table opening, …); it
// reports failure as false instead of an error, releases anything it
// partially acquired, and may be retried. Open on an already-open writer
// returns false and leaves the open file untouched.
//
// Append renders one record with Row and writes it followed by a newline.
// Rows land in the file in exactly the order Append is called. Append on
// a closed writer returns [ErrNotOpen].
//
// Close writes the format's epilogue, if it has one, and releases the
// file. Close on an already-closed writer is a no-op returning nil.
//
// Header and Row are pure: they render the format's column-header block
// and a single record without touching the writer's state.
//
// A Writer is not safe for concurrent use.
type Writer interface {
	Open() bool
	Append(Record) error
	Close() error
	Header() string
	Row(Record) string
}

const utf8BOM = "\xef\xbb\xbf"

// stream owns the output file for one writer. Implementations embed it;
// the handle never leaves the lifecycle methods.
type stream struct {
	path string
	bom  bool
	f    *os.File
}

// open creates or truncates the target file, writing a UTF-8 BOM first
// when the format asks for one. Any failure releases the file and
// reports false.
func (s *stream) open() bool {
	if s.f != nil {
		return false
	}
	f, err := os.Create(s.path)
	if err != nil {
		return false
	}
	if s.bom {
		if _, err := io.WriteString(f, utf8BOM); err != nil {
			f.Close()
			return false
		}
	}
	s.f = f
	return true
}

// openWithProlog acquires the file and writes the format prologue,
// rolling back to closed if the prologue cannot be written.
func (s *stream) openWithProlog(prolog string) bool {
	if !s.open() {
		return false
	}
	if err := s.write(prolog); err != nil {
		s.close()
		return false
	}
	return true
}

func (s *stream) writable() bool { return s.f != nil }

func (s *stream) write(text string) error {
	if s.f == nil {
		return ErrNotOpen
	}
	_, err := io.WriteString(s.f, text)
	return err
}

// close releases the file. Closing an already-closed stream is a no-op.
func (s *stream) close() error {
	if s.f == nil {
		return nil
	}
	err := s.f.Close()
	s.f = nil
	return err
}

func authorURL(domain string, uid int) string {
	return fmt.Sprintf("https://%s/u%d", domain, uid)
}

func workURL(domain string, wid int) string {
	return fmt.Sprintf("https://%s/wid%d", domain, wid)
}
