package providers

import (
	"bytes"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"

	"github.com/nodewee/doc-translate/pkg/interfaces"
)

// wordGapRatio is the horizontal gap, relative to the font size, above which
// two glyphs on a row are treated as separate words
const wordGapRatio = 0.2

// LedongthucLoader implements interfaces.PDFLoader using github.com/ledongthuc/pdf
type LedongthucLoader struct{}

// NewLedongthucLoader creates a new instance of LedongthucLoader
func NewLedongthucLoader() *LedongthucLoader {
	return &LedongthucLoader{}
}

// Load opens an in-memory PDF
func (l *LedongthucLoader) Load(data []byte) (doc interfaces.PDFDocument, err error) {
	// the parser panics on some malformed inputs
	defer func() {
		if r := recover(); r != nil {
			doc, err = nil, fmt.Errorf("pdf: malformed document: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	return &ledongthucDocument{reader: reader}, nil
}

type ledongthucDocument struct {
	reader *pdf.Reader
}

func (d *ledongthucDocument) NumPages() int {
	return d.reader.NumPage()
}

func (d *ledongthucDocument) Page(n int) (page interfaces.PDFPage, err error) {
	if n < 1 || n > d.reader.NumPage() {
		return nil, fmt.Errorf("page %d out of range [1, %d]", n, d.reader.NumPage())
	}

	defer func() {
		if r := recover(); r != nil {
			page, err = nil, fmt.Errorf("pdf: malformed page %d: %v", n, r)
		}
	}()

	p := d.reader.Page(n)
	if p.V.IsNull() {
		return emptyPage{}, nil
	}
	return &ledongthucPage{page: p}, nil
}

type ledongthucPage struct {
	page pdf.Page
}

// TextItems returns one item per text row, top to bottom
func (p *ledongthucPage) TextItems() (items []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			items, err = nil, fmt.Errorf("pdf: malformed content stream: %v", r)
		}
	}()

	rows, err := p.page.GetTextByRow()
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		line := joinGlyphs(row.Content)
		if strings.TrimSpace(line) == "" {
			continue
		}
		items = append(items, line)
	}
	return items, nil
}

// joinGlyphs concatenates the glyphs of a row, adding a space where the
// layout leaves a visible gap and the content has none
func joinGlyphs(glyphs pdf.TextHorizontal) string {
	var b strings.Builder
	var prev *pdf.Text
	for i := range glyphs {
		g := &glyphs[i]
		if prev != nil && g.S != "" && !endsWithSpace(b.String()) && !startsWithSpace(g.S) {
			gap := g.X - (prev.X + prev.W)
			if gap > g.FontSize*wordGapRatio {
				b.WriteByte(' ')
			}
		}
		b.WriteString(g.S)
		prev = g
	}
	return b.String()
}

func endsWithSpace(s string) bool {
	if s == "" {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(s)
	return unicode.IsSpace(r)
}

func startsWithSpace(s string) bool {
	for _, r := range s {
		return unicode.IsSpace(r)
	}
	return false
}

type emptyPage struct{}

func (emptyPage) TextItems() ([]string, error) {
	return nil, nil
}
