// Package document turns uploaded files into plain text for keyword extraction.
package document

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	pdf "github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/unicode/norm"
)

// ErrUnsupported is returned for file extensions outside the allowed set.
var ErrUnsupported = errors.New("unsupported file format: allowed pdf, docx, txt, html")

var allowed = map[string]bool{
	".pdf":  true,
	".docx": true,
	".txt":  true,
	".html": true,
	".htm":  true,
}

var (
	reTags   = regexp.MustCompile(`<[^>]+>`)
	reSpaces = regexp.MustCompile(`[ \t\r\f\v]+`)
	reLines  = regexp.MustCompile(`\n+`)
)

// Allowed reports whether the file extension is one we can read.
func Allowed(filename string) bool {
	return allowed[strings.ToLower(filepath.Ext(filename))]
}

// Extract returns the cleaned text content of a pdf, docx, txt or html file.
func Extract(filename string, data []byte) (string, error) {
	var (
		text string
		err  error
	)
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		text, err = fromPDF(data)
	case ".docx":
		text, err = fromDocx(data)
	case ".txt":
		text = strings.ToValidUTF8(string(data), "")
	case ".html", ".htm":
		text, err = fromHTML(data)
	default:
		return "", ErrUnsupported
	}
	if err != nil {
		return "", fmt.Errorf("extract %s: %w", filepath.Base(filename), err)
	}
	return Clean(text), nil
}

// ExtractBestEffort never fails: unreadable files yield "" and a warning.
func ExtractBestEffort(log *logrus.Entry, filename string, data []byte) string {
	text, err := Extract(filename, data)
	if err != nil {
		if log != nil {
			log.WithError(err).WithField("filename", filename).Warn("text extraction failed")
		}
		return ""
	}
	return text
}

// Clean applies NFKC, turns NBSP into spaces and collapses whitespace runs
// while keeping line breaks.
func Clean(s string) string {
	s = norm.NFKC.String(s)
	s = strings.ReplaceAll(s, "\u00A0", " ")
	s = reSpaces.ReplaceAllString(s, " ")
	s = strings.ReplaceAll(s, " \n", "\n")
	s = strings.ReplaceAll(s, "\n ", "\n")
	s = reLines.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}

func fromPDF(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	rs, err := r.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err = io.Copy(&buf, rs); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func fromDocx(data []byte) (string, error) {
	d, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	defer d.Close()

	// GetContent hands back the raw document.xml.
	xml := d.Editable().GetContent()
	xml = strings.ReplaceAll(xml, "</w:p>", "\n")
	xml = strings.ReplaceAll(xml, "<w:tab/>", "\t")
	txt := reTags.ReplaceAllString(xml, " ")
	return html.UnescapeString(txt), nil
}

func fromHTML(data []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	doc.Find("script, style, noscript").Remove()
	doc.Find("p, div, li, br, tr, h1, h2, h3, h4, h5, h6").AppendHtml("\n")
	var b strings.Builder
	doc.Find("body").Each(func(_ int, s *goquery.Selection) {
		b.WriteString(s.Text())
	})
	return b.String(), nil
}
