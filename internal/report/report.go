// Package report renders the outcome of one comparison as a single page PDF.
package report

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/ughe/levscore/editdist"
)

type Result struct {
	Path      string
	Reference string
	Guess     string
	Distance  int
	Score     editdist.Score
}

const (
	fontSize = 11.0
	lineHt   = 14.0
	margin   = 54.0 // 3/4 inch
)

func build(r Result) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "pt", "Letter", "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(true, margin)
	pdf.SetTitle("levscore report", true)
	pdf.AddPage()
	// Core fonts are cp1252. Characters outside it do not render faithfully.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	section := func(title, body string) {
		pdf.SetFont("Courier", "B", fontSize)
		pdf.CellFormat(0, lineHt, tr(title), "", 1, "L", false, 0, "")
		pdf.SetFont("Courier", "", fontSize)
		pdf.MultiCell(0, lineHt, tr(body), "", "L", false)
		pdf.Ln(lineHt / 2)
	}

	pdf.SetFont("Courier", "B", fontSize+5)
	pdf.CellFormat(0, lineHt*2, "Correctness: "+r.Score.String(), "", 1, "L", false, 0, "")
	section("File", r.Path)
	section("Plaintext", r.Reference)
	section("Guessed plaintext", r.Guess)
	section("Edit distance", fmt.Sprintf("%d", r.Distance))
	return pdf
}

// Write renders r to w.
func Write(w io.Writer, r Result) error {
	return build(r).Output(w)
}

// WritePDF renders r to the file fileName.
func WritePDF(fileName string, r Result) error {
	return build(r).OutputFileAndClose(fileName)
}
