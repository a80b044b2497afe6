package pdf

import (
	"fmt"
	"io"

	"github.com/SscSPs/route_lending_app/internal/core/domain"
	"github.com/SscSPs/route_lending_app/internal/core/ledger"
	"github.com/jung-kurt/gofpdf"
)

// Generator renders documents for collectors. It is an interface so handlers
// can be tested without producing real PDFs.
type Generator interface {
	RouteSheet(w io.Writer, data RouteSheetData) error
}

// RouteSheetData is one collector's day on a route.
type RouteSheetData struct {
	Route     domain.Route
	Day       domain.Date
	Standings []ledger.Standing
}

// SheetGenerator draws route sheets with the core Helvetica font, so no font
// files are needed at runtime.
type SheetGenerator struct {
	Author   string
	fontName string
}

func NewSheetGenerator(author string) *SheetGenerator {
	return &SheetGenerator{Author: author, fontName: "Helvetica"}
}

var sheetColumns = []struct {
	title string
	width float64
	align string
}{
	{"#", 10, "C"},
	{"Client", 62, "L"},
	{"Address", 48, "L"},
	{"Installment", 22, "R"},
	{"Balance", 22, "R"},
	{"Behind", 14, "C"},
}

func (g *SheetGenerator) RouteSheet(w io.Writer, data RouteSheetData) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(tr("Route sheet "+data.Route.Name), false)
	pdf.SetAuthor(g.Author, false)
	pdf.SetMargins(12, 15, 12)
	pdf.SetAutoPageBreak(true, 18)

	pdf.AliasNbPages("")
	pdf.SetHeaderFunc(func() {
		pdf.SetFont(g.fontName, "B", 14)
		pdf.CellFormat(0, 8, tr(data.Route.Name), "", 1, "L", false, 0, "")
		pdf.SetFont(g.fontName, "", 10)
		pdf.CellFormat(0, 6, "Collection day "+data.Day.String(), "", 1, "L", false, 0, "")
		pdf.Ln(2)
		g.tableHeader(pdf)
	})
	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont(g.fontName, "", 8)
		pdf.CellFormat(0, 8, fmt.Sprintf("Page %d/{nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()
	pdf.SetFont(g.fontName, "", 9)
	if len(data.Standings) == 0 {
		pdf.CellFormat(0, 8, "No active clients on this route.", "", 1, "L", false, 0, "")
	}
	for _, s := range data.Standings {
		g.row(pdf, tr, s)
	}

	pdf.Ln(4)
	pdf.SetFont(g.fontName, "B", 9)
	pdf.CellFormat(0, 6, fmt.Sprintf("Clients: %d   Overdue: %d", len(data.Standings), len(ledger.Overdue(data.Standings))),
		"", 1, "L", false, 0, "")

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render route sheet: %w", err)
	}
	return nil
}

func (g *SheetGenerator) tableHeader(pdf *gofpdf.Fpdf) {
	pdf.SetFont(g.fontName, "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for _, col := range sheetColumns {
		pdf.CellFormat(col.width, 7, col.title, "1", 0, col.align, true, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont(g.fontName, "", 9)
}

func (g *SheetGenerator) row(pdf *gofpdf.Fpdf, tr func(string) string, s ledger.Standing) {
	name := s.Client.Name
	if s.Client.Alias != "" {
		name += " (" + s.Client.Alias + ")"
	}
	installment, balance, behind := "-", "-", ""
	if s.Credit != nil && s.Summary != nil {
		installment = s.Credit.InstallmentValue.StringFixed(2)
		balance = s.Summary.Balance.StringFixed(2)
		if s.Summary.InstallmentsBehind > 0 {
			behind = fmt.Sprintf("%d", s.Summary.InstallmentsBehind)
		}
	}

	fill := s.IsOverdue()
	if fill {
		pdf.SetFillColor(252, 228, 214)
	}
	values := []string{
		fmt.Sprintf("%d", s.Client.Order),
		tr(name),
		tr(s.Client.Address),
		installment,
		balance,
		behind,
	}
	for i, col := range sheetColumns {
		pdf.CellFormat(col.width, 6, truncate(pdf, values[i], col.width-2), "1", 0, col.align, fill, 0, "")
	}
	pdf.Ln(-1)
}

func truncate(pdf *gofpdf.Fpdf, s string, width float64) string {
	if pdf.GetStringWidth(s) <= width {
		return s
	}
	for len(s) > 0 && pdf.GetStringWidth(s+"...") > width {
		s = s[:len(s)-1]
	}
	return s + "..."
}
