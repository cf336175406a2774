package reports

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

const supervisorName = "Farheen"

// RenderPDF lays the selected classes out one section per page. The first
// page carries the document header with the generation date.
func RenderPDF(classes []ClassReport, generatedAt time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")

	for i, c := range classes {
		pdf.AddPage()

		if i == 0 {
			pdf.SetFont("Arial", "B", 22)
			pdf.CellFormat(0, 10, "Class Report", "", 1, "C", false, 0, "")
			pdf.SetFont("Arial", "", 11)
			pdf.SetTextColor(102, 102, 102)
			pdf.CellFormat(0, 6, "Generated on: "+generatedAt.Format("2006-01-02"), "", 1, "C", false, 0, "")
			pdf.SetTextColor(0, 0, 0)
			pdf.Ln(10)
		}

		pdf.SetFont("Arial", "B", 16)
		pdf.Cell(0, 8, c.Name)
		pdf.Ln(9)
		pdf.SetDrawColor(52, 152, 219)
		pdf.SetLineWidth(0.6)
		pdf.Line(15, pdf.GetY(), 195, pdf.GetY())
		pdf.Ln(6)

		writeField(pdf, "Supervisor:", supervisorName)
		writeField(pdf, "Name of Teachers:", c.TeacherNames)
		writeField(pdf, "Class Summary:", c.Description)
		writeField(pdf, "Total Students:", fmt.Sprintf("%d", c.TotalStudents))
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render report pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func writeField(pdf *gofpdf.Fpdf, label, value string) {
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(45, 7, label)
	pdf.SetFont("Arial", "", 12)
	pdf.MultiCell(0, 7, value, "", "L", false)
	pdf.Ln(1)
}
