package reports

import (
	"bytes"
	"fmt"
	"time"

	"github.com/paveiq/bidmaster/internal/domain/entities"

	"github.com/jung-kurt/gofpdf"
)

// RenderPDF renders the project report: header, project info grid, material
// and labor tables, financial summary, scope and requirements.
func RenderPDF(p entities.Project) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	// Header
	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetTextColor(44, 62, 80)
	pdf.CellFormat(0, 10, "BidMaster", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, "Project Report: "+p.Name, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(127, 140, 141)
	pdf.CellFormat(0, 6, fmt.Sprintf("Generated on %s | Project ID: %s",
		time.Now().Format("January 2, 2006"), p.ID), "", 1, "L", false, 0, "")
	pdf.SetDrawColor(52, 152, 219)
	pdf.SetLineWidth(0.6)
	pdf.Line(15, pdf.GetY()+2, 195, pdf.GetY()+2)
	pdf.Ln(8)

	// Project info grid
	pdf.SetTextColor(51, 51, 51)
	infoPair(pdf, "Project Type", p.Type, "Estimated Cost", p.Cost)
	infoPair(pdf, "Location", p.Location, "Submitted on", p.Submitted.Format("2006-01-02"))
	infoPair(pdf, "Land-mile", formatFloat(p.LandMile)+" mile", "Completion Date", p.CompletionDate.Format("2006-01-02"))
	infoPair(pdf, "Width", formatFloat(p.Width)+" ft", "Tonnage", formatFloat(p.Tonnage)+" tons")
	infoPair(pdf, "Area", formatFloat(p.Area)+" sq ft", "Status", string(p.Status))
	infoPair(pdf, "Material", p.Material, "Success Probability", p.SuccessProbability)
	pdf.Ln(4)

	// Material table
	sectionTitle(pdf, "Resource Estimates")
	tableHeader(pdf, "Material", "Quantity")
	for _, row := range materialRows(p) {
		tableRow(pdf, row[0], row[1])
	}
	pdf.Ln(4)

	// Labor table
	sectionTitle(pdf, "Labor Estimates")
	tableHeader(pdf, "Task", "Hours")
	tableRow(pdf, "Management", fmt.Sprint(p.Labor.ManagementHours))
	tableRow(pdf, "Preparation", fmt.Sprint(p.Labor.PrepHours))
	tableRow(pdf, "Paving", fmt.Sprint(p.Labor.PavingHours))
	tableRow(pdf, "Finishing", fmt.Sprint(p.Labor.FinishingHours))
	pdf.Ln(4)

	// Financial summary
	sectionTitle(pdf, "Financial Summary")
	tableHeader(pdf, "Item", "Value")
	tableRow(pdf, "Estimated Cost", p.Cost)
	tableRow(pdf, "Profit Margin", p.ProfitMargin)
	tableRow(pdf, "Materials", fmt.Sprintf("$%.0f", p.Financials.CostBreakdown.Materials))
	tableRow(pdf, "Labor", fmt.Sprintf("$%.0f", p.Financials.CostBreakdown.Labor))
	tableRow(pdf, "Equipment", fmt.Sprintf("$%.0f", p.Financials.CostBreakdown.Equipment))
	tableRow(pdf, "Overhead", fmt.Sprintf("$%.0f", p.Financials.CostBreakdown.Overhead))
	tableRow(pdf, "Profit", fmt.Sprintf("$%.0f", p.Financials.CostBreakdown.Profit))
	pdf.Ln(4)

	sectionTitle(pdf, "Project Scope")
	paragraph(pdf, p.Scope)
	sectionTitle(pdf, "Requirements")
	requirements := p.Requirements
	if requirements == "" {
		requirements = "No special requirements specified"
	}
	paragraph(pdf, requirements)

	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(127, 140, 141)
	pdf.CellFormat(0, 5, "Generated by Paveiq BidMaster System", "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 5, fmt.Sprintf("© %d Paveiq. All rights reserved.", time.Now().Year()), "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: render: %w", err)
	}
	return buf.Bytes(), nil
}

func sectionTitle(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(52, 152, 219)
	pdf.CellFormat(0, 8, title, "B", 1, "L", false, 0, "")
	pdf.Ln(1)
}

func tableHeader(pdf *gofpdf.Fpdf, left, right string) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(52, 152, 219)
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(90, 7, left, "1", 0, "L", true, 0, "")
	pdf.CellFormat(90, 7, right, "1", 1, "L", true, 0, "")
}

func tableRow(pdf *gofpdf.Fpdf, left, right string) {
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(51, 51, 51)
	pdf.CellFormat(90, 7, left, "1", 0, "L", false, 0, "")
	pdf.CellFormat(90, 7, right, "1", 1, "L", false, 0, "")
}

func infoPair(pdf *gofpdf.Fpdf, leftLabel, leftValue, rightLabel, rightValue string) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(30, 6, leftLabel+":", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(60, 6, leftValue, "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(35, 6, rightLabel+":", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(55, 6, rightValue, "", 1, "L", false, 0, "")
}

func paragraph(pdf *gofpdf.Fpdf, text string) {
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(51, 51, 51)
	pdf.MultiCell(0, 5, text, "", "L", false)
	pdf.Ln(3)
}
