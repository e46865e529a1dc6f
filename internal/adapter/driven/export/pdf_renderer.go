package export

import (
	"bytes"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/greenledger/carbon-report-go/internal/domain/entity"
	"github.com/jung-kurt/gofpdf"
)

// Geometria fixa da página: A4 retrato em milímetros. O limite inferior de
// conteúdo deixa espaço para o rodapé corrido.
const (
	pageLeftMargin  = 15.0
	pageTopMargin   = 15.0
	contentWidth    = 180.0
	contentBottom   = 270.0
	chartHeight     = 70.0
	sectionGap      = 8.0
	sectionMinSpace = 30.0
)

// IDs dos gráficos pré-rasterizados que o chamador pode fornecer. O renderer
// só posiciona e escala as imagens; nunca desenha gráficos.
const (
	ChartEmissionsByScope  = "emissions_by_scope"
	ChartCategoryBreakdown = "category_breakdown"
	ChartProjection        = "projection"
)

// pdfRenderer mantém o documento em construção. Escritas são sequenciais em
// um único buffer; uma instância nunca é compartilhada entre builds.
type pdfRenderer struct {
	pdf     *gofpdf.Fpdf
	tr      func(string) string
	report  entity.ReportRecord
	factors entity.FactorTable
	charts  map[string][]byte

	headerColor       [3]int
	sectionTitleColor [3]int
	bodyTextColor     [3]int
	lineColor         [3]int
}

// ExportToPDF renderiza o documento completo e paginado. Qualquer pânico
// durante a montagem vira erro — o chamador decide cair para o documento
// mínimo. Gráficos indisponíveis são pulados em silêncio.
func (r *ExportRepositoryImpl) ExportToPDF(
	report entity.ReportRecord,
	factors entity.FactorTable,
	charts map[string][]byte,
	filename, outputDir string,
) (path string, err error) {
	outputFilename, err := generateFilename(report, filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("error rendering PDF document: %v", rec)
		}
	}()

	renderer := newPDFRenderer(report, factors, charts)
	renderer.renderTitlePage()
	renderer.renderExecutiveSummary()
	renderer.renderOrganizationDetails()
	renderer.renderMethodology()
	renderer.renderEmissionsSummary()
	renderer.renderDetailedBreakdown()
	renderer.renderStrategiesAndProjections()
	renderer.renderRegulatoryCompliance()
	renderer.renderStatementOfResponsibility()
	renderer.renderAppendices()

	if err := renderer.pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}
	return filepath.Abs(outputFilename)
}

// RenderFallbackPDF gera o documento mínimo (título + sumário executivo)
// usado quando a renderização completa falha. Nunca depende de gráficos nem
// de seções opcionais.
func (r *ExportRepositoryImpl) RenderFallbackPDF(report entity.ReportRecord, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(report, filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	renderer := newPDFRenderer(report, nil, nil)
	renderer.renderTitlePage()
	renderer.renderExecutiveSummary()

	if err := renderer.pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing fallback PDF file: %w", err)
	}
	return filepath.Abs(outputFilename)
}

func newPDFRenderer(report entity.ReportRecord, factors entity.FactorTable, charts map[string][]byte) *pdfRenderer {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	renderer := &pdfRenderer{
		pdf:               pdf,
		tr:                tr,
		report:            report,
		factors:           factors,
		charts:            charts,
		headerColor:       [3]int{0, 104, 56},
		sectionTitleColor: [3]int{0, 0, 0},
		bodyTextColor:     [3]int{50, 50, 50},
		lineColor:         [3]int{200, 200, 200},
	}

	pdf.SetMargins(pageLeftMargin, pageTopMargin, pageLeftMargin)
	// A quebra de página é decidida explicitamente por ensureSpace; o
	// auto-break do gofpdf ficaria fora de sincronia com o cursor.
	pdf.SetAutoPageBreak(false, 0)

	// Cabeçalho corrido a partir da segunda página.
	pdf.SetHeaderFunc(func() {
		if pdf.PageNo() == 1 {
			return
		}
		pdf.SetY(8)
		pdf.SetFont("Arial", "I", 8)
		pdf.SetTextColor(120, 120, 120)
		pdf.CellFormat(contentWidth/2, 5, tr(report.ReportID), "", 0, "L", false, 0, "")
		pdf.CellFormat(contentWidth/2, 5, tr(report.Organization.CompanyName), "", 1, "R", false, 0, "")
		pdf.SetDrawColor(renderer.lineColor[0], renderer.lineColor[1], renderer.lineColor[2])
		pdf.Line(pageLeftMargin, 14, pageLeftMargin+contentWidth, 14)
		pdf.SetY(pageTopMargin + 4)
	})

	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.SetTextColor(128, 128, 128)
		pdf.CellFormat(contentWidth/3, 10, tr(fmt.Sprintf("Generated %s", report.FormattedDate)), "", 0, "L", false, 0, "")
		pdf.CellFormat(contentWidth/3, 10, tr(report.ReportID), "", 0, "C", false, 0, "")
		pdf.CellFormat(contentWidth/3, 10, tr(fmt.Sprintf("Page %d", pdf.PageNo())), "", 0, "R", false, 0, "")
	})

	return renderer
}

// ensureSpace quebra a página quando o cursor vertical mais o espaço
// requerido ultrapassa o limite de conteúdo. Cabeçalho e rodapé corridos são
// redesenhados pelo gofpdf na página nova.
func (p *pdfRenderer) ensureSpace(required float64) {
	if p.pdf.GetY()+required > contentBottom {
		p.pdf.AddPage()
	}
}

// drawSectionTitle escreve o título da seção com a régua padrão, quebrando a
// página antes se não houver espaço mínimo para o início da seção.
func (p *pdfRenderer) drawSectionTitle(title string) {
	p.ensureSpace(sectionMinSpace)
	p.pdf.SetFont("Arial", "B", 13)
	p.pdf.SetTextColor(p.sectionTitleColor[0], p.sectionTitleColor[1], p.sectionTitleColor[2])
	p.pdf.Cell(0, 8, p.tr(title))
	p.pdf.Ln(8)
	p.pdf.SetDrawColor(p.lineColor[0], p.lineColor[1], p.lineColor[2])
	p.pdf.Line(p.pdf.GetX(), p.pdf.GetY(), p.pdf.GetX()+contentWidth, p.pdf.GetY())
	p.pdf.Ln(4)
}

func (p *pdfRenderer) bodyFont() {
	p.pdf.SetFont("Arial", "", 10)
	p.pdf.SetTextColor(p.bodyTextColor[0], p.bodyTextColor[1], p.bodyTextColor[2])
}

// writeParagraph escreve um bloco de texto com quebra de página antecipada.
func (p *pdfRenderer) writeParagraph(text string) {
	lines := p.pdf.SplitLines([]byte(p.tr(text)), contentWidth)
	p.ensureSpace(float64(len(lines))*5 + 4)
	p.bodyFont()
	p.pdf.MultiCell(contentWidth, 5, p.tr(text), "", "L", false)
	p.pdf.Ln(4)
}

// labelValueRow escreve uma linha rotulada de duas colunas.
func (p *pdfRenderer) labelValueRow(label, value string) {
	p.ensureSpace(7)
	p.pdf.SetFont("Arial", "B", 10)
	p.pdf.SetTextColor(p.bodyTextColor[0], p.bodyTextColor[1], p.bodyTextColor[2])
	p.pdf.CellFormat(60, 6, p.tr(label), "", 0, "L", false, 0, "")
	p.pdf.SetFont("Arial", "", 10)
	p.pdf.CellFormat(contentWidth-60, 6, p.tr(value), "", 1, "L", false, 0, "")
}

// tableHeader / tableRow desenham tabelas simples com bordas inferiores.
func (p *pdfRenderer) tableHeader(widths []float64, titles []string) {
	p.ensureSpace(8)
	p.pdf.SetFont("Arial", "B", 9)
	p.pdf.SetTextColor(p.sectionTitleColor[0], p.sectionTitleColor[1], p.sectionTitleColor[2])
	for i, title := range titles {
		align := "L"
		if i > 0 {
			align = "R"
		}
		p.pdf.CellFormat(widths[i], 7, p.tr(title), "B", 0, align, false, 0, "")
	}
	p.pdf.Ln(-1)
}

func (p *pdfRenderer) tableRow(widths []float64, cells []string) {
	p.ensureSpace(7)
	p.pdf.SetFont("Arial", "", 9)
	p.pdf.SetTextColor(p.bodyTextColor[0], p.bodyTextColor[1], p.bodyTextColor[2])
	for i, cell := range cells {
		align := "L"
		if i > 0 {
			align = "R"
		}
		p.pdf.CellFormat(widths[i], 6, p.tr(cell), "", 0, align, false, 0, "")
	}
	p.pdf.Ln(-1)
}

// embedChart posiciona um gráfico pré-rasterizado (PNG). Falha de registro ou
// imagem ausente apenas pula o gráfico — a seção continua sem ele.
func (p *pdfRenderer) embedChart(chartID string) {
	data, ok := p.charts[chartID]
	if !ok || len(data) == 0 {
		return
	}

	// Pânico do gofpdf em imagem corrompida não pode derrubar o documento.
	defer func() {
		_ = recover()
	}()

	p.ensureSpace(chartHeight + 6)
	opts := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: true}
	info := p.pdf.RegisterImageOptionsReader(chartID, opts, bytes.NewReader(data))
	if info == nil || p.pdf.Err() {
		// Limpa o estado de erro para as próximas seções.
		p.pdf.ClearError()
		return
	}
	p.pdf.ImageOptions(chartID, pageLeftMargin, p.pdf.GetY(), contentWidth, chartHeight, true, opts, 0, "")
	p.pdf.Ln(4)
}

// --- Seções, na ordem fixa do documento ---

func (p *pdfRenderer) renderTitlePage() {
	p.pdf.AddPage()

	p.pdf.SetFillColor(p.headerColor[0], p.headerColor[1], p.headerColor[2])
	p.pdf.Rect(0, 0, 210, 60, "F")

	p.pdf.SetY(22)
	p.pdf.SetFont("Arial", "B", 24)
	p.pdf.SetTextColor(255, 255, 255)
	p.pdf.CellFormat(0, 12, p.tr("Greenhouse Gas Emissions Report"), "", 1, "C", false, 0, "")
	p.pdf.SetFont("Arial", "", 12)
	p.pdf.CellFormat(0, 8, p.tr(fmt.Sprintf("Reporting year %d", p.report.ReportingYear)), "", 1, "C", false, 0, "")

	p.pdf.SetY(80)
	p.pdf.SetFont("Arial", "B", 18)
	p.pdf.SetTextColor(p.sectionTitleColor[0], p.sectionTitleColor[1], p.sectionTitleColor[2])
	p.pdf.CellFormat(0, 10, p.tr(p.report.Organization.CompanyName), "", 1, "C", false, 0, "")

	p.pdf.Ln(10)
	p.bodyFont()
	p.pdf.CellFormat(0, 6, p.tr(fmt.Sprintf("Report ID: %s", p.report.ReportID)), "", 1, "C", false, 0, "")
	p.pdf.CellFormat(0, 6, p.tr(fmt.Sprintf("Date of issue: %s", p.report.FormattedDate)), "", 1, "C", false, 0, "")
	p.pdf.CellFormat(0, 6, p.tr(fmt.Sprintf("Prepared by: %s", p.report.ReportPreparer)), "", 1, "C", false, 0, "")
	p.pdf.CellFormat(0, 6, p.tr(fmt.Sprintf("Verification status: %s", p.report.VerificationStatus)), "", 1, "C", false, 0, "")
}

func (p *pdfRenderer) renderExecutiveSummary() {
	p.pdf.AddPage()
	p.drawSectionTitle("Executive Summary")

	e := p.report.Emissions
	summary := fmt.Sprintf(
		"%s reports total greenhouse gas emissions of %s tonnes CO2e for the %d reporting year. "+
			"Direct (Scope 1) emissions account for %s tCO2e, purchased energy (Scope 2) for %s tCO2e, "+
			"and value-chain (Scope 3) emissions for %s tCO2e.",
		p.report.Organization.CompanyName,
		formatTonnes(e.Total), p.report.ReportingYear,
		formatTonnes(e.Scope1), formatTonnes(e.Scope2), formatTonnes(e.Scope3),
	)
	p.writeParagraph(summary)

	if n := len(p.report.Reductions.Strategies); n > 0 {
		p.writeParagraph(fmt.Sprintf(
			"The organization has identified %d reduction strategies with a combined potential of %s tCO2e "+
				"(%s of total emissions), against a %s reduction target over the five-year projection window.",
			n,
			formatTonnes(p.report.Reductions.TotalReduction),
			formatPercent(p.report.Reductions.TotalPercentage),
			formatPercent(p.report.ReductionTarget*100),
		))
	}

	p.labelValueRow("Total emissions", formatTonnes(e.Total)+" tCO2e")
	p.labelValueRow("Emissions per employee", formatTonnes(p.report.Intensity.PerEmployee)+" tCO2e")
	p.labelValueRow("Emissions per $M revenue", formatTonnes(p.report.Intensity.PerRevenueMillion)+" tCO2e")
	p.labelValueRow("Regulatory group", regulatoryGroupLabel(p.report.RegulatoryGroup))
	p.pdf.Ln(sectionGap)
}

func (p *pdfRenderer) renderOrganizationDetails() {
	p.drawSectionTitle("Organization Details")

	org := p.report.Organization
	listed := "No"
	if org.IsListed {
		listed = "Yes"
	}

	p.labelValueRow("Company name", org.CompanyName)
	p.labelValueRow("Industry", valueOrNA(org.IndustryType))
	p.labelValueRow("Location", valueOrNA(org.Location))
	p.labelValueRow("Annual revenue", formatCurrency(org.AnnualRevenue))
	p.labelValueRow("Employees", fmt.Sprintf("%.0f", org.EmployeeCount))
	p.labelValueRow("Facilities", fmt.Sprintf("%.0f", org.FacilityCount))
	p.labelValueRow("Fleet size", fmt.Sprintf("%.0f", org.FleetSize))
	p.labelValueRow("Publicly listed", listed)
	p.labelValueRow("Reporting year", fmt.Sprintf("%d", p.report.ReportingYear))
	p.labelValueRow("Baseline year", fmt.Sprintf("%d", p.report.BaselineYear))
	p.pdf.Ln(sectionGap)
}

func (p *pdfRenderer) renderMethodology() {
	p.drawSectionTitle("Methodology")

	p.writeParagraph(
		"This inventory follows the GHG Protocol Corporate Standard. Activity data is converted to tonnes of " +
			"CO2 equivalent using published emission factors. Direct combustion, refrigerant, industrial process " +
			"and agricultural sources are classified as Scope 1; purchased electricity, heat and steam as Scope 2; " +
			"business travel, commuting, waste, water and purchased goods and services as Scope 3.")

	references := p.factorReferences()
	if len(references) > 0 {
		p.writeParagraph("Emission factor sources applied in this report: " + strings.Join(references, "; ") + ".")
	}
}

func (p *pdfRenderer) renderEmissionsSummary() {
	p.drawSectionTitle("Emissions Summary")

	e := p.report.Emissions
	widths := []float64{70, 55, 55}
	p.tableHeader(widths, []string{"Scope", "Emissions (tCO2e)", "Share of total"})
	p.tableRow(widths, []string{"Scope 1 - Direct", formatTonnes(e.Scope1), formatPercent(shareOfTotal(e.Scope1, e.Total))})
	p.tableRow(widths, []string{"Scope 2 - Purchased energy", formatTonnes(e.Scope2), formatPercent(shareOfTotal(e.Scope2, e.Total))})
	p.tableRow(widths, []string{"Scope 3 - Value chain", formatTonnes(e.Scope3), formatPercent(shareOfTotal(e.Scope3, e.Total))})

	p.tableRow(widths, []string{"Total", formatTonnes(e.Total), "100.0%"})
	p.pdf.Ln(4)

	p.embedChart(ChartEmissionsByScope)
	p.pdf.Ln(sectionGap)
}

func (p *pdfRenderer) renderDetailedBreakdown() {
	if len(p.report.PerCategory) == 0 {
		return
	}
	p.drawSectionTitle("Detailed Emissions Breakdown")

	widths := []float64{70, 30, 40, 40}
	p.tableHeader(widths, []string{"Activity category", "Scope", "Emissions (tCO2e)", "Factor unit"})
	for _, key := range sortedCategories(p.report.PerCategory) {
		scope := entity.Scope3
		unit := "pre-computed"
		if f, ok := p.factors[key]; ok {
			scope = f.Scope
			unit = f.Unit
		}
		p.tableRow(widths, []string{key, scopeLabel(scope), formatTonnes(p.report.PerCategory[key]), unit})
	}
	p.pdf.Ln(4)

	p.embedChart(ChartCategoryBreakdown)
	p.pdf.Ln(sectionGap)
}

func (p *pdfRenderer) renderStrategiesAndProjections() {
	p.drawSectionTitle("Reduction Strategies & Projections")

	strategies := p.report.Reductions.Strategies
	if len(strategies) == 0 {
		p.writeParagraph("No reduction strategies have been recorded for this reporting period.")
	} else {
		widths := []float64{55, 22, 25, 28, 22, 28}
		p.tableHeader(widths, []string{"Strategy", "Scope", "Timeframe", "Reduction (t)", "Share", "Capex"})
		for _, s := range strategies {
			p.tableRow(widths, []string{
				s.Name,
				scopeLabel(s.Scope),
				valueOrNA(s.Timeframe),
				formatTonnes(s.AbsoluteReduction),
				formatPercent(s.PercentageReduction),
				formatCurrency(s.Capex),
			})
		}
		p.pdf.Ln(4)

		p.labelValueRow("Combined reduction potential", fmt.Sprintf("%s tCO2e (%s of total)",
			formatTonnes(p.report.Reductions.TotalReduction),
			formatPercent(p.report.Reductions.TotalPercentage)))
	}
	p.pdf.Ln(2)

	p.ensureSpace(40)
	p.pdf.SetFont("Arial", "B", 11)
	p.pdf.SetTextColor(p.sectionTitleColor[0], p.sectionTitleColor[1], p.sectionTitleColor[2])
	p.pdf.Cell(0, 7, p.tr("Five-Year Emissions Trajectory"))
	p.pdf.Ln(8)

	widths := []float64{40, 70, 70}
	p.tableHeader(widths, []string{"Year", "Projected (tCO2e)", "Target pathway (tCO2e)"})
	for _, point := range p.report.FiveYearProjection {
		p.tableRow(widths, []string{
			fmt.Sprintf("%d", point.Year),
			formatTonnes(point.Emissions),
			formatTonnes(point.Target),
		})
	}
	p.pdf.Ln(4)

	p.embedChart(ChartProjection)
	p.pdf.Ln(sectionGap)
}

func (p *pdfRenderer) renderRegulatoryCompliance() {
	p.drawSectionTitle("Regulatory Compliance")

	p.labelValueRow("Regulatory group", regulatoryGroupLabel(p.report.RegulatoryGroup))
	p.labelValueRow("Applicable standards", strings.Join(p.report.ApplicableStandards, ", "))
	p.pdf.Ln(2)

	if len(p.report.ReportingRequirements) > 0 {
		p.writeParagraph("Reporting requirements: " + strings.Join(p.report.ReportingRequirements, "; ") + ".")
	}
	if len(p.report.OffsetRequirements) > 0 {
		p.writeParagraph("Offset requirements: " + strings.Join(p.report.OffsetRequirements, "; ") + ".")
	}
	if p.report.RegulatoryGroup == 0 {
		p.writeParagraph("The organization falls below all mandatory reporting thresholds; this report is voluntary.")
	}
	p.pdf.Ln(2)
}

func (p *pdfRenderer) renderStatementOfResponsibility() {
	p.drawSectionTitle("Statement of Responsibility")

	p.writeParagraph(fmt.Sprintf(
		"The management of %s is responsible for the preparation and fair presentation of this greenhouse gas "+
			"emissions report, including the completeness of activity data and the selection of emission factors. "+
			"This report was prepared on %s.",
		p.report.Organization.CompanyName, p.report.FormattedDate))

	p.labelValueRow("Prepared by", p.report.ReportPreparer)
	if p.report.PreparerTitle != "" {
		p.labelValueRow("Title", p.report.PreparerTitle)
	}
	if p.report.ContactEmail != "" {
		p.labelValueRow("Contact", p.report.ContactEmail)
	}
	p.labelValueRow("Verification status", p.report.VerificationStatus)

	p.pdf.Ln(14)
	p.ensureSpace(14)
	p.pdf.SetDrawColor(p.bodyTextColor[0], p.bodyTextColor[1], p.bodyTextColor[2])
	p.pdf.Line(pageLeftMargin, p.pdf.GetY(), pageLeftMargin+70, p.pdf.GetY())
	p.pdf.Ln(2)
	p.bodyFont()
	p.pdf.Cell(0, 5, p.tr("Authorized signature"))
	p.pdf.Ln(sectionGap)
}

func (p *pdfRenderer) renderAppendices() {
	p.pdf.AddPage()
	p.drawSectionTitle("Appendix A - Emission Factor References")

	if len(p.factors) == 0 {
		p.writeParagraph("Emission factors were supplied pre-computed by the upstream data provider.")
	} else {
		widths := []float64{50, 30, 50, 50}
		p.tableHeader(widths, []string{"Activity", "Factor", "Unit", "Reference"})
		for _, key := range sortedFactorKeys(p.factors) {
			f := p.factors[key]
			p.tableRow(widths, []string{f.Key, fmt.Sprintf("%.3f", f.Factor), f.Unit, f.Reference})
		}
	}
	p.pdf.Ln(sectionGap)

	if len(p.report.Scenarios) == 0 {
		return
	}

	p.drawSectionTitle("Appendix B - Scenario Comparison")
	baseline := p.report.Emissions.Total
	widths := []float64{55, 40, 40, 45}
	p.tableHeader(widths, []string{"Scenario", "Total (tCO2e)", "Delta vs baseline", "Strategies"})
	p.tableRow(widths, []string{"Baseline (this report)", formatTonnes(baseline), "-", "-"})
	for _, s := range p.report.Scenarios {
		p.tableRow(widths, []string{
			s.Name,
			formatTonnes(s.Emissions.Total),
			formatTonnes(s.Emissions.Total - baseline),
			fmt.Sprintf("%d", len(s.Strategies)),
		})
	}
}

// --- Auxiliares do renderer ---

// shareOfTotal devolve o percentual de um subtotal sobre o total. Subtotais
// negativos (emissões evitadas) aparecem como 0% na apresentação; o valor
// assinado continua nas tabelas de toneladas.
func shareOfTotal(sub, total float64) float64 {
	if total <= 0 {
		return 0
	}
	share := sub / total * 100
	if share < 0 {
		return 0
	}
	return share
}

func regulatoryGroupLabel(group int) string {
	if group == 0 {
		return "Not covered (below thresholds)"
	}
	return fmt.Sprintf("Group %d", group)
}

func valueOrNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}

// factorReferences devolve as citações distintas dos fatores realmente usados
// nas categorias do relatório, em ordem estável.
func (p *pdfRenderer) factorReferences() []string {
	seen := map[string]bool{}
	var refs []string
	for _, key := range sortedCategories(p.report.PerCategory) {
		if f, ok := p.factors[key]; ok && !seen[f.Reference] {
			seen[f.Reference] = true
			refs = append(refs, f.Reference)
		}
	}
	return refs
}

func sortedFactorKeys(table entity.FactorTable) []string {
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
