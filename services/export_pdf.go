package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

var (
	pdfMutedColor  = &props.Color{Red: 80, Green: 80, Blue: 80}
	pdfHeaderBg    = &props.Color{Red: 33, Green: 37, Blue: 41}
	pdfStripeBg    = &props.Color{Red: 245, Green: 245, Blue: 245}
	pdfSummaryBg   = &props.Color{Red: 240, Green: 240, Blue: 240}
	pdfWhiteColor  = &props.Color{Red: 255, Green: 255, Blue: 255}
	pdfFooterColor = &props.Color{Red: 140, Green: 140, Blue: 140}
)

type pdfColumn struct {
	header string
	size   int
	align  align.Type
	value  func(i int, r Row) string
}

// Column sizes add up to maroto's 12-column grid.
var pdfRoomColumns = []pdfColumn{
	{"#", 1, align.Center, func(i int, _ Row) string { return fmt.Sprintf("%d", i+1) }},
	{"Bereich", 2, align.Left, func(_ int, r Row) string { return r.Area }},
	{"Etage", 1, align.Center, func(_ int, r Row) string { return r.Floor }},
	{"Bezeichnung", 2, align.Left, func(_ int, r Row) string { return r.Designation }},
	{"Reinigungsgruppe", 2, align.Left, func(_ int, r Row) string { return r.CleaningGroup }},
	{"Menge (m²)", 1, align.Right, func(_ int, r Row) string { return formatQty(r.Quantity) }},
	{"Std./Monat", 1, align.Right, func(_ int, r Row) string { return FormatNumber(r.HoursPerMonth, 2) }},
	{"Umsatz netto/Monat", 2, align.Right, func(_ int, r Row) string { return FormatEUR(r.NetSalesValuePerMonth) }},
}

// GenerateRaumbuchPDF renders the room list, the summary and one bar chart
// per visualization series into a landscape A4 document.
func GenerateRaumbuchPDF(data ReportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Horizontal).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Seite {current} von {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addReportHeader(m, data)
	addRoomTable(m, data)
	addSummaryBlock(m, data.Analysis.Summary)

	vis := data.Analysis.Visualization
	charts := []struct {
		title  string
		series map[string]float64
		format func(float64) string
	}{
		{"Menge je Bereich (m²)", vis.AreaData, func(v float64) string { return FormatNumber(v, 2) }},
		{"Umsatz netto je Reinigungsgruppe (pro Monat)", vis.CleaningGroupData, FormatEUR},
		{"Stunden je Etage (pro Monat)", vis.FloorData, func(v float64) string { return FormatNumber(v, 2) }},
	}
	for _, c := range charts {
		if err := addBarChart(m, c.title, ChartSeries(c.series), c.format); err != nil {
			return nil, err
		}
	}

	addReportFooter(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

func addReportHeader(m core.Maroto, data ReportData) {
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New(data.Title, props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)

	left := data.Building.Location.Name
	if data.Building.Address != "" {
		left = data.Building.Address + " · " + left
	}
	if data.CompanyName != "" {
		left = data.CompanyName + " · " + left
	}
	m.AddRows(
		row.New(8).Add(
			col.New(8).Add(
				text.New(left, props.Text{Size: 9, Align: align.Left, Color: pdfMutedColor}),
			),
			col.New(4).Add(
				text.New("Stand: "+data.CreatedDate, props.Text{Size: 9, Align: align.Right, Color: pdfMutedColor}),
			),
		),
	)

	if f := data.Analysis.AppliedFilter; !f.IsEmpty() {
		m.AddRows(
			row.New(6).Add(
				col.New(12).Add(
					text.New("Filter: "+describeFilter(f), props.Text{Size: 8, Align: align.Left, Color: pdfMutedColor}),
				),
			),
		)
	}

	m.AddRows(row.New(4))
}

func describeFilter(f RowFilter) string {
	out := ""
	for _, d := range Dimensions {
		if v := f.Value(d); v != "" {
			if out != "" {
				out += ", "
			}
			out += d.Label() + " = " + v
		}
	}
	return out
}

func addRoomTable(m core.Maroto, data ReportData) {
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: pdfWhiteColor,
	}
	headerCell := &props.Cell{BackgroundColor: pdfHeaderBg}

	var cols []core.Col
	for _, c := range pdfRoomColumns {
		cols = append(cols, col.New(c.size).Add(text.New(c.header, headerText)).WithStyle(headerCell))
	}
	m.AddRows(row.New(8).Add(cols...))

	rows := data.Analysis.Rows
	hidden := 0
	if data.PDFRowLimit > 0 && len(rows) > data.PDFRowLimit {
		hidden = len(rows) - data.PDFRowLimit
		rows = rows[:data.PDFRowLimit]
	}

	stripe := &props.Cell{BackgroundColor: pdfStripeBg}
	for i, r := range rows {
		cells := make([]core.Col, 0, len(pdfRoomColumns))
		for _, c := range pdfRoomColumns {
			cl := col.New(c.size).Add(text.New(c.value(i, r), props.Text{Size: 7, Align: c.align}))
			if i%2 == 1 {
				cl = cl.WithStyle(stripe)
			}
			cells = append(cells, cl)
		}
		m.AddRows(row.New(6).Add(cells...))
	}

	if hidden > 0 {
		m.AddRows(
			row.New(6).Add(
				col.New(12).Add(
					text.New(fmt.Sprintf("… %d weitere Räume, vollständige Liste im Excel-Export", hidden),
						props.Text{Size: 7, Style: fontstyle.Italic, Align: align.Left, Color: pdfMutedColor}),
				),
			),
		)
	}
}

func addSummaryBlock(m core.Maroto, s Summary) {
	m.AddRows(row.New(6))

	summaryCell := &props.Cell{BackgroundColor: pdfSummaryBg}
	labelStyle := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}
	valueStyle := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}

	lines := []struct{ label, value string }{
		{"Anzahl Räume", fmt.Sprintf("%d", s.TotalRooms)},
		{"Menge gesamt (m²)", FormatNumber(s.TotalQuantity, 2)},
		{"Stunden pro Monat", FormatNumber(s.TotalHoursPerMonth, 2)},
		{"Umsatz netto pro Monat", FormatEUR(s.TotalNetSalesValuePerMonth)},
		{"Umsatz brutto pro Monat", FormatEUR(s.TotalGrossSalesValuePerMonth)},
		{"Umsatz netto pro Jahr", FormatEUR(s.TotalNetSalesValuePerYear)},
	}
	for _, l := range lines {
		m.AddRows(
			row.New(7).Add(
				col.New(8).Add(text.New(l.label, labelStyle)).WithStyle(summaryCell),
				col.New(4).Add(text.New(l.value, valueStyle)).WithStyle(summaryCell),
			),
		)
	}
}

// addBarChart adds a titled horizontal bar chart, one bar per point.
func addBarChart(m core.Maroto, title string, points []ChartPoint, format func(float64) string) error {
	m.AddRows(row.New(6))
	m.AddRows(
		row.New(9).Add(
			col.New(12).Add(text.New(title, props.Text{Size: 11, Style: fontstyle.Bold, Align: align.Left})),
		),
	)

	if len(points) == 0 {
		m.AddRows(
			row.New(6).Add(
				col.New(12).Add(text.New("Keine Daten", props.Text{Size: 8, Align: align.Left, Color: pdfMutedColor})),
			),
		)
		return nil
	}

	for i, frac := range barFractions(points) {
		bar, err := renderBarPNG(frac)
		if err != nil {
			return fmt.Errorf("chart %q: %w", title, err)
		}
		p := points[i]
		m.AddRows(
			row.New(6).Add(
				col.New(3).Add(text.New(p.Label, props.Text{Size: 8, Align: align.Left})),
				col.New(7).Add(image.NewFromBytes(bar, extension.Png, props.Rect{Percent: 80, Center: true})),
				col.New(2).Add(text.New(format(p.Value), props.Text{Size: 8, Align: align.Right})),
			),
		)
	}
	return nil
}

func addReportFooter(m core.Maroto, data ReportData) {
	m.AddRows(row.New(6))
	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(
				text.New(
					fmt.Sprintf("Erstellt am %s", data.CreatedDate),
					props.Text{Size: 7, Align: align.Left, Color: pdfFooterColor},
				),
			),
		),
	)
}
