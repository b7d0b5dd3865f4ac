package service

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"

	"tesouraria-ibs/config"
	"tesouraria-ibs/models"
	"tesouraria-ibs/pagination"
	"tesouraria-ibs/totals"
	"tesouraria-ibs/utils"
)

//go:embed templates/*.html
var templateFS embed.FS

// ErrNoDocument is returned when the dashboard is shown and there is nothing to render
var ErrNoDocument = errors.New("no document open")

// RenderedDocument is the printable HTML of the working document
type RenderedDocument struct {
	DocType   models.DocumentType `json:"docType"`
	Title     string              `json:"title"`
	HTML      string              `json:"html"`
	PageCount int                 `json:"pageCount"`
}

// RenderService renders working documents as HTML made of .pdf-page containers
type RenderService struct {
	letterhead *config.Letterhead
	layout     pagination.Layout
	templates  *template.Template
}

// NewRenderService parses the embedded templates
func NewRenderService(letterhead *config.Letterhead, layout pagination.Layout) (*RenderService, error) {
	if letterhead == nil {
		letterhead = config.DefaultLetterhead()
	}

	tmpl, err := template.New("documents").Funcs(template.FuncMap{
		"brl":  utils.FormatBRL,
		"date": utils.FormatDate,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse template: %w", err)
	}

	return &RenderService{
		letterhead: letterhead,
		layout:     layout,
		templates:  tmpl,
	}, nil
}

// Ensure RenderService implements RenderServiceInterface
var _ RenderServiceInterface = (*RenderService)(nil)

// Render renders the document of the current view.
// editable adds .pdf-exclude affordances for the on-screen preview.
func (s *RenderService) Render(state models.AppState, editable bool) (*RenderedDocument, error) {
	switch state.CurrentView {
	case models.ViewTithes:
		html, err := s.RenderTithes(state.TithesData, editable)
		if err != nil {
			return nil, err
		}
		return &RenderedDocument{
			DocType:   models.DocumentTypeTithes,
			Title:     s.letterhead.TithesTitle,
			HTML:      html,
			PageCount: 1,
		}, nil
	case models.ViewPayments:
		html, pages, err := s.RenderPayments(state.PaymentData, editable)
		if err != nil {
			return nil, err
		}
		return &RenderedDocument{
			DocType:   models.DocumentTypePayments,
			Title:     s.letterhead.PaymentsTitle,
			HTML:      html,
			PageCount: pages,
		}, nil
	}
	return nil, ErrNoDocument
}

type labeledValue struct {
	Label string
	Value models.Money
}

type methodGroup struct {
	Label string
	Split totals.MethodSplit
}

// RenderTithes renders the single-page tithes receipt
func (s *RenderService) RenderTithes(data models.TithesReceiptData, editable bool) (string, error) {
	breakdown := totals.BreakdownTithes(data.Entries)

	byType := make([]labeledValue, 0, len(models.TitheTypes))
	for _, t := range models.TitheTypes {
		byType = append(byType, labeledValue{Label: t.Label(), Value: breakdown.ByType[t]})
	}
	byMethod := make([]labeledValue, 0, len(models.PaymentMethods))
	for _, m := range models.PaymentMethods {
		byMethod = append(byMethod, labeledValue{Label: m.Label(), Value: breakdown.ByMethod[m]})
	}

	view := struct {
		Title      string
		Subtitle   string
		Letterhead *config.Letterhead
		Date       string
		Service    string
		Data       models.TithesReceiptData
		Entries    []models.TitheEntry
		Groups     []methodGroup
		ByType     []labeledValue
		ByMethod   []labeledValue
		Editable   bool
	}{
		Title:      s.letterhead.TithesTitle,
		Subtitle:   s.letterhead.TithesTitle,
		Letterhead: s.letterhead,
		Date:       utils.FormatDate(data.Date),
		Service:    data.ServiceLabel(),
		Data:       data,
		Entries:    data.Entries,
		Groups: []methodGroup{
			{Label: "Dízimos e Ofertas", Split: breakdown.Geral},
			{Label: "Campanha", Split: breakdown.Campanha},
			{Label: "Cantina", Split: breakdown.Cantina},
			{Label: "Livraria", Split: breakdown.Livraria},
		},
		ByType:   byType,
		ByMethod: byMethod,
		Editable: editable,
	}

	return s.execute("tithes", view)
}

// RenderPayments renders the payment sheet split into planner pages.
// It returns the HTML and the number of pages.
func (s *RenderService) RenderPayments(data models.PaymentSheetData, editable bool) (string, int, error) {
	pages := s.layout.Plan(data.Expenses, len(data.ExtraEntries))

	view := struct {
		Title      string
		Subtitle   string
		Letterhead *config.Letterhead
		Date       string
		Day        string
		Data       models.PaymentSheetData
		Summary    totals.PaymentSummary
		Pages      []pagination.Page
		PageCount  int
		Editable   bool
	}{
		Title:      s.letterhead.PaymentsTitle,
		Subtitle:   s.letterhead.PaymentsTitle,
		Letterhead: s.letterhead,
		Date:       utils.FormatDate(data.Date),
		Day:        data.DayLabel(),
		Data:       data,
		Summary:    totals.SummarizePayments(data),
		Pages:      pages,
		PageCount:  len(pages),
		Editable:   editable,
	}

	html, err := s.execute("payments", view)
	if err != nil {
		return "", 0, err
	}
	return html, len(pages), nil
}

func (s *RenderService) execute(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.String(), nil
}
