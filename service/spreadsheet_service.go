package service

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"tesouraria-ibs/config"
	"tesouraria-ibs/models"
	"tesouraria-ibs/totals"
	"tesouraria-ibs/utils"
)

// brlNumberFormat shows centavos with pt-BR grouping in spreadsheet apps
const brlNumberFormat = `"R$" #,##0.00;[Red]-"R$" #,##0.00`

// SpreadsheetService builds XLSX workbooks of the working document
type SpreadsheetService struct {
	letterhead *config.Letterhead
}

// NewSpreadsheetService creates a SpreadsheetService
func NewSpreadsheetService(letterhead *config.Letterhead) *SpreadsheetService {
	if letterhead == nil {
		letterhead = config.DefaultLetterhead()
	}
	return &SpreadsheetService{letterhead: letterhead}
}

// Ensure SpreadsheetService implements SpreadsheetServiceInterface
var _ SpreadsheetServiceInterface = (*SpreadsheetService)(nil)

// Build returns the workbook for the current view
func (s *SpreadsheetService) Build(state models.AppState) ([]byte, error) {
	switch state.CurrentView {
	case models.ViewTithes:
		return s.BuildTithes(state.TithesData)
	case models.ViewPayments:
		return s.BuildPayments(state.PaymentData)
	}
	return nil, ErrNoDocument
}

// sheetWriter tracks the next free row while filling a sheet
type sheetWriter struct {
	f      *excelize.File
	sheet  string
	row    int
	money  int
	bold   int
	errors []error
}

func newSheetWriter(f *excelize.File, sheet string) (*sheetWriter, error) {
	money, err := f.NewStyle(&excelize.Style{CustomNumFmt: strPtr(brlNumberFormat)})
	if err != nil {
		return nil, fmt.Errorf("failed to create money style: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}
	return &sheetWriter{f: f, sheet: sheet, row: 1, money: money, bold: bold}, nil
}

// line writes values across columns A.. on the next row; Money values get the currency style
func (w *sheetWriter) line(values ...any) {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, w.row)
		if err != nil {
			w.errors = append(w.errors, err)
			continue
		}
		if m, ok := v.(models.Money); ok {
			v, _ = m.Reais().Float64()
			if err := w.f.SetCellStyle(w.sheet, cell, cell, w.money); err != nil {
				w.errors = append(w.errors, err)
			}
		}
		if err := w.f.SetCellValue(w.sheet, cell, v); err != nil {
			w.errors = append(w.errors, err)
		}
	}
	w.row++
}

// header writes a bold row
func (w *sheetWriter) header(values ...any) {
	start := w.row
	w.line(values...)
	first, _ := excelize.CoordinatesToCellName(1, start)
	last, _ := excelize.CoordinatesToCellName(len(values), start)
	if err := w.f.SetCellStyle(w.sheet, first, last, w.bold); err != nil {
		w.errors = append(w.errors, err)
	}
}

func (w *sheetWriter) blank() { w.row++ }

func (w *sheetWriter) err() error {
	if len(w.errors) > 0 {
		return fmt.Errorf("failed to fill sheet %s: %w", w.sheet, w.errors[0])
	}
	return nil
}

// BuildTithes writes the receipt entries and the breakdown figures
func (s *SpreadsheetService) BuildTithes(data models.TithesReceiptData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Recibo"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}
	w, err := newSheetWriter(f, sheet)
	if err != nil {
		return nil, err
	}

	w.header(s.letterhead.ChurchName)
	w.line(s.letterhead.TithesTitle)
	w.line("Data", utils.FormatDate(data.Date))
	w.line("Culto", data.ServiceLabel())
	w.line("Participantes", data.Attendance.Men, data.Attendance.Women, data.Attendance.Children, data.Attendance.Total())
	w.blank()

	w.header("Nome", "Tipo", "Forma", "Valor")
	for _, e := range data.Entries {
		w.line(e.Name, e.Type.Label(), e.PaymentMethod.Label(), e.Value)
	}
	w.blank()

	breakdown := totals.BreakdownTithes(data.Entries)
	w.header("Entradas", "Valor")
	for _, t := range models.TitheTypes {
		w.line(t.Label(), breakdown.ByType[t])
	}
	w.blank()
	w.header("Forma", "Valor")
	for _, m := range models.PaymentMethods {
		w.line(m.Label(), breakdown.ByMethod[m])
	}
	w.blank()
	w.header("Total", data.TotalAmount)

	if err := w.err(); err != nil {
		return nil, err
	}
	_ = f.SetColWidth(sheet, "A", "A", 32)
	_ = f.SetColWidth(sheet, "B", "E", 16)
	return writeWorkbook(f)
}

// BuildPayments writes the payment summary, extra entries and expenses
func (s *SpreadsheetService) BuildPayments(data models.PaymentSheetData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Pagamentos"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}
	w, err := newSheetWriter(f, sheet)
	if err != nil {
		return nil, err
	}

	summary := totals.SummarizePayments(data)

	w.header(s.letterhead.ChurchName)
	w.line(s.letterhead.PaymentsTitle)
	w.line("Data", utils.FormatDate(data.Date))
	w.line("Dia", data.DayLabel())
	w.blank()

	w.line("Entradas (Dízimos)", data.Entries)
	w.line("Saldo Anterior", data.PreviousBalance)
	w.blank()

	w.header("Entradas Extras", "Valor")
	for _, e := range data.ExtraEntries {
		w.line(e.Description, e.Value)
	}
	w.blank()

	w.header("Data", "Descrição", "Valor")
	for _, e := range data.Expenses {
		w.line(utils.FormatDate(e.Date), e.Description, e.Value)
	}
	w.blank()

	w.line("Total Disponível", summary.TotalAvailable)
	w.line("Total Despesas", summary.TotalExpenses)
	w.header("Valor Total em Caixa", summary.Balance)

	if err := w.err(); err != nil {
		return nil, err
	}
	_ = f.SetColWidth(sheet, "A", "A", 28)
	_ = f.SetColWidth(sheet, "B", "B", 40)
	_ = f.SetColWidth(sheet, "C", "C", 16)
	return writeWorkbook(f)
}

func writeWorkbook(f *excelize.File) ([]byte, error) {
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func strPtr(s string) *string { return &s }
