package service

import "tesouraria-ibs/models"

// SpreadsheetServiceInterface builds an XLSX workbook of the working document
type SpreadsheetServiceInterface interface {
	Build(state models.AppState) ([]byte, error)
}
