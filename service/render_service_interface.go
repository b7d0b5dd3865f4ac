package service

import "tesouraria-ibs/models"

// RenderServiceInterface defines the contract for rendering working documents as HTML
type RenderServiceInterface interface {
	Render(state models.AppState, editable bool) (*RenderedDocument, error)
}
