package service

import "context"

// BackupServiceInterface defines the contract for remote backups of exported documents
type BackupServiceInterface interface {
	UploadBackup(ctx context.Context, name, mimeType string, data []byte) (string, error)
	ListBackups(ctx context.Context) ([]BackupFile, error)
}
