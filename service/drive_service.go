package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"tesouraria-ibs/config"
)

// BackupFile is an exported document stored in the backup folder
type BackupFile struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	MimeType    string `json:"mimeType"`
	Size        int64  `json:"size"`
	CreatedTime string `json:"createdTime"`
	WebViewLink string `json:"webViewLink,omitempty"`
}

// DriveService uploads exported documents to a Google Drive folder
type DriveService struct {
	client   *drive.Service
	folderID string
}

// NewDriveService creates a new DriveService instance
// credentialsPath should be the path to the Service Account JSON file
func NewDriveService(ctx context.Context, credentialsPath, folderID string) (*DriveService, error) {
	if folderID == "" {
		return nil, fmt.Errorf("drive folder id is required")
	}

	driveService, err := drive.NewService(ctx,
		option.WithCredentialsFile(credentialsPath),
		option.WithScopes(drive.DriveFileScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}

	return &DriveService{
		client:   driveService,
		folderID: folderID,
	}, nil
}

// Ensure DriveService implements BackupServiceInterface
var _ BackupServiceInterface = (*DriveService)(nil)

// UploadBackup stores data as a new file in the backup folder and returns its id
func (ds *DriveService) UploadBackup(ctx context.Context, name, mimeType string, data []byte) (string, error) {
	file := &drive.File{
		Name:     name,
		MimeType: mimeType,
		Parents:  []string{ds.folderID},
	}

	created, err := ds.client.Files.Create(file).
		Media(bytes.NewReader(data)).
		Fields("id, name").
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("failed to upload backup: %w", err)
	}

	config.GetLogger().WithField("fileId", created.Id).Infof("✅ UploadBackup: %s uploaded", created.Name)
	return created.Id, nil
}

// ListBackups lists the PDF and spreadsheet backups in the folder, newest first
func (ds *DriveService) ListBackups(ctx context.Context) ([]BackupFile, error) {
	query := fmt.Sprintf("'%s' in parents and trashed=false", ds.folderID)

	var allFiles []*drive.File
	pageToken := ""
	for {
		call := ds.client.Files.List().
			Q(query).
			OrderBy("createdTime desc").
			Fields("nextPageToken, files(id, name, mimeType, size, createdTime, webViewLink)").
			Context(ctx)

		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		r, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("failed to list files: %w", err)
		}

		allFiles = append(allFiles, r.Files...)
		pageToken = r.NextPageToken

		if pageToken == "" {
			break
		}
	}

	backupMimeTypes := map[string]bool{
		mimePDF:  true,
		mimeXLSX: true,
	}

	backups := make([]BackupFile, 0, len(allFiles))
	for _, file := range allFiles {
		if !backupMimeTypes[strings.ToLower(file.MimeType)] {
			continue
		}
		backups = append(backups, BackupFile{
			ID:          file.Id,
			Name:        file.Name,
			MimeType:    file.MimeType,
			Size:        file.Size,
			CreatedTime: file.CreatedTime,
			WebViewLink: file.WebViewLink,
		})
	}

	return backups, nil
}
