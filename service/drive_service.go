package service

import (
	"bytes"
	"context"
	"fmt"
	"log"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

const pdfMimeType = "application/pdf"

// DriveService archives generated tickets in a Google Drive folder
type DriveService struct {
	client   *drive.Service
	folderID string
}

// NewDriveService creates a new DriveService instance
// credentialsPath should be the path to the Service Account JSON file
func NewDriveService(ctx context.Context, credentialsPath, folderID string) (*DriveService, error) {
	// option.WithCredentialsFile automatically handles Service Account authentication
	driveService, err := drive.NewService(ctx, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}

	return &DriveService{
		client:   driveService,
		folderID: folderID,
	}, nil
}

// Ensure DriveService implements TicketArchiveInterface
var _ TicketArchiveInterface = (*DriveService)(nil)

// UploadTicket stores a ticket PDF in the archive folder and returns its file ID
func (ds *DriveService) UploadTicket(ctx context.Context, name string, pdf []byte) (string, error) {
	file := &drive.File{
		Name:     name,
		MimeType: pdfMimeType,
	}
	if ds.folderID != "" {
		file.Parents = []string{ds.folderID}
	}

	created, err := ds.client.Files.Create(file).
		Media(bytes.NewReader(pdf)).
		Fields("id").
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("failed to upload ticket %s: %w", name, err)
	}

	log.Printf("📤 UploadTicket: Uploaded %s (%d bytes) to folder %s", name, len(pdf), ds.folderID)
	return created.Id, nil
}
