package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"

	"watchquote/api/internal/models"
	"watchquote/api/internal/parser"
	"watchquote/api/internal/repositories"
)

// IngestionStats summarizes one processed transcript.
type IngestionStats struct {
	ChatFileID       int64
	TotalMessages    int
	ParsedQuotations int
}

// IngestionService runs the upload pipeline: decode, parse, archive the
// original text, and persist the chat-file record plus extracted quotations.
type IngestionService struct {
	chatFiles  *repositories.ChatFileRepository
	quotations *repositories.QuotationRepository
	files      *FileStore
}

func NewIngestionService(chatFiles *repositories.ChatFileRepository, quotations *repositories.QuotationRepository, files *FileStore) *IngestionService {
	return &IngestionService{
		chatFiles:  chatFiles,
		quotations: quotations,
		files:      files,
	}
}

// IngestBase64 handles a transport-encoded upload.
func (s *IngestionService) IngestBase64(ctx context.Context, userID int64, filename, contentB64 string) (*IngestionStats, error) {
	raw, err := base64.StdEncoding.DecodeString(contentB64)
	if err != nil {
		return nil, fmt.Errorf("failed to decode upload: %w", err)
	}
	return s.IngestText(ctx, userID, filename, raw)
}

// IngestText processes a raw transcript for a user. Extraction itself never
// fails; a transcript that yields nothing still gets a chat-file record so
// the caller can report that zero quotations were found.
func (s *IngestionService) IngestText(ctx context.Context, userID int64, filename string, raw []byte) (*IngestionStats, error) {
	result := parser.Parse(string(raw))

	fileKey, err := s.files.Put(userID, filename, raw)
	if err != nil {
		return nil, err
	}

	chatFileID, err := s.chatFiles.Create(ctx, &models.ChatFile{
		UserID:           userID,
		Filename:         filename,
		FileKey:          fileKey,
		TotalMessages:    len(result.Messages),
		ParsedQuotations: len(result.Quotations),
	})
	if err != nil {
		return nil, err
	}

	if len(result.Quotations) > 0 {
		for i := range result.Quotations {
			result.Quotations[i].UserID = userID
			result.Quotations[i].ChatFileID = chatFileID
		}
		if err := s.quotations.InsertBatch(ctx, result.Quotations); err != nil {
			return nil, err
		}
	}

	log.Printf("Ingested %s for user %d: %d messages, %d quotations",
		filename, userID, len(result.Messages), len(result.Quotations))

	return &IngestionStats{
		ChatFileID:       chatFileID,
		TotalMessages:    len(result.Messages),
		ParsedQuotations: len(result.Quotations),
	}, nil
}

// Reparse re-runs extraction over an archived transcript and replaces the
// quotations previously stored for that file. Useful after the extraction
// patterns improve.
func (s *IngestionService) Reparse(ctx context.Context, file *models.ChatFile) (*IngestionStats, error) {
	raw, err := s.files.Get(file.FileKey)
	if err != nil {
		return nil, err
	}

	result := parser.Parse(string(raw))

	if err := s.quotations.DeleteByChatFile(ctx, file.UserID, file.ID); err != nil {
		return nil, err
	}

	if len(result.Quotations) > 0 {
		for i := range result.Quotations {
			result.Quotations[i].UserID = file.UserID
			result.Quotations[i].ChatFileID = file.ID
		}
		if err := s.quotations.InsertBatch(ctx, result.Quotations); err != nil {
			return nil, err
		}
	}

	if err := s.chatFiles.UpdateStats(ctx, file.ID, len(result.Messages), len(result.Quotations)); err != nil {
		return nil, err
	}

	return &IngestionStats{
		ChatFileID:       file.ID,
		TotalMessages:    len(result.Messages),
		ParsedQuotations: len(result.Quotations),
	}, nil
}
