package services

import (
	"context"
	"strings"
	"time"

	"scholarhub/apperror"
	"scholarhub/extraction"
	"scholarhub/metrics"
	"scholarhub/models"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
)

const maxDocumentBytes = 10 << 20

type DocumentService struct {
	documents DocumentStore
	users     UserStore
	extractor extraction.Extractor
	log       *logrus.Logger
	now       func() time.Time
}

func NewDocumentService(documents DocumentStore, users UserStore, extractor extraction.Extractor, log *logrus.Logger, now func() time.Time) *DocumentService {
	return &DocumentService{documents: documents, users: users, extractor: extractor, log: log, now: now}
}

type UploadRequest struct {
	Kind     string
	Filename string
	MimeType string
	Content  []byte
}

type UploadResult struct {
	Document   *models.Document   `json:"document"`
	Transcript *models.Transcript `json:"transcript,omitempty"`
	User       *models.User       `json:"user"`
}

// Upload sends the document to the extractor and stores what it read. Transcripts also
// replace the user's GPA and merge their subject grades.
func (s *DocumentService) Upload(ctx context.Context, uid string, req UploadRequest) (*UploadResult, error) {
	kind := strings.ToLower(strings.TrimSpace(req.Kind))
	if kind != models.DocumentTranscript && kind != models.DocumentCertificate {
		return nil, apperror.Validation("invalid document kind", map[string]string{
			"kind": "must be transcript or certificate",
		})
	}
	if len(req.Content) == 0 {
		return nil, apperror.Validation("empty document", map[string]string{"file": "is required"})
	}
	if len(req.Content) > maxDocumentBytes {
		return nil, apperror.Validation("document too large", map[string]string{"file": "must be at most 10MB"})
	}
	if err := extraction.CheckFormat(req.MimeType); err != nil {
		metrics.ExtractionFailures.WithLabelValues("unsupported_format").Inc()
		return nil, err
	}

	user, err := s.users.GetByID(ctx, uid)
	if err != nil {
		return nil, err
	}

	result, err := s.extractor.Extract(ctx, extraction.Request{
		Kind:     kind,
		Filename: req.Filename,
		MimeType: req.MimeType,
		Content:  req.Content,
	})
	if err != nil {
		reason := "extractor"
		if apperror.IsFormatUnsupported(err) {
			reason = "unsupported_format"
		}
		metrics.ExtractionFailures.WithLabelValues(reason).Inc()
		s.log.WithFields(logrus.Fields{"actor": uid, "kind": kind}).WithError(err).Warn("document extraction failed")
		if !apperror.Is(err, apperror.ExtractionFailure) {
			err = apperror.Extraction("document extraction failed", false, err)
		}
		return nil, err
	}

	now := s.now()
	doc := &models.Document{
		ID:              uuid.NewString(),
		UserID:          uid,
		Kind:            kind,
		Filename:        req.Filename,
		MimeType:        req.MimeType,
		SizeBytes:       len(req.Content),
		ExtractedFields: datatypes.JSONMap(result.Fields),
		CreatedAt:       now,
	}
	if err := s.documents.Create(ctx, doc); err != nil {
		return nil, err
	}

	out := &UploadResult{Document: doc}
	fields := map[string]interface{}{"documents_uploaded": user.DocumentsUploaded + 1}

	if kind == models.DocumentTranscript {
		transcript := &models.Transcript{
			ID:          uuid.NewString(),
			UserID:      uid,
			DocumentID:  doc.ID,
			Institution: result.Institution,
			GPA:         result.GPA,
			Grades:      datatypes.NewJSONType(result.Grades),
			CreatedAt:   now,
		}
		if err := s.documents.CreateTranscript(ctx, transcript); err != nil {
			return nil, err
		}
		out.Transcript = transcript

		fields["transcript_uploaded"] = true
		if result.GPA != nil {
			fields["gpa"] = *result.GPA
		}
		if len(result.Grades) > 0 {
			merged := map[string]float64{}
			for subject, grade := range user.Grades.Data() {
				merged[subject] = grade
			}
			for subject, grade := range result.Grades {
				merged[subject] = grade
			}
			fields["grades"] = datatypes.NewJSONType(merged)
		}
	}

	// Counters are read-modify-write across documents; the reconcile job repairs drift.
	updated, err := s.users.Update(ctx, uid, fields)
	if err != nil {
		return nil, err
	}
	out.User = updated

	s.log.WithFields(logrus.Fields{
		"actor":       uid,
		"document_id": doc.ID,
		"kind":        kind,
	}).Info("document uploaded")

	return out, nil
}

func (s *DocumentService) List(ctx context.Context, uid string) ([]models.Document, error) {
	return s.documents.ListByUser(ctx, uid)
}
