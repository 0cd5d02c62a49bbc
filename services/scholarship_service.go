package services

import (
	"context"

	"scholarhub/models"
)

const maxPageSize = 100

type ScholarshipService struct {
	scholarships ScholarshipStore
}

func NewScholarshipService(scholarships ScholarshipStore) *ScholarshipService {
	return &ScholarshipService{scholarships: scholarships}
}

type ScholarshipPage struct {
	Scholarships []models.Scholarship `json:"scholarships"`
	Total        int64                `json:"total"`
	Page         int                  `json:"page"`
	Limit        int                  `json:"limit"`
}

// List returns one page of scholarships ordered by deadline. page is 1-based.
func (s *ScholarshipService) List(ctx context.Context, page, limit int) (*ScholarshipPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > maxPageSize {
		limit = 20
	}
	items, total, err := s.scholarships.List(ctx, (page-1)*limit, limit)
	if err != nil {
		return nil, err
	}
	return &ScholarshipPage{Scholarships: items, Total: total, Page: page, Limit: limit}, nil
}

func (s *ScholarshipService) Get(ctx context.Context, id string) (*models.Scholarship, error) {
	return s.scholarships.GetByID(ctx, id)
}
