package insights

import (
	"context"
	"time"

	"traits-backend/internal/profiles"
	"traits-backend/internal/shared/metrics"
)

// Service runs analysis against stored or ad-hoc profiles.
type Service struct {
	Profiles *profiles.Service
	Analyzer *Analyzer
}

// NewService constructs a Service.
func NewService(profileSvc *profiles.Service, analyzer *Analyzer) *Service {
	return &Service{Profiles: profileSvc, Analyzer: analyzer}
}

// AnalyzeStored loads the principal's profile and analyzes it.
func (s *Service) AnalyzeStored(ctx context.Context, userID string) (Result, error) {
	p, err := s.Profiles.Get(ctx, userID)
	if err != nil {
		return Result{}, err
	}
	return s.analyze(p), nil
}

// AnalyzePreview analyzes a profile without touching storage.
func (s *Service) AnalyzePreview(p profiles.Profile) Result {
	return s.analyze(p)
}

// CompletenessReport reports per-framework completeness for the stored profile.
func (s *Service) CompletenessReport(ctx context.Context, userID string) (CompletenessReport, error) {
	p, err := s.Profiles.Get(ctx, userID)
	if err != nil {
		return CompletenessReport{}, err
	}
	return s.Analyzer.Completeness(p), nil
}

func (s *Service) analyze(p profiles.Profile) Result {
	start := time.Now()
	result := s.Analyzer.Analyze(p)
	metrics.ObserveGeneration(time.Since(start))
	return result
}
