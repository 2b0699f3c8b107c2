package service

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hostelms/internal/cache"
	"hostelms/internal/errors"
	"hostelms/internal/model"
	"hostelms/internal/repository"
)

const (
	dashboardStatsCacheKey = "dashboard:stats"
	dashboardStatsCacheTTL = time.Minute
)

// CreateReportInput carries the fields of a report creation request.
type CreateReportInput struct {
	ReportType  string
	Title       string
	Description string
	HostelID    *uuid.UUID
	Data        map[string]interface{}
}

// DashboardStats aggregates room occupancy across all hostels.
type DashboardStats struct {
	TotalHostels        int64   `json:"totalHostels"`
	TotalRooms          int64   `json:"totalRooms"`
	TotalAvailableRooms int64   `json:"totalAvailableRooms"`
	OccupancyRate       float64 `json:"occupancyRate"`
}

// ReportService exposes report operations and dashboard aggregation.
type ReportService interface {
	Create(ctx context.Context, generatedBy uuid.UUID, input CreateReportInput) (*model.Report, error)
	List(ctx context.Context) ([]model.Report, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Report, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DashboardStats(ctx context.Context) (*DashboardStats, error)
}

type reportService struct {
	reportRepo repository.ReportRepository
	hostelRepo repository.HostelRepository
	cache      *cache.Client
}

// NewReportService builds a ReportService with repositories and cache.
func NewReportService(reportRepo repository.ReportRepository, hostelRepo repository.HostelRepository, cache *cache.Client) ReportService {
	return &reportService{
		reportRepo: reportRepo,
		hostelRepo: hostelRepo,
		cache:      cache,
	}
}

func (s *reportService) Create(ctx context.Context, generatedBy uuid.UUID, input CreateReportInput) (*model.Report, error) {
	if input.ReportType == "" || input.Title == "" {
		return nil, errors.Validation("please provide report type and title")
	}
	if !model.ValidReportType(input.ReportType) {
		return nil, errors.Validation("reportType must be occupancy, revenue, user_activity, or hostel_summary")
	}

	data := input.Data
	if data == nil {
		data = map[string]interface{}{}
	}

	report := &model.Report{
		ReportType:  input.ReportType,
		Title:       input.Title,
		Description: input.Description,
		GeneratedBy: generatedBy,
		HostelID:    input.HostelID,
		Data:        data,
	}

	if err := s.reportRepo.Create(ctx, report); err != nil {
		return nil, errors.Internal("error creating report", err)
	}

	return report, nil
}

func (s *reportService) List(ctx context.Context) ([]model.Report, error) {
	reports, err := s.reportRepo.List(ctx)
	if err != nil {
		return nil, errors.Internal("error fetching reports", err)
	}
	return reports, nil
}

func (s *reportService) Get(ctx context.Context, id uuid.UUID) (*model.Report, error) {
	report, err := s.reportRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NotFound("report not found")
		}
		return nil, errors.Internal("error fetching report", err)
	}
	return report, nil
}

func (s *reportService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.reportRepo.FindByID(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.NotFound("report not found")
		}
		return errors.Internal("error deleting report", err)
	}

	if err := s.reportRepo.Delete(ctx, id); err != nil {
		return errors.Internal("error deleting report", err)
	}
	return nil
}

// DashboardStats computes hostel and room totals plus the occupancy rate,
// rounded to two decimal places. With no rooms the rate is 0, never NaN.
func (s *reportService) DashboardStats(ctx context.Context) (*DashboardStats, error) {
	var cached DashboardStats
	if s.cache.GetJSON(ctx, dashboardStatsCacheKey, &cached) {
		return &cached, nil
	}

	totals, err := s.hostelRepo.Totals(ctx)
	if err != nil {
		return nil, errors.Internal("error fetching statistics", err)
	}

	stats := &DashboardStats{
		TotalHostels:        totals.TotalHostels,
		TotalRooms:          totals.TotalRooms,
		TotalAvailableRooms: totals.TotalAvailableRooms,
	}
	if totals.TotalRooms > 0 {
		rate := float64(totals.TotalRooms-totals.TotalAvailableRooms) / float64(totals.TotalRooms) * 100
		stats.OccupancyRate = math.Round(rate*100) / 100
	}

	s.cache.SetJSON(ctx, dashboardStatsCacheKey, stats, dashboardStatsCacheTTL)
	return stats, nil
}
