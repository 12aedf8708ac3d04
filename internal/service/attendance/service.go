package attendance

import (
	"context"
	"time"

	"github.com/edupoint/edupoint-backend-go/internal/domain/attendance"
	"github.com/edupoint/edupoint-backend-go/internal/domain/class"
	"github.com/edupoint/edupoint-backend-go/internal/pkg/database"
	"github.com/edupoint/edupoint-backend-go/internal/repository/postgresql"
)

type AttendanceServiceImpl struct {
	db             *database.DB
	attendanceRepo attendance.AttendanceRepository
	classRepo      class.ClassRepository
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	classRepo class.ClassRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:             db,
		attendanceRepo: attendanceRepo,
		classRepo:      classRepo,
	}
}

// SetAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) SetAttendance(ctx context.Context, req attendance.SetAttendanceRequest) ([]attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// every class referenced must exist; enrollment is not enforced here, the
	// original product lets the front desk mark walk-ins before enrollment is
	// fixed up
	seen := make(map[string]bool)
	for _, rec := range req.Records {
		if seen[rec.ClassID] {
			continue
		}
		if _, err := s.classRepo.GetByID(ctx, rec.ClassID); err != nil {
			return nil, err
		}
		seen[rec.ClassID] = true
	}

	records := make([]attendance.Record, 0, len(req.Records))
	for _, rec := range req.Records {
		date, _ := time.Parse("2006-01-02", rec.Date)
		records = append(records, attendance.Record{
			ClassID:   rec.ClassID,
			StudentID: rec.StudentID,
			Date:      date,
			Status:    attendance.Status(rec.Status),
		})
	}

	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		return s.attendanceRepo.UpsertBatch(txCtx, records)
	})
	if err != nil {
		return nil, err
	}

	resp := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		resp = append(resp, attendance.ToRecordResponse(rec))
	}
	return resp, nil
}

// DeleteForDate implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) DeleteForDate(ctx context.Context, classID string, date time.Time) (int64, error) {
	if _, err := s.classRepo.GetByID(ctx, classID); err != nil {
		return 0, err
	}
	return s.attendanceRepo.DeleteForDate(ctx, classID, date)
}

// DeleteForMonth implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) DeleteForMonth(ctx context.Context, year int, month time.Month) (int64, error) {
	return s.attendanceRepo.DeleteForMonth(ctx, year, month)
}

// ListForClassDate implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListForClassDate(ctx context.Context, classID string, date time.Time) ([]attendance.RecordResponse, error) {
	records, err := s.attendanceRepo.ListForClassDate(ctx, classID, date)
	if err != nil {
		return nil, err
	}

	resp := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		resp = append(resp, attendance.ToRecordResponse(rec))
	}
	return resp, nil
}
