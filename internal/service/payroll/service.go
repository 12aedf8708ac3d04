package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/edupoint/edupoint-backend-go/internal/domain/attendance"
	"github.com/edupoint/edupoint-backend-go/internal/domain/class"
	"github.com/edupoint/edupoint-backend-go/internal/domain/payroll"
	"github.com/edupoint/edupoint-backend-go/internal/domain/teacher"
	"github.com/edupoint/edupoint-backend-go/internal/pkg/database"
	"github.com/edupoint/edupoint-backend-go/internal/repository/postgresql"
)

type PayrollServiceImpl struct {
	db             *database.DB
	payrollRepo    payroll.PayrollRepository
	teacherRepo    teacher.TeacherRepository
	classRepo      class.ClassRepository
	attendanceRepo attendance.AttendanceRepository
	mode           payroll.SessionCountMode
}

func NewPayrollService(
	db *database.DB,
	payrollRepo payroll.PayrollRepository,
	teacherRepo teacher.TeacherRepository,
	classRepo class.ClassRepository,
	attendanceRepo attendance.AttendanceRepository,
	mode payroll.SessionCountMode,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		db:             db,
		payrollRepo:    payrollRepo,
		teacherRepo:    teacherRepo,
		classRepo:      classRepo,
		attendanceRepo: attendanceRepo,
		mode:           mode,
	}
}

// GeneratePayrolls implements payroll.PayrollService.
func (s *PayrollServiceImpl) GeneratePayrolls(ctx context.Context, req payroll.GeneratePayrollsRequest) ([]payroll.PayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	month := time.Month(req.Month)
	monthLabel := fmt.Sprintf("%04d-%02d", req.Year, req.Month)

	teachers, err := s.teacherRepo.List(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list teachers: %w", err)
	}

	classes, err := s.classRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list classes: %w", err)
	}

	counts, err := s.attendanceRepo.CountClassSessionsForMonth(ctx, req.Year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to count class sessions: %w", err)
	}

	rows := payroll.ComputePayrolls(monthLabel, teachers, classes, counts, s.mode)

	var inserted []payroll.Payroll
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		var err error
		inserted, err = s.payrollRepo.ReplaceForMonth(txCtx, monthLabel, rows)
		return err
	})
	if err != nil {
		return nil, err
	}

	resp := make([]payroll.PayrollResponse, 0, len(inserted))
	for _, p := range inserted {
		resp = append(resp, payroll.ToPayrollResponse(p))
	}
	return resp, nil
}

// ListForMonth implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListForMonth(ctx context.Context, month string) ([]payroll.PayrollResponse, error) {
	payrolls, err := s.payrollRepo.ListForMonth(ctx, month)
	if err != nil {
		return nil, err
	}

	resp := make([]payroll.PayrollResponse, 0, len(payrolls))
	for _, p := range payrolls {
		resp = append(resp, payroll.ToPayrollResponse(p))
	}
	return resp, nil
}
