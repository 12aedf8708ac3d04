package catalog

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/edupoint/edupoint-backend-go/internal/domain/class"
	"github.com/edupoint/edupoint-backend-go/internal/pkg/database"
	"github.com/edupoint/edupoint-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCatalogDB *database.DB

func catalogTestInit(t *testing.T) {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	if testCatalogDB != nil {
		return
	}

	var err error
	testCatalogDB, err = database.NewPostgreSQLDB(dsn)
	require.NoError(t, err, "failed to connect to test database")
}

func truncateCatalogTables(t *testing.T, ctx context.Context) {
	t.Helper()

	tables := []string{"class_schedules", "class_students", "class_teachers", "classes", "teachers", "students"}
	for _, table := range tables {
		_, err := testCatalogDB.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err)
	}
}

func newClassTestService() class.ClassService {
	return NewClassService(
		testCatalogDB,
		postgresql.NewClassRepository(testCatalogDB),
		postgresql.NewStudentRepository(testCatalogDB),
		postgresql.NewTeacherRepository(testCatalogDB),
	)
}

func TestClassService_ScheduleRoundTrip(t *testing.T) {
	ctx := context.Background()
	catalogTestInit(t)
	truncateCatalogTables(t, ctx)

	svc := newClassTestService()

	created, err := svc.CreateClass(ctx, class.CreateClassRequest{
		Name:      "Guitar",
		FeeType:   "PER_SESSION",
		FeeAmount: 50000,
		Schedule: []class.ScheduleSlotRequest{
			{DayOfWeek: 1, StartTime: "17:00", EndTime: "18:30"},
			{DayOfWeek: 4, StartTime: "17:00", EndTime: "18:30"},
		},
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := svc.GetClass(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, got.Schedule, 2)
	assert.Equal(t, 1, got.Schedule[0].DayOfWeek)
	assert.Equal(t, "17:00", got.Schedule[0].StartTime)
	assert.Equal(t, "18:30", got.Schedule[0].EndTime)
	assert.Equal(t, 4, got.Schedule[1].DayOfWeek)

	// update replaces the schedule wholesale
	newSchedule := []class.ScheduleSlotRequest{
		{DayOfWeek: 6, StartTime: "09:00", EndTime: "10:30"},
	}
	_, err = svc.UpdateClass(ctx, class.UpdateClassRequest{
		ID:       created.ID,
		Schedule: &newSchedule,
	})
	require.NoError(t, err)

	got, err = svc.GetClass(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, got.Schedule, 1)
	assert.Equal(t, 6, got.Schedule[0].DayOfWeek)
	assert.Equal(t, "09:00", got.Schedule[0].StartTime)
}
