package mongodb_test

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/cmlabs-hris/hr-portal-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hr-portal-go/internal/pkg/database"
	"github.com/cmlabs-hris/hr-portal-go/internal/repository/mongodb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMongo(t *testing.T) *database.MongoDB {
	t.Helper()

	uri := os.Getenv("TEST_MONGO_URI")
	if uri == "" {
		t.Skip("TEST_MONGO_URI not set; skipping MongoDB repository tests")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	db, err := database.NewMongoDB(ctx, uri, fmt.Sprintf("hr_portal_test_%d", time.Now().UnixNano()))
	require.NoError(t, err)
	require.NoError(t, mongodb.EnsureAttendanceIndexes(ctx, db))

	t.Cleanup(func() {
		ctx := context.Background()
		_ = db.Drop(ctx)
		_ = db.Close(ctx)
	})
	return db
}

func strPtr(s string) *string { return &s }

func TestAttendanceRepository_Lifecycle(t *testing.T) {
	repo := mongodb.NewAttendanceRepository(newTestMongo(t))
	ctx := context.Background()

	missing, err := repo.GetByEmployeeAndDate(ctx, "EMP010", "2026-10-20")
	require.NoError(t, err)
	assert.Nil(t, missing)

	_, err = repo.Create(ctx, attendance.Attendance{EmployeeID: "EMP010", Date: "2026-10-20", CheckIn: strPtr("09:02:13 AM"), Status: attendance.StatusPresent})
	require.NoError(t, err)

	_, err = repo.Create(ctx, attendance.Attendance{EmployeeID: "EMP010", Date: "2026-10-20", Status: attendance.StatusPresent})
	assert.ErrorIs(t, err, attendance.ErrDuplicateAttendance)

	ok, err := repo.SetCheckIn(ctx, "EMP010", "2026-10-20", "10:00:00 AM")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = repo.SetCheckOut(ctx, "EMP010", "2026-10-20", "05:02:13 PM")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.SetCheckOut(ctx, "EMP010", "2026-10-20", "06:00:00 PM")
	require.NoError(t, err)
	assert.False(t, ok)

	got, err := repo.GetByEmployeeAndDate(ctx, "EMP010", "2026-10-20")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "09:02:13 AM", *got.CheckIn)
	assert.Equal(t, "05:02:13 PM", *got.CheckOut)
	assert.Equal(t, attendance.StateCheckedOut, got.State())

	count, err := repo.CountCheckedIn(ctx, "2026-10-20")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestAttendanceRepository_CheckOutWithoutCheckIn(t *testing.T) {
	repo := mongodb.NewAttendanceRepository(newTestMongo(t))
	ctx := context.Background()

	ok, err := repo.SetCheckOut(ctx, "EMP011", "2026-10-20", "05:00:00 PM")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = repo.Create(ctx, attendance.Attendance{EmployeeID: "EMP011", Date: "2026-10-20", Status: attendance.StatusPresent})
	require.NoError(t, err)

	ok, err = repo.SetCheckOut(ctx, "EMP011", "2026-10-20", "05:00:00 PM")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = repo.SetCheckIn(ctx, "EMP011", "2026-10-20", "09:00:00 AM")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAttendanceRepository_ConcurrentCreate(t *testing.T) {
	repo := mongodb.NewAttendanceRepository(newTestMongo(t))
	ctx := context.Background()

	const workers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Create(ctx, attendance.Attendance{EmployeeID: "EMP020", Date: "2026-10-20", CheckIn: strPtr("09:00:00 AM"), Status: attendance.StatusPresent})
			if err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
}

func TestAttendanceRepository_List(t *testing.T) {
	repo := mongodb.NewAttendanceRepository(newTestMongo(t))
	ctx := context.Background()

	for _, date := range []string{"2026-10-18", "2026-10-19", "2026-10-20"} {
		_, err := repo.Create(ctx, attendance.Attendance{EmployeeID: "EMP001", Date: date, CheckIn: strPtr("09:00:00 AM"), Status: attendance.StatusPresent})
		require.NoError(t, err)
	}

	records, total, err := repo.List(ctx, attendance.AttendanceFilter{EndDate: strPtr("2026-10-19"), Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, records, 2)
	assert.Equal(t, "2026-10-19", records[0].Date)
}
