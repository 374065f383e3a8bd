package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zulandar/hwrel/internal/hardware"
	"github.com/zulandar/hwrel/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestNextCronDuration_ValidExpression(t *testing.T) {
	// "0 9 * * *" = daily at 09:00. Duration should be positive and < 24h.
	d := nextCronDuration("0 9 * * *")
	if d <= 0 {
		t.Fatalf("expected positive duration, got %v", d)
	}
	if d > 24*time.Hour {
		t.Fatalf("expected duration < 24h, got %v", d)
	}
}

func TestNextCronDuration_InvalidExpression(t *testing.T) {
	if d := nextCronDuration("not a cron expr"); d != 0 {
		t.Fatalf("expected 0 for invalid expression, got %v", d)
	}
}

func TestNextCronDuration_EveryMinute(t *testing.T) {
	d := nextCronDuration("* * * * *")
	if d <= 0 || d > 61*time.Second {
		t.Fatalf("expected duration in (0, 61s], got %v", d)
	}
}

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&models.Hardware{},
		&models.ElectricalDesign{},
		&models.MechanicalDesign{},
		&models.MilHdbkF{},
		&models.NSWC{},
		&models.Reliability{},
		&models.CalculationRun{},
	))
	return db
}

func TestNew_Validation(t *testing.T) {
	db := testDB(t)

	_, err := New(Opts{Cron: "* * * * *", RootID: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db is required")

	_, err = New(Opts{DB: db, Cron: "every hour", RootID: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scheduler: parse")

	_, err = New(Opts{DB: db, Cron: "* * * * *"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "root id is required")
}

func TestFire_RecordsRun(t *testing.T) {
	db := testDB(t)
	root, err := hardware.Create(db, hardware.CreateOpts{Name: "System", RefDes: "S1"})
	require.NoError(t, err)

	s, err := New(Opts{DB: db, Cron: "0 3 * * *", RootID: root.ID, HRMultiplier: 1})
	require.NoError(t, err)

	res, err := s.Fire()
	require.NoError(t, err)
	assert.Equal(t, "schedule", res.Run.Trigger)

	runs, err := hardware.ListRuns(db, root.ID, 0)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "schedule", runs[0].Trigger)
}

func TestFire_Error(t *testing.T) {
	db := testDB(t)
	s, err := New(Opts{DB: db, Cron: "0 3 * * *", RootID: 77})
	require.NoError(t, err)

	_, err = s.Fire()
	require.Error(t, err)
	assert.True(t, errors.Is(err, hardware.ErrNotFound))
}

func TestRun_StopsOnCancel(t *testing.T) {
	db := testDB(t)
	s, err := New(Opts{DB: db, Cron: "0 3 * * *", RootID: 1})
	require.NoError(t, err)
	s.recalc = func() (*hardware.RecalcResult, error) {
		t.Error("recalc should not fire before the first tick")
		return nil, nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
