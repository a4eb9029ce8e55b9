package store_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LogeshBharathi/pdf-job-parser-backend/internal/extract"
	"github.com/LogeshBharathi/pdf-job-parser-backend/internal/store"
)

func openTestDB(t *testing.T) *store.DB {
	t.Helper()
	db, err := store.Open(filepath.Join(t.TempDir(), "parses.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestParseRepository_SaveAndList(t *testing.T) {
	repo := store.NewParseRepository(openTestDB(t))
	ctx := context.Background()

	row := store.ParseRow{
		Filename: "notice.pdf",
		Tier:     string(extract.TierModel),
		Attempts: 2,
		Record: extract.JobRecord{
			JobTitle:            "Junior Engineer",
			Department:          "Railway Recruitment Board",
			Vacancies:           "750",
			Eligibility:         "Diploma in Engineering",
			Salary:              "Pay Level 6",
			ApplicationDeadline: "2025-10-15",
			ApplicationURL:      "https://www.rrbapply.gov.in",
			RawText:             "RAILWAY RECRUITMENT BOARD",
		},
	}
	require.NoError(t, repo.SaveParse(ctx, row))

	got, err := repo.ListParses(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.NotEqual(t, uuid.Nil, got[0].ID)
	assert.False(t, got[0].CreatedAt.IsZero())
	assert.Equal(t, row.Filename, got[0].Filename)
	assert.Equal(t, row.Tier, got[0].Tier)
	assert.Equal(t, row.Attempts, got[0].Attempts)
	assert.Equal(t, row.Record, got[0].Record)
}

func TestParseRepository_ListOrdersNewestFirst(t *testing.T) {
	repo := store.NewParseRepository(openTestDB(t))
	ctx := context.Background()

	base := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)
	for i, name := range []string{"old.pdf", "mid.pdf", "new.pdf"} {
		require.NoError(t, repo.SaveParse(ctx, store.ParseRow{
			Filename:  name,
			Tier:      string(extract.TierRegex),
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}))
	}

	got, err := repo.ListParses(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "new.pdf", got[0].Filename)
	assert.Equal(t, "old.pdf", got[2].Filename)
}

func TestParseRepository_ListHonorsLimit(t *testing.T) {
	repo := store.NewParseRepository(openTestDB(t))
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.SaveParse(ctx, store.ParseRow{
			Filename: "notice.pdf",
			Tier:     string(extract.TierRegex),
		}))
	}

	got, err := repo.ListParses(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
