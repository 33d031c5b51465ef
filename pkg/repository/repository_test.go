package repository_test

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/holodeck/pkg/domain/interfaces"
	"github.com/secmon-lab/holodeck/pkg/domain/model"
	"github.com/secmon-lab/holodeck/pkg/domain/types"
	"github.com/secmon-lab/holodeck/pkg/repository"
)

func newTestReport(owner types.SessionKey, createdAt time.Time) *model.Report {
	pair := model.NewEntityTypePair("A", "B")
	req := model.TopUtilizerRequest{
		EntitySetID:  "people",
		NumResults:   10,
		EventFilters: []model.EventFilterSpec{{Pair: pair, Weight: 1}},
	}
	query, index := model.BuildRankingQuery(req.EventFilters, req.Mode(), nil, nil)
	rows := []model.RankingRow{{"self_entity_key_id": "e1", "score": 3.0, "assoc_0_count": 3.0}}

	return &model.Report{
		ID:          types.ReportID(fmt.Sprintf("report-%d", time.Now().UnixNano())),
		EntitySetID: "people",
		Owner:       owner,
		Request:     req,
		Query:       query,
		PairIndex:   index,
		Rows:        rows,
		Breakdown:   model.BuildCountBreakdown(index, rows),
		CreatedAt:   createdAt,
	}
}

func testRepository(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Run("PutReport", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		ctx := context.Background()
		report := newTestReport(types.SessionKey(fmt.Sprintf("owner-%d", time.Now().UnixNano())), time.Now())
		gt.NoError(t, repo.PutReport(ctx, report))

		retrieved, err := repo.GetReport(ctx, report.ID)
		gt.NoError(t, err).Required()
		gt.Equal(t, retrieved.ID, report.ID)
		gt.Equal(t, retrieved.Owner, report.Owner)
		gt.Equal(t, retrieved.PairIndex, report.PairIndex)
		gt.Equal(t, retrieved.Breakdown["e1"].Score, 3.0)
		gt.Equal(t, retrieved.Breakdown["e1"].Pair(model.NewEntityTypePair("A", "B")).Count(), 3.0)
		gt.True(t, report.CreatedAt.Sub(retrieved.CreatedAt).Abs() < time.Second)
	})

	t.Run("PutReport_Invalid", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		gt.Error(t, repo.PutReport(context.Background(), nil))
		gt.Error(t, repo.PutReport(context.Background(), &model.Report{}))
	})

	t.Run("GetReport_NotFound", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		_, err := repo.GetReport(context.Background(), types.ReportID(fmt.Sprintf("missing-%d", time.Now().UnixNano())))
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrReportNotFound))
		gt.B(t, goerr.HasTag(err, model.ErrTagNotFound)).True()
	})

	t.Run("ListReports", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		ctx := context.Background()
		owner := types.SessionKey(fmt.Sprintf("owner-%d", time.Now().UnixNano()))
		now := time.Now()
		older := newTestReport(owner, now.Add(-time.Hour))
		newer := newTestReport(owner, now)
		other := newTestReport(owner+"-other", now)
		for _, r := range []*model.Report{older, newer, other} {
			gt.NoError(t, repo.PutReport(ctx, r)).Required()
		}

		list, err := repo.ListReports(ctx, owner)
		gt.NoError(t, err).Required()
		gt.Equal(t, len(list), 2)
		gt.Equal(t, list[0].ID, newer.ID)
		gt.Equal(t, list[1].ID, older.ID)
		gt.Equal(t, list[0].NumResults, 1)
		gt.Equal(t, list[0].CountType, types.CountTypeEvents)
	})

	t.Run("DeleteReport", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		ctx := context.Background()
		report := newTestReport("owner", time.Now())
		gt.NoError(t, repo.PutReport(ctx, report)).Required()
		gt.NoError(t, repo.DeleteReport(ctx, report.ID))

		_, err := repo.GetReport(ctx, report.ID)
		gt.True(t, errors.Is(err, model.ErrReportNotFound))

		err = repo.DeleteReport(ctx, report.ID)
		gt.True(t, errors.Is(err, model.ErrReportNotFound))
	})
}

func TestMemoryRepository(t *testing.T) {
	testRepository(t, func(t *testing.T) interfaces.Repository {
		return repository.NewMemory()
	})
}

func TestFirestoreRepository(t *testing.T) {
	projectID := os.Getenv("TEST_FIRESTORE_PROJECT")
	databaseID := os.Getenv("TEST_FIRESTORE_DATABASE")

	if projectID == "" || databaseID == "" {
		t.Skip("Skipping Firestore test: TEST_FIRESTORE_PROJECT and TEST_FIRESTORE_DATABASE must be set")
	}

	testRepository(t, func(t *testing.T) interfaces.Repository {
		ctx := context.Background()
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
		ctx = ctxlog.With(ctx, logger)

		repo, err := repository.NewFirestore(ctx, projectID, databaseID,
			repository.WithCollection("test_reports"))
		gt.NoError(t, err).Required()
		return repo
	})
}
