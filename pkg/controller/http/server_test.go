package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	ctrlhttp "github.com/secmon-lab/holodeck/pkg/controller/http"
	"github.com/secmon-lab/holodeck/pkg/domain/interfaces/mocks"
	"github.com/secmon-lab/holodeck/pkg/domain/model"
	"github.com/secmon-lab/holodeck/pkg/domain/types"
	"github.com/secmon-lab/holodeck/pkg/repository"
	"github.com/secmon-lab/holodeck/pkg/usecase"
)

func newLatticeMock() *mocks.LatticeClientMock {
	return &mocks.LatticeClientMock{
		GetEntityTypesFunc: func(ctx context.Context) ([]*model.EntityType, error) {
			return []*model.EntityType{
				{ID: "arrested-in", Title: "Arrested in", Properties: []types.PropertyTypeID{"days"}},
				{ID: "charge", Title: "Charge"},
			}, nil
		},
		GetPropertyTypesFunc: func(ctx context.Context) ([]*model.PropertyType, error) {
			return []*model.PropertyType{
				{ID: "days", Type: model.FQN{Namespace: "ol", Name: "durationdays"}, Title: "Days", Datatype: "Int64"},
			}, nil
		},
		GetEntitySetsFunc: func(ctx context.Context) ([]*model.EntitySet, error) {
			return []*model.EntitySet{{ID: "people", Title: "People", EntityTypeID: "person"}}, nil
		},
		GetTopUtilizersFunc: func(ctx context.Context, entitySetID types.EntitySetID, numResults int, query *model.RankingQuery) ([]model.RankingRow, error) {
			return []model.RankingRow{
				{"id": "p1", "score": 3.0, "assoc_0_count": 3.0},
				{"id": "p2", "score": 1.0, "assoc_0_count": 1.0},
			}, nil
		},
		GetEntitySetDataFunc: func(ctx context.Context, entitySetID types.EntitySetID, ids []types.EntityKeyID) ([]model.Entity, error) {
			return []model.Entity{
				{"openlattice.@id": {"p1"}, "ol.name": {"Alice"}},
				{"openlattice.@id": {"p2"}, "ol.name": {"Bob"}},
			}, nil
		},
		SearchEntityNeighborsBulkFunc: func(ctx context.Context, entitySetID types.EntitySetID, ids []types.EntityKeyID) (model.NeighborsByEntity, error) {
			return model.NeighborsByEntity{}, nil
		},
		SearchEntitySetsFunc: func(ctx context.Context, search model.EntitySetSearch) (*model.EntitySetSearchResult, error) {
			return &model.EntitySetSearchResult{
				NumHits: 1,
				Hits:    []model.EntitySetHit{{EntitySet: model.EntitySet{ID: "people", Title: "People"}}},
			}, nil
		},
	}
}

type testServer struct {
	handler http.Handler
	client  *mocks.LatticeClientMock
}

func newTestServer(t *testing.T, opts ...ctrlhttp.Option) *testServer {
	t.Helper()

	client := newLatticeMock()
	repo := repository.NewMemory()
	workspaces := usecase.NewWorkspaces()
	edm := usecase.NewDataModelUseCase(client, nil, 0)

	useCases := &ctrlhttp.UseCases{
		TopUtilizers: usecase.NewTopUtilizersUseCase(client, repo, edm, workspaces,
			usecase.WithDispatcher(func(ctx context.Context, handler func(ctx context.Context) error) {
				_ = handler(ctx)
			})),
		Explore:   usecase.NewExploreUseCase(client, edm, workspaces),
		Reports:   usecase.NewReportUseCase(repo, edm, nil),
		Workspace: workspaces,
	}

	opts = append([]ctrlhttp.Option{
		ctrlhttp.WithFrontendFS(http.Dir("testdata/spa")),
		ctrlhttp.WithClock(func() time.Time { return testNow }),
	}, opts...)
	server, err := ctrlhttp.NewServer(context.Background(), ":0", useCases, opts...)
	gt.NoError(t, err).Required()

	return &testServer{handler: server.Handler, client: client}
}

func (s *testServer) do(t *testing.T, method, path, subject, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if subject != "" {
		req.Header.Set("Authorization", "Bearer "+newToken(t, subject, testNow.Add(time.Hour)))
	}
	w := httptest.NewRecorder()
	s.handler.ServeHTTP(w, req)
	return w
}

const rankingBody = `{
	"entitySetId": "people",
	"numResults": 10,
	"eventFilters": [
		{"pair": {"associationTypeId": "arrested-in", "neighborTypeId": "charge"}, "isSource": true, "weight": 1}
	]
}`

func TestServerHealthCheck(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/health", "", "")
	gt.Equal(t, w.Code, http.StatusOK)

	var resp map[string]string
	gt.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	gt.Equal(t, resp["status"], "healthy")
	gt.Equal(t, resp["service"], "holodeck")
}

func TestServerAuth(t *testing.T) {
	s := newTestServer(t)

	t.Run("missing token", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/api/reports", "", "")
		gt.Equal(t, w.Code, http.StatusUnauthorized)
	})

	t.Run("expired token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/reports", nil)
		req.Header.Set("Authorization", "Bearer "+newToken(t, "alice", testNow.Add(-time.Hour)))
		w := httptest.NewRecorder()
		s.handler.ServeHTTP(w, req)
		gt.Equal(t, w.Code, http.StatusUnauthorized)
	})

	t.Run("valid token", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/api/reports", "alice", "")
		gt.Equal(t, w.Code, http.StatusOK)
		gt.Equal(t, strings.TrimSpace(w.Body.String()), "[]")
	})
}

func TestServerTopUtilizers(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/top-utilizers", "alice", rankingBody)
	gt.Equal(t, w.Code, http.StatusCreated)

	var report struct {
		ID        string                     `json:"id"`
		Breakdown map[string]json.RawMessage `json:"breakdown"`
	}
	gt.NoError(t, json.Unmarshal(w.Body.Bytes(), &report)).Required()
	gt.NotEqual(t, report.ID, "")
	gt.S(t, string(report.Breakdown["p1"])).Contains(`"arrested-in|charge":{"COUNT":3}`)

	t.Run("listed for the owner only", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/api/reports", "alice", "")
		gt.Equal(t, w.Code, http.StatusOK)
		gt.S(t, w.Body.String()).Contains(report.ID)

		w = s.do(t, http.MethodGet, "/api/reports/"+report.ID, "bob", "")
		gt.Equal(t, w.Code, http.StatusNotFound)
	})

	t.Run("dashboard", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/api/reports/"+report.ID+"/dashboard", "alice", "")
		gt.Equal(t, w.Code, http.StatusOK)
		gt.S(t, w.Body.String()).Contains(`"pareto"`)
	})

	t.Run("resources", func(t *testing.T) {
		w := s.do(t, http.MethodPost, "/api/reports/"+report.ID+"/resources", "alice", `{"resourceType":"EVENTS"}`)
		gt.Equal(t, w.Code, http.StatusOK)

		var res []model.EntityResources
		gt.NoError(t, json.Unmarshal(w.Body.Bytes(), &res)).Required()
		gt.Equal(t, len(res), 2)
		gt.Equal(t, res[0].Total, 3.0)

		w = s.do(t, http.MethodPost, "/api/reports/"+report.ID+"/resources", "alice", `{"resourceType":"SECONDS"}`)
		gt.Equal(t, w.Code, http.StatusBadRequest)
	})

	t.Run("export", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/api/reports/"+report.ID+"/export.csv", "alice", "")
		gt.Equal(t, w.Code, http.StatusOK)
		gt.Equal(t, w.Header().Get("Content-Type"), "text/csv; charset=utf-8")
		gt.S(t, w.Header().Get("Content-Disposition")).Contains("attachment")
		gt.S(t, w.Body.String()).Contains("score,id,ol.name,openlattice.@id,assoc_0_count\n3,p1,Alice,p1,3\n")
	})

	t.Run("workspace", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/api/workspace", "alice", "")
		gt.Equal(t, w.Code, http.StatusOK)

		var snap model.WorkspaceSnapshot
		gt.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap)).Required()
		gt.Equal(t, snap.Key, types.SessionKey("alice"))
		gt.Equal(t, snap.TopUtilizers.State, types.RequestStateSucceeded)
		gt.Equal(t, snap.TopUtilizers.Value.ID, types.ReportID(report.ID))
	})

	t.Run("delete", func(t *testing.T) {
		w := s.do(t, http.MethodDelete, "/api/reports/"+report.ID, "alice", "")
		gt.Equal(t, w.Code, http.StatusNoContent)

		w = s.do(t, http.MethodGet, "/api/reports/"+report.ID, "alice", "")
		gt.Equal(t, w.Code, http.StatusNotFound)
	})
}

func TestServerErrors(t *testing.T) {
	t.Run("malformed body", func(t *testing.T) {
		s := newTestServer(t)
		w := s.do(t, http.MethodPost, "/api/top-utilizers", "alice", `{"entitySetId":`)
		gt.Equal(t, w.Code, http.StatusBadRequest)
	})

	t.Run("invalid request", func(t *testing.T) {
		s := newTestServer(t)
		body := strings.Replace(rankingBody, `"numResults": 10`, `"numResults": 0`, 1)
		w := s.do(t, http.MethodPost, "/api/top-utilizers", "alice", body)
		gt.Equal(t, w.Code, http.StatusBadRequest)
		gt.Equal(t, len(s.client.GetTopUtilizersCalls()), 0)
	})

	t.Run("upstream failure", func(t *testing.T) {
		s := newTestServer(t)
		s.client.GetTopUtilizersFunc = func(ctx context.Context, entitySetID types.EntitySetID, numResults int, query *model.RankingQuery) ([]model.RankingRow, error) {
			return nil, goerr.New("connection refused", goerr.T(model.ErrTagTransport))
		}

		w := s.do(t, http.MethodPost, "/api/top-utilizers", "alice", rankingBody)
		gt.Equal(t, w.Code, http.StatusBadGateway)
		gt.S(t, w.Body.String()).Contains("please try again")
		gt.False(t, strings.Contains(w.Body.String(), "connection refused"))
	})

	t.Run("unknown report", func(t *testing.T) {
		s := newTestServer(t)
		w := s.do(t, http.MethodGet, "/api/reports/nope", "alice", "")
		gt.Equal(t, w.Code, http.StatusNotFound)
	})
}

func TestServerExplore(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/api/entity-sets?q=people&page=2", "alice", "")
	gt.Equal(t, w.Code, http.StatusOK)
	gt.S(t, w.Body.String()).Contains(`"people"`)

	calls := s.client.SearchEntitySetsCalls()
	gt.Equal(t, len(calls), 1)
	gt.Equal(t, calls[0].Search.SearchTerm, "people")
	gt.Equal(t, calls[0].Search.Start, usecase.DefaultPageSize)

	w = s.do(t, http.MethodGet, "/api/entity-sets?page=zero", "alice", "")
	gt.Equal(t, w.Code, http.StatusBadRequest)
}

func TestServerExport(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/export", "alice",
		`{"name":"people","fields":["name","tags"],"rows":[{"name":"Alice","tags":["a","b"]},{"name":"Bob"}]}`)
	gt.Equal(t, w.Code, http.StatusOK)
	gt.S(t, w.Header().Get("Content-Disposition")).Contains(`filename=people.csv`)
	gt.Equal(t, w.Body.String(), "name,tags\nAlice,\"a,b\"\nBob,\n")

	w = s.do(t, http.MethodPost, "/api/export", "alice", `{"name":"people","fields":[]}`)
	gt.Equal(t, w.Code, http.StatusBadRequest)
}

func TestServerGo(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/go?route=/toputilizers/people", "", "")
	gt.Equal(t, w.Code, http.StatusFound)
	gt.Equal(t, w.Header().Get("Location"), "https://example.com/toputilizers/people")

	for _, route := range []string{"", "explore"} {
		w := s.do(t, http.MethodGet, "/go?route="+route, "", "")
		gt.Equal(t, w.Code, http.StatusBadRequest)
	}
}

func TestServerFrontend(t *testing.T) {
	t.Run("SPA fallback", func(t *testing.T) {
		s := newTestServer(t)
		w := s.do(t, http.MethodGet, "/toputilizers/people", "", "")
		gt.Equal(t, w.Code, http.StatusOK)
		gt.S(t, w.Body.String()).Contains(`<div id="root">`)
	})

	t.Run("CORS preflight for configured frontend", func(t *testing.T) {
		s := newTestServer(t, ctrlhttp.WithFrontendURL("https://app.example.org"))
		w := s.do(t, http.MethodOptions, "/api/reports", "", "")
		gt.Equal(t, w.Code, http.StatusNoContent)
		gt.Equal(t, w.Header().Get("Access-Control-Allow-Origin"), "https://app.example.org")
	})
}
