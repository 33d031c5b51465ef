package lattice_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/holodeck/pkg/domain/model"
	"github.com/secmon-lab/holodeck/pkg/domain/types"
	"github.com/secmon-lab/holodeck/pkg/service/lattice"
)

func TestGetTopUtilizers(t *testing.T) {
	var (
		gotPath  string
		gotQuery string
		gotAuth  string
		gotBody  model.RankingQuery
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotAuth = r.Header.Get("Authorization")
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"self_entity_key_id":"e1","score":5,"assoc_0_count":3}]`))
	}))
	defer srv.Close()

	client := lattice.New(srv.URL + "/")
	ctx := model.WithAuthContext(context.Background(), &model.AuthContext{Subject: "alice", Token: "tok"})

	query, _ := model.BuildRankingQuery(
		[]model.EventFilterSpec{{Pair: model.NewEntityTypePair("A", "B"), Weight: 1}},
		model.EventCount{}, nil, nil)
	rows, err := client.GetTopUtilizers(ctx, "people", 25, query)
	gt.NoError(t, err).Required()

	gt.Equal(t, gotPath, "/datastore/analysis/people")
	gt.Equal(t, gotQuery, "numResults=25")
	gt.Equal(t, gotAuth, "Bearer tok")
	gt.Equal(t, len(gotBody.NeighborAggregations), 1)
	gt.Equal(t, len(rows), 1)
	gt.Equal(t, rows[0].EntityKeyID(), types.EntityKeyID("e1"))
	gt.Equal(t, rows[0].Score(), 5.0)
}

func TestUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := lattice.New(srv.URL, lattice.WithDebug(true))

	t.Run("status error is transport", func(t *testing.T) {
		_, err := client.GetNeighborTypes(context.Background(), "people")
		gt.Error(t, err)
		gt.B(t, goerr.HasTag(err, model.ErrTagTransport)).True()
	})

	t.Run("debug log omits credentials", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewJSONHandler(&buf, nil))
		ctx := ctxlog.With(context.Background(), logger)
		ctx = model.WithAuthContext(ctx, &model.AuthContext{Subject: "alice", Token: "SECRET-TOKEN"})

		_, err := client.GetNeighborTypes(ctx, "people")
		gt.Error(t, err)
		gt.S(t, buf.String()).Contains("upstream request failed")
		gt.S(t, buf.String()).Contains("/datastore/analysis/people/types")
		gt.S(t, buf.String()).NotContains("SECRET-TOKEN")
		gt.S(t, buf.String()).NotContains("Authorization")
	})

	t.Run("unreachable is transport", func(t *testing.T) {
		dead := lattice.New("http://127.0.0.1:1")
		_, err := dead.GetEntityTypes(context.Background())
		gt.Error(t, err)
		gt.B(t, goerr.HasTag(err, model.ErrTagTransport)).True()
	})
}

func TestBadResponseBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	}))
	defer srv.Close()

	_, err := lattice.New(srv.URL).GetPropertyTypes(context.Background())
	gt.Error(t, err)
	gt.S(t, err.Error()).Contains("failed to decode response body")
}

func TestSearchEntityNeighborsBulk(t *testing.T) {
	var gotIDs []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gt.Equal(t, r.Method, http.MethodPost)
		gt.Equal(t, r.URL.Path, "/datastore/search/people/neighbors")
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotIDs)
		_, _ = w.Write([]byte(`{"e1":[{"associationEntitySet":{"id":"arrests","title":"Arrests"},"associationDetails":{"ol.arrestdate":["2020-01-01"]},"neighborEntitySet":{"id":"charges","title":"Charges"},"neighborDetails":{"openlattice.@id":["c1"]}}]}`))
	}))
	defer srv.Close()

	client := lattice.New(srv.URL)

	t.Run("empty ids skip the call", func(t *testing.T) {
		got, err := client.SearchEntityNeighborsBulk(context.Background(), "people", nil)
		gt.NoError(t, err)
		gt.Equal(t, len(got), 0)
	})

	t.Run("decodes records", func(t *testing.T) {
		got, err := client.SearchEntityNeighborsBulk(context.Background(), "people", []types.EntityKeyID{"e1"})
		gt.NoError(t, err).Required()
		gt.Equal(t, gotIDs, []string{"e1"})
		gt.Equal(t, len(got["e1"]), 1)
		gt.Equal(t, got["e1"][0].NeighborEntitySet.Title, "Charges")
		gt.Equal(t, got["e1"][0].NeighborDetails.EntityKeyID(), types.EntityKeyID("c1"))
	})
}

func TestEntityDataModelCalls(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/datastore/edm/entity/type", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id":"A","type":{"namespace":"ol","name":"arrest"},"title":"Arrest","properties":["p1"]}]`))
	})
	mux.HandleFunc("/datastore/edm/property/type", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id":"p1","type":{"namespace":"ol","name":"date"},"title":"Date","datatype":"Date"}]`))
	})
	mux.HandleFunc("/datastore/entity-sets", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id":"arrests","name":"arrests","title":"Arrests","entityTypeId":"A","flags":["ASSOCIATION"]}]`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := lattice.New(srv.URL)
	ctx := context.Background()

	entityTypes, err := client.GetEntityTypes(ctx)
	gt.NoError(t, err).Required()
	gt.Equal(t, entityTypes[0].Type.String(), "ol.arrest")

	propertyTypes, err := client.GetPropertyTypes(ctx)
	gt.NoError(t, err).Required()
	gt.True(t, propertyTypes[0].IsDate())

	entitySets, err := client.GetEntitySets(ctx)
	gt.NoError(t, err).Required()
	gt.True(t, entitySets[0].IsAssociation())
}
