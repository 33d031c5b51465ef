package http

import (
	"bytes"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/holodeck/pkg/domain/model"
	"github.com/secmon-lab/holodeck/pkg/domain/types"
	"github.com/secmon-lab/holodeck/pkg/usecase"
)

func entitySetID(r *http.Request) types.EntitySetID {
	return types.EntitySetID(chi.URLParam(r, "esid"))
}

func entityKeyID(r *http.Request) types.EntityKeyID {
	return types.EntityKeyID(chi.URLParam(r, "ekid"))
}

func reportID(r *http.Request) types.ReportID {
	return types.ReportID(chi.URLParam(r, "id"))
}

func (s *Server) handleSearchEntitySets(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page := 1
	if v := q.Get("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			writeError(w, r, goerr.New("invalid page", goerr.V("page", v), goerr.T(model.ErrTagValidation)))
			return
		}
		page = n
	}

	result, err := s.useCases.Explore.SearchEntitySets(r.Context(), q.Get("q"), page,
		q.Get("associations") == "true", q.Get("audit") == "true")
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, result)
}

func (s *Server) handleNeighborTypes(w http.ResponseWriter, r *http.Request) {
	result, err := s.useCases.Explore.GetNeighborTypes(r.Context(), entitySetID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, result)
}

func (s *Server) handleSearchEntitySetData(w http.ResponseWriter, r *http.Request) {
	var constraints model.SearchConstraints
	if err := s.decodeJSON(r, &constraints); err != nil {
		writeError(w, r, err)
		return
	}

	result, err := s.useCases.Explore.SearchEntitySetData(r.Context(), entitySetID(r), constraints)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, result)
}

func (s *Server) handleEntityNeighbors(w http.ResponseWriter, r *http.Request) {
	result, err := s.useCases.Explore.GetEntityNeighbors(r.Context(), entitySetID(r), entityKeyID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, result)
}

func (s *Server) handleTimeline(w http.ResponseWriter, r *http.Request) {
	result, err := s.useCases.Explore.GetTimeline(r.Context(), entitySetID(r), entityKeyID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, result)
}

func (s *Server) handleRunTopUtilizers(w http.ResponseWriter, r *http.Request) {
	var req model.TopUtilizerRequest
	if err := s.decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	report, err := s.useCases.TopUtilizers.Run(r.Context(), &req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, report)
}

func (s *Server) handleTopUtilizerOptions(w http.ResponseWriter, r *http.Request) {
	var req usecase.SearchOptionsRequest
	if err := s.decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	result, err := s.useCases.TopUtilizers.Options(r.Context(), &req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, result)
}

func (s *Server) handleListReports(w http.ResponseWriter, r *http.Request) {
	reports, err := s.useCases.Reports.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if reports == nil {
		reports = []*model.ReportSummary{}
	}
	writeJSON(w, r, http.StatusOK, reports)
}

func (s *Server) handleGetReport(w http.ResponseWriter, r *http.Request) {
	report, err := s.useCases.Reports.Get(r.Context(), reportID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, report)
}

func (s *Server) handleDeleteReport(w http.ResponseWriter, r *http.Request) {
	if err := s.useCases.Reports.Delete(r.Context(), reportID(r)); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := s.useCases.Reports.Dashboard(r.Context(), reportID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, dashboard)
}

type resourcesRequest struct {
	ResourceType types.ResourceType `json:"resourceType" validate:"required,oneof=EVENTS DURATION COST"`
	CostRates    []model.CostRate   `json:"costRates" validate:"dive"`
}

func (s *Server) handleResources(w http.ResponseWriter, r *http.Request) {
	var req resourcesRequest
	if err := s.decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	resources, err := s.useCases.Reports.Resources(r.Context(), reportID(r), req.ResourceType, req.CostRates)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, resources)
}

func (s *Server) handleExportReport(w http.ResponseWriter, r *http.Request) {
	id := reportID(r)

	var buf bytes.Buffer
	if err := s.useCases.Reports.ExportCSV(r.Context(), id, &buf); err != nil {
		writeError(w, r, err)
		return
	}
	writeCSV(w, r, "top-utilizers-"+id.String(), buf.Bytes())
}

type exportRequest struct {
	Name   string           `json:"name" validate:"required"`
	Fields []string         `json:"fields" validate:"required,min=1"`
	Rows   []map[string]any `json:"rows"`
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	var req exportRequest
	if err := s.decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := usecase.WriteCSV(&buf, req.Fields, req.Rows); err != nil {
		writeError(w, r, err)
		return
	}
	writeCSV(w, r, req.Name, buf.Bytes())
}

func writeCSV(w http.ResponseWriter, r *http.Request, name string, body []byte) {
	if !strings.HasSuffix(strings.ToLower(name), ".csv") {
		name += ".csv"
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": name}))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		ctxlog.From(r.Context()).Error("Failed to write csv", "error", err)
	}
}

func (s *Server) handleWorkspace(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, s.useCases.Workspace.Snapshot(r.Context()))
}

// handleGo redirects to an SPA route
func (s *Server) handleGo(w http.ResponseWriter, r *http.Request) {
	route := r.URL.Query().Get("route")
	if err := model.ValidateRoute(route); err != nil {
		writeError(w, r, err)
		return
	}
	http.Redirect(w, r, GetFrontendURL(r, s.frontendURL)+route, http.StatusFound)
}
