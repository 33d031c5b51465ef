package usecase

import (
	"context"
	"errors"
	"io"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/holodeck/pkg/domain/interfaces"
	"github.com/secmon-lab/holodeck/pkg/domain/model"
	"github.com/secmon-lab/holodeck/pkg/domain/types"
)

// ReportUseCase reads stored top utilizer reports and derives views from them
type ReportUseCase struct {
	repo  interfaces.Repository
	edm   *DataModelUseCase
	rates *model.CostRates
}

// NewReportUseCase creates a new ReportUseCase instance. A nil rates uses the
// built-in cost rates.
func NewReportUseCase(repo interfaces.Repository, edm *DataModelUseCase, rates *model.CostRates) *ReportUseCase {
	if rates == nil {
		rates = model.NewCostRates(nil)
	}
	return &ReportUseCase{
		repo:  repo,
		edm:   edm,
		rates: rates,
	}
}

// List returns the caller's reports, newest first
func (uc *ReportUseCase) List(ctx context.Context) ([]*model.ReportSummary, error) {
	reports, err := uc.repo.ListReports(ctx, sessionKey(ctx))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list reports")
	}
	return reports, nil
}

// Get returns one of the caller's reports. Reports of other sessions are reported as
// not found.
func (uc *ReportUseCase) Get(ctx context.Context, id types.ReportID) (*model.Report, error) {
	report, err := uc.repo.GetReport(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get report", goerr.V("reportId", id))
	}
	if report.Owner != sessionKey(ctx) {
		return nil, goerr.Wrap(model.ErrReportNotFound, "report owned by another session", goerr.V("reportId", id))
	}
	return report, nil
}

// Delete removes one of the caller's reports
func (uc *ReportUseCase) Delete(ctx context.Context, id types.ReportID) error {
	if _, err := uc.Get(ctx, id); err != nil {
		return err
	}
	if err := uc.repo.DeleteReport(ctx, id); err != nil {
		if errors.Is(err, model.ErrReportNotFound) {
			ctxlog.From(ctx).Info("report already deleted", "reportId", id)
			return nil
		}
		return goerr.Wrap(err, "failed to delete report", goerr.V("reportId", id))
	}
	return nil
}

// Dashboard summarizes the per-pair event distribution of a report
func (uc *ReportUseCase) Dashboard(ctx context.Context, id types.ReportID) (*model.Dashboard, error) {
	report, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return model.BuildDashboard(report.PairIndex, report.EntityKeyIDs(), report.Breakdown), nil
}

// Resources measures the ranked entities of a report. rates override the configured
// cost rates for this call only.
func (uc *ReportUseCase) Resources(ctx context.Context, id types.ReportID, resourceType types.ResourceType, rates []model.CostRate) ([]model.EntityResources, error) {
	report, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	costRates := uc.rates
	if len(rates) > 0 {
		if costRates, err = uc.rates.With(rates); err != nil {
			return nil, err
		}
	}

	dm, err := uc.edm.Load(ctx)
	if err != nil {
		return nil, err
	}
	return model.ComputeResources(report, resourceType, costRates, dm)
}

// ExportCSV writes the rows of a report as CSV
func (uc *ReportUseCase) ExportCSV(ctx context.Context, id types.ReportID, w io.Writer) error {
	report, err := uc.Get(ctx, id)
	if err != nil {
		return err
	}
	fields, rows := ReportTable(report)
	return WriteCSV(w, fields, rows)
}

func sessionKey(ctx context.Context) types.SessionKey {
	authCtx, _ := model.GetAuthContext(ctx)
	return authCtx.SessionKey()
}
