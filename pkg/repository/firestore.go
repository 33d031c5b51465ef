package repository

import (
	"context"
	"encoding/json"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/holodeck/pkg/domain/interfaces"
	"github.com/secmon-lab/holodeck/pkg/domain/model"
	"github.com/secmon-lab/holodeck/pkg/domain/types"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// DefaultReportsCollection is the Firestore collection holding reports
const DefaultReportsCollection = "reports"

// reportDoc keeps queryable fields at the top level and the report itself as JSON.
// Breakdown keys are pairs, which Firestore maps cannot hold.
type reportDoc struct {
	ID          string    `firestore:"id"`
	Owner       string    `firestore:"owner"`
	EntitySetID string    `firestore:"entity_set_id"`
	CreatedAt   time.Time `firestore:"created_at"`
	Payload     []byte    `firestore:"payload"`
}

// Firestore implements Repository interface with Firestore
type Firestore struct {
	client     *firestore.Client
	collection string
}

// FirestoreOption configures the Firestore repository
type FirestoreOption func(*Firestore)

// WithCollection stores reports in the named collection
func WithCollection(name string) FirestoreOption {
	return func(f *Firestore) {
		if name != "" {
			f.collection = name
		}
	}
}

// NewFirestore creates a new Firestore repository
func NewFirestore(ctx context.Context, projectID, databaseID string, opts ...FirestoreOption) (interfaces.Repository, error) {
	logger := ctxlog.From(ctx)

	repo := &Firestore{collection: DefaultReportsCollection}
	for _, opt := range opts {
		opt(repo)
	}

	client, err := firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client")
	}

	// Fail fast on an invalid project or missing permissions
	_, err = client.Collection(repo.collection).Limit(1).Documents(ctx).Next()
	if err != nil && err != iterator.Done {
		if status.Code(err) == codes.PermissionDenied || status.Code(err) == codes.Unauthenticated {
			_ = client.Close()
			return nil, goerr.Wrap(err, "failed to connect to firestore project",
				goerr.V("firestore error code", status.Code(err).String()),
			)
		}
		logger.Debug("Firestore connection test returned error (may be empty collection)",
			"error", err,
			"errorCode", status.Code(err).String(),
		)
	}

	logger.Info("Firestore repository initialized successfully",
		"projectID", projectID,
		"databaseID", databaseID,
		"collection", repo.collection,
	)

	repo.client = client
	return repo, nil
}

// PutReport saves a report to Firestore
func (f *Firestore) PutReport(ctx context.Context, report *model.Report) error {
	if report == nil {
		return goerr.New("report is nil")
	}
	if report.ID == "" {
		return goerr.New("report ID is empty")
	}

	payload, err := json.Marshal(report)
	if err != nil {
		return goerr.Wrap(err, "failed to encode report", goerr.V("id", report.ID))
	}

	doc := reportDoc{
		ID:          report.ID.String(),
		Owner:       report.Owner.String(),
		EntitySetID: report.EntitySetID.String(),
		CreatedAt:   report.CreatedAt,
		Payload:     payload,
	}
	if _, err := f.client.Collection(f.collection).Doc(doc.ID).Set(ctx, doc); err != nil {
		return goerr.Wrap(err, "failed to save report to firestore", goerr.V("id", report.ID))
	}
	return nil
}

// GetReport retrieves a report by ID
func (f *Firestore) GetReport(ctx context.Context, id types.ReportID) (*model.Report, error) {
	if id == "" {
		return nil, goerr.New("report ID is empty")
	}

	snap, err := f.client.Collection(f.collection).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(model.ErrReportNotFound, "failed to get report", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get report from firestore", goerr.V("id", id))
	}

	var doc reportDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, goerr.Wrap(err, "failed to decode report document", goerr.V("id", id))
	}
	var report model.Report
	if err := json.Unmarshal(doc.Payload, &report); err != nil {
		return nil, goerr.Wrap(err, "failed to decode report", goerr.V("id", id))
	}
	return &report, nil
}

// ListReports lists the owner's reports, newest first
func (f *Firestore) ListReports(ctx context.Context, owner types.SessionKey) ([]*model.ReportSummary, error) {
	// Sorted in memory to avoid requiring a composite index
	iter := f.client.Collection(f.collection).
		Where("owner", "==", owner.String()).
		Documents(ctx)
	defer iter.Stop()

	var reports []*model.Report
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate reports")
		}

		var doc reportDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, goerr.Wrap(err, "failed to decode report document", goerr.V("id", snap.Ref.ID))
		}
		var report model.Report
		if err := json.Unmarshal(doc.Payload, &report); err != nil {
			return nil, goerr.Wrap(err, "failed to decode report", goerr.V("id", doc.ID))
		}
		reports = append(reports, &report)
	}

	return summarize(reports), nil
}

// DeleteReport removes a report
func (f *Firestore) DeleteReport(ctx context.Context, id types.ReportID) error {
	ref := f.client.Collection(f.collection).Doc(id.String())
	if _, err := ref.Delete(ctx, firestore.Exists); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(model.ErrReportNotFound, "failed to delete report", goerr.V("id", id))
		}
		return goerr.Wrap(err, "failed to delete report from firestore", goerr.V("id", id))
	}
	return nil
}

// Close closes the Firestore client
func (f *Firestore) Close() error {
	return f.client.Close()
}
