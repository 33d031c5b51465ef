package usecase_test

import (
	"context"

	"github.com/secmon-lab/holodeck/pkg/domain/interfaces"
	"github.com/secmon-lab/holodeck/pkg/domain/interfaces/mocks"
	"github.com/secmon-lab/holodeck/pkg/domain/model"
	"github.com/secmon-lab/holodeck/pkg/domain/types"
)

var (
	arrestPair = model.NewEntityTypePair("arrested-in", "charge")
	ticketPair = model.NewEntityTypePair("cited-in", "citation")
)

func withSession(subject string) context.Context {
	return model.WithAuthContext(context.Background(), &model.AuthContext{
		Subject: subject,
		Token:   "token-" + subject,
	})
}

func syncDispatch(ctx context.Context, handler func(ctx context.Context) error) {
	_ = handler(ctx)
}

// newLatticeMock returns a client serving a small data model around people
func newLatticeMock() *mocks.LatticeClientMock {
	return &mocks.LatticeClientMock{
		GetEntityTypesFunc: func(ctx context.Context) ([]*model.EntityType, error) {
			return []*model.EntityType{
				{ID: "person", Title: "Person", Properties: []types.PropertyTypeID{"name", "location"}},
				{ID: "arrested-in", Title: "Arrested in", Properties: []types.PropertyTypeID{"arrestdate", "days"}},
				{ID: "charge", Title: "Charge", Properties: []types.PropertyTypeID{"chargedate"}},
				{ID: "cited-in", Title: "Cited in", Properties: []types.PropertyTypeID{"note"}},
				{ID: "citation", Title: "Citation", Properties: []types.PropertyTypeID{"note"}},
			}, nil
		},
		GetPropertyTypesFunc: func(ctx context.Context) ([]*model.PropertyType, error) {
			return []*model.PropertyType{
				{ID: "name", Type: model.FQN{Namespace: "ol", Name: "name"}, Title: "Name", Datatype: "String"},
				{ID: "location", Type: model.FQN{Namespace: "ol", Name: "location"}, Title: "Location", Datatype: "String"},
				{ID: "arrestdate", Type: model.FQN{Namespace: "ol", Name: "arrestdate"}, Title: "Arrest date", Datatype: "DateTimeOffset"},
				{ID: "days", Type: model.FQN{Namespace: "ol", Name: "durationdays"}, Title: "Days", Datatype: "Int64"},
				{ID: "chargedate", Type: model.FQN{Namespace: "ol", Name: "chargedate"}, Title: "Charge date", Datatype: "Date"},
				{ID: "note", Type: model.FQN{Namespace: "ol", Name: "note"}, Title: "Note", Datatype: "String"},
			}, nil
		},
		GetEntitySetsFunc: func(ctx context.Context) ([]*model.EntitySet, error) {
			return []*model.EntitySet{
				{ID: "people", Title: "People", EntityTypeID: "person"},
				{ID: "arrests", Title: "Arrests", EntityTypeID: "arrested-in", Flags: []string{"ASSOCIATION"}},
				{ID: "charges", Title: "Charges", EntityTypeID: "charge"},
			}, nil
		},
	}
}

type repositoryFixture struct {
	client *mocks.LatticeClientMock
	repo   interfaces.Repository
}
