//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"hostboard/internal/domain/incident"
	"hostboard/internal/infra"
	"hostboard/internal/pkg/cache"
	"hostboard/internal/pkg/clock"
	"hostboard/internal/usecase/commands"
	"hostboard/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeIncidentWriteRepo struct {
	createErr error
	statusErr error
	statusSet *incident.Status
}

func (f *fakeIncidentWriteRepo) Create(_ context.Context, inc *incident.Incident) (queries.IncidentView, error) {
	if f.createErr != nil {
		return queries.IncidentView{}, f.createErr
	}
	return queries.IncidentView{
		ID:          inc.ID(),
		PropertyID:  inc.PropertyID(),
		Title:       inc.Title(),
		Description: inc.Description(),
		Severity:    string(inc.Severity()),
		Status:      string(inc.Status()),
	}, nil
}

func (f *fakeIncidentWriteRepo) UpdateStatus(_ context.Context, _ uuid.UUID, status incident.Status) error {
	if f.statusErr != nil {
		return f.statusErr
	}
	f.statusSet = &status
	return nil
}

type fakeIncidentReads struct {
	view *queries.IncidentView
	err  error
}

func (f *fakeIncidentReads) FindByID(_ context.Context, _ uuid.UUID) (*queries.IncidentView, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.view, nil
}

func newIncidentGateway(write *fakeIncidentWriteRepo, reads *fakeIncidentReads) (commands.IncidentCommands, *cache.Cache) {
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	c := cache.New(clk)
	return commands.NewIncidentCommands(write, reads, c), c
}

func TestCreateIncident(t *testing.T) {
	propertyID := uuid.MustParse("7b9f1f3e-9d1e-4a60-9f0f-0a1b2c3d4e5f")

	t.Run("creates open incident and invalidates the property list", func(t *testing.T) {
		gw, c := newIncidentGateway(&fakeIncidentWriteRepo{}, &fakeIncidentReads{})
		c.Set(queries.PropertyIncidentsKey(propertyID), []queries.IncidentView{}, time.Minute)

		view, err := gw.CreateIncident(context.Background(), commands.CreateIncidentParams{
			PropertyID: propertyID,
			Title:      "  leaking faucet  ",
			Severity:   "medium",
		})
		require.NoError(t, err)
		assert.Equal(t, "leaking faucet", view.Title)
		assert.Equal(t, "open", view.Status)

		_, ok := c.Get(queries.PropertyIncidentsKey(propertyID))
		assert.False(t, ok)
	})

	t.Run("invalid severity fails validation", func(t *testing.T) {
		gw, _ := newIncidentGateway(&fakeIncidentWriteRepo{}, &fakeIncidentReads{})

		_, err := gw.CreateIncident(context.Background(), commands.CreateIncidentParams{
			PropertyID: propertyID,
			Title:      "broken lock",
			Severity:   "catastrophic",
		})
		assert.ErrorIs(t, err, commands.ErrIncidentValidation)
	})
}

func TestResolveIncident(t *testing.T) {
	propertyID := uuid.MustParse("7b9f1f3e-9d1e-4a60-9f0f-0a1b2c3d4e5f")
	incidentID := uuid.MustParse("22222222-3333-4444-8555-666666666666")

	openView := &queries.IncidentView{
		ID:         incidentID,
		PropertyID: propertyID,
		Title:      "leaking faucet",
		Severity:   "medium",
		Status:     "open",
	}

	t.Run("resolves an open incident", func(t *testing.T) {
		write := &fakeIncidentWriteRepo{}
		gw, c := newIncidentGateway(write, &fakeIncidentReads{view: openView})
		c.Set(queries.PropertyIncidentsKey(propertyID), []queries.IncidentView{}, time.Minute)

		err := gw.ResolveIncident(context.Background(), incidentID)
		require.NoError(t, err)
		require.NotNil(t, write.statusSet)
		assert.Equal(t, incident.StatusResolved, *write.statusSet)

		_, ok := c.Get(queries.PropertyIncidentsKey(propertyID))
		assert.False(t, ok)
	})

	t.Run("already resolved", func(t *testing.T) {
		resolved := *openView
		resolved.Status = "resolved"
		gw, _ := newIncidentGateway(&fakeIncidentWriteRepo{}, &fakeIncidentReads{view: &resolved})

		err := gw.ResolveIncident(context.Background(), incidentID)
		assert.ErrorIs(t, err, commands.ErrIncidentAlreadyResolved)
	})

	t.Run("unknown incident", func(t *testing.T) {
		reads := &fakeIncidentReads{err: infra.WrapRepoErr("incident not found", nil, infra.KindNotFound)}
		gw, _ := newIncidentGateway(&fakeIncidentWriteRepo{}, reads)

		err := gw.ResolveIncident(context.Background(), incidentID)
		assert.ErrorIs(t, err, commands.ErrIncidentNotFound)
	})
}
