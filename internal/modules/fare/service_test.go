package fare

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tabela/internal/types"
)

type memRepo struct {
	fares    []Fare
	replaces int
	failNext error
}

func (m *memRepo) List(context.Context) ([]Fare, error) {
	return append([]Fare(nil), m.fares...), nil
}

func (m *memRepo) Replace(_ context.Context, fares []Fare) error {
	if m.failNext != nil {
		err := m.failNext
		m.failNext = nil
		return err
	}
	m.replaces++
	m.fares = append([]Fare(nil), fares...)
	return nil
}

type recordingFeed struct {
	topics []string
}

func (r *recordingFeed) Publish(_ context.Context, topic string) error {
	r.topics = append(r.topics, topic)
	return nil
}

func newTestService(t *testing.T, seed ...Fare) (*Service, *memRepo, *recordingFeed) {
	t.Helper()
	repo := &memRepo{fares: seed}
	feed := &recordingFeed{}
	svc := NewService(repo, feed, nil)
	require.NoError(t, svc.Reload(context.Background()))
	return svc, repo, feed
}

func TestService_AddAssignsIDAndPersists(t *testing.T) {
	svc, repo, feed := newTestService(t)
	ctx := context.Background()

	f, err := svc.Add(ctx, Fare{Region: " Zona Sul ", Destination: "Savassi", MeterValue: brl(35.5), CounterValue: brl(40)})
	require.NoError(t, err)

	assert.NotEmpty(t, f.ID)
	assert.Equal(t, "Zona Sul", f.Region)
	assert.Equal(t, []Fare{f}, repo.fares)
	assert.Equal(t, []Fare{f}, svc.List())
	assert.Equal(t, []string{Topic}, feed.topics)
}

func TestService_AddRejectsInvalid(t *testing.T) {
	svc, repo, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, Fare{Destination: "  "})
	assert.ErrorIs(t, err, ErrBadRequest)

	_, err = svc.Add(ctx, Fare{Destination: "Savassi", MeterValue: types.Money{Amount: -100}})
	assert.ErrorIs(t, err, ErrBadRequest)

	assert.Zero(t, repo.replaces)
}

func TestService_UpdateAndDelete(t *testing.T) {
	svc, repo, _ := newTestService(t,
		Fare{ID: "a", Region: "Centro", Destination: "Rodoviária", MeterValue: brl(20), CounterValue: brl(22)},
		Fare{ID: "b", Region: "Centro", Destination: "Praça Sete", MeterValue: brl(15), CounterValue: brl(18)},
	)
	ctx := context.Background()

	updated, err := svc.Update(ctx, Fare{ID: "b", Region: "Centro", Destination: "Praça Sete", MeterValue: brl(16), CounterValue: brl(19)})
	require.NoError(t, err)
	assert.Equal(t, int64(1600), updated.MeterValue.Amount)
	assert.Equal(t, brl(19), repo.fares[1].CounterValue)

	_, err = svc.Update(ctx, Fare{ID: "zzz", Destination: "x"})
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, svc.Delete(ctx, "a"))
	assert.Equal(t, []string{"b"}, ids(svc.List()))
	assert.ErrorIs(t, svc.Delete(ctx, "a"), ErrNotFound)
}

func TestService_ImportAppendsInOrder(t *testing.T) {
	svc, _, _ := newTestService(t, Fare{ID: "a", Destination: "Savassi"})
	ctx := context.Background()

	added, err := svc.Import(ctx, []Fare{
		{Destination: "Venda Nova", Region: "Zona Norte", MeterValue: brl(22), CounterValue: brl(25)},
		{Destination: "Belvedere", Region: "Zona Sul", MeterValue: brl(41), CounterValue: brl(45)},
	})
	require.NoError(t, err)
	require.Len(t, added, 2)

	list := svc.List()
	require.Len(t, list, 3)
	assert.Equal(t, "Venda Nova", list[1].Destination)
	assert.Equal(t, "Belvedere", list[2].Destination)
	assert.Equal(t, []string{"Zona Norte", "Zona Sul"}, svc.Regions())
}

func TestService_ImportRejectsWholeBatch(t *testing.T) {
	svc, repo, _ := newTestService(t)
	_, err := svc.Import(context.Background(), []Fare{{Destination: "ok"}, {Destination: ""}})
	assert.ErrorIs(t, err, ErrBadRequest)
	assert.Zero(t, repo.replaces)
}

func TestService_FailedReplaceKeepsSnapshot(t *testing.T) {
	svc, repo, feed := newTestService(t, Fare{ID: "a", Destination: "Savassi"})
	repo.failNext = errors.New("db down")

	_, err := svc.Add(context.Background(), Fare{Destination: "Belvedere"})
	assert.Error(t, err)
	assert.Equal(t, []string{"a"}, ids(svc.List()))
	assert.Empty(t, feed.topics)
}

func TestService_SearchSeesLatestSnapshot(t *testing.T) {
	svc, repo, _ := newTestService(t, Fare{ID: "a", Destination: "Savassi"})
	assert.Empty(t, svc.Search(Query{Text: "lourdes"}))

	repo.fares = append(repo.fares, Fare{ID: "b", Destination: "Lourdes"})
	require.NoError(t, svc.Reload(context.Background()))
	assert.Equal(t, []string{"b"}, ids(svc.Search(Query{Text: "lourdes"})))
}
