package band

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"bandroom/internal/domain"
	"bandroom/internal/repository"
)

type MockBandRepository struct {
	mock.Mock
}

func (m *MockBandRepository) List(ctx context.Context) ([]domain.Band, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Band), args.Error(1)
}

func (m *MockBandRepository) GetByID(ctx context.Context, id int64) (*domain.Band, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Band), args.Error(1)
}

func (m *MockBandRepository) Create(ctx context.Context, b *domain.Band) error {
	args := m.Called(ctx, b)
	if b != nil {
		b.ID = 7 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockBandRepository) Update(ctx context.Context, b *domain.Band) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBandRepository) DeleteWithReservations(ctx context.Context, id int64) (bool, int64, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Get(1).(int64), args.Error(2)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(eventType string, data any) {
	m.Called(eventType, data)
}

func TestService_Create_Success(t *testing.T) {
	repo := new(MockBandRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(repo, nil)
	b, err := svc.Create(context.Background(), BandRequest{Name: "  Queen ", Color: "#ff00ff"})

	assert.NoError(t, err)
	assert.Equal(t, int64(7), b.ID)
	assert.Equal(t, "Queen", b.Name)
	repo.AssertExpectations(t)
}

func TestService_Create_Validation(t *testing.T) {
	repo := new(MockBandRepository)
	svc := NewService(repo, nil)

	_, err := svc.Create(context.Background(), BandRequest{Name: "   ", Color: "#ff00ff"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(context.Background(), BandRequest{Name: "Queen"})
	assert.ErrorIs(t, err, ErrValidation)

	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Update_NotFound(t *testing.T) {
	repo := new(MockBandRepository)
	repo.On("Update", mock.Anything, mock.Anything).Return(repository.ErrNotFound)

	svc := NewService(repo, nil)
	_, err := svc.Update(context.Background(), 3, BandRequest{Name: "x", Color: "#000"})

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Delete_PublishesWhenFound(t *testing.T) {
	repo := new(MockBandRepository)
	pub := new(MockPublisher)
	repo.On("DeleteWithReservations", mock.Anything, int64(2)).Return(true, int64(4), nil)
	pub.On("Publish", EventBandDeleted, mock.Anything).Return()

	svc := NewService(repo, pub)
	res, err := svc.Delete(context.Background(), 2)

	assert.NoError(t, err)
	assert.Equal(t, int64(4), res.RemovedReservations)
	pub.AssertExpectations(t)
}

func TestService_Delete_AbsentBandIsQuiet(t *testing.T) {
	repo := new(MockBandRepository)
	pub := new(MockPublisher)
	repo.On("DeleteWithReservations", mock.Anything, int64(2)).Return(false, int64(0), nil)

	svc := NewService(repo, pub)
	_, err := svc.Delete(context.Background(), 2)

	assert.NoError(t, err)
	pub.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestService_List_WrapsErrors(t *testing.T) {
	repo := new(MockBandRepository)
	boom := errors.New("boom")
	repo.On("List", mock.Anything).Return(nil, boom)

	_, err := NewService(repo, nil).List(context.Background())
	assert.ErrorIs(t, err, boom)
}
