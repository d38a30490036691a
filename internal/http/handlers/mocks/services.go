package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/Mpictdev01/adventure-hub/internal/domain/models"
)

// MockBookingService is a mock implementation of handlers.BookingService
type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) Create(ctx context.Context, req models.CreateBookingRequest) (models.Booking, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(models.Booking), args.Error(1)
}

func (m *MockBookingService) Get(ctx context.Context, id string) (models.Booking, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Booking), args.Error(1)
}

func (m *MockBookingService) List(ctx context.Context) ([]models.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockBookingService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockReconciler is a mock implementation of handlers.Reconciler
type MockReconciler struct {
	mock.Mock
}

func (m *MockReconciler) Apply(ctx context.Context, id string, req models.ReconcileRequest) (models.Booking, error) {
	args := m.Called(ctx, id, req)
	return args.Get(0).(models.Booking), args.Error(1)
}

// MockCatalog is a mock implementation of handlers.Catalog
type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) GetTrip(ctx context.Context, id string) (models.Trip, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Trip), args.Error(1)
}

func (m *MockCatalog) BankAccounts(ctx context.Context, activeOnly bool) ([]models.BankAccount, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BankAccount), args.Error(1)
}

// MockUploader is a mock implementation of handlers.Uploader
type MockUploader struct {
	mock.Mock
}

func (m *MockUploader) Save(ctx context.Context, filename string, r io.Reader) (string, error) {
	args := m.Called(ctx, filename, r)
	return args.String(0), args.Error(1)
}

// MockInvoiceGenerator is a mock implementation of handlers.InvoiceGenerator
type MockInvoiceGenerator struct {
	mock.Mock
}

func (m *MockInvoiceGenerator) Generate(ctx context.Context, bookingID string) ([]byte, string, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]byte), args.String(1), args.Error(2)
}

// MockAuthenticator is a mock implementation of handlers.Authenticator
type MockAuthenticator struct {
	mock.Mock
}

func (m *MockAuthenticator) Login(ctx context.Context, username, password string) (string, models.AdminUser, error) {
	args := m.Called(ctx, username, password)
	return args.String(0), args.Get(1).(models.AdminUser), args.Error(2)
}
