package services

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Mpictdev01/adventure-hub/internal/domain"
	"github.com/Mpictdev01/adventure-hub/internal/domain/models"
	"github.com/Mpictdev01/adventure-hub/internal/services/mocks"
)

var pngBytes = append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0}, 32)...)

func TestUploadServiceSave(t *testing.T) {
	dir := t.TempDir()
	svc := UploadService{Dir: dir, BaseURL: "https://api.adventurehub.id/", Now: clock}

	url, err := svc.Save(context.Background(), "bukti transfer.PNG", bytes.NewReader(pngBytes))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "https://api.adventurehub.id/uploads/1792058400000-"), url)
	assert.True(t, strings.HasSuffix(url, ".png"), url)

	stored, err := os.ReadFile(filepath.Join(dir, filepath.Base(url)))
	require.NoError(t, err)
	assert.Equal(t, pngBytes, stored)
}

func TestUploadServiceRejects(t *testing.T) {
	svc := UploadService{Dir: t.TempDir()}

	_, err := svc.Save(context.Background(), "notes.txt", strings.NewReader("hello"))
	assert.True(t, domain.IsValidation(err))

	_, err = svc.Save(context.Background(), "empty.png", bytes.NewReader(nil))
	assert.True(t, domain.IsValidation(err))

	big := append(append([]byte{}, pngBytes...), make([]byte, MaxUploadSize)...)
	_, err = svc.Save(context.Background(), "big.png", bytes.NewReader(big))
	assert.True(t, domain.IsValidation(err))
}

func TestInvoiceServiceGenerate(t *testing.T) {
	repo := new(mocks.MockBookingStore)
	repo.On("GetByID", mock.Anything, "BKG-1").Return(models.Booking{
		ID:            "BKG-1",
		TripName:      "Bromo Sunrise",
		TripLocation:  "East Java",
		CustomerName:  "Dewi Lestari",
		Date:          "2026-10-29",
		Guests:        2,
		PricePerPax:   1_200_000,
		TotalPrice:    2_350_000,
		Participants:  []models.Participant{{FullName: "Dewi Lestari"}, {FullName: "Andi"}},
		Status:        domain.StatusPending,
		PaymentStatus: domain.PaymentUnpaid,
	}, nil)
	repo.On("GetByID", mock.Anything, "BKG-404").Return(models.Booking{}, domain.NotFoundError{Resource: "booking", ID: "BKG-404"})
	svc := InvoiceService{Repo: repo, Now: clock}

	pdf, name, err := svc.Generate(context.Background(), "BKG-1")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
	assert.Equal(t, "INVOICE_BKG-1_Dewi_Lestari.pdf", name)

	_, _, err = svc.Generate(context.Background(), "BKG-404")
	assert.True(t, domain.IsNotFound(err))
}

type fakeAdmins map[string]models.AdminUser

func (f fakeAdmins) GetByUsername(_ context.Context, username string) (models.AdminUser, error) {
	u, ok := f[username]
	if !ok {
		return models.AdminUser{}, domain.NotFoundError{Resource: "admin user", ID: username}
	}
	return u, nil
}

func TestAuthServiceLoginAndParse(t *testing.T) {
	hash, err := HashPassword("rahasia")
	require.NoError(t, err)
	svc := AuthService{
		Users:  fakeAdmins{"ops": {ID: 1, Username: "ops", Role: RoleAdmin, PasswordHash: hash}},
		Secret: []byte("test-secret"),
		TTL:    time.Hour,
		Now:    time.Now,
	}

	token, user, err := svc.Login(context.Background(), "ops", "rahasia")
	require.NoError(t, err)
	assert.Empty(t, user.PasswordHash)

	claims, err := svc.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, Claims{Subject: "ops", Role: RoleAdmin}, claims)

	_, _, err = svc.Login(context.Background(), "ops", "salah")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, _, err = svc.Login(context.Background(), "ghost", "rahasia")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, _, err = svc.Login(context.Background(), "", "")
	assert.True(t, domain.IsValidation(err))

	other := svc
	other.Secret = []byte("other-secret")
	_, err = other.ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	expired := svc
	expired.Now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = expired.ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

type recordingSeeder struct {
	got []models.AdminUser
}

func (r *recordingSeeder) CreateIfMissing(_ context.Context, u models.AdminUser) (bool, error) {
	r.got = append(r.got, u)
	return true, nil
}

func TestSeedAdmin(t *testing.T) {
	seeder := &recordingSeeder{}
	require.NoError(t, SeedAdmin(context.Background(), seeder, "admin", ""))
	assert.Empty(t, seeder.got)

	require.NoError(t, SeedAdmin(context.Background(), seeder, " admin ", "rahasia"))
	require.Len(t, seeder.got, 1)
	u := seeder.got[0]
	assert.Equal(t, "admin", u.Username)
	assert.Equal(t, RoleAdmin, u.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("rahasia")))
}

func TestUploadServiceStorageFailure(t *testing.T) {
	// A regular file where the upload directory should be.
	blocker := filepath.Join(t.TempDir(), "uploads")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))
	svc := UploadService{Dir: blocker}

	_, err := svc.Save(context.Background(), "bukti.png", bytes.NewReader(pngBytes))
	require.Error(t, err)
	assert.True(t, domain.IsInternal(err))
	assert.False(t, domain.IsValidation(err))
}

func TestUploadServiceIgnoresClientExtension(t *testing.T) {
	dir := t.TempDir()
	svc := UploadService{Dir: dir, BaseURL: "https://api.adventurehub.id", Now: clock}

	url, err := svc.Save(context.Background(), "proof.html", bytes.NewReader(pngBytes))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(url, ".png"), url)

	ico := append([]byte("\x00\x00\x01\x00"), []byte("<script>alert(1)</script>")...)
	_, err = svc.Save(context.Background(), "proof.html", bytes.NewReader(ico))
	assert.True(t, domain.IsValidation(err))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, ".png", filepath.Ext(entries[0].Name()))
}
