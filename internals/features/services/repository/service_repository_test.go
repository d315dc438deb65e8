package repository

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"dentalcare_backend/internals/features/services/dto"
	"dentalcare_backend/internals/features/services/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.ServiceModel{}))
	return db
}

func boolPtr(v bool) *bool { return &v }

func TestCreateServiceDefaults(t *testing.T) {
	repo := NewServiceRepository(newTestDB(t))

	id, err := repo.Create(context.Background(), dto.ServiceRequest{Name: "Teeth Whitening"})
	require.NoError(t, err)

	got, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, "Teeth Whitening", got.Name)
	require.Equal(t, "", got.Description)
	require.True(t, got.IsActive)
	require.False(t, got.CreatedAt.IsZero())
}

func TestCreateServiceExplicitInactive(t *testing.T) {
	repo := NewServiceRepository(newTestDB(t))

	id, err := repo.Create(context.Background(), dto.ServiceRequest{
		Name:     "Orthodontics",
		IsActive: boolPtr(false),
	})
	require.NoError(t, err)

	got, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	require.False(t, got.IsActive)
}

func TestListServicesOrderedByName(t *testing.T) {
	repo := NewServiceRepository(newTestDB(t))

	_, err := repo.Create(context.Background(), dto.ServiceRequest{Name: "Root Canal"})
	require.NoError(t, err)
	_, err = repo.Create(context.Background(), dto.ServiceRequest{Name: "Dental Implants"})
	require.NoError(t, err)

	services, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, services, 2)
	require.Equal(t, "Dental Implants", services[0].Name)
	require.Equal(t, "Root Canal", services[1].Name)
}

func TestListActiveFiltersInactive(t *testing.T) {
	repo := NewServiceRepository(newTestDB(t))

	_, err := repo.Create(context.Background(), dto.ServiceRequest{Name: "General Checkup"})
	require.NoError(t, err)
	_, err = repo.Create(context.Background(), dto.ServiceRequest{Name: "Emergency Care", IsActive: boolPtr(false)})
	require.NoError(t, err)

	active, err := repo.ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, active, 1)
	require.Equal(t, "General Checkup", active[0].Name)
}

func TestUpdateServiceOmittedFlagResetsToActive(t *testing.T) {
	repo := NewServiceRepository(newTestDB(t))

	id, err := repo.Create(context.Background(), dto.ServiceRequest{Name: "Veneers", IsActive: boolPtr(false)})
	require.NoError(t, err)

	// Omitting is_active on update applies the same default as create.
	require.NoError(t, repo.Update(context.Background(), id, dto.ServiceRequest{Name: "Veneers", Description: "Porcelain veneers"}))

	got, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	require.True(t, got.IsActive)
	require.Equal(t, "Porcelain veneers", got.Description)
}

func TestDeleteService(t *testing.T) {
	repo := NewServiceRepository(newTestDB(t))

	id, err := repo.Create(context.Background(), dto.ServiceRequest{Name: "Cosmetic Dentistry"})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(context.Background(), id))

	_, err = repo.GetByID(context.Background(), id)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
