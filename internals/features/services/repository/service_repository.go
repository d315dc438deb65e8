package repository

import (
	"context"

	"gorm.io/gorm"

	"dentalcare_backend/internals/features/services/dto"
	"dentalcare_backend/internals/features/services/model"
)

// ServiceRepository is the persistence contract for the treatment catalog.
type ServiceRepository interface {
	List(ctx context.Context) ([]model.ServiceModel, error)
	ListActive(ctx context.Context) ([]model.ServiceModel, error)
	GetByID(ctx context.Context, id int64) (*model.ServiceModel, error)
	Create(ctx context.Context, req dto.ServiceRequest) (int64, error)
	Update(ctx context.Context, id int64, req dto.ServiceRequest) error
	Delete(ctx context.Context, id int64) error
}

type serviceRepository struct {
	DB *gorm.DB
}

func NewServiceRepository(db *gorm.DB) ServiceRepository {
	return &serviceRepository{DB: db}
}

func (r *serviceRepository) List(ctx context.Context) ([]model.ServiceModel, error) {
	var services []model.ServiceModel
	err := r.DB.WithContext(ctx).Order("name ASC").Find(&services).Error
	return services, err
}

func (r *serviceRepository) ListActive(ctx context.Context) ([]model.ServiceModel, error) {
	var services []model.ServiceModel
	err := r.DB.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&services).Error
	return services, err
}

func (r *serviceRepository) GetByID(ctx context.Context, id int64) (*model.ServiceModel, error) {
	var service model.ServiceModel
	if err := r.DB.WithContext(ctx).First(&service, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *serviceRepository) Create(ctx context.Context, req dto.ServiceRequest) (int64, error) {
	service := model.ServiceModel{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    isActiveOrDefault(req.IsActive),
	}
	// Select the columns explicitly: with the default:true tag, GORM would
	// otherwise omit a false is_active from the INSERT and the DB default wins.
	if err := r.DB.WithContext(ctx).
		Select("name", "description", "is_active", "created_at").
		Create(&service).Error; err != nil {
		return 0, err
	}
	return service.ID, nil
}

func (r *serviceRepository) Update(ctx context.Context, id int64, req dto.ServiceRequest) error {
	res := r.DB.WithContext(ctx).Model(&model.ServiceModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"name":        req.Name,
			"description": req.Description,
			"is_active":   isActiveOrDefault(req.IsActive),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *serviceRepository) Delete(ctx context.Context, id int64) error {
	return r.DB.WithContext(ctx).Delete(&model.ServiceModel{}, "id = ?", id).Error
}

// isActiveOrDefault keeps an explicit false; only an omitted flag becomes true.
func isActiveOrDefault(v *bool) bool {
	if v == nil {
		return true
	}
	return *v
}
