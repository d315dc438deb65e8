package repository

import (
	"context"

	"gorm.io/gorm"

	"dentalcare_backend/internals/features/appointments/dto"
	"dentalcare_backend/internals/features/appointments/model"
)

// AppointmentRepository is the persistence contract for bookings. The backing
// store (embedded SQLite or hosted PostgreSQL) is fixed at startup.
type AppointmentRepository interface {
	List(ctx context.Context) ([]model.AppointmentModel, error)
	GetByID(ctx context.Context, id int64) (*model.AppointmentModel, error)
	Create(ctx context.Context, req dto.AppointmentRequest) (int64, error)
	Update(ctx context.Context, id int64, req dto.AppointmentRequest) error
	UpdateStatus(ctx context.Context, id int64, status string) error
	Delete(ctx context.Context, id int64) error
}

type appointmentRepository struct {
	DB *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) AppointmentRepository {
	return &appointmentRepository{DB: db}
}

// List returns every booking, most recent first.
func (r *appointmentRepository) List(ctx context.Context) ([]model.AppointmentModel, error) {
	var appointments []model.AppointmentModel
	err := r.DB.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&appointments).Error
	return appointments, err
}

func (r *appointmentRepository) GetByID(ctx context.Context, id int64) (*model.AppointmentModel, error) {
	var appointment model.AppointmentModel
	if err := r.DB.WithContext(ctx).First(&appointment, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) Create(ctx context.Context, req dto.AppointmentRequest) (int64, error) {
	appointment := model.AppointmentModel{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		Service:        req.Service,
		Date:           req.Date,
		Time:           req.Time,
		SpecialRequest: req.SpecialRequest,
		Status:         model.StatusPending,
	}
	if err := r.DB.WithContext(ctx).Create(&appointment).Error; err != nil {
		return 0, err
	}
	return appointment.ID, nil
}

// Update replaces the booking details in place. Status and created_at are
// never touched here; status changes go through UpdateStatus.
func (r *appointmentRepository) Update(ctx context.Context, id int64, req dto.AppointmentRequest) error {
	res := r.DB.WithContext(ctx).Model(&model.AppointmentModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"name":            req.Name,
			"email":           req.Email,
			"phone":           req.Phone,
			"service":         req.Service,
			"date":            req.Date,
			"time":            req.Time,
			"special_request": req.SpecialRequest,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *appointmentRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	res := r.DB.WithContext(ctx).Model(&model.AppointmentModel{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *appointmentRepository) Delete(ctx context.Context, id int64) error {
	return r.DB.WithContext(ctx).Delete(&model.AppointmentModel{}, "id = ?", id).Error
}
