package scheduling

import (
	"time"

	"gorm.io/gorm"

	"healio-server/internal/models"
)

// Repository abstracts the persistence operations the scheduling service
// needs. The production implementation is backed by gorm; tests provide
// mocks.
type Repository interface {
	CreateAppointment(apt *models.Appointment) error
	GetAppointmentByID(id string) (*models.Appointment, error)
	SaveAppointment(apt *models.Appointment) error
	ListRecentAppointments() ([]models.Appointment, error)
	ListAppointmentsForUser(userID string) ([]models.Appointment, error)
	ListScheduledBetween(from, to time.Time) ([]models.Appointment, error)
	GetPatientByUserID(userID string) (*models.Patient, error)
	GetUserByID(id string) (*models.User, error)
}

// GormRepository implements Repository on top of a gorm DB handle.
type GormRepository struct {
	DB *gorm.DB
}

// NewGormRepository creates a new GormRepository.
func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{DB: db}
}

func (r *GormRepository) CreateAppointment(apt *models.Appointment) error {
	return r.DB.Create(apt).Error
}

func (r *GormRepository) GetAppointmentByID(id string) (*models.Appointment, error) {
	var apt models.Appointment
	if err := r.DB.First(&apt, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &apt, nil
}

func (r *GormRepository) SaveAppointment(apt *models.Appointment) error {
	return r.DB.Save(apt).Error
}

// ListRecentAppointments returns all appointments, newest first, with the
// patient record preloaded for display.
func (r *GormRepository) ListRecentAppointments() ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.DB.Preload("Patient").Order("created_at desc").Find(&appointments).Error
	return appointments, err
}

func (r *GormRepository) ListAppointmentsForUser(userID string) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.DB.Preload("Patient").Where("user_id = ?", userID).Order("created_at desc").Find(&appointments).Error
	return appointments, err
}

// ListScheduledBetween returns appointments with status scheduled whose
// schedule falls inside the inclusive [from, to] window.
func (r *GormRepository) ListScheduledBetween(from, to time.Time) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.DB.
		Where("status = ?", models.StatusScheduled).
		Where("schedule >= ? AND schedule <= ?", from, to).
		Find(&appointments).Error
	return appointments, err
}

func (r *GormRepository) GetPatientByUserID(userID string) (*models.Patient, error) {
	var patient models.Patient
	if err := r.DB.First(&patient, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &patient, nil
}

func (r *GormRepository) GetUserByID(id string) (*models.User, error) {
	var user models.User
	if err := r.DB.First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
