package repository

import (
	"gecos_backend/internal/models"
	"gecos_backend/internal/storage"
)

type SubjectRepository interface {
	Create(subject *models.Subject) error
	FindByID(id uint) (*models.Subject, error)
	FindAll() ([]models.Subject, error)
	Update(subject *models.Subject) error
	Delete(id uint) error
}

type subjectRepository struct {
	db *storage.PostgresDB
}

func NewSubjectRepository(db *storage.PostgresDB) SubjectRepository {
	return &subjectRepository{db: db}
}

func (r *subjectRepository) Create(subject *models.Subject) error {
	return r.db.Create(subject).Error
}

func (r *subjectRepository) FindByID(id uint) (*models.Subject, error) {
	var subject models.Subject
	err := r.db.First(&subject, id).Error
	if err != nil {
		return nil, err
	}
	return &subject, nil
}

func (r *subjectRepository) FindAll() ([]models.Subject, error) {
	var subjects []models.Subject
	err := r.db.Order("name ASC").Find(&subjects).Error
	return subjects, err
}

func (r *subjectRepository) Update(subject *models.Subject) error {
	return r.db.Save(subject).Error
}

func (r *subjectRepository) Delete(id uint) error {
	return r.db.Delete(&models.Subject{}, id).Error
}
