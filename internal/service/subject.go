package service

import (
	"errors"
	"log/slog"

	"gorm.io/gorm"

	"gecos_backend/internal/models"
	"gecos_backend/internal/repository"
)

type SubjectService struct {
	subjectRepo repository.SubjectRepository
	log         *slog.Logger
}

func NewSubjectService(subjectRepo repository.SubjectRepository, log *slog.Logger) *SubjectService {
	return &SubjectService{subjectRepo: subjectRepo, log: log}
}

func (s *SubjectService) CreateSubject(subject *models.Subject) error {
	return s.subjectRepo.Create(subject)
}

func (s *SubjectService) GetSubject(id uint) (*models.Subject, error) {
	subject, err := s.subjectRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return subject, err
}

func (s *SubjectService) ListSubjects() ([]models.Subject, error) {
	return s.subjectRepo.FindAll()
}

func (s *SubjectService) UpdateSubject(subject *models.Subject) error {
	return s.subjectRepo.Update(subject)
}

func (s *SubjectService) DeleteSubject(id uint) error {
	if _, err := s.GetSubject(id); err != nil {
		return err
	}
	return s.subjectRepo.Delete(id)
}
