package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gecos_backend/internal/models"
	"gecos_backend/internal/service"
)

// SubjectHandler handles course subject requests.
type SubjectHandler struct {
	subjectService *service.SubjectService
}

func NewSubjectHandler(subjectService *service.SubjectService) *SubjectHandler {
	return &SubjectHandler{subjectService: subjectService}
}

// SubjectInput is the subject create/update request body. A blank code is
// auto-generated from the name.
type SubjectInput struct {
	Name     string `json:"name" binding:"required"`
	Code     string `json:"code"`
	Semester string `json:"semester"`
}

func (h *SubjectHandler) ListSubjects(c *gin.Context) {
	subjects, err := h.subjectService.ListSubjects()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, subjects)
}

func (h *SubjectHandler) GetSubject(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	subject, err := h.subjectService.GetSubject(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, subject)
}

func (h *SubjectHandler) CreateSubject(c *gin.Context) {
	var input SubjectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	subject := models.Subject{Name: input.Name, Code: input.Code, Semester: input.Semester}
	if err := h.subjectService.CreateSubject(&subject); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, subject)
}

func (h *SubjectHandler) UpdateSubject(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input SubjectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	subject, err := h.subjectService.GetSubject(id)
	if err != nil {
		respondError(c, err)
		return
	}

	subject.Name = input.Name
	if input.Code != "" {
		subject.Code = input.Code
	}
	subject.Semester = input.Semester

	if err := h.subjectService.UpdateSubject(subject); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, subject)
}

func (h *SubjectHandler) DeleteSubject(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.subjectService.DeleteSubject(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "subject deleted"})
}
