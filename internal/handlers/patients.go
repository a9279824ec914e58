package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/Admiral-Simo/globalvaccinator/internal/error/code"
	"github.com/Admiral-Simo/globalvaccinator/internal/error/response"
	"github.com/Admiral-Simo/globalvaccinator/internal/models"
	"github.com/Admiral-Simo/globalvaccinator/internal/services"
)

// --- Structs for Request Binding ---

// CreateRecordRequest is one vaccination record nested in a new patient.
// Ids are generated by storage, so none is accepted here.
type CreateRecordRequest struct {
	Milestone    *string     `json:"milestone" example:"2 months"`
	VaxName      *string     `json:"vaxName" example:"DTaP"`
	DueDate      models.Date `json:"dueDate" swaggertype:"string" example:"2020-03-01"`
	Status       *string     `json:"status" example:"due"`
	DateGiven    models.Date `json:"dateGiven" swaggertype:"string" example:"2020-03-02"`
	Observations *string     `json:"observations"`
}

// CreateVisitRequest is one growth visit nested in a new patient.
type CreateVisitRequest struct {
	VisitDate models.Date `json:"visitDate" swaggertype:"string" example:"2020-02-01"`
	Weight    *float64    `json:"weight" example:"4.2"`
	Height    *float64    `json:"height" example:"55"`
	Imc       *float64    `json:"imc" example:"13.9"`
}

// CreatePatientRequest is the body of POST /patients.
type CreatePatientRequest struct {
	IDLabel    string                `json:"idLabel" binding:"required" example:"P001"`
	Name       string                `json:"name" binding:"required" example:"Jane Doe"`
	Dob        models.Date           `json:"dob" swaggertype:"string" example:"2020-01-01"`
	Sex        *string               `json:"sex" example:"F"`
	Address    *string               `json:"address"`
	ParentName *string               `json:"parentName" example:"John Doe"`
	Phone      *string               `json:"phone"`
	Allergies  *string               `json:"allergies"`
	Email      *string               `json:"email"`
	Records    []CreateRecordRequest `json:"records"`
	Visits     []CreateVisitRequest  `json:"visits"`
}

func (r *CreatePatientRequest) toModel() *models.Patient {
	patient := &models.Patient{
		IDLabel:    r.IDLabel,
		Name:       r.Name,
		Dob:        r.Dob,
		Sex:        r.Sex,
		Address:    r.Address,
		ParentName: r.ParentName,
		Phone:      r.Phone,
		Allergies:  r.Allergies,
		Email:      r.Email,
	}
	for _, rec := range r.Records {
		patient.Records = append(patient.Records, models.Record{
			Milestone:    rec.Milestone,
			VaxName:      rec.VaxName,
			DueDate:      rec.DueDate,
			Status:       rec.Status,
			DateGiven:    rec.DateGiven,
			Observations: rec.Observations,
		})
	}
	for _, v := range r.Visits {
		patient.Visits = append(patient.Visits, models.Visit{
			VisitDate: v.VisitDate,
			Weight:    v.Weight,
			Height:    v.Height,
			Imc:       v.Imc,
		})
	}
	return patient
}

// PatientHandler serves the patient endpoints.
type PatientHandler struct {
	Service services.InterfacePatientService
	Logger  *zap.Logger
}

// NewPatientHandler creates a patient handler backed by svc.
func NewPatientHandler(svc services.InterfacePatientService, logger *zap.Logger) *PatientHandler {
	return &PatientHandler{Service: svc, Logger: logger}
}

// --- Handler Functions ---

// GetAllPatients lists every patient.
// @Summary      List patients
// @Description  Returns every patient with its vaccination records and growth visits
// @Tags         Patient
// @Produce      json
// @Success      200  {array}   models.Patient
// @Failure      503  {object}  response.ErrorResponse
// @Router       /patients [get]
func (h *PatientHandler) GetAllPatients(c *gin.Context) {
	patients, err := h.Service.ListPatients(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, patients)
}

// InsertPatient creates one patient with its nested records and visits.
// @Summary      Create patient
// @Description  Creates a patient; nested records and visits are stored with it and receive generated ids
// @Tags         Patient
// @Accept       json
// @Produce      json
// @Param        patient  body      CreatePatientRequest  true  "Patient to create"
// @Success      200      {object}  models.Patient
// @Failure      400      {object}  response.ErrorResponse
// @Failure      409      {object}  response.ErrorResponse
// @Failure      503      {object}  response.ErrorResponse
// @Router       /patients [post]
func (h *PatientHandler) InsertPatient(c *gin.Context) {
	var req CreatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			response.Fail(c, code.ErrValidation, err.Error())
			return
		}
		response.Fail(c, code.ErrBind, err.Error())
		return
	}

	created, err := h.Service.CreatePatient(c.Request.Context(), req.toModel())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, created)
}

func (h *PatientHandler) fail(c *gin.Context, err error) {
	var validationErr *services.ValidationError
	switch {
	case errors.As(err, &validationErr):
		response.Fail(c, code.ErrValidation, validationErr.Error())
	case errors.Is(err, services.ErrConstraintViolation):
		response.Fail(c, code.ErrPatientAlreadyExist, "")
	case errors.Is(err, services.ErrStorageUnavailable):
		response.Fail(c, code.ErrStorageUnavailable, "")
	default:
		h.Logger.Error("unexpected patient service error", zap.Error(err))
		response.Fail(c, code.ErrUnknown, "")
	}
}
