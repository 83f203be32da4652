package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harentsoaR/pet24-api/internal/models"
)

const (
	msgInvalidLatitude  = "مختصات عرضی نامعتبر است"
	msgInvalidLongitude = "مختصات طولی نامعتبر است"
)

type doctorRequest struct {
	Name        *string `json:"name"`
	Specialty   *string `json:"specialty"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
	Province    *string `json:"province"`
	City        *string `json:"city"`
	Description *string `json:"description"`
	MapURL      *string `json:"mapUrl"`
	Photo       *string `json:"photo"`
	Latitude    number  `json:"latitude"`
	Longitude   number  `json:"longitude"`
}

func (r doctorRequest) requiredFields() []field {
	return []field{
		{"name", r.Name},
		{"specialty", r.Specialty},
		{"phone", r.Phone},
		{"address", r.Address},
		{"province", r.Province},
		{"city", r.City},
	}
}

// coordinatesError returns the message for the first malformed coordinate.
func (r doctorRequest) coordinatesError() string {
	if r.Latitude.Set && !r.Latitude.Valid {
		return msgInvalidLatitude
	}
	if r.Longitude.Set && !r.Longitude.Valid {
		return msgInvalidLongitude
	}
	return ""
}

// GetDoctors lists doctors, optionally narrowed by province and city.
func (h *Handler) GetDoctors(c *gin.Context) {
	doctors, err := h.Doctors.List(c.Request.Context(), models.DoctorFilter{
		Province: c.Query("province"),
		City:     c.Query("city"),
	})
	if err != nil {
		h.respondError(c, err, msgLoadFailed)
		return
	}
	c.JSON(http.StatusOK, doctors)
}

func (h *Handler) GetDoctor(c *gin.Context) {
	doctor, err := h.Doctors.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err, msgLoadFailed)
		return
	}
	c.JSON(http.StatusOK, doctor)
}

func (h *Handler) CreateDoctor(c *gin.Context) {
	var req doctorRequest
	if !h.bindJSON(c, &req) {
		return
	}
	if name := missingField(req.requiredFields()...); name != "" {
		badRequest(c, requiredMessage(name))
		return
	}
	if msg := req.coordinatesError(); msg != "" {
		badRequest(c, msg)
		return
	}

	doctor, err := h.Doctors.Create(c.Request.Context(), models.Doctor{
		Name:        trimmed(req.Name),
		Specialty:   trimmed(req.Specialty),
		Phone:       trimmed(req.Phone),
		Address:     trimmed(req.Address),
		Province:    trimmed(req.Province),
		City:        trimmed(req.City),
		Description: trimmed(req.Description),
		MapURL:      trimmed(req.MapURL),
		Photo:       trimmed(req.Photo),
		Latitude:    req.Latitude.Ptr(),
		Longitude:   req.Longitude.Ptr(),
	})
	if err != nil {
		h.respondError(c, err, "خطا در ایجاد پزشک جدید")
		return
	}
	c.JSON(http.StatusCreated, doctor)
}

// UpdateDoctor changes only the fields present in the body. Required fields
// may not be blanked.
func (h *Handler) UpdateDoctor(c *gin.Context) {
	var req doctorRequest
	if !h.bindJSON(c, &req) {
		return
	}
	if name := blankField(req.requiredFields()...); name != "" {
		badRequest(c, requiredMessage(name))
		return
	}
	if msg := req.coordinatesError(); msg != "" {
		badRequest(c, msg)
		return
	}

	doctor, err := h.Doctors.Update(c.Request.Context(), c.Param("id"), models.DoctorPatch{
		Name:        trimmedPtr(req.Name),
		Specialty:   trimmedPtr(req.Specialty),
		Phone:       trimmedPtr(req.Phone),
		Address:     trimmedPtr(req.Address),
		Province:    trimmedPtr(req.Province),
		City:        trimmedPtr(req.City),
		Description: trimmedPtr(req.Description),
		MapURL:      trimmedPtr(req.MapURL),
		Photo:       trimmedPtr(req.Photo),
		Latitude:    req.Latitude.Ptr(),
		Longitude:   req.Longitude.Ptr(),
	})
	if err != nil {
		h.respondError(c, err, "خطا در به‌روزرسانی پزشک")
		return
	}
	c.JSON(http.StatusOK, doctor)
}

func (h *Handler) DeleteDoctor(c *gin.Context) {
	if err := h.Doctors.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err, "خطا در حذف پزشک")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "پزشک با موفقیت حذف شد"})
}
