package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harentsoaR/pet24-api/internal/models"
	"github.com/harentsoaR/pet24-api/internal/services"
)

type reservationRequest struct {
	DoctorID      *string `json:"doctorId"`
	PatientName   *string `json:"patientName"`
	Phone         *string `json:"phone"`
	PreferredDate *string `json:"preferredDate"`
	PreferredTime *string `json:"preferredTime"`
	Note          *string `json:"note"`
}

// GetReservations lists reservation requests for admins.
func (h *Handler) GetReservations(c *gin.Context) {
	reservations, err := h.Reservations.List(c.Request.Context(), models.ReservationFilter{
		DoctorID: c.Query("doctorId"),
	})
	if err != nil {
		h.respondError(c, err, msgLoadFailed)
		return
	}
	c.JSON(http.StatusOK, reservations)
}

func (h *Handler) CreateReservation(c *gin.Context) {
	var req reservationRequest
	if !h.bindJSON(c, &req) {
		return
	}
	if missingField(
		field{"doctorId", req.DoctorID},
		field{"patientName", req.PatientName},
		field{"phone", req.Phone},
		field{"preferredDate", req.PreferredDate},
	) != "" {
		badRequest(c, "اطلاعات لازم برای رزرو تکمیل نشده است")
		return
	}

	reservation, err := h.Reservations.Create(c.Request.Context(), services.ReservationRequest{
		DoctorID:      trimmed(req.DoctorID),
		PatientName:   trimmed(req.PatientName),
		Phone:         trimmed(req.Phone),
		PreferredDate: trimmed(req.PreferredDate),
		PreferredTime: trimmed(req.PreferredTime),
		Note:          trimmed(req.Note),
	})
	if err != nil {
		h.respondError(c, err, "خطا در ثبت درخواست رزرو")
		return
	}
	c.JSON(http.StatusCreated, reservation)
}
