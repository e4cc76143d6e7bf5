package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/haneco/timesheet-backend-go/internal/domain/attendance"
	"github.com/haneco/timesheet-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	GetMonthGrid(w http.ResponseWriter, r *http.Request)
	GetUserMonth(w http.ResponseWriter, r *http.Request)
	SaveLedger(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// GetMonthGrid implements AttendanceHandler.
func (h *AttendanceHandlerImpl) GetMonthGrid(w http.ResponseWriter, r *http.Request) {
	grid, err := h.attendanceService.GetMonthGrid(r.Context(), chi.URLParam(r, "month"))
	if err != nil {
		slog.Error("Get month grid service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, grid)
}

// GetUserMonth implements AttendanceHandler.
func (h *AttendanceHandlerImpl) GetUserMonth(w http.ResponseWriter, r *http.Request) {
	row, err := h.attendanceService.GetUserMonth(r.Context(), chi.URLParam(r, "userID"), chi.URLParam(r, "month"))
	if err != nil {
		slog.Error("Get user month service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, row)
}

// SaveLedger implements AttendanceHandler.
func (h *AttendanceHandlerImpl) SaveLedger(w http.ResponseWriter, r *http.Request) {
	var req attendance.SaveLedgerRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	saved, err := h.attendanceService.SaveLedger(r.Context(), req)
	if err != nil {
		slog.Error("Save ledger service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, saved)
}
