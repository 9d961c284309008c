package handlers

import (
	"net/http"
	"strings"

	"github.com/emtionre/satisfaction-service/internal/application/satisfaction"
	"github.com/emtionre/satisfaction-service/internal/transport/http/dto"
	"github.com/emtionre/satisfaction-service/internal/transport/http/response"
	"github.com/emtionre/satisfaction-service/internal/transport/http/validate"
)

type SatisfactionHandler struct {
	svc *satisfaction.Service
}

func NewSatisfactionHandler(svc *satisfaction.Service) *SatisfactionHandler {
	return &SatisfactionHandler{svc: svc}
}

// queryParam returns a trimmed query value; surrounding blanks are not a format error.
func queryParam(r *http.Request, key string) string {
	return strings.TrimSpace(r.URL.Query().Get(key))
}

// Segments: GET /api/satisfaction-segments?date=YYYY-MM-DD
func (h *SatisfactionHandler) Segments(w http.ResponseWriter, r *http.Request) {
	q := validate.DateQuery{Date: queryParam(r, "date")}
	if err := validate.Struct(q); err != nil {
		response.Err(w, r, err)
		return
	}

	res, err := h.svc.DailySegments(r.Context(), q.Date)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, dto.ToSegmentsResp(res))
}

// Minute: GET /api/minute-satisfaction?date=YYYY-MM-DD&time=HH:mm
func (h *SatisfactionHandler) Minute(w http.ResponseWriter, r *http.Request) {
	q := validate.MinuteQuery{Date: queryParam(r, "date"), Time: queryParam(r, "time")}
	if err := validate.Struct(q); err != nil {
		response.Err(w, r, err)
		return
	}

	res, err := h.svc.MinuteDetail(r.Context(), q.Date, q.Time)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, dto.ToMinuteDetailResp(res))
}

// AvailableTimes: GET /api/available-times?date=YYYY-MM-DD
func (h *SatisfactionHandler) AvailableTimes(w http.ResponseWriter, r *http.Request) {
	q := validate.DateQuery{Date: queryParam(r, "date")}
	if err := validate.Struct(q); err != nil {
		response.Err(w, r, err)
		return
	}

	res, err := h.svc.AvailableTimes(r.Context(), q.Date)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, dto.ToTimesResp(res))
}

// AvailableDates: GET /api/available-dates?limit=N
func (h *SatisfactionHandler) AvailableDates(w http.ResponseWriter, r *http.Request) {
	limit := satisfaction.ParseLimit(r.URL.Query().Get("limit"))

	dates, err := h.svc.AvailableDates(r.Context(), limit)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, dto.ToDatesResp(dates))
}
