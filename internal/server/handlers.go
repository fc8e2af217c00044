package server

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/theirongolddev/worthit/internal/form"
	"github.com/theirongolddev/worthit/internal/metrics"
	"github.com/theirongolddev/worthit/internal/model"
	"github.com/theirongolddev/worthit/internal/pipeline"
)

const maxBodyBytes = 1 << 20

// CalculateRequest is the POST /v1/calculate body. Omitted schedule fields
// and salary period fall back to the stored preferences.
type CalculateRequest struct {
	form.Request
	WorkDaysPerWeek *int `json:"work_days_per_week,omitempty"`
	WorkHoursPerDay *int `json:"work_hours_per_day,omitempty"`
}

// CalculateResponse carries a null result when the calculator has no answer.
type CalculateResponse struct {
	Result *model.Estimate `json:"result"`
}

// ScheduleBody is the GET/PUT /v1/schedule payload.
type ScheduleBody struct {
	SalaryPeriod    string `json:"salary_period,omitempty"`
	WorkDaysPerWeek int    `json:"work_days_per_week"`
	WorkHoursPerDay int    `json:"work_hours_per_day"`
}

type errorResponse struct {
	Errors map[string]string `json:"errors"`
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Service) handleStatus(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.snapshotStatus())
}

func (s *Service) handleCalculate(w http.ResponseWriter, r *http.Request) {
	var req CalculateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.recordOutcome(metrics.OutcomeInvalid, 0)
		s.writeErrors(w, http.StatusBadRequest, map[string]string{"error": "request body must be a JSON object"})
		return
	}

	p, err := s.preferences()
	if err != nil {
		s.writeErrors(w, http.StatusInternalServerError, map[string]string{"error": "loading preferences failed"})
		return
	}

	if req.SalaryPeriod == "" {
		req.SalaryPeriod = string(p.SalaryPeriod)
	}
	sched := form.ScheduleRequest{WorkDaysPerWeek: p.WorkDaysPerWeek, WorkHoursPerDay: p.WorkHoursPerDay}
	if req.WorkDaysPerWeek != nil {
		sched.WorkDaysPerWeek = *req.WorkDaysPerWeek
	}
	if req.WorkHoursPerDay != nil {
		sched.WorkHoursPerDay = *req.WorkHoursPerDay
	}

	in, err := form.Validate(req.Request)
	if err != nil {
		s.recordOutcome(metrics.OutcomeInvalid, 0)
		s.writeErrors(w, http.StatusBadRequest, form.FieldErrors(err))
		return
	}
	schedule, err := form.ValidateSchedule(sched)
	if err != nil {
		s.recordOutcome(metrics.OutcomeInvalid, 0)
		s.writeErrors(w, http.StatusBadRequest, form.FieldErrors(err))
		return
	}

	est, ok := pipeline.Estimate(in, schedule)
	if !ok {
		s.recordOutcome(metrics.OutcomeNoResult, 0)
		s.writeJSON(w, http.StatusOK, CalculateResponse{})
		return
	}

	s.recordOutcome(metrics.OutcomeResult, est.RequiredDays)
	s.writeJSON(w, http.StatusOK, CalculateResponse{Result: &est})
}

func (s *Service) handleGetSchedule(w http.ResponseWriter, _ *http.Request) {
	p, err := s.preferences()
	if err != nil {
		s.writeErrors(w, http.StatusInternalServerError, map[string]string{"error": "loading preferences failed"})
		return
	}
	s.writeJSON(w, http.StatusOK, scheduleBody(p))
}

func (s *Service) handlePutSchedule(w http.ResponseWriter, r *http.Request) {
	var body ScheduleBody
	if err := decodeJSON(w, r, &body); err != nil {
		s.writeErrors(w, http.StatusBadRequest, map[string]string{"error": "request body must be a JSON object"})
		return
	}

	if _, err := form.ValidateSchedule(form.ScheduleRequest{
		WorkDaysPerWeek: body.WorkDaysPerWeek,
		WorkHoursPerDay: body.WorkHoursPerDay,
	}); err != nil {
		s.writeErrors(w, http.StatusBadRequest, form.FieldErrors(err))
		return
	}

	current, err := s.preferences()
	if err != nil {
		s.writeErrors(w, http.StatusInternalServerError, map[string]string{"error": "loading preferences failed"})
		return
	}
	p, err := schedulePrefs(body, current)
	if err != nil {
		s.writeErrors(w, http.StatusBadRequest, map[string]string{"salary_period": "Salary period must be annual or monthly."})
		return
	}

	if err := s.prefs.SavePreferences(p); err != nil {
		s.recordError(err)
		s.writeErrors(w, http.StatusInternalServerError, map[string]string{"error": "saving preferences failed"})
		return
	}

	s.log.WithFields(logrus.Fields{
		"salary_period":      p.SalaryPeriod,
		"work_days_per_week": p.WorkDaysPerWeek,
		"work_hours_per_day": p.WorkHoursPerDay,
	}).Info("schedule updated")

	s.writeJSON(w, http.StatusOK, scheduleBody(p))
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	return dec.Decode(dst)
}

// writeJSON encodes v before writing headers; a value that cannot be
// encoded becomes a 500 error body.
func (s *Service) writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		s.log.WithError(err).WithField("status", status).Error("encoding response failed")
		status = http.StatusInternalServerError
		data, _ = json.Marshal(errorResponse{Errors: map[string]string{"error": "encoding response failed"}})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(append(data, '\n')); err != nil {
		s.log.WithError(err).Debug("writing response failed")
	}
}

func (s *Service) writeErrors(w http.ResponseWriter, status int, errs map[string]string) {
	s.writeJSON(w, status, errorResponse{Errors: errs})
}
