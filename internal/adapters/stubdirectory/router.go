package stubdirectory

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"

	"github.com/timeclock/kiosk/internal/adapters/directory"
)

// NewRouter exposes the directory operations at the default endpoint paths
func NewRouter(dir *Directory, logger *slog.Logger) *chi.Mux {
	h := &handler{dir: dir}
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	if logger != nil {
		r.Use(httplog.RequestLogger(logger, &httplog.Options{
			Level:  slog.LevelDebug,
			Schema: httplog.SchemaECS,
		}))
	}

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/healthz"))

	r.Get("/get-employees", h.getEmployees)
	r.Post("/clock-in", h.clockIn)
	r.Post("/start-break", h.startBreak)
	r.Post("/end-break", h.endBreak)
	r.Post("/clock-out", h.clockOut)

	return r
}

// NewLogger builds the ECS-formatted request logger
func NewLogger(w io.Writer) *slog.Logger {
	logFormat := httplog.SchemaECS.Concise(false)
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(slog.String("app", "kiosk-stub-directory"))
}

type handler struct {
	dir *Directory
}

func (h *handler) getEmployees(w http.ResponseWriter, r *http.Request) {
	employees := h.dir.Employees()
	resp := directory.EmployeesResponse{Employees: make([]directory.EmployeeJSON, 0, len(employees))}
	for _, e := range employees {
		resp.Employees = append(resp.Employees, directory.EmployeeJSON{
			ID:          directory.ID(e.ID),
			Name:        e.Name,
			PinCode:     e.PinCode,
			Status:      string(e.Status),
			TimesheetID: directory.ID(e.ActiveTimesheetID),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *handler) clockIn(w http.ResponseWriter, r *http.Request) {
	var req directory.ClockInPayload
	if !decode(w, r, &req) {
		return
	}
	if req.EmployeeID == "" {
		writeError(w, http.StatusBadRequest, "employeeId is required")
		return
	}

	id, err := h.dir.ClockIn(req.EmployeeID, req.ClockInTimestamp.Time())
	if err != nil {
		writeDirectoryError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, directory.ClockInResponse{TimesheetID: directory.ID(id)})
}

func (h *handler) startBreak(w http.ResponseWriter, r *http.Request) {
	var req directory.StartBreakPayload
	if !decode(w, r, &req) {
		return
	}
	h.finish(w, h.dir.StartBreak(req.TimesheetID, req.BreakStartTimestamp.Time()))
}

func (h *handler) endBreak(w http.ResponseWriter, r *http.Request) {
	var req directory.EndBreakPayload
	if !decode(w, r, &req) {
		return
	}
	h.finish(w, h.dir.EndBreak(req.TimesheetID, req.BreakEndTimestamp.Time()))
}

func (h *handler) clockOut(w http.ResponseWriter, r *http.Request) {
	var req directory.ClockOutPayload
	if !decode(w, r, &req) {
		return
	}
	h.finish(w, h.dir.ClockOut(req.TimesheetID, req.ClockOutTimestamp.Time()))
}

func (h *handler) finish(w http.ResponseWriter, err error) {
	if err != nil {
		writeDirectoryError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Success bool `json:"success"`
	}{Success: true})
}

func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func writeDirectoryError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrConflict):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, ErrUnknownEmployee), errors.Is(err, ErrUnknownTimesheet):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, directory.ErrorResponse{Error: message})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
