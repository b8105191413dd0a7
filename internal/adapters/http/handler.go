package httpadapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"deskpilot/internal/app/dispatch"
	"deskpilot/internal/app/nlu"
	"deskpilot/internal/app/resolve"
	"deskpilot/internal/domain"
	"deskpilot/internal/observability"
)

type Server struct {
	svc     *dispatch.Service
	matcher *nlu.Matcher
}

func NewServer(svc *dispatch.Service, matcher *nlu.Matcher) http.Handler {
	s := &Server{svc: svc, matcher: matcher}
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", s.handleHealthz)
	mux.HandleFunc("/parse", s.handleParse)
	mux.HandleFunc("/action", s.handleAction)
	mux.HandleFunc("/chat", s.handleChat)
	mux.Handle("/metrics", promhttp.Handler())

	return chainMiddlewares(mux, withMetrics, withLogging, withCORS, withRequestID)
}

// ─────────────────────────────────────────────
// DTOs (request/response)
// ─────────────────────────────────────────────

type parseRequest struct {
	Text string `json:"text"`
}

type parseResponse struct {
	Intent string `json:"intent"`
}

type actionRequest struct {
	SessionID string `json:"session_id,omitempty"`
	Intent    string `json:"intent"`
	Entity    string `json:"entity,omitempty"`
}

type actionResponse struct {
	SessionID string `json:"session_id"`
	Result    string `json:"result"`
}

type chatRequest struct {
	SessionID string `json:"session_id,omitempty"`
	UserInput string `json:"user_input"`
}

type chatResponse struct {
	SessionID string            `json:"session_id"`
	Response  string            `json:"response"`
	Document  domain.Document   `json:"document"`
	History   []domain.ChatTurn `json:"history"`
}

// ─────────────────────────────────────────────
// Concrete handlers
// ─────────────────────────────────────────────

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleParse exposes the bare intent matcher: text in, intent name out.
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}

	var req parseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}

	if strings.TrimSpace(req.Text) == "" {
		badRequest(w, "text cannot be empty")
		return
	}

	writeJSON(w, http.StatusOK, parseResponse{
		Intent: s.matcher.ResolveIntent(req.Text),
	})
}

// handleAction runs a command that arrives already structured as
// intent + entity, bypassing the resolver chain.
func (s *Server) handleAction(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}

	var req actionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}

	var action domain.Action
	switch req.Intent {
	case resolve.IntentTurnOnDevice:
		action = domain.DeviceOn(req.Entity)
	case resolve.IntentTurnOffDevice:
		action = domain.DeviceOff(req.Entity)
	default:
		badRequest(w, "unhandled intent: "+req.Intent)
		return
	}

	out, err := s.svc.Dispatch(r.Context(), dispatch.Input{
		SessionID: domain.SessionID(req.SessionID),
		Text:      strings.TrimSpace(req.Intent + " " + req.Entity),
		Action:    &action,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, actionResponse{
		SessionID: string(out.SessionID),
		Result:    out.Result,
	})
}

// handleChat runs the full pipeline: keyword path first, LLM path as
// fallback, then dispatch against the session.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}

	out, err := s.svc.Dispatch(r.Context(), dispatch.Input{
		SessionID: domain.SessionID(req.SessionID),
		Text:      req.UserInput,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, chatResponse{
		SessionID: string(out.SessionID),
		Response:  out.Result,
		Document:  out.Document,
		History:   out.History,
	})
}

// ─────────────────────────────────────────────
// HTTP Helpers
// ─────────────────────────────────────────────

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps the error taxonomy to status codes: validation errors are
// the caller's fault (400), anything else is a collaborator failure (500,
// underlying message included).
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	if domain.IsValidation(err) {
		badRequest(w, err.Error())
		return
	}

	observability.LoggerFromContext(r.Context()).Error("request failed", "error", err)
	writeJSON(w, http.StatusInternalServerError, map[string]string{
		"error": err.Error(),
	})
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, map[string]string{
		"error": msg,
	})
}

func methodNotAllowed(w http.ResponseWriter) {
	writeJSON(w, http.StatusMethodNotAllowed, map[string]string{
		"error": "method not allowed",
	})
}
