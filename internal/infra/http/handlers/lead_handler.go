package handlers

import (
	"encoding/json"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/xavierca1/crm-records/internal/entity"
	"github.com/xavierca1/crm-records/internal/infra/http/middleware"
	"github.com/xavierca1/crm-records/internal/usecase"
)

type LeadHandler struct {
	UC          *usecase.LeadUseCase
	rateLimiter *RateLimiter
}

func NewLeadHandler(uc *usecase.LeadUseCase) *LeadHandler {
	return &LeadHandler{
		UC:          uc,
		rateLimiter: NewRateLimiter(10, time.Minute), // 10 req/min per IP
	}
}

type LeadCycleRequest struct {
	LastNames []string `json:"last_names"`
}

type CycleResponse struct {
	Inserted int `json:"inserted"`
	Deleted  int `json:"deleted"`
}

// HandleDemoCycle inserts one lead per last name and deletes the batch
// again. The demo endpoints are rate limited because they write real rows.
func (h *LeadHandler) HandleDemoCycle(w http.ResponseWriter, r *http.Request) {
	if !h.rateLimiter.Allow(getClientIP(r)) {
		writeJSON(w, http.StatusTooManyRequests, errorResponse{Error: "too many requests, try again later"})
		return
	}

	var req LeadCycleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.UC.InsertAndDeleteLeads(r.Context(), req.LastNames); err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordWrite("Lead", "insert", len(req.LastNames))
	middleware.RecordDelete("Lead", len(req.LastNames))
	writeJSON(w, http.StatusOK, CycleResponse{Inserted: len(req.LastNames), Deleted: len(req.LastNames)})
}

type LeadListResponse struct {
	Leads []*entity.Lead `json:"leads"`
}

// HandleFindByLastNames lists leads matching the repeated last_name query
// parameter, e.g. GET /leads?last_name=Smith&last_name=Jones.
func (h *LeadHandler) HandleFindByLastNames(w http.ResponseWriter, r *http.Request) {
	lastNames := r.URL.Query()["last_name"]
	if len(lastNames) == 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "at least one last_name parameter is required"})
		return
	}

	leads, err := h.UC.FindLeadsByLastNames(r.Context(), lastNames)
	if err != nil {
		writeError(w, err)
		return
	}

	if leads == nil {
		leads = []*entity.Lead{}
	}
	writeJSON(w, http.StatusOK, LeadListResponse{Leads: leads})
}

// getClientIP keys the rate limiter. Only the first X-Forwarded-For hop
// counts; the tail of the header is whatever the client wrote, so trusting
// it whole would hand out a fresh key per request.
func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    int
	window   time.Duration
}

type visitor struct {
	count     int
	lastReset time.Time
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    limit,
		window:   window,
	}

	go rl.cleanup()
	return rl
}

func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, exists := rl.visitors[ip]
	now := time.Now()

	if !exists {
		rl.visitors[ip] = &visitor{count: 1, lastReset: now}
		return true
	}

	if now.Sub(v.lastReset) > rl.window {
		v.count = 1
		v.lastReset = now
		return true
	}

	v.count++
	return v.count <= rl.limit
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for ip, v := range rl.visitors {
			if now.Sub(v.lastReset) > rl.window*2 {
				delete(rl.visitors, ip)
			}
		}
		rl.mu.Unlock()
	}
}
