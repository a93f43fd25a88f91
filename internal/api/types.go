// Package api contains request/response DTOs for the HTTP surface.
package api

import "time"

// ErrorCode discriminates error responses for API clients.
type ErrorCode string

const (
	VALIDATION   ErrorCode = "VALIDATION"
	NOTFOUND     ErrorCode = "NOT_FOUND"
	UNAUTHORIZED ErrorCode = "UNAUTHORIZED"
	FORBIDDEN    ErrorCode = "FORBIDDEN"
	CONFLICT     ErrorCode = "CONFLICT"
	RATELIMITED  ErrorCode = "RATE_LIMITED"
	INTERNAL     ErrorCode = "INTERNAL"
)

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody carries the machine code and human-readable message.
type ErrorBody struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// Note is a lead annotation.
type Note struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// Lead is the full lead representation.
type Lead struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Company   string    `json:"company"`
	Source    string    `json:"source"`
	Status    string    `json:"status"`
	Notes     []Note    `json:"notes"`
	CreatedBy string    `json:"createdBy,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateLeadRequest is the POST /leads body. Source and status are optional.
type CreateLeadRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
	Source  string `json:"source"`
	Status  string `json:"status"`
}

// UpdateLeadRequest is the PATCH /leads/:id body. Absent fields stay
// untouched; fields outside this set are ignored by decoding.
type UpdateLeadRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Company *string `json:"company"`
	Source  *string `json:"source"`
	Status  *string `json:"status"`
}

// AddNoteRequest is the POST /leads/:id/notes body.
type AddNoteRequest struct {
	Text string `json:"text"`
}

// Pagination describes the returned page window.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}

// LeadStats are global status counts independent of the active filter.
type LeadStats struct {
	Total     int64 `json:"total"`
	New       int64 `json:"new"`
	Contacted int64 `json:"contacted"`
	Converted int64 `json:"converted"`
}

// ListLeadsResponse is the GET /leads payload.
type ListLeadsResponse struct {
	Leads      []Lead     `json:"leads"`
	Pagination Pagination `json:"pagination"`
	Stats      LeadStats  `json:"stats"`
}

// RegisterRequest is the POST /auth/register body.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// LoginRequest is the POST /auth/login body.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// User is the public account profile; the password hash never appears here.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// LoginResponse is the POST /auth/login payload.
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// StatusCount is one status breakdown group.
type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// SourceCount is one source breakdown group.
type SourceCount struct {
	Source string `json:"source"`
	Count  int64  `json:"count"`
}

// MonthlyCount is one monthly trend group.
type MonthlyCount struct {
	Year  int   `json:"year"`
	Month int   `json:"month"`
	Count int64 `json:"count"`
}

// AnalyticsResponse is the GET /analytics payload.
type AnalyticsResponse struct {
	StatusBreakdown []StatusCount  `json:"statusBreakdown"`
	SourceBreakdown []SourceCount  `json:"sourceBreakdown"`
	MonthlyTrend    []MonthlyCount `json:"monthlyTrend"`
}

// MessageResponse acknowledges a mutation with no other payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse is the liveness probe payload.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}
