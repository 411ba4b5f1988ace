package http

import (
	"net/http"

	"github.com/kodausch/advertising-go-client/example/backend/internal"
)

// Problem is an RFC 7807 problem detail.
type Problem struct {
	Type     string `json:"type,omitempty"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail,omitempty"`
	Instance string `json:"instance,omitempty"`
}

type ProblemOption func(*Problem)

func WithDetail(detail string) ProblemOption {
	return func(p *Problem) {
		p.Detail = detail
	}
}

func WithError(err error) ProblemOption {
	return func(p *Problem) {
		p.Detail = err.Error()
	}
}

func WithInstance(instance string) ProblemOption {
	return func(p *Problem) {
		p.Instance = instance
	}
}

func NewProblem(status int, title string, opts ...ProblemOption) *Problem {
	problem := &Problem{
		Type:   "about:blank",
		Title:  title,
		Status: status,
	}

	applyOptions(problem, opts...)

	return problem
}

// NewProblemFromError maps the service error kinds onto HTTP statuses. Unknown
// errors become a 500 without leaking their detail.
func NewProblemFromError(err error, opts ...ProblemOption) (int, *Problem) {
	var problem *Problem

	switch {
	case internal.IsInvalidRequestError(err):
		problem = NewProblem(http.StatusBadRequest, "Bad Request", WithError(err))
	case internal.IsNotFoundError(err):
		problem = NewProblem(http.StatusNotFound, "Not Found", WithError(err))
	case internal.IsConflictError(err):
		problem = NewProblem(http.StatusConflict, "Conflict", WithError(err))
	default:
		problem = NewProblem(http.StatusInternalServerError, "Internal Server Error")
	}

	applyOptions(problem, opts...)

	return problem.Status, problem
}

func applyOptions(problem *Problem, opts ...ProblemOption) {
	for _, opt := range opts {
		opt(problem)
	}
}
