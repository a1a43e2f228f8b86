package http

import (
	"context"
	"net/http"
	"slices"
	"time"

	"github.com/aescanero/chequemgmt-frontend/pkg/domain"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChequeBackend is the remote service holding cheque records
type ChequeBackend interface {
	List(ctx context.Context) ([]domain.Cheque, error)
	Add(ctx context.Context, chequeNo string, approvalGranted bool) error
	Remove(ctx context.Context, chequeNo string) error
}

// Metrics receives per-request observations
type Metrics interface {
	ObserveRequest(method, route string, status int, duration time.Duration)
	IncChequeAction(action string)
}

type nopMetrics struct{}

func (nopMetrics) ObserveRequest(string, string, int, time.Duration) {}
func (nopMetrics) IncChequeAction(string)                            {}

// HealthResponse is the fixed liveness payload
type HealthResponse struct {
	Status    string `json:"status"`
	Container string `json:"container"`
}

// IndexPage is the data rendered by the index template
type IndexPage struct {
	Cheques []domain.Cheque
}

// handleHealth reports liveness without consulting the backend
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Container: "frontend",
	})
}

// handleIndex renders the cheque list. Backend failures render an empty list.
func (s *Server) handleIndex(c *gin.Context) {
	cheques, err := s.backend.List(c.Request.Context())
	if err != nil {
		s.logger.Error("failed to list cheques",
			zap.String("request_id", c.GetString(requestIDKey)),
			zap.Error(err))
		cheques = []domain.Cheque{}
	} else {
		s.logger.Info("listed cheques",
			zap.String("request_id", c.GetString(requestIDKey)),
			zap.Int("count", len(cheques)))
	}

	c.HTML(http.StatusOK, "index.html", IndexPage{Cheques: cheques})
}

// handleAdd forwards a new cheque to the backend and redirects to the list
func (s *Server) handleAdd(c *gin.Context) {
	chequeNo := c.PostForm("chequeNo")
	approvalGranted := slices.Contains(c.PostFormArray("approvalGranted"), "true")

	logger := s.logger.With(
		zap.String("request_id", c.GetString(requestIDKey)),
		zap.String("cheque_no", chequeNo),
		zap.Bool("approval_granted", approvalGranted))

	logger.Info("adding cheque")
	s.metrics.IncChequeAction("add")

	if err := s.backend.Add(c.Request.Context(), chequeNo, approvalGranted); err != nil {
		logger.Error("failed to add new cheque details", zap.Error(err))
	}

	c.Redirect(http.StatusFound, "/")
}

// handleDelete forwards a cheque removal to the backend and redirects to the list
func (s *Server) handleDelete(c *gin.Context) {
	chequeNo := c.PostForm("chequeNo")

	logger := s.logger.With(
		zap.String("request_id", c.GetString(requestIDKey)),
		zap.String("cheque_no", chequeNo))

	logger.Info("deleting cheque")
	s.metrics.IncChequeAction("delete")

	if err := s.backend.Remove(c.Request.Context(), chequeNo); err != nil {
		logger.Error("failed to delete cheque", zap.Error(err))
	}

	c.Redirect(http.StatusFound, "/")
}
