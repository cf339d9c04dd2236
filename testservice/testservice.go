// Package testservice is an in-memory implementation of the backend API that the smoke tests
// exercise. It is what the harness's own tests run against, and it can be started on its own
// with cmd/testservice to try the harness locally.
package testservice

import (
	"net/http"
	"sync"
	"time"

	"github.com/statuscheck/smoke-tests/servicedef"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// timestampFormat is ISO 8601 with microseconds and no zone; timestamps are always UTC.
const timestampFormat = "2006-01-02T15:04:05.000000"

type errorResponse struct {
	Detail string `json:"detail"`
}

// Service holds status checks in creation order.
type Service struct {
	checks []servicedef.StatusCheck
	now    func() time.Time
	lock   sync.Mutex
}

// New creates an empty Service.
func New() *Service {
	return &Service{now: time.Now}
}

// Handler returns the HTTP handler for the service's routes.
func (s *Service) Handler() http.Handler {
	router := gin.New()
	router.Use(gin.Recovery())

	api := router.Group("/api")
	api.GET(servicedef.RootPath, s.getRoot)
	api.POST(servicedef.StatusPath, s.createStatusCheck)
	api.GET(servicedef.StatusPath, s.listStatusChecks)

	return router
}

// StatusChecks returns a copy of the stored records.
func (s *Service) StatusChecks() []servicedef.StatusCheck {
	s.lock.Lock()
	defer s.lock.Unlock()
	return append([]servicedef.StatusCheck{}, s.checks...)
}

func (s *Service) getRoot(c *gin.Context) {
	c.JSON(http.StatusOK, servicedef.RootResponse{Message: servicedef.Greeting})
}

func (s *Service) createStatusCheck(c *gin.Context) {
	var req servicedef.StatusCheckCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, errorResponse{Detail: err.Error()})
		return
	}
	check := servicedef.StatusCheck{
		ID:         uuid.NewString(),
		ClientName: req.ClientName,
		Timestamp:  s.now().UTC().Format(timestampFormat),
	}
	s.lock.Lock()
	s.checks = append(s.checks, check)
	s.lock.Unlock()

	c.JSON(http.StatusOK, check)
}

func (s *Service) listStatusChecks(c *gin.Context) {
	c.JSON(http.StatusOK, s.StatusChecks())
}
