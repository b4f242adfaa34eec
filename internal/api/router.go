package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/0x0BSoD/hnPush/internal/pipeline"
)

// Runner executes one pipeline pass; satisfied by pipeline.Pipeline.
type Runner interface {
	Run(ctx context.Context) (pipeline.Result, error)
}

type Server struct {
	runner Runner
}

func NewServer(runner Runner) *Server {
	return &Server{runner: runner}
}

func (s *Server) RegisterRoutes(r *gin.Engine) {
	r.GET("/healthz", s.health)

	v1 := r.Group("/api/v1")
	{
		// GET kept alongside POST so dumb cron invokers can trigger runs
		v1.POST("/run", s.run)
		v1.GET("/run", s.run)
	}
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) run(c *gin.Context) {
	res, err := s.runner.Run(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	if res.Mode == pipeline.ModeDigest {
		c.JSON(http.StatusOK, gin.H{"success": true, "count": res.Count})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "sent": res.Sent})
}
