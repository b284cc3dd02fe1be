package service

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/promptpix/promptpix/pkg/service/artifact"
)

func (s *Service) generateRouter() *gin.Engine {
	// gin.Default wires the recovery middleware, which is the catch-all 500
	// for anything the handlers miss.
	router := gin.Default()

	router.Use(securityHeaders())
	router.Use(cors.New(cors.Config{
		AllowOrigins: s.allowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowHeaders: []string{"Content-Type"},
		MaxAge:       12 * time.Hour,
	}))

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/image/:userId", s.handleGetImage)
	router.DELETE("/image/:userId", s.handleDeleteImage)
	router.POST("/generate", s.handleGenerate)

	return router
}

func (s *Service) GetRouter() *gin.Engine {
	return s.apiRouter
}

func securityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "no-referrer")
		c.Header("Content-Security-Policy", "default-src 'none'; img-src 'self' data:")
		c.Next()
	}
}

func (s *Service) handleGenerate(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "request body must be a JSON object"})
		return
	}

	prompt, userId, err := validateGenerateRequest(body)
	if err != nil {
		renderError(c, err)
		return
	}

	encoded, err := s.Generate(c.Request.Context(), prompt, userId)
	if err != nil {
		slog.Error("failed to generate image", "userId", userId, "error", err)
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"userId": userId,
		"image":  artifact.Preview(encoded),
	})
}

func (s *Service) handleGetImage(c *gin.Context) {
	userId := strings.TrimSpace(c.Param("userId"))
	if userId == "" {
		renderError(c, &ValidationError{Message: userIdRequiredMessage})
		return
	}

	value, err := s.GetImage(c.Request.Context(), userId)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"image": artifact.DataURI(value)})
}

func (s *Service) handleDeleteImage(c *gin.Context) {
	userId := strings.TrimSpace(c.Param("userId"))
	if userId == "" {
		renderError(c, &ValidationError{Message: userIdRequiredMessage})
		return
	}

	if err := s.DeleteImage(c.Request.Context(), userId); err != nil {
		slog.Error("failed to delete image", "userId", userId, "error", err)
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Image deleted successfully"})
}

func renderError(c *gin.Context, err error) {
	var validationErr *ValidationError
	var notFoundErr *NotFoundError
	var upstreamErr *UpstreamError
	var storageErr *StorageError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundErr.Error()})
	case errors.As(err, &upstreamErr):
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":  "invalid upstream response",
			"detail": upstreamErr.Detail,
		})
	case errors.As(err, &storageErr):
		c.JSON(http.StatusInternalServerError, gin.H{"error": storageErr.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func (s *Service) StartServer(ctx context.Context) error {
	slog.Info("starting server", "port", s.apiIpPort)

	if s.apiIpPort == "" {
		slog.Info("api ip port is empty, skipping server")
		return nil
	}

	server := &http.Server{
		Addr:    s.apiIpPort,
		Handler: s.apiRouter,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		return server.Shutdown(context.Background())
	})

	return g.Wait()
}
