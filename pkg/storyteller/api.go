package storyteller

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/lyricboard/lyricboard/pkg/storyteller/debug"
)

//go:embed templates/*.html
var templatesFs embed.FS

var pageTemplate = template.Must(template.ParseFS(templatesFs, "templates/*.html"))

type generateRequest struct {
	Lyrics         string `json:"lyrics"`
	SamplesPerLine int    `json:"samplesPerLine"`
}

type generateResponse struct {
	Images []GeneratedImage `json:"images"`
}

func (s *Storyteller) generateRouter() *gin.Engine {
	if !debug.IsDebugHttp() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	router.SetHTMLTemplate(pageTemplate)

	router.GET("/", func(c *gin.Context) {
		sampleOptions := make([]int, s.maxSamplesPerLine)
		for i := range sampleOptions {
			sampleOptions[i] = i + 1
		}

		c.HTML(http.StatusOK, "index.html", gin.H{
			"SampleOptions": sampleOptions,
		})
	})

	router.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	router.POST("/api/generate", func(c *gin.Context) {
		var request generateRequest
		if err := c.ShouldBindJSON(&request); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		images, err := s.GenerateStory(c.Request.Context(), request.Lyrics, request.SamplesPerLine)
		if err != nil {
			if errors.Is(err, ErrEmptyLyrics) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "please enter some lyrics to generate a visual story"})
				return
			}

			slog.Error("failed to generate story", "error", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, generateResponse{Images: images})
	})

	return router
}

func (s *Storyteller) GetRouter() *gin.Engine {
	return s.apiRouter
}

// Start serves the UI and API until ctx is cancelled, then shuts the
// server down gracefully.
func (s *Storyteller) Start(ctx context.Context) error {
	slog.Info("starting server", "port", s.apiIpPort)

	if s.apiIpPort == "" {
		slog.Info("api ip port is empty, skipping server")
		<-ctx.Done()
		return ctx.Err()
	}

	server := &http.Server{
		Addr:    s.apiIpPort,
		Handler: s.apiRouter,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		if err := server.Shutdown(context.Background()); err != nil {
			slog.Error("server shutdown error", "error", err)
		}
		return gctx.Err()
	})

	return g.Wait()
}
