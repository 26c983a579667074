package storyteller

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lyricboard/lyricboard/pkg/storyteller/art"
	"github.com/lyricboard/lyricboard/pkg/storyteller/setup"
)

// ErrEmptyLyrics is returned when the submitted text contains no
// non-empty lines; no inference call is made in that case.
var ErrEmptyLyrics = errors.New("no lyric lines to generate images for")

// GeneratedImage is one result of the batch: an image reference tied to
// the lyric line that produced it and its position in the story.
type GeneratedImage struct {
	Url      string `json:"url"`
	Caption  string `json:"caption"`
	Line     string `json:"line"`
	Position int    `json:"position"`
}

type Storyteller struct {
	imageGenerator art.ImageGenerator
	apiRouter      *gin.Engine

	apiIpPort         string
	maxSamplesPerLine int
}

type StorytellerConfig struct {
	ImageGenerator art.ImageGenerator

	ApiIpPort         string
	MaxSamplesPerLine int
}

func NewStoryteller(ctx context.Context, config *StorytellerConfig) (*Storyteller, error) {
	if config == nil {
		return nil, errors.New("config is nil")
	}
	if config.ImageGenerator == nil {
		return nil, errors.New("image generator is nil")
	}

	maxSamplesPerLine := config.MaxSamplesPerLine
	if maxSamplesPerLine < 1 {
		maxSamplesPerLine = 1
	}

	storyteller := &Storyteller{
		imageGenerator: config.ImageGenerator,
		apiRouter:      nil,

		apiIpPort:         config.ApiIpPort,
		maxSamplesPerLine: maxSamplesPerLine,
	}

	storyteller.apiRouter = storyteller.generateRouter()

	return storyteller, nil
}

func NewStorytellerConfigFromSetupResult(setupResult *setup.SetupResult) (*StorytellerConfig, error) {
	if setupResult == nil {
		return nil, errors.New("setup result is nil")
	}

	var imageGenerator art.ImageGenerator
	switch setupResult.ImageBackend {
	case setup.ImageBackendGemini:
		imageGenerator = art.NewGeminiGenerator(setupResult.GeminiApiKey, setupResult.GeminiModel, "", http.DefaultClient)
	case setup.ImageBackendOpenAi:
		imageGenerator = art.NewOpenAiGenerator(setupResult.OpenAiApiKey, setupResult.OpenAiModel)
	default:
		return nil, fmt.Errorf("unknown image backend: %q", setupResult.ImageBackend)
	}

	return &StorytellerConfig{
		ImageGenerator: imageGenerator,

		ApiIpPort:         setupResult.ApiIpPort,
		MaxSamplesPerLine: setupResult.MaxSamplesPerLine,
	}, nil
}

// GenerateStory runs the whole batch for one submission: split the lyrics
// into lines, then one blocking inference call per line, strictly in input
// order. The first failing call aborts the batch and no partial results
// are returned.
func (s *Storyteller) GenerateStory(ctx context.Context, lyrics string, samplesPerLine int) ([]GeneratedImage, error) {
	lines := SplitLines(lyrics)
	if len(lines) == 0 {
		return nil, ErrEmptyLyrics
	}

	samples := s.clampSamples(samplesPerLine)

	images := make([]GeneratedImage, 0, len(lines)*samples)
	for i, line := range lines {
		slog.Info("generating images for line", "line", line, "position", i+1, "total", len(lines), "samples", samples)

		urls, err := s.imageGenerator.GenerateUrls(ctx, line, samples)
		if err != nil {
			return nil, fmt.Errorf("failed to generate image for line %d (%q): %w", i+1, line, err)
		}
		if len(urls) != samples {
			return nil, fmt.Errorf("expected %d images for line %d, got %d", samples, i+1, len(urls))
		}

		for j, url := range urls {
			caption := line
			if samples > 1 {
				caption = fmt.Sprintf("%s (image %d)", line, j+1)
			}
			images = append(images, GeneratedImage{
				Url:      url,
				Caption:  caption,
				Line:     line,
				Position: len(images),
			})
		}
	}

	return images, nil
}

func (s *Storyteller) clampSamples(samplesPerLine int) int {
	if samplesPerLine < 1 {
		return 1
	}
	if samplesPerLine > s.maxSamplesPerLine {
		return s.maxSamplesPerLine
	}
	return samplesPerLine
}

func (s *Storyteller) MaxSamplesPerLine() int {
	return s.maxSamplesPerLine
}

func (s *Storyteller) ApiIpPort() string {
	return s.apiIpPort
}
