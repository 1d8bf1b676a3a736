package entities

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/knights-analytics/hugot"
	"github.com/knights-analytics/hugot/pipelines"

	"github.com/Ben-ecom/Marketpulse-AI-sub007/internal/models"
)

// nerLabelTypes maps transformer NER labels onto our entity types.
// Labels outside the table are dropped rather than guessed.
var nerLabelTypes = map[string]models.EntityType{
	"ORG":  models.EntityOrganization,
	"LOC":  models.EntityLocation,
	"MISC": models.EntityProduct,
}

// HugotExtractor runs an ONNX token-classification model as the
// external high-accuracy entity capability.
type HugotExtractor struct {
	session  *hugot.Session
	pipeline *pipelines.TokenClassificationPipeline
}

// NewHugotExtractor loads the model at modelPath into a fresh ONNX
// runtime session. Callers own Close.
func NewHugotExtractor(modelPath string) (*HugotExtractor, error) {
	session, err := hugot.NewORTSession()
	if err != nil {
		return nil, fmt.Errorf("[HugotExtractor] failed to initialize session: %w", err)
	}

	config := hugot.TokenClassificationConfig{
		ModelPath: modelPath,
		Name:      "nerEntityPipeline",
	}
	pipeline, err := hugot.NewPipeline(session, config)
	if err != nil {
		session.Destroy()
		return nil, fmt.Errorf("[HugotExtractor] failed to initialize NER pipeline: %w", err)
	}

	slog.Info("[HugotExtractor] NER pipeline ready", slog.String("model", modelPath))
	return &HugotExtractor{session: session, pipeline: pipeline}, nil
}

func (h *HugotExtractor) Close() {
	if h.session != nil {
		h.session.Destroy()
	}
}

func (h *HugotExtractor) Extract(_ context.Context, text string) ([]models.Entity, error) {
	output, err := h.pipeline.RunPipeline([]string{text})
	if err != nil {
		return nil, fmt.Errorf("[HugotExtractor] pipeline run failed: %w", err)
	}

	var out []models.Entity
	for _, batch := range output.Entities {
		for _, ent := range batch {
			label := strings.TrimPrefix(strings.TrimPrefix(ent.Entity, "B-"), "I-")
			entityType, ok := nerLabelTypes[label]
			if !ok {
				continue
			}
			out = append(out, models.Entity{
				Text:        ent.Word,
				Type:        entityType,
				StartOffset: int(ent.Start),
				EndOffset:   int(ent.End),
				Confidence:  float64(ent.Score),
				Method:      models.EntityMethodExternal,
			})
		}
	}
	return out, nil
}
