package handler

import (
	"reading-quiz/internal/dto"
	"reading-quiz/internal/service"

	"github.com/gofiber/fiber/v2"
)

// SampleHandler serves the bundled sample passages.
type SampleHandler struct {
	service service.SampleService
}

// NewSampleHandler creates a new SampleHandler instance
func NewSampleHandler(service service.SampleService) *SampleHandler {
	return &SampleHandler{service: service}
}

// ListSamples godoc
// @Summary List sample passages
// @Tags samples
// @Produce json
// @Success 200 {array} dto.SampleResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /samples [get]
func (h *SampleHandler) ListSamples(c *fiber.Ctx) error {
	passages, err := h.service.List()
	if err != nil {
		return err
	}
	resp := make([]dto.SampleResponse, 0, len(passages))
	for _, p := range passages {
		resp = append(resp, dto.SampleResponse{Title: p.Title, Text: p.Text})
	}
	return c.JSON(resp)
}
