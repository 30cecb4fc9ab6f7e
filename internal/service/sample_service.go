package service

import (
	"reading-quiz/internal/domain"
	"reading-quiz/internal/samples"
)

// SampleService serves the bundled sample passages.
type SampleService interface {
	List() ([]samples.Passage, error)
	Get(title string) (samples.Passage, error)
}

type sampleService struct {
	path string
}

// NewSampleService reads passages from the JSON file at path on every call,
// so edits to the file show up without a restart.
func NewSampleService(path string) SampleService {
	return &sampleService{path: path}
}

func (s *sampleService) List() ([]samples.Passage, error) {
	passages, err := samples.Load(s.path)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load sample passages", err)
	}
	return passages, nil
}

func (s *sampleService) Get(title string) (samples.Passage, error) {
	passages, err := s.List()
	if err != nil {
		return samples.Passage{}, err
	}
	p, ok := samples.Find(passages, title)
	if !ok {
		return samples.Passage{}, domain.NewNotFoundError("Sample passage not found").
			WithContext("title", title)
	}
	return p, nil
}
