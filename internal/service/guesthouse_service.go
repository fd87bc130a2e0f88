package service

import "github.com/Anubhav2007/GuestHouse/internal/model"

// GuesthouseService exposes the read-only directory to the API layer.
type GuesthouseService struct {
	directory GuesthouseDirectory
}

func NewGuesthouseService(directory GuesthouseDirectory) *GuesthouseService {
	return &GuesthouseService{directory: directory}
}

func (s *GuesthouseService) ListAll() []model.Guesthouse {
	return s.directory.ListAll()
}

func (s *GuesthouseService) Get(id string) (model.Guesthouse, bool) {
	return s.directory.Get(id)
}
