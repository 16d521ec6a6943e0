package service

import (
	"context"

	"github.com/Ryuen4/Asmaul-Husna-Quiz/internal/domain/entities"
)

type NameService struct {
	repository NameRepository
}

func NewNameService(repository NameRepository) *NameService {
	return &NameService{repository: repository}
}

func (s *NameService) GetByNumber(ctx context.Context, number int) (*entities.Name, error) {
	return s.repository.GetByNumber(ctx, number)
}

func (s *NameService) GetRandom(ctx context.Context) (*entities.Name, error) {
	return s.repository.GetRandom(ctx)
}

func (s *NameService) GetAll(ctx context.Context) ([]*entities.Name, error) {
	return s.repository.GetAll(ctx)
}

func (s *NameService) Search(ctx context.Context, term string) ([]*entities.Name, error) {
	return s.repository.Search(ctx, term)
}
