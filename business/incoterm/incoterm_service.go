package incoterm

import (
	"context"
	"fmt"

	"incotermFinder/domain"
	"incotermFinder/pkg/logger"
)

type incotermService struct{}

func NewIncotermService() *incotermService {
	return &incotermService{}
}

// GetAllIncoterms returns the whole catalog, or only the terms for one transport mode when
// mode is non-empty.
func (s *incotermService) GetAllIncoterms(ctx context.Context, mode string) ([]domain.Incoterm, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get all incoterms", "error", err)
		return nil, fmt.Errorf("context error: %w", err)
	}

	if mode == "" {
		return All(), nil
	}

	incoterms, err := ByTransportMode(domain.TransportMode(mode))
	if err != nil {
		logger.Error("Failed to filter incoterms", "mode", mode, "error", err)
		return nil, err
	}

	return incoterms, nil
}

func (s *incotermService) GetIncotermByCode(ctx context.Context, code string) (domain.Incoterm, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get incoterm by code", "error", err)
		return domain.Incoterm{}, fmt.Errorf("context error: %w", err)
	}

	incoterm, err := ByCode(code)
	if err != nil {
		logger.Error("Failed to find incoterm", "code", code, "error", err)
		return domain.Incoterm{}, err
	}

	return incoterm, nil
}

func (s *incotermService) CompareIncoterms(ctx context.Context, codes []string) (domain.Comparison, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when comparing incoterms", "error", err)
		return domain.Comparison{}, fmt.Errorf("context error: %w", err)
	}

	comparison, err := Compare(codes...)
	if err != nil {
		logger.Error("Failed to compare incoterms", "codes", codes, "error", err)
		return domain.Comparison{}, err
	}

	return comparison, nil
}
