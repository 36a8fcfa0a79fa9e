package application

import (
	"context"
	"errors"
	"strings"

	"github.com/Apurer/delish-express/internal/domains/catalog/domain"
	"github.com/Apurer/delish-express/internal/domains/catalog/ports"
)

// Service orchestrates catalog browsing use cases.
type Service struct {
	repo ports.Repository
}

func NewService(repo ports.Repository) *Service {
	return &Service{repo: repo}
}

// ListRestaurants applies the selection to the full catalog.
func (s *Service) ListRestaurants(ctx context.Context, selection domain.FilterSelection) ([]domain.Restaurant, error) {
	catalog, err := s.repo.ListRestaurants(ctx)
	if err != nil {
		return nil, err
	}
	return domain.Apply(selection, catalog), nil
}

// Search matches the term case-insensitively against restaurant names,
// cuisines, dish names and dish descriptions.
func (s *Service) Search(ctx context.Context, term string) (*domain.SearchResult, error) {
	term = strings.TrimSpace(term)
	result := &domain.SearchResult{Term: term}
	if term == "" {
		return result, nil
	}
	needle := strings.ToLower(term)
	catalog, err := s.repo.ListRestaurants(ctx)
	if err != nil {
		return nil, err
	}
	for _, r := range catalog {
		if matches(needle, r.Name) || matchesAny(needle, r.Cuisines) {
			result.Restaurants = append(result.Restaurants, r)
		}
		menu, err := s.repo.GetMenu(ctx, r.ID)
		if errors.Is(err, ports.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		for _, category := range menu.Categories {
			for _, item := range category.Items {
				if matches(needle, item.Name) || matches(needle, item.Description) {
					result.Dishes = append(result.Dishes, item)
				}
			}
		}
	}
	return result, nil
}

func (s *Service) GetProfile(ctx context.Context, restaurantID int64) (*domain.Profile, error) {
	return s.repo.GetProfile(ctx, restaurantID)
}

func (s *Service) GetMenu(ctx context.Context, restaurantID int64) (*domain.Menu, error) {
	return s.repo.GetMenu(ctx, restaurantID)
}

func (s *Service) GetMenuItem(ctx context.Context, itemID string) (*domain.MenuItem, error) {
	return s.repo.GetMenuItem(ctx, itemID)
}

func matches(needle, haystack string) bool {
	return strings.Contains(strings.ToLower(haystack), needle)
}

func matchesAny(needle string, values []string) bool {
	for _, v := range values {
		if matches(needle, v) {
			return true
		}
	}
	return false
}

var _ ports.Service = (*Service)(nil)
