package recyclebin

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/Taha-Raees/zetratech-front/internal/domain/model"
	"github.com/Taha-Raees/zetratech-front/internal/pkg/validate"
)

var ErrNotInitialized = errors.New("recycle bin service is not initialized")

type Repo interface {
	List(ctx context.Context) ([]model.RecycleBinItem, error)
	Restore(ctx context.Context, ref model.RecycleBinRef) error
	PermanentDelete(ctx context.Context, ref model.RecycleBinRef) error
}

type Group struct {
	Type  string
	Items []model.RecycleBinItem
}

type Service struct {
	repo      Repo
	validator *validate.Validator
}

func NewService(repo Repo) *Service {
	return &Service{repo: repo, validator: validate.New()}
}

// List returns deleted items grouped by entity type, types in name order.
func (s *Service) List(ctx context.Context) ([]Group, error) {
	if s.repo == nil {
		return []Group{}, nil
	}
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	byType := make(map[string][]model.RecycleBinItem)
	for _, item := range items {
		byType[item.Type] = append(byType[item.Type], item)
	}
	groups := make([]Group, 0, len(byType))
	for kind, grouped := range byType {
		groups = append(groups, Group{Type: kind, Items: grouped})
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Type < groups[j].Type })
	return groups, nil
}

func (s *Service) Restore(ctx context.Context, kind, id string) error {
	ref, err := s.ref(kind, id)
	if err != nil {
		return err
	}
	return s.repo.Restore(ctx, ref)
}

func (s *Service) PermanentDelete(ctx context.Context, kind, id string) error {
	ref, err := s.ref(kind, id)
	if err != nil {
		return err
	}
	return s.repo.PermanentDelete(ctx, ref)
}

func (s *Service) ref(kind, id string) (model.RecycleBinRef, error) {
	if s.repo == nil {
		return model.RecycleBinRef{}, ErrNotInitialized
	}
	ref := model.RecycleBinRef{Type: strings.TrimSpace(kind), ID: strings.TrimSpace(id)}
	if err := s.validator.Struct(ref); err != nil {
		return model.RecycleBinRef{}, err
	}
	return ref, nil
}
