package recyclebin

import (
	"context"
	"errors"
	"testing"

	"github.com/Taha-Raees/zetratech-front/internal/domain/model"
	"github.com/Taha-Raees/zetratech-front/internal/pkg/validate"
)

type fakeRepo struct {
	items    []model.RecycleBinItem
	restored []model.RecycleBinRef
	purged   []model.RecycleBinRef
}

func (r *fakeRepo) List(context.Context) ([]model.RecycleBinItem, error) { return r.items, nil }

func (r *fakeRepo) Restore(_ context.Context, ref model.RecycleBinRef) error {
	r.restored = append(r.restored, ref)
	return nil
}

func (r *fakeRepo) PermanentDelete(_ context.Context, ref model.RecycleBinRef) error {
	r.purged = append(r.purged, ref)
	return nil
}

func TestListGroupsByType(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{items: []model.RecycleBinItem{
		{ID: "1", Type: "user"},
		{ID: "2", Type: "store"},
		{ID: "3", Type: "user"},
	}}

	groups, err := NewService(repo).List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(groups) != 2 || groups[0].Type != "store" || len(groups[1].Items) != 2 {
		t.Fatalf("unexpected groups: %+v", groups)
	}
}

func TestRestoreAndPurgeValidateRef(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{}
	svc := NewService(repo)

	if err := svc.Restore(context.Background(), "store", ""); !errors.Is(err, validate.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if err := svc.Restore(context.Background(), " store ", "s1"); err != nil {
		t.Fatalf("restore: %v", err)
	}
	if err := svc.PermanentDelete(context.Background(), "user", "u1"); err != nil {
		t.Fatalf("purge: %v", err)
	}
	if repo.restored[0] != (model.RecycleBinRef{Type: "store", ID: "s1"}) || repo.purged[0].ID != "u1" {
		t.Fatalf("unexpected calls: %+v %+v", repo.restored, repo.purged)
	}
}
