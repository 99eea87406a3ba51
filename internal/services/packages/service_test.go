package packages

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/Taha-Raees/zetratech-front/internal/domain/model"
	"github.com/Taha-Raees/zetratech-front/internal/pkg/validate"
)

type fakeRepo struct {
	created []model.PackageInput
	deleted []string
}

func (r *fakeRepo) List(context.Context) ([]model.SubscriptionPackage, error) { return nil, nil }

func (r *fakeRepo) Get(_ context.Context, id string) (model.SubscriptionPackage, error) {
	return model.SubscriptionPackage{ID: id}, nil
}

func (r *fakeRepo) Create(_ context.Context, input model.PackageInput) (model.SubscriptionPackage, error) {
	r.created = append(r.created, input)
	return model.SubscriptionPackage{ID: "p1", Name: input.Name, Currency: input.Currency}, nil
}

func (r *fakeRepo) Update(_ context.Context, id string, _ model.PackageUpdate) (model.SubscriptionPackage, error) {
	return model.SubscriptionPackage{ID: id}, nil
}

func (r *fakeRepo) Delete(_ context.Context, id string) error {
	r.deleted = append(r.deleted, id)
	return nil
}

func TestCreateNormalizesInput(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{}
	pkg, err := NewService(repo).Create(context.Background(), model.PackageInput{
		Name:     " Pro ",
		Price:    49,
		Currency: "usd",
		Features: []string{" Reports ", "", "API"},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if pkg.Currency != "USD" || pkg.Name != "Pro" {
		t.Fatalf("unexpected package: %+v", pkg)
	}
	if !reflect.DeepEqual(repo.created[0].Features, []string{"Reports", "API"}) {
		t.Fatalf("features not cleaned: %v", repo.created[0].Features)
	}
}

func TestCreateRejectsNegativeValues(t *testing.T) {
	t.Parallel()

	_, err := NewService(&fakeRepo{}).Create(context.Background(), model.PackageInput{Name: "Basic", Price: -1, Currency: "USD"})
	if !errors.Is(err, validate.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestActiveAndParseFeatures(t *testing.T) {
	t.Parallel()

	items := []model.SubscriptionPackage{{ID: "a", IsActive: true}, {ID: "b"}}
	if got := Active(items); len(got) != 1 || got[0].ID != "a" {
		t.Fatalf("unexpected active packages: %+v", got)
	}
	if got := ParseFeatures("POS, Inventory\nReports,,"); !reflect.DeepEqual(got, []string{"POS", "Inventory", "Reports"}) {
		t.Fatalf("unexpected features: %v", got)
	}
}

func TestDeleteTrimsAndRequiresID(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{}
	svc := NewService(repo)
	if err := svc.Delete(context.Background(), "   "); !errors.Is(err, validate.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, err := svc.Get(context.Background(), ""); !errors.Is(err, validate.ErrValidation) {
		t.Fatalf("expected validation error for get, got %v", err)
	}
	if err := svc.Delete(context.Background(), " p1 "); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(repo.deleted) != 1 || repo.deleted[0] != "p1" {
		t.Fatalf("unexpected deletes: %v", repo.deleted)
	}
}
