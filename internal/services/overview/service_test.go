package overview

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/Taha-Raees/zetratech-front/internal/domain/model"
)

// gate makes every fetch wait for the others, proving they run concurrently.
type gate struct {
	wg sync.WaitGroup
}

func (g *gate) arrive() {
	g.wg.Done()
	g.wg.Wait()
}

type storesFake struct{ g *gate }

func (f storesFake) List(context.Context) ([]model.Store, error) {
	f.g.arrive()
	return []model.Store{{ID: "1", SubscriptionStatus: "active"}, {ID: "2", SubscriptionStatus: "suspended"}, {ID: "3", SubscriptionStatus: "active"}}, nil
}

type packagesFake struct{ g *gate }

func (f packagesFake) List(context.Context) ([]model.SubscriptionPackage, error) {
	f.g.arrive()
	return []model.SubscriptionPackage{{ID: "p1", IsActive: true}, {ID: "p2"}}, nil
}

type usersFake struct {
	g   *gate
	err error
}

func (f usersFake) List(context.Context) ([]model.User, error) {
	f.g.arrive()
	return []model.User{{ID: "u1", IsActive: true}}, f.err
}

func TestLoadFetchesConcurrently(t *testing.T) {
	t.Parallel()

	g := &gate{}
	g.wg.Add(3)

	out, err := NewService(storesFake{g}, packagesFake{g}, usersFake{g: g}).Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := model.Overview{TotalStores: 3, ActiveStores: 2, SuspendedStores: 1, TotalPackages: 2, ActivePackages: 1, TotalUsers: 1, ActiveUsers: 1}
	if out != want {
		t.Fatalf("unexpected overview: %+v", out)
	}
}

func TestLoadReturnsFirstError(t *testing.T) {
	t.Parallel()

	g := &gate{}
	g.wg.Add(3)
	boom := errors.New("boom")

	_, err := NewService(storesFake{g}, packagesFake{g}, usersFake{g: g, err: boom}).Load(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("expected users error, got %v", err)
	}
}
