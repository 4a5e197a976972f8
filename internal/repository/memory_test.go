package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/minhct267/Tech-Lab-Management/internal/models"
)

func TestMemoryRepositoryAddMintsID(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository[models.Lab, *models.Lab]()

	lab, err := repo.Add(ctx, &models.Lab{Name: "Maker Space"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lab.ID == "" {
		t.Error("expected a minted id")
	}

	fixed, _ := repo.Add(ctx, &models.Lab{ID: "lab-1", Name: "Fixed"})
	if fixed.ID != "lab-1" {
		t.Errorf("pre-set id must be kept, got %s", fixed.ID)
	}
}

func TestMemoryRepositoryGetByID(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository[models.Lab, *models.Lab]()

	lab, _ := repo.Add(ctx, &models.Lab{Name: "Maker Space"})

	got, err := repo.GetByID(ctx, lab.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "Maker Space" {
		t.Errorf("expected Maker Space, got %s", got.Name)
	}

	if _, err := repo.GetByID(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryRepositoryUpdate(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository[models.Lab, *models.Lab]()

	lab, _ := repo.Add(ctx, &models.Lab{Name: "Maker Space"})
	lab.Name = "Renamed"
	if err := repo.Update(ctx, lab); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, _ := repo.GetByID(ctx, lab.ID)
	if got.Name != "Renamed" {
		t.Errorf("expected Renamed, got %s", got.Name)
	}

	if err := repo.Update(ctx, &models.Lab{ID: "missing"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryRepositoryDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository[models.Lab, *models.Lab]()

	lab, _ := repo.Add(ctx, &models.Lab{Name: "Maker Space"})

	deleted, err := repo.Delete(ctx, lab.ID)
	if err != nil || !deleted {
		t.Fatalf("expected delete to succeed, got %v %v", deleted, err)
	}
	if _, err := repo.GetByID(ctx, lab.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}

	deleted, err = repo.Delete(ctx, lab.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted {
		t.Error("second delete must report false")
	}
}

func TestMemoryRepositoryQuery(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository[models.Booking, *models.Booking]()

	for i := 0; i < 5; i++ {
		status := models.BookingConfirmed
		if i%2 == 1 {
			status = models.BookingRejected
		}
		repo.Add(ctx, &models.Booking{LabID: "lab-1", Status: status})
	}

	confirmed, err := repo.Query(ctx, func(b *models.Booking) bool {
		return b.Status == models.BookingConfirmed
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(confirmed) != 3 {
		t.Errorf("expected 3 confirmed, got %d", len(confirmed))
	}
}

func TestMemoryRepositoryConcurrentUse(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository[models.Lab, *models.Lab]()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			lab, _ := repo.Add(ctx, &models.Lab{Name: fmt.Sprintf("lab-%d", i)})
			repo.GetByID(ctx, lab.ID)
			repo.GetAll(ctx)
		}(i)
	}
	wg.Wait()

	all, _ := repo.GetAll(ctx)
	if len(all) != 32 {
		t.Errorf("expected 32 labs, got %d", len(all))
	}
}
