package catalog

import (
	"context"
	"testing"

	domain "github.com/Lukas18007/dyschool/internal/domain/catalog"
	"github.com/Lukas18007/dyschool/internal/infra/repository"
	"github.com/Lukas18007/dyschool/internal/models"
	"github.com/Lukas18007/dyschool/internal/testutil"
)

func countTopics() int {
	n := 0
	for _, s := range domain.InitialCatalog {
		n += len(s.Topics)
	}
	return n
}

func TestSeedIsIdempotent(t *testing.T) {
	db := testutil.NewDB(t)
	uc := NewSeed(repository.NewCatalogGormRepository(db), nil)
	ctx := context.Background()

	first, err := uc.Execute(ctx)
	if err != nil {
		t.Fatalf("first seed: %v", err)
	}
	if first.SpecializationsCreated != 8 || first.TopicsCreated != countTopics() {
		t.Fatalf("unexpected first run: %+v", first)
	}

	second, err := uc.Execute(ctx)
	if err != nil {
		t.Fatalf("second seed: %v", err)
	}
	if second.SpecializationsCreated != 0 || second.TopicsCreated != 0 {
		t.Fatalf("second run must not create rows: %+v", second)
	}
	if second.SpecializationsExisting != 8 || second.TopicsExisting != countTopics() {
		t.Fatalf("unexpected second run: %+v", second)
	}

	var piano models.Specialization
	if err := db.Where("name = ?", "Piano").First(&piano).Error; err != nil {
		t.Fatalf("Piano missing: %v", err)
	}
	var topic models.LessonTopic
	if err := db.Where("specialization_id = ? AND name = ?", piano.ID, "Técnica Básica").
		First(&topic).Error; err != nil {
		t.Fatalf("Piano/Técnica Básica missing: %v", err)
	}
	if topic.Description != "Técnica Básica para Piano" {
		t.Fatalf("unexpected description: %q", topic.Description)
	}
}

func TestSeedKeepsExistingDescriptions(t *testing.T) {
	db := testutil.NewDB(t)
	if err := db.Create(&models.Specialization{Name: "Piano", Description: "custom"}).Error; err != nil {
		t.Fatalf("create: %v", err)
	}

	res, err := NewSeed(repository.NewCatalogGormRepository(db), nil).Execute(context.Background())
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if res.SpecializationsExisting != 1 {
		t.Fatalf("expected Piano to be reported as existing: %+v", res)
	}

	var piano models.Specialization
	db.Where("name = ?", "Piano").First(&piano)
	if piano.Description != "custom" {
		t.Fatalf("existing description overwritten: %q", piano.Description)
	}
}

func TestListTopics(t *testing.T) {
	db := testutil.NewDB(t)
	repo := repository.NewCatalogGormRepository(db)
	ctx := context.Background()

	if _, err := NewSeed(repo, nil).Execute(ctx); err != nil {
		t.Fatalf("seed: %v", err)
	}

	var flauta models.Specialization
	db.Where("name = ?", "Flauta").First(&flauta)

	topics, err := NewListTopics(repo).Execute(ctx, flauta.ID)
	if err != nil {
		t.Fatalf("list topics: %v", err)
	}
	if len(topics) != 7 {
		t.Fatalf("expected 7 flute topics, got %d", len(topics))
	}
	for _, topic := range topics {
		if topic.SpecializationID != flauta.ID {
			t.Fatalf("topic %q belongs to another specialization", topic.Name)
		}
	}

	for _, id := range []uint{0, 9999} {
		topics, err := NewListTopics(repo).Execute(ctx, id)
		if err != nil {
			t.Fatalf("id %d: unexpected error %v", id, err)
		}
		if len(topics) != 0 {
			t.Fatalf("id %d: expected no topics, got %d", id, len(topics))
		}
	}

	specs, err := NewListSpecializations(repo).Execute(ctx)
	if err != nil {
		t.Fatalf("list specializations: %v", err)
	}
	if len(specs) != 8 || len(specs[0].Topics) == 0 {
		t.Fatalf("expected 8 specializations with topics, got %d", len(specs))
	}
}
