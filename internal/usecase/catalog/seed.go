package catalog

import (
	"context"

	domain "github.com/Lukas18007/dyschool/internal/domain/catalog"
	"github.com/Lukas18007/dyschool/internal/logger"
)

type SeedResult struct {
	SpecializationsCreated  int
	SpecializationsExisting int
	TopicsCreated           int
	TopicsExisting          int
}

// Seed loads the reference catalog. Existing rows are left untouched.
type Seed struct {
	repo domain.Repository
	log  *logger.Logger
	data []domain.SeedSpecialization
}

func NewSeed(repo domain.Repository, log *logger.Logger) *Seed {
	if log == nil {
		log = logger.Nop()
	}
	return &Seed{repo: repo, log: log, data: domain.InitialCatalog}
}

func (uc *Seed) Execute(ctx context.Context) (SeedResult, error) {
	var res SeedResult

	for _, s := range uc.data {
		spec, created, err := uc.repo.GetOrCreateSpecialization(ctx, s.Name, s.Description)
		if err != nil {
			return res, err
		}
		if created {
			res.SpecializationsCreated++
			uc.log.Info("specialization created", "name", spec.Name)
		} else {
			res.SpecializationsExisting++
			uc.log.Debug("specialization already exists", "name", spec.Name)
		}

		for _, name := range s.Topics {
			topic, created, err := uc.repo.GetOrCreateTopic(ctx, spec.ID, name, domain.TopicDescription(name, spec.Name))
			if err != nil {
				return res, err
			}
			if created {
				res.TopicsCreated++
				uc.log.Info("lesson topic created", "specialization", spec.Name, "name", topic.Name)
			} else {
				res.TopicsExisting++
			}
		}
	}

	return res, nil
}
