// Command seed loads the initial catalog of specializations and topics.
// Running it again only adds what is missing.
package main

import (
	"context"
	"log"

	"github.com/Lukas18007/dyschool/internal/config"
	dbpkg "github.com/Lukas18007/dyschool/internal/db"
	infraRepo "github.com/Lukas18007/dyschool/internal/infra/repository"
	"github.com/Lukas18007/dyschool/internal/logger"
	ucCatalog "github.com/Lukas18007/dyschool/internal/usecase/catalog"
)

func main() {
	cfg := config.Load()

	appLog, err := logger.New(cfg.LogMode)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer appLog.Sync()

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		appLog.Fatal("database unavailable", "error", err)
	}

	res, err := ucCatalog.NewSeed(infraRepo.NewCatalogGormRepository(db), appLog).Execute(context.Background())
	if err != nil {
		appLog.Fatal("seed failed", "error", err)
	}

	appLog.Info("catalog seed finished",
		"specializations_created", res.SpecializationsCreated,
		"specializations_existing", res.SpecializationsExisting,
		"topics_created", res.TopicsCreated,
		"topics_existing", res.TopicsExisting,
	)
}
