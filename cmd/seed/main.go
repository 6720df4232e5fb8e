package main

import (
	"context"
	"time"

	"go.uber.org/zap"

	"artisticdb/internal/config"
	"artisticdb/internal/db"
	"artisticdb/internal/logger"
	"artisticdb/internal/model"
	"artisticdb/internal/repository"
)

// demoClasses are inserted into an empty classes collection. They are
// approved so they show up on the public listing straight away.
var demoClasses = []model.ClassDetails{
	{Name: "Watercolor Foundations", Image: "https://images.unsplash.com/photo-1513364776144-60967b0f800f", AvailableSeats: 20, Price: 40},
	{Name: "Wheel-Thrown Pottery", Image: "https://images.unsplash.com/photo-1565193566173-7a0ee3dbe261", AvailableSeats: 8, Price: 65.5},
	{Name: "Figure Drawing", Image: "https://images.unsplash.com/photo-1515405295579-ba7b45403062", AvailableSeats: 15, Price: 35},
	{Name: "Intro to Oil Painting", Image: "https://images.unsplash.com/photo-1579783902614-a3fb3927b6a5", AvailableSeats: 12, Price: 55},
}

func main() {
	envErr := config.LoadEnvFile()
	cfg := config.Load()

	log, err := logger.New(cfg.IsProduction())
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	if envErr != nil {
		log.Warn("ignoring unreadable .env file", zap.Error(envErr))
	}

	log.Info("starting seed")

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	client, err := db.NewMongo(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer func() { _ = client.Disconnect(context.Background()) }()
	database := client.Database(cfg.DatabaseName)
	log.Info("connected to database", zap.String("database", cfg.DatabaseName))

	if err := db.EnsureIndexes(ctx, database); err != nil {
		log.Fatal("failed to ensure indexes", zap.Error(err))
	}
	log.Info("indexes ensured")

	if cfg.SeedAdminEmail == "" {
		log.Warn("SEED_ADMIN_EMAIL not set, skipping admin user")
	} else {
		if err := db.SeedAdmin(ctx, database, cfg.SeedAdminEmail, cfg.SeedAdminName); err != nil {
			log.Fatal("failed to seed admin", zap.Error(err))
		}
		log.Info("admin user ready", zap.String("email", model.NormalizeEmail(cfg.SeedAdminEmail)))
	}

	classRepo := repository.NewClassRepository(database)
	existing, err := classRepo.List(ctx)
	if err != nil {
		log.Fatal("failed to list classes", zap.Error(err))
	}
	if len(existing) > 0 {
		log.Info("classes already present, skipping demo classes", zap.Int("count", len(existing)))
		return
	}

	instructor := model.NormalizeEmail(cfg.SeedAdminEmail)
	created, skipped := 0, 0
	for _, details := range demoClasses {
		details.InstructorEmail = instructor
		details.InstructorName = cfg.SeedAdminName
		details.Status = model.ClassStatusApproved

		class := &model.Class{ClassDetails: details, CreatedAt: time.Now().UTC()}
		if _, err := classRepo.Create(ctx, class); err != nil {
			log.Warn("failed to create demo class", zap.String("class", details.Name), zap.Error(err))
			skipped++
			continue
		}
		created++
	}

	log.Info("seed completed", zap.Int("created", created), zap.Int("skipped", skipped))
}
