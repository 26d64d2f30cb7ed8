package main

import (
	"context"
	"log"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/raihanmz/portfolio-backend/config"
	"github.com/raihanmz/portfolio-backend/internal/api/handlers"
	"github.com/raihanmz/portfolio-backend/internal/api/middleware"
	"github.com/raihanmz/portfolio-backend/internal/api/routes"
	"github.com/raihanmz/portfolio-backend/internal/cache"
	"github.com/raihanmz/portfolio-backend/internal/logger"
	"github.com/raihanmz/portfolio-backend/internal/models"
	mongorepo "github.com/raihanmz/portfolio-backend/internal/repositories/mongo"
	pgrepo "github.com/raihanmz/portfolio-backend/internal/repositories/postgres"
	"github.com/raihanmz/portfolio-backend/internal/revalidate"
	"github.com/raihanmz/portfolio-backend/internal/services"
	"github.com/raihanmz/portfolio-backend/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	l := logger.New()

	// PostgreSQL
	db, err := config.OpenPostgres(cfg.PostgresURI)
	if err != nil {
		log.Fatalf("PostgreSQL init error: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Profile{}, &models.Project{}, &models.Skill{},
		&models.Education{}, &models.Experience{}, &models.ContactMessage{},
		&models.Admin{},
	); err != nil {
		log.Fatalf("migration error: %v", err)
	}
	l.Info("PostgreSQL connected")

	// Page cache: Redis when configured, in-memory otherwise
	var pageCache cache.Cache
	if cfg.RedisAddr != "" {
		rdb, err := config.OpenRedis(cfg.RedisAddr)
		if err != nil {
			log.Fatalf("Redis init error: %v", err)
		}
		pageCache = cache.NewRedisCache(rdb)
		l.Info("Redis connected")
	} else {
		pageCache = cache.NewMemoryCache()
		l.Warn("REDIS_ADDR not set, using in-memory page cache")
	}

	// Audit trail: optional, Mongo-backed
	var auditRepo mongorepo.AuditRepository
	if cfg.MongoURI != "" {
		mc, err := config.OpenMongo(cfg.MongoURI)
		if err != nil {
			log.Fatalf("MongoDB init error: %v", err)
		}
		mdb := mc.Database(cfg.MongoDB)
		if err := config.EnsureMongoIndexes(mdb); err != nil {
			log.Fatalf("MongoDB index error: %v", err)
		}
		auditRepo = mongorepo.NewAuditRepo(mdb)
		l.Info("MongoDB connected")
	} else {
		l.Warn("MONGO_URI not set, audit trail disabled")
	}

	// Image storage: GCS when a bucket is configured, local disk otherwise
	var uploader storage.Uploader
	if cfg.BlobBucket != "" {
		gcs, err := storage.NewGCSUploader(context.Background(), cfg.BlobBucket, cfg.GoogleCredsFile)
		if err != nil {
			log.Fatalf("GCS init error: %v", err)
		}
		defer gcs.Close()
		uploader = gcs
		l.WithField("bucket", cfg.BlobBucket).Info("GCS uploads enabled")
	} else {
		local, err := storage.NewLocalUploader(cfg.PublicDir)
		if err != nil {
			log.Fatalf("local uploads init error: %v", err)
		}
		uploader = local
		l.WithField("dir", cfg.PublicDir).Warn("BLOB_BUCKET not set, using local uploads")
	}

	// Repositories
	profileRepo := pgrepo.NewProfileRepo(db)
	projectRepo := pgrepo.NewProjectRepo(db)
	skillRepo := pgrepo.NewSkillRepo(db)
	educationRepo := pgrepo.NewEducationRepo(db)
	experienceRepo := pgrepo.NewExperienceRepo(db)
	messageRepo := pgrepo.NewMessageRepo(db)
	adminRepo := pgrepo.NewAdminRepo(db)

	// Services
	reval := revalidate.New(pageCache, l)
	profileSvc := services.NewProfileService(profileRepo, reval)
	projectSvc := services.NewProjectService(projectRepo, reval)
	skillSvc := services.NewSkillService(skillRepo, reval)
	educationSvc := services.NewEducationService(educationRepo, reval)
	experienceSvc := services.NewExperienceService(experienceRepo, reval)
	messageSvc := services.NewMessageService(messageRepo, reval)
	authSvc := services.NewAuthService(adminRepo)
	uploadSvc := services.NewUploadService(uploader)
	auditSvc := services.NewAuditService(auditRepo, cfg.AuditTTL, l)
	pageSvc := services.NewPageService(profileRepo, projectRepo, skillRepo, educationRepo, experienceRepo, pageCache, cfg.PageCacheTTL, l)
	dashboardSvc := services.NewDashboardService(profileRepo, projectRepo, skillRepo, educationRepo, experienceRepo, messageRepo, l)

	sessions := middleware.NewSessionManager(cfg.SessionSecret, 0)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(l))

	// local uploads are served straight from disk
	if cfg.BlobBucket == "" {
		r.Static("/uploads", filepath.Join(cfg.PublicDir, "uploads"))
	}

	routes.RegisterRoutes(r, routes.Deps{
		Sessions:   sessions,
		Auth:       handlers.NewAuthHandler(authSvc, sessions),
		Pages:      handlers.NewPagesHandler(pageSvc, profileSvc),
		Profile:    handlers.NewProfileHandler(profileSvc, uploadSvc),
		Project:    handlers.NewProjectHandler(projectSvc, uploadSvc),
		Skill:      handlers.NewSkillHandler(skillSvc),
		Education:  handlers.NewEducationHandler(educationSvc),
		Experience: handlers.NewExperienceHandler(experienceSvc),
		Message:    handlers.NewMessageHandler(messageSvc),
		Dashboard:  handlers.NewDashboardHandler(dashboardSvc, auditSvc),
		Audit:      middleware.AuditTrail(auditSvc),
	})

	// CORS for the separately hosted frontend
	corsMW := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	l.WithField("port", cfg.Port).Info("server listening")
	if err := http.ListenAndServe(":"+cfg.Port, corsMW.Handler(r)); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
