package main

import (
	"github.com/gin-gonic/gin"

	"blogapi/internal/config"
	"blogapi/internal/database"
	"blogapi/internal/middleware"
	"blogapi/internal/modules/admin"
	"blogapi/internal/modules/auth"
	"blogapi/internal/modules/category"
	"blogapi/internal/modules/comment"
	"blogapi/internal/modules/media"
	"blogapi/internal/modules/post"
	"blogapi/internal/modules/user"
	jwtsvc "blogapi/internal/pkg/jwt"
	"blogapi/internal/pkg/logger"
	"blogapi/internal/pkg/mailer"
	"blogapi/internal/repository"
)

func main() {
	logger.Init()

	cfg, err := config.Load()
	if err != nil {
		logger.Log.WithError(err).Fatal("failed to load configuration")
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Log.WithError(err).Fatal("failed to connect to database")
	}
	if err := database.Migrate(db); err != nil {
		logger.Log.WithError(err).Fatal("failed to run migrations")
	}

	userRepo := repository.NewUserRepository(db)
	verificationRepo := repository.NewEmailVerificationRepository(db)
	refreshTokenRepo := repository.NewRefreshTokenRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	mediaRepo := repository.NewMediaRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)

	var mail mailer.Mailer
	if cfg.SMTPHost != "" {
		mail = mailer.NewSMTPMailer(mailer.SMTPConfig{
			Host:        cfg.SMTPHost,
			Port:        cfg.SMTPPort,
			Username:    cfg.SMTPUser,
			Password:    cfg.SMTPPass,
			From:        cfg.EmailFrom,
			FrontendURL: cfg.FrontendURL,
		})
	} else {
		mail = mailer.NewDevConsoleMailer()
	}

	authService := auth.NewService(
		userRepo,
		verificationRepo,
		refreshTokenRepo,
		j,
		mail,
		cfg.RefreshTokenTTL,
		config.VerificationTokenTTL,
	)
	authHandler := auth.NewHandler(authService)

	mediaService := media.NewService(mediaRepo, postRepo, cfg.UploadsDir, cfg.StaticBase+"/uploads")
	mediaHandler := media.NewHandler(mediaService)

	userService := user.NewService(userRepo, refreshTokenRepo, postRepo, commentRepo, mediaService)
	userHandler := user.NewHandler(userService)

	postService := post.NewService(postRepo, categoryRepo)
	postHandler := post.NewHandler(postService)

	commentService := comment.NewService(commentRepo, postRepo)
	commentHandler := comment.NewHandler(commentService)

	categoryService := category.NewService(categoryRepo)
	categoryHandler := category.NewHandler(categoryService)

	adminService := admin.NewService(userRepo, postRepo, commentRepo)
	adminHandler := admin.NewHandler(adminService, categoryService)

	if config.IsProdLike(cfg.AppEnv) {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())

	r.Static(cfg.StaticBase+"/uploads", cfg.UploadsDir)

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)
		categoryHandler.RegisterRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.Authenticate(j))
		{
			userHandler.RegisterRoutes(protected)
			mediaHandler.RegisterRoutes(protected)

			adminGroup := protected.Group("/admin")
			adminGroup.Use(middleware.AdminOnly())
			adminHandler.RegisterRoutes(adminGroup)
		}

		// post and comment split their endpoints between the groups
		postHandler.RegisterRoutes(v1, protected)
		commentHandler.RegisterRoutes(v1, protected)
	}

	logger.Log.WithField("port", cfg.Port).Info("starting API server")
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Log.WithError(err).Fatal("server stopped")
	}
}
