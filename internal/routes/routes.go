package routes

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/fortune-club/internal/audit"
	"github.com/BruksfildServices01/fortune-club/internal/auth"
	"github.com/BruksfildServices01/fortune-club/internal/config"
	domainProfile "github.com/BruksfildServices01/fortune-club/internal/domain/profile"
	"github.com/BruksfildServices01/fortune-club/internal/handlers"
	"github.com/BruksfildServices01/fortune-club/internal/infra/imageproc"
	infraRepo "github.com/BruksfildServices01/fortune-club/internal/infra/repository"
	"github.com/BruksfildServices01/fortune-club/internal/metrics"
	"github.com/BruksfildServices01/fortune-club/internal/middleware"
	"github.com/BruksfildServices01/fortune-club/internal/realtime"
	ucAccount "github.com/BruksfildServices01/fortune-club/internal/usecase/account"
	ucConversation "github.com/BruksfildServices01/fortune-club/internal/usecase/conversation"
	ucPost "github.com/BruksfildServices01/fortune-club/internal/usecase/post"
	ucProfile "github.com/BruksfildServices01/fortune-club/internal/usecase/profile"
	ucSkill "github.com/BruksfildServices01/fortune-club/internal/usecase/skill"
	ucUpload "github.com/BruksfildServices01/fortune-club/internal/usecase/upload"
	"github.com/BruksfildServices01/fortune-club/internal/validators"
)

// Deps are the collaborators built outside the router. Limiter and Store
// may be nil, which disables rate limiting and uploads.
type Deps struct {
	DB      *gorm.DB
	Config  *config.Config
	Logger  *slog.Logger
	Limiter ucConversation.Limiter
	Store   ucUpload.ObjectStore
	Hub     *realtime.Hub
}

func RegisterRoutes(r *gin.Engine, deps Deps) {
	db, cfg := deps.DB, deps.Config

	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	hub := deps.Hub
	if hub == nil {
		hub = realtime.NewHub()
	}

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins()))
	r.Use(middleware.CorrelationIDMiddleware())
	r.Use(middleware.SlogLoggerMiddleware(logger))
	r.Use(metrics.GinMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	accountRepo := infraRepo.NewAccountGormRepository(db)
	profileRepo := infraRepo.NewProfileGormRepository(db)
	postRepo := infraRepo.NewPostGormRepository(db)
	conversationRepo := infraRepo.NewConversationGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	tokens := auth.NewTokens(cfg.JWTSecret, cfg.JWTTTL)
	skillPolicy := domainProfile.SkillPolicy(cfg.SkillIDPolicy)

	// ======================================================
	// USE CASES — ACCOUNTS
	// ======================================================
	registerUC := ucAccount.NewRegister(accountRepo, auditDispatcher)
	if cfg.EmailDomainCheck {
		registerUC.WithEmailDomainCheck(validators.NewEmailDomainChecker(nil))
	}
	loginUC := ucAccount.NewLogin(accountRepo)
	getMeUC := ucAccount.NewGetMe(accountRepo)
	listUsersUC := ucAccount.NewListUsers(accountRepo)

	// ======================================================
	// USE CASES — PROFILES & SKILLS
	// ======================================================
	resolver := ucProfile.NewResolver(profileRepo)

	getProfileUC := ucProfile.NewGetMyProfile(resolver)
	updateProfileUC := ucProfile.NewUpdateMyProfile(profileRepo, resolver, skillPolicy)
	assignSkillsUC := ucProfile.NewAssignSkills(profileRepo, resolver, skillPolicy)
	listProvidersUC := ucProfile.NewListProviders(profileRepo)
	searchProvidersUC := ucProfile.NewSearchProviders(profileRepo)

	listSkillsUC := ucSkill.NewListSkills(profileRepo)
	createSkillUC := ucSkill.NewCreateSkill(profileRepo, auditDispatcher)
	deleteSkillUC := ucSkill.NewDeleteSkill(profileRepo, auditDispatcher)

	// ======================================================
	// USE CASES — POSTS & COMMENTS
	// ======================================================
	listPostsUC := ucPost.NewListPosts(postRepo)
	getPostUC := ucPost.NewGetPost(postRepo)
	createPostUC := ucPost.NewCreatePost(postRepo, auditDispatcher)
	updatePostUC := ucPost.NewUpdatePost(postRepo, auditDispatcher)
	deletePostUC := ucPost.NewDeletePost(postRepo, auditDispatcher)
	moderatePostUC := ucPost.NewModeratePost(postRepo, auditDispatcher)

	listCommentsUC := ucPost.NewListComments(postRepo)
	createCommentUC := ucPost.NewCreateComment(postRepo, auditDispatcher)

	// ======================================================
	// USE CASES — CONVERSATIONS
	// ======================================================
	listConversationsUC := ucConversation.NewListConversations(conversationRepo)
	startConversationUC := ucConversation.NewStartConversation(conversationRepo, auditDispatcher)
	getConversationUC := ucConversation.NewGetConversation(conversationRepo)
	listMessagesUC := ucConversation.NewListMessages(conversationRepo)
	sendMessageUC := ucConversation.NewSendMessage(
		conversationRepo,
		deps.Limiter,
		hub,
		auditDispatcher,
	)

	// ======================================================
	// USE CASES — UPLOADS
	// ======================================================
	var uploadUC *ucUpload.UploadImage
	if deps.Store != nil {
		uploadUC = ucUpload.NewUploadImage(
			imageproc.NewProcessor(cfg.UploadMaxDimension),
			deps.Store,
		)
	}

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(registerUC, loginUC, tokens)
	meHandler := handlers.NewMeHandler(getMeUC, listUsersUC)
	profileHandler := handlers.NewProfileHandler(getProfileUC, updateProfileUC, assignSkillsUC)
	tellerHandler := handlers.NewTellerHandler(listProvidersUC, searchProvidersUC)
	skillHandler := handlers.NewSkillHandler(listSkillsUC, createSkillUC, deleteSkillUC)

	postHandler := handlers.NewPostHandler(
		listPostsUC,
		getPostUC,
		createPostUC,
		updatePostUC,
		deletePostUC,
		moderatePostUC,
	)
	commentHandler := handlers.NewCommentHandler(listCommentsUC, createCommentUC)

	conversationHandler := handlers.NewConversationHandler(
		listConversationsUC,
		startConversationUC,
		getConversationUC,
		listMessagesUC,
		sendMessageUC,
	)

	uploadHandler := handlers.NewUploadHandler(uploadUC, cfg.UploadMaxBytes)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)
	wsHandler := handlers.NewWSHandler(hub, tokens)

	// ======================================================
	// OPERATIONAL
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "time": time.Now().UTC()})
	})
	r.GET("/metrics", metrics.Handler())

	// ======================================================
	// API (JSON)
	// ======================================================
	requireAuth := middleware.AuthMiddleware(tokens)
	optionalAuth := middleware.OptionalAuth(tokens)

	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)
		api.GET("/skills", skillHandler.List)
		api.GET("/ws", wsHandler.Connect)

		// ------------------------------
		// OPTIONAL AUTH (feed)
		// ------------------------------
		feed := api.Group("")
		feed.Use(optionalAuth)
		{
			feed.GET("/posts", postHandler.List)
			feed.GET("/posts/:id", postHandler.Get)
			feed.GET("/posts/:id/comments", commentHandler.List)
		}

		// ------------------------------
		// AUTHENTICATED
		// ------------------------------
		secured := api.Group("")
		secured.Use(requireAuth)
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/profile", profileHandler.Get)
			secured.PATCH("/profile", profileHandler.Update)
			secured.PUT("/profile/skills", profileHandler.AssignSkills)

			secured.GET("/tellers/suggestions", tellerHandler.Suggestions)
			secured.GET("/tellers/search", tellerHandler.Search)

			secured.POST("/posts", postHandler.Create)
			secured.PATCH("/posts/:id", postHandler.Update)
			secured.DELETE("/posts/:id", postHandler.Delete)
			secured.POST("/posts/:id/comments", commentHandler.Create)

			secured.GET("/conversations", conversationHandler.List)
			secured.POST("/conversations", conversationHandler.Start)
			secured.GET("/conversations/:id", conversationHandler.Get)
			secured.GET("/conversations/:id/messages", conversationHandler.ListMessages)
			secured.POST("/conversations/:id/messages", conversationHandler.SendMessage)

			secured.POST("/uploads", uploadHandler.Upload)

			// ------------------------------
			// PRIVILEGED (checked in the use cases
			// against the stored user)
			// ------------------------------
			privileged := secured.Group("")
			privileged.Use(middleware.RefreshActor(accountRepo))
			{
				privileged.GET("/users", meHandler.ListUsers)
				privileged.POST("/skills", skillHandler.Create)
				privileged.DELETE("/skills/:id", skillHandler.Delete)
				privileged.PATCH("/admin/posts/:id/status", postHandler.Moderate)
				privileged.GET("/admin/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
