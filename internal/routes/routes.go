package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/studioink/anamnese-api/internal/audit"
	"github.com/studioink/anamnese-api/internal/cache"
	"github.com/studioink/anamnese-api/internal/config"
	"github.com/studioink/anamnese-api/internal/handlers"
	infraRepo "github.com/studioink/anamnese-api/internal/infra/repository"
	"github.com/studioink/anamnese-api/internal/middleware"
	ucAnamnese "github.com/studioink/anamnese-api/internal/usecase/anamnese"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cc *cache.Cache, cfg *config.Config) {

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	anamneseRepo := infraRepo.NewAnamneseGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	submitFichaUC := ucAnamnese.NewSubmitFicha(
		anamneseRepo,
		auditDispatcher,
	)

	listClientesUC := ucAnamnese.NewListClientes(anamneseRepo)
	searchClientesUC := ucAnamnese.NewSearchClientes(anamneseRepo)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	anamneseHandler := handlers.NewAnamneseHandler(submitFichaUC, cfg)
	clienteHandler := handlers.NewClienteHandler(
		anamneseRepo,
		cc,
		listClientesUC,
		searchClientesUC,
	)
	profissionalHandler := handlers.NewProfissionalHandler(db, auditDispatcher)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	api.Use(middleware.OptionalAuth(db))
	{
		// ------------------------------
		// 📋 ANAMNESE
		// ------------------------------
		api.POST("/anamnese-submissions", anamneseHandler.Submit)

		// ------------------------------
		// 👥 CLIENTES
		// ------------------------------
		api.GET("/clients", clienteHandler.GetOrList)
		api.GET("/clients/search", clienteHandler.Search)

		// ------------------------------
		// 🔐 PROFISSIONAIS
		// ------------------------------
		api.POST("/professionals", profissionalHandler.Register)
		api.POST("/professionals/session", profissionalHandler.Login)
		api.GET("/professionals/session", profissionalHandler.Session)
		api.POST("/professionals/password", profissionalHandler.ResetPassword)
		api.POST("/professionals/email-check", profissionalHandler.EmailCheck)
	}
}
