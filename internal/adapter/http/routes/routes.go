package routes

import (
	"log"
	"os"
	"strconv"

	_ "github.com/paveiq/bidmaster/docs" // swagger docs, generated by swag
	"github.com/paveiq/bidmaster/internal/adapter/http/handlers"
	"github.com/paveiq/bidmaster/internal/adapter/persistence/repository"
	"github.com/paveiq/bidmaster/internal/domain/estimating"
	"github.com/paveiq/bidmaster/internal/infrastructure/database"
	"github.com/paveiq/bidmaster/internal/infrastructure/extraction"
	"github.com/paveiq/bidmaster/internal/usecase"
	"github.com/paveiq/bidmaster/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const defaultPort = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := defaultPort
	if v, err := strconv.Atoi(os.Getenv("PORT")); err == nil && v > 0 {
		port = v
	}

	if err := router.Run(":" + strconv.Itoa(port)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	constants, err := estimating.LoadConstants()
	if err != nil {
		log.Fatalf("failed to load estimating constants: %v", err)
	}
	log.Printf("[routes] using constant set %q", constants.Name)
	engine := estimating.NewEngine(constants)

	ddb := database.ConnectDynamoDB()
	projectRepo := repository.NewProjectDynamoRepository(ddb)

	estimateUseCase := usecase.NewEstimateUseCase(projectRepo, engine)
	projectUseCase := usecase.NewProjectUseCase(projectRepo)

	// The OpenAI extractor is optional; without a key the upload pipeline
	// runs on the regex path alone.
	openaiExtractor := extraction.NewOpenAIExtractor(os.Getenv("OPENAI_API_KEY"))
	if openaiExtractor == nil {
		log.Printf("[routes] OPENAI_API_KEY not set, RFP extraction uses regex only")
	}

	intakeUseCase := usecase.NewIntakeUseCase(
		extraction.NewDocumentParser(),
		fieldExtractorOrNil(openaiExtractor),
		extraction.NewRegexExtractor(),
		estimateUseCase,
	)

	estimateHandler := handlers.NewEstimateHandler(estimateUseCase, intakeUseCase)
	projectHandler := handlers.NewProjectHandler(projectUseCase)
	reportHandler := handlers.NewReportHandler(projectUseCase)
	authHandler := handlers.NewAuthHandler(
		getenvDefault("ADMIN_EMAIL", "admin@bidmaster.local"),
		os.Getenv("ADMIN_PASSWORD"),
		os.Getenv("SESSION_SECRET"),
	)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addEstimateRoutes(v1, estimateHandler, reportHandler)
	addAdminRoutes(v1, authHandler, projectHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

// fieldExtractorOrNil keeps a nil *OpenAIExtractor from turning into a
// non-nil interface value in the intake pipeline.
func fieldExtractorOrNil(e *extraction.OpenAIExtractor) interfaces.IFieldExtractor {
	if e == nil {
		return nil
	}
	return e
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
