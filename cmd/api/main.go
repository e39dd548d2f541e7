package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"jobsearchapi/internal/config"
	handlers "jobsearchapi/internal/http/handler"
	"jobsearchapi/internal/http/middleware"
	"jobsearchapi/internal/llm"
	otelinit "jobsearchapi/internal/otel"
	"jobsearchapi/internal/scrape"
	"jobsearchapi/internal/search"
	"jobsearchapi/internal/service"
	"jobsearchapi/internal/storage"
)

func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	shutdownTracing, err := otelinit.Init(context.Background(), time.UTC)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil {
			log.Printf("tracing shutdown: %v", err)
		}
	}()

	// Document store on the local file system, guarded by the magic-byte sniffer.
	disk, err := storage.NewDisk(cfg.Upload)
	if err != nil {
		log.Fatalf("failed to initialize document store: %v", err)
	}
	sniffer := storage.NewSniffer(cfg.Upload.AllowedMediaTypes)
	docSvc := service.NewDocumentService(disk, sniffer)

	// Search and LLM credentials are optional: without them the document
	// endpoints still work and the search/analysis endpoints return errors.
	var provider search.Provider
	if p, err := search.NewProvider(cfg.Search); err != nil {
		log.Printf("search provider disabled: %v", err)
	} else {
		provider = p
	}

	var optimizer service.QueryOptimizer
	var extractor service.FieldExtractor
	if prompter, err := llm.NewPrompter(cfg.LLM); err != nil {
		log.Printf("llm prompting disabled: %v", err)
	} else {
		optimizer = prompter
		extractor = prompter
	}

	jobSvc := service.NewJobSearchService(provider, optimizer)

	scrapeClient := scrape.NewClient()
	analysisSvc := service.NewJobAnalysisService(
		scrape.NewJobScraper(scrapeClient),
		scrape.NewFormScraper(scrapeClient),
		extractor,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ErrorHandler: handlers.ErrorHandler(),
		// Leave headroom over the document ceiling for multipart framing; the
		// exact limit is enforced during the streamed write.
		BodyLimit: int(cfg.Upload.MaxFileSizeBytes) + 1024*1024,
	})

	// Register global middleware
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger())
	app.Use(otelfiber.Middleware())

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	promMiddleware, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Fatalf("failed to register metrics: %v", err)
	}
	app.Use(promMiddleware.Handler())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	handlers.RegisterRoutes(app, cfg, docSvc, jobSvc, analysisSvc)

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
