package app

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"variant-studio/app/controller"
	"variant-studio/app/router"
	"variant-studio/compositor"
	"variant-studio/config"
	"variant-studio/db"
	"variant-studio/repository"
	"variant-studio/service"
	"variant-studio/shipping"
)

// Initialize initializes the application and registers its routes on mux
func Initialize(cfg *config.Config, mux *http.ServeMux) error {
	// Initialize database connection
	if err := db.InitDB(cfg); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	categories, err := shipping.LoadCategoryTable(cfg.CategoriesFile)
	if err != nil {
		return fmt.Errorf("failed to load categories: %w", err)
	}
	pricer, err := shipping.ParseStrategy(cfg.ShippingStrategy, categories)
	if err != nil {
		return err
	}
	log.Printf("✓ Shipping strategy: %s", pricer.Name())

	store, err := service.NewVariantStore(cfg.OutputDir)
	if err != nil {
		return err
	}

	// Drive publishing is optional
	var drive service.DriveServiceInterface
	if cfg.DriveEnabled() {
		driveService, err := service.NewDriveService(context.Background(), cfg.CredentialsPath)
		if err != nil {
			return err
		}
		drive = driveService
		log.Printf("✓ Archives will be published to Drive folder %s", cfg.DriveFolderID)
	}

	// Initialize repository
	productRepo := repository.NewProductRepository(db.DB, cfg.DBDriver)

	// Initialize services
	variantService := service.NewVariantService(compositor.New(pricer), cfg.BatchWorkers, cfg.BatchTimeout, cfg.FailurePolicy)
	productService := service.NewProductService(productRepo, variantService, store, categories, cfg.VariantCount)
	archiveService := service.NewArchiveService(variantService, cfg.WorkDir, service.NewSheetRenderer(cfg.ChromePath), drive, cfg.DriveFolderID)

	// Create controllers
	controllers := &router.Controllers{
		Template: controller.NewTemplateController(categories),
		Shipping: controller.NewShippingController(),
		Product:  controller.NewProductController(productService),
		Variant:  controller.NewVariantController(archiveService, variantService, store, cfg.VariantCount),
	}

	// Setup routes using standard http router
	router.SetupRoutes(mux, controllers)

	return nil
}
