package main

import (
	"fmt"
	"log"

	"asset-app/config"
	"asset-app/controllers/idgen"
	"asset-app/database"
	"asset-app/migration"
	"asset-app/routes"
	"asset-app/scanner"
	"asset-app/wms/master/company"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func main() {

	config.LoadConfig()

	app := fiber.New()

	database.EnsureDatabaseExists(config.DBName)

	db, err := database.GetDBConnection()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("Failed to auto migrate: %v", err)
	}

	idgen.Init()
	company.SeedCompany(db)
	database.RunSeeders(db)

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	scanManager := scanner.NewManager(db, logger)

	config.SetupCORS(app)

	routes.SetupAuthRoutes(app, db)
	routes.SetupAssetTagRoutes(app, db)
	routes.SetupEquipmentRoutes(app, db)
	routes.SetupCaseRoutes(app, db)
	routes.SetupArticleRoutes(app, db)
	routes.SetupLocationRoutes(app, db)
	routes.SetupJobRoutes(app, db)
	routes.SetupMobileScanRoutes(app, db, scanManager, logger)
	company.SetupCompanyRoutes(app, db)

	port := config.APP_PORT
	fmt.Println("🚀 Server running on port " + port)

	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}

}
