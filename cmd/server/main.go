package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/MosaabBleik/asset-manager/internal/cache"
	"github.com/MosaabBleik/asset-manager/internal/database"
	"github.com/MosaabBleik/asset-manager/internal/handlers"
	"github.com/MosaabBleik/asset-manager/internal/middleware"
	"github.com/MosaabBleik/asset-manager/internal/models"
	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"
)

func main() {
	// Load env vars
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Connect to database
	db := database.Connect()

	// Auto migration
	err := db.AutoMigrate(&models.Asset{})
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	// List cache, enabled only when REDIS_ADDR is set
	var redisClient *redis.Client
	if os.Getenv("REDIS_ADDR") != "" {
		redisClient, err = cache.InitRedis()
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
	} else {
		log.Println("REDIS_ADDR not set, list cache disabled")
	}

	assetHandler := &handlers.AssetHandler{
		DB:          db,
		RedisClient: redisClient,
		StrictMerge: os.Getenv("UPDATE_STRICT_MERGE") == "true",
	}

	// Router
	r := mux.NewRouter()

	// CRUD handlers
	r.HandleFunc("/assets", assetHandler.ListAssets).Methods("GET")
	r.HandleFunc("/assets", assetHandler.CreateAsset).Methods("POST")
	r.HandleFunc("/assets/{id}", assetHandler.GetAsset).Methods("GET")
	r.HandleFunc("/assets/{id}", assetHandler.UpdateAsset).Methods("PUT")
	r.HandleFunc("/assets/{id}", assetHandler.DeleteAsset).Methods("DELETE")

	// Health check
	r.HandleFunc("/health", assetHandler.HealthCheck).Methods("GET")

	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "Asset Manager Backend is running")
	}).Methods("GET")

	handler := middleware.RequestID(middleware.Logger(middleware.CORS(r)))

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	portStr := fmt.Sprintf(":%s", port)

	fmt.Println("Server started at :", port)
	log.Fatal(http.ListenAndServe(portStr, handler))
}
