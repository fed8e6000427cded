package main

import (
	"delivery-cost-service/internal/api"
	"delivery-cost-service/internal/config"
	"delivery-cost-service/internal/services"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// main is the application composition root.
// It loads the delivery topology and wires the stateless cost estimator
// behind the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg := config.Default()
	if path := os.Getenv("TOPOLOGY_PATH"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			log.Fatal(err)
		}
		cfg = loaded
		log.Printf("Loaded topology from %s", path)
	} else if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	port := getEnv("PORT", "3000")

	net := cfg.Network()
	estimator := &services.CostEstimator{
		Table:    net,
		Catalog:  cfg.ProductCatalog(),
		Centers:  net.Centers,
		Hub:      net.Hub,
		UnitCost: net.UnitCost,
	}

	router := api.NewRouter(estimator)

	// Generous write timeout is unnecessary here: requests are CPU-bound and
	// sub-millisecond against the fixed topology.
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
