package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"commerce-intent/internal/audit"
	"commerce-intent/internal/config"
	"commerce-intent/internal/handlers"
	"commerce-intent/internal/llm"
	"commerce-intent/internal/pipeline"
	"commerce-intent/internal/store"
	"commerce-intent/internal/transport"
)

func main() {
	// Load .env file if it exists (for development)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	log.Println("🚀 Starting Commerce Intent Service...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}
	log.Printf("📋 Service: %s", cfg.ServiceName)
	log.Printf("📡 NATS URL: %s", cfg.NatsURL)
	log.Printf("⏰ Reference time: %s", cfg.ReferenceTime.Format("2006-01-02T15:04:05Z"))
	log.Printf("🤖 LLM provider: %s", cfg.LLMProvider)

	// Load catalog and order store
	log.Println("📦 Loading catalog and orders...")
	st, err := store.Load(cfg.ProductsPath, cfg.OrdersPath)
	if err != nil {
		log.Fatalf("❌ Failed to load store: %v", err)
	}
	log.Printf("✅ Store loaded: %d products, %d orders", st.ProductCount(), st.OrderCount())

	// Build the deterministic pipeline
	pipe := pipeline.New(st, cfg.ReferenceTime)
	log.Println("✅ Pipeline initialized")

	// Initialize Redis audit store
	log.Println("🔌 Connecting to Redis...")
	redisStore, err := audit.NewRedisStore(cfg.RedisURL, cfg.AuditTTL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to Redis: %v", err)
	}
	defer redisStore.Close()
	log.Println("✅ Redis connected")

	recorder := audit.NewRecorder(redisStore)
	defer recorder.Close()
	log.Println("✅ Trace recorder initialized")

	// Initialize the acknowledgment provider
	provider, err := llm.New(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize LLM provider: %v", err)
	}
	log.Printf("✅ LLM provider initialized: %s", provider.Name())

	// Initialize message handler
	messageHandler := handlers.NewMessageHandler(pipe, provider, recorder)
	log.Println("✅ Message handler initialized")

	// Initialize NATS transport
	log.Println("📡 Connecting to NATS...")
	natsTransport, err := transport.NewNATSTransport(cfg, messageHandler)
	if err != nil {
		log.Fatalf("❌ Failed to initialize NATS transport: %v", err)
	}
	defer natsTransport.Close()

	// Start listening for requests
	if err := natsTransport.Start(); err != nil {
		log.Fatalf("❌ Failed to start NATS transport: %v", err)
	}

	log.Println("✅ Commerce Intent Service is running!")
	log.Printf("👂 Listening on subject: %s", cfg.NatsRequestSubject)

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Block until signal received
	sig := <-sigChan
	log.Printf("🛑 Received signal: %v", sig)
	log.Println("🔄 Shutting down gracefully...")

	// Cleanup
	log.Printf("📊 Traces recorded this run: %d", recorder.RecordedCount())

	if err := natsTransport.Close(); err != nil {
		log.Printf("⚠️ Error closing NATS transport: %v", err)
	}

	if err := recorder.Close(); err != nil {
		log.Printf("⚠️ Error closing trace recorder: %v", err)
	}

	log.Println("👋 Commerce Intent Service stopped")
}
