package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"commerce-intent/internal/config"
	"commerce-intent/internal/pipeline"
	"commerce-intent/internal/store"
)

// demoPrompts exercise each pipeline branch: product assist, an allowed
// cancellation, a blocked cancellation, and the discount guardrail.
var demoPrompts = []struct {
	name   string
	prompt string
}{
	{"Product Assist", "Wedding guest, midi, under $120 — I'm between M/L. ETA to 560001?"},
	{"Order Cancellation (A1003)", "Cancel order A1003 — email mira@example.com."},
	{"Order Cancellation (A1002)", "Cancel order A1002 — email alex@example.com."},
	{"Guardrail", "Can you give me a discount code that doesn't exist?"},
}

func main() {
	// Load .env file if it exists (for development)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	demo := flag.Bool("demo", false, "run the built-in demo prompts")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	st, err := store.Load(cfg.ProductsPath, cfg.OrdersPath)
	if err != nil {
		log.Fatalf("Failed to load store: %v", err)
	}

	pipe := pipeline.New(st, cfg.ReferenceTime)

	if *demo {
		for i, d := range demoPrompts {
			fmt.Printf("%s\nPrompt: %q\n", d.name, d.prompt)
			fmt.Println(strings.Repeat("-", 50))
			runOne(pipe, d.prompt)
			if i < len(demoPrompts)-1 {
				fmt.Println("\n" + strings.Repeat("=", 60) + "\n")
			}
		}
		return
	}

	message := strings.Join(flag.Args(), " ")
	if message == "" {
		fmt.Fprintln(os.Stderr, "usage: agent [-demo] <message>")
		os.Exit(2)
	}
	runOne(pipe, message)
}

func runOne(pipe *pipeline.Pipeline, message string) {
	result, err := pipe.Run(message)
	if err != nil {
		log.Fatalf("Pipeline failed: %v", err)
	}

	traceJSON, err := json.MarshalIndent(result.Trace, "", "  ")
	if err != nil {
		log.Fatalf("Failed to render trace: %v", err)
	}

	fmt.Println("Trace JSON:")
	fmt.Println(string(traceJSON))
	fmt.Println("\nFinal Reply:")
	fmt.Println(result.Reply)
}
