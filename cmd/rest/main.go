package main

import (
	"context"
	"log"

	"naeilum-be/internal/bootstrap"
	"naeilum-be/internal/config"
	"naeilum-be/internal/server"
	"naeilum-be/internal/tracer"
	"naeilum-be/pkg/corpus"
)

func main() {
	// 0. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Load Corpus (fatal if it cannot satisfy shortlist constraints)
	corpusStore, err := corpus.Load(cfg.Corpus.Dir)
	if err != nil {
		log.Panicf("Unable to load name corpus: %v", err)
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(corpusStore, cfg)

	// 4. Initialize Server
	srv := server.New(cfg, container)

	// 5. Run Server
	log.Fatal(srv.Run())
}
