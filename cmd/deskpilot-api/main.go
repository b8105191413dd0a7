package main

import (
	"context"
	"log"
	"net/http"

	"deskpilot/internal/adapters/devices"
	httpadapter "deskpilot/internal/adapters/http"
	"deskpilot/internal/adapters/llm"
	memstore "deskpilot/internal/adapters/storage/memory"
	"deskpilot/internal/app/dispatch"
	"deskpilot/internal/app/nlu"
	"deskpilot/internal/app/resolve"
	"deskpilot/internal/catalog"
	"deskpilot/internal/config"
	"deskpilot/internal/domain"
)

func main() {
	ctx := context.Background()

	cfg := config.Load()

	// Catalogs: loaded once, immutable afterwards.
	cat, err := catalog.Load(cfg.IntentsPath, cfg.DevicesPath)
	if err != nil {
		log.Fatalf("error loading catalogs: %v", err)
	}
	log.Printf("[CATALOG] %d intents, %d devices", len(cat.Intents), len(cat.Devices))

	matcher := nlu.NewMatcher(cat.Intents)
	extractor := nlu.NewExtractor(cat.Devices)

	// Choose between mock and Gemini by config (useful for dev)
	var llmClient domain.LLMClient
	if cfg.UseMockLLM {
		log.Println("[LLM] Using MOCK LLM client")
		llmClient = llm.NewMockLLM()
	} else {
		log.Println("[LLM] Using Gemini LLM client")
		llmClient, err = llm.NewGeminiClient(ctx, cfg.GCPProjectID, cfg.GCPLocation, cfg.ModelName)
		if err != nil {
			log.Fatalf("error initializing Gemini LLM client: %v", err)
		}
	}

	log.Println("[STORE] Using in-memory session storage")
	sessionStore := memstore.NewSessionStore()

	controller := devices.NewStubController()

	// Keyword path first, LLM fallback; both produce the same action union.
	chain := resolve.NewChain(
		resolve.NewKeywordResolver(matcher, extractor),
		resolve.NewLLMResolver(llmClient),
	)

	svc := dispatch.NewService(sessionStore, controller, chain, cfg.StrictIndexes)

	handler := httpadapter.NewServer(svc, matcher)

	port := ":" + cfg.Port
	log.Println("DeskPilot API listening on port:", port)
	if err := http.ListenAndServe(port, handler); err != nil {
		log.Fatal(err)
	}
}
