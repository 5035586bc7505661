// Command server exposes the CALIMA Star engine as a JSON REST API.
//
// Endpoints:
//
//	GET  /api/analyze?word=<word>
//	POST /api/generate    body: {"lemma":"...","feats":{...}}
//	POST /api/reinflect   body: {"word":"...","feats":{...}}
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"log"
	"net/http"

	"github.com/rs/cors"

	calima "github.com/balhafni/camel-tools"
)

// ---- JSON request/response types ----------------------------------------

type analyzeResponse struct {
	Word     string            `json:"word"`
	Analyses []calima.Analysis `json:"analyses"`
}

type generateRequest struct {
	Lemma string            `json:"lemma"`
	Feats calima.FeatureSet `json:"feats"`
}

type generateResponse struct {
	Lemma string            `json:"lemma"`
	Forms []calima.Analysis `json:"forms"`
}

type reinflectRequest struct {
	Word  string            `json:"word"`
	Feats calima.FeatureSet `json:"feats"`
}

type reinflectResponse struct {
	Word  string            `json:"word"`
	Forms []calima.Analysis `json:"forms"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode error: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// ---- handlers -----------------------------------------------------------

func handleAnalyze(analyzer *calima.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		word := r.URL.Query().Get("word")
		if word == "" {
			writeError(w, http.StatusBadRequest, "missing 'word' query parameter")
			return
		}

		analyses := analyzer.Analyze(word)
		status := http.StatusOK
		if len(analyses) == 0 {
			status = http.StatusNotFound
		}
		writeJSON(w, status, analyzeResponse{Word: word, Analyses: analyses})
	}
}

func handleGenerate(generator *calima.Generator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "POST required")
			return
		}
		var req generateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Lemma == "" {
			writeError(w, http.StatusBadRequest, "body must be JSON with a non-empty 'lemma' field")
			return
		}

		forms := generator.Generate(req.Lemma, req.Feats)
		writeJSON(w, http.StatusOK, generateResponse{Lemma: req.Lemma, Forms: forms})
	}
}

func handleReinflect(reinflector *calima.Reinflector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "POST required")
			return
		}
		var req reinflectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Word == "" {
			writeError(w, http.StatusBadRequest, "body must be JSON with a non-empty 'word' field")
			return
		}

		forms, err := reinflector.Reinflect(req.Word, req.Feats)
		if err != nil {
			var unknown *calima.UnknownFeatureError
			var invalid *calima.InvalidFeatureValueError
			if errors.As(err, &unknown) || errors.As(err, &invalid) {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, reinflectResponse{Word: req.Word, Forms: forms})
	}
}

// ---- main ---------------------------------------------------------------

func main() {
	dbPath := flag.String("db", "calima.db", "path to the morphology database file")
	mode := flag.String("mode", "r", "database mode: a, g, r or a combination")
	addr := flag.String("addr", ":8080", "listen address")
	flag.Parse()

	log.Printf("loading database from %s …", *dbPath)
	db, err := calima.LoadDatabase(*dbPath, *mode)
	if err != nil {
		log.Fatalf("failed to load database: %v", err)
	}
	log.Println("database loaded")

	analyzer, err := calima.NewAnalyzer(db)
	if err != nil {
		log.Fatalf("analyzer: %v", err)
	}
	generator, err := calima.NewGenerator(db)
	if err != nil {
		log.Fatalf("generator: %v", err)
	}
	reinflector, err := calima.NewReinflector(db, analyzer, generator)
	if err != nil {
		log.Fatalf("reinflector: %v", err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/analyze", handleAnalyze(analyzer))
	mux.HandleFunc("/api/generate", handleGenerate(generator))
	mux.HandleFunc("/api/reinflect", handleReinflect(reinflector))

	handler := cors.Default().Handler(mux)

	log.Printf("listening on %s", *addr)
	if err := http.ListenAndServe(*addr, handler); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
