// Command server exposes the term-cloud renderer as a JSON REST API.
//
// Endpoints:
//
//	GET  /api/legend      color key for the category → style table
//	POST /api/render      body: {"distribution":[{lemma,pos,count}],"pos_tags":[...]}
//	POST /api/visualize   body: {"text":"...","language":"eng",...} → HTML page
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/rs/cors"

	lexcloud "github.com/lexcloud/lexcloud"
)

// ---- JSON request/response types ----------------------------------------

type termJSON struct {
	Lemma string `json:"lemma"`
	POS   string `json:"pos"`
	Count int    `json:"count"`
}

type renderRequest struct {
	Distribution []termJSON `json:"distribution"`
	POSTags      []string   `json:"pos_tags,omitempty"`
	SizeMin      float64    `json:"size_min,omitempty"`
	SizeMax      float64    `json:"size_max,omitempty"`
}

type descriptorJSON struct {
	Text      string  `json:"text"`
	POS       string  `json:"pos"`
	Color     string  `json:"color"`
	Size      float64 `json:"size"`
	Frequency int     `json:"frequency"`
}

type renderResponse struct {
	Descriptors []descriptorJSON `json:"descriptors"`
}

type legendRowJSON struct {
	Tag       string `json:"tag"`
	Name      string `json:"name"`
	Hex       string `json:"hex"`
	ColorName string `json:"color_name"`
}

type legendResponse struct {
	Rows []legendRowJSON `json:"rows"`
}

type visualizeRequest struct {
	Text     string   `json:"text"`
	Language string   `json:"language,omitempty"`
	POSTags  []string `json:"pos_tags,omitempty"`
	TopN     int      `json:"top_n,omitempty"`
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

func parseTags(names []string) ([]lexcloud.PartOfSpeech, error) {
	tags := make([]lexcloud.PartOfSpeech, 0, len(names))
	for _, name := range names {
		pos, ok := lexcloud.ParsePartOfSpeech(name)
		if !ok {
			return nil, fmt.Errorf("unknown pos tag %q", name)
		}
		tags = append(tags, pos)
	}
	return tags, nil
}

func toDistribution(entries []termJSON) (*lexcloud.FrequencyDistribution, error) {
	counts := make(map[lexcloud.Term]int, len(entries))
	for _, e := range entries {
		pos, ok := lexcloud.ParsePartOfSpeech(e.POS)
		if !ok {
			return nil, fmt.Errorf("unknown pos tag %q for lemma %q", e.POS, e.Lemma)
		}
		counts[lexcloud.Term{Lemma: e.Lemma, POS: pos}] += e.Count
	}
	return lexcloud.NewFrequencyDistribution(counts)
}

// ---- handlers -----------------------------------------------------------

func handleLegend() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		rows := lexcloud.Legend(lexcloud.DefaultStyles)
		out := make([]legendRowJSON, 0, len(rows))
		for _, row := range rows {
			out = append(out, legendRowJSON{
				Tag:       string(row.Tag),
				Name:      row.Name,
				Hex:       row.Hex,
				ColorName: row.ColorName,
			})
		}
		writeJSON(w, http.StatusOK, legendResponse{Rows: out})
	}
}

func handleRender(cfg lexcloud.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "POST required")
			return
		}
		var req renderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "body must be JSON with a 'distribution' field")
			return
		}

		fd, err := toDistribution(req.Distribution)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		allowed, err := parseTags(req.POSTags)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		sizes := cfg.SizeRange()
		if req.SizeMin != 0 || req.SizeMax != 0 {
			sizes = lexcloud.SizeRange{Min: req.SizeMin, Max: req.SizeMax}
		}

		descriptors, err := lexcloud.Render(fd, lexcloud.DefaultStyles, allowed, sizes)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		out := make([]descriptorJSON, 0, len(descriptors))
		for _, d := range descriptors {
			out = append(out, descriptorJSON{
				Text:      d.Text,
				POS:       string(d.POS),
				Color:     d.Color,
				Size:      d.Size,
				Frequency: d.Frequency,
			})
		}
		writeJSON(w, http.StatusOK, renderResponse{Descriptors: out})
	}
}

func handleVisualize(cfg lexcloud.Config, client *lexcloud.AnnotationClient, stopwords lexcloud.Stopwords) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "POST required")
			return
		}
		var req visualizeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Text == "" {
			writeError(w, http.StatusBadRequest, "body must be JSON with a non-empty 'text' field")
			return
		}
		allowed, err := parseTags(req.POSTags)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
		defer cancel()

		tokens, err := client.Annotate(ctx, req.Text)
		if err != nil {
			writeError(w, http.StatusBadGateway, fmt.Sprintf("annotation failed: %v", err))
			return
		}
		fd, err := lexcloud.Aggregate(tokens, stopwords.For(req.Language), req.TopN)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		cloud, err := lexcloud.Visualize(fd, lexcloud.DefaultStyles, allowed, cfg.SizeRange())
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		legend := lexcloud.LegendHTML(lexcloud.Legend(lexcloud.DefaultStyles))
		page, err := lexcloud.Prettify(lexcloud.Page(legend, []lexcloud.Section{
			{Title: "Term cloud", Cloud: cloud},
		}))
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, page)
	}
}

// ---- main ---------------------------------------------------------------

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	configPath := flag.String("config", "", "path to YAML config file (optional)")
	flag.Parse()

	cfg := lexcloud.Defaults()
	if *configPath != "" {
		loaded, err := lexcloud.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}
		cfg = loaded
	} else if key := os.Getenv("ANNOTATE_API_KEY"); key != "" {
		cfg.APIKey = key
	}

	stopwords := lexcloud.Stopwords{}
	if cfg.StopwordsFile != "" {
		loaded, err := lexcloud.LoadStopwords(cfg.StopwordsFile)
		if err != nil {
			log.Fatalf("failed to load stopwords: %v", err)
		}
		stopwords = loaded
		log.Printf("loaded stopword lists for %d languages", len(stopwords))
	}

	client := lexcloud.NewAnnotationClient(cfg.ServiceURL, cfg.APIKey)

	mux := http.NewServeMux()
	mux.HandleFunc("/api/legend", handleLegend())
	mux.HandleFunc("/api/render", handleRender(cfg))
	mux.HandleFunc("/api/visualize", handleVisualize(cfg, client, stopwords))

	handler := cors.Default().Handler(mux)

	log.Printf("listening on %s", *addr)
	if err := http.ListenAndServe(*addr, handler); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
