// Command lexcloud visualizes term frequency distributions as an HTML
// term cloud. Each positional argument is a directory of text (or HTML)
// files; the documents are annotated by the external morphology service,
// aggregated into a frequency distribution per directory, and rendered as
// one cloud section each, preceded by the color key.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	lexcloud "github.com/lexcloud/lexcloud"
)

func main() {
	topN := flag.Int("n", 0, "how many lexical items to keep per directory (0 = all)")
	language := flag.String("l", "", "ISO 639-2/T three-letter language code (selects the stopword list)")
	tagList := flag.String("t", "", "comma-separated whitelist of POS tags to include")
	apiKey := flag.String("k", "", "annotation service API key (env ANNOTATE_API_KEY takes precedence)")
	serviceURL := flag.String("a", lexcloud.DefaultServiceURL, "annotation service base URL")
	configPath := flag.String("c", "", "path to YAML config file (optional)")
	stopwordsPath := flag.String("s", "", "path to YAML stopword lists (optional)")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: lexcloud [flags] directory [directory ...]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	cfg := lexcloud.Defaults()
	if *configPath != "" {
		loaded, err := lexcloud.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}
		cfg = loaded
	}
	// Flags override the file; the environment overrides both.
	if *serviceURL != lexcloud.DefaultServiceURL {
		cfg.ServiceURL = *serviceURL
	}
	if *apiKey != "" {
		cfg.APIKey = *apiKey
	}
	if key := os.Getenv("ANNOTATE_API_KEY"); key != "" {
		cfg.APIKey = key
	}
	if *topN > 0 {
		cfg.TopN = *topN
	}
	if *language != "" {
		cfg.Language = *language
	}
	if *stopwordsPath != "" {
		cfg.StopwordsFile = *stopwordsPath
	}
	if cfg.APIKey == "" {
		log.Fatal("no API key: set ANNOTATE_API_KEY, -k, or api_key in the config file")
	}

	allowed := cfg.AllowedTags()
	if *tagList != "" {
		allowed = allowed[:0]
		for _, name := range strings.Split(*tagList, ",") {
			pos, ok := lexcloud.ParsePartOfSpeech(name)
			if !ok {
				log.Fatalf("unknown pos tag %q", name)
			}
			allowed = append(allowed, pos)
		}
	}

	stopwords := lexcloud.Stopwords{}
	if cfg.StopwordsFile != "" {
		loaded, err := lexcloud.LoadStopwords(cfg.StopwordsFile)
		if err != nil {
			log.Fatalf("failed to load stopwords: %v", err)
		}
		stopwords = loaded
	}

	client := lexcloud.NewAnnotationClient(cfg.ServiceURL, cfg.APIKey)
	ctx := context.Background()

	var sections []lexcloud.Section
	for _, dir := range flag.Args() {
		docs, err := lexcloud.ReadCorpus(dir)
		if err != nil {
			log.Fatalf("%s: %v", dir, err)
		}

		var tokens []lexcloud.Token
		for _, doc := range docs {
			annotated, err := client.Annotate(ctx, doc)
			if err != nil {
				log.Fatalf("%s: annotation failed: %v", dir, err)
			}
			tokens = append(tokens, annotated...)
		}

		fd, err := lexcloud.Aggregate(tokens, stopwords.For(cfg.Language), cfg.TopN)
		if err != nil {
			log.Fatalf("%s: %v", dir, err)
		}
		cloud, err := lexcloud.Visualize(fd, lexcloud.DefaultStyles, allowed, cfg.SizeRange())
		if err != nil {
			log.Fatalf("%s: %v", dir, err)
		}
		sections = append(sections, lexcloud.Section{Title: dir, Cloud: cloud})
	}

	legend := lexcloud.LegendHTML(lexcloud.Legend(lexcloud.DefaultStyles))
	page, err := lexcloud.Prettify(lexcloud.Page(legend, sections))
	if err != nil {
		log.Fatalf("failed to build page: %v", err)
	}
	fmt.Print(page)
}
