package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/docfind/go-prefix-search/config"
	"github.com/docfind/go-prefix-search/index"
	"github.com/docfind/go-prefix-search/internal/corpus"
	"github.com/docfind/go-prefix-search/internal/indexing"
	"github.com/docfind/go-prefix-search/internal/search"
	"github.com/docfind/go-prefix-search/internal/tokenizer"
	"github.com/docfind/go-prefix-search/store"
)

func main() {
	// Define command-line flags
	var (
		help       = flag.Bool("help", false, "Show help message")
		version    = flag.Bool("version", false, "Show version information")
		configPath = flag.String("config", "", "Path to a YAML settings file")
		corpusDir  = flag.String("corpus-dir", "", "Directory tree containing the corpus (overrides config)")
	)

	flag.Parse()

	// Handle help flag
	if *help {
		fmt.Printf("Prefix Search - a TF-IDF ranked prefix search over a text corpus\n\n")
		fmt.Printf("Usage: %s [options] <query>\n\n", os.Args[0])
		fmt.Printf("Options:\n")
		flag.PrintDefaults()
		fmt.Printf("\nExamples:\n")
		fmt.Printf("  %s --corpus-dir ./mail apple      # Rank documents matching the prefix 'apple'\n", os.Args[0])
		fmt.Printf("  %s --config search.yaml banana    # Use a settings file\n", os.Args[0])
		return
	}

	// Handle version flag
	if *version {
		fmt.Printf("Prefix Search v1.0.0\n")
		return
	}

	if flag.NArg() != 1 {
		fmt.Println("Please use a single query argument")
		return
	}
	query := flag.Arg(0)

	settings, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load settings: %v\n", err)
		os.Exit(1)
	}
	if *corpusDir != "" {
		settings.CorpusDir = *corpusDir
	}
	if settings.CorpusDir == "" {
		fmt.Fprintln(os.Stderr, "A corpus directory must be set via --corpus-dir or the config file")
		os.Exit(1)
	}

	logger := newLogger(settings.Logging)
	log := logger.WithField("component", "prefix_search")

	fmt.Printf("Searching for %s\n", query)

	loader := corpus.NewLoader(log)
	documents, err := loader.Load(settings.CorpusDir)
	if err != nil {
		log.Fatalf("Failed to load corpus: %v", err)
	}

	tok := tokenizer.New(tokenizer.NewPunctuation(settings.Punctuation))
	invertedIndex := index.NewInvertedIndex(settings)
	documentStore := store.NewDocumentStore()

	indexer, err := indexing.NewService(invertedIndex, documentStore, tok, log)
	if err != nil {
		log.Fatalf("Failed to create indexer: %v", err)
	}
	if err := indexer.BuildIndex(documents); err != nil {
		log.Fatalf("Failed to build index: %v", err)
	}

	searcher, err := search.NewService(invertedIndex, documentStore, tok, log)
	if err != nil {
		log.Fatalf("Failed to create searcher: %v", err)
	}
	result, err := searcher.Search(query)
	if err != nil {
		log.Fatalf("Search failed: %v", err)
	}

	if result.NoMatches() {
		fmt.Println("No matches")
		return
	}
	for _, hit := range result.Hits {
		fmt.Printf("Document %s matching word %s with score %s\n", hit.Document, hit.Term, hit.Score)
	}
}

// newLogger builds the process logger from the logging settings.
func newLogger(settings config.LoggingSettings) *logrus.Logger {
	logger := logrus.New()

	if settings.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(settings.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	return logger
}
