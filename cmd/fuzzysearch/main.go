// Command fuzzysearch loads a dictionary and runs one of the library's
// search modes against a single query: the three fuzzy indexes, the brute-
// force baseline, or one of the auxiliary exact-match automata (prefix,
// wildcard).
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"time"

	"fuzzysearch/internal/automaton"
	"fuzzysearch/internal/bktree"
	"fuzzysearch/internal/bruteforce"
	"fuzzysearch/internal/dictionary"
	"fuzzysearch/internal/distance"
	"fuzzysearch/internal/symspell"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	dictPath := flag.String("dict", "", "path to a newline-delimited dictionary file")
	text := flag.String("text", "", "free text to tokenize into terms instead of -dict; uses -extractor")
	extractorName := flag.String("extractor", "standard", "tokenizer for -text: standard, whitespace, or keyword")
	query := flag.String("query", "", "query term, or pattern for -index=prefix|wildcard")
	index := flag.String("index", "automaton", "index to use: automaton, bktree, symspell, bruteforce, prefix, or wildcard")
	maxEdits := flag.Int("max-edits", 2, "edit budget k (automaton, bktree, symspell, bruteforce)")
	prefixLength := flag.Int("prefix-length", 0, "symspell prefix length (default: max-edits+1)")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(getEnv("FUZZYSEARCH_LOG_LEVEL", "info")),
	}))
	slog.SetDefault(logger)

	if (*dictPath == "") == (*text == "") {
		fmt.Fprintln(os.Stderr, "usage: fuzzysearch (-dict=<path> | -text=<string> [-extractor=standard|whitespace|keyword]) -query=<term> [-index=automaton|bktree|symspell|bruteforce|prefix|wildcard] [-max-edits=2]")
		os.Exit(2)
	}
	if *query == "" {
		fmt.Fprintln(os.Stderr, "usage: -query is required")
		os.Exit(2)
	}

	logger.Info("starting fuzzysearch",
		"version", Version,
		"index", *index,
		"dict", *dictPath,
		"max_edits", *maxEdits,
	)

	terms, err := loadTerms(*dictPath, *text, *extractorName, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load terms: %v\n", err)
		os.Exit(1)
	}

	start := time.Now()
	results, err := run(*index, *query, terms, *maxEdits, *prefixLength)
	if err != nil {
		fmt.Fprintf(os.Stderr, "search failed: %v\n", err)
		os.Exit(1)
	}
	elapsed := time.Since(start)

	sort.Strings(results)
	for _, term := range results {
		fmt.Println(term)
	}
	logger.Info("search complete", "matches", len(results), "elapsed", elapsed.String())
}

// loadTerms loads terms either from a dictionary file (§6.3) or by
// tokenizing inline free text with a named extractor (internal/dictionary's
// ambient convenience for callers with no pre-built term file).
func loadTerms(dictPath, text, extractorName string, logger *slog.Logger) ([]string, error) {
	if text != "" {
		reg := dictionary.NewRegistry()
		extractor, err := reg.Get(extractorName)
		if err != nil {
			return nil, fmt.Errorf("extractor: %w", err)
		}
		return dictionary.LoadText(text, dictionary.Options{Logger: logger, Extractor: extractor}), nil
	}
	return dictionary.Load(dictPath, dictionary.Options{Logger: logger})
}

func run(index, query string, terms []string, maxEdits, prefixLength int) ([]string, error) {
	switch index {
	case "automaton":
		sorted := append([]string(nil), terms...)
		sort.Strings(sorted)
		auto, err := automaton.NewLevenshteinAutomaton(query, maxEdits)
		if err != nil {
			return nil, fmt.Errorf("build automaton: %w", err)
		}
		return auto.Search(sorted), nil

	case "bktree":
		tree := bktree.New(distance.Levenshtein)
		for _, term := range terms {
			tree.Insert(term)
		}
		return bktree.Collect(tree.Search(query, maxEdits)), nil

	case "symspell":
		var dict *symspell.Dictionary
		var err error
		if prefixLength > 0 {
			dict, err = symspell.NewWithPrefixLength(distance.Levenshtein, maxEdits, prefixLength)
			if err != nil {
				return nil, fmt.Errorf("build symspell: %w", err)
			}
		} else {
			dict = symspell.New(distance.Levenshtein, maxEdits)
		}
		for _, term := range terms {
			dict.Insert(term)
		}
		return dict.Search(query), nil

	case "bruteforce":
		return bruteforce.Search(query, terms, maxEdits, distance.Levenshtein), nil

	case "prefix":
		return filterByAutomaton(automaton.NewPrefixAutomaton(query), terms), nil

	case "wildcard":
		auto, err := automaton.NewWildcardAutomaton(query)
		if err != nil {
			return nil, fmt.Errorf("build wildcard automaton: %w", err)
		}
		return filterByAutomaton(auto, terms), nil

	default:
		return nil, fmt.Errorf("unknown index: %q", index)
	}
}

// filterByAutomaton returns every term in terms accepted by a, stepping it
// rune by rune from its start state. Shared driver for the auxiliary
// prefix/wildcard automata, which expose Start/Step/IsAccept rather than a
// Search method of their own.
func filterByAutomaton(a automaton.Automaton, terms []string) []string {
	var matches []string
	for _, term := range terms {
		state := a.Start()
		for _, r := range term {
			state = a.Step(state, r)
			if !a.CanMatch(state) {
				break
			}
		}
		if a.IsAccept(state) {
			matches = append(matches, term)
		}
	}
	return matches
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
