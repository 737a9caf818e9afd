// Command llmstems expands the lemma dictionary by asking an LLM to
// lemmatize a frequency-ranked word list.
//
// The input file has one "<count> <word>" pair per line; output is one
// "<word>\t<lemma>" pair per line, for manual review before merging
// into data/lemmas.txt.
//
// Configuration comes from the environment (a .env file is loaded if
// present): OPENAI_API_KEY is required, OPENAI_BASE_URL and
// OPENAI_MODEL are optional.
//
//	go run ./cmd/llmstems -input priority_list.txt -output word_stems.txt
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	openai "github.com/sashabaranov/go-openai"
)

const (
	defaultModel   = "gpt-5"
	batchSize      = 1000
	requestTimeout = 5 * time.Minute
)

const systemPrompt = `You are an expert Kazakh computational linguist specializing in morphology.
Your task: normalize a batch of Kazakh words to their dictionary base forms (lemmas).

Rules:
- Nouns: return singular, nominative form ("қалаларының" -> "қала").
- Verbs: return the bare stem ("отырып" -> "отыр", "барамын" -> "бар").
- Loanwords: return the base dictionary form without affixes.
- Apply Kazakh vowel elision and consonant mutation rules ("аузы" -> "ауыз", "кітабы" -> "кітап").
- If the word is already a lemma, repeat it unchanged.
- Return ONLY a valid JSON object where keys are the given words and values are the lemmas.`

func main() {
	inputPath := flag.String("input", "", "frequency-ranked word list (<count> <word> per line)")
	outputPath := flag.String("output", "word_stems.txt", "output path for word/lemma pairs")
	limit := flag.Int("limit", 0, "process at most this many words (0 = all)")
	flag.Parse()

	if *inputPath == "" {
		fmt.Fprintf(os.Stderr, "Usage: llmstems -input <file> [-output <file>] [-limit N]\n")
		os.Exit(1)
	}

	// Best-effort: a missing .env just means the variables come from
	// the real environment.
	_ = godotenv.Load()

	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		fmt.Fprintf(os.Stderr, "llmstems: OPENAI_API_KEY is not set\n")
		os.Exit(1)
	}

	cfg := openai.DefaultConfig(apiKey)
	if base := os.Getenv("OPENAI_BASE_URL"); base != "" {
		cfg.BaseURL = base
	}
	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = defaultModel
	}
	client := openai.NewClientWithConfig(cfg)

	words, err := parsePriorityFile(*inputPath, *limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "llmstems: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "llmstems: %d words to lemmatize (model %s)\n", len(words), model)

	out, err := os.Create(*outputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "llmstems: create output: %v\n", err)
		os.Exit(1)
	}
	w := bufio.NewWriter(out)

	ctx := context.Background()
	done := 0
	for start := 0; start < len(words); start += batchSize {
		end := min(start+batchSize, len(words))
		batch := words[start:end]

		stems, err := stemBatch(ctx, client, model, batch)
		if err != nil {
			fmt.Fprintf(os.Stderr, "llmstems: batch %d-%d: %v\n", start, end, err)
			os.Exit(1)
		}

		for _, word := range batch {
			lemma, ok := stems[word]
			if !ok || lemma == "" {
				fmt.Fprintf(os.Stderr, "llmstems: no lemma returned for %q, keeping as-is\n", word)
				lemma = word
			}
			fmt.Fprintf(w, "%s\t%s\n", word, lemma)
		}
		done += len(batch)
		fmt.Fprintf(os.Stderr, "llmstems: %d/%d done\n", done, len(words))
	}

	if err := w.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "llmstems: flush output: %v\n", err)
		os.Exit(1)
	}
	if err := out.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "llmstems: close output: %v\n", err)
		os.Exit(1)
	}
}

// parsePriorityFile reads "<count> <word>" lines, ordered by
// descending frequency. Blank lines and '#' comments are skipped.
func parsePriorityFile(path string, limit int) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	var words []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		if _, err := strconv.Atoi(fields[0]); err != nil {
			continue
		}
		words = append(words, fields[1])
		if limit > 0 && len(words) >= limit {
			break
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan input: %w", err)
	}
	return words, nil
}

// stemBatch sends one batch of words to the model and decodes the
// word-to-lemma JSON object from the reply.
func stemBatch(ctx context.Context, client *openai.Client, model string, words []string) (map[string]string, error) {
	payload, err := json.Marshal(words)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: "Now process this batch:\n" + string(payload)},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("empty completion response")
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	// Some models wrap the object in a markdown fence despite the
	// response format hint.
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")

	stems := make(map[string]string, len(words))
	if err := json.Unmarshal([]byte(content), &stems); err != nil {
		return nil, fmt.Errorf("decode lemma object: %w", err)
	}
	return stems, nil
}
