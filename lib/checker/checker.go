// Package checker provides text heuristics and a trainable spam/ham classifier
// for group chat messages: emoji density, stop words with lookalike folding and
// a naive bayes verdict with probability score. An optional openai-backed veto
// can be attached to double-check positive verdicts.
package checker

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strings"
	"sync"
	"unicode"

	"github.com/forPelevin/gomoji"
)

// Config is a set of parameters for Detector.
type Config struct {
	MaxAllowedEmoji    int     // max number of emojis allowed in a message, -1 disables the check
	MinSpamProbability float64 // min percent of probability to treat a classified message as spam
}

// SampleUpdater appends a sample to the dynamic samples storage and reads them back.
type SampleUpdater interface {
	Append(msg string) error
	Reader() (io.ReadCloser, error)
}

// Detector checks a message for spam signals. All checks are pure functions of
// the input text and the loaded samples. Safe for concurrent use.
type Detector struct {
	Config
	classifier     classifier
	stopWords      []string
	openaiVeto     *openAIChecker
	spamSamplesUpd SampleUpdater
	hamSamplesUpd  SampleUpdater
	lock           sync.RWMutex
}

// LoadResult is a result of loading samples or stop-words.
type LoadResult struct {
	SpamSamples int
	HamSamples  int
	StopWords   int
}

// NewDetector makes a new detector with the given config.
func NewDetector(p Config) *Detector {
	return &Detector{Config: p, classifier: newClassifier()}
}

// WithSpamUpdater sets a SampleUpdater for spam samples.
func (d *Detector) WithSpamUpdater(s SampleUpdater) { d.spamSamplesUpd = s }

// WithHamUpdater sets a SampleUpdater for ham samples.
func (d *Detector) WithHamUpdater(s SampleUpdater) { d.hamSamplesUpd = s }

// WithOpenAIVeto attaches an openai-backed second opinion applied to positive
// classifier verdicts only.
func (d *Detector) WithOpenAIVeto(client openAIClient, params OpenAIConfig) {
	d.openaiVeto = newOpenAIChecker(client, params)
}

// Classify returns the classifier verdict with the probability score (percent).
// The verdict is spam only if the classifier is certain and the probability
// reaches MinSpamProbability. If the openai veto is attached, a positive
// verdict is double-checked; veto failures keep the classifier's verdict.
func (d *Detector) Classify(text string) (spam bool, score float64) {
	d.lock.RLock()
	defer d.lock.RUnlock()

	tokens := d.tokenize(Normalize(text))
	if len(tokens) == 0 || d.classifier.nAllDocument == 0 {
		return false, 0
	}

	class, prob, certain := d.classifier.classify(tokens...)
	spam = certain && class == classSpam && prob >= d.MinSpamProbability

	if spam && d.openaiVeto != nil {
		vetoSpam, err := d.openaiVeto.check(text)
		if err != nil {
			log.Printf("[WARN] openai veto failed, keeping classifier verdict: %v", err)
			return spam, prob
		}
		spam = vetoSpam
	}
	return spam, prob
}

// TooManyEmojis reports if a message has more emojis than allowed.
func (d *Detector) TooManyEmojis(text string) bool {
	if d.MaxAllowedEmoji < 0 {
		return false
	}
	return len(gomoji.CollectAll(text)) > d.MaxAllowedEmoji
}

// StopWords checks normalized and lookalike-folded text against the loaded
// stop-words list, returns the first matched pattern.
func (d *Detector) StopWords(text string) (found bool, match string) {
	folded := FoldLookalikes(Normalize(text))

	d.lock.RLock()
	defer d.lock.RUnlock()
	for _, w := range d.stopWords {
		if strings.Contains(folded, w) {
			return true, w
		}
	}
	return false, ""
}

// AddSpam trains the classifier on the message as a spam sample and appends it
// to the dynamic spam samples storage if set.
func (d *Detector) AddSpam(msg string) error {
	d.lock.Lock()
	defer d.lock.Unlock()

	d.classifier.learn(newDocument(classSpam, d.tokenize(Normalize(msg))...))
	if d.spamSamplesUpd != nil {
		if err := d.spamSamplesUpd.Append(msg); err != nil {
			return fmt.Errorf("failed to append spam sample: %w", err)
		}
	}
	return nil
}

// AddHam trains the classifier on the message as a ham sample and appends it
// to the dynamic ham samples storage if set.
func (d *Detector) AddHam(msg string) error {
	d.lock.Lock()
	defer d.lock.Unlock()

	d.classifier.learn(newDocument(classHam, d.tokenize(Normalize(msg))...))
	if d.hamSamplesUpd != nil {
		if err := d.hamSamplesUpd.Append(msg); err != nil {
			return fmt.Errorf("failed to append ham sample: %w", err)
		}
	}
	return nil
}

// LoadSamples loads spam and ham samples from readers, one sample per line.
// It resets the classifier state first, so can be used for reload.
func (d *Detector) LoadSamples(spamReaders, hamReaders []io.Reader) (LoadResult, error) {
	d.lock.Lock()
	defer d.lock.Unlock()

	d.classifier.reset()
	res := LoadResult{}

	for _, reader := range spamReaders {
		scanner := bufio.NewScanner(reader)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			d.classifier.learn(newDocument(classSpam, d.tokenize(Normalize(line))...))
			res.SpamSamples++
		}
		if err := scanner.Err(); err != nil {
			return res, fmt.Errorf("failed to read spam samples: %w", err)
		}
	}

	for _, reader := range hamReaders {
		scanner := bufio.NewScanner(reader)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			d.classifier.learn(newDocument(classHam, d.tokenize(Normalize(line))...))
			res.HamSamples++
		}
		if err := scanner.Err(); err != nil {
			return res, fmt.Errorf("failed to read ham samples: %w", err)
		}
	}

	return res, nil
}

// LoadStopWords loads stop-words from readers, one pattern per line, lowercased.
// It resets the stop-words list first, so can be used for reload.
func (d *Detector) LoadStopWords(readers ...io.Reader) (LoadResult, error) {
	d.lock.Lock()
	defer d.lock.Unlock()

	d.stopWords = []string{}
	for _, reader := range readers {
		scanner := bufio.NewScanner(reader)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			d.stopWords = append(d.stopWords, strings.ToLower(line))
		}
		if err := scanner.Err(); err != nil {
			return LoadResult{}, fmt.Errorf("failed to read stop words: %w", err)
		}
	}
	return LoadResult{StopWords: len(d.stopWords)}, nil
}

// tokenize splits a message to tokens, skipping short ones
func (d *Detector) tokenize(inp string) []string {
	words := strings.FieldsFunc(inp, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	tokens := make([]string, 0, len(words))
	for _, w := range words {
		if len([]rune(w)) < 3 {
			continue
		}
		tokens = append(tokens, w)
	}
	return tokens
}
