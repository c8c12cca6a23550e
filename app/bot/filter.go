package bot

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/hashicorp/go-multierror"

	"github.com/umputun/tg-doorman/lib/checker"
)

//go:generate moq --out mocks/detector.go --pkg mocks --skip-ensure --with-resets . Detector

// Filter wraps the text detector with file-backed samples and stop-words.
// Reloads samples and stop words on file change.
type Filter struct {
	Detector
	params FilterConfig
}

// FilterConfig is a full set of parameters for the filter
type FilterConfig struct {
	// samples file names, watched for changes and reloaded
	SpamSamplesFile string
	HamSamplesFile  string
	StopWordsFile   string
	SpamDynamicFile string
	HamDynamicFile  string

	WatchDelay time.Duration
}

// Detector is a text checking interface, implemented by checker.Detector
type Detector interface {
	Classify(text string) (spam bool, score float64)
	TooManyEmojis(text string) bool
	StopWords(text string) (found bool, match string)
	AddSpam(msg string) error
	AddHam(msg string) error
	LoadSamples(spamReaders, hamReaders []io.Reader) (checker.LoadResult, error)
	LoadStopWords(readers ...io.Reader) (checker.LoadResult, error)
}

// NewFilter creates a new filter and starts the file watcher
func NewFilter(ctx context.Context, detector Detector, params FilterConfig) *Filter {
	res := &Filter{Detector: detector, params: params}
	go func() {
		if err := res.watch(ctx, params.WatchDelay); err != nil {
			log.Printf("[WARN] samples file watcher failed: %v", err)
		}
	}()
	return res
}

// AddSpam appends a message to the spam samples and updates the classifier.
// Newlines are flattened to keep one sample per line in the dynamic file.
func (f *Filter) AddSpam(msg string) error {
	cleanMsg := strings.ReplaceAll(msg, "\n", " ")
	log.Printf("[DEBUG] update spam samples with %q", cleanMsg)
	if err := f.Detector.AddSpam(cleanMsg); err != nil {
		return fmt.Errorf("can't update spam samples: %w", err)
	}
	return nil
}

// AddHam appends a message to the ham samples and updates the classifier
func (f *Filter) AddHam(msg string) error {
	cleanMsg := strings.ReplaceAll(msg, "\n", " ")
	log.Printf("[DEBUG] update ham samples with %q", cleanMsg)
	if err := f.Detector.AddHam(cleanMsg); err != nil {
		return fmt.Errorf("can't update ham samples: %w", err)
	}
	return nil
}

// watch watches for changes in samples files and reloads them.
// delay is a time to wait after the last change before reloading to avoid multiple reloads
func (f *Filter) watch(ctx context.Context, delay time.Duration) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	done := make(chan bool)
	reloadTimer := time.NewTimer(delay)
	reloadPending := false

	go func() {
		defer close(done)
		for {
			select {
			case <-ctx.Done():
				log.Printf("[INFO] stopping watcher for samples: %v", ctx.Err())
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				log.Printf("[DEBUG] file %q updated, op: %v", event.Name, event.Op)
				if !reloadPending {
					reloadPending = true
					reloadTimer.Reset(delay)
				}
			case <-reloadTimer.C:
				if reloadPending {
					reloadPending = false
					if err := f.ReloadSamples(); err != nil {
						log.Printf("[WARN] %v", err)
					}
				}
			case e, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("[WARN] watcher error: %v", e)
			}
		}
	}()

	errs := new(multierror.Error)
	addToWatcher := func(file string) error {
		if _, err := os.Stat(file); err != nil {
			return fmt.Errorf("failed to stat file %q: %w", file, err)
		}
		log.Printf("[DEBUG] add file %q to watcher", file)
		return watcher.Add(file)
	}
	errs = multierror.Append(errs, addToWatcher(f.params.SpamSamplesFile))
	errs = multierror.Append(errs, addToWatcher(f.params.HamSamplesFile))
	errs = multierror.Append(errs, addToWatcher(f.params.StopWordsFile))
	if err := errs.ErrorOrNil(); err != nil {
		return fmt.Errorf("failed to add some files to watcher: %w", err)
	}
	<-done
	return nil
}

// ReloadSamples reloads samples and stop-words from the configured files
func (f *Filter) ReloadSamples() (err error) {
	log.Printf("[DEBUG] reloading samples")

	var spamReader, hamReader, stopWordsReader, spamDynamicReader, hamDynamicReader io.ReadCloser

	// mandatory spam and ham samples files
	if spamReader, err = os.Open(f.params.SpamSamplesFile); err != nil {
		return fmt.Errorf("failed to open spam samples file %q: %w", f.params.SpamSamplesFile, err)
	}
	defer spamReader.Close()

	if hamReader, err = os.Open(f.params.HamSamplesFile); err != nil {
		return fmt.Errorf("failed to open ham samples file %q: %w", f.params.HamSamplesFile, err)
	}
	defer hamReader.Close()

	// stop-words are optional
	if stopWordsReader, err = os.Open(f.params.StopWordsFile); err != nil {
		stopWordsReader = io.NopCloser(bytes.NewReader([]byte("")))
	}
	defer stopWordsReader.Close()

	// dynamic samples are optional
	if spamDynamicReader, err = os.Open(f.params.SpamDynamicFile); err != nil {
		spamDynamicReader = io.NopCloser(bytes.NewReader([]byte("")))
	}
	defer spamDynamicReader.Close()

	if hamDynamicReader, err = os.Open(f.params.HamDynamicFile); err != nil {
		hamDynamicReader = io.NopCloser(bytes.NewReader([]byte("")))
	}
	defer hamDynamicReader.Close()

	// LoadSamples and LoadStopWords clear the state first, no explicit reset needed
	lr, err := f.LoadSamples([]io.Reader{spamReader, spamDynamicReader}, []io.Reader{hamReader, hamDynamicReader})
	if err != nil {
		return fmt.Errorf("failed to reload samples: %w", err)
	}

	ls, err := f.LoadStopWords(stopWordsReader)
	if err != nil {
		return fmt.Errorf("failed to reload stop words: %w", err)
	}

	log.Printf("[INFO] loaded samples - spam: %d, ham: %d, stop-words: %d", lr.SpamSamples, lr.HamSamples, ls.StopWords)
	return nil
}

// DynamicSamples returns dynamic spam and ham samples. both are optional
func (f *Filter) DynamicSamples() (spam, ham []string, err error) {
	errs := new(multierror.Error)

	if spamDynamicReader, err := os.Open(f.params.SpamDynamicFile); err != nil {
		spam = []string{}
	} else {
		defer spamDynamicReader.Close()
		scanner := bufio.NewScanner(spamDynamicReader)
		for scanner.Scan() {
			spam = append(spam, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("failed to read spam dynamic file: %w", err))
		}
	}

	if hamDynamicReader, err := os.Open(f.params.HamDynamicFile); err != nil {
		ham = []string{}
	} else {
		defer hamDynamicReader.Close()
		scanner := bufio.NewScanner(hamDynamicReader)
		for scanner.Scan() {
			ham = append(ham, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("failed to read ham dynamic file: %w", err))
		}
	}

	return spam, ham, errs.ErrorOrNil()
}

// RemoveDynamicSpamSample removes a sample from the spam dynamic samples file and reloads samples
func (f *Filter) RemoveDynamicSpamSample(sample string) (int, error) {
	count, err := f.removeDynamicSample(sample, f.params.SpamDynamicFile)
	if err != nil {
		return 0, fmt.Errorf("failed to remove dynamic spam sample: %w", err)
	}
	if err := f.ReloadSamples(); err != nil {
		return 0, fmt.Errorf("failed to reload samples after removing dynamic spam sample: %w", err)
	}
	return count, nil
}

//nolint:gosec // potential file inclusion is fine here
func (f *Filter) removeDynamicSample(msg, fileName string) (int, error) {
	reader, err := os.Open(fileName)
	if err != nil {
		return 0, fmt.Errorf("failed to open dynamic file %s: %w", fileName, err)
	}
	defer reader.Close()

	// read all samples, drop the requested one and write the rest back
	scanner := bufio.NewScanner(reader)
	count := 0
	var samples []string
	for scanner.Scan() {
		line := scanner.Text()
		if line != msg {
			samples = append(samples, line)
			continue
		}
		count++
	}
	if err = scanner.Err(); err != nil {
		return 0, fmt.Errorf("failed to read dynamic file: %w", err)
	}
	if count == 0 {
		return 0, fmt.Errorf("sample %q not found in %s", msg, fileName)
	}

	if err = reader.Close(); err != nil {
		return 0, fmt.Errorf("failed to close dynamic file: %w", err)
	}

	writer, err := os.Create(fileName)
	if err != nil {
		return 0, fmt.Errorf("failed to open dynamic file for writing: %w", err)
	}
	defer writer.Close()
	for _, s := range samples {
		if _, err := writer.WriteString(s + "\n"); err != nil {
			return 0, fmt.Errorf("failed to write to dynamic file: %w", err)
		}
	}
	return count, nil
}
