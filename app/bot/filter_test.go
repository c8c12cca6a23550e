package bot

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/tg-doorman/app/bot/mocks"
	"github.com/umputun/tg-doorman/lib/checker"
)

func TestFilter_AddSpam(t *testing.T) {
	det := &mocks.DetectorMock{
		AddSpamFunc: func(msg string) error { return nil },
	}
	f := &Filter{Detector: det}

	require.NoError(t, f.AddSpam("line one\nline two"))
	require.Len(t, det.AddSpamCalls(), 1)
	assert.Equal(t, "line one line two", det.AddSpamCalls()[0].Msg, "newlines flattened")
}

func TestFilter_AddHam(t *testing.T) {
	det := &mocks.DetectorMock{
		AddHamFunc: func(msg string) error { return nil },
	}
	f := &Filter{Detector: det}

	require.NoError(t, f.AddHam("good\nmessage"))
	require.Len(t, det.AddHamCalls(), 1)
	assert.Equal(t, "good message", det.AddHamCalls()[0].Msg)
}

func TestFilter_ReloadSamples(t *testing.T) {
	dir := t.TempDir()
	params := FilterConfig{
		SpamSamplesFile: filepath.Join(dir, "spam.txt"),
		HamSamplesFile:  filepath.Join(dir, "ham.txt"),
		StopWordsFile:   filepath.Join(dir, "stop.txt"),
		SpamDynamicFile: filepath.Join(dir, "spam-dyn.txt"),
		HamDynamicFile:  filepath.Join(dir, "ham-dyn.txt"),
	}
	require.NoError(t, os.WriteFile(params.SpamSamplesFile, []byte("spam sample\n"), 0o600))
	require.NoError(t, os.WriteFile(params.HamSamplesFile, []byte("ham sample\n"), 0o600))

	det := &mocks.DetectorMock{
		LoadSamplesFunc: func(spamReaders, hamReaders []io.Reader) (checker.LoadResult, error) {
			return checker.LoadResult{SpamSamples: 1, HamSamples: 1}, nil
		},
		LoadStopWordsFunc: func(readers ...io.Reader) (checker.LoadResult, error) {
			return checker.LoadResult{}, nil
		},
	}
	f := &Filter{Detector: det, params: params}

	require.NoError(t, f.ReloadSamples())
	assert.Len(t, det.LoadSamplesCalls(), 1)
	assert.Len(t, det.LoadStopWordsCalls(), 1)
}

func TestFilter_ReloadSamplesMissingMandatory(t *testing.T) {
	f := &Filter{Detector: &mocks.DetectorMock{}, params: FilterConfig{
		SpamSamplesFile: "/nonexistent/spam.txt",
		HamSamplesFile:  "/nonexistent/ham.txt",
	}}
	assert.Error(t, f.ReloadSamples())
}

func TestFilter_WatcherReloads(t *testing.T) {
	dir := t.TempDir()
	params := FilterConfig{
		SpamSamplesFile: filepath.Join(dir, "spam.txt"),
		HamSamplesFile:  filepath.Join(dir, "ham.txt"),
		StopWordsFile:   filepath.Join(dir, "stop.txt"),
		SpamDynamicFile: filepath.Join(dir, "spam-dyn.txt"),
		HamDynamicFile:  filepath.Join(dir, "ham-dyn.txt"),
		WatchDelay:      50 * time.Millisecond,
	}
	require.NoError(t, os.WriteFile(params.SpamSamplesFile, []byte("spam sample\n"), 0o600))
	require.NoError(t, os.WriteFile(params.HamSamplesFile, []byte("ham sample\n"), 0o600))
	require.NoError(t, os.WriteFile(params.StopWordsFile, []byte("badword\n"), 0o600))

	reloaded := make(chan struct{}, 10)
	det := &mocks.DetectorMock{
		LoadSamplesFunc: func(spamReaders, hamReaders []io.Reader) (checker.LoadResult, error) {
			reloaded <- struct{}{}
			return checker.LoadResult{}, nil
		},
		LoadStopWordsFunc: func(readers ...io.Reader) (checker.LoadResult, error) {
			return checker.LoadResult{}, nil
		},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	NewFilter(ctx, det, params)
	time.Sleep(100 * time.Millisecond) // let the watcher start

	require.NoError(t, os.WriteFile(params.SpamSamplesFile, []byte("spam sample\nanother one\n"), 0o600))

	select {
	case <-reloaded:
	case <-ctx.Done():
		t.Fatal("timed out waiting for reload after file change")
	}
}

func TestFilter_DynamicSamples(t *testing.T) {
	dir := t.TempDir()
	params := FilterConfig{
		SpamDynamicFile: filepath.Join(dir, "spam-dyn.txt"),
		HamDynamicFile:  filepath.Join(dir, "ham-dyn.txt"),
	}
	require.NoError(t, os.WriteFile(params.SpamDynamicFile, []byte("spam one\nspam two\n"), 0o600))

	f := &Filter{Detector: &mocks.DetectorMock{}, params: params}
	spam, ham, err := f.DynamicSamples()
	require.NoError(t, err)
	assert.Equal(t, []string{"spam one", "spam two"}, spam)
	assert.Empty(t, ham, "missing ham dynamic file yields empty list")
}

func TestFilter_RemoveDynamicSpamSample(t *testing.T) {
	dir := t.TempDir()
	params := FilterConfig{
		SpamSamplesFile: filepath.Join(dir, "spam.txt"),
		HamSamplesFile:  filepath.Join(dir, "ham.txt"),
		SpamDynamicFile: filepath.Join(dir, "spam-dyn.txt"),
		HamDynamicFile:  filepath.Join(dir, "ham-dyn.txt"),
	}
	require.NoError(t, os.WriteFile(params.SpamSamplesFile, []byte("spam sample\n"), 0o600))
	require.NoError(t, os.WriteFile(params.HamSamplesFile, []byte("ham sample\n"), 0o600))
	require.NoError(t, os.WriteFile(params.SpamDynamicFile, []byte("keep me\ndrop me\n"), 0o600))

	det := &mocks.DetectorMock{
		LoadSamplesFunc: func(spamReaders, hamReaders []io.Reader) (checker.LoadResult, error) {
			return checker.LoadResult{}, nil
		},
		LoadStopWordsFunc: func(readers ...io.Reader) (checker.LoadResult, error) {
			return checker.LoadResult{}, nil
		},
	}
	f := &Filter{Detector: det, params: params}

	count, err := f.RemoveDynamicSpamSample("drop me")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	data, err := os.ReadFile(params.SpamDynamicFile)
	require.NoError(t, err)
	assert.Equal(t, "keep me\n", string(data))

	_, err = f.RemoveDynamicSpamSample("never there")
	assert.Error(t, err)
}
