package ripple

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	failOn string
	calls  int
}

func (p *stubProvider) Synthesize(ctx context.Context, text string) ([]byte, error) {
	p.calls++
	if p.failOn != "" && strings.Contains(text, p.failOn) {
		return nil, errors.New("synthesis failed")
	}
	return []byte("mp3-bytes"), nil
}

func TestWeeklyScripts(t *testing.T) {
	episodes := WeeklyScripts()
	require.Len(t, episodes, 5)

	days := make([]string, 0, len(episodes))
	for _, episode := range episodes {
		days = append(days, episode.Day)
		assert.NotEmpty(t, episode.Title)
		assert.NotEmpty(t, episode.Script)
		assert.True(t, strings.HasSuffix(episode.Filename, ".mp3"))
	}
	assert.Equal(t, []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}, days)
}

func TestGenerateWeek(t *testing.T) {
	dir := t.TempDir()
	provider := &stubProvider{}
	generator := NewGenerator(provider, dir, "https://askaprilai.com", 0)

	result, err := generator.GenerateWeek(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, result.Successful)
	assert.Equal(t, 0, result.Failed)
	assert.Equal(t, 5, provider.calls)

	for _, episode := range WeeklyScripts() {
		_, err := os.Stat(filepath.Join(dir, episode.Filename))
		assert.NoError(t, err, episode.Filename)
	}

	// Manifest marks every episode available.
	data, err := os.ReadFile(filepath.Join(dir, "episodes.json"))
	require.NoError(t, err)
	var entries []map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &entries))
	require.Len(t, entries, 5)
	for _, entry := range entries {
		assert.Equal(t, true, entry["available"])
		assert.Contains(t, entry["audioUrl"], "/audio/")
	}

	// RSS feed carries one item per episode.
	feed, err := os.ReadFile(filepath.Join(dir, "rss-feed.xml"))
	require.NoError(t, err)
	assert.Contains(t, string(feed), "April's Daily Ripple")
	assert.Equal(t, 5, strings.Count(string(feed), "<item>"))
	assert.Contains(t, string(feed), "https://askaprilai.com/audio/monday-momentum.mp3")
}

func TestGenerateWeekContinuesAfterFailure(t *testing.T) {
	dir := t.TempDir()
	provider := &stubProvider{failOn: "It's Tuesday"}
	generator := NewGenerator(provider, dir, "https://askaprilai.com", 0)

	result, err := generator.GenerateWeek(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, result.Successful)
	assert.Equal(t, 1, result.Failed)

	_, err = os.Stat(filepath.Join(dir, "tuesday-truth.mp3"))
	assert.True(t, os.IsNotExist(err))

	data, err := os.ReadFile(filepath.Join(dir, "episodes.json"))
	require.NoError(t, err)
	var entries []map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &entries))
	assert.Equal(t, false, entries[1]["available"])
}

func TestGenerateSingle(t *testing.T) {
	dir := t.TempDir()
	provider := &stubProvider{}
	generator := NewGenerator(provider, dir, "https://askaprilai.com", time.Millisecond)

	require.NoError(t, generator.GenerateSingle(context.Background(), "wednesday"))
	assert.Equal(t, 1, provider.calls)

	_, err := os.Stat(filepath.Join(dir, "wednesday-wisdom.mp3"))
	assert.NoError(t, err)

	err = generator.GenerateSingle(context.Background(), "Someday")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Monday, Tuesday")
}
