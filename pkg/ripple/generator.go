package ripple

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"askaprilai-be/pkg/voice"
)

// Generator produces the weekly audio episodes and their distribution
// artifacts (episode manifest and podcast RSS feed).
type Generator struct {
	provider voice.Provider
	audioDir string
	baseURL  string
	// Pause between synthesis calls to stay under the API rate limit.
	requestDelay time.Duration
}

// WeekResult summarizes one batch run.
type WeekResult struct {
	Successful int
	Failed     int
}

func NewGenerator(provider voice.Provider, audioDir, baseURL string, requestDelay time.Duration) *Generator {
	return &Generator{
		provider:     provider,
		audioDir:     audioDir,
		baseURL:      baseURL,
		requestDelay: requestDelay,
	}
}

// GenerateWeek synthesizes every weekday episode. A failed episode is
// logged and skipped; the batch continues.
func (g *Generator) GenerateWeek(ctx context.Context) (*WeekResult, error) {
	if err := os.MkdirAll(g.audioDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create audio dir: %w", err)
	}

	episodes := WeeklyScripts()
	result := &WeekResult{}

	for i, episode := range episodes {
		if err := g.GenerateEpisode(ctx, episode); err != nil {
			fmt.Printf("Failed to generate %s: %v\n", episode.Title, err)
			result.Failed++
		} else {
			result.Successful++
		}

		if i < len(episodes)-1 {
			select {
			case <-time.After(g.requestDelay):
			case <-ctx.Done():
				return result, ctx.Err()
			}
		}
	}

	if err := g.WriteManifest(episodes); err != nil {
		return result, err
	}
	if err := g.WriteRSSFeed(episodes, time.Now()); err != nil {
		return result, err
	}

	return result, nil
}

// GenerateSingle synthesizes the episode for one weekday.
func (g *Generator) GenerateSingle(ctx context.Context, day string) error {
	if err := os.MkdirAll(g.audioDir, 0o755); err != nil {
		return fmt.Errorf("failed to create audio dir: %w", err)
	}

	episodes := WeeklyScripts()
	for _, episode := range episodes {
		if strings.EqualFold(episode.Day, day) {
			if err := g.GenerateEpisode(ctx, episode); err != nil {
				return err
			}
			return g.WriteManifest(episodes)
		}
	}

	days := make([]string, 0, len(episodes))
	for _, episode := range episodes {
		days = append(days, episode.Day)
	}
	return fmt.Errorf("day %q not found, available: %s", day, strings.Join(days, ", "))
}

func (g *Generator) GenerateEpisode(ctx context.Context, episode Episode) error {
	audio, err := g.provider.Synthesize(ctx, episode.Script)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(g.audioDir, episode.Filename), audio, 0o644)
}

type manifestEntry struct {
	Episode
	AudioURL  string `json:"audioUrl"`
	Available bool   `json:"available"`
}

// WriteManifest records each episode with its serving URL and whether its
// audio file exists on disk.
func (g *Generator) WriteManifest(episodes []Episode) error {
	entries := make([]manifestEntry, 0, len(episodes))
	for _, episode := range episodes {
		_, err := os.Stat(filepath.Join(g.audioDir, episode.Filename))
		entries = append(entries, manifestEntry{
			Episode:   episode,
			AudioURL:  "/audio/" + episode.Filename,
			Available: err == nil,
		})
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(g.audioDir, "episodes.json"), data, 0o644)
}

type rssEnclosure struct {
	URL    string `xml:"url,attr"`
	Length int    `xml:"length,attr"`
	Type   string `xml:"type,attr"`
}

type rssItem struct {
	Title       string       `xml:"title"`
	Description string       `xml:"description"`
	Enclosure   rssEnclosure `xml:"enclosure"`
	GUID        string       `xml:"guid"`
	PubDate     string       `xml:"pubDate"`
	Duration    string       `xml:"itunes:duration"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Description string    `xml:"description"`
	Language    string    `xml:"language"`
	Author      string    `xml:"itunes:author"`
	Link        string    `xml:"link"`
	Items       []rssItem `xml:"item"`
}

type rssFeed struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	ITunes  string     `xml:"xmlns:itunes,attr"`
	Channel rssChannel `xml:"channel"`
}

// WriteRSSFeed emits the podcast feed next to the audio files.
func (g *Generator) WriteRSSFeed(episodes []Episode, now time.Time) error {
	feed := rssFeed{
		Version: "2.0",
		ITunes:  "http://www.itunes.com/dtds/podcast-1.0.dtd",
		Channel: rssChannel{
			Title:       "April's Daily Ripple",
			Description: "5-minute daily inspiration for retail and hospitality leaders",
			Language:    "en-us",
			Author:      "April Sabral",
			Link:        g.baseURL + "/daily-ripple",
		},
	}

	for i, episode := range episodes {
		feed.Channel.Items = append(feed.Channel.Items, rssItem{
			Title:       episode.Title,
			Description: "Daily leadership inspiration for retail and hospitality managers",
			Enclosure: rssEnclosure{
				URL:  g.baseURL + "/audio/" + episode.Filename,
				Type: "audio/mpeg",
			},
			GUID:     fmt.Sprintf("daily-ripple-%d-%d", now.UnixMilli(), i),
			PubDate:  now.UTC().Format(time.RFC1123),
			Duration: episode.Duration,
		})
	}

	data, err := xml.MarshalIndent(feed, "", "  ")
	if err != nil {
		return err
	}
	data = append([]byte(xml.Header), data...)
	return os.WriteFile(filepath.Join(g.audioDir, "rss-feed.xml"), data, 0o644)
}
