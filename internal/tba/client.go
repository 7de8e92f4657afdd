package tba

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/ExcaliDevBot/ExcaliStrategy/internal/logger"
	"github.com/ExcaliDevBot/ExcaliStrategy/internal/models"
)

// homeTeam gets a friendly display name instead of its TBA nickname.
const homeTeam = 6738

// Cache lifetimes. Team lists are stable for an event; match schedules
// change as the event progresses.
const (
	teamsCacheTTL   = time.Hour
	matchesCacheTTL = 10 * time.Minute
)

type Match struct {
	Key         string `json:"key"`
	MatchNumber int    `json:"match_number"`
	CompLevel   string `json:"comp_level"` // "qm", "qf", "sf", "f"
	Alliances   struct {
		Red  Alliance `json:"red"`
		Blue Alliance `json:"blue"`
	} `json:"alliances"`
	WinningAlliance string `json:"winning_alliance"`
	Time            int64  `json:"time"`
}

type Alliance struct {
	TeamKeys []string `json:"team_keys"`
	Score    int      `json:"score"`
}

type teamRaw struct {
	TeamNumber int     `json:"team_number"`
	Nickname   *string `json:"nickname"`
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	authKey    string
	log        *logger.Logger

	mu             sync.Mutex
	teamsCache     map[string][]models.Team
	teamsFetched   map[string]time.Time
	matchesCache   map[string][]Match
	matchesFetched map[string]time.Time
}

func New(baseURL, authKey string) *Client {
	return &Client{
		httpClient:     &http.Client{Timeout: 15 * time.Second},
		baseURL:        baseURL,
		authKey:        authKey,
		log:            logger.Default().WithPrefix("tba"),
		teamsCache:     make(map[string][]models.Team),
		teamsFetched:   make(map[string]time.Time),
		matchesCache:   make(map[string][]Match),
		matchesFetched: make(map[string]time.Time),
	}
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	log := logger.FromContext(ctx).WithPrefix("tba")
	url := c.baseURL + path

	log.Debug("fetching: %s", url)
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		log.Error("failed to create request: %v", err)
		return err
	}
	req.Header.Set("X-TBA-Auth-Key", c.authKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("request failed: %v", err)
		return err
	}
	defer resp.Body.Close()

	log.Debug("response received in %v, status=%d", time.Since(start), resp.StatusCode)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		log.Error("request failed: status=%d, body=%s", resp.StatusCode, string(body))
		return fmt.Errorf("tba status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		log.Error("failed to decode response: %v", err)
		return err
	}
	return nil
}

// EventTeams returns the teams registered for an event, sorted by team
// number, with the home team renamed. Results are cached per event key.
func (c *Client) EventTeams(ctx context.Context, eventKey string) ([]models.Team, error) {
	log := logger.FromContext(ctx).WithPrefix("tba")

	c.mu.Lock()
	if cached, ok := c.teamsCache[eventKey]; ok && time.Since(c.teamsFetched[eventKey]) < teamsCacheTTL {
		c.mu.Unlock()
		log.Debug("serving cached teams for %s", eventKey)
		return cached, nil
	}
	c.mu.Unlock()

	var raw []teamRaw
	if err := c.getJSON(ctx, fmt.Sprintf("/event/%s/teams", eventKey), &raw); err != nil {
		return nil, err
	}

	teams := make([]models.Team, 0, len(raw))
	for _, t := range raw {
		name := "Unknown Team"
		if t.Nickname != nil && *t.Nickname != "" {
			name = *t.Nickname
		}
		if t.TeamNumber == homeTeam {
			name = "Our Team"
		}
		teams = append(teams, models.Team{TeamNumber: t.TeamNumber, TeamName: name})
	}
	sort.Slice(teams, func(i, j int) bool { return teams[i].TeamNumber < teams[j].TeamNumber })

	c.mu.Lock()
	c.teamsCache[eventKey] = teams
	c.teamsFetched[eventKey] = time.Now()
	c.mu.Unlock()

	log.Info("fetched %d teams for event %s", len(teams), eventKey)
	return teams, nil
}

// EventMatches returns the event's match schedule, cached briefly because
// schedules shift during an event.
func (c *Client) EventMatches(ctx context.Context, eventKey string) ([]Match, error) {
	log := logger.FromContext(ctx).WithPrefix("tba")

	c.mu.Lock()
	if cached, ok := c.matchesCache[eventKey]; ok && time.Since(c.matchesFetched[eventKey]) < matchesCacheTTL {
		c.mu.Unlock()
		log.Debug("serving cached matches for %s", eventKey)
		return cached, nil
	}
	c.mu.Unlock()

	var matches []Match
	if err := c.getJSON(ctx, fmt.Sprintf("/event/%s/matches/simple", eventKey), &matches); err != nil {
		return nil, err
	}
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].CompLevel != matches[j].CompLevel {
			return matches[i].CompLevel < matches[j].CompLevel
		}
		return matches[i].MatchNumber < matches[j].MatchNumber
	})

	c.mu.Lock()
	c.matchesCache[eventKey] = matches
	c.matchesFetched[eventKey] = time.Now()
	c.mu.Unlock()

	log.Info("fetched %d matches for event %s", len(matches), eventKey)
	return matches, nil
}

// TeamMatches filters the event schedule down to matches including the
// given team.
func (c *Client) TeamMatches(ctx context.Context, eventKey string, teamNumber int) ([]Match, error) {
	all, err := c.EventMatches(ctx, eventKey)
	if err != nil {
		return nil, err
	}

	teamKey := fmt.Sprintf("frc%d", teamNumber)
	var out []Match
	for _, m := range all {
		if containsKey(m.Alliances.Red.TeamKeys, teamKey) || containsKey(m.Alliances.Blue.TeamKeys, teamKey) {
			out = append(out, m)
		}
	}
	return out, nil
}

func containsKey(keys []string, key string) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}
