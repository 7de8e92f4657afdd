package statbotics

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ExcaliDevBot/ExcaliStrategy/internal/logger"
)

// ErrNoData reports that Statbotics has no record for the requested team,
// neither event-specific nor as a season aggregate. Distinct from transport
// failures, which surface as ordinary errors.
var ErrNoData = errors.New("statbotics: no data for team")

type Client struct {
	httpClient *http.Client
	v3Base     string
	v2Base     string
	log        *logger.Logger
}

func New(v3Base, v2Base string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		v3Base:     v3Base,
		v2Base:     v2Base,
		log:        logger.Default().WithPrefix("statbotics"),
	}
}

// teamEventV3 mirrors the v3 /team_event response, keeping only the EPA
// breakdown and qual record this adapter reads.
type teamEventV3 struct {
	EPA struct {
		Breakdown struct {
			AutoPoints    *float64 `json:"auto_points"`
			TeleopPoints  *float64 `json:"teleop_points"`
			EndgamePoints *float64 `json:"endgame_points"`
			TotalPoints   *float64 `json:"total_points"`
		} `json:"breakdown"`
		Stats struct {
			Mean *float64 `json:"mean"`
		} `json:"stats"`
	} `json:"epa"`
	Record struct {
		Qual *struct {
			Wins   int `json:"wins"`
			Losses int `json:"losses"`
			Ties   int `json:"ties"`
		} `json:"qual"`
	} `json:"record"`
	Matches int `json:"matches"`
}

// teamEventV2 mirrors the v2 /team_event and /team_year responses.
type teamEventV2 struct {
	Team         int    `json:"team"`
	Event        string `json:"event"`
	EPA          float64 `json:"epa"`
	EPABreakdown *struct {
		Auto    float64 `json:"auto"`
		Teleop  float64 `json:"teleop"`
		Endgame float64 `json:"endgame"`
		Total   float64 `json:"total"`
	} `json:"epa_breakdown"`
	AutoEPA       *float64 `json:"auto_epa"`
	TeleopEPA     *float64 `json:"teleop_epa"`
	EndgameEPA    *float64 `json:"endgame_epa"`
	OPR           *float64 `json:"opr"`
	DPR           *float64 `json:"dpr"`
	CCWM          *float64 `json:"ccwm"`
	Matches       int      `json:"matches"`
	MatchesPlayed int      `json:"matches_played"`
}

// getJSON fetches url and decodes into out. A 404 returns (false, nil) so
// callers can fall through to the next endpoint; every other non-2xx status
// and any transport failure is an error.
func (c *Client) getJSON(ctx context.Context, url string, out any) (bool, error) {
	log := logger.FromContext(ctx).WithPrefix("statbotics")

	log.Debug("fetching: %s", url)
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		log.Error("failed to create request: %v", err)
		return false, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("request failed: %v", err)
		return false, err
	}
	defer resp.Body.Close()

	log.Debug("response received in %v, status=%d", time.Since(start), resp.StatusCode)

	if resp.StatusCode == http.StatusNotFound {
		return false, nil
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		log.Error("request failed: status=%d, body=%s", resp.StatusCode, string(body))
		return false, fmt.Errorf("statbotics status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		log.Error("failed to decode response: %v", err)
		return false, err
	}
	return true, nil
}

func (c *Client) fetchTeamEventV3(ctx context.Context, team int, eventKey string) (*teamEventV3, error) {
	var out teamEventV3
	found, err := c.getJSON(ctx, fmt.Sprintf("%s/team_event/%d/%s", c.v3Base, team, eventKey), &out)
	if err != nil || !found {
		return nil, err
	}
	return &out, nil
}

func (c *Client) fetchTeamEventV2(ctx context.Context, team int, eventKey string) (*teamEventV2, error) {
	var out teamEventV2
	found, err := c.getJSON(ctx, fmt.Sprintf("%s/team_event/%d/%s", c.v2Base, team, eventKey), &out)
	if err != nil || !found {
		return nil, err
	}
	return &out, nil
}

func (c *Client) fetchTeamYear(ctx context.Context, team, year int) (*teamEventV2, error) {
	var out teamEventV2
	found, err := c.getJSON(ctx, fmt.Sprintf("%s/team_year/%d/%d", c.v2Base, team, year), &out)
	if err != nil || !found {
		return nil, err
	}
	out.Team = team
	out.Event = fmt.Sprintf("%d", year)
	return &out, nil
}

// eventExists checks whether the event key is known to Statbotics at all,
// recorded in provenance when the season fallback kicks in.
func (c *Client) eventExists(ctx context.Context, eventKey string) bool {
	var out map[string]any
	found, err := c.getJSON(ctx, fmt.Sprintf("%s/event/%s", c.v2Base, eventKey), &out)
	return err == nil && found && len(out) > 0
}
