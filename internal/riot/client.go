package riot

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/brandonyen/scout-gg/internal/config"
	"github.com/valyala/fasthttp"
)

// Client talks to the Riot API. Account-v1 and match-v5 live on the
// regional routing host (americas/europe/asia), summoner-v4 and league-v4
// on the platform host (na1, euw1, ...).
type Client struct {
	apiKey        string
	accountRegion string
	platform      string
	client        *fasthttp.Client

	rateLimitMu sync.RWMutex
	rateLimit   RateLimitInfo
}

// RateLimitInfo mirrors the X-App-Rate-Limit headers Riot attaches to
// every response. Tracked for observability only; pacing is left to the
// caller.
type RateLimitInfo struct {
	Limit      string    `json:"limit"`
	Count      string    `json:"count"`
	RetryAfter int       `json:"retry_after"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		apiKey:        cfg.RiotAPIKey,
		accountRegion: cfg.AccountRegion,
		platform:      cfg.PlatformRegion,
		client: &fasthttp.Client{
			MaxConnsPerHost:     100,
			ReadTimeout:         10 * time.Second,
			WriteTimeout:        10 * time.Second,
			MaxIdleConnDuration: 1 * time.Minute,
		},
	}
}

func (c *Client) GetRateLimitInfo() RateLimitInfo {
	c.rateLimitMu.RLock()
	defer c.rateLimitMu.RUnlock()
	return c.rateLimit
}

func (c *Client) updateRateLimit(resp *fasthttp.Response) {
	c.rateLimitMu.Lock()
	defer c.rateLimitMu.Unlock()

	if limit := string(resp.Header.Peek("X-App-Rate-Limit")); limit != "" {
		c.rateLimit.Limit = limit
	}
	if count := string(resp.Header.Peek("X-App-Rate-Limit-Count")); count != "" {
		c.rateLimit.Count = count
	}
	if retry := string(resp.Header.Peek("Retry-After")); retry != "" {
		if val, err := strconv.Atoi(retry); err == nil {
			c.rateLimit.RetryAfter = val
		}
	}
	c.rateLimit.UpdatedAt = time.Now()
}

func (c *Client) AccountByRiotID(ctx context.Context, gameName, tagLine string) (*AccountResponse, error) {
	url := fmt.Sprintf("https://%s.api.riotgames.com/riot/account/v1/accounts/by-riot-id/%s/%s", c.accountRegion, gameName, tagLine)
	return doRequest[AccountResponse](ctx, c, url)
}

func (c *Client) SummonerByPuuid(ctx context.Context, puuid string) (*SummonerResponse, error) {
	url := fmt.Sprintf("https://%s.api.riotgames.com/lol/summoner/v4/summoners/by-puuid/%s", c.platform, puuid)
	return doRequest[SummonerResponse](ctx, c, url)
}

func (c *Client) LeagueEntriesBySummoner(ctx context.Context, summonerID string) ([]LeagueEntry, error) {
	url := fmt.Sprintf("https://%s.api.riotgames.com/lol/league/v4/entries/by-summoner/%s", c.platform, summonerID)
	entries, err := doRequest[[]LeagueEntry](ctx, c, url)
	if err != nil {
		return nil, err
	}
	return *entries, nil
}

func (c *Client) MatchIDsByPuuid(ctx context.Context, puuid string, count int) ([]string, error) {
	url := fmt.Sprintf("https://%s.api.riotgames.com/lol/match/v5/matches/by-puuid/%s/ids?start=0&count=%d", c.accountRegion, puuid, count)
	ids, err := doRequest[[]string](ctx, c, url)
	if err != nil {
		return nil, err
	}
	return *ids, nil
}

func (c *Client) MatchByID(ctx context.Context, matchID string) (*MatchResponse, error) {
	url := fmt.Sprintf("https://%s.api.riotgames.com/lol/match/v5/matches/%s", c.accountRegion, matchID)
	return doRequest[MatchResponse](ctx, c, url)
}

func doRequest[T any](ctx context.Context, client *Client, url string) (*T, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("X-Riot-Token", client.apiKey)

	deadline, ok := ctx.Deadline()
	if ok {
		if err := client.client.DoDeadline(req, resp, deadline); err != nil {
			return nil, err
		}
	} else {
		if err := client.client.Do(req, resp); err != nil {
			return nil, err
		}
	}

	client.updateRateLimit(resp)

	if resp.StatusCode() == fasthttp.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, &APIError{Status: resp.StatusCode(), Body: string(resp.Body())}
	}

	var result T
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, err
	}
	return &result, nil
}
