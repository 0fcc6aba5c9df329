package providers

import (
	"context"
	"net/http"
	"net/url"
)

// RiotProvider serves the MOBA category. The raw summoner/ranked payload is mapped
// onto the standardized MOBA keys (player_level, current_rank, wins, losses, win_rate).
type RiotProvider struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewRiotProvider(baseURL, apiKey string) *RiotProvider {
	return &RiotProvider{baseURL: baseURL, apiKey: apiKey, client: newHTTPClient()}
}

func (p *RiotProvider) Fetch(ctx context.Context, handle string) (map[string]interface{}, error) {
	raw, err := fetchJSON(ctx, p.client,
		p.baseURL+"/summoner/"+url.PathEscape(handle),
		map[string]string{"X-Riot-Token": p.apiKey})
	if err != nil {
		return nil, err
	}

	stats := map[string]interface{}{}
	copyField(stats, raw, "player_level", "summonerLevel")
	copyField(stats, raw, "rank_tier", "tier")
	copyField(stats, raw, "rank_division", "rank")
	copyField(stats, raw, "wins", "wins")
	copyField(stats, raw, "losses", "losses")

	if tier, ok := raw["tier"].(string); ok {
		rank := tier
		if div, ok := raw["rank"].(string); ok {
			rank += " " + div
		}
		stats["current_rank"] = rank
	}

	wins, wok := number(raw["wins"])
	losses, lok := number(raw["losses"])
	if wok && lok && wins+losses > 0 {
		stats["win_rate"] = wins / (wins + losses) * 100
	}
	return stats, nil
}

// copyField moves src[from] into dst[to] when present.
func copyField(dst, src map[string]interface{}, to, from string) {
	if v, ok := src[from]; ok {
		dst[to] = v
	}
}

func number(v interface{}) (float64, bool) {
	f, ok := v.(float64)
	return f, ok
}
