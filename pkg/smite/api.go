package smite

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-smite-api/models"
)

// GetServerStatus returns UP/DOWN status for the primary game and platform
// environments. The server caches this once a minute.
func (c *Client) GetServerStatus(ctx context.Context) (string, error) {
	return c.Call(ctx, MethodGetServerStatus)
}

// GetDataUsed returns the developer's daily usage limits and the current
// consumption against them.
func (c *Client) GetDataUsed(ctx context.Context) (string, error) {
	return c.Call(ctx, MethodGetDataUsed)
}

// GetESportsProLeagueDetails returns matchup information for the current
// eSports Pro League season.
func (c *Client) GetESportsProLeagueDetails(ctx context.Context) (string, error) {
	return c.Call(ctx, MethodGetESportsProLeagueDetails)
}

// GetFriends returns the user names of the player's friends.
func (c *Client) GetFriends(ctx context.Context, player string) (string, error) {
	return c.Call(ctx, MethodGetFriends, player)
}

// GetGodRanks returns rank and worshippers for each god the player has played.
func (c *Client) GetGodRanks(ctx context.Context, player string) (string, error) {
	return c.Call(ctx, MethodGetGodRanks, player)
}

// GetGods returns all gods and their attributes.
func (c *Client) GetGods(ctx context.Context, lang models.LanguageCode) (string, error) {
	return c.Call(ctx, MethodGetGods, lang.WireValue())
}

// GetGodLeaderboard returns the current season leaderboard for a god in a
// ranked queue. Non-ranked queues fail with [ErrRankedQueueRequired] without
// a request.
func (c *Client) GetGodLeaderboard(ctx context.Context, godID string, queue models.GameMode) (string, error) {
	return c.Call(ctx, MethodGetGodLeaderboard, godID, queue.WireValue())
}

// GetGodSkins returns all skins available for a god.
func (c *Client) GetGodSkins(ctx context.Context, godID string, lang models.LanguageCode) (string, error) {
	return c.Call(ctx, MethodGetGodSkins, godID, lang.WireValue())
}

// GetGodRecommendedItems returns the recommended items for a god.
func (c *Client) GetGodRecommendedItems(ctx context.Context, godID string, lang models.LanguageCode) (string, error) {
	return c.Call(ctx, MethodGetGodRecommendedItems, godID, lang.WireValue())
}

// GetItems returns all items and their attributes.
func (c *Client) GetItems(ctx context.Context, lang models.LanguageCode) (string, error) {
	return c.Call(ctx, MethodGetItems, lang.WireValue())
}

// GetMatchDetails returns the statistics of a completed match.
func (c *Client) GetMatchDetails(ctx context.Context, matchID string) (string, error) {
	return c.Call(ctx, MethodGetMatchDetails, matchID)
}

// GetMatchDetailsBatch returns statistics for several completed matches in
// one request. The API caps the response size; keep the list to 5-10 ids.
func (c *Client) GetMatchDetailsBatch(ctx context.Context, matchIDs ...string) (string, error) {
	if len(matchIDs) == 0 {
		return "", fmt.Errorf("%s: %w: no match ids", MethodGetMatchDetailsBatch, ErrInvalidArgument)
	}
	return c.Call(ctx, MethodGetMatchDetailsBatch, strings.Join(matchIDs, ","))
}

// GetMatchPlayerDetails returns player information for a live match.
func (c *Client) GetMatchPlayerDetails(ctx context.Context, matchID string) (string, error) {
	return c.Call(ctx, MethodGetMatchPlayerDetails, matchID)
}

// GetMatchIDsByQueue lists match ids of a queue for a day (yyyyMMdd) and hour.
// hour is "0".."23", "-1" for the whole day, or "H,mm" for a ten-minute
// window (mm in 00,10,..,50).
func (c *Client) GetMatchIDsByQueue(ctx context.Context, queue models.GameMode, date, hour string) (string, error) {
	return c.Call(ctx, MethodGetMatchIDsByQueue, queue.WireValue(), date, hour)
}

// GetLeagueLeaderboard returns the top players of a league. Only ranked
// queues are accepted.
func (c *Client) GetLeagueLeaderboard(ctx context.Context, queue models.GameMode, tier models.LeagueTier, season string) (string, error) {
	return c.Call(ctx, MethodGetLeagueLeaderboard, queue.WireValue(), tier.WireValue(), season)
}

// GetLeagueSeasons lists the seasons, including the active one, of a queue.
// Unlike the leaderboards, any queue is accepted.
func (c *Client) GetLeagueSeasons(ctx context.Context, queue models.GameMode) (string, error) {
	return c.Call(ctx, MethodGetLeagueSeasons, queue.WireValue())
}

// GetMatchHistory returns recent matches and high level statistics for a
// player.
func (c *Client) GetMatchHistory(ctx context.Context, player string) (string, error) {
	return c.Call(ctx, MethodGetMatchHistory, player)
}

// GetMOTDs returns the 20 most recent Match-of-the-Days.
func (c *Client) GetMOTDs(ctx context.Context) (string, error) {
	return c.Call(ctx, MethodGetMOTDs)
}

// GetPlayer returns league and other high level data for a player.
func (c *Client) GetPlayer(ctx context.Context, player string) (string, error) {
	return c.Call(ctx, MethodGetPlayer, player)
}

// GetPlayerStatus returns the player's online status
// (0 offline, 1 lobby, 2 god selection, 3 in game, 4 online, 5 unknown).
func (c *Client) GetPlayerStatus(ctx context.Context, player string) (string, error) {
	return c.Call(ctx, MethodGetPlayerStatus, player)
}

// GetQueueStats returns match summary statistics of a player in a queue,
// grouped by god.
func (c *Client) GetQueueStats(ctx context.Context, player string, queue models.GameMode) (string, error) {
	return c.Call(ctx, MethodGetQueueStats, player, queue.WireValue())
}

// GetTeamDetails returns player count and other details of a clan.
func (c *Client) GetTeamDetails(ctx context.Context, clanID string) (string, error) {
	return c.Call(ctx, MethodGetTeamDetails, clanID)
}

// GetTeamPlayers lists the players of a clan.
func (c *Client) GetTeamPlayers(ctx context.Context, clanID string) (string, error) {
	return c.Call(ctx, MethodGetTeamPlayers, clanID)
}

// GetTopMatches lists the 50 most watched or most recent recorded matches.
func (c *Client) GetTopMatches(ctx context.Context) (string, error) {
	return c.Call(ctx, MethodGetTopMatches)
}

// SearchTeams returns teams whose name contains name.
func (c *Client) SearchTeams(ctx context.Context, name string) (string, error) {
	return c.Call(ctx, MethodSearchTeams, name)
}

// GetPlayerAchievements returns achievement totals (double kills, tower
// kills, first bloods, ...) for a player id.
func (c *Client) GetPlayerAchievements(ctx context.Context, playerID string) (string, error) {
	return c.Call(ctx, MethodGetPlayerAchievements, playerID)
}

// GetPatchInfo returns the currently deployed patch version.
func (c *Client) GetPatchInfo(ctx context.Context) (string, error) {
	return c.Call(ctx, MethodGetPatchInfo)
}
