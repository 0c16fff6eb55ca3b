// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package smite

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/MKhiriev/go-smite-api/internal/cache"
	"github.com/MKhiriev/go-smite-api/models"
)

// API method names as they appear in request paths (without the format
// suffix).
const (
	MethodGetServerStatus            = "gethirezserverstatus"
	MethodGetDataUsed                = "getdataused"
	MethodGetESportsProLeagueDetails = "getesportsproleaguedetails"
	MethodGetFriends                 = "getfriends"
	MethodGetGodRanks                = "getgodranks"
	MethodGetGods                    = "getgods"
	MethodGetGodLeaderboard          = "getgodleaderboard"
	MethodGetGodSkins                = "getgodskins"
	MethodGetGodRecommendedItems     = "getgodrecommendeditems"
	MethodGetItems                   = "getitems"
	MethodGetMatchDetails            = "getmatchdetails"
	MethodGetMatchDetailsBatch       = "getmatchdetailsbatch"
	MethodGetMatchPlayerDetails      = "getmatchplayerdetails"
	MethodGetMatchIDsByQueue         = "getmatchidsbyqueue"
	MethodGetLeagueLeaderboard       = "getleagueleaderboard"
	MethodGetLeagueSeasons           = "getleagueseasons"
	MethodGetMatchHistory            = "getmatchhistory"
	MethodGetMOTDs                   = "getmotd"
	MethodGetPlayer                  = "getplayer"
	MethodGetPlayerStatus            = "getplayerstatus"
	MethodGetQueueStats              = "getqueuestats"
	MethodGetTeamDetails             = "getteamdetails"
	MethodGetTeamPlayers             = "getteamplayers"
	MethodGetTopMatches              = "gettopmatches"
	MethodSearchTeams                = "searchteams"
	MethodGetPlayerAchievements      = "getplayerachievements"
	MethodGetPatchInfo               = "getpatchinfo"
)

// ParamKind describes how one endpoint argument is validated and rendered.
type ParamKind int

const (
	// ParamText is free text (player name, god id, match id, date). It must
	// not be blank.
	ParamText ParamKind = iota
	// ParamIDList is a comma-separated list of ids with no blank entries.
	ParamIDList
	// ParamGameMode is any queue, by id or name.
	ParamGameMode
	// ParamRankedMode is a queue for which IsRanked is true.
	ParamRankedMode
	// ParamLanguage is a language code, by number or name.
	ParamLanguage
	// ParamLeagueTier is a league tier, by number or name.
	ParamLeagueTier
)

func (k ParamKind) String() string {
	switch k {
	case ParamText:
		return "text"
	case ParamIDList:
		return "id,id,..."
	case ParamGameMode:
		return "queue"
	case ParamRankedMode:
		return "ranked-queue"
	case ParamLanguage:
		return "language"
	case ParamLeagueTier:
		return "tier"
	default:
		return fmt.Sprintf("ParamKind(%d)", int(k))
	}
}

// Endpoint is one row of the endpoint table.
type Endpoint struct {
	// Method is the wire method name.
	Method string
	// Params lists the expected arguments in path order.
	Params []ParamKind
	// Cacheable marks catalog data that changes only with patches.
	Cacheable bool
}

var endpointTable = map[string]Endpoint{
	MethodGetServerStatus:            {Method: MethodGetServerStatus},
	MethodGetDataUsed:                {Method: MethodGetDataUsed},
	MethodGetESportsProLeagueDetails: {Method: MethodGetESportsProLeagueDetails},
	MethodGetFriends:                 {Method: MethodGetFriends, Params: []ParamKind{ParamText}},
	MethodGetGodRanks:                {Method: MethodGetGodRanks, Params: []ParamKind{ParamText}},
	MethodGetGods:                    {Method: MethodGetGods, Params: []ParamKind{ParamLanguage}, Cacheable: true},
	MethodGetGodLeaderboard:          {Method: MethodGetGodLeaderboard, Params: []ParamKind{ParamText, ParamRankedMode}},
	MethodGetGodSkins:                {Method: MethodGetGodSkins, Params: []ParamKind{ParamText, ParamLanguage}, Cacheable: true},
	MethodGetGodRecommendedItems:     {Method: MethodGetGodRecommendedItems, Params: []ParamKind{ParamText, ParamLanguage}, Cacheable: true},
	MethodGetItems:                   {Method: MethodGetItems, Params: []ParamKind{ParamLanguage}, Cacheable: true},
	MethodGetMatchDetails:            {Method: MethodGetMatchDetails, Params: []ParamKind{ParamText}},
	MethodGetMatchDetailsBatch:       {Method: MethodGetMatchDetailsBatch, Params: []ParamKind{ParamIDList}},
	MethodGetMatchPlayerDetails:      {Method: MethodGetMatchPlayerDetails, Params: []ParamKind{ParamText}},
	MethodGetMatchIDsByQueue:         {Method: MethodGetMatchIDsByQueue, Params: []ParamKind{ParamGameMode, ParamText, ParamText}},
	MethodGetLeagueLeaderboard:       {Method: MethodGetLeagueLeaderboard, Params: []ParamKind{ParamRankedMode, ParamLeagueTier, ParamText}},
	MethodGetLeagueSeasons:           {Method: MethodGetLeagueSeasons, Params: []ParamKind{ParamGameMode}, Cacheable: true},
	MethodGetMatchHistory:            {Method: MethodGetMatchHistory, Params: []ParamKind{ParamText}},
	MethodGetMOTDs:                   {Method: MethodGetMOTDs},
	MethodGetPlayer:                  {Method: MethodGetPlayer, Params: []ParamKind{ParamText}},
	MethodGetPlayerStatus:            {Method: MethodGetPlayerStatus, Params: []ParamKind{ParamText}},
	MethodGetQueueStats:              {Method: MethodGetQueueStats, Params: []ParamKind{ParamText, ParamGameMode}},
	MethodGetTeamDetails:             {Method: MethodGetTeamDetails, Params: []ParamKind{ParamText}},
	MethodGetTeamPlayers:             {Method: MethodGetTeamPlayers, Params: []ParamKind{ParamText}},
	MethodGetTopMatches:              {Method: MethodGetTopMatches},
	MethodSearchTeams:                {Method: MethodSearchTeams, Params: []ParamKind{ParamText}},
	MethodGetPlayerAchievements:      {Method: MethodGetPlayerAchievements, Params: []ParamKind{ParamText}},
	MethodGetPatchInfo:               {Method: MethodGetPatchInfo, Cacheable: true},
}

// LookupEndpoint returns the table entry for method.
func LookupEndpoint(method string) (Endpoint, bool) {
	ep, ok := endpointTable[strings.ToLower(strings.TrimSpace(method))]
	return ep, ok
}

// Endpoints returns all table entries ordered by method name.
func Endpoints() []Endpoint {
	out := make([]Endpoint, 0, len(endpointTable))
	for _, ep := range endpointTable {
		out = append(out, ep)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Method < out[j].Method })
	return out
}

// Usage renders the method and its argument kinds, e.g.
// "getgodleaderboard <text> <ranked-queue>".
func (e Endpoint) Usage() string {
	var b strings.Builder
	b.WriteString(e.Method)
	for _, p := range e.Params {
		b.WriteString(" <")
		b.WriteString(p.String())
		b.WriteString(">")
	}
	return b.String()
}

// normalize validates args against the endpoint parameters and converts
// enum names to wire values.
func (e Endpoint) normalize(args []string) ([]string, error) {
	if len(args) != len(e.Params) {
		return nil, fmt.Errorf("%w: %s expects %d argument(s), got %d", ErrInvalidArgument, e.Method, len(e.Params), len(args))
	}

	values := make([]string, len(args))
	for i, kind := range e.Params {
		v, err := normalizeArg(kind, args[i])
		if err != nil {
			return nil, fmt.Errorf("%s argument %d: %w", e.Method, i+1, err)
		}
		values[i] = v
	}

	return values, nil
}

// normalizeArg rejects blank arguments. Free text is passed through
// unchanged; ids and enum values are trimmed and canonicalized.
func normalizeArg(kind ParamKind, arg string) (string, error) {
	trimmed := strings.TrimSpace(arg)
	if trimmed == "" {
		return "", fmt.Errorf("%w: empty %s", ErrInvalidArgument, kind)
	}

	switch kind {
	case ParamText:
		return arg, nil
	case ParamIDList:
		ids := strings.Split(trimmed, ",")
		for i, id := range ids {
			ids[i] = strings.TrimSpace(id)
			if ids[i] == "" {
				return "", fmt.Errorf("%w: blank id in list %q", ErrInvalidArgument, trimmed)
			}
		}
		return strings.Join(ids, ","), nil
	case ParamGameMode, ParamRankedMode:
		mode, err := models.ParseGameMode(trimmed)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrInvalidArgument, err)
		}
		if kind == ParamRankedMode && !mode.IsRanked() {
			return "", fmt.Errorf("%w: %s", ErrRankedQueueRequired, mode)
		}
		return mode.WireValue(), nil
	case ParamLanguage:
		lang, err := models.ParseLanguageCode(trimmed)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrInvalidArgument, err)
		}
		return lang.WireValue(), nil
	case ParamLeagueTier:
		tier, err := models.ParseLeagueTier(trimmed)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrInvalidArgument, err)
		}
		return tier.WireValue(), nil
	default:
		return "", fmt.Errorf("%w: unsupported parameter kind %s", ErrInvalidArgument, kind)
	}
}

// Call invokes method from the endpoint table with args in path order.
// Enum arguments may be given by wire value or by name ("451" or
// "ConquestRanked"). Free-text arguments are sent as given, so Call and
// [Client.BuildRequestURL] yield the same path for the same input. Invalid arguments are rejected before any request is
// made. Bodies of cacheable endpoints are served from the cache when one is
// configured.
func (c *Client) Call(ctx context.Context, method string, args ...string) (string, error) {
	ep, ok := LookupEndpoint(method)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownMethod, method)
	}

	values, err := ep.normalize(args)
	if err != nil {
		c.logger.Debug().Err(err).Str("method", ep.Method).Msg("request rejected")
		return "", err
	}

	useCache := ep.Cacheable && c.cache != nil
	key := cache.Key(c.format.WireValue(), ep.Method, values...)
	if useCache {
		if body, hit := c.cache.Get(key); hit {
			c.logger.Debug().Str("method", ep.Method).Msg("served from cache")
			return body, nil
		}
	}

	u, err := c.BuildRequestURL(ep.Method, values...)
	if err != nil {
		return "", fmt.Errorf("%s: %w", ep.Method, err)
	}

	body, err := c.Dispatch(ctx, u)
	if err != nil {
		c.logger.Warn().Err(err).Str("method", ep.Method).Msg("request failed")
		return "", fmt.Errorf("%s: %w", ep.Method, err)
	}

	if useCache {
		c.cache.Put(key, body)
	}

	return body, nil
}
