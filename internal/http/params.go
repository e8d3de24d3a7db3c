package http

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/courtside/tennis-record/internal/player"
	"github.com/courtside/tennis-record/internal/ranking"
	"github.com/courtside/tennis-record/internal/team"
)

// Parsing happens entirely at this boundary; the query services never see
// raw strings for numeric fields.

func parsePlayerCriteria(query url.Values) (player.SearchCriteria, error) {
	criteria := player.SearchCriteria{
		Name:     query.Get("name"),
		Gender:   query.Get("gender"),
		AgeGroup: query.Get("ageGroup"),
		Section:  query.Get("section"),
		SortBy:   query.Get("sortBy"),
		Page:     1,
		PageSize: player.DefaultPageSize,
	}

	var err error
	if criteria.NtrpMin, err = optionalFloat(query, "ntrpMin"); err != nil {
		return criteria, err
	}
	if criteria.NtrpMax, err = optionalFloat(query, "ntrpMax"); err != nil {
		return criteria, err
	}
	if criteria.ActiveYear, err = optionalInt(query, "activeYear"); err != nil {
		return criteria, err
	}
	if page, err := optionalInt(query, "page"); err != nil {
		return criteria, err
	} else if page != nil {
		criteria.Page = *page
	}
	if pageSize, err := optionalInt(query, "pageSize"); err != nil {
		return criteria, err
	} else if pageSize != nil {
		criteria.PageSize = *pageSize
	}
	return criteria, nil
}

func parseTeamCriteria(query url.Values) team.SearchCriteria {
	return team.SearchCriteria{
		Name:        query.Get("name"),
		Section:     query.Get("section"),
		LeagueLevel: query.Get("leagueLevel"),
	}
}

func parseRankingCriteria(query url.Values) ranking.QueryCriteria {
	return ranking.QueryCriteria{
		Category: query.Get("category"),
		Section:  query.Get("section"),
		AgeGroup: query.Get("ageGroup"),
		Gender:   query.Get("gender"),
	}
}

func optionalFloat(query url.Values, key string) (*float64, error) {
	raw := query.Get(key)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("parameter %q must be a number", key)
	}
	return &value, nil
}

func optionalInt(query url.Values, key string) (*int, error) {
	raw := query.Get(key)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("parameter %q must be an integer", key)
	}
	return &value, nil
}
