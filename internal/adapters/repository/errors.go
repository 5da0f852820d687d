package repository

import "errors"

// Sentinel kinds for store errors.
var (
	ErrMissingTeam   = errors.New("game record missing a team name")
	ErrSameTeam      = errors.New("game record has a team playing itself")
	ErrInvalidScore  = errors.New("game record has a negative score")
	ErrInvalidSeason = errors.New("game record missing a season")
)
