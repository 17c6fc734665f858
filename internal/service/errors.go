package service

import (
	"errors"
	"fmt"
)

// Terminal aggregation failures. Any one of these aborts the run; the
// stage it happened in travels with the error.
var (
	ErrIdentityNotFound     = errors.New("identity not found")
	ErrProfileUnavailable   = errors.New("summoner profile unavailable")
	ErrMatchListUnavailable = errors.New("match list unavailable")
)

// Pipeline stages, used to tag terminal failures.
const (
	StageIdentity  = "identity"
	StageProfile   = "profile"
	StageRank      = "rank"
	StageMatchList = "match_list"
	StageMatches   = "matches"
)

// StageError wraps a terminal failure with the stage that produced it.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("stage %s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}
