// Package intake implements the intake query dispatcher: it hands one
// extraction task per practice to a hosted browser agent, then normalizes
// and validates whatever the agent sends back.
package intake

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AgentBackend is the external hosted agent service. RunTask blocks until
// the remote run completes and returns the raw result payload.
type AgentBackend interface {
	RunTask(ctx context.Context, task, outputSchema string) (string, error)
}

// Salvager gets one chance to coerce a payload that failed to decode back
// into schema-conformant JSON.
type Salvager interface {
	SalvageResults(ctx context.Context, raw string) (string, error)
}

type Dispatcher struct {
	backend AgentBackend
	salvage Salvager // optional
	log     *zap.Logger
}

func NewDispatcher(backend AgentBackend, salvage Salvager, log *zap.Logger) *Dispatcher {
	return &Dispatcher{backend: backend, salvage: salvage, log: log}
}

// CheckPractices runs the extraction for every target in order and returns
// exactly one result per target. Any service or validation failure aborts
// the whole run; partial output is never returned.
func (d *Dispatcher) CheckPractices(ctx context.Context, targets []PracticeTarget) ([]IntakeResult, error) {
	if err := ValidateTargets(targets); err != nil {
		return nil, err
	}

	log := d.log.With(zap.String("run_id", uuid.NewString()))
	log.Info("starting intake check", zap.Int("targets", len(targets)))

	results := make([]IntakeResult, 0, len(targets))
	for _, target := range targets {
		log.Info("checking practice",
			zap.String("practice", target.Name),
			zap.String("url", target.URL),
		)

		payload, err := d.backend.RunTask(ctx, BuildTask(target), OutputSchema)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrService, target.Name, err)
		}

		parsed, err := d.parsePayload(ctx, log, payload)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrValidation, target.Name, err)
		}

		res := normalize(parsed, target, time.Now().UTC())
		log.Info("practice checked",
			zap.String("practice", target.Name),
			zap.String("status", string(res.Status)),
		)
		results = append(results, res)
	}

	if err := ValidateResults(results); err != nil {
		return nil, err
	}
	return results, nil
}

// parsePayload decodes the agent payload, falling back to the salvage
// client once when the payload is not valid JSON.
func (d *Dispatcher) parsePayload(ctx context.Context, log *zap.Logger, payload string) ([]IntakeResult, error) {
	parsed, err := decodeResults(payload)
	if err == nil {
		return parsed, nil
	}
	if d.salvage == nil {
		return nil, err
	}

	log.Warn("agent payload is not valid JSON, attempting salvage", zap.Error(err))
	repaired, serr := d.salvage.SalvageResults(ctx, payload)
	if serr != nil {
		return nil, fmt.Errorf("salvage failed: %v (original: %v)", serr, err)
	}
	return decodeResults(repaired)
}

func decodeResults(payload string) ([]IntakeResult, error) {
	trimmed := strings.Trim(strings.TrimSpace(payload), "`")
	trimmed = strings.TrimPrefix(trimmed, "json")
	trimmed = strings.TrimSpace(trimmed)
	if trimmed == "" {
		return nil, nil
	}

	var results []IntakeResult
	if err := json.Unmarshal([]byte(trimmed), &results); err != nil {
		return nil, err
	}
	return results, nil
}

// normalize pins practice and url to the input target, clears the contact
// email unless the practice is accepting, and stamps the check time. An
// empty agent payload degrades to an Unclear record with no evidence.
func normalize(parsed []IntakeResult, target PracticeTarget, now time.Time) IntakeResult {
	res := IntakeResult{Status: StatusUnclear, Evidence: ""}
	if len(parsed) > 0 {
		res = parsed[0]
	}

	res.Practice = target.Name
	res.URL = target.URL
	res.CheckedAt = now

	if res.Status != StatusAccepting {
		res.ContactEmail = nil
	} else if res.ContactEmail != nil {
		email := strings.TrimSpace(*res.ContactEmail)
		if email == "" {
			res.ContactEmail = nil
		} else {
			res.ContactEmail = &email
		}
	}
	return res
}
