package problempart

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/partsdesk-backend/internal/domain"
	"github.com/heartmarshall/partsdesk-backend/pkg/ctxutil"
	"github.com/heartmarshall/partsdesk-backend/pkg/flight"
)

// submitTimeout bounds one shared submission, including the wait for the
// order lock.
const submitTimeout = time.Minute

// Submit validates the form state, builds the payload and sends it: a
// create when input.ID is nil, an update of that record otherwise.
func (s *Service) Submit(ctx context.Context, input SubmitInput) (*domain.ProblematicPartRecord, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	part := Build(input.OrderID, input.ProblemType, input.Common, input.Fields, input.Replacement)

	key, err := submissionKey(input.ID, part)
	if err != nil {
		return nil, fmt.Errorf("submit problematic part: %w", err)
	}

	rec, shared, err := flight.Do(ctx, &s.inflight, key, submitTimeout,
		func(ctx context.Context) (*domain.ProblematicPartRecord, error) {
			unlock := s.locks.lock(part.OrderID)
			defer unlock()
			return s.send(ctx, input.ID, part)
		})
	if err != nil {
		return nil, err
	}
	if shared {
		s.log.DebugContext(ctx, "duplicate submission collapsed", slog.String("order_id", part.OrderID))
	}

	s.publish(ctx, domain.Event{
		Type:       domain.EventProblemPartSubmitted,
		Key:        part.OrderID,
		Actor:      ctxutil.ActorFromCtx(ctx),
		OccurredAt: time.Now().UTC(),
		Payload:    rec,
	})
	return rec, nil
}

func (s *Service) send(ctx context.Context, id *string, part domain.ProblematicPart) (*domain.ProblematicPartRecord, error) {
	if id == nil {
		rec, err := s.parts.CreateProblematicPart(ctx, part)
		if err != nil {
			return nil, fmt.Errorf("create problematic part: %w", err)
		}
		s.log.InfoContext(ctx, "problematic part created",
			slog.String("order_id", part.OrderID),
			slog.String("id", rec.ID),
			slog.String("problem_type", part.ProblemType.String()),
		)
		return rec, nil
	}

	rec, err := s.parts.UpdateProblematicPart(ctx, *id, part)
	if err != nil {
		return nil, fmt.Errorf("update problematic part %s: %w", *id, err)
	}
	s.log.InfoContext(ctx, "problematic part updated",
		slog.String("order_id", part.OrderID),
		slog.String("id", *id),
		slog.String("problem_type", part.ProblemType.String()),
	)
	return rec, nil
}

// submissionKey identifies a submission by order, target record and payload.
func submissionKey(id *string, part domain.ProblematicPart) (string, error) {
	body, err := json.Marshal(part)
	if err != nil {
		return "", err
	}
	h := sha256.New()
	if id != nil {
		h.Write([]byte(*id))
	}
	h.Write([]byte{0})
	h.Write(body)
	return part.OrderID + ":" + hex.EncodeToString(h.Sum(nil)), nil
}
