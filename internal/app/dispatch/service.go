// Package dispatch applies resolved actions to session state: it is the one
// place that mutates a session, and the one switch over the action union.
package dispatch

import (
	"context"
	"strings"

	"deskpilot/internal/app/editor"
	"deskpilot/internal/app/resolve"
	"deskpilot/internal/domain"
	"deskpilot/internal/observability"
)

// Fallback and confirmation texts returned per action kind. Device result
// texts come verbatim from the device collaborator instead.
const (
	replyFontSize = "Font size updated."
	replyBold     = "Toggled bold."
	replyUnknown  = "Sorry, I didn't understand that command."
)

type Service struct {
	store   domain.SessionStore
	devices domain.DeviceController
	chain   *resolve.Chain

	// strictIndexes turns an out-of-bounds paragraph index into a
	// validation error instead of the default silent no-op.
	strictIndexes bool

	locks *sessionLocks
}

func NewService(
	store domain.SessionStore,
	devices domain.DeviceController,
	chain *resolve.Chain,
	strictIndexes bool,
) *Service {
	return &Service{
		store:         store,
		devices:       devices,
		chain:         chain,
		strictIndexes: strictIndexes,
		locks:         newSessionLocks(),
	}
}

type Input struct {
	SessionID domain.SessionID
	Text      string

	// Action, when set, skips the resolver chain. The /action endpoint uses
	// this for commands that arrive already structured.
	Action *domain.Action
}

type Output struct {
	SessionID domain.SessionID
	Result    string
	Document  domain.Document
	History   []domain.ChatTurn
}

// Dispatch runs one command against one session: validate, resolve, apply,
// persist. History and document are persisted together in a single Save,
// only after every step succeeded; a failed dispatch leaves the stored
// session exactly as it was.
func (s *Service) Dispatch(ctx context.Context, in Input) (*Output, error) {
	if strings.TrimSpace(in.Text) == "" {
		return nil, domain.ErrEmptyInput
	}

	// Two concurrent dispatches on the same session must not interleave
	// their read-modify-write. A freshly minted id is private to this call,
	// so only caller-supplied ids need the lock.
	if in.SessionID != "" {
		unlock := s.locks.lock(in.SessionID)
		defer unlock()
	}

	session, err := s.store.GetOrCreate(in.SessionID)
	if err != nil {
		return nil, err
	}

	log := observability.LoggerFromContext(ctx).With("session_id", session.ID)
	log.Info("dispatching", "text", in.Text)

	var action domain.Action
	if in.Action != nil {
		action = *in.Action
	} else {
		action, err = s.chain.Resolve(ctx, resolve.Input{
			Text:    in.Text,
			History: session.History,
		})
		if err != nil {
			countFailure(err)
			return nil, err
		}
	}

	result, doc, err := s.apply(ctx, action, session.Document)
	if err != nil {
		log.Error("apply failed", "action", action.Kind, "error", err)
		countFailure(err)
		return nil, err
	}

	history := append(session.History,
		domain.ChatTurn{Role: domain.RoleUser, Content: in.Text},
		domain.ChatTurn{Role: domain.RoleAssistant, Content: result},
	)

	if err := s.store.Save(session.ID, history, doc); err != nil {
		log.Error("failed to save session", "error", err)
		return nil, err
	}

	observability.DispatchActions.WithLabelValues(string(action.Kind)).Inc()
	log.Info("dispatch completed", "action", action.Kind)

	return &Output{
		SessionID: session.ID,
		Result:    result,
		Document:  doc,
		History:   history,
	}, nil
}

// apply executes a single action against the document, returning the result
// text and the (possibly new) document snapshot. The input document is left
// untouched either way.
func (s *Service) apply(
	ctx context.Context,
	action domain.Action,
	doc domain.Document,
) (string, domain.Document, error) {
	switch action.Kind {
	case domain.ActionDeviceOn, domain.ActionDeviceOff:
		if action.Entity == "" {
			return "", nil, domain.ErrMissingEntity
		}
		var (
			result string
			err    error
		)
		if action.Kind == domain.ActionDeviceOn {
			result, err = s.devices.TurnOn(ctx, action.Entity)
		} else {
			result, err = s.devices.TurnOff(ctx, action.Entity)
		}
		if err != nil {
			return "", nil, err
		}
		return result, doc, nil

	case domain.ActionSetFontSize:
		next, applied := editor.SetFontSize(doc, action.ParagraphIndex, action.FontSize)
		if err := s.checkApplied(applied, action.ParagraphIndex); err != nil {
			return "", nil, err
		}
		return replyFontSize, next, nil

	case domain.ActionToggleBold:
		next, applied := editor.ToggleBold(doc, action.ParagraphIndex)
		if err := s.checkApplied(applied, action.ParagraphIndex); err != nil {
			return "", nil, err
		}
		return replyBold, next, nil

	case domain.ActionAlignParagraph:
		next, applied := editor.AlignParagraph(doc, action.ParagraphIndex, action.Alignment)
		if err := s.checkApplied(applied, action.ParagraphIndex); err != nil {
			return "", nil, err
		}
		return "Paragraph aligned " + string(action.Alignment) + ".", next, nil

	case domain.ActionPlainReply:
		return action.Text, doc, nil
	}

	return replyUnknown, doc, nil
}

func (s *Service) checkApplied(applied bool, index int) error {
	if !applied && s.strictIndexes {
		return domain.Invalid("paragraph index %d out of range", index)
	}
	return nil
}

func countFailure(err error) {
	class := "collaborator"
	if domain.IsValidation(err) {
		class = "validation"
	}
	observability.DispatchFailures.WithLabelValues(class).Inc()
}
