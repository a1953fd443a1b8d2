package domain

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// DraftPayload is the content of a composed message as handed over by the
// presentation layer. A nil Recipient means the recipient is absent.
type DraftPayload struct {
	Subject     string       `json:"subject"`
	Body        string       `json:"body"`
	Recipient   *Contact     `json:"recipient"`
	Course      string       `json:"course,omitempty"`
	Category    Category     `json:"category,omitempty" validate:"omitempty,oneof=academic administrative general"`
	Priority    Priority     `json:"priority,omitempty" validate:"omitempty,oneof=low medium high"`
	Attachments []Attachment `json:"attachments,omitempty" validate:"dive"`
	Tags        []string     `json:"tags,omitempty"`
	SenderRole  Role         `json:"senderRole,omitempty" validate:"omitempty,oneof=student lecturer"`
}

// DraftPatch carries the fields changed by an edit. Nil fields are left as is.
type DraftPatch struct {
	Subject     *string       `json:"subject,omitempty"`
	Body        *string       `json:"body,omitempty"`
	Recipient   *Contact      `json:"recipient,omitempty"`
	Course      *string       `json:"course,omitempty"`
	Category    *Category     `json:"category,omitempty" validate:"omitempty,oneof=academic administrative general"`
	Priority    *Priority     `json:"priority,omitempty" validate:"omitempty,oneof=low medium high"`
	Attachments *[]Attachment `json:"attachments,omitempty" validate:"omitempty,dive"`
	Tags        *[]string     `json:"tags,omitempty"`
	SenderRole  *Role         `json:"senderRole,omitempty" validate:"omitempty,oneof=student lecturer"`
}

// ReceivedPayload describes an inbound message handed to the store.
type ReceivedPayload struct {
	Sender      Contact      `json:"sender"`
	Subject     string       `json:"subject"`
	Body        string       `json:"body"`
	Course      string       `json:"course,omitempty"`
	Category    Category     `json:"category,omitempty" validate:"omitempty,oneof=academic administrative general"`
	Priority    Priority     `json:"priority,omitempty" validate:"omitempty,oneof=low medium high"`
	Attachments []Attachment `json:"attachments,omitempty" validate:"dive"`
	ThreadID    string       `json:"threadId,omitempty"`
	ReceivedAt  time.Time    `json:"receivedAt,omitempty"`
}

// NewDraft materializes a payload. createdAt and lastModified are both now.
func NewDraft(id uuid.UUID, payload DraftPayload, senderName string, now time.Time, autoSaved bool) DraftMessage {
	draft := DraftMessage{
		ID:           id,
		Subject:      payload.Subject,
		Body:         payload.Body,
		Course:       strings.TrimSpace(payload.Course),
		Category:     lo.CoalesceOrEmpty(payload.Category, CategoryGeneral),
		Priority:     lo.CoalesceOrEmpty(payload.Priority, PriorityMedium),
		Attachments:  slices.Clone(payload.Attachments),
		Tags:         payload.Tags,
		SenderRole:   lo.CoalesceOrEmpty(payload.SenderRole, RoleStudent),
		SenderName:   senderName,
		CreatedAt:    now,
		LastModified: now,
		AutoSaved:    autoSaved,
	}
	if payload.Recipient != nil {
		draft.Recipient = *payload.Recipient
	}
	return draft.Normalize()
}

// Apply merges the patch into a copy of the draft. lastModified never moves
// backwards, even when the clock does.
func (d DraftMessage) Apply(patch DraftPatch, autoSaved bool, now time.Time) DraftMessage {
	if patch.Subject != nil {
		d.Subject = *patch.Subject
	}
	if patch.Body != nil {
		d.Body = *patch.Body
	}
	if patch.Recipient != nil {
		d.Recipient = *patch.Recipient
	}
	if patch.Course != nil {
		d.Course = strings.TrimSpace(*patch.Course)
	}
	if patch.Category != nil {
		d.Category = *patch.Category
	}
	if patch.Priority != nil {
		d.Priority = *patch.Priority
	}
	if patch.Attachments != nil {
		d.Attachments = slices.Clone(*patch.Attachments)
	}
	if patch.Tags != nil {
		d.Tags = *patch.Tags
	}
	if patch.SenderRole != nil {
		d.SenderRole = *patch.SenderRole
	}
	if now.After(d.LastModified) {
		d.LastModified = now
	}
	d.AutoSaved = autoSaved
	return d.Normalize()
}

// AsPatch turns a full payload into a patch. An absent recipient is kept as
// absent so that an autosave of a half-filled form does not clear it.
func (p DraftPayload) AsPatch() DraftPatch {
	patch := DraftPatch{
		Subject:     lo.ToPtr(p.Subject),
		Body:        lo.ToPtr(p.Body),
		Recipient:   p.Recipient,
		Course:      lo.ToPtr(p.Course),
		Attachments: lo.ToPtr(slices.Clone(p.Attachments)),
		Tags:        lo.ToPtr(slices.Clone(p.Tags)),
	}
	if p.Category != "" {
		patch.Category = lo.ToPtr(p.Category)
	}
	if p.Priority != "" {
		patch.Priority = lo.ToPtr(p.Priority)
	}
	if p.SenderRole != "" {
		patch.SenderRole = lo.ToPtr(p.SenderRole)
	}
	return patch
}

func NewReceived(id uuid.UUID, payload ReceivedPayload, now time.Time) ReceivedMessage {
	return ReceivedMessage{
		ID:          id,
		Sender:      payload.Sender,
		Subject:     payload.Subject,
		Body:        payload.Body,
		Course:      strings.TrimSpace(payload.Course),
		Category:    lo.CoalesceOrEmpty(payload.Category, CategoryGeneral),
		Priority:    lo.CoalesceOrEmpty(payload.Priority, PriorityMedium),
		Attachments: slices.Clone(payload.Attachments),
		ThreadID:    payload.ThreadID,
		ReceivedAt:  lo.Ternary(payload.ReceivedAt.IsZero(), now, payload.ReceivedAt.UTC()),
	}
}

// NormalizeTags trims tags and keeps the first occurrence of each.
func NormalizeTags(tags []string) []string {
	cleaned := lo.FilterMap(tags, func(tag string, _ int) (string, bool) {
		trimmed := strings.TrimSpace(tag)
		return trimmed, trimmed != ""
	})
	if len(cleaned) == 0 {
		return nil
	}
	return lo.Uniq(cleaned)
}
