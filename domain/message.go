// Package domain contains core concepts of the portal messaging core.
// This file defines drafts, sent and received messages and their derived fields.
// No storage, network, or presentation logic should be added here.
package domain

import (
	"slices"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// ReadingRate is the fixed reading speed, in characters per minute, used for
// the estimated read time of a draft.
const ReadingRate = 200

type RecipientKind string

const (
	KindLecturer RecipientKind = "lecturer"
	KindStudent  RecipientKind = "student"
)

type Role string

const (
	RoleStudent  Role = "student"
	RoleLecturer Role = "lecturer"
)

type Category string

const (
	CategoryAcademic       Category = "academic"
	CategoryAdministrative Category = "administrative"
	CategoryGeneral        Category = "general"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

type Status string

const StatusSent Status = "sent"

// Contact identifies a lecturer or a student, either as the recipient of a
// draft or as the sender of a received message.
type Contact struct {
	ID      string        `json:"id,omitempty"`
	Name    string        `json:"name" validate:"required"`
	Address string        `json:"address,omitempty" validate:"omitempty,email"`
	Kind    RecipientKind `json:"kind" validate:"required,oneof=lecturer student"`
}

// Attachment is a descriptor only, the content lives outside the core.
type Attachment struct {
	Name      string `json:"name" validate:"required"`
	Size      int64  `json:"size" validate:"gte=0"`
	MediaKind string `json:"mediaKind,omitempty"`
}

// DraftMessage is a message not yet sent.
// CharacterCount and EstimatedReadTime are recomputed on every write.
type DraftMessage struct {
	ID                uuid.UUID    `json:"id"`
	Subject           string       `json:"subject"`
	Body              string       `json:"body"`
	Recipient         Contact      `json:"recipient"`
	Course            string       `json:"course,omitempty"`
	Category          Category     `json:"category"`
	Priority          Priority     `json:"priority"`
	Attachments       []Attachment `json:"attachments,omitempty"`
	Tags              []string     `json:"tags,omitempty"`
	SenderRole        Role         `json:"senderRole"`
	SenderName        string       `json:"senderName,omitempty"`
	CreatedAt         time.Time    `json:"createdAt"`
	LastModified      time.Time    `json:"lastModified"`
	AutoSaved         bool         `json:"autoSaved"`
	CharacterCount    int          `json:"characterCount"`
	EstimatedReadTime int          `json:"estimatedReadTime"`
}

// SentMessage is a draft frozen at the moment of sending. It keeps the draft
// id and is never mutated afterwards.
type SentMessage struct {
	DraftMessage
	SentAt time.Time `json:"sentAt"`
	Status Status    `json:"status"`
}

// ReceivedMessage is an inbound message. Only Read changes after reception.
type ReceivedMessage struct {
	ID          uuid.UUID    `json:"id"`
	Sender      Contact      `json:"sender"`
	Subject     string       `json:"subject"`
	Body        string       `json:"body"`
	Course      string       `json:"course,omitempty"`
	Category    Category     `json:"category"`
	Priority    Priority     `json:"priority"`
	Attachments []Attachment `json:"attachments,omitempty"`
	ThreadID    string       `json:"threadId,omitempty"`
	ReceivedAt  time.Time    `json:"receivedAt"`
	Read        bool         `json:"read"`
}

func CharacterCount(body string) int {
	return utf8.RuneCountInString(body)
}

// EstimatedReadTime returns whole minutes, rounded up, never below one.
func EstimatedReadTime(characterCount int) int {
	return max(1, (characterCount+ReadingRate-1)/ReadingRate)
}

// Normalize recomputes derived fields and restores the timestamp invariant.
func (d DraftMessage) Normalize() DraftMessage {
	d.CharacterCount = CharacterCount(d.Body)
	d.EstimatedReadTime = EstimatedReadTime(d.CharacterCount)
	d.Tags = NormalizeTags(d.Tags)
	if d.LastModified.Before(d.CreatedAt) {
		d.LastModified = d.CreatedAt
	}
	return d
}

// Freeze turns the draft into its immutable sent copy.
func (d DraftMessage) Freeze(at time.Time) SentMessage {
	frozen := d.Normalize()
	frozen.Attachments = slices.Clone(d.Attachments)
	frozen.Tags = slices.Clone(frozen.Tags)
	return SentMessage{
		DraftMessage: frozen,
		SentAt:       at,
		Status:       StatusSent,
	}
}

func (r ReceivedMessage) HasAttachments() bool {
	return len(r.Attachments) > 0
}
