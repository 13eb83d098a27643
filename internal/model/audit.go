package model

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction identifies what kind of mutation an audit entry records.
type AuditAction string

const (
	AuditResultUpdated   AuditAction = "RESULT_UPDATED"
	AuditResultDeleted   AuditAction = "RESULT_DELETED"
	AuditStudentUpdated  AuditAction = "STUDENT_UPDATED"
	AuditGroupTransfer   AuditAction = "GROUP_TRANSFER"
	AuditQuestionCreated AuditAction = "QUESTION_CREATED"
	AuditQuestionUpdated AuditAction = "QUESTION_UPDATED"
	AuditQuestionDeleted AuditAction = "QUESTION_DELETED"
	AuditSectionCreated  AuditAction = "SECTION_CREATED"
	AuditSectionDeleted  AuditAction = "SECTION_DELETED"
	AuditGroupCreated    AuditAction = "GROUP_CREATED"
	AuditGroupUpdated    AuditAction = "GROUP_UPDATED"
	AuditGroupDeleted    AuditAction = "GROUP_DELETED"
)

// AuditLog is one append-only accountability record. Entries are never
// mutated or deleted; Details is a free-text before/after description.
type AuditLog struct {
	ID         uuid.UUID   `json:"id"`
	Action     AuditAction `json:"action"`
	TargetID   string      `json:"target_id"`
	TargetName string      `json:"target_name"`
	Details    string      `json:"details"`
	AdminEmail string      `json:"admin_email"`
	Timestamp  time.Time   `json:"timestamp"`
}
