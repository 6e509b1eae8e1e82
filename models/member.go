package models

import "time"

const DefaultMemberRole = "member"

type ProjectMember struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ContactID uint      `gorm:"uniqueIndex:idx_member_contact_project;not null" json:"contactId"`
	ProjectID uint      `gorm:"uniqueIndex:idx_member_contact_project;not null;index" json:"projectId"`
	Role      string    `gorm:"size:50;not null;default:member" json:"role"`
	JoinedAt  time.Time `gorm:"autoCreateTime" json:"joinedAt"`

	Contact *ContactSummary `gorm:"foreignKey:ContactID" json:"contact,omitempty"`
	Project *ProjectSummary `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
}
