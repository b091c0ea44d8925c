// internal/model/profile.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Profile はユーザー(習慣の所有者)の基本情報
type Profile struct {
	ProfileID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"profile_id"`
	Login        string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"login"`
	Email        *string   `gorm:"type:varchar(255);uniqueIndex" json:"email,omitempty"`
	FirstName    *string   `gorm:"type:varchar(100)" json:"first_name,omitempty"`
	LastName     *string   `gorm:"type:varchar(100)" json:"last_name,omitempty"`
	PasswordHash string    `gorm:"not null" json:"-"`
	IsActive     bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// プロフィール削除時に習慣(とその実績)も消える
	Habits []Habit `gorm:"foreignKey:ProfileID;references:ProfileID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Profile) TableName() string {
	return "profiles"
}

type ContextKey string

const (
	ProfileIDKey ContextKey = "profileID"
)

// CreateProfileRequest はプロフィール作成APIのリクエストボディ
type CreateProfileRequest struct {
	Login     string  `json:"login" validate:"required,min=3,max=100"`
	Password  string  `json:"password" validate:"required,min=8,max=72"`
	Email     *string `json:"email" validate:"omitempty,email,max=255"`
	FirstName *string `json:"first_name" validate:"omitempty,max=100"`
	LastName  *string `json:"last_name" validate:"omitempty,max=100"`
}

// UpdateProfileRequest は部分更新用。nil のフィールドは変更しない
type UpdateProfileRequest struct {
	Email     *string `json:"email" validate:"omitempty,email,max=255"`
	FirstName *string `json:"first_name" validate:"omitempty,max=100"`
	LastName  *string `json:"last_name" validate:"omitempty,max=100"`
	Password  *string `json:"password" validate:"omitempty,min=8,max=72"`
	IsActive  *bool   `json:"is_active"`
}

// ProfileResponse はクライアントに返すプロフィール情報
type ProfileResponse struct {
	ProfileID uuid.UUID `json:"profile_id"`
	Login     string    `json:"login"`
	Email     *string   `json:"email,omitempty"`
	FirstName *string   `json:"first_name,omitempty"`
	LastName  *string   `json:"last_name,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func NewProfileResponse(p *Profile) ProfileResponse {
	return ProfileResponse{
		ProfileID: p.ProfileID,
		Login:     p.Login,
		Email:     p.Email,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		IsActive:  p.IsActive,
		CreatedAt: p.CreatedAt,
	}
}
