package models

import (
	"time"
)

// Role is the platform role carried by a user and by their JWT.
type Role string

const (
	RoleUser      Role = "user"
	RoleCreator   Role = "creator"
	RoleDeveloper Role = "developer"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleCreator, RoleDeveloper:
		return true
	}
	return false
}

// User is an account of the platform
type User struct {
	ID                 string     `json:"id" gorm:"primaryKey;type:uuid"`
	Email              string     `json:"email" gorm:"uniqueIndex;not null"`
	Password           string     `json:"-"`
	Role               Role       `json:"role" gorm:"type:varchar(20);default:'user'"`
	Username           string     `json:"username"`
	ProfilePictureURL  string     `json:"profilePictureUrl" gorm:"column:profile_picture_url"`
	FullName           string     `json:"fullName,omitempty"`
	Age                *int       `json:"age,omitempty"`
	DateOfBirth        string     `json:"dateOfBirth,omitempty"`
	Gender             string     `json:"gender,omitempty"`
	Phone              string     `json:"phone,omitempty"`
	VitrineSlug        string     `json:"vitrineSlug" gorm:"uniqueIndex"`
	Balance            int64      `json:"balance" gorm:"not null;default:0"`
	StripeCustomerID   string     `json:"-" gorm:"column:stripe_customer_id"`
	ResetCodeHash      string     `json:"-"`
	ResetCodeExpiresAt *time.Time `json:"-"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`

	Followers []string `json:"followers" gorm:"-"`
	Following []string `json:"following" gorm:"-"`
}

func (User) TableName() string {
	return "users"
}

// Public strips everything a visitor should not see on a vitrine.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:                u.ID,
		Role:              u.Role,
		Username:          u.Username,
		ProfilePictureURL: u.ProfilePictureURL,
		VitrineSlug:       u.VitrineSlug,
		Followers:         u.Followers,
		Following:         u.Following,
	}
}

type PublicUser struct {
	ID                string   `json:"id"`
	Role              Role     `json:"role"`
	Username          string   `json:"username"`
	ProfilePictureURL string   `json:"profilePictureUrl"`
	VitrineSlug       string   `json:"vitrineSlug"`
	Followers         []string `json:"followers"`
	Following         []string `json:"following"`
}

// UserCreate is the registration payload
// @Description model used to register a new account
type UserCreate struct {
	Email    string `json:"email" binding:"required,email" example:"fan@example.com"`
	Password string `json:"password" binding:"required,min=6" example:"Password123"`
	Username string `json:"username" example:"fan123"`
}

// UserLogin model used to sign in
type UserLogin struct {
	Email    string `json:"email" binding:"required,email" example:"fan@example.com"`
	Password string `json:"password" binding:"required" example:"Password123"`
}

// UserUpdate is a partial profile update; nil fields are left untouched.
type UserUpdate struct {
	Username    *string `json:"username"`
	FullName    *string `json:"fullName"`
	Age         *int    `json:"age" binding:"omitempty,min=0,max=150"`
	DateOfBirth *string `json:"dateOfBirth"`
	Gender      *string `json:"gender"`
	Phone       *string `json:"phone"`
	VitrineSlug *string `json:"vitrineSlug" binding:"omitempty,min=3,max=64"`
}

type PasswordForgot struct {
	Email string `json:"email" binding:"required,email"`
}

type PasswordReset struct {
	Email    string `json:"email" binding:"required,email"`
	Code     string `json:"code" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

type RoleUpdate struct {
	Role Role `json:"role" binding:"required" example:"creator"`
}

// Follow is one edge of the social graph: FollowerID follows FolloweeID.
type Follow struct {
	FollowerID string    `json:"followerId" gorm:"primaryKey;type:uuid"`
	FolloweeID string    `json:"followeeId" gorm:"primaryKey;type:uuid;index"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (Follow) TableName() string {
	return "follows"
}

// RevokedToken keeps signed-out JWT ids until they would have expired anyway.
type RevokedToken struct {
	JTI       string    `gorm:"primaryKey"`
	ExpiresAt time.Time `gorm:"index"`
}

func (RevokedToken) TableName() string {
	return "revoked_tokens"
}
