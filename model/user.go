package model

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type User struct {
	UserID         int       `gorm:"column:user_id;primaryKey;autoIncrement" json:"user_id"`
	Name           string    `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Email          string    `gorm:"column:email;type:varchar(255);uniqueIndex;not null" json:"email"`
	HashedPassword string    `gorm:"column:hashed_password;type:varchar(255);not null" json:"-"`
	Role           string    `gorm:"column:role;type:varchar(32);default:'admin';not null" json:"role"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

type AccessClaims struct {
	UserID uint   `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}
