// Package accountrepo provides data transfer objects and mapping functions for
// account persistence. It implements the repository pattern for the account
// aggregate, converting between domain entities and database rows.
package accountrepo

import (
	"marketplace/internal/core/domain/model/account"
)

// AccountDTO represents the database structure for persisting account aggregates.
// The email carries a unique index so duplicate registrations fail at the
// database even when two requests race past the application-level check.
type AccountDTO struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Email        string `gorm:"uniqueIndex;size:120;not null"`
	Name         string `gorm:"size:150;not null"`
	PasswordHash string `gorm:"size:200;not null"`
	Role         string `gorm:"size:20;not null;index"`
	Phone        string `gorm:"size:20"`
	StoreAddress string `gorm:"size:200"`
	Rating       float64
}

// TableName specifies the database table name for account entities.
func (AccountDTO) TableName() string {
	return "accounts"
}

// fromDomain converts an account domain aggregate to its database representation.
func fromDomain(a *account.Account) AccountDTO {
	return AccountDTO{
		ID:           a.ID(),
		Email:        a.Email(),
		Name:         a.Name(),
		PasswordHash: a.PasswordHash(),
		Role:         a.Role().String(),
		Phone:        a.Phone(),
		StoreAddress: a.StoreAddress(),
		Rating:       a.Rating(),
	}
}

// toDomain converts a database DTO to an account domain aggregate.
func toDomain(dto AccountDTO) (*account.Account, error) {
	role, err := account.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	return account.RestoreAccount(
		dto.ID,
		dto.Email,
		dto.Name,
		dto.PasswordHash,
		role,
		dto.Phone,
		dto.StoreAddress,
		dto.Rating,
	)
}
