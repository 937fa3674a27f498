package converters

import "github.com/hardcore/accounting/internal/models"

// UserInfoC2S converts internal user records into the view returned to clients.
type UserInfoC2S struct{}

// NewUserInfoC2S creates a new UserInfoC2S.
func NewUserInfoC2S() *UserInfoC2S {
	return &UserInfoC2S{}
}

// Convert maps a UserInfo to a UserView.
func (c *UserInfoC2S) Convert(userInfo models.UserInfo) models.UserView {
	return models.UserView{
		ID:       userInfo.ID,
		Username: userInfo.Username,
		Password: userInfo.Password,
	}
}

// UserInfoP2C converts database rows into internal user records.
type UserInfoP2C struct{}

// NewUserInfoP2C creates a new UserInfoP2C.
func NewUserInfoP2C() *UserInfoP2C {
	return &UserInfoP2C{}
}

// Convert maps a UserInfoDB to a UserInfo.
func (c *UserInfoP2C) Convert(row models.UserInfoDB) models.UserInfo {
	return models.UserInfo{
		ID:       row.ID,
		Username: row.Username,
		Password: row.Password,
	}
}
