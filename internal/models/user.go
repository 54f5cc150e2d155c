package models

// User mirrors the legacy users table carried over from the first schema
// revision. Admin access uses the shared ADMIN_PASSWORD secret, not user
// records; the table is kept so existing deployments migrate cleanly.
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"not null;unique" json:"username"`
	Password string `gorm:"not null" json:"-"`
}

func (User) TableName() string {
	return "users"
}
