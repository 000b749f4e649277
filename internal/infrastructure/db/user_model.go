package db

type UserModel struct {
	Id    uint   `gorm:"primaryKey;autoIncrement"`
	Name  string `gorm:"not null"`
	Email string `gorm:"uniqueIndex;not null"`
}

func (UserModel) TableName() string {
	return "users"
}
