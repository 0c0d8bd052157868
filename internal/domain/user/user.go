package user

// User is kept for parity with the data contract; no route reads or writes it.
type User struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Username string `gorm:"uniqueIndex;not null;column:username" json:"username"`
	Password string `gorm:"not null;column:password" json:"-"`
}

func (User) TableName() string { return "users" }

type UserInput struct {
	Username string
	Password string
}
