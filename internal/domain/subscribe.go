package domain

import "time"

// Subscribe means UserID follows AuthorID. A user never follows themselves.
type Subscribe struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	UserID    int64     `json:"user_id" gorm:"not null;index;uniqueIndex:idx_subscribe_user_author;check:chk_subscribes_not_self,user_id <> author_id"`
	AuthorID  int64     `json:"author_id" gorm:"not null;index;uniqueIndex:idx_subscribe_user_author"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	Author *User `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
}

func (Subscribe) TableName() string {
	return "subscribes"
}
