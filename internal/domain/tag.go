package domain

type Tag struct {
	ID    int64  `json:"id" gorm:"primaryKey"`
	Name  string `json:"name" gorm:"size:200;not null;uniqueIndex"`
	Color string `json:"color" gorm:"size:7;not null;uniqueIndex"`
	Slug  string `json:"slug" gorm:"size:200;not null;uniqueIndex"`
}

func (Tag) TableName() string {
	return "tags"
}
