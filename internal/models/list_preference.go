package models

import "time"

// ListPreference stores the page size an actor picked for one list page
type ListPreference struct {
	ID        uint      `json:"-" gorm:"primarykey"`
	Actor     string    `json:"actor" gorm:"column:actor;size:191;uniqueIndex:idx_list_pref_actor_page"`
	PageType  string    `json:"page_type" gorm:"column:page_type;size:64;uniqueIndex:idx_list_pref_actor_page"`
	PageSize  int       `json:"page_size" gorm:"column:page_size"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName sets the insert table name for ListPreference
func (ListPreference) TableName() string {
	return "list_preferences"
}
