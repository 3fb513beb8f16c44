package models

// Module represents a section within a course. It owns lessons and at most one quiz.
type Module struct {
	Base
	CourseID   uint     `json:"course_id" gorm:"index;not null"`
	Title      string   `json:"title" gorm:"not null"`
	OrderIndex int      `json:"order_index" gorm:"default:0"`
	Lessons    []Lesson `json:"lessons,omitempty" gorm:"foreignKey:ModuleID"`
}

type Lesson struct {
	Base
	ModuleID uint   `json:"module_id" gorm:"index;not null"`
	Title    string `json:"title" gorm:"not null"`
	Content  string `json:"content" gorm:"type:text"`
	VideoURL string `json:"video_url"`
}
