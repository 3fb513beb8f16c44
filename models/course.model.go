package models

import "gorm.io/datatypes"

type Category struct {
	Base
	Name string `json:"name" gorm:"unique;not null"`
}

// Course is the root of the catalog hierarchy: Course -> Module -> Lesson -> Assignment.
type Course struct {
	Base
	Title       string         `json:"title" gorm:"not null"`
	Description string         `json:"description" gorm:"type:text"`
	CategoryID  *uint          `json:"category_id" gorm:"index"`
	TeacherID   uint           `json:"teacher_id" gorm:"index;not null"`
	Tags        datatypes.JSON `json:"tags"` // JSON array of strings
	Category    *Category      `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Teacher     *User          `json:"teacher,omitempty" gorm:"foreignKey:TeacherID"`
	Modules     []Module       `json:"modules,omitempty" gorm:"foreignKey:CourseID"`
}
