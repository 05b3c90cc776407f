package model

import "time"

// Contact is a message left through the public contact form.
type Contact struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Name          string    `json:"name" gorm:"size:100;not null"`
	Email         string    `json:"email" gorm:"size:120;not null"`
	Phone         *string   `json:"phone,omitempty" gorm:"size:20"`
	Message       string    `json:"message" gorm:"type:text;not null"`
	DateSubmitted time.Time `json:"date_submitted" gorm:"autoCreateTime"`
}

// Testimonial is a mentee testimonial shown on the landing page.
type Testimonial struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:100;not null"`
	Company   *string   `json:"company,omitempty" gorm:"size:100"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	Rating    *int      `json:"rating,omitempty"`
	DateAdded time.Time `json:"date_added" gorm:"autoCreateTime"`
}

// Article is a published blog article.
type Article struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Title      string    `json:"title" gorm:"size:200;not null"`
	Content    string    `json:"content" gorm:"type:text;not null"`
	Tagline    *string   `json:"tagline,omitempty" gorm:"size:50"`
	DatePosted time.Time `json:"date_posted" gorm:"autoCreateTime"`
}
