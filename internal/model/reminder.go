package model

// Reminder represents a one-shot reminder waiting to fire.
//
// TriggerTime is stored as an RFC 3339 UTC string so that lexical ordering of
// the column matches chronological ordering of the instants.
type Reminder struct {
	ID          uint    `gorm:"primaryKey"`
	Message     string  `gorm:"type:text;not null"`
	TriggerTime string  `gorm:"index;not null"`
	AIAdvice    *string `gorm:"type:text"`
}
