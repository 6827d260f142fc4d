package models

// DailyCounter mints the per-branch daily order sequence. One row per
// (branch_id, counter_date); last_seq only ever moves forward within a day.
// Incremented via a single atomic upsert, never read-modify-write.
type DailyCounter struct {
	BranchID    uint   `gorm:"primaryKey;autoIncrement:false" json:"branch_id"`
	CounterDate string `gorm:"primaryKey;type:varchar(10)" json:"counter_date"`
	LastSeq     int    `gorm:"not null;default:0" json:"last_seq"`
}
