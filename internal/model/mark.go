package model

// Mark holds at most one row per roll number, maintained by upsert. The two
// test fields are pointers so a freshly upserted row carries only the field
// that was actually submitted.
type Mark struct {
	ID        uint     `gorm:"primaryKey" json:"id"`
	RollNo    string   `gorm:"column:rollno" json:"rollno"`
	ClassTest *float64 `gorm:"column:classtest" json:"classtest,omitempty"`
	CycleTest *float64 `gorm:"column:cycletest" json:"cycletest,omitempty"`
}
