package model

type Student struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `json:"name"`
	RollNo  string `gorm:"column:rollno" json:"rollno"` // login key; not unique in storage
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Img     string `json:"img"`
}

// RollProjection is the shape returned by the student-rolls listing.
type RollProjection struct {
	RollNo string `gorm:"column:rollno" json:"rollno"`
}
