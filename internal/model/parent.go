package model

// Parent keeps the historical "Studntroll" field name in its JSON contract;
// the frontend and older clients post it exactly like that.
type Parent struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `json:"name"`
	StudentRoll string `gorm:"column:studntroll" json:"Studntroll"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
}
