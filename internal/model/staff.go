package model

// The three staff entities share the empid login key but live in separate
// tables, mirroring the collections they came from.

type Teacher struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Name      string `json:"name"`
	EmpID     string `gorm:"column:empid" json:"empid"`
	ClsAssign string `gorm:"column:cls_assign" json:"cls_assign"`
	Phone     string `json:"phone"`
	Img       string `json:"img"`
}

type Principal struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `json:"name"`
	EmpID string `gorm:"column:empid" json:"empid"`
	Phone string `json:"phone"`
	Img   string `json:"img"`
}

type Superuser struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `json:"name"`
	EmpID string `gorm:"column:empid" json:"empid"`
	Phone string `json:"phone"`
	Img   string `json:"img"`
}
