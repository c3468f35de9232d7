package models

// Role is the closed set of staff roles. Authorization checks compare
// against these constants rather than raw strings.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleUser:
		return true
	}
	return false
}

// Staff is a credential plus profile record. Username is the primary
// identity; StaffID is a separate unique employee identifier.
type Staff struct {
	Username   string `gorm:"primaryKey;type:varchar(50)" json:"username"`
	Password   string `gorm:"type:varchar(255);not null" json:"-"`
	Name       string `gorm:"type:varchar(255);not null" json:"name"`
	Role       Role   `gorm:"type:varchar(20);not null" json:"role"`
	Department string `gorm:"type:varchar(100)" json:"department"`
	StaffID    string `gorm:"column:staff_id;type:varchar(20);unique;not null" json:"staffId"`
}

func (Staff) TableName() string {
	return "staff"
}
