package domain

// Driver represents a transport-ministry driver.
type Driver struct {
	Model
	FullName      string  `gorm:"column:full_name;size:255;not null" json:"full_name"`
	PhoneNumber   *string `gorm:"column:phone_number;size:32;uniqueIndex" json:"phone_number,omitempty"`
	LicenseNumber string  `gorm:"column:license_number;size:64;uniqueIndex;not null" json:"license_number"`
	VehicleNumber *string `gorm:"column:vehicle_number;size:64" json:"vehicle_number,omitempty"`
}

// TableName sets the table name for Driver.
func (Driver) TableName() string { return "drivers" }
