package domain

// Group represents a ministry or fellowship group members can belong to.
type Group struct {
	Model
	Name        string  `gorm:"column:name;size:255;uniqueIndex;not null" json:"name"`
	Description *string `gorm:"column:description;size:1024" json:"description,omitempty"`

	Members []Member `gorm:"many2many:group_members" json:"members,omitempty"`
}

// TableName sets the table name for Group.
func (Group) TableName() string { return "groups" }
