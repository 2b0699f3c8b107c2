package model

import "time"

// Setting value data types.
const (
	DataTypeString  = "string"
	DataTypeNumber  = "number"
	DataTypeBoolean = "boolean"
	DataTypeArray   = "array"
)

// ValidDataType reports whether t is a recognised setting data type.
func ValidDataType(t string) bool {
	switch t {
	case DataTypeString, DataTypeNumber, DataTypeBoolean, DataTypeArray:
		return true
	}
	return false
}

// Setting is a key/value configuration record. SettingValue is a variant
// whose JSON shape must match the declared DataType.
type Setting struct {
	ID           uint        `json:"-" gorm:"primaryKey"`
	SettingKey   string      `json:"settingKey" gorm:"uniqueIndex;size:255;not null"`
	SettingValue interface{} `json:"settingValue" gorm:"serializer:json;not null"`
	Description  string      `json:"description,omitempty" gorm:"size:1000"`
	DataType     string      `json:"dataType" gorm:"size:20;default:'string'"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}
