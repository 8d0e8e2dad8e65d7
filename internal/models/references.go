package models

// ReferencesModel References model for related data
type ReferencesModel struct {
	Charts     []ChartReference `json:"charts"`
	Situations []interface{}    `json:"situations"`
}

// NewEmptyReferences creates a new empty References model with initialized empty slices
func NewEmptyReferences() ReferencesModel {
	return ReferencesModel{
		Charts:     []ChartReference{},
		Situations: []interface{}{},
	}
}
