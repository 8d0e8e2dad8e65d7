package models

import "time"

// ResponseModel Base response structure that can be reused
type ResponseModel struct {
	Code        int         `json:"code"`
	CurrentTime int64       `json:"currentTime"`
	Data        interface{} `json:"data"`
	Text        string      `json:"text"`
	Version     int         `json:"version"`
}

// EntryData wraps a single entry plus its references.
type EntryData struct {
	Entry      interface{}     `json:"entry"`
	References ReferencesModel `json:"references"`
}

// ListData wraps a list of entries plus their references.
type ListData struct {
	List       interface{}     `json:"list"`
	References ReferencesModel `json:"references"`
}

// ResponseCurrentTime returns the current time in epoch milliseconds, as used
// in every response envelope.
func ResponseCurrentTime() int64 {
	return time.Now().UnixNano() / int64(time.Millisecond)
}

// NewOKResponse creates a 200 response envelope around the given data.
func NewOKResponse(data interface{}) ResponseModel {
	return ResponseModel{
		Code:        200,
		CurrentTime: ResponseCurrentTime(),
		Data:        data,
		Text:        "OK",
		Version:     2,
	}
}

// NewEntryResponse creates a 200 response envelope around a single entry.
func NewEntryResponse(entry interface{}, references ReferencesModel) ResponseModel {
	return NewOKResponse(EntryData{Entry: entry, References: references})
}

// NewListResponse creates a 200 response envelope around a list of entries.
func NewListResponse(list interface{}, references ReferencesModel) ResponseModel {
	return NewOKResponse(ListData{List: list, References: references})
}
