package models

import "time"

type Tag struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateTagRequest struct {
	Name string `json:"name" validate:"required,max=50,tagname"`
}

type ReplaceTagsRequest struct {
	TagIDs []string `json:"tag_ids" validate:"max=50,dive,uuid"`
}

// TableStatus reports which of the required tables exist
type TableStatus struct {
	Success       bool            `json:"success"`
	TableStatus   map[string]bool `json:"tableStatus"`
	MissingTables []string        `json:"missingTables"`
}
