package models

// FileInfo represents metadata about an input file considered for processing.
type FileInfo struct {
	Path string `json:"path"`
	Name string `json:"name"`
	Size int64  `json:"size"`
}
