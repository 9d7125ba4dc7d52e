package models

// StoredFile describes one server-generated document (convocation,
// assignment list, CSV export) available for download.
type StoredFile struct {
	Filename    string  `json:"filename"`
	Size        int64   `json:"size"`
	SizeMB      float64 `json:"size_mb,omitempty"`
	Created     string  `json:"created,omitempty"`
	DownloadURL string  `json:"download_url"`
}

// FileListing is the backend's response when listing generated documents.
type FileListing struct {
	Success   bool         `json:"success"`
	SessionID int          `json:"session_id,omitempty"`
	Count     int          `json:"count"`
	Files     []StoredFile `json:"files"`
}

// StorageInfo summarises the backend's document storage usage.
type StorageInfo struct {
	TotalSizeMB float64        `json:"total_size_mb"`
	FileCount   int            `json:"file_count"`
	Sessions    map[string]int `json:"sessions,omitempty"`
}
