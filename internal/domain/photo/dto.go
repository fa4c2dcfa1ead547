package photo

import "time"

const displayTimeLayout = "02/01/2006 15:04:05"

// UploadResponse for POST /api/fotos/subir
type UploadResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	PhotoID string `json:"photoId"`
}

// GalleryItem is one entry of GET /api/fotos. URL carries the full data URI;
// the frontend uses it directly as an image source.
type GalleryItem struct {
	ID          string `json:"id"`
	URL         string `json:"url"`
	UserName    string `json:"userName"`
	Descripcion string `json:"descripcion"`
	FileName    string `json:"fileName"`
	UploadDate  string `json:"uploadDate"`
	Size        int64  `json:"size"`
}

// GalleryItemFromEntity converts entity to gallery DTO
func GalleryItemFromEntity(p *Photo) *GalleryItem {
	return &GalleryItem{
		ID:          p.ID.String(),
		URL:         p.ImageData,
		UserName:    p.UserName,
		Descripcion: p.Description,
		FileName:    p.FileName,
		UploadDate:  p.UploadedAt.Format(displayTimeLayout),
		Size:        p.SizeBytes,
	}
}

// StatsResponse for GET /api/fotos/stats. LatestPhoto is null until the
// first upload exists.
type StatsResponse struct {
	TotalPhotos int        `json:"totalPhotos"`
	TotalUsers  int        `json:"totalUsers"`
	TotalSize   int64      `json:"totalSize"`
	LatestPhoto *time.Time `json:"latestPhoto"`
}
