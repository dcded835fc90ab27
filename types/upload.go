package types

// UploadImageResp 图片上传响应
type UploadImageResp struct {
	AttachmentID int64  `json:"attachment_id,string"`
	Url          string `json:"url"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
}
