package media

type UploadRequest struct {
	Type   string `form:"type" binding:"required,oneof=avatar post"`
	PostID *int64 `form:"postId"`
	Alt    string `form:"alt"`
}
