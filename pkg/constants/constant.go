package constants

const (
	ApiServiceName = "VidTube-Api"

	// 分页默认值
	DefaultPageNum  = 1
	DefaultPageSize = 10

	// MinIO 存储桶
	VideoBucket   = "video"
	PictureBucket = "picture"

	MaxVideoSize = 4 * 1024 * 1024 * 1024

	// Like 目标类型
	TargetVideo   = "video"
	TargetComment = "comment"
	TargetTweet   = "tweet"
)
