package util

const (
	StorageLocal = "local"
	StorageMinio = "minio"
	StorageOSS   = "oss"
)

const (
	MimeImage = "image/"
)

// TokenType 是签发给客户端的令牌类型
const TokenType = "bearer"

// ContextUserKey 是 gin.Context 中保存当前用户的键
const ContextUserKey = "user"
