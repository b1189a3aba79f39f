// Package model 包含了应用的数据模型定义。
package model

// MessageRequest 是三个函数端点共用的请求体。
// 情绪识别端点同样使用 message 字段承载日记正文。
type MessageRequest struct {
	Message *string `json:"message"`
}

// Text 返回 message 字段，缺失时返回空字符串。
func (r MessageRequest) Text() string {
	if r.Message == nil {
		return ""
	}
	return *r.Message
}

// ReplyResponse 是陪伴聊天端点的成功响应。
type ReplyResponse struct {
	Reply string `json:"reply"`
}

// MoodResponse 是情绪识别端点的成功响应。
type MoodResponse struct {
	Mood string `json:"mood"`
}

// ErrorResponse 是所有端点的失败响应。
type ErrorResponse struct {
	Error string `json:"error"`
}
