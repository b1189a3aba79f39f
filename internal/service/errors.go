// Package service 包含了应用的业务逻辑层。
package service

import "errors"

// ErrEmptyMessage 表示请求中的文本缺失或去除空白后为空，属于客户端输入错误。
var ErrEmptyMessage = errors.New("message is empty")
