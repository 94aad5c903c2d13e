package dto

import "roadready/response"

// DateTimeLayout là định dạng ngày giờ dùng chung cho request
const DateTimeLayout = "02/01/2006 15:04"

// PaginatedResponse là struct chung cho các response có phân trang
type PaginatedResponse[T any] struct {
	Data       T                   `json:"data"`
	Pagination response.Pagination `json:"pagination"`
}
