package controllers

import (
	"time"

	"roadready/dto"
)

var dateOnlyLayout = "02/01/2006"

// parseDateTime đọc mốc thời gian từ request, chấp nhận cả dạng có giờ
// lẫn dạng chỉ có ngày.
func parseDateTime(s string) (time.Time, error) {
	if t, err := time.Parse(dto.DateTimeLayout, s); err == nil {
		return t, nil
	}
	return time.Parse(dateOnlyLayout, s)
}
