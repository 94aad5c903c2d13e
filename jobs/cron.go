package jobs

import (
	"fmt"
	"log"
	"time"

	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
)

// PendingReporter đếm số đơn đặt xe đang chờ duyệt
type PendingReporter interface {
	CountPending() (int, error)
}

var pendingReporter PendingReporter

// SetPendingReporter thiết lập implementation cho PendingReporter
func SetPendingReporter(reporter PendingReporter) {
	pendingReporter = reporter
}

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron, m *melody.Melody) error {
	// Cron job chạy lúc 0h mỗi ngày: báo số đơn chờ duyệt cho admin
	_, err := c.AddFunc("0 0 * * *", func() {
		now := time.Now()
		log.Printf("Đang chạy báo cáo đơn chờ duyệt lúc: %v", now)
		if pendingReporter == nil {
			return
		}
		count, err := pendingReporter.CountPending()
		if err != nil {
			log.Printf("Lỗi khi đếm đơn chờ duyệt: %v", err)
			return
		}
		message := fmt.Sprintf("🔔 Hiện có %d đơn đặt xe đang chờ duyệt.", count)
		if err := m.Broadcast([]byte(message)); err != nil {
			log.Printf("Lỗi khi broadcast báo cáo: %v", err)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
