package booking

import (
	"context"
	"errors"
	"log"
	"time"

	"gorm.io/gorm"
)

// errStaleState: conditional update chạm ít hàng hơn dự kiến, tức có writer
// khác vừa thắng trên cùng ghế. Transaction rollback và chạy lại từ đầu để
// đọc trạng thái mới.
var errStaleState = errors.New("seat state changed concurrently")

const (
	txAttempts = 3
	txBackoff  = 50 * time.Millisecond
)

// runInTx chạy fn trong một transaction, retry có backoff cho lỗi
// serialization/deadlock/stale-state. Lỗi nghiệp vụ trả về ngay.
func runInTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	var err error
	backoff := txBackoff
	for attempt := 1; attempt <= txAttempts; attempt++ {
		err = db.WithContext(ctx).Transaction(fn)
		if err == nil || IsDomainError(err) {
			return err
		}
		if attempt < txAttempts {
			log.Printf("Transaction ghế thất bại (lần %d): %v, thử lại sau %s", attempt, err, backoff)
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return ctx.Err()
			}
			backoff *= 2
		}
	}
	return err
}
