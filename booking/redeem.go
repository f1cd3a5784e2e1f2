package booking

import (
	"context"
	"fmt"
	"time"

	"cinema_booking/model"

	"gorm.io/gorm"
)

// RedeemTicket check-in vé tại rạp: CONFIRMED → USED, một lần duy nhất.
func RedeemTicket(ctx context.Context, db *gorm.DB, ticketCode string) (*model.Ticket, error) {
	var redeemed model.Ticket

	err := runInTx(ctx, db, func(tx *gorm.DB) error {
		var ticket model.Ticket
		if err := tx.Where("ticket_code = ?", ticketCode).First(&ticket).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return fmt.Errorf("%w: ticket %s", ErrNotFound, ticketCode)
			}
			return err
		}
		if ticket.Status != model.TicketConfirmed {
			return fmt.Errorf("%w: ticket %s is %s", ErrInvalidRequest, ticketCode, ticket.Status)
		}

		now := time.Now()
		res := tx.Model(&model.Ticket{}).
			Where("id = ? AND status = ?", ticket.ID, model.TicketConfirmed).
			Updates(map[string]any{"status": model.TicketUsed, "used_at": now})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errStaleState
		}

		ticket.Status = model.TicketUsed
		ticket.UsedAt = &now
		redeemed = ticket
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &redeemed, nil
}
