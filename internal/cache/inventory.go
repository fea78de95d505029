package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserKeyPrefix   = "user:%d"
	TicketKeyPrefix = "ticket:%d"
)

const (
	UserTTL   = 5 * time.Minute
	TicketTTL = 10 * time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func TicketKey(ticketID uint) string {
	return fmt.Sprintf(TicketKeyPrefix, ticketID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

func InvalidateTicket(ctx context.Context, ticketID uint) {
	Invalidate(ctx, TicketKey(ticketID))
}
