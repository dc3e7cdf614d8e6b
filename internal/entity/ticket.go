package entity

import (
	"fmt"

	"github.com/rocketscienceinc/fourweek-cli/internal/apperror"
)

type Ticket string

const (
	TicketYellow Ticket = "yellow"
	TicketRed    Ticket = "red"
	TicketGreen  Ticket = "green"
)

// ParseTicket - validates a ticket colour before it is sent anywhere.
func ParseTicket(colour string) (Ticket, error) {
	switch ticket := Ticket(colour); ticket {
	case TicketYellow, TicketRed, TicketGreen:
		return ticket, nil
	default:
		return "", fmt.Errorf("%w: got %q", apperror.ErrInvalidTicket, colour)
	}
}
