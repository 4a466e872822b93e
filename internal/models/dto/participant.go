package dto

import (
	"time"

	"github.com/ClaudeMKA/Pulse-sub001/internal/models"
)

// Participant is a participation seen from the event's side.
type Participant struct {
	ParticipationID uint                 `json:"participationId"`
	UserID          uint                 `json:"userId"`
	Name            string               `json:"name"`
	Email           string               `json:"email"`
	PaymentStatus   models.PaymentStatus `json:"paymentStatus"`
	AmountPaid      float64              `json:"amountPaid"`
	JoinedAt        time.Time            `json:"joinedAt"`
}

func ToParticipants(participations []models.Participation) []Participant {
	out := make([]Participant, 0, len(participations))
	for _, p := range participations {
		participant := Participant{
			ParticipationID: p.ID,
			UserID:          p.UserID,
			PaymentStatus:   p.PaymentStatus,
			AmountPaid:      p.AmountPaid,
			JoinedAt:        p.CreatedAt,
		}
		if p.User != nil {
			participant.Name = p.User.Name
			participant.Email = p.User.Email
		}
		out = append(out, participant)
	}
	return out
}
