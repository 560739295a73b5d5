package notifier

import (
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/wanderlane/trip-planner-api/internal/models"
)

type Notifier interface {
	NotifyTripCommitted(trip models.TripDraft, days int) error
}

type DiscordNotifier struct {
	session   *discordgo.Session
	channelID string
}

func NewDiscordNotifier(session *discordgo.Session, channelID string) *DiscordNotifier {
	return &DiscordNotifier{
		session:   session,
		channelID: channelID,
	}
}

func (n *DiscordNotifier) NotifyTripCommitted(trip models.TripDraft, days int) error {
	if n.session == nil {
		return fmt.Errorf("discord session is nil")
	}
	if n.channelID == "" {
		return fmt.Errorf("discord channel ID is empty")
	}

	budget := fmt.Sprintf("$%d total", trip.Budget)
	if trip.BudgetPerPerson {
		budget = fmt.Sprintf("$%d per person", trip.Budget)
	}

	message := fmt.Sprintf("🧳 **Trip Committed**\n**Destination:** %s\n**Dates:** %s - %s (%d days)\n**People:** %d\n**Budget:** %s\n**Pace:** %s\n**Transport:** %s",
		trip.Destination,
		trip.FromDate.Format("2006-01-02"),
		trip.ToDate.Format("2006-01-02"),
		days,
		trip.NumPeople,
		budget,
		trip.Pace,
		strings.Join(trip.Transport, ", "),
	)

	_, err := n.session.ChannelMessageSend(n.channelID, message)
	if err != nil {
		log.Printf("Failed to send discord message: %v", err)
		return err
	}

	return nil
}
