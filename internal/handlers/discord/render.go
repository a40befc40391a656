package discord

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/KirkDiggler/kegweb/internal/models"
	"github.com/KirkDiggler/kegweb/internal/services/pour"
	"github.com/bwmarrin/discordgo"
)

// errorMessages are the user-facing texts for service errors
var errorMessages = map[error]string{
	pour.ErrDrinkNotFound:    "That pour does not exist.",
	pour.ErrKegNotFound:      "That keg does not exist.",
	pour.ErrDrinkerNotFound:  "That drinker does not exist.",
	pour.ErrKegIDRequired:    "A keg ID is required.",
	pour.ErrDrinkerRequired:  "A drinker is required.",
	pour.ErrInvalidInput:     "That request was not valid.",
	pour.ErrSessionNotFound:  "That session does not exist.",
	pour.ErrGrantNotFound:    "That grant does not exist.",
	pour.ErrKegExists:        "A keg with that ID already exists.",
	pour.ErrKegNameRequired:  "A keg name is required.",
	pour.ErrInvalidMLPerTick: "The meter calibration must be more than zero.",
}

// errorMessage turns a service error into text safe to show in a channel
func errorMessage(err error) string {
	for target, message := range errorMessages {
		if errors.Is(err, target) {
			return message
		}
	}
	return "Something went wrong looking up pours."
}

func errorEmbed(message string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "Error",
		Description: message,
		Color:       colorError,
	}
}

// drinkEmbed renders a single pour with all of its metrics
func drinkEmbed(view *pour.DrinkView) *discordgo.MessageEmbed {
	title := fmt.Sprintf("Drink %s", view.ID)
	if view.Status == models.DrinkStatusInvalid {
		title += " (voided)"
	}

	fields := []*discordgo.MessageEmbedField{
		{
			Name:   "Drinker",
			Value:  drinkerLabel(view),
			Inline: true,
		},
		{
			Name:   "Keg",
			Value:  kegLabel(view),
			Inline: true,
		},
		{
			Name:   "Size",
			Value:  sizeLabel(view),
			Inline: true,
		},
	}

	if view.Measured {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "Calories",
			Value:  fmt.Sprintf("%.0f", view.Calories),
			Inline: true,
		})
	}

	fields = append(fields, &discordgo.MessageEmbedField{
		Name:   "Pour Time",
		Value:  fmt.Sprintf("%.0fs", view.Duration.Seconds()),
		Inline: true,
	})

	if view.GrantPolicy != "" {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "Grant",
			Value:  view.GrantPolicy,
			Inline: true,
		})
	}

	return &discordgo.MessageEmbed{
		Title:       title,
		Description: fmt.Sprintf("Poured %s (`%s`)", view.When, view.Path),
		Color:       colorOK,
		Fields:      fields,
		Timestamp:   view.EndedAt.Format(time.RFC3339),
	}
}

// drinkListEmbed renders pours one per line, newest first
func drinkListEmbed(title string, views []*pour.DrinkView) *discordgo.MessageEmbed {
	if len(views) == 0 {
		return &discordgo.MessageEmbed{
			Title:       title,
			Description: "No pours yet.",
			Color:       colorOK,
		}
	}

	var sb strings.Builder
	for _, view := range views {
		sb.WriteString(drinkLine(view))
		sb.WriteString("\n")
	}

	return &discordgo.MessageEmbed{
		Title:       title,
		Description: sb.String(),
		Color:       colorOK,
	}
}

// drinkLine renders a pour as a single list entry
func drinkLine(view *pour.DrinkView) string {
	line := fmt.Sprintf("**#%s** %s poured %s from %s, %s",
		view.ID, drinkerLabel(view), sizeLabel(view), kegLabel(view), view.When)
	if view.Status == models.DrinkStatusInvalid {
		line = "~~" + line + "~~"
	}
	return line
}

// drinkerLabel never renders blank, which Discord rejects as a field value
func drinkerLabel(view *pour.DrinkView) string {
	if view.DrinkerName != "" {
		return view.DrinkerName
	}
	if view.DrinkerID != "" {
		return view.DrinkerID
	}
	return pour.GuestName
}

func sizeLabel(view *pour.DrinkView) string {
	if !view.Measured {
		return fmt.Sprintf("%d ticks", view.Ticks)
	}
	return fmt.Sprintf("%.1f oz", view.SizeOunces)
}

func kegLabel(view *pour.DrinkView) string {
	switch {
	case view.KegName == "":
		return fmt.Sprintf("keg %s", view.KegID)
	case view.BeverageName == "":
		return view.KegName
	default:
		return fmt.Sprintf("%s (%s)", view.KegName, view.BeverageName)
	}
}

// drinkComponents offers the void button on a pour that can still be voided
func drinkComponents(view *pour.DrinkView) []discordgo.MessageComponent {
	if view.Status == models.DrinkStatusInvalid || view.DrinkerID == "" {
		return nil
	}

	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Void",
					Style:    discordgo.DangerButton,
					CustomID: ButtonVoidDrink + ":" + view.ID,
				},
			},
		},
	}
}

// kegEmbed renders a keg's level and who drank the most from it
func kegEmbed(view *pour.KegView) *discordgo.MessageEmbed {
	fields := []*discordgo.MessageEmbedField{
		{
			Name:   "Level",
			Value:  levelLabel(view),
			Inline: true,
		},
		{
			Name:   "Status",
			Value:  onlineLabel(view.Online),
			Inline: true,
		},
	}

	if len(view.TopDrinkers) > 0 {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  "Top Drinkers",
			Value: drinkerTotalLines(view.TopDrinkers),
		})
	}

	embed := &discordgo.MessageEmbed{
		Title:       kegTitle(view),
		Description: fmt.Sprintf("Keg `%s`", view.ID),
		Color:       colorOK,
		Fields:      fields,
	}
	if !view.TappedAt.IsZero() {
		embed.Timestamp = view.TappedAt.Format(time.RFC3339)
	}
	return embed
}

// kegListEmbed renders every keg's level one per line
func kegListEmbed(views []*pour.KegView) *discordgo.MessageEmbed {
	if len(views) == 0 {
		return &discordgo.MessageEmbed{
			Title:       "Kegs",
			Description: "No kegs on tap.",
			Color:       colorOK,
		}
	}

	var sb strings.Builder
	for _, view := range views {
		sb.WriteString(fmt.Sprintf("**%s** `%s`: %s, %s\n",
			kegTitle(view), view.ID, levelLabel(view), onlineLabel(view.Online)))
	}

	return &discordgo.MessageEmbed{
		Title:       "Kegs",
		Description: sb.String(),
		Color:       colorOK,
	}
}

func kegTitle(view *pour.KegView) string {
	if view.BeverageName == "" {
		return view.Name
	}
	return fmt.Sprintf("%s (%s)", view.Name, view.BeverageName)
}

func levelLabel(view *pour.KegView) string {
	switch {
	case view.FullVolumeML <= 0:
		return "size unknown"
	case view.Empty:
		return "empty"
	default:
		return fmt.Sprintf("%.0f%% full, %.1f oz left", view.PercentFull, view.RemainingOunces)
	}
}

func onlineLabel(online bool) string {
	if online {
		return "on tap"
	}
	return "offline"
}

// sessionEmbed renders a session's totals and its drinkers
func sessionEmbed(view *pour.SessionView) *discordgo.MessageEmbed {
	fields := []*discordgo.MessageEmbedField{
		{
			Name:   "Pours",
			Value:  fmt.Sprintf("%d", view.DrinkCount),
			Inline: true,
		},
		{
			Name:   "Volume",
			Value:  fmt.Sprintf("%.1f oz", view.Ounces),
			Inline: true,
		},
	}

	if len(view.Drinkers) > 0 {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  "Drinkers",
			Value: drinkerTotalLines(view.Drinkers),
		})
	}

	return &discordgo.MessageEmbed{
		Title:       view.Title,
		Description: sessionLine(view),
		Color:       colorOK,
		Fields:      fields,
		Timestamp:   view.StartedAt.Format(time.RFC3339),
	}
}

// sessionListEmbed renders sessions one per line, newest first
func sessionListEmbed(views []*pour.SessionView) *discordgo.MessageEmbed {
	if len(views) == 0 {
		return &discordgo.MessageEmbed{
			Title:       "Sessions",
			Description: "No sessions yet.",
			Color:       colorOK,
		}
	}

	var sb strings.Builder
	for _, view := range views {
		sb.WriteString(fmt.Sprintf("**%s**: %d pours, %.1f oz, %s\n",
			view.Title, view.DrinkCount, view.Ounces, sessionLine(view)))
	}

	return &discordgo.MessageEmbed{
		Title:       "Sessions",
		Description: sb.String(),
		Color:       colorOK,
	}
}

func sessionLine(view *pour.SessionView) string {
	if view.Active {
		return "started " + view.When + ", still going"
	}
	return "started " + view.When
}

func drinkerTotalLines(totals []*pour.DrinkerTotal) string {
	var sb strings.Builder
	for n, total := range totals {
		sb.WriteString(fmt.Sprintf("%d. %s: %.1f oz\n", n+1, total.DrinkerName, total.Ounces))
	}
	return sb.String()
}

// grantListEmbed renders a drinker's grants one per line
func grantListEmbed(grants []*models.Grant) *discordgo.MessageEmbed {
	if len(grants) == 0 {
		return &discordgo.MessageEmbed{
			Title:       "Your Grants",
			Description: "No active grants.",
			Color:       colorOK,
		}
	}

	var sb strings.Builder
	for _, grant := range grants {
		sb.WriteString(grantLine(grant))
		sb.WriteString("\n")
	}

	return &discordgo.MessageEmbed{
		Title:       "Your Grants",
		Description: sb.String(),
		Color:       colorOK,
	}
}

func grantLine(grant *models.Grant) string {
	line := fmt.Sprintf("`%s` %s", grant.ID, grant.Policy)
	switch {
	case grant.Status == models.GrantStatusRevoked:
		return line + ", revoked"
	case grant.ExpiresAt.IsZero():
		return line + ", no expiry"
	default:
		return line + ", expires " + grant.ExpiresAt.Format(time.RFC1123)
	}
}
