package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/kegweb/internal/services/pour"
	"github.com/bwmarrin/discordgo"
)

const (
	subcommandRecent   = "recent"
	subcommandDrink    = "drink"
	subcommandMine     = "mine"
	subcommandKeg      = "keg"
	subcommandKegs     = "kegs"
	subcommandRegister = "register"
	subcommandGrants   = "grants"
	subcommandSession  = "session"
	subcommandSessions = "sessions"

	// maxListLimit keeps list embeds under Discord's description size
	maxListLimit = 25
)

// KegbotCommand handles the /kegbot command
type KegbotCommand struct {
	BaseCommand
	pourService pour.Service
	logger      *slog.Logger
}

// NewKegbotCommand creates a new kegbot command handler
func NewKegbotCommand(pourService pour.Service, logger *slog.Logger) *KegbotCommand {
	minLimit := 1.0

	limitOption := func(description string) *discordgo.ApplicationCommandOption {
		return &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "limit",
			Description: description,
			MinValue:    &minLimit,
			MaxValue:    maxListLimit,
		}
	}

	return &KegbotCommand{
		BaseCommand: BaseCommand{
			Name:        "kegbot",
			Description: "Look up pours from the kegs",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subcommandRecent,
					Description: "Show the most recent pours",
					Options: []*discordgo.ApplicationCommandOption{
						limitOption("How many pours to show"),
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subcommandDrink,
					Description: "Show a single pour",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "id",
							Description: "The pour ID",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subcommandMine,
					Description: "Show your own recent pours",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subcommandKeg,
					Description: "Show a keg's level, top drinkers and recent pours",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "id",
							Description: "The keg ID",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subcommandKegs,
					Description: "Show how full every keg is",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subcommandRegister,
					Description: "Register as a drinker so your pours carry your name",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subcommandGrants,
					Description: "Show the grants you can pour under",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subcommandSession,
					Description: "Show a drinking session, the current one by default",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "id",
							Description: "The session ID",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subcommandSessions,
					Description: "Show the most recent drinking sessions",
					Options: []*discordgo.ApplicationCommandOption{
						limitOption("How many sessions to show"),
					},
				},
			},
		},
		pourService: pourService,
		logger:      logger,
	}
}

// Handle processes a Discord interaction for the kegbot command
func (c *KegbotCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	sub := data.Options[0]
	options := optionMap(sub.Options)

	switch sub.Name {
	case subcommandRecent:
		return c.handleRecent(s, i, intOption(options, "limit"))
	case subcommandDrink:
		return c.handleDrink(s, i, stringOption(options, "id"))
	case subcommandMine:
		return c.handleMine(s, i)
	case subcommandKeg:
		return c.handleKeg(s, i, stringOption(options, "id"))
	case subcommandKegs:
		return c.handleKegs(s, i)
	case subcommandRegister:
		return c.handleRegister(s, i)
	case subcommandGrants:
		return c.handleGrants(s, i)
	case subcommandSession:
		return c.handleSession(s, i, stringOption(options, "id"))
	case subcommandSessions:
		return c.handleSessions(s, i, intOption(options, "limit"))
	default:
		return errors.New("unknown subcommand")
	}
}

// handleRecent handles the recent subcommand
func (c *KegbotCommand) handleRecent(s *discordgo.Session, i *discordgo.InteractionCreate, limit int) error {
	output, err := c.pourService.ListRecentDrinks(context.Background(), &pour.ListRecentDrinksInput{
		Limit: clampLimit(limit),
	})
	if err != nil {
		return c.respondWithServiceError(s, i, subcommandRecent, err)
	}

	return RespondWithEmbeds(s, i, []*discordgo.MessageEmbed{
		drinkListEmbed("Recent Pours", output.Drinks),
	}, nil)
}

// handleDrink handles the drink subcommand
func (c *KegbotCommand) handleDrink(s *discordgo.Session, i *discordgo.InteractionCreate, drinkID string) error {
	output, err := c.pourService.GetDrink(context.Background(), &pour.GetDrinkInput{
		DrinkID: drinkID,
	})
	if err != nil {
		return c.respondWithServiceError(s, i, subcommandDrink, err)
	}

	return RespondWithEmbeds(s, i,
		[]*discordgo.MessageEmbed{drinkEmbed(output.Drink)},
		drinkComponents(output.Drink))
}

// handleMine handles the mine subcommand. Drinkers are keyed by Discord user ID.
func (c *KegbotCommand) handleMine(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	user := interactionUser(i)
	if user == nil {
		return RespondWithError(s, i, "Could not tell who asked.")
	}

	output, err := c.pourService.ListDrinksForDrinker(context.Background(), &pour.ListDrinksForDrinkerInput{
		DrinkerID: user.ID,
	})
	if err != nil {
		return c.respondWithServiceError(s, i, subcommandMine, err)
	}

	return RespondWithEmbeds(s, i, []*discordgo.MessageEmbed{
		drinkListEmbed("Your Pours", output.Drinks),
	}, nil)
}

// handleKeg handles the keg subcommand
func (c *KegbotCommand) handleKeg(s *discordgo.Session, i *discordgo.InteractionCreate, kegID string) error {
	ctx := context.Background()

	kegOutput, err := c.pourService.GetKeg(ctx, &pour.GetKegInput{
		KegID: kegID,
	})
	if err != nil {
		return c.respondWithServiceError(s, i, subcommandKeg, err)
	}

	output, err := c.pourService.ListDrinksForKeg(ctx, &pour.ListDrinksForKegInput{
		KegID: kegID,
	})
	if err != nil {
		return c.respondWithServiceError(s, i, subcommandKeg, err)
	}

	return RespondWithEmbeds(s, i, []*discordgo.MessageEmbed{
		kegEmbed(kegOutput.Keg),
		drinkListEmbed("Recent Pours", output.Drinks),
	}, nil)
}

// handleKegs handles the kegs subcommand
func (c *KegbotCommand) handleKegs(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	output, err := c.pourService.ListKegs(context.Background(), &pour.ListKegsInput{})
	if err != nil {
		return c.respondWithServiceError(s, i, subcommandKegs, err)
	}

	return RespondWithEmbeds(s, i, []*discordgo.MessageEmbed{
		kegListEmbed(output.Kegs),
	}, nil)
}

// handleRegister handles the register subcommand. Running it again
// refreshes the name shown next to the caller's pours.
func (c *KegbotCommand) handleRegister(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	user := interactionUser(i)
	if user == nil {
		return RespondWithError(s, i, "Could not tell who asked.")
	}

	output, err := c.pourService.RegisterDrinker(context.Background(), &pour.RegisterDrinkerInput{
		DrinkerID:   user.ID,
		Username:    user.Username,
		DisplayName: interactionDisplayName(i),
	})
	if err != nil {
		return c.respondWithServiceError(s, i, subcommandRegister, err)
	}

	if output.Created {
		return RespondWithEphemeralMessage(s, i,
			fmt.Sprintf("Registered! Your pours will show as %s.", output.Drinker.Name()))
	}
	return RespondWithEphemeralMessage(s, i,
		fmt.Sprintf("Updated. Your pours will show as %s.", output.Drinker.Name()))
}

// handleGrants handles the grants subcommand
func (c *KegbotCommand) handleGrants(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	user := interactionUser(i)
	if user == nil {
		return RespondWithError(s, i, "Could not tell who asked.")
	}

	output, err := c.pourService.ListGrants(context.Background(), &pour.ListGrantsInput{
		DrinkerID: user.ID,
	})
	if err != nil {
		return c.respondWithServiceError(s, i, subcommandGrants, err)
	}

	return RespondWithEmbeds(s, i, []*discordgo.MessageEmbed{
		grantListEmbed(output.Grants),
	}, nil)
}

// handleSession handles the session subcommand
func (c *KegbotCommand) handleSession(s *discordgo.Session, i *discordgo.InteractionCreate, sessionID string) error {
	output, err := c.pourService.GetSession(context.Background(), &pour.GetSessionInput{
		SessionID: sessionID,
	})
	if err != nil {
		return c.respondWithServiceError(s, i, subcommandSession, err)
	}

	return RespondWithEmbeds(s, i, []*discordgo.MessageEmbed{
		sessionEmbed(output.Session),
	}, nil)
}

// handleSessions handles the sessions subcommand
func (c *KegbotCommand) handleSessions(s *discordgo.Session, i *discordgo.InteractionCreate, limit int) error {
	output, err := c.pourService.ListSessions(context.Background(), &pour.ListSessionsInput{
		Limit: clampLimit(limit),
	})
	if err != nil {
		return c.respondWithServiceError(s, i, subcommandSessions, err)
	}

	return RespondWithEmbeds(s, i, []*discordgo.MessageEmbed{
		sessionListEmbed(output.Sessions),
	}, nil)
}

func (c *KegbotCommand) respondWithServiceError(s *discordgo.Session, i *discordgo.InteractionCreate, subcommand string, err error) error {
	return respondWithPourError(s, i, c.logger.With("command", c.Name, "subcommand", subcommand), err)
}

// respondWithPourError shows a service error to the caller. Errors
// the service did not expect are logged too.
func respondWithPourError(s *discordgo.Session, i *discordgo.InteractionCreate, logger *slog.Logger, err error) error {
	var pourErr pour.PourError
	if !errors.As(err, &pourErr) {
		logger.Error("subcommand failed", "error", err)
	}
	return RespondWithError(s, i, errorMessage(err))
}

func optionMap(options []*discordgo.ApplicationCommandInteractionDataOption) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	out := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, opt := range options {
		out[opt.Name] = opt
	}
	return out
}

func stringOption(options map[string]*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	if opt, ok := options[name]; ok {
		return opt.StringValue()
	}
	return ""
}

func intOption(options map[string]*discordgo.ApplicationCommandInteractionDataOption, name string) int {
	if opt, ok := options[name]; ok {
		return int(opt.IntValue())
	}
	return 0
}

// clampLimit keeps a requested list size within what one embed can show.
// Zero is passed through so the service default applies.
func clampLimit(limit int) int {
	if limit > maxListLimit {
		return maxListLimit
	}
	if limit < 0 {
		return 0
	}
	return limit
}
