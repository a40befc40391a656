package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/kegweb/internal/common/clock"
	"github.com/KirkDiggler/kegweb/internal/models"
	"github.com/KirkDiggler/kegweb/internal/services/pour"
	"github.com/bwmarrin/discordgo"
)

// Bot represents the Discord bot instance
type Bot struct {
	session     *discordgo.Session
	commands    map[string]CommandHandler
	commandIDs  map[string]string // Maps command name to command ID
	pourService pour.Service
	clock       clock.Clock
	logger      *slog.Logger
	config      *Config
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// Pour service
	PourService pour.Service

	// Clock dates grant expiries; defaults to the system clock
	Clock clock.Clock

	// Logger defaults to slog.Default()
	Logger *slog.Logger
}

// Component custom IDs
const (
	// ButtonVoidDrink is followed by ":" and the drink ID
	ButtonVoidDrink = "void_drink"
)

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.PourService == nil {
		return nil, errors.New("pour service cannot be nil")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	clk := cfg.Clock
	if clk == nil {
		clk = &clock.DefaultClock{}
	}

	// Create a new Discord session
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	bot := &Bot{
		session:     session,
		commands:    make(map[string]CommandHandler),
		commandIDs:  make(map[string]string),
		pourService: cfg.PourService,
		clock:       clk,
		logger:      logger.With("component", "discord"),
		config:      cfg,
	}

	// Register the interaction handler
	session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	// Open the websocket connection to Discord
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	kegbotCmd := NewKegbotCommand(b.pourService, b.logger)
	if err := b.RegisterCommand(kegbotCmd); err != nil {
		return fmt.Errorf("failed to register kegbot command: %w", err)
	}

	kegadminCmd := NewKegadminCommand(b.pourService, b.clock, b.logger)
	if err := b.RegisterCommand(kegadminCmd); err != nil {
		return fmt.Errorf("failed to register kegadmin command: %w", err)
	}

	b.logger.Info("bot is now running")
	return nil
}

// Stop removes registered commands and closes the Discord connection
func (b *Bot) Stop() error {
	appID := b.appID()

	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			b.logger.Warn("failed to delete command", "command", cmdName, "command_id", cmdID, "error", err)
		} else {
			b.logger.Info("deleted command", "command", cmdName, "command_id", cmdID)
		}
	}

	return b.session.Close()
}

// appID falls back to the session user ID when no application ID is configured
func (b *Bot) appID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	return b.session.State.User.ID
}

// RegisterCommand registers a command with Discord, for the configured guild
// or globally when no guild is set
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	guildID := b.config.GuildID
	if guildID != "" {
		b.logger.Info("registering command for guild", "command", cmd.GetName(), "guild_id", guildID)
	} else {
		b.logger.Info("registering command globally", "command", cmd.GetName())
	}

	createdCmd, err := b.session.ApplicationCommandCreate(b.appID(), guildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	// Store the command handler and its ID
	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	b.logger.Info("registered command", "command", cmd.GetName(), "command_id", createdCmd.ID)

	return nil
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		name := i.ApplicationCommandData().Name
		if h, ok := b.commands[name]; ok {
			if err := h.Handle(s, i); err != nil {
				b.logger.Error("failed to handle command", "command", name, "error", err)
			}
		}
	case discordgo.InteractionMessageComponent:
		if err := b.handleComponentInteraction(s, i); err != nil {
			b.logger.Error("failed to handle component interaction", "error", err)
		}
	}
}

// handleComponentInteraction handles button clicks
func (b *Bot) handleComponentInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	customID := i.MessageComponentData().CustomID

	action, drinkID, _ := strings.Cut(customID, ":")
	switch action {
	case ButtonVoidDrink:
		return b.handleVoidDrinkButton(s, i, drinkID)
	default:
		return RespondWithError(s, i, fmt.Sprintf("Unknown button: %s", customID))
	}
}

// handleVoidDrinkButton voids a pour from its detail message. Only the
// drinker who poured may void it.
func (b *Bot) handleVoidDrinkButton(s *discordgo.Session, i *discordgo.InteractionCreate, drinkID string) error {
	ctx := context.Background()

	user := interactionUser(i)
	if user == nil {
		return RespondWithError(s, i, "Could not tell who clicked the button.")
	}

	output, err := b.pourService.GetDrink(ctx, &pour.GetDrinkInput{
		DrinkID: drinkID,
	})
	if err != nil {
		return respondWithPourError(s, i, b.logger.With("drink_id", drinkID), err)
	}

	if output.Drink.DrinkerID != user.ID {
		return RespondWithEphemeralMessage(s, i, "Only the drinker who poured this can void it.")
	}

	voidOutput, err := b.pourService.VoidDrink(ctx, &pour.VoidDrinkInput{
		DrinkID: drinkID,
	})
	if err != nil {
		b.logger.Error("failed to void drink", "drink_id", drinkID, "error", err)
		return RespondWithError(s, i, errorMessage(err))
	}

	if voidOutput.AlreadyVoided {
		return RespondWithEphemeralMessage(s, i, "This pour was already voided.")
	}

	b.logger.Info("drink voided from discord", "drink_id", drinkID, "user_id", user.ID)

	output.Drink.Status = models.DrinkStatusInvalid
	return UpdateWithEmbeds(s, i, []*discordgo.MessageEmbed{drinkEmbed(output.Drink)})
}
