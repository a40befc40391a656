package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/KirkDiggler/kegweb/internal/common/clock"
	"github.com/KirkDiggler/kegweb/internal/services/pour"
	"github.com/KirkDiggler/kegweb/internal/units"
	"github.com/bwmarrin/discordgo"
)

const (
	subcommandKegAdd      = "keg-add"
	subcommandKegOnline   = "keg-online"
	subcommandGrantIssue  = "grant-issue"
	subcommandGrantRevoke = "grant-revoke"
)

// adminPermissions limits /kegadmin to members who can manage the server
var adminPermissions int64 = discordgo.PermissionManageServer

// KegadminCommand handles the /kegadmin command for managing kegs and grants
type KegadminCommand struct {
	BaseCommand
	pourService pour.Service
	clock       clock.Clock
	logger      *slog.Logger
}

// NewKegadminCommand creates a new kegadmin command handler
func NewKegadminCommand(pourService pour.Service, clk clock.Clock, logger *slog.Logger) *KegadminCommand {
	minHours := 1.0

	return &KegadminCommand{
		BaseCommand: BaseCommand{
			Name:                     "kegadmin",
			Description:              "Manage kegs and grants",
			DefaultMemberPermissions: &adminPermissions,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subcommandKegAdd,
					Description: "Put a new keg on tap",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "id",
							Description: "The keg ID the flow meter reports",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "name",
							Description: "The tap or keg name",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionNumber,
							Name:        "ml_per_tick",
							Description: "Flow meter calibration in mL per tick",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "beverage",
							Description: "What is in the keg",
						},
						{
							Type:        discordgo.ApplicationCommandOptionNumber,
							Name:        "size_oz",
							Description: "Keg size in US fluid ounces (a half barrel is 1984)",
						},
						{
							Type:        discordgo.ApplicationCommandOptionNumber,
							Name:        "calories_per_ml",
							Description: "Calories per mL of the beverage",
						},
						{
							Type:        discordgo.ApplicationCommandOptionBoolean,
							Name:        "online",
							Description: "Whether the keg is on tap now (default true)",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subcommandKegOnline,
					Description: "Connect or disconnect a keg from its tap",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "id",
							Description: "The keg ID",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionBoolean,
							Name:        "online",
							Description: "Whether the keg is on tap",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subcommandGrantIssue,
					Description: "Let a drinker pour under a policy",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionUser,
							Name:        "user",
							Description: "The drinker",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "policy",
							Description: "The policy to pour under",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "hours",
							Description: "Hours until the grant expires (default never)",
							MinValue:    &minHours,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subcommandGrantRevoke,
					Description: "Withdraw a grant",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "id",
							Description: "The grant ID",
							Required:    true,
						},
					},
				},
			},
		},
		pourService: pourService,
		clock:       clk,
		logger:      logger,
	}
}

// Handle processes a Discord interaction for the kegadmin command
func (c *KegadminCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
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
	case subcommandKegAdd:
		return c.handleKegAdd(s, i, options)
	case subcommandKegOnline:
		return c.handleKegOnline(s, i, stringOption(options, "id"), boolOption(options, "online", false))
	case subcommandGrantIssue:
		return c.handleGrantIssue(s, i, options)
	case subcommandGrantRevoke:
		return c.handleGrantRevoke(s, i, stringOption(options, "id"))
	default:
		return errors.New("unknown subcommand")
	}
}

// handleKegAdd handles the keg-add subcommand
func (c *KegadminCommand) handleKegAdd(s *discordgo.Session, i *discordgo.InteractionCreate, options map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	output, err := c.pourService.AddKeg(context.Background(), &pour.AddKegInput{
		KegID:         stringOption(options, "id"),
		Name:          stringOption(options, "name"),
		BeverageName:  stringOption(options, "beverage"),
		MLPerTick:     floatOption(options, "ml_per_tick"),
		CaloriesPerML: floatOption(options, "calories_per_ml"),
		FullVolumeML:  units.OuncesToML(floatOption(options, "size_oz")),
		Online:        boolOption(options, "online", true),
	})
	if err != nil {
		return c.respondWithServiceError(s, i, subcommandKegAdd, err)
	}

	c.logger.Info("keg added from discord", "keg_id", output.Keg.ID, "user_id", callerID(i))

	return RespondWithEmbeds(s, i, []*discordgo.MessageEmbed{kegEmbed(output.Keg)}, nil)
}

// handleKegOnline handles the keg-online subcommand
func (c *KegadminCommand) handleKegOnline(s *discordgo.Session, i *discordgo.InteractionCreate, kegID string, online bool) error {
	output, err := c.pourService.SetKegOnline(context.Background(), &pour.SetKegOnlineInput{
		KegID:  kegID,
		Online: online,
	})
	if err != nil {
		return c.respondWithServiceError(s, i, subcommandKegOnline, err)
	}

	return RespondWithEmbeds(s, i, []*discordgo.MessageEmbed{kegEmbed(output.Keg)}, nil)
}

// handleGrantIssue handles the grant-issue subcommand
func (c *KegadminCommand) handleGrantIssue(s *discordgo.Session, i *discordgo.InteractionCreate, options map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	opt, ok := options["user"]
	if !ok {
		return RespondWithError(s, i, "A drinker is required.")
	}
	drinkerID := opt.UserValue(nil).ID

	var expiresAt time.Time
	if hours := intOption(options, "hours"); hours > 0 {
		expiresAt = c.clock.Now().Add(time.Duration(hours) * time.Hour)
	}

	output, err := c.pourService.IssueGrant(context.Background(), &pour.IssueGrantInput{
		DrinkerID: drinkerID,
		Policy:    stringOption(options, "policy"),
		ExpiresAt: expiresAt,
	})
	if err != nil {
		return c.respondWithServiceError(s, i, subcommandGrantIssue, err)
	}

	return RespondWithEphemeralMessage(s, i,
		fmt.Sprintf("Issued grant `%s` (%s) to <@%s>.", output.Grant.ID, grantLine(output.Grant), drinkerID))
}

// handleGrantRevoke handles the grant-revoke subcommand
func (c *KegadminCommand) handleGrantRevoke(s *discordgo.Session, i *discordgo.InteractionCreate, grantID string) error {
	output, err := c.pourService.RevokeGrant(context.Background(), &pour.RevokeGrantInput{
		GrantID: grantID,
	})
	if err != nil {
		return c.respondWithServiceError(s, i, subcommandGrantRevoke, err)
	}

	return RespondWithEphemeralMessage(s, i,
		fmt.Sprintf("Revoked grant `%s` from <@%s>.", output.Grant.ID, output.Grant.DrinkerID))
}

func (c *KegadminCommand) respondWithServiceError(s *discordgo.Session, i *discordgo.InteractionCreate, subcommand string, err error) error {
	return respondWithPourError(s, i, c.logger.With("command", c.Name, "subcommand", subcommand), err)
}

func callerID(i *discordgo.InteractionCreate) string {
	if user := interactionUser(i); user != nil {
		return user.ID
	}
	return ""
}

func floatOption(options map[string]*discordgo.ApplicationCommandInteractionDataOption, name string) float64 {
	if opt, ok := options[name]; ok {
		return opt.FloatValue()
	}
	return 0
}

func boolOption(options map[string]*discordgo.ApplicationCommandInteractionDataOption, name string, fallback bool) bool {
	if opt, ok := options[name]; ok {
		return opt.BoolValue()
	}
	return fallback
}
