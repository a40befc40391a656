package discord

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/KirkDiggler/kegweb/internal/models"
	"github.com/KirkDiggler/kegweb/internal/services/pour"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func measuredView() *pour.DrinkView {
	return &pour.DrinkView{
		ID:           "42",
		Path:         "/drink/42",
		DrinkerID:    "user-1",
		DrinkerName:  "Mike",
		KegID:        "keg-1",
		KegName:      "Main Tap",
		BeverageName: "Potrero Pale",
		Ticks:        700,
		Measured:     true,
		Ounces:       11.835,
		Calories:     140,
		SizeOunces:   11.835,
		When:         "30 seconds ago",
		EndedAt:      time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC),
		Duration:     10 * time.Second,
		Status:       models.DrinkStatusValid,
	}
}

func TestDrinkEmbed(t *testing.T) {
	embed := drinkEmbed(measuredView())

	assert.Equal(t, "Drink 42", embed.Title)
	assert.Equal(t, "Poured 30 seconds ago (`/drink/42`)", embed.Description)
	assert.Equal(t, "2023-01-01T12:00:00Z", embed.Timestamp)

	values := make(map[string]string)
	for _, field := range embed.Fields {
		values[field.Name] = field.Value
	}
	assert.Equal(t, "Mike", values["Drinker"])
	assert.Equal(t, "Main Tap (Potrero Pale)", values["Keg"])
	assert.Equal(t, "11.8 oz", values["Size"])
	assert.Equal(t, "140", values["Calories"])
	assert.Equal(t, "10s", values["Pour Time"])
	assert.NotContains(t, values, "Grant")
}

func TestDrinkEmbedUnmeasured(t *testing.T) {
	view := measuredView()
	view.Measured = false
	view.KegName = ""
	view.BeverageName = ""
	view.Status = models.DrinkStatusInvalid
	view.GrantPolicy = "happy-hour"

	embed := drinkEmbed(view)

	assert.Equal(t, "Drink 42 (voided)", embed.Title)

	values := make(map[string]string)
	for _, field := range embed.Fields {
		values[field.Name] = field.Value
	}
	assert.Equal(t, "keg keg-1", values["Keg"])
	assert.Equal(t, "700 ticks", values["Size"])
	assert.Equal(t, "happy-hour", values["Grant"])
	assert.NotContains(t, values, "Calories")
}

func TestDrinkListEmbed(t *testing.T) {
	voided := measuredView()
	voided.ID = "41"
	voided.Status = models.DrinkStatusInvalid
	voided.When = "on Friday, December 30, 2022 - 12:00"

	embed := drinkListEmbed("Recent Pours", []*pour.DrinkView{measuredView(), voided})

	assert.Equal(t, "Recent Pours", embed.Title)
	assert.Equal(t,
		"**#42** Mike poured 11.8 oz from Main Tap (Potrero Pale), 30 seconds ago\n"+
			"~~**#41** Mike poured 11.8 oz from Main Tap (Potrero Pale), on Friday, December 30, 2022 - 12:00~~\n",
		embed.Description)

	empty := drinkListEmbed("Your Pours", nil)
	assert.Equal(t, "No pours yet.", empty.Description)
}

func TestDrinkComponents(t *testing.T) {
	components := drinkComponents(measuredView())
	require.Len(t, components, 1)

	row, ok := components[0].(discordgo.ActionsRow)
	require.True(t, ok)
	require.Len(t, row.Components, 1)

	button, ok := row.Components[0].(discordgo.Button)
	require.True(t, ok)
	assert.Equal(t, "void_drink:42", button.CustomID)

	voided := measuredView()
	voided.Status = models.DrinkStatusInvalid
	assert.Nil(t, drinkComponents(voided))

	guest := measuredView()
	guest.DrinkerID = ""
	assert.Nil(t, drinkComponents(guest))
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "That pour does not exist.", errorMessage(pour.ErrDrinkNotFound))
	assert.Equal(t, "That keg does not exist.", errorMessage(fmt.Errorf("lookup: %w", pour.ErrKegNotFound)))
	assert.Equal(t, "That session does not exist.", errorMessage(pour.ErrSessionNotFound))
	assert.Equal(t, "Something went wrong looking up pours.", errorMessage(errors.New("redis down")))
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, 0, clampLimit(0))
	assert.Equal(t, 0, clampLimit(-3))
	assert.Equal(t, 5, clampLimit(5))
	assert.Equal(t, maxListLimit, clampLimit(100))
}

func TestDrinkEmbedFallsBackWhenNameMissing(t *testing.T) {
	view := measuredView()
	view.DrinkerName = ""

	values := make(map[string]string)
	for _, field := range drinkEmbed(view).Fields {
		values[field.Name] = field.Value
	}
	assert.Equal(t, "user-1", values["Drinker"])

	view.DrinkerID = ""
	for _, field := range drinkEmbed(view).Fields {
		if field.Name == "Drinker" {
			assert.Equal(t, pour.GuestName, field.Value)
		}
	}
	assert.Contains(t, drinkLine(view), "**#42** guest poured")
}

func TestKegEmbed(t *testing.T) {
	embed := kegEmbed(&pour.KegView{
		ID:              "keg-1",
		Name:            "Main Tap",
		BeverageName:    "Potrero Pale",
		Online:          true,
		TappedAt:        time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC),
		FullVolumeML:    58673.9,
		PercentFull:     42.4,
		RemainingOunces: 841.2,
		TopDrinkers: []*pour.DrinkerTotal{
			{DrinkerID: "user-1", DrinkerName: "Mike", Ounces: 36.04},
			{DrinkerID: "user-2", DrinkerName: "guest", Ounces: 12},
		},
	})

	assert.Equal(t, "Main Tap (Potrero Pale)", embed.Title)
	assert.Equal(t, "2023-01-01T12:00:00Z", embed.Timestamp)
	require.Len(t, embed.Fields, 3)
	assert.Equal(t, "42% full, 841.2 oz left", embed.Fields[0].Value)
	assert.Equal(t, "on tap", embed.Fields[1].Value)
	assert.Equal(t, "1. Mike: 36.0 oz\n2. guest: 12.0 oz\n", embed.Fields[2].Value)

	unsized := kegEmbed(&pour.KegView{ID: "keg-9", Name: "Mystery"})
	assert.Equal(t, "size unknown", unsized.Fields[0].Value)
	assert.Empty(t, unsized.Timestamp)
	assert.Len(t, unsized.Fields, 2)
}

func TestSessionListEmbed(t *testing.T) {
	embed := sessionListEmbed([]*pour.SessionView{
		{Title: "Session 2", Active: true, When: "5 minutes 0 seconds ago", Ounces: 12, DrinkCount: 1},
		{Title: "Session 1", When: "on Friday, December 30, 2022 - 20:00", Ounces: 96.5, DrinkCount: 8},
	})

	assert.Equal(t,
		"**Session 2**: 1 pours, 12.0 oz, started 5 minutes 0 seconds ago, still going\n"+
			"**Session 1**: 8 pours, 96.5 oz, started on Friday, December 30, 2022 - 20:00\n",
		embed.Description)
}

func TestGrantLine(t *testing.T) {
	grant := &models.Grant{ID: "grant-1", Policy: "happy-hour", Status: models.GrantStatusActive}
	assert.Equal(t, "`grant-1` happy-hour, no expiry", grantLine(grant))

	grant.ExpiresAt = time.Date(2023, 1, 1, 14, 0, 0, 0, time.UTC)
	assert.Equal(t, "`grant-1` happy-hour, expires Sun, 01 Jan 2023 14:00:00 UTC", grantLine(grant))

	grant.Status = models.GrantStatusRevoked
	assert.Equal(t, "`grant-1` happy-hour, revoked", grantLine(grant))

	assert.Equal(t, "No active grants.", grantListEmbed(nil).Description)
}
