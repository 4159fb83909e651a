package ui

import (
	"strings"
	"testing"

	"github.com/appengine-ltd/yukemuri/internal/game"
	"github.com/appengine-ltd/yukemuri/internal/parser"
)

func TestActionFromCommandHire(t *testing.T) {
	action, label, err := actionFromCommand(parser.Parse("hire cleaner 3 Haru Tanaka"))
	if err != nil {
		t.Fatalf("hire: %v", err)
	}
	hire, ok := action.(game.HireStaff)
	if !ok {
		t.Fatalf("expected HireStaff, got %T", action)
	}
	if hire.Role != game.RoleCleaner || hire.SkillLevel != 3 || hire.Name != "Haru Tanaka" {
		t.Fatalf("bad hire action: %+v", hire)
	}
	if !strings.Contains(label, "Haru Tanaka") {
		t.Fatalf("label missing name: %q", label)
	}
}

func TestActionFromCommandBuildPool(t *testing.T) {
	action, _, err := actionFromCommand(parser.Parse("build pool medium 42 Moon Bath"))
	if err != nil {
		t.Fatalf("build pool: %v", err)
	}
	build, ok := action.(game.BuildPool)
	if !ok {
		t.Fatalf("expected BuildPool, got %T", action)
	}
	if build.Size != game.PoolMedium || build.TemperatureC != 42 || build.Name != "Moon Bath" {
		t.Fatalf("bad build action: %+v", build)
	}
}

func TestActionFromCommandBuildFacilityAliases(t *testing.T) {
	cases := map[string]game.FacilityKind{
		"build restaurant 2 Kaiseki House": game.FacilityRestaurant,
		"build ryokan 1 East Wing":         game.FacilityAccommodation,
		"build karaoke 3 Echo Hall":        game.FacilityEntertainment,
		"build shop 1 Omiyage Corner":      game.FacilityGiftShop,
	}
	for input, want := range cases {
		action, _, err := actionFromCommand(parser.Parse(input))
		if err != nil {
			t.Fatalf("%q: %v", input, err)
		}
		build, ok := action.(game.BuildFacility)
		if !ok {
			t.Fatalf("%q: expected BuildFacility, got %T", input, action)
		}
		if build.Facility != want {
			t.Fatalf("%q: got kind %q want %q", input, build.Facility, want)
		}
	}
}

func TestActionFromCommandPromotionDefaults(t *testing.T) {
	action, _, err := actionFromCommand(parser.Parse("promotion 20 5"))
	if err != nil {
		t.Fatalf("promotion: %v", err)
	}
	promo := action.(game.StartPromotion)
	if promo.DiscountPercent != 20 || promo.Days != 5 || promo.Name == "" {
		t.Fatalf("bad promotion action: %+v", promo)
	}
}

func TestActionFromCommandBonusMultiWordName(t *testing.T) {
	action, _, err := actionFromCommand(parser.Parse("bonus Haru Tanaka 5000"))
	if err != nil {
		t.Fatalf("bonus: %v", err)
	}
	bonus := action.(game.GiveBonus)
	if bonus.Name != "Haru Tanaka" || bonus.Amount != 5000 {
		t.Fatalf("bad bonus action: %+v", bonus)
	}
}

func TestActionFromCommandArgumentErrors(t *testing.T) {
	inputs := []string{
		"fee",
		"fee expensive",
		"hire cleaner",
		"build gazebo 1 Pavilion",
		"build pool tiny",
		"campaign lots 5",
	}
	for _, input := range inputs {
		if _, _, err := actionFromCommand(parser.Parse(input)); err == nil {
			t.Fatalf("%q: expected argument error", input)
		}
	}
}

func TestSplitIngredientArgsMultiWordPool(t *testing.T) {
	action, _, err := actionFromCommand(parser.Parse("ingredient Main Bath green tea extract"))
	if err != nil {
		t.Fatalf("ingredient: %v", err)
	}
	add, ok := action.(game.AddIngredient)
	if !ok {
		t.Fatalf("expected AddIngredient, got %T", action)
	}
	if add.PoolName != "Main Bath" || add.Ingredient != "green tea extract" {
		t.Fatalf("bad split: %+v", add)
	}
}

func TestSplitIngredientArgsSingleWordPool(t *testing.T) {
	action, _, err := actionFromCommand(parser.Parse("ingredient main sulfur"))
	if err != nil {
		t.Fatalf("ingredient: %v", err)
	}
	add := action.(game.AddIngredient)
	if add.PoolName != "main" || add.Ingredient != "sulfur" {
		t.Fatalf("bad split: %+v", add)
	}
}

func TestSplitIngredientArgsUnknownMineralFallsBack(t *testing.T) {
	action, _, err := actionFromCommand(parser.Parse("ingredient Main Bath unobtanium"))
	if err != nil {
		t.Fatalf("ingredient: %v", err)
	}
	add := action.(game.AddIngredient)
	if add.PoolName != "Main Bath" || add.Ingredient != "unobtanium" {
		t.Fatalf("unknown mineral should be the last word, got %+v", add)
	}
}
