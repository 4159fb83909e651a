package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/appengine-ltd/yukemuri/internal/game"
	"github.com/appengine-ltd/yukemuri/internal/parser"
)

// actionFromCommand turns a parsed instruction into a queued game action and
// a human label for the "queued" pane. Argument errors come back as plain
// messages; deeper validation happens inside the engine when the day runs.
func actionFromCommand(cmd parser.Command) (game.Action, string, error) {
	args := cmd.Args
	switch cmd.Verb {
	case parser.VerbFee:
		fee, err := intArg(args, 0, "amount")
		if err != nil {
			return nil, "", usageErr("fee <amount>", err)
		}
		return game.SetEntryFee{Fee: fee}, fmt.Sprintf("set entry fee to %s", yen(fee)), nil

	case parser.VerbHire:
		if len(args) < 3 {
			return nil, "", usageErr("hire <role> <skill 1-10> <name>", fmt.Errorf("need role, skill and name"))
		}
		role := game.StaffRole(strings.ToLower(args[0]))
		skill, err := intArg(args, 1, "skill")
		if err != nil {
			return nil, "", usageErr("hire <role> <skill 1-10> <name>", err)
		}
		name := strings.Join(args[2:], " ")
		return game.HireStaff{Name: name, Role: role, SkillLevel: skill},
			fmt.Sprintf("hire %s %q at skill %d", role, name, skill), nil

	case parser.VerbFire:
		if len(args) < 1 {
			return nil, "", usageErr("fire <name>", fmt.Errorf("need a staff name"))
		}
		name := strings.Join(args, " ")
		return game.FireStaff{Name: name}, fmt.Sprintf("dismiss %q", name), nil

	case parser.VerbBuild:
		return buildAction(args)

	case parser.VerbClean:
		if len(args) < 1 {
			return nil, "", usageErr("clean <pool>", fmt.Errorf("need a pool name"))
		}
		name := strings.Join(args, " ")
		return game.CleanPool{PoolName: name}, fmt.Sprintf("deep clean %q", name), nil

	case parser.VerbIngredient:
		if len(args) < 2 {
			return nil, "", usageErr("ingredient <pool> <mineral>", fmt.Errorf("need pool and mineral"))
		}
		pool, mineral := splitIngredientArgs(args)
		return game.AddIngredient{PoolName: pool, Ingredient: mineral},
			fmt.Sprintf("add %s to %q", mineral, pool), nil

	case parser.VerbBonus:
		if len(args) < 2 {
			return nil, "", usageErr("bonus <name> <amount>", fmt.Errorf("need staff name and amount"))
		}
		amount, err := intArg(args, len(args)-1, "amount")
		if err != nil {
			return nil, "", usageErr("bonus <name> <amount>", err)
		}
		name := strings.Join(args[:len(args)-1], " ")
		return game.GiveBonus{Name: name, Amount: amount},
			fmt.Sprintf("pay %q a %s bonus", name, yen(amount)), nil

	case parser.VerbCampaign:
		cost, err := intArg(args, 0, "cost")
		if err != nil {
			return nil, "", usageErr("campaign <cost> <days> [name]", err)
		}
		days, err := intArg(args, 1, "days")
		if err != nil {
			return nil, "", usageErr("campaign <cost> <days> [name]", err)
		}
		name := "Ad campaign"
		if len(args) > 2 {
			name = strings.Join(args[2:], " ")
		}
		return game.StartCampaign{Name: name, Cost: cost, Days: days},
			fmt.Sprintf("run %q for %d days (%s)", name, days, yen(cost)), nil

	case parser.VerbPromotion:
		percent, err := intArg(args, 0, "percent")
		if err != nil {
			return nil, "", usageErr("promotion <percent> <days> [name]", err)
		}
		days, err := intArg(args, 1, "days")
		if err != nil {
			return nil, "", usageErr("promotion <percent> <days> [name]", err)
		}
		name := "Seasonal discount"
		if len(args) > 2 {
			name = strings.Join(args[2:], " ")
		}
		return game.StartPromotion{Name: name, DiscountPercent: percent, Days: days},
			fmt.Sprintf("offer %d%% off for %d days", percent, days), nil
	}

	return nil, "", fmt.Errorf("%q is not an action", cmd.Verb)
}

func buildAction(args []string) (game.Action, string, error) {
	const usage = "build pool <size> <temp> <name> | build <facility> <tier> <name>"
	if len(args) < 3 {
		return nil, "", usageErr(usage, fmt.Errorf("need at least three arguments"))
	}

	if strings.EqualFold(args[0], "pool") {
		if len(args) < 4 {
			return nil, "", usageErr(usage, fmt.Errorf("need size, temperature and name"))
		}
		size := game.PoolSize(strings.ToLower(args[1]))
		temp, err := intArg(args, 2, "temperature")
		if err != nil {
			return nil, "", usageErr(usage, err)
		}
		name := strings.Join(args[3:], " ")
		return game.BuildPool{Name: name, Size: size, TemperatureC: temp},
			fmt.Sprintf("build %s pool %q at %d°C", size, name, temp), nil
	}

	kind, ok := facilityKindFromWord(args[0])
	if !ok {
		return nil, "", usageErr(usage, fmt.Errorf("unknown facility %q", args[0]))
	}
	tier, err := intArg(args, 1, "tier")
	if err != nil {
		return nil, "", usageErr(usage, err)
	}
	name := strings.Join(args[2:], " ")
	return game.BuildFacility{Name: name, Facility: kind, Tier: tier},
		fmt.Sprintf("build tier %d %s %q", tier, kind, name), nil
}

// splitIngredientArgs finds the boundary between a multi-word pool name and
// a multi-word mineral by matching the tail against the catalog, longest
// tail first. With no catalog match the last word is taken as the mineral so
// the engine's rejection names the right thing.
func splitIngredientArgs(args []string) (pool, mineral string) {
	for i := 1; i < len(args); i++ {
		tail := strings.Join(args[i:], " ")
		if ingredientInCatalog(tail) {
			return strings.Join(args[:i], " "), tail
		}
	}
	return strings.Join(args[:len(args)-1], " "), args[len(args)-1]
}

func ingredientInCatalog(name string) bool {
	for _, ing := range game.IngredientCatalog() {
		if strings.EqualFold(ing.Name, name) {
			return true
		}
	}
	return false
}

func facilityKindFromWord(word string) (game.FacilityKind, bool) {
	switch strings.ToLower(word) {
	case "restaurant", "dining":
		return game.FacilityRestaurant, true
	case "shop", "gift", "giftshop", "gift_shop":
		return game.FacilityGiftShop, true
	case "accommodation", "inn", "rooms", "ryokan":
		return game.FacilityAccommodation, true
	case "entertainment", "arcade", "karaoke":
		return game.FacilityEntertainment, true
	}
	return "", false
}

func intArg(args []string, idx int, label string) (int, error) {
	if idx >= len(args) {
		return 0, fmt.Errorf("missing %s", label)
	}
	v, err := strconv.Atoi(args[idx])
	if err != nil {
		return 0, fmt.Errorf("%s must be a number, got %q", label, args[idx])
	}
	return v, nil
}

func usageErr(usage string, err error) error {
	return fmt.Errorf("%v. Usage: %s", err, usage)
}

func commandLibrary() string {
	rows := []struct{ usage, desc string }{
		{"fee <amount>", "set tomorrow's entry fee"},
		{"hire <role> <skill 1-10> <name>", "hire staff (manager, receptionist, attendant, cleaner, chef, server, maintenance, security)"},
		{"fire <name>", "dismiss a staff member"},
		{"build pool <size> <temp> <name>", "dig a small, medium or large bath"},
		{"build <facility> <tier 1-3> <name>", "construct a restaurant, shop, accommodation or entertainment"},
		{"clean <pool>", "deep clean a bath back to spotless"},
		{"ingredient <pool> <mineral>", "infuse a bath (sulfur, iron, sake, ...)"},
		{"bonus <name> <amount>", "pay a morale bonus"},
		{"campaign <cost> <days> [name]", "run an advertising campaign"},
		{"promotion <percent> <days> [name]", "discount the entry fee to draw crowds"},
		{"status", "full report on pools, facilities and staff"},
		{"next", "close the gates and resolve the day"},
		{"quit", "leave the resort"},
	}

	out := dimBlue.Render("Command Library") + "\n"
	for _, row := range rows {
		out += brightBlue.Render(fmt.Sprintf("  %-36s", row.usage)) + blue.Render(row.desc) + "\n"
	}
	return out
}
