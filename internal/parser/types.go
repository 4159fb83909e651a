package parser

// Verb is a canonical management command recognized at the day prompt.
type Verb string

const (
	VerbFee        Verb = "fee"
	VerbHire       Verb = "hire"
	VerbFire       Verb = "fire"
	VerbBuild      Verb = "build"
	VerbClean      Verb = "clean"
	VerbIngredient Verb = "ingredient"
	VerbBonus      Verb = "bonus"
	VerbCampaign   Verb = "campaign"
	VerbPromotion  Verb = "promotion"
	VerbNext       Verb = "next"
	VerbStatus     Verb = "status"
	VerbHelp       Verb = "help"
	VerbQuit       Verb = "quit"
	VerbUnknown    Verb = ""
)

// Command is one parsed player instruction.
type Command struct {
	Raw        string
	Verb       Verb
	Args       []string
	Confidence float64
}

type verbDef struct {
	Canonical Verb
	Aliases   []string
}

func verbTable() []verbDef {
	return []verbDef{
		{VerbFee, []string{"fee", "price", "entry"}},
		{VerbHire, []string{"hire", "recruit", "employ"}},
		{VerbFire, []string{"fire", "dismiss", "sack"}},
		{VerbBuild, []string{"build", "construct"}},
		{VerbClean, []string{"clean", "scrub"}},
		{VerbIngredient, []string{"ingredient", "mineral", "add"}},
		{VerbBonus, []string{"bonus", "reward"}},
		{VerbCampaign, []string{"campaign", "advertise", "marketing"}},
		{VerbPromotion, []string{"promotion", "promo", "discount"}},
		{VerbNext, []string{"next", "advance", "sleep", "day"}},
		{VerbStatus, []string{"status", "report", "summary"}},
		{VerbHelp, []string{"help", "commands"}},
		{VerbQuit, []string{"quit", "exit"}},
	}
}
