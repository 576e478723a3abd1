package models

// MissionType selects which profile statistic drives a mission's progress.
type MissionType string

const (
	MissionLinks       MissionType = "links"
	MissionLogin       MissionType = "login"
	MissionStyle       MissionType = "style"
	MissionDescription MissionType = "description"
	MissionColors      MissionType = "colors"
)

// Mission is a catalog-defined goal. Progress is always recomputed from the
// driving statistic; Completed is a one-way false→true transition and the XP
// reward is granted exactly once, at that transition.
type Mission struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Type        MissionType `json:"type"`
	Target      int         `json:"target"`
	Reward      int         `json:"reward"` // XP
	Completed   bool        `json:"completed"`
	Progress    int         `json:"progress"` // clamped to [0, Target]
}

// DefaultMissions is the fixed catalog, seeded on first load. Missions are
// never added or removed at runtime.
var DefaultMissions = []Mission{
	{
		ID:          "first-collector",
		Name:        "Primo Collezionista",
		Description: "Aggiungi 5 siti diversi",
		Type:        MissionLinks,
		Target:      5,
		Reward:      50,
	},
	{
		ID:          "loyal-visitor",
		Name:        "Fedele Visitatore",
		Description: "Accedi per 5 giorni consecutivi",
		Type:        MissionLogin,
		Target:      5,
		Reward:      75,
	},
	{
		ID:          "style-master",
		Name:        "Personalizzatore",
		Description: "Modifica lo stile di 3 link diversi",
		Type:        MissionStyle,
		Target:      3,
		Reward:      40,
	},
	{
		ID:          "organizer",
		Name:        "Organizzatore",
		Description: "Crea 10 link con descrizioni",
		Type:        MissionDescription,
		Target:      10,
		Reward:      60,
	},
	{
		ID:          "designer",
		Name:        "Designer",
		Description: "Usa 5 colori di bordo diversi",
		Type:        MissionColors,
		Target:      5,
		Reward:      45,
	},
}
