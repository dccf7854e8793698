package explorer

// Achievement is a milestone evaluated against the full search history.
type Achievement struct {
	ID          string
	Name        string
	Description string
	Points      int
	Unlocked    func(history []SearchResult) bool
}

const (
	hiddenGemRarity      = 90
	explorerCountryCount = 3
	adventurerSearches   = 5
)

// Achievements is the fixed catalog, in display order.
var Achievements = []Achievement{
	{
		ID:          "first_search",
		Name:        "First Steps",
		Description: "Made your first location search",
		Points:      50,
		Unlocked: func(history []SearchResult) bool {
			return len(history) >= 1
		},
	},
	{
		ID:          "hidden_gem",
		Name:        "Hidden Gem Hunter",
		Description: "Found a location with 90+ rarity",
		Points:      100,
		Unlocked: func(history []SearchResult) bool {
			for _, result := range history {
				for _, loc := range result.Locations {
					if loc.Rarity >= hiddenGemRarity {
						return true
					}
				}
			}
			return false
		},
	},
	{
		ID:          "explorer",
		Name:        "World Explorer",
		Description: "Discovered locations in 3+ different countries",
		Points:      150,
		Unlocked: func(history []SearchResult) bool {
			return len(UniqueCountries(history)) >= explorerCountryCount
		},
	},
	{
		ID:          "adventurer",
		Name:        "Adventurer",
		Description: "Made 5+ different searches",
		Points:      200,
		Unlocked: func(history []SearchResult) bool {
			return len(history) >= adventurerSearches
		},
	},
}

// Evaluate splits the catalog into unlocked and locked achievements for history.
func Evaluate(history []SearchResult) (unlocked []Achievement, locked []Achievement) {
	unlocked = make([]Achievement, 0, len(Achievements))
	locked = make([]Achievement, 0, len(Achievements))
	for _, a := range Achievements {
		if a.Unlocked(history) {
			unlocked = append(unlocked, a)
		} else {
			locked = append(locked, a)
		}
	}
	return unlocked, locked
}
