package loader

// MemoryProvider serves templates from an in-process map.
type MemoryProvider struct {
	templates map[string]*Template
}

// NewMemoryProvider creates a provider over the given templates, keyed
// by id.
func NewMemoryProvider(templates map[string]*Template) *MemoryProvider {
	copied := make(map[string]*Template, len(templates))
	for id, tpl := range templates {
		copied[id] = tpl
	}
	return &MemoryProvider{templates: copied}
}

// NewDefaultProvider creates a provider over the built-in catalog.
func NewDefaultProvider() *MemoryProvider {
	return NewMemoryProvider(defaultTemplates)
}

// ConfigByID returns the template for the id, if any.
func (m *MemoryProvider) ConfigByID(id string) (*Template, bool) {
	tpl, ok := m.templates[id]
	return tpl, ok
}

// Has reports whether the id resolves to a template.
func (m *MemoryProvider) Has(id string) bool {
	_, ok := m.templates[id]
	return ok
}

// defaultTemplates is the built-in catalog used when no remote source is
// configured.
var defaultTemplates = map[string]*Template{
	"pikachu": {
		Name:         "Pikachu",
		Types:        []string{"Electric"},
		TerastalType: "Electric",
		BaseStats:    StatSpread{HP: 35, Attack: 55, Defense: 40, SpAttack: 50, SpDefense: 50, Speed: 90},
		EffortValues: StatSpread{SpAttack: 252, Speed: 252, HP: 6},
		Nature:       "Timid",
		Moves: []MoveTemplate{
			{Name: "Thunderbolt", Type: "Electric", Category: "Special", Power: 90, Accuracy: 100},
			{Name: "Quick Attack", Type: "Normal", Category: "Physical", Power: 40, Accuracy: 100, Priority: 1},
			{Name: "Iron Tail", Type: "Steel", Category: "Physical", Power: 100, Accuracy: 75},
			{Name: "Thunder Wave", Type: "Electric", Category: "Status", Accuracy: 90},
		},
	},
	"garchomp": {
		Name:         "Garchomp",
		Types:        []string{"Dragon", "Ground"},
		TerastalType: "Steel",
		BaseStats:    StatSpread{HP: 108, Attack: 130, Defense: 95, SpAttack: 80, SpDefense: 85, Speed: 102},
		EffortValues: StatSpread{Attack: 252, Speed: 252, HP: 6},
		Nature:       "Jolly",
		Moves: []MoveTemplate{
			{Name: "Earthquake", Type: "Ground", Category: "Physical", Power: 100, Accuracy: 100},
			{Name: "Dragon Claw", Type: "Dragon", Category: "Physical", Power: 80, Accuracy: 100},
			{Name: "Iron Head", Type: "Steel", Category: "Physical", Power: 80, Accuracy: 100},
			{Name: "Swords Dance", Type: "Normal", Category: "Status"},
		},
	},
	"greninja": {
		Name:         "Greninja",
		Types:        []string{"Water", "Dark"},
		TerastalType: "Water",
		BaseStats:    StatSpread{HP: 72, Attack: 95, Defense: 67, SpAttack: 103, SpDefense: 71, Speed: 122},
		EffortValues: StatSpread{SpAttack: 252, Speed: 252, HP: 6},
		Nature:       "Timid",
		Moves: []MoveTemplate{
			{Name: "Hydro Pump", Type: "Water", Category: "Special", Power: 110, Accuracy: 80},
			{Name: "Dark Pulse", Type: "Dark", Category: "Special", Power: 80, Accuracy: 100},
			{Name: "Ice Beam", Type: "Ice", Category: "Special", Power: 90, Accuracy: 100},
			{Name: "Water Shuriken", Type: "Water", Category: "Special", Power: 15, Accuracy: 100, Priority: 1},
		},
	},
	"snorlax": {
		Name:         "Snorlax",
		Types:        []string{"Normal"},
		TerastalType: "Ghost",
		BaseStats:    StatSpread{HP: 160, Attack: 110, Defense: 65, SpAttack: 65, SpDefense: 110, Speed: 30},
		EffortValues: StatSpread{HP: 252, Defense: 252, SpDefense: 6},
		Nature:       "Relaxed",
		Moves: []MoveTemplate{
			{Name: "Body Slam", Type: "Normal", Category: "Physical", Power: 85, Accuracy: 100},
			{Name: "Crunch", Type: "Dark", Category: "Physical", Power: 80, Accuracy: 100},
			{Name: "Heavy Slam", Type: "Steel", Category: "Physical", Power: 100, Accuracy: 100},
			{Name: "Curse", Type: "Ghost", Category: "Status"},
		},
	},
}
